package db

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// jsonStrings marshals a string slice into a MySQL JSON column.
type jsonStrings []string

func (j jsonStrings) Value() (driver.Value, error) {
	if j == nil {
		return "[]", nil
	}
	return json.Marshal([]string(j))
}

func (j *jsonStrings) Scan(src interface{}) error {
	return scanJSON(src, (*[]string)(j))
}

// jsonIDs marshals a slice of numeric ids into a MySQL JSON column.
type jsonIDs []uint64

func (j jsonIDs) Value() (driver.Value, error) {
	if j == nil {
		return "[]", nil
	}
	return json.Marshal([]uint64(j))
}

func (j *jsonIDs) Scan(src interface{}) error {
	return scanJSON(src, (*[]uint64)(j))
}

func scanJSON(src interface{}, dest interface{}) error {
	switch value := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(value, dest)
	case string:
		return json.Unmarshal([]byte(value), dest)
	default:
		return fmt.Errorf("unsupported JSON column type %T", src)
	}
}

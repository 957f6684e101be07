package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"easytasks/internal/adapter/http/dto"
	"easytasks/internal/core/domain"
)

const dateLayout = "2006-01-02"

var (
	ErrInvalidTaskPayload   = errors.New("invalid task payload")
	ErrTitleRequired        = errors.New("title is required")
	ErrInvalidStage         = errors.New("invalid stage")
	ErrInvalidPriority      = errors.New("invalid priority")
	ErrInvalidActivityType  = errors.New("invalid activity type")
	ErrSubTaskTitleRequired = errors.New("subtask title is required")
	ErrActivityTextRequired = errors.New("activity text is required")
)

// BuildCreateTaskInput validates a create payload and fills in the
// defaults (stage todo, priority normal). Stage and priority are matched
// case-insensitively and stored in canonical lowercase.
func BuildCreateTaskInput(req dto.CreateTaskRequest, ownerID uint64) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrTitleRequired
	}

	stage := domain.StageTodo
	if req.Stage != nil && *req.Stage != "" {
		parsed, ok := domain.ParseStage(*req.Stage)
		if !ok {
			return domain.CreateTaskInput{}, ErrInvalidStage
		}
		stage = parsed
	}

	priority := domain.PriorityNormal
	if req.Priority != nil && *req.Priority != "" {
		parsed, ok := domain.ParsePriority(*req.Priority)
		if !ok {
			return domain.CreateTaskInput{}, ErrInvalidPriority
		}
		priority = parsed
	}

	var date *time.Time
	if req.Date != nil {
		parsedDate, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
		date = &parsedDate
	}

	input := domain.CreateTaskInput{
		Title:    title,
		Stage:    stage,
		Priority: priority,
		Date:     date,
		Assets:   req.Assets,
		Team:     req.Team,
		OwnerID:  ownerID,
	}
	if req.Description != nil {
		input.Description = *req.Description
	}
	if req.Links != nil {
		input.Links = *req.Links
	}

	return input, nil
}

// BuildUpdateTaskInput turns an update payload into partial-update
// semantics: a field changes only when its key is present in the raw
// JSON, which keeps "set to empty" distinct from "omitted".
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	var input domain.UpdateTaskInput

	if hasJSONField(raw, "title") {
		if req.Title == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return domain.UpdateTaskInput{}, ErrTitleRequired
		}
		input.Title = &title
	}

	if hasJSONField(raw, "description") {
		if req.Description == nil && !isJSONNull(raw["description"]) {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		value := ""
		if req.Description != nil {
			value = *req.Description
		}
		input.Description = &value
		input.DescriptionSet = true
	}

	if hasJSONField(raw, "links") {
		if req.Links == nil && !isJSONNull(raw["links"]) {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		value := ""
		if req.Links != nil {
			value = *req.Links
		}
		input.Links = &value
		input.LinksSet = true
	}

	if hasJSONField(raw, "stage") {
		if req.Stage == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		stage, ok := domain.ParseStage(*req.Stage)
		if !ok {
			return domain.UpdateTaskInput{}, ErrInvalidStage
		}
		input.Stage = &stage
	}

	if hasJSONField(raw, "priority") {
		if req.Priority == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		priority, ok := domain.ParsePriority(*req.Priority)
		if !ok {
			return domain.UpdateTaskInput{}, ErrInvalidPriority
		}
		input.Priority = &priority
	}

	if hasJSONField(raw, "date") && !isJSONNull(raw["date"]) {
		if req.Date == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		parsedDate, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		input.Date = &parsedDate
	}

	if hasJSONField(raw, "assets") && !isJSONNull(raw["assets"]) {
		input.Assets = req.Assets
		input.AssetsSet = true
	}

	if hasJSONField(raw, "team") && !isJSONNull(raw["team"]) {
		input.Team = req.Team
		input.TeamSet = true
	}

	return input, nil
}

func BuildSubTaskInput(req dto.CreateSubTaskRequest) (domain.CreateSubTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateSubTaskInput{}, ErrSubTaskTitleRequired
	}

	input := domain.CreateSubTaskInput{Title: title}
	if req.Tag != nil {
		input.Tag = *req.Tag
	}
	if req.Date != nil {
		parsedDate, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			return domain.CreateSubTaskInput{}, ErrInvalidTaskPayload
		}
		input.Date = &parsedDate
	}

	return input, nil
}

// BuildActivityInput defaults an omitted type to "commented" but rejects
// a type that is present and outside the enum.
func BuildActivityInput(req dto.CreateActivityRequest, authorID uint64) (domain.CreateActivityInput, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return domain.CreateActivityInput{}, ErrActivityTextRequired
	}

	activityType := domain.ActivityCommented
	if req.Type != nil && *req.Type != "" {
		parsed, ok := domain.ParseActivityType(*req.Type)
		if !ok {
			return domain.CreateActivityInput{}, ErrInvalidActivityType
		}
		activityType = parsed
	}

	return domain.CreateActivityInput{
		Type:     activityType,
		Text:     text,
		AuthorID: authorID,
	}, nil
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

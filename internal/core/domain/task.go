package domain

import (
	"strings"
	"time"
)

type Stage string

const (
	StageTodo       Stage = "todo"
	StageInProgress Stage = "in progress"
	StageCompleted  Stage = "completed"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

type ActivityType string

const (
	ActivityAssigned   ActivityType = "assigned"
	ActivityStarted    ActivityType = "started"
	ActivityInProgress ActivityType = "in progress"
	ActivityBug        ActivityType = "bug"
	ActivityCompleted  ActivityType = "completed"
	ActivityCommented  ActivityType = "commented"
)

// ParseStage normalizes user input to the canonical lowercase stage value.
func ParseStage(value string) (Stage, bool) {
	stage := Stage(strings.ToLower(value))
	switch stage {
	case StageTodo, StageInProgress, StageCompleted:
		return stage, true
	}
	return "", false
}

func ParsePriority(value string) (Priority, bool) {
	priority := Priority(strings.ToLower(value))
	switch priority {
	case PriorityHigh, PriorityMedium, PriorityNormal, PriorityLow:
		return priority, true
	}
	return "", false
}

func ParseActivityType(value string) (ActivityType, bool) {
	activityType := ActivityType(strings.ToLower(value))
	switch activityType {
	case ActivityAssigned, ActivityStarted, ActivityInProgress,
		ActivityBug, ActivityCompleted, ActivityCommented:
		return activityType, true
	}
	return "", false
}

type Task struct {
	ID          uint64
	Title       string
	Description string
	Links       string
	Stage       Stage
	Priority    Priority
	Date        time.Time
	Assets      []string
	Team        []uint64
	SubTasks    []SubTask
	Activities  []Activity
	IsTrashed   bool
	OwnerID     uint64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SubTask is owned by its parent task; it is only ever created through the
// parent and carries no reference back to it in the domain model.
type SubTask struct {
	ID          uint64
	Title       string
	Tag         string
	Date        time.Time
	IsCompleted bool
}

// Activity is an append-only audit entry; existing entries are never
// edited or removed.
type Activity struct {
	ID       uint64
	Type     ActivityType
	Text     string
	Date     time.Time
	AuthorID uint64
}

type CreateTaskInput struct {
	Title       string
	Description string
	Links       string
	Stage       Stage
	Priority    Priority
	Date        *time.Time
	Assets      []string
	Team        []uint64
	OwnerID     uint64
}

// UpdateTaskInput distinguishes "field omitted" from "field set to its
// zero value": nil pointers and false Set flags leave the stored value
// untouched.
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Links          *string
	LinksSet       bool
	Stage          *Stage
	Priority       *Priority
	Date           *time.Time
	Assets         []string
	AssetsSet      bool
	Team           []uint64
	TeamSet        bool
}

type CreateSubTaskInput struct {
	Title string
	Tag   string
	Date  *time.Time
}

type CreateActivityInput struct {
	Type     ActivityType
	Text     string
	AuthorID uint64
}

type ListTasksFilter struct {
	Trashed bool
	Stage   Stage
	Search  string
}

type TrashAction string

const (
	ActionDelete     TrashAction = "delete"
	ActionRestore    TrashAction = "restore"
	ActionDeleteAll  TrashAction = "deleteAll"
	ActionRestoreAll TrashAction = "restoreAll"
)

package dto

// Wire format: camelCase keys, RFC3339 timestamps, and a
// {status, message?, payload} envelope.

type TaskItem struct {
	ID          uint64         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Links       string         `json:"links"`
	Stage       string         `json:"stage"`
	Priority    string         `json:"priority"`
	Date        string         `json:"date"`
	Assets      []string       `json:"assets"`
	Team        []uint64       `json:"team"`
	SubTasks    []SubTaskItem  `json:"subTasks"`
	Activities  []ActivityItem `json:"activities"`
	IsTrashed   bool           `json:"isTrashed"`
	OwnerID     uint64         `json:"ownerId"`
	CreatedAt   string         `json:"createdAt"`
	UpdatedAt   string         `json:"updatedAt"`
}

type SubTaskItem struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Tag         string `json:"tag"`
	Date        string `json:"date"`
	IsCompleted bool   `json:"isCompleted"`
}

type ActivityItem struct {
	ID   uint64 `json:"id"`
	Type string `json:"type"`
	Text string `json:"text"`
	Date string `json:"date"`
	By   uint64 `json:"by"`
}

type CreateTaskRequest struct {
	Title       string   `json:"title" binding:"required,max=255"`
	Description *string  `json:"description" binding:"omitempty,max=65535"`
	Links       *string  `json:"links" binding:"omitempty,max=65535"`
	Stage       *string  `json:"stage"`
	Priority    *string  `json:"priority"`
	Date        *string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Assets      []string `json:"assets"`
	Team        []uint64 `json:"team"`
}

type UpdateTaskRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Links       *string  `json:"links"`
	Stage       *string  `json:"stage"`
	Priority    *string  `json:"priority"`
	Date        *string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Assets      []string `json:"assets"`
	Team        []uint64 `json:"team"`
}

type CreateSubTaskRequest struct {
	Title string  `json:"title" binding:"required"`
	Tag   *string `json:"tag"`
	Date  *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

type CreateActivityRequest struct {
	Type *string `json:"type"`
	Text string  `json:"text" binding:"required"`
}

type TaskResponse struct {
	Status  bool     `json:"status"`
	Message string   `json:"message,omitempty"`
	Task    TaskItem `json:"task"`
}

type TaskListResponse struct {
	Status bool       `json:"status"`
	Tasks  []TaskItem `json:"tasks"`
}

type StatusResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message,omitempty"`
}

// TrashActionResponse reports how many tasks a bulk delete/restore
// touched; single-task actions answer with count 1.
type TrashActionResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message,omitempty"`
	Count   int64  `json:"count"`
}

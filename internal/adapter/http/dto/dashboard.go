package dto

type PriorityBucket struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}

type DashboardResponse struct {
	Status        bool           `json:"status"`
	TotalTasks    int            `json:"totalTasks"`
	TasksByStage  map[string]int `json:"tasksByStage"`
	LastWeek      map[string]int `json:"lastWeek"`
	TotalLastWeek int            `json:"totalLastWeek"`

	// Bucket order is first occurrence over the newest-first task list,
	// not a fixed enum order.
	PriorityDistribution []PriorityBucket `json:"priorityDistribution"`
	RecentTaskList       []TaskItem       `json:"recentTaskList"`
}

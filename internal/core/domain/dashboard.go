package domain

// PriorityCount is one bucket of the dashboard priority distribution.
type PriorityCount struct {
	Name  Priority
	Total int
}

// DashboardStats is derived from a single fetch of the owner's active
// tasks; nothing here is cached between calls.
type DashboardStats struct {
	TotalTasks    int
	TasksByStage  map[Stage]int
	LastWeek      map[Stage]int
	TotalLastWeek int

	// PriorityDistribution preserves first-occurrence order over the
	// newest-first task list, so the ordering is reproducible but not
	// alphabetic.
	PriorityDistribution []PriorityCount

	// RecentTasks holds the 10 most recently created active tasks.
	RecentTasks []Task
}

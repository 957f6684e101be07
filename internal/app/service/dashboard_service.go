package service

import (
	"context"
	"time"

	"easytasks/internal/core/domain"
	"easytasks/internal/core/ports"
)

const recentTaskLimit = 10

type DashboardService struct {
	taskRepository ports.TaskRepository
	now            func() time.Time
}

func NewDashboardService(taskRepository ports.TaskRepository) *DashboardService {
	return &DashboardService{taskRepository: taskRepository, now: time.Now}
}

// Stats reduces one fetch of the owner's active tasks into the dashboard
// summary. The repository returns tasks newest-created first, which fixes
// both the recent-task list and the priority distribution order.
func (s *DashboardService) Stats(ctx context.Context, ownerID uint64) (domain.DashboardStats, error) {
	tasks, err := s.taskRepository.List(ctx, ownerID, domain.ListTasksFilter{Trashed: false})
	if err != nil {
		return domain.DashboardStats{}, err
	}

	weekAgo := s.now().AddDate(0, 0, -7)

	stats := domain.DashboardStats{
		TotalTasks:   len(tasks),
		TasksByStage: make(map[domain.Stage]int),
		LastWeek:     make(map[domain.Stage]int),
		RecentTasks:  []domain.Task{},
	}

	priorityIndex := make(map[domain.Priority]int)
	for _, task := range tasks {
		stats.TasksByStage[task.Stage]++

		if task.CreatedAt.After(weekAgo) {
			stats.LastWeek[task.Stage]++
			stats.TotalLastWeek++
		}

		index, seen := priorityIndex[task.Priority]
		if !seen {
			index = len(stats.PriorityDistribution)
			priorityIndex[task.Priority] = index
			stats.PriorityDistribution = append(stats.PriorityDistribution, domain.PriorityCount{Name: task.Priority})
		}
		stats.PriorityDistribution[index].Total++
	}

	if len(tasks) > recentTaskLimit {
		tasks = tasks[:recentTaskLimit]
	}
	stats.RecentTasks = tasks

	return stats, nil
}

var _ ports.DashboardService = (*DashboardService)(nil)

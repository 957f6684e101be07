package mapper

import (
	"time"

	"easytasks/internal/adapter/http/dto"
	"easytasks/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Links:       task.Links,
		Stage:       string(task.Stage),
		Priority:    string(task.Priority),
		Date:        task.Date.Format(time.RFC3339),
		Assets:      task.Assets,
		Team:        task.Team,
		SubTasks:    make([]dto.SubTaskItem, 0, len(task.SubTasks)),
		Activities:  make([]dto.ActivityItem, 0, len(task.Activities)),
		IsTrashed:   task.IsTrashed,
		OwnerID:     task.OwnerID,
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   task.UpdatedAt.Format(time.RFC3339),
	}

	if item.Assets == nil {
		item.Assets = []string{}
	}
	if item.Team == nil {
		item.Team = []uint64{}
	}

	for _, subTask := range task.SubTasks {
		item.SubTasks = append(item.SubTasks, dto.SubTaskItem{
			ID:          subTask.ID,
			Title:       subTask.Title,
			Tag:         subTask.Tag,
			Date:        subTask.Date.Format(time.RFC3339),
			IsCompleted: subTask.IsCompleted,
		})
	}

	for _, activity := range task.Activities {
		item.Activities = append(item.Activities, dto.ActivityItem{
			ID:   activity.ID,
			Type: string(activity.Type),
			Text: activity.Text,
			Date: activity.Date.Format(time.RFC3339),
			By:   activity.AuthorID,
		})
	}

	return item
}

func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

func ToDashboardResponse(stats domain.DashboardStats) dto.DashboardResponse {
	response := dto.DashboardResponse{
		Status:               true,
		TotalTasks:           stats.TotalTasks,
		TasksByStage:         make(map[string]int, len(stats.TasksByStage)),
		LastWeek:             make(map[string]int, len(stats.LastWeek)),
		TotalLastWeek:        stats.TotalLastWeek,
		PriorityDistribution: make([]dto.PriorityBucket, 0, len(stats.PriorityDistribution)),
		RecentTaskList:       ToTaskItems(stats.RecentTasks),
	}

	for stage, count := range stats.TasksByStage {
		response.TasksByStage[string(stage)] = count
	}
	for stage, count := range stats.LastWeek {
		response.LastWeek[string(stage)] = count
	}
	for _, bucket := range stats.PriorityDistribution {
		response.PriorityDistribution = append(response.PriorityDistribution, dto.PriorityBucket{
			Name:  string(bucket.Name),
			Total: bucket.Total,
		})
	}

	return response
}

package service

import (
	"context"
	"fmt"
	"time"

	"easytasks/internal/core/domain"
	"easytasks/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
	now            func() time.Time
}

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository, now: time.Now}
}

func (s *TaskService) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	now := s.now()

	date := now
	if input.Date != nil {
		date = *input.Date
	}

	task := domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Links:       input.Links,
		Stage:       input.Stage,
		Priority:    input.Priority,
		Date:        date,
		Assets:      input.Assets,
		Team:        input.Team,
		OwnerID:     input.OwnerID,
		// Every task starts its audit log with a synthetic entry
		// recording the priority it was created with.
		Activities: []domain.Activity{
			{
				Type:     domain.ActivityStarted,
				Text:     fmt.Sprintf("Task created with %s priority", input.Priority),
				Date:     now,
				AuthorID: input.OwnerID,
			},
		},
	}

	return s.taskRepository.Create(ctx, task)
}

func (s *TaskService) Get(ctx context.Context, id uint64) (domain.Task, error) {
	return s.taskRepository.GetByID(ctx, id)
}

func (s *TaskService) List(ctx context.Context, ownerID uint64, filter domain.ListTasksFilter) ([]domain.Task, error) {
	return s.taskRepository.List(ctx, ownerID, filter)
}

func (s *TaskService) Update(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	return s.taskRepository.Update(ctx, id, input)
}

func (s *TaskService) Trash(ctx context.Context, id uint64) error {
	return s.taskRepository.Trash(ctx, id)
}

func (s *TaskService) Restore(ctx context.Context, id uint64) error {
	return s.taskRepository.Restore(ctx, id)
}

func (s *TaskService) Delete(ctx context.Context, id uint64) error {
	return s.taskRepository.Delete(ctx, id)
}

func (s *TaskService) DeleteAllTrashed(ctx context.Context, ownerID uint64) (int64, error) {
	return s.taskRepository.DeleteAllTrashed(ctx, ownerID)
}

func (s *TaskService) RestoreAllTrashed(ctx context.Context, ownerID uint64) (int64, error) {
	return s.taskRepository.RestoreAllTrashed(ctx, ownerID)
}

func (s *TaskService) AddSubTask(ctx context.Context, taskID uint64, input domain.CreateSubTaskInput) (domain.Task, error) {
	date := s.now()
	if input.Date != nil {
		date = *input.Date
	}

	subTask := domain.SubTask{
		Title: input.Title,
		Tag:   input.Tag,
		Date:  date,
	}

	return s.taskRepository.AddSubTask(ctx, taskID, subTask)
}

func (s *TaskService) AddActivity(ctx context.Context, taskID uint64, input domain.CreateActivityInput) (domain.Task, error) {
	activity := domain.Activity{
		Type:     input.Type,
		Text:     input.Text,
		Date:     s.now(),
		AuthorID: input.AuthorID,
	}

	return s.taskRepository.AddActivity(ctx, taskID, activity)
}

var _ ports.TaskService = (*TaskService)(nil)

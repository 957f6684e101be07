package ports

import (
	"context"

	"easytasks/internal/core/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task domain.Task) (domain.Task, error)
	GetByID(ctx context.Context, id uint64) (domain.Task, error)
	List(ctx context.Context, ownerID uint64, filter domain.ListTasksFilter) ([]domain.Task, error)
	Update(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error)
	Trash(ctx context.Context, id uint64) error
	Restore(ctx context.Context, id uint64) error
	Delete(ctx context.Context, id uint64) error
	DeleteAllTrashed(ctx context.Context, ownerID uint64) (int64, error)
	RestoreAllTrashed(ctx context.Context, ownerID uint64) (int64, error)
	AddSubTask(ctx context.Context, taskID uint64, subTask domain.SubTask) (domain.Task, error)
	AddActivity(ctx context.Context, taskID uint64, activity domain.Activity) (domain.Task, error)
}

type TaskService interface {
	Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	Get(ctx context.Context, id uint64) (domain.Task, error)
	List(ctx context.Context, ownerID uint64, filter domain.ListTasksFilter) ([]domain.Task, error)
	Update(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error)
	Trash(ctx context.Context, id uint64) error
	Restore(ctx context.Context, id uint64) error
	Delete(ctx context.Context, id uint64) error
	DeleteAllTrashed(ctx context.Context, ownerID uint64) (int64, error)
	RestoreAllTrashed(ctx context.Context, ownerID uint64) (int64, error)
	AddSubTask(ctx context.Context, taskID uint64, input domain.CreateSubTaskInput) (domain.Task, error)
	AddActivity(ctx context.Context, taskID uint64, input domain.CreateActivityInput) (domain.Task, error)
}

type DashboardService interface {
	Stats(ctx context.Context, ownerID uint64) (domain.DashboardStats, error)
}

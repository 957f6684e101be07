package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"easytasks/internal/core/domain"
	"easytasks/internal/core/ports"
)

// MySQL error 1452: foreign key constraint fails, i.e. the parent task is
// gone. Lets appends stay single-statement instead of check-then-insert.
const mysqlErrNoReferencedRow = 1452

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          uint64      `db:"id"`
	OwnerID     uint64      `db:"owner_id"`
	Title       string      `db:"title"`
	Description string      `db:"description"`
	Links       string      `db:"links"`
	Stage       string      `db:"stage"`
	Priority    string      `db:"priority"`
	Date        time.Time   `db:"date"`
	Assets      jsonStrings `db:"assets"`
	Team        jsonIDs     `db:"team"`
	IsTrashed   bool        `db:"is_trashed"`
	CreatedAt   time.Time   `db:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at"`
}

type subTaskRow struct {
	ID          uint64    `db:"id"`
	TaskID      uint64    `db:"task_id"`
	Title       string    `db:"title"`
	Tag         string    `db:"tag"`
	Date        time.Time `db:"date"`
	IsCompleted bool      `db:"is_completed"`
}

type activityRow struct {
	ID       uint64    `db:"id"`
	TaskID   uint64    `db:"task_id"`
	Type     string    `db:"type"`
	Text     string    `db:"text"`
	Date     time.Time `db:"date"`
	AuthorID uint64    `db:"author_id"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Task{}, err
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, `
INSERT INTO tasks (owner_id, title, description, links, stage, priority, date, assets, team, is_trashed)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.OwnerID,
		task.Title,
		task.Description,
		task.Links,
		string(task.Stage),
		string(task.Priority),
		task.Date,
		jsonStrings(task.Assets),
		jsonIDs(task.Team),
		task.IsTrashed,
	)
	if err != nil {
		return domain.Task{}, err
	}

	taskID, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}

	for _, activity := range task.Activities {
		_, err = tx.ExecContext(ctx, `
INSERT INTO activities (task_id, type, text, date, author_id)
VALUES (?, ?, ?, ?, ?)`,
			taskID, string(activity.Type), activity.Text, activity.Date, activity.AuthorID)
		if err != nil {
			return domain.Task{}, err
		}
	}

	if err = tx.Commit(); err != nil {
		return domain.Task{}, err
	}

	return r.GetByID(ctx, uint64(taskID))
}

func (r *TaskRepository) GetByID(ctx context.Context, id uint64) (domain.Task, error) {
	var row taskRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM tasks WHERE id = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	tasks := []domain.Task{mapTaskRowToDomainTask(row)}
	if err = r.loadChildren(ctx, tasks); err != nil {
		return domain.Task{}, err
	}

	return tasks[0], nil
}

func (r *TaskRepository) List(ctx context.Context, ownerID uint64, filter domain.ListTasksFilter) ([]domain.Task, error) {
	query := "SELECT * FROM tasks WHERE owner_id = ? AND is_trashed = ?"
	args := []interface{}{ownerID, filter.Trashed}

	if filter.Stage != "" {
		query += " AND stage = ?"
		args = append(args, string(filter.Stage))
	}
	if filter.Search != "" {
		query += " AND LOWER(title) LIKE ?"
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}
	query += " ORDER BY created_at DESC, id DESC"

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	if err := r.loadChildren(ctx, tasks); err != nil {
		return nil, err
	}

	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, id uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	// updated_at is refreshed even when no other field is supplied.
	set := []string{"updated_at = NOW()"}
	args := []interface{}{}

	if input.Title != nil {
		set = append(set, "title = ?")
		args = append(args, *input.Title)
	}
	if input.DescriptionSet {
		set = append(set, "description = ?")
		args = append(args, *input.Description)
	}
	if input.LinksSet {
		set = append(set, "links = ?")
		args = append(args, *input.Links)
	}
	if input.Stage != nil {
		set = append(set, "stage = ?")
		args = append(args, string(*input.Stage))
	}
	if input.Priority != nil {
		set = append(set, "priority = ?")
		args = append(args, string(*input.Priority))
	}
	if input.Date != nil {
		set = append(set, "date = ?")
		args = append(args, *input.Date)
	}
	if input.AssetsSet {
		set = append(set, "assets = ?")
		args = append(args, jsonStrings(input.Assets))
	}
	if input.TeamSet {
		set = append(set, "team = ?")
		args = append(args, jsonIDs(input.Team))
	}

	args = append(args, id)
	query := "UPDATE tasks SET " + strings.Join(set, ", ") + " WHERE id = ?"
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return domain.Task{}, err
	}

	// GetByID doubles as the existence check: a missing task matched
	// nothing above and surfaces here as ErrTaskNotFound.
	return r.GetByID(ctx, id)
}

func (r *TaskRepository) Trash(ctx context.Context, id uint64) error {
	return r.setTrashed(ctx, id, true)
}

func (r *TaskRepository) Restore(ctx context.Context, id uint64) error {
	return r.setTrashed(ctx, id, false)
}

func (r *TaskRepository) setTrashed(ctx context.Context, id uint64, trashed bool) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET is_trashed = ?, updated_at = NOW() WHERE id = ?", trashed, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	// MySQL reports zero affected rows both for a missing task and for a
	// write that changed nothing, so distinguish the two explicitly.
	return r.ensureExists(ctx, id)
}

func (r *TaskRepository) Delete(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return err
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

func (r *TaskRepository) DeleteAllTrashed(ctx context.Context, ownerID uint64) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM tasks WHERE owner_id = ? AND is_trashed = TRUE", ownerID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *TaskRepository) RestoreAllTrashed(ctx context.Context, ownerID uint64) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET is_trashed = FALSE, updated_at = NOW() WHERE owner_id = ? AND is_trashed = TRUE",
		ownerID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *TaskRepository) AddSubTask(ctx context.Context, taskID uint64, subTask domain.SubTask) (domain.Task, error) {
	err := r.appendChild(ctx, taskID, `
INSERT INTO subtasks (task_id, title, tag, date, is_completed)
VALUES (?, ?, ?, ?, ?)`,
		taskID, subTask.Title, subTask.Tag, subTask.Date, subTask.IsCompleted)
	if err != nil {
		return domain.Task{}, err
	}

	return r.GetByID(ctx, taskID)
}

func (r *TaskRepository) AddActivity(ctx context.Context, taskID uint64, activity domain.Activity) (domain.Task, error) {
	err := r.appendChild(ctx, taskID, `
INSERT INTO activities (task_id, type, text, date, author_id)
VALUES (?, ?, ?, ?, ?)`,
		taskID, string(activity.Type), activity.Text, activity.Date, activity.AuthorID)
	if err != nil {
		return domain.Task{}, err
	}

	return r.GetByID(ctx, taskID)
}

// appendChild inserts one child row and bumps the parent's updated_at.
// Concurrent appends against the same task are independent inserts, so
// none of them can drop a sibling.
func (r *TaskRepository) appendChild(ctx context.Context, taskID uint64, query string, args ...interface{}) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrNoReferencedRow {
			return domain.ErrTaskNotFound
		}
		return err
	}

	if _, err = tx.ExecContext(ctx, "UPDATE tasks SET updated_at = NOW() WHERE id = ?", taskID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *TaskRepository) ensureExists(ctx context.Context, id uint64) error {
	var exists bool
	err := r.db.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM tasks WHERE id = ?)", id)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrTaskNotFound
	}
	return nil
}

// loadChildren attaches subtasks and activities to the given tasks with
// one batched query per child table.
func (r *TaskRepository) loadChildren(ctx context.Context, tasks []domain.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	index := make(map[uint64]*domain.Task, len(tasks))
	ids := make([]uint64, 0, len(tasks))
	for i := range tasks {
		index[tasks[i].ID] = &tasks[i]
		ids = append(ids, tasks[i].ID)
	}

	query, args, err := sqlx.In("SELECT * FROM subtasks WHERE task_id IN (?) ORDER BY id", ids)
	if err != nil {
		return err
	}
	var subTaskRows []subTaskRow
	if err = r.db.SelectContext(ctx, &subTaskRows, r.db.Rebind(query), args...); err != nil {
		return err
	}
	for _, row := range subTaskRows {
		task := index[row.TaskID]
		task.SubTasks = append(task.SubTasks, domain.SubTask{
			ID:          row.ID,
			Title:       row.Title,
			Tag:         row.Tag,
			Date:        row.Date,
			IsCompleted: row.IsCompleted,
		})
	}

	query, args, err = sqlx.In("SELECT * FROM activities WHERE task_id IN (?) ORDER BY id", ids)
	if err != nil {
		return err
	}
	var activityRows []activityRow
	if err = r.db.SelectContext(ctx, &activityRows, r.db.Rebind(query), args...); err != nil {
		return err
	}
	for _, row := range activityRows {
		task := index[row.TaskID]
		task.Activities = append(task.Activities, domain.Activity{
			ID:       row.ID,
			Type:     domain.ActivityType(row.Type),
			Text:     row.Text,
			Date:     row.Date,
			AuthorID: row.AuthorID,
		})
	}

	return nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	return domain.Task{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Title:       row.Title,
		Description: row.Description,
		Links:       row.Links,
		Stage:       domain.Stage(row.Stage),
		Priority:    domain.Priority(row.Priority),
		Date:        row.Date,
		Assets:      row.Assets,
		Team:        row.Team,
		IsTrashed:   row.IsTrashed,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

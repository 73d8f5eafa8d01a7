package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/mvduarte/agencyhub/internal/models"
)

type TaskRepository interface {
	Create(ctx context.Context, tx *sql.Tx, task *models.Task) (int64, error)
	GetByID(ctx context.Context, agencyID, id int64) (*models.Task, error)
	GetBySocialPostID(ctx context.Context, tx *sql.Tx, postID int64) (*models.Task, error)
	// MaxOrder returns -1 when the column is empty so append is always max+1.
	MaxOrder(ctx context.Context, tx *sql.Tx, agencyID int64, kanbanType, status string) (int, error)
	ListBoard(ctx context.Context, agencyID int64, kanbanType string) ([]*models.Task, error)
	ListColumn(ctx context.Context, agencyID int64, kanbanType, status string) ([]*models.Task, error)
	Update(ctx context.Context, agencyID int64, task *models.Task) error
	UpdateStatus(ctx context.Context, tx *sql.Tx, agencyID, id int64, status string) error
	UpdateOrder(ctx context.Context, tx *sql.Tx, agencyID, id int64, order int) error
	CountByStatus(ctx context.Context, agencyID int64, kanbanType string) (map[string]int, error)
	Remove(ctx context.Context, agencyID, id int64) error
}

type taskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) TaskRepository {
	return &taskRepository{db: db}
}

const taskColumns = `id, agency_id, title, description, kanban_type, status, sort_order, priority, social_post_id, project_id, assigned_to, due_date, created_by, created_at, updated_at`

func (r *taskRepository) Create(ctx context.Context, tx *sql.Tx, task *models.Task) (int64, error) {
	query := `
		INSERT INTO tasks (agency_id, title, description, kanban_type, status, sort_order, priority, social_post_id, project_id, assigned_to, due_date, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`

	now := time.Now()
	var id int64
	err := pick(r.db, tx).QueryRowContext(ctx, query,
		task.AgencyID, task.Title, task.Description, task.KanbanType, task.Status,
		task.Order, task.Priority, task.SocialPostID, task.ProjectID,
		task.AssignedTo, task.DueDate, task.CreatedBy, now, now).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return id, nil
}

func scanTask(scan func(dest ...interface{}) error) (*models.Task, error) {
	var t models.Task
	err := scan(&t.ID, &t.AgencyID, &t.Title, &t.Description, &t.KanbanType, &t.Status,
		&t.Order, &t.Priority, &t.SocialPostID, &t.ProjectID,
		&t.AssignedTo, &t.DueDate, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *taskRepository) GetByID(ctx context.Context, agencyID, id int64) (*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE agency_id = $1 AND id = $2`
	row := r.db.QueryRowContext(ctx, query, agencyID, id)

	task, err := scanTask(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return task, nil
}

func (r *taskRepository) GetBySocialPostID(ctx context.Context, tx *sql.Tx, postID int64) (*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE social_post_id = $1`
	row := pick(r.db, tx).QueryRowContext(ctx, query, postID)

	task, err := scanTask(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return task, nil
}

func (r *taskRepository) MaxOrder(ctx context.Context, tx *sql.Tx, agencyID int64, kanbanType, status string) (int, error) {
	query := `SELECT COALESCE(MAX(sort_order), -1) FROM tasks WHERE agency_id = $1 AND kanban_type = $2 AND status = $3`

	var max int
	err := pick(r.db, tx).QueryRowContext(ctx, query, agencyID, kanbanType, status).Scan(&max)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}
	return max, nil
}

func (r *taskRepository) list(ctx context.Context, query string, args ...interface{}) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		task, err := scanTask(rows.Scan)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) ListBoard(ctx context.Context, agencyID int64, kanbanType string) ([]*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE agency_id = $1 AND kanban_type = $2 ORDER BY status, sort_order`
	return r.list(ctx, query, agencyID, kanbanType)
}

func (r *taskRepository) ListColumn(ctx context.Context, agencyID int64, kanbanType, status string) ([]*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE agency_id = $1 AND kanban_type = $2 AND status = $3 ORDER BY sort_order`
	return r.list(ctx, query, agencyID, kanbanType, status)
}

func (r *taskRepository) Update(ctx context.Context, agencyID int64, task *models.Task) error {
	query := `
		UPDATE tasks
		SET title = $1,
			description = $2,
			priority = $3,
			assigned_to = $4,
			due_date = $5,
			project_id = $6,
			updated_at = $7
		WHERE agency_id = $8 AND id = $9
	`
	_, err := r.db.ExecContext(ctx, query,
		task.Title, task.Description, task.Priority, task.AssignedTo,
		task.DueDate, task.ProjectID, time.Now(), agencyID, task.ID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *taskRepository) UpdateStatus(ctx context.Context, tx *sql.Tx, agencyID, id int64, status string) error {
	query := `UPDATE tasks SET status = $1, updated_at = $2 WHERE agency_id = $3 AND id = $4`
	_, err := pick(r.db, tx).ExecContext(ctx, query, status, time.Now(), agencyID, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *taskRepository) UpdateOrder(ctx context.Context, tx *sql.Tx, agencyID, id int64, order int) error {
	query := `UPDATE tasks SET sort_order = $1 WHERE agency_id = $2 AND id = $3`
	_, err := pick(r.db, tx).ExecContext(ctx, query, order, agencyID, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *taskRepository) CountByStatus(ctx context.Context, agencyID int64, kanbanType string) (map[string]int, error) {
	query := `SELECT status, COUNT(*) FROM tasks WHERE agency_id = $1 AND kanban_type = $2 GROUP BY status`
	rows, err := r.db.QueryContext(ctx, query, agencyID, kanbanType)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

func (r *taskRepository) Remove(ctx context.Context, agencyID, id int64) error {
	query := `DELETE FROM tasks WHERE agency_id = $1 AND id = $2`
	_, err := r.db.ExecContext(ctx, query, agencyID, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/mvduarte/agencyhub/internal/models"
)

type ProjectRepository interface {
	Create(ctx context.Context, tx *sql.Tx, project *models.Project) (int64, error)
	GetByID(ctx context.Context, agencyID, id int64) (*models.Project, error)
	List(ctx context.Context, agencyID int64) ([]*models.Project, error)
	ListByClient(ctx context.Context, agencyID, clientID int64) ([]*models.Project, error)
	UpdateStatus(ctx context.Context, agencyID, id int64, status string) error
	Remove(ctx context.Context, agencyID, id int64) error
}

type projectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) ProjectRepository {
	return &projectRepository{db: db}
}

const projectColumns = `id, agency_id, client_id, name, description, status, start_date, due_date, created_at`

func (r *projectRepository) Create(ctx context.Context, tx *sql.Tx, project *models.Project) (int64, error) {
	query := `
		INSERT INTO projects (agency_id, client_id, name, description, status, start_date, due_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id int64
	err := pick(r.db, tx).QueryRowContext(ctx, query,
		project.AgencyID, project.ClientID, project.Name, project.Description,
		project.Status, project.StartDate, project.DueDate, time.Now()).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return id, nil
}

func (r *projectRepository) GetByID(ctx context.Context, agencyID, id int64) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE agency_id = $1 AND id = $2`
	row := r.db.QueryRowContext(ctx, query, agencyID, id)

	var p models.Project
	err := row.Scan(&p.ID, &p.AgencyID, &p.ClientID, &p.Name, &p.Description, &p.Status, &p.StartDate, &p.DueDate, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	return &p, nil
}

func (r *projectRepository) list(ctx context.Context, query string, args ...interface{}) ([]*models.Project, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		var p models.Project
		err := rows.Scan(&p.ID, &p.AgencyID, &p.ClientID, &p.Name, &p.Description, &p.Status, &p.StartDate, &p.DueDate, &p.CreatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		projects = append(projects, &p)
	}
	return projects, rows.Err()
}

func (r *projectRepository) List(ctx context.Context, agencyID int64) ([]*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE agency_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, agencyID)
}

func (r *projectRepository) ListByClient(ctx context.Context, agencyID, clientID int64) ([]*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE agency_id = $1 AND client_id = $2 ORDER BY created_at DESC`
	return r.list(ctx, query, agencyID, clientID)
}

func (r *projectRepository) UpdateStatus(ctx context.Context, agencyID, id int64, status string) error {
	query := `UPDATE projects SET status = $1 WHERE agency_id = $2 AND id = $3`
	_, err := r.db.ExecContext(ctx, query, status, agencyID, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *projectRepository) Remove(ctx context.Context, agencyID, id int64) error {
	query := `DELETE FROM projects WHERE agency_id = $1 AND id = $2`
	_, err := r.db.ExecContext(ctx, query, agencyID, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

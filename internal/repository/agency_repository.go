package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/mvduarte/agencyhub/internal/models"
)

type AgencyRepository interface {
	GetByHost(ctx context.Context, host string) (*models.Agency, error)
	GetByID(ctx context.Context, id int64) (*models.Agency, error)
	Create(ctx context.Context, tx *sql.Tx, agency *models.Agency) (int64, error)
	AddDomain(ctx context.Context, tx *sql.Tx, domain *models.Domain) (int64, error)
	List(ctx context.Context) ([]*models.Agency, error)
}

type agencyRepository struct {
	db *sql.DB
}

func NewAgencyRepository(db *sql.DB) AgencyRepository {
	return &agencyRepository{db: db}
}

func (r *agencyRepository) GetByHost(ctx context.Context, host string) (*models.Agency, error) {
	query := `
		SELECT a.id, a.name, a.logo_url, a.primary_color, a.secondary_color, a.created_at
		FROM agencies a
		JOIN domains d ON d.agency_id = a.id
		WHERE d.host = $1
	`
	row := r.db.QueryRowContext(ctx, query, host)

	var a models.Agency
	err := row.Scan(&a.ID, &a.Name, &a.LogoURL, &a.PrimaryColor, &a.SecondaryColor, &a.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	return &a, nil
}

func (r *agencyRepository) GetByID(ctx context.Context, id int64) (*models.Agency, error) {
	query := `SELECT id, name, logo_url, primary_color, secondary_color, created_at FROM agencies WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	var a models.Agency
	err := row.Scan(&a.ID, &a.Name, &a.LogoURL, &a.PrimaryColor, &a.SecondaryColor, &a.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	return &a, nil
}

func (r *agencyRepository) Create(ctx context.Context, tx *sql.Tx, agency *models.Agency) (int64, error) {
	query := `
		INSERT INTO agencies (name, logo_url, primary_color, secondary_color, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := pick(r.db, tx).QueryRowContext(ctx, query,
		agency.Name, agency.LogoURL, agency.PrimaryColor, agency.SecondaryColor, time.Now()).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return id, nil
}

func (r *agencyRepository) AddDomain(ctx context.Context, tx *sql.Tx, domain *models.Domain) (int64, error) {
	query := `
		INSERT INTO domains (agency_id, host, is_primary)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err := pick(r.db, tx).QueryRowContext(ctx, query, domain.AgencyID, domain.Host, domain.IsPrimary).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return id, nil
}

func (r *agencyRepository) List(ctx context.Context) ([]*models.Agency, error) {
	query := `SELECT id, name, logo_url, primary_color, secondary_color, created_at FROM agencies ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var agencies []*models.Agency
	for rows.Next() {
		var a models.Agency
		if err := rows.Scan(&a.ID, &a.Name, &a.LogoURL, &a.PrimaryColor, &a.SecondaryColor, &a.CreatedAt); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		agencies = append(agencies, &a)
	}
	return agencies, rows.Err()
}

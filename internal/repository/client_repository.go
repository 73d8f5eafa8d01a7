package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/mvduarte/agencyhub/internal/models"
)

type ClientRepository interface {
	Create(ctx context.Context, tx *sql.Tx, client *models.Client) (int64, error)
	GetByID(ctx context.Context, agencyID, id int64) (*models.Client, error)
	List(ctx context.Context, agencyID int64) ([]*models.Client, error)
	Update(ctx context.Context, agencyID int64, client *models.Client) error
	Remove(ctx context.Context, agencyID, id int64) error
}

type clientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) ClientRepository {
	return &clientRepository{db: db}
}

const clientColumns = `id, agency_id, name, tax_id, contract_start, contract_end, contact_name, contact_phone, contact_email, contract_file_url, brand_manual_url, logo_url, is_active, created_at`

func (r *clientRepository) Create(ctx context.Context, tx *sql.Tx, client *models.Client) (int64, error) {
	query := `
		INSERT INTO clients (agency_id, name, tax_id, contract_start, contract_end, contact_name, contact_phone, contact_email, contract_file_url, brand_manual_url, logo_url, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`

	var id int64
	err := pick(r.db, tx).QueryRowContext(ctx, query,
		client.AgencyID, client.Name, client.TaxID, client.ContractStart, client.ContractEnd,
		client.ContactName, client.ContactPhone, client.ContactEmail,
		client.ContractFileURL, client.BrandManualURL, client.LogoURL,
		client.IsActive, time.Now()).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return id, nil
}

func scanClient(scan func(dest ...interface{}) error) (*models.Client, error) {
	var c models.Client
	err := scan(&c.ID, &c.AgencyID, &c.Name, &c.TaxID, &c.ContractStart, &c.ContractEnd,
		&c.ContactName, &c.ContactPhone, &c.ContactEmail,
		&c.ContractFileURL, &c.BrandManualURL, &c.LogoURL, &c.IsActive, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clientRepository) GetByID(ctx context.Context, agencyID, id int64) (*models.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE agency_id = $1 AND id = $2`
	row := r.db.QueryRowContext(ctx, query, agencyID, id)

	client, err := scanClient(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return client, nil
}

func (r *clientRepository) List(ctx context.Context, agencyID int64) ([]*models.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE agency_id = $1 ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, agencyID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var clients []*models.Client
	for rows.Next() {
		client, err := scanClient(rows.Scan)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		clients = append(clients, client)
	}
	return clients, rows.Err()
}

func (r *clientRepository) Update(ctx context.Context, agencyID int64, client *models.Client) error {
	query := `
		UPDATE clients
		SET name = $1,
			tax_id = $2,
			contract_start = $3,
			contract_end = $4,
			contact_name = $5,
			contact_phone = $6,
			contact_email = $7,
			contract_file_url = $8,
			brand_manual_url = $9,
			logo_url = $10,
			is_active = $11
		WHERE agency_id = $12 AND id = $13
	`
	_, err := r.db.ExecContext(ctx, query,
		client.Name, client.TaxID, client.ContractStart, client.ContractEnd,
		client.ContactName, client.ContactPhone, client.ContactEmail,
		client.ContractFileURL, client.BrandManualURL, client.LogoURL,
		client.IsActive, agencyID, client.ID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

// Remove deletes a client; projects, posts, accounts and media cascade at the
// schema level.
func (r *clientRepository) Remove(ctx context.Context, agencyID, id int64) error {
	query := `DELETE FROM clients WHERE agency_id = $1 AND id = $2`
	_, err := r.db.ExecContext(ctx, query, agencyID, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

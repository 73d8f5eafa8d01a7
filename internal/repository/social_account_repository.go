package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/mvduarte/agencyhub/internal/models"
)

type SocialAccountRepository interface {
	Upsert(ctx context.Context, tx *sql.Tx, sa *models.SocialAccount) (int64, error)
	GetByID(ctx context.Context, agencyID, id int64) (*models.SocialAccount, error)
	ListByClient(ctx context.Context, agencyID, clientID int64) ([]*models.SocialAccount, error)
	List(ctx context.Context, agencyID int64) ([]*models.SocialAccount, error)
	UpdateTokens(ctx context.Context, agencyID, id int64, sa *models.SocialAccount) error
	Remove(ctx context.Context, agencyID, id int64) error
}

type socialAccountRepository struct {
	db *sql.DB
}

func NewSocialAccountRepository(db *sql.DB) SocialAccountRepository {
	return &socialAccountRepository{db: db}
}

const socialAccountColumns = `id, agency_id, client_id, platform, account_id, account_name, profile_picture_url, access_token, refresh_token, token_expires_at, is_active, created_at, updated_at`

// Upsert persists a provider account keyed by (client_id, account_id):
// reconnecting refreshes tokens and display data instead of duplicating the
// row.
func (r *socialAccountRepository) Upsert(ctx context.Context, tx *sql.Tx, sa *models.SocialAccount) (int64, error) {
	query := `
		INSERT INTO social_accounts (agency_id, client_id, platform, account_id, account_name, profile_picture_url, access_token, refresh_token, token_expires_at, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (client_id, account_id) DO UPDATE SET
			platform = EXCLUDED.platform,
			account_name = EXCLUDED.account_name,
			profile_picture_url = EXCLUDED.profile_picture_url,
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			token_expires_at = EXCLUDED.token_expires_at,
			is_active = EXCLUDED.is_active,
			updated_at = EXCLUDED.updated_at
		RETURNING id
	`

	now := time.Now()
	var id int64
	err := pick(r.db, tx).QueryRowContext(ctx, query,
		sa.AgencyID, sa.ClientID, sa.Platform, sa.AccountID, sa.AccountName,
		sa.ProfilePicture, sa.AccessToken, sa.RefreshToken, sa.TokenExpiresAt,
		sa.IsActive, now, now).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return id, nil
}

func (r *socialAccountRepository) GetByID(ctx context.Context, agencyID, id int64) (*models.SocialAccount, error) {
	query := `SELECT ` + socialAccountColumns + ` FROM social_accounts WHERE agency_id = $1 AND id = $2`
	row := r.db.QueryRowContext(ctx, query, agencyID, id)

	var sa models.SocialAccount
	err := row.Scan(&sa.ID, &sa.AgencyID, &sa.ClientID, &sa.Platform, &sa.AccountID, &sa.AccountName,
		&sa.ProfilePicture, &sa.AccessToken, &sa.RefreshToken, &sa.TokenExpiresAt,
		&sa.IsActive, &sa.CreatedAt, &sa.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	return &sa, nil
}

func (r *socialAccountRepository) list(ctx context.Context, query string, args ...interface{}) ([]*models.SocialAccount, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var accounts []*models.SocialAccount
	for rows.Next() {
		var sa models.SocialAccount
		err := rows.Scan(&sa.ID, &sa.AgencyID, &sa.ClientID, &sa.Platform, &sa.AccountID, &sa.AccountName,
			&sa.ProfilePicture, &sa.AccessToken, &sa.RefreshToken, &sa.TokenExpiresAt,
			&sa.IsActive, &sa.CreatedAt, &sa.UpdatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		accounts = append(accounts, &sa)
	}
	return accounts, rows.Err()
}

func (r *socialAccountRepository) ListByClient(ctx context.Context, agencyID, clientID int64) ([]*models.SocialAccount, error) {
	query := `SELECT ` + socialAccountColumns + ` FROM social_accounts WHERE agency_id = $1 AND client_id = $2 ORDER BY platform, account_name`
	return r.list(ctx, query, agencyID, clientID)
}

func (r *socialAccountRepository) List(ctx context.Context, agencyID int64) ([]*models.SocialAccount, error) {
	query := `SELECT ` + socialAccountColumns + ` FROM social_accounts WHERE agency_id = $1 ORDER BY platform, account_name`
	return r.list(ctx, query, agencyID)
}

func (r *socialAccountRepository) UpdateTokens(ctx context.Context, agencyID, id int64, sa *models.SocialAccount) error {
	query := `
		UPDATE social_accounts
		SET access_token = $1,
			refresh_token = $2,
			token_expires_at = $3,
			updated_at = $4
		WHERE agency_id = $5 AND id = $6
	`
	_, err := r.db.ExecContext(ctx, query, sa.AccessToken, sa.RefreshToken, sa.TokenExpiresAt, time.Now(), agencyID, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *socialAccountRepository) Remove(ctx context.Context, agencyID, id int64) error {
	query := `DELETE FROM social_accounts WHERE agency_id = $1 AND id = $2`
	_, err := r.db.ExecContext(ctx, query, agencyID, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

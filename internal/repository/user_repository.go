package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/mvduarte/agencyhub/internal/models"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ListByAgency(ctx context.Context, agencyID int64) ([]*models.User, error)
	ListAll(ctx context.Context) ([]*models.User, error)
	UsernameTaken(ctx context.Context, username string, excludeID int64) (bool, error)
	Create(ctx context.Context, tx *sql.Tx, user *models.User) (int64, error)
	Update(ctx context.Context, user *models.User) error
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, agency_id, username, email, password_hash, first_name, last_name, role, avatar_url, is_superuser, is_active, created_at`

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.AgencyID, &u.Username, &u.Email, &u.PasswordHash,
		&u.FirstName, &u.LastName, &u.Role, &u.AvatarURL, &u.IsSuperuser, &u.IsActive, &u.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

// GetByUsername looks the user up without a tenant filter. Usernames are
// unique across agencies, so the caller decides what a tenant mismatch means.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, username))
}

func (r *userRepository) listQuery(ctx context.Context, query string, args ...interface{}) ([]*models.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var u models.User
		err := rows.Scan(&u.ID, &u.AgencyID, &u.Username, &u.Email, &u.PasswordHash,
			&u.FirstName, &u.LastName, &u.Role, &u.AvatarURL, &u.IsSuperuser, &u.IsActive, &u.CreatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}

func (r *userRepository) ListByAgency(ctx context.Context, agencyID int64) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE agency_id = $1 ORDER BY created_at DESC`
	return r.listQuery(ctx, query, agencyID)
}

func (r *userRepository) ListAll(ctx context.Context) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`
	return r.listQuery(ctx, query)
}

func (r *userRepository) UsernameTaken(ctx context.Context, username string, excludeID int64) (bool, error) {
	query := `SELECT 1 FROM users WHERE username = $1 AND id <> $2`

	var result int
	err := r.db.QueryRowContext(ctx, query, username, excludeID).Scan(&result)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		slog.Info(err.Error())
		return false, err
	}

	return true, nil
}

func (r *userRepository) Create(ctx context.Context, tx *sql.Tx, user *models.User) (int64, error) {
	query := `
		INSERT INTO users (agency_id, username, email, password_hash, first_name, last_name, role, avatar_url, is_superuser, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	var id int64
	err := pick(r.db, tx).QueryRowContext(ctx, query,
		user.AgencyID, user.Username, user.Email, user.PasswordHash,
		user.FirstName, user.LastName, user.Role, user.AvatarURL,
		user.IsSuperuser, user.IsActive, time.Now()).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return id, nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET username = $1,
			email = $2,
			password_hash = $3,
			first_name = $4,
			last_name = $5,
			role = $6,
			agency_id = $7,
			is_active = $8
		WHERE id = $9
	`
	_, err := r.db.ExecContext(ctx, query,
		user.Username, user.Email, user.PasswordHash, user.FirstName, user.LastName,
		user.Role, user.AgencyID, user.IsActive, user.ID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

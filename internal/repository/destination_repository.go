package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/mvduarte/agencyhub/internal/models"
)

type DestinationRepository interface {
	Create(ctx context.Context, tx *sql.Tx, d *models.SocialPostDestination) (int64, error)
	ListByPost(ctx context.Context, postID int64) ([]*models.SocialPostDestination, error)
	RemoveByPost(ctx context.Context, tx *sql.Tx, postID int64) error
}

type destinationRepository struct {
	db *sql.DB
}

func NewDestinationRepository(db *sql.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) Create(ctx context.Context, tx *sql.Tx, d *models.SocialPostDestination) (int64, error) {
	query := `
		INSERT INTO social_post_destinations (post_id, account_id, format_type)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err := pick(r.db, tx).QueryRowContext(ctx, query, d.PostID, d.AccountID, d.FormatType).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return id, nil
}

func (r *destinationRepository) ListByPost(ctx context.Context, postID int64) ([]*models.SocialPostDestination, error) {
	query := `SELECT id, post_id, account_id, format_type FROM social_post_destinations WHERE post_id = $1`
	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var destinations []*models.SocialPostDestination
	for rows.Next() {
		var d models.SocialPostDestination
		if err := rows.Scan(&d.ID, &d.PostID, &d.AccountID, &d.FormatType); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		destinations = append(destinations, &d)
	}
	return destinations, rows.Err()
}

func (r *destinationRepository) RemoveByPost(ctx context.Context, tx *sql.Tx, postID int64) error {
	query := `DELETE FROM social_post_destinations WHERE post_id = $1`
	_, err := pick(r.db, tx).ExecContext(ctx, query, postID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

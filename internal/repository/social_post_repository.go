package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/mvduarte/agencyhub/internal/models"
)

type SocialPostRepository interface {
	Create(ctx context.Context, tx *sql.Tx, post *models.SocialPost) (int64, error)
	GetByID(ctx context.Context, agencyID, id int64) (*models.SocialPost, error)
	// GetByToken is tenant-free on purpose: the public approval page carries
	// no tenant context beyond the token itself.
	GetByToken(ctx context.Context, tx *sql.Tx, token string) (*models.SocialPost, error)
	SetApprovalToken(ctx context.Context, tx *sql.Tx, id int64, token string) error
	GetApprovalToken(ctx context.Context, tx *sql.Tx, id int64) (sql.NullString, error)
	ApplyDecision(ctx context.Context, tx *sql.Tx, id int64, status, feedback, imageMarkup string) error
	ListByClient(ctx context.Context, agencyID, clientID int64) ([]*models.SocialPost, error)
	ListByStatus(ctx context.Context, agencyID int64, status string) ([]*models.SocialPost, error)
	Remove(ctx context.Context, agencyID, id int64) error
}

type socialPostRepository struct {
	db *sql.DB
}

func NewSocialPostRepository(db *sql.DB) SocialPostRepository {
	return &socialPostRepository{db: db}
}

const socialPostColumns = `id, agency_id, client_id, caption, media_url, scheduled_for, approval_status, approval_token, feedback_text, feedback_image_markup, likes_count, comments_count, shares_count, views_count, created_by, created_at`

func (r *socialPostRepository) Create(ctx context.Context, tx *sql.Tx, post *models.SocialPost) (int64, error) {
	query := `
		INSERT INTO social_posts (agency_id, client_id, caption, media_url, scheduled_for, approval_status, approval_token, feedback_text, feedback_image_markup, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	var id int64
	err := pick(r.db, tx).QueryRowContext(ctx, query,
		post.AgencyID, post.ClientID, post.Caption, post.MediaURL, post.ScheduledFor,
		post.ApprovalStatus, post.ApprovalToken, post.FeedbackText, post.FeedbackImageMarkup,
		post.CreatedBy, time.Now()).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return id, nil
}

func scanPost(scan func(dest ...interface{}) error) (*models.SocialPost, error) {
	var p models.SocialPost
	err := scan(&p.ID, &p.AgencyID, &p.ClientID, &p.Caption, &p.MediaURL, &p.ScheduledFor,
		&p.ApprovalStatus, &p.ApprovalToken, &p.FeedbackText, &p.FeedbackImageMarkup,
		&p.LikesCount, &p.CommentsCount, &p.SharesCount, &p.ViewsCount,
		&p.CreatedBy, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *socialPostRepository) GetByID(ctx context.Context, agencyID, id int64) (*models.SocialPost, error) {
	query := `SELECT ` + socialPostColumns + ` FROM social_posts WHERE agency_id = $1 AND id = $2`
	row := r.db.QueryRowContext(ctx, query, agencyID, id)

	post, err := scanPost(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return post, nil
}

func (r *socialPostRepository) GetByToken(ctx context.Context, tx *sql.Tx, token string) (*models.SocialPost, error) {
	query := `SELECT ` + socialPostColumns + ` FROM social_posts WHERE approval_token = $1`
	row := pick(r.db, tx).QueryRowContext(ctx, query, token)

	post, err := scanPost(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return post, nil
}

// SetApprovalToken mints the token exactly once: the guard keeps an already
// issued token from ever being overwritten.
func (r *socialPostRepository) SetApprovalToken(ctx context.Context, tx *sql.Tx, id int64, token string) error {
	query := `UPDATE social_posts SET approval_token = $1 WHERE id = $2 AND approval_token IS NULL`
	_, err := pick(r.db, tx).ExecContext(ctx, query, token, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

// GetApprovalToken rereads the stored token after a guarded mint so a lost
// write race still returns the winning token.
func (r *socialPostRepository) GetApprovalToken(ctx context.Context, tx *sql.Tx, id int64) (sql.NullString, error) {
	query := `SELECT approval_token FROM social_posts WHERE id = $1`

	var token sql.NullString
	err := pick(r.db, tx).QueryRowContext(ctx, query, id).Scan(&token)
	if err != nil {
		slog.Info(err.Error())
		return token, err
	}
	return token, nil
}

func (r *socialPostRepository) ApplyDecision(ctx context.Context, tx *sql.Tx, id int64, status, feedback, imageMarkup string) error {
	query := `
		UPDATE social_posts
		SET approval_status = $1,
			feedback_text = $2,
			feedback_image_markup = $3
		WHERE id = $4
	`
	_, err := pick(r.db, tx).ExecContext(ctx, query, status, feedback, imageMarkup, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *socialPostRepository) list(ctx context.Context, query string, args ...interface{}) ([]*models.SocialPost, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var posts []*models.SocialPost
	for rows.Next() {
		post, err := scanPost(rows.Scan)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func (r *socialPostRepository) ListByClient(ctx context.Context, agencyID, clientID int64) ([]*models.SocialPost, error) {
	query := `SELECT ` + socialPostColumns + ` FROM social_posts WHERE agency_id = $1 AND client_id = $2 ORDER BY created_at DESC`
	return r.list(ctx, query, agencyID, clientID)
}

func (r *socialPostRepository) ListByStatus(ctx context.Context, agencyID int64, status string) ([]*models.SocialPost, error) {
	query := `SELECT ` + socialPostColumns + ` FROM social_posts WHERE agency_id = $1 AND approval_status = $2 ORDER BY scheduled_for`
	return r.list(ctx, query, agencyID, status)
}

func (r *socialPostRepository) Remove(ctx context.Context, agencyID, id int64) error {
	query := `DELETE FROM social_posts WHERE agency_id = $1 AND id = $2`
	_, err := r.db.ExecContext(ctx, query, agencyID, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mvduarte/agencyhub/internal/apperrors"
	"github.com/mvduarte/agencyhub/internal/models"
	"github.com/mvduarte/agencyhub/internal/repository"
	"github.com/mvduarte/agencyhub/internal/transfer"
)

var validFormats = map[string]struct{}{
	models.FormatFacebookFeed:   {},
	models.FormatFacebookStory:  {},
	models.FormatInstagramFeed:  {},
	models.FormatInstagramStory: {},
	models.FormatInstagramReel:  {},
	models.FormatThreadsPost:    {},
	models.FormatYoutubeVideo:   {},
	models.FormatYoutubeShort:   {},
	models.FormatTiktokPost:     {},
	models.FormatLinkedinFeed:   {},
	models.FormatXPost:          {},
	models.FormatPinterestPin:   {},
}

type SocialPostService interface {
	Create(ctx context.Context, agencyID, userID int64, req *transfer.PostCreation) (int64, error)
	Info(ctx context.Context, agencyID, postID int64) (*models.SocialPost, []*models.SocialPostDestination, error)
	ListByClient(ctx context.Context, agencyID, clientID int64) ([]*models.SocialPost, error)
	Remove(ctx context.Context, agencyID, postID int64) error
}

type socialPostService struct {
	db       *sql.DB
	posts    repository.SocialPostRepository
	dest     repository.DestinationRepository
	accounts repository.SocialAccountRepository
	clients  repository.ClientRepository
	tasks    repository.TaskRepository
}

func NewSocialPostService(
	db *sql.DB,
	posts repository.SocialPostRepository,
	dest repository.DestinationRepository,
	accounts repository.SocialAccountRepository,
	clients repository.ClientRepository,
	tasks repository.TaskRepository) SocialPostService {
	return &socialPostService{
		db:       db,
		posts:    posts,
		dest:     dest,
		accounts: accounts,
		clients:  clients,
		tasks:    tasks,
	}
}

// Create persists a post with its destinations and its briefing card in one
// transaction. Every destination must point at a connected account of the
// same client.
func (s *socialPostService) Create(ctx context.Context, agencyID, userID int64, req *transfer.PostCreation) (int64, error) {
	if req.Caption == "" {
		return 0, apperrors.Validation("caption", "caption is required")
	}

	client, err := s.clients.GetByID(ctx, agencyID, req.ClientID)
	if err != nil {
		return 0, err
	}
	if client == nil {
		return 0, apperrors.NotFound("client")
	}

	var scheduledFor sql.NullTime
	if req.ScheduledFor != "" {
		t, err := time.Parse("2006-01-02T15:04", req.ScheduledFor)
		if err != nil {
			return 0, apperrors.Validation("scheduled_for", "time must be YYYY-MM-DDTHH:MM")
		}
		scheduledFor = sql.NullTime{Time: t, Valid: true}
	}

	for _, d := range req.Destinations {
		if _, ok := validFormats[d.FormatType]; !ok {
			return 0, apperrors.Validation("destinations", fmt.Sprintf("unknown format %q", d.FormatType))
		}
		account, err := s.accounts.GetByID(ctx, agencyID, d.AccountID)
		if err != nil {
			return 0, err
		}
		if account == nil || account.ClientID != req.ClientID {
			return 0, apperrors.Validation("destinations", fmt.Sprintf("account %d is not connected for this client", d.AccountID))
		}
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		}
	}()

	post := &models.SocialPost{
		AgencyID:       agencyID,
		ClientID:       req.ClientID,
		Caption:        req.Caption,
		MediaURL:       req.MediaURL,
		ScheduledFor:   scheduledFor,
		ApprovalStatus: models.ApprovalDraft,
		CreatedBy:      nullInt64(userID),
	}
	postID, err := s.posts.Create(ctx, tx, post)
	if err != nil {
		return 0, err
	}

	for _, d := range req.Destinations {
		dest := &models.SocialPostDestination{
			PostID:     postID,
			AccountID:  d.AccountID,
			FormatType: d.FormatType,
		}
		if _, err = s.dest.Create(ctx, tx, dest); err != nil {
			return 0, err
		}
	}

	max, err := s.tasks.MaxOrder(ctx, tx, agencyID, string(models.KanbanOperational), models.StatusBriefing)
	if err != nil {
		return 0, err
	}
	task := &models.Task{
		AgencyID:     agencyID,
		KanbanType:   models.KanbanOperational,
		Status:       models.StatusBriefing,
		SocialPostID: nullInt64(postID),
		Priority:     models.PriorityMedium,
		Title:        cardTitle(req.Caption),
		Description:  req.Caption,
		Order:        max + 1,
		CreatedBy:    nullInt64(userID),
	}
	if _, err = s.tasks.Create(ctx, tx, task); err != nil {
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}

	return postID, nil
}

// cardTitle shortens a caption to fit a board card.
func cardTitle(caption string) string {
	runes := []rune(caption)
	if len(runes) <= 60 {
		return caption
	}
	return string(runes[:57]) + "..."
}

func (s *socialPostService) Info(ctx context.Context, agencyID, postID int64) (*models.SocialPost, []*models.SocialPostDestination, error) {
	post, err := s.posts.GetByID(ctx, agencyID, postID)
	if err != nil {
		return nil, nil, err
	}
	if post == nil {
		return nil, nil, apperrors.NotFound("post")
	}

	destinations, err := s.dest.ListByPost(ctx, postID)
	if err != nil {
		return nil, nil, err
	}
	return post, destinations, nil
}

func (s *socialPostService) ListByClient(ctx context.Context, agencyID, clientID int64) ([]*models.SocialPost, error) {
	return s.posts.ListByClient(ctx, agencyID, clientID)
}

func (s *socialPostService) Remove(ctx context.Context, agencyID, postID int64) error {
	post, err := s.posts.GetByID(ctx, agencyID, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return apperrors.NotFound("post")
	}
	return s.posts.Remove(ctx, agencyID, postID)
}

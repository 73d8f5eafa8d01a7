package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/mvduarte/agencyhub/internal/apperrors"
	"github.com/mvduarte/agencyhub/internal/models"
	"github.com/mvduarte/agencyhub/internal/repository"
	"github.com/mvduarte/agencyhub/internal/transfer"
	"github.com/mvduarte/agencyhub/pkg/utils"
)

// Review actions accepted from the public approval page.
const (
	ActionApprove      = "approve"
	ActionRejectCopy   = "reject_copy"
	ActionRejectDesign = "reject_design"
)

// decisionTarget maps a review action to the post status and the mirrored
// operational task column.
type decisionTarget struct {
	postStatus string
	taskStatus string
}

var decisionTargets = map[string]decisionTarget{
	ActionApprove:      {models.ApprovalApproved, models.StatusScheduling},
	ActionRejectCopy:   {models.ApprovalCopyReview, models.StatusCopy},
	ActionRejectDesign: {models.ApprovalDesignReview, models.StatusDesign},
}

type ApprovalService interface {
	GenerateLink(ctx context.Context, agencyID, postID int64) (string, error)
	ResolveToken(ctx context.Context, token string) (*transfer.ApprovalReview, error)
	Decide(ctx context.Context, d *transfer.ApprovalDecision) error
	CreateContentTask(ctx context.Context, agencyID, userID int64, req *transfer.ContentTaskCreation) (int64, int64, error)
}

type approvalService struct {
	db      *sql.DB
	posts   repository.SocialPostRepository
	tasks   repository.TaskRepository
	clients repository.ClientRepository
	proj    repository.ProjectRepository
	ag      repository.AgencyRepository
	baseURL string
}

func NewApprovalService(
	db *sql.DB,
	posts repository.SocialPostRepository,
	tasks repository.TaskRepository,
	clients repository.ClientRepository,
	proj repository.ProjectRepository,
	ag repository.AgencyRepository,
	baseURL string) ApprovalService {
	return &approvalService{
		db:      db,
		posts:   posts,
		tasks:   tasks,
		clients: clients,
		proj:    proj,
		ag:      ag,
		baseURL: baseURL,
	}
}

// GenerateLink mints the post's approval token on first call and returns the
// same link on every call after that. Generating a link while the linked card
// sits in internal approval hands the pair to the client, so both the task
// and the post advance to client approval.
func (s *approvalService) GenerateLink(ctx context.Context, agencyID, postID int64) (string, error) {
	post, err := s.posts.GetByID(ctx, agencyID, postID)
	if err != nil {
		return "", err
	}
	if post == nil {
		return "", apperrors.NotFound("post")
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		}
	}()

	token := post.ApprovalToken
	if !token.Valid {
		var candidate string
		candidate, err = utils.GenerateApprovalToken()
		if err != nil {
			return "", err
		}
		if err = s.posts.SetApprovalToken(ctx, tx, post.ID, candidate); err != nil {
			return "", err
		}
		// Reread: a concurrent mint may have won the guarded update.
		token, err = s.posts.GetApprovalToken(ctx, tx, post.ID)
		if err != nil {
			return "", err
		}
	}

	// The board is where internal review happens, so the handoff is keyed to
	// the card's column, not the post's status.
	var task *models.Task
	task, err = s.tasks.GetBySocialPostID(ctx, tx, post.ID)
	if err != nil {
		return "", err
	}
	if task != nil && task.Status == models.StatusInternalApproval {
		if err = s.posts.ApplyDecision(ctx, tx, post.ID, models.ApprovalClient, post.FeedbackText, post.FeedbackImageMarkup); err != nil {
			return "", err
		}
		if err = s.mirrorTask(ctx, tx, post.ID, agencyID, models.StatusClientApproval); err != nil {
			return "", err
		}
	}

	if err = tx.Commit(); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/approval/%s", s.baseURL, token.String), nil
}

// ResolveToken loads the review page data for a public link. Token lookup is
// global because the reviewer may open the link from anywhere.
func (s *approvalService) ResolveToken(ctx context.Context, token string) (*transfer.ApprovalReview, error) {
	post, err := s.posts.GetByToken(ctx, nil, token)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperrors.NotFound("approval link")
	}

	review := &transfer.ApprovalReview{Post: post}

	client, err := s.clients.GetByID(ctx, post.AgencyID, post.ClientID)
	if err != nil {
		return nil, err
	}
	if client != nil {
		review.ClientName = client.Name
	}

	agency, err := s.ag.GetByID(ctx, post.AgencyID)
	if err != nil {
		return nil, err
	}
	if agency != nil {
		review.AgencyName = agency.Name
		review.AgencyLogoURL = agency.LogoURL
	}

	return review, nil
}

// Decide applies a review decision to the post and mirrors the linked task in
// the same transaction. Reapplying the same decision is a no-op rewrite, so
// double submits are harmless.
func (s *approvalService) Decide(ctx context.Context, d *transfer.ApprovalDecision) error {
	target, ok := decisionTargets[d.Action]
	if !ok {
		return apperrors.InvalidAction(d.Action)
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		}
	}()

	post, err := s.posts.GetByToken(ctx, tx, d.Token)
	if err != nil {
		return err
	}
	if post == nil {
		err = apperrors.NotFound("approval link")
		return err
	}

	feedback := post.FeedbackText
	markup := post.FeedbackImageMarkup
	if d.Action != ActionApprove {
		feedback = d.Feedback
	}
	if d.Action == ActionRejectDesign {
		markup = d.ImageData
	}

	if err = s.posts.ApplyDecision(ctx, tx, post.ID, target.postStatus, feedback, markup); err != nil {
		return err
	}
	if err = s.mirrorTask(ctx, tx, post.ID, post.AgencyID, target.taskStatus); err != nil {
		return err
	}

	return tx.Commit()
}

// mirrorTask moves the linked operational card to the given column, appending
// it at the end. A post without a linked task is degraded but not an error.
func (s *approvalService) mirrorTask(ctx context.Context, tx *sql.Tx, postID, agencyID int64, status string) error {
	task, err := s.tasks.GetBySocialPostID(ctx, tx, postID)
	if err != nil {
		return err
	}
	if task == nil {
		slog.Warn("post has no linked task, skipping board update", "post_id", postID)
		return nil
	}

	if task.Status == status {
		return nil
	}

	max, err := s.tasks.MaxOrder(ctx, tx, agencyID, string(models.KanbanOperational), status)
	if err != nil {
		return err
	}
	if err := s.tasks.UpdateStatus(ctx, tx, agencyID, task.ID, status); err != nil {
		return err
	}
	return s.tasks.UpdateOrder(ctx, tx, agencyID, task.ID, max+1)
}

// CreateContentTask creates a draft post and its briefing card atomically:
// the pair either both exist or neither does.
func (s *approvalService) CreateContentTask(ctx context.Context, agencyID, userID int64, req *transfer.ContentTaskCreation) (int64, int64, error) {
	if req.Title == "" {
		return 0, 0, apperrors.Validation("title", "title is required")
	}

	clientID := req.ClientID
	if req.ProjectID > 0 {
		project, err := s.proj.GetByID(ctx, agencyID, req.ProjectID)
		if err != nil {
			return 0, 0, err
		}
		if project == nil {
			return 0, 0, apperrors.NotFound("project")
		}
		if project.ClientID.Valid {
			clientID = project.ClientID.Int64
		}
	}
	if clientID == 0 {
		return 0, 0, apperrors.Validation("client", "a client or a client-bound project is required")
	}

	client, err := s.clients.GetByID(ctx, agencyID, clientID)
	if err != nil {
		return 0, 0, err
	}
	if client == nil {
		return 0, 0, apperrors.NotFound("client")
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to start transaction: %w", err)
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
		ClientID:       clientID,
		Caption:        req.Description,
		MediaURL:       req.MediaURL,
		ApprovalStatus: models.ApprovalDraft,
		CreatedBy:      nullInt64(userID),
	}
	postID, err := s.posts.Create(ctx, tx, post)
	if err != nil {
		return 0, 0, err
	}

	max, err := s.tasks.MaxOrder(ctx, tx, agencyID, string(models.KanbanOperational), models.StatusBriefing)
	if err != nil {
		return 0, 0, err
	}

	task := &models.Task{
		AgencyID:     agencyID,
		KanbanType:   models.KanbanOperational,
		Status:       models.StatusBriefing,
		SocialPostID: nullInt64(postID),
		ProjectID:    nullInt64(req.ProjectID),
		Priority:     models.PriorityMedium,
		Title:        req.Title,
		Description:  req.Description,
		Order:        max + 1,
		CreatedBy:    nullInt64(userID),
		AssignedTo:   nullInt64(req.AssignedTo),
	}
	taskID, err := s.tasks.Create(ctx, tx, task)
	if err != nil {
		return 0, 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, 0, err
	}

	return taskID, postID, nil
}

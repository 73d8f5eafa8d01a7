package service

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvduarte/agencyhub/internal/apperrors"
	"github.com/mvduarte/agencyhub/internal/models"
	"github.com/mvduarte/agencyhub/internal/repository"
	"github.com/mvduarte/agencyhub/internal/testutil"
	"github.com/mvduarte/agencyhub/internal/transfer"
)

const testBaseURL = "https://app.example.com"

type approvalFixture struct {
	db       *sql.DB
	agencyID int64
	clientID int64
	posts    repository.SocialPostRepository
	tasks    repository.TaskRepository
	svc      ApprovalService
}

func newApprovalFixture(t *testing.T) *approvalFixture {
	t.Helper()

	db := testutil.NewTestDB(t)
	agencyID := testutil.SeedAgency(t, db, "North Agency", "north.example.com")
	clientID := testutil.SeedClient(t, db, agencyID, "Acme Coffee")

	posts := repository.NewSocialPostRepository(db)
	tasks := repository.NewTaskRepository(db)
	clients := repository.NewClientRepository(db)
	projects := repository.NewProjectRepository(db)
	agencies := repository.NewAgencyRepository(db)

	return &approvalFixture{
		db:       db,
		agencyID: agencyID,
		clientID: clientID,
		posts:    posts,
		tasks:    tasks,
		svc:      NewApprovalService(db, posts, tasks, clients, projects, agencies, testBaseURL),
	}
}

func (f *approvalFixture) createContentTask(t *testing.T) (taskID, postID int64) {
	t.Helper()

	taskID, postID, err := f.svc.CreateContentTask(context.Background(), f.agencyID, 0, &transfer.ContentTaskCreation{
		Title:    "March reel",
		ClientID: f.clientID,
	})
	require.NoError(t, err)
	return taskID, postID
}

func (f *approvalFixture) tokenFor(t *testing.T, postID int64) string {
	t.Helper()

	link, err := f.svc.GenerateLink(context.Background(), f.agencyID, postID)
	require.NoError(t, err)
	return strings.TrimPrefix(link, testBaseURL+"/approval/")
}

func TestCreateContentTaskCreatesLinkedPair(t *testing.T) {
	f := newApprovalFixture(t)
	ctx := context.Background()

	taskID, postID := f.createContentTask(t)

	task, err := f.tasks.GetByID(ctx, f.agencyID, taskID)
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, models.KanbanOperational, task.KanbanType)
	assert.Equal(t, models.StatusBriefing, task.Status)
	assert.Equal(t, 0, task.Order)
	require.True(t, task.SocialPostID.Valid)
	assert.Equal(t, postID, task.SocialPostID.Int64)

	post, err := f.posts.GetByID(ctx, f.agencyID, postID)
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, models.ApprovalDraft, post.ApprovalStatus)
	assert.False(t, post.ApprovalToken.Valid)

	_, second, err := f.svc.CreateContentTask(ctx, f.agencyID, 0, &transfer.ContentTaskCreation{
		Title:    "April reel",
		ClientID: f.clientID,
	})
	require.NoError(t, err)

	secondTask, err := f.tasks.GetBySocialPostID(ctx, nil, second)
	require.NoError(t, err)
	assert.Equal(t, 1, secondTask.Order)
}

func TestCreateContentTaskValidation(t *testing.T) {
	f := newApprovalFixture(t)
	ctx := context.Background()

	_, _, err := f.svc.CreateContentTask(ctx, f.agencyID, 0, &transfer.ContentTaskCreation{ClientID: f.clientID})
	assert.True(t, apperrors.IsValidation(err))

	_, _, err = f.svc.CreateContentTask(ctx, f.agencyID, 0, &transfer.ContentTaskCreation{Title: "no client"})
	assert.True(t, apperrors.IsValidation(err))

	_, _, err = f.svc.CreateContentTask(ctx, f.agencyID, 0, &transfer.ContentTaskCreation{Title: "bad client", ClientID: 999})
	assert.True(t, apperrors.IsNotFound(err))

	// Failed creations must leave no half-created pair behind.
	var posts, tasks int
	require.NoError(t, f.db.QueryRow(`SELECT COUNT(*) FROM social_posts`).Scan(&posts))
	require.NoError(t, f.db.QueryRow(`SELECT COUNT(*) FROM tasks`).Scan(&tasks))
	assert.Zero(t, posts)
	assert.Zero(t, tasks)
}

func TestGenerateLinkIsStable(t *testing.T) {
	f := newApprovalFixture(t)
	ctx := context.Background()

	_, postID := f.createContentTask(t)

	first, err := f.svc.GenerateLink(ctx, f.agencyID, postID)
	require.NoError(t, err)
	second, err := f.svc.GenerateLink(ctx, f.agencyID, postID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, testBaseURL+"/approval/"))
}

func TestGenerateLinkHandsOffToClientApproval(t *testing.T) {
	f := newApprovalFixture(t)
	ctx := context.Background()

	// Normal flow: the post stays a draft while its card is worked across the
	// board into internal approval.
	taskID, postID := f.createContentTask(t)
	require.NoError(t, f.tasks.UpdateStatus(ctx, nil, f.agencyID, taskID, models.StatusInternalApproval))

	_, err := f.svc.GenerateLink(ctx, f.agencyID, postID)
	require.NoError(t, err)

	task, err := f.tasks.GetByID(ctx, f.agencyID, taskID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusClientApproval, task.Status)

	post, err := f.posts.GetByID(ctx, f.agencyID, postID)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalClient, post.ApprovalStatus)
}

func TestGenerateLinkLeavesEarlyColumnsAlone(t *testing.T) {
	f := newApprovalFixture(t)
	ctx := context.Background()

	taskID, postID := f.createContentTask(t)
	require.NoError(t, f.tasks.UpdateStatus(ctx, nil, f.agencyID, taskID, models.StatusCopy))

	_, err := f.svc.GenerateLink(ctx, f.agencyID, postID)
	require.NoError(t, err)

	task, err := f.tasks.GetByID(ctx, f.agencyID, taskID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCopy, task.Status)

	post, err := f.posts.GetByID(ctx, f.agencyID, postID)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalDraft, post.ApprovalStatus)
}

func TestDecideApproveIsIdempotent(t *testing.T) {
	f := newApprovalFixture(t)
	ctx := context.Background()

	taskID, postID := f.createContentTask(t)
	token := f.tokenFor(t, postID)

	for i := 0; i < 2; i++ {
		err := f.svc.Decide(ctx, &transfer.ApprovalDecision{Token: token, Action: ActionApprove})
		require.NoError(t, err)
	}

	post, err := f.posts.GetByID(ctx, f.agencyID, postID)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalApproved, post.ApprovalStatus)

	task, err := f.tasks.GetByID(ctx, f.agencyID, taskID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusScheduling, task.Status)
}

func TestDecideRejectDesignStoresFeedback(t *testing.T) {
	f := newApprovalFixture(t)
	ctx := context.Background()

	taskID, postID := f.createContentTask(t)
	token := f.tokenFor(t, postID)

	err := f.svc.Decide(ctx, &transfer.ApprovalDecision{
		Token:     token,
		Action:    ActionRejectDesign,
		Feedback:  "logo is too small",
		ImageData: "ZmFrZSBhbm5vdGF0ZWQgcG5n",
	})
	require.NoError(t, err)

	post, err := f.posts.GetByID(ctx, f.agencyID, postID)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalDesignReview, post.ApprovalStatus)
	assert.Equal(t, "logo is too small", post.FeedbackText)
	assert.Equal(t, "ZmFrZSBhbm5vdGF0ZWQgcG5n", post.FeedbackImageMarkup)

	task, err := f.tasks.GetByID(ctx, f.agencyID, taskID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDesign, task.Status)
}

func TestDecideRejectCopy(t *testing.T) {
	f := newApprovalFixture(t)
	ctx := context.Background()

	taskID, postID := f.createContentTask(t)
	token := f.tokenFor(t, postID)

	err := f.svc.Decide(ctx, &transfer.ApprovalDecision{
		Token:    token,
		Action:   ActionRejectCopy,
		Feedback: "wrong tone of voice",
	})
	require.NoError(t, err)

	post, err := f.posts.GetByID(ctx, f.agencyID, postID)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalCopyReview, post.ApprovalStatus)
	assert.Equal(t, "wrong tone of voice", post.FeedbackText)

	task, err := f.tasks.GetByID(ctx, f.agencyID, taskID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCopy, task.Status)
}

func TestDecideRejectsUnknownAction(t *testing.T) {
	f := newApprovalFixture(t)

	_, postID := f.createContentTask(t)
	token := f.tokenFor(t, postID)

	err := f.svc.Decide(context.Background(), &transfer.ApprovalDecision{Token: token, Action: "escalate"})
	var ia *apperrors.InvalidActionError
	assert.ErrorAs(t, err, &ia)
}

func TestDecideUnknownToken(t *testing.T) {
	f := newApprovalFixture(t)

	err := f.svc.Decide(context.Background(), &transfer.ApprovalDecision{Token: "nope", Action: ActionApprove})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDecideWithoutLinkedTask(t *testing.T) {
	f := newApprovalFixture(t)
	ctx := context.Background()

	// A post created outside the content flow has no board card.
	postID, err := f.posts.Create(ctx, nil, &models.SocialPost{
		AgencyID:       f.agencyID,
		ClientID:       f.clientID,
		Caption:        "standalone",
		ApprovalStatus: models.ApprovalInternal,
	})
	require.NoError(t, err)

	token := f.tokenFor(t, postID)

	err = f.svc.Decide(ctx, &transfer.ApprovalDecision{Token: token, Action: ActionApprove})
	require.NoError(t, err)

	post, err := f.posts.GetByID(ctx, f.agencyID, postID)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalApproved, post.ApprovalStatus)
}

func TestResolveTokenReturnsBranding(t *testing.T) {
	f := newApprovalFixture(t)
	ctx := context.Background()

	_, postID := f.createContentTask(t)
	token := f.tokenFor(t, postID)

	review, err := f.svc.ResolveToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, postID, review.Post.ID)
	assert.Equal(t, "Acme Coffee", review.ClientName)
	assert.Equal(t, "North Agency", review.AgencyName)

	_, err = f.svc.ResolveToken(ctx, "missing")
	assert.True(t, apperrors.IsNotFound(err))
}

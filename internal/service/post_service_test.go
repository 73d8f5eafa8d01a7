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

type postFixture struct {
	db       *sql.DB
	agencyID int64
	clientID int64
	accounts repository.SocialAccountRepository
	dest     repository.DestinationRepository
	tasks    repository.TaskRepository
	svc      SocialPostService
}

func newPostFixture(t *testing.T) *postFixture {
	t.Helper()

	db := testutil.NewTestDB(t)
	agencyID := testutil.SeedAgency(t, db, "North Agency", "north.example.com")
	clientID := testutil.SeedClient(t, db, agencyID, "Acme Coffee")

	posts := repository.NewSocialPostRepository(db)
	dest := repository.NewDestinationRepository(db)
	accounts := repository.NewSocialAccountRepository(db)
	clients := repository.NewClientRepository(db)
	tasks := repository.NewTaskRepository(db)

	return &postFixture{
		db:       db,
		agencyID: agencyID,
		clientID: clientID,
		accounts: accounts,
		dest:     dest,
		tasks:    tasks,
		svc:      NewSocialPostService(db, posts, dest, accounts, clients, tasks),
	}
}

func (f *postFixture) connectAccount(t *testing.T, clientID int64) int64 {
	t.Helper()

	id, err := f.accounts.Upsert(context.Background(), nil, &models.SocialAccount{
		AgencyID:  f.agencyID,
		ClientID:  clientID,
		Platform:  models.PlatformInstagram,
		AccountID: "17841400000000001",
		IsActive:  true,
	})
	require.NoError(t, err)
	return id
}

func TestPostCreateAddsBriefingCard(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()

	postID, err := f.svc.Create(ctx, f.agencyID, 0, &transfer.PostCreation{
		ClientID: f.clientID,
		Caption:  "Spring menu teaser",
	})
	require.NoError(t, err)

	task, err := f.tasks.GetBySocialPostID(ctx, nil, postID)
	require.NoError(t, err)
	require.NotNil(t, task)
	assert.Equal(t, models.StatusBriefing, task.Status)
	assert.Equal(t, 0, task.Order)
	assert.Equal(t, "Spring menu teaser", task.Title)
}

func TestPostCreateWithDestinations(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()

	accountID := f.connectAccount(t, f.clientID)

	postID, err := f.svc.Create(ctx, f.agencyID, 0, &transfer.PostCreation{
		ClientID: f.clientID,
		Caption:  "Reel for launch week",
		Destinations: []transfer.PostDestinationIn{
			{AccountID: accountID, FormatType: models.FormatInstagramReel},
		},
	})
	require.NoError(t, err)

	destinations, err := f.dest.ListByPost(ctx, postID)
	require.NoError(t, err)
	require.Len(t, destinations, 1)
	assert.Equal(t, models.FormatInstagramReel, destinations[0].FormatType)
}

func TestPostCreateRejectsBadDestinations(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()

	accountID := f.connectAccount(t, f.clientID)

	_, err := f.svc.Create(ctx, f.agencyID, 0, &transfer.PostCreation{
		ClientID: f.clientID,
		Caption:  "x",
		Destinations: []transfer.PostDestinationIn{
			{AccountID: accountID, FormatType: "hologram"},
		},
	})
	assert.True(t, apperrors.IsValidation(err))

	// An account connected for a different client is not a valid destination.
	other := testutil.SeedClient(t, f.db, f.agencyID, "Bravo Gym")
	otherAccount := f.connectAccount(t, other)
	_, err = f.svc.Create(ctx, f.agencyID, 0, &transfer.PostCreation{
		ClientID: f.clientID,
		Caption:  "x",
		Destinations: []transfer.PostDestinationIn{
			{AccountID: otherAccount, FormatType: models.FormatInstagramFeed},
		},
	})
	assert.True(t, apperrors.IsValidation(err))

	var posts int
	require.NoError(t, f.db.QueryRow(`SELECT COUNT(*) FROM social_posts`).Scan(&posts))
	assert.Zero(t, posts)
}

func TestPostCreateValidation(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.agencyID, 0, &transfer.PostCreation{ClientID: f.clientID})
	assert.True(t, apperrors.IsValidation(err))

	_, err = f.svc.Create(ctx, f.agencyID, 0, &transfer.PostCreation{ClientID: 99, Caption: "x"})
	assert.True(t, apperrors.IsNotFound(err))

	_, err = f.svc.Create(ctx, f.agencyID, 0, &transfer.PostCreation{
		ClientID: f.clientID, Caption: "x", ScheduledFor: "tomorrow",
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestCardTitleTruncation(t *testing.T) {
	assert.Equal(t, "short caption", cardTitle("short caption"))

	long := strings.Repeat("caption ", 20)
	title := cardTitle(long)
	assert.Len(t, []rune(title), 60)
	assert.True(t, strings.HasSuffix(title, "..."))
}

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvduarte/agencyhub/internal/models"
	"github.com/mvduarte/agencyhub/internal/testutil"
)

func TestSocialAccountUpsert(t *testing.T) {
	db := testutil.NewTestDB(t)
	agencyID := testutil.SeedAgency(t, db, "North Agency", "north.example.com")
	clientID := testutil.SeedClient(t, db, agencyID, "Acme Coffee")

	repo := NewSocialAccountRepository(db)
	ctx := context.Background()

	first, err := repo.Upsert(ctx, nil, &models.SocialAccount{
		AgencyID:    agencyID,
		ClientID:    clientID,
		Platform:    models.PlatformInstagram,
		AccountID:   "17841400000000001",
		AccountName: "acme.coffee",
		AccessToken: "sealed-v1",
		IsActive:    true,
	})
	require.NoError(t, err)

	// Reconnecting the same provider account refreshes the row in place.
	second, err := repo.Upsert(ctx, nil, &models.SocialAccount{
		AgencyID:    agencyID,
		ClientID:    clientID,
		Platform:    models.PlatformInstagram,
		AccountID:   "17841400000000001",
		AccountName: "acme.coffee.renamed",
		AccessToken: "sealed-v2",
		IsActive:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, first, second)

	accounts, err := repo.ListByClient(ctx, agencyID, clientID)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "acme.coffee.renamed", accounts[0].AccountName)
	assert.Equal(t, "sealed-v2", accounts[0].AccessToken)
}

func TestSocialAccountTenantScope(t *testing.T) {
	db := testutil.NewTestDB(t)
	north := testutil.SeedAgency(t, db, "North Agency", "north.example.com")
	south := testutil.SeedAgency(t, db, "South Agency", "south.example.com")
	clientID := testutil.SeedClient(t, db, north, "Acme Coffee")

	repo := NewSocialAccountRepository(db)
	ctx := context.Background()

	id, err := repo.Upsert(ctx, nil, &models.SocialAccount{
		AgencyID:  north,
		ClientID:  clientID,
		Platform:  models.PlatformFacebook,
		AccountID: "page-1",
		IsActive:  true,
	})
	require.NoError(t, err)

	account, err := repo.GetByID(ctx, south, id)
	require.NoError(t, err)
	assert.Nil(t, account)

	require.NoError(t, repo.Remove(ctx, south, id))
	account, err = repo.GetByID(ctx, north, id)
	require.NoError(t, err)
	assert.NotNil(t, account)
}

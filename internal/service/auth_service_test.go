package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvduarte/agencyhub/internal/apperrors"
	"github.com/mvduarte/agencyhub/internal/repository"
	"github.com/mvduarte/agencyhub/internal/testutil"
	"github.com/mvduarte/agencyhub/internal/transfer"
	"github.com/mvduarte/agencyhub/pkg/utils"
)

const testSecretKey = "0123456789abcdef0123456789abcdef"

func TestLogin(t *testing.T) {
	db := testutil.NewTestDB(t)
	north := testutil.SeedAgency(t, db, "North Agency", "north.example.com")
	south := testutil.SeedAgency(t, db, "South Agency", "south.example.com")
	testutil.SeedUser(t, db, north, "ana", "hunter2", false)
	testutil.SeedUser(t, db, south, "root", "sup3ruser", true)

	svc := NewAuthService(repository.NewUserRepository(db), testSecretKey)
	ctx := context.Background()

	t.Run("valid credentials on own tenant", func(t *testing.T) {
		token, user, err := svc.Login(ctx, north, &transfer.LoginRequest{Username: "ana", Password: "hunter2"})
		require.NoError(t, err)
		assert.Equal(t, "ana", user.Username)

		claims, err := utils.ValidateSessionToken(testSecretKey, token)
		require.NoError(t, err)
		assert.False(t, claims.Superuser)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, north, &transfer.LoginRequest{Username: "ana", Password: "wrong"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, err := svc.Login(ctx, north, &transfer.LoginRequest{Username: "ghost", Password: "x"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("valid credentials on foreign tenant", func(t *testing.T) {
		// The password is correct, so the rejection names the tenant,
		// not the credentials.
		_, _, err := svc.Login(ctx, south, &transfer.LoginRequest{Username: "ana", Password: "hunter2"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidTenant)
	})

	t.Run("superuser on any tenant", func(t *testing.T) {
		token, user, err := svc.Login(ctx, north, &transfer.LoginRequest{Username: "root", Password: "sup3ruser"})
		require.NoError(t, err)
		assert.True(t, user.IsSuperuser)

		claims, err := utils.ValidateSessionToken(testSecretKey, token)
		require.NoError(t, err)
		assert.True(t, claims.Superuser)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, _, err := svc.Login(ctx, north, &transfer.LoginRequest{Username: "ana"})
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestLoginInactiveUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	agency := testutil.SeedAgency(t, db, "North Agency", "north.example.com")
	userID := testutil.SeedUser(t, db, agency, "ana", "hunter2", false)

	_, err := db.Exec(`UPDATE users SET is_active = FALSE WHERE id = $1`, userID)
	require.NoError(t, err)

	svc := NewAuthService(repository.NewUserRepository(db), testSecretKey)
	_, _, err = svc.Login(context.Background(), agency, &transfer.LoginRequest{Username: "ana", Password: "hunter2"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

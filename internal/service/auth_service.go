package service

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mvduarte/agencyhub/internal/apperrors"
	"github.com/mvduarte/agencyhub/internal/models"
	"github.com/mvduarte/agencyhub/internal/repository"
	"github.com/mvduarte/agencyhub/internal/transfer"
	"github.com/mvduarte/agencyhub/pkg/utils"
)

const sessionDuration = 7 * 24 * time.Hour

type AuthService interface {
	Login(ctx context.Context, agencyID int64, req *transfer.LoginRequest) (string, *models.User, error)
	UserByID(ctx context.Context, userID int64) (*models.User, error)
}

type authService struct {
	users     repository.UserRepository
	secretKey string
}

func NewAuthService(users repository.UserRepository, secretKey string) AuthService {
	return &authService{users: users, secretKey: secretKey}
}

// Login checks credentials first and the tenant second: a valid password on
// the wrong agency's domain is rejected as a tenant mismatch, not as bad
// credentials. Superusers may log in on any domain.
func (s *authService) Login(ctx context.Context, agencyID int64, req *transfer.LoginRequest) (string, *models.User, error) {
	if req.Username == "" || req.Password == "" {
		return "", nil, apperrors.Validation("username", "username and password are required")
	}

	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if user.AgencyID != agencyID && !user.IsSuperuser {
		slog.Info("login rejected for tenant mismatch", "username", req.Username, "agency_id", agencyID)
		return "", nil, apperrors.ErrInvalidTenant
	}

	claims := transfer.SessionClaims{
		UserID:    strconv.FormatInt(user.ID, 10),
		AgencyID:  strconv.FormatInt(agencyID, 10),
		Superuser: user.IsSuperuser,
	}
	token, err := utils.GenerateSessionToken(s.secretKey, claims, sessionDuration)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *authService) UserByID(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound("user")
	}
	return user, nil
}

package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/mvduarte/agencyhub/internal/apperrors"
	"github.com/mvduarte/agencyhub/internal/models"
	"github.com/mvduarte/agencyhub/internal/repository"
	"github.com/mvduarte/agencyhub/internal/transfer"
)

type UserService interface {
	Team(ctx context.Context, agencyID int64, superuser bool) ([]*models.User, error)
	Save(ctx context.Context, agencyID int64, actor *models.User, req *transfer.UserUpsert) (int64, error)
	Deactivate(ctx context.Context, agencyID, userID int64) error
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

// Team lists the agency's members. Superusers get every user across agencies.
func (s *userService) Team(ctx context.Context, agencyID int64, superuser bool) ([]*models.User, error) {
	if superuser {
		return s.users.ListAll(ctx)
	}
	return s.users.ListByAgency(ctx, agencyID)
}

// Save creates or updates a team member. Only admins manage the team, and
// only superusers may move a user across agencies.
func (s *userService) Save(ctx context.Context, agencyID int64, actor *models.User, req *transfer.UserUpsert) (int64, error) {
	if actor.Role != models.RoleAdmin && !actor.IsSuperuser {
		return 0, apperrors.InvalidAction("manage_team")
	}

	targetAgency := agencyID
	if req.AgencyID > 0 && actor.IsSuperuser {
		targetAgency = req.AgencyID
	}

	role := req.Role
	switch role {
	case "":
		role = models.RoleEditor
	case models.RoleAdmin, models.RoleEditor, models.RoleViewer:
	default:
		return 0, apperrors.Validation("role", "unknown role")
	}

	if req.UserID == 0 {
		if req.Username == "" || req.Password == "" {
			return 0, apperrors.Validation("username", "username and password are required")
		}
		taken, err := s.users.UsernameTaken(ctx, req.Username, 0)
		if err != nil {
			return 0, err
		}
		if taken {
			return 0, apperrors.Validation("username", "username is already in use")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return 0, err
		}

		user := &models.User{
			AgencyID:     targetAgency,
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: string(hash),
			FirstName:    req.FirstName,
			LastName:     req.LastName,
			Role:         role,
			IsActive:     true,
		}
		return s.users.Create(ctx, nil, user)
	}

	user, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		return 0, err
	}
	if user == nil || (user.AgencyID != agencyID && !actor.IsSuperuser) {
		return 0, apperrors.NotFound("user")
	}

	if req.Username != "" && req.Username != user.Username {
		taken, err := s.users.UsernameTaken(ctx, req.Username, user.ID)
		if err != nil {
			return 0, err
		}
		if taken {
			return 0, apperrors.Validation("username", "username is already in use")
		}
		user.Username = req.Username
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return 0, err
		}
		user.PasswordHash = string(hash)
	}
	user.Email = req.Email
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Role = role
	user.IsActive = req.IsActive
	if actor.IsSuperuser {
		user.AgencyID = targetAgency
	}

	if err := s.users.Update(ctx, user); err != nil {
		return 0, err
	}
	return user.ID, nil
}

// Deactivate keeps the row so history stays attributed.
func (s *userService) Deactivate(ctx context.Context, agencyID, userID int64) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil || user.AgencyID != agencyID {
		return apperrors.NotFound("user")
	}

	user.IsActive = false
	return s.users.Update(ctx, user)
}

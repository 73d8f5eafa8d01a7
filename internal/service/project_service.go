package service

import (
	"context"

	"github.com/mvduarte/agencyhub/internal/apperrors"
	"github.com/mvduarte/agencyhub/internal/models"
	"github.com/mvduarte/agencyhub/internal/repository"
	"github.com/mvduarte/agencyhub/internal/transfer"
)

type ProjectService interface {
	Create(ctx context.Context, agencyID int64, req *transfer.ProjectCreation) (int64, error)
	Info(ctx context.Context, agencyID, projectID int64) (*models.Project, error)
	List(ctx context.Context, agencyID int64) ([]*models.Project, error)
	ListByClient(ctx context.Context, agencyID, clientID int64) ([]*models.Project, error)
	SetStatus(ctx context.Context, agencyID, projectID int64, status string) error
	Remove(ctx context.Context, agencyID, projectID int64) error
}

type projectService struct {
	proj    repository.ProjectRepository
	clients repository.ClientRepository
}

func NewProjectService(proj repository.ProjectRepository, clients repository.ClientRepository) ProjectService {
	return &projectService{proj: proj, clients: clients}
}

func (s *projectService) Create(ctx context.Context, agencyID int64, req *transfer.ProjectCreation) (int64, error) {
	if req.Name == "" {
		return 0, apperrors.Validation("name", "project name is required")
	}

	if req.ClientID > 0 {
		client, err := s.clients.GetByID(ctx, agencyID, req.ClientID)
		if err != nil {
			return 0, err
		}
		if client == nil {
			return 0, apperrors.NotFound("client")
		}
	}

	project := &models.Project{
		AgencyID:    agencyID,
		ClientID:    nullInt64(req.ClientID),
		Name:        req.Name,
		Description: req.Description,
		Status:      models.ProjectInProgress,
		StartDate:   nullString(req.StartDate),
		DueDate:     nullString(req.DueDate),
	}
	return s.proj.Create(ctx, nil, project)
}

func (s *projectService) Info(ctx context.Context, agencyID, projectID int64) (*models.Project, error) {
	project, err := s.proj.GetByID(ctx, agencyID, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, apperrors.NotFound("project")
	}
	return project, nil
}

func (s *projectService) List(ctx context.Context, agencyID int64) ([]*models.Project, error) {
	return s.proj.List(ctx, agencyID)
}

func (s *projectService) ListByClient(ctx context.Context, agencyID, clientID int64) ([]*models.Project, error) {
	return s.proj.ListByClient(ctx, agencyID, clientID)
}

func (s *projectService) SetStatus(ctx context.Context, agencyID, projectID int64, status string) error {
	switch status {
	case models.ProjectInProgress, models.ProjectFinished, models.ProjectPaused:
	default:
		return apperrors.Validation("status", "unknown project status")
	}

	if _, err := s.Info(ctx, agencyID, projectID); err != nil {
		return err
	}
	return s.proj.UpdateStatus(ctx, agencyID, projectID, status)
}

func (s *projectService) Remove(ctx context.Context, agencyID, projectID int64) error {
	if _, err := s.Info(ctx, agencyID, projectID); err != nil {
		return err
	}
	return s.proj.Remove(ctx, agencyID, projectID)
}

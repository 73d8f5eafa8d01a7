package service

import (
	"context"

	"github.com/mvduarte/agencyhub/internal/models"
	"github.com/mvduarte/agencyhub/internal/repository"
	"github.com/mvduarte/agencyhub/internal/transfer"
)

type DashboardService interface {
	Summary(ctx context.Context, agencyID int64) (*transfer.DashboardSummary, error)
}

type dashboardService struct {
	clients repository.ClientRepository
	proj    repository.ProjectRepository
	posts   repository.SocialPostRepository
	tasks   repository.TaskRepository
}

func NewDashboardService(
	clients repository.ClientRepository,
	proj repository.ProjectRepository,
	posts repository.SocialPostRepository,
	tasks repository.TaskRepository) DashboardService {
	return &dashboardService{clients: clients, proj: proj, posts: posts, tasks: tasks}
}

func (s *dashboardService) Summary(ctx context.Context, agencyID int64) (*transfer.DashboardSummary, error) {
	summary := &transfer.DashboardSummary{}

	clients, err := s.clients.List(ctx, agencyID)
	if err != nil {
		return nil, err
	}
	for _, c := range clients {
		if c.IsActive {
			summary.ActiveClients++
		}
	}

	projects, err := s.proj.List(ctx, agencyID)
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		if p.Status == models.ProjectInProgress {
			summary.ActiveProjects++
		}
	}

	for _, status := range []string{models.ApprovalInternal, models.ApprovalClient} {
		posts, err := s.posts.ListByStatus(ctx, agencyID, status)
		if err != nil {
			return nil, err
		}
		summary.PendingApprovals += len(posts)
	}

	counts, err := s.tasks.CountByStatus(ctx, agencyID, string(models.KanbanOperational))
	if err != nil {
		return nil, err
	}
	summary.TasksByStatus = counts

	return summary, nil
}

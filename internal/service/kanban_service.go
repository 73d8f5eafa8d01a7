package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mvduarte/agencyhub/internal/apperrors"
	"github.com/mvduarte/agencyhub/internal/models"
	"github.com/mvduarte/agencyhub/internal/repository"
	"github.com/mvduarte/agencyhub/internal/transfer"
)

type KanbanService interface {
	Board(ctx context.Context, agencyID int64, kanbanType string) ([]*transfer.BoardColumn, error)
	CreateTask(ctx context.Context, agencyID, userID int64, req *transfer.TaskCreation) (int64, error)
	TaskInfo(ctx context.Context, agencyID, taskID int64) (*models.Task, error)
	UpdateTask(ctx context.Context, agencyID int64, taskID int64, req *transfer.TaskCreation) error
	MoveTask(ctx context.Context, agencyID int64, req *transfer.TaskMove) error
	RemoveTask(ctx context.Context, agencyID, taskID int64) error
}

type kanbanService struct {
	db    *sql.DB
	tasks repository.TaskRepository
	users repository.UserRepository
	proj  repository.ProjectRepository
}

func NewKanbanService(db *sql.DB, tasks repository.TaskRepository, users repository.UserRepository, proj repository.ProjectRepository) KanbanService {
	return &kanbanService{db: db, tasks: tasks, users: users, proj: proj}
}

// Board returns every rendered column of a board with its cards sorted.
// Published cards are archived off the operational board.
func (s *kanbanService) Board(ctx context.Context, agencyID int64, kanbanType string) ([]*transfer.BoardColumn, error) {
	kt := models.KanbanType(kanbanType)
	if !kt.Valid() {
		return nil, apperrors.Validation("kanban_type", "unknown board type")
	}

	tasks, err := s.tasks.ListBoard(ctx, agencyID, kanbanType)
	if err != nil {
		return nil, err
	}

	users, err := s.users.ListByAgency(ctx, agencyID)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]*models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	columns := make([]*transfer.BoardColumn, 0)
	byStatus := make(map[string]*transfer.BoardColumn)
	for _, status := range models.BoardColumns(kt) {
		col := &transfer.BoardColumn{Status: status, Tasks: []*transfer.TaskCard{}}
		columns = append(columns, col)
		byStatus[status] = col
	}

	for _, t := range tasks {
		col, ok := byStatus[t.Status]
		if !ok {
			continue
		}
		card := &transfer.TaskCard{Task: t}
		if t.AssignedTo.Valid {
			if u, ok := byID[t.AssignedTo.Int64]; ok {
				card.AssigneeName = u.FirstName + " " + u.LastName
				card.AssigneeInitials = u.Initials()
			}
		}
		col.Tasks = append(col.Tasks, card)
	}

	return columns, nil
}

// CreateTask appends a new card at the end of the board's first column.
func (s *kanbanService) CreateTask(ctx context.Context, agencyID, userID int64, req *transfer.TaskCreation) (int64, error) {
	if req.Title == "" {
		return 0, apperrors.Validation("title", "title is required")
	}
	kt := models.KanbanType(req.KanbanType)
	if !kt.Valid() {
		return 0, apperrors.Validation("kanban_type", "unknown board type")
	}

	status := models.FirstColumn(kt)
	max, err := s.tasks.MaxOrder(ctx, nil, agencyID, req.KanbanType, status)
	if err != nil {
		return 0, err
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	task := &models.Task{
		AgencyID:    agencyID,
		KanbanType:  kt,
		Status:      status,
		ProjectID:   nullInt64(req.ProjectID),
		Priority:    priority,
		Title:       req.Title,
		Description: req.Description,
		Order:       max + 1,
		CreatedBy:   nullInt64(userID),
		AssignedTo:  nullInt64(req.AssignedTo),
	}
	return s.tasks.Create(ctx, nil, task)
}

func (s *kanbanService) TaskInfo(ctx context.Context, agencyID, taskID int64) (*models.Task, error) {
	task, err := s.tasks.GetByID(ctx, agencyID, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperrors.NotFound("task")
	}
	return task, nil
}

func (s *kanbanService) UpdateTask(ctx context.Context, agencyID int64, taskID int64, req *transfer.TaskCreation) error {
	task, err := s.tasks.GetByID(ctx, agencyID, taskID)
	if err != nil {
		return err
	}
	if task == nil {
		return apperrors.NotFound("task")
	}

	if req.Title != "" {
		task.Title = req.Title
	}
	task.Description = req.Description
	if req.Priority != "" {
		task.Priority = req.Priority
	}
	task.AssignedTo = nullInt64(req.AssignedTo)
	task.ProjectID = nullInt64(req.ProjectID)

	return s.tasks.Update(ctx, agencyID, task)
}

// MoveTask sets the card's column and rewrites the destination column's order
// from the caller's list. The list is trusted as the full ordering of the
// destination: ids are written their index as sort_order. The source column is
// left with a gap, which is fine since sort is relative.
func (s *kanbanService) MoveTask(ctx context.Context, agencyID int64, req *transfer.TaskMove) error {
	task, err := s.tasks.GetByID(ctx, agencyID, req.TaskID)
	if err != nil {
		return err
	}
	if task == nil {
		return apperrors.NotFound("task")
	}

	if !models.ValidColumn(task.KanbanType, req.NewStatus) {
		return apperrors.InvalidAction(fmt.Sprintf("move to %s", req.NewStatus))
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

	if err = s.tasks.UpdateStatus(ctx, tx, agencyID, task.ID, req.NewStatus); err != nil {
		return err
	}

	for idx, id := range req.NewOrderList {
		if err = s.tasks.UpdateOrder(ctx, tx, agencyID, id, idx); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *kanbanService) RemoveTask(ctx context.Context, agencyID, taskID int64) error {
	task, err := s.tasks.GetByID(ctx, agencyID, taskID)
	if err != nil {
		return err
	}
	if task == nil {
		return apperrors.NotFound("task")
	}
	return s.tasks.Remove(ctx, agencyID, taskID)
}

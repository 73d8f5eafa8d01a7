package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mvduarte/agencyhub/internal/apperrors"
	"github.com/mvduarte/agencyhub/internal/models"
	"github.com/mvduarte/agencyhub/internal/repository"
	"github.com/mvduarte/agencyhub/internal/transfer"
)

type CalendarService interface {
	Create(ctx context.Context, agencyID int64, req *transfer.CalendarEventCreation) (int64, error)
	Month(ctx context.Context, agencyID int64, year int, month time.Month) ([]*models.CalendarEvent, error)
	ListByClient(ctx context.Context, agencyID, clientID int64) ([]*models.CalendarEvent, error)
	Update(ctx context.Context, agencyID, eventID int64, req *transfer.CalendarEventCreation) error
	SetStatus(ctx context.Context, agencyID, eventID int64, status string) error
	Remove(ctx context.Context, agencyID, eventID int64) error
}

type calendarService struct {
	events  repository.CalendarEventRepository
	clients repository.ClientRepository
}

func NewCalendarService(events repository.CalendarEventRepository, clients repository.ClientRepository) CalendarService {
	return &calendarService{events: events, clients: clients}
}

func (s *calendarService) Create(ctx context.Context, agencyID int64, req *transfer.CalendarEventCreation) (int64, error) {
	if req.Title == "" {
		return 0, apperrors.Validation("title", "title is required")
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return 0, apperrors.Validation("date", "date must be YYYY-MM-DD")
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

	event := &models.CalendarEvent{
		AgencyID: agencyID,
		ClientID: nullInt64(req.ClientID),
		Title:    req.Title,
		Date:     req.Date,
		Time:     req.Time,
		Platform: req.Platform,
		PostType: req.PostType,
		Status:   models.EventDraft,
		Caption:  req.Caption,
	}
	return s.events.Create(ctx, event)
}

// Month lists a calendar month's events. Bounds are computed in Go and
// compared as strings against the stored YYYY-MM-DD dates.
func (s *calendarService) Month(ctx context.Context, agencyID int64, year int, month time.Month) ([]*models.CalendarEvent, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return s.events.ListByRange(ctx, agencyID, first.Format("2006-01-02"), last.Format("2006-01-02"))
}

func (s *calendarService) ListByClient(ctx context.Context, agencyID, clientID int64) ([]*models.CalendarEvent, error) {
	return s.events.ListByClient(ctx, agencyID, clientID)
}

func (s *calendarService) info(ctx context.Context, agencyID, eventID int64) (*models.CalendarEvent, error) {
	event, err := s.events.GetByID(ctx, agencyID, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperrors.NotFound("event")
	}
	return event, nil
}

func (s *calendarService) Update(ctx context.Context, agencyID, eventID int64, req *transfer.CalendarEventCreation) error {
	event, err := s.info(ctx, agencyID, eventID)
	if err != nil {
		return err
	}

	if req.Title != "" {
		event.Title = req.Title
	}
	if req.Date != "" {
		if _, err := time.Parse("2006-01-02", req.Date); err != nil {
			return apperrors.Validation("date", "date must be YYYY-MM-DD")
		}
		event.Date = req.Date
	}
	event.Time = req.Time
	event.ClientID = nullInt64(req.ClientID)
	event.Platform = req.Platform
	event.PostType = req.PostType
	event.Caption = req.Caption

	return s.events.Update(ctx, agencyID, event)
}

func (s *calendarService) SetStatus(ctx context.Context, agencyID, eventID int64, status string) error {
	switch status {
	case models.EventDraft, models.EventPending, models.EventScheduled, models.EventPublished:
	default:
		return apperrors.Validation("status", fmt.Sprintf("unknown event status %q", status))
	}

	event, err := s.info(ctx, agencyID, eventID)
	if err != nil {
		return err
	}
	event.Status = status
	return s.events.Update(ctx, agencyID, event)
}

func (s *calendarService) Remove(ctx context.Context, agencyID, eventID int64) error {
	if _, err := s.info(ctx, agencyID, eventID); err != nil {
		return err
	}
	return s.events.Remove(ctx, agencyID, eventID)
}

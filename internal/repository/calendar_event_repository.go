package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/mvduarte/agencyhub/internal/models"
)

type CalendarEventRepository interface {
	Create(ctx context.Context, event *models.CalendarEvent) (int64, error)
	GetByID(ctx context.Context, agencyID, id int64) (*models.CalendarEvent, error)
	// ListByRange filters on the stored YYYY-MM-DD strings, bounds inclusive.
	ListByRange(ctx context.Context, agencyID int64, from, to string) ([]*models.CalendarEvent, error)
	ListByClient(ctx context.Context, agencyID, clientID int64) ([]*models.CalendarEvent, error)
	Update(ctx context.Context, agencyID int64, event *models.CalendarEvent) error
	Remove(ctx context.Context, agencyID, id int64) error
}

type calendarEventRepository struct {
	db *sql.DB
}

func NewCalendarEventRepository(db *sql.DB) CalendarEventRepository {
	return &calendarEventRepository{db: db}
}

const calendarEventColumns = `id, agency_id, client_id, title, event_date, event_time, platform, post_type, status, caption, media_url, created_at`

func (r *calendarEventRepository) Create(ctx context.Context, event *models.CalendarEvent) (int64, error) {
	query := `
		INSERT INTO calendar_events (agency_id, client_id, title, event_date, event_time, platform, post_type, status, caption, media_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		event.AgencyID, event.ClientID, event.Title, event.Date, event.Time,
		event.Platform, event.PostType, event.Status, event.Caption,
		event.MediaURL, time.Now()).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return id, nil
}

func scanEvent(scan func(dest ...interface{}) error) (*models.CalendarEvent, error) {
	var e models.CalendarEvent
	err := scan(&e.ID, &e.AgencyID, &e.ClientID, &e.Title, &e.Date, &e.Time,
		&e.Platform, &e.PostType, &e.Status, &e.Caption, &e.MediaURL, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *calendarEventRepository) GetByID(ctx context.Context, agencyID, id int64) (*models.CalendarEvent, error) {
	query := `SELECT ` + calendarEventColumns + ` FROM calendar_events WHERE agency_id = $1 AND id = $2`
	row := r.db.QueryRowContext(ctx, query, agencyID, id)

	event, err := scanEvent(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return event, nil
}

func (r *calendarEventRepository) list(ctx context.Context, query string, args ...interface{}) ([]*models.CalendarEvent, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var events []*models.CalendarEvent
	for rows.Next() {
		event, err := scanEvent(rows.Scan)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

func (r *calendarEventRepository) ListByRange(ctx context.Context, agencyID int64, from, to string) ([]*models.CalendarEvent, error) {
	query := `SELECT ` + calendarEventColumns + ` FROM calendar_events WHERE agency_id = $1 AND event_date >= $2 AND event_date <= $3 ORDER BY event_date, event_time`
	return r.list(ctx, query, agencyID, from, to)
}

func (r *calendarEventRepository) ListByClient(ctx context.Context, agencyID, clientID int64) ([]*models.CalendarEvent, error) {
	query := `SELECT ` + calendarEventColumns + ` FROM calendar_events WHERE agency_id = $1 AND client_id = $2 ORDER BY event_date, event_time`
	return r.list(ctx, query, agencyID, clientID)
}

func (r *calendarEventRepository) Update(ctx context.Context, agencyID int64, event *models.CalendarEvent) error {
	query := `
		UPDATE calendar_events
		SET client_id = $1,
			title = $2,
			event_date = $3,
			event_time = $4,
			platform = $5,
			post_type = $6,
			status = $7,
			caption = $8,
			media_url = $9
		WHERE agency_id = $10 AND id = $11
	`
	_, err := r.db.ExecContext(ctx, query,
		event.ClientID, event.Title, event.Date, event.Time, event.Platform,
		event.PostType, event.Status, event.Caption, event.MediaURL,
		agencyID, event.ID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *calendarEventRepository) Remove(ctx context.Context, agencyID, id int64) error {
	query := `DELETE FROM calendar_events WHERE agency_id = $1 AND id = $2`
	_, err := r.db.ExecContext(ctx, query, agencyID, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

package models

import (
	"database/sql"
	"time"
)

const (
	EventDraft     = "Draft"
	EventPending   = "Pending"
	EventScheduled = "Scheduled"
	EventPublished = "Published"
)

// CalendarEvent is a scheduled content slot, independent of the kanban and
// approval flows. Date is "YYYY-MM-DD", Time "HH:MM".
type CalendarEvent struct {
	ID        int64         `db:"id" json:"id"`
	AgencyID  int64         `db:"agency_id" json:"agency_id"`
	ClientID  sql.NullInt64 `db:"client_id" json:"client_id"`
	Title     string        `db:"title" json:"title"`
	Date      string        `db:"event_date" json:"date"`
	Time      string        `db:"event_time" json:"time"`
	Platform  string        `db:"platform" json:"platform"`
	PostType  string        `db:"post_type" json:"post_type"`
	Status    string        `db:"status" json:"status"`
	Caption   string        `db:"caption" json:"caption"`
	MediaURL  string        `db:"media_url" json:"media_url"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
}

package models

import (
	"database/sql"
	"time"
)

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Task is a kanban card. Order is the sole sort key within a
// (kanban_type, status) column, dense from 0 after a move rewrites the
// destination column. SocialPostID is a soft backlink: deleting either side
// only nulls the reference.
type Task struct {
	ID           int64          `db:"id" json:"id"`
	AgencyID     int64          `db:"agency_id" json:"agency_id"`
	KanbanType   KanbanType     `db:"kanban_type" json:"kanban_type"`
	Status       string         `db:"status" json:"status"`
	SocialPostID sql.NullInt64  `db:"social_post_id" json:"social_post_id"`
	ProjectID    sql.NullInt64  `db:"project_id" json:"project_id"`
	Priority     string         `db:"priority" json:"priority"`
	Title        string         `db:"title" json:"title"`
	Description  string         `db:"description" json:"description"`
	Order        int            `db:"sort_order" json:"order"`
	DueDate      sql.NullString `db:"due_date" json:"due_date"`
	CreatedBy    sql.NullInt64  `db:"created_by" json:"created_by"`
	AssignedTo   sql.NullInt64  `db:"assigned_to" json:"assigned_to"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}

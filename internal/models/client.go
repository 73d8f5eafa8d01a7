package models

import (
	"database/sql"
	"time"
)

// Client is a customer of the agency. Deleting one cascades to its projects,
// posts, social accounts and media.
type Client struct {
	ID               int64          `db:"id" json:"id"`
	AgencyID         int64          `db:"agency_id" json:"agency_id"`
	Name             string         `db:"name" json:"name"`
	TaxID            string         `db:"tax_id" json:"tax_id"`
	ContractStart    sql.NullString `db:"contract_start" json:"contract_start"`
	ContractEnd      sql.NullString `db:"contract_end" json:"contract_end"`
	ContactName      string         `db:"contact_name" json:"contact_name"`
	ContactPhone     string         `db:"contact_phone" json:"contact_phone"`
	ContactEmail     string         `db:"contact_email" json:"contact_email"`
	ContractFileURL  string         `db:"contract_file_url" json:"contract_file_url"`
	BrandManualURL   string         `db:"brand_manual_url" json:"brand_manual_url"`
	LogoURL          string         `db:"logo_url" json:"logo_url"`
	IsActive         bool           `db:"is_active" json:"is_active"`
	CreatedAt        time.Time      `db:"created_at" json:"created_at"`
}

const (
	ProjectInProgress = "in_progress"
	ProjectFinished   = "finished"
	ProjectPaused     = "paused"
)

type Project struct {
	ID          int64          `db:"id" json:"id"`
	AgencyID    int64          `db:"agency_id" json:"agency_id"`
	ClientID    sql.NullInt64  `db:"client_id" json:"client_id"`
	Name        string         `db:"name" json:"name"`
	Description string         `db:"description" json:"description"`
	Status      string         `db:"status" json:"status"`
	StartDate   sql.NullString `db:"start_date" json:"start_date"`
	DueDate     sql.NullString `db:"due_date" json:"due_date"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
}

package models

import "time"

// Agency is the tenant: every other entity is partitioned by AgencyID.
type Agency struct {
	ID             int64     `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	LogoURL        string    `db:"logo_url" json:"logo_url"`
	PrimaryColor   string    `db:"primary_color" json:"primary_color"`
	SecondaryColor string    `db:"secondary_color" json:"secondary_color"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// Domain maps an inbound host name to its agency.
type Domain struct {
	ID        int64  `db:"id" json:"id"`
	AgencyID  int64  `db:"agency_id" json:"agency_id"`
	Host      string `db:"host" json:"host"`
	IsPrimary bool   `db:"is_primary" json:"is_primary"`
}

package models

import "time"

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

type User struct {
	ID           int64     `db:"id" json:"id"`
	AgencyID     int64     `db:"agency_id" json:"agency_id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FirstName    string    `db:"first_name" json:"first_name"`
	LastName     string    `db:"last_name" json:"last_name"`
	Role         string    `db:"role" json:"role"`
	AvatarURL    string    `db:"avatar_url" json:"avatar_url"`
	IsSuperuser  bool      `db:"is_superuser" json:"is_superuser"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Initials renders the two-letter avatar fallback shown on kanban cards.
func (u *User) Initials() string {
	first := []rune(u.FirstName)
	last := []rune(u.LastName)
	switch {
	case len(first) > 0 && len(last) > 0:
		return string(first[0]) + string(last[0])
	case len(first) > 1:
		return string(first[:2])
	case len(u.Username) > 1:
		return u.Username[:2]
	case len(u.Username) == 1:
		return u.Username
	}
	return "--"
}

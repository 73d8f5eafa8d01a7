package service

import (
	"database/sql"
	"time"
)

func nullInt64(v int64) sql.NullInt64 {
	if v == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: v, Valid: true}
}

func nullString(v string) sql.NullString {
	if v == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: v, Valid: true}
}

// GetExpiresAt converts a provider's expires_in seconds into a timestamp,
// null when the provider reports no expiry.
func GetExpiresAt(expiresIn int64) sql.NullTime {
	if expiresIn <= 0 {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: time.Now().Add(time.Duration(expiresIn) * time.Second), Valid: true}
}

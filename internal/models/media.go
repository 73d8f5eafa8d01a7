package models

import (
	"database/sql"
	"time"
)

// MediaFolder is a node in a client's media tree. (client, parent, name) is
// unique so two siblings never collide.
type MediaFolder struct {
	ID        int64         `db:"id" json:"id"`
	AgencyID  int64         `db:"agency_id" json:"agency_id"`
	ClientID  int64         `db:"client_id" json:"client_id"`
	ParentID  sql.NullInt64 `db:"parent_id" json:"parent_id"`
	Name      string        `db:"name" json:"name"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
}

// MediaFile is an uploaded object. FolderID null means the client's library
// root. ObjectKey is the bucket key, FileURL the public address.
type MediaFile struct {
	ID        int64         `db:"id" json:"id"`
	AgencyID  int64         `db:"agency_id" json:"agency_id"`
	ClientID  int64         `db:"client_id" json:"client_id"`
	FolderID  sql.NullInt64 `db:"folder_id" json:"folder_id"`
	ObjectKey string        `db:"object_key" json:"object_key"`
	FileName  string        `db:"file_name" json:"file_name"`
	FileType  string        `db:"file_type" json:"file_type"`
	FileSize  int64         `db:"file_size" json:"file_size"`
	FileURL   string        `db:"file_url" json:"file_url"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
}

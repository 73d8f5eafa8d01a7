package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/mvduarte/agencyhub/internal/models"
)

type MediaFolderRepository interface {
	Create(ctx context.Context, folder *models.MediaFolder) (int64, error)
	GetByID(ctx context.Context, agencyID, id int64) (*models.MediaFolder, error)
	ListChildren(ctx context.Context, agencyID, clientID int64, parentID sql.NullInt64) ([]*models.MediaFolder, error)
	Rename(ctx context.Context, agencyID, id int64, name string) error
	Remove(ctx context.Context, agencyID, id int64) error
}

type MediaFileRepository interface {
	Create(ctx context.Context, file *models.MediaFile) (int64, error)
	GetByID(ctx context.Context, agencyID, id int64) (*models.MediaFile, error)
	ListByFolder(ctx context.Context, agencyID, clientID int64, folderID sql.NullInt64) ([]*models.MediaFile, error)
	Remove(ctx context.Context, agencyID, id int64) error
}

type mediaFolderRepository struct {
	db *sql.DB
}

func NewMediaFolderRepository(db *sql.DB) MediaFolderRepository {
	return &mediaFolderRepository{db: db}
}

func (r *mediaFolderRepository) Create(ctx context.Context, folder *models.MediaFolder) (int64, error) {
	query := `
		INSERT INTO media_folders (agency_id, client_id, parent_id, name, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		folder.AgencyID, folder.ClientID, folder.ParentID, folder.Name, time.Now()).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return id, nil
}

func (r *mediaFolderRepository) GetByID(ctx context.Context, agencyID, id int64) (*models.MediaFolder, error) {
	query := `SELECT id, agency_id, client_id, parent_id, name, created_at FROM media_folders WHERE agency_id = $1 AND id = $2`
	row := r.db.QueryRowContext(ctx, query, agencyID, id)

	var f models.MediaFolder
	err := row.Scan(&f.ID, &f.AgencyID, &f.ClientID, &f.ParentID, &f.Name, &f.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	return &f, nil
}

func (r *mediaFolderRepository) ListChildren(ctx context.Context, agencyID, clientID int64, parentID sql.NullInt64) ([]*models.MediaFolder, error) {
	query := `SELECT id, agency_id, client_id, parent_id, name, created_at FROM media_folders WHERE agency_id = $1 AND client_id = $2 AND parent_id IS NULL ORDER BY name`
	args := []interface{}{agencyID, clientID}
	if parentID.Valid {
		query = `SELECT id, agency_id, client_id, parent_id, name, created_at FROM media_folders WHERE agency_id = $1 AND client_id = $2 AND parent_id = $3 ORDER BY name`
		args = append(args, parentID.Int64)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var folders []*models.MediaFolder
	for rows.Next() {
		var f models.MediaFolder
		if err := rows.Scan(&f.ID, &f.AgencyID, &f.ClientID, &f.ParentID, &f.Name, &f.CreatedAt); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		folders = append(folders, &f)
	}
	return folders, rows.Err()
}

func (r *mediaFolderRepository) Rename(ctx context.Context, agencyID, id int64, name string) error {
	query := `UPDATE media_folders SET name = $1 WHERE agency_id = $2 AND id = $3`
	_, err := r.db.ExecContext(ctx, query, name, agencyID, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *mediaFolderRepository) Remove(ctx context.Context, agencyID, id int64) error {
	query := `DELETE FROM media_folders WHERE agency_id = $1 AND id = $2`
	_, err := r.db.ExecContext(ctx, query, agencyID, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

type mediaFileRepository struct {
	db *sql.DB
}

func NewMediaFileRepository(db *sql.DB) MediaFileRepository {
	return &mediaFileRepository{db: db}
}

const mediaFileColumns = `id, agency_id, client_id, folder_id, object_key, file_name, file_type, file_size, file_url, created_at`

func (r *mediaFileRepository) Create(ctx context.Context, file *models.MediaFile) (int64, error) {
	query := `
		INSERT INTO media_files (agency_id, client_id, folder_id, object_key, file_name, file_type, file_size, file_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		file.AgencyID, file.ClientID, file.FolderID, file.ObjectKey,
		file.FileName, file.FileType, file.FileSize, file.FileURL, time.Now()).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return id, nil
}

func (r *mediaFileRepository) GetByID(ctx context.Context, agencyID, id int64) (*models.MediaFile, error) {
	query := `SELECT ` + mediaFileColumns + ` FROM media_files WHERE agency_id = $1 AND id = $2`
	row := r.db.QueryRowContext(ctx, query, agencyID, id)

	var f models.MediaFile
	err := row.Scan(&f.ID, &f.AgencyID, &f.ClientID, &f.FolderID, &f.ObjectKey,
		&f.FileName, &f.FileType, &f.FileSize, &f.FileURL, &f.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	return &f, nil
}

func (r *mediaFileRepository) ListByFolder(ctx context.Context, agencyID, clientID int64, folderID sql.NullInt64) ([]*models.MediaFile, error) {
	query := `SELECT ` + mediaFileColumns + ` FROM media_files WHERE agency_id = $1 AND client_id = $2 AND folder_id IS NULL ORDER BY file_name`
	args := []interface{}{agencyID, clientID}
	if folderID.Valid {
		query = `SELECT ` + mediaFileColumns + ` FROM media_files WHERE agency_id = $1 AND client_id = $2 AND folder_id = $3 ORDER BY file_name`
		args = append(args, folderID.Int64)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var files []*models.MediaFile
	for rows.Next() {
		var f models.MediaFile
		err := rows.Scan(&f.ID, &f.AgencyID, &f.ClientID, &f.FolderID, &f.ObjectKey,
			&f.FileName, &f.FileType, &f.FileSize, &f.FileURL, &f.CreatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		files = append(files, &f)
	}
	return files, rows.Err()
}

func (r *mediaFileRepository) Remove(ctx context.Context, agencyID, id int64) error {
	query := `DELETE FROM media_files WHERE agency_id = $1 AND id = $2`
	_, err := r.db.ExecContext(ctx, query, agencyID, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

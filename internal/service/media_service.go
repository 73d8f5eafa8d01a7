package service

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/mvduarte/agencyhub/internal/apperrors"
	"github.com/mvduarte/agencyhub/internal/models"
	"github.com/mvduarte/agencyhub/internal/repository"
)

var allowedMediaTypes = map[string]struct{}{
	"mp4": {}, "mov": {}, "jpeg": {}, "png": {}, "jpg": {}, "gif": {}, "pdf": {},
}

type MediaService interface {
	CreateFolder(ctx context.Context, agencyID, clientID, parentID int64, name string) (int64, error)
	RenameFolder(ctx context.Context, agencyID, folderID int64, name string) error
	RemoveFolder(ctx context.Context, agencyID, folderID int64) error
	Browse(ctx context.Context, agencyID, clientID, folderID int64) ([]*models.MediaFolder, []*models.MediaFile, error)
	Upload(ctx context.Context, agencyID, clientID, folderID int64, file *multipart.FileHeader) (*models.MediaFile, error)
	RemoveFile(ctx context.Context, agencyID, fileID int64) error
}

type mediaService struct {
	folders repository.MediaFolderRepository
	files   repository.MediaFileRepository
	clients repository.ClientRepository
	r2      *R2Service
}

func NewMediaService(folders repository.MediaFolderRepository, files repository.MediaFileRepository, clients repository.ClientRepository, r2 *R2Service) MediaService {
	return &mediaService{folders: folders, files: files, clients: clients, r2: r2}
}

func (s *mediaService) CreateFolder(ctx context.Context, agencyID, clientID, parentID int64, name string) (int64, error) {
	if name == "" {
		return 0, apperrors.Validation("name", "folder name is required")
	}

	client, err := s.clients.GetByID(ctx, agencyID, clientID)
	if err != nil {
		return 0, err
	}
	if client == nil {
		return 0, apperrors.NotFound("client")
	}

	if parentID > 0 {
		parent, err := s.folders.GetByID(ctx, agencyID, parentID)
		if err != nil {
			return 0, err
		}
		if parent == nil || parent.ClientID != clientID {
			return 0, apperrors.NotFound("folder")
		}
	}

	folder := &models.MediaFolder{
		AgencyID: agencyID,
		ClientID: clientID,
		ParentID: nullInt64(parentID),
		Name:     name,
	}
	return s.folders.Create(ctx, folder)
}

func (s *mediaService) RenameFolder(ctx context.Context, agencyID, folderID int64, name string) error {
	if name == "" {
		return apperrors.Validation("name", "folder name is required")
	}
	folder, err := s.folders.GetByID(ctx, agencyID, folderID)
	if err != nil {
		return err
	}
	if folder == nil {
		return apperrors.NotFound("folder")
	}
	return s.folders.Rename(ctx, agencyID, folderID, name)
}

// RemoveFolder deletes a folder subtree. Stored objects are deleted from the
// bucket first; the rows then cascade at the schema level. A failed object
// delete is logged and skipped so one stale key cannot wedge the folder.
func (s *mediaService) RemoveFolder(ctx context.Context, agencyID, folderID int64) error {
	folder, err := s.folders.GetByID(ctx, agencyID, folderID)
	if err != nil {
		return err
	}
	if folder == nil {
		return apperrors.NotFound("folder")
	}

	if err := s.removeObjects(ctx, agencyID, folder.ClientID, folderID); err != nil {
		return err
	}
	return s.folders.Remove(ctx, agencyID, folderID)
}

func (s *mediaService) removeObjects(ctx context.Context, agencyID, clientID, folderID int64) error {
	files, err := s.files.ListByFolder(ctx, agencyID, clientID, nullInt64(folderID))
	if err != nil {
		return err
	}
	for _, f := range files {
		if err := s.r2.DeleteFromR2(ctx, f.ObjectKey); err != nil {
			slog.Warn("failed to delete object, skipping", "object_key", f.ObjectKey, "error", err)
		}
	}

	children, err := s.folders.ListChildren(ctx, agencyID, clientID, nullInt64(folderID))
	if err != nil {
		return err
	}
	for _, child := range children {
		if err := s.removeObjects(ctx, agencyID, clientID, child.ID); err != nil {
			return err
		}
	}
	return nil
}

// Browse lists the subfolders and files at one level of a client's library.
// folderID 0 is the library root.
func (s *mediaService) Browse(ctx context.Context, agencyID, clientID, folderID int64) ([]*models.MediaFolder, []*models.MediaFile, error) {
	parent := sql.NullInt64{}
	if folderID > 0 {
		folder, err := s.folders.GetByID(ctx, agencyID, folderID)
		if err != nil {
			return nil, nil, err
		}
		if folder == nil {
			return nil, nil, apperrors.NotFound("folder")
		}
		parent = nullInt64(folderID)
	}

	folders, err := s.folders.ListChildren(ctx, agencyID, clientID, parent)
	if err != nil {
		return nil, nil, err
	}
	files, err := s.files.ListByFolder(ctx, agencyID, clientID, parent)
	if err != nil {
		return nil, nil, err
	}
	return folders, files, nil
}

func (s *mediaService) Upload(ctx context.Context, agencyID, clientID, folderID int64, file *multipart.FileHeader) (*models.MediaFile, error) {
	client, err := s.clients.GetByID(ctx, agencyID, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperrors.NotFound("client")
	}

	fileContent, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer fileContent.Close()

	fileBytes, err := io.ReadAll(fileContent)
	if err != nil {
		return nil, fmt.Errorf("error reading file content: %w", err)
	}

	fileType, err := filetype.Match(fileBytes)
	if err != nil || fileType == types.Unknown {
		return nil, apperrors.Validation("file", "unsupported file type")
	}
	if _, ok := allowedMediaTypes[fileType.Extension]; !ok {
		return nil, apperrors.Validation("file", fmt.Sprintf("file type %s is not allowed", fileType.Extension))
	}

	key, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	if err := s.r2.UploadToR2(ctx, key, fileBytes, fileType.MIME.Value); err != nil {
		return nil, apperrors.External("r2", err)
	}

	mf := &models.MediaFile{
		AgencyID:  agencyID,
		ClientID:  clientID,
		FolderID:  nullInt64(folderID),
		ObjectKey: key,
		FileName:  file.Filename,
		FileType:  fileType.MIME.Value,
		FileSize:  int64(len(fileBytes)),
		FileURL:   s.r2.PublicURL(key),
	}
	id, err := s.files.Create(ctx, mf)
	if err != nil {
		return nil, err
	}
	mf.ID = id

	return mf, nil
}

func (s *mediaService) RemoveFile(ctx context.Context, agencyID, fileID int64) error {
	file, err := s.files.GetByID(ctx, agencyID, fileID)
	if err != nil {
		return err
	}
	if file == nil {
		return apperrors.NotFound("file")
	}

	if err := s.r2.DeleteFromR2(ctx, file.ObjectKey); err != nil {
		return apperrors.External("r2", err)
	}

	return s.files.Remove(ctx, agencyID, fileID)
}

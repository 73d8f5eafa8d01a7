package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/mvduarte/agencyhub/internal/apperrors"
	"github.com/mvduarte/agencyhub/internal/models"
	"github.com/mvduarte/agencyhub/internal/repository"
	"github.com/mvduarte/agencyhub/internal/transfer"
)

// Client document slots that accept an upload.
const (
	ClientAssetLogo        = "logo"
	ClientAssetContract    = "contract"
	ClientAssetBrandManual = "brand_manual"
)

type ClientService interface {
	Create(ctx context.Context, agencyID int64, req *transfer.ClientCreation) (int64, error)
	Info(ctx context.Context, agencyID, clientID int64) (*models.Client, error)
	List(ctx context.Context, agencyID int64) ([]*models.Client, error)
	Update(ctx context.Context, agencyID, clientID int64, req *transfer.ClientCreation) error
	UploadAsset(ctx context.Context, agencyID, clientID int64, kind string, file *multipart.FileHeader) (string, error)
	Remove(ctx context.Context, agencyID, clientID int64) error
}

type clientService struct {
	clients repository.ClientRepository
	r2      *R2Service
}

func NewClientService(clients repository.ClientRepository, r2 *R2Service) ClientService {
	return &clientService{clients: clients, r2: r2}
}

func (s *clientService) Create(ctx context.Context, agencyID int64, req *transfer.ClientCreation) (int64, error) {
	if req.Name == "" {
		return 0, apperrors.Validation("name", "client name is required")
	}

	client := &models.Client{
		AgencyID:      agencyID,
		Name:          req.Name,
		TaxID:         req.TaxID,
		ContractStart: nullString(req.ContractStart),
		ContractEnd:   nullString(req.ContractEnd),
		ContactName:   req.ContactName,
		ContactPhone:  req.ContactPhone,
		ContactEmail:  req.ContactEmail,
		IsActive:      true,
	}
	return s.clients.Create(ctx, nil, client)
}

func (s *clientService) Info(ctx context.Context, agencyID, clientID int64) (*models.Client, error) {
	client, err := s.clients.GetByID(ctx, agencyID, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperrors.NotFound("client")
	}
	return client, nil
}

func (s *clientService) List(ctx context.Context, agencyID int64) ([]*models.Client, error) {
	return s.clients.List(ctx, agencyID)
}

func (s *clientService) Update(ctx context.Context, agencyID, clientID int64, req *transfer.ClientCreation) error {
	client, err := s.Info(ctx, agencyID, clientID)
	if err != nil {
		return err
	}

	if req.Name != "" {
		client.Name = req.Name
	}
	client.TaxID = req.TaxID
	client.ContractStart = nullString(req.ContractStart)
	client.ContractEnd = nullString(req.ContractEnd)
	client.ContactName = req.ContactName
	client.ContactPhone = req.ContactPhone
	client.ContactEmail = req.ContactEmail

	return s.clients.Update(ctx, agencyID, client)
}

// UploadAsset stores a client document and records its public URL on the
// matching slot.
func (s *clientService) UploadAsset(ctx context.Context, agencyID, clientID int64, kind string, file *multipart.FileHeader) (string, error) {
	client, err := s.Info(ctx, agencyID, clientID)
	if err != nil {
		return "", err
	}

	fileContent, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("error opening file: %w", err)
	}
	defer fileContent.Close()

	fileBytes, err := io.ReadAll(fileContent)
	if err != nil {
		return "", fmt.Errorf("error reading file content: %w", err)
	}

	fileType, err := filetype.Match(fileBytes)
	if err != nil || fileType == types.Unknown {
		return "", apperrors.Validation("file", "unsupported file type")
	}

	key, err := gonanoid.New()
	if err != nil {
		return "", err
	}
	if err := s.r2.UploadToR2(ctx, key, fileBytes, fileType.MIME.Value); err != nil {
		return "", apperrors.External("r2", err)
	}

	url := s.r2.PublicURL(key)
	switch kind {
	case ClientAssetLogo:
		client.LogoURL = url
	case ClientAssetContract:
		client.ContractFileURL = url
	case ClientAssetBrandManual:
		client.BrandManualURL = url
	default:
		return "", apperrors.Validation("kind", "unknown asset kind")
	}

	if err := s.clients.Update(ctx, agencyID, client); err != nil {
		return "", err
	}
	return url, nil
}

func (s *clientService) Remove(ctx context.Context, agencyID, clientID int64) error {
	if _, err := s.Info(ctx, agencyID, clientID); err != nil {
		return err
	}
	return s.clients.Remove(ctx, agencyID, clientID)
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/linkedin"

	config "github.com/mvduarte/agencyhub/configs"
	"github.com/mvduarte/agencyhub/internal/apperrors"
	"github.com/mvduarte/agencyhub/internal/models"
	"github.com/mvduarte/agencyhub/internal/repository"
	"github.com/mvduarte/agencyhub/internal/transfer"
	"github.com/mvduarte/agencyhub/pkg/utils"
)

const linkedinUserinfoURL = "https://api.linkedin.com/v2/userinfo"

type LinkedinService interface {
	Connect(ctx context.Context, agencyID, clientID int64, code string) error
}

type linkedinService struct {
	cfg      *config.Config
	accounts repository.SocialAccountRepository
	oauth    *oauth2.Config
}

func NewLinkedinService(cfg *config.Config, accounts repository.SocialAccountRepository) LinkedinService {
	return &linkedinService{
		cfg:      cfg,
		accounts: accounts,
		oauth: &oauth2.Config{
			ClientID:     cfg.LinkedinClientID,
			ClientSecret: cfg.LinkedinClientSecret,
			RedirectURL:  cfg.LinkedinRedirectURI,
			Endpoint:     linkedin.Endpoint,
		},
	}
}

func (s *linkedinService) Connect(ctx context.Context, agencyID, clientID int64, code string) error {
	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		slog.Info(err.Error())
		return apperrors.External("linkedin", err)
	}

	profile, err := s.fetchProfile(ctx, token.AccessToken)
	if err != nil {
		return err
	}

	encryptedAccessToken, err := utils.Encrypt([]byte(token.AccessToken), []byte(s.cfg.SecretKey))
	if err != nil {
		return err
	}
	var encryptedRefreshToken string
	if token.RefreshToken != "" {
		encryptedRefreshToken, err = utils.Encrypt([]byte(token.RefreshToken), []byte(s.cfg.SecretKey))
		if err != nil {
			return err
		}
	}

	expiresAt := GetExpiresAt(0)
	if !token.Expiry.IsZero() {
		expiresAt.Time = token.Expiry
		expiresAt.Valid = true
	}

	account := &models.SocialAccount{
		AgencyID:       agencyID,
		ClientID:       clientID,
		Platform:       models.PlatformLinkedin,
		AccountID:      profile.Sub,
		AccountName:    profile.Name,
		ProfilePicture: profile.Picture,
		AccessToken:    encryptedAccessToken,
		RefreshToken:   encryptedRefreshToken,
		TokenExpiresAt: expiresAt,
		IsActive:       true,
	}
	_, err = s.accounts.Upsert(ctx, nil, account)
	return err
}

func (s *linkedinService) fetchProfile(ctx context.Context, accessToken string) (*transfer.LinkedinProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, linkedinUserinfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return nil, apperrors.External("linkedin", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Info("linkedin userinfo returned non-200 status", "status", resp.StatusCode)
		return nil, apperrors.External("linkedin", fmt.Errorf("userinfo status %d", resp.StatusCode))
	}

	var profile transfer.LinkedinProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		slog.Info(err.Error())
		return nil, apperrors.External("linkedin", err)
	}
	return &profile, nil
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	config "github.com/mvduarte/agencyhub/configs"
	"github.com/mvduarte/agencyhub/internal/apperrors"
	"github.com/mvduarte/agencyhub/internal/models"
	"github.com/mvduarte/agencyhub/internal/repository"
	"github.com/mvduarte/agencyhub/internal/transfer"
	"github.com/mvduarte/agencyhub/pkg/utils"
)

const (
	tiktokTokenURL    = "https://open.tiktokapis.com/v2/oauth/token/"
	tiktokUserInfoURL = "https://open.tiktokapis.com/v2/user/info/?fields=open_id,avatar_url,display_name,username"
)

// TikTok's token endpoint is form-encoded and off the oauth2 package's happy
// path, so the exchange is done by hand.
type TiktokService interface {
	Connect(ctx context.Context, agencyID, clientID int64, code string) error
}

type tiktokService struct {
	cfg      *config.Config
	accounts repository.SocialAccountRepository
}

func NewTiktokService(cfg *config.Config, accounts repository.SocialAccountRepository) TiktokService {
	return &tiktokService{cfg: cfg, accounts: accounts}
}

func (s *tiktokService) Connect(ctx context.Context, agencyID, clientID int64, code string) error {
	if code == "" {
		err := errors.New("code is empty")
		slog.Info(err.Error())
		return apperrors.Validation("code", "code is required")
	}

	tokenResponse, err := s.exchangeCodeForToken(ctx, code)
	if err != nil {
		return err
	}

	userInfo, err := s.fetchUserInfo(ctx, tokenResponse.AccessToken)
	if err != nil {
		return err
	}

	encryptedAccessToken, err := utils.Encrypt([]byte(tokenResponse.AccessToken), []byte(s.cfg.SecretKey))
	if err != nil {
		return err
	}
	encryptedRefreshToken, err := utils.Encrypt([]byte(tokenResponse.RefreshToken), []byte(s.cfg.SecretKey))
	if err != nil {
		return err
	}

	account := &models.SocialAccount{
		AgencyID:       agencyID,
		ClientID:       clientID,
		Platform:       models.PlatformTiktok,
		AccountID:      userInfo.Data.User.OpenID,
		AccountName:    userInfo.Data.User.DisplayName,
		ProfilePicture: userInfo.Data.User.AvatarURL,
		AccessToken:    encryptedAccessToken,
		RefreshToken:   encryptedRefreshToken,
		TokenExpiresAt: GetExpiresAt(int64(tokenResponse.ExpiresIn)),
		IsActive:       true,
	}
	_, err = s.accounts.Upsert(ctx, nil, account)
	return err
}

func (s *tiktokService) exchangeCodeForToken(ctx context.Context, code string) (*transfer.TiktokTokenResponse, error) {
	data := url.Values{}
	data.Add("client_key", s.cfg.TiktokClientKey)
	data.Add("client_secret", s.cfg.TiktokClientSecret)
	data.Add("code", code)
	data.Add("grant_type", "authorization_code")
	data.Add("redirect_uri", s.cfg.TiktokRedirectURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tiktokTokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return nil, apperrors.External("tiktok", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Info("tiktok token endpoint returned non-200 status", "status", resp.StatusCode)
		return nil, apperrors.External("tiktok", fmt.Errorf("token endpoint status %d", resp.StatusCode))
	}

	var tokenResponse transfer.TiktokTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		slog.Info(err.Error())
		return nil, apperrors.External("tiktok", err)
	}
	return &tokenResponse, nil
}

func (s *tiktokService) fetchUserInfo(ctx context.Context, accessToken string) (*transfer.TiktokUserResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tiktokUserInfoURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return nil, apperrors.External("tiktok", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Info("tiktok user info returned non-200 status", "status", resp.StatusCode)
		return nil, apperrors.External("tiktok", fmt.Errorf("user info status %d", resp.StatusCode))
	}

	var userInfo transfer.TiktokUserResponse
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		slog.Info(err.Error())
		return nil, apperrors.External("tiktok", err)
	}
	return &userInfo, nil
}

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"

	config "github.com/mvduarte/agencyhub/configs"
	"github.com/mvduarte/agencyhub/internal/apperrors"
	"github.com/mvduarte/agencyhub/internal/models"
	"github.com/mvduarte/agencyhub/internal/repository"
	"github.com/mvduarte/agencyhub/internal/transfer"
	"github.com/mvduarte/agencyhub/pkg/utils"
)

const graphBaseURL = "https://graph.facebook.com/v19.0"

// MetaService connects Facebook pages and their linked Instagram business
// accounts. One consent can yield several stored accounts.
type MetaService interface {
	Connect(ctx context.Context, agencyID, clientID int64, code string) error
}

type metaService struct {
	cfg      *config.Config
	accounts repository.SocialAccountRepository
	oauth    *oauth2.Config
}

func NewMetaService(cfg *config.Config, accounts repository.SocialAccountRepository) MetaService {
	return &metaService{
		cfg:      cfg,
		accounts: accounts,
		oauth: &oauth2.Config{
			ClientID:     cfg.MetaAppID,
			ClientSecret: cfg.MetaAppSecret,
			RedirectURL:  cfg.MetaRedirectURI,
			Endpoint:     facebook.Endpoint,
		},
	}
}

// Connect exchanges the code, expands it into the user's pages and upserts a
// facebook account per page plus an instagram account per linked business
// profile. All provider calls happen before the first write, so a provider
// failure leaves nothing stored.
func (s *metaService) Connect(ctx context.Context, agencyID, clientID int64, code string) error {
	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		slog.Info(err.Error())
		return apperrors.External("meta", err)
	}

	pages, err := s.fetchPages(ctx, token.AccessToken)
	if err != nil {
		return err
	}
	if len(pages.Data) == 0 {
		return apperrors.Validation("code", "the connected user administers no pages")
	}

	var toStore []*models.SocialAccount

	for _, page := range pages.Data {
		encryptedPageToken, err := utils.Encrypt([]byte(page.AccessToken), []byte(s.cfg.SecretKey))
		if err != nil {
			return err
		}

		toStore = append(toStore, &models.SocialAccount{
			AgencyID:    agencyID,
			ClientID:    clientID,
			Platform:    models.PlatformFacebook,
			AccountID:   page.ID,
			AccountName: page.Name,
			AccessToken: encryptedPageToken,
			IsActive:    true,
		})

		if page.Instagram != nil {
			details, err := s.fetchInstagramDetails(ctx, page.Instagram.ID, page.AccessToken)
			if err != nil {
				return err
			}
			toStore = append(toStore, &models.SocialAccount{
				AgencyID:       agencyID,
				ClientID:       clientID,
				Platform:       models.PlatformInstagram,
				AccountID:      page.Instagram.ID,
				AccountName:    details.Username,
				ProfilePicture: details.ProfilePictureURL,
				AccessToken:    encryptedPageToken,
				IsActive:       true,
			})
		}
	}

	for _, account := range toStore {
		if _, err := s.accounts.Upsert(ctx, nil, account); err != nil {
			return err
		}
	}

	return nil
}

func (s *metaService) fetchPages(ctx context.Context, accessToken string) (*transfer.MetaPagesResponse, error) {
	params := url.Values{}
	params.Add("fields", "id,name,access_token,instagram_business_account")
	params.Add("access_token", accessToken)

	reqURL := fmt.Sprintf("%s/me/accounts?%s", graphBaseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return nil, apperrors.External("meta", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Info("graph api returned non-200 status", "status", resp.StatusCode)
		return nil, apperrors.External("meta", fmt.Errorf("graph api status %d", resp.StatusCode))
	}

	var pages transfer.MetaPagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&pages); err != nil {
		slog.Info(err.Error())
		return nil, apperrors.External("meta", err)
	}
	return &pages, nil
}

func (s *metaService) fetchInstagramDetails(ctx context.Context, igID, pageToken string) (*transfer.InstagramDetails, error) {
	params := url.Values{}
	params.Add("fields", "username,profile_picture_url")
	params.Add("access_token", pageToken)

	reqURL := fmt.Sprintf("%s/%s?%s", graphBaseURL, igID, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return nil, apperrors.External("meta", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Info("graph api returned non-200 status", "status", resp.StatusCode)
		return nil, apperrors.External("meta", fmt.Errorf("graph api status %d", resp.StatusCode))
	}

	var details transfer.InstagramDetails
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		slog.Info(err.Error())
		return nil, apperrors.External("meta", err)
	}
	return &details, nil
}

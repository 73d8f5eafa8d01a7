package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	config "github.com/mvduarte/agencyhub/configs"
	"github.com/mvduarte/agencyhub/internal/apperrors"
	"github.com/mvduarte/agencyhub/internal/models"
	"github.com/mvduarte/agencyhub/internal/repository"
	"github.com/mvduarte/agencyhub/internal/transfer"
	"github.com/mvduarte/agencyhub/pkg/utils"
)

const (
	metaAuthURL     = "https://www.facebook.com/v19.0/dialog/oauth"
	linkedinAuthURL = "https://www.linkedin.com/oauth/v2/authorization"
	tiktokAuthURL   = "https://www.tiktok.com/v2/auth/authorize"
)

// PlatformService starts connect flows and dispatches provider callbacks.
type PlatformService interface {
	AuthURL(ctx context.Context, agencyID, userID, clientID int64, platform string) (string, error)
	HandleCallback(ctx context.Context, state, code string) (int64, error)
	List(ctx context.Context, agencyID, clientID int64) ([]*transfer.ConnectedAccount, error)
	Disconnect(ctx context.Context, agencyID, accountID int64) error
}

type platformService struct {
	cfg      *config.Config
	accounts repository.SocialAccountRepository
	clients  repository.ClientRepository
	meta     MetaService
	linkedin LinkedinService
	tiktok   TiktokService
}

func NewPlatformService(
	cfg *config.Config,
	accounts repository.SocialAccountRepository,
	clients repository.ClientRepository,
	meta MetaService,
	linkedin LinkedinService,
	tiktok TiktokService) PlatformService {
	return &platformService{
		cfg:      cfg,
		accounts: accounts,
		clients:  clients,
		meta:     meta,
		linkedin: linkedin,
		tiktok:   tiktok,
	}
}

// AuthURL builds the provider's consent URL. The signed state pins the
// callback to the user, agency and client that started the flow.
func (s *platformService) AuthURL(ctx context.Context, agencyID, userID, clientID int64, platform string) (string, error) {
	client, err := s.clients.GetByID(ctx, agencyID, clientID)
	if err != nil {
		return "", err
	}
	if client == nil {
		return "", apperrors.NotFound("client")
	}

	state, err := utils.GenerateConnectState(s.cfg.SecretKey, transfer.ConnectClaims{
		UserID:   strconv.FormatInt(userID, 10),
		AgencyID: strconv.FormatInt(agencyID, 10),
		ClientID: strconv.FormatInt(clientID, 10),
		Platform: platform,
	})
	if err != nil {
		return "", err
	}

	switch platform {
	case models.PlatformFacebook, models.PlatformInstagram:
		params := url.Values{}
		params.Add("client_id", s.cfg.MetaAppID)
		params.Add("redirect_uri", s.cfg.MetaRedirectURI)
		params.Add("scope", "pages_show_list,pages_manage_posts,instagram_basic,instagram_content_publish,business_management")
		params.Add("response_type", "code")
		params.Add("state", state)
		return fmt.Sprintf("%s?%s", metaAuthURL, params.Encode()), nil

	case models.PlatformLinkedin:
		params := url.Values{}
		params.Add("client_id", s.cfg.LinkedinClientID)
		params.Add("redirect_uri", s.cfg.LinkedinRedirectURI)
		params.Add("scope", "openid profile w_member_social")
		params.Add("response_type", "code")
		params.Add("state", state)
		return fmt.Sprintf("%s?%s", linkedinAuthURL, params.Encode()), nil

	case models.PlatformTiktok:
		params := url.Values{}
		params.Add("client_key", s.cfg.TiktokClientKey)
		params.Add("redirect_uri", s.cfg.TiktokRedirectURI)
		params.Add("scope", "user.info.basic,user.info.profile,video.publish,video.upload")
		params.Add("response_type", "code")
		params.Add("state", state)
		return fmt.Sprintf("%s?%s", tiktokAuthURL, params.Encode()), nil

	default:
		return "", apperrors.Validation("platform", fmt.Sprintf("no connector for %q", platform))
	}
}

// HandleCallback validates the state and routes the code to the connector
// that started the flow. Returns the client the accounts were connected for.
func (s *platformService) HandleCallback(ctx context.Context, state, code string) (int64, error) {
	if code == "" || state == "" {
		return 0, apperrors.Validation("code", "code and state are required")
	}

	claims, err := utils.ValidateConnectState(s.cfg.SecretKey, state)
	if err != nil {
		return 0, apperrors.Validation("state", "state is invalid or expired")
	}

	agencyID, err := strconv.ParseInt(claims.AgencyID, 10, 64)
	if err != nil {
		return 0, err
	}
	clientID, err := strconv.ParseInt(claims.ClientID, 10, 64)
	if err != nil {
		return 0, err
	}

	switch claims.Platform {
	case models.PlatformFacebook, models.PlatformInstagram:
		err = s.meta.Connect(ctx, agencyID, clientID, code)
	case models.PlatformLinkedin:
		err = s.linkedin.Connect(ctx, agencyID, clientID, code)
	case models.PlatformTiktok:
		err = s.tiktok.Connect(ctx, agencyID, clientID, code)
	default:
		err = apperrors.Validation("platform", fmt.Sprintf("no connector for %q", claims.Platform))
	}
	if err != nil {
		return 0, err
	}

	return clientID, nil
}

func (s *platformService) List(ctx context.Context, agencyID, clientID int64) ([]*transfer.ConnectedAccount, error) {
	accounts, err := s.accounts.ListByClient(ctx, agencyID, clientID)
	if err != nil {
		return nil, err
	}

	listed := make([]*transfer.ConnectedAccount, 0, len(accounts))
	for _, a := range accounts {
		listed = append(listed, &transfer.ConnectedAccount{
			ID:             a.ID,
			ClientID:       a.ClientID,
			Platform:       a.Platform,
			AccountID:      a.AccountID,
			AccountName:    a.AccountName,
			ProfilePicture: a.ProfilePicture,
			IsActive:       a.IsActive,
		})
	}
	return listed, nil
}

func (s *platformService) Disconnect(ctx context.Context, agencyID, accountID int64) error {
	account, err := s.accounts.GetByID(ctx, agencyID, accountID)
	if err != nil {
		return err
	}
	if account == nil {
		return apperrors.NotFound("social account")
	}
	return s.accounts.Remove(ctx, agencyID, accountID)
}

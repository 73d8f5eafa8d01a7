package models

import (
	"database/sql"
	"time"
)

// Connectable platforms. Ads and analytics accounts share the table with the
// organic networks; only meta/linkedin/tiktok have OAuth connectors here.
const (
	PlatformFacebook  = "facebook"
	PlatformInstagram = "instagram"
	PlatformLinkedin  = "linkedin"
	PlatformTiktok    = "tiktok"
	PlatformPinterest = "pinterest"
	PlatformYoutube   = "youtube"
	PlatformThreads   = "threads"
	PlatformX         = "x"

	PlatformTiktokAds   = "tiktok_ads"
	PlatformLinkedinAds = "linkedin_ads"
	PlatformMetaAds     = "meta_ads"
	PlatformGoogleAds   = "google_ads"

	PlatformGoogleBusiness = "google_my_business"
	PlatformGA4            = "ga4"
)

// SocialAccount is a credentialed connection to an external platform for one
// client. Tokens are stored AES-GCM encrypted.
type SocialAccount struct {
	ID             int64        `db:"id" json:"id"`
	AgencyID       int64        `db:"agency_id" json:"agency_id"`
	ClientID       int64        `db:"client_id" json:"client_id"`
	Platform       string       `db:"platform" json:"platform"`
	AccountID      string       `db:"account_id" json:"account_id"`
	AccountName    string       `db:"account_name" json:"account_name"`
	ProfilePicture string       `db:"profile_picture_url" json:"profile_picture"`
	AccessToken    string       `db:"access_token" json:"-"`
	RefreshToken   string       `db:"refresh_token" json:"-"`
	TokenExpiresAt sql.NullTime `db:"token_expires_at" json:"token_expires_at"`
	IsActive       bool         `db:"is_active" json:"is_active"`
	CreatedAt      time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time    `db:"updated_at" json:"updated_at"`
}

package models

import (
	"database/sql"
	"time"
)

// Approval lifecycle of a post. The linked operational task mirrors these
// through the transition table in the approval service.
const (
	ApprovalDraft        = "draft"
	ApprovalCopyReview   = "copy_review"
	ApprovalDesignReview = "design_review"
	ApprovalInternal     = "internal_approval"
	ApprovalClient       = "client_approval"
	ApprovalApproved     = "approved_to_schedule"
)

// SocialPost is the content artifact moving through the approval flow.
// ApprovalToken is minted once, never regenerated: issued links must keep
// resolving.
type SocialPost struct {
	ID             int64          `db:"id" json:"id"`
	AgencyID       int64          `db:"agency_id" json:"agency_id"`
	ClientID       int64          `db:"client_id" json:"client_id"`
	Caption        string         `db:"caption" json:"caption"`
	MediaURL       string         `db:"media_url" json:"media_url"`
	ScheduledFor   sql.NullTime   `db:"scheduled_for" json:"scheduled_for"`
	ApprovalStatus string         `db:"approval_status" json:"approval_status"`
	ApprovalToken  sql.NullString `db:"approval_token" json:"-"`
	FeedbackText   string         `db:"feedback_text" json:"feedback_text"`
	// Base64 payload of the client's annotated image. Stored and displayed,
	// never parsed.
	FeedbackImageMarkup string `db:"feedback_image_markup" json:"feedback_image_markup"`

	LikesCount    int `db:"likes_count" json:"likes_count"`
	CommentsCount int `db:"comments_count" json:"comments_count"`
	SharesCount   int `db:"shares_count" json:"shares_count"`
	ViewsCount    int `db:"views_count" json:"views_count"`

	CreatedBy sql.NullInt64 `db:"created_by" json:"created_by"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
}

// Publish formats a destination can target.
const (
	FormatFacebookFeed   = "facebook_feed"
	FormatFacebookStory  = "facebook_story"
	FormatInstagramFeed  = "instagram_feed"
	FormatInstagramStory = "instagram_story"
	FormatInstagramReel  = "instagram_reel"
	FormatThreadsPost    = "threads_post"
	FormatYoutubeVideo   = "youtube_video"
	FormatYoutubeShort   = "youtube_short"
	FormatTiktokPost     = "tiktok_post"
	FormatLinkedinFeed   = "linkedin_feed"
	FormatXPost          = "x_post"
	FormatPinterestPin   = "pinterest_pin"
)

// SocialPostDestination binds a post to one social account with a target
// format. A post may have many destinations.
type SocialPostDestination struct {
	ID         int64  `db:"id" json:"id"`
	PostID     int64  `db:"post_id" json:"post_id"`
	AccountID  int64  `db:"account_id" json:"account_id"`
	FormatType string `db:"format_type" json:"format_type"`
}

package transfer

import "github.com/mvduarte/agencyhub/internal/models"

// ApprovalReview is what the public review page renders: the post under
// review plus agency branding for the page chrome.
type ApprovalReview struct {
	Post          *models.SocialPost `json:"post"`
	ClientName    string             `json:"client_name"`
	AgencyName    string             `json:"agency_name"`
	AgencyLogoURL string             `json:"agency_logo_url"`
}

// BoardColumn is one rendered kanban column with its cards in order.
type BoardColumn struct {
	Status string      `json:"status"`
	Tasks  []*TaskCard `json:"tasks"`
}

// TaskCard decorates a task with the display fields the board needs.
type TaskCard struct {
	*models.Task
	AssigneeName     string `json:"assignee_name,omitempty"`
	AssigneeInitials string `json:"assignee_initials,omitempty"`
	ProjectName      string `json:"project_name,omitempty"`
	ClientName       string `json:"client_name,omitempty"`
}

// DashboardSummary backs the landing page widgets.
type DashboardSummary struct {
	ActiveClients    int            `json:"active_clients"`
	ActiveProjects   int            `json:"active_projects"`
	PendingApprovals int            `json:"pending_approvals"`
	TasksByStatus    map[string]int `json:"tasks_by_status"`
}

// ConnectedAccount is a social account stripped of its tokens for listing.
type ConnectedAccount struct {
	ID             int64  `json:"id"`
	ClientID       int64  `json:"client_id"`
	Platform       string `json:"platform"`
	AccountID      string `json:"account_id"`
	AccountName    string `json:"account_name"`
	ProfilePicture string `json:"profile_picture_url"`
	IsActive       bool   `json:"is_active"`
}

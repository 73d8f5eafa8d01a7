package transfer

// Typed request payloads validated at the boundary of each operation.

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TaskCreation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	KanbanType  string `json:"kanban_type"`
	ProjectID   int64  `json:"project"`
	AssignedTo  int64  `json:"assigned_to"`
	Priority    string `json:"priority"`
}

// TaskMove carries the caller's full resequencing of the destination column.
type TaskMove struct {
	TaskID       int64   `json:"task_id"`
	NewStatus    string  `json:"new_status"`
	NewOrderList []int64 `json:"new_order_list"`
}

// ContentTaskCreation originates a linked post/task pair. Either ProjectID or
// ClientID must resolve to a client.
type ContentTaskCreation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ProjectID   int64  `json:"project"`
	ClientID    int64  `json:"client"`
	AssignedTo  int64  `json:"assigned_to"`
	MediaURL    string `json:"reference_media"`
}

// ApprovalDecision is the body POSTed from the public review page.
type ApprovalDecision struct {
	Token     string `json:"token"`
	Action    string `json:"action"`
	Feedback  string `json:"feedback"`
	ImageData string `json:"image_data"`
}

type PostCreation struct {
	ClientID     int64               `json:"client"`
	Caption      string              `json:"caption"`
	MediaURL     string              `json:"media_url"`
	ScheduledFor string              `json:"scheduled_for"`
	Destinations []PostDestinationIn `json:"destinations"`
}

type PostDestinationIn struct {
	AccountID  int64  `json:"account_id"`
	FormatType string `json:"format_type"`
}

type ClientCreation struct {
	Name          string `json:"name"`
	TaxID         string `json:"tax_id"`
	ContractStart string `json:"contract_start"`
	ContractEnd   string `json:"contract_end"`
	ContactName   string `json:"contact_name"`
	ContactPhone  string `json:"contact_phone"`
	ContactEmail  string `json:"contact_email"`
}

type ProjectCreation struct {
	Name        string `json:"name"`
	ClientID    int64  `json:"client"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	DueDate     string `json:"due_date"`
}

type CalendarEventCreation struct {
	Title    string `json:"title"`
	ClientID int64  `json:"client"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Platform string `json:"platform"`
	PostType string `json:"post_type"`
	Caption  string `json:"caption"`
}

type UserUpsert struct {
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	AgencyID  int64  `json:"agency"`
	IsActive  bool   `json:"is_active"`
}

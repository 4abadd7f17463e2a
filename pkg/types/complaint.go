package types

type ComplaintStatus string

const (
	ComplaintStatusPending    ComplaintStatus = "pending"
	ComplaintStatusInProgress ComplaintStatus = "in_progress"
	ComplaintStatusResolved   ComplaintStatus = "resolved"
	ComplaintStatusEscalated  ComplaintStatus = "escalated"
)

type ComplaintPriority string

const (
	PriorityLow    ComplaintPriority = "low"
	PriorityMedium ComplaintPriority = "medium"
	PriorityHigh   ComplaintPriority = "high"
)

type Complaint struct {
	ID          string            `json:"id"`
	Category    string            `json:"category"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Status      ComplaintStatus   `json:"status"`
	Priority    ComplaintPriority `json:"priority,omitempty"`
	CreatedAt   string            `json:"createdAt,omitempty"`
	AssignedTo  string            `json:"assignedTo,omitempty"`
	Progress    int               `json:"progress"`
	ResolvedAt  string            `json:"resolvedAt,omitempty"`
	Resolution  string            `json:"resolution,omitempty"`
}

// ComplaintRequest is the raise-complaint form payload.
type ComplaintRequest struct {
	Category    string `json:"category" form:"category"`
	SubCategory string `json:"subCategory" form:"sub_category"`
	Description string `json:"description" form:"description"`
	PGName      string `json:"pgName" form:"pg_name"`
	RoomNumber  string `json:"roomNumber" form:"room_number"`
	Floor       string `json:"floor" form:"floor"`
}

type ComplaintStats struct {
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Resolved   int `json:"resolved"`
	Escalated  int `json:"escalated"`
}

type MaintenanceSlot struct {
	Day  string `json:"day"`
	Task string `json:"task"`
	Time string `json:"time"`
}

package types

// Response envelopes returned by the dashboard API.

type ListingsResponse struct {
	Listings []Listing      `json:"listings"`
	Total    int            `json:"total"`
	Criteria FilterCriteria `json:"criteria"`
	SortBy   SortKey        `json:"sortBy"`
}

type WishlistResponse struct {
	Entries []WishlistEntry  `json:"entries"`
	Folders []WishlistFolder `json:"folders"`
	Folder  string           `json:"folder"`
	Compare []string         `json:"compare"`
}

type DocumentsResponse struct {
	Documents    []Document       `json:"documents"`
	Agreement    AgreementSummary `json:"agreement"`
	Checklist    []ChecklistItem  `json:"moveInChecklist"`
	ProfilePhoto string           `json:"profilePhoto,omitempty"`
}

type ProfileResponse struct {
	Mode         EditMode           `json:"mode"`
	Profile      Profile            `json:"profile"`
	Draft        *Profile           `json:"draft,omitempty"`
	Verification []VerificationItem `json:"verification"`
}

type BookingsResponse struct {
	Bookings []Booking    `json:"bookings"`
	Stats    BookingStats `json:"stats"`
	Tab      string       `json:"tab"`
}

type PaymentsResponse struct {
	History     []Payment    `json:"history"`
	PendingDues []PendingDue `json:"pendingDues"`
	Stats       PaymentStats `json:"stats"`
}

type ComplaintsResponse struct {
	Active      []Complaint       `json:"active"`
	Resolved    []Complaint       `json:"resolved"`
	Stats       ComplaintStats    `json:"stats"`
	Maintenance []MaintenanceSlot `json:"maintenanceSchedule"`
	Tab         string            `json:"tab"`
}

type ReviewsResponse struct {
	Reviews []Review `json:"reviews"`
}

type NotificationsResponse struct {
	Notifications []Notification        `json:"notifications"`
	Settings      []NotificationSetting `json:"settings"`
	UnreadCount   int                   `json:"unreadCount"`
	Tab           NotificationTab       `json:"tab"`
}

type SettingsResponse struct {
	Settings Settings `json:"settings"`
	PhotoURL string   `json:"photoUrl,omitempty"`
}

// ErrorResponse is the JSON body for validation and missing-data
// failures. BackTo carries the recovery path for "no data found" states.
type ErrorResponse struct {
	Error       string            `json:"error"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
	BackTo      string            `json:"backTo,omitempty"`
}

type NoticeResponse struct {
	Notice string `json:"notice"`
}

package types

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCompleted BookingStatus = "completed"
)

type BookingKind string

const (
	BookingKindVisit   BookingKind = "Visit"
	BookingKindBooking BookingKind = "Booking"
)

type Booking struct {
	ID       string        `json:"id"`
	PGName   string        `json:"pgName"`
	Location string        `json:"location"`
	Image    string        `json:"image,omitempty"`
	Kind     BookingKind   `json:"type"`
	Date     string        `json:"date"`
	Time     string        `json:"time"`
	Status   BookingStatus `json:"status"`
}

// VisitRequest is the "Request New Visit" form payload.
type VisitRequest struct {
	PGID      string `json:"pgId" form:"pg_id"`
	VisitDate string `json:"visitDate" form:"visit_date"`
	VisitTime string `json:"visitTime" form:"visit_time"`
	FullName  string `json:"fullName" form:"full_name"`
	Phone     string `json:"phone" form:"phone"`
	Visitors  int    `json:"visitors" form:"visitors"`
	Notes     string `json:"notes" form:"notes"`
}

type BookingStats struct {
	TotalVisits int `json:"totalVisits"`
	Pending     int `json:"pending"`
	Approved    int `json:"approved"`
	Completed   int `json:"completed"`
}

package types

type NotificationType string

const (
	NotificationBooking      NotificationType = "booking"
	NotificationPayment      NotificationType = "payment"
	NotificationVacancy      NotificationType = "vacancy"
	NotificationComplaint    NotificationType = "complaint"
	NotificationMessage      NotificationType = "message"
	NotificationAnnouncement NotificationType = "announcement"
	NotificationOffer        NotificationType = "offer"
)

type Notification struct {
	ID      string           `json:"id"`
	Type    NotificationType `json:"type"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Time    string           `json:"time"`
	Read    bool             `json:"read"`
}

// NotificationSetting is a per-type delivery toggle.
type NotificationSetting struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Enabled bool   `json:"enabled"`
}

type NotificationTab string

const (
	NotificationTabAll    NotificationTab = "all"
	NotificationTabUnread NotificationTab = "unread"
	NotificationTabRead   NotificationTab = "read"
)

package seed

import "pgnest/pkg/types"

// Notifications returns the demo tenant's notification feed, newest
// first.
func Notifications() []types.Notification {
	return []types.Notification{
		{
			ID:      "1",
			Type:    types.NotificationBooking,
			Title:   "Booking Request Approved",
			Message: "Your visit to Green Valley PG has been confirmed for Jan 25, 2025 at 11:00 AM.",
			Time:    "2 hours ago",
			Read:    false,
		},
		{
			ID:      "2",
			Type:    types.NotificationPayment,
			Title:   "Payment Reminder",
			Message: "Your rent payment of ₹8,500 for February 2025 is due in 3 days.",
			Time:    "5 hours ago",
			Read:    false,
		},
		{
			ID:      "3",
			Type:    types.NotificationVacancy,
			Title:   "New Vacancy Alert",
			Message: "A room is now available at Sunrise Men's PG, Madhapur. 2-Sharing at ₹7,500/month.",
			Time:    "1 day ago",
			Read:    false,
		},
		{
			ID:      "4",
			Type:    types.NotificationComplaint,
			Title:   "Complaint Resolved",
			Message: "Your complaint about Wi-Fi connectivity has been resolved. Please check and confirm.",
			Time:    "2 days ago",
			Read:    true,
		},
		{
			ID:      "5",
			Type:    types.NotificationMessage,
			Title:   "Message from Owner",
			Message: "Hello! Just wanted to confirm your move-in date. Please reply at your convenience.",
			Time:    "3 days ago",
			Read:    true,
		},
		{
			ID:      "6",
			Type:    types.NotificationAnnouncement,
			Title:   "Maintenance Notice",
			Message: "Water supply will be disrupted on Jan 28, 2025 from 6:00 AM to 10:00 AM for tank cleaning.",
			Time:    "4 days ago",
			Read:    true,
		},
		{
			ID:      "7",
			Type:    types.NotificationOffer,
			Title:   "Special Offer!",
			Message: "Get 10% off on your first month's rent when you refer a friend. Terms apply.",
			Time:    "1 week ago",
			Read:    true,
		},
	}
}

// NotificationSettings returns the per-type delivery toggles.
func NotificationSettings() []types.NotificationSetting {
	return []types.NotificationSetting{
		{ID: "booking", Label: "Booking Status Updates", Enabled: true},
		{ID: "payment", Label: "Rent Payment Reminders", Enabled: true},
		{ID: "vacancy", Label: "Vacancy Alerts", Enabled: true},
		{ID: "complaint", Label: "Complaint Updates", Enabled: true},
		{ID: "message", Label: "Owner Messages", Enabled: true},
		{ID: "announcement", Label: "Admin Announcements", Enabled: false},
		{ID: "maintenance", Label: "System Maintenance Alerts", Enabled: true},
		{ID: "offers", Label: "Offers & Promotions", Enabled: false},
	}
}

package seed

import "pgnest/pkg/types"

// ComplaintCategories maps each raise-complaint category to its
// sub-category choices.
func ComplaintCategories() map[string][]string {
	return map[string][]string{
		"Water":       {"No water", "Low pressure", "Leakage"},
		"Electricity": {"Power cut", "Switch issue", "Fan not working"},
		"Wi-Fi":       {"Slow internet", "No internet", "Router issue"},
		"Cleaning":    {"Room cleaning", "Washroom cleaning", "Garbage not cleared"},
		"Food":        {"Poor quality", "Late service", "Hygiene issue"},
	}
}

// ActiveComplaints returns the demo tenant's open complaints.
func ActiveComplaints() []types.Complaint {
	return []types.Complaint{
		{
			ID:          "1",
			Category:    "wifi",
			Title:       "Wi-Fi not working in Room 204",
			Description: "Internet has been down since morning",
			Status:      types.ComplaintStatusInProgress,
			Priority:    types.PriorityHigh,
			CreatedAt:   "2 hours ago",
			AssignedTo:  "Tech Support",
			Progress:    60,
		},
		{
			ID:          "2",
			Category:    "water",
			Title:       "Low water pressure in bathroom",
			Description: "Water pressure is very low during peak hours",
			Status:      types.ComplaintStatusPending,
			Priority:    types.PriorityMedium,
			CreatedAt:   "1 day ago",
			AssignedTo:  "Maintenance",
			Progress:    20,
		},
		{
			ID:          "3",
			Category:    "cleaning",
			Title:       "Common area needs cleaning",
			Description: "The lounge area hasn't been cleaned properly",
			Status:      types.ComplaintStatusPending,
			Priority:    types.PriorityLow,
			CreatedAt:   "2 days ago",
			AssignedTo:  "Housekeeping",
			Progress:    0,
		},
		{
			ID:          "6",
			Category:    "electricity",
			Title:       "Generator issue",
			Description: "Generator not starting",
			Status:      types.ComplaintStatusEscalated,
			Priority:    types.PriorityHigh,
			CreatedAt:   "3 hours ago",
			AssignedTo:  "Maintenance",
			Progress:    10,
		},
	}
}

// ResolvedComplaints returns the demo tenant's closed complaints.
func ResolvedComplaints() []types.Complaint {
	return []types.Complaint{
		{
			ID:         "4",
			Category:   "electricity",
			Title:      "AC not cooling properly",
			Status:     types.ComplaintStatusResolved,
			ResolvedAt: "3 days ago",
			Resolution: "AC filter cleaned and gas refilled",
		},
		{
			ID:         "5",
			Category:   "food",
			Title:      "Food quality complaint",
			Status:     types.ComplaintStatusResolved,
			ResolvedAt: "1 week ago",
			Resolution: "Menu revised based on feedback",
		},
	}
}

// MaintenanceSchedule returns the weekly maintenance slots.
func MaintenanceSchedule() []types.MaintenanceSlot {
	return []types.MaintenanceSlot{
		{Day: "Monday", Task: "Water tank cleaning", Time: "6:00 AM - 8:00 AM"},
		{Day: "Wednesday", Task: "Generator maintenance", Time: "10:00 AM - 12:00 PM"},
		{Day: "Friday", Task: "Pest control", Time: "2:00 PM - 4:00 PM"},
	}
}

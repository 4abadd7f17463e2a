package seed

import "pgnest/pkg/types"

// Documents is the starting document list for a fresh tenant, used
// when the local store has nothing saved.
func Documents() []types.Document {
	return []types.Document{
		{
			ID:         "1",
			Name:       "Rental Agreement",
			Category:   types.DocCategoryAgreement,
			Status:     types.DocumentStatusSigned,
			UploadDate: "Jan 15, 2025",
			ExpiryDate: "Jan 15, 2026",
			Size:       "2.4 MB",
		},
		{
			ID:         "2",
			Name:       "Aadhar Card",
			Category:   types.DocCategoryIDProof,
			Status:     types.DocumentStatusVerified,
			UploadDate: "Jan 10, 2025",
			Size:       "1.2 MB",
		},
		{
			ID:         "3",
			Name:       "PAN Card",
			Category:   types.DocCategoryIDProof,
			Status:     types.DocumentStatusVerified,
			UploadDate: "Jan 10, 2025",
			Size:       "0.8 MB",
		},
		{
			ID:         "4",
			Name:       "Employment Letter",
			Category:   types.DocCategoryOther,
			Status:     types.DocumentStatusPending,
			UploadDate: "Jan 18, 2025",
			Size:       "0.5 MB",
		},
	}
}

// Agreement is the tenant's current rental agreement summary.
func Agreement() types.AgreementSummary {
	return types.AgreementSummary{
		PGName:          "Green Valley PG",
		RoomNumber:      "Room 204",
		StartDate:       "January 15, 2025",
		EndDate:         "January 15, 2026",
		MonthlyRent:     "₹8,500",
		SecurityDeposit: "₹17,000",
		NoticePeriod:    "30 days",
		LockInPeriod:    "6 months",
	}
}

// MoveInChecklist is the onboarding task list shown on the documents
// page.
func MoveInChecklist() []types.ChecklistItem {
	return []types.ChecklistItem{
		{ID: "1", Task: "Advance payment completed", Completed: true},
		{ID: "2", Task: "ID documents uploaded", Completed: true},
		{ID: "3", Task: "Rental agreement signed", Completed: true},
		{ID: "4", Task: "Room assigned", Completed: true},
		{ID: "5", Task: "Move-in date confirmed", Completed: true},
		{ID: "6", Task: "Key/access handover", Completed: false},
		{ID: "7", Task: "Inventory checklist acknowledged", Completed: false},
	}
}

package seed

import "pgnest/pkg/types"

// PaymentHistory returns the demo tenant's transaction list, newest
// first.
func PaymentHistory() []types.Payment {
	return []types.Payment{
		{
			ID:          "1",
			Description: "Monthly Rent - January 2026",
			Amount:      8500,
			Date:        "Jan 05, 2026",
			Status:      types.PaymentStatusPaid,
			Direction:   types.PaymentDebit,
		},
		{
			ID:          "2",
			Description: "Security Deposit Refund",
			Amount:      15000,
			Date:        "Dec 28, 2025",
			Status:      types.PaymentStatusProcessing,
			Direction:   types.PaymentCredit,
		},
		{
			ID:          "3",
			Description: "Monthly Rent - December 2025",
			Amount:      8500,
			Date:        "Dec 05, 2025",
			Status:      types.PaymentStatusPaid,
			Direction:   types.PaymentDebit,
		},
		{
			ID:          "4",
			Description: "Electricity Bill - December",
			Amount:      850,
			Date:        "Dec 10, 2025",
			Status:      types.PaymentStatusPaid,
			Direction:   types.PaymentDebit,
		},
		{
			ID:          "5",
			Description: "Monthly Rent - November 2025",
			Amount:      8500,
			Date:        "Nov 05, 2025",
			Status:      types.PaymentStatusPaid,
			Direction:   types.PaymentDebit,
		},
	}
}

// PendingDues returns the charges awaiting payment.
func PendingDues() []types.PendingDue {
	return []types.PendingDue{
		{ID: "due-rent", Label: "Current Month Rent", Amount: 8500, DueDate: "Feb 05, 2026"},
		{ID: "due-maintenance", Label: "Maintenance Charges", Amount: 500, DueDate: "Feb 10, 2026"},
	}
}

// PaymentStats returns the headline numbers on the payments page.
func PaymentStats() types.PaymentStats {
	return types.PaymentStats{
		CurrentDues:     9000,
		TotalPaid:       68000,
		SecurityDeposit: 17000,
	}
}

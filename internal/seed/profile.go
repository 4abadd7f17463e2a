package seed

import "pgnest/pkg/types"

// Profile returns the demo tenant's personal information.
func Profile() types.Profile {
	return types.Profile{
		FirstName:        "Rahul",
		LastName:         "Kumar",
		Email:            "rahul.kumar@email.com",
		Phone:            "+91 98765 43210",
		DateOfBirth:      "15 Aug 1998",
		Gender:           "Male",
		CurrentAddress:   "Green Valley PG, Kondapur, Hyderabad - 500084",
		PermanentAddress: "123, Main Street, Delhi - 110001",
		EmergencyName:    "Amit Kumar (Father)",
		EmergencyPhone:   "+91 98765 12345",
	}
}

// Verification returns the profile page's document verification
// statuses.
func Verification() []types.VerificationItem {
	return []types.VerificationItem{
		{Label: "Aadhar Card", Verified: true},
		{Label: "PAN Card", Verified: true},
		{Label: "Rental Agreement", Verified: false},
		{Label: "Office ID", Verified: false},
	}
}

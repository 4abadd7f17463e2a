package types

// Profile holds the tenant's personal information. Edits go through a
// draft that only becomes the committed value on an explicit save.
type Profile struct {
	FirstName        string `json:"firstName" form:"first_name"`
	LastName         string `json:"lastName" form:"last_name"`
	Email            string `json:"email" form:"email"`
	Phone            string `json:"phone" form:"phone"`
	DateOfBirth      string `json:"dob" form:"dob"`
	Gender           string `json:"gender" form:"gender"`
	CurrentAddress   string `json:"currentAddress" form:"current_address"`
	PermanentAddress string `json:"permanentAddress" form:"permanent_address"`
	EmergencyName    string `json:"emergencyName" form:"emergency_name"`
	EmergencyPhone   string `json:"emergencyPhone" form:"emergency_phone"`
}

type EditMode string

const (
	EditModeViewing EditMode = "viewing"
	EditModeEditing EditMode = "editing"
)

type VerificationItem struct {
	Label    string `json:"label"`
	Verified bool   `json:"verified"`
}

// Settings is the flat record of toggle and single-choice preferences.
type Settings struct {
	BookingUpdates     bool `json:"bookingUpdates" form:"booking_updates"`
	PaymentReminders   bool `json:"paymentReminders" form:"payment_reminders"`
	VacancyAlerts      bool `json:"vacancyAlerts" form:"vacancy_alerts"`
	PriceDropAlerts    bool `json:"priceDropAlerts" form:"price_drop_alerts"`
	PromotionalOffers  bool `json:"promotionalOffers" form:"promotional_offers"`
	ShowProfileToOwner bool `json:"showProfileToOwners" form:"show_profile_to_owners"`
	ShareLocation      bool `json:"shareLocation" form:"share_location"`
	SearchHistory      bool `json:"searchHistory" form:"search_history"`

	Language  string `json:"language" form:"language"`
	PGType    string `json:"pgType" form:"pg_type"`
	Budget    string `json:"budget" form:"budget"`
	Location  string `json:"location" form:"location"`
	ThemeMode string `json:"themeMode" form:"theme_mode"`
}

// DefaultSettings mirrors the preferences a fresh tenant starts with.
func DefaultSettings() Settings {
	return Settings{
		BookingUpdates:     true,
		PaymentReminders:   true,
		VacancyAlerts:      true,
		ShowProfileToOwner: true,
		ShareLocation:      true,
		SearchHistory:      true,
		Language:           "en",
		PGType:             "boys",
		Budget:             "medium",
		Location:           "hitech",
		ThemeMode:          "light",
	}
}

// ChangePasswordRequest carries the password form. Nothing is stored;
// the demo only validates the fields.
type ChangePasswordRequest struct {
	OldPassword     string `form:"old_password"`
	NewPassword     string `form:"new_password"`
	ConfirmPassword string `form:"confirm_password"`
}

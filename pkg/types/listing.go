package types

type ListingCategory string

const (
	CategoryBoys     ListingCategory = "boys"
	CategoryGirls    ListingCategory = "girls"
	CategoryColiving ListingCategory = "coliving"
	CategoryFamily   ListingCategory = "family"
	CategoryShort    ListingCategory = "short"
)

type Availability string

const (
	AvailabilityAvailable Availability = "available"
	AvailabilityLimited   Availability = "limited"
	AvailabilityFull      Availability = "full"
)

// Listing is a PG/hostel catalog entry. Instances come from the seed
// catalog and are never mutated in place; filtering and sorting always
// produce new views.
type Listing struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Location     string          `json:"location"`
	Price        int             `json:"price"`
	Rating       float64         `json:"rating"`
	ReviewCount  int             `json:"reviewCount"`
	Image        string          `json:"image"`
	Category     ListingCategory `json:"type"`
	Sharing      string          `json:"sharing"`
	Distance     string          `json:"distance,omitempty"`
	Amenities    []string        `json:"amenities"`
	IsVerified   bool            `json:"isVerified,omitempty"`
	IsTrending   bool            `json:"isTrending,omitempty"`
	IsNew        bool            `json:"isNew,omitempty"`
	Availability Availability    `json:"availability"`
	Lat          *float64        `json:"lat,omitempty"`
	Lng          *float64        `json:"lng,omitempty"`
}

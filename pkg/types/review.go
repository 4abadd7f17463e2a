package types

// ReviewCategoryLabels are the aspect ratings collected with a review,
// in display order.
var ReviewCategoryLabels = []string{
	"Cleanliness",
	"Food Quality",
	"Wi-Fi Speed",
	"Safety",
	"Value for Money",
}

type Review struct {
	ID         string         `json:"id"`
	PGID       string         `json:"pgId"`
	PGName     string         `json:"pgName"`
	Rating     int            `json:"rating"`
	Date       string         `json:"date"`
	Comment    string         `json:"comment"`
	Helpful    int            `json:"helpful"`
	Categories map[string]int `json:"categories"`
	Photos     []string       `json:"photos"`
}

// ReviewRequest is the write-a-review form payload.
type ReviewRequest struct {
	PGID       string         `json:"pgId" form:"pg_id"`
	Rating     int            `json:"rating" form:"rating"`
	Comment    string         `json:"comment" form:"comment"`
	Categories map[string]int `json:"categories" form:"-"`
	Photos     []string       `json:"photos" form:"-"`
}

package types

type PaymentStatus string

const (
	PaymentStatusPaid       PaymentStatus = "paid"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusFailed     PaymentStatus = "failed"
)

type PaymentDirection string

const (
	PaymentDebit  PaymentDirection = "debit"
	PaymentCredit PaymentDirection = "credit"
)

type Payment struct {
	ID          string           `json:"id"`
	Description string           `json:"description"`
	Amount      int              `json:"amount"`
	Date        string           `json:"date"`
	Status      PaymentStatus    `json:"status"`
	Direction   PaymentDirection `json:"type"`
}

// PendingDue is an upcoming charge the tenant can settle from the
// payments page.
type PendingDue struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Amount  int    `json:"amount"`
	DueDate string `json:"dueDate"`
}

type PaymentStats struct {
	CurrentDues     int `json:"currentDues"`
	TotalPaid       int `json:"totalPaid"`
	SecurityDeposit int `json:"securityDeposit"`
}

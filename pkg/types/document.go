package types

type DocumentStatus string

const (
	DocumentStatusSigned   DocumentStatus = "signed"
	DocumentStatusVerified DocumentStatus = "verified"
	DocumentStatusPending  DocumentStatus = "pending"
	DocumentStatusExpired  DocumentStatus = "expired"
)

type DocumentCategory string

const (
	DocCategoryAgreement DocumentCategory = "agreement"
	DocCategoryIDProof   DocumentCategory = "id_proof"
	DocCategoryOther     DocumentCategory = "other"
)

// Document is a tenant-uploaded (or seeded demo) file record. Uploaded
// files carry their content as a data URL in FileData; seeded demo rows
// have no payload and cannot be downloaded.
type Document struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Category   DocumentCategory `json:"type"`
	Status     DocumentStatus   `json:"status"`
	UploadDate string           `json:"uploadDate"`
	ExpiryDate string           `json:"expiryDate,omitempty"`
	Size       string           `json:"size"`
	FileData   string           `json:"fileData,omitempty"`
	FileName   string           `json:"fileName,omitempty"`
	FileType   string           `json:"fileType,omitempty"`
}

// AgreementSummary is the read-only rental agreement card on the
// documents page.
type AgreementSummary struct {
	PGName          string `json:"pgName"`
	RoomNumber      string `json:"roomNumber"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	MonthlyRent     string `json:"monthlyRent"`
	SecurityDeposit string `json:"securityDeposit"`
	NoticePeriod    string `json:"noticePeriod"`
	LockInPeriod    string `json:"lockInPeriod"`
}

type ChecklistItem struct {
	ID        string `json:"id"`
	Task      string `json:"task"`
	Completed bool   `json:"completed"`
}

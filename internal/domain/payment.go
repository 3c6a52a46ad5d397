package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusVerified PaymentStatus = "VERIFIED"
	PaymentStatusRejected PaymentStatus = "REJECTED"
)

// Payment is a single dues submission. An applicant may accumulate any
// number of them; "has paid" is derived from the presence of a VERIFIED
// row, never stored.
type Payment struct {
	ID            int32         `json:"id"`
	BiodataID     int32         `json:"biodata_id"`
	SenderName    string        `json:"sender_name"`
	SenderBank    string        `json:"sender_bank"`
	AccountNumber string        `json:"account_number"`
	TransferDate  string        `json:"transfer_date"`
	ProofPath     string        `json:"proof_path"`
	Status        PaymentStatus `json:"status"`
	RejectReason  *string       `json:"reject_reason,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

// PaymentTally groups an applicant's submissions by status.
type PaymentTally struct {
	Pending  int32 `json:"pending"`
	Verified int32 `json:"verified"`
	Rejected int32 `json:"rejected"`
}

package domain

// ApplicantView is the denormalized per-applicant status the presentation
// layer shows. It is computed fresh from the database on demand and never
// cached beyond the request.
type ApplicantView struct {
	AccountID           int32         `json:"account_id"`
	Name                string        `json:"name"`
	Email               string        `json:"email"`
	AccountStatus       AccountStatus `json:"account_status"`
	AccountRejectReason *string       `json:"account_reject_reason,omitempty"`

	BiodataID           *int32  `json:"biodata_id,omitempty"`
	BiodataEmpty        bool    `json:"biodata_empty"`
	BiodataVerified     bool    `json:"biodata_verified"`
	BiodataRejected     bool    `json:"biodata_rejected"`
	BiodataRejectReason *string `json:"biodata_reject_reason,omitempty"`

	HasPaid             bool    `json:"has_paid"`
	PaymentPending      bool    `json:"payment_pending"`
	PaymentRejected     bool    `json:"payment_rejected"`
	PaymentRejectReason *string `json:"payment_reject_reason,omitempty"`
}

// AdminStats backs the staff dashboard badges.
type AdminStats struct {
	PendingAccounts int32 `json:"pending_accounts"`
	PendingBiodata  int32 `json:"pending_biodata"`
	PendingPayments int32 `json:"pending_payments"`
	TotalApplicants int32 `json:"total_applicants"`
	Male            int32 `json:"male"`
	Female          int32 `json:"female"`
}

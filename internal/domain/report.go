package domain

import "time"

type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "PENDING"
	ReportStatusApproved ReportStatus = "APPROVED"
	ReportStatusRejected ReportStatus = "REJECTED"
)

// Report is a periodic payment summary the treasury submits to the chair.
// TotalVerified is a point-in-time snapshot taken at creation; it is never
// recomputed even if the underlying payment rows change afterwards.
type Report struct {
	ID            int32        `json:"id"`
	PeriodStart   time.Time    `json:"period_start"`
	PeriodEnd     time.Time    `json:"period_end"`
	TotalVerified int32        `json:"total_verified"`
	Note          string       `json:"note"`
	CreatedBy     int32        `json:"created_by"`
	CreatorName   string       `json:"creator_name,omitempty"`
	Status        ReportStatus `json:"status"`
	ApprovedBy    *int32       `json:"approved_by,omitempty"`
	ApproverName  string       `json:"approver_name,omitempty"`
	ApprovedAt    *time.Time   `json:"approved_at,omitempty"`
	ChairComment  *string      `json:"chair_comment,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}

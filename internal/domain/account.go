package domain

import "time"

type AccountStatus string

const (
	AccountStatusPending  AccountStatus = "PENDING"
	AccountStatusVerified AccountStatus = "VERIFIED"
	AccountStatusRejected AccountStatus = "REJECTED"
)

// Account is the applicant's login record, one per registrant email.
// Email is immutable after registration; biodata rows link back to it
// by email equality.
type Account struct {
	ID           int32         `json:"id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	PasswordHash string        `json:"-"`
	Phone        string        `json:"phone"`
	Group        string        `json:"group"`
	Village      string        `json:"village"`
	Region       string        `json:"region"`
	Campus       string        `json:"campus"`
	StudyProgram string        `json:"study_program"`
	Status       AccountStatus `json:"status"`
	RejectReason *string       `json:"reject_reason,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
}

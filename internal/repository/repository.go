package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Amarie1212/ppmnurulhakim/internal/domain"
)

// ErrNoVerifiedPayments is returned by PaymentRepository.VerifiedPeriod when
// no VERIFIED rows exist to derive a reporting period from.
var ErrNoVerifiedPayments = errors.New("no verified payments")

type AccountRepository interface {
	Create(ctx context.Context, acc *domain.Account) error
	GetByID(ctx context.Context, id int32) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	// NameExists matches case-insensitively.
	NameExists(ctx context.Context, name string) (bool, error)
	UpdateStatus(ctx context.Context, id int32, status domain.AccountStatus, reason *string) error
	// UpdateProfile overwrites the self-editable fields and resets the
	// account to PENDING with the rejection reason cleared.
	UpdateProfile(ctx context.Context, email string, acc *domain.Account) error
	UpdateName(ctx context.Context, email, name string) error
	List(ctx context.Context) ([]domain.Account, error)
	ListByStatus(ctx context.Context, status domain.AccountStatus) ([]domain.Account, error)
}

type BiodataRepository interface {
	Create(ctx context.Context, b *domain.Biodata) error
	GetByID(ctx context.Context, id int32) (*domain.Biodata, error)
	GetByEmail(ctx context.Context, email string) (*domain.Biodata, error)
	// Update overwrites every field of the row matched by email, including
	// status and reason. Callers force status back to PENDING on resubmit.
	Update(ctx context.Context, b *domain.Biodata) error
	UpdateStatus(ctx context.Context, id int32, status domain.BiodataStatus, reason *string) error
	List(ctx context.Context) ([]domain.Biodata, error)
	ListByStatus(ctx context.Context, status domain.BiodataStatus) ([]domain.Biodata, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByID(ctx context.Context, id int32) (*domain.Payment, error)
	UpdateStatus(ctx context.Context, id int32, status domain.PaymentStatus, reason *string) error
	Delete(ctx context.Context, id int32) error
	ListByBiodata(ctx context.Context, biodataID int32) ([]domain.Payment, error)
	ListByStatus(ctx context.Context, status domain.PaymentStatus) ([]domain.Payment, error)
	HasStatus(ctx context.Context, biodataID int32, status domain.PaymentStatus) (bool, error)
	LatestRejected(ctx context.Context, biodataID int32) (*domain.Payment, error)
	CountVerified(ctx context.Context) (int32, error)
	CountVerifiedInRange(ctx context.Context, start, end time.Time) (int32, error)
	// VerifiedPeriod returns the min/max creation times over VERIFIED rows.
	VerifiedPeriod(ctx context.Context) (start, end time.Time, err error)
}

type StaffRepository interface {
	Create(ctx context.Context, s *domain.Staff) error
	GetByID(ctx context.Context, id int32) (*domain.Staff, error)
	GetByEmail(ctx context.Context, email string) (*domain.Staff, error)
	Update(ctx context.Context, s *domain.Staff) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Staff, error)
	ListByRoles(ctx context.Context, roles ...domain.StaffRole) ([]domain.Staff, error)
}

type ReportRepository interface {
	Create(ctx context.Context, r *domain.Report) error
	GetByID(ctx context.Context, id int32) (*domain.Report, error)
	// SetDecision records the chair's one-time approve/reject verdict.
	SetDecision(ctx context.Context, id int32, status domain.ReportStatus, approvedBy int32, comment *string) error
	List(ctx context.Context, limit int32) ([]domain.Report, error)
}

type SettingRepository interface {
	Get(ctx context.Context, key string) (*domain.Setting, error)
	Upsert(ctx context.Context, s *domain.Setting) error
}

// AdminRepository covers the cross-table reads and the cascading delete
// that do not belong to any single entity repository.
type AdminRepository interface {
	Stats(ctx context.Context) (*domain.AdminStats, error)
	// DeleteApplicantCascade removes the applicant's payment rows, biodata
	// row and account row inside one transaction. biodataID is nil when no
	// biodata was ever submitted.
	DeleteApplicantCascade(ctx context.Context, email string, biodataID *int32) error
	// ReferencedBlobPaths returns every document and proof path any row
	// still points at. The orphan-cleanup job treats everything else in
	// the upload directory as deletable.
	ReferencedBlobPaths(ctx context.Context) ([]string, error)
}

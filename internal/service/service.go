package service

import (
	"context"
	"errors"
	"io"

	"github.com/Amarie1212/ppmnurulhakim/internal/domain"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrDuplicateName      = errors.New("name already registered")
	ErrNotFound           = errors.New("record not found")
	ErrReasonRequired     = errors.New("rejection reason required")
	ErrNotRejected        = errors.New("record is not rejected")
	ErrAccountNotVerified = errors.New("account not verified yet")
	ErrMissingBiodata     = errors.New("biodata not submitted yet")
	ErrIncompleteFields   = errors.New("required fields missing")
	ErrInvalidAccessCode  = errors.New("invalid access code")
	ErrSelfDelete         = errors.New("cannot delete own account")
	ErrAlreadyDecided     = errors.New("report already decided")
	ErrNoVerifiedPayments = errors.New("no verified payments to report")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrInvalidRole        = errors.New("invalid staff role")
)

// TokenPair is what every successful login hands back.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Upload carries one multipart file from the handler into a service. Key
// is assigned by the service once the blob is saved.
type Upload struct {
	Filename string
	Reader   io.Reader
}

type AuthService interface {
	Register(ctx context.Context, acc *domain.Account, password string) (*domain.Account, *TokenPair, error)
	LoginApplicant(ctx context.Context, email, password string) (*domain.Account, *TokenPair, error)
	LoginStaff(ctx context.Context, email, password string) (*domain.Staff, *TokenPair, error)
	RefreshToken(ctx context.Context, refresh string) (*TokenPair, error)
	VerifyAccessCode(ctx context.Context, code string) error
}

type AccountService interface {
	Get(ctx context.Context, id int32) (*domain.Account, error)
	ListPending(ctx context.Context) ([]domain.Account, error)
	Approve(ctx context.Context, id int32) error
	Reject(ctx context.Context, id int32, reason string) error
	// SelfEdit lets a rejected applicant fix their submission. It fails
	// unless the account is currently REJECTED, and always resets the
	// account to PENDING.
	SelfEdit(ctx context.Context, email string, acc *domain.Account, newPassword string) error
}

type BiodataService interface {
	// Submit creates or overwrites the applicant's biodata and forces it
	// back to PENDING. Document slots left nil keep their previous blobs.
	Submit(ctx context.Context, email string, b *domain.Biodata, docs map[string]*Upload) (*domain.Biodata, error)
	GetByEmail(ctx context.Context, email string) (*domain.Biodata, error)
	List(ctx context.Context) ([]domain.Biodata, error)
	ListPending(ctx context.Context) ([]domain.Biodata, error)
	Approve(ctx context.Context, id int32) error
	Reject(ctx context.Context, id int32, reason string) error
}

type PaymentService interface {
	Submit(ctx context.Context, email string, p *domain.Payment, proof *Upload) (*domain.Payment, error)
	ListPending(ctx context.Context) ([]domain.Payment, error)
	History(ctx context.Context, email string) ([]domain.Payment, *domain.PaymentTally, error)
	Verify(ctx context.Context, id int32) error
	RejectWithReason(ctx context.Context, id int32, reason string) error
	// PurgeRejected deletes a REJECTED submission row and its proof blob.
	PurgeRejected(ctx context.Context, id int32) error
}

type ReportService interface {
	// SubmitAuto derives the report period from the span of VERIFIED
	// payment rows and snapshots their count.
	SubmitAuto(ctx context.Context, createdBy int32, note string) (*domain.Report, error)
	Submit(ctx context.Context, createdBy int32, r *domain.Report) (*domain.Report, error)
	Approve(ctx context.Context, id, chairID int32, comment string) error
	Reject(ctx context.Context, id, chairID int32, comment string) error
	List(ctx context.Context, limit int32) ([]domain.Report, error)
}

type StaffService interface {
	Create(ctx context.Context, s *domain.Staff, password string) (*domain.Staff, error)
	Update(ctx context.Context, s *domain.Staff, newPassword string) error
	Delete(ctx context.Context, actorID, id int32) error
	List(ctx context.Context) ([]domain.Staff, error)
}

type ApplicantService interface {
	List(ctx context.Context) ([]domain.ApplicantView, error)
	Detail(ctx context.Context, email string) (*domain.ApplicantView, error)
	// Delete removes the applicant entirely: blobs first (best effort),
	// then the payment, biodata and account rows in one transaction.
	Delete(ctx context.Context, email string) error
	Stats(ctx context.Context) (*domain.AdminStats, error)
}

type SettingService interface {
	GetAccessCode(ctx context.Context) (*domain.Setting, error)
	SetAccessCode(ctx context.Context, code, updatedBy string) error
}

type EmailService interface {
	SendWelcome(ctx context.Context, email, name string) error
	SendAccountDecision(ctx context.Context, email, name string, approved bool, reason string) error
	SendBiodataDecision(ctx context.Context, email, name string, approved bool, reason string) error
	SendPaymentDecision(ctx context.Context, email, name string, approved bool, reason string) error
	SendPendingReviewDigest(ctx context.Context, email, name string, stats *domain.AdminStats) error
}

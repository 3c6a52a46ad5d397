package service_test

import (
	"context"
	"database/sql"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Amarie1212/ppmnurulhakim/internal/domain"
)

func errNoRows() error { return sql.ErrNoRows }

// MockAccountRepo
type MockAccountRepo struct {
	mock.Mock
}

func (m *MockAccountRepo) Create(ctx context.Context, acc *domain.Account) error {
	args := m.Called(ctx, acc)
	return args.Error(0)
}
func (m *MockAccountRepo) GetByID(ctx context.Context, id int32) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}
func (m *MockAccountRepo) NameExists(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}
func (m *MockAccountRepo) UpdateStatus(ctx context.Context, id int32, status domain.AccountStatus, reason *string) error {
	args := m.Called(ctx, id, status, reason)
	return args.Error(0)
}
func (m *MockAccountRepo) UpdateProfile(ctx context.Context, email string, acc *domain.Account) error {
	args := m.Called(ctx, email, acc)
	return args.Error(0)
}
func (m *MockAccountRepo) UpdateName(ctx context.Context, email, name string) error {
	args := m.Called(ctx, email, name)
	return args.Error(0)
}
func (m *MockAccountRepo) List(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountRepo) ListByStatus(ctx context.Context, status domain.AccountStatus) ([]domain.Account, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Account), args.Error(1)
}

// MockBiodataRepo
type MockBiodataRepo struct {
	mock.Mock
}

func (m *MockBiodataRepo) Create(ctx context.Context, b *domain.Biodata) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBiodataRepo) GetByID(ctx context.Context, id int32) (*domain.Biodata, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Biodata), args.Error(1)
}
func (m *MockBiodataRepo) GetByEmail(ctx context.Context, email string) (*domain.Biodata, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Biodata), args.Error(1)
}
func (m *MockBiodataRepo) Update(ctx context.Context, b *domain.Biodata) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBiodataRepo) UpdateStatus(ctx context.Context, id int32, status domain.BiodataStatus, reason *string) error {
	args := m.Called(ctx, id, status, reason)
	return args.Error(0)
}
func (m *MockBiodataRepo) List(ctx context.Context) ([]domain.Biodata, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Biodata), args.Error(1)
}
func (m *MockBiodataRepo) ListByStatus(ctx context.Context, status domain.BiodataStatus) ([]domain.Biodata, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Biodata), args.Error(1)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepo) GetByID(ctx context.Context, id int32) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) UpdateStatus(ctx context.Context, id int32, status domain.PaymentStatus, reason *string) error {
	args := m.Called(ctx, id, status, reason)
	return args.Error(0)
}
func (m *MockPaymentRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPaymentRepo) ListByBiodata(ctx context.Context, biodataID int32) ([]domain.Payment, error) {
	args := m.Called(ctx, biodataID)
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) ListByStatus(ctx context.Context, status domain.PaymentStatus) ([]domain.Payment, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) HasStatus(ctx context.Context, biodataID int32, status domain.PaymentStatus) (bool, error) {
	args := m.Called(ctx, biodataID, status)
	return args.Bool(0), args.Error(1)
}
func (m *MockPaymentRepo) LatestRejected(ctx context.Context, biodataID int32) (*domain.Payment, error) {
	args := m.Called(ctx, biodataID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) CountVerified(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockPaymentRepo) CountVerifiedInRange(ctx context.Context, start, end time.Time) (int32, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockPaymentRepo) VerifiedPeriod(ctx context.Context) (time.Time, time.Time, error) {
	args := m.Called(ctx)
	return args.Get(0).(time.Time), args.Get(1).(time.Time), args.Error(2)
}

// MockStaffRepo
type MockStaffRepo struct {
	mock.Mock
}

func (m *MockStaffRepo) Create(ctx context.Context, s *domain.Staff) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockStaffRepo) GetByID(ctx context.Context, id int32) (*domain.Staff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Staff), args.Error(1)
}
func (m *MockStaffRepo) GetByEmail(ctx context.Context, email string) (*domain.Staff, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Staff), args.Error(1)
}
func (m *MockStaffRepo) Update(ctx context.Context, s *domain.Staff) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockStaffRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockStaffRepo) List(ctx context.Context) ([]domain.Staff, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Staff), args.Error(1)
}
func (m *MockStaffRepo) ListByRoles(ctx context.Context, roles ...domain.StaffRole) ([]domain.Staff, error) {
	callArgs := make([]any, 0, len(roles)+1)
	callArgs = append(callArgs, ctx)
	for _, r := range roles {
		callArgs = append(callArgs, r)
	}
	args := m.Called(callArgs...)
	return args.Get(0).([]domain.Staff), args.Error(1)
}

// MockReportRepo
type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) Create(ctx context.Context, r *domain.Report) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockReportRepo) GetByID(ctx context.Context, id int32) (*domain.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}
func (m *MockReportRepo) SetDecision(ctx context.Context, id int32, status domain.ReportStatus, approvedBy int32, comment *string) error {
	args := m.Called(ctx, id, status, approvedBy, comment)
	return args.Error(0)
}
func (m *MockReportRepo) List(ctx context.Context, limit int32) ([]domain.Report, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.Report), args.Error(1)
}

// MockSettingRepo
type MockSettingRepo struct {
	mock.Mock
}

func (m *MockSettingRepo) Get(ctx context.Context, key string) (*domain.Setting, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Setting), args.Error(1)
}
func (m *MockSettingRepo) Upsert(ctx context.Context, s *domain.Setting) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

// MockAdminRepo
type MockAdminRepo struct {
	mock.Mock
}

func (m *MockAdminRepo) Stats(ctx context.Context) (*domain.AdminStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminStats), args.Error(1)
}
func (m *MockAdminRepo) DeleteApplicantCascade(ctx context.Context, email string, biodataID *int32) error {
	args := m.Called(ctx, email, biodataID)
	return args.Error(0)
}
func (m *MockAdminRepo) ReferencedBlobPaths(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

// MockStorage
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Save(ctx context.Context, key string, reader io.Reader) error {
	args := m.Called(ctx, key, reader)
	return args.Error(0)
}
func (m *MockStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
func (m *MockStorage) Exists(ctx context.Context, key string) (bool, int64, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}
func (m *MockStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}
func (m *MockStorage) List(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendWelcome(ctx context.Context, email, name string) error {
	args := m.Called(ctx, email, name)
	return args.Error(0)
}
func (m *MockEmailService) SendAccountDecision(ctx context.Context, email, name string, approved bool, reason string) error {
	args := m.Called(ctx, email, name, approved, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendBiodataDecision(ctx context.Context, email, name string, approved bool, reason string) error {
	args := m.Called(ctx, email, name, approved, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendPaymentDecision(ctx context.Context, email, name string, approved bool, reason string) error {
	args := m.Called(ctx, email, name, approved, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendPendingReviewDigest(ctx context.Context, email, name string, stats *domain.AdminStats) error {
	args := m.Called(ctx, email, name, stats)
	return args.Error(0)
}

package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Amarie1212/ppmnurulhakim/internal/domain"
	"github.com/Amarie1212/ppmnurulhakim/internal/service"
)

func TestAccountService_Approve(t *testing.T) {
	ctx := context.Background()
	accountRepo := new(MockAccountRepo)
	emailSvc := new(MockEmailService)
	svc := service.NewAccountService(accountRepo, emailSvc)

	accountRepo.On("GetByID", ctx, int32(1)).
		Return(&domain.Account{ID: 1, Name: "Budi", Email: "budi@example.com", Status: domain.AccountStatusPending}, nil).Once()
	accountRepo.On("UpdateStatus", ctx, int32(1), domain.AccountStatusVerified, (*string)(nil)).Return(nil).Once()
	emailSvc.On("SendAccountDecision", ctx, "budi@example.com", "Budi", true, "").Return(nil).Once()

	assert.NoError(t, svc.Approve(ctx, 1))
	accountRepo.AssertExpectations(t)
	emailSvc.AssertExpectations(t)
}

func TestAccountService_Reject(t *testing.T) {
	ctx := context.Background()

	t.Run("ReasonRequired", func(t *testing.T) {
		svc := service.NewAccountService(new(MockAccountRepo), new(MockEmailService))
		assert.ErrorIs(t, svc.Reject(ctx, 1, "   "), service.ErrReasonRequired)
	})

	t.Run("StoresReason", func(t *testing.T) {
		accountRepo := new(MockAccountRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewAccountService(accountRepo, emailSvc)

		accountRepo.On("GetByID", ctx, int32(1)).
			Return(&domain.Account{ID: 1, Name: "Budi", Email: "budi@example.com"}, nil).Once()
		accountRepo.On("UpdateStatus", ctx, int32(1), domain.AccountStatusRejected, mock.MatchedBy(func(r *string) bool {
			return r != nil && *r == "photo unreadable"
		})).Return(nil).Once()
		emailSvc.On("SendAccountDecision", ctx, "budi@example.com", "Budi", false, "photo unreadable").Return(nil).Once()

		assert.NoError(t, svc.Reject(ctx, 1, "photo unreadable"))
		accountRepo.AssertExpectations(t)
	})
}

func TestAccountService_SelfEdit(t *testing.T) {
	ctx := context.Background()

	t.Run("OnlyWhenRejected", func(t *testing.T) {
		accountRepo := new(MockAccountRepo)
		svc := service.NewAccountService(accountRepo, new(MockEmailService))

		for _, status := range []domain.AccountStatus{domain.AccountStatusPending, domain.AccountStatusVerified} {
			accountRepo.On("GetByEmail", ctx, "budi@example.com").
				Return(&domain.Account{Email: "budi@example.com", Status: status}, nil).Once()
			err := svc.SelfEdit(ctx, "budi@example.com", &domain.Account{Name: "Budi"}, "")
			assert.ErrorIs(t, err, service.ErrNotRejected)
		}
	})

	t.Run("ResetsToPending", func(t *testing.T) {
		accountRepo := new(MockAccountRepo)
		svc := service.NewAccountService(accountRepo, new(MockEmailService))

		reason := "typo in name"
		accountRepo.On("GetByEmail", ctx, "budi@example.com").
			Return(&domain.Account{
				Name: "Budi", Email: "budi@example.com", PasswordHash: "oldhash",
				Status: domain.AccountStatusRejected, RejectReason: &reason,
			}, nil).Once()
		accountRepo.On("UpdateProfile", ctx, "budi@example.com", mock.MatchedBy(func(a *domain.Account) bool {
			return a.Name == "Budi Santoso" && a.PasswordHash == "oldhash"
		})).Return(nil).Once()
		accountRepo.On("NameExists", ctx, "Budi Santoso").Return(false, nil).Once()

		err := svc.SelfEdit(ctx, "budi@example.com", &domain.Account{Name: "budi santoso"}, "")
		assert.NoError(t, err)
		accountRepo.AssertExpectations(t)
	})

	t.Run("NameTakenByAnother", func(t *testing.T) {
		accountRepo := new(MockAccountRepo)
		svc := service.NewAccountService(accountRepo, new(MockEmailService))

		accountRepo.On("GetByEmail", ctx, "budi@example.com").
			Return(&domain.Account{Name: "Budi", Email: "budi@example.com", Status: domain.AccountStatusRejected}, nil).Once()
		accountRepo.On("NameExists", ctx, "Andi").Return(true, nil).Once()

		err := svc.SelfEdit(ctx, "budi@example.com", &domain.Account{Name: "andi"}, "")
		assert.ErrorIs(t, err, service.ErrDuplicateName)
	})
}

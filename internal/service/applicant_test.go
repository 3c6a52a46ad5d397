package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Amarie1212/ppmnurulhakim/internal/domain"
	"github.com/Amarie1212/ppmnurulhakim/internal/service"
)

func TestApplicantService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("CascadeWithBlobs", func(t *testing.T) {
		accountRepo := new(MockAccountRepo)
		biodataRepo := new(MockBiodataRepo)
		paymentRepo := new(MockPaymentRepo)
		adminRepo := new(MockAdminRepo)
		store := new(MockStorage)
		svc := service.NewApplicantService(accountRepo, biodataRepo, paymentRepo, adminRepo, store)

		accountRepo.On("GetByEmail", ctx, "budi@example.com").
			Return(&domain.Account{ID: 1, Email: "budi@example.com"}, nil).Once()
		biodataRepo.On("GetByEmail", ctx, "budi@example.com").
			Return(&domain.Biodata{ID: 5, PhotoPath: "photo.jpg", IDCardPath: "id.jpg"}, nil).Once()
		paymentRepo.On("ListByBiodata", ctx, int32(5)).Return([]domain.Payment{
			{ID: 9, ProofPath: "proof.jpg"},
		}, nil).Once()
		store.On("Delete", ctx, "photo.jpg").Return(nil).Once()
		store.On("Delete", ctx, "id.jpg").Return(nil).Once()
		store.On("Delete", ctx, "proof.jpg").Return(nil).Once()
		adminRepo.On("DeleteApplicantCascade", ctx, "budi@example.com", mock.MatchedBy(func(id *int32) bool {
			return id != nil && *id == 5
		})).Return(nil).Once()

		assert.NoError(t, svc.Delete(ctx, "budi@example.com"))
		store.AssertExpectations(t)
		adminRepo.AssertExpectations(t)
	})

	t.Run("AccountOnly", func(t *testing.T) {
		accountRepo := new(MockAccountRepo)
		biodataRepo := new(MockBiodataRepo)
		adminRepo := new(MockAdminRepo)
		svc := service.NewApplicantService(accountRepo, biodataRepo, new(MockPaymentRepo), adminRepo, new(MockStorage))

		accountRepo.On("GetByEmail", ctx, "budi@example.com").
			Return(&domain.Account{ID: 1, Email: "budi@example.com"}, nil).Once()
		biodataRepo.On("GetByEmail", ctx, "budi@example.com").Return(nil, errNoRows()).Once()
		adminRepo.On("DeleteApplicantCascade", ctx, "budi@example.com", (*int32)(nil)).Return(nil).Once()

		assert.NoError(t, svc.Delete(ctx, "budi@example.com"))
		adminRepo.AssertExpectations(t)
	})

	t.Run("UnknownApplicant", func(t *testing.T) {
		accountRepo := new(MockAccountRepo)
		svc := service.NewApplicantService(accountRepo, new(MockBiodataRepo), new(MockPaymentRepo), new(MockAdminRepo), new(MockStorage))

		accountRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, errNoRows()).Once()

		assert.ErrorIs(t, svc.Delete(ctx, "ghost@example.com"), service.ErrNotFound)
	})
}

func TestApplicantService_List(t *testing.T) {
	ctx := context.Background()
	accountRepo := new(MockAccountRepo)
	biodataRepo := new(MockBiodataRepo)
	paymentRepo := new(MockPaymentRepo)
	svc := service.NewApplicantService(accountRepo, biodataRepo, paymentRepo, new(MockAdminRepo), new(MockStorage))

	accountRepo.On("List", ctx).Return([]domain.Account{
		{ID: 1, Email: "a@example.com", Status: domain.AccountStatusVerified},
		{ID: 2, Email: "b@example.com", Status: domain.AccountStatusPending},
	}, nil).Once()
	biodataRepo.On("GetByEmail", ctx, "a@example.com").
		Return(&domain.Biodata{ID: 5, Status: domain.BiodataStatusVerified}, nil).Once()
	biodataRepo.On("GetByEmail", ctx, "b@example.com").Return(nil, errNoRows()).Once()
	paymentRepo.On("HasStatus", ctx, int32(5), domain.PaymentStatusVerified).Return(true, nil).Once()
	paymentRepo.On("HasStatus", ctx, int32(5), domain.PaymentStatusPending).Return(false, nil).Once()

	views, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, views, 2)
	assert.True(t, views[0].HasPaid)
	assert.True(t, views[1].BiodataEmpty)
}

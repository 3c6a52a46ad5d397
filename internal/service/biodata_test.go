package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Amarie1212/ppmnurulhakim/internal/domain"
	"github.com/Amarie1212/ppmnurulhakim/internal/service"
)

func verifiedAccount() *domain.Account {
	return &domain.Account{ID: 1, Name: "Budi Santoso", Email: "budi@example.com", Status: domain.AccountStatusVerified}
}

func TestBiodataService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("RequiresVerifiedAccount", func(t *testing.T) {
		accountRepo := new(MockAccountRepo)
		svc := service.NewBiodataService(new(MockBiodataRepo), accountRepo, new(MockStorage), new(MockEmailService))

		accountRepo.On("GetByEmail", ctx, "budi@example.com").
			Return(&domain.Account{Email: "budi@example.com", Status: domain.AccountStatusPending}, nil).Once()

		_, err := svc.Submit(ctx, "budi@example.com", &domain.Biodata{Gender: "L"}, nil)
		assert.ErrorIs(t, err, service.ErrAccountNotVerified)
	})

	t.Run("FirstSubmissionCreatesPending", func(t *testing.T) {
		accountRepo := new(MockAccountRepo)
		biodataRepo := new(MockBiodataRepo)
		store := new(MockStorage)
		svc := service.NewBiodataService(biodataRepo, accountRepo, store, new(MockEmailService))

		accountRepo.On("GetByEmail", ctx, "budi@example.com").Return(verifiedAccount(), nil).Once()
		biodataRepo.On("GetByEmail", ctx, "budi@example.com").Return(nil, errNoRows()).Once()
		store.On("Save", ctx, mock.AnythingOfType("string"), mock.Anything).Return(nil).Once()
		biodataRepo.On("Create", ctx, mock.MatchedBy(func(b *domain.Biodata) bool {
			return b.Status == domain.BiodataStatusPending && b.RejectReason == nil && b.PhotoPath != ""
		})).Return(nil).Once()

		docs := map[string]*service.Upload{
			service.DocPhoto: {Filename: "photo.jpg", Reader: strings.NewReader("img")},
		}
		b, err := svc.Submit(ctx, "budi@example.com", &domain.Biodata{Name: "Budi Santoso", Gender: "L"}, docs)
		assert.NoError(t, err)
		assert.Equal(t, domain.BiodataStatusPending, b.Status)
		biodataRepo.AssertExpectations(t)
	})

	t.Run("ResubmitClearsRejection", func(t *testing.T) {
		accountRepo := new(MockAccountRepo)
		biodataRepo := new(MockBiodataRepo)
		store := new(MockStorage)
		svc := service.NewBiodataService(biodataRepo, accountRepo, store, new(MockEmailService))

		reason := "blurry id card"
		accountRepo.On("GetByEmail", ctx, "budi@example.com").Return(verifiedAccount(), nil).Once()
		biodataRepo.On("GetByEmail", ctx, "budi@example.com").Return(&domain.Biodata{
			ID: 5, Email: "budi@example.com", Name: "Budi Santoso",
			PhotoPath: "old_photo.jpg", IDCardPath: "old_id.jpg",
			Status: domain.BiodataStatusRejected, RejectReason: &reason,
		}, nil).Once()
		store.On("Save", ctx, mock.AnythingOfType("string"), mock.Anything).Return(nil).Once()
		biodataRepo.On("Update", ctx, mock.MatchedBy(func(b *domain.Biodata) bool {
			// Status forced back to PENDING, reason cleared, untouched
			// slot keeps its blob, replaced slot gets a fresh key.
			return b.ID == 5 &&
				b.Status == domain.BiodataStatusPending &&
				b.RejectReason == nil &&
				b.PhotoPath == "old_photo.jpg" &&
				b.IDCardPath != "old_id.jpg" && b.IDCardPath != ""
		})).Return(nil).Once()
		store.On("Delete", ctx, "old_id.jpg").Return(nil).Once()

		docs := map[string]*service.Upload{
			service.DocIDCard: {Filename: "id_new.jpg", Reader: strings.NewReader("img")},
		}
		b, err := svc.Submit(ctx, "budi@example.com", &domain.Biodata{Name: "Budi Santoso", Gender: "L"}, docs)
		assert.NoError(t, err)
		assert.Nil(t, b.RejectReason)
		biodataRepo.AssertExpectations(t)
		store.AssertExpectations(t)
	})

	t.Run("SyncsAccountName", func(t *testing.T) {
		accountRepo := new(MockAccountRepo)
		biodataRepo := new(MockBiodataRepo)
		svc := service.NewBiodataService(biodataRepo, accountRepo, new(MockStorage), new(MockEmailService))

		accountRepo.On("GetByEmail", ctx, "budi@example.com").Return(verifiedAccount(), nil).Once()
		biodataRepo.On("GetByEmail", ctx, "budi@example.com").Return(nil, errNoRows()).Once()
		biodataRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
		accountRepo.On("UpdateName", ctx, "budi@example.com", "Budi Hartono").Return(nil).Once()

		_, err := svc.Submit(ctx, "budi@example.com", &domain.Biodata{Name: "budi hartono", Gender: "L"}, nil)
		assert.NoError(t, err)
		accountRepo.AssertExpectations(t)
	})
}

func TestBiodataService_Reject(t *testing.T) {
	ctx := context.Background()

	t.Run("ReasonRequired", func(t *testing.T) {
		svc := service.NewBiodataService(new(MockBiodataRepo), new(MockAccountRepo), new(MockStorage), new(MockEmailService))
		assert.ErrorIs(t, svc.Reject(ctx, 5, ""), service.ErrReasonRequired)
	})

	t.Run("StoresReasonAndNotifies", func(t *testing.T) {
		biodataRepo := new(MockBiodataRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewBiodataService(biodataRepo, new(MockAccountRepo), new(MockStorage), emailSvc)

		biodataRepo.On("GetByID", ctx, int32(5)).
			Return(&domain.Biodata{ID: 5, Name: "Budi", Email: "budi@example.com"}, nil).Once()
		biodataRepo.On("UpdateStatus", ctx, int32(5), domain.BiodataStatusRejected, mock.MatchedBy(func(r *string) bool {
			return r != nil && *r == "incomplete documents"
		})).Return(nil).Once()
		emailSvc.On("SendBiodataDecision", ctx, "budi@example.com", "Budi", false, "incomplete documents").Return(nil).Once()

		assert.NoError(t, svc.Reject(ctx, 5, "incomplete documents"))
		emailSvc.AssertExpectations(t)
	})
}

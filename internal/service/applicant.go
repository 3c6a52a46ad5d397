package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Amarie1212/ppmnurulhakim/internal/domain"
	"github.com/Amarie1212/ppmnurulhakim/internal/logger"
	"github.com/Amarie1212/ppmnurulhakim/internal/repository"
	"github.com/Amarie1212/ppmnurulhakim/internal/storage"
)

type applicantService struct {
	accountRepo repository.AccountRepository
	biodataRepo repository.BiodataRepository
	paymentRepo repository.PaymentRepository
	adminRepo   repository.AdminRepository
	store       storage.Interface
}

func NewApplicantService(accountRepo repository.AccountRepository, biodataRepo repository.BiodataRepository,
	paymentRepo repository.PaymentRepository, adminRepo repository.AdminRepository, store storage.Interface) ApplicantService {
	return &applicantService{
		accountRepo: accountRepo,
		biodataRepo: biodataRepo,
		paymentRepo: paymentRepo,
		adminRepo:   adminRepo,
		store:       store,
	}
}

func (s *applicantService) List(ctx context.Context) ([]domain.ApplicantView, error) {
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]domain.ApplicantView, 0, len(accounts))
	for i := range accounts {
		v, err := s.view(ctx, &accounts[i])
		if err != nil {
			return nil, err
		}
		views = append(views, *v)
	}
	return views, nil
}

func (s *applicantService) Detail(ctx context.Context, email string) (*domain.ApplicantView, error) {
	acc, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.view(ctx, acc)
}

func (s *applicantService) view(ctx context.Context, acc *domain.Account) (*domain.ApplicantView, error) {
	b, err := s.biodataRepo.GetByEmail(ctx, acc.Email)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		b = nil
	}

	var hasVerified, hasPending bool
	var latestRejected *domain.Payment
	if b != nil {
		if hasVerified, err = s.paymentRepo.HasStatus(ctx, b.ID, domain.PaymentStatusVerified); err != nil {
			return nil, err
		}
		if hasPending, err = s.paymentRepo.HasStatus(ctx, b.ID, domain.PaymentStatusPending); err != nil {
			return nil, err
		}
		if !hasVerified && !hasPending {
			latestRejected, err = s.paymentRepo.LatestRejected(ctx, b.ID)
			if err != nil && !errors.Is(err, sql.ErrNoRows) {
				return nil, err
			}
		}
	}

	v := ComputeApplicantView(acc, b, hasVerified, hasPending, latestRejected)
	return &v, nil
}

func (s *applicantService) Delete(ctx context.Context, email string) error {
	if _, err := s.accountRepo.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	// Blob paths are collected before the rows disappear. Blob deletion
	// is best effort; a leftover file is picked up by the cleanup job,
	// while the row deletion below is all or nothing.
	var blobs []string
	var biodataID *int32
	b, err := s.biodataRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	if b != nil {
		id := b.ID
		biodataID = &id
		blobs = append(blobs, b.DocumentPaths()...)

		payments, err := s.paymentRepo.ListByBiodata(ctx, b.ID)
		if err != nil {
			return err
		}
		for _, p := range payments {
			if p.ProofPath != "" {
				blobs = append(blobs, p.ProofPath)
			}
		}
	}

	for _, key := range blobs {
		if err := s.store.Delete(ctx, key); err != nil {
			logger.Warn("failed to delete applicant blob", "key", key, "error", err)
		}
	}

	return s.adminRepo.DeleteApplicantCascade(ctx, email, biodataID)
}

func (s *applicantService) Stats(ctx context.Context) (*domain.AdminStats, error) {
	return s.adminRepo.Stats(ctx)
}

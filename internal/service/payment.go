package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Amarie1212/ppmnurulhakim/internal/domain"
	"github.com/Amarie1212/ppmnurulhakim/internal/logger"
	"github.com/Amarie1212/ppmnurulhakim/internal/repository"
	"github.com/Amarie1212/ppmnurulhakim/internal/storage"
)

type paymentService struct {
	paymentRepo repository.PaymentRepository
	biodataRepo repository.BiodataRepository
	store       storage.Interface
	emailSvc    EmailService
}

func NewPaymentService(paymentRepo repository.PaymentRepository, biodataRepo repository.BiodataRepository,
	store storage.Interface, emailSvc EmailService) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		biodataRepo: biodataRepo,
		store:       store,
		emailSvc:    emailSvc,
	}
}

func (s *paymentService) Submit(ctx context.Context, email string, p *domain.Payment, proof *Upload) (*domain.Payment, error) {
	b, err := s.biodataRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMissingBiodata
		}
		return nil, err
	}

	p.SenderName = strings.TrimSpace(p.SenderName)
	p.SenderBank = strings.TrimSpace(p.SenderBank)
	p.AccountNumber = strings.TrimSpace(p.AccountNumber)
	p.TransferDate = strings.TrimSpace(p.TransferDate)
	if p.SenderName == "" || p.SenderBank == "" || p.AccountNumber == "" || p.TransferDate == "" || proof == nil {
		return nil, ErrIncompleteFields
	}

	key := storage.GenerateKey(proof.Filename)
	if err := s.store.Save(ctx, key, proof.Reader); err != nil {
		return nil, err
	}

	p.BiodataID = b.ID
	p.ProofPath = key
	p.Status = domain.PaymentStatusPending
	p.RejectReason = nil

	if err := s.paymentRepo.Create(ctx, p); err != nil {
		// Row creation failed; the proof blob is now unreferenced and
		// gets cleaned up right away instead of waiting for the job.
		if derr := s.store.Delete(ctx, key); derr != nil {
			logger.Warn("failed to delete orphaned proof", "key", key, "error", derr)
		}
		return nil, err
	}
	return p, nil
}

func (s *paymentService) ListPending(ctx context.Context) ([]domain.Payment, error) {
	return s.paymentRepo.ListByStatus(ctx, domain.PaymentStatusPending)
}

func (s *paymentService) History(ctx context.Context, email string) ([]domain.Payment, *domain.PaymentTally, error) {
	b, err := s.biodataRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.PaymentTally{}, nil
		}
		return nil, nil, err
	}

	payments, err := s.paymentRepo.ListByBiodata(ctx, b.ID)
	if err != nil {
		return nil, nil, err
	}

	tally := &domain.PaymentTally{}
	for _, p := range payments {
		switch p.Status {
		case domain.PaymentStatusPending:
			tally.Pending++
		case domain.PaymentStatusVerified:
			tally.Verified++
		case domain.PaymentStatusRejected:
			tally.Rejected++
		}
	}
	return payments, tally, nil
}

func (s *paymentService) Verify(ctx context.Context, id int32) error {
	p, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.paymentRepo.UpdateStatus(ctx, id, domain.PaymentStatusVerified, nil); err != nil {
		return err
	}
	s.notifyDecision(ctx, p, true, "")
	return nil
}

func (s *paymentService) RejectWithReason(ctx context.Context, id int32, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrReasonRequired
	}
	p, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.paymentRepo.UpdateStatus(ctx, id, domain.PaymentStatusRejected, &reason); err != nil {
		return err
	}
	s.notifyDecision(ctx, p, false, reason)
	return nil
}

func (s *paymentService) PurgeRejected(ctx context.Context, id int32) error {
	p, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if p.Status != domain.PaymentStatusRejected {
		return ErrNotRejected
	}
	if err := s.paymentRepo.Delete(ctx, id); err != nil {
		return err
	}
	if p.ProofPath != "" {
		if err := s.store.Delete(ctx, p.ProofPath); err != nil {
			logger.Warn("failed to delete purged proof", "key", p.ProofPath, "error", err)
		}
	}
	return nil
}

func (s *paymentService) get(ctx context.Context, id int32) (*domain.Payment, error) {
	p, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *paymentService) notifyDecision(ctx context.Context, p *domain.Payment, approved bool, reason string) {
	b, err := s.biodataRepo.GetByID(ctx, p.BiodataID)
	if err != nil {
		logger.Warn("failed to load biodata for payment notification", "payment_id", p.ID, "error", err)
		return
	}
	if err := s.emailSvc.SendPaymentDecision(ctx, b.Email, b.Name, approved, reason); err != nil {
		logger.Warn("failed to send payment decision email", "email", b.Email, "error", err)
	}
}

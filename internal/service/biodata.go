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

// Document slot names accepted by BiodataService.Submit.
const (
	DocPhoto       = "photo"
	DocFamilyCard  = "family_card"
	DocIDCard      = "id_card"
	DocCertificate = "certificate"
)

type biodataService struct {
	biodataRepo repository.BiodataRepository
	accountRepo repository.AccountRepository
	store       storage.Interface
	emailSvc    EmailService
}

func NewBiodataService(biodataRepo repository.BiodataRepository, accountRepo repository.AccountRepository,
	store storage.Interface, emailSvc EmailService) BiodataService {
	return &biodataService{
		biodataRepo: biodataRepo,
		accountRepo: accountRepo,
		store:       store,
		emailSvc:    emailSvc,
	}
}

func (s *biodataService) Submit(ctx context.Context, email string, b *domain.Biodata, docs map[string]*Upload) (*domain.Biodata, error) {
	acc, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if acc.Status != domain.AccountStatusVerified {
		return nil, ErrAccountNotVerified
	}

	b.Email = acc.Email
	b.Name = domain.TitleCase(b.Name)
	b.Phone = domain.NormalizePhone(b.Phone)
	b.FatherName = domain.TitleCase(b.FatherName)
	b.FatherPhone = domain.NormalizePhone(b.FatherPhone)
	b.MotherName = domain.TitleCase(b.MotherName)
	b.MotherPhone = domain.NormalizePhone(b.MotherPhone)
	if b.Gender != "L" && b.Gender != "P" {
		return nil, ErrIncompleteFields
	}

	existing, err := s.biodataRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	var replaced []string
	saveDoc := func(slot string, dest *string, previous string) error {
		up := docs[slot]
		if up == nil {
			// No new upload keeps the previous blob.
			*dest = previous
			return nil
		}
		key := storage.GenerateKey(up.Filename)
		if err := s.store.Save(ctx, key, up.Reader); err != nil {
			return err
		}
		*dest = key
		if previous != "" {
			replaced = append(replaced, previous)
		}
		return nil
	}

	var prev domain.Biodata
	if existing != nil {
		prev = *existing
	}
	if err := saveDoc(DocPhoto, &b.PhotoPath, prev.PhotoPath); err != nil {
		return nil, err
	}
	if err := saveDoc(DocFamilyCard, &b.FamilyCardPath, prev.FamilyCardPath); err != nil {
		return nil, err
	}
	if err := saveDoc(DocIDCard, &b.IDCardPath, prev.IDCardPath); err != nil {
		return nil, err
	}
	if err := saveDoc(DocCertificate, &b.CertificatePath, prev.CertificatePath); err != nil {
		return nil, err
	}

	// Every submission, first or repeated, lands in PENDING with no
	// leftover rejection reason.
	b.Status = domain.BiodataStatusPending
	b.RejectReason = nil

	if existing == nil {
		if err := s.biodataRepo.Create(ctx, b); err != nil {
			return nil, err
		}
	} else {
		b.ID = existing.ID
		if err := s.biodataRepo.Update(ctx, b); err != nil {
			return nil, err
		}
	}

	// Keep the login record's display name in step with the form.
	if b.Name != acc.Name {
		if err := s.accountRepo.UpdateName(ctx, email, b.Name); err != nil {
			logger.Warn("failed to sync account name", "email", email, "error", err)
		}
	}

	for _, key := range replaced {
		if err := s.store.Delete(ctx, key); err != nil {
			logger.Warn("failed to delete replaced document", "key", key, "error", err)
		}
	}

	return b, nil
}

func (s *biodataService) GetByEmail(ctx context.Context, email string) (*domain.Biodata, error) {
	b, err := s.biodataRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *biodataService) List(ctx context.Context) ([]domain.Biodata, error) {
	return s.biodataRepo.List(ctx)
}

func (s *biodataService) ListPending(ctx context.Context) ([]domain.Biodata, error) {
	return s.biodataRepo.ListByStatus(ctx, domain.BiodataStatusPending)
}

func (s *biodataService) Approve(ctx context.Context, id int32) error {
	b, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.biodataRepo.UpdateStatus(ctx, id, domain.BiodataStatusVerified, nil); err != nil {
		return err
	}
	if err := s.emailSvc.SendBiodataDecision(ctx, b.Email, b.Name, true, ""); err != nil {
		logger.Warn("failed to send biodata approval email", "email", b.Email, "error", err)
	}
	return nil
}

func (s *biodataService) Reject(ctx context.Context, id int32, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrReasonRequired
	}
	b, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.biodataRepo.UpdateStatus(ctx, id, domain.BiodataStatusRejected, &reason); err != nil {
		return err
	}
	if err := s.emailSvc.SendBiodataDecision(ctx, b.Email, b.Name, false, reason); err != nil {
		logger.Warn("failed to send biodata rejection email", "email", b.Email, "error", err)
	}
	return nil
}

func (s *biodataService) get(ctx context.Context, id int32) (*domain.Biodata, error) {
	b, err := s.biodataRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Amarie1212/ppmnurulhakim/internal/domain"
	"github.com/Amarie1212/ppmnurulhakim/internal/logger"
	"github.com/Amarie1212/ppmnurulhakim/internal/repository"
)

type accountService struct {
	accountRepo repository.AccountRepository
	emailSvc    EmailService
}

func NewAccountService(accountRepo repository.AccountRepository, emailSvc EmailService) AccountService {
	return &accountService{accountRepo: accountRepo, emailSvc: emailSvc}
}

func (s *accountService) Get(ctx context.Context, id int32) (*domain.Account, error) {
	acc, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return acc, nil
}

func (s *accountService) ListPending(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepo.ListByStatus(ctx, domain.AccountStatusPending)
}

func (s *accountService) Approve(ctx context.Context, id int32) error {
	acc, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.accountRepo.UpdateStatus(ctx, id, domain.AccountStatusVerified, nil); err != nil {
		return err
	}
	if err := s.emailSvc.SendAccountDecision(ctx, acc.Email, acc.Name, true, ""); err != nil {
		logger.Warn("failed to send account approval email", "email", acc.Email, "error", err)
	}
	return nil
}

func (s *accountService) Reject(ctx context.Context, id int32, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrReasonRequired
	}
	acc, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.accountRepo.UpdateStatus(ctx, id, domain.AccountStatusRejected, &reason); err != nil {
		return err
	}
	if err := s.emailSvc.SendAccountDecision(ctx, acc.Email, acc.Name, false, reason); err != nil {
		logger.Warn("failed to send account rejection email", "email", acc.Email, "error", err)
	}
	return nil
}

func (s *accountService) SelfEdit(ctx context.Context, email string, acc *domain.Account, newPassword string) error {
	current, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if current.Status != domain.AccountStatusRejected {
		return ErrNotRejected
	}

	acc.Name = domain.TitleCase(acc.Name)
	acc.Phone = domain.NormalizePhone(acc.Phone)
	acc.PasswordHash = current.PasswordHash
	if newPassword != "" {
		if len(newPassword) < 6 {
			return ErrWeakPassword
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		acc.PasswordHash = string(hash)
	}

	// The name guard skips the applicant's own current name so an edit
	// touching other fields does not trip on itself.
	if !strings.EqualFold(acc.Name, current.Name) {
		exists, err := s.accountRepo.NameExists(ctx, acc.Name)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateName
		}
	}

	return s.accountRepo.UpdateProfile(ctx, email, acc)
}

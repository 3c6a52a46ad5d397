package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Amarie1212/ppmnurulhakim/internal/domain"
	"github.com/Amarie1212/ppmnurulhakim/internal/repository"
)

type staffService struct {
	staffRepo repository.StaffRepository
}

func NewStaffService(staffRepo repository.StaffRepository) StaffService {
	return &staffService{staffRepo: staffRepo}
}

func (s *staffService) Create(ctx context.Context, st *domain.Staff, password string) (*domain.Staff, error) {
	st.Name = domain.TitleCase(st.Name)
	st.Email = strings.ToLower(strings.TrimSpace(st.Email))
	if !domain.ValidStaffRole(st.Role) {
		return nil, ErrInvalidRole
	}

	// A blank password defaults to the email's local part, which the
	// member changes on first login.
	if password == "" {
		password, _, _ = strings.Cut(st.Email, "@")
	}
	if len(password) < 6 {
		return nil, ErrWeakPassword
	}

	if _, err := s.staffRepo.GetByEmail(ctx, st.Email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	st.PasswordHash = string(hash)

	if err := s.staffRepo.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *staffService) Update(ctx context.Context, st *domain.Staff, newPassword string) error {
	current, err := s.staffRepo.GetByID(ctx, st.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if !domain.ValidStaffRole(st.Role) {
		return ErrInvalidRole
	}

	st.Name = domain.TitleCase(st.Name)
	st.Email = strings.ToLower(strings.TrimSpace(st.Email))
	st.PasswordHash = current.PasswordHash
	if newPassword != "" {
		if len(newPassword) < 6 {
			return ErrWeakPassword
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		st.PasswordHash = string(hash)
	}
	return s.staffRepo.Update(ctx, st)
}

func (s *staffService) Delete(ctx context.Context, actorID, id int32) error {
	if actorID == id {
		return ErrSelfDelete
	}
	if _, err := s.staffRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return s.staffRepo.Delete(ctx, id)
}

func (s *staffService) List(ctx context.Context) ([]domain.Staff, error) {
	return s.staffRepo.List(ctx)
}

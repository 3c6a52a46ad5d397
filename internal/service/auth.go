package service

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Amarie1212/ppmnurulhakim/internal/domain"
	"github.com/Amarie1212/ppmnurulhakim/internal/logger"
	"github.com/Amarie1212/ppmnurulhakim/internal/repository"
	"github.com/Amarie1212/ppmnurulhakim/internal/security"
)

type authService struct {
	accountRepo repository.AccountRepository
	staffRepo   repository.StaffRepository
	settingRepo repository.SettingRepository
	tokens      security.TokenManager
	emailSvc    EmailService
}

func NewAuthService(accountRepo repository.AccountRepository, staffRepo repository.StaffRepository,
	settingRepo repository.SettingRepository, tokens security.TokenManager, emailSvc EmailService) AuthService {
	return &authService{
		accountRepo: accountRepo,
		staffRepo:   staffRepo,
		settingRepo: settingRepo,
		tokens:      tokens,
		emailSvc:    emailSvc,
	}
}

func (s *authService) Register(ctx context.Context, acc *domain.Account, password string) (*domain.Account, *TokenPair, error) {
	acc.Email = strings.ToLower(strings.TrimSpace(acc.Email))
	acc.Name = domain.TitleCase(acc.Name)
	acc.Phone = domain.NormalizePhone(acc.Phone)

	if len(password) < 6 {
		return nil, nil, ErrWeakPassword
	}

	exists, err := s.accountRepo.EmailExists(ctx, acc.Email)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, ErrDuplicateEmail
	}
	exists, err = s.accountRepo.NameExists(ctx, acc.Name)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, ErrDuplicateName
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}
	acc.PasswordHash = string(hash)
	acc.Status = domain.AccountStatusPending
	acc.RejectReason = nil

	if err := s.accountRepo.Create(ctx, acc); err != nil {
		return nil, nil, err
	}

	// Notification failures never block registration.
	if err := s.emailSvc.SendWelcome(ctx, acc.Email, acc.Name); err != nil {
		logger.Warn("failed to send welcome email", "email", acc.Email, "error", err)
	}

	pair, err := s.issuePair(acc.ID, acc.Email, security.PrincipalApplicant, "")
	if err != nil {
		return nil, nil, err
	}
	return acc, pair, nil
}

func (s *authService) LoginApplicant(ctx context.Context, email, password string) (*domain.Account, *TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	acc, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.issuePair(acc.ID, acc.Email, security.PrincipalApplicant, "")
	if err != nil {
		return nil, nil, err
	}
	return acc, pair, nil
}

func (s *authService) LoginStaff(ctx context.Context, email, password string) (*domain.Staff, *TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	st, err := s.staffRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(st.PasswordHash), []byte(password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.issuePair(st.ID, st.Email, security.PrincipalStaff, st.Role)
	if err != nil {
		return nil, nil, err
	}
	return st, pair, nil
}

func (s *authService) RefreshToken(ctx context.Context, refresh string) (*TokenPair, error) {
	claims, err := s.tokens.ValidateToken(refresh)
	if err != nil {
		return nil, err
	}
	if claims.Type != security.TokenTypeRefresh {
		return nil, security.ErrWrongTokenType
	}
	return s.issuePair(claims.UserID, claims.Email, claims.Kind, claims.Role)
}

func (s *authService) VerifyAccessCode(ctx context.Context, code string) error {
	setting, err := s.settingRepo.Get(ctx, domain.SettingKeyAccessCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInvalidAccessCode
		}
		return err
	}
	// Stored uppercase by SetAccessCode; uppercase here too so older
	// rows written before that rule still match.
	stored := strings.ToUpper(strings.TrimSpace(setting.Value))
	given := strings.ToUpper(strings.TrimSpace(code))
	if subtle.ConstantTimeCompare([]byte(stored), []byte(given)) != 1 {
		return ErrInvalidAccessCode
	}
	return nil
}

func (s *authService) issuePair(userID int32, email string, kind security.PrincipalKind, role domain.StaffRole) (*TokenPair, error) {
	access, err := s.tokens.GenerateAccessToken(userID, email, kind, role)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(userID, email, kind, role)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

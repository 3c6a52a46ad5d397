package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Amarie1212/ppmnurulhakim/internal/domain"
	"github.com/Amarie1212/ppmnurulhakim/internal/repository"
)

type settingService struct {
	settingRepo repository.SettingRepository
}

func NewSettingService(settingRepo repository.SettingRepository) SettingService {
	return &settingService{settingRepo: settingRepo}
}

func (s *settingService) GetAccessCode(ctx context.Context) (*domain.Setting, error) {
	setting, err := s.settingRepo.Get(ctx, domain.SettingKeyAccessCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return setting, nil
}

func (s *settingService) SetAccessCode(ctx context.Context, code, updatedBy string) error {
	// Codes are stored uppercase so verification is case-insensitive.
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return ErrIncompleteFields
	}
	return s.settingRepo.Upsert(ctx, &domain.Setting{
		Key:       domain.SettingKeyAccessCode,
		Value:     code,
		UpdatedBy: updatedBy,
	})
}

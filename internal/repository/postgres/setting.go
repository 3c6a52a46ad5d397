package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/Amarie1212/ppmnurulhakim/internal/domain"
	"github.com/Amarie1212/ppmnurulhakim/internal/repository"
)

type settingRepository struct {
	db *sql.DB
}

func NewSettingRepository(db *sql.DB) repository.SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) Get(ctx context.Context, key string) (*domain.Setting, error) {
	query := `SELECT key, value, updated_by, updated_at FROM app_settings WHERE key = $1`
	s := &domain.Setting{}
	err := r.db.QueryRowContext(ctx, query, key).Scan(&s.Key, &s.Value, &s.UpdatedBy, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *settingRepository) Upsert(ctx context.Context, s *domain.Setting) error {
	query := `INSERT INTO app_settings (key, value, updated_by, updated_at)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (key) DO UPDATE SET value = $2, updated_by = $3, updated_at = $4`
	s.UpdatedAt = time.Now()
	_, err := r.db.ExecContext(ctx, query, s.Key, s.Value, s.UpdatedBy, s.UpdatedAt)
	return err
}

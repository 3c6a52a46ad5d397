package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Amarie1212/ppmnurulhakim/internal/domain"
	"github.com/Amarie1212/ppmnurulhakim/internal/repository"
)

type adminRepository struct {
	db *sql.DB
}

func NewAdminRepository(db *sql.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Stats(ctx context.Context) (*domain.AdminStats, error) {
	query := `SELECT
		(SELECT COUNT(*) FROM applicant_accounts WHERE status = 'PENDING'),
		(SELECT COUNT(*) FROM biodata WHERE status = 'PENDING'),
		(SELECT COUNT(*) FROM payments WHERE status = 'PENDING'),
		(SELECT COUNT(*) FROM applicant_accounts),
		(SELECT COUNT(*) FROM biodata WHERE gender = 'L'),
		(SELECT COUNT(*) FROM biodata WHERE gender = 'P')`
	stats := &domain.AdminStats{}
	err := r.db.QueryRowContext(ctx, query).Scan(&stats.PendingAccounts, &stats.PendingBiodata,
		&stats.PendingPayments, &stats.TotalApplicants, &stats.Male, &stats.Female)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *adminRepository) DeleteApplicantCascade(ctx context.Context, email string, biodataID *int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if biodataID != nil {
		if _, err := tx.ExecContext(ctx, `DELETE FROM payments WHERE biodata_id = $1`, *biodataID); err != nil {
			return fmt.Errorf("delete payments: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM biodata WHERE id = $1`, *biodataID); err != nil {
			return fmt.Errorf("delete biodata: %w", err)
		}
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM applicant_accounts WHERE email = $1`, email); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return tx.Commit()
}

func (r *adminRepository) ReferencedBlobPaths(ctx context.Context) ([]string, error) {
	query := `SELECT p FROM (
		SELECT photo_path AS p FROM biodata
		UNION SELECT family_card_path FROM biodata
		UNION SELECT id_card_path FROM biodata
		UNION SELECT certificate_path FROM biodata
		UNION SELECT proof_path FROM payments
	) paths WHERE p IS NOT NULL AND p <> ''`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

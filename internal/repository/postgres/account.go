package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/Amarie1212/ppmnurulhakim/internal/domain"
	"github.com/Amarie1212/ppmnurulhakim/internal/repository"
)

type accountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

const accountColumns = `id, name, email, password_hash, phone, group_name, village, region, campus, study_program, status, reject_reason, created_at`

func scanAccount(row interface{ Scan(...any) error }) (*domain.Account, error) {
	acc := &domain.Account{}
	err := row.Scan(&acc.ID, &acc.Name, &acc.Email, &acc.PasswordHash, &acc.Phone,
		&acc.Group, &acc.Village, &acc.Region, &acc.Campus, &acc.StudyProgram,
		&acc.Status, &acc.RejectReason, &acc.CreatedAt)
	if err != nil {
		return nil, err
	}
	return acc, nil
}

func (r *accountRepository) Create(ctx context.Context, acc *domain.Account) error {
	query := `INSERT INTO applicant_accounts (name, email, password_hash, phone, group_name, village, region, campus, study_program, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, query, acc.Name, acc.Email, acc.PasswordHash, acc.Phone,
		acc.Group, acc.Village, acc.Region, acc.Campus, acc.StudyProgram, acc.Status, time.Now()).
		Scan(&acc.ID, &acc.CreatedAt)
}

func (r *accountRepository) GetByID(ctx context.Context, id int32) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM applicant_accounts WHERE id = $1`
	return scanAccount(r.db.QueryRowContext(ctx, query, id))
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM applicant_accounts WHERE email = $1`
	return scanAccount(r.db.QueryRowContext(ctx, query, email))
}

func (r *accountRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM applicant_accounts WHERE email = $1)`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&exists)
	return exists, err
}

func (r *accountRepository) NameExists(ctx context.Context, name string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM applicant_accounts WHERE LOWER(name) = LOWER($1))`
	err := r.db.QueryRowContext(ctx, query, name).Scan(&exists)
	return exists, err
}

func (r *accountRepository) UpdateStatus(ctx context.Context, id int32, status domain.AccountStatus, reason *string) error {
	query := `UPDATE applicant_accounts SET status = $1, reject_reason = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, status, reason, id)
	return err
}

func (r *accountRepository) UpdateProfile(ctx context.Context, email string, acc *domain.Account) error {
	query := `UPDATE applicant_accounts
	          SET name = $1, password_hash = $2, phone = $3, group_name = $4, village = $5,
	              region = $6, campus = $7, study_program = $8, status = $9, reject_reason = NULL
	          WHERE email = $10`
	_, err := r.db.ExecContext(ctx, query, acc.Name, acc.PasswordHash, acc.Phone, acc.Group,
		acc.Village, acc.Region, acc.Campus, acc.StudyProgram, domain.AccountStatusPending, email)
	return err
}

func (r *accountRepository) UpdateName(ctx context.Context, email, name string) error {
	query := `UPDATE applicant_accounts SET name = $1 WHERE email = $2`
	_, err := r.db.ExecContext(ctx, query, name, email)
	return err
}

func (r *accountRepository) List(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM applicant_accounts ORDER BY created_at DESC`
	return r.queryMany(ctx, query)
}

func (r *accountRepository) ListByStatus(ctx context.Context, status domain.AccountStatus) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM applicant_accounts WHERE status = $1 ORDER BY created_at DESC`
	return r.queryMany(ctx, query, status)
}

func (r *accountRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.Account, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *acc)
	}
	return accounts, rows.Err()
}

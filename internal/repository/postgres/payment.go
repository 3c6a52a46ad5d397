package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/Amarie1212/ppmnurulhakim/internal/domain"
	"github.com/Amarie1212/ppmnurulhakim/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentColumns = `id, biodata_id, sender_name, sender_bank, account_number, transfer_date, proof_path, status, reject_reason, created_at`

func scanPayment(row interface{ Scan(...any) error }) (*domain.Payment, error) {
	p := &domain.Payment{}
	err := row.Scan(&p.ID, &p.BiodataID, &p.SenderName, &p.SenderBank, &p.AccountNumber,
		&p.TransferDate, &p.ProofPath, &p.Status, &p.RejectReason, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (biodata_id, sender_name, sender_bank, account_number, transfer_date, proof_path, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, query, p.BiodataID, p.SenderName, p.SenderBank,
		p.AccountNumber, p.TransferDate, p.ProofPath, p.Status, time.Now()).
		Scan(&p.ID, &p.CreatedAt)
}

func (r *paymentRepository) GetByID(ctx context.Context, id int32) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	return scanPayment(r.db.QueryRowContext(ctx, query, id))
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, id int32, status domain.PaymentStatus, reason *string) error {
	query := `UPDATE payments SET status = $1, reject_reason = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, status, reason, id)
	return err
}

func (r *paymentRepository) Delete(ctx context.Context, id int32) error {
	query := `DELETE FROM payments WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *paymentRepository) ListByBiodata(ctx context.Context, biodataID int32) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE biodata_id = $1 ORDER BY created_at DESC`
	return r.queryMany(ctx, query, biodataID)
}

func (r *paymentRepository) ListByStatus(ctx context.Context, status domain.PaymentStatus) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE status = $1 ORDER BY created_at DESC`
	return r.queryMany(ctx, query, status)
}

func (r *paymentRepository) HasStatus(ctx context.Context, biodataID int32, status domain.PaymentStatus) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM payments WHERE biodata_id = $1 AND status = $2)`
	err := r.db.QueryRowContext(ctx, query, biodataID, status).Scan(&exists)
	return exists, err
}

func (r *paymentRepository) LatestRejected(ctx context.Context, biodataID int32) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
	          WHERE biodata_id = $1 AND status = $2 ORDER BY created_at DESC LIMIT 1`
	return scanPayment(r.db.QueryRowContext(ctx, query, biodataID, domain.PaymentStatusRejected))
}

func (r *paymentRepository) CountVerified(ctx context.Context) (int32, error) {
	var count int32
	query := `SELECT COUNT(*) FROM payments WHERE status = $1`
	err := r.db.QueryRowContext(ctx, query, domain.PaymentStatusVerified).Scan(&count)
	return count, err
}

// CountVerifiedInRange counts VERIFIED rows created in [start, end).
func (r *paymentRepository) CountVerifiedInRange(ctx context.Context, start, end time.Time) (int32, error) {
	var count int32
	query := `SELECT COUNT(*) FROM payments WHERE status = $1 AND created_at >= $2 AND created_at < $3`
	err := r.db.QueryRowContext(ctx, query, domain.PaymentStatusVerified, start, end).Scan(&count)
	return count, err
}

func (r *paymentRepository) VerifiedPeriod(ctx context.Context) (time.Time, time.Time, error) {
	var start, end sql.NullTime
	query := `SELECT MIN(created_at), MAX(created_at) FROM payments WHERE status = $1`
	err := r.db.QueryRowContext(ctx, query, domain.PaymentStatusVerified).Scan(&start, &end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !start.Valid || !end.Valid {
		return time.Time{}, time.Time{}, repository.ErrNoVerifiedPayments
	}
	return start.Time, end.Time, nil
}

func (r *paymentRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *p)
	}
	return payments, rows.Err()
}

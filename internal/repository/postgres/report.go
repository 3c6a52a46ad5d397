package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/Amarie1212/ppmnurulhakim/internal/domain"
	"github.com/Amarie1212/ppmnurulhakim/internal/repository"
)

type reportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

const reportColumns = `r.id, r.period_start, r.period_end, r.total_verified, r.note,
	r.created_by, c.name, r.status, r.approved_by, a.name, r.approved_at, r.chair_comment, r.created_at`

const reportJoins = ` FROM reports r
	JOIN staff c ON c.id = r.created_by
	LEFT JOIN staff a ON a.id = r.approved_by`

func scanReport(row interface{ Scan(...any) error }) (*domain.Report, error) {
	rep := &domain.Report{}
	var approverName sql.NullString
	err := row.Scan(&rep.ID, &rep.PeriodStart, &rep.PeriodEnd, &rep.TotalVerified, &rep.Note,
		&rep.CreatedBy, &rep.CreatorName, &rep.Status, &rep.ApprovedBy, &approverName,
		&rep.ApprovedAt, &rep.ChairComment, &rep.CreatedAt)
	if err != nil {
		return nil, err
	}
	rep.ApproverName = approverName.String
	return rep, nil
}

func (r *reportRepository) Create(ctx context.Context, rep *domain.Report) error {
	query := `INSERT INTO reports (period_start, period_end, total_verified, note, created_by, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, query, rep.PeriodStart, rep.PeriodEnd, rep.TotalVerified,
		rep.Note, rep.CreatedBy, rep.Status, time.Now()).Scan(&rep.ID, &rep.CreatedAt)
}

func (r *reportRepository) GetByID(ctx context.Context, id int32) (*domain.Report, error) {
	query := `SELECT ` + reportColumns + reportJoins + ` WHERE r.id = $1`
	return scanReport(r.db.QueryRowContext(ctx, query, id))
}

func (r *reportRepository) SetDecision(ctx context.Context, id int32, status domain.ReportStatus, approvedBy int32, comment *string) error {
	query := `UPDATE reports SET status = $1, approved_by = $2, approved_at = $3, chair_comment = $4 WHERE id = $5`
	_, err := r.db.ExecContext(ctx, query, status, approvedBy, time.Now(), comment, id)
	return err
}

func (r *reportRepository) List(ctx context.Context, limit int32) ([]domain.Report, error) {
	query := `SELECT ` + reportColumns + reportJoins + ` ORDER BY r.created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []domain.Report
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *rep)
	}
	return reports, rows.Err()
}

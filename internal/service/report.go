package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Amarie1212/ppmnurulhakim/internal/domain"
	"github.com/Amarie1212/ppmnurulhakim/internal/repository"
)

type reportService struct {
	reportRepo  repository.ReportRepository
	paymentRepo repository.PaymentRepository
}

func NewReportService(reportRepo repository.ReportRepository, paymentRepo repository.PaymentRepository) ReportService {
	return &reportService{reportRepo: reportRepo, paymentRepo: paymentRepo}
}

func (s *reportService) SubmitAuto(ctx context.Context, createdBy int32, note string) (*domain.Report, error) {
	start, end, err := s.paymentRepo.VerifiedPeriod(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNoVerifiedPayments) {
			return nil, ErrNoVerifiedPayments
		}
		return nil, err
	}
	total, err := s.paymentRepo.CountVerified(ctx)
	if err != nil {
		return nil, err
	}

	r := &domain.Report{
		PeriodStart:   start,
		PeriodEnd:     end,
		TotalVerified: total,
		Note:          strings.TrimSpace(note),
		CreatedBy:     createdBy,
		Status:        domain.ReportStatusPending,
	}
	if err := s.reportRepo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *reportService) Submit(ctx context.Context, createdBy int32, r *domain.Report) (*domain.Report, error) {
	if r.PeriodEnd.Before(r.PeriodStart) {
		return nil, errors.New("period end must not precede period start")
	}
	// Periods are dates; payments made any time on the final day count,
	// so the repo gets an exclusive bound one day past the period end.
	total, err := s.paymentRepo.CountVerifiedInRange(ctx, r.PeriodStart, r.PeriodEnd.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	r.TotalVerified = total
	r.Note = strings.TrimSpace(r.Note)
	r.CreatedBy = createdBy
	r.Status = domain.ReportStatusPending
	if err := s.reportRepo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *reportService) Approve(ctx context.Context, id, chairID int32, comment string) error {
	return s.decide(ctx, id, chairID, domain.ReportStatusApproved, comment)
}

func (s *reportService) Reject(ctx context.Context, id, chairID int32, comment string) error {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return ErrReasonRequired
	}
	return s.decide(ctx, id, chairID, domain.ReportStatusRejected, comment)
}

func (s *reportService) decide(ctx context.Context, id, chairID int32, status domain.ReportStatus, comment string) error {
	r, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if r.Status != domain.ReportStatusPending {
		return ErrAlreadyDecided
	}

	var c *string
	if comment = strings.TrimSpace(comment); comment != "" {
		c = &comment
	}
	return s.reportRepo.SetDecision(ctx, id, status, chairID, c)
}

func (s *reportService) List(ctx context.Context, limit int32) ([]domain.Report, error) {
	return s.reportRepo.List(ctx, limit)
}

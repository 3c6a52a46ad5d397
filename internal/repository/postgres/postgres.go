package postgres

import (
	"database/sql"

	"github.com/Amarie1212/ppmnurulhakim/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.AccountRepository
	repository.BiodataRepository
	repository.PaymentRepository
	repository.StaffRepository
	repository.ReportRepository
	repository.SettingRepository
	repository.AdminRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		AccountRepository: NewAccountRepository(db),
		BiodataRepository: NewBiodataRepository(db),
		PaymentRepository: NewPaymentRepository(db),
		StaffRepository:   NewStaffRepository(db),
		ReportRepository:  NewReportRepository(db),
		SettingRepository: NewSettingRepository(db),
		AdminRepository:   NewAdminRepository(db),
	}
}

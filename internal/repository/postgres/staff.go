package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/Amarie1212/ppmnurulhakim/internal/domain"
	"github.com/Amarie1212/ppmnurulhakim/internal/repository"
)

type staffRepository struct {
	db *sql.DB
}

func NewStaffRepository(db *sql.DB) repository.StaffRepository {
	return &staffRepository{db: db}
}

const staffColumns = `id, name, email, password_hash, role, created_at`

func scanStaff(row interface{ Scan(...any) error }) (*domain.Staff, error) {
	s := &domain.Staff{}
	err := row.Scan(&s.ID, &s.Name, &s.Email, &s.PasswordHash, &s.Role, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *staffRepository) Create(ctx context.Context, s *domain.Staff) error {
	query := `INSERT INTO staff (name, email, password_hash, role, created_at)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, query, s.Name, s.Email, s.PasswordHash, s.Role, time.Now()).
		Scan(&s.ID, &s.CreatedAt)
}

func (r *staffRepository) GetByID(ctx context.Context, id int32) (*domain.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE id = $1`
	return scanStaff(r.db.QueryRowContext(ctx, query, id))
}

func (r *staffRepository) GetByEmail(ctx context.Context, email string) (*domain.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff WHERE email = $1`
	return scanStaff(r.db.QueryRowContext(ctx, query, email))
}

func (r *staffRepository) Update(ctx context.Context, s *domain.Staff) error {
	query := `UPDATE staff SET name = $1, email = $2, password_hash = $3, role = $4 WHERE id = $5`
	_, err := r.db.ExecContext(ctx, query, s.Name, s.Email, s.PasswordHash, s.Role, s.ID)
	return err
}

func (r *staffRepository) Delete(ctx context.Context, id int32) error {
	query := `DELETE FROM staff WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *staffRepository) List(ctx context.Context) ([]domain.Staff, error) {
	query := `SELECT ` + staffColumns + ` FROM staff ORDER BY created_at DESC`
	return r.queryMany(ctx, query)
}

func (r *staffRepository) ListByRoles(ctx context.Context, roles ...domain.StaffRole) ([]domain.Staff, error) {
	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = string(role)
	}
	query := `SELECT ` + staffColumns + ` FROM staff WHERE role = ANY($1) ORDER BY created_at DESC`
	return r.queryMany(ctx, query, pq.Array(names))
}

func (r *staffRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.Staff, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var staff []domain.Staff
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		staff = append(staff, *s)
	}
	return staff, rows.Err()
}

package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/Amarie1212/ppmnurulhakim/internal/domain"
	"github.com/Amarie1212/ppmnurulhakim/internal/repository"
)

type biodataRepository struct {
	db *sql.DB
}

func NewBiodataRepository(db *sql.DB) repository.BiodataRepository {
	return &biodataRepository{db: db}
}

const biodataColumns = `id, name, gender, email, phone, boarded_before, preacher_graduate,
	subdistrict, district, city, province, id_number, campus, study_program, degree_level, cohort_year,
	group_name, village, region, father_name, father_phone, mother_name, mother_phone,
	photo_path, family_card_path, id_card_path, certificate_path, status, reject_reason, created_at`

func scanBiodata(row interface{ Scan(...any) error }) (*domain.Biodata, error) {
	b := &domain.Biodata{}
	err := row.Scan(&b.ID, &b.Name, &b.Gender, &b.Email, &b.Phone, &b.BoardedBefore, &b.PreacherGraduate,
		&b.Subdistrict, &b.District, &b.City, &b.Province, &b.IDNumber, &b.Campus, &b.StudyProgram,
		&b.DegreeLevel, &b.CohortYear, &b.Group, &b.Village, &b.Region,
		&b.FatherName, &b.FatherPhone, &b.MotherName, &b.MotherPhone,
		&b.PhotoPath, &b.FamilyCardPath, &b.IDCardPath, &b.CertificatePath,
		&b.Status, &b.RejectReason, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *biodataRepository) Create(ctx context.Context, b *domain.Biodata) error {
	query := `INSERT INTO biodata (name, gender, email, phone, boarded_before, preacher_graduate,
	            subdistrict, district, city, province, id_number, campus, study_program, degree_level, cohort_year,
	            group_name, village, region, father_name, father_phone, mother_name, mother_phone,
	            photo_path, family_card_path, id_card_path, certificate_path, status, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
	            $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)
	          RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, query,
		b.Name, b.Gender, b.Email, b.Phone, b.BoardedBefore, b.PreacherGraduate,
		b.Subdistrict, b.District, b.City, b.Province, b.IDNumber, b.Campus, b.StudyProgram, b.DegreeLevel, b.CohortYear,
		b.Group, b.Village, b.Region, b.FatherName, b.FatherPhone, b.MotherName, b.MotherPhone,
		b.PhotoPath, b.FamilyCardPath, b.IDCardPath, b.CertificatePath, b.Status, time.Now()).
		Scan(&b.ID, &b.CreatedAt)
}

func (r *biodataRepository) GetByID(ctx context.Context, id int32) (*domain.Biodata, error) {
	query := `SELECT ` + biodataColumns + ` FROM biodata WHERE id = $1`
	return scanBiodata(r.db.QueryRowContext(ctx, query, id))
}

func (r *biodataRepository) GetByEmail(ctx context.Context, email string) (*domain.Biodata, error) {
	query := `SELECT ` + biodataColumns + ` FROM biodata WHERE email = $1`
	return scanBiodata(r.db.QueryRowContext(ctx, query, email))
}

func (r *biodataRepository) Update(ctx context.Context, b *domain.Biodata) error {
	query := `UPDATE biodata SET name = $1, gender = $2, phone = $3, boarded_before = $4, preacher_graduate = $5,
	            subdistrict = $6, district = $7, city = $8, province = $9, id_number = $10,
	            campus = $11, study_program = $12, degree_level = $13, cohort_year = $14,
	            group_name = $15, village = $16, region = $17,
	            father_name = $18, father_phone = $19, mother_name = $20, mother_phone = $21,
	            photo_path = $22, family_card_path = $23, id_card_path = $24, certificate_path = $25,
	            status = $26, reject_reason = $27
	          WHERE email = $28`
	_, err := r.db.ExecContext(ctx, query,
		b.Name, b.Gender, b.Phone, b.BoardedBefore, b.PreacherGraduate,
		b.Subdistrict, b.District, b.City, b.Province, b.IDNumber,
		b.Campus, b.StudyProgram, b.DegreeLevel, b.CohortYear,
		b.Group, b.Village, b.Region,
		b.FatherName, b.FatherPhone, b.MotherName, b.MotherPhone,
		b.PhotoPath, b.FamilyCardPath, b.IDCardPath, b.CertificatePath,
		b.Status, b.RejectReason, b.Email)
	return err
}

func (r *biodataRepository) UpdateStatus(ctx context.Context, id int32, status domain.BiodataStatus, reason *string) error {
	query := `UPDATE biodata SET status = $1, reject_reason = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, status, reason, id)
	return err
}

func (r *biodataRepository) List(ctx context.Context) ([]domain.Biodata, error) {
	query := `SELECT ` + biodataColumns + ` FROM biodata ORDER BY created_at DESC`
	return r.queryMany(ctx, query)
}

func (r *biodataRepository) ListByStatus(ctx context.Context, status domain.BiodataStatus) ([]domain.Biodata, error) {
	query := `SELECT ` + biodataColumns + ` FROM biodata WHERE status = $1 ORDER BY created_at DESC`
	return r.queryMany(ctx, query, status)
}

func (r *biodataRepository) queryMany(ctx context.Context, query string, args ...any) ([]domain.Biodata, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.Biodata
	for rows.Next() {
		b, err := scanBiodata(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *b)
	}
	return records, rows.Err()
}

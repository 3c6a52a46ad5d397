package domain

import "time"

type BiodataStatus string

const (
	BiodataStatusPending  BiodataStatus = "PENDING"
	BiodataStatusVerified BiodataStatus = "VERIFIED"
	BiodataStatusRejected BiodataStatus = "REJECTED"
)

// Biodata is the detailed profile an applicant submits after their
// account is verified. At most one row per account, keyed by email.
// Absence of a row means "biodata not submitted yet", which the
// presentation layer renders differently from PENDING.
type Biodata struct {
	ID               int32         `json:"id"`
	Name             string        `json:"name"`
	Gender           string        `json:"gender"` // "L" or "P"
	Email            string        `json:"email"`
	Phone            string        `json:"phone"`
	BoardedBefore    bool          `json:"boarded_before"`
	PreacherGraduate bool          `json:"preacher_graduate"`
	Subdistrict      string        `json:"subdistrict"`
	District         string        `json:"district"`
	City             string        `json:"city"`
	Province         string        `json:"province"`
	IDNumber         string        `json:"id_number"`
	Campus           string        `json:"campus"`
	StudyProgram     string        `json:"study_program"`
	DegreeLevel      string        `json:"degree_level"`
	CohortYear       string        `json:"cohort_year"`
	Group            string        `json:"group"`
	Village          string        `json:"village"`
	Region           string        `json:"region"`
	FatherName       string        `json:"father_name"`
	FatherPhone      string        `json:"father_phone"`
	MotherName       string        `json:"mother_name"`
	MotherPhone      string        `json:"mother_phone"`
	PhotoPath        string        `json:"photo_path"`
	FamilyCardPath   string        `json:"family_card_path"`
	IDCardPath       string        `json:"id_card_path"`
	CertificatePath  string        `json:"certificate_path"`
	Status           BiodataStatus `json:"status"`
	RejectReason     *string       `json:"reject_reason,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
}

// DocumentPaths returns the non-empty blob references held by this record.
func (b *Biodata) DocumentPaths() []string {
	var paths []string
	for _, p := range []string{b.PhotoPath, b.FamilyCardPath, b.IDCardPath, b.CertificatePath} {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

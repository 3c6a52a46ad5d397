package http

import (
	"net/http"

	"github.com/Amarie1212/ppmnurulhakim/internal/domain"
	"github.com/Amarie1212/ppmnurulhakim/internal/service"
)

// PortalHandler serves the applicant-facing routes. Every route runs
// behind Authenticate + RequireApplicant, so the session claims identify
// the applicant and the email in them is trusted.
type PortalHandler struct {
	accountSvc    service.AccountService
	biodataSvc    service.BiodataService
	paymentSvc    service.PaymentService
	applicantSvc  service.ApplicantService
	maxFileSizeMB int64
}

func NewPortalHandler(accountSvc service.AccountService, biodataSvc service.BiodataService,
	paymentSvc service.PaymentService, applicantSvc service.ApplicantService, maxFileSizeMB int64) *PortalHandler {
	return &PortalHandler{
		accountSvc:    accountSvc,
		biodataSvc:    biodataSvc,
		paymentSvc:    paymentSvc,
		applicantSvc:  applicantSvc,
		maxFileSizeMB: maxFileSizeMB,
	}
}

func (h *PortalHandler) Status(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	view, err := h.applicantSvc.Detail(r.Context(), claims.Email)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type selfEditRequest struct {
	Name         string `json:"name"`
	Password     string `json:"password"`
	Phone        string `json:"phone"`
	Group        string `json:"group"`
	Village      string `json:"village"`
	Region       string `json:"region"`
	Campus       string `json:"campus"`
	StudyProgram string `json:"study_program"`
}

func (h *PortalHandler) SelfEdit(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	var req selfEditRequest
	if !decodeBody(w, r, &req) {
		return
	}

	acc := &domain.Account{
		Name:         req.Name,
		Phone:        req.Phone,
		Group:        req.Group,
		Village:      req.Village,
		Region:       req.Region,
		Campus:       req.Campus,
		StudyProgram: req.StudyProgram,
	}
	if err := h.accountSvc.SelfEdit(r.Context(), claims.Email, acc, req.Password); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": string(domain.AccountStatusPending)})
}

func (h *PortalHandler) GetBiodata(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	b, err := h.biodataSvc.GetByEmail(r.Context(), claims.Email)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *PortalHandler) SubmitBiodata(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	if !parseUploadForm(w, r, h.maxFileSizeMB) {
		return
	}

	form := r.FormValue
	b := &domain.Biodata{
		Name:             form("name"),
		Gender:           form("gender"),
		Phone:            form("phone"),
		BoardedBefore:    form("boarded_before") == "true",
		PreacherGraduate: form("preacher_graduate") == "true",
		Subdistrict:      form("subdistrict"),
		District:         form("district"),
		City:             form("city"),
		Province:         form("province"),
		IDNumber:         form("id_number"),
		Campus:           form("campus"),
		StudyProgram:     form("study_program"),
		DegreeLevel:      form("degree_level"),
		CohortYear:       form("cohort_year"),
		Group:            form("group"),
		Village:          form("village"),
		Region:           form("region"),
		FatherName:       form("father_name"),
		FatherPhone:      form("father_phone"),
		MotherName:       form("mother_name"),
		MotherPhone:      form("mother_phone"),
	}

	docs := make(map[string]*service.Upload)
	for _, slot := range []string{service.DocPhoto, service.DocFamilyCard, service.DocIDCard, service.DocCertificate} {
		up, _, err := formUpload(r, slot)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
			return
		}
		if up != nil {
			docs[slot] = up
		}
	}

	b, err := h.biodataSvc.Submit(r.Context(), claims.Email, b, docs)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (h *PortalHandler) PaymentHistory(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	payments, tally, err := h.paymentSvc.History(r.Context(), claims.Email)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"payments": payments,
		"tally":    tally,
	})
}

func (h *PortalHandler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	if !parseUploadForm(w, r, h.maxFileSizeMB) {
		return
	}

	proof, _, err := formUpload(r, "proof")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	p := &domain.Payment{
		SenderName:    r.FormValue("sender_name"),
		SenderBank:    r.FormValue("sender_bank"),
		AccountNumber: r.FormValue("account_number"),
		TransferDate:  r.FormValue("transfer_date"),
	}
	p, err = h.paymentSvc.Submit(r.Context(), claims.Email, p, proof)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

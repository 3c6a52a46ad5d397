package http

import (
	"net/http"

	"github.com/Amarie1212/ppmnurulhakim/internal/domain"
	"github.com/Amarie1212/ppmnurulhakim/internal/service"
)

// StaffHandler covers staff member management and the registration
// access code, both admin-side concerns.
type StaffHandler struct {
	staffSvc   service.StaffService
	settingSvc service.SettingService
}

func NewStaffHandler(staffSvc service.StaffService, settingSvc service.SettingService) *StaffHandler {
	return &StaffHandler{staffSvc: staffSvc, settingSvc: settingSvc}
}

type staffRequest struct {
	Name     string           `json:"name"`
	Email    string           `json:"email"`
	Password string           `json:"password"`
	Role     domain.StaffRole `json:"role"`
}

func (h *StaffHandler) List(w http.ResponseWriter, r *http.Request) {
	staff, err := h.staffSvc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, staff)
}

func (h *StaffHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req staffRequest
	if !decodeBody(w, r, &req) {
		return
	}
	st := &domain.Staff{Name: req.Name, Email: req.Email, Role: req.Role}
	st, err := h.staffSvc.Create(r.Context(), st, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, st)
}

func (h *StaffHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid id"})
		return
	}
	var req staffRequest
	if !decodeBody(w, r, &req) {
		return
	}
	st := &domain.Staff{ID: id, Name: req.Name, Email: req.Email, Role: req.Role}
	if err := h.staffSvc.Update(r.Context(), st, req.Password); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *StaffHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid id"})
		return
	}
	claims := claimsFrom(r)
	if err := h.staffSvc.Delete(r.Context(), claims.UserID, id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *StaffHandler) GetAccessCode(w http.ResponseWriter, r *http.Request) {
	setting, err := h.settingSvc.GetAccessCode(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, setting)
}

func (h *StaffHandler) SetAccessCode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	claims := claimsFrom(r)
	if err := h.settingSvc.SetAccessCode(r.Context(), req.Code, claims.Email); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

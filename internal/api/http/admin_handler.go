package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Amarie1212/ppmnurulhakim/internal/service"
)

// AdminHandler serves the staff panel's applicant review routes. Role
// checks happen in the route middleware, not here.
type AdminHandler struct {
	accountSvc   service.AccountService
	biodataSvc   service.BiodataService
	paymentSvc   service.PaymentService
	applicantSvc service.ApplicantService
}

func NewAdminHandler(accountSvc service.AccountService, biodataSvc service.BiodataService,
	paymentSvc service.PaymentService, applicantSvc service.ApplicantService) *AdminHandler {
	return &AdminHandler{
		accountSvc:   accountSvc,
		biodataSvc:   biodataSvc,
		paymentSvc:   paymentSvc,
		applicantSvc: applicantSvc,
	}
}

func pathID(r *http.Request) (int32, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int32(id), true
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.applicantSvc.Stats(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *AdminHandler) ListApplicants(w http.ResponseWriter, r *http.Request) {
	views, err := h.applicantSvc.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *AdminHandler) ApplicantDetail(w http.ResponseWriter, r *http.Request) {
	view, err := h.applicantSvc.Detail(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *AdminHandler) DeleteApplicant(w http.ResponseWriter, r *http.Request) {
	if err := h.applicantSvc.Delete(r.Context(), mux.Vars(r)["email"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *AdminHandler) ListPendingAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountSvc.ListPending(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, accounts)
}

func (h *AdminHandler) ApproveAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid id"})
		return
	}
	if err := h.accountSvc.Approve(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (h *AdminHandler) RejectAccount(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid id"})
		return
	}
	var req rejectRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.accountSvc.Reject(r.Context(), id, req.Reason); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (h *AdminHandler) ListBiodata(w http.ResponseWriter, r *http.Request) {
	var err error
	var out any
	if r.URL.Query().Get("status") == "pending" {
		out, err = h.biodataSvc.ListPending(r.Context())
	} else {
		out, err = h.biodataSvc.List(r.Context())
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *AdminHandler) ApproveBiodata(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid id"})
		return
	}
	if err := h.biodataSvc.Approve(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (h *AdminHandler) RejectBiodata(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid id"})
		return
	}
	var req rejectRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.biodataSvc.Reject(r.Context(), id, req.Reason); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (h *AdminHandler) ListPendingPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.paymentSvc.ListPending(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}

func (h *AdminHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid id"})
		return
	}
	if err := h.paymentSvc.Verify(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (h *AdminHandler) RejectPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid id"})
		return
	}
	var req rejectRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.paymentSvc.RejectWithReason(r.Context(), id, req.Reason); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (h *AdminHandler) PurgePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid id"})
		return
	}
	if err := h.paymentSvc.PurgeRejected(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

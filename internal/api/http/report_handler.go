package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Amarie1212/ppmnurulhakim/internal/domain"
	"github.com/Amarie1212/ppmnurulhakim/internal/service"
)

type ReportHandler struct {
	reportSvc service.ReportService
}

func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

type submitReportRequest struct {
	// A request without period bounds means "cover everything verified
	// so far" and the period is derived server side.
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	Note        string `json:"note"`
}

func (h *ReportHandler) Submit(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	var req submitReportRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.PeriodStart == "" && req.PeriodEnd == "" {
		rep, err := h.reportSvc.SubmitAuto(r.Context(), claims.UserID, req.Note)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, rep)
		return
	}

	start, err := time.Parse("2006-01-02", req.PeriodStart)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid period_start, want YYYY-MM-DD"})
		return
	}
	end, err := time.Parse("2006-01-02", req.PeriodEnd)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid period_end, want YYYY-MM-DD"})
		return
	}

	rep, err := h.reportSvc.Submit(r.Context(), claims.UserID, &domain.Report{
		PeriodStart: start,
		PeriodEnd:   end,
		Note:        req.Note,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rep)
}

func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	var limit int32
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || n < 0 {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid limit"})
			return
		}
		limit = int32(n)
	}
	reports, err := h.reportSvc.List(r.Context(), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reports)
}

type reviewReportRequest struct {
	Comment string `json:"comment"`
}

func (h *ReportHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid id"})
		return
	}
	claims := claimsFrom(r)
	var req reviewReportRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.reportSvc.Approve(r.Context(), id, claims.UserID, req.Comment); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (h *ReportHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid id"})
		return
	}
	claims := claimsFrom(r)
	var req reviewReportRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.reportSvc.Reject(r.Context(), id, claims.UserID, req.Comment); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Amarie1212/ppmnurulhakim/internal/authz"
	"github.com/Amarie1212/ppmnurulhakim/internal/security"
	"github.com/Amarie1212/ppmnurulhakim/internal/service"
	"github.com/Amarie1212/ppmnurulhakim/internal/storage"
)

// RouterDeps bundles everything the HTTP surface needs.
type RouterDeps struct {
	Tokens        security.TokenManager
	AuthSvc       service.AuthService
	AccountSvc    service.AccountService
	BiodataSvc    service.BiodataService
	PaymentSvc    service.PaymentService
	ReportSvc     service.ReportService
	StaffSvc      service.StaffService
	ApplicantSvc  service.ApplicantService
	SettingSvc    service.SettingService
	Store         storage.Interface
	MaxFileSizeMB int64
}

func NewRouter(d RouterDeps) *mux.Router {
	auth := NewAuthHandler(d.AuthSvc)
	portal := NewPortalHandler(d.AccountSvc, d.BiodataSvc, d.PaymentSvc, d.ApplicantSvc, d.MaxFileSizeMB)
	admin := NewAdminHandler(d.AccountSvc, d.BiodataSvc, d.PaymentSvc, d.ApplicantSvc)
	staff := NewStaffHandler(d.StaffSvc, d.SettingSvc)
	report := NewReportHandler(d.ReportSvc)
	files := NewFileHandler(d.Store)

	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/register", auth.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", auth.LoginApplicant).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", auth.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/staff/login", auth.LoginStaff).Methods(http.MethodPost)

	authed := Authenticate(d.Tokens)

	// Applicant portal.
	me := api.PathPrefix("/me").Subrouter()
	me.Use(authed, RequireApplicant)
	me.HandleFunc("/status", portal.Status).Methods(http.MethodGet)
	me.HandleFunc("/account", portal.SelfEdit).Methods(http.MethodPut)
	me.HandleFunc("/access-code", auth.VerifyAccessCode).Methods(http.MethodPost)
	me.HandleFunc("/biodata", portal.GetBiodata).Methods(http.MethodGet)
	me.HandleFunc("/biodata", portal.SubmitBiodata).Methods(http.MethodPost)
	me.HandleFunc("/payments", portal.PaymentHistory).Methods(http.MethodGet)
	me.HandleFunc("/payments", portal.SubmitPayment).Methods(http.MethodPost)

	// Staff panel. Each subrouter carries the allow-list for its action;
	// handlers never look at roles.
	panel := api.PathPrefix("/admin").Subrouter()
	panel.Use(authed)

	route := func(action authz.Action, method, path string, fn http.HandlerFunc) {
		panel.Handle(path, RequireAction(action)(http.HandlerFunc(fn))).Methods(method)
	}

	route(authz.ActionViewDashboard, http.MethodGet, "/stats", admin.Stats)

	route(authz.ActionListApplicants, http.MethodGet, "/applicants", admin.ListApplicants)
	route(authz.ActionListApplicants, http.MethodGet, "/applicants/{email}", admin.ApplicantDetail)
	route(authz.ActionDeleteApplicant, http.MethodDelete, "/applicants/{email}", admin.DeleteApplicant)

	route(authz.ActionVerifyAccount, http.MethodGet, "/accounts/pending", admin.ListPendingAccounts)
	route(authz.ActionVerifyAccount, http.MethodPost, "/accounts/{id}/approve", admin.ApproveAccount)
	route(authz.ActionVerifyAccount, http.MethodPost, "/accounts/{id}/reject", admin.RejectAccount)

	route(authz.ActionVerifyBiodata, http.MethodGet, "/biodata", admin.ListBiodata)
	route(authz.ActionVerifyBiodata, http.MethodPost, "/biodata/{id}/approve", admin.ApproveBiodata)
	route(authz.ActionVerifyBiodata, http.MethodPost, "/biodata/{id}/reject", admin.RejectBiodata)

	route(authz.ActionViewPayments, http.MethodGet, "/payments/pending", admin.ListPendingPayments)
	route(authz.ActionVerifyPayment, http.MethodPost, "/payments/{id}/verify", admin.VerifyPayment)
	route(authz.ActionRejectPayment, http.MethodPost, "/payments/{id}/reject", admin.RejectPayment)
	route(authz.ActionPurgePayment, http.MethodDelete, "/payments/{id}", admin.PurgePayment)

	route(authz.ActionSubmitReport, http.MethodPost, "/reports", report.Submit)
	route(authz.ActionViewReports, http.MethodGet, "/reports", report.List)
	route(authz.ActionReviewReport, http.MethodPost, "/reports/{id}/approve", report.Approve)
	route(authz.ActionReviewReport, http.MethodPost, "/reports/{id}/reject", report.Reject)

	route(authz.ActionManageStaff, http.MethodGet, "/staff", staff.List)
	route(authz.ActionManageStaff, http.MethodPost, "/staff", staff.Create)
	route(authz.ActionManageStaff, http.MethodPut, "/staff/{id}", staff.Update)
	route(authz.ActionManageStaff, http.MethodDelete, "/staff/{id}", staff.Delete)

	route(authz.ActionManageCode, http.MethodGet, "/access-code", staff.GetAccessCode)
	route(authz.ActionManageCode, http.MethodPut, "/access-code", staff.SetAccessCode)

	route(authz.ActionListApplicants, http.MethodGet, "/files/{key}", files.Download)

	return r
}

package http

import (
	"net/http"

	"github.com/Amarie1212/ppmnurulhakim/internal/authz"
	"github.com/Amarie1212/ppmnurulhakim/internal/domain"
	"github.com/Amarie1212/ppmnurulhakim/internal/service"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

type registerRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Phone        string `json:"phone"`
	Group        string `json:"group"`
	Village      string `json:"village"`
	Region       string `json:"region"`
	Campus       string `json:"campus"`
	StudyProgram string `json:"study_program"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Account  *domain.Account    `json:"account,omitempty"`
	Staff    *domain.Staff      `json:"staff,omitempty"`
	Redirect string             `json:"redirect,omitempty"`
	Tokens   *service.TokenPair `json:"tokens"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "name, email and password are required"})
		return
	}

	acc := &domain.Account{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Group:        req.Group,
		Village:      req.Village,
		Region:       req.Region,
		Campus:       req.Campus,
		StudyProgram: req.StudyProgram,
	}
	acc, pair, err := h.authSvc.Register(r.Context(), acc, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, authResponse{Account: acc, Tokens: pair})
}

func (h *AuthHandler) LoginApplicant(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	acc, pair, err := h.authSvc.LoginApplicant(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, authResponse{Account: acc, Tokens: pair})
}

func (h *AuthHandler) LoginStaff(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	st, pair, err := h.authSvc.LoginStaff(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, authResponse{
		Staff:    st,
		Redirect: authz.RedirectTarget(st.Role),
		Tokens:   pair,
	})
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	pair, err := h.authSvc.RefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, authResponse{Tokens: pair})
}

func (h *AuthHandler) VerifyAccessCode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.authSvc.VerifyAccessCode(r.Context(), req.Code); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"valid": true})
}

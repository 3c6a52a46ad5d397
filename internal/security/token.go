package security

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Amarie1212/ppmnurulhakim/internal/domain"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token has expired")
	ErrWrongTokenType = errors.New("wrong token type for this endpoint")
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// PrincipalKind distinguishes applicant sessions from staff sessions.
// The two account spaces are separate tables with separate login routes.
type PrincipalKind string

const (
	PrincipalApplicant PrincipalKind = "applicant"
	PrincipalStaff     PrincipalKind = "staff"
)

// SessionClaims carries the authenticated principal in signed form.
type SessionClaims struct {
	UserID int32            `json:"user_id"`
	Email  string           `json:"email,omitempty"`
	Kind   PrincipalKind    `json:"kind"`
	Role   domain.StaffRole `json:"role,omitempty"`
	Type   TokenType        `json:"type"`
	jwt.RegisteredClaims
}

type TokenManager interface {
	GenerateAccessToken(userID int32, email string, kind PrincipalKind, role domain.StaffRole) (string, error)
	GenerateRefreshToken(userID int32, email string, kind PrincipalKind, role domain.StaffRole) (string, error)
	ValidateToken(tokenString string) (*SessionClaims, error)
}

type tokenManager struct {
	secret        []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewTokenManager(secret string, accessExpiryMinutes, refreshExpiryMinutes int) TokenManager {
	return &tokenManager{
		secret:        []byte(secret),
		accessExpiry:  time.Duration(accessExpiryMinutes) * time.Minute,
		refreshExpiry: time.Duration(refreshExpiryMinutes) * time.Minute,
	}
}

func (m *tokenManager) GenerateAccessToken(userID int32, email string, kind PrincipalKind, role domain.StaffRole) (string, error) {
	return m.generate(userID, email, kind, role, TokenTypeAccess, m.accessExpiry)
}

func (m *tokenManager) GenerateRefreshToken(userID int32, email string, kind PrincipalKind, role domain.StaffRole) (string, error) {
	return m.generate(userID, email, kind, role, TokenTypeRefresh, m.refreshExpiry)
}

func (m *tokenManager) generate(userID int32, email string, kind PrincipalKind, role domain.StaffRole, typ TokenType, expiry time.Duration) (string, error) {
	claims := SessionClaims{
		UserID: userID,
		Email:  email,
		Kind:   kind,
		Role:   role,
		Type:   typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(int(userID)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "ppmnurulhakim",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *tokenManager) ValidateToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

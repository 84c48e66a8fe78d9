package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexivanou/cityportal-api/internal/apperror"
	"github.com/golang-jwt/jwt/v5"
)

// Roles recognised by the services.
const (
	RoleAdmin    = "admin"
	RoleEditor   = "editor"
	RoleBusiness = "business"
	RoleUser     = "user"
)

// Principal is the authenticated caller.
type Principal struct {
	ID   int64
	Role string
}

func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// IsEditor is true for editors and admins.
func (p *Principal) IsEditor() bool {
	return p != nil && (p.Role == RoleEditor || p.Role == RoleAdmin)
}

// Claims is the bearer token payload.
type Claims struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenParser validates HS256 bearer tokens.
type TokenParser struct {
	secret []byte
}

func NewTokenParser(secret string) *TokenParser {
	return &TokenParser{secret: []byte(secret)}
}

// Parse validates token (with or without the "Bearer " prefix) and returns
// its principal. Failures are apperror.ErrUnauthorized.
func (p *TokenParser) Parse(token string) (*Principal, error) {
	token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
	if token == "" {
		return nil, apperror.Unauthorized("no token provided")
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Method.Alg())
		}
		return p.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperror.Unauthorized("token expired").Wrap(err)
		}
		return nil, apperror.Unauthorized("invalid token").Wrap(err)
	}
	if !parsed.Valid || claims.UserID == 0 {
		return nil, apperror.Unauthorized("invalid token claims")
	}

	role := claims.Role
	if role == "" {
		role = RoleUser
	}
	return &Principal{ID: claims.UserID, Role: role}, nil
}

// Issue signs a token for principal valid for ttl. Used by tooling and tests.
func (p *TokenParser) Issue(principal Principal, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: principal.ID,
		Role:   principal.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
}

type ctxKey struct{}

// WithPrincipal stores principal in ctx.
func WithPrincipal(ctx context.Context, principal *Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, principal)
}

// FromContext returns the principal of the request, or nil when anonymous.
func FromContext(ctx context.Context) *Principal {
	principal, _ := ctx.Value(ctxKey{}).(*Principal)
	return principal
}

// RequireEditor returns Forbidden unless principal may edit portal content.
func RequireEditor(principal *Principal) error {
	if principal == nil {
		return apperror.Unauthorized("authentication required")
	}
	if !principal.IsEditor() {
		return apperror.Forbidden("insufficient permissions")
	}
	return nil
}

// RequireAdmin returns Forbidden unless principal is an admin.
func RequireAdmin(principal *Principal) error {
	if principal == nil {
		return apperror.Unauthorized("authentication required")
	}
	if !principal.IsAdmin() {
		return apperror.Forbidden("insufficient permissions")
	}
	return nil
}

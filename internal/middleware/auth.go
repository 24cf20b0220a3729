package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mtlprog/dormreport/internal/domain"
	"github.com/mtlprog/dormreport/internal/handler/dto"
)

type contextKey string

const (
	// ContextKeyIdentity is the key for storing the resolved identity in request context.
	ContextKeyIdentity contextKey = "identity"

	// TokenCookie is the cookie the browser client stores its token in.
	TokenCookie = "token"

	// DefaultTokenTTL is the lifetime of issued tokens.
	DefaultTokenTTL = 7 * 24 * time.Hour
)

// Claims is the JWT payload: who the caller is and the role at issue time.
// The role is informational; the middleware reloads the identity on every request.
type Claims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// IdentityStore loads identities by id.
type IdentityStore interface {
	GetByID(ctx context.Context, userID string) (*domain.Identity, error)
}

// AuthMiddleware resolves the caller's identity from a signed token.
type AuthMiddleware struct {
	secret []byte
	store  IdentityStore
}

// NewAuthMiddleware creates a new AuthMiddleware.
func NewAuthMiddleware(secret string, store IdentityStore) *AuthMiddleware {
	return &AuthMiddleware{
		secret: []byte(secret),
		store:  store,
	}
}

// IssueToken signs a token for the identity, valid for ttl.
func IssueToken(secret string, identity *domain.Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: identity.ID,
		Role:   string(identity.Role),
		Email:  identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies the signature and expiry of a token and returns its claims.
func (m *AuthMiddleware) ParseToken(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("%w: missing userId", domain.ErrInvalidToken)
	}
	return claims, nil
}

// extractToken reads the Bearer token from the Authorization header,
// falling back to the token cookie.
func extractToken(r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return "", errors.New("invalid authorization header format")
		}
		if parts[1] == "" {
			return "", errors.New("missing token")
		}
		return parts[1], nil
	}

	if cookie, err := r.Cookie(TokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	return "", errors.New("missing credentials")
}

// Authenticate resolves the identity and adds it to the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := extractToken(r)
		if err != nil {
			unauthorized(w, err.Error())
			return
		}

		claims, err := m.ParseToken(raw)
		if err != nil {
			unauthorized(w, "invalid token")
			return
		}

		// Reload so role changes and deletions take effect before the token expires.
		identity, err := m.store.GetByID(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				unauthorized(w, "unknown user")
				return
			}
			slog.Error("failed to resolve identity", "user_id", claims.UserID, "error", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			return
		}

		ctx := context.WithValue(r.Context(), ContextKeyIdentity, identity)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetIdentityFromContext retrieves the authenticated identity from request context.
func GetIdentityFromContext(ctx context.Context) (*domain.Identity, error) {
	identity, ok := ctx.Value(ContextKeyIdentity).(*domain.Identity)
	if !ok || identity == nil {
		return nil, domain.ErrUnauthenticated
	}
	return identity, nil
}

func unauthorized(w http.ResponseWriter, message string) {
	writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", message)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error: dto.ErrorDetail{Code: code, Message: message},
	}); err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}

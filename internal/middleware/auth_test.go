package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mtlprog/dormreport/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type fakeStore struct {
	identities map[string]*domain.Identity
	err        error
}

func (f *fakeStore) GetByID(_ context.Context, id string) (*domain.Identity, error) {
	if f.err != nil {
		return nil, f.err
	}
	identity, ok := f.identities[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return identity, nil
}

func newTestMiddleware(store IdentityStore) (*AuthMiddleware, http.Handler) {
	m := NewAuthMiddleware(testSecret, store)
	h := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := GetIdentityFromContext(r.Context())
		if err != nil {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		_, _ = w.Write([]byte(string(identity.Role)))
	}))
	return m, h
}

func TestAuthenticate(t *testing.T) {
	admin := &domain.Identity{ID: "u-admin", Email: "a@x.test", Role: domain.RoleAdmin}
	store := &fakeStore{identities: map[string]*domain.Identity{admin.ID: admin}}
	_, h := newTestMiddleware(store)

	valid, err := IssueToken(testSecret, admin, time.Hour)
	require.NoError(t, err)
	expired, err := IssueToken(testSecret, admin, -time.Hour)
	require.NoError(t, err)
	forged, err := IssueToken("other-secret", admin, time.Hour)
	require.NoError(t, err)
	ghost, err := IssueToken(testSecret, &domain.Identity{ID: "u-gone", Role: domain.RoleAdmin}, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		setup      func(r *http.Request)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "bearer header",
			setup:      func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+valid) },
			wantStatus: http.StatusOK,
			wantBody:   "ADMIN",
		},
		{
			name:       "cookie",
			setup:      func(r *http.Request) { r.AddCookie(&http.Cookie{Name: TokenCookie, Value: valid}) },
			wantStatus: http.StatusOK,
			wantBody:   "ADMIN",
		},
		{
			name:       "missing credentials",
			setup:      func(r *http.Request) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			setup:      func(r *http.Request) { r.Header.Set("Authorization", "Token "+valid) },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired",
			setup:      func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+expired) },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong signature",
			setup:      func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+forged) },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown user",
			setup:      func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+ghost) },
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			} else {
				assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
			}
		})
	}
}

func TestAuthenticate_RoleComesFromStore(t *testing.T) {
	demoted := &domain.Identity{ID: "u1", Role: domain.RoleUser}
	store := &fakeStore{identities: map[string]*domain.Identity{demoted.ID: demoted}}
	_, h := newTestMiddleware(store)

	token, err := IssueToken(testSecret, &domain.Identity{ID: "u1", Role: domain.RoleAdmin}, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "USER", rec.Body.String())
}

func TestAuthenticate_StoreFailure(t *testing.T) {
	_, h := newTestMiddleware(&fakeStore{err: errors.New("connection refused")})

	token, err := IssueToken(testSecret, &domain.Identity{ID: "u1", Role: domain.RoleUser}, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
}

func TestParseToken_Claims(t *testing.T) {
	m := NewAuthMiddleware(testSecret, &fakeStore{})
	identity := &domain.Identity{ID: "u9", Email: "t@x.test", Role: domain.RoleTechnician}

	token, err := IssueToken(testSecret, identity, time.Minute)
	require.NoError(t, err)

	claims, err := m.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u9", claims.UserID)
	assert.Equal(t, "TEKNISI", claims.Role)
	assert.Equal(t, "t@x.test", claims.Email)

	_, err = m.ParseToken("not.a.token")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestGetIdentityFromContext_Missing(t *testing.T) {
	_, err := GetIdentityFromContext(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

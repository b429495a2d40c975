package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tamabee-group/api-hr-sub001/internal/pkg/jwt"
)

func newProtectedRouter(svc jwt.Service) *chi.Mux {
	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(svc.JWTAuth()))
	r.Use(AuthRequired(svc.JWTAuth()))
	r.Get("/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Group(func(r chi.Router) {
		r.Use(RequireManager)
		r.Post("/schedules", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})
	return r
}

func doRequest(h http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequiredAcceptsAccessToken(t *testing.T) {
	svc := jwt.NewJWTService("test-secret", "1h")
	token, _, err := svc.GenerateAccessToken("user-1", "emp-1", "co-1", "employee")
	require.NoError(t, err)

	rec := doRequest(newProtectedRouter(svc), http.MethodGet, "/me", token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRequiredRejectsMissingToken(t *testing.T) {
	svc := jwt.NewJWTService("test-secret", "1h")

	rec := doRequest(newProtectedRouter(svc), http.MethodGet, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequiredRejectsForeignSignature(t *testing.T) {
	svc := jwt.NewJWTService("test-secret", "1h")
	other := jwt.NewJWTService("other-secret", "1h")
	token, _, err := other.GenerateAccessToken("user-1", "emp-1", "co-1", "employee")
	require.NoError(t, err)

	rec := doRequest(newProtectedRouter(svc), http.MethodGet, "/me", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequiredRejectsNonAccessToken(t *testing.T) {
	svc := jwt.NewJWTService("test-secret", "1h")
	_, token, err := svc.JWTAuth().Encode(map[string]interface{}{
		"employee_id": "emp-1",
		"company_id":  "co-1",
		"type":        "refresh",
	})
	require.NoError(t, err)

	rec := doRequest(newProtectedRouter(svc), http.MethodGet, "/me", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireManagerRejectsEmployeeRole(t *testing.T) {
	svc := jwt.NewJWTService("test-secret", "1h")
	token, _, err := svc.GenerateAccessToken("user-1", "emp-1", "co-1", "employee")
	require.NoError(t, err)

	rec := doRequest(newProtectedRouter(svc), http.MethodPost, "/schedules", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireManagerAllowsManagerAndOwner(t *testing.T) {
	svc := jwt.NewJWTService("test-secret", "1h")
	for _, role := range []string{"manager", "owner"} {
		token, _, err := svc.GenerateAccessToken("user-1", "emp-1", "co-1", role)
		require.NoError(t, err)

		rec := doRequest(newProtectedRouter(svc), http.MethodPost, "/schedules", token)
		assert.Equal(t, http.StatusOK, rec.Code, role)
	}
}

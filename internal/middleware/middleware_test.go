package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/kbn_backend/internal/apperrors"
	"github.com/SscSPs/kbn_backend/internal/core/domain"
	"github.com/SscSPs/kbn_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func signToken(t *testing.T, secret string, method jwt.SigningMethod, claims middleware.Claims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims(role string) middleware.Claims {
	return middleware.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    "kbn",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func newRouter(issuer string, roles ...domain.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := []gin.HandlerFunc{middleware.AuthMiddleware(testSecret, issuer)}
	if len(roles) > 0 {
		chain = append(chain, middleware.RequireRole(roles...))
	}
	chain = append(chain, func(c *gin.Context) {
		userID, _ := middleware.GetUserIDFromContext(c)
		principal, _ := middleware.GetPrincipalFromContext(c)
		c.JSON(http.StatusOK, gin.H{"userID": userID, "role": principal.Role})
	})
	r.GET("/protected", chain...)
	return r
}

func get(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	expired := validClaims("ADMINISTRATOR")
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	noSubject := validClaims("ADMINISTRATOR")
	noSubject.Subject = ""

	tests := []struct {
		name       string
		issuer     string
		header     func(t *testing.T) string
		wantStatus int
	}{
		{"missing header", "", func(*testing.T) string { return "" }, http.StatusUnauthorized},
		{"not bearer", "", func(*testing.T) string { return "Basic abc" }, http.StatusUnauthorized},
		{"garbage token", "", func(*testing.T) string { return "Bearer not-a-jwt" }, http.StatusUnauthorized},
		{"wrong secret", "", func(t *testing.T) string {
			return "Bearer " + signToken(t, "other", jwt.SigningMethodHS256, validClaims("ADMINISTRATOR"))
		}, http.StatusUnauthorized},
		{"expired", "", func(t *testing.T) string {
			return "Bearer " + signToken(t, testSecret, jwt.SigningMethodHS256, expired)
		}, http.StatusUnauthorized},
		{"no subject", "", func(t *testing.T) string {
			return "Bearer " + signToken(t, testSecret, jwt.SigningMethodHS256, noSubject)
		}, http.StatusUnauthorized},
		{"unknown role", "", func(t *testing.T) string {
			return "Bearer " + signToken(t, testSecret, jwt.SigningMethodHS256, validClaims("JANITOR"))
		}, http.StatusUnauthorized},
		{"issuer mismatch", "someone-else", func(t *testing.T) string {
			return "Bearer " + signToken(t, testSecret, jwt.SigningMethodHS256, validClaims("ADMINISTRATOR"))
		}, http.StatusUnauthorized},
		{"valid", "kbn", func(t *testing.T) string {
			return "Bearer " + signToken(t, testSecret, jwt.SigningMethodHS512, validClaims("ADMINISTRATOR"))
		}, http.StatusOK},
		{"legacy role name", "", func(t *testing.T) string {
			return "Bearer " + signToken(t, testSecret, jwt.SigningMethodHS256, validClaims("ROLE_SECRETARIA"))
		}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(newRouter(tt.issuer), tt.header(t))
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestAuthMiddleware_PopulatesPrincipal(t *testing.T) {
	w := get(newRouter(""), "Bearer "+signToken(t, testSecret, jwt.SigningMethodHS256, validClaims("ROLE_SECRETARIA")))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userID":"user-1","role":"SECRETARY"}`, w.Body.String())
}

func TestRequireRole(t *testing.T) {
	r := newRouter("", domain.RoleAdministrator, domain.RoleSecretary)

	w := get(r, "Bearer "+signToken(t, testSecret, jwt.SigningMethodHS256, validClaims("INSTRUCTOR")))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = get(r, "Bearer "+signToken(t, testSecret, jwt.SigningMethodHS256, validClaims("SECRETARY")))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_WithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.RequireRole(domain.RoleAdministrator), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusUnauthorized, get(r, "").Code)
}

func TestAuthAborts_RecordCause(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var causes []error
	r.Use(func(c *gin.Context) {
		c.Next()
		for _, e := range c.Errors {
			causes = append(causes, e.Err)
		}
	})
	r.GET("/protected",
		middleware.AuthMiddleware(testSecret, ""),
		middleware.RequireRole(domain.RoleAdministrator),
		func(c *gin.Context) { c.Status(http.StatusOK) })

	w := get(r, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Authorization header required"}`, w.Body.String())
	require.Len(t, causes, 1)
	assert.ErrorIs(t, causes[0], apperrors.ErrUnauthorized)

	causes = nil
	w = get(r, "Bearer "+signToken(t, testSecret, jwt.SigningMethodHS256, validClaims("INSTRUCTOR")))
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Forbidden"}`, w.Body.String())
	require.Len(t, causes, 1)
	assert.ErrorIs(t, causes[0], apperrors.ErrForbidden)
}

func TestRateLimit(t *testing.T) {
	lim, err := middleware.NewRateLimiter("2-M")
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.RateLimit(lim), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, get(r, "").Code)
	w := get(r, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, http.StatusTooManyRequests, get(r, "").Code)
}

func TestNewRateLimiter_InvalidFormat(t *testing.T) {
	_, err := middleware.NewRateLimiter("lots")
	assert.Error(t, err)
}

func TestStructuredLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger))
	r.GET("/protected", func(c *gin.Context) {
		middleware.GetLoggerFromCtx(c.Request.Context()).Info("inside handler")
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("X-Request-ID", "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
	assert.Contains(t, buf.String(), "Request completed")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestStructuredLoggingMiddleware_LogsAuthFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger))
	r.GET("/protected", middleware.AuthMiddleware(testSecret, ""), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := get(r, "Basic abc")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, buf.String(), `"errors":"Error #01: unauthorized: Authorization header format must be Bearer {token}\n"`)
}

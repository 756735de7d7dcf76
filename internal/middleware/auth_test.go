package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/upticktalent/uptick-talent-lms-koala-sub003/internal/domain"
)

const testSecret = "test-secret"

func newAuthRouter(t *testing.T, roles ...domain.Role) http.Handler {
	t.Helper()
	auth := NewAuth(testSecret)

	r := ginext.New("test")
	handlers := []ginext.HandlerFunc{auth.Authenticate()}
	if len(roles) > 0 {
		handlers = append(handlers, auth.RequireRoles(roles...))
	}
	handlers = append(handlers, func(c *ginext.Context) {
		principal, ok := PrincipalFrom(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, ginext.H{"user_id": principal.UserID, "role": string(principal.Role)})
	})
	r.GET("/protected", handlers...)

	return r
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims(role string) jwt.MapClaims {
	return jwt.MapClaims{
		"user_id": "u1",
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
}

func TestAuth_Authenticate_ValidToken(t *testing.T) {
	r := newAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, validClaims("mentor")))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuth_Authenticate_MissingHeader(t *testing.T) {
	r := newAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_Authenticate_WrongSecret(t *testing.T) {
	r := newAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", validClaims("mentor")))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_Authenticate_ExpiredToken(t *testing.T) {
	r := newAuthRouter(t)

	claims := validClaims("mentor")
	claims["exp"] = time.Now().Add(-time.Hour).Unix()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, claims))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_Authenticate_MissingClaims(t *testing.T) {
	r := newAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_RequireRoles_Allowed(t *testing.T) {
	r := newAuthRouter(t, domain.RoleAdmin, domain.RoleMentor)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, validClaims("mentor")))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuth_RequireRoles_Forbidden(t *testing.T) {
	r := newAuthRouter(t, domain.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, validClaims("student")))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

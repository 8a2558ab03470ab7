package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dispatch/internal/domain/service"
	mockservice "dispatch/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/deliveries", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthContext("")
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthContext("Basic dXNlcjpwYXNz")
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("bad-token").Return(nil, errors.New("token is expired"))
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthContext("Bearer bad-token")
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_SetsClaims(t *testing.T) {
	userID := uuid.New()
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("good-token").Return(&service.Claims{
		UserID: userID,
		Roles:  []string{"rider"},
	}, nil)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthContext("Bearer good-token")
	next := func(c echo.Context) error {
		assert.Equal(t, userID, c.Get("userID"))
		assert.Equal(t, []string{"rider"}, c.Get("roles"))

		return c.NoContent(http.StatusOK)
	}

	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_RequireRole_Forbidden(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthContext("")
	c.Set("roles", []string{"user"})
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	require.NoError(t, m.RequireRole("admin")(next)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_RequireRole_Allows(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthContext("")
	c.Set("roles", []string{"rider", "admin"})
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	require.NoError(t, m.RequireRole("admin")(next)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

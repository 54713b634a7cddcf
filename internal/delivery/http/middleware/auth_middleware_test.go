package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"taskhub/internal/domain/service"
	mockSvc "taskhub/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuthenticate(t *testing.T, tokenSvc service.TokenService, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true

		return c.NoContent(http.StatusOK)
	}

	mw := NewAuthMiddleware(tokenSvc)
	err := mw.Authenticate(next)(c)
	require.NoError(t, err)

	return rec, nextCalled
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	identity := &service.Identity{ID: uuid.New(), Email: "test@example.com"}
	tokenSvc.EXPECT().Verify("valid-token").Return(identity, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewAuthMiddleware(tokenSvc)
	err := mw.Authenticate(func(c echo.Context) error {
		// The identity must be available to downstream handlers.
		assert.Equal(t, identity.ID, c.Get("userID"))
		assert.Equal(t, identity.Email, c.Get("email"))

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	rec, nextCalled := runAuthenticate(t, tokenSvc, "")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unauthorized access")
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	rec, nextCalled := runAuthenticate(t, tokenSvc, "Basic dXNlcjpwYXNz")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Unauthorized access")
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Verify("bad-token").Return(nil, errors.New("token is expired"))

	rec, nextCalled := runAuthenticate(t, tokenSvc, "Bearer bad-token")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// The body must not reveal why the token was rejected.
	assert.Contains(t, rec.Body.String(), "Unauthorized access")
	assert.NotContains(t, rec.Body.String(), "expired")
}

package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"taskhub/internal/delivery/http/validator"
	mockUC "taskhub/internal/mocks/usecase"
	"taskhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAccountHandler_Register_Success(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)
	uc.EXPECT().
		Register(mock.Anything, usecase.RegisterInput{Email: "test@example.com", Password: "password123"}).
		Return(&usecase.AuthOutput{Token: "signed_token"}, nil)

	h := NewAccountHandler(uc, newDiscardLogger())
	c, rec := newAuthContext(`{"email":"test@example.com","password":"password123"}`)

	err := h.Register(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
	assert.Contains(t, rec.Body.String(), `"token":"signed_token"`)
}

func TestAccountHandler_Register_InvalidEmail(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)

	h := NewAccountHandler(uc, newDiscardLogger())
	c, _ := newAuthContext(`{"email":"not-an-email","password":"password123"}`)

	err := h.Register(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestAccountHandler_Register_ShortPassword(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)

	h := NewAccountHandler(uc, newDiscardLogger())
	c, _ := newAuthContext(`{"email":"test@example.com","password":"short"}`)

	err := h.Register(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestAccountHandler_Login_Success(t *testing.T) {
	uc := mockUC.NewMockAccountUsecase(t)
	uc.EXPECT().
		Login(mock.Anything, usecase.LoginInput{Email: "test@example.com", Password: "password123"}).
		Return(&usecase.AuthOutput{Token: "signed_token"}, nil)

	h := NewAccountHandler(uc, newDiscardLogger())
	c, rec := newAuthContext(`{"email":"test@example.com","password":"password123"}`)

	err := h.Login(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"signed_token"`)
}

func TestAccountHandler_HealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := HealthCheck(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

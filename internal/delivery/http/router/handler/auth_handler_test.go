package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mentorhub/internal/delivery/http/validator"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(http.MethodGet, "/health", "")

	err := HealthCheck(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestAuthHandler_Signup_InvalidBody(t *testing.T) {
	handler := &AuthHandler{}

	c, rec := newTestContext(http.MethodPost, "/api/auth/signup", `{"email":"not-an-email"}`)

	err := handler.Signup(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestAuthHandler_GetProfile_NonNumericID(t *testing.T) {
	handler := &AuthHandler{}

	c, rec := newTestContext(http.MethodGet, "/api/auth/profile/abc", "")
	c.SetParamNames("userId")
	c.SetParamValues("abc")

	err := handler.GetProfile(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestDefaultImageForRole(t *testing.T) {
	assert.Equal(t, defaultMentorImageURL, defaultImageForRole("mentor"))
	assert.Equal(t, defaultMenteeImageURL, defaultImageForRole("mentee"))
}

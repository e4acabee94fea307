// file: controllers/auth_controller_test.go
//go:build unit
// +build unit

package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"kamaru-web/gateway"
	"kamaru-web/models"
	"kamaru-web/session"
)

func setupAuthController(t *testing.T) (*gin.Engine, *MockGateway) {
	router := setupTestRouter(t)
	mockAPI := new(MockGateway)
	ac := NewAuthController(mockAPI, session.NewManager())

	router.GET("/login", ac.ShowLogin)
	router.POST("/login", ac.PerformLogin)
	router.GET("/logout", ac.Logout)
	router.POST("/register", ac.PerformRegister)

	return router, mockAPI
}

func postForm(router *gin.Engine, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// TestPerformLogin_AdminLandsOnDashboard checks that a successful admin
// login stores the session and redirects to the admin dashboard.
func TestPerformLogin_AdminLandsOnDashboard(t *testing.T) {
	router, mockAPI := setupAuthController(t)

	mockAPI.On("Login", mock.Anything, "admin@kamaru.org", "secret123").
		Return(models.LoginResult{Token: "tok-admin", IsAdmin: true}, nil)

	w := postForm(router, "/login", url.Values{
		"email":    {"admin@kamaru.org"},
		"password": {"secret123"},
	}, nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
	assert.NotEmpty(t, w.Result().Cookies(), "login must set a session cookie")
	mockAPI.AssertExpectations(t)
}

// TestPerformLogin_VisitorLandsOnHome checks the non-admin redirect.
func TestPerformLogin_VisitorLandsOnHome(t *testing.T) {
	router, mockAPI := setupAuthController(t)

	mockAPI.On("Login", mock.Anything, "user@kamaru.org", "secret123").
		Return(models.LoginResult{Token: "tok-user", IsAdmin: false}, nil)

	w := postForm(router, "/login", url.Values{
		"email":    {"user@kamaru.org"},
		"password": {"secret123"},
	}, nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

// TestPerformLogin_BadCredentials checks that an auth failure re-renders
// the form with a neutral message and no session cookie.
func TestPerformLogin_BadCredentials(t *testing.T) {
	router, mockAPI := setupAuthController(t)

	mockAPI.On("Login", mock.Anything, "user@kamaru.org", "wrong-pass").
		Return(models.LoginResult{}, &gateway.APIError{Kind: gateway.KindAuth, Status: 401, Message: "bad credentials"})

	w := postForm(router, "/login", url.Values{
		"email":    {"user@kamaru.org"},
		"password": {"wrong-pass"},
	}, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password.")
}

// TestPerformLogin_MissingFields checks that an incomplete form never
// reaches the API.
func TestPerformLogin_MissingFields(t *testing.T) {
	router, mockAPI := setupAuthController(t)

	w := postForm(router, "/login", url.Values{"email": {"user@kamaru.org"}}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAPI.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}

// TestLogout_ClearsSession checks that logout redirects home and that
// the admin flag no longer opens the admin gate afterwards.
func TestLogout_ClearsSession(t *testing.T) {
	router, _ := setupAuthController(t)

	cookie := loginCookie(router, "/seed-session", "tok-admin", true)

	req, _ := http.NewRequest("GET", "/logout", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

// TestPerformRegister_ShortPassword checks local validation fires before
// any network call.
func TestPerformRegister_ShortPassword(t *testing.T) {
	router, mockAPI := setupAuthController(t)

	w := postForm(router, "/register", url.Values{
		"username": {"wanjiku"},
		"email":    {"wanjiku@kamaru.org"},
		"password": {"short"},
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAPI.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

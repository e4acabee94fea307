// file: controllers/page_controller_test.go
//go:build unit
// +build unit

package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"kamaru-web/gateway"
	"kamaru-web/models"
	"kamaru-web/session"
)

func setupPages(t *testing.T) (*gin.Engine, *MockGateway) {
	router := setupTestRouter(t)
	mockAPI := new(MockGateway)
	pc := NewPageController(mockAPI, session.NewManager(), "https://kamaru.example.org")

	router.GET("/", pc.Home)
	router.GET("/about", pc.About)
	router.GET("/videos", pc.Videos)
	router.GET("/events/:id", pc.EventDetail)
	router.GET("/events/:id/qr", pc.EventQR)
	router.POST("/participate", pc.PerformParticipate)

	return router, mockAPI
}

// A failing banners fetch must not blank the home page; the events
// section still renders.
func TestHome_DegradesPerSection(t *testing.T) {
	router, mockAPI := setupPages(t)

	mockAPI.On("Banners", mock.Anything).Return([]models.SystemImage(nil), errors.New("boom"))
	mockAPI.On("ListEvents", mock.Anything).Return([]models.Event{{ID: 1, Title: "Poetry Night"}}, nil)
	mockAPI.On("Stats", mock.Anything).Return(models.Stats{}, errors.New("boom"))
	mockAPI.On("SystemImage", mock.Anything, "logo").Return(models.SystemImage{}, errors.New("boom"))
	mockAPI.On("SystemImage", mock.Anything, "contact").Return(models.SystemImage{}, errors.New("boom"))

	req, _ := http.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Poetry Night")
}

func TestAbout_ShowsSectionImage(t *testing.T) {
	router, mockAPI := setupPages(t)

	mockAPI.On("SystemImage", mock.Anything, "about").
		Return(models.SystemImage{ID: 3, Section: "about", ImageURL: "https://cdn.example.org/about.jpg"}, nil)

	req, _ := http.NewRequest("GET", "/about", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "https://cdn.example.org/about.jpg")
}

// A missing about image degrades to the text-only page.
func TestAbout_MissingImageStillRenders(t *testing.T) {
	router, mockAPI := setupPages(t)

	mockAPI.On("SystemImage", mock.Anything, "about").
		Return(models.SystemImage{}, &gateway.APIError{Kind: gateway.KindValidation, Status: 404, Message: "not found"})

	req, _ := http.NewRequest("GET", "/about", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "About")
}

func TestVideos_HighlightsMostViewed(t *testing.T) {
	router, mockAPI := setupPages(t)

	mockAPI.On("ListVideos", mock.Anything).Return([]models.Video{
		{ID: 1, Title: "Opening Act", Views: 12},
		{ID: 2, Title: "Grand Finale", Views: 99},
		{ID: 3, Title: "Interlude", Views: 50},
	}, nil)

	req, _ := http.NewRequest("GET", "/videos", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "top:Grand Finale")
}

func TestEventDetail_UnknownEventRedirectsHome(t *testing.T) {
	router, mockAPI := setupPages(t)

	mockAPI.On("GetEvent", mock.Anything, 7).
		Return(models.Event{}, &gateway.APIError{Kind: gateway.KindValidation, Status: 404, Message: "not found"})

	req, _ := http.NewRequest("GET", "/events/7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestEventQR_ServesPNG(t *testing.T) {
	router, _ := setupPages(t)

	req, _ := http.NewRequest("GET", "/events/7/qr", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())
}

// TestParticipate_RequiresLogin checks anonymous registration attempts
// are redirected to the login page without touching the API.
func TestParticipate_RequiresLogin(t *testing.T) {
	router, mockAPI := setupPages(t)

	w := postForm(router, "/participate", url.Values{
		"name":     {"Wanjiku"},
		"email":    {"wanjiku@kamaru.org"},
		"phone":    {"0700000000"},
		"category": {"Poetry"},
	}, nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	mockAPI.AssertNotCalled(t, "RegisterParticipant", mock.Anything, mock.Anything, mock.Anything)
}

// TestParticipate_RejectsUnknownCategory checks the fixed category set
// is enforced before any network call.
func TestParticipate_RejectsUnknownCategory(t *testing.T) {
	router, mockAPI := setupPages(t)

	cookie := loginCookie(router, "/seed-session", "tok-user", false)
	w := postForm(router, "/participate", url.Values{
		"name":     {"Wanjiku"},
		"email":    {"wanjiku@kamaru.org"},
		"phone":    {"0700000000"},
		"category": {"Stand-up Comedy"},
	}, cookie)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAPI.AssertNotCalled(t, "RegisterParticipant", mock.Anything, mock.Anything, mock.Anything)
}

func TestParticipate_Success(t *testing.T) {
	router, mockAPI := setupPages(t)

	mockAPI.On("RegisterParticipant", mock.Anything, "tok-user", gateway.ParticipantForm{
		Name:     "Wanjiku",
		Email:    "wanjiku@kamaru.org",
		Phone:    "0700000000",
		Category: "Poetry",
	}).Return(models.Participant{ID: 3, Name: "Wanjiku"}, nil)

	cookie := loginCookie(router, "/seed-session", "tok-user", false)
	w := postForm(router, "/participate", url.Values{
		"name":     {"Wanjiku"},
		"email":    {"wanjiku@kamaru.org"},
		"phone":    {"0700000000"},
		"category": {"Poetry"},
	}, cookie)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	mockAPI.AssertExpectations(t)
}

// TestParticipate_ExpiredTokenSendsBackToLogin checks a server-side
// auth rejection routes the visitor to re-login.
func TestParticipate_ExpiredTokenSendsBackToLogin(t *testing.T) {
	router, mockAPI := setupPages(t)

	mockAPI.On("RegisterParticipant", mock.Anything, "tok-stale", mock.Anything).
		Return(models.Participant{}, &gateway.APIError{Kind: gateway.KindAuth, Status: 401, Message: "token expired"})

	cookie := loginCookie(router, "/seed-session", "tok-stale", false)
	w := postForm(router, "/participate", url.Values{
		"name":     {"Wanjiku"},
		"email":    {"wanjiku@kamaru.org"},
		"phone":    {"0700000000"},
		"category": {"Poetry"},
	}, cookie)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

// file: controllers/events_admin_controller_test.go
//go:build unit
// +build unit

package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kamaru-web/models"
	"kamaru-web/session"
)

func setupEventsAdmin(t *testing.T) (*gin.Engine, *MockGateway, *EventsAdminController) {
	router := setupTestRouter(t)
	mockAPI := new(MockGateway)
	ec := NewEventsAdminController(mockAPI, session.NewManager())

	router.GET("/admin/events", ec.List)
	router.POST("/admin/events", ec.Create)
	router.POST("/admin/events/:id", ec.Update)
	router.POST("/admin/events/:id/delete", ec.Delete)

	return router, mockAPI, ec
}

func TestEventsList_PopulatesPanel(t *testing.T) {
	router, mockAPI, ec := setupEventsAdmin(t)

	mockAPI.On("ListEvents", mock.Anything).Return([]models.Event{
		{ID: 1, Title: "Poetry Night"},
		{ID: 2, Title: "Folk Evening"},
	}, nil)

	req, _ := http.NewRequest("GET", "/admin/events", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Poetry Night")
	assert.Contains(t, w.Body.String(), "Folk Evening")
	assert.Len(t, ec.Panel.Items(), 2)
}

// An empty title is rejected locally; the create call never goes out
// and the form content is re-rendered.
func TestEventsCreate_EmptyTitleNeverReachesAPI(t *testing.T) {
	router, mockAPI, ec := setupEventsAdmin(t)

	cookie := loginCookie(router, "/seed-session", "tok-admin", true)
	w := postForm(router, "/admin/events", url.Values{
		"title":     {""},
		"date_time": {"2026-10-01T19:00"},
		"location":  {"Nairobi"},
	}, cookie)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAPI.AssertNotCalled(t, "CreateEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.Empty(t, ec.Panel.Items(), "a rejected create must not touch the list")
}

func TestEventsCreate_AppendsServerEvent(t *testing.T) {
	router, mockAPI, ec := setupEventsAdmin(t)

	mockAPI.On("CreateEvent", mock.Anything, "tok-admin", mock.Anything, mock.Anything).
		Return(models.Event{ID: 9, Title: "Poetry Night"}, nil)

	cookie := loginCookie(router, "/seed-session", "tok-admin", true)
	w := postForm(router, "/admin/events", url.Values{
		"title":     {"Poetry Night"},
		"date_time": {"2026-10-01T19:00"},
		"location":  {"Nairobi"},
	}, cookie)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/events", w.Header().Get("Location"))

	items := ec.Panel.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 9, items[0].ID, "the list holds the server's copy, id included")
	mockAPI.AssertExpectations(t)
}

// An unconfirmed delete never reaches the API and the entry stays.
func TestEventsDelete_RequiresConfirmation(t *testing.T) {
	router, mockAPI, ec := setupEventsAdmin(t)

	mockAPI.On("ListEvents", mock.Anything).Return([]models.Event{{ID: 1, Title: "Poetry Night"}}, nil)
	req, _ := http.NewRequest("GET", "/admin/events", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	cookie := loginCookie(router, "/seed-session", "tok-admin", true)
	w := postForm(router, "/admin/events/1/delete", url.Values{}, cookie)

	assert.Equal(t, http.StatusFound, w.Code)
	mockAPI.AssertNotCalled(t, "DeleteEvent", mock.Anything, mock.Anything, mock.Anything)
	assert.Len(t, ec.Panel.Items(), 1)
}

func TestEventsDelete_RemovesAfterServerConfirms(t *testing.T) {
	router, mockAPI, ec := setupEventsAdmin(t)

	mockAPI.On("ListEvents", mock.Anything).Return([]models.Event{{ID: 1, Title: "Poetry Night"}}, nil)
	req, _ := http.NewRequest("GET", "/admin/events", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	mockAPI.On("DeleteEvent", mock.Anything, "tok-admin", 1).Return(nil)

	cookie := loginCookie(router, "/seed-session", "tok-admin", true)
	w := postForm(router, "/admin/events/1/delete", url.Values{"confirm": {"yes"}}, cookie)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Empty(t, ec.Panel.Items())
	mockAPI.AssertExpectations(t)
}

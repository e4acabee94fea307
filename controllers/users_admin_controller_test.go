// file: controllers/users_admin_controller_test.go
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

	"kamaru-web/gateway"
	"kamaru-web/models"
	"kamaru-web/session"
)

func setupUsersAdmin(t *testing.T) (*gin.Engine, *MockGateway, *UsersAdminController) {
	router := setupTestRouter(t)
	mockAPI := new(MockGateway)
	uc := NewUsersAdminController(mockAPI, session.NewManager())

	router.GET("/admin/users", uc.List)
	router.POST("/admin/users/:id", uc.Update)
	router.POST("/admin/users/:id/delete", uc.Delete)

	return router, mockAPI, uc
}

func TestUsersList(t *testing.T) {
	router, mockAPI, uc := setupUsersAdmin(t)

	mockAPI.On("ListUsers", mock.Anything, "tok-admin").Return([]models.User{
		{ID: 1, Username: "wanjiku", IsAdmin: true},
		{ID: 2, Username: "otieno"},
	}, nil)

	cookie := loginCookie(router, "/seed-session", "tok-admin", true)
	req, _ := http.NewRequest("GET", "/admin/users", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "wanjiku")
	assert.Len(t, uc.Panel.Items(), 2)
}

// Granting the admin role goes through as an update and the list holds
// the server's copy afterwards.
func TestUsersUpdate_GrantsAdminRole(t *testing.T) {
	router, mockAPI, uc := setupUsersAdmin(t)

	mockAPI.On("ListUsers", mock.Anything, mock.Anything).
		Return([]models.User{{ID: 2, Username: "otieno"}}, nil)
	req, _ := http.NewRequest("GET", "/admin/users", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	mockAPI.On("UpdateUser", mock.Anything, "tok-admin", 2, gateway.UserUpdate{
		Username: "otieno",
		Email:    "otieno@kamaru.org",
		IsAdmin:  true,
	}).Return(models.User{ID: 2, Username: "otieno", Email: "otieno@kamaru.org", IsAdmin: true}, nil)

	cookie := loginCookie(router, "/seed-session", "tok-admin", true)
	w := postForm(router, "/admin/users/2", url.Values{
		"username": {"otieno"},
		"email":    {"otieno@kamaru.org"},
		"is_admin": {"true"},
	}, cookie)

	assert.Equal(t, http.StatusFound, w.Code)
	items := uc.Panel.Items()
	require.Len(t, items, 1)
	assert.True(t, items[0].IsAdmin)
	mockAPI.AssertExpectations(t)
}

// A failed delete keeps the account in the list.
func TestUsersDelete_FailureKeepsAccount(t *testing.T) {
	router, mockAPI, uc := setupUsersAdmin(t)

	mockAPI.On("ListUsers", mock.Anything, mock.Anything).
		Return([]models.User{{ID: 2, Username: "otieno"}}, nil)
	req, _ := http.NewRequest("GET", "/admin/users", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	mockAPI.On("DeleteUser", mock.Anything, "tok-admin", 2).
		Return(&gateway.APIError{Kind: gateway.KindServer, Status: 500, Message: "boom"})

	cookie := loginCookie(router, "/seed-session", "tok-admin", true)
	w := postForm(router, "/admin/users/2/delete", url.Values{"confirm": {"yes"}}, cookie)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Len(t, uc.Panel.Items(), 1, "a failed delete must not drop the entry")
}

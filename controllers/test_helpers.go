// file: controllers/test_helpers.go
//go:build unit
// +build unit

package controllers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// setupTestRouter creates a new Gin engine with session middleware and fake HTML templates.
func setupTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()

	// Set up sessions with cookie store.
	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("testsession", store))

	// Create minimal templates to avoid panics during testing.
	tmpDir := t.TempDir()
	if err := createDummyTemplates(tmpDir); err != nil {
		t.Fatalf("Failed to create dummy templates: %v", err)
	}

	// Use filepath.Join for cross-platform compatibility.
	router.LoadHTMLGlob(filepath.Join(tmpDir, "*.html"))
	return router
}

// createDummyTemplates writes a set of minimal HTML templates to the provided directory.
func createDummyTemplates(dir string) error {
	templates := map[string]string{
		"home.html":               `<html><body>Home {{range .Events}}{{.Title}} {{end}}{{range .Notices}}{{.}} {{end}}</body></html>`,
		"gallery.html":            `<html><body>Gallery {{range .Images}}{{.Title}} {{end}}</body></html>`,
		"videos.html":             `<html><body>Videos {{with .MostViewed}}top:{{.Title}} {{end}}{{range .Videos}}{{.Title}} {{end}}</body></html>`,
		"event.html":              `<html><body>{{.Event.Title}}</body></html>`,
		"terms.html":              `<html><body>Terms</body></html>`,
		"about.html":              `<html><body>About {{with .AboutImage}}{{.ImageURL}}{{end}}</body></html>`,
		"participate.html":        `<html><body>Participate {{.Error}}</body></html>`,
		"login.html":              `<html><body>Login {{.Error}}</body></html>`,
		"register.html":           `<html><body>Register {{.Error}}</body></html>`,
		"forgot_password.html":    `<html><body>Forgot {{.Error}}</body></html>`,
		"reset_password.html":     `<html><body>Reset {{.Error}}</body></html>`,
		"admin_dashboard.html":    `<html><body>Dashboard {{with .Stats}}{{.TotalEvents}} events{{end}}</body></html>`,
		"admin_events.html":       `<html><body>Events {{.Error}} {{range .Items}}{{.Title}} {{end}}</body></html>`,
		"admin_participants.html": `<html><body>Participants {{.Error}} {{range .Items}}{{.Name}} {{end}}</body></html>`,
		"admin_users.html":        `<html><body>Users {{.Error}} {{range .Items}}{{.Username}} {{end}}</body></html>`,
		"admin_gallery.html":      `<html><body>AdminGallery {{.Error}} {{range .Items}}{{.Title}} {{end}}</body></html>`,
		"admin_videos.html":       `<html><body>AdminVideos {{.Error}} {{range .Items}}{{.Title}} {{end}}</body></html>`,
		"admin_sysimages.html":    `<html><body>SysImages {{.Error}} {{range .Banners}}{{.ID}} {{end}}</body></html>`,
	}

	for name, content := range templates {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return err
		}
	}
	return nil
}

// SetSession sets the given key/value pairs in the session using a helper route
// and returns the session cookie that can be attached to subsequent test requests.
func SetSession(router *gin.Engine, route string, data map[string]interface{}) *http.Cookie {
	// Create a helper route for setting session values.
	router.GET(route, func(c *gin.Context) {
		session := sessions.Default(c)
		for key, value := range data {
			session.Set(key, value)
		}
		if err := session.Save(); err != nil {
			c.String(http.StatusInternalServerError, "session save failed")
			return
		}
		c.String(http.StatusOK, "session set")
	})

	// Call the helper route.
	req, _ := http.NewRequest("GET", route, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Extract and return the session cookie.
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "testsession" {
			return cookie
		}
	}
	return nil
}

// loginCookie returns a session cookie for a logged-in user.
func loginCookie(router *gin.Engine, route, token string, isAdmin bool) *http.Cookie {
	return SetSession(router, route, map[string]interface{}{
		"token":   token,
		"isAdmin": isAdmin,
	})
}

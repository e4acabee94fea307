// Package middleware file: middleware/admin_required.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kamaru-web/logger"
	"kamaru-web/session"
)

// AdminRequired guards the admin subtree. Visitors whose session does
// not carry the admin flag are redirected to the public home page with
// a notice before any admin data is fetched. This check trusts the
// locally cached flag and is a UX convenience only: the API is the real
// enforcement point, and a forged flag only changes what the client
// attempts to render before the backend rejects the call.
func AdminRequired(sessions session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !sessions.IsAdmin(c) {
			logger.Warnf("AdminRequired: unauthorized attempt on %s", c.Request.URL.Path)
			sessions.AddNotice(c, "Unauthorized access.")
			c.Redirect(http.StatusFound, "/")
			c.Abort() // 🔴 prevents further execution
			return
		}
		c.Next()
	}
}

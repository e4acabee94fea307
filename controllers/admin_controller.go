// Package controllers provides HTTP handlers for the admin back office.
// File: controllers/admin_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kamaru-web/gateway"
	"kamaru-web/logger"
	"kamaru-web/session"
)

// ---------------- Admin Controller ----------------

// AdminController renders the admin dashboard. The route guard has
// already vetted the session; the stats fetch is the first protected
// interaction and its AuthError is what finally unmasks a forged flag.
type AdminController struct {
	API      gateway.API
	Sessions session.Manager
}

// NewAdminController initializes a new instance of AdminController.
func NewAdminController(api gateway.API, sessions session.Manager) *AdminController {
	return &AdminController{API: api, Sessions: sessions}
}

// Dashboard shows the latest stats snapshot.
func (ac *AdminController) Dashboard(c *gin.Context) {
	data := pageData(c, ac.Sessions, "Admin Dashboard")

	stats, err := ac.API.Stats(c.Request.Context())
	if err != nil {
		logger.Warnf("Dashboard: stats unavailable: %v", err)
		data["Error"] = gateway.Notice(err)
	} else {
		data["Stats"] = stats
	}

	c.HTML(http.StatusOK, "admin_dashboard.html", data)
}

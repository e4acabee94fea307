// Package controllers file: controllers/events_admin_controller.go
package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kamaru-web/gateway"
	"kamaru-web/logger"
	"kamaru-web/models"
	"kamaru-web/panel"
	"kamaru-web/session"
)

// ---------------- events admin ----------------

// EventsAdminController manages the event CRUD panel.
type EventsAdminController struct {
	API      gateway.API
	Sessions session.Manager
	Panel    *panel.Panel[models.Event]
}

// NewEventsAdminController initializes the events panel controller.
func NewEventsAdminController(api gateway.API, sessions session.Manager) *EventsAdminController {
	return &EventsAdminController{
		API:      api,
		Sessions: sessions,
		Panel:    panel.New("events", func(e models.Event) int { return e.ID }),
	}
}

func (ec *EventsAdminController) render(c *gin.Context, status int, extra gin.H) {
	data := pageData(c, ec.Sessions, "Manage Events")
	data["Items"] = ec.Panel.Items()
	for k, v := range extra {
		data[k] = v
	}
	c.HTML(status, "admin_events.html", data)
}

// List loads the event list from the API and renders the panel. On
// failure the previous list stays on screen with a notice.
func (ec *EventsAdminController) List(c *gin.Context) {
	err := ec.Panel.Load(c.Request.Context(), func(ctx context.Context) ([]models.Event, error) {
		return ec.API.ListEvents(ctx)
	})
	if err != nil {
		logger.Warnf("Events.List: load failed: %v", err)
		ec.render(c, http.StatusOK, gin.H{"Error": gateway.Notice(err)})
		return
	}
	ec.render(c, http.StatusOK, nil)
}

type eventAdminForm struct {
	Title    string `form:"title" binding:"required"`
	Theme    string `form:"theme"`
	Details  string `form:"details"`
	DateTime string `form:"date_time" binding:"required"`
	Location string `form:"location" binding:"required"`
}

func (f eventAdminForm) gateway() gateway.EventForm {
	return gateway.EventForm{
		Title:    f.Title,
		Theme:    f.Theme,
		Details:  f.Details,
		DateTime: f.DateTime,
		Location: f.Location,
	}
}

// Create validates the form locally (title, date and location are
// required before any network call), then creates the event through
// the gateway. On failure the form stays open with the entered values.
func (ec *EventsAdminController) Create(c *gin.Context) {
	token, _ := ec.Sessions.Token(c)

	var form eventAdminForm
	if err := c.ShouldBind(&form); err != nil {
		ec.render(c, http.StatusBadRequest, gin.H{
			"Error":    "Title, date and location are required.",
			"Form":     form,
			"ShowForm": true,
		})
		return
	}

	image, err := formUpload(c, "image")
	if err != nil {
		ec.render(c, http.StatusBadRequest, gin.H{
			"Error":    "The image could not be read.",
			"Form":     form,
			"ShowForm": true,
		})
		return
	}

	_, err = ec.Panel.Create(c.Request.Context(), func(ctx context.Context) (models.Event, error) {
		return ec.API.CreateEvent(ctx, token, form.gateway(), image)
	})
	if err != nil {
		logger.Warnf("Events.Create: failed: %v", err)
		ec.render(c, http.StatusBadRequest, gin.H{
			"Error":    gateway.Notice(err),
			"Form":     form,
			"ShowForm": true,
		})
		return
	}

	ec.Sessions.AddNotice(c, "Event created successfully!")
	c.Redirect(http.StatusFound, "/admin/events")
}

// Update edits an event in place. The list entry is replaced with the
// server's copy only on success.
func (ec *EventsAdminController) Update(c *gin.Context) {
	token, _ := ec.Sessions.Token(c)
	id, ok := pathID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/events")
		return
	}

	var form eventAdminForm
	if err := c.ShouldBind(&form); err != nil {
		ec.render(c, http.StatusBadRequest, gin.H{
			"Error":     "Title, date and location are required.",
			"Form":      form,
			"EditingID": id,
		})
		return
	}

	image, err := formUpload(c, "image")
	if err != nil {
		ec.render(c, http.StatusBadRequest, gin.H{
			"Error":     "The image could not be read.",
			"Form":      form,
			"EditingID": id,
		})
		return
	}

	_, err = ec.Panel.Update(c.Request.Context(), id, func(ctx context.Context) (models.Event, error) {
		return ec.API.UpdateEvent(ctx, token, id, form.gateway(), image)
	})
	if err != nil {
		logger.Warnf("Events.Update: failed for %d: %v", id, err)
		ec.render(c, http.StatusBadRequest, gin.H{
			"Error":     gateway.Notice(err),
			"Form":      form,
			"EditingID": id,
		})
		return
	}

	ec.Sessions.AddNotice(c, "Event updated successfully!")
	c.Redirect(http.StatusFound, "/admin/events")
}

// Delete removes an event after explicit confirmation. The entry only
// leaves the list once the API confirms.
func (ec *EventsAdminController) Delete(c *gin.Context) {
	token, _ := ec.Sessions.Token(c)
	id, ok := pathID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/events")
		return
	}

	err := ec.Panel.Delete(c.Request.Context(), id, deleteConfirmed(c), func(ctx context.Context) error {
		return ec.API.DeleteEvent(ctx, token, id)
	})
	switch {
	case errors.Is(err, panel.ErrConfirmationRequired):
		ec.Sessions.AddNotice(c, "Please confirm the deletion.")
	case err != nil:
		logger.Warnf("Events.Delete: failed for %d: %v", id, err)
		ec.Sessions.AddNotice(c, gateway.Notice(err))
	default:
		ec.Sessions.AddNotice(c, "Event deleted successfully!")
	}
	c.Redirect(http.StatusFound, "/admin/events")
}

// Package controllers file: controllers/participants_admin_controller.go
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

// ---------------- participants admin ----------------

// ParticipantsAdminController manages the participant CRUD panel,
// including on-behalf registration.
type ParticipantsAdminController struct {
	API      gateway.API
	Sessions session.Manager
	Panel    *panel.Panel[models.Participant]
}

// NewParticipantsAdminController initializes the participants panel controller.
func NewParticipantsAdminController(api gateway.API, sessions session.Manager) *ParticipantsAdminController {
	return &ParticipantsAdminController{
		API:      api,
		Sessions: sessions,
		Panel:    panel.New("participants", func(p models.Participant) int { return p.ID }),
	}
}

func (pc *ParticipantsAdminController) render(c *gin.Context, status int, extra gin.H) {
	data := pageData(c, pc.Sessions, "Manage Participants")
	data["Items"] = pc.Panel.Items()
	data["Categories"] = models.Categories
	for k, v := range extra {
		data[k] = v
	}
	c.HTML(status, "admin_participants.html", data)
}

// List loads all participants.
func (pc *ParticipantsAdminController) List(c *gin.Context) {
	token, _ := pc.Sessions.Token(c)
	err := pc.Panel.Load(c.Request.Context(), func(ctx context.Context) ([]models.Participant, error) {
		return pc.API.ListParticipants(ctx, token)
	})
	if err != nil {
		logger.Warnf("Participants.List: load failed: %v", err)
		pc.render(c, http.StatusOK, gin.H{"Error": gateway.Notice(err)})
		return
	}
	pc.render(c, http.StatusOK, nil)
}

type participantAdminForm struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Phone    string `form:"phone" binding:"required"`
	Category string `form:"category" binding:"required"`
}

func (f participantAdminForm) gateway() gateway.ParticipantForm {
	return gateway.ParticipantForm{Name: f.Name, Email: f.Email, Phone: f.Phone, Category: f.Category}
}

// Create registers a participant on someone's behalf. Required fields
// and the category enum are checked before any network call.
func (pc *ParticipantsAdminController) Create(c *gin.Context) {
	token, _ := pc.Sessions.Token(c)

	var form participantAdminForm
	if err := c.ShouldBind(&form); err != nil || !models.ValidCategory(form.Category) {
		pc.render(c, http.StatusBadRequest, gin.H{
			"Error":    "All fields are required and the category must be one of the listed ones.",
			"Form":     form,
			"ShowForm": true,
		})
		return
	}

	_, err := pc.Panel.Create(c.Request.Context(), func(ctx context.Context) (models.Participant, error) {
		return pc.API.AdminRegisterParticipant(ctx, token, form.gateway())
	})
	if err != nil {
		logger.Warnf("Participants.Create: failed: %v", err)
		pc.render(c, http.StatusBadRequest, gin.H{
			"Error":    gateway.Notice(err),
			"Form":     form,
			"ShowForm": true,
		})
		return
	}

	pc.Sessions.AddNotice(c, "Participant registered successfully!")
	c.Redirect(http.StatusFound, "/admin/participants")
}

// Update edits a participant.
func (pc *ParticipantsAdminController) Update(c *gin.Context) {
	token, _ := pc.Sessions.Token(c)
	id, ok := pathID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/participants")
		return
	}

	var form participantAdminForm
	if err := c.ShouldBind(&form); err != nil || !models.ValidCategory(form.Category) {
		pc.render(c, http.StatusBadRequest, gin.H{
			"Error":     "All fields are required and the category must be one of the listed ones.",
			"Form":      form,
			"EditingID": id,
		})
		return
	}

	_, err := pc.Panel.Update(c.Request.Context(), id, func(ctx context.Context) (models.Participant, error) {
		return pc.API.UpdateParticipant(ctx, token, id, form.gateway())
	})
	if err != nil {
		logger.Warnf("Participants.Update: failed for %d: %v", id, err)
		pc.render(c, http.StatusBadRequest, gin.H{
			"Error":     gateway.Notice(err),
			"Form":      form,
			"EditingID": id,
		})
		return
	}

	pc.Sessions.AddNotice(c, "Participant updated successfully!")
	c.Redirect(http.StatusFound, "/admin/participants")
}

// Delete removes a participant after explicit confirmation.
func (pc *ParticipantsAdminController) Delete(c *gin.Context) {
	token, _ := pc.Sessions.Token(c)
	id, ok := pathID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/participants")
		return
	}

	err := pc.Panel.Delete(c.Request.Context(), id, deleteConfirmed(c), func(ctx context.Context) error {
		return pc.API.DeleteParticipant(ctx, token, id)
	})
	switch {
	case errors.Is(err, panel.ErrConfirmationRequired):
		pc.Sessions.AddNotice(c, "Please confirm the deletion.")
	case err != nil:
		logger.Warnf("Participants.Delete: failed for %d: %v", id, err)
		pc.Sessions.AddNotice(c, gateway.Notice(err))
	default:
		pc.Sessions.AddNotice(c, "Participant deleted successfully!")
	}
	c.Redirect(http.StatusFound, "/admin/participants")
}

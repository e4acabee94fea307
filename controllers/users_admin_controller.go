// Package controllers file: controllers/users_admin_controller.go
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

// ---------------- users admin ----------------

// UsersAdminController manages registered accounts, including the
// admin role toggle. Accounts are created through public registration,
// so the panel has no create path.
type UsersAdminController struct {
	API      gateway.API
	Sessions session.Manager
	Panel    *panel.Panel[models.User]
}

// NewUsersAdminController initializes the users panel controller.
func NewUsersAdminController(api gateway.API, sessions session.Manager) *UsersAdminController {
	return &UsersAdminController{
		API:      api,
		Sessions: sessions,
		Panel:    panel.New("users", func(u models.User) int { return u.ID }),
	}
}

func (uc *UsersAdminController) render(c *gin.Context, status int, extra gin.H) {
	data := pageData(c, uc.Sessions, "Manage Users")
	data["Items"] = uc.Panel.Items()
	for k, v := range extra {
		data[k] = v
	}
	c.HTML(status, "admin_users.html", data)
}

// List loads every account.
func (uc *UsersAdminController) List(c *gin.Context) {
	token, _ := uc.Sessions.Token(c)
	err := uc.Panel.Load(c.Request.Context(), func(ctx context.Context) ([]models.User, error) {
		return uc.API.ListUsers(ctx, token)
	})
	if err != nil {
		logger.Warnf("Users.List: load failed: %v", err)
		uc.render(c, http.StatusOK, gin.H{"Error": gateway.Notice(err)})
		return
	}
	uc.render(c, http.StatusOK, nil)
}

type userAdminForm struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	IsAdmin  bool   `form:"is_admin"`
}

// Update edits an account, including granting or revoking the admin
// role.
func (uc *UsersAdminController) Update(c *gin.Context) {
	token, _ := uc.Sessions.Token(c)
	id, ok := pathID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/users")
		return
	}

	var form userAdminForm
	if err := c.ShouldBind(&form); err != nil {
		uc.render(c, http.StatusBadRequest, gin.H{
			"Error":     "Username and a valid email are required.",
			"Form":      form,
			"EditingID": id,
		})
		return
	}

	_, err := uc.Panel.Update(c.Request.Context(), id, func(ctx context.Context) (models.User, error) {
		return uc.API.UpdateUser(ctx, token, id, gateway.UserUpdate{
			Username: form.Username,
			Email:    form.Email,
			IsAdmin:  form.IsAdmin,
		})
	})
	if err != nil {
		logger.Warnf("Users.Update: failed for %d: %v", id, err)
		uc.render(c, http.StatusBadRequest, gin.H{
			"Error":     gateway.Notice(err),
			"Form":      form,
			"EditingID": id,
		})
		return
	}

	uc.Sessions.AddNotice(c, "User updated successfully!")
	c.Redirect(http.StatusFound, "/admin/users")
}

// Delete removes an account after explicit confirmation.
func (uc *UsersAdminController) Delete(c *gin.Context) {
	token, _ := uc.Sessions.Token(c)
	id, ok := pathID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/users")
		return
	}

	err := uc.Panel.Delete(c.Request.Context(), id, deleteConfirmed(c), func(ctx context.Context) error {
		return uc.API.DeleteUser(ctx, token, id)
	})
	switch {
	case errors.Is(err, panel.ErrConfirmationRequired):
		uc.Sessions.AddNotice(c, "Please confirm the deletion.")
	case err != nil:
		logger.Warnf("Users.Delete: failed for %d: %v", id, err)
		uc.Sessions.AddNotice(c, gateway.Notice(err))
	default:
		uc.Sessions.AddNotice(c, "User deleted successfully!")
	}
	c.Redirect(http.StatusFound, "/admin/users")
}

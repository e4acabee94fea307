// Package controllers handles user authentication and session management.
// File: controllers/auth_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kamaru-web/gateway"
	"kamaru-web/logger"
	"kamaru-web/services"
	"kamaru-web/session"
)

// AuthController owns login, registration and password recovery. All
// credential checks happen at the API; this controller only moves the
// resulting token and admin flag into the session.
type AuthController struct {
	API      gateway.API
	Sessions session.Manager
}

// NewAuthController initializes a new instance of AuthController.
func NewAuthController(api gateway.API, sessions session.Manager) *AuthController {
	return &AuthController{API: api, Sessions: sessions}
}

// ------------------ login / logout ------------------

// ShowLogin renders the login form.
func (ac *AuthController) ShowLogin(c *gin.Context) {
	data := pageData(c, ac.Sessions, "Login")
	c.HTML(http.StatusOK, "login.html", data)
}

type loginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// PerformLogin authenticates against the API and stores the returned
// token and admin flag in the session. Admin users land on the admin
// dashboard, everyone else on the home page.
func (ac *AuthController) PerformLogin(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		data := pageData(c, ac.Sessions, "Login")
		data["Error"] = "Please fill in all fields."
		data["Email"] = form.Email
		c.HTML(http.StatusBadRequest, "login.html", data)
		return
	}

	result, err := ac.API.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		logger.Warnf("PerformLogin: login failed for %s: %v", form.Email, err)
		data := pageData(c, ac.Sessions, "Login")
		if gateway.IsAuth(err) || gateway.IsValidation(err) {
			data["Error"] = "Invalid email or password."
		} else {
			data["Error"] = gateway.Notice(err)
		}
		data["Email"] = form.Email
		c.HTML(http.StatusUnauthorized, "login.html", data)
		return
	}

	if err := ac.Sessions.Set(c, result.Token, result.IsAdmin); err != nil {
		logger.Errorf("PerformLogin: failed to save session: %v", err)
		data := pageData(c, ac.Sessions, "Login")
		data["Error"] = "Internal error, please try again."
		c.HTML(http.StatusInternalServerError, "login.html", data)
		return
	}

	services.PublishLogin(result.IsAdmin)
	logger.Infof("PerformLogin: %s authenticated (isAdmin=%v)", form.Email, result.IsAdmin)

	ac.Sessions.AddNotice(c, "Login successful!")
	if result.IsAdmin {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// Logout discards the token client-side and returns to the home page.
// No server call is made; the token is simply forgotten.
func (ac *AuthController) Logout(c *gin.Context) {
	if err := ac.Sessions.Clear(c); err != nil {
		logger.Errorf("Logout: error clearing session: %v", err)
	}
	ac.Sessions.AddNotice(c, "You have been logged out.")
	c.Redirect(http.StatusFound, "/")
}

// ------------------ registration ------------------

// ShowRegister renders the account registration form.
func (ac *AuthController) ShowRegister(c *gin.Context) {
	data := pageData(c, ac.Sessions, "Register")
	c.HTML(http.StatusOK, "register.html", data)
}

type registerForm struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=8"`
}

// PerformRegister creates an account through the API. On failure the
// form stays populated with what the user typed.
func (ac *AuthController) PerformRegister(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		data := pageData(c, ac.Sessions, "Register")
		data["Error"] = "Please fill in all fields (password must be at least 8 characters)."
		data["Form"] = form
		c.HTML(http.StatusBadRequest, "register.html", data)
		return
	}

	err := ac.API.Register(c.Request.Context(), gateway.RegisterRequest{
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		logger.Warnf("PerformRegister: registration failed for %s: %v", form.Email, err)
		data := pageData(c, ac.Sessions, "Register")
		data["Error"] = gateway.Notice(err)
		data["Form"] = form
		c.HTML(http.StatusBadRequest, "register.html", data)
		return
	}

	ac.Sessions.AddNotice(c, "Registration successful! Please log in.")
	c.Redirect(http.StatusFound, "/login")
}

// ------------------ password recovery ------------------

// ShowForgotPassword renders the reset request form.
func (ac *AuthController) ShowForgotPassword(c *gin.Context) {
	data := pageData(c, ac.Sessions, "Forgot Password")
	c.HTML(http.StatusOK, "forgot_password.html", data)
}

// PerformForgotPassword asks the API to mail a reset link.
func (ac *AuthController) PerformForgotPassword(c *gin.Context) {
	email := c.PostForm("email")
	if email == "" {
		data := pageData(c, ac.Sessions, "Forgot Password")
		data["Error"] = "Please enter your email address."
		c.HTML(http.StatusBadRequest, "forgot_password.html", data)
		return
	}

	if err := ac.API.ForgotPassword(c.Request.Context(), email); err != nil {
		logger.Warnf("PerformForgotPassword: request failed for %s: %v", email, err)
		data := pageData(c, ac.Sessions, "Forgot Password")
		data["Error"] = gateway.Notice(err)
		data["Email"] = email
		c.HTML(http.StatusBadRequest, "forgot_password.html", data)
		return
	}

	ac.Sessions.AddNotice(c, "If that email is registered, a reset link is on its way.")
	c.Redirect(http.StatusFound, "/login")
}

// ShowResetPassword renders the new-password form for a reset token
// delivered by email.
func (ac *AuthController) ShowResetPassword(c *gin.Context) {
	data := pageData(c, ac.Sessions, "Reset Password")
	data["ResetToken"] = c.Query("token")
	c.HTML(http.StatusOK, "reset_password.html", data)
}

type resetForm struct {
	Token    string `form:"token" binding:"required"`
	Password string `form:"password" binding:"required,min=8"`
}

// PerformResetPassword submits the reset token with the new password.
func (ac *AuthController) PerformResetPassword(c *gin.Context) {
	var form resetForm
	if err := c.ShouldBind(&form); err != nil {
		data := pageData(c, ac.Sessions, "Reset Password")
		data["Error"] = "Password must be at least 8 characters."
		data["ResetToken"] = form.Token
		c.HTML(http.StatusBadRequest, "reset_password.html", data)
		return
	}

	if err := ac.API.ResetPassword(c.Request.Context(), form.Token, form.Password); err != nil {
		logger.Warnf("PerformResetPassword: reset failed: %v", err)
		data := pageData(c, ac.Sessions, "Reset Password")
		data["Error"] = gateway.Notice(err)
		data["ResetToken"] = form.Token
		c.HTML(http.StatusBadRequest, "reset_password.html", data)
		return
	}

	ac.Sessions.AddNotice(c, "Password updated. Please log in.")
	c.Redirect(http.StatusFound, "/login")
}

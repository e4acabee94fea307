// Package gateway file: gateway/auth.go
package gateway

import (
	"context"
	"net/http"

	"kamaru-web/models"
)

// ----------------------- auth operations -----------------------

// RegisterRequest is the payload for user self-registration.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new user account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.doJSON(ctx, "Register", http.MethodPost, "/users/register", "", req, nil)
}

// Login exchanges credentials for a bearer token and admin flag.
func (c *Client) Login(ctx context.Context, email, password string) (models.LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var result models.LoginResult
	err := c.doJSON(ctx, "Login", http.MethodPost, "/users/login", "", body, &result)
	return result, err
}

// ForgotPassword asks the API to send a password reset email.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.doJSON(ctx, "ForgotPassword", http.MethodPost, "/users/forgot_password", "", body, nil)
}

// ResetPassword submits a reset token with the new password.
func (c *Client) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	body := map[string]string{"token": resetToken, "password": newPassword}
	return c.doJSON(ctx, "ResetPassword", http.MethodPost, "/users/reset_password", "", body, nil)
}

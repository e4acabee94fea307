// Package gateway file: gateway/users.go
package gateway

import (
	"context"
	"fmt"
	"net/http"

	"kamaru-web/models"
)

// ----------------------- user admin operations -----------------------

// UserUpdate is the payload for an admin user edit, including the role
// toggle.
type UserUpdate struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}

// ListUsers returns every registered user. Admin only.
func (c *Client) ListUsers(ctx context.Context, token string) ([]models.User, error) {
	var users []models.User
	err := c.doJSON(ctx, "ListUsers", http.MethodGet, "/users/admin/users", token, nil, &users)
	return users, err
}

// GetUser returns one user by id. Admin only.
func (c *Client) GetUser(ctx context.Context, token string, id int) (models.User, error) {
	var user models.User
	err := c.doJSON(ctx, "GetUser", http.MethodGet, fmt.Sprintf("/users/admin/users/%d", id), token, nil, &user)
	return user, err
}

// UpdateUser applies an admin edit and returns the server's copy.
func (c *Client) UpdateUser(ctx context.Context, token string, id int, update UserUpdate) (models.User, error) {
	var resp struct {
		Message string      `json:"message"`
		User    models.User `json:"user"`
	}
	err := c.doJSON(ctx, "UpdateUser", http.MethodPut, fmt.Sprintf("/users/admin/users/%d", id), token, update, &resp)
	return resp.User, err
}

// DeleteUser removes a user. Admin only.
func (c *Client) DeleteUser(ctx context.Context, token string, id int) error {
	return c.doJSON(ctx, "DeleteUser", http.MethodDelete, fmt.Sprintf("/users/admin/users/%d", id), token, nil, nil)
}

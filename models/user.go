// Package models defines the data shapes exchanged with the Kamaru API.
// File: models/user.go
package models

// ----------------------- user model -----------------------

// User represents a registered account as the API reports it.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}

// LoginResult is the payload returned by a successful login.
type LoginResult struct {
	Token   string `json:"token"`
	IsAdmin bool   `json:"is_admin"`
	Message string `json:"message"`
}

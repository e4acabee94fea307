// Package controllers provides the HTTP handlers for every page of the
// site, public and admin.
// File: controllers/view_helpers.go
package controllers

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kamaru-web/gateway"
	"kamaru-web/navigation"
	"kamaru-web/session"
)

// ---------------- shared view data ----------------

// pageData assembles the fields every template expects: the composed
// navigation for the current session state, any queued notices, and the
// page title.
func pageData(c *gin.Context, sessions session.Manager, title string) gin.H {
	_, loggedIn := sessions.Token(c)
	isAdmin := sessions.IsAdmin(c)

	return gin.H{
		"Title":     title,
		"LoggedIn":  loggedIn,
		"IsAdmin":   isAdmin,
		"Nav":       navigation.Main(loggedIn, isAdmin),
		"AdminMenu": navigation.AdminMenu(isAdmin),
		"Notices":   sessions.Notices(c),
	}
}

// ---------------- form helpers ----------------

// formUpload reads an optional file field into memory and wraps it for
// the gateway. Returns nil when the field was left empty.
func formUpload(c *gin.Context, field string) (*gateway.Upload, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()
	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return &gateway.Upload{FileName: header.Filename, Content: bytes.NewReader(content)}, nil
}

// pathID parses the numeric :id path parameter.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// deleteConfirmed reports whether the delete form carried the explicit
// confirmation field.
func deleteConfirmed(c *gin.Context) bool {
	return c.PostForm("confirm") == "yes"
}

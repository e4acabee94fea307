// Package gateway file: gateway/events.go
package gateway

import (
	"context"
	"fmt"
	"net/http"

	"kamaru-web/models"
)

// ----------------------- event operations -----------------------

// EventForm carries the editable event fields. The image travels
// separately as a multipart upload.
type EventForm struct {
	Title    string
	Theme    string
	Details  string
	DateTime string
	Location string
}

func (f EventForm) fields() map[string]string {
	return map[string]string{
		"title":     f.Title,
		"theme":     f.Theme,
		"details":   f.Details,
		"date_time": f.DateTime,
		"location":  f.Location,
	}
}

// eventEnvelope is the success envelope for event writes.
type eventEnvelope struct {
	Message string       `json:"message"`
	Event   models.Event `json:"event"`
}

// ListEvents returns all events. Public.
func (c *Client) ListEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	err := c.doJSON(ctx, "ListEvents", http.MethodGet, "/events", "", nil, &events)
	return events, err
}

// GetEvent returns a single event by id. Public.
func (c *Client) GetEvent(ctx context.Context, id int) (models.Event, error) {
	var event models.Event
	err := c.doJSON(ctx, "GetEvent", http.MethodGet, fmt.Sprintf("/events/%d", id), "", nil, &event)
	return event, err
}

// CreateEvent creates an event; image may be nil. Admin only.
func (c *Client) CreateEvent(ctx context.Context, token string, form EventForm, image *Upload) (models.Event, error) {
	var resp eventEnvelope
	err := c.doMultipart(ctx, "CreateEvent", http.MethodPost, "/events", token, form.fields(), "image", image, &resp)
	return resp.Event, err
}

// UpdateEvent edits an event; image may be nil to keep the current one.
func (c *Client) UpdateEvent(ctx context.Context, token string, id int, form EventForm, image *Upload) (models.Event, error) {
	var resp eventEnvelope
	err := c.doMultipart(ctx, "UpdateEvent", http.MethodPut, fmt.Sprintf("/events/%d", id), token, form.fields(), "image", image, &resp)
	return resp.Event, err
}

// DeleteEvent removes an event. Admin only.
func (c *Client) DeleteEvent(ctx context.Context, token string, id int) error {
	return c.doJSON(ctx, "DeleteEvent", http.MethodDelete, fmt.Sprintf("/events/%d", id), token, nil, nil)
}

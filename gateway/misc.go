// Package gateway file: gateway/misc.go
package gateway

import (
	"context"
	"net/http"

	"kamaru-web/models"
)

// ----------------------- stats / newsletter / contact -----------------------

// Stats fetches the server-computed aggregate snapshot. Public.
func (c *Client) Stats(ctx context.Context) (models.Stats, error) {
	var stats models.Stats
	err := c.doJSON(ctx, "Stats", http.MethodGet, "/stats", "", nil, &stats)
	return stats, err
}

// SubscribeNewsletter adds an email to the newsletter list.
func (c *Client) SubscribeNewsletter(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.doJSON(ctx, "SubscribeNewsletter", http.MethodPost, "/newsletter/subscribe", "", body, nil)
}

// SendContactMessage delivers a contact-form message.
func (c *Client) SendContactMessage(ctx context.Context, name, email, message string) error {
	body := map[string]string{"name": name, "email": email, "message": message}
	return c.doJSON(ctx, "SendContactMessage", http.MethodPost, "/contact", "", body, nil)
}

// Package gateway file: gateway/participants.go
package gateway

import (
	"context"
	"fmt"
	"net/http"

	"kamaru-web/models"
)

// ----------------------- participant operations -----------------------

// ParticipantForm is the payload for participant registration and edits.
type ParticipantForm struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Category string `json:"category"`
}

// participantEnvelope is the success envelope for participant writes.
type participantEnvelope struct {
	Message     string             `json:"message"`
	Participant models.Participant `json:"participant"`
}

// ListParticipants returns all registered participants. Admin only.
func (c *Client) ListParticipants(ctx context.Context, token string) ([]models.Participant, error) {
	var participants []models.Participant
	err := c.doJSON(ctx, "ListParticipants", http.MethodGet, "/participants", token, nil, &participants)
	return participants, err
}

// RegisterParticipant registers the logged-in visitor as a participant.
func (c *Client) RegisterParticipant(ctx context.Context, token string, form ParticipantForm) (models.Participant, error) {
	var resp participantEnvelope
	err := c.doJSON(ctx, "RegisterParticipant", http.MethodPost, "/participants", token, form, &resp)
	return resp.Participant, err
}

// AdminRegisterParticipant registers a participant on someone's behalf.
func (c *Client) AdminRegisterParticipant(ctx context.Context, token string, form ParticipantForm) (models.Participant, error) {
	var resp participantEnvelope
	err := c.doJSON(ctx, "AdminRegisterParticipant", http.MethodPost, "/participants/admin", token, form, &resp)
	return resp.Participant, err
}

// UpdateParticipant applies an admin edit and returns the server's copy.
func (c *Client) UpdateParticipant(ctx context.Context, token string, id int, form ParticipantForm) (models.Participant, error) {
	var resp participantEnvelope
	err := c.doJSON(ctx, "UpdateParticipant", http.MethodPut, fmt.Sprintf("/participants/%d", id), token, form, &resp)
	return resp.Participant, err
}

// DeleteParticipant removes a participant. Admin only.
func (c *Client) DeleteParticipant(ctx context.Context, token string, id int) error {
	return c.doJSON(ctx, "DeleteParticipant", http.MethodDelete, fmt.Sprintf("/participants/%d", id), token, nil, nil)
}

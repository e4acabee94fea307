// Package gateway file: gateway/api.go
package gateway

import (
	"context"

	"kamaru-web/models"
)

// API is the full set of remote operations, one method per REST
// endpoint. Controllers depend on this interface so tests can swap in a
// mock; Client is the only production implementation.
type API interface {
	// auth
	Register(ctx context.Context, req RegisterRequest) error
	Login(ctx context.Context, email, password string) (models.LoginResult, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, resetToken, newPassword string) error

	// users (admin)
	ListUsers(ctx context.Context, token string) ([]models.User, error)
	GetUser(ctx context.Context, token string, id int) (models.User, error)
	UpdateUser(ctx context.Context, token string, id int, update UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, token string, id int) error

	// participants
	ListParticipants(ctx context.Context, token string) ([]models.Participant, error)
	RegisterParticipant(ctx context.Context, token string, form ParticipantForm) (models.Participant, error)
	AdminRegisterParticipant(ctx context.Context, token string, form ParticipantForm) (models.Participant, error)
	UpdateParticipant(ctx context.Context, token string, id int, form ParticipantForm) (models.Participant, error)
	DeleteParticipant(ctx context.Context, token string, id int) error

	// events
	ListEvents(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, id int) (models.Event, error)
	CreateEvent(ctx context.Context, token string, form EventForm, image *Upload) (models.Event, error)
	UpdateEvent(ctx context.Context, token string, id int, form EventForm, image *Upload) (models.Event, error)
	DeleteEvent(ctx context.Context, token string, id int) error

	// gallery
	ListGallery(ctx context.Context) ([]models.GalleryImage, error)
	UploadGalleryImage(ctx context.Context, token, title string, image Upload) (models.GalleryImage, error)
	DeleteGalleryImage(ctx context.Context, token string, id int) error

	// videos
	ListVideos(ctx context.Context) ([]models.Video, error)
	AddVideo(ctx context.Context, token, title, youtubeURL string) (models.Video, error)
	DeleteVideo(ctx context.Context, token string, id int) error

	// system images
	SystemImage(ctx context.Context, section string) (models.SystemImage, error)
	Banners(ctx context.Context) ([]models.SystemImage, error)
	UploadSystemImage(ctx context.Context, token, section string, image Upload) (string, error)
	UploadBanner(ctx context.Context, token string, image Upload) (models.SystemImage, error)
	DeleteSystemImage(ctx context.Context, token string, id int) error
	DeleteBanner(ctx context.Context, token string, id int) error

	// stats / newsletter / contact
	Stats(ctx context.Context) (models.Stats, error)
	SubscribeNewsletter(ctx context.Context, email string) error
	SendContactMessage(ctx context.Context, name, email, message string) error
}

var _ API = (*Client)(nil)

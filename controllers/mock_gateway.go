// file: controllers/mock_gateway.go
package controllers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"kamaru-web/gateway"
	"kamaru-web/models"
)

// MockGateway implements gateway.API for testing.
type MockGateway struct {
	mock.Mock
}

var _ gateway.API = (*MockGateway)(nil)

// ---------------- auth ----------------

func (m *MockGateway) Register(ctx context.Context, req gateway.RegisterRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockGateway) Login(ctx context.Context, email, password string) (models.LoginResult, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(models.LoginResult), args.Error(1)
}

func (m *MockGateway) ForgotPassword(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockGateway) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	args := m.Called(ctx, resetToken, newPassword)
	return args.Error(0)
}

// ---------------- users ----------------

func (m *MockGateway) ListUsers(ctx context.Context, token string) ([]models.User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockGateway) GetUser(ctx context.Context, token string, id int) (models.User, error) {
	args := m.Called(ctx, token, id)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockGateway) UpdateUser(ctx context.Context, token string, id int, update gateway.UserUpdate) (models.User, error) {
	args := m.Called(ctx, token, id, update)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockGateway) DeleteUser(ctx context.Context, token string, id int) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}

// ---------------- participants ----------------

func (m *MockGateway) ListParticipants(ctx context.Context, token string) ([]models.Participant, error) {
	args := m.Called(ctx, token)
	return args.Get(0).([]models.Participant), args.Error(1)
}

func (m *MockGateway) RegisterParticipant(ctx context.Context, token string, form gateway.ParticipantForm) (models.Participant, error) {
	args := m.Called(ctx, token, form)
	return args.Get(0).(models.Participant), args.Error(1)
}

func (m *MockGateway) AdminRegisterParticipant(ctx context.Context, token string, form gateway.ParticipantForm) (models.Participant, error) {
	args := m.Called(ctx, token, form)
	return args.Get(0).(models.Participant), args.Error(1)
}

func (m *MockGateway) UpdateParticipant(ctx context.Context, token string, id int, form gateway.ParticipantForm) (models.Participant, error) {
	args := m.Called(ctx, token, id, form)
	return args.Get(0).(models.Participant), args.Error(1)
}

func (m *MockGateway) DeleteParticipant(ctx context.Context, token string, id int) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}

// ---------------- events ----------------

func (m *MockGateway) ListEvents(ctx context.Context) ([]models.Event, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *MockGateway) GetEvent(ctx context.Context, id int) (models.Event, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Event), args.Error(1)
}

func (m *MockGateway) CreateEvent(ctx context.Context, token string, form gateway.EventForm, image *gateway.Upload) (models.Event, error) {
	args := m.Called(ctx, token, form, image)
	return args.Get(0).(models.Event), args.Error(1)
}

func (m *MockGateway) UpdateEvent(ctx context.Context, token string, id int, form gateway.EventForm, image *gateway.Upload) (models.Event, error) {
	args := m.Called(ctx, token, id, form, image)
	return args.Get(0).(models.Event), args.Error(1)
}

func (m *MockGateway) DeleteEvent(ctx context.Context, token string, id int) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}

// ---------------- gallery ----------------

func (m *MockGateway) ListGallery(ctx context.Context) ([]models.GalleryImage, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.GalleryImage), args.Error(1)
}

func (m *MockGateway) UploadGalleryImage(ctx context.Context, token, title string, image gateway.Upload) (models.GalleryImage, error) {
	args := m.Called(ctx, token, title, image)
	return args.Get(0).(models.GalleryImage), args.Error(1)
}

func (m *MockGateway) DeleteGalleryImage(ctx context.Context, token string, id int) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}

// ---------------- videos ----------------

func (m *MockGateway) ListVideos(ctx context.Context) ([]models.Video, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Video), args.Error(1)
}

func (m *MockGateway) AddVideo(ctx context.Context, token, title, youtubeURL string) (models.Video, error) {
	args := m.Called(ctx, token, title, youtubeURL)
	return args.Get(0).(models.Video), args.Error(1)
}

func (m *MockGateway) DeleteVideo(ctx context.Context, token string, id int) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}

// ---------------- system images ----------------

func (m *MockGateway) SystemImage(ctx context.Context, section string) (models.SystemImage, error) {
	args := m.Called(ctx, section)
	return args.Get(0).(models.SystemImage), args.Error(1)
}

func (m *MockGateway) Banners(ctx context.Context) ([]models.SystemImage, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.SystemImage), args.Error(1)
}

func (m *MockGateway) UploadSystemImage(ctx context.Context, token, section string, image gateway.Upload) (string, error) {
	args := m.Called(ctx, token, section, image)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) UploadBanner(ctx context.Context, token string, image gateway.Upload) (models.SystemImage, error) {
	args := m.Called(ctx, token, image)
	return args.Get(0).(models.SystemImage), args.Error(1)
}

func (m *MockGateway) DeleteSystemImage(ctx context.Context, token string, id int) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}

func (m *MockGateway) DeleteBanner(ctx context.Context, token string, id int) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}

// ---------------- stats / newsletter / contact ----------------

func (m *MockGateway) Stats(ctx context.Context) (models.Stats, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.Stats), args.Error(1)
}

func (m *MockGateway) SubscribeNewsletter(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockGateway) SendContactMessage(ctx context.Context, name, email, message string) error {
	args := m.Called(ctx, name, email, message)
	return args.Error(0)
}

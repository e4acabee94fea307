// Package gateway file: gateway/media.go
package gateway

import (
	"context"
	"fmt"
	"net/http"

	"kamaru-web/models"
)

// ----------------------- gallery operations -----------------------

// ListGallery returns all gallery images. Public.
func (c *Client) ListGallery(ctx context.Context) ([]models.GalleryImage, error) {
	var resp struct {
		Images []models.GalleryImage `json:"images"`
	}
	err := c.doJSON(ctx, "ListGallery", http.MethodGet, "/gallery", "", nil, &resp)
	return resp.Images, err
}

// UploadGalleryImage uploads a titled image. Admin only.
func (c *Client) UploadGalleryImage(ctx context.Context, token, title string, image Upload) (models.GalleryImage, error) {
	var resp struct {
		Message string              `json:"message"`
		Image   models.GalleryImage `json:"image"`
	}
	fields := map[string]string{"title": title}
	err := c.doMultipart(ctx, "UploadGalleryImage", http.MethodPost, "/gallery/upload", token, fields, "image", &image, &resp)
	return resp.Image, err
}

// DeleteGalleryImage removes a gallery image. Admin only.
func (c *Client) DeleteGalleryImage(ctx context.Context, token string, id int) error {
	return c.doJSON(ctx, "DeleteGalleryImage", http.MethodDelete, fmt.Sprintf("/gallery/%d", id), token, nil, nil)
}

// ----------------------- video operations -----------------------

// ListVideos returns all curated videos. Public.
func (c *Client) ListVideos(ctx context.Context) ([]models.Video, error) {
	var resp struct {
		Videos []models.Video `json:"videos"`
	}
	err := c.doJSON(ctx, "ListVideos", http.MethodGet, "/videos", "", nil, &resp)
	return resp.Videos, err
}

// AddVideo registers a new YouTube video. Admin only.
func (c *Client) AddVideo(ctx context.Context, token, title, youtubeURL string) (models.Video, error) {
	var resp struct {
		Message string       `json:"message"`
		Video   models.Video `json:"video"`
	}
	body := map[string]string{"title": title, "youtube_url": youtubeURL}
	err := c.doJSON(ctx, "AddVideo", http.MethodPost, "/videos/add", token, body, &resp)
	return resp.Video, err
}

// DeleteVideo removes a video. Admin only.
func (c *Client) DeleteVideo(ctx context.Context, token string, id int) error {
	return c.doJSON(ctx, "DeleteVideo", http.MethodDelete, fmt.Sprintf("/videos/delete/%d", id), token, nil, nil)
}

// ----------------------- system image operations -----------------------

// SystemImage fetches the single image bound to a section. Public.
func (c *Client) SystemImage(ctx context.Context, section string) (models.SystemImage, error) {
	var resp struct {
		Image models.SystemImage `json:"image"`
	}
	err := c.doJSON(ctx, "SystemImage", http.MethodGet, "/sys_images/"+section, "", nil, &resp)
	return resp.Image, err
}

// Banners fetches every banner image. Public.
func (c *Client) Banners(ctx context.Context) ([]models.SystemImage, error) {
	var resp struct {
		Banners []models.SystemImage `json:"banners"`
	}
	err := c.doJSON(ctx, "Banners", http.MethodGet, "/sys_images/banners", "", nil, &resp)
	return resp.Banners, err
}

// UploadSystemImage uploads (or replaces) the image for a section and
// returns the stored image URL. Admin only.
func (c *Client) UploadSystemImage(ctx context.Context, token, section string, image Upload) (string, error) {
	var resp struct {
		Message  string `json:"message"`
		ImageURL string `json:"image_url"`
	}
	fields := map[string]string{"section": section}
	err := c.doMultipart(ctx, "UploadSystemImage", http.MethodPost, "/sys_images/upload", token, fields, "image", &image, &resp)
	return resp.ImageURL, err
}

// UploadBanner adds one more banner image. Admin only.
func (c *Client) UploadBanner(ctx context.Context, token string, image Upload) (models.SystemImage, error) {
	var resp struct {
		Message string             `json:"message"`
		Banner  models.SystemImage `json:"banner"`
	}
	err := c.doMultipart(ctx, "UploadBanner", http.MethodPost, "/sys_images/banners/upload", token, nil, "image", &image, &resp)
	return resp.Banner, err
}

// DeleteSystemImage removes a section image by id. Admin only.
func (c *Client) DeleteSystemImage(ctx context.Context, token string, id int) error {
	return c.doJSON(ctx, "DeleteSystemImage", http.MethodDelete, fmt.Sprintf("/sys_images/%d", id), token, nil, nil)
}

// DeleteBanner removes a banner by id. Admin only.
func (c *Client) DeleteBanner(ctx context.Context, token string, id int) error {
	return c.doJSON(ctx, "DeleteBanner", http.MethodDelete, fmt.Sprintf("/sys_images/banners/%d", id), token, nil, nil)
}

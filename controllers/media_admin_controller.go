// Package controllers file: controllers/media_admin_controller.go
package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kamaru-web/gateway"
	"kamaru-web/logger"
	"kamaru-web/models"
	"kamaru-web/panel"
	"kamaru-web/session"
)

// ---------------- gallery admin ----------------

// GalleryAdminController manages the gallery image panel.
type GalleryAdminController struct {
	API      gateway.API
	Sessions session.Manager
	Panel    *panel.Panel[models.GalleryImage]
}

// NewGalleryAdminController initializes the gallery panel controller.
func NewGalleryAdminController(api gateway.API, sessions session.Manager) *GalleryAdminController {
	return &GalleryAdminController{
		API:      api,
		Sessions: sessions,
		Panel:    panel.New("gallery", func(g models.GalleryImage) int { return g.ID }),
	}
}

func (gc *GalleryAdminController) render(c *gin.Context, status int, extra gin.H) {
	data := pageData(c, gc.Sessions, "Manage Gallery")
	data["Items"] = gc.Panel.Items()
	for k, v := range extra {
		data[k] = v
	}
	c.HTML(status, "admin_gallery.html", data)
}

// List loads all gallery images.
func (gc *GalleryAdminController) List(c *gin.Context) {
	err := gc.Panel.Load(c.Request.Context(), func(ctx context.Context) ([]models.GalleryImage, error) {
		return gc.API.ListGallery(ctx)
	})
	if err != nil {
		logger.Warnf("Gallery.List: load failed: %v", err)
		gc.render(c, http.StatusOK, gin.H{"Error": gateway.Notice(err)})
		return
	}
	gc.render(c, http.StatusOK, nil)
}

// Upload adds a titled image. A failed upload never implies success:
// the form stays open with the entered title.
func (gc *GalleryAdminController) Upload(c *gin.Context) {
	token, _ := gc.Sessions.Token(c)
	title := c.PostForm("title")

	image, err := formUpload(c, "image")
	if err != nil || image == nil || title == "" {
		gc.render(c, http.StatusBadRequest, gin.H{
			"Error":    "A title and an image file are required.",
			"Form":     gin.H{"Title": title},
			"ShowForm": true,
		})
		return
	}

	_, err = gc.Panel.Create(c.Request.Context(), func(ctx context.Context) (models.GalleryImage, error) {
		return gc.API.UploadGalleryImage(ctx, token, title, *image)
	})
	if err != nil {
		logger.Warnf("Gallery.Upload: failed: %v", err)
		gc.render(c, http.StatusBadRequest, gin.H{
			"Error":    gateway.Notice(err),
			"Form":     gin.H{"Title": title},
			"ShowForm": true,
		})
		return
	}

	gc.Sessions.AddNotice(c, "Image uploaded successfully!")
	c.Redirect(http.StatusFound, "/admin/gallery")
}

// Delete removes an image after explicit confirmation.
func (gc *GalleryAdminController) Delete(c *gin.Context) {
	token, _ := gc.Sessions.Token(c)
	id, ok := pathID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/gallery")
		return
	}

	err := gc.Panel.Delete(c.Request.Context(), id, deleteConfirmed(c), func(ctx context.Context) error {
		return gc.API.DeleteGalleryImage(ctx, token, id)
	})
	switch {
	case errors.Is(err, panel.ErrConfirmationRequired):
		gc.Sessions.AddNotice(c, "Please confirm the deletion.")
	case err != nil:
		logger.Warnf("Gallery.Delete: failed for %d: %v", id, err)
		gc.Sessions.AddNotice(c, gateway.Notice(err))
	default:
		gc.Sessions.AddNotice(c, "Image deleted successfully!")
	}
	c.Redirect(http.StatusFound, "/admin/gallery")
}

// ---------------- videos admin ----------------

// VideosAdminController manages the curated video panel.
type VideosAdminController struct {
	API      gateway.API
	Sessions session.Manager
	Panel    *panel.Panel[models.Video]
}

// NewVideosAdminController initializes the videos panel controller.
func NewVideosAdminController(api gateway.API, sessions session.Manager) *VideosAdminController {
	return &VideosAdminController{
		API:      api,
		Sessions: sessions,
		Panel:    panel.New("videos", func(v models.Video) int { return v.ID }),
	}
}

func (vc *VideosAdminController) render(c *gin.Context, status int, extra gin.H) {
	data := pageData(c, vc.Sessions, "Manage Videos")
	data["Items"] = vc.Panel.Items()
	for k, v := range extra {
		data[k] = v
	}
	c.HTML(status, "admin_videos.html", data)
}

// List loads all videos.
func (vc *VideosAdminController) List(c *gin.Context) {
	err := vc.Panel.Load(c.Request.Context(), func(ctx context.Context) ([]models.Video, error) {
		return vc.API.ListVideos(ctx)
	})
	if err != nil {
		logger.Warnf("Videos.List: load failed: %v", err)
		vc.render(c, http.StatusOK, gin.H{"Error": gateway.Notice(err)})
		return
	}
	vc.render(c, http.StatusOK, nil)
}

type videoAdminForm struct {
	Title      string `form:"title" binding:"required"`
	YouTubeURL string `form:"youtube_url" binding:"required,url"`
}

// Add registers a new YouTube video.
func (vc *VideosAdminController) Add(c *gin.Context) {
	token, _ := vc.Sessions.Token(c)

	var form videoAdminForm
	if err := c.ShouldBind(&form); err != nil {
		vc.render(c, http.StatusBadRequest, gin.H{
			"Error":    "A title and a valid YouTube URL are required.",
			"Form":     form,
			"ShowForm": true,
		})
		return
	}

	_, err := vc.Panel.Create(c.Request.Context(), func(ctx context.Context) (models.Video, error) {
		return vc.API.AddVideo(ctx, token, form.Title, form.YouTubeURL)
	})
	if err != nil {
		logger.Warnf("Videos.Add: failed: %v", err)
		vc.render(c, http.StatusBadRequest, gin.H{
			"Error":    gateway.Notice(err),
			"Form":     form,
			"ShowForm": true,
		})
		return
	}

	vc.Sessions.AddNotice(c, "Video added successfully!")
	c.Redirect(http.StatusFound, "/admin/videos")
}

// Delete removes a video after explicit confirmation.
func (vc *VideosAdminController) Delete(c *gin.Context) {
	token, _ := vc.Sessions.Token(c)
	id, ok := pathID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/videos")
		return
	}

	err := vc.Panel.Delete(c.Request.Context(), id, deleteConfirmed(c), func(ctx context.Context) error {
		return vc.API.DeleteVideo(ctx, token, id)
	})
	switch {
	case errors.Is(err, panel.ErrConfirmationRequired):
		vc.Sessions.AddNotice(c, "Please confirm the deletion.")
	case err != nil:
		logger.Warnf("Videos.Delete: failed for %d: %v", id, err)
		vc.Sessions.AddNotice(c, gateway.Notice(err))
	default:
		vc.Sessions.AddNotice(c, "Video deleted successfully!")
	}
	c.Redirect(http.StatusFound, "/admin/videos")
}

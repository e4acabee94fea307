// Package controllers file: controllers/sysimages_admin_controller.go
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

// singleSections are the sections that hold at most one image each;
// uploading to one replaces the current image. Banners are the
// exception and accumulate, so they get the full panel treatment.
var singleSections = []string{models.SectionLogo, models.SectionContact, models.SectionAbout}

// ---------------- system images admin ----------------

// SysImagesAdminController manages site assets: the single-image
// sections (logo, contact, about) and the multi-image banner panel.
type SysImagesAdminController struct {
	API      gateway.API
	Sessions session.Manager
	Banners  *panel.Panel[models.SystemImage]
}

// NewSysImagesAdminController initializes the system images controller.
func NewSysImagesAdminController(api gateway.API, sessions session.Manager) *SysImagesAdminController {
	return &SysImagesAdminController{
		API:      api,
		Sessions: sessions,
		Banners:  panel.New("banners", func(s models.SystemImage) int { return s.ID }),
	}
}

func (sc *SysImagesAdminController) render(c *gin.Context, status int, extra gin.H) {
	data := pageData(c, sc.Sessions, "Manage System Images")
	data["Banners"] = sc.Banners.Items()
	data["Sections"] = singleSections
	for k, v := range extra {
		data[k] = v
	}
	c.HTML(status, "admin_sysimages.html", data)
}

// List shows the current image for each single section plus every
// banner. Missing section images are normal for a fresh install and
// are simply skipped.
func (sc *SysImagesAdminController) List(c *gin.Context) {
	ctx := c.Request.Context()

	images := map[string]models.SystemImage{}
	for _, section := range singleSections {
		img, err := sc.API.SystemImage(ctx, section)
		if err != nil {
			logger.Debugf("SysImages.List: no image for section %s: %v", section, err)
			continue
		}
		images[section] = img
	}

	err := sc.Banners.Load(ctx, func(ctx context.Context) ([]models.SystemImage, error) {
		return sc.API.Banners(ctx)
	})
	extra := gin.H{"SectionImages": images}
	if err != nil {
		logger.Warnf("SysImages.List: banners load failed: %v", err)
		extra["Error"] = gateway.Notice(err)
	}
	sc.render(c, http.StatusOK, extra)
}

// UploadSection uploads (or replaces) the image of a single section.
func (sc *SysImagesAdminController) UploadSection(c *gin.Context) {
	token, _ := sc.Sessions.Token(c)
	section := c.PostForm("section")

	valid := false
	for _, s := range singleSections {
		if s == section {
			valid = true
			break
		}
	}

	image, err := formUpload(c, "image")
	if err != nil || image == nil || !valid {
		sc.Sessions.AddNotice(c, "A valid section and an image file are required.")
		c.Redirect(http.StatusFound, "/admin/system-images")
		return
	}

	if _, err := sc.API.UploadSystemImage(c.Request.Context(), token, section, *image); err != nil {
		logger.Warnf("SysImages.UploadSection: failed for %s: %v", section, err)
		sc.Sessions.AddNotice(c, gateway.Notice(err))
		c.Redirect(http.StatusFound, "/admin/system-images")
		return
	}

	sc.Sessions.AddNotice(c, "Image uploaded successfully!")
	c.Redirect(http.StatusFound, "/admin/system-images")
}

// UploadBanner adds one more banner.
func (sc *SysImagesAdminController) UploadBanner(c *gin.Context) {
	token, _ := sc.Sessions.Token(c)

	image, err := formUpload(c, "image")
	if err != nil || image == nil {
		sc.Sessions.AddNotice(c, "An image file is required.")
		c.Redirect(http.StatusFound, "/admin/system-images")
		return
	}

	_, err = sc.Banners.Create(c.Request.Context(), func(ctx context.Context) (models.SystemImage, error) {
		return sc.API.UploadBanner(ctx, token, *image)
	})
	if err != nil {
		logger.Warnf("SysImages.UploadBanner: failed: %v", err)
		sc.Sessions.AddNotice(c, gateway.Notice(err))
		c.Redirect(http.StatusFound, "/admin/system-images")
		return
	}

	sc.Sessions.AddNotice(c, "Banner uploaded successfully!")
	c.Redirect(http.StatusFound, "/admin/system-images")
}

// DeleteSection removes a single-section image after confirmation.
func (sc *SysImagesAdminController) DeleteSection(c *gin.Context) {
	token, _ := sc.Sessions.Token(c)
	id, ok := pathID(c)
	if !ok || !deleteConfirmed(c) {
		sc.Sessions.AddNotice(c, "Please confirm the deletion.")
		c.Redirect(http.StatusFound, "/admin/system-images")
		return
	}

	if err := sc.API.DeleteSystemImage(c.Request.Context(), token, id); err != nil {
		logger.Warnf("SysImages.DeleteSection: failed for %d: %v", id, err)
		sc.Sessions.AddNotice(c, gateway.Notice(err))
		c.Redirect(http.StatusFound, "/admin/system-images")
		return
	}

	sc.Sessions.AddNotice(c, "Image deleted successfully!")
	c.Redirect(http.StatusFound, "/admin/system-images")
}

// DeleteBanner removes one banner after confirmation.
func (sc *SysImagesAdminController) DeleteBanner(c *gin.Context) {
	token, _ := sc.Sessions.Token(c)
	id, ok := pathID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/system-images")
		return
	}

	err := sc.Banners.Delete(c.Request.Context(), id, deleteConfirmed(c), func(ctx context.Context) error {
		return sc.API.DeleteBanner(ctx, token, id)
	})
	switch {
	case errors.Is(err, panel.ErrConfirmationRequired):
		sc.Sessions.AddNotice(c, "Please confirm the deletion.")
	case err != nil:
		logger.Warnf("SysImages.DeleteBanner: failed for %d: %v", id, err)
		sc.Sessions.AddNotice(c, gateway.Notice(err))
	default:
		sc.Sessions.AddNotice(c, "Banner deleted successfully!")
	}
	c.Redirect(http.StatusFound, "/admin/system-images")
}

// Package controllers file: controllers/page_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kamaru-web/gateway"
	"kamaru-web/logger"
	"kamaru-web/models"
	"kamaru-web/services"
	"kamaru-web/session"
)

// PageController serves the public site: home, gallery, videos, event
// pages and participant registration. A failed fetch on a public page
// degrades to an empty section with a notice rather than an error page.
type PageController struct {
	API      gateway.API
	Sessions session.Manager
	AppURL   string
}

// NewPageController initializes a new instance of PageController.
func NewPageController(api gateway.API, sessions session.Manager, appURL string) *PageController {
	return &PageController{API: api, Sessions: sessions, AppURL: appURL}
}

// Health responds to load balancer health checks.
func Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// ---------------- public pages ----------------

// Home renders the landing page: banners, upcoming events, the stats
// strip and the contact/newsletter forms. Each section is fetched
// independently; one failing fetch never blanks the whole page.
func (pc *PageController) Home(c *gin.Context) {
	ctx := c.Request.Context()
	data := pageData(c, pc.Sessions, "Kamaru Cultural Events")

	if banners, err := pc.API.Banners(ctx); err != nil {
		logger.Warnf("Home: banners unavailable: %v", err)
	} else {
		data["Banners"] = banners
	}

	if events, err := pc.API.ListEvents(ctx); err != nil {
		logger.Warnf("Home: events unavailable: %v", err)
	} else {
		data["Events"] = events
	}

	if stats, err := pc.API.Stats(ctx); err != nil {
		logger.Warnf("Home: stats unavailable: %v", err)
	} else {
		data["Stats"] = stats
	}

	if logo, err := pc.API.SystemImage(ctx, models.SectionLogo); err != nil {
		logger.Warnf("Home: logo unavailable: %v", err)
	} else {
		data["Logo"] = logo
	}

	if contact, err := pc.API.SystemImage(ctx, models.SectionContact); err != nil {
		logger.Debugf("Home: contact image unavailable: %v", err)
	} else {
		data["ContactImage"] = contact
	}

	c.HTML(http.StatusOK, "home.html", data)
}

// About renders the about page around the about section image managed
// in the admin panel. A missing image just leaves the page text-only.
func (pc *PageController) About(c *gin.Context) {
	data := pageData(c, pc.Sessions, "About Us")
	if img, err := pc.API.SystemImage(c.Request.Context(), models.SectionAbout); err != nil {
		logger.Debugf("About: no about image: %v", err)
	} else {
		data["AboutImage"] = img
	}
	c.HTML(http.StatusOK, "about.html", data)
}

// Gallery renders the public image gallery.
func (pc *PageController) Gallery(c *gin.Context) {
	data := pageData(c, pc.Sessions, "Gallery")
	images, err := pc.API.ListGallery(c.Request.Context())
	if err != nil {
		logger.Warnf("Gallery: fetch failed: %v", err)
		data["Error"] = gateway.Notice(err)
	} else {
		data["Images"] = images
	}
	c.HTML(http.StatusOK, "gallery.html", data)
}

// Videos renders the curated video list with the most-viewed video
// highlighted. The highlight is a pure pre-render pick; the list keeps
// server order.
func (pc *PageController) Videos(c *gin.Context) {
	data := pageData(c, pc.Sessions, "Videos")
	videos, err := pc.API.ListVideos(c.Request.Context())
	if err != nil {
		logger.Warnf("Videos: fetch failed: %v", err)
		data["Error"] = gateway.Notice(err)
	} else {
		data["Videos"] = videos
		if top, ok := models.MostViewed(videos); ok {
			data["MostViewed"] = top
		}
	}
	c.HTML(http.StatusOK, "videos.html", data)
}

// EventDetail renders one event's page.
func (pc *PageController) EventDetail(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	event, err := pc.API.GetEvent(c.Request.Context(), id)
	if err != nil {
		logger.Warnf("EventDetail: event %d unavailable: %v", id, err)
		pc.Sessions.AddNotice(c, "That event could not be found.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	data := pageData(c, pc.Sessions, event.Title)
	data["Event"] = event
	c.HTML(http.StatusOK, "event.html", data)
}

// EventQR serves a PNG QR code pointing at the event's public page.
func (pc *PageController) EventQR(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.String(http.StatusBadRequest, "invalid event id")
		return
	}

	png, err := services.EventShareQR(pc.AppURL, id, 300, nil)
	if err != nil {
		logger.Errorf("EventQR: generation failed: %v", err)
		c.String(http.StatusInternalServerError, "QR generation failed")
		return
	}

	c.Header("Content-Type", "image/png")
	c.Header("Content-Disposition", "inline; filename=\"event.png\"")
	if _, err := c.Writer.Write(png); err != nil {
		logger.Errorf("EventQR: error writing bytes: %v", err)
	}
}

// Terms renders the terms and conditions page.
func (pc *PageController) Terms(c *gin.Context) {
	c.HTML(http.StatusOK, "terms.html", pageData(c, pc.Sessions, "Terms and Conditions"))
}

// ---------------- participant registration ----------------

// ShowParticipate renders the self-registration form with the fixed
// category list.
func (pc *PageController) ShowParticipate(c *gin.Context) {
	data := pageData(c, pc.Sessions, "Participate")
	data["Categories"] = models.Categories
	c.HTML(http.StatusOK, "participate.html", data)
}

type participateForm struct {
	Name     string `form:"name" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Phone    string `form:"phone" binding:"required"`
	Category string `form:"category" binding:"required"`
}

// PerformParticipate registers the visitor as a participant. The
// category is checked against the fixed set before any network call.
func (pc *PageController) PerformParticipate(c *gin.Context) {
	token, loggedIn := pc.Sessions.Token(c)
	if !loggedIn {
		pc.Sessions.AddNotice(c, "Please log in to register as a participant.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var form participateForm
	if err := c.ShouldBind(&form); err != nil || !models.ValidCategory(form.Category) {
		data := pageData(c, pc.Sessions, "Participate")
		data["Categories"] = models.Categories
		data["Error"] = "All fields are required and the category must be one of the listed ones."
		data["Form"] = form
		c.HTML(http.StatusBadRequest, "participate.html", data)
		return
	}

	_, err := pc.API.RegisterParticipant(c.Request.Context(), token, gateway.ParticipantForm{
		Name:     form.Name,
		Email:    form.Email,
		Phone:    form.Phone,
		Category: form.Category,
	})
	if err != nil {
		logger.Warnf("PerformParticipate: registration failed: %v", err)
		if gateway.IsAuth(err) {
			pc.Sessions.AddNotice(c, "Your session has expired. Please log in again.")
			c.Redirect(http.StatusFound, "/login")
			return
		}
		data := pageData(c, pc.Sessions, "Participate")
		data["Categories"] = models.Categories
		data["Error"] = gateway.Notice(err)
		data["Form"] = form
		c.HTML(http.StatusBadRequest, "participate.html", data)
		return
	}

	pc.Sessions.AddNotice(c, "Registration successful!")
	c.Redirect(http.StatusFound, "/")
}

// ---------------- contact and newsletter ----------------

type contactForm struct {
	Name    string `form:"name" binding:"required"`
	Email   string `form:"email" binding:"required,email"`
	Message string `form:"message" binding:"required"`
}

// Contact delivers a contact-form message through the API.
func (pc *PageController) Contact(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		pc.Sessions.AddNotice(c, "All contact fields are required.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	if err := pc.API.SendContactMessage(c.Request.Context(), form.Name, form.Email, form.Message); err != nil {
		logger.Warnf("Contact: send failed: %v", err)
		pc.Sessions.AddNotice(c, gateway.Notice(err))
		c.Redirect(http.StatusFound, "/")
		return
	}

	pc.Sessions.AddNotice(c, "Message sent. We'll get back to you soon.")
	c.Redirect(http.StatusFound, "/")
}

// Subscribe adds an email to the newsletter.
func (pc *PageController) Subscribe(c *gin.Context) {
	email := c.PostForm("email")
	if email == "" {
		pc.Sessions.AddNotice(c, "Please enter an email address.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	if err := pc.API.SubscribeNewsletter(c.Request.Context(), email); err != nil {
		logger.Warnf("Subscribe: failed for %s: %v", email, err)
		pc.Sessions.AddNotice(c, gateway.Notice(err))
		c.Redirect(http.StatusFound, "/")
		return
	}

	pc.Sessions.AddNotice(c, "Subscribed successfully!")
	c.Redirect(http.StatusFound, "/")
}

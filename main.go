// main.go
package main

import (
	"log"
	"net/http"
	"path/filepath"
	"runtime"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"kamaru-web/config"
	"kamaru-web/controllers"
	"kamaru-web/gateway"
	"kamaru-web/logger"
	"kamaru-web/middleware"
	"kamaru-web/services"
	kamarusession "kamaru-web/session"
)

func main() {
	cfg := config.Load()
	logger.SetLogLevel(cfg.Environment)
	defer logger.Sync()

	services.InitMetrics(cfg.MetricsEnabled)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize the router
	router := gin.Default()

	// Initialize session store
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.Environment == "production",
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions("kamaru_session", store))

	// Determine the absolute path to the templates directory
	_, b, _, _ := runtime.Caller(0)
	basepath := filepath.Dir(b)
	templatesDir := filepath.Join(basepath, "templates", "*.html")

	// Load HTML templates
	router.LoadHTMLGlob(templatesDir)

	// Serve static files under /static
	router.Static("/static", "./static")

	// The API gateway is the app's single line to the backend; its
	// observer feeds per-call latency into CloudWatch when enabled.
	api := gateway.New(cfg.APIBaseURL, gateway.WithObserver(services.PublishGatewayLatency))
	sess := kamarusession.NewManager()

	pages := controllers.NewPageController(api, sess, cfg.AppURL)
	auth := controllers.NewAuthController(api, sess)
	admin := controllers.NewAdminController(api, sess)
	events := controllers.NewEventsAdminController(api, sess)
	participants := controllers.NewParticipantsAdminController(api, sess)
	users := controllers.NewUsersAdminController(api, sess)
	gallery := controllers.NewGalleryAdminController(api, sess)
	videos := controllers.NewVideosAdminController(api, sess)
	sysImages := controllers.NewSysImagesAdminController(api, sess)

	// Health checks
	router.GET("/health", controllers.Health)

	// Public routes
	router.GET("/", pages.Home)
	router.GET("/gallery", pages.Gallery)
	router.GET("/videos", pages.Videos)
	router.GET("/events/:id", pages.EventDetail)
	router.GET("/events/:id/qr", pages.EventQR)
	router.GET("/about", pages.About)
	router.GET("/terms", pages.Terms)
	router.GET("/participate", pages.ShowParticipate)
	router.POST("/contact", pages.Contact)
	router.POST("/newsletter/subscribe", pages.Subscribe)

	router.GET("/login", auth.ShowLogin)
	router.POST("/login", auth.PerformLogin)
	router.GET("/logout", auth.Logout)
	router.GET("/register", auth.ShowRegister)
	router.POST("/register", auth.PerformRegister)
	router.GET("/forgot-password", auth.ShowForgotPassword)
	router.POST("/forgot-password", auth.PerformForgotPassword)
	router.GET("/reset-password", auth.ShowResetPassword)
	router.POST("/reset-password", auth.PerformResetPassword)

	// Participant self-registration requires a logged-in visitor
	router.POST("/participate", middleware.AuthRequired(sess), pages.PerformParticipate)

	// Admin routes
	adminGroup := router.Group("/admin", middleware.AuthRequired(sess), middleware.AdminRequired(sess))
	{
		adminGroup.GET("", admin.Dashboard)

		adminGroup.GET("/events", events.List)
		adminGroup.POST("/events", events.Create)
		adminGroup.POST("/events/:id", events.Update)
		adminGroup.POST("/events/:id/delete", events.Delete)

		adminGroup.GET("/participants", participants.List)
		adminGroup.POST("/participants", participants.Create)
		adminGroup.POST("/participants/:id", participants.Update)
		adminGroup.POST("/participants/:id/delete", participants.Delete)

		adminGroup.GET("/users", users.List)
		adminGroup.POST("/users/:id", users.Update)
		adminGroup.POST("/users/:id/delete", users.Delete)

		adminGroup.GET("/gallery", gallery.List)
		adminGroup.POST("/gallery", gallery.Upload)
		adminGroup.POST("/gallery/:id/delete", gallery.Delete)

		adminGroup.GET("/videos", videos.List)
		adminGroup.POST("/videos", videos.Add)
		adminGroup.POST("/videos/:id/delete", videos.Delete)

		adminGroup.GET("/system-images", sysImages.List)
		adminGroup.POST("/system-images", sysImages.UploadSection)
		adminGroup.POST("/system-images/banners", sysImages.UploadBanner)
		adminGroup.POST("/system-images/:id/delete", sysImages.DeleteSection)
		adminGroup.POST("/system-images/banners/:id/delete", sysImages.DeleteBanner)
	}

	logger.Infof("Starting server on port %s (API at %s)", cfg.Port, cfg.APIBaseURL)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"lp-maker/lpmaker/broker"
	"lp-maker/lpmaker/config"
	"lp-maker/lpmaker/database"
	"lp-maker/lpmaker/middleware"
	"lp-maker/lpmaker/routes"
	"lp-maker/lpmaker/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	db, err := database.Setup(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// The broker is best-effort: pages are served and events stored
	// even when NATS is down, only live preview refresh is lost.
	natsAvailable := true
	if err := broker.InitProducer(cfg.NATSUrl); err != nil {
		log.Printf("Warning: Failed to initialize NATS producer: %v", err)
		log.Println("The application will continue, but live preview updates will be disabled")
		natsAvailable = false
	} else {
		defer broker.CloseProducer()
	}

	authService := services.NewAuthService(cfg.JWTSecret, cfg.JWTExpirationHours)
	services.AuthServiceInstance = authService

	quizService := services.NewQuizService(cfg.QuizAPIBase)
	services.QuizServiceInstance = quizService

	uploadService := services.NewUploadService(cfg.UploadBucketURL, cfg.UploadPublicBase)
	services.UploadServiceInstance = uploadService

	previewService := services.NewPreviewService(db)
	services.PreviewServiceInstance = previewService
	if natsAvailable {
		previewService.Start(cfg.NATSUrl)
		defer previewService.Stop()
	} else {
		log.Println("Preview hub is disabled due to NATS unavailability")
	}

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	// Public routes: rendered pages, exports, telemetry ingest.
	routes.RegisterRenderRoutes(router, db, cfg, services.PageServiceInstance)
	routes.RegisterPreviewRoutes(router, services.PreviewServiceInstance, authService)

	public := router.Group("/api/v1")
	routes.RegisterAuthRoutes(public, db, authService)
	routes.RegisterPublicPageRoutes(public, db, services.PageServiceInstance)
	routes.RegisterEventRoutes(public, db, services.TelemetryServiceInstance, services.LeadServiceInstance)

	// Authenticated routes: the editor's surface.
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(authService))
	routes.RegisterPageRoutes(private, db, services.PageServiceInstance)
	routes.RegisterAnalyticsRoutes(private, db, services.PageServiceInstance, services.AnalyticsServiceInstance, services.LeadServiceInstance)
	routes.RegisterUploadRoutes(private, uploadService)

	admin := private.Group("/admin")
	admin.Use(middleware.AdminMiddleware())
	routes.RegisterAdminRoutes(admin, db, services.PageServiceInstance)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down server...")
		previewService.Stop()
		broker.CloseProducer()
		os.Exit(0)
	}()

	log.Printf("API server is running on port %s", cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

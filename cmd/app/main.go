package main

import (
	"fmt"
	"log"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"skillpath-backend/internal/ai"
	"skillpath-backend/internal/config"
	"skillpath-backend/internal/controller"
	"skillpath-backend/internal/db"
	"skillpath-backend/internal/model"
	"skillpath-backend/internal/repository"
	"skillpath-backend/internal/service"
	"skillpath-backend/internal/video"
	"skillpath-backend/pkg/middleware"
	"skillpath-backend/utilities"
)

func main() {
	printStartUpBanner()

	// Load XML configuration from file.
	cfg, err := config.LoadConfig("config.xml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	utilities.SetupLogging(cfg.Context.LogDir)

	// Initialize DB using the loaded config.
	db.InitDBFromConfig(cfg)
	// Run migrations.
	if cfg.DB.Initialize {
		err = db.GetDB().AutoMigrate(
			&model.User{},
			&model.UserCourse{},
			&model.Module{},
			&model.Lesson{},
			&model.Badge{},
			&model.LearningRoadmap{},
			&model.RoadmapCourse{},
			&model.Assessment{},
			&model.AssessmentQuestion{},
		)
		if err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Create repositories.
	userRepo := repository.NewUserRepository()
	courseRepo := repository.NewCourseRepository()
	badgeRepo := repository.NewBadgeRepository()
	roadmapRepo := repository.NewRoadmapRepository()
	assessmentRepo := repository.NewAssessmentRepository()

	// External collaborators.
	resolver := video.NewDefaultResolver(
		cfg.Providers.PipedURL,
		cfg.Providers.InvidiousURL,
		time.Duration(cfg.Providers.TimeoutSeconds)*time.Second,
	)
	aiClient := ai.NewClient(cfg.AI.BaseURL, cfg.AI.APIKey)

	// Create services.
	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	achievementService := service.NewAchievementService(badgeRepo)
	lessonService := service.NewLessonService(resolver)
	courseService := service.NewCourseService(courseRepo, lessonService)
	progressService := service.NewProgressService(courseRepo, achievementService)
	assessmentService := service.NewAssessmentService(assessmentRepo, courseRepo, aiClient, achievementService)
	roadmapService := service.NewRoadmapService(roadmapRepo, achievementService)

	// Certificates render in the background when a course completes.
	service.InitCertificateEventListeners(service.NewCertificateService(cfg.Context.WorkDir))

	// Initialize Gin router.
	r := gin.Default()

	// CORS configuration.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if cfg.RequestDump {
		r.Use(middleware.RequestDumpMiddleware())
	}
	r.Use(utilities.AuthMiddleware())

	controller.RegisterRoutes(
		r, cfg,
		authService, userService,
		courseService, progressService, achievementService,
		assessmentService, roadmapService,
		resolver,
	)

	// Start server on the host and port specified in the XML config.
	addr := fmt.Sprintf("%s:%d", cfg.Context.Host, cfg.Context.Port)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func printStartUpBanner() {
	myFigure := figure.NewFigure("SKILLPATH", "", true)
	myFigure.Print()

	fmt.Println("======================================================")
	fmt.Printf("SKILLPATH API (v%s)\n\n", "1.0.0")
}

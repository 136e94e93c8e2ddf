package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillpath-backend/internal/config"
	"skillpath-backend/internal/service"
	"skillpath-backend/internal/video"
	"skillpath-backend/pkg/middleware"
)

func RegisterRoutes(
	r *gin.Engine,
	cfg *config.APIConfig,
	authService service.AuthService,
	userService service.UserService,
	courseService service.CourseService,
	progressService service.ProgressService,
	achievementService service.AchievementService,
	assessmentService service.AssessmentService,
	roadmapService service.RoadmapService,
	resolver video.Searcher,
) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes.
	authCtrl := NewAuthController(authService)
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", authCtrl.Register)
		authRoutes.POST("/login", authCtrl.Login)
		authRoutes.POST("/refresh", authCtrl.Refresh)
	}

	// User routes.
	userCtrl := NewUserController(userService)
	r.GET("/user/me", userCtrl.GetCurrentUser)

	// Video search proxy, rate limited toward the external providers.
	videoCtrl := NewVideoController(resolver)
	videoRoutes := r.Group("/api/videos")
	videoRoutes.Use(middleware.RateLimitMiddleware(cfg.Providers.SearchRateLimit, cfg.Providers.SearchRateBurst))
	{
		videoRoutes.GET("/search", videoCtrl.Search)
	}

	// Course and progress routes.
	courseCtrl := NewCourseController(courseService, progressService)
	assessmentCtrl := NewAssessmentController(assessmentService)
	courseRoutes := r.Group("/courses")
	{
		courseRoutes.GET("", courseCtrl.GetCourses)
		courseRoutes.GET("/:id", courseCtrl.GetCourse)
		courseRoutes.POST("/enroll", courseCtrl.Enroll)
		courseRoutes.POST("/from-roadmap", courseCtrl.CreateFromRoadmap)
		courseRoutes.PATCH("/:id/modules/:moduleId/lessons/:lessonId/completion", courseCtrl.UpdateLessonCompletion)
		courseRoutes.PATCH("/:id/modules/:moduleId/lessons/:lessonId/notes", courseCtrl.UpdateLessonNotes)
		courseRoutes.POST("/:id/complete", courseCtrl.MarkCompleted)
		courseRoutes.POST("/:id/assessment", assessmentCtrl.StartAssessment)
		courseRoutes.POST("/:id/assessment/submit", assessmentCtrl.SubmitAssessment)
	}

	// Badge routes.
	achievementCtrl := NewAchievementController(achievementService)
	r.GET("/badges", achievementCtrl.GetBadges)

	// Roadmap routes.
	roadmapCtrl := NewRoadmapController(roadmapService)
	roadmapRoutes := r.Group("/roadmaps")
	{
		roadmapRoutes.GET("", roadmapCtrl.GetRoadmaps)
		roadmapRoutes.POST("", roadmapCtrl.CreateRoadmap)
		roadmapRoutes.PATCH("/:id/courses/:courseId/completion", roadmapCtrl.UpdateCourseCompletion)
		roadmapRoutes.DELETE("/:id", roadmapCtrl.DeleteRoadmap)
	}

	// Static routes.
	staticCtrl := NewStaticController(cfg.Context.WorkDir)
	r.GET("/download/certificates/:filename", staticCtrl.DownloadCertificate)
}

package stubapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/skymentor/skymentor-client/config"
	"github.com/skymentor/skymentor-client/internal/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// NewRouter builds the stub API router serving the full backend wire
// contract from the given store
func NewRouter(cfg *config.Config, store *Store) *gin.Engine {
	gin.SetMode(cfg.Stub.GinMode)
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.Observability())

	allowedOrigins := cfg.Stub.AllowedOrigins
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:  allowedOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "traceparent", "tracestate"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	rateLimiter := middleware.NewRateLimiter(100, 200) // 100 req/sec, burst of 200

	mentorHandler := NewMentorHandler(store)
	menteeHandler := NewMenteeHandler(store)
	adminHandler := NewAdminHandler(store)
	meetingHandler := NewMeetingHandler(store)
	healthHandler := NewHealthHandler()

	api := router.Group("/api")
	api.GET("/healthcheck", healthHandler.Healthcheck)
	api.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1", rateLimiter.Middleware())

	mentor := v1.Group("/mentor")
	mentor.POST("/createMentor", mentorHandler.Create)
	mentor.POST("/loginMentor", mentorHandler.Login)
	mentor.GET("/getAllMentors", mentorHandler.List)
	mentor.GET("/getMentorById/:id", mentorHandler.GetByID)
	mentor.PUT("/updateMentorById/:id", mentorHandler.Update)
	mentor.DELETE("/deleteMentorById/:id", mentorHandler.Delete)

	mentee := v1.Group("/mentee")
	mentee.POST("/createMentee", menteeHandler.Create)
	mentee.POST("/loginMentee", menteeHandler.Login)
	mentee.GET("/getAllMentees", menteeHandler.List)
	mentee.GET("/getMenteeById/:id", menteeHandler.GetByID)
	mentee.PUT("/updateMenteeById/:id", menteeHandler.Update)
	mentee.DELETE("/deleteMenteeById/:id", menteeHandler.Delete)

	admin := v1.Group("/admin")
	admin.POST("/createAdmin", adminHandler.Create)
	admin.POST("/login", adminHandler.Login)
	admin.GET("/getAllAdmins", adminHandler.List)
	admin.GET("/getAdminById/:id", adminHandler.GetByID)
	admin.PUT("/updateAdminById/:id", adminHandler.Update)
	admin.DELETE("/deleteAdminById/:id", adminHandler.Delete)

	meeting := v1.Group("/meeting")
	meeting.POST("/createMeeting", meetingHandler.Create)
	meeting.GET("/getMeetingById/:id", meetingHandler.GetByID)
	meeting.GET("/getFilteredMeetings", meetingHandler.Filtered)

	return router
}

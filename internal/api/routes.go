package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"pulsetrack-backend-go/internal/core"
	"pulsetrack-backend-go/internal/db"
	"pulsetrack-backend-go/internal/middleware"
)

// SetupRoutes configures all the application routes with their handlers and
// middleware. Global middleware (Logging, Recovery, CORS) are applied to the
// router before this function is called, in main.go.
func SetupRoutes(
	router *gin.Engine,
	logger *zap.Logger,
	profileService core.ProfileService,
	activityService core.ActivityService,
	sessionService core.SessionService,
) {
	// The Firebase Auth client must be available after db.InitFirestore().
	firebaseAuthClient := db.GetFirebaseAuthClient()
	if firebaseAuthClient == nil {
		logger.Fatal("CRITICAL_SETUP_ERROR: Firebase Auth client is not initialized. AuthMiddleware cannot be created, and routes will not be set up.")
		panic("Firebase Auth client is nil during route setup. Ensure db.InitFirestore() was called and succeeded.")
	}
	authMW := middleware.NewAuthMiddleware(firebaseAuthClient)

	profileHandler := NewProfileHandler(profileService)
	activityHandler := NewActivityHandler(activityService)
	sessionHandler := NewSessionHandler(sessionService, profileService)
	streamHandler := NewStreamHandler(activityService, nil)

	apiV1 := router.Group("/api/v1")
	{
		// Session state for the signed-in caller. An unauthenticated request
		// never reaches the handler; 401 is the unauthenticated state.
		apiV1.GET("/session", authMW.VerifyToken(), sessionHandler.GetSession)

		profileGroup := apiV1.Group("/profile", authMW.VerifyToken())
		{
			profileGroup.GET("", profileHandler.GetProfile)
			profileGroup.POST("", profileHandler.SetupProfile)
		}

		// Activities are append-only; there is deliberately no PUT or DELETE.
		apiV1.POST("/activities", authMW.VerifyToken(), activityHandler.LogActivity)

		dashboardGroup := apiV1.Group("/dashboard", authMW.VerifyToken())
		{
			dashboardGroup.GET("", activityHandler.GetDashboard)
			dashboardGroup.GET("/stream", streamHandler.StreamDashboard)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "message": "PulseTrack backend is healthy."})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	logger.Info("API routes configured successfully under /api/v1, /health and /metrics.")
}

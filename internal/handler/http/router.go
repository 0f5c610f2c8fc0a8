package http

import (
	"net/http"
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/voyago/voyago/internal/domain/entity"
	"github.com/voyago/voyago/internal/handler/http/middleware"
	usecasecontract "github.com/voyago/voyago/internal/usecase/contract"
)

type Router struct {
	userHandler   *UserHandler
	authHandler   *AuthHandler
	destHandler   *DestinationHandler
	tripHandler   *TripHandler
	memoryHandler *MemoryHandler
	recHandler    *RecommendationHandler
	locHandler    *LocationHandler
	userUsecase   usecasecontract.IUserUseCase
	config        usecasecontract.IConfigProvider
}

func NewRouter(
	userUsecase usecasecontract.IUserUseCase,
	destUsecase usecasecontract.IDestinationUseCase,
	tripUsecase usecasecontract.ITripUseCase,
	memoryUsecase usecasecontract.IMemoryUseCase,
	recUsecase usecasecontract.IRecommendationUseCase,
	config usecasecontract.IConfigProvider,
) *Router {
	return &Router{
		userHandler:   NewUserHandler(userUsecase, config),
		authHandler:   NewAuthHandler(userUsecase, config),
		destHandler:   NewDestinationHandler(destUsecase),
		tripHandler:   NewTripHandler(tripUsecase),
		memoryHandler: NewMemoryHandler(memoryUsecase),
		recHandler:    NewRecommendationHandler(recUsecase),
		locHandler:    NewLocationHandler(config),
		userUsecase:   userUsecase,
		config:        config,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     r.config.GetCORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))
	router.Use(middleware.Metrics())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")

	// Public routes (no authentication required)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.userHandler.Register)
		auth.POST("/login", r.userHandler.Login)
		auth.POST("/refresh", r.userHandler.Refresh)
		auth.POST("/logout", r.userHandler.Logout)

		// Google OAuth endpoints
		auth.GET("/google/login", r.authHandler.HandleGoogleLogin)
		auth.GET("/google/callback", r.authHandler.HandleGoogleCallback)
	}

	// Protected routes (authentication required)
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleWare(r.userUsecase))
	{
		// Current user routes
		protected.GET("/users/me", r.userHandler.GetCurrentUser)
		protected.PUT("/users/me", r.userHandler.UpdateProfile)
		protected.PUT("/users/me/favorites", r.userHandler.UpdateFavorites)
		protected.DELETE("/users/me", r.userHandler.DeleteAccount)

		// Destination catalog routes
		protected.GET("/destinations", r.destHandler.ListAll)
		protected.GET("/destinations/:type", r.destHandler.ListByType)
		protected.GET("/destinations/:type/search", r.destHandler.Search)
		protected.GET("/destinations/:type/best-time", r.destHandler.BestTime)
		protected.GET("/destinations/:type/:id", r.destHandler.GetByID)

		// Trip routes
		protected.GET("/trips/:kind", r.tripHandler.List)
		protected.POST("/trips/:kind/search", r.tripHandler.Search)
		protected.GET("/trips/:kind/:id", r.tripHandler.GetByID)

		// Memory routes
		protected.POST("/memories", r.memoryHandler.Create)
		protected.GET("/memories", r.memoryHandler.List)
		protected.GET("/memories/:id", r.memoryHandler.GetByID)
		protected.PUT("/memories/:id", r.memoryHandler.Update)
		protected.DELETE("/memories/:id", r.memoryHandler.Delete)
		protected.PATCH("/memories/:id/like", r.memoryHandler.ToggleLike)
		protected.PATCH("/memories/:id/save", r.memoryHandler.ToggleSave)

		// Recommendations
		protected.GET("/recommendations", r.recHandler.Recommend)

		// Location info proxy
		protected.GET("/location-info", r.locHandler.Lookup)
	}

	// Catalog mutations require the dbAdmin role
	admin := v1.Group("/")
	admin.Use(middleware.AuthMiddleWare(r.userUsecase), middleware.RequireRole(entity.UserRoleDBAdmin))
	{
		admin.POST("/destinations", r.destHandler.Create)
		admin.PUT("/destinations/:id", r.destHandler.Update)
		admin.DELETE("/destinations/:id", r.destHandler.Delete)

		admin.POST("/trips/:kind", r.tripHandler.Create)
		admin.PUT("/trips/:kind/:id", r.tripHandler.Update)
		admin.DELETE("/trips/:kind/:id", r.tripHandler.Delete)
	}
}

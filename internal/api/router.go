package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/recipehub/recipe-platform/internal/api/handler"
	"github.com/recipehub/recipe-platform/internal/api/middleware"
	"github.com/recipehub/recipe-platform/internal/core/domain"
	"github.com/recipehub/recipe-platform/internal/core/ports"
	"github.com/recipehub/recipe-platform/internal/core/service"
)

// Repositories bundles the five in-memory stores the API is built on.
type Repositories struct {
	Users     ports.UserRepository
	Recipes   ports.RecipeRepository
	Reviews   ports.ReviewRepository
	Favorites ports.FavoriteRepository
	Activity  ports.ActivityRepository
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(repos Repositories, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("recipes"))

	// --- Dependencies ---
	authService := service.NewAuthService(repos.Users, jwtSecret, tokenTTL, log)
	recipeService := service.NewRecipeService(repos.Recipes, repos.Activity, log)
	reviewService := service.NewReviewService(repos.Reviews, repos.Recipes, repos.Activity, log)
	favoriteService := service.NewFavoriteService(repos.Favorites, repos.Recipes, repos.Activity, log)
	activityService := service.NewActivityService(repos.Activity, log)
	dashboardService := service.NewDashboardService(repos.Recipes, repos.Reviews, repos.Favorites, log)

	authHandler := handler.NewAuthHandler(authService)
	recipeHandler := handler.NewRecipeHandler(recipeService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService)
	activityHandler := handler.NewActivityHandler(activityService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(repos.Users, repos.Recipes)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Authenticated API ---
	v1 := e.Group("/v1", middleware.Auth(jwtSecret))

	v1.GET("/recipes", recipeHandler.List)
	v1.GET("/recipes/:id", recipeHandler.Get)
	v1.POST("/recipes", recipeHandler.Create,
		middleware.RBAC(domain.RoleAdmin, domain.RoleContributor))
	v1.PUT("/recipes/:id", recipeHandler.Update,
		middleware.RBAC(domain.RoleAdmin, domain.RoleContributor))
	v1.DELETE("/recipes/:id", recipeHandler.Delete,
		middleware.RBAC(domain.RoleAdmin, domain.RoleContributor))
	v1.PATCH("/recipes/:id/approval", recipeHandler.SetApproval,
		middleware.RBAC(domain.RoleAdmin))

	v1.GET("/recipes/:id/reviews", reviewHandler.List)
	v1.POST("/recipes/:id/reviews", reviewHandler.Add)
	v1.GET("/recipes/:id/rating", reviewHandler.Rating)

	v1.PUT("/recipes/:id/favorite", favoriteHandler.Add)
	v1.DELETE("/recipes/:id/favorite", favoriteHandler.Remove)
	v1.GET("/favorites", favoriteHandler.List)

	v1.GET("/activity", activityHandler.Recent)
	v1.GET("/dashboard", dashboardHandler.Stats)

	return e
}

package main

import (
	"log"

	"github.com/ephanta/eva-app/internal/auth"
	"github.com/ephanta/eva-app/internal/config"
	"github.com/ephanta/eva-app/internal/database"
	apierrors "github.com/ephanta/eva-app/internal/errors"
	"github.com/ephanta/eva-app/internal/handlers"
	"github.com/ephanta/eva-app/internal/repository"
	"github.com/ephanta/eva-app/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db := database.GetDB()

	// Repositories
	householdRepo := repository.NewHouseholdRepository(db)
	plannerRepo := repository.NewPlannerRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	shoppingRepo := repository.NewShoppingRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	// Services
	householdService := services.NewHouseholdService(householdRepo)
	plannerService := services.NewPlannerService(plannerRepo, householdRepo)
	recipeService := services.NewRecipeService(recipeRepo)
	ratingService := services.NewRatingService(ratingRepo)
	shoppingService := services.NewShoppingService(shoppingRepo, householdRepo)
	profileService := services.NewProfileService(profileRepo)

	// Identity service client for bearer-token verification
	verifier := auth.NewIdentityClient(cfg.IdentityURL, cfg.IdentityAPIKey)

	// Initialize Gin router
	r := gin.Default()
	r.HandleMethodNotAllowed = true
	r.NoMethod(apierrors.MethodNotAllowed)

	// Permissive CORS incl. OPTIONS preflight
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Authorization", "Content-Type"},
	}))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "eva-app API is running",
		})
	})

	handlers.RegisterRoutes(r, handlers.RouterConfig{
		Verifier:   verifier,
		Households: householdRepo,
		Items:      shoppingRepo,
		Household:  handlers.NewHouseholdHandler(householdService),
		Planner:    handlers.NewPlannerHandler(plannerService),
		Shopping:   handlers.NewShoppingHandler(shoppingService),
		Recipe:     handlers.NewRecipeHandler(recipeService),
		Rating:     handlers.NewRatingHandler(ratingService),
		Profile:    handlers.NewProfileHandler(profileService),
	})

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

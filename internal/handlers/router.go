package handlers

import (
	"github.com/ephanta/eva-app/internal/auth"
	"github.com/ephanta/eva-app/internal/middleware"
	"github.com/ephanta/eva-app/internal/repository"
	"github.com/gin-gonic/gin"
)

// RouterConfig bundles the collaborators the route table needs: the
// token verifier for the auth gate, the repositories backing the
// access middleware, and the per-domain handlers.
type RouterConfig struct {
	Verifier   auth.Verifier
	Households repository.HouseholdRepository
	Items      repository.ShoppingRepository

	Household *HouseholdHandler
	Planner   *PlannerHandler
	Shopping  *ShoppingHandler
	Recipe    *RecipeHandler
	Rating    *RatingHandler
	Profile   *ProfileHandler
}

// RegisterRoutes wires all API routes onto the engine. Every route
// shares the same skeleton: bearer auth, then per-route access gates,
// then the handler.
func RegisterRoutes(r *gin.Engine, cfg RouterConfig) {
	api := r.Group("/api")
	api.Use(middleware.RequireAuth(cfg.Verifier))

	households := api.Group("/households")
	{
		households.POST("", cfg.Household.CreateHousehold)
		households.GET("", cfg.Household.ListHouseholds)
		households.POST("/join", cfg.Household.JoinHousehold)

		withAccess := middleware.RequireHouseholdAccess(cfg.Households)
		adminOnly := middleware.RequireHouseholdAdmin()

		households.GET("/:id", withAccess, cfg.Household.GetHousehold)
		households.GET("/:id/role", withAccess, cfg.Household.GetRole)
		households.GET("/:id/members", withAccess, cfg.Household.GetMembers)
		households.POST("/:id/leave", withAccess, cfg.Household.LeaveHousehold)
		households.PUT("/:id", withAccess, adminOnly, cfg.Household.UpdateHousehold)
		households.POST("/:id/invite-code", withAccess, adminOnly, cfg.Household.RegenerateInviteCode)
		households.DELETE("/:id", withAccess, adminOnly, cfg.Household.DeleteHousehold)
	}

	planner := api.Group("/planner")
	{
		planner.GET("", cfg.Planner.GetPlan)
		planner.POST("", cfg.Planner.UpsertDay)
		planner.PUT("", cfg.Planner.UpdateDay)
		planner.DELETE("", cfg.Planner.DeleteDay)
	}

	shopping := api.Group("/shopping")
	{
		shopping.GET("", cfg.Shopping.ListItems)
		shopping.POST("", cfg.Shopping.CreateItem)

		withItem := middleware.RequireShoppingItemAccess(cfg.Items, cfg.Households)

		shopping.PUT("/:id", withItem, cfg.Shopping.UpdateItem)
		shopping.DELETE("/:id", withItem, cfg.Shopping.DeleteItem)
	}

	recipes := api.Group("/recipes")
	{
		recipes.GET("", cfg.Recipe.ListRecipes)
		recipes.POST("", cfg.Recipe.CreateRecipe)
		recipes.GET("/:id", cfg.Recipe.GetRecipe)
		recipes.PUT("/:id", cfg.Recipe.UpdateRecipe)
		recipes.DELETE("/:id", cfg.Recipe.DeleteRecipe)
	}

	ratings := api.Group("/ratings")
	{
		ratings.GET("", cfg.Rating.GetRatings)
		ratings.POST("", cfg.Rating.CreateRating)
		ratings.PUT("/:id", cfg.Rating.UpdateRating)
		ratings.DELETE("/:id", cfg.Rating.DeleteRating)
	}

	api.GET("/profile", cfg.Profile.GetProfile)
	api.PUT("/profile", cfg.Profile.UpdateProfile)
}

package routes

import (
	"Share-Recipe-Backend/internal/api/handlers"
	"Share-Recipe-Backend/internal/middleware"
	"Share-Recipe-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	RecipeHandler     handlers.RecipeHandler
	IngredientHandler handlers.IngredientHandler
	CommentHandler    handlers.CommentHandler
	FeedbackHandler   handlers.FeedbackHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())

	auth := c.Middleware.AuthMiddleware(c.JWTService)
	optionalAuth := c.Middleware.OptionalAuthMiddleware(c.JWTService)

	api := c.App.Group("/api/v1")

	users := api.Group("/users")
	users.Post("/register", c.UserHandler.Register)
	users.Post("/login", c.UserHandler.Login)
	users.Get("/verify", c.UserHandler.VerifyEmail)
	users.Get("/me", auth, c.UserHandler.Me)
	users.Patch("/me", auth, c.UserHandler.UpdateUser)
	users.Post("/me/photo", auth, c.UserHandler.UploadProfilePhoto)
	users.Delete("/me/photo", auth, c.UserHandler.DeleteProfilePhoto)
	users.Post("/me/verification-email", auth, c.UserHandler.SendVerificationEmail)

	recipes := api.Group("/recipes")
	recipes.Get("/", optionalAuth, c.RecipeHandler.GetRecipes)
	recipes.Post("/", auth, c.RecipeHandler.CreateRecipe)
	// Static paths register before /:id so they never parse as ids.
	recipes.Get("/my-recipes", auth, c.RecipeHandler.GetMyRecipes)
	recipes.Get("/saved", auth, c.RecipeHandler.GetSavedRecipes)
	recipes.Get("/:id", optionalAuth, c.RecipeHandler.GetRecipeDetail)
	recipes.Patch("/:id", auth, c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", auth, c.RecipeHandler.DeleteRecipe)
	recipes.Post("/:id/image", auth, c.RecipeHandler.UploadRecipeImage)
	recipes.Post("/:id/like", auth, c.RecipeHandler.LikeRecipe)
	recipes.Delete("/:id/like", auth, c.RecipeHandler.UnlikeRecipe)
	recipes.Post("/:id/save", auth, c.RecipeHandler.SaveRecipe)
	recipes.Delete("/:id/save", auth, c.RecipeHandler.UnsaveRecipe)
	recipes.Get("/:id/comments", c.CommentHandler.GetComments)
	recipes.Post("/:id/comments", auth, c.CommentHandler.AddComment)

	ingredients := api.Group("/ingredients")
	ingredients.Get("/", c.IngredientHandler.SearchIngredients)
	ingredients.Post("/", auth, c.IngredientHandler.CreateIngredient)

	feedback := api.Group("/feedback")
	feedback.Post("/", c.FeedbackHandler.SubmitFeedback)
	feedback.Get("/", auth, c.FeedbackHandler.ListFeedback)
}

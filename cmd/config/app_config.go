package config

import (
	"Share-Recipe-Backend/internal/api/handlers"
	"Share-Recipe-Backend/internal/api/routes"
	"Share-Recipe-Backend/internal/middleware"
	"Share-Recipe-Backend/internal/utils"
	"Share-Recipe-Backend/internal/utils/storage"
	"Share-Recipe-Backend/pkg/comment"
	"Share-Recipe-Backend/pkg/feedback"
	"Share-Recipe-Backend/pkg/ingredient"
	"Share-Recipe-Backend/pkg/jwt"
	"Share-Recipe-Backend/pkg/recipe"
	"Share-Recipe-Backend/pkg/social"
	"Share-Recipe-Backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	socialRepository := social.NewSocialRepository(db)
	commentRepository := comment.NewCommentRepository(db)
	feedbackRepository := feedback.NewFeedbackRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	ingredientService := ingredient.NewIngredientService(ingredientRepository)
	socialResolver := social.NewSocialResolver(socialRepository)
	postsDailyLimit := utils.GetPostsDailyLimit()
	if postsDailyLimit <= 0 {
		postsDailyLimit = recipe.DefaultPostsDailyLimit
	}
	recipeService := recipe.NewRecipeService(recipeRepository, socialResolver, postsDailyLimit)
	commentService := comment.NewCommentService(commentRepository, recipeRepository)
	feedbackService := feedback.NewFeedbackService(feedbackRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator, s3)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator, s3)
	commentHandler := handlers.NewCommentHandler(commentService, validator)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		RecipeHandler:     recipeHandler,
		IngredientHandler: ingredientHandler,
		CommentHandler:    commentHandler,
		FeedbackHandler:   feedbackHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}

package main

import (
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/Shreyasj1508/BuildBasket-sub003/config"
	"github.com/Shreyasj1508/BuildBasket-sub003/controllers"
	"github.com/Shreyasj1508/BuildBasket-sub003/middleware"
	"github.com/Shreyasj1508/BuildBasket-sub003/repositories"
	"github.com/Shreyasj1508/BuildBasket-sub003/routes"
	"github.com/Shreyasj1508/BuildBasket-sub003/services"
)

// CustomValidator is a custom validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates the request body
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found")
	}

	// Connect to Redis
	redisClient := config.ConnectRedis()

	// Connect to database
	client := config.ConnectDB()
	db := client.Database(config.GetDatabaseName())

	// Create a new Echo instance
	e := echo.New()

	// Initialize custom validator
	customValidator := &CustomValidator{validator: validator.New()}
	e.Validator = customValidator

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter()

	// Middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.Secure())
	e.Use(rateLimiter.RateLimit())
	e.Use(httpsRedirect())

	e.Match([]string{"GET", "HEAD"}, "/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status":  "OK",
			"message": "BuildBasket Backend is running",
			"version": "1.0",
		})
	})

	e.Match([]string{"GET", "HEAD"}, "/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status":   "healthy",
			"database": "connected",
		})
	})

	// Initialize repositories
	commissionRepo := repositories.NewCommissionRepository(client, db, redisClient)
	sellerRepo := repositories.NewSellerRepository(db)
	productRepo := repositories.NewProductRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)

	// Initialize services
	mailer := services.NewSMTPMailer()
	verificationService := services.NewVerificationService(sellerRepo, notificationRepo, mailer)
	propagationService := services.NewPropagationService(productRepo, commissionRepo)

	// Initialize controllers
	adminController := controllers.NewAdminController(db)
	commissionController := controllers.NewCommissionController(commissionRepo, propagationService)
	sellerController := controllers.NewSellerController(sellerRepo, verificationService)
	productController := controllers.NewProductController(productRepo, sellerRepo, commissionRepo, propagationService)

	// Register routes
	routes.RegisterAdminRoutes(e, adminController, commissionController, sellerController)
	routes.RegisterSellerRoutes(e, sellerController, productController)
	routes.RegisterProductRoutes(e, productController)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}

func httpsRedirect() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get("X-Forwarded-Proto") == "http" {
				return c.Redirect(301, "https://"+c.Request().Host+c.Request().RequestURI)
			}
			return next(c)
		}
	}
}

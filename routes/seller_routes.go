package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/Shreyasj1508/BuildBasket-sub003/controllers"
	"github.com/Shreyasj1508/BuildBasket-sub003/middleware"
)

// RegisterSellerRoutes sets up seller self-registration, login, and the
// seller's own product management.
func RegisterSellerRoutes(e *echo.Echo, sellerController *controllers.SellerController, productController *controllers.ProductController) {
	sellers := e.Group("/api/sellers")
	sellers.POST("/register", sellerController.Register)
	sellers.POST("/login", sellerController.Login)

	// Seller-scoped product routes
	seller := e.Group("/api/seller")
	seller.Use(middleware.JWTMiddleware())
	seller.Use(middleware.RequireUserType("seller"))
	seller.POST("/products", productController.CreateProduct)
	seller.GET("/products", productController.GetMyProducts)
	seller.PUT("/products/:id/price", productController.UpdateProductPrice)
}

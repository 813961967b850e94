package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/Shreyasj1508/BuildBasket-sub003/controllers"
)

// RegisterProductRoutes sets up the public storefront catalog.
func RegisterProductRoutes(e *echo.Echo, productController *controllers.ProductController) {
	e.GET("/api/products", productController.GetStorefrontProducts)
}

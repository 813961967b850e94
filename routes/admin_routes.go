package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/Shreyasj1508/BuildBasket-sub003/controllers"
	"github.com/Shreyasj1508/BuildBasket-sub003/middleware"
)

// RegisterAdminRoutes sets up admin authentication, commission policy
// management, and the seller verification workflow.
func RegisterAdminRoutes(e *echo.Echo, adminController *controllers.AdminController, commissionController *controllers.CommissionController, sellerController *controllers.SellerController) {
	admin := e.Group("/api/admin")

	// Public routes (no auth required)
	admin.POST("/login", adminController.Login)

	// Protected routes (require admin authentication)
	protected := admin.Group("")
	protected.Use(middleware.JWTMiddleware())
	protected.Use(middleware.RequireUserType("admin"))

	// Commission policy routes
	protected.GET("/commission/config", commissionController.GetConfig)
	protected.PUT("/commission/config", commissionController.UpdateConfig)
	protected.GET("/commission/history", commissionController.GetHistory)
	protected.POST("/commission/products/recompute-all", commissionController.RecomputeAll)
	protected.POST("/commission/products/recompute-one", commissionController.RecomputeOne)

	// Seller verification routes; bulk-verify is registered before the
	// parameterized verify route so Echo does not capture "bulk-verify" as
	// a seller id.
	protected.GET("/sellers/pending", sellerController.GetPendingSellers)
	protected.PUT("/sellers/bulk-verify", sellerController.BulkVerifySellers)
	protected.PUT("/sellers/:id/verify", sellerController.VerifySeller)
	protected.GET("/sellers/verification-stats", sellerController.GetVerificationStats)
	protected.GET("/sellers/verification-history", sellerController.GetVerificationHistory)
}

package controllers

import (
	"context"
	"math"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Shreyasj1508/BuildBasket-sub003/middleware"
	"github.com/Shreyasj1508/BuildBasket-sub003/models"
	"github.com/Shreyasj1508/BuildBasket-sub003/repositories"
	"github.com/Shreyasj1508/BuildBasket-sub003/services"
	"github.com/Shreyasj1508/BuildBasket-sub003/utils"
)

// ProductController handles seller product listings and the public
// storefront. Prices served to the storefront are precomputed snapshots.
type ProductController struct {
	products    *repositories.ProductRepository
	sellers     *repositories.SellerRepository
	commissions *repositories.CommissionRepository
	propagation *services.PropagationService
}

// NewProductController creates a new product controller
func NewProductController(products *repositories.ProductRepository, sellers *repositories.SellerRepository, commissions *repositories.CommissionRepository, propagation *services.PropagationService) *ProductController {
	return &ProductController{
		products:    products,
		sellers:     sellers,
		commissions: commissions,
		propagation: propagation,
	}
}

// CreateProduct creates a listing for the authenticated seller. Only active
// sellers may list products; the commission snapshot is computed from the
// policy active right now.
func (pc *ProductController) CreateProduct(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, err := middleware.ExtractUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: "Authentication required",
		})
	}

	seller, err := pc.sellers.FindByID(ctx, userID)
	if err != nil {
		return respondError(c, err)
	}
	if seller == nil {
		return c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Message: "Seller account not found",
		})
	}
	if seller.Status != models.SellerStatusActive {
		return c.JSON(http.StatusForbidden, models.Response{
			Success: false,
			Message: "Your seller account is " + seller.Status + "; only verified sellers can list products",
		})
	}

	var req models.ProductCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Name and a positive base price are required",
		})
	}

	policy, err := pc.commissions.GetActivePolicy(ctx)
	if err != nil {
		return respondError(c, err)
	}

	breakdown := utils.ComputeCommission(decimal.NewFromFloat(req.BasePrice), policy)
	product := &models.Product{
		SellerID:    seller.ID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Stock:       req.Stock,
		BasePrice:   req.BasePrice,
	}
	product.CommissionAmount, _ = breakdown.CommissionAmount.Float64()
	product.FinalPrice, _ = breakdown.FinalPrice.Float64()
	product.CommissionKind = breakdown.CommissionKind

	created, err := pc.products.Create(ctx, product)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, models.ProductResponse{
		Success: true,
		Message: "Product created",
		Product: created,
	})
}

// GetMyProducts lists the authenticated seller's own products.
func (pc *ProductController) GetMyProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, err := middleware.ExtractUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: "Authentication required",
		})
	}
	sellerID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid seller ID",
		})
	}

	page, limit := parsePagination(c)
	products, total, err := pc.products.FindBySeller(ctx, sellerID, page, limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.ProductListResponse{
		Success:  true,
		Products: products,
		Pagination: models.Pagination{
			Current: page,
			Pages:   int(math.Ceil(float64(total) / float64(limit))),
			Total:   total,
		},
	})
}

// UpdateProductPrice changes the base price of one of the seller's own
// products and recomputes its commission snapshot.
func (pc *ProductController) UpdateProductPrice(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, err := middleware.ExtractUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: "Authentication required",
		})
	}

	productID := c.Param("id")
	product, err := pc.products.FindByID(ctx, productID)
	if err != nil {
		return respondError(c, err)
	}
	if product == nil {
		return c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Message: "Product not found",
		})
	}
	if product.SellerID.Hex() != userID {
		return c.JSON(http.StatusForbidden, models.Response{
			Success: false,
			Message: "You can only update your own products",
		})
	}

	var req models.ProductPriceUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "A positive base price is required",
		})
	}

	updated, err := pc.propagation.RecomputeOne(ctx, productID, &req.BasePrice)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.ProductResponse{
		Success: true,
		Message: "Product price updated",
		Product: updated,
	})
}

// GetStorefrontProducts is the public catalog: products of active sellers
// only, with their precomputed final prices.
func (pc *ProductController) GetStorefrontProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sellerIDs, err := pc.sellers.FindActiveIDs(ctx)
	if err != nil {
		return respondError(c, err)
	}

	page, limit := parsePagination(c)
	category := c.QueryParam("category")

	products, total, err := pc.products.FindStorefront(ctx, sellerIDs, category, page, limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.ProductListResponse{
		Success:  true,
		Products: products,
		Pagination: models.Pagination{
			Current: page,
			Pages:   int(math.Ceil(float64(total) / float64(limit))),
			Total:   total,
		},
	})
}

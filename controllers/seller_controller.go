package controllers

import (
	"context"
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Shreyasj1508/BuildBasket-sub003/middleware"
	"github.com/Shreyasj1508/BuildBasket-sub003/models"
	"github.com/Shreyasj1508/BuildBasket-sub003/repositories"
	"github.com/Shreyasj1508/BuildBasket-sub003/services"
	"github.com/Shreyasj1508/BuildBasket-sub003/utils"
)

// SellerController handles seller registration, login, and the admin
// verification workflow.
type SellerController struct {
	sellers      *repositories.SellerRepository
	verification *services.VerificationService
}

// NewSellerController creates a new seller controller
func NewSellerController(sellers *repositories.SellerRepository, verification *services.VerificationService) *SellerController {
	return &SellerController{sellers: sellers, verification: verification}
}

// Register creates a new seller account in pending status.
func (sc *SellerController) Register(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.SellerRegistrationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Email, password (min 8 chars) and business name are required",
		})
	}

	existing, err := sc.sellers.FindByEmail(ctx, req.Email)
	if err != nil {
		return respondError(c, err)
	}
	if existing != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Email already registered",
		})
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Internal server error",
		})
	}

	seller, err := sc.sellers.Create(ctx, &models.Seller{
		Email:        req.Email,
		Password:     hashed,
		BusinessName: req.BusinessName,
		Phone:        req.Phone,
		Category:     req.Category,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, models.SellerVerificationResponse{
		Success: true,
		Message: "Registration successful, your account is pending admin review",
		Seller:  seller,
	})
}

// Login authenticates a seller and issues a seller-typed JWT. Pending and
// rejected sellers can still log in to see their status; product creation
// is gated separately.
func (sc *SellerController) Login(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request body",
		})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Email and password are required",
		})
	}

	seller, err := sc.sellers.FindByEmail(ctx, req.Email)
	if err != nil {
		return respondError(c, err)
	}
	if seller == nil || !utils.CheckPassword(seller.Password, req.Password) {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: "Invalid email or password",
		})
	}

	token, refreshToken, err := middleware.GenerateJWT(seller.ID.Hex(), seller.Email, "seller")
	if err != nil {
		log.Printf("Failed to generate seller token: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Failed to generate token",
		})
	}

	return c.JSON(http.StatusOK, models.LoginResponse{
		Success:      true,
		Message:      "Login successful",
		Token:        token,
		RefreshToken: refreshToken,
		User:         seller,
	})
}

// GetPendingSellers lists sellers awaiting review, newest first.
func (sc *SellerController) GetPendingSellers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	page, limit := parsePagination(c)
	sellers, _, err := sc.verification.ListPending(ctx, page, limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.PendingSellersResponse{
		Success: true,
		Sellers: sellers,
		Count:   len(sellers),
	})
}

// VerifySeller approves or rejects one pending seller.
func (sc *SellerController) VerifySeller(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sellerID := c.Param("id")
	if sellerID == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Seller ID is required",
		})
	}

	var req models.SellerVerificationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid status, must be 'active' or 'rejected'",
		})
	}

	seller, err := sc.verification.Verify(ctx, sellerID, req.Status, req.Reason, adminIDFromToken(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.SellerVerificationResponse{
		Success: true,
		Message: "Seller " + req.Status,
		Seller:  seller,
	})
}

// BulkVerifySellers applies one decision to many sellers, reporting
// per-seller success and failure.
func (sc *SellerController) BulkVerifySellers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	var req models.BulkVerificationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "sellerIds and a status of 'active' or 'rejected' are required",
		})
	}

	results := sc.verification.BulkVerify(ctx, req.SellerIDs, req.Status, req.Reason, adminIDFromToken(c))

	return c.JSON(http.StatusOK, models.BulkVerificationResponse{
		Success: true,
		Message: "Bulk verification completed",
		Results: results,
	})
}

// GetVerificationStats returns seller counts per status.
func (sc *SellerController) GetVerificationStats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stats, err := sc.verification.Stats(ctx)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.VerificationStatsResponse{
		Success: true,
		Stats:   stats,
	})
}

// GetVerificationHistory returns one page of sellers across all statuses.
func (sc *SellerController) GetVerificationHistory(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	page, limit := parsePagination(c)
	status := c.QueryParam("status")

	sellers, total, err := sc.verification.History(ctx, status, page, limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.VerificationHistoryResponse{
		Success: true,
		Sellers: sellers,
		Pagination: models.Pagination{
			Current: page,
			Pages:   int(math.Ceil(float64(total) / float64(limit))),
			Total:   total,
		},
	})
}

func parsePagination(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page <= 0 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return page, limit
}

func adminIDFromToken(c echo.Context) primitive.ObjectID {
	userID, err := middleware.ExtractUserID(c)
	if err != nil {
		return primitive.NilObjectID
	}
	adminID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return primitive.NilObjectID
	}
	return adminID
}

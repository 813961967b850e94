package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Shreyasj1508/BuildBasket-sub003/middleware"
	"github.com/Shreyasj1508/BuildBasket-sub003/models"
	"github.com/Shreyasj1508/BuildBasket-sub003/repositories"
	"github.com/Shreyasj1508/BuildBasket-sub003/services"
)

// CommissionController handles the commission policy configuration and the
// explicit propagation of policy changes onto stored products.
type CommissionController struct {
	commissions *repositories.CommissionRepository
	propagation *services.PropagationService
}

// NewCommissionController creates a new commission controller
func NewCommissionController(commissions *repositories.CommissionRepository, propagation *services.PropagationService) *CommissionController {
	return &CommissionController{commissions: commissions, propagation: propagation}
}

// GetConfig returns the currently active commission policy. A nil config
// means no policy has ever been set; clients fall back to the documented
// default.
func (cc *CommissionController) GetConfig(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	policy, err := cc.commissions.GetActivePolicy(ctx)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.CommissionConfigResponse{
		Success: true,
		Config:  policy,
	})
}

// UpdateConfig replaces the active commission policy. The previous policy is
// closed and kept in history. Products are NOT recomputed here; that is a
// separate, explicit admin operation.
func (cc *CommissionController) UpdateConfig(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.CommissionConfigRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid commission type, must be 'fixed' or 'percentage'",
		})
	}

	policy := &models.CommissionPolicy{
		Kind:        req.Type,
		Rate:        req.Rate,
		FixedAmount: req.FixedAmount,
		Description: req.Description,
	}

	claims := middleware.GetUserFromToken(c)
	if claims != nil {
		if adminID, err := primitive.ObjectIDFromHex(claims.UserID); err == nil {
			policy.CreatedBy = adminID
		}
	}

	saved, err := cc.commissions.SetPolicy(ctx, policy)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.CommissionUpdateResponse{
		Success:    true,
		Message:    "Commission configuration updated",
		Commission: saved,
	})
}

// GetHistory lists past commission policies, most recent first.
func (cc *CommissionController) GetHistory(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	history, err := cc.commissions.GetHistory(ctx, parseHistoryLimit(c.QueryParam("limit")))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.CommissionHistoryResponse{
		Success: true,
		History: history,
	})
}

// maxHistoryLimit bounds how many closed policies GetHistory returns.
const maxHistoryLimit = int64(20)

// parseHistoryLimit parses the history page size, clamping it to
// maxHistoryLimit. Missing or unparseable values use the maximum.
func parseHistoryLimit(raw string) int64 {
	if raw == "" {
		return maxHistoryLimit
	}
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || parsed <= 0 {
		return maxHistoryLimit
	}
	if parsed > maxHistoryLimit {
		return maxHistoryLimit
	}
	return parsed
}

// RecomputeAll reapplies the active policy to every product, isolating
// per-product failures.
func (cc *CommissionController) RecomputeAll(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	updated, failures, err := cc.propagation.RecomputeAll(ctx)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.RecomputeAllResponse{
		Success:      true,
		UpdatedCount: updated,
		Failures:     failures,
	})
}

// RecomputeOne reapplies the active policy to a single product, with an
// optional base price override.
func (cc *CommissionController) RecomputeOne(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.RecomputeOneRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request body",
		})
	}
	if req.ProductID == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "productId is required",
		})
	}
	if req.BasePrice != nil && *req.BasePrice <= 0 {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "basePrice must be positive",
		})
	}

	product, err := cc.propagation.RecomputeOne(ctx, req.ProductID, req.BasePrice)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.ProductResponse{
		Success: true,
		Message: "Product commission recomputed",
		Product: product,
	})
}

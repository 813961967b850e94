package controllers

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Shreyasj1508/BuildBasket-sub003/models"
	"github.com/Shreyasj1508/BuildBasket-sub003/services"
)

// respondError maps a domain error onto the HTTP taxonomy: validation and
// invalid-state errors are 400, missing entities are 404, everything else
// is a generic 500 (storage details are logged, not exposed).
func respondError(c echo.Context, err error) error {
	switch e := err.(type) {
	case *services.ValidationError:
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: e.Error(),
		})
	case *services.InvalidStateError:
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: e.Error(),
		})
	case *services.NotFoundError:
		return c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Message: e.Error(),
		})
	default:
		log.Printf("Internal error: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Internal server error",
		})
	}
}

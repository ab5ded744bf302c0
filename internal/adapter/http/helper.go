package http

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"solarshare-backend/internal/domain/payment"
	"solarshare-backend/internal/domain/property"
	"solarshare-backend/internal/domain/user"
	"solarshare-backend/internal/usecase/auth"

	"github.com/labstack/echo/v4"
)

// fail maps a usecase error onto an HTTP response. Domain-rule violations
// surface with their message; anything unrecognized is a store failure and
// returns a generic 500, details logged only.
func fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, user.ErrNoVendorAvailable):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, user.ErrEmailTaken):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case errors.Is(err, user.ErrNotFound),
		errors.Is(err, property.ErrNotFound),
		errors.Is(err, payment.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, property.ErrNotAssignedVendor):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, property.ErrNotQuotable),
		errors.Is(err, property.ErrNotFundable),
		errors.Is(err, property.ErrOverAllocation),
		errors.Is(err, payment.ErrAlreadyConfirmed):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	}
	log.Printf("%s %s: %v", c.Request().Method, c.Path(), err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

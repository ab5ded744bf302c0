package http

import (
	"net/http"

	"solarshare-backend/internal/adapter/middleware"
	"solarshare-backend/internal/usecase/funding"

	"github.com/labstack/echo/v4"
)

type InvestmentHandler struct {
	funding *funding.Usecase
	views   *funding.Views
}

func NewInvestmentHandler(f *funding.Usecase, v *funding.Views) *InvestmentHandler {
	return &InvestmentHandler{funding: f, views: v}
}

func (h *InvestmentHandler) Available(c echo.Context) error {
	out, err := h.views.AvailableInvestments(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type purchaseReq struct {
	PropertyID     string `json:"property_id"     validate:"required,hex32"`
	UnitsPurchased int    `json:"units_purchased" validate:"required,gt=0,lte=1000"`
}

func (h *InvestmentHandler) Purchase(c echo.Context) error {
	var req purchaseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.funding.PurchaseUnits(c.Request().Context(), funding.PurchaseUnitsInput{
		PropertyID: req.PropertyID,
		InvestorID: middleware.CallerID(c),
		Units:      req.UnitsPurchased,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *InvestmentHandler) Mine(c echo.Context) error {
	out, err := h.views.MyInvestments(c.Request().Context(), middleware.CallerID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

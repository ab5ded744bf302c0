package http

import (
	"net/http"

	"solarshare-backend/internal/adapter/middleware"
	"solarshare-backend/internal/usecase/billing"
	"solarshare-backend/internal/usecase/funding"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type PropertyHandler struct {
	funding *funding.Usecase
	views   *funding.Views
	billing *billing.Usecase
}

func NewPropertyHandler(f *funding.Usecase, v *funding.Views, b *billing.Usecase) *PropertyHandler {
	return &PropertyHandler{funding: f, views: v, billing: b}
}

type submitPropertyReq struct {
	Address           string  `json:"address"            validate:"required"`
	City              string  `json:"city"               validate:"required"`
	Pincode           string  `json:"pincode"            validate:"required"`
	EnergyConsumption float64 `json:"energy_consumption" validate:"required,gt=0"`
}

func (h *PropertyHandler) Submit(c echo.Context) error {
	var req submitPropertyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.funding.SubmitProperty(c.Request().Context(), funding.SubmitPropertyInput{
		HomeownerID:       middleware.CallerID(c),
		Address:           req.Address,
		City:              req.City,
		Pincode:           req.Pincode,
		EnergyConsumption: req.EnergyConsumption,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *PropertyHandler) Assigned(c echo.Context) error {
	out, err := h.views.AssignedProperties(c.Request().Context(), middleware.CallerID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type submitQuoteReq struct {
	PanelSize   float64         `json:"panel_size"   validate:"required,gt=0"`
	QuoteAmount decimal.Decimal `json:"quote_amount" validate:"required,positive"`
}

func (h *PropertyHandler) Quote(c echo.Context) error {
	propertyID := c.Param("id")
	if !reHex32.MatchString(propertyID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid property id"})
	}
	var req submitQuoteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.funding.SubmitQuote(c.Request().Context(), funding.SubmitQuoteInput{
		PropertyID:  propertyID,
		VendorID:    middleware.CallerID(c),
		PanelSize:   req.PanelSize,
		QuoteAmount: req.QuoteAmount,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PropertyHandler) MyProperties(c echo.Context) error {
	out, err := h.views.MyProperties(c.Request().Context(), middleware.CallerID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type logEnergyReq struct {
	PropertyID    string          `json:"property_id"    validate:"required,hex32"`
	Month         string          `json:"month"          validate:"required,month"`
	UnitsProduced decimal.Decimal `json:"units_produced" validate:"required,positive"`
}

func (h *PropertyHandler) LogEnergy(c echo.Context) error {
	var req logEnergyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	res, err := h.billing.SubmitEnergyLog(c.Request().Context(), billing.SubmitEnergyLogInput{
		PropertyID:    req.PropertyID,
		VendorID:      middleware.CallerID(c),
		Month:         req.Month,
		UnitsProduced: req.UnitsProduced,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *PropertyHandler) EnergyLogs(c echo.Context) error {
	propertyID := c.Param("id")
	if !reHex32.MatchString(propertyID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid property id"})
	}
	out, err := h.billing.EnergyLogs(c.Request().Context(), propertyID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PropertyHandler) Details(c echo.Context) error {
	propertyID := c.Param("id")
	if !reHex32.MatchString(propertyID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid property id"})
	}
	out, err := h.views.PropertyDetails(c.Request().Context(), propertyID, middleware.CallerID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PropertyHandler) ServiceableCities(c echo.Context) error {
	cities, err := h.views.ServiceableCities(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string][]string{"cities": cities})
}

package http

import (
	"net/http"

	"solarshare-backend/internal/adapter/middleware"
	"solarshare-backend/internal/usecase/settlement"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct{ uc *settlement.Usecase }

func NewPaymentHandler(uc *settlement.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

func (h *PaymentHandler) HomeownerPayments(c echo.Context) error {
	out, err := h.uc.HomeownerPayments(c.Request().Context(), middleware.CallerID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type confirmReq struct {
	PaymentID string `json:"payment_id" validate:"required,hex32"`
}

func (h *PaymentHandler) Confirm(c echo.Context) error {
	var req confirmReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	res, err := h.uc.ConfirmPayment(c.Request().Context(), req.PaymentID, middleware.CallerID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *PaymentHandler) InvestorPayouts(c echo.Context) error {
	out, err := h.uc.InvestorPayouts(c.Request().Context(), middleware.CallerID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

package http

import (
	"net/http"

	"solarshare-backend/internal/adapter/middleware"
	"solarshare-backend/internal/domain/user"
	"solarshare-backend/internal/usecase/auth"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct{ uc *auth.Usecase }

func NewAuthHandler(uc *auth.Usecase) *AuthHandler { return &AuthHandler{uc: uc} }

type registerReq struct {
	Name              string   `json:"name"      validate:"required"`
	Email             string   `json:"email"     validate:"required,email"`
	Password          string   `json:"password"  validate:"required,min=8"`
	Role              string   `json:"role"      validate:"required,role"`
	UpiID             string   `json:"upi_id"`
	PanCard           string   `json:"pan_card"`
	FCMToken          string   `json:"fcm_token"`
	ServiceableCities []string `json:"serviceable_cities"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	res, err := h.uc.Register(c.Request().Context(), auth.RegisterInput{
		Name:              req.Name,
		Email:             req.Email,
		Password:          req.Password,
		Role:              user.Role(req.Role),
		UpiID:             req.UpiID,
		PanCard:           req.PanCard,
		FCMToken:          req.FCMToken,
		ServiceableCities: req.ServiceableCities,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

type loginReq struct {
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required"`
	FCMToken string `json:"fcm_token"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	res, err := h.uc.Login(c.Request().Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		FCMToken: req.FCMToken,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *AuthHandler) Me(c echo.Context) error {
	profile, err := h.uc.Profile(c.Request().Context(), middleware.CallerID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

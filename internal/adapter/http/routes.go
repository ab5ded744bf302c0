package http

import (
	"solarshare-backend/internal/adapter/middleware"
	"solarshare-backend/internal/domain/user"
	"solarshare-backend/internal/usecase/auth"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes wires the full operation surface. authn/idemp are the
// authentication and idempotency middlewares; idemp may be nil when redis
// is disabled (tests).
func RegisterRoutes(e *echo.Echo, authUC *auth.Usecase, ah *AuthHandler, ph *PropertyHandler, ih *InvestmentHandler, payh *PaymentHandler, idemp echo.MiddlewareFunc) {
	h := NewHandler()
	e.GET("/health", h.Health)

	authn := middleware.Authenticate(authUC)

	users := e.Group("/api/users")
	users.POST("/register", ah.Register)
	users.POST("/login", ah.Login)
	users.GET("/me", ah.Me, authn)

	protected := []echo.MiddlewareFunc{authn}
	if idemp != nil {
		protected = append(protected, idemp)
	}

	props := e.Group("/api/properties", protected...)
	props.POST("", ph.Submit, middleware.RequireRoles(user.RoleHomeowner))
	props.GET("/vendor/assigned", ph.Assigned, middleware.RequireRoles(user.RoleVendor))
	props.POST("/:id/quote", ph.Quote, middleware.RequireRoles(user.RoleVendor))
	props.GET("/my-properties", ph.MyProperties, middleware.RequireRoles(user.RoleHomeowner))
	props.POST("/log-energy", ph.LogEnergy, middleware.RequireRoles(user.RoleVendor))
	props.GET("/serviceable-cities", ph.ServiceableCities, middleware.RequireRoles(user.RoleHomeowner))
	props.GET("/:id/energy-logs", ph.EnergyLogs)
	props.GET("/:id/details", ph.Details)

	invs := e.Group("/api/investments", protected...)
	invs.GET("", ih.Available, middleware.RequireRoles(user.RoleInvestor))
	invs.POST("", ih.Purchase, middleware.RequireRoles(user.RoleInvestor))
	invs.GET("/mine", ih.Mine, middleware.RequireRoles(user.RoleInvestor))

	pays := e.Group("/api/payments", protected...)
	pays.GET("/homeowner", payh.HomeownerPayments, middleware.RequireRoles(user.RoleHomeowner))
	pays.POST("/confirm", payh.Confirm, middleware.RequireRoles(user.RoleHomeowner))
	pays.GET("/investor/payouts", payh.InvestorPayouts, middleware.RequireRoles(user.RoleInvestor))
}

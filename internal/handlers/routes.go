package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups everything RegisterRoutes mounts
type Handlers struct {
	Merchants    *MerchantHandler
	Transactions *TransactionHandler
	Audit        *AuditHandler
	Health       *HealthCheckHandler
}

// RegisterRoutes mounts the dashboard API under /api/v1
func RegisterRoutes(e *echo.Echo, h Handlers) {
	e.GET("/health", h.Health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	dashboard := api.Group("/dashboard")

	merchants := dashboard.Group("/merchants")
	merchants.GET("", h.Merchants.GetDashboard)
	merchants.POST("", h.Merchants.CreateMerchant)
	merchants.PUT("/filter", h.Merchants.SetFilter)
	merchants.PUT("/page", h.Merchants.SetPage)
	merchants.POST("/refetch", h.Merchants.Refetch)
	merchants.GET("/:merchantId", h.Merchants.GetMerchant)
	merchants.PUT("/:merchantId", h.Merchants.UpdateMerchant)

	transactions := dashboard.Group("/transactions")
	transactions.GET("", h.Transactions.GetDashboard)
	transactions.POST("", h.Transactions.CreateTransaction)
	transactions.PUT("/key", h.Transactions.SetFetchKey)
	transactions.PUT("/filter", h.Transactions.SetFilter)
	transactions.PUT("/page", h.Transactions.SetPage)
	transactions.POST("/refetch", h.Transactions.Refetch)

	if h.Audit != nil {
		audit := api.Group("/audit")
		audit.GET("/mutations", h.Audit.ListMutations)
		audit.GET("/mutations/summary", h.Audit.MutationSummary)
	}
}

package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"freightdesk/handlers"
)

type Options struct {
	// Origins allowed by CORS. Empty allows any origin.
	Origins []string
	// JWTSecret enables token checks on every /api route except login.
	JWTSecret string
	Log       zerolog.Logger
}

type Handlers struct {
	Auth         *handlers.AuthHandler
	Clients      *handlers.ClientHandler
	LorryReceipt *handlers.LorryReceiptHandler
	Invoices     *handlers.InvoiceHandler
	Payments     *handlers.PaymentHandler
	Expenses     *handlers.ExpenseHandler
	Reports      *handlers.ReportHandler
	Settings     *handlers.SettingsHandler
	PDF          *handlers.PDFHandler
}

func SetupRouter(opts Options, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(handlers.RequestLogger(opts.Log), handlers.Recovery(opts.Log))
	r.Use(cors.New(corsConfig(opts.Origins)))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.POST("/login", h.Auth.Login)

	secured := api.Group("")
	if opts.JWTSecret != "" {
		secured.Use(handlers.RequireAuth(opts.JWTSecret))
	}

	clients := secured.Group("/clients")
	clients.GET("", h.Clients.List)
	clients.POST("", h.Clients.Create)
	clients.GET("/:id", h.Clients.Get)
	clients.PUT("/:id", h.Clients.Update)
	clients.DELETE("/:id", h.Clients.Delete)

	lrs := secured.Group("/lrs")
	lrs.GET("", h.LorryReceipt.List)
	lrs.POST("", h.LorryReceipt.Create)
	lrs.GET("/unbilled", h.LorryReceipt.Unbilled)
	lrs.GET("/:id", h.LorryReceipt.Get)
	lrs.PUT("/:id", h.LorryReceipt.Update)
	lrs.DELETE("/:id", h.LorryReceipt.Delete)
	lrs.POST("/:id/dispatch", h.LorryReceipt.Dispatch)
	lrs.POST("/:id/update-transit", h.LorryReceipt.UpdateTransit)
	lrs.POST("/:id/deliver", h.LorryReceipt.Deliver)
	lrs.POST("/:id/close", h.LorryReceipt.Close)
	lrs.GET("/:id/freight", h.LorryReceipt.Freight)
	lrs.GET("/:id/pdf", h.PDF.LorryReceipt)

	invoices := secured.Group("/invoices")
	invoices.GET("", h.Invoices.List)
	invoices.POST("", h.Invoices.Generate)
	invoices.GET("/:id", h.Invoices.Get)
	invoices.PUT("/:id", h.Invoices.Update)
	invoices.DELETE("/:id", h.Invoices.Delete)
	invoices.PATCH("/:id/status", h.Invoices.SetStatus)
	invoices.GET("/:id/pdf", h.PDF.Invoice)

	payments := secured.Group("/payments")
	payments.GET("", h.Payments.List)
	payments.POST("", h.Payments.Record)
	payments.GET("/:id", h.Payments.Get)
	payments.DELETE("/:id", h.Payments.Delete)

	expenses := secured.Group("/expenses")
	expenses.GET("", h.Expenses.List)
	expenses.POST("", h.Expenses.Create)
	expenses.PUT("/:id", h.Expenses.Update)
	expenses.DELETE("/:id", h.Expenses.Delete)

	secured.GET("/ledger", h.Reports.Ledger)
	secured.GET("/ledger/pdf", h.PDF.Ledger)
	secured.GET("/dashboard", h.Reports.Dashboard)

	secured.GET("/settings", h.Settings.Get)
	secured.PUT("/settings", h.Settings.Save)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

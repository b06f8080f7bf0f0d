// Package api: JSON HTTP API поверх App.
package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Spok95/shopdesk/internal/app"
	"github.com/Spok95/shopdesk/internal/backup"
	"github.com/Spok95/shopdesk/internal/collection"
	"github.com/Spok95/shopdesk/internal/domain/activities"
	"github.com/Spok95/shopdesk/internal/domain/bookings"
	"github.com/Spok95/shopdesk/internal/domain/customers"
	"github.com/Spok95/shopdesk/internal/domain/employees"
	"github.com/Spok95/shopdesk/internal/domain/items"
	"github.com/Spok95/shopdesk/internal/domain/materials"
	"github.com/Spok95/shopdesk/internal/domain/purchases"
	"github.com/Spok95/shopdesk/internal/domain/sales"
	"github.com/Spok95/shopdesk/internal/domain/worksessions"
	"github.com/Spok95/shopdesk/internal/infra/payments"
	"github.com/Spok95/shopdesk/internal/period"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const Prefix = "/api/v1"

type Handler struct {
	app *app.App
	pay *payments.Service
	log *slog.Logger
}

// New собирает роутер. Режим gin выставляет вызывающий (gin.SetMode).
func New(a *app.App, pay *payments.Service) *gin.Engine {
	h := &Handler{app: a, pay: pay, log: a.Log.With("component", "api")}

	r := gin.New()
	r.Use(gin.Recovery(), h.requestLog())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:   []string{"Content-Length", "Content-Disposition"},
		MaxAge:          12 * time.Hour,
	}))

	v1 := r.Group(Prefix)

	v1.GET("/items/:id/cost", h.itemCost)
	v1.GET("/activities/categories", h.activityCategories)
	v1.GET("/purchases/suppliers", h.purchaseSuppliers)
	v1.GET("/customers/tiers", h.customerTiers)
	v1.GET("/customers/active", h.activeCustomers)
	v1.GET("/customers/:id/discount", h.customerDiscount)
	v1.GET("/customers/:id/sales", h.customerSales)
	v1.GET("/employees/:id/sessions", h.employeeSessions)
	v1.GET("/bookings/quote", h.quote)
	v1.GET("/bookings/unpaid", h.unpaidBookings)
	v1.POST("/bookings/:id/pay", h.markPaid(payments.KindBooking))
	v1.POST("/sales/:id/pay", h.markPaid(payments.KindSale))

	mount[items.Item](v1, h.log, "/items", a.Items)
	mount[materials.Material](v1, h.log, "/materials", a.Materials)
	mount[customers.Customer](v1, h.log, "/customers", a.Customers)
	mount[employees.Employee](v1, h.log, "/employees", a.Employees)
	mount[worksessions.Session](v1, h.log, "/work-sessions", a.Sessions)
	mount[activities.Activity](v1, h.log, "/activities", a.Activities)
	mount[bookings.Booking](v1, h.log, "/bookings", bookingDesk{Repo: a.Bookings, acts: a.Activities})
	mount[sales.Sale](v1, h.log, "/sales", a.Sales)
	mount[purchases.Purchase](v1, h.log, "/purchases", a.Purchases)

	v1.GET("/balance", h.balance)
	v1.GET("/balance/snapshots", h.listSnapshots)
	v1.POST("/balance/snapshots", h.recordSnapshot)
	v1.GET("/report.csv", h.reportCSV)
	v1.GET("/report.xlsx", h.reportXLSX)

	v1.GET("/backup", h.exportBackup)
	v1.POST("/backup", h.importBackup)
	v1.POST("/reset", h.reset)

	v1.GET("/theme", h.theme)
	v1.PUT("/theme/:slot", h.setThemeColor)
	v1.DELETE("/theme", h.resetTheme)

	return r
}

func (h *Handler) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		h.log.Debug("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

// fail отвечает {"error": ...}: 400 при некорректном вводе, 404 если записи нет.
func fail(c *gin.Context, log *slog.Logger, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, collection.ErrValidation),
		errors.Is(err, backup.ErrMalformed),
		errors.Is(err, period.ErrUnknown):
		status = http.StatusBadRequest
	case errors.Is(err, collection.ErrNotFound):
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		log.Error("request failed", "path", c.FullPath(), "err", err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

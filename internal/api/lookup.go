package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Spok95/shopdesk/internal/domain/bookings"
	"github.com/Spok95/shopdesk/internal/domain/customers"
	"github.com/Spok95/shopdesk/internal/domain/items"
	"github.com/Spok95/shopdesk/internal/infra/payments"
	"github.com/Spok95/shopdesk/internal/period"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

func (h *Handler) itemCost(c *gin.Context) {
	item, err := h.app.Items.Get(c.Param("id"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	catalog := h.app.Materials.List()
	c.JSON(http.StatusOK, gin.H{
		"id":           item.ID,
		"price":        item.Price,
		"materialCost": items.MaterialCost(item, catalog),
		"margin":       items.Margin(item, catalog),
	})
}

func (h *Handler) activityCategories(c *gin.Context) {
	c.JSON(http.StatusOK, nonNil(h.app.Activities.Categories()))
}

func (h *Handler) purchaseSuppliers(c *gin.Context) {
	c.JSON(http.StatusOK, nonNil(h.app.Purchases.Suppliers()))
}

type tierView struct {
	Tier     customers.Tier  `json:"tier"`
	Discount decimal.Decimal `json:"discount"`
}

// customerView: клиент вместе с итоговой скидкой в процентах.
type customerView struct {
	customers.Customer
	EffectiveDiscount decimal.Decimal `json:"effectiveDiscount"`
}

func viewCustomer(c customers.Customer) customerView {
	return customerView{Customer: c, EffectiveDiscount: c.EffectiveDiscount()}
}

func (h *Handler) customerTiers(c *gin.Context) {
	c.JSON(http.StatusOK, lo.Map(customers.Tiers(), func(t customers.Tier, _ int) tierView {
		return tierView{Tier: t, Discount: t.DefaultDiscount()}
	}))
}

func (h *Handler) activeCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, lo.Map(h.app.Customers.Active(), func(cust customers.Customer, _ int) customerView {
		return viewCustomer(cust)
	}))
}

func (h *Handler) customerDiscount(c *gin.Context) {
	cust, err := h.app.Customers.Get(c.Param("id"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, viewCustomer(cust))
}

func (h *Handler) customerSales(c *gin.Context) {
	cust, err := h.app.Customers.Get(c.Param("id"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(h.app.Sales.ByCustomer(cust.ID)))
}

func (h *Handler) employeeSessions(c *gin.Context) {
	e, err := h.app.Employees.Get(c.Param("id"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(h.app.Sessions.ByEmployee(e.ID)))
}

func (h *Handler) unpaidBookings(c *gin.Context) {
	if date := c.Query("date"); date != "" {
		if _, err := period.ParseDate(date); err != nil {
			badRequest(c, err)
			return
		}
		c.JSON(http.StatusOK, nonNil(h.app.Bookings.UnpaidOn(date)))
		return
	}
	c.JSON(http.StatusOK, nonNil(h.app.Bookings.Unpaid()))
}

// quote: предпросмотр цены, ?activity=<id или имя>&duration=<мин>&participants=<n>
func (h *Handler) quote(c *gin.Context) {
	ref := c.Query("activity")
	if ref == "" {
		badRequest(c, errors.New("activity is required"))
		return
	}
	duration, err := strconv.Atoi(c.Query("duration"))
	if err != nil || duration <= 0 {
		badRequest(c, errors.New("duration must be a positive number of minutes"))
		return
	}
	participants := 1
	if raw := c.Query("participants"); raw != "" {
		participants, err = strconv.Atoi(raw)
		if err != nil || participants <= 0 {
			badRequest(c, errors.New("participants must be positive"))
			return
		}
	}

	act, err := h.app.Activities.Resolve(ref, ref)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"activityId":   act.ID,
		"activity":     act.Name,
		"duration":     duration,
		"participants": participants,
		"price":        bookings.Quote(act, duration, participants),
	})
}

// markPaid отмечает оплату и отдаёт ссылку, по которой её можно повторить.
func (h *Handler) markPaid(kind payments.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if err := h.pay.Pay(c.Request.Context(), kind, id); err != nil {
			fail(c, h.log, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id, "paid": true, "link": h.pay.PaymentURL(kind, id)})
	}
}

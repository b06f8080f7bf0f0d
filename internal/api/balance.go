package api

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/Spok95/shopdesk/internal/balance"
	"github.com/Spok95/shopdesk/internal/period"
	"github.com/Spok95/shopdesk/internal/report"
	"github.com/gin-gonic/gin"
)

type balanceView struct {
	Period period.Name `json:"period"`
	From   string      `json:"from"`
	To     string      `json:"to"`
	balance.Summary
}

func periodOf(c *gin.Context) period.Name {
	return period.Name(c.DefaultQuery("period", string(period.Daily)))
}

func (h *Handler) balance(c *gin.Context) {
	name := periodOf(c)
	sum, err := h.app.Balance.Period(name)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	from, to := period.Bounds(name, h.app.Balance.Now())
	c.JSON(http.StatusOK, balanceView{
		Period:  name,
		From:    from.Format(period.DateLayout),
		To:      to.Format(period.DateLayout),
		Summary: sum,
	})
}

func (h *Handler) listSnapshots(c *gin.Context) {
	c.JSON(http.StatusOK, nonNil(h.app.Snapshots.List()))
}

func (h *Handler) recordSnapshot(c *gin.Context) {
	snap, err := h.app.Balance.Record(c.Request.Context(), periodOf(c))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, snap)
}

// window возвращает предикат окна и имя файла отчёта.
func (h *Handler) window(c *gin.Context, ext string) (period.Predicate, string, error) {
	name := periodOf(c)
	now := h.app.Balance.Now()
	p, err := period.For(name, now)
	if err != nil {
		return nil, "", err
	}
	from, _ := period.Bounds(name, now)
	return p, fmt.Sprintf("bilanz-%s-%s.%s", name, from.Format(period.DateLayout), ext), nil
}

func (h *Handler) reportCSV(c *gin.Context) {
	p, filename, err := h.window(c, "csv")
	if err != nil {
		fail(c, h.log, err)
		return
	}
	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, h.app.Balance.Entries(p)); err != nil {
		fail(c, h.log, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *Handler) reportXLSX(c *gin.Context) {
	p, filename, err := h.window(c, "xlsx")
	if err != nil {
		fail(c, h.log, err)
		return
	}
	var buf bytes.Buffer
	if err := report.WriteXLSX(&buf, h.app.Balance.Entries(p), h.app.Balance.Summarize(p)); err != nil {
		fail(c, h.log, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

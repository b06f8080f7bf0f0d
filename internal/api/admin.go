package api

import (
	"io"
	"net/http"

	"github.com/Spok95/shopdesk/internal/backup"
	"github.com/Spok95/shopdesk/internal/domain/theme"
	"github.com/Spok95/shopdesk/internal/period"
	"github.com/gin-gonic/gin"
)

func (h *Handler) exportBackup(c *gin.Context) {
	data, err := backup.Export(h.app)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	name := "shopdesk-backup-" + h.app.Balance.Now().Format(period.DateLayout) + ".json"
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

func (h *Handler) importBackup(c *gin.Context) {
	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		badRequest(c, err)
		return
	}
	if _, err := backup.Import(c.Request.Context(), h.app, data); err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, h.app.Counts())
}

func (h *Handler) reset(c *gin.Context) {
	if err := h.app.Reset(c.Request.Context()); err != nil {
		fail(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) theme(c *gin.Context) {
	c.JSON(http.StatusOK, h.app.Theme.Colors())
}

type colorRequest struct {
	Value string `json:"value" binding:"required"`
}

func (h *Handler) setThemeColor(c *gin.Context) {
	var req colorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	colors, err := h.app.Theme.Set(c.Request.Context(), theme.Slot(c.Param("slot")), req.Value)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, colors)
}

func (h *Handler) resetTheme(c *gin.Context) {
	if err := h.app.Theme.Reset(c.Request.Context()); err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, h.app.Theme.Colors())
}

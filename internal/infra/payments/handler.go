package payments

import (
	"errors"
	"fmt"
	"html"
	"log/slog"
	"net/http"

	"github.com/Spok95/shopdesk/internal/collection"
)

type Handler struct {
	log *slog.Logger
	svc *Service
}

func NewHandler(log *slog.Logger, svc *Service) *Handler {
	return &Handler{log: log, svc: svc}
}

// ServeHTTP эмулирует "успешную оплату":
// /payments/pay?booking=<id> или ?sale=<id> -> paid=true и простая HTML-страница.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	kind, id := KindBooking, r.URL.Query().Get(string(KindBooking))
	if id == "" {
		kind, id = KindSale, r.URL.Query().Get(string(KindSale))
	}
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("missing booking or sale parameter"))
		return
	}

	if err := h.svc.Pay(ctx, kind, id); err != nil {
		if errors.Is(err, collection.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("record not found"))
			return
		}
		h.log.Error("failed to mark as paid",
			"kind", kind,
			"id", id,
			"err", err,
		)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("failed to update payment status"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = fmt.Fprintf(w,
		"<html><body><h1>Оплата прошла</h1><p>Запись %s помечена как оплаченная.</p></body></html>",
		html.EscapeString(id),
	)
}

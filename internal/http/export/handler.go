package export

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/padraigob/resold/internal/export"
	"github.com/padraigob/resold/internal/item"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.download)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	filter := item.ListFilter{}

	if s := r.URL.Query().Get("status"); s != "" {
		st := item.Status(s)
		filter.Status = &st
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"inventory_%s.csv\"", time.Now().Format("20060102")))

	if err := h.svc.WriteCSV(r.Context(), w, filter); err != nil {
		// Headers are gone by now; all we can do is log.
		slog.Error("failed to write csv export", "error", err)
	}
}

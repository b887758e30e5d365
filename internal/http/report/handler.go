package report

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/padraigob/resold/internal/item"
	"github.com/padraigob/resold/internal/money"
	"github.com/padraigob/resold/internal/report"
)

type Handler struct {
	svc *report.Service
}

func NewHandler(svc *report.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/summary", h.summary)
	r.Get("/monthly", h.monthly)
	r.Get("/marketplaces", h.byMarketplace)
}

type summaryResponse struct {
	TotalPurchase money.Amount `json:"total_purchase"`
	TotalSale     money.Amount `json:"total_sale"`
	Profit        money.Amount `json:"profit"`
	ROI           float64      `json:"roi"`
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	filter := item.ListFilter{}

	if s := r.URL.Query().Get("status"); s != "" {
		st := item.Status(s)
		filter.Status = &st
	}

	sum, err := h.svc.Summary(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(summaryResponse{
		TotalPurchase: sum.TotalPurchase,
		TotalSale:     sum.TotalSale,
		Profit:        sum.Profit,
		ROI:           sum.ROI,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type monthlyRowResponse struct {
	Month      string       `json:"month"`
	Count      int          `json:"count"`
	TotalSales money.Amount `json:"total_sales"`
	TotalCost  money.Amount `json:"total_cost"`
	Profit     money.Amount `json:"profit"`
}

func (h *Handler) monthly(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.Monthly(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]monthlyRowResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, monthlyRowResponse{
			Month:      row.Month,
			Count:      row.Count,
			TotalSales: row.TotalSales,
			TotalCost:  row.TotalCost,
			Profit:     row.Profit,
		})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type marketplaceRowResponse struct {
	Marketplace string       `json:"marketplace"`
	Count       int          `json:"count"`
	TotalSales  money.Amount `json:"total_sales"`
}

func (h *Handler) byMarketplace(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.ByMarketplace(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]marketplaceRowResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, marketplaceRowResponse{
			Marketplace: row.Marketplace,
			Count:       row.Count,
			TotalSales:  row.TotalSales,
		})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

package item

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/padraigob/resold/internal/item"
	"github.com/padraigob/resold/internal/money"
)

type Handler struct {
	svc *item.Service
}

func NewHandler(svc *item.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Put("/{id}/listings/{marketplace}", h.attachListing)
	r.Delete("/{id}/listings/{marketplace}", h.detachListing)
	r.Post("/{id}/sale", h.markSold)
	r.Delete("/{id}/sale", h.unsell)
}

type listingDTO struct {
	Marketplace item.Marketplace `json:"marketplace"`
	URL         string           `json:"url"`
	ListingDate *time.Time       `json:"listing_date,omitempty"`
}

type createItemRequest struct {
	Name           string       `json:"name"`
	SKU            string       `json:"sku"`
	Description    string       `json:"description"`
	PurchasePrice  money.Amount `json:"purchase_price"`
	PurchaseDate   time.Time    `json:"purchase_date"`
	PurchaseSource string       `json:"purchase_source"`
	Notes          string       `json:"notes"`
	Listings       []listingDTO `json:"listings"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	listings := make([]item.ListingParams, 0, len(req.Listings))
	for _, l := range req.Listings {
		listings = append(listings, item.ListingParams{
			Marketplace: l.Marketplace,
			URL:         l.URL,
			ListingDate: l.ListingDate,
		})
	}

	it, err := h.svc.Create(r.Context(), item.CreateParams{
		Name:           req.Name,
		SKU:            req.SKU,
		Description:    req.Description,
		PurchasePrice:  req.PurchasePrice,
		PurchaseDate:   req.PurchaseDate,
		PurchaseSource: req.PurchaseSource,
		Notes:          req.Notes,
		Listings:       listings,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(it)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := item.ListFilter{}

	if s := r.URL.Query().Get("status"); s != "" {
		st := item.Status(s)
		filter.Status = &st
	}

	if s := r.URL.Query().Get("marketplace"); s != "" {
		mp := item.Marketplace(s)
		filter.Marketplace = &mp
	}

	if s := r.URL.Query().Get("listing_url"); s != "" {
		filter.ListingURL = &s
	}

	if s := r.URL.Query().Get("search"); s != "" {
		filter.Search = &s
	}

	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			filter.Limit = &n
		}
	}

	if s := r.URL.Query().Get("offset"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 0 {
			filter.Offset = &n
		}
	}

	items, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(items)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	it, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(it)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateItemRequest struct {
	Name           *string       `json:"name,omitempty"`
	SKU            *string       `json:"sku,omitempty"`
	Description    *string       `json:"description,omitempty"`
	PurchasePrice  *money.Amount `json:"purchase_price,omitempty"`
	PurchaseDate   *time.Time    `json:"purchase_date,omitempty"`
	PurchaseSource *string       `json:"purchase_source,omitempty"`
	Notes          *string       `json:"notes,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	it, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if req.Name != nil {
		it.Name = *req.Name
	}

	if req.SKU != nil {
		it.SKU = *req.SKU
	}

	if req.Description != nil {
		it.Description = *req.Description
	}

	if req.PurchasePrice != nil {
		// A lot member's price is the lot's share of its total cost;
		// editing it here would desync the allocation. Membership changes
		// go through the lot endpoints.
		if it.LotID != nil {
			http.Error(w, "purchase price of a lot member is set by its lot", http.StatusUnprocessableEntity)
			return
		}

		if *req.PurchasePrice < 0 {
			http.Error(w, money.ErrInvalidAmount.Error(), http.StatusUnprocessableEntity)
			return
		}

		it.PurchasePrice = *req.PurchasePrice
	}

	if req.PurchaseDate != nil {
		if it.SaleDate != nil && it.SaleDate.Before(*req.PurchaseDate) {
			http.Error(w, "purchase date is after the sale date", http.StatusUnprocessableEntity)
			return
		}

		it.PurchaseDate = *req.PurchaseDate
	}

	if req.PurchaseSource != nil {
		it.PurchaseSource = *req.PurchaseSource
	}

	if req.Notes != nil {
		it.Notes = *req.Notes
	}

	if err := h.svc.Update(r.Context(), it); err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(it)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type attachListingRequest struct {
	URL         string     `json:"url"`
	ListingDate *time.Time `json:"listing_date,omitempty"`
}

func (h *Handler) attachListing(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req attachListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m := item.Marketplace(chi.URLParam(r, "marketplace"))

	it, err := h.svc.AttachListing(r.Context(), id, m, req.URL, req.ListingDate)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(it)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) detachListing(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	m := item.Marketplace(chi.URLParam(r, "marketplace"))

	it, err := h.svc.DetachListing(r.Context(), id, m)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(it)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type markSoldRequest struct {
	SalePrice   money.Amount     `json:"sale_price"`
	SaleDate    time.Time        `json:"sale_date"`
	Marketplace item.Marketplace `json:"marketplace"`
}

type markSoldResponse struct {
	Item itemResponse `json:"item"`
	// CloseOut names the marketplaces still carrying a live listing for
	// the sold item.
	CloseOut []item.Marketplace `json:"close_out"`
}

func (h *Handler) markSold(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req markSoldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	it, stale, err := h.svc.MarkSold(r.Context(), id, req.SalePrice, req.SaleDate, req.Marketplace)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(markSoldResponse{
		Item:     toResponse(it),
		CloseOut: stale,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) unsell(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	it, err := h.svc.Unsell(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(it)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, item.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, item.ErrInvalidTransition),
		errors.Is(err, item.ErrNoListingProvided),
		errors.Is(err, item.ErrEmptyURL),
		errors.Is(err, item.ErrInvalidMarketplace),
		errors.Is(err, money.ErrInvalidAmount):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

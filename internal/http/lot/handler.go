package lot

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/padraigob/resold/internal/item"
	"github.com/padraigob/resold/internal/lot"
	"github.com/padraigob/resold/internal/money"
)

type Handler struct {
	svc *lot.Service
}

func NewHandler(svc *lot.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Post("/from-items", h.createFromItems)
	r.Get("/{id}", h.get)
	r.Post("/{id}/members", h.addMembers)
	r.Delete("/{id}/members/{itemID}", h.removeMember)
}

type itemDraftDTO struct {
	Name           string    `json:"name"`
	SKU            string    `json:"sku"`
	Description    string    `json:"description"`
	PurchaseDate   time.Time `json:"purchase_date"`
	PurchaseSource string    `json:"purchase_source"`
	Notes          string    `json:"notes"`
}

func (d itemDraftDTO) toParams() item.CreateParams {
	return item.CreateParams{
		Name:           d.Name,
		SKU:            d.SKU,
		Description:    d.Description,
		PurchaseDate:   d.PurchaseDate,
		PurchaseSource: d.PurchaseSource,
		Notes:          d.Notes,
	}
}

type createLotRequest struct {
	TotalCost money.Amount   `json:"total_cost"`
	Items     []itemDraftDTO `json:"items"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createLotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	drafts := make([]item.CreateParams, 0, len(req.Items))
	for _, d := range req.Items {
		drafts = append(drafts, d.toParams())
	}

	l, members, err := h.svc.CreateWithNewItems(r.Context(), req.TotalCost, drafts)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(l, members)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type createFromItemsRequest struct {
	TotalCost money.Amount `json:"total_cost"`
	ItemIDs   []uuid.UUID  `json:"item_ids"`
}

func (h *Handler) createFromItems(w http.ResponseWriter, r *http.Request) {
	var req createFromItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	l, members, err := h.svc.CreateFromExisting(r.Context(), req.TotalCost, req.ItemIDs)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(l, members)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	l, members, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(l, members)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type addMembersRequest struct {
	ItemIDs []uuid.UUID    `json:"item_ids"`
	Items   []itemDraftDTO `json:"items"`
}

func (h *Handler) addMembers(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req addMembersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	drafts := make([]item.CreateParams, 0, len(req.Items))
	for _, d := range req.Items {
		drafts = append(drafts, d.toParams())
	}

	l, members, err := h.svc.AddMembers(r.Context(), id, req.ItemIDs, drafts)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(l, members)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) removeMember(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
	if err != nil {
		http.Error(w, "invalid item id", http.StatusBadRequest)
		return
	}

	l, members, err := h.svc.RemoveMember(r.Context(), id, itemID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(l, members)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, lot.ErrNotFound), errors.Is(err, item.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, lot.ErrItemAlreadyInLot),
		errors.Is(err, lot.ErrMemberNotFound),
		errors.Is(err, lot.ErrDuplicateItem),
		errors.Is(err, money.ErrInvalidAmount):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

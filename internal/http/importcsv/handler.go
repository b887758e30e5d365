package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/padraigob/resold/internal/importer"
	"github.com/padraigob/resold/internal/item"
)

type Handler struct {
	importSvc *importer.Service
	itemSvc   *item.Service
}

func NewHandler(importSvc *importer.Service, itemSvc *item.Service) *Handler {
	return &Handler{
		importSvc: importSvc,
		itemSvc:   itemSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type importedItem struct {
	ID     uuid.UUID   `json:"id"`
	Name   string      `json:"name"`
	Status item.Status `json:"status"`
}

type importSuccessResponse struct {
	Imported int            `json:"imported"`
	Items    []importedItem `json:"items"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	items, err := h.itemSvc.CreateBatch(r.Context(), params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	resp := importSuccessResponse{
		Imported: len(items),
		Items:    make([]importedItem, 0, len(items)),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, importedItem{
			ID:     it.ID,
			Name:   it.Name,
			Status: it.Status,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

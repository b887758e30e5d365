package lot

import (
	"time"

	"github.com/google/uuid"

	"github.com/padraigob/resold/internal/item"
	"github.com/padraigob/resold/internal/lot"
	"github.com/padraigob/resold/internal/money"
)

type lotResponse struct {
	ID        uuid.UUID        `json:"id"`
	TotalCost money.Amount     `json:"total_cost"`
	CreatedAt time.Time        `json:"created_at"`
	Summary   summaryResponse  `json:"summary"`
	Members   []memberResponse `json:"members"`
}

type summaryResponse struct {
	TotalCost     money.Amount `json:"total_cost"`
	AllocatedCost money.Amount `json:"allocated_cost"`
	RemainingCost money.Amount `json:"remaining_cost"`
}

type memberResponse struct {
	ID            uuid.UUID    `json:"id"`
	Name          string       `json:"name"`
	SKU           string       `json:"sku,omitempty"`
	PurchasePrice money.Amount `json:"purchase_price"`
	Status        item.Status  `json:"status"`
}

func toResponse(l *lot.Lot, members []*item.Item) lotResponse {
	s := l.Summarize(members)

	resp := lotResponse{
		ID:        l.ID,
		TotalCost: l.TotalCost,
		CreatedAt: l.CreatedAt,
		Summary: summaryResponse{
			TotalCost:     s.TotalCost,
			AllocatedCost: s.AllocatedCost,
			RemainingCost: s.RemainingCost,
		},
		Members: make([]memberResponse, 0, len(members)),
	}

	for _, m := range members {
		resp.Members = append(resp.Members, memberResponse{
			ID:            m.ID,
			Name:          m.Name,
			SKU:           m.SKU,
			PurchasePrice: m.PurchasePrice,
			Status:        m.Status,
		})
	}

	return resp
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddBOMComponentRequest body para POST /api/bom.
type AddBOMComponentRequest struct {
	FinishedGoodID string          `json:"finished_good_id"`
	ComponentID    string          `json:"component_id"`
	ComponentType  string          `json:"component_type"` // material | semi_finished
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
}

// BOMComponentResponse entrada de BOM con el nombre del componente resuelto.
// component_name es null si la referencia quedó huérfana.
type BOMComponentResponse struct {
	ID             string          `json:"id"`
	FinishedGoodID string          `json:"finished_good_id"`
	ComponentID    string          `json:"component_id"`
	ComponentType  string          `json:"component_type"`
	Quantity       decimal.Decimal `json:"quantity"`
	Unit           string          `json:"unit"`
	ComponentName  *string         `json:"component_name"`
	CreatedAt      time.Time       `json:"created_at"`
}

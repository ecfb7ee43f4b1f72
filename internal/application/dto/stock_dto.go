package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordMovementRequest body para POST /api/stock/movement.
// date acepta RFC3339 o YYYY-MM-DD; vacío = ahora.
type RecordMovementRequest struct {
	MONumber     string          `json:"mo_number"`
	ItemID       string          `json:"item_id"`
	ItemType     string          `json:"item_type"`     // material | semi_finished | finished
	MovementType string          `json:"movement_type"` // in | out
	Quantity     decimal.Decimal `json:"quantity"`
	Date         string          `json:"date"`
	Notes        string          `json:"notes"`
}

// MovementResponse salida de un movimiento del ledger.
type MovementResponse struct {
	ID           string          `json:"id"`
	MONumber     string          `json:"mo_number"`
	ItemID       string          `json:"item_id"`
	ItemType     string          `json:"item_type"`
	MovementType string          `json:"movement_type"`
	Quantity     decimal.Decimal `json:"quantity"`
	Date         time.Time       `json:"date"`
	Notes        string          `json:"notes"`
	CreatedBy    string          `json:"created_by"`
	CreatedAt    time.Time       `json:"created_at"`
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeIn  = "in"  // entrada
	MovementTypeOut = "out" // salida
)

// StockMovement es una entrada del ledger de stock. Append-only: nunca se
// actualiza ni se borra. Cada inserción ajusta current_stock del ítem
// referenciado en +Quantity (in) o -Quantity (out), dentro de la misma
// transacción.
type StockMovement struct {
	ID        string
	MONumber  string // orden de manufactura asociada
	ItemID    string
	ItemType  string // material | semi_finished | finished
	Type      string // in | out
	Quantity  decimal.Decimal
	Date      time.Time
	Notes     string
	CreatedBy string // UserID del autor
	CreatedAt time.Time
}

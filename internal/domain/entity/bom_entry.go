package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BOMEntry vincula un producto terminado con uno de sus componentes
// (material o semielaborado) y la cantidad requerida por unidad.
// La referencia al componente es débil: id + tipo, sin FK dura.
type BOMEntry struct {
	ID             string
	FinishedGoodID string
	ComponentID    string
	ComponentType  string // material | semi_finished
	Quantity       decimal.Decimal
	Unit           string
	CreatedAt      time.Time
}

// BOMComponent es una entrada de BOM con el nombre del componente resuelto
// contra su catálogo. ComponentName es nil si la referencia quedó huérfana.
type BOMComponent struct {
	BOMEntry
	ComponentName *string
}

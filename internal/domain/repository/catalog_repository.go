package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/sistem-barang/internal/domain/entity"
)

// CatalogRepository define el puerto de persistencia para los tres catálogos
// de ítems (DIP). kind es uno de entity.Catalog*.
type CatalogRepository interface {
	List(kind string) ([]*entity.Item, error)
	GetByID(kind, id string) (*entity.Item, error)
	Create(kind string, item *entity.Item) error
	// Update modifica los campos editables (name, description, unit, min/max).
	// Nunca toca current_stock: ese campo solo cambia vía AdjustStock.
	Update(kind string, item *entity.Item) error
	// AdjustStock aplica current_stock = current_stock + delta en un solo
	// UPDATE atómico. Usado por el ledger dentro de transacciones.
	AdjustStock(kind, id string, delta decimal.Decimal) error
}

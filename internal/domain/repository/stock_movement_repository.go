package repository

import "github.com/tu-usuario/sistem-barang/internal/domain/entity"

// StockMovementRepository define el puerto de persistencia para el ledger de
// movimientos. Solo inserciones y lecturas: el ledger es append-only.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	// List devuelve movimientos recientes, más nuevos primero. itemID e
	// itemType vacíos = sin filtro.
	List(itemID, itemType string, limit, offset int) ([]*entity.StockMovement, error)
}

package repository

import "github.com/tu-usuario/sistem-barang/internal/domain/entity"

// BOMRepository define el puerto de persistencia para el BOM.
type BOMRepository interface {
	Create(entry *entity.BOMEntry) error
	// ListByFinishedGood devuelve las entradas con el nombre del componente
	// resuelto contra su catálogo (nil si la referencia quedó huérfana).
	ListByFinishedGood(finishedGoodID string) ([]*entity.BOMComponent, error)
}

package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/sistem-barang/internal/domain/entity"
	"github.com/tu-usuario/sistem-barang/internal/domain/repository"
)

var _ repository.BOMRepository = (*BOMRepo)(nil)

// BOMRepo implementación del puerto BOMRepository sobre PostgreSQL (usable con pool o tx).
type BOMRepo struct {
	q Querier
}

// NewBOMRepository construye el adaptador del BOM. Pasar pool o tx (Querier).
func NewBOMRepository(q Querier) *BOMRepo {
	return &BOMRepo{q: q}
}

// Create persiste una entrada del BOM. La referencia componente (id + tipo)
// no se valida contra los catálogos: es una referencia débil.
func (r *BOMRepo) Create(entry *entity.BOMEntry) error {
	query := `
		INSERT INTO bom (id, finished_good_id, component_id, component_type, quantity, unit, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.FinishedGoodID, entry.ComponentID, entry.ComponentType,
		entry.Quantity, entry.Unit, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bom entry: %w", err)
	}
	return nil
}

// ListByFinishedGood devuelve las entradas del BOM con el nombre del
// componente resuelto vía LEFT JOIN según component_type. Una referencia
// huérfana produce component_name NULL, no un error.
func (r *BOMRepo) ListByFinishedGood(finishedGoodID string) ([]*entity.BOMComponent, error) {
	query := `
		SELECT b.id, b.finished_good_id, b.component_id, b.component_type, b.quantity, b.unit, b.created_at,
		       CASE
		         WHEN b.component_type = 'material' THEN m.name
		         WHEN b.component_type = 'semi_finished' THEN s.name
		       END AS component_name
		FROM bom b
		LEFT JOIN materials m ON b.component_id = m.id AND b.component_type = 'material'
		LEFT JOIN semi_finished_goods s ON b.component_id = s.id AND b.component_type = 'semi_finished'
		WHERE b.finished_good_id = $1
		ORDER BY b.created_at ASC`
	rows, err := r.q.Query(context.Background(), query, finishedGoodID)
	if err != nil {
		return nil, fmt.Errorf("list bom: %w", err)
	}
	defer rows.Close()
	var list []*entity.BOMComponent
	for rows.Next() {
		var c entity.BOMComponent
		if err := rows.Scan(&c.ID, &c.FinishedGoodID, &c.ComponentID, &c.ComponentType,
			&c.Quantity, &c.Unit, &c.CreatedAt, &c.ComponentName); err != nil {
			return nil, fmt.Errorf("scan bom entry: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

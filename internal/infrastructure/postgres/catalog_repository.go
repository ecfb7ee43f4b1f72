package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/sistem-barang/internal/domain"
	"github.com/tu-usuario/sistem-barang/internal/domain/entity"
	"github.com/tu-usuario/sistem-barang/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// catalogTables mapea el kind al nombre de tabla. Los nombres salen de aquí
// y nunca del request, así la interpolación en los queries es segura.
var catalogTables = map[string]string{
	entity.CatalogMaterial:     "materials",
	entity.CatalogSemiFinished: "semi_finished_goods",
	entity.CatalogFinished:     "finished_goods",
}

// CatalogRepo implementación del puerto CatalogRepository sobre PostgreSQL
// para los tres catálogos paralelos (usable con pool o tx).
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador de catálogos. Pasar pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

func tableFor(kind string) (string, error) {
	t, ok := catalogTables[kind]
	if !ok {
		return "", domain.ErrInvalidInput
	}
	return t, nil
}

// List devuelve los ítems de un catálogo ordenados por code ascendente.
func (r *CatalogRepo) List(kind string) ([]*entity.Item, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		SELECT id, code, name, description, unit, min_stock, max_stock, current_stock, created_at
		FROM %s ORDER BY code ASC`, table)
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.Code, &it.Name, &it.Description, &it.Unit,
			&it.MinStock, &it.MaxStock, &it.CurrentStock, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// GetByID obtiene un ítem por id dentro de su catálogo.
func (r *CatalogRepo) GetByID(kind, id string) (*entity.Item, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		SELECT id, code, name, description, unit, min_stock, max_stock, current_stock, created_at
		FROM %s WHERE id = $1`, table)
	var it entity.Item
	err = r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.Code, &it.Name, &it.Description, &it.Unit,
		&it.MinStock, &it.MaxStock, &it.CurrentStock, &it.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// Create persiste un ítem nuevo. Devuelve domain.ErrDuplicateCode si el code
// ya existe en ese catálogo (el mismo code en otro catálogo es válido: cada
// tabla tiene su propio constraint único).
func (r *CatalogRepo) Create(kind string, item *entity.Item) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (id, code, name, description, unit, min_stock, max_stock, current_stock, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`, table)
	_, err = r.q.Exec(context.Background(), query,
		item.ID, item.Code, item.Name, item.Description, item.Unit,
		item.MinStock, item.MaxStock, item.CurrentStock, item.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCode
		}
		return fmt.Errorf("insert %s: %w", table, err)
	}
	return nil
}

// Update modifica los campos editables. current_stock queda fuera del SET:
// solo AdjustStock lo mueve.
func (r *CatalogRepo) Update(kind string, item *entity.Item) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`
		UPDATE %s SET name = $2, description = $3, unit = $4, min_stock = $5, max_stock = $6
		WHERE id = $1`, table)
	_, err = r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Description, item.Unit, item.MinStock, item.MaxStock,
	)
	if err != nil {
		return fmt.Errorf("update %s: %w", table, err)
	}
	return nil
}

// AdjustStock aplica el delta con un solo UPDATE atómico. Movimientos
// concurrentes sobre el mismo ítem se serializan en la fila, sin
// read-modify-write y por tanto sin lost updates.
func (r *CatalogRepo) AdjustStock(kind, id string, delta decimal.Decimal) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`
		UPDATE %s SET current_stock = current_stock + $2 WHERE id = $1`, table)
	_, err = r.q.Exec(context.Background(), query, id, delta)
	if err != nil {
		return fmt.Errorf("adjust stock %s: %w", table, err)
	}
	return nil
}

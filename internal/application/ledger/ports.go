package ledger

import (
	"context"

	"github.com/tu-usuario/sistem-barang/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza el contrato ambos-o-ninguno del
// ledger: la inserción del movimiento y el ajuste de current_stock se
// confirman juntos o se revierten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		catalogRepo repository.CatalogRepository,
	) error) error
}

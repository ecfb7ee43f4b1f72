package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/sistem-barang/internal/application/dto"
	"github.com/tu-usuario/sistem-barang/internal/domain"
	"github.com/tu-usuario/sistem-barang/internal/domain/entity"
	"github.com/tu-usuario/sistem-barang/internal/domain/repository"
)

// UseCase registra movimientos de stock. current_stock es un agregado
// materializado del ledger y este caso de uso es su único escritor: cada
// movimiento aplica current_stock = current_stock + delta en la misma
// transacción en que se inserta la fila del ledger.
type UseCase struct {
	txRunner TxRunner
	movRepo  repository.StockMovementRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, movRepo repository.StockMovementRepository) *UseCase {
	return &UseCase{txRunner: txRunner, movRepo: movRepo}
}

// RecordMovement inserta la fila del ledger y ajusta el saldo del catálogo
// correspondiente dentro de una transacción. El delta es +quantity para "in"
// y -quantity para "out". El UPDATE es un incremento atómico, así que
// movimientos concurrentes sobre el mismo ítem no pierden actualizaciones.
//
// A propósito no se valida que quantity sea positiva ni que item_id exista
// en su catálogo (responsabilidad del caller), y un "out" mayor al saldo
// disponible deja current_stock negativo: las bodegas reales se destrackean
// y el sistema lo registra en vez de rechazarlo.
func (uc *UseCase) RecordMovement(ctx context.Context, userID string, in dto.RecordMovementRequest) (*dto.IDResponse, error) {
	if in.ItemID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidCatalog(in.ItemType) {
		return nil, domain.ErrInvalidInput
	}
	if in.MovementType != entity.MovementTypeIn && in.MovementType != entity.MovementTypeOut {
		return nil, domain.ErrInvalidInput
	}

	date, err := parseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	mov := &entity.StockMovement{
		ID:        uuid.New().String(),
		MONumber:  in.MONumber,
		ItemID:    in.ItemID,
		ItemType:  in.ItemType,
		Type:      in.MovementType,
		Quantity:  in.Quantity,
		Date:      date,
		Notes:     in.Notes,
		CreatedBy: userID,
		CreatedAt: now,
	}

	delta := in.Quantity
	if in.MovementType == entity.MovementTypeOut {
		delta = delta.Neg()
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		catalogRepo repository.CatalogRepository,
	) error {
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		return catalogRepo.AdjustStock(in.ItemType, in.ItemID, delta)
	})
	if err != nil {
		return nil, err
	}
	return &dto.IDResponse{ID: mov.ID}, nil
}

// ListMovements devuelve movimientos recientes, más nuevos primero.
// itemID e itemType vacíos = sin filtro.
func (uc *UseCase) ListMovements(itemID, itemType string, page dto.PageRequest) ([]dto.MovementResponse, error) {
	page.DefaultPage()
	if itemType != "" && !entity.ValidCatalog(itemType) {
		return nil, domain.ErrInvalidInput
	}
	movs, err := uc.movRepo.List(itemID, itemType, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.MovementResponse{
			ID:           m.ID,
			MONumber:     m.MONumber,
			ItemID:       m.ItemID,
			ItemType:     m.ItemType,
			MovementType: m.Type,
			Quantity:     m.Quantity,
			Date:         m.Date,
			Notes:        m.Notes,
			CreatedBy:    m.CreatedBy,
			CreatedAt:    m.CreatedAt,
		})
	}
	return out, nil
}

// parseDate acepta RFC3339 o YYYY-MM-DD; vacío = ahora.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

package bom

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/sistem-barang/internal/application/dto"
	"github.com/tu-usuario/sistem-barang/internal/domain"
	"github.com/tu-usuario/sistem-barang/internal/domain/entity"
	"github.com/tu-usuario/sistem-barang/internal/domain/repository"
)

// UseCase aplica reglas de negocio para el bill of materials.
type UseCase struct {
	repo repository.BOMRepository
}

// NewUseCase construye el caso de uso con el puerto de persistencia.
func NewUseCase(repo repository.BOMRepository) *UseCase {
	return &UseCase{repo: repo}
}

// AddComponent agrega una entrada al BOM de un producto terminado.
// Solo valida el tipo de componente; la existencia del componente en su
// catálogo NO se verifica: una referencia huérfana resuelve a nombre null
// en el listado en vez de fallar.
func (uc *UseCase) AddComponent(in dto.AddBOMComponentRequest) (*dto.IDResponse, error) {
	if in.FinishedGoodID == "" || in.ComponentID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidComponentType(in.ComponentType) {
		return nil, domain.ErrInvalidInput
	}
	entry := &entity.BOMEntry{
		ID:             uuid.New().String(),
		FinishedGoodID: in.FinishedGoodID,
		ComponentID:    in.ComponentID,
		ComponentType:  in.ComponentType,
		Quantity:       in.Quantity,
		Unit:           in.Unit,
		CreatedAt:      time.Now(),
	}
	if err := uc.repo.Create(entry); err != nil {
		return nil, err
	}
	return &dto.IDResponse{ID: entry.ID}, nil
}

// ListComponents devuelve las entradas del BOM de un producto terminado con
// el nombre de cada componente resuelto contra su catálogo.
func (uc *UseCase) ListComponents(finishedGoodID string) ([]dto.BOMComponentResponse, error) {
	if finishedGoodID == "" {
		return nil, domain.ErrInvalidInput
	}
	entries, err := uc.repo.ListByFinishedGood(finishedGoodID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BOMComponentResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.BOMComponentResponse{
			ID:             e.ID,
			FinishedGoodID: e.FinishedGoodID,
			ComponentID:    e.ComponentID,
			ComponentType:  e.ComponentType,
			Quantity:       e.Quantity,
			Unit:           e.Unit,
			ComponentName:  e.ComponentName,
			CreatedAt:      e.CreatedAt,
		})
	}
	return out, nil
}

package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/sistem-barang/internal/application/dto"
	"github.com/tu-usuario/sistem-barang/internal/domain"
	"github.com/tu-usuario/sistem-barang/internal/domain/entity"
	"github.com/tu-usuario/sistem-barang/internal/domain/repository"
)

// UseCase aplica reglas de negocio para los tres catálogos de ítems.
type UseCase struct {
	repo repository.CatalogRepository
}

// NewUseCase construye el caso de uso con el puerto de persistencia.
func NewUseCase(repo repository.CatalogRepository) *UseCase {
	return &UseCase{repo: repo}
}

// List devuelve los ítems del catálogo indicado ordenados por code ascendente.
func (uc *UseCase) List(kind string) ([]dto.ItemResponse, error) {
	if !entity.ValidCatalog(kind) {
		return nil, domain.ErrInvalidInput
	}
	items, err := uc.repo.List(kind)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}
	return out, nil
}

// GetByID obtiene un ítem por id dentro de su catálogo.
func (uc *UseCase) GetByID(kind, id string) (*dto.ItemResponse, error) {
	if !entity.ValidCatalog(kind) {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.repo.GetByID(kind, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	resp := toItemResponse(item)
	return &resp, nil
}

// Create inserta un ítem en el catálogo indicado. El saldo inicial es el que
// declare el cliente (0 si se omite). Devuelve domain.ErrDuplicateCode si el
// code ya existe en ese catálogo; el mismo code en otro catálogo es válido.
func (uc *UseCase) Create(kind string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if !entity.ValidCatalog(kind) {
		return nil, domain.ErrInvalidInput
	}
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	item := &entity.Item{
		ID:           uuid.New().String(),
		Code:         in.Code,
		Name:         in.Name,
		Description:  in.Description,
		Unit:         in.Unit,
		MinStock:     in.MinStock,
		MaxStock:     in.MaxStock,
		CurrentStock: in.CurrentStock,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(kind, item); err != nil {
		return nil, err
	}
	resp := toItemResponse(item)
	return &resp, nil
}

// Update modifica los campos editables de un ítem (name, description, unit,
// min/max). current_stock nunca se toca por aquí: solo vía ledger.
func (uc *UseCase) Update(kind, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	if !entity.ValidCatalog(kind) {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.repo.GetByID(kind, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	item.Name = in.Name
	item.Description = in.Description
	item.Unit = in.Unit
	item.MinStock = in.MinStock
	item.MaxStock = in.MaxStock
	if err := uc.repo.Update(kind, item); err != nil {
		return nil, err
	}
	resp := toItemResponse(item)
	return &resp, nil
}

func toItemResponse(it *entity.Item) dto.ItemResponse {
	return dto.ItemResponse{
		ID:           it.ID,
		Code:         it.Code,
		Name:         it.Name,
		Description:  it.Description,
		Unit:         it.Unit,
		MinStock:     it.MinStock,
		MaxStock:     it.MaxStock,
		CurrentStock: it.CurrentStock,
		CreatedAt:    it.CreatedAt,
	}
}

package bom

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/sistem-barang/internal/application/dto"
	"github.com/tu-usuario/sistem-barang/internal/domain"
	"github.com/tu-usuario/sistem-barang/internal/domain/entity"
)

// fakeBOMRepo BOM en memoria con resolución de nombres contra un mapa de
// componentes conocidos; los ids desconocidos resuelven a nombre nil.
type fakeBOMRepo struct {
	entries []*entity.BOMEntry
	names   map[string]string // component_id -> nombre
}

func newFakeBOMRepo() *fakeBOMRepo {
	return &fakeBOMRepo{names: make(map[string]string)}
}

func (f *fakeBOMRepo) Create(entry *entity.BOMEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeBOMRepo) ListByFinishedGood(finishedGoodID string) ([]*entity.BOMComponent, error) {
	out := make([]*entity.BOMComponent, 0)
	for _, e := range f.entries {
		if e.FinishedGoodID != finishedGoodID {
			continue
		}
		comp := &entity.BOMComponent{BOMEntry: *e}
		if name, ok := f.names[e.ComponentID]; ok {
			comp.ComponentName = &name
		}
		out = append(out, comp)
	}
	return out, nil
}

func TestAddAndListComponents(t *testing.T) {
	repo := newFakeBOMRepo()
	repo.names["mat-1"] = "Tepung Terigu"
	repo.names["semi-1"] = "Adonan Dasar"
	uc := NewUseCase(repo)

	_, err := uc.AddComponent(dto.AddBOMComponentRequest{
		FinishedGoodID: "fin-1",
		ComponentID:    "mat-1",
		ComponentType:  entity.CatalogMaterial,
		Quantity:       decimal.NewFromInt(2),
		Unit:           "kg",
	})
	require.NoError(t, err)

	_, err = uc.AddComponent(dto.AddBOMComponentRequest{
		FinishedGoodID: "fin-1",
		ComponentID:    "semi-1",
		ComponentType:  entity.CatalogSemiFinished,
		Quantity:       decimal.RequireFromString("1.5"),
		Unit:           "liter",
	})
	require.NoError(t, err)

	comps, err := uc.ListComponents("fin-1")
	require.NoError(t, err)
	require.Len(t, comps, 2)

	require.NotNil(t, comps[0].ComponentName)
	assert.Equal(t, "Tepung Terigu", *comps[0].ComponentName)
	require.NotNil(t, comps[1].ComponentName)
	assert.Equal(t, "Adonan Dasar", *comps[1].ComponentName)
}

func TestListComponentsOrphanReference(t *testing.T) {
	repo := newFakeBOMRepo()
	uc := NewUseCase(repo)

	// Componente que no existe en ningún catálogo: se acepta y el nombre
	// resuelve a null en el listado
	_, err := uc.AddComponent(dto.AddBOMComponentRequest{
		FinishedGoodID: "fin-1",
		ComponentID:    "fantasma",
		ComponentType:  entity.CatalogMaterial,
		Quantity:       decimal.NewFromInt(1),
	})
	require.NoError(t, err)

	comps, err := uc.ListComponents("fin-1")
	require.NoError(t, err)
	require.Len(t, comps, 1)
	assert.Nil(t, comps[0].ComponentName)
}

func TestAddComponentValidation(t *testing.T) {
	uc := NewUseCase(newFakeBOMRepo())

	_, err := uc.AddComponent(dto.AddBOMComponentRequest{
		ComponentID:   "mat-1",
		ComponentType: entity.CatalogMaterial,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "finished_good_id requerido")

	_, err = uc.AddComponent(dto.AddBOMComponentRequest{
		FinishedGoodID: "fin-1",
		ComponentType:  entity.CatalogMaterial,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "component_id requerido")

	// Un producto terminado no puede ser componente de otro
	_, err = uc.AddComponent(dto.AddBOMComponentRequest{
		FinishedGoodID: "fin-1",
		ComponentID:    "fin-2",
		ComponentType:  entity.CatalogFinished,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListComponentsEmptyID(t *testing.T) {
	uc := NewUseCase(newFakeBOMRepo())

	_, err := uc.ListComponents("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

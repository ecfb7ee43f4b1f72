package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/sistem-barang/internal/application/dto"
	"github.com/tu-usuario/sistem-barang/internal/domain"
	"github.com/tu-usuario/sistem-barang/internal/domain/entity"
	"github.com/tu-usuario/sistem-barang/internal/domain/repository"
)

// fakeMovRepo ledger en memoria.
type fakeMovRepo struct {
	movements []*entity.StockMovement
	failOn    error
}

func (f *fakeMovRepo) Create(m *entity.StockMovement) error {
	if f.failOn != nil {
		return f.failOn
	}
	f.movements = append(f.movements, m)
	return nil
}

func (f *fakeMovRepo) GetByID(id string) (*entity.StockMovement, error) {
	for _, m := range f.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMovRepo) List(itemID, itemType string, limit, offset int) ([]*entity.StockMovement, error) {
	out := make([]*entity.StockMovement, 0)
	// Más nuevos primero
	for i := len(f.movements) - 1; i >= 0; i-- {
		m := f.movements[i]
		if itemID != "" && m.ItemID != itemID {
			continue
		}
		if itemType != "" && m.ItemType != itemType {
			continue
		}
		out = append(out, m)
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// fakeCatalogRepo solo implementa AdjustStock de verdad; el resto no se usa
// desde el ledger.
type fakeCatalogRepo struct {
	stock  map[string]decimal.Decimal // kind/id -> saldo
	failOn error
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{stock: make(map[string]decimal.Decimal)}
}

func (f *fakeCatalogRepo) List(kind string) ([]*entity.Item, error) { return nil, nil }

func (f *fakeCatalogRepo) GetByID(kind, id string) (*entity.Item, error) { return nil, nil }

func (f *fakeCatalogRepo) Create(kind string, item *entity.Item) error { return nil }

func (f *fakeCatalogRepo) Update(kind string, item *entity.Item) error { return nil }

func (f *fakeCatalogRepo) AdjustStock(kind, id string, delta decimal.Decimal) error {
	if f.failOn != nil {
		return f.failOn
	}
	key := kind + "/" + id
	f.stock[key] = f.stock[key].Add(delta)
	return nil
}

// fakeTxRunner ejecuta fn con los fakes y simula rollback restaurando el
// estado previo si fn devuelve error.
type fakeTxRunner struct {
	movRepo     *fakeMovRepo
	catalogRepo *fakeCatalogRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	catalogRepo repository.CatalogRepository,
) error) error {
	prevMovs := len(f.movRepo.movements)
	prevStock := make(map[string]decimal.Decimal, len(f.catalogRepo.stock))
	for k, v := range f.catalogRepo.stock {
		prevStock[k] = v
	}
	if err := fn(f.movRepo, f.catalogRepo); err != nil {
		f.movRepo.movements = f.movRepo.movements[:prevMovs]
		f.catalogRepo.stock = prevStock
		return err
	}
	return nil
}

func newTestUseCase() (*UseCase, *fakeMovRepo, *fakeCatalogRepo) {
	movRepo := &fakeMovRepo{}
	catalogRepo := newFakeCatalogRepo()
	uc := NewUseCase(&fakeTxRunner{movRepo: movRepo, catalogRepo: catalogRepo}, movRepo)
	return uc, movRepo, catalogRepo
}

func mov(itemID, itemType, movType, qty string) dto.RecordMovementRequest {
	return dto.RecordMovementRequest{
		ItemID:       itemID,
		ItemType:     itemType,
		MovementType: movType,
		Quantity:     decimal.RequireFromString(qty),
	}
}

func TestRecordMovementDerivesStock(t *testing.T) {
	uc, movRepo, catalogRepo := newTestUseCase()
	ctx := context.Background()

	// Entrada de 500 kg y salida de 50 sobre el mismo material
	_, err := uc.RecordMovement(ctx, "u-1", mov("mat-1", entity.CatalogMaterial, entity.MovementTypeIn, "500"))
	require.NoError(t, err)
	_, err = uc.RecordMovement(ctx, "u-1", mov("mat-1", entity.CatalogMaterial, entity.MovementTypeOut, "50"))
	require.NoError(t, err)

	assert.Len(t, movRepo.movements, 2)
	assert.True(t, catalogRepo.stock["material/mat-1"].Equal(decimal.RequireFromString("450")),
		"esperaba 450, obtuve %s", catalogRepo.stock["material/mat-1"])
}

func TestRecordMovementPerCatalogBalances(t *testing.T) {
	uc, _, catalogRepo := newTestUseCase()
	ctx := context.Background()

	// El mismo id en catálogos distintos lleva saldos independientes
	_, err := uc.RecordMovement(ctx, "u-1", mov("x", entity.CatalogMaterial, entity.MovementTypeIn, "10"))
	require.NoError(t, err)
	_, err = uc.RecordMovement(ctx, "u-1", mov("x", entity.CatalogFinished, entity.MovementTypeIn, "3"))
	require.NoError(t, err)

	assert.True(t, catalogRepo.stock["material/x"].Equal(decimal.NewFromInt(10)))
	assert.True(t, catalogRepo.stock["finished/x"].Equal(decimal.NewFromInt(3)))
}

func TestRecordMovementAllowsNegativeStock(t *testing.T) {
	uc, _, catalogRepo := newTestUseCase()

	// Salida sin entradas previas: el saldo queda negativo, no se rechaza
	_, err := uc.RecordMovement(context.Background(), "u-1",
		mov("mat-1", entity.CatalogMaterial, entity.MovementTypeOut, "7.5"))
	require.NoError(t, err)

	assert.True(t, catalogRepo.stock["material/mat-1"].Equal(decimal.RequireFromString("-7.5")))
}

func TestRecordMovementValidation(t *testing.T) {
	uc, movRepo, _ := newTestUseCase()
	ctx := context.Background()

	cases := []struct {
		name string
		in   dto.RecordMovementRequest
	}{
		{"item_id vacío", mov("", entity.CatalogMaterial, entity.MovementTypeIn, "1")},
		{"item_type inválido", mov("mat-1", "warehouse", entity.MovementTypeIn, "1")},
		{"movement_type inválido", mov("mat-1", entity.CatalogMaterial, "transfer", "1")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.RecordMovement(ctx, "u-1", tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, movRepo.movements)
}

func TestRecordMovementBadDate(t *testing.T) {
	uc, _, _ := newTestUseCase()

	in := mov("mat-1", entity.CatalogMaterial, entity.MovementTypeIn, "1")
	in.Date = "31/08/2026"
	_, err := uc.RecordMovement(context.Background(), "u-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordMovementBothOrNeither(t *testing.T) {
	uc, movRepo, catalogRepo := newTestUseCase()
	ctx := context.Background()

	_, err := uc.RecordMovement(ctx, "u-1", mov("mat-1", entity.CatalogMaterial, entity.MovementTypeIn, "100"))
	require.NoError(t, err)

	// Si el ajuste de saldo falla, el movimiento tampoco queda registrado
	catalogRepo.failOn = errors.New("conexión perdida")
	_, err = uc.RecordMovement(ctx, "u-1", mov("mat-1", entity.CatalogMaterial, entity.MovementTypeIn, "100"))
	require.Error(t, err)

	assert.Len(t, movRepo.movements, 1)
	assert.True(t, catalogRepo.stock["material/mat-1"].Equal(decimal.NewFromInt(100)))
}

func TestRecordMovementInsertFailure(t *testing.T) {
	uc, movRepo, catalogRepo := newTestUseCase()

	movRepo.failOn = errors.New("tabla llena")
	_, err := uc.RecordMovement(context.Background(), "u-1",
		mov("mat-1", entity.CatalogMaterial, entity.MovementTypeIn, "100"))
	require.Error(t, err)

	assert.Empty(t, movRepo.movements)
	assert.Empty(t, catalogRepo.stock)
}

func TestRecordMovementCarriesActor(t *testing.T) {
	uc, movRepo, _ := newTestUseCase()

	in := mov("mat-1", entity.CatalogMaterial, entity.MovementTypeIn, "1")
	in.MONumber = "MO-2026-001"
	in.Notes = "recepción proveedor"
	out, err := uc.RecordMovement(context.Background(), "u-42", in)
	require.NoError(t, err)
	require.NotNil(t, out)

	require.Len(t, movRepo.movements, 1)
	m := movRepo.movements[0]
	assert.Equal(t, out.ID, m.ID)
	assert.Equal(t, "u-42", m.CreatedBy)
	assert.Equal(t, "MO-2026-001", m.MONumber)
	assert.Equal(t, "recepción proveedor", m.Notes)
}

func TestListMovementsNewestFirstAndFilter(t *testing.T) {
	uc, _, _ := newTestUseCase()
	ctx := context.Background()

	_, err := uc.RecordMovement(ctx, "u-1", mov("mat-1", entity.CatalogMaterial, entity.MovementTypeIn, "10"))
	require.NoError(t, err)
	_, err = uc.RecordMovement(ctx, "u-1", mov("fin-1", entity.CatalogFinished, entity.MovementTypeIn, "2"))
	require.NoError(t, err)
	_, err = uc.RecordMovement(ctx, "u-1", mov("mat-1", entity.CatalogMaterial, entity.MovementTypeOut, "4"))
	require.NoError(t, err)

	all, err := uc.ListMovements("", "", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, entity.MovementTypeOut, all[0].MovementType)

	onlyMat, err := uc.ListMovements("mat-1", entity.CatalogMaterial, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, onlyMat, 2)

	_, err = uc.ListMovements("", "warehouse", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

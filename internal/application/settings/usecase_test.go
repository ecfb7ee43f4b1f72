package settings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/sistem-barang/internal/application/dto"
	"github.com/tu-usuario/sistem-barang/internal/domain"
	"github.com/tu-usuario/sistem-barang/internal/domain/entity"
)

// fakeSettingsRepo fila única en memoria.
type fakeSettingsRepo struct {
	row *entity.Settings
}

func (f *fakeSettingsRepo) Get() (*entity.Settings, error) {
	return f.row, nil
}

func (f *fakeSettingsRepo) Update(s *entity.Settings) error {
	f.row = s
	return nil
}

func TestGetAndUpdate(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeSettingsRepo{row: &entity.Settings{
		ID:          1,
		Language:    "indonesian",
		SystemTitle: "Sistem Pengontrol Barang",
		CreatedAt:   created,
		UpdatedAt:   created,
	}}
	uc := NewUseCase(repo)

	got, err := uc.Get()
	require.NoError(t, err)
	assert.Equal(t, "indonesian", got.Language)
	assert.Equal(t, "Sistem Pengontrol Barang", got.SystemTitle)

	updated, err := uc.Update(dto.UpdateSettingsRequest{
		Language:    "english",
		SystemTitle: "Goods Control System",
		SystemLogo:  "logo.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "english", updated.Language)
	assert.Equal(t, "Goods Control System", updated.SystemTitle)
	assert.Equal(t, "logo.png", updated.SystemLogo)
	assert.True(t, updated.UpdatedAt.After(created), "updated_at debe avanzar")
	assert.Equal(t, created, updated.CreatedAt)
}

func TestGetMissingRow(t *testing.T) {
	uc := NewUseCase(&fakeSettingsRepo{})

	_, err := uc.Get()
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Update(dto.UpdateSettingsRequest{Language: "english"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

package settings

import (
	"time"

	"github.com/tu-usuario/sistem-barang/internal/application/dto"
	"github.com/tu-usuario/sistem-barang/internal/domain"
	"github.com/tu-usuario/sistem-barang/internal/domain/repository"
)

// UseCase lee y escribe la fila única de configuración global.
type UseCase struct {
	repo repository.SettingsRepository
}

// NewUseCase construye el caso de uso con el puerto de persistencia.
func NewUseCase(repo repository.SettingsRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Get devuelve la configuración actual.
func (uc *UseCase) Get() (*dto.SettingsResponse, error) {
	s, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.SettingsResponse{
		ID:          s.ID,
		Language:    s.Language,
		SystemTitle: s.SystemTitle,
		SystemLogo:  s.SystemLogo,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}, nil
}

// Update sobrescribe language, system_title y system_logo y bumpea
// updated_at. No se guarda historial.
func (uc *UseCase) Update(in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	s, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	s.Language = in.Language
	s.SystemTitle = in.SystemTitle
	s.SystemLogo = in.SystemLogo
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	return uc.Get()
}

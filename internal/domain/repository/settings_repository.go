package repository

import "github.com/tu-usuario/sistem-barang/internal/domain/entity"

// SettingsRepository define el puerto para la fila única de configuración.
type SettingsRepository interface {
	Get() (*entity.Settings, error)
	// Update persiste language, system_title y system_logo y bumpea updated_at.
	Update(settings *entity.Settings) error
}

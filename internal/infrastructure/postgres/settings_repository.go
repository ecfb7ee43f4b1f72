package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/sistem-barang/internal/domain/entity"
	"github.com/tu-usuario/sistem-barang/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación del puerto SettingsRepository sobre PostgreSQL.
// La tabla tiene una sola fila (id = 1), sembrada en el bootstrap.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador de configuración.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get devuelve la fila de configuración.
func (r *SettingsRepo) Get() (*entity.Settings, error) {
	query := `
		SELECT id, language, system_title, system_logo, created_at, updated_at
		FROM settings ORDER BY id LIMIT 1`
	var s entity.Settings
	err := r.q.QueryRow(context.Background(), query).Scan(
		&s.ID, &s.Language, &s.SystemTitle, &s.SystemLogo, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Update sobrescribe los campos configurables y bumpea updated_at.
func (r *SettingsRepo) Update(settings *entity.Settings) error {
	query := `
		UPDATE settings
		SET language = $2, system_title = $3, system_logo = $4, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		settings.ID, settings.Language, settings.SystemTitle, settings.SystemLogo,
	)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}

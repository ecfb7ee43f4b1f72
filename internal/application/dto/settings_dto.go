package dto

import "time"

// UpdateSettingsRequest body para PUT /api/settings.
type UpdateSettingsRequest struct {
	Language    string `json:"language"`
	SystemTitle string `json:"system_title"`
	SystemLogo  string `json:"system_logo"`
}

// SettingsResponse salida de la fila única de configuración.
type SettingsResponse struct {
	ID          int64     `json:"id"`
	Language    string    `json:"language"`
	SystemTitle string    `json:"system_title"`
	SystemLogo  string    `json:"system_logo"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

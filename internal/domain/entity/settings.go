package entity

import "time"

// Settings es la configuración global del sistema: una sola fila (id = 1).
type Settings struct {
	ID          int64
	Language    string
	SystemTitle string
	SystemLogo  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

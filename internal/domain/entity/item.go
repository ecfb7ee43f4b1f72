package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Catálogos paralelos del sistema. Los valores coinciden con item_type en
// stock_movements y component_type en bom.
const (
	CatalogMaterial     = "material"
	CatalogSemiFinished = "semi_finished"
	CatalogFinished     = "finished"
)

// ValidCatalog indica si kind es uno de los tres catálogos.
func ValidCatalog(kind string) bool {
	switch kind {
	case CatalogMaterial, CatalogSemiFinished, CatalogFinished:
		return true
	}
	return false
}

// ValidComponentType indica si kind puede usarse como componente de un BOM.
// Los productos terminados nunca son componentes (catálogos de nivel inferior).
func ValidComponentType(kind string) bool {
	return kind == CatalogMaterial || kind == CatalogSemiFinished
}

// Item representa una fila de cualquiera de los tres catálogos (materiales,
// semielaborados, productos terminados). El esquema es idéntico entre ellos;
// Code es único dentro de su propio catálogo.
//
// CurrentStock es un agregado materializado: siempre debe ser igual a la suma
// con signo de los movimientos que referencian el ítem. El único escritor del
// delta es el ledger de movimientos (ver application/ledger).
type Item struct {
	ID           string
	Code         string
	Name         string
	Description  string
	Unit         string
	MinStock     decimal.Decimal
	MaxStock     decimal.Decimal
	CurrentStock decimal.Decimal
	CreatedAt    time.Time
}

package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/sistem-barang/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// Migrate crea el esquema si no existe. Los catálogos comparten la misma
// forma; el code es único por tabla, por eso el mismo code puede existir en
// catálogos distintos.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			username TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS materials (
			id TEXT PRIMARY KEY,
			code TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			unit TEXT NOT NULL DEFAULT '',
			min_stock NUMERIC(14,4) NOT NULL DEFAULT 0,
			max_stock NUMERIC(14,4) NOT NULL DEFAULT 0,
			current_stock NUMERIC(14,4) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS semi_finished_goods (
			id TEXT PRIMARY KEY,
			code TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			unit TEXT NOT NULL DEFAULT '',
			min_stock NUMERIC(14,4) NOT NULL DEFAULT 0,
			max_stock NUMERIC(14,4) NOT NULL DEFAULT 0,
			current_stock NUMERIC(14,4) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS finished_goods (
			id TEXT PRIMARY KEY,
			code TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			unit TEXT NOT NULL DEFAULT '',
			min_stock NUMERIC(14,4) NOT NULL DEFAULT 0,
			max_stock NUMERIC(14,4) NOT NULL DEFAULT 0,
			current_stock NUMERIC(14,4) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		// component_id es una referencia débil (id + tipo), sin FK: las
		// huérfanas resuelven a nombre NULL en el listado.
		`CREATE TABLE IF NOT EXISTS bom (
			id TEXT PRIMARY KEY,
			finished_good_id TEXT NOT NULL,
			component_id TEXT NOT NULL,
			component_type TEXT NOT NULL CHECK (component_type IN ('material', 'semi_finished')),
			quantity NUMERIC(14,4) NOT NULL,
			unit TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS stock_movements (
			id TEXT PRIMARY KEY,
			mo_number TEXT NOT NULL DEFAULT '',
			item_id TEXT NOT NULL,
			item_type TEXT NOT NULL CHECK (item_type IN ('material', 'semi_finished', 'finished')),
			movement_type TEXT NOT NULL CHECK (movement_type IN ('in', 'out')),
			quantity NUMERIC(14,4) NOT NULL,
			date TIMESTAMPTZ NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			created_by TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_stock_movements_item ON stock_movements (item_id, item_type)`,
		`CREATE INDEX IF NOT EXISTS idx_bom_finished_good ON bom (finished_good_id)`,
		`CREATE TABLE IF NOT EXISTS settings (
			id BIGINT PRIMARY KEY,
			language TEXT NOT NULL,
			system_title TEXT NOT NULL,
			system_logo TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}
	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// SeedOptions controla el sembrado inicial.
type SeedOptions struct {
	AdminPassword string
	SampleData    bool
}

// Seed inserta los datos iniciales en el primer arranque: usuario admin,
// fila de settings y, opcionalmente, un catálogo de ejemplo con su BOM.
// Idempotente: no toca nada si los datos ya existen.
func Seed(ctx context.Context, pool *pgxpool.Pool, log *logger.Logger, opts SeedOptions) error {
	if err := seedAdmin(ctx, pool, log, opts.AdminPassword); err != nil {
		return err
	}
	if err := seedSettings(ctx, pool); err != nil {
		return err
	}
	if opts.SampleData {
		if err := seedSampleData(ctx, pool, log); err != nil {
			return err
		}
	}
	return nil
}

func seedAdmin(ctx context.Context, pool *pgxpool.Pool, log *logger.Logger, password string) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	_, err = pool.Exec(ctx,
		`INSERT INTO users (id, username, password_hash, role) VALUES ($1, 'admin', $2, 'admin')`,
		uuid.New().String(), string(hash),
	)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	log.Info().Msg("usuario admin inicial creado")
	return nil
}

func seedSettings(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		INSERT INTO settings (id, language, system_title)
		VALUES (1, 'indonesian', 'Sistem Pengontrol Barang')
		ON CONFLICT (id) DO NOTHING`)
	if err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}
	return nil
}

// seedSampleData carga el catálogo de demostración (materiales, semielaborados,
// productos terminados y el BOM de FIN001) solo si los catálogos están vacíos.
func seedSampleData(ctx context.Context, pool *pgxpool.Pool, log *logger.Logger) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM materials`).Scan(&count); err != nil {
		return fmt.Errorf("seed sample data: %w", err)
	}
	if count > 0 {
		return nil
	}

	type sampleItem struct {
		code, name, description, unit    string
		minStock, maxStock, currentStock int64
	}
	insertItems := func(table string, items []sampleItem) (map[string]string, error) {
		ids := make(map[string]string, len(items))
		for _, it := range items {
			id := uuid.New().String()
			_, err := pool.Exec(ctx, fmt.Sprintf(`
				INSERT INTO %s (id, code, name, description, unit, min_stock, max_stock, current_stock)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`, table),
				id, it.code, it.name, it.description, it.unit,
				decimal.NewFromInt(it.minStock), decimal.NewFromInt(it.maxStock), decimal.NewFromInt(it.currentStock),
			)
			if err != nil {
				return nil, fmt.Errorf("seed %s: %w", table, err)
			}
			ids[it.code] = id
		}
		return ids, nil
	}

	matIDs, err := insertItems("materials", []sampleItem{
		{"MAT001", "Bahan Baku A", "Deskripsi bahan baku A", "kg", 100, 1000, 500},
		{"MAT002", "Bahan Baku B", "Deskripsi bahan baku B", "liter", 50, 500, 250},
	})
	if err != nil {
		return err
	}
	if _, err := insertItems("semi_finished_goods", []sampleItem{
		{"SEMI001", "Komponen A", "Komponen setengah jadi A", "pcs", 50, 200, 100},
		{"SEMI002", "Komponen B", "Komponen setengah jadi B", "pcs", 30, 150, 75},
	}); err != nil {
		return err
	}
	finIDs, err := insertItems("finished_goods", []sampleItem{
		{"FIN001", "Produk A", "Produk jadi A", "unit", 20, 100, 40},
		{"FIN002", "Produk B", "Produk jadi B", "unit", 15, 80, 30},
	})
	if err != nil {
		return err
	}

	// BOM de ejemplo: FIN001 = 2 kg MAT001 + 1.5 liter MAT002
	bomEntries := []struct {
		componentCode string
		quantity      decimal.Decimal
		unit          string
	}{
		{"MAT001", decimal.NewFromInt(2), "kg"},
		{"MAT002", decimal.RequireFromString("1.5"), "liter"},
	}
	for _, e := range bomEntries {
		_, err := pool.Exec(ctx, `
			INSERT INTO bom (id, finished_good_id, component_id, component_type, quantity, unit)
			VALUES ($1, $2, $3, 'material', $4, $5)`,
			uuid.New().String(), finIDs["FIN001"], matIDs[e.componentCode], e.quantity, e.unit,
		)
		if err != nil {
			return fmt.Errorf("seed bom: %w", err)
		}
	}

	log.Info().Msg("catálogo de ejemplo sembrado")
	return nil
}

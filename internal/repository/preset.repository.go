package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"vantagelite/internal/domain"
)

// PresetRepository stores saved parameter combinations. The engine
// never touches it; resolvers and the CLI do.
type PresetRepository interface {
	Add(ctx context.Context, preset domain.Preset) error
	List(ctx context.Context) ([]domain.Preset, error)
	Delete(ctx context.Context, id string) error
}

var _ PresetRepository = (*sqlitePresetRepositoryHandler)(nil)

const sqlitePresetSchema = `
CREATE TABLE IF NOT EXISTS preset (
	preset_id TEXT PRIMARY KEY,
	symbol TEXT NOT NULL,
	sma_window INTEGER NOT NULL,
	alt_window INTEGER NOT NULL,
	days INTEGER NOT NULL,
	created_at TEXT NOT NULL
);`

// NewSqlitePresetRepository ensures the preset table exists on the
// given sqlite connection. created_at is stored as RFC3339 text since
// sqlite has no native timestamp type.
func NewSqlitePresetRepository(db *sql.DB) (PresetRepository, error) {
	if _, err := db.Exec(sqlitePresetSchema); err != nil {
		return nil, fmt.Errorf("failed to create preset table: %w", err)
	}

	return sqlitePresetRepositoryHandler{Db: db}, nil
}

type sqlitePresetRepositoryHandler struct {
	Db *sql.DB
}

func (h sqlitePresetRepositoryHandler) Add(ctx context.Context, preset domain.Preset) error {
	_, err := h.Db.ExecContext(
		ctx,
		`INSERT INTO preset (preset_id, symbol, sma_window, alt_window, days, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		preset.ID,
		preset.Symbol,
		preset.Window,
		preset.AltWindow,
		preset.Days,
		preset.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to insert preset %s: %w", preset.ID, err)
	}
	return nil
}

func (h sqlitePresetRepositoryHandler) List(ctx context.Context) ([]domain.Preset, error) {
	rows, err := h.Db.QueryContext(
		ctx,
		`SELECT preset_id, symbol, sma_window, alt_window, days, created_at
		 FROM preset ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}
	defer rows.Close()

	out := []domain.Preset{}
	for rows.Next() {
		var (
			preset    domain.Preset
			createdAt string
		)
		if err := rows.Scan(&preset.ID, &preset.Symbol, &preset.Window, &preset.AltWindow, &preset.Days, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan preset row: %w", err)
		}
		preset.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("unparseable created_at %q: %w", createdAt, err)
		}
		out = append(out, preset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading preset rows: %w", err)
	}

	return out, nil
}

func (h sqlitePresetRepositoryHandler) Delete(ctx context.Context, id string) error {
	result, err := h.Db.ExecContext(ctx, `DELETE FROM preset WHERE preset_id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete preset %s: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrPresetNotFound
	}
	return nil
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"vantagelite/internal/domain"
)

var _ PresetRepository = (*postgresPresetRepositoryHandler)(nil)

const postgresPresetSchema = `
CREATE TABLE IF NOT EXISTS preset (
	preset_id TEXT PRIMARY KEY,
	symbol TEXT NOT NULL,
	sma_window INTEGER NOT NULL,
	alt_window INTEGER NOT NULL,
	days INTEGER NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);`

func NewPostgresPresetRepository(db *sql.DB) (PresetRepository, error) {
	if _, err := db.Exec(postgresPresetSchema); err != nil {
		return nil, fmt.Errorf("failed to create preset table: %w", err)
	}

	return postgresPresetRepositoryHandler{Db: db}, nil
}

type postgresPresetRepositoryHandler struct {
	Db *sql.DB
}

func (h postgresPresetRepositoryHandler) Add(ctx context.Context, preset domain.Preset) error {
	_, err := h.Db.ExecContext(
		ctx,
		`INSERT INTO preset (preset_id, symbol, sma_window, alt_window, days, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		preset.ID,
		preset.Symbol,
		preset.Window,
		preset.AltWindow,
		preset.Days,
		preset.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert preset %s: %w", preset.ID, err)
	}
	return nil
}

func (h postgresPresetRepositoryHandler) List(ctx context.Context) ([]domain.Preset, error) {
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
		var preset domain.Preset
		if err := rows.Scan(&preset.ID, &preset.Symbol, &preset.Window, &preset.AltWindow, &preset.Days, &preset.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan preset row: %w", err)
		}
		out = append(out, preset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading preset rows: %w", err)
	}

	return out, nil
}

func (h postgresPresetRepositoryHandler) Delete(ctx context.Context, id string) error {
	result, err := h.Db.ExecContext(ctx, `DELETE FROM preset WHERE preset_id = $1`, id)
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

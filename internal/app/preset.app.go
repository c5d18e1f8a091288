package app

import (
	"context"
	"fmt"
	"time"

	"vantagelite/internal/domain"
	"vantagelite/internal/metrics"
	"vantagelite/internal/repository"

	"github.com/google/uuid"
)

type PresetHandler struct {
	PresetRepository repository.PresetRepository
}

type SavePresetInput struct {
	Symbol    string
	Window    int
	AltWindow int
	Days      int
}

// SavePreset validates the combination with the same rules as a
// backtest run, so anything saved is guaranteed runnable later.
func (h PresetHandler) SavePreset(ctx context.Context, in SavePresetInput) (*domain.Preset, error) {
	err := validateBacktestInput(BacktestInput{
		Symbol:    in.Symbol,
		Window:    in.Window,
		AltWindow: in.AltWindow,
		Days:      in.Days,
	})
	if err != nil {
		return nil, err
	}

	preset := domain.Preset{
		ID:        uuid.NewString(),
		Symbol:    normalizeSymbol(in.Symbol),
		Window:    in.Window,
		AltWindow: in.AltWindow,
		Days:      in.Days,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.PresetRepository.Add(ctx, preset); err != nil {
		return nil, fmt.Errorf("failed to save preset: %w", err)
	}
	metrics.PresetWritesTotal.Inc()

	return &preset, nil
}

func (h PresetHandler) ListPresets(ctx context.Context) ([]domain.Preset, error) {
	presets, err := h.PresetRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}
	return presets, nil
}

func (h PresetHandler) DeletePreset(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.NewInvalidParameterError("id", "must be a uuid")
	}
	return h.PresetRepository.Delete(ctx, id)
}

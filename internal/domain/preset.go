package domain

import "time"

// Preset is a saved parameter combination. Persistence lives behind
// repository.PresetRepository so the engine stays a pure function of
// its inputs.
type Preset struct {
	ID        string    `json:"id"`
	Symbol    string    `json:"symbol"`
	Window    int       `json:"window"`
	AltWindow int       `json:"alt_window"`
	Days      int       `json:"days"`
	CreatedAt time.Time `json:"created_at"`
}

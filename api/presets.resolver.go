package api

import (
	"errors"
	"fmt"

	"vantagelite/internal/app"
	"vantagelite/internal/domain"

	"github.com/gin-gonic/gin"
)

type savePresetRequest struct {
	Symbol    string `json:"symbol"`
	Window    int    `json:"window"`
	AltWindow int    `json:"alt_window"`
	Days      int    `json:"days"`
}

func (m ApiHandler) savePreset(c *gin.Context) {
	var requestBody savePresetRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to parse request body: %w", err), c, 400)
		return
	}

	preset, err := m.PresetHandler.SavePreset(c.Request.Context(), app.SavePresetInput{
		Symbol:    requestBody.Symbol,
		Window:    requestBody.Window,
		AltWindow: requestBody.AltWindow,
		Days:      requestBody.Days,
	})
	if err != nil {
		var invalidErr domain.InvalidParameterError
		if errors.As(err, &invalidErr) {
			returnInvalidParameterJson(invalidErr, c)
			return
		}
		returnErrorJson(fmt.Errorf("failed to save preset: %w", err), c)
		return
	}

	c.JSON(200, preset)
}

func (m ApiHandler) listPresets(c *gin.Context) {
	presets, err := m.PresetHandler.ListPresets(c.Request.Context())
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to list presets: %w", err), c)
		return
	}

	c.JSON(200, presets)
}

func (m ApiHandler) deletePreset(c *gin.Context) {
	id := c.Param("id")

	err := m.PresetHandler.DeletePreset(c.Request.Context(), id)
	if err != nil {
		var invalidErr domain.InvalidParameterError
		switch {
		case errors.As(err, &invalidErr):
			returnInvalidParameterJson(invalidErr, c)
		case errors.Is(err, domain.ErrPresetNotFound):
			returnErrorJsonCode(err, c, 404)
		default:
			returnErrorJson(fmt.Errorf("failed to delete preset: %w", err), c)
		}
		return
	}

	c.JSON(200, map[string]string{"message": "ok"})
}

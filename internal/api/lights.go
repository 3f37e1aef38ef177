package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/hwlight/lightsd/internal/api/models"
	"github.com/hwlight/lightsd/internal/events"
	"github.com/hwlight/lightsd/internal/hwlight"
)

// SetLightStateRequest sets the logical state of one light.
type SetLightStateRequest struct {
	Light string `path:"light" example:"notifications" doc:"Light name"`
	Body  models.LightStateData
}

// registerLightRoutes registers the light listing and control endpoints.
func (s *Server) registerLightRoutes() {
	// List supported lights
	huma.Register(s.api, huma.Operation{
		OperationID: "list-lights",
		Method:      http.MethodGet,
		Path:        "/api/lights",
		Summary:     "List Lights",
		Description: "List the supported lights in priority order with their ordinals. The set is fixed per device.",
		Tags:        []string{"lights"},
		Errors:      []int{401},
		Security:    withAuth(),
	}, func(ctx context.Context, input *struct{}) (*models.LightsResponse, error) {
		lights := s.options.Lights.Lights()

		data := models.LightsData{
			Lights: make([]models.LightData, 0, len(lights)),
			Count:  len(lights),
		}
		for _, l := range lights {
			data.Lights = append(data.Lights, models.LightData{
				ID:      l.ID,
				Type:    l.Type.String(),
				Ordinal: l.Ordinal,
			})
		}

		return &models.LightsResponse{Body: data}, nil
	})

	// Set light state
	huma.Register(s.api, huma.Operation{
		OperationID: "set-light-state",
		Method:      http.MethodPut,
		Path:        "/api/lights/{light}/state",
		Summary:     "Set Light State",
		Description: "Replace the logical state of one light. The hardware shared by the light's group re-renders under priority arbitration.",
		Tags:        []string{"lights"},
		Errors:      []int{400, 401},
		Security:    withAuth(),
	}, func(ctx context.Context, input *SetLightStateRequest) (*struct{}, error) {
		lightType, err := hwlight.ParseType(input.Light)
		if err != nil {
			return nil, huma.Error400BadRequest("Unsupported light", err)
		}

		state, err := stateFromAPI(input.Body)
		if err != nil {
			return nil, huma.Error400BadRequest("Invalid light state", err)
		}

		if err := s.options.Lights.SetState(lightType, state); err != nil {
			return nil, huma.Error400BadRequest("Failed to set light state", err)
		}

		if s.eventBus != nil {
			s.eventBus.Publish(events.LightChangedEvent{
				Light:      lightType.String(),
				Color:      fmt.Sprintf("%08X", state.Color),
				FlashMode:  state.FlashMode.String(),
				FlashOnMs:  state.FlashOnMs,
				FlashOffMs: state.FlashOffMs,
				Timestamp:  time.Now().Format(time.RFC3339),
			})
		}

		return &struct{}{}, nil
	})

	s.logger.Info("Light routes registered")
}

// stateFromAPI converts the API state body to a domain state.
func stateFromAPI(body models.LightStateData) (hwlight.State, error) {
	color, err := ParseColor(body.Color)
	if err != nil {
		return hwlight.State{}, err
	}

	flashMode, err := hwlight.ParseFlashMode(body.FlashMode)
	if err != nil {
		return hwlight.State{}, err
	}

	brightnessMode, err := parseBrightnessMode(body.BrightnessMode)
	if err != nil {
		return hwlight.State{}, err
	}

	return hwlight.State{
		Color:          color,
		FlashMode:      flashMode,
		FlashOnMs:      body.FlashOnMs,
		FlashOffMs:     body.FlashOffMs,
		BrightnessMode: brightnessMode,
	}, nil
}

// ParseColor parses a packed AARRGGBB hex color. A 0x or # prefix is
// accepted; an empty string is fully off.
func ParseColor(raw string) (uint32, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(raw, "0x"), "#")
	if trimmed == "" {
		return 0, nil
	}

	color, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", raw, err)
	}
	return uint32(color), nil
}

func parseBrightnessMode(name string) (hwlight.BrightnessMode, error) {
	switch name {
	case "", "user":
		return hwlight.BrightnessUser, nil
	case "sensor":
		return hwlight.BrightnessSensor, nil
	case "low_persistence":
		return hwlight.BrightnessLowPersistence, nil
	default:
		return 0, fmt.Errorf("unknown brightness mode %q", name)
	}
}

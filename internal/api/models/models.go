package models

// Health check models
type HealthData struct {
	Status  string `json:"status" example:"ok" doc:"Service status"`
	Message string `json:"message" example:"API is healthy" doc:"Status message"`
}

type HealthResponse struct {
	Body HealthData
}

// Version models
type VersionData struct {
	Version   string `json:"version" example:"1.2.0" doc:"Application version"`
	GitCommit string `json:"git_commit" example:"a1b2c3d" doc:"Git commit hash"`
	BuildDate string `json:"build_date" example:"2025-01-27T10:30:00Z" doc:"Build timestamp"`
	GoVersion string `json:"go_version" example:"go1.24.11" doc:"Go toolchain version"`
	Platform  string `json:"platform" example:"linux/arm64" doc:"Build platform"`
}

type VersionResponse struct {
	Body VersionData
}

// Light models

// LightData describes one supported light.
type LightData struct {
	ID      int    `json:"id" example:"1" doc:"Numeric light identifier"`
	Type    string `json:"type" example:"notifications" doc:"Light name"`
	Ordinal int    `json:"ordinal" example:"1" doc:"Position in priority order, 0 is most important"`
}

type LightsData struct {
	Lights []LightData `json:"lights" doc:"Supported lights in priority order"`
	Count  int         `json:"count" example:"5" doc:"Number of supported lights"`
}

type LightsResponse struct {
	Body LightsData
}

// LightStateData is the logical state request for one light.
type LightStateData struct {
	Color          string `json:"color" example:"FF2196F3" doc:"Packed AARRGGBB color in hex, optional 0x or # prefix. RGB of zero turns the light off."`
	FlashMode      string `json:"flash_mode,omitempty" example:"timed" doc:"Flash mode: none (default) or timed"`
	FlashOnMs      int32  `json:"flash_on_ms,omitempty" example:"1000" doc:"Blink on duration in milliseconds (timed mode)"`
	FlashOffMs     int32  `json:"flash_off_ms,omitempty" example:"3000" doc:"Blink off duration in milliseconds (timed mode)"`
	BrightnessMode string `json:"brightness_mode,omitempty" example:"user" doc:"Brightness origin: user (default), sensor, or low_persistence"`
}

package events

// Event type constants for kelindar/event.
const (
	TypeLightChanged uint32 = iota + 1
	TypeLightRendered
	TypeLogEntry
)

// Event interface required by kelindar/event.
type Event interface {
	Type() uint32
}

// LightChangedEvent represents an accepted state-set request for a light.
type LightChangedEvent struct {
	Light      string `json:"light" example:"notifications" doc:"Light name"`
	Color      string `json:"color" example:"FF2196F3" doc:"Requested AARRGGBB color"`
	FlashMode  string `json:"flash_mode" example:"timed" doc:"Flash mode: none or timed"`
	FlashOnMs  int32  `json:"flash_on_ms" example:"1000" doc:"Blink on duration in milliseconds"`
	FlashOffMs int32  `json:"flash_off_ms" example:"3000" doc:"Blink off duration in milliseconds"`
	Timestamp  string `json:"timestamp" example:"2025-01-27T10:30:00Z" doc:"Event timestamp"`
}

// Type returns the event type identifier for LightChangedEvent.
func (e LightChangedEvent) Type() uint32 { return TypeLightChanged }

// LightRenderedEvent represents a hardware render decided by arbitration.
type LightRenderedEvent struct {
	Light      string `json:"light" example:"battery" doc:"Light whose state won the hardware"`
	Handler    string `json:"handler" example:"notification" doc:"Handler kind that rendered"`
	Color      string `json:"color" example:"FFFF0000" doc:"Rendered AARRGGBB color"`
	Brightness int    `json:"brightness" example:"152" doc:"Hardware brightness value written"`
	Blinking   bool   `json:"blinking" example:"true" doc:"Whether a blink program was armed"`
	Timestamp  string `json:"timestamp" example:"2025-01-27T10:30:00Z" doc:"Event timestamp"`
}

// Type returns the event type identifier for LightRenderedEvent.
func (e LightRenderedEvent) Type() uint32 { return TypeLightRendered }

// LogEntryEvent represents a log entry streamed to SSE clients.
type LogEntryEvent struct {
	Timestamp  string         `json:"timestamp" example:"2025-01-27T10:30:00.123Z" doc:"Log timestamp"`
	Level      string         `json:"level" example:"info" doc:"Log level"`
	Module     string         `json:"module" example:"hwlight" doc:"Module that emitted the entry"`
	Message    string         `json:"message" example:"Light state updated" doc:"Log message"`
	Attributes map[string]any `json:"attributes,omitempty" doc:"Structured log attributes"`
}

// Type returns the event type identifier for LogEntryEvent.
func (e LogEntryEvent) Type() uint32 { return TypeLogEntry }

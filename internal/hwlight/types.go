package hwlight

import "fmt"

// Type identifies one of the logical lights the daemon arbitrates.
// The declaration order is significant: it is both the priority order
// (Attention highest) and the enumeration order reported to clients.
type Type int

const (
	Attention Type = iota
	Notifications
	Battery
	Backlight
	Buttons
)

// String returns the lowercase name used in the API and CLI.
func (t Type) String() string {
	switch t {
	case Attention:
		return "attention"
	case Notifications:
		return "notifications"
	case Battery:
		return "battery"
	case Backlight:
		return "backlight"
	case Buttons:
		return "buttons"
	default:
		return fmt.Sprintf("type(%d)", int(t))
	}
}

// ParseType converts a light name to its Type.
func ParseType(name string) (Type, error) {
	switch name {
	case "attention":
		return Attention, nil
	case "notifications":
		return Notifications, nil
	case "battery":
		return Battery, nil
	case "backlight":
		return Backlight, nil
	case "buttons":
		return Buttons, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedType, name)
	}
}

// FlashMode selects between a static light and a timed blink pattern.
type FlashMode int

const (
	FlashNone FlashMode = iota
	FlashTimed
)

// String returns the lowercase flash mode name.
func (m FlashMode) String() string {
	if m == FlashTimed {
		return "timed"
	}
	return "none"
}

// ParseFlashMode converts a flash mode name to its FlashMode.
// An empty string means FlashNone.
func ParseFlashMode(name string) (FlashMode, error) {
	switch name {
	case "", "none":
		return FlashNone, nil
	case "timed":
		return FlashTimed, nil
	default:
		return 0, fmt.Errorf("unknown flash mode %q", name)
	}
}

// BrightnessMode describes how the brightness in the color was derived.
// It is carried with the state but does not affect rendering.
type BrightnessMode int

const (
	BrightnessUser BrightnessMode = iota
	BrightnessSensor
	BrightnessLowPersistence
)

// State is the logical request for one light. The latest state set for a
// light fully replaces the previous one.
type State struct {
	// Color is packed AARRGGBB. Alpha acts as a global dimmer on the
	// RGB channels, not a compositing operand.
	Color uint32

	FlashMode  FlashMode
	FlashOnMs  int32
	FlashOffMs int32

	BrightnessMode BrightnessMode
}

// isLit reports whether the state requests visible light. Alpha is
// deliberately ignored: a black color with full alpha is still off.
func isLit(s State) bool {
	return s.Color&0x00ffffff != 0
}

// Light describes one supported light for discovery listings.
type Light struct {
	ID      int
	Type    Type
	Ordinal int
}

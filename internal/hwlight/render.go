package hwlight

import (
	"log/slog"
	"path"
	"strconv"
	"strings"
)

// LED directories under the sysfs root. The two button zones are separate
// controllers driven with identical values.
const (
	backlightDir = "lcd-backlight"
	buttonDir    = "button-backlight"
	button1Dir   = "button-backlight1"
	whiteDir     = "white"
)

// Sibling attributes exposed by each LED controller. Only the white LED
// supports the blink program attributes.
const (
	attrBrightness = "brightness"
	attrBlink      = "blink"
	attrDutyPcts   = "duty_pcts"
	attrPauseHi    = "pause_hi"
	attrPauseLo    = "pause_lo"
	attrRampStepMs = "ramp_step_ms"
	attrStartIdx   = "start_idx"
)

const (
	// rampSteps is the fixed length of the duty-cycle ramp.
	rampSteps = 8
	// rampStepDuration is how long each step stays on by default, in ms.
	rampStepDuration = 50
)

// brightnessRamp holds the duty percentages (0-100) of one ramp cycle.
var brightnessRamp = [rampSteps]uint32{0, 12, 25, 37, 50, 72, 85, 100}

// renderer translates logical light states into attribute writes for one
// sink. It holds no state; every render recomputes the full parameter set.
type renderer struct {
	sink   Sink
	logger *slog.Logger
}

func (r *renderer) write(dir, attr string, value string) {
	r.sink.Write(path.Join(dir, attr), value)
}

func (r *renderer) writeInt(dir, attr string, value uint32) {
	r.write(dir, attr, formatValue(value))
}

// renderBacklight drives the LCD backlight with a 12-bit brightness.
func (r *renderer) renderBacklight(s State) uint32 {
	b := scaledBrightness(s, maxBacklightBrightness)
	r.writeInt(backlightDir, attrBrightness, b)
	return b
}

// renderButtons drives both button backlight zones with the same 8-bit
// brightness.
func (r *renderer) renderButtons(s State) uint32 {
	b := scaledBrightness(s, maxLEDBrightness)
	r.writeInt(buttonDir, attrBrightness, b)
	r.writeInt(button1Dir, attrBrightness, b)
	return b
}

// renderNotification drives the white LED. Timed states arm a blink
// program; anything else writes a static brightness. Blinking is disabled
// before the program parameters are written and re-enabled last, so the
// driver never latches a half-updated program.
func (r *renderer) renderNotification(s State) uint32 {
	b := scaledBrightness(s, maxLEDBrightness)

	r.writeInt(whiteDir, attrBlink, 0)

	if s.FlashMode == FlashTimed {
		stepDuration, pauseHi, pauseLo := blinkTiming(s.FlashOnMs, s.FlashOffMs)

		r.writeInt(whiteDir, attrStartIdx, 0*rampSteps)
		r.write(whiteDir, attrDutyPcts, scaledRamp(b))
		r.write(whiteDir, attrPauseLo, strconv.FormatInt(int64(pauseLo), 10))
		r.write(whiteDir, attrPauseHi, strconv.FormatInt(int64(pauseHi), 10))
		r.write(whiteDir, attrRampStepMs, strconv.FormatInt(int64(stepDuration), 10))

		r.writeInt(whiteDir, attrBlink, 1)
	} else {
		r.writeInt(whiteDir, attrBrightness, b)
	}

	return b
}

// blinkTiming derives the ramp step duration and the high/low pauses from
// the requested flash durations. The on phase spends stepDuration per step
// ramping up and down; if flashOnMs cannot fit the default ramp speed the
// step duration shrinks to consume the whole on phase and the flat-on hold
// is dropped.
func blinkTiming(flashOnMs, flashOffMs int32) (stepDuration, pauseHi, pauseLo int32) {
	stepDuration = rampStepDuration
	pauseHi = flashOnMs - stepDuration*rampSteps*2
	pauseLo = flashOffMs

	if pauseHi < 0 {
		stepDuration = flashOnMs / (rampSteps * 2)
		pauseHi = 0
	}

	return stepDuration, pauseHi, pauseLo
}

// scaledRamp scales each duty percentage of the ramp by the target
// brightness, producing the comma-separated list the driver expects.
func scaledRamp(brightness uint32) string {
	var sb strings.Builder
	for i, step := range brightnessRamp {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(formatValue(step * brightness / 0xff))
	}
	return sb.String()
}

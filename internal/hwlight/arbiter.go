package hwlight

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hwlight/lightsd/internal/events"
	"github.com/hwlight/lightsd/internal/metrics"
)

// ErrUnsupportedType is returned when a request names a light outside the
// fixed supported set. No state changes when it is returned.
var ErrUnsupportedType = errors.New("unsupported light type")

// handlerKind groups lights that share one physical LED. Lights with the
// same kind are mutually exclusive competitors; the highest-priority lit
// one wins the hardware.
type handlerKind int

const (
	kindNotification handlerKind = iota
	kindBacklight
	kindButtons
)

func (k handlerKind) String() string {
	switch k {
	case kindNotification:
		return "notification"
	case kindBacklight:
		return "backlight"
	default:
		return "buttons"
	}
}

// backend is one row of the arbitration table: a light, the handler kind
// it renders through, and the last state requested for it. The set of
// backends and their kinds are fixed at construction; only state mutates.
type backend struct {
	typ   Type
	kind  handlerKind
	state State
}

// Arbiter owns the arbitration table and serializes all state updates and
// hardware writes behind one mutex.
type Arbiter struct {
	mu       sync.Mutex
	backends []backend
	render   renderer
	bus      *events.Bus
	logger   *slog.Logger
}

// NewArbiter builds an arbiter over the fixed light table. bus may be nil
// when no event publishing is wanted (one-shot CLI use).
func NewArbiter(sink Sink, bus *events.Bus, logger *slog.Logger) *Arbiter {
	return &Arbiter{
		// Keep sorted in the order of importance.
		backends: []backend{
			{typ: Attention, kind: kindNotification},
			{typ: Notifications, kind: kindNotification},
			{typ: Battery, kind: kindNotification},
			{typ: Backlight, kind: kindBacklight},
			{typ: Buttons, kind: kindButtons},
		},
		render: renderer{sink: sink, logger: logger},
		bus:    bus,
		logger: logger,
	}
}

// SetState replaces the stored state for the given light and re-renders
// the hardware it shares. Among the lights sharing the updated light's
// handler, the highest-priority lit one is rendered; if none is lit the
// hardware is driven with the state just written, which turns it off.
//
// The whole update-select-render sequence, attribute writes included, is
// one critical section: concurrent calls are fully serialized.
func (a *Arbiter) SetState(t Type, s State) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	idx := -1
	for i := range a.backends {
		if a.backends[i].typ == t {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %d", ErrUnsupportedType, int(t))
	}

	a.backends[idx].state = s
	kind := a.backends[idx].kind
	metrics.LightSetState(t.String())

	a.logger.Debug("Light state updated",
		"light", t.String(),
		"color", fmt.Sprintf("%08X", s.Color),
		"flash_mode", s.FlashMode.String())

	for i := range a.backends {
		b := &a.backends[i]
		if b.kind == kind && isLit(b.state) {
			a.dispatch(b.typ, kind, b.state)
			return nil
		}
	}

	// Nothing lit shares this handler: turn the hardware off with the
	// state that was just written.
	a.dispatch(t, kind, s)
	return nil
}

// dispatch invokes the handler for kind on state. Caller holds the mutex.
func (a *Arbiter) dispatch(winner Type, kind handlerKind, s State) {
	var b uint32
	switch kind {
	case kindBacklight:
		b = a.render.renderBacklight(s)
	case kindButtons:
		b = a.render.renderButtons(s)
	default:
		b = a.render.renderNotification(s)
	}

	metrics.LightRendered(kind.String(), float64(b))

	if a.bus != nil {
		a.bus.Publish(events.LightRenderedEvent{
			Light:      winner.String(),
			Handler:    kind.String(),
			Color:      fmt.Sprintf("%08X", s.Color),
			Brightness: int(b),
			Blinking:   s.FlashMode == FlashTimed && isLit(s),
			Timestamp:  time.Now().Format(time.RFC3339),
		})
	}
}

// Lights returns the fixed supported lights in priority order with their
// ordinals. The table layout is immutable after construction, so no lock
// is needed; stored states are never read here.
func (a *Arbiter) Lights() []Light {
	lights := make([]Light, 0, len(a.backends))
	for i := range a.backends {
		lights = append(lights, Light{
			ID:      int(a.backends[i].typ),
			Type:    a.backends[i].typ,
			Ordinal: i,
		})
	}
	return lights
}

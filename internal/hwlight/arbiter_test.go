package hwlight

import (
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
)

// recorderSink records attribute writes for assertions.
type recorderSink struct {
	mu     sync.Mutex
	writes []attrWrite
}

type attrWrite struct {
	attr  string
	value string
}

func (r *recorderSink) Write(attr, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes = append(r.writes, attrWrite{attr, value})
}

func (r *recorderSink) all() []attrWrite {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]attrWrite(nil), r.writes...)
}

func (r *recorderSink) last() attrWrite {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.writes) == 0 {
		return attrWrite{}
	}
	return r.writes[len(r.writes)-1]
}

func (r *recorderSink) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes = nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

func TestArbiter_HigherPriorityWins(t *testing.T) {
	rec := &recorderSink{}
	arb := NewArbiter(rec, nil, testLogger())

	// Battery lights the shared white LED (blue, luma 28)
	if err := arb.SetState(Battery, State{Color: 0xFF0000FF}); err != nil {
		t.Fatalf("SetState(Battery) returned error: %v", err)
	}
	if got := rec.last(); got.attr != "white/brightness" || got.value != "28" {
		t.Errorf("Battery render wrote %v, want white/brightness=28", got)
	}

	// Attention outranks battery (red, luma 76)
	rec.reset()
	if err := arb.SetState(Attention, State{Color: 0xFFFF0000}); err != nil {
		t.Fatalf("SetState(Attention) returned error: %v", err)
	}
	if got := rec.last(); got.attr != "white/brightness" || got.value != "76" {
		t.Errorf("Attention render wrote %v, want white/brightness=76", got)
	}
}

func TestArbiter_FallbackOnClear(t *testing.T) {
	rec := &recorderSink{}
	arb := NewArbiter(rec, nil, testLogger())

	if err := arb.SetState(Battery, State{Color: 0xFF0000FF}); err != nil {
		t.Fatal(err)
	}
	if err := arb.SetState(Attention, State{Color: 0xFFFF0000}); err != nil {
		t.Fatal(err)
	}

	// Clearing attention must fall back to the still-lit battery state
	// without any extra call.
	rec.reset()
	if err := arb.SetState(Attention, State{Color: 0xFF000000}); err != nil {
		t.Fatal(err)
	}
	if got := rec.last(); got.attr != "white/brightness" || got.value != "28" {
		t.Errorf("After clearing attention got %v, want white/brightness=28 (battery)", got)
	}
}

func TestArbiter_OffWhenNothingLit(t *testing.T) {
	rec := &recorderSink{}
	arb := NewArbiter(rec, nil, testLogger())

	if err := arb.SetState(Notifications, State{Color: 0xFF00FF00}); err != nil {
		t.Fatal(err)
	}

	// Clearing the only lit light drives the hardware off with the state
	// just written. Repeating the call re-renders off without error.
	for i := 0; i < 3; i++ {
		rec.reset()
		if err := arb.SetState(Notifications, State{Color: 0xFF000000}); err != nil {
			t.Fatalf("SetState (off, call %d) returned error: %v", i, err)
		}
		if got := rec.last(); got.attr != "white/brightness" || got.value != "0" {
			t.Errorf("Off render (call %d) wrote %v, want white/brightness=0", i, got)
		}
	}
}

func TestArbiter_UnlitTimedStateArmsZeroRamp(t *testing.T) {
	// An unlit color with timed flash fields still goes through the blink
	// path with a zero-scaled ramp; the stored flash fields are not
	// sanitized on the off path.
	rec := &recorderSink{}
	arb := NewArbiter(rec, nil, testLogger())

	state := State{
		Color:      0xFF000000,
		FlashMode:  FlashTimed,
		FlashOnMs:  1000,
		FlashOffMs: 2000,
	}
	if err := arb.SetState(Battery, state); err != nil {
		t.Fatal(err)
	}

	writes := rec.all()
	if got := writes[len(writes)-1]; got.attr != "white/blink" || got.value != "1" {
		t.Errorf("Last write = %v, want white/blink=1", got)
	}
	for _, w := range writes {
		if w.attr == "white/duty_pcts" && w.value != "0,0,0,0,0,0,0,0" {
			t.Errorf("duty_pcts = %q, want all zeros", w.value)
		}
	}
}

func TestArbiter_UnsupportedType(t *testing.T) {
	rec := &recorderSink{}
	arb := NewArbiter(rec, nil, testLogger())

	if err := arb.SetState(Battery, State{Color: 0xFF0000FF}); err != nil {
		t.Fatal(err)
	}
	rec.reset()

	err := arb.SetState(Type(42), State{Color: 0xFFFFFFFF})
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("SetState(Type(42)) error = %v, want ErrUnsupportedType", err)
	}
	if writes := rec.all(); len(writes) != 0 {
		t.Errorf("Unsupported type produced %d writes, want none", len(writes))
	}

	// Stored states must be unchanged: clearing battery still renders off
	// from the battery slot, proving the table was not disturbed.
	if err := arb.SetState(Battery, State{}); err != nil {
		t.Fatal(err)
	}
	if got := rec.last(); got.attr != "white/brightness" || got.value != "0" {
		t.Errorf("Render after failed call wrote %v, want white/brightness=0", got)
	}
}

func TestArbiter_HandlerGroupsAreIndependent(t *testing.T) {
	rec := &recorderSink{}
	arb := NewArbiter(rec, nil, testLogger())

	if err := arb.SetState(Attention, State{Color: 0xFFFF0000}); err != nil {
		t.Fatal(err)
	}

	// Backlight renders in its own 12-bit range regardless of the lit
	// notification group.
	rec.reset()
	if err := arb.SetState(Backlight, State{Color: 0xFFFFFFFF}); err != nil {
		t.Fatal(err)
	}
	writes := rec.all()
	if len(writes) != 1 {
		t.Fatalf("Backlight render made %d writes, want 1: %v", len(writes), writes)
	}
	if writes[0].attr != "lcd-backlight/brightness" || writes[0].value != "4095" {
		t.Errorf("Backlight wrote %v, want lcd-backlight/brightness=4095", writes[0])
	}

	// Buttons drive both zones with the same value.
	rec.reset()
	if err := arb.SetState(Buttons, State{Color: 0xFFFFFFFF}); err != nil {
		t.Fatal(err)
	}
	writes = rec.all()
	if len(writes) != 2 {
		t.Fatalf("Buttons render made %d writes, want 2: %v", len(writes), writes)
	}
	for i, dir := range []string{"button-backlight", "button-backlight1"} {
		if writes[i].attr != dir+"/brightness" || writes[i].value != "255" {
			t.Errorf("Buttons write %d = %v, want %s/brightness=255", i, writes[i], dir)
		}
	}
}

func TestArbiter_Lights(t *testing.T) {
	arb := NewArbiter(&recorderSink{}, nil, testLogger())

	want := []struct {
		typ     Type
		ordinal int
	}{
		{Attention, 0},
		{Notifications, 1},
		{Battery, 2},
		{Backlight, 3},
		{Buttons, 4},
	}

	check := func() {
		lights := arb.Lights()
		if len(lights) != len(want) {
			t.Fatalf("Lights() returned %d entries, want %d", len(lights), len(want))
		}
		for i, w := range want {
			l := lights[i]
			if l.Type != w.typ || l.Ordinal != w.ordinal || l.ID != int(w.typ) {
				t.Errorf("Lights()[%d] = %+v, want type=%s ordinal=%d id=%d",
					i, l, w.typ, w.ordinal, int(w.typ))
			}
		}
	}

	check()

	// The listing is fixed regardless of state history.
	if err := arb.SetState(Buttons, State{Color: 0xFFFFFFFF}); err != nil {
		t.Fatal(err)
	}
	if err := arb.SetState(Attention, State{Color: 0xFF123456, FlashMode: FlashTimed}); err != nil {
		t.Fatal(err)
	}
	check()
}

func TestArbiter_ConcurrentSetState(t *testing.T) {
	rec := &recorderSink{}
	arb := NewArbiter(rec, nil, testLogger())

	var wg sync.WaitGroup
	for _, typ := range []Type{Attention, Notifications, Battery, Backlight, Buttons} {
		wg.Add(1)
		go func(typ Type) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				state := State{Color: 0xFF000000 | uint32(i)}
				if err := arb.SetState(typ, state); err != nil {
					t.Errorf("SetState(%s) returned error: %v", typ, err)
					return
				}
			}
		}(typ)
	}
	wg.Wait()
}

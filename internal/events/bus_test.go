package events

import (
	"encoding/json"
	"sync"
	"testing"
	"time"
)

func TestBus_PublishSubscribe(t *testing.T) {
	bus := New()

	received := make(chan LightChangedEvent, 1)
	unsub := bus.Subscribe(func(e LightChangedEvent) {
		received <- e
	})
	defer unsub()

	want := LightChangedEvent{
		Light:     "notifications",
		Color:     "FF2196F3",
		FlashMode: "none",
		Timestamp: time.Now().Format(time.RFC3339),
	}
	bus.Publish(want)

	select {
	case got := <-received:
		if got != want {
			t.Errorf("Received %+v, want %+v", got, want)
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("Event was not delivered")
	}
}

func TestBus_MultipleSubscribers(t *testing.T) {
	bus := New()

	const subscribers = 3
	received := make(chan LightRenderedEvent, subscribers)
	for i := 0; i < subscribers; i++ {
		unsub := bus.Subscribe(func(e LightRenderedEvent) {
			received <- e
		})
		defer unsub()
	}

	bus.Publish(LightRenderedEvent{Light: "battery", Handler: "notification", Brightness: 76})

	for i := 0; i < subscribers; i++ {
		select {
		case <-received:
		case <-time.After(100 * time.Millisecond):
			t.Fatalf("Subscriber %d did not receive the event", i)
		}
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := New()

	received := make(chan LightChangedEvent, 1)
	unsub := bus.Subscribe(func(e LightChangedEvent) {
		received <- e
	})

	unsub()
	bus.Publish(LightChangedEvent{Light: "attention"})

	select {
	case <-received:
		t.Error("Received event after unsubscribe")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBus_TypeSafety(t *testing.T) {
	bus := New()

	lightEvents := make(chan LightChangedEvent, 1)
	logEvents := make(chan LogEntryEvent, 1)

	defer bus.Subscribe(func(e LightChangedEvent) { lightEvents <- e })()
	defer bus.Subscribe(func(e LogEntryEvent) { logEvents <- e })()

	bus.Publish(LightChangedEvent{Light: "backlight"})

	select {
	case <-lightEvents:
	case <-time.After(100 * time.Millisecond):
		t.Fatal("LightChangedEvent was not delivered")
	}

	select {
	case <-logEvents:
		t.Error("LogEntryEvent handler received a LightChangedEvent")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBus_UnknownHandlerIsIgnored(t *testing.T) {
	bus := New()

	// A handler of an unknown type gets a no-op unsubscribe.
	unsub := bus.Subscribe(func(e struct{}) {})
	unsub()
}

func TestBus_ThreadSafety(t *testing.T) {
	bus := New()

	var count int
	var mu sync.Mutex
	defer bus.Subscribe(func(e LightRenderedEvent) {
		mu.Lock()
		count++
		mu.Unlock()
	})()

	const publishers = 5
	const perPublisher = 20

	var wg sync.WaitGroup
	for i := 0; i < publishers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perPublisher; j++ {
				bus.Publish(LightRenderedEvent{Light: "battery", Handler: "notification"})
			}
		}()
	}
	wg.Wait()

	deadline := time.After(time.Second)
	for {
		mu.Lock()
		done := count == publishers*perPublisher
		mu.Unlock()
		if done {
			return
		}
		select {
		case <-deadline:
			mu.Lock()
			t.Fatalf("Received %d events, want %d", count, publishers*perPublisher)
			mu.Unlock()
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestSubscribeToChannel(t *testing.T) {
	bus := New()

	ch := make(chan any, 4)
	unsub := SubscribeToChannel[LightChangedEvent](bus, ch)
	defer unsub()

	bus.Publish(LightChangedEvent{Light: "buttons", Color: "FFFFFFFF"})
	bus.Publish(LightRenderedEvent{Light: "buttons", Handler: "buttons"})

	select {
	case got := <-ch:
		if e, ok := got.(LightChangedEvent); !ok || e.Light != "buttons" {
			t.Errorf("Received %+v, want LightChangedEvent for buttons", got)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Channel did not receive the event")
	}

	select {
	case got := <-ch:
		t.Errorf("Channel received unexpected event %+v", got)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSubscribeToChannel_DoesNotBlock(t *testing.T) {
	bus := New()

	ch := make(chan any) // unbuffered, nobody reading
	unsub := SubscribeToChannel[LogEntryEvent](bus, ch)
	defer unsub()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			bus.Publish(LogEntryEvent{Level: "info", Module: "test"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publishing blocked on a full channel")
	}
}

func TestEventJSON(t *testing.T) {
	ev := LightRenderedEvent{
		Light:      "battery",
		Handler:    "notification",
		Color:      "FFFF0000",
		Brightness: 76,
		Blinking:   true,
		Timestamp:  "2025-01-27T10:30:00Z",
	}

	data, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded LightRenderedEvent
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded != ev {
		t.Errorf("Round trip produced %+v, want %+v", decoded, ev)
	}
}

package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"sync/atomic"
	"testing"
	"time"
)

type countingSink struct {
	count atomic.Int64
}

func (s *countingSink) Emit(context.Context, Event) {
	s.count.Add(1)
}

func TestJSONWriterSinkRedactsMetadata(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSONWriterSink(&buf)

	sink.Emit(context.Background(), Event{
		Timestamp: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		EventType: TypeAuthDenied,
		Path:      "/api/v1/users",
		Metadata: map[string]string{
			"email":  "alice@example.com",
			"reason": "wrong password",
		},
	})

	var decoded Event
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not one JSON object per line: %v", err)
	}
	if decoded.Metadata["email"] != "***" {
		t.Fatalf("email metadata = %q, want redacted", decoded.Metadata["email"])
	}
	if decoded.Metadata["reason"] != "wrong password" {
		t.Fatalf("reason metadata = %q, want untouched", decoded.Metadata["reason"])
	}
	if decoded.EventType != TypeAuthDenied {
		t.Fatalf("event type = %q, want %q", decoded.EventType, TypeAuthDenied)
	}
}

func TestJSONWriterSinkNilWriter(t *testing.T) {
	var sink *JSONWriterSink
	sink.Emit(context.Background(), Event{EventType: TypeAuthGranted})
}

func TestChannelSink(t *testing.T) {
	sink := NewChannelSink(2)

	sink.Emit(context.Background(), Event{EventType: TypeSessionCreated})

	select {
	case event := <-sink.Events():
		if event.EventType != TypeSessionCreated {
			t.Fatalf("event type = %q", event.EventType)
		}
	default:
		t.Fatal("expected a buffered event")
	}
}

func TestChannelSinkHonorsContext(t *testing.T) {
	sink := NewChannelSink(1)
	sink.Emit(context.Background(), Event{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Buffer is full; a cancelled context must not block.
	sink.Emit(ctx, Event{})
}

func TestDispatcherDeliversAndDrains(t *testing.T) {
	sink := &countingSink{}
	d := NewDispatcher(Config{Enabled: true, BufferSize: 16}, sink)

	for i := 0; i < 10; i++ {
		d.Emit(Event{EventType: TypeAuthGranted})
	}
	d.Close()

	if got := sink.count.Load(); got != 10 {
		t.Fatalf("delivered %d events, want 10", got)
	}
}

func TestDispatcherDisabledIsNil(t *testing.T) {
	d := NewDispatcher(Config{Enabled: false}, &countingSink{})
	if d != nil {
		t.Fatalf("disabled dispatcher = %v, want nil", d)
	}

	// nil dispatcher is safe everywhere.
	d.Emit(Event{})
	d.Close()
	if d.Dropped() != 0 {
		t.Fatal("nil dispatcher reports drops")
	}
}

func TestDispatcherDropsWhenFull(t *testing.T) {
	blocked := make(chan struct{}, 8)
	release := make(chan struct{})
	d := NewDispatcher(Config{Enabled: true, BufferSize: 1}, sinkFunc(func(context.Context, Event) {
		blocked <- struct{}{}
		<-release
	}))

	d.Emit(Event{})
	<-blocked // sink is now stuck on the first event

	d.Emit(Event{}) // fills the buffer
	d.Emit(Event{}) // must drop, not block

	if d.Dropped() == 0 {
		t.Fatal("expected at least one dropped event")
	}

	close(release)
	d.Close()
}

type sinkFunc func(context.Context, Event)

func (f sinkFunc) Emit(ctx context.Context, event Event) { f(ctx, event) }

func TestDispatcherEmitAfterClose(t *testing.T) {
	sink := &countingSink{}
	d := NewDispatcher(Config{Enabled: true, BufferSize: 4}, sink)
	d.Close()

	d.Emit(Event{})
	if got := sink.count.Load(); got != 0 {
		t.Fatalf("delivered %d events after close, want 0", got)
	}
}

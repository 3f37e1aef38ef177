package hwlight

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSysfsSink_Write(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "white"), 0755); err != nil {
		t.Fatal(err)
	}

	sink := NewSysfsSink(root, testLogger())
	sink.Write("white/brightness", "128")

	data, err := os.ReadFile(filepath.Join(root, "white", "brightness"))
	if err != nil {
		t.Fatalf("Reading back attribute failed: %v", err)
	}
	if string(data) != "128" {
		t.Errorf("Attribute content = %q, want %q", data, "128")
	}
}

func TestSysfsSink_WriteFailureIsDropped(t *testing.T) {
	sink := NewSysfsSink(filepath.Join(t.TempDir(), "missing"), testLogger())

	// Missing directory: the write must be logged and dropped, not panic.
	sink.Write("white/brightness", "255")
}

func TestNewSink_FallsBackToNoop(t *testing.T) {
	sink := NewSink(filepath.Join(t.TempDir(), "no-such-tree"), testLogger())
	if _, ok := sink.(*noopSink); !ok {
		t.Errorf("NewSink with missing root returned %T, want *noopSink", sink)
	}

	root := t.TempDir()
	sink = NewSink(root, testLogger())
	if _, ok := sink.(*sysfsSink); !ok {
		t.Errorf("NewSink with existing root returned %T, want *sysfsSink", sink)
	}
}

package hwlight

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hwlight/lightsd/internal/metrics"
)

// Sink writes string values to named hardware attributes. Writes are
// best-effort: implementations log and drop failures instead of returning
// them, so a missing device file never aborts a render.
type Sink interface {
	Write(attr string, value string)
}

// DefaultSysfsPath is where the kernel LED class exposes the lights.
const DefaultSysfsPath = "/sys/class/leds"

// NewSink returns a sysfs-backed sink when the LED class tree exists at
// root, otherwise a no-op sink so the daemon still runs on hosts without
// the hardware.
func NewSink(root string, logger *slog.Logger) Sink {
	if _, err := os.Stat(root); err != nil {
		logger.Info("LED sysfs tree not found, using no-op sink", "path", root)
		return &noopSink{logger: logger}
	}
	return &sysfsSink{root: root, logger: logger}
}

// NewSysfsSink returns a sink writing under the given sysfs root
// unconditionally.
func NewSysfsSink(root string, logger *slog.Logger) Sink {
	return &sysfsSink{root: root, logger: logger}
}

// NewNoopSink returns a sink that only logs writes at debug level.
func NewNoopSink(logger *slog.Logger) Sink {
	return &noopSink{logger: logger}
}

// sysfsSink writes LED attributes through the Linux sysfs LED interface.
type sysfsSink struct {
	root   string
	logger *slog.Logger
}

func (s *sysfsSink) Write(attr string, value string) {
	path := filepath.Join(s.root, attr)
	if err := os.WriteFile(path, []byte(value), 0644); err != nil {
		s.logger.Warn("Failed to write LED attribute", "path", path, "value", value, "error", err)
		metrics.AttributeWriteFailure(attr)
	}
}

// noopSink implements Sink for systems without the LED class tree.
type noopSink struct {
	logger *slog.Logger
}

func (n *noopSink) Write(attr string, value string) {
	n.logger.Debug("LED write skipped (no-op sink)", "attr", attr, "value", value)
}

// formatValue renders a numeric attribute value the way the drivers
// expect it, as a plain base-10 string.
func formatValue(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}

package main

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/hwlight/lightsd/cmd"
	"github.com/hwlight/lightsd/internal/api"
	"github.com/hwlight/lightsd/internal/config"
	"github.com/hwlight/lightsd/internal/discovery"
	"github.com/hwlight/lightsd/internal/events"
	"github.com/hwlight/lightsd/internal/hwlight"
	"github.com/hwlight/lightsd/internal/logging"
	"github.com/hwlight/lightsd/internal/metrics"
	"github.com/hwlight/lightsd/internal/systemd"
)

// Options for the CLI - flat structure with toml mapping.
type Options struct {
	Config string `help:"Path to configuration file" short:"c" default:"config.toml"`

	// Server settings
	Port string `help:"Port to listen on" short:"p" default:":8089" toml:"server.port" env:"SERVER_PORT"`

	// Hardware settings
	SysfsPath string `help:"LED class sysfs root" default:"/sys/class/leds" toml:"hardware.sysfs_path" env:"HARDWARE_SYSFS_PATH"`

	// Auth settings
	AuthUsername string `help:"Basic auth username" default:"admin" toml:"auth.username" env:"AUTH_USERNAME"`
	AuthPassword string `help:"Basic auth password" default:"password" toml:"auth.password" env:"AUTH_PASSWORD"`

	// Features settings
	MetricsEnabled bool `help:"Expose Prometheus metrics" default:"true" toml:"features.metrics_enabled" env:"FEATURES_METRICS"`
	MDNSEnabled    bool `help:"Advertise the API via mDNS" default:"false" toml:"features.mdns_enabled" env:"FEATURES_MDNS"`

	// Logging settings
	LoggingLevel     string `help:"Global logging level (debug, info, warn, error)" default:"info" toml:"logging.level" env:"LOGGING_LEVEL"`
	LoggingFormat    string `help:"Logging format (text, json)" default:"text" toml:"logging.format" env:"LOGGING_FORMAT"`
	LoggingHwlight   string `help:"Light arbitration logging level" default:"info" toml:"logging.hwlight" env:"LOGGING_HWLIGHT"`
	LoggingAPI       string `help:"API logging level" default:"info" toml:"logging.api" env:"LOGGING_API"`
	LoggingHTTP      string `help:"HTTP request logging level" default:"info" toml:"logging.http" env:"LOGGING_HTTP"`
	LoggingDiscovery string `help:"mDNS discovery logging level" default:"info" toml:"logging.discovery" env:"LOGGING_DISCOVERY"`
}

func main() {
	cli := humacli.New(func(hooks humacli.Hooks, opts *Options) {
		if loadErr := config.LoadConfig(opts, nil); loadErr != nil {
			slog.Warn("Failed to load config", "error", loadErr)
		}

		logging.Initialize(logging.Config{
			Level:  opts.LoggingLevel,
			Format: opts.LoggingFormat,
			Modules: map[string]string{
				"hwlight":   opts.LoggingHwlight,
				"api":       opts.LoggingAPI,
				"http":      opts.LoggingHTTP,
				"discovery": opts.LoggingDiscovery,
			},
		})

		logger := logging.GetLogger("main")

		// Event bus for in-process event handling
		eventBus := events.New()

		// Bridge log entries onto the bus for the SSE log stream
		logging.SetLogCallback(func(entry logging.LogEntry) {
			eventBus.Publish(events.LogEntryEvent{
				Timestamp:  entry.Timestamp.Format(time.RFC3339Nano),
				Level:      entry.Level,
				Module:     entry.Module,
				Message:    entry.Message,
				Attributes: entry.Attributes,
			})
		})

		// Light arbitration over the sysfs LED tree; hosts without the
		// tree get a no-op sink so the API still works.
		hwLogger := logging.GetLogger("hwlight")
		sink := hwlight.NewSink(opts.SysfsPath, hwLogger)
		arbiter := hwlight.NewArbiter(sink, eventBus, hwLogger)

		apiOpts := &api.Options{
			AuthUsername: opts.AuthUsername,
			AuthPassword: opts.AuthPassword,
			Lights:       arbiter,
			EventBus:     eventBus,
		}

		if opts.MetricsEnabled {
			apiOpts.PrometheusHandler = metrics.HTTPHandler()
		}

		server := api.NewServer(apiOpts)

		// Watch the config file so logging levels can change at runtime
		configWatcher := config.NewConfigWatcher(
			opts.Config,
			func(path string) (logging.Config, error) {
				return config.LoadLoggingConfig(path), nil
			},
			logging.GetLogger("config"),
		)
		configWatcher.OnReload(func(cfg logging.Config) {
			logging.Initialize(cfg)
			logger.Info("Logging configuration reloaded")
		})

		var advertiser *discovery.Advertiser
		if opts.MDNSEnabled {
			advertiser = discovery.NewAdvertiser(portFromAddr(opts.Port), logging.GetLogger("discovery"))
		}

		hooks.OnStart(func() {
			if watchErr := configWatcher.Start(); watchErr != nil {
				logger.Warn("Failed to start config watcher", "error", watchErr)
			}

			if advertiser != nil {
				if mdnsErr := advertiser.Start(); mdnsErr != nil {
					logger.Warn("Failed to start mDNS advertisement", "error", mdnsErr)
				}
			}

			systemd.NotifyReady(logger)

			logger.Info("Starting HTTP server", "port", opts.Port)
			if startErr := server.Start(opts.Port); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
				logger.Error("Failed to start HTTP server", "error", startErr)
			}
		})

		hooks.OnStop(func() {
			logger.Info("Shutting down server")
			systemd.NotifyStopping(logger)

			if stopErr := server.Stop(); stopErr != nil {
				logger.Error("Error stopping HTTP server", "error", stopErr)
			}

			if advertiser != nil {
				advertiser.Stop()
			}

			if stopErr := configWatcher.Stop(); stopErr != nil {
				logger.Warn("Error stopping config watcher", "error", stopErr)
			}
		})
	})

	// One-shot light control without the server
	cli.Root().AddCommand(cmd.CreateSetCmd())

	// Supported lights listing
	cli.Root().AddCommand(cmd.CreateListCmd())

	cli.Run()
}

// portFromAddr extracts the numeric port from a listen address like ":8089".
func portFromAddr(addr string) int {
	idx := strings.LastIndex(addr, ":")
	if idx < 0 {
		return 0
	}
	port, err := strconv.Atoi(addr[idx+1:])
	if err != nil {
		return 0
	}
	return port
}

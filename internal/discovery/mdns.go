// Package discovery advertises the lightsd API on the local network via mDNS.
package discovery

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hashicorp/mdns"
)

// ServiceType is the mDNS service type clients browse for.
const ServiceType = "_lightsd._tcp"

// Advertiser publishes a _lightsd._tcp mDNS record for the HTTP API so
// provisioning tools can find devices without knowing their address.
type Advertiser struct {
	port   int
	server *mdns.Server
	logger *slog.Logger
}

// NewAdvertiser creates an advertiser for the API listening on port.
func NewAdvertiser(port int, logger *slog.Logger) *Advertiser {
	return &Advertiser{port: port, logger: logger}
}

// Start registers the mDNS service.
func (a *Advertiser) Start() error {
	host, err := os.Hostname()
	if err != nil {
		host = "lightsd"
	}

	service, err := mdns.NewMDNSService(
		host,
		ServiceType,
		"", // default domain
		"", // hostname from the OS
		a.port,
		nil,
		[]string{"api=/api", "docs=/docs"},
	)
	if err != nil {
		return fmt.Errorf("failed to create mDNS service: %w", err)
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return fmt.Errorf("failed to start mDNS server: %w", err)
	}

	a.server = server
	a.logger.Info("mDNS advertisement started", "service", ServiceType, "port", a.port)
	return nil
}

// Stop unregisters the mDNS service.
func (a *Advertiser) Stop() {
	if a.server != nil {
		if err := a.server.Shutdown(); err != nil {
			a.logger.Warn("Failed to shut down mDNS server", "error", err)
		}
		a.server = nil
	}
}

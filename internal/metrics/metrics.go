// Package metrics provides Prometheus metrics for light arbitration and
// sysfs attribute writes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	setStateTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lightsd",
		Subsystem: "arbiter",
		Name:      "set_state_total",
		Help:      "State-set requests accepted per light",
	}, []string{"light"})

	rendersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lightsd",
		Subsystem: "arbiter",
		Name:      "renders_total",
		Help:      "Hardware renders per handler kind",
	}, []string{"handler"})

	renderedBrightness = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "lightsd",
		Subsystem: "arbiter",
		Name:      "rendered_brightness",
		Help:      "Last hardware brightness value written per handler kind",
	}, []string{"handler"})

	writeFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lightsd",
		Subsystem: "sysfs",
		Name:      "write_failures_total",
		Help:      "Attribute writes that could not reach their device file",
	}, []string{"attribute"})
)

// LightSetState records an accepted state-set request for a light.
func LightSetState(light string) {
	setStateTotal.WithLabelValues(light).Inc()
}

// LightRendered records a hardware render and the brightness it wrote.
func LightRendered(handler string, brightness float64) {
	rendersTotal.WithLabelValues(handler).Inc()
	renderedBrightness.WithLabelValues(handler).Set(brightness)
}

// AttributeWriteFailure records a failed sysfs attribute write.
func AttributeWriteFailure(attribute string) {
	writeFailuresTotal.WithLabelValues(attribute).Inc()
}

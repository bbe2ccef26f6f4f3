package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	sessionCountGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "abacus",
			Subsystem: "api",
			Name:      "session_total",
			Help:      "Total number of http sessions.",
		})

	sessionActiveCountGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "abacus",
			Subsystem: "api",
			Name:      "session_active_total",
			Help:      "Total number of http sessions with an expression in progress.",
		})

	terminalCountGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "abacus",
			Subsystem: "api",
			Name:      "terminal_total",
			Help:      "Total number of connected tcp terminals.",
		})
)

// SetSessionCount set session count
func SetSessionCount(total, active int) {
	sessionCountGauge.Set(float64(total))
	sessionActiveCountGauge.Set(float64(active))
}

// SetTerminalCount set terminal count
func SetTerminalCount(value int) {
	terminalCountGauge.Set(float64(value))
}

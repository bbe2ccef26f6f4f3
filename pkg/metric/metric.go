package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	prometheus.MustRegister(requestReceivedCounter)
	prometheus.MustRegister(requestResultCounter)
	prometheus.MustRegister(inputBytesCounter)
	prometheus.MustRegister(expressionCounter)

	prometheus.MustRegister(sessionCountGauge)
	prometheus.MustRegister(sessionActiveCountGauge)
	prometheus.MustRegister(terminalCountGauge)
}

// Handler returns the http handler of the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}

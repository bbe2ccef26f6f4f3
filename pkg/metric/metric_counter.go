package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// ResultAccepted expression computed
	ResultAccepted = "accepted"
	// ResultCancelled expression dropped
	ResultCancelled = "cancelled"
	// ResultDivideByZero expression computed with the divide by zero sentinel
	ResultDivideByZero = "divide_by_zero"
)

var (
	requestReceivedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "abacus",
			Subsystem: "api",
			Name:      "request_received_total",
			Help:      "Total number of request received.",
		}, []string{"type"})

	requestResultCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "abacus",
			Subsystem: "api",
			Name:      "request_result_total",
			Help:      "Total number of request handled result.",
		}, []string{"type", "result"})

	inputBytesCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "abacus",
			Subsystem: "evaluator",
			Name:      "input_bytes_total",
			Help:      "Total number of input bytes fed to evaluators.",
		}, []string{"grammar"})

	expressionCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "abacus",
			Subsystem: "evaluator",
			Name:      "expression_total",
			Help:      "Total number of finished expressions.",
		}, []string{"grammar", "result"})
)

// IncRequestReceived inc request received
func IncRequestReceived(t string) {
	requestReceivedCounter.WithLabelValues(t).Inc()
}

// IncRequestSucceed inc request handled succeed
func IncRequestSucceed(t string) {
	requestResultCounter.WithLabelValues(t, "succeed").Inc()
}

// IncRequestFailed inc request handled failed
func IncRequestFailed(t string) {
	requestResultCounter.WithLabelValues(t, "failed").Inc()
}

// AddInputBytes add bytes fed to an evaluator of the grammar
func AddInputBytes(grammar string, value int) {
	inputBytesCounter.WithLabelValues(grammar).Add(float64(value))
}

// IncExpression inc finished expressions
func IncExpression(grammar, result string) {
	expressionCounter.WithLabelValues(grammar, result).Inc()
}

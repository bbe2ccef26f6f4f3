package metric

import (
	"testing"

	"github.com/deepfabric/abacus/pkg/core"
	"github.com/deepfabric/abacus/pkg/grammar"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserver(t *testing.T) {
	cfg := grammar.Integer()
	e, err := core.NewEvaluator(cfg, core.WithObserver(NewObserver("test-observer")))
	assert.NoError(t, err, "TestObserver failed")
	defer e.Close()

	e.Write([]byte("(1+2)=(1/0)=(1)"))

	assert.Equal(t, float64(1), testutil.ToFloat64(expressionCounter.WithLabelValues("test-observer", ResultAccepted)), "TestObserver failed")
	assert.Equal(t, float64(1), testutil.ToFloat64(expressionCounter.WithLabelValues("test-observer", ResultDivideByZero)), "TestObserver failed")
	assert.Equal(t, float64(1), testutil.ToFloat64(expressionCounter.WithLabelValues("test-observer", ResultCancelled)), "TestObserver failed")
}

func TestRequestCounters(t *testing.T) {
	IncRequestReceived("test-request")
	IncRequestReceived("test-request")
	IncRequestSucceed("test-request")
	IncRequestFailed("test-request")

	assert.Equal(t, float64(2), testutil.ToFloat64(requestReceivedCounter.WithLabelValues("test-request")), "TestRequestCounters failed")
	assert.Equal(t, float64(1), testutil.ToFloat64(requestResultCounter.WithLabelValues("test-request", "succeed")), "TestRequestCounters failed")
	assert.Equal(t, float64(1), testutil.ToFloat64(requestResultCounter.WithLabelValues("test-request", "failed")), "TestRequestCounters failed")
}

func TestGauges(t *testing.T) {
	SetSessionCount(5, 2)
	SetTerminalCount(3)

	assert.Equal(t, float64(5), testutil.ToFloat64(sessionCountGauge), "TestGauges failed")
	assert.Equal(t, float64(2), testutil.ToFloat64(sessionActiveCountGauge), "TestGauges failed")
	assert.Equal(t, float64(3), testutil.ToFloat64(terminalCountGauge), "TestGauges failed")
}

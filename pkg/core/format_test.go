package core

import (
	"math"
	"testing"

	"github.com/deepfabric/abacus/pkg/grammar"
	"github.com/stretchr/testify/assert"
)

func TestFormatInteger(t *testing.T) {
	f := NewFormatter(grammar.Integer())
	cases := map[int64]string{
		0:             "=0\r",
		7:             "=7\r",
		10:            "=10\r",
		-1:            "=-1\r",
		-13:           "=-13\r",
		1234567890:    "=1234567890\r",
		math.MaxInt64: "=9223372036854775807\r",
		math.MinInt64: "=-9223372036854775808\r",
	}

	for value, expect := range cases {
		assert.Equal(t, expect, string(f.Format(IntNumber(value))), "TestFormatInteger failed: %d", value)
	}
}

func TestFormatReal(t *testing.T) {
	f := NewFormatter(grammar.SignedDecimal())
	assert.Equal(t, "=-1.250000\r", string(f.Format(RealNumber(-1.25))), "TestFormatReal failed")
	assert.Equal(t, "=0.000000\r", string(f.Format(RealNumber(math.Copysign(0, -1)))), "TestFormatReal failed")
	assert.Equal(t, "=42.000000\r", string(f.Format(RealNumber(42))), "TestFormatReal failed")

	f.FractionDigits = 0
	assert.Equal(t, "=3\r", string(f.Format(RealNumber(3.2))), "TestFormatReal failed")
}

func TestAppendFormat(t *testing.T) {
	f := NewFormatter(grammar.Integer())
	dst := f.AppendFormat([]byte("(1+1)"), IntNumber(2))
	assert.Equal(t, "(1+1)=2\r", string(dst), "TestAppendFormat failed")
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "-5", IntNumber(-5).String(), "TestNumber failed")
	assert.Equal(t, "2.5", RealNumber(2.5).String(), "TestNumber failed")
	assert.Equal(t, float64(3), IntNumber(3).Float64(), "TestNumber failed")
}

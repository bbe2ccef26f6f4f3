package core

import (
	"strconv"

	"github.com/deepfabric/abacus/pkg/grammar"
)

const (
	resultPrefix byte = '='
	terminator   byte = 0x0D
)

// Number a value of the integer or the real domain
type Number struct {
	Domain grammar.Domain
	Int    int64
	Real   float64
}

// IntNumber returns an integer number
func IntNumber(value int64) Number {
	return Number{Domain: grammar.IntegerDomain, Int: value}
}

// RealNumber returns a real number
func RealNumber(value float64) Number {
	return Number{Domain: grammar.RealDomain, Real: value}
}

// Float64 returns the value as float64
func (n Number) Float64() float64 {
	if n.Domain == grammar.IntegerDomain {
		return float64(n.Int)
	}
	return n.Real
}

func (n Number) String() string {
	if n.Domain == grammar.IntegerDomain {
		return strconv.FormatInt(n.Int, 10)
	}
	return strconv.FormatFloat(n.Real, 'f', -1, 64)
}

// Formatter renders results as terminal output
type Formatter struct {
	FractionDigits int
}

// NewFormatter returns the formatter of the grammar
func NewFormatter(cfg grammar.Config) Formatter {
	return Formatter{FractionDigits: cfg.FractionDigits}
}

// Format returns `=`, the value and a carriage return.
// The divide by zero sentinel renders like any other -1.
func (f Formatter) Format(n Number) []byte {
	return f.AppendFormat(make([]byte, 0, 24), n)
}

// AppendFormat appends the rendered value to dst
func (f Formatter) AppendFormat(dst []byte, n Number) []byte {
	dst = append(dst, resultPrefix)
	if n.Domain == grammar.IntegerDomain {
		dst = appendInteger(dst, n.Int)
	} else {
		v := n.Real
		if v == 0 {
			v = 0 // drop the sign of -0
		}
		dst = strconv.AppendFloat(dst, v, 'f', f.FractionDigits, 64)
	}
	return append(dst, terminator)
}

func appendInteger(dst []byte, value int64) []byte {
	abs := uint64(value)
	if value < 0 {
		dst = append(dst, '-')
		abs = uint64(-value)
	}

	digits := 1
	for v := abs / 10; v > 0; v /= 10 {
		digits++
	}

	start := len(dst)
	for i := 0; i < digits; i++ {
		dst = append(dst, '0')
	}
	for i := start + digits - 1; i >= start; i-- {
		dst[i] = byte('0' + abs%10)
		abs /= 10
	}
	return dst
}

package expr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEval(t *testing.T) {
	cases := map[string]int64{
		"(12+3)":  15,
		"(7-20)":  -13,
		"(6*7)":   42,
		"(7/2)":   3,
		"(10/0)":  -1,
		"(-7*-6)": 42,
		"(-7--6)": -1,
		"(-9/2)":  -4,
		"(123+1)": 124,
		"(0-0)":   0,
	}

	for input, expect := range cases {
		value, err := Eval([]byte(input))
		assert.NoError(t, err, "TestEval failed: %s", input)
		assert.Equal(t, expect, value, "TestEval failed: %s", input)
	}
}

func TestEvalMalformed(t *testing.T) {
	for _, input := range []string{"", "12+3", "(12+)", "(+3)", "(1+2", "(1+2+3)", "(1x2)", "(1.5+2)"} {
		_, err := Eval([]byte(input))
		assert.True(t, errors.Is(err, ErrMalformed), "TestEvalMalformed failed: %s", input)
	}
}

func TestExpected(t *testing.T) {
	out, err := Expected([]byte("(12+3)="))
	assert.NoError(t, err, "TestExpected failed")
	assert.Equal(t, "=15\r", out, "TestExpected failed")

	out, err = Expected([]byte("(7-20)="))
	assert.NoError(t, err, "TestExpected failed")
	assert.Equal(t, "=-13\r", out, "TestExpected failed")

	_, err = Expected([]byte("(7-20)"))
	assert.True(t, errors.Is(err, ErrMalformed), "TestExpected failed")
}

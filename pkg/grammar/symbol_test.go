package grammar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDigits(t *testing.T) {
	for _, cfg := range []Config{Integer(), SignedInteger(), SignedDecimal()} {
		for b := byte('0'); b <= '9'; b++ {
			assert.Equal(t, Digit, Classify(cfg, b), "TestClassifyDigits failed")
		}
	}
}

func TestClassifyMinusDependsOnGrammar(t *testing.T) {
	assert.Equal(t, Operator, Classify(Integer(), '-'), "TestClassifyMinusDependsOnGrammar failed")
	assert.Equal(t, Sign, Classify(SignedInteger(), '-'), "TestClassifyMinusDependsOnGrammar failed")
	assert.Equal(t, Sign, Classify(SignedDecimal(), '-'), "TestClassifyMinusDependsOnGrammar failed")
}

func TestClassifyPunctuation(t *testing.T) {
	cfg := SignedDecimal()
	assert.Equal(t, OpenBracket, Classify(cfg, '('), "TestClassifyPunctuation failed")
	assert.Equal(t, CloseBracket, Classify(cfg, ')'), "TestClassifyPunctuation failed")
	assert.Equal(t, Equals, Classify(cfg, '='), "TestClassifyPunctuation failed")
	assert.Equal(t, DecimalPoint, Classify(cfg, '.'), "TestClassifyPunctuation failed")
	assert.Equal(t, Ignored, Classify(Integer(), '.'), "TestClassifyPunctuation failed")

	for _, b := range []byte{'+', '*', '/'} {
		assert.Equal(t, Operator, Classify(cfg, b), "TestClassifyPunctuation failed")
	}
}

func TestClassifyTotal(t *testing.T) {
	cfg := SignedDecimal(WithCancelKeys(true))
	for i := 0; i < 256; i++ {
		s := Classify(cfg, byte(i))
		assert.True(t, int(s) >= 0 && int(s) < SymbolCount, "TestClassifyTotal failed")
	}

	for _, b := range []byte{'\r', '\n', 'a', 'Z', ' ', 0x00, 0x7F, 0xFF} {
		assert.Equal(t, Ignored, Classify(cfg, b), "TestClassifyTotal failed")
	}
}

func TestClassifyCancelKeys(t *testing.T) {
	assert.Equal(t, Ignored, Classify(Integer(), 0x1B), "TestClassifyCancelKeys failed")
	assert.Equal(t, Ignored, Classify(Integer(), 0x08), "TestClassifyCancelKeys failed")

	cfg := Integer(WithCancelKeys(true))
	assert.Equal(t, Abort, Classify(cfg, 0x1B), "TestClassifyCancelKeys failed")
	assert.Equal(t, Abort, Classify(cfg, 0x08), "TestClassifyCancelKeys failed")
}

func TestByName(t *testing.T) {
	cfg, err := ByName("decimal", WithStrict(false))
	assert.NoError(t, err, "TestByName failed")
	assert.True(t, cfg.Signed, "TestByName failed")
	assert.True(t, cfg.Decimal, "TestByName failed")
	assert.False(t, cfg.Strict, "TestByName failed")
	assert.Equal(t, RealDomain, cfg.Domain, "TestByName failed")
	assert.Equal(t, 6, cfg.FractionDigits, "TestByName failed")

	_, err = ByName("hex")
	assert.Error(t, err, "TestByName failed")
	assert.True(t, errors.Is(err, ErrUnknownGrammar), "TestByName failed")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Integer().Validate(), "TestValidate failed")
	assert.NoError(t, SignedDecimal().Validate(), "TestValidate failed")

	cfg := SignedDecimal()
	cfg.Domain = IntegerDomain
	assert.Error(t, cfg.Validate(), "TestValidate failed")

	assert.Error(t, SignedDecimal(WithFractionDigits(-1)).Validate(), "TestValidate failed")
}

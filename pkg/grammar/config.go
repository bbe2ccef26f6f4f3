package grammar

import (
	"errors"
	"fmt"
	"strings"
)

// Domain the numeric domain operands and results live in
type Domain int

const (
	// IntegerDomain int64 operands, truncating division
	IntegerDomain Domain = iota
	// RealDomain float64 operands, real division
	RealDomain
)

func (d Domain) String() string {
	if d == RealDomain {
		return "real"
	}
	return "integer"
}

const (
	// IntegerName name of the unsigned integer grammar
	IntegerName = "integer"
	// SignedIntegerName name of the signed integer grammar
	SignedIntegerName = "signed"
	// DecimalName name of the signed decimal grammar
	DecimalName = "decimal"

	defaultFractionDigits = 6
	maxFractionDigits     = 17
)

var (
	// ErrUnknownGrammar the grammar name is not registered
	ErrUnknownGrammar = errors.New("unknown grammar")
	// ErrInvalidConfig the combination of grammar settings is not supported
	ErrInvalidConfig = errors.New("invalid grammar config")
)

// Config grammar variant parameters
type Config struct {
	Name           string
	Signed         bool
	Decimal        bool
	Domain         Domain
	Strict         bool
	CancelKeys     bool
	EchoIgnored    bool
	FractionDigits int
}

// Option grammar option
type Option func(*Config)

// WithStrict out of place ')' and '=' cancel the capture instead of being ignored
func WithStrict(value bool) Option {
	return func(cfg *Config) {
		cfg.Strict = value
	}
}

// WithCancelKeys ESC and backspace cancel the capture
func WithCancelKeys(value bool) Option {
	return func(cfg *Config) {
		cfg.CancelKeys = value
	}
}

// WithEchoIgnored echo bytes that have no effect on the automaton
func WithEchoIgnored(value bool) Option {
	return func(cfg *Config) {
		cfg.EchoIgnored = value
	}
}

// WithFractionDigits set the fractional digits of real results
func WithFractionDigits(value int) Option {
	return func(cfg *Config) {
		cfg.FractionDigits = value
	}
}

// Integer returns the unsigned integer grammar
func Integer(opts ...Option) Config {
	return build(Config{
		Name:   IntegerName,
		Domain: IntegerDomain,
		Strict: true,
	}, opts...)
}

// SignedInteger returns the integer grammar with signed operands
func SignedInteger(opts ...Option) Config {
	return build(Config{
		Name:   SignedIntegerName,
		Signed: true,
		Domain: IntegerDomain,
		Strict: true,
	}, opts...)
}

// SignedDecimal returns the signed decimal grammar
func SignedDecimal(opts ...Option) Config {
	return build(Config{
		Name:    DecimalName,
		Signed:  true,
		Decimal: true,
		Domain:  RealDomain,
		Strict:  true,
	}, opts...)
}

// ByName returns a registered grammar
func ByName(name string, opts ...Option) (Config, error) {
	switch strings.ToLower(name) {
	case IntegerName, "":
		return Integer(opts...), nil
	case SignedIntegerName:
		return SignedInteger(opts...), nil
	case DecimalName:
		return SignedDecimal(opts...), nil
	}

	return Config{}, fmt.Errorf("%w: %s", ErrUnknownGrammar, name)
}

// Names returns the registered grammar names
func Names() []string {
	return []string{IntegerName, SignedIntegerName, DecimalName}
}

// Validate check the config is consistent
func (cfg Config) Validate() error {
	if cfg.Decimal && cfg.Domain != RealDomain {
		return fmt.Errorf("%w: decimal operands need the real domain", ErrInvalidConfig)
	}

	if cfg.FractionDigits < 0 || cfg.FractionDigits > maxFractionDigits {
		return fmt.Errorf("%w: fraction digits %d out of range",
			ErrInvalidConfig,
			cfg.FractionDigits)
	}

	return nil
}

func build(cfg Config, opts ...Option) Config {
	cfg.FractionDigits = defaultFractionDigits
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

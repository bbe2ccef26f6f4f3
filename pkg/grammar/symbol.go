package grammar

// Symbol the grammar category of an input byte
type Symbol int

const (
	// Ignored bytes never reach the transition table
	Ignored Symbol = iota
	// Digit '0'..'9'
	Digit
	// DecimalPoint '.'
	DecimalPoint
	// Sign '-' in front of an operand, only in signed grammars
	Sign
	// Operator one of + - * /
	Operator
	// OpenBracket '('
	OpenBracket
	// CloseBracket ')'
	CloseBracket
	// Equals '='
	Equals
	// Abort ESC or backspace, only when cancel keys are enabled
	Abort

	// SymbolCount number of symbols, used as the table width
	SymbolCount = int(Abort) + 1
)

const (
	keyBackspace byte = 0x08
	keyEscape    byte = 0x1B
)

var symbolNames = [...]string{
	Ignored:      "ignored",
	Digit:        "digit",
	DecimalPoint: "point",
	Sign:         "sign",
	Operator:     "operator",
	OpenBracket:  "open",
	CloseBracket: "close",
	Equals:       "equals",
	Abort:        "abort",
}

func (s Symbol) String() string {
	if s < 0 || int(s) >= len(symbolNames) {
		return "unknown"
	}

	return symbolNames[s]
}

// Symbols returns all symbols in table column order
func Symbols() []Symbol {
	values := make([]Symbol, 0, SymbolCount)
	for i := 0; i < SymbolCount; i++ {
		values = append(values, Symbol(i))
	}
	return values
}

// Classify maps a byte to its symbol under the grammar configuration.
// The same '-' byte is a Sign in signed grammars and an Operator otherwise;
// automaton tables of signed grammars accept a Sign after a complete first
// operand as subtraction.
func Classify(cfg Config, b byte) Symbol {
	if b >= '0' && b <= '9' {
		return Digit
	}

	switch b {
	case '+', '*', '/':
		return Operator
	case '-':
		if cfg.Signed {
			return Sign
		}
		return Operator
	case '.':
		if cfg.Decimal {
			return DecimalPoint
		}
	case '(':
		return OpenBracket
	case ')':
		return CloseBracket
	case '=':
		return Equals
	case keyEscape, keyBackspace:
		if cfg.CancelKeys {
			return Abort
		}
	}

	return Ignored
}

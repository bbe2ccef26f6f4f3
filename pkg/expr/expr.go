package expr

import (
	"errors"
	"fmt"

	"github.com/deepfabric/abacus/pkg/core"
	"github.com/deepfabric/abacus/pkg/grammar"
	engine "github.com/fagongzi/expr"
	"github.com/fagongzi/util/format"
)

var (
	// ErrMalformed the input is not a complete `(a op b)` expression
	ErrMalformed = errors.New("malformed expression")
)

var parser engine.Parser

func init() {
	parser = engine.NewParser(varExprFactory,
		engine.WithOp("+", add),
		engine.WithOp("-", minus),
		engine.WithOp("*", multiplication),
		engine.WithOp("/", division),
	)
}

func varExprFactory(data []byte, valueType engine.VarType) (engine.Expr, error) {
	return nil, fmt.Errorf("var %s not support", data)
}

// Eval returns the value of a complete integer expression `(a op b)`.
// Operands may carry a leading '-'. Division by zero returns -1.
func Eval(expression []byte) (int64, error) {
	src, err := rewrite(expression)
	if err != nil {
		return 0, err
	}

	e, err := parser.Parse(src)
	if err != nil {
		return 0, fmt.Errorf("%w: %+v", ErrMalformed, err)
	}

	value, err := e.Exec(nil)
	if err != nil {
		return 0, err
	}

	return toInt64(value)
}

// Expected returns the terminal output an integer evaluator appends to a
// line `(a op b)=`
func Expected(input []byte) (string, error) {
	n := len(input)
	if n == 0 || input[n-1] != '=' {
		return "", fmt.Errorf("%w: missing '='", ErrMalformed)
	}

	value, err := Eval(input[:n-1])
	if err != nil {
		return "", err
	}

	f := core.NewFormatter(grammar.Integer())
	return string(f.Format(core.IntNumber(value))), nil
}

// rewrite turns signed operands into `(0-n)` so the parser only sees
// unsigned constants
func rewrite(expression []byte) ([]byte, error) {
	if len(expression) < 2 ||
		expression[0] != '(' ||
		expression[len(expression)-1] != ')' {
		return nil, fmt.Errorf("%w: %s", ErrMalformed, expression)
	}

	body := expression[1 : len(expression)-1]
	left, rest, err := operand(body)
	if err != nil {
		return nil, err
	}
	if len(rest) == 0 || !isOp(rest[0]) {
		return nil, fmt.Errorf("%w: missing operator in %s", ErrMalformed, expression)
	}
	op := rest[0]

	right, rest, err := operand(rest[1:])
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: unexpected %s", ErrMalformed, rest)
	}

	dst := make([]byte, 0, len(expression)+8)
	dst = append(dst, '(')
	dst = append(dst, left...)
	dst = append(dst, op)
	dst = append(dst, right...)
	return append(dst, ')'), nil
}

func operand(src []byte) ([]byte, []byte, error) {
	negative := len(src) > 0 && src[0] == '-'
	if negative {
		src = src[1:]
	}

	i := 0
	for i < len(src) && src[i] >= '0' && src[i] <= '9' {
		i++
	}
	if i == 0 {
		return nil, nil, fmt.Errorf("%w: missing digits", ErrMalformed)
	}

	digits := src[:i]
	if !negative {
		return digits, src[i:], nil
	}

	value := make([]byte, 0, len(digits)+4)
	value = append(value, "(0-"...)
	value = append(value, digits...)
	return append(value, ')'), src[i:], nil
}

func isOp(b byte) bool {
	return b == '+' || b == '-' || b == '*' || b == '/'
}

func toInt64(value interface{}) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case string:
		return format.ParseStrInt64(v)
	}

	return 0, fmt.Errorf("not support convert %T to int64", value)
}

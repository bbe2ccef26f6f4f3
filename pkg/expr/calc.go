package expr

import (
	engine "github.com/fagongzi/expr"
)

func add(left interface{}, right engine.Expr, ctx interface{}) (interface{}, error) {
	a, b, err := operands(left, right, ctx)
	if err != nil {
		return nil, err
	}

	return a + b, nil
}

func minus(left interface{}, right engine.Expr, ctx interface{}) (interface{}, error) {
	a, b, err := operands(left, right, ctx)
	if err != nil {
		return nil, err
	}

	return a - b, nil
}

func multiplication(left interface{}, right engine.Expr, ctx interface{}) (interface{}, error) {
	a, b, err := operands(left, right, ctx)
	if err != nil {
		return nil, err
	}

	return a * b, nil
}

func division(left interface{}, right engine.Expr, ctx interface{}) (interface{}, error) {
	a, b, err := operands(left, right, ctx)
	if err != nil {
		return nil, err
	}

	if b == 0 {
		return int64(-1), nil
	}
	return a / b, nil
}

func operands(left interface{}, right engine.Expr, ctx interface{}) (int64, int64, error) {
	a, err := toInt64(left)
	if err != nil {
		return 0, 0, err
	}

	value, err := right.Exec(ctx)
	if err != nil {
		return 0, 0, err
	}

	b, err := toInt64(value)
	if err != nil {
		return 0, 0, err
	}

	return a, b, nil
}

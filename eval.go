package rpncalc

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrOverflow       = errors.New("integer overflow")
)

// ArithmeticError reports a failure while evaluating Expr. Err is
// ErrDivisionByZero or ErrOverflow.
type ArithmeticError struct {
	Expr Expr
	Err  error
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("%v: %v", e.Expr, e.Err)
}

func (e *ArithmeticError) Unwrap() error {
	return e.Err
}

// Eval evaluates the tree rooted at e.
func Eval(e Expr) (*IntConst, error) {
	return e.Eval()
}

func (c *IntConst) Eval() (*IntConst, error) {
	return c, nil
}

func (b *BinaryOp) Eval() (*IntConst, error) {
	left, err := b.Left.Eval()
	if err != nil {
		return nil, err
	}
	right, err := b.Right.Eval()
	if err != nil {
		return nil, err
	}
	v, err := b.Op.Apply(left.Value, right.Value)
	if err != nil {
		return nil, &ArithmeticError{Expr: b, Err: err}
	}
	return NewIntConst(v), nil
}

func (u *UnaryOp) Eval() (*IntConst, error) {
	operand, err := u.Operand.Eval()
	if err != nil {
		return nil, err
	}
	v, err := u.Op.Apply(operand.Value)
	if err != nil {
		return nil, &ArithmeticError{Expr: u, Err: err}
	}
	return NewIntConst(v), nil
}

// Apply computes a op b. Division rounds toward negative infinity.
func (op BinaryOperator) Apply(a, b int64) (int64, error) {
	switch op {
	case OpAdd:
		r := a + b
		if (a >= 0) == (b >= 0) && (r >= 0) != (a >= 0) {
			return 0, ErrOverflow
		}
		return r, nil
	case OpSub:
		r := a - b
		if (a >= 0) != (b >= 0) && (r >= 0) != (a >= 0) {
			return 0, ErrOverflow
		}
		return r, nil
	case OpMul:
		if a == 0 || b == 0 {
			return 0, nil
		}
		if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
			return 0, ErrOverflow
		}
		r := a * b
		if r/b != a {
			return 0, ErrOverflow
		}
		return r, nil
	case OpDiv:
		return floorDiv(a, b)
	}
	panic("rpncalc: unknown binary operator " + op.Name())
}

// Apply computes op a.
func (op UnaryOperator) Apply(a int64) (int64, error) {
	switch op {
	case OpAbs:
		if a >= 0 {
			return a, nil
		}
		fallthrough
	case OpNeg:
		if a == math.MinInt64 {
			return 0, ErrOverflow
		}
		return 0 - a, nil
	}
	panic("rpncalc: unknown unary operator " + op.Name())
}

func floorDiv(a, b int64) (int64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	if a == math.MinInt64 && b == -1 {
		return 0, ErrOverflow
	}
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q, nil
}

package rpncalc

import (
	"bytes"
	"fmt"
	"strconv"
)

// Expr is a node of an expression tree. The set of implementations is
// closed: *IntConst, *BinaryOp and *UnaryOp.
type Expr interface {
	// Eval reduces the tree to a single constant.
	Eval() (*IntConst, error)
	// String returns the fully parenthesized infix form.
	String() string
	// Canonical returns the constructor-shaped form, e.g. Plus(IntConst(5), IntConst(4)).
	Canonical() string

	expr()
}

// BinaryOperator tags a BinaryOp: Add, Subtract, Multiply or floor Divide.
type BinaryOperator int

const (
	OpAdd BinaryOperator = iota
	OpSub
	OpMul
	OpDiv
)

// UnaryOperator tags a UnaryOp: absolute value or negation.
type UnaryOperator int

const (
	OpAbs UnaryOperator = iota
	OpNeg
)

var binaryOps = [...]struct {
	name   string
	symbol string
}{
	OpAdd: {"Plus", "+"},
	OpSub: {"Minus", "-"},
	OpMul: {"Times", "*"},
	OpDiv: {"Div", "/"},
}

var unaryOps = [...]struct {
	name   string
	symbol string
}{
	OpAbs: {"Abs", "@"},
	OpNeg: {"Neg", "~"},
}

func (op BinaryOperator) valid() bool {
	return op >= 0 && int(op) < len(binaryOps)
}

func (op BinaryOperator) Symbol() string {
	if !op.valid() {
		return "?"
	}
	return binaryOps[op].symbol
}

func (op BinaryOperator) Name() string {
	if !op.valid() {
		return fmt.Sprintf("BinaryOperator(%d)", int(op))
	}
	return binaryOps[op].name
}

func (op BinaryOperator) String() string {
	return op.Symbol()
}

func (op UnaryOperator) valid() bool {
	return op >= 0 && int(op) < len(unaryOps)
}

func (op UnaryOperator) Symbol() string {
	if !op.valid() {
		return "?"
	}
	return unaryOps[op].symbol
}

func (op UnaryOperator) Name() string {
	if !op.valid() {
		return fmt.Sprintf("UnaryOperator(%d)", int(op))
	}
	return unaryOps[op].name
}

func (op UnaryOperator) String() string {
	return op.Symbol()
}

// IntConst is an integer leaf.
type IntConst struct {
	Value int64
}

// BinaryOp applies Op to Left and Right.
type BinaryOp struct {
	Op          BinaryOperator
	Left, Right Expr
}

// UnaryOp applies Op to Operand.
type UnaryOp struct {
	Op      UnaryOperator
	Operand Expr
}

// NewIntConst returns a leaf holding v.
func NewIntConst(v int64) *IntConst {
	return &IntConst{Value: v}
}

// NewBinaryOp returns left op right. It panics on a nil operand.
func NewBinaryOp(op BinaryOperator, left, right Expr) *BinaryOp {
	if left == nil || right == nil {
		panic("rpncalc: nil operand for " + op.Name())
	}
	return &BinaryOp{Op: op, Left: left, Right: right}
}

// NewUnaryOp returns op operand. It panics on a nil operand.
func NewUnaryOp(op UnaryOperator, operand Expr) *UnaryOp {
	if operand == nil {
		panic("rpncalc: nil operand for " + op.Name())
	}
	return &UnaryOp{Op: op, Operand: operand}
}

func (*IntConst) expr() {}
func (*BinaryOp) expr() {}
func (*UnaryOp) expr()  {}

func (c *IntConst) String() string {
	return strconv.FormatInt(c.Value, 10)
}

func (b *BinaryOp) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "(%v %s %v)", b.Left, b.Op.Symbol(), b.Right)
	return buf.String()
}

func (u *UnaryOp) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "(%s %v)", u.Op.Symbol(), u.Operand)
	return buf.String()
}

func (c *IntConst) Canonical() string {
	return "IntConst(" + strconv.FormatInt(c.Value, 10) + ")"
}

func (b *BinaryOp) Canonical() string {
	return b.Op.Name() + "(" + b.Left.Canonical() + ", " + b.Right.Canonical() + ")"
}

func (u *UnaryOp) Canonical() string {
	return u.Op.Name() + "(" + u.Operand.Canonical() + ")"
}

func (c *IntConst) GoString() string { return c.Canonical() }
func (b *BinaryOp) GoString() string { return b.Canonical() }
func (u *UnaryOp) GoString() string  { return u.Canonical() }

// Equal reports whether a and b have the same shape, operators and values.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case *IntConst:
		y, ok := b.(*IntConst)
		return ok && x.Value == y.Value
	case *BinaryOp:
		y, ok := b.(*BinaryOp)
		return ok && x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *UnaryOp:
		y, ok := b.(*UnaryOp)
		return ok && x.Op == y.Op && Equal(x.Operand, y.Operand)
	case nil:
		return b == nil
	}
	panic(fmt.Sprintf("rpncalc: unknown node %T", a))
}

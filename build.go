package rpncalc

import (
	"errors"
	"fmt"
	"io"
	"strconv"
)

var ErrImbalanced = errors.New("imbalanced RPN expression")

// ImbalanceError reports an operator that found too few operands on the
// stack.
type ImbalanceError struct {
	Token Token
}

func (e *ImbalanceError) Error() string {
	return fmt.Sprintf("%v, missing operand at %v (%d)", ErrImbalanced, e.Token, e.Token.Pos)
}

func (e *ImbalanceError) Is(target error) bool {
	return target == ErrImbalanced
}

var (
	binaryTokens = map[TokenKind]BinaryOperator{
		TokenPlus:  OpAdd,
		TokenMinus: OpSub,
		TokenTimes: OpMul,
		TokenDiv:   OpDiv,
	}
	unaryTokens = map[TokenKind]UnaryOperator{
		TokenAbs: OpAbs,
		TokenNeg: OpNeg,
	}
)

type stack []Expr

func (s *stack) push(e Expr) {
	*s = append(*s, e)
}

func (s *stack) pop() (Expr, bool) {
	n := len(*s)
	if n == 0 {
		return nil, false
	}
	e := (*s)[n-1]
	(*s)[n-1] = nil
	*s = (*s)[:n-1]
	return e, true
}

// Build assembles RPN tokens into expression trees. Every balanced
// sub-expression left on the stack is returned, oldest first. No tokens
// yields no trees and no error. A TokenEOF ends the input.
func Build(tokens []Token) ([]Expr, error) {
	var st stack
	for _, tok := range tokens {
		if tok.Kind == TokenEOF {
			break
		}
		if tok.Kind == TokenInt {
			v, err := strconv.ParseInt(tok.Text, 10, 64)
			if err != nil {
				return nil, &LexicalError{Pos: tok.Pos, Text: tok.Text, Err: err}
			}
			st.push(NewIntConst(v))
			continue
		}
		if op, ok := binaryTokens[tok.Kind]; ok {
			right, ok := st.pop()
			if !ok {
				return nil, &ImbalanceError{Token: tok}
			}
			left, ok := st.pop()
			if !ok {
				return nil, &ImbalanceError{Token: tok}
			}
			st.push(NewBinaryOp(op, left, right))
			continue
		}
		if op, ok := unaryTokens[tok.Kind]; ok {
			operand, ok := st.pop()
			if !ok {
				return nil, &ImbalanceError{Token: tok}
			}
			st.push(NewUnaryOp(op, operand))
			continue
		}
		panic(fmt.Sprintf("rpncalc: unexpected token %v of kind %d", tok, int(tok.Kind)))
	}
	return []Expr(st), nil
}

// Parse scans r and builds its expression trees.
func Parse(r io.Reader) ([]Expr, error) {
	toks, err := Tokens(r)
	if err != nil {
		return nil, err
	}
	return Build(toks)
}

package rpncalc

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokens(t *testing.T) {
	tests := []struct {
		input string
		want  []Token
	}{
		{
			input: "",
			want:  nil,
		},
		{
			input: "   \t ",
			want:  nil,
		},
		{
			input: "3 4 +",
			want: []Token{
				{Kind: TokenInt, Text: "3", Pos: 0},
				{Kind: TokenInt, Text: "4", Pos: 2},
				{Kind: TokenPlus, Text: "+", Pos: 4},
			},
		},
		{
			input: "12 3-*/@~",
			want: []Token{
				{Kind: TokenInt, Text: "12", Pos: 0},
				{Kind: TokenInt, Text: "3", Pos: 3},
				{Kind: TokenMinus, Text: "-", Pos: 4},
				{Kind: TokenTimes, Text: "*", Pos: 5},
				{Kind: TokenDiv, Text: "/", Pos: 6},
				{Kind: TokenAbs, Text: "@", Pos: 7},
				{Kind: TokenNeg, Text: "~", Pos: 8},
			},
		},
		{
			input: "1 # the rest is ignored +\n2",
			want: []Token{
				{Kind: TokenInt, Text: "1", Pos: 0},
				{Kind: TokenInt, Text: "2", Pos: 26},
			},
		},
	}
	for _, test := range tests {
		got, err := Tokens(strings.NewReader(test.input))
		if err != nil {
			t.Errorf("%q: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%q: (-want +got)\n%s", test.input, diff)
		}
	}
}

func TestScannerEOF(t *testing.T) {
	s := NewScanner(strings.NewReader("7"))
	tok, err := s.Next()
	if err != nil {
		t.Fatal(err)
	}
	if tok.Kind != TokenInt || tok.Text != "7" {
		t.Fatalf("got %+v, want integer 7", tok)
	}
	for i := 0; i < 2; i++ {
		tok, err = s.Next()
		if err != nil {
			t.Fatal(err)
		}
		if tok.Kind != TokenEOF {
			t.Errorf("got %v, want %v", tok.Kind, TokenEOF)
		}
	}
}

func TestLexicalError(t *testing.T) {
	tests := []struct {
		input string
		pos   int
		text  string
	}{
		{input: "3 x +", pos: 2, text: "x"},
		{input: "1 2 %", pos: 4, text: "%"},
		{input: "4 é", pos: 2, text: "é"},
		{input: "9223372036854775808", pos: 0, text: "9223372036854775808"},
	}
	for _, test := range tests {
		_, err := Tokens(strings.NewReader(test.input))
		var lerr *LexicalError
		if !errors.As(err, &lerr) {
			t.Errorf("%q: got %v, want *LexicalError", test.input, err)
			continue
		}
		if lerr.Pos != test.pos || lerr.Text != test.text {
			t.Errorf("%q: got %q at %d, want %q at %d", test.input, lerr.Text, lerr.Pos, test.text, test.pos)
		}
	}

	_, err := Tokens(strings.NewReader("9223372036854775808"))
	if !errors.Is(err, strconv.ErrRange) {
		t.Errorf("out of range literal should wrap strconv.ErrRange, got %v", err)
	}
}

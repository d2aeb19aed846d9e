package rpncalc

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"unicode"
)

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenInt
	TokenPlus
	TokenMinus
	TokenTimes
	TokenDiv
	TokenAbs
	TokenNeg
)

var tokenNames = map[TokenKind]string{
	TokenEOF:   "end of input",
	TokenInt:   "integer",
	TokenPlus:  "+",
	TokenMinus: "-",
	TokenTimes: "*",
	TokenDiv:   "/",
	TokenAbs:   "@",
	TokenNeg:   "~",
}

var symbolTokens = map[rune]TokenKind{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenTimes,
	'/': TokenDiv,
	'@': TokenAbs,
	'~': TokenNeg,
}

func (k TokenKind) String() string {
	if s, ok := tokenNames[k]; ok {
		return s
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is one classified lexeme. Pos is the byte offset of its first rune.
type Token struct {
	Kind TokenKind
	Text string
	Pos  int
}

func (t Token) String() string {
	if t.Kind == TokenEOF {
		return t.Kind.String()
	}
	return t.Text
}

// LexicalError reports input the scanner cannot classify.
type LexicalError struct {
	Pos  int
	Text string
	Err  error
}

func (e *LexicalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid token: %q (%d): %v", e.Text, e.Pos, e.Err)
	}
	return fmt.Sprintf("invalid token: %q (%d)", e.Text, e.Pos)
}

func (e *LexicalError) Unwrap() error {
	return e.Err
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		buf: bufio.NewReader(r),
	}
}

type Scanner struct {
	buf *bufio.Reader
	pos int
}

func (s *Scanner) Pos() int {
	return s.pos
}

func (s *Scanner) readRune() (rune, int, error) {
	r, n, err := s.buf.ReadRune()
	s.pos += n
	return r, n, err
}

func (s *Scanner) unreadRune(n int) error {
	err := s.buf.UnreadRune()
	if err == nil {
		s.pos -= n
	}
	return err
}

func (s *Scanner) SkipWhite() {
	for {
		r, n, err := s.readRune()
		if err != nil {
			return
		}
		if r == '#' {
			for {
				r, _, err = s.readRune()
				if err != nil {
					return
				}
				if r == '\n' {
					break
				}
			}
			continue
		}
		if !unicode.IsSpace(r) {
			s.unreadRune(n)
			return
		}
	}
}

func (s *Scanner) scanInt(start int) (Token, error) {
	var buf bytes.Buffer
	for {
		r, n, err := s.readRune()
		if err != nil {
			if err == io.EOF {
				break
			}
			return Token{}, err
		}
		if r < '0' || r > '9' {
			s.unreadRune(n)
			break
		}
		buf.WriteRune(r)
	}
	text := buf.String()
	if _, err := strconv.ParseInt(text, 10, 64); err != nil {
		return Token{}, &LexicalError{Pos: start, Text: text, Err: err}
	}
	return Token{Kind: TokenInt, Text: text, Pos: start}, nil
}

// Next returns the next token, or a TokenEOF token once the input is
// exhausted.
func (s *Scanner) Next() (Token, error) {
	s.SkipWhite()
	start := s.pos
	r, n, err := s.readRune()
	if err != nil {
		if err == io.EOF {
			return Token{Kind: TokenEOF, Pos: start}, nil
		}
		return Token{}, err
	}
	if r >= '0' && r <= '9' {
		s.unreadRune(n)
		return s.scanInt(start)
	}
	if kind, ok := symbolTokens[r]; ok {
		return Token{Kind: kind, Text: string(r), Pos: start}, nil
	}
	return Token{}, &LexicalError{Pos: start, Text: string(r)}
}

// Tokens scans r to the end and returns its tokens, without the trailing
// TokenEOF.
func Tokens(r io.Reader) ([]Token, error) {
	s := NewScanner(r)
	var toks []Token
	for {
		tok, err := s.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenEOF {
			return toks, nil
		}
		toks = append(toks, tok)
	}
}

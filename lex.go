package calc

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

type lexToken struct {
	text  string
	value float64
	kind  tokenKind
	pos   int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a number, possibly with a sign and a decimal point.
	tokenNum
	// tokenOp is an operator.
	tokenOp
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are binary operators, in order of
// increasing precedence rank.
const Operators = "-+/x"

// DecimalPoint separates the integer and fractional parts of a number.
const DecimalPoint = '.'

// lexer scans numbers and operators in alternation, beginning with a number.
type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	// op is whether the next token must be an operator.
	op  bool
	eof bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. The first time the input ends
// after a number, the result is an EOF token with a nil error. Subsequent
// calls return an empty token with io.EOF.
func (l *lexer) next() (lexToken, error) {
	if l.eof {
		return lexToken{}, io.EOF
	}
	if !l.op {
		l.op = true
		return l.scanNum()
	}
	l.op = false
	tok := lexToken{pos: l.rune}
	r, err := l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			tok.kind = tokenEOF
			l.eof = true
			return tok, nil
		}
		return tok, err
	}
	if !strings.ContainsRune(Operators, r) {
		return tok, &OperatorError{Col: tok.pos, Operator: string(r)}
	}
	tok.text = string(r)
	tok.kind = tokenOp
	return tok, nil
}

// scanNum scans a number. A minus sign belongs to the number only as its first
// rune. The rune that ends the number is left unread.
func (l *lexer) scanNum() (lexToken, error) {
	defer l.buf.Reset()
	tok := lexToken{pos: l.rune}
	dots := 0
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return tok, err
		}
		switch {
		case '0' <= r && r <= '9':
		case r == DecimalPoint:
			dots++
		case r == '-' && l.buf.Len() == 0:
		default:
			l.unreadRune()
			if l.buf.Len() == 0 {
				if !strings.ContainsRune(Operators, r) {
					return tok, &OperatorError{Col: tok.pos, Operator: string(r)}
				}
				return tok, &LiteralError{Col: tok.pos, End: string(r)}
			}
			return l.literal(tok, dots)
		}
		l.buf.WriteRune(r)
	}
	if l.buf.Len() == 0 {
		return tok, &LiteralError{Col: tok.pos}
	}
	return l.literal(tok, dots)
}

// literal finishes a number token from the buffered text.
func (l *lexer) literal(tok lexToken, dots int) (lexToken, error) {
	tok.text = l.buf.String()
	if dots > 1 {
		return tok, &LiteralError{Col: tok.pos, Text: tok.text}
	}
	v, err := strconv.ParseFloat(tok.text, 64)
	if err != nil {
		// Literals too large for a float64 become infinities, the same as the
		// result of an overflowing operation would.
		var ne *strconv.NumError
		if !errors.As(err, &ne) || !errors.Is(ne.Err, strconv.ErrRange) {
			return tok, &LiteralError{Col: tok.pos, Text: tok.text}
		}
	}
	tok.value = v
	tok.kind = tokenNum
	return tok, nil
}

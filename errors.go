package calc

import "strconv"

// LiteralError is an error indicating a number that is missing or malformed.
// It implements ParseError.
type LiteralError struct {
	// Col is the position of the start of the literal, or of the token that
	// ended it if the literal is empty.
	Col int
	// Text is the literal text. It is empty for a missing literal.
	Text string
	// End is the operator that ended the literal. It is empty if the literal
	// ran to the end of the expression.
	End string
}

func (err *LiteralError) Error() string {
	if err.Text != "" {
		return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
	}
	if err.End == "" {
		return errpos(err.Col, "no number at end")
	}
	return errpos(err.Col, "no number before "+strconv.Quote(err.End))
}

func (err *LiteralError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating a character that is neither part of a
// number nor an operator. It implements ParseError.
type OperatorError struct {
	// Col is the position of the character.
	Col int
	// Operator is the character that was not understood.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "unknown operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating that there was nothing to
// evaluate. It implements ParseError.
type EmptyExpressionError struct {
	// Col is the position where an expression was expected. Since only one
	// pending operator is ever dropped, it is always 1.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "no expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// ParseError is an error with position information. Every error returned from
// Build implements ParseError.
type ParseError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ ParseError = (*LiteralError)(nil)
	_ ParseError = (*OperatorError)(nil)
	_ ParseError = (*EmptyExpressionError)(nil)
)

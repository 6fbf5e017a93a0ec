package calc

import (
	"strings"
	"unicode/utf8"
)

// Build builds the operand tree of an expression. If the last rune of the
// expression is not a digit, it is an operator still waiting for its right
// operand, and it is ignored. Errors from Build implement ParseError.
func Build(expression string) (*Tree, error) {
	expression = dropPending(expression)
	if expression == "" {
		return nil, &EmptyExpressionError{Col: 1}
	}
	scan := lex(strings.NewReader(expression))
	t := Tree{
		// Numbers and operators alternate, so a display of n runes holds at
		// most n operands.
		nodes: make([]node, 0, len(expression)),
		root:  nilNode,
	}
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenNum:
			t.insert(t.add(node{kind: Number, text: tok.text, value: tok.value}))
		case tokenOp:
			k := binop(tok.text)
			if k == Invalid {
				return nil, &OperatorError{Col: tok.pos, Operator: tok.text}
			}
			t.insert(t.add(node{kind: k}))
		case tokenEOF:
			return &t, nil
		default:
			panic("calc: unknown token: " + tok.String())
		}
	}
}

// dropPending removes the last rune of expression if it is not a digit.
func dropPending(expression string) string {
	r, sz := utf8.DecodeLastRuneInString(expression)
	if sz == 0 || '0' <= r && r <= '9' {
		return expression
	}
	return expression[:len(expression)-sz]
}

// binop gets the operator kind for a token string. If there is no such
// operator, then the result is Invalid.
func binop(text string) Kind {
	switch text {
	case "-":
		return Minus
	case "+":
		return Plus
	case "/":
		return Div
	case "x":
		return Times
	default:
		return Invalid
	}
}

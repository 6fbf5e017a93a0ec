package calc

// Eval evaluates the tree. Division by zero is not an error: it produces an
// infinity, or NaN for 0/0, as IEEE 754 specifies.
func (t *Tree) Eval() float64 {
	if len(t.nodes) == 0 {
		return 0
	}
	return t.eval(t.root)
}

func (t *Tree) eval(i int) float64 {
	n := &t.nodes[i]
	switch n.kind {
	case Number:
		return n.value
	case Minus:
		return t.eval(n.left) - t.eval(n.right)
	case Plus:
		return t.eval(n.left) + t.eval(n.right)
	case Div:
		return t.eval(n.left) / t.eval(n.right)
	case Times:
		return t.eval(n.left) * t.eval(n.right)
	default:
		panic("calc: invalid tree node " + n.kind.String())
	}
}

// Eval is a shortcut to build an expression and evaluate it. If the expression
// cannot be built, the result is 0 and the error is a ParseError.
func Eval(expression string) (float64, error) {
	t, err := Build(expression)
	if err != nil {
		return 0, err
	}
	return t.Eval(), nil
}

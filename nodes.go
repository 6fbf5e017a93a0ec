package calc

import (
	"strconv"
	"strings"
)

// Kind is the kind of an operand. The numeric value of a Kind is its
// precedence rank: operators with lower ranks bind more loosely.
type Kind int8

const (
	// Invalid is the zero Kind. It never appears in a built tree.
	Invalid Kind = iota

	Minus  // left - right
	Plus   // left + right
	Div    // left / right
	Times  // left x right
	Number // literal value
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case Minus:
		return "Minus"
	case Plus:
		return "Plus"
	case Div:
		return "Div"
	case Times:
		return "Times"
	case Number:
		return "Number"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// looser returns whether k binds more loosely than other.
func (k Kind) looser(other Kind) bool {
	return k < other
}

// symbol returns the display operator for k.
func (k Kind) symbol() string {
	switch k {
	case Minus:
		return "-"
	case Plus:
		return "+"
	case Div:
		return "/"
	case Times:
		return "x"
	default:
		return "?"
	}
}

// nilNode is the index used for a missing child.
const nilNode = -1

// node is an operand in a Tree's arena. Children are indices into the same
// arena.
type node struct {
	kind  Kind
	text  string
	value float64

	left  int
	right int
}

// Tree is a built expression. It is immutable once Build returns it, so it is
// safe to evaluate from multiple goroutines. The zero Tree is empty: it
// evaluates to 0, formats as the empty string, and has a nil Operand.
type Tree struct {
	nodes []node
	root  int
}

// add appends a childless node to the arena and returns its index.
func (t *Tree) add(n node) int {
	n.left, n.right = nilNode, nilNode
	t.nodes = append(t.nodes, n)
	return len(t.nodes) - 1
}

// insert links the node at index e into the tree. Starting from the root, e
// walks down right children until it reaches an empty slot or a node that
// binds more tightly than e does. In the latter case, e takes that node's
// place and the node becomes e's left operand.
func (t *Tree) insert(e int) {
	k := t.nodes[e].kind
	parent, cur := nilNode, t.root
	for cur != nilNode && !k.looser(t.nodes[cur].kind) {
		parent, cur = cur, t.nodes[cur].right
	}
	t.nodes[e].left = cur
	if parent == nilNode {
		t.root = e
		return
	}
	t.nodes[parent].right = e
}

// Len returns the number of operands in the tree, counting both literals and
// operators.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Operand is a node of an expression tree in an owned, recursive form. For a
// Number, Left and Right are nil. For an operator, both are non-nil.
type Operand struct {
	Kind  Kind
	Value float64
	// Text is the literal as it appeared in the expression. It is empty for
	// operators.
	Text  string
	Left  *Operand
	Right *Operand
}

// Operand returns a copy of the tree as a recursive structure. Changes to the
// result do not affect t.
func (t *Tree) Operand() *Operand {
	if len(t.nodes) == 0 {
		return nil
	}
	return t.operand(t.root)
}

func (t *Tree) operand(i int) *Operand {
	if i == nilNode {
		return nil
	}
	n := &t.nodes[i]
	return &Operand{
		Kind:  n.kind,
		Value: n.value,
		Text:  n.text,
		Left:  t.operand(n.left),
		Right: t.operand(n.right),
	}
}

// String formats the tree with every operand in brackets, alternating round
// and square brackets with depth.
func (t *Tree) String() string {
	if len(t.nodes) == 0 {
		return ""
	}
	var b strings.Builder
	t.fmt(&b, t.root, false)
	return b.String()
}

func (t *Tree) fmt(b *strings.Builder, i int, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	n := &t.nodes[i]
	switch n.kind {
	case Number:
		b.WriteString(n.text)
	case Minus, Plus, Div, Times:
		t.fmt(b, n.left, !square)
		b.WriteByte(' ')
		b.WriteString(n.kind.symbol())
		b.WriteByte(' ')
		t.fmt(b, n.right, !square)
	default:
		panic("calc: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

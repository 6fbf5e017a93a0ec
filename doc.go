// Package calc implements the expression core of a keypad calculator.
//
// A keypad calculator's display holds a flat string like "12+3x-4.5". Build
// turns such a string into a binary tree of operands, and the tree's Eval
// method reduces it to a float64. There are no parentheses. A minus sign
// which begins a number, at the start of the display or right after another
// operator, is part of that number. If the display ends with an operator
// that is still waiting for its right operand, the operator is ignored.
//
// Trees are shaped by precedence rank rather than by precedence climbing.
// The ranks from loosest to tightest are -, +, /, x. The root of every
// subexpression is its first operator of lowest rank, so "2+3x4" is
// "2+(3x4)", but chains group to the right: "1-2-3" is "1-(2-3)", and
// "1-2+3" is "1-(2+3)".
//
// Division by zero follows IEEE 754: 4/0 is +Inf and 0/0 is NaN. Neither is an
// error.
package calc

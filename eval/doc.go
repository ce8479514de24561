// Package eval implements the calculator model: a small arithmetic expression
// evaluator.
//
// Only numbers, parentheses and the operators + - * / ** // are accepted.
// Anything else is rejected by the parser instead of being executed.
package eval

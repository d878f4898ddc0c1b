// Package calc is kalk's arithmetic expression engine.
//
// It validates and evaluates infix expressions built from decimal literals,
// the binary operators + - * / ^, parentheses and unary minus, and renders
// results as apostrophe-grouped display text.
//
// Evaluation re-scans the current substring once per precedence tier:
//
//  1. additive (+ -), right to left, split at the last top-level operator
//  2. multiplicative (* /), right to left, split at the last top-level operator
//  3. power (^), left to right, split at the first top-level operator
//  4. one layer of enclosing parentheses
//  5. unary minus
//  6. decimal literal
//
// Scan direction and split position give + - * / left associativity and ^
// right associativity. A + or - directly after another operator or an
// opening parenthesis is a sign, not a binary operator.
//
// Every function is pure and safe for concurrent use. Failures are returned
// as *domain.CalcError values; the engine never panics on malformed input.
package calc

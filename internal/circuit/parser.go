package circuit

import (
	"github.com/sqyyy-jar/sqyyy-bot/internal/emulator"
)

// group is one parser stack frame. The bottom element is the implicit
// root group (it has no name and is never popped); every other element
// is an open call such as "and(" with the '!' state captured at the
// time it was opened.
type group struct {
	name     string
	inverted bool
	operands []emulator.Component
}

// Parse consumes a token sequence produced by Tokenize and returns the
// input arity (one plus the highest input index referenced) together
// with the gate tree for the line's single expression.
//
// The parser is a single forward pass over the tokens with an explicit
// group stack, a pending-inversion flag toggled by '!', and an
// expect-operand flag that tracks whether the grammar allows an operand
// or a separator next. No recursion, no backtracking.
func Parse(tokens []Token) (int, emulator.Component, error) {
	stack := []*group{{}}
	inverted := false
	expectOperand := true
	maxInput := 0

	push := func(c emulator.Component) {
		top := stack[len(stack)-1]
		top.operands = append(top.operands, c)
	}

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok.Kind {
		case TokenLeftParen:
			// A '(' is only ever consumed together with the identifier
			// naming a call; a bare one is always an error.
			return 0, nil, &UnexpectedTokenError{Token: tok}

		case TokenRightParen:
			if expectOperand || len(stack) == 1 {
				return 0, nil, ErrUnexpectedRightParen
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			var node emulator.Component
			switch top.name {
			case "and":
				node = emulator.And(top.operands...)
			case "or":
				node = emulator.Or(top.operands...)
			default:
				return 0, nil, &UnknownFunctionError{Name: top.name}
			}
			if top.inverted {
				node = emulator.Not(node)
			}
			push(node)
			if len(stack) == 1 && i+1 < len(tokens) {
				return 0, nil, ErrTrailingTokens
			}

		case TokenNot:
			inverted = !inverted

		case TokenComma:
			if len(stack) == 1 || expectOperand {
				return 0, nil, ErrUnexpectedComma
			}
			expectOperand = true

		case TokenInput:
			if !expectOperand {
				return 0, nil, &UnexpectedTokenError{Token: tok}
			}
			expectOperand = false
			if tok.Index >= maxInput {
				maxInput = tok.Index + 1
			}
			node := emulator.Input(tok.Index)
			if inverted {
				node = emulator.Not(node)
			}
			inverted = false
			push(node)
			// A bare input at root level is a complete expression on
			// its own; anything after it is trailing garbage.
			if len(stack) == 1 && i+1 < len(tokens) {
				return 0, nil, ErrTrailingTokens
			}

		case TokenIdentifier:
			if !expectOperand {
				return 0, nil, &UnexpectedTokenError{Token: tok}
			}
			if i+1 >= len(tokens) {
				return 0, nil, ErrUnexpectedEnd
			}
			i++
			if tokens[i].Kind != TokenLeftParen {
				return 0, nil, &UnexpectedTokenError{Token: tok}
			}
			stack = append(stack, &group{name: tok.Text, inverted: inverted})
			inverted = false
			expectOperand = true
		}
	}

	if len(stack) != 1 {
		return 0, nil, ErrInvalidParentheses
	}
	root := stack[0]
	if len(root.operands) == 0 {
		return 0, nil, ErrEmptyExpression
	}
	return maxInput, root.operands[0], nil
}

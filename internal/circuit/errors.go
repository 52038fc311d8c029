package circuit

import (
	"errors"
	"fmt"
)

// Sentinel errors for grammar violations that carry no payload. The
// messages are shown verbatim to the end user by the command layer.
var (
	ErrUnexpectedRightParen = errors.New("Invalid closing parenthesis in code")
	ErrUnexpectedComma      = errors.New("Unexpected comma in code")
	ErrTrailingTokens       = errors.New("Unexpected tokens after expression")
	ErrInvalidParentheses   = errors.New("Invalid parentheses in code")
	ErrEmptyExpression      = errors.New("The expression cannot be empty")
	ErrUnexpectedEnd        = errors.New("Unexpected end of code")
)

// InvalidNumberError reports a '.' that was not followed by a usable
// decimal input index. Text holds the digit run that was consumed,
// possibly empty.
type InvalidNumberError struct {
	Text string
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("%q is not a valid number", e.Text)
}

// UnexpectedTokenError reports a token in a position the grammar
// forbids.
type UnexpectedTokenError struct {
	Token Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("%s was not expected", e.Token)
}

// UnknownFunctionError reports a call to a function that is not "and"
// or "or".
type UnknownFunctionError struct {
	Name string
}

func (e *UnknownFunctionError) Error() string {
	return fmt.Sprintf("The function %q is unknown", e.Name)
}

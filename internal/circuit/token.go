// Package circuit implements the textual front end for gate networks:
// a tokenizer and a single-pass, stack-driven parser that turn one line
// of source text into an input count and a gate tree ready for the
// emulator.
package circuit

import "fmt"

// TokenKind identifies the type of a lexical token.
type TokenKind int

const (
	TokenLeftParen  TokenKind = iota // (
	TokenRightParen                  // )
	TokenNot                         // !
	TokenComma                       // ,
	TokenInput                       // .<digits>, zero-based input reference
	TokenIdentifier                  // anything else, e.g. a function name
)

// Token is a single lexical unit produced by Tokenize.
type Token struct {
	Kind  TokenKind
	Text  string // identifier text, empty for other kinds
	Index int    // input index, only for TokenInput
}

// String renders the token the way error messages show it to the user.
func (t Token) String() string {
	switch t.Kind {
	case TokenLeftParen:
		return "'('"
	case TokenRightParen:
		return "')'"
	case TokenNot:
		return "'!'"
	case TokenComma:
		return "','"
	case TokenInput:
		return fmt.Sprintf("input .%d", t.Index)
	case TokenIdentifier:
		return fmt.Sprintf("identifier %q", t.Text)
	}
	return "unknown token"
}

package circuit

import (
	"strconv"
	"strings"
	"unicode"
)

// Tokenize scans one line of circuit source left to right and returns
// its tokens. Structural characters and whitespace terminate the
// identifier being accumulated; '.' starts a decimal input reference.
// There are no string literals, comments, or escape sequences.
func Tokenize(src string) ([]Token, error) {
	var tokens []Token
	var buf strings.Builder

	flush := func() {
		if buf.Len() > 0 {
			tokens = append(tokens, Token{Kind: TokenIdentifier, Text: buf.String()})
			buf.Reset()
		}
	}

	runes := []rune(src)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '(':
			flush()
			tokens = append(tokens, Token{Kind: TokenLeftParen})
		case r == ')':
			flush()
			tokens = append(tokens, Token{Kind: TokenRightParen})
		case r == '!':
			flush()
			tokens = append(tokens, Token{Kind: TokenNot})
		case r == ',':
			flush()
			tokens = append(tokens, Token{Kind: TokenComma})
		case r == '.':
			flush()
			j := i + 1
			for j < len(runes) && runes[j] >= '0' && runes[j] <= '9' {
				j++
			}
			text := string(runes[i+1 : j])
			index, err := strconv.Atoi(text)
			if err != nil {
				// Zero digits or out of range for int.
				return nil, &InvalidNumberError{Text: text}
			}
			tokens = append(tokens, Token{Kind: TokenInput, Index: index})
			i = j - 1
		case unicode.IsSpace(r):
			flush()
		default:
			buf.WriteRune(r)
		}
	}
	flush()

	return tokens, nil
}

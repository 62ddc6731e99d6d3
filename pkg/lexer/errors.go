package lexer

import "fmt"

var errUnterminatedString = fmt.Errorf("unterminated string literal")

func errInvalidEscape(ch byte) error {
	return fmt.Errorf("invalid escape sequence \\%c", ch)
}

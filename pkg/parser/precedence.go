package parser

import "github.com/conneroisu/emberlang/pkg/lexer"

// Operator precedence levels.
const (
	precedenceLowest  = iota
	precedenceOr      // ||
	precedenceAnd     // &&
	precedenceEquals  // == !=
	precedenceCompare // < > <= >=
	precedenceMember  // ? as is
	precedenceConcat  // ++
	precedenceRange   // : (range chaining)
	precedenceSum     // + -
	precedenceProduct // * / %
	precedenceCall    // function application
	precedenceIndex   // [ ] subscript
)

// precedenceMap maps token types to their precedence.
var precedenceMap = map[lexer.TokenType]int{
	lexer.TOKEN_OR_OP:    precedenceOr,
	lexer.TOKEN_AND_OP:   precedenceAnd,
	lexer.TOKEN_EQ:       precedenceEquals,
	lexer.TOKEN_NEQ:      precedenceEquals,
	lexer.TOKEN_LT:       precedenceCompare,
	lexer.TOKEN_GT:       precedenceCompare,
	lexer.TOKEN_LTE:      precedenceCompare,
	lexer.TOKEN_GTE:      precedenceCompare,
	lexer.TOKEN_QUESTION: precedenceMember,
	lexer.TOKEN_AS:       precedenceMember,
	lexer.TOKEN_IS:       precedenceMember,
	lexer.TOKEN_CONCAT:   precedenceConcat,
	lexer.TOKEN_COLON:    precedenceRange,
	lexer.TOKEN_PLUS:     precedenceSum,
	lexer.TOKEN_MINUS:    precedenceSum,
	lexer.TOKEN_MULTIPLY: precedenceProduct,
	lexer.TOKEN_DIVIDE:   precedenceProduct,
	lexer.TOKEN_MODULO:   precedenceProduct,
	lexer.TOKEN_LBRACKET: precedenceIndex,
}

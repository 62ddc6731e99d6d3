// Package lexer provides lexical analysis for ember source text.
//
// The lexer is the first stage of the interpreter pipeline, converting raw
// source into a stream of tokens for the parser.
//
// Token Recognition:
//   - Keywords: if, then, else, let, in, with, assert, rec, as, is
//   - Identifiers: variable names; true/false/none are recognized by the
//     parser as ordinary identifiers rather than lexical keywords.
//   - Literals: integers, nums (floats), strings (with `\n \t \r \" \\`
//     escapes)
//   - Operators: + - * / % == != < > <= >= && || ! ++ ? @
//   - Delimiters: ( ) { } [ ] ; : , =
//
// Comment Handling:
//   - Single-line comments starting with '#'
//   - Multi-line comments enclosed in /* */
//
// Position Tracking:
//   - Line/column information on every token for error reporting.
//
// The lexer follows the maximal munch principle, consuming the longest
// possible sequence of characters for each token.
//
// Usage Example:
//
//	l := lexer.New("let x = 42; in x + 1")
//	for {
//	    token := l.NextToken()
//	    if token.Type == lexer.TOKEN_EOF {
//	        break
//	    }
//	    fmt.Printf("%s: %s\n", token.Type, token.Literal)
//	}
package lexer

package sqlang

import "strings"

type TokenType int

const (
	TokenEOF TokenType = iota
	TokenKeyword
	TokenIdent
	TokenNumber
	TokenString
	TokenOperator
	TokenDelimiter
	TokenError
)

func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "eof"
	case TokenKeyword:
		return "keyword"
	case TokenIdent:
		return "identifier"
	case TokenNumber:
		return "number"
	case TokenString:
		return "string"
	case TokenOperator:
		return "operator"
	case TokenDelimiter:
		return "delimiter"
	case TokenError:
		return "error"
	}
	return "unknown"
}

// Token is a lexical unit with its raw text and 1-based source position.
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Col    int
}

func isKeyword(s string) bool {
	_, ok := keywords[strings.ToUpper(s)]
	return ok
}

var keywords = map[string]bool{
	"SELECT": true, "FROM": true, "WHERE": true, "INSERT": true, "INTO": true,
	"VALUES": true, "UPDATE": true, "SET": true, "DELETE": true,
	"CREATE": true, "TABLE": true, "PRIMARY": true, "KEY": true,
	"AND": true, "OR": true, "NOT": true, "NULL": true,
	"TRUE": true, "FALSE": true,
	"ORDER": true, "BY": true, "ASC": true, "DESC": true, "LIKE": true,
	// declared type names
	"INT": true, "FLOAT": true, "TEXT": true, "VARCHAR": true, "CHAR": true,
	"DATE": true, "DATETIME": true, "BOOLEAN": true, "BIGINT": true,
}

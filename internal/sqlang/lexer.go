package sqlang

import "strings"

// Lexer scans restricted-SQL source text into a flat token sequence.
type Lexer struct {
	input  string
	pos    int
	line   int
	col    int
	tokens []Token
}

func NewLexer(input string) *Lexer {
	return &Lexer{input: input, line: 1, col: 1}
}

// Tokenize scans the whole input. The returned sequence always ends with an
// EOF token carrying the position of the last real token (line 1, col 1 when
// the input holds nothing but whitespace).
func (l *Lexer) Tokenize() []Token {
	for l.pos < len(l.input) {
		l.skipWhitespace()
		if l.pos >= len(l.input) {
			break
		}

		ch := l.input[l.pos]

		if l.pos+1 < len(l.input) && l.input[l.pos:l.pos+2] == "--" {
			l.skipLineComment()
			continue
		}

		if ch == '\'' {
			l.readString()
			continue
		}

		if ch >= '0' && ch <= '9' {
			l.readNumber()
			continue
		}

		if isIdentStart(ch) {
			l.readIdentOrKeyword()
			continue
		}

		l.readOperatorOrDelimiter()
	}

	eofLine, eofCol := 1, 1
	if n := len(l.tokens); n > 0 {
		eofLine = l.tokens[n-1].Line
		eofCol = l.tokens[n-1].Col
	}
	l.tokens = append(l.tokens, Token{Type: TokenEOF, Line: eofLine, Col: eofCol})

	return l.tokens
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\r':
			l.pos++
			l.col++
		case '\n':
			l.pos++
			l.line++
			l.col = 1
		default:
			return
		}
	}
}

func (l *Lexer) skipLineComment() {
	for l.pos < len(l.input) && l.input[l.pos] != '\n' {
		l.pos++
		l.col++
	}
}

func (l *Lexer) readString() {
	startLine := l.line
	startCol := l.col
	l.pos++ // skip opening quote
	l.col++
	var b strings.Builder
	closed := false
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch == '\'' {
			l.pos++
			l.col++
			closed = true
			break
		}
		if ch == '\n' {
			l.line++
			l.col = 1
		} else {
			l.col++
		}
		b.WriteByte(ch)
		l.pos++
	}
	if !closed {
		l.tokens = append(l.tokens, Token{Type: TokenError, Lexeme: "'" + b.String(), Line: startLine, Col: startCol})
		return
	}
	l.tokens = append(l.tokens, Token{Type: TokenString, Lexeme: b.String(), Line: startLine, Col: startCol})
}

func (l *Lexer) readNumber() {
	start := l.pos
	startLine := l.line
	startCol := l.col
	sawDot := false
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch >= '0' && ch <= '9' {
			l.pos++
			l.col++
			continue
		}
		if ch == '.' && !sawDot && l.pos+1 < len(l.input) && l.input[l.pos+1] >= '0' && l.input[l.pos+1] <= '9' {
			sawDot = true
			l.pos++
			l.col++
			continue
		}
		break
	}
	l.tokens = append(l.tokens, Token{Type: TokenNumber, Lexeme: l.input[start:l.pos], Line: startLine, Col: startCol})
}

func (l *Lexer) readIdentOrKeyword() {
	start := l.pos
	startLine := l.line
	startCol := l.col
	for l.pos < len(l.input) && isIdentPart(l.input[l.pos]) {
		l.pos++
		l.col++
	}
	val := l.input[start:l.pos]

	if isKeyword(val) {
		l.tokens = append(l.tokens, Token{Type: TokenKeyword, Lexeme: strings.ToUpper(val), Line: startLine, Col: startCol})
	} else {
		l.tokens = append(l.tokens, Token{Type: TokenIdent, Lexeme: val, Line: startLine, Col: startCol})
	}
}

func (l *Lexer) readOperatorOrDelimiter() {
	startLine := l.line
	startCol := l.col

	// two-character operators first
	if l.pos+1 < len(l.input) {
		two := l.input[l.pos : l.pos+2]
		switch two {
		case "<>", "!=", "<=", ">=":
			l.pos += 2
			l.col += 2
			l.tokens = append(l.tokens, Token{Type: TokenOperator, Lexeme: two, Line: startLine, Col: startCol})
			return
		}
	}

	ch := l.input[l.pos]
	l.pos++
	l.col++

	switch ch {
	case '(', ')', ',', ';':
		l.tokens = append(l.tokens, Token{Type: TokenDelimiter, Lexeme: string(ch), Line: startLine, Col: startCol})
	case '=', '<', '>', '*':
		l.tokens = append(l.tokens, Token{Type: TokenOperator, Lexeme: string(ch), Line: startLine, Col: startCol})
	default:
		l.tokens = append(l.tokens, Token{Type: TokenError, Lexeme: string(ch), Line: startLine, Col: startCol})
	}
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || (ch >= '0' && ch <= '9')
}

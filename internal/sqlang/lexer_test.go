package sqlang

import "testing"

func TestTokenizeStatement(t *testing.T) {
	tokens := NewLexer("SELECT * FROM users;").Tokenize()

	want := []struct {
		typ    TokenType
		lexeme string
	}{
		{TokenKeyword, "SELECT"},
		{TokenOperator, "*"},
		{TokenKeyword, "FROM"},
		{TokenIdent, "users"},
		{TokenDelimiter, ";"},
		{TokenEOF, ""},
	}

	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i, w := range want {
		if tokens[i].Type != w.typ || tokens[i].Lexeme != w.lexeme {
			t.Errorf("token %d: got (%s, %q), want (%s, %q)", i, tokens[i].Type, tokens[i].Lexeme, w.typ, w.lexeme)
		}
	}
}

func TestTokenizeKeywordsCaseInsensitive(t *testing.T) {
	tokens := NewLexer("select From wHeRe").Tokenize()
	want := []string{"SELECT", "FROM", "WHERE"}
	for i, w := range want {
		if tokens[i].Type != TokenKeyword {
			t.Errorf("token %d: got type %s, want keyword", i, tokens[i].Type)
		}
		if tokens[i].Lexeme != w {
			t.Errorf("token %d: got lexeme %q, want %q", i, tokens[i].Lexeme, w)
		}
	}
}

func TestTokenizePositions(t *testing.T) {
	tokens := NewLexer("SELECT id\nFROM users;").Tokenize()

	want := []struct {
		lexeme    string
		line, col int
	}{
		{"SELECT", 1, 1},
		{"id", 1, 8},
		{"FROM", 2, 1},
		{"users", 2, 6},
		{";", 2, 11},
	}
	for i, w := range want {
		if tokens[i].Line != w.line || tokens[i].Col != w.col {
			t.Errorf("%q: got %d:%d, want %d:%d", w.lexeme, tokens[i].Line, tokens[i].Col, w.line, w.col)
		}
	}
}

func TestTokenizeNumbers(t *testing.T) {
	tests := []struct {
		input  string
		lexeme string
	}{
		{"42", "42"},
		{"3.14", "3.14"},
		{"0", "0"},
		{"10.0", "10.0"},
	}
	for _, tt := range tests {
		tokens := NewLexer(tt.input).Tokenize()
		if tokens[0].Type != TokenNumber || tokens[0].Lexeme != tt.lexeme {
			t.Errorf("%q: got (%s, %q), want (Number, %q)", tt.input, tokens[0].Type, tokens[0].Lexeme, tt.lexeme)
		}
	}
}

func TestTokenizeTrailingDot(t *testing.T) {
	// A dot not followed by a digit ends the number and lexes on its own.
	tokens := NewLexer("3.").Tokenize()
	if tokens[0].Type != TokenNumber || tokens[0].Lexeme != "3" {
		t.Fatalf("got (%s, %q), want (Number, \"3\")", tokens[0].Type, tokens[0].Lexeme)
	}
	if tokens[1].Type != TokenError || tokens[1].Lexeme != "." {
		t.Fatalf("got (%s, %q), want (Error, \".\")", tokens[1].Type, tokens[1].Lexeme)
	}
}

func TestTokenizeStrings(t *testing.T) {
	tokens := NewLexer("'hello world'").Tokenize()
	if tokens[0].Type != TokenString || tokens[0].Lexeme != "hello world" {
		t.Fatalf("got (%s, %q), want (String, \"hello world\")", tokens[0].Type, tokens[0].Lexeme)
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	tokens := NewLexer("'oops").Tokenize()
	if tokens[0].Type != TokenError {
		t.Fatalf("got type %s, want Error", tokens[0].Type)
	}
	if tokens[0].Line != 1 || tokens[0].Col != 1 {
		t.Errorf("got position %d:%d, want 1:1", tokens[0].Line, tokens[0].Col)
	}
}

func TestTokenizeOperators(t *testing.T) {
	tokens := NewLexer("= <> != < > <= >= *").Tokenize()
	want := []string{"=", "<>", "!=", "<", ">", "<=", ">=", "*"}
	for i, w := range want {
		if tokens[i].Type != TokenOperator || tokens[i].Lexeme != w {
			t.Errorf("token %d: got (%s, %q), want (Operator, %q)", i, tokens[i].Type, tokens[i].Lexeme, w)
		}
	}
}

func TestTokenizeComments(t *testing.T) {
	tokens := NewLexer("-- schema setup\nCREATE").Tokenize()
	if tokens[0].Type != TokenKeyword || tokens[0].Lexeme != "CREATE" {
		t.Fatalf("got (%s, %q), want (Keyword, \"CREATE\")", tokens[0].Type, tokens[0].Lexeme)
	}
	if tokens[0].Line != 2 {
		t.Errorf("got line %d, want 2", tokens[0].Line)
	}
}

func TestTokenizeUnrecognizedCharacter(t *testing.T) {
	tokens := NewLexer("id @ 5").Tokenize()
	if tokens[1].Type != TokenError || tokens[1].Lexeme != "@" {
		t.Fatalf("got (%s, %q), want (Error, \"@\")", tokens[1].Type, tokens[1].Lexeme)
	}
	// scan continues past the bad character
	if tokens[2].Type != TokenNumber || tokens[2].Lexeme != "5" {
		t.Fatalf("got (%s, %q), want (Number, \"5\")", tokens[2].Type, tokens[2].Lexeme)
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t \n"} {
		tokens := NewLexer(input).Tokenize()
		if len(tokens) != 1 {
			t.Fatalf("%q: got %d tokens, want 1", input, len(tokens))
		}
		eof := tokens[0]
		if eof.Type != TokenEOF || eof.Line != 1 || eof.Col != 1 {
			t.Errorf("%q: got (%s, %d:%d), want (EOF, 1:1)", input, eof.Type, eof.Line, eof.Col)
		}
	}
}

func TestTokenizeEOFPosition(t *testing.T) {
	tokens := NewLexer("SELECT").Tokenize()
	eof := tokens[len(tokens)-1]
	if eof.Type != TokenEOF {
		t.Fatalf("last token is %s, want EOF", eof.Type)
	}
	if eof.Line != 1 || eof.Col != 1 {
		t.Errorf("EOF at %d:%d, want position of last real token 1:1", eof.Line, eof.Col)
	}
}

func TestTokenizeTypeNamesAreKeywords(t *testing.T) {
	for _, name := range []string{"INT", "FLOAT", "TEXT", "VARCHAR", "CHAR", "DATE", "DATETIME", "BOOLEAN", "BIGINT"} {
		tokens := NewLexer(name).Tokenize()
		if tokens[0].Type != TokenKeyword {
			t.Errorf("%s: got type %s, want keyword", name, tokens[0].Type)
		}
	}
}

package sqlang

import "testing"

func TestCompileValidProgram(t *testing.T) {
	res := Compile("CREATE TABLE users (id INT, name TEXT); SELECT name FROM users WHERE id = 1;")

	if !res.Valid() {
		t.Fatalf("syntax: %v semantic: %v", res.SyntaxDiagnostics, res.SemanticDiagnostics)
	}
	if res.HasSyntaxErrors() || res.HasSemanticErrors() {
		t.Fatal("error flags set on valid input")
	}
	if len(res.Tokens) == 0 || res.Tokens[len(res.Tokens)-1].Type != TokenEOF {
		t.Error("token stream missing or not EOF-terminated")
	}
	if len(res.Tree.Children) != 2 {
		t.Errorf("got %d statements, want 2", len(res.Tree.Children))
	}
	if !res.Symbols.Exists("users") {
		t.Error("symbol table missing users")
	}
}

func TestCompileEmptySource(t *testing.T) {
	res := Compile("")
	if !res.Valid() {
		t.Fatalf("syntax: %v semantic: %v", res.SyntaxDiagnostics, res.SemanticDiagnostics)
	}
	if len(res.Tree.Children) != 0 {
		t.Errorf("got %d statements, want 0", len(res.Tree.Children))
	}
	if len(res.Symbols.Tables()) != 0 {
		t.Error("symbol table should be empty")
	}
}

func TestCompileChannelsStaySeparate(t *testing.T) {
	// one malformed statement, one semantically wrong statement
	res := Compile("SELEC * FROM t; SELECT * FROM ghost;")

	if len(res.SyntaxDiagnostics) != 1 {
		t.Errorf("syntax diagnostics = %v", res.SyntaxDiagnostics)
	}
	if len(res.SemanticDiagnostics) != 1 {
		t.Errorf("semantic diagnostics = %v", res.SemanticDiagnostics)
	}
	if !res.HasSyntaxErrors() || !res.HasSemanticErrors() {
		t.Error("error flags not set")
	}
}

func TestCompileAnalyzesRecoveredStatements(t *testing.T) {
	// the broken first statement must not stop semantic analysis of the second
	res := Compile("CREATE TABLE t (id INT,; SELECT missing FROM t;")
	if !res.HasSyntaxErrors() {
		t.Fatal("expected syntax diagnostics")
	}

	found := false
	for _, d := range res.SemanticDiagnostics {
		if d.Message == "Column 'missing' does not exist in table 't'" {
			found = true
		}
	}
	if !found {
		t.Errorf("semantic diagnostics = %v", res.SemanticDiagnostics)
	}
}

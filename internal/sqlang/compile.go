package sqlang

// Result carries everything one front-end run produces: the token stream, the
// parse tree (annotated in place by the analyzer), both diagnostic channels,
// and the symbol table built from the source's CREATE statements.
type Result struct {
	Tokens              []Token
	Tree                *Node
	Symbols             *SymbolTable
	SyntaxDiagnostics   []Diagnostic
	SemanticDiagnostics []Diagnostic
}

func (r *Result) HasSyntaxErrors() bool   { return len(r.SyntaxDiagnostics) > 0 }
func (r *Result) HasSemanticErrors() bool { return len(r.SemanticDiagnostics) > 0 }

// Valid reports whether the source compiled without diagnostics of any kind.
func (r *Result) Valid() bool { return !r.HasSyntaxErrors() && !r.HasSemanticErrors() }

// Compile runs the full pipeline over source. Every stage runs to completion
// regardless of what the previous stage reported: semantic analysis still
// inspects whatever statements the parser managed to recover.
func Compile(source string) *Result {
	return CompileWithDepth(source, DefaultMaxConditionDepth)
}

// CompileWithDepth is Compile with an explicit bound on condition nesting.
func CompileWithDepth(source string, maxConditionDepth int) *Result {
	tokens := NewLexer(source).Tokenize()
	parser := NewParser(tokens)
	parser.SetMaxConditionDepth(maxConditionDepth)
	tree, syntaxDiags := parser.Parse()
	symbols, semanticDiags := NewAnalyzer().Analyze(tree)
	return &Result{
		Tokens:              tokens,
		Tree:                tree,
		Symbols:             symbols,
		SyntaxDiagnostics:   syntaxDiags,
		SemanticDiagnostics: semanticDiags,
	}
}

package handler

import "github.com/calebmor/sqlfront/internal/sqlang"

// Wire representations of the compiler's artifacts. Annotations are omitted
// when empty so unannotated nodes stay small.

type tokenDTO struct {
	Kind   string `json:"kind"`
	Lexeme string `json:"lexeme"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

type nodeDTO struct {
	Kind     string     `json:"kind"`
	Lexeme   string     `json:"lexeme,omitempty"`
	Line     int        `json:"line"`
	Column   int        `json:"column"`
	Type     string     `json:"type,omitempty"`
	Ref      string     `json:"ref,omitempty"`
	Children []*nodeDTO `json:"children,omitempty"`
}

type diagnosticDTO struct {
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Message string `json:"message"`
}

type columnDTO struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type tableDTO struct {
	Name    string      `json:"name"`
	Columns []columnDTO `json:"columns"`
}

func renderTokens(tokens []sqlang.Token) []tokenDTO {
	out := make([]tokenDTO, len(tokens))
	for i, t := range tokens {
		out[i] = tokenDTO{Kind: t.Type.String(), Lexeme: t.Lexeme, Line: t.Line, Column: t.Col}
	}
	return out
}

func renderNode(n *sqlang.Node) *nodeDTO {
	if n == nil {
		return nil
	}
	dto := &nodeDTO{
		Kind:   n.Kind.String(),
		Lexeme: n.Lexeme,
		Line:   n.Line,
		Column: n.Col,
		Type:   string(n.Type),
		Ref:    n.Ref,
	}
	for _, c := range n.Children {
		dto.Children = append(dto.Children, renderNode(c))
	}
	return dto
}

func renderDiagnostics(diags []sqlang.Diagnostic) []diagnosticDTO {
	out := make([]diagnosticDTO, len(diags))
	for i, d := range diags {
		out[i] = diagnosticDTO{Line: d.Line, Column: d.Column, Message: d.Message}
	}
	return out
}

func renderSymbols(s *sqlang.SymbolTable) []tableDTO {
	tables := s.Tables()
	out := make([]tableDTO, len(tables))
	for i, t := range tables {
		cols := make([]columnDTO, len(t.Columns))
		for j, c := range t.Columns {
			cols[j] = columnDTO{Name: c.Name, Type: string(c.Type)}
		}
		out[i] = tableDTO{Name: t.Name, Columns: cols}
	}
	return out
}

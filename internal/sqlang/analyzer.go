package sqlang

import (
	"fmt"
	"strings"
)

// Analyzer validates a parse tree against the schema it declares and writes
// type/reference annotations in place. It owns the symbol table it builds.
type Analyzer struct {
	symbols *SymbolTable
	diags   []Diagnostic
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{symbols: NewSymbolTable()}
}

// Analyze runs two full traversals: one building the catalog from every
// CREATE TABLE statement anywhere in the tree, one validating the remaining
// statement kinds against it. CREATE statements may appear after statements
// that reference them, so the catalog pass always completes first.
func (a *Analyzer) Analyze(root *Node) (*SymbolTable, []Diagnostic) {
	root.walk(func(n *Node) {
		if n.Kind == KindCreateStatement {
			a.registerTable(n)
		}
	})

	root.walk(func(n *Node) {
		switch n.Kind {
		case KindSelectStatement:
			a.validateSelect(n)
		case KindInsertStatement:
			a.validateInsert(n)
		case KindUpdateStatement:
			a.validateUpdate(n)
		case KindDeleteStatement:
			a.validateDelete(n)
		}
	})

	return a.symbols, a.diags
}

func (a *Analyzer) diag(line, col int, format string, args ...any) {
	a.diags = append(a.diags, Diagnostic{Line: line, Column: col, Message: fmt.Sprintf(format, args...)})
}

// Pass 1 — catalog build.

func (a *Analyzer) registerTable(stmt *Node) {
	// One broken CREATE statement must not abort the whole analysis.
	defer func() {
		if r := recover(); r != nil {
			a.diag(stmt.Line, stmt.Col, "internal error in CREATE TABLE statement: %v", r)
		}
	}()

	nameNode := stmt.childAfterKeyword("TABLE")
	if nameNode == nil || nameNode.Kind != KindIdentifier {
		a.diag(stmt.Line, stmt.Col, "CREATE TABLE is missing a table name")
		return
	}
	name := nameNode.Lexeme

	if a.symbols.Exists(name) {
		a.diag(nameNode.Line, nameNode.Col, "Table '%s' already exists", name)
		return
	}

	list := stmt.firstChild(KindFieldList)
	if list == nil {
		a.diag(nameNode.Line, nameNode.Col, "CREATE TABLE '%s' has no column definitions", name)
		return
	}

	var cols []Column
	seen := make(map[string]bool)
	for _, def := range list.Children {
		if def.Kind != KindFieldDefinition {
			continue
		}
		colNode := def.firstChild(KindIdentifier)
		if colNode == nil || len(def.Children) < 2 {
			continue // the parser already reported the malformed definition
		}
		typeNode := def.Children[1]
		declared, ok := DeclaredType(typeNode.Lexeme)
		if !ok {
			a.diag(typeNode.Line, typeNode.Col, "Unknown type '%s' for column '%s'", typeNode.Lexeme, colNode.Lexeme)
			continue
		}
		if seen[strings.ToLower(colNode.Lexeme)] {
			a.diag(colNode.Line, colNode.Col, "Duplicate column '%s' in table '%s'", colNode.Lexeme, name)
			continue
		}
		seen[strings.ToLower(colNode.Lexeme)] = true
		colNode.Type = declared
		colNode.Ref = name + "." + colNode.Lexeme
		typeNode.Type = declared
		cols = append(cols, Column{Name: colNode.Lexeme, Type: declared})
	}

	if len(cols) == 0 {
		return
	}

	if err := a.symbols.Add(name, cols); err != nil {
		a.diag(nameNode.Line, nameNode.Col, "Table '%s' already exists", name)
		return
	}
	nameNode.Ref = "TABLE:" + name
}

// Pass 2 — per-statement validation.

// resolveTable looks up the statement's table by the identifier following the
// given keyword. An unknown table yields one diagnostic and skips the rest of
// the statement's checks.
func (a *Analyzer) resolveTable(stmt *Node, afterKeyword string) (*Table, bool) {
	nameNode := stmt.childAfterKeyword(afterKeyword)
	if nameNode == nil || nameNode.Kind != KindIdentifier {
		return nil, false // parse failure, already diagnosed
	}
	table, ok := a.symbols.Table(nameNode.Lexeme)
	if !ok {
		a.diag(nameNode.Line, nameNode.Col, "Table '%s' does not exist", nameNode.Lexeme)
		return nil, false
	}
	nameNode.Ref = "TABLE:" + table.Name
	return table, true
}

func (a *Analyzer) validateSelect(stmt *Node) {
	table, ok := a.resolveTable(stmt, "FROM")
	if !ok {
		return
	}

	if list := stmt.firstChild(KindFieldList); list != nil && list.firstChild(KindOperator) == nil {
		for _, col := range list.Children {
			if col.Kind != KindIdentifier {
				continue
			}
			a.resolveColumn(col, table)
		}
	}

	if cond := stmt.childAfterKeyword("WHERE"); cond != nil {
		a.validateCondition(cond, table)
	}

	if orderCol := stmt.childAfterKeyword("BY"); orderCol != nil && orderCol.Kind == KindIdentifier {
		a.resolveColumn(orderCol, table)
	}
}

func (a *Analyzer) validateInsert(stmt *Node) {
	table, ok := a.resolveTable(stmt, "INTO")
	if !ok {
		return
	}

	list := stmt.firstChild(KindFieldList)
	if list == nil {
		return
	}
	var terms []*Node
	for _, c := range list.Children {
		switch c.Kind {
		case KindIdentifier, KindNumber, KindString, KindKeyword, KindBooleanLiteral:
			terms = append(terms, c)
		}
	}

	if len(terms) != len(table.Columns) {
		a.diag(list.Line, list.Col, "Table '%s' has %d columns but %d values were supplied",
			table.Name, len(table.Columns), len(terms))
		return
	}

	for i, term := range terms {
		a.checkValue(term, table.Columns[i], table)
	}
}

func (a *Analyzer) validateUpdate(stmt *Node) {
	table, ok := a.resolveTable(stmt, "UPDATE")
	if !ok {
		return
	}

	for _, assign := range stmt.Children {
		if assign.Kind != KindAssignment {
			continue
		}
		lhs := assign.firstChild(KindIdentifier)
		if lhs == nil {
			continue
		}
		col, exists := table.Column(lhs.Lexeme)
		if !exists {
			a.diag(lhs.Line, lhs.Col, "Column '%s' does not exist in table '%s'", lhs.Lexeme, table.Name)
			continue
		}
		lhs.Type = col.Type
		lhs.Ref = table.Name + "." + col.Name
		if len(assign.Children) < 3 {
			continue
		}
		a.checkValue(assign.Children[2], col, table)
	}

	if cond := stmt.childAfterKeyword("WHERE"); cond != nil {
		a.validateCondition(cond, table)
	}
}

func (a *Analyzer) validateDelete(stmt *Node) {
	table, ok := a.resolveTable(stmt, "FROM")
	if !ok {
		return
	}
	if cond := stmt.childAfterKeyword("WHERE"); cond != nil {
		a.validateCondition(cond, table)
	}
}

// checkValue type-checks a literal or identifier against a column's declared
// type. A bare identifier that resolves to nothing is usually an unquoted
// string, so TEXT columns get a dedicated quoting hint instead of the generic
// mismatch message.
func (a *Analyzer) checkValue(term *Node, col Column, table *Table) {
	t := a.inferType(term, table)
	if term.Kind == KindIdentifier && t == TypeUnknown && col.Type == TypeText {
		a.diag(term.Line, term.Col, "Value '%s' must be enclosed in single quotes to be stored as TEXT", term.Lexeme)
		return
	}
	if !Compatible(t, col.Type) {
		a.diag(term.Line, term.Col, "Type mismatch: %s value cannot be stored in column '%s' of type %s",
			t, col.Name, col.Type)
	}
}

// validateCondition recurses a WHERE subtree. Logical and relational nodes are
// annotated BOOLEAN; relational operands must be pairwise type-compatible;
// every identifier in the subtree resolves against the filtered table.
func (a *Analyzer) validateCondition(n *Node, table *Table) {
	switch n.Kind {
	case KindCondition:
		switch n.Lexeme {
		case "AND", "OR", "NOT":
			for _, c := range n.Children {
				a.validateCondition(c, table)
			}
		default: // relational comparison
			if len(n.Children) == 2 {
				lt := a.conditionOperandType(n.Children[0], table)
				rt := a.conditionOperandType(n.Children[1], table)
				if !Compatible(lt, rt) {
					a.diag(n.Line, n.Col, "Type mismatch: cannot compare %s with %s", lt, rt)
				}
			} else {
				for _, c := range n.Children {
					a.validateCondition(c, table)
				}
			}
		}
		n.Type = TypeBoolean
	case KindIdentifier:
		a.resolveColumn(n, table)
	case KindNumber, KindString, KindBooleanLiteral, KindKeyword:
		if t, ok := literalType(n); ok {
			n.Type = t
		}
	}
}

func (a *Analyzer) conditionOperandType(n *Node, table *Table) DataType {
	switch n.Kind {
	case KindCondition:
		a.validateCondition(n, table)
		return TypeBoolean
	case KindIdentifier:
		if col, ok := a.resolveColumn(n, table); ok {
			return col.Type
		}
		return TypeUnknown
	}
	return a.inferType(n, table)
}

// inferType annotates and returns the type of a literal or identifier.
// Identifiers resolve quietly here: in value position an unresolved name is
// handled by checkValue's quoting hint, not a column-existence diagnostic.
func (a *Analyzer) inferType(n *Node, table *Table) DataType {
	if n.Kind == KindIdentifier {
		if col, ok := table.Column(n.Lexeme); ok {
			n.Type = col.Type
			n.Ref = table.Name + "." + col.Name
			return col.Type
		}
		n.Type = TypeUnknown
		return TypeUnknown
	}
	if t, ok := literalType(n); ok {
		n.Type = t
		return t
	}
	return TypeUnknown
}

// resolveColumn resolves an identifier against the table's columns, writing
// the type and "table.column" reference annotations on success.
func (a *Analyzer) resolveColumn(n *Node, table *Table) (Column, bool) {
	col, ok := table.Column(n.Lexeme)
	if !ok {
		n.Type = TypeUnknown
		a.diag(n.Line, n.Col, "Column '%s' does not exist in table '%s'", n.Lexeme, table.Name)
		return Column{}, false
	}
	n.Type = col.Type
	n.Ref = table.Name + "." + col.Name
	return col, true
}

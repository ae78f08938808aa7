package sqlang

type NodeKind int

const (
	KindProgram NodeKind = iota
	KindCreateStatement
	KindSelectStatement
	KindInsertStatement
	KindUpdateStatement
	KindDeleteStatement
	KindFieldList
	KindFieldDefinition
	KindAssignment
	KindCondition
	KindIdentifier
	KindNumber
	KindString
	KindOperator
	KindDelimiter
	KindKeyword
	KindBooleanLiteral
	KindError
)

func (k NodeKind) String() string {
	switch k {
	case KindProgram:
		return "Program"
	case KindCreateStatement:
		return "CreateStatement"
	case KindSelectStatement:
		return "SelectStatement"
	case KindInsertStatement:
		return "InsertStatement"
	case KindUpdateStatement:
		return "UpdateStatement"
	case KindDeleteStatement:
		return "DeleteStatement"
	case KindFieldList:
		return "FieldList"
	case KindFieldDefinition:
		return "FieldDefinition"
	case KindAssignment:
		return "Assignment"
	case KindCondition:
		return "Condition"
	case KindIdentifier:
		return "Identifier"
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindOperator:
		return "Operator"
	case KindDelimiter:
		return "Delimiter"
	case KindKeyword:
		return "Keyword"
	case KindBooleanLiteral:
		return "BooleanLiteral"
	case KindError:
		return "Error"
	}
	return "Unknown"
}

// Node is one node of the concrete parse tree. Position is fixed at
// construction; Type and Ref are the only fields written after the tree is
// structurally frozen (by the analyzer, once each).
type Node struct {
	Kind     NodeKind
	Lexeme   string
	Line     int
	Col      int
	Children []*Node

	// Annotations. Type is the inferred or declared data type; Ref is a
	// resolved symbol reference ("table.column", or "TABLE:name" for table
	// name occurrences). Both stay empty when nothing resolves.
	Type DataType
	Ref  string
}

func newNode(kind NodeKind, tok Token) *Node {
	return &Node{Kind: kind, Lexeme: tok.Lexeme, Line: tok.Line, Col: tok.Col}
}

// interiorNode builds a non-terminal node positioned at the given token but
// carrying no lexeme of its own.
func interiorNode(kind NodeKind, tok Token) *Node {
	return &Node{Kind: kind, Line: tok.Line, Col: tok.Col}
}

func (n *Node) append(children ...*Node) {
	n.Children = append(n.Children, children...)
}

// firstChild returns the first direct child of the given kind, or nil.
func (n *Node) firstChild(kind NodeKind) *Node {
	for _, c := range n.Children {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

// childAfterKeyword returns the child immediately following the first Keyword
// child with the given lexeme, or nil.
func (n *Node) childAfterKeyword(kw string) *Node {
	for i, c := range n.Children {
		if c.Kind == KindKeyword && c.Lexeme == kw && i+1 < len(n.Children) {
			return n.Children[i+1]
		}
	}
	return nil
}

// hasKeyword reports whether a direct Keyword child with the given lexeme
// exists.
func (n *Node) hasKeyword(kw string) bool {
	for _, c := range n.Children {
		if c.Kind == KindKeyword && c.Lexeme == kw {
			return true
		}
	}
	return false
}

// walk visits n and all descendants depth-first, children in order.
func (n *Node) walk(visit func(*Node)) {
	visit(n)
	for _, c := range n.Children {
		c.walk(visit)
	}
}

package sqlang

// DefaultMaxConditionDepth bounds nesting of parenthesized/negated conditions
// so pathological input cannot blow the stack.
const DefaultMaxConditionDepth = 200

// Parser implements a recursive-descent parser over the token sequence. It
// never fails outright: malformed statements produce diagnostics and Error
// leaves, and parsing resynchronizes at the next statement boundary.
type Parser struct {
	tokens   []Token
	pos      int
	diags    []Diagnostic
	maxDepth int
}

func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens, maxDepth: DefaultMaxConditionDepth}
}

// SetMaxConditionDepth overrides the condition nesting bound. Non-positive
// values are ignored.
func (p *Parser) SetMaxConditionDepth(n int) {
	if n > 0 {
		p.maxDepth = n
	}
}

// Parse consumes all tokens and returns the Program root plus the syntax
// diagnostics in token-stream order. Empty input yields a childless root and
// no diagnostics.
func (p *Parser) Parse() (*Node, []Diagnostic) {
	root := &Node{Kind: KindProgram, Line: 1, Col: 1}

	for !p.isEOF() {
		tok := p.current()

		if tok.Type == TokenDelimiter && tok.Lexeme == ";" {
			p.advance()
			continue
		}

		if tok.Type == TokenKeyword {
			switch tok.Lexeme {
			case "CREATE":
				root.append(p.parseCreate())
				continue
			case "SELECT":
				root.append(p.parseSelect())
				continue
			case "INSERT":
				root.append(p.parseInsert())
				continue
			case "UPDATE":
				root.append(p.parseUpdate())
				continue
			case "DELETE":
				root.append(p.parseDelete())
				continue
			}
		}

		p.diags = appendDiag(p.diags, tok.Line, tok.Col, "unexpected token %s", describe(tok))
		root.append(newNode(KindError, tok))
		p.advance()
		p.sync()
	}

	return root, p.diags
}

// parseCreate parses CREATE TABLE name ( fieldDef (, fieldDef)* ) ;
func (p *Parser) parseCreate() *Node {
	stmt := interiorNode(KindCreateStatement, p.current())
	stmt.append(p.takeKeyword())

	if !p.expectKeyword(stmt, "TABLE") {
		return stmt
	}
	if _, ok := p.expectIdent(stmt); !ok {
		return stmt
	}
	if !p.expectDelim(stmt, "(") {
		return stmt
	}

	list := interiorNode(KindFieldList, p.current())
	stmt.append(list)
	for {
		if !p.parseFieldDef(list) {
			return stmt
		}
		if p.matchDelim(",") {
			list.append(p.takeDelim())
			continue
		}
		break
	}

	if !p.expectDelim(stmt, ")") {
		return stmt
	}
	p.expectDelim(stmt, ";")
	return stmt
}

// parseFieldDef parses one "name type [PRIMARY KEY]" entry into the field
// list. The type may be any keyword or identifier; the analyzer validates it
// against the recognized type set.
func (p *Parser) parseFieldDef(list *Node) bool {
	def := interiorNode(KindFieldDefinition, p.current())
	list.append(def)

	if _, ok := p.expectIdent(def); !ok {
		return false
	}

	tok := p.current()
	switch tok.Type {
	case TokenKeyword:
		def.append(newNode(KindKeyword, tok))
		p.advance()
	case TokenIdent:
		def.append(newNode(KindIdentifier, tok))
		p.advance()
	default:
		p.fail(def, tok, "expected column type, got %s", describe(tok))
		return false
	}

	if p.matchKeyword("PRIMARY") {
		def.append(p.takeKeyword())
		if !p.expectKeyword(def, "KEY") {
			return false
		}
	}
	return true
}

// parseSelect parses SELECT selectList FROM name [WHERE cond] [ORDER BY name [ASC|DESC]] ;
func (p *Parser) parseSelect() *Node {
	stmt := interiorNode(KindSelectStatement, p.current())
	stmt.append(p.takeKeyword())

	list := interiorNode(KindFieldList, p.current())
	stmt.append(list)
	if p.matchOperator("*") {
		list.append(p.takeOperator())
	} else {
		for {
			if _, ok := p.expectIdent(list); !ok {
				return stmt
			}
			if p.matchDelim(",") {
				list.append(p.takeDelim())
				continue
			}
			break
		}
	}

	if !p.expectKeyword(stmt, "FROM") {
		return stmt
	}
	if _, ok := p.expectIdent(stmt); !ok {
		return stmt
	}

	if p.matchKeyword("WHERE") {
		stmt.append(p.takeKeyword())
		cond, ok := p.parseCondition(stmt, 0)
		stmt.append(cond)
		if !ok {
			return stmt
		}
	}

	if p.matchKeyword("ORDER") {
		stmt.append(p.takeKeyword())
		if !p.expectKeyword(stmt, "BY") {
			return stmt
		}
		if _, ok := p.expectIdent(stmt); !ok {
			return stmt
		}
		if p.matchKeyword("ASC") || p.matchKeyword("DESC") {
			stmt.append(p.takeKeyword())
		}
	}

	p.expectDelim(stmt, ";")
	return stmt
}

// parseInsert parses INSERT INTO name VALUES ( term (, term)* ) ;
func (p *Parser) parseInsert() *Node {
	stmt := interiorNode(KindInsertStatement, p.current())
	stmt.append(p.takeKeyword())

	if !p.expectKeyword(stmt, "INTO") {
		return stmt
	}
	if _, ok := p.expectIdent(stmt); !ok {
		return stmt
	}
	if !p.expectKeyword(stmt, "VALUES") {
		return stmt
	}
	if !p.expectDelim(stmt, "(") {
		return stmt
	}

	list := interiorNode(KindFieldList, p.current())
	stmt.append(list)
	for {
		term, ok := p.parseValueTerm(list)
		list.append(term)
		if !ok {
			return stmt
		}
		if p.matchDelim(",") {
			list.append(p.takeDelim())
			continue
		}
		break
	}

	if !p.expectDelim(stmt, ")") {
		return stmt
	}
	p.expectDelim(stmt, ";")
	return stmt
}

// parseUpdate parses UPDATE name SET name = term (, name = term)* [WHERE cond] ;
func (p *Parser) parseUpdate() *Node {
	stmt := interiorNode(KindUpdateStatement, p.current())
	stmt.append(p.takeKeyword())

	if _, ok := p.expectIdent(stmt); !ok {
		return stmt
	}
	if !p.expectKeyword(stmt, "SET") {
		return stmt
	}

	for {
		assign := interiorNode(KindAssignment, p.current())
		stmt.append(assign)
		if _, ok := p.expectIdent(assign); !ok {
			return stmt
		}
		if !p.expectOperator(assign, "=") {
			return stmt
		}
		term, ok := p.parseValueTerm(assign)
		assign.append(term)
		if !ok {
			return stmt
		}
		if p.matchDelim(",") {
			stmt.append(p.takeDelim())
			continue
		}
		break
	}

	if p.matchKeyword("WHERE") {
		stmt.append(p.takeKeyword())
		cond, ok := p.parseCondition(stmt, 0)
		stmt.append(cond)
		if !ok {
			return stmt
		}
	}

	p.expectDelim(stmt, ";")
	return stmt
}

// parseDelete parses DELETE FROM name [WHERE cond] ;
func (p *Parser) parseDelete() *Node {
	stmt := interiorNode(KindDeleteStatement, p.current())
	stmt.append(p.takeKeyword())

	if !p.expectKeyword(stmt, "FROM") {
		return stmt
	}
	if _, ok := p.expectIdent(stmt); !ok {
		return stmt
	}

	if p.matchKeyword("WHERE") {
		stmt.append(p.takeKeyword())
		cond, ok := p.parseCondition(stmt, 0)
		stmt.append(cond)
		if !ok {
			return stmt
		}
	}

	p.expectDelim(stmt, ";")
	return stmt
}

// Condition grammar, loosest to tightest binding: OR, AND, NOT, relational
// comparison, atomic term. Each binary/unary level becomes a Condition node
// wrapping the operator and its operands, so precedence lives in the tree
// shape. Parenthesized sub-conditions parse to their inner node directly.

func (p *Parser) parseCondition(parent *Node, depth int) (*Node, bool) {
	if depth > p.maxDepth {
		tok := p.current()
		p.fail(parent, tok, "condition nesting exceeds %d levels", p.maxDepth)
		return newNode(KindError, tok), false
	}
	return p.parseOr(parent, depth)
}

func (p *Parser) parseOr(parent *Node, depth int) (*Node, bool) {
	left, ok := p.parseAnd(parent, depth)
	if !ok {
		return left, false
	}
	for p.matchKeyword("OR") {
		op := p.current()
		p.advance()
		right, ok := p.parseAnd(parent, depth)
		node := newNode(KindCondition, op)
		node.append(left, right)
		if !ok {
			return node, false
		}
		left = node
	}
	return left, true
}

func (p *Parser) parseAnd(parent *Node, depth int) (*Node, bool) {
	left, ok := p.parseNot(parent, depth)
	if !ok {
		return left, false
	}
	for p.matchKeyword("AND") {
		op := p.current()
		p.advance()
		right, ok := p.parseNot(parent, depth)
		node := newNode(KindCondition, op)
		node.append(left, right)
		if !ok {
			return node, false
		}
		left = node
	}
	return left, true
}

func (p *Parser) parseNot(parent *Node, depth int) (*Node, bool) {
	if p.matchKeyword("NOT") {
		op := p.current()
		p.advance()
		operand, ok := p.parseNot(parent, depth+1)
		node := newNode(KindCondition, op)
		node.append(operand)
		return node, ok
	}
	return p.parseComparison(parent, depth)
}

func (p *Parser) parseComparison(parent *Node, depth int) (*Node, bool) {
	left, ok := p.parseAtom(parent, depth)
	if !ok {
		return left, false
	}
	if p.matchRelationalOp() {
		op := p.current()
		p.advance()
		right, ok := p.parseAtom(parent, depth)
		node := newNode(KindCondition, op)
		node.append(left, right)
		return node, ok
	}
	return left, true
}

func (p *Parser) parseAtom(parent *Node, depth int) (*Node, bool) {
	tok := p.current()
	switch {
	case tok.Type == TokenIdent:
		p.advance()
		return newNode(KindIdentifier, tok), true
	case tok.Type == TokenNumber:
		p.advance()
		return newNode(KindNumber, tok), true
	case tok.Type == TokenString:
		p.advance()
		return newNode(KindString, tok), true
	case tok.Type == TokenKeyword && tok.Lexeme == "NULL":
		p.advance()
		return newNode(KindKeyword, tok), true
	case tok.Type == TokenKeyword && (tok.Lexeme == "TRUE" || tok.Lexeme == "FALSE"):
		p.advance()
		return newNode(KindBooleanLiteral, tok), true
	case tok.Type == TokenDelimiter && tok.Lexeme == "(":
		p.advance()
		inner, ok := p.parseCondition(parent, depth+1)
		if !ok {
			return inner, false
		}
		// Parentheses only group; precedence is already structural.
		if !p.matchDelim(")") {
			p.fail(parent, p.current(), "expected ')', got %s", describe(p.current()))
			return inner, false
		}
		p.advance()
		return inner, true
	}
	p.fail(parent, tok, "expected a value or condition, got %s", describe(tok))
	return newNode(KindError, tok), false
}

var relationalOps = map[string]bool{
	"=": true, "<>": true, "!=": true, "<": true, ">": true, "<=": true, ">=": true,
}

func (p *Parser) matchRelationalOp() bool {
	tok := p.current()
	if tok.Type == TokenOperator && relationalOps[tok.Lexeme] {
		return true
	}
	return tok.Type == TokenKeyword && tok.Lexeme == "LIKE"
}

// parseValueTerm parses a single literal, NULL, TRUE/FALSE, or identifier used
// as an INSERT value or assignment right-hand side.
func (p *Parser) parseValueTerm(parent *Node) (*Node, bool) {
	tok := p.current()
	switch {
	case tok.Type == TokenIdent:
		p.advance()
		return newNode(KindIdentifier, tok), true
	case tok.Type == TokenNumber:
		p.advance()
		return newNode(KindNumber, tok), true
	case tok.Type == TokenString:
		p.advance()
		return newNode(KindString, tok), true
	case tok.Type == TokenKeyword && tok.Lexeme == "NULL":
		p.advance()
		return newNode(KindKeyword, tok), true
	case tok.Type == TokenKeyword && (tok.Lexeme == "TRUE" || tok.Lexeme == "FALSE"):
		p.advance()
		return newNode(KindBooleanLiteral, tok), true
	}
	p.fail(parent, tok, "expected a value, got %s", describe(tok))
	return newNode(KindError, tok), false
}

// Helper methods

func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF, Line: 1, Col: 1}
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() {
	if p.pos < len(p.tokens) {
		p.pos++
	}
}

func (p *Parser) isEOF() bool {
	return p.current().Type == TokenEOF
}

func (p *Parser) matchKeyword(kw string) bool {
	tok := p.current()
	return tok.Type == TokenKeyword && tok.Lexeme == kw
}

func (p *Parser) matchDelim(d string) bool {
	tok := p.current()
	return tok.Type == TokenDelimiter && tok.Lexeme == d
}

func (p *Parser) matchOperator(op string) bool {
	tok := p.current()
	return tok.Type == TokenOperator && tok.Lexeme == op
}

func (p *Parser) takeKeyword() *Node {
	n := newNode(KindKeyword, p.current())
	p.advance()
	return n
}

func (p *Parser) takeDelim() *Node {
	n := newNode(KindDelimiter, p.current())
	p.advance()
	return n
}

func (p *Parser) takeOperator() *Node {
	n := newNode(KindOperator, p.current())
	p.advance()
	return n
}

func (p *Parser) expectKeyword(parent *Node, kw string) bool {
	tok := p.current()
	if tok.Type == TokenKeyword && tok.Lexeme == kw {
		parent.append(newNode(KindKeyword, tok))
		p.advance()
		return true
	}
	p.fail(parent, tok, "expected %s, got %s", kw, describe(tok))
	return false
}

func (p *Parser) expectDelim(parent *Node, d string) bool {
	tok := p.current()
	if tok.Type == TokenDelimiter && tok.Lexeme == d {
		parent.append(newNode(KindDelimiter, tok))
		p.advance()
		return true
	}
	p.fail(parent, tok, "expected '%s', got %s", d, describe(tok))
	return false
}

func (p *Parser) expectOperator(parent *Node, op string) bool {
	tok := p.current()
	if tok.Type == TokenOperator && tok.Lexeme == op {
		parent.append(newNode(KindOperator, tok))
		p.advance()
		return true
	}
	p.fail(parent, tok, "expected '%s', got %s", op, describe(tok))
	return false
}

func (p *Parser) expectIdent(parent *Node) (*Node, bool) {
	tok := p.current()
	if tok.Type == TokenIdent {
		n := newNode(KindIdentifier, tok)
		parent.append(n)
		p.advance()
		return n, true
	}
	p.fail(parent, tok, "expected identifier, got %s", describe(tok))
	return nil, false
}

// fail records a diagnostic at the offending token, leaves an Error node in
// the tree, and enters panic-mode recovery: the bad token is consumed, then
// tokens are skipped until a semicolon (consumed) or a statement-starting
// keyword (left for the main loop).
func (p *Parser) fail(parent *Node, tok Token, format string, args ...any) {
	p.diags = appendDiag(p.diags, tok.Line, tok.Col, format, args...)
	parent.append(newNode(KindError, tok))
	if tok.Type != TokenEOF {
		p.advance()
	}
	p.sync()
}

var statementStarters = map[string]bool{
	"SELECT": true, "INSERT": true, "UPDATE": true, "DELETE": true, "CREATE": true,
}

func (p *Parser) sync() {
	for !p.isEOF() {
		tok := p.current()
		if tok.Type == TokenDelimiter && tok.Lexeme == ";" {
			p.advance()
			return
		}
		if tok.Type == TokenKeyword && statementStarters[tok.Lexeme] {
			return
		}
		p.advance()
	}
}

func describe(tok Token) string {
	if tok.Type == TokenEOF {
		return "end of input"
	}
	return "'" + tok.Lexeme + "'"
}

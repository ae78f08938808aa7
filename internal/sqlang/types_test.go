package sqlang

import "testing"

func TestCompatible(t *testing.T) {
	tests := []struct {
		a, b DataType
		want bool
	}{
		{TypeInt, TypeInt, true},
		{TypeInt, TypeFloat, true},
		{TypeFloat, TypeInt, true},
		{TypeText, TypeInt, false},
		{TypeText, TypeFloat, false},
		{TypeUnknown, TypeText, true},
		{TypeNull, TypeBoolean, true},
		{TypeDate, TypeDatetime, false},
		{TypeVarchar, TypeVarchar, true},
		{TypeBigint, TypeInt, false},
	}
	for _, tt := range tests {
		if got := Compatible(tt.a, tt.b); got != tt.want {
			t.Errorf("Compatible(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
		// the relation is symmetric
		if got := Compatible(tt.b, tt.a); got != tt.want {
			t.Errorf("Compatible(%s, %s) = %v, want %v", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestDeclaredType(t *testing.T) {
	if got, ok := DeclaredType("varchar"); !ok || got != TypeVarchar {
		t.Errorf("DeclaredType(varchar) = (%s, %v)", got, ok)
	}
	if got, ok := DeclaredType("Int"); !ok || got != TypeInt {
		t.Errorf("DeclaredType(Int) = (%s, %v)", got, ok)
	}
	if _, ok := DeclaredType("BLOB"); ok {
		t.Error("BLOB should not resolve")
	}
}

func TestLiteralType(t *testing.T) {
	tests := []struct {
		node *Node
		want DataType
	}{
		{&Node{Kind: KindNumber, Lexeme: "42"}, TypeInt},
		{&Node{Kind: KindNumber, Lexeme: "3.14"}, TypeFloat},
		{&Node{Kind: KindString, Lexeme: "hi"}, TypeText},
		{&Node{Kind: KindBooleanLiteral, Lexeme: "TRUE"}, TypeBoolean},
		{&Node{Kind: KindBooleanLiteral, Lexeme: "FALSE"}, TypeBoolean},
		{&Node{Kind: KindKeyword, Lexeme: "NULL"}, TypeNull},
	}
	for _, tt := range tests {
		got, ok := literalType(tt.node)
		if !ok || got != tt.want {
			t.Errorf("literalType(%s %q) = (%s, %v), want %s", tt.node.Kind, tt.node.Lexeme, got, ok, tt.want)
		}
	}

	if _, ok := literalType(&Node{Kind: KindIdentifier, Lexeme: "x"}); ok {
		t.Error("identifier should not have a literal type")
	}
}

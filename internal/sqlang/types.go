package sqlang

import "strings"

// DataType is a declared or inferred type name. Declared types come from the
// recognized set below; NULL and UNKNOWN are inference-only wildcard types.
type DataType string

const (
	TypeInt      DataType = "INT"
	TypeFloat    DataType = "FLOAT"
	TypeText     DataType = "TEXT"
	TypeVarchar  DataType = "VARCHAR"
	TypeChar     DataType = "CHAR"
	TypeDate     DataType = "DATE"
	TypeDatetime DataType = "DATETIME"
	TypeBoolean  DataType = "BOOLEAN"
	TypeBigint   DataType = "BIGINT"
	TypeNull     DataType = "NULL"
	TypeUnknown  DataType = "UNKNOWN"
)

var declaredTypes = map[string]DataType{
	"INT":      TypeInt,
	"FLOAT":    TypeFloat,
	"TEXT":     TypeText,
	"VARCHAR":  TypeVarchar,
	"CHAR":     TypeChar,
	"DATE":     TypeDate,
	"DATETIME": TypeDatetime,
	"BOOLEAN":  TypeBoolean,
	"BIGINT":   TypeBigint,
}

// DeclaredType resolves a type name from a CREATE TABLE field definition,
// case-insensitively.
func DeclaredType(name string) (DataType, bool) {
	t, ok := declaredTypes[strings.ToUpper(name)]
	return t, ok
}

// Compatible reports whether two types may be compared or assigned. UNKNOWN
// and NULL match anything; INT and FLOAT widen into each other; everything
// else requires a case-insensitive name match. The relation is symmetric and
// reflexive but not transitive, so it must be applied pairwise.
func Compatible(a, b DataType) bool {
	if a == TypeUnknown || b == TypeUnknown || a == TypeNull || b == TypeNull {
		return true
	}
	if strings.EqualFold(string(a), string(b)) {
		return true
	}
	if (a == TypeInt && b == TypeFloat) || (a == TypeFloat && b == TypeInt) {
		return true
	}
	return false
}

// literalType infers the type of a literal node: numbers split INT/FLOAT on
// the decimal point, quoted strings are TEXT, TRUE/FALSE are BOOLEAN, and the
// NULL keyword is the NULL wildcard.
func literalType(n *Node) (DataType, bool) {
	switch n.Kind {
	case KindNumber:
		if strings.Contains(n.Lexeme, ".") {
			return TypeFloat, true
		}
		return TypeInt, true
	case KindString:
		return TypeText, true
	case KindBooleanLiteral:
		return TypeBoolean, true
	case KindKeyword:
		if n.Lexeme == "NULL" {
			return TypeNull, true
		}
	}
	return TypeUnknown, false
}

package sqlang

import (
	"fmt"
	"strings"
)

// Column is a declared table column.
type Column struct {
	Name string
	Type DataType
}

// Table is an immutable named column list. Lookup is case-insensitive;
// declaration order is preserved.
type Table struct {
	Name    string
	Columns []Column
}

// Column returns the column with the given name, case-insensitively.
func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Column{}, false
}

// SymbolTable is the per-run catalog of declared tables. Names are matched
// case-insensitively; enumeration follows insertion order.
type SymbolTable struct {
	tables map[string]*Table
	order  []string
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{tables: make(map[string]*Table)}
}

// Add registers a table. It fails without modifying state when the name is
// already taken.
func (s *SymbolTable) Add(name string, columns []Column) error {
	key := strings.ToLower(name)
	if _, exists := s.tables[key]; exists {
		return fmt.Errorf("table %q already exists", name)
	}
	s.tables[key] = &Table{Name: name, Columns: columns}
	s.order = append(s.order, key)
	return nil
}

func (s *SymbolTable) Exists(name string) bool {
	_, ok := s.tables[strings.ToLower(name)]
	return ok
}

func (s *SymbolTable) Table(name string) (*Table, bool) {
	t, ok := s.tables[strings.ToLower(name)]
	return t, ok
}

func (s *SymbolTable) ColumnExists(table, column string) bool {
	t, ok := s.Table(table)
	if !ok {
		return false
	}
	_, ok = t.Column(column)
	return ok
}

func (s *SymbolTable) ColumnType(table, column string) (DataType, bool) {
	t, ok := s.Table(table)
	if !ok {
		return TypeUnknown, false
	}
	c, ok := t.Column(column)
	if !ok {
		return TypeUnknown, false
	}
	return c.Type, true
}

// Tables returns all registered tables in insertion order.
func (s *SymbolTable) Tables() []*Table {
	out := make([]*Table, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.tables[key])
	}
	return out
}

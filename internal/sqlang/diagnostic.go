package sqlang

import "fmt"

// Diagnostic is one accumulated problem report with a 1-based source position.
type Diagnostic struct {
	Line    int
	Column  int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s", d.Line, d.Column, d.Message)
}

// appendDiag appends a diagnostic unless it lands on the same position as the
// immediately preceding one. Only the last entry is compared; earlier entries
// at the same spot do not suppress.
func appendDiag(diags []Diagnostic, line, col int, format string, args ...any) []Diagnostic {
	if n := len(diags); n > 0 && diags[n-1].Line == line && diags[n-1].Column == col {
		return diags
	}
	return append(diags, Diagnostic{Line: line, Column: col, Message: fmt.Sprintf(format, args...)})
}

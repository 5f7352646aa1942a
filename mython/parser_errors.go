package mython

import "fmt"

// ParsingError reports a grammar violation, an unknown parent class
// named in a class header, or malformed indentation structure.
type ParsingError struct {
	Line int
	Col  int
	Msg  string
}

func (e *ParsingError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error at line %d, column %d: %s", e.Line, e.Col, e.Msg)
	}
	return fmt.Sprintf("parse error: %s", e.Msg)
}

func parseErrorf(line, col int, format string, args ...any) error {
	return &ParsingError{Line: line, Col: col, Msg: fmt.Sprintf(format, args...)}
}

package mython

import (
	"fmt"
	"strings"
)

// RuntimeError reports an unknown name, unknown field, a method not
// found or called with the wrong arity, a type mismatch in
// arithmetic or comparison, division by zero, or an attempt to
// order/equate incompatible non-scalar values without the relevant
// special method. It carries a one-line source frame and the call
// stack active at the point of failure.
type RuntimeError struct {
	Line      int
	Col       int
	Msg       string
	CodeFrame string
	Frames    []string
}

func (e *RuntimeError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "runtime error at line %d, column %d: %s", e.Line, e.Col, e.Msg)
	if e.CodeFrame != "" {
		sb.WriteByte('\n')
		sb.WriteString(e.CodeFrame)
	}
	for _, f := range e.Frames {
		sb.WriteByte('\n')
		sb.WriteString(f)
	}
	return sb.String()
}

// formatCodeFrame renders the source line an error occurred on with a
// caret under the offending column, e.g.:
//
//	--> line 3, column 5
//	    x = y + 1
//	        ^
func formatCodeFrame(sourceLines []string, line, col int) string {
	if line < 1 || line > len(sourceLines) {
		return ""
	}
	lineText := sourceLines[line-1]
	lineRunes := []rune(lineText)
	if col < 1 {
		col = 1
	}
	if col > len(lineRunes)+1 {
		col = len(lineRunes) + 1
	}
	caretPad := strings.Repeat(" ", col-1)
	return fmt.Sprintf("--> line %d, column %d\n    %s\n    %s^", line, col, lineText, caretPad)
}

// stackFrame is one entry of the call stack: the method (or
// top-level) name and the line of the call site that pushed it.
type stackFrame struct {
	name string
	line int
}

func (ctx *execContext) frameTrace() []string {
	if len(ctx.callStack) == 0 {
		return nil
	}
	frames := make([]string, 0, len(ctx.callStack))
	for i := len(ctx.callStack) - 1; i >= 0; i-- {
		f := ctx.callStack[i]
		frames = append(frames, fmt.Sprintf("  in %s, line %d", f.name, f.line))
	}
	return frames
}

// runtimeErrorf builds a *RuntimeError anchored at ctx's current
// line, with a code frame and the active call stack attached.
func (ctx *execContext) runtimeErrorf(format string, args ...any) error {
	return &RuntimeError{
		Line:      ctx.curLine,
		Col:       ctx.curCol,
		Msg:       fmt.Sprintf(format, args...),
		CodeFrame: formatCodeFrame(ctx.sourceLines, ctx.curLine, ctx.curCol),
		Frames:    ctx.frameTrace(),
	}
}

// pushFrame enters a new call frame, failing with a RuntimeError if
// doing so would exceed the configured call-depth cap — the
// replacement for an uncaught host stack overflow.
func (ctx *execContext) pushFrame(name string, line int) error {
	if len(ctx.callStack) >= ctx.maxCallDepth {
		return ctx.runtimeErrorf("maximum call depth of %d exceeded calling %s", ctx.maxCallDepth, name)
	}
	ctx.callStack = append(ctx.callStack, stackFrame{name: name, line: line})
	return nil
}

func (ctx *execContext) popFrame() {
	ctx.callStack = ctx.callStack[:len(ctx.callStack)-1]
}

// step charges one unit of the engine's step quota. Exceeding it
// turns a runaway loop into a reported RuntimeError instead of
// blocking the host process forever.
func (ctx *execContext) step() error {
	ctx.steps++
	if ctx.steps > ctx.maxSteps {
		return ctx.runtimeErrorf("exceeded maximum step count of %d", ctx.maxSteps)
	}
	return nil
}

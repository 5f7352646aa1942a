package mython

import (
	"bytes"
	"context"
	"io"
)

// Config bounds the resources a single Run is allowed to spend,
// turning unbounded host-stack recursion and unbounded loops into
// reported RuntimeErrors instead of a process crash or a hang.
type Config struct {
	// MaxCallDepth caps nested method calls (instance.Call invoking
	// instance.Call...). Zero means "use the default."
	MaxCallDepth int
	// MaxSteps caps the total number of statements executed in a
	// single run. Zero means "use the default."
	MaxSteps int
}

const (
	defaultMaxCallDepth = 1000
	defaultMaxSteps     = 10_000_000
)

func (c Config) withDefaults() Config {
	if c.MaxCallDepth <= 0 {
		c.MaxCallDepth = defaultMaxCallDepth
	}
	if c.MaxSteps <= 0 {
		c.MaxSteps = defaultMaxSteps
	}
	return c
}

// Engine is the reusable, stateless-between-runs entry point to the
// interpreter: it owns only the resource configuration, never any
// program state (scopes and call stacks live entirely inside a
// single Run call).
type Engine struct {
	config Config
}

// NewEngine returns an Engine with cfg's zero fields replaced by
// sensible defaults.
func NewEngine(cfg Config) *Engine {
	return &Engine{config: cfg.withDefaults()}
}

// Run is the single operation the interpreter exposes to a host:
// it constructs a lexer, parses the program, and executes it
// against a fresh global scope, writing print output to out. The
// first LexerError, ParsingError, or RuntimeError aborts the run and
// is returned; ctx cancellation is not checked mid-run since the
// evaluator is synchronous and single-threaded by design, but
// ctx.Err() is consulted before starting.
func (e *Engine) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	source, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	lexer, err := NewLexer(bytes.NewReader(source))
	if err != nil {
		return err
	}

	program, err := ParseProgram(lexer)
	if err != nil {
		return err
	}

	execCtx := newExecContext(out, string(source), e.config.MaxSteps, e.config.MaxCallDepth)
	scope := NewScope()
	_, _, err = evalStatements(program.Stmts, scope, execCtx)
	return err
}

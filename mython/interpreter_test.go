package mython

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestEngineDefaultsAreApplied(t *testing.T) {
	engine := NewEngine(Config{})
	if engine.config.MaxCallDepth != defaultMaxCallDepth {
		t.Fatalf("expected default MaxCallDepth, got %d", engine.config.MaxCallDepth)
	}
	if engine.config.MaxSteps != defaultMaxSteps {
		t.Fatalf("expected default MaxSteps, got %d", engine.config.MaxSteps)
	}
}

func TestEngineRunPropagatesLexerError(t *testing.T) {
	engine := NewEngine(Config{})
	var out bytes.Buffer
	err := engine.Run(context.Background(), strings.NewReader(`s = "unterminated`+"\n"), &out)
	if err == nil {
		t.Fatal("expected a LexerError for unterminated input")
	}
	if _, ok := err.(*LexerError); !ok {
		t.Fatalf("expected *LexerError, got %T: %v", err, err)
	}
}

func TestEngineRunPropagatesParsingError(t *testing.T) {
	engine := NewEngine(Config{})
	var out bytes.Buffer
	err := engine.Run(context.Background(), strings.NewReader("if x\n  print 1\n"), &out)
	if err == nil {
		t.Fatal("expected a ParsingError for a malformed if header")
	}
	if _, ok := err.(*ParsingError); !ok {
		t.Fatalf("expected *ParsingError, got %T: %v", err, err)
	}
}

func TestEngineRunRejectsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	engine := NewEngine(Config{})
	var out bytes.Buffer
	if err := engine.Run(ctx, strings.NewReader("print 1\n"), &out); err == nil {
		t.Fatal("expected Run to reject an already-canceled context")
	}
}

func TestEngineRunEnforcesCallDepth(t *testing.T) {
	src := "" +
		"class Rec:\n" +
		"  def go(self, n):\n" +
		"    return self.go(n)\n" +
		"Rec().go(0)\n"
	engine := NewEngine(Config{MaxCallDepth: 8})
	var out bytes.Buffer
	err := engine.Run(context.Background(), strings.NewReader(src), &out)
	if err == nil {
		t.Fatal("expected infinite method recursion to fail with a RuntimeError")
	}
	if _, ok := err.(*RuntimeError); !ok {
		t.Fatalf("expected *RuntimeError, got %T: %v", err, err)
	}
}

func TestEngineRunEnforcesStepQuota(t *testing.T) {
	src := "" +
		"class Loop:\n" +
		"  def forever(self):\n" +
		"    return self.forever()\n" +
		"Loop().forever()\n"
	engine := NewEngine(Config{MaxCallDepth: 100000, MaxSteps: 50})
	var out bytes.Buffer
	err := engine.Run(context.Background(), strings.NewReader(src), &out)
	if err == nil {
		t.Fatal("expected the step quota to abort an unbounded method recursion")
	}
}

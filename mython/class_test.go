package mython

import "testing"

func TestMethodResolutionSearchesParentChain(t *testing.T) {
	fInA := &Method{Name: "f", Params: nil, Body: nil}
	a := NewClassDef("A", []*Method{fInA}, nil)
	b := NewClassDef("B", nil, a)

	if got := b.GetMethod("f"); got != fInA {
		t.Fatalf("expected B to inherit A's f, got %v", got)
	}
}

func TestMethodResolutionPrefersOwnTableOverParent(t *testing.T) {
	fInA := &Method{Name: "f", Params: nil, Body: nil}
	fInB := &Method{Name: "f", Params: nil, Body: nil}
	a := NewClassDef("A", []*Method{fInA}, nil)
	b := NewClassDef("B", []*Method{fInB}, a)

	if got := b.GetMethod("f"); got != fInB {
		t.Fatalf("expected B's own f to override A's, got %v", got)
	}
}

func TestHasMethodIsArityAware(t *testing.T) {
	m := &Method{Name: "f", Params: []string{"self", "x"}, Body: nil}
	c := NewClassDef("A", []*Method{m}, nil)

	if !c.HasMethod("f", 1) {
		t.Fatal("expected HasMethod(f, 1) to match the one-parameter method")
	}
	if c.HasMethod("f", 2) {
		t.Fatal("expected HasMethod(f, 2) to reject an arity mismatch")
	}
	if c.HasMethod("g", 1) {
		t.Fatal("expected HasMethod to reject an undefined method name")
	}
}

func TestHasMethodDoesNotMatchParentArityMismatch(t *testing.T) {
	fInA := &Method{Name: "f", Params: []string{"self", "x", "y"}, Body: nil}
	a := NewClassDef("A", []*Method{fInA}, nil)
	b := NewClassDef("B", nil, a)

	if b.HasMethod("f", 1) {
		t.Fatal("B should not report a match for an arity the parent's method doesn't have")
	}
	if !b.HasMethod("f", 2) {
		t.Fatal("B should inherit A's two-argument f")
	}
}

func TestNewInstanceStartsWithEmptyFields(t *testing.T) {
	c := NewClassDef("A", nil, nil)
	inst := NewInstance(c)
	if len(inst.Fields) != 0 {
		t.Fatalf("expected a fresh instance to have no fields, got %d", len(inst.Fields))
	}
	if inst.Class != c {
		t.Fatal("expected the instance to reference its class")
	}
}

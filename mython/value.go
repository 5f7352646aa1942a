package mython

import (
	"fmt"
	"io"
)

// ValueKind is the closed set of runtime value kinds Mython allows:
// None, Number, String, Bool, Class, ClassInstance.
type ValueKind int

const (
	KindValueNone ValueKind = iota
	KindValueNumber
	KindValueString
	KindValueBool
	KindValueClass
	KindValueInstance
)

// Value is a tagged union over the six value kinds. Only the field
// matching kind is meaningful; Go's garbage collector stands in for
// reference-counted shared ownership, so no explicit refcounting is
// modeled — Class and Instance still carry pointer payloads so that
// field mutation through one Value is visible through every other
// Value that shares the same instance.
type Value struct {
	kind ValueKind
	num  int64
	str  string
	b    bool
	cls  *ClassDef
	inst *Instance
}

// None is the single None value.
var None = Value{kind: KindValueNone}

// NewNumber wraps an integer as a Number value.
func NewNumber(n int64) Value { return Value{kind: KindValueNumber, num: n} }

// NewString wraps a string as a String value.
func NewString(s string) Value { return Value{kind: KindValueString, str: s} }

// NewBool wraps a bool as a Bool value.
func NewBool(b bool) Value { return Value{kind: KindValueBool, b: b} }

// NewClassValue wraps a *ClassDef as a Class value.
func NewClassValue(c *ClassDef) Value { return Value{kind: KindValueClass, cls: c} }

// NewInstanceValue wraps a *Instance as a ClassInstance value.
func NewInstanceValue(i *Instance) Value { return Value{kind: KindValueInstance, inst: i} }

// Kind reports which of the six kinds this value holds.
func (v Value) Kind() ValueKind { return v.kind }

func (v Value) IsNone() bool     { return v.kind == KindValueNone }
func (v Value) IsNumber() bool   { return v.kind == KindValueNumber }
func (v Value) IsString() bool   { return v.kind == KindValueString }
func (v Value) IsBool() bool     { return v.kind == KindValueBool }
func (v Value) IsClass() bool    { return v.kind == KindValueClass }
func (v Value) IsInstance() bool { return v.kind == KindValueInstance }

// Number returns the underlying integer. Callers must check IsNumber
// first; this panics on a kind mismatch rather than silently
// returning a zero value.
func (v Value) Number() int64 {
	if v.kind != KindValueNumber {
		panic("mython: Number() on non-Number value")
	}
	return v.num
}

func (v Value) Str() string {
	if v.kind != KindValueString {
		panic("mython: Str() on non-String value")
	}
	return v.str
}

func (v Value) Bool() bool {
	if v.kind != KindValueBool {
		panic("mython: Bool() on non-Bool value")
	}
	return v.b
}

func (v Value) Class() *ClassDef {
	if v.kind != KindValueClass {
		panic("mython: Class() on non-Class value")
	}
	return v.cls
}

func (v Value) Instance() *Instance {
	if v.kind != KindValueInstance {
		panic("mython: Instance() on non-ClassInstance value")
	}
	return v.inst
}

// IsTrue reports Mython's truthiness rule: a non-zero Number, a true
// Bool, or a non-empty String. Everything else — including None,
// every Class, and every ClassInstance — is false.
func IsTrue(v Value) bool {
	switch v.kind {
	case KindValueNumber:
		return v.num != 0
	case KindValueBool:
		return v.b
	case KindValueString:
		return v.str != ""
	default:
		return false
	}
}

// Print writes v's display form to w: Bool as True/False, Number/
// String verbatim, Class as "Class <name>", a ClassInstance defining
// __str__/0 as the result of calling it (recursively Print'd),
// otherwise an opaque stable identifier, and None as no output at
// all. ctx supplies the call machinery an instance's __str__ method
// needs.
func Print(w io.Writer, ctx *execContext, v Value) error {
	switch v.kind {
	case KindValueNone:
		return nil
	case KindValueBool:
		if v.b {
			_, err := io.WriteString(w, "True")
			return err
		}
		_, err := io.WriteString(w, "False")
		return err
	case KindValueNumber:
		_, err := fmt.Fprintf(w, "%d", v.num)
		return err
	case KindValueString:
		_, err := io.WriteString(w, v.str)
		return err
	case KindValueClass:
		_, err := fmt.Fprintf(w, "Class %s", v.cls.Name)
		return err
	case KindValueInstance:
		if v.inst.Class.HasMethod("__str__", 0) {
			result, err := ctx.callMethod(v.inst, "__str__", nil)
			if err != nil {
				return err
			}
			return Print(w, ctx, result)
		}
		_, err := fmt.Fprintf(w, "<%s object at %p>", v.inst.Class.Name, v.inst)
		return err
	default:
		return nil
	}
}

// displayArg renders v as print's argument separator logic needs:
// identical to Print except that None contributes an empty string
// rather than nothing — a bare print argument of None still takes up
// a slot between the separating spaces, unlike a direct Print of
// None, which writes nothing at all.
func displayArg(ctx *execContext, v Value) (string, error) {
	var sb stringWriter
	if v.IsNone() {
		return "", nil
	}
	if err := Print(&sb, ctx, v); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// stringWriter is a minimal io.Writer over a growing string, used so
// Print's single implementation can also serve displayArg and
// __str__-chasing without allocating a bytes.Buffer for every call.
type stringWriter struct {
	buf []byte
}

func (s *stringWriter) Write(p []byte) (int, error) {
	s.buf = append(s.buf, p...)
	return len(p), nil
}

func (s *stringWriter) String() string { return string(s.buf) }

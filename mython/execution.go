package mython

import (
	"io"
	"strings"
)

// execContext is the evaluation context threaded through every
// evalStatement/evalExpression call: the output stream print writes
// to, the active call stack, the step/recursion quotas, and the
// current line (kept current so a RuntimeError raised deep inside an
// expression still reports a sensible position).
type execContext struct {
	out         io.Writer
	sourceLines []string

	callStack    []stackFrame
	steps        int
	maxSteps     int
	maxCallDepth int

	curLine int
	curCol  int
}

func newExecContext(out io.Writer, source string, maxSteps, maxCallDepth int) *execContext {
	return &execContext{
		out:          out,
		sourceLines:  strings.Split(source, "\n"),
		maxSteps:     maxSteps,
		maxCallDepth: maxCallDepth,
	}
}

// callMethod implements instance method dispatch: it requires
// HasMethod(name, len(args)), builds a fresh scope binding self and
// the formal parameters to the actuals, executes the body, and
// returns whatever Return yielded or None if the body fell through.
func (ctx *execContext) callMethod(inst *Instance, name string, args []Value) (Value, error) {
	method := inst.Class.GetMethod(name)
	if method == nil || method.Arity() != len(args) {
		return None, ctx.runtimeErrorf("object has no method %q with %d argument(s)", name, len(args))
	}
	if err := ctx.pushFrame(name, ctx.curLine); err != nil {
		return None, err
	}
	defer ctx.popFrame()

	scope := NewScope()
	scope.Set(method.receiverName(), NewInstanceValue(inst))
	for i, param := range method.callParams() {
		scope.Set(param, args[i])
	}
	result, returned, err := evalStatements(method.Body, scope, ctx)
	if err != nil {
		return None, err
	}
	if !returned {
		return None, nil
	}
	return result, nil
}

// evalStatements runs a block, short-circuiting on the first Return
// (propagated upward as (value, true, nil)) or the first error.
func evalStatements(stmts []Statement, scope *Scope, ctx *execContext) (Value, bool, error) {
	for _, stmt := range stmts {
		if err := ctx.step(); err != nil {
			return None, false, err
		}
		value, returned, err := evalStatement(stmt, scope, ctx)
		if err != nil {
			return None, false, err
		}
		if returned {
			return value, true, nil
		}
	}
	return None, false, nil
}

func evalStatement(stmt Statement, scope *Scope, ctx *execContext) (Value, bool, error) {
	ctx.curLine, ctx.curCol = stmt.Line(), stmt.Col()
	switch s := stmt.(type) {
	case *PrintStmt:
		return None, false, evalPrint(s, scope, ctx)
	case *ReturnStmt:
		val, err := evalExpression(s.Value, scope, ctx)
		if err != nil {
			return None, false, err
		}
		return val, true, nil
	case *AssignStmt:
		return None, false, evalAssign(s, scope, ctx)
	case *ExprStmt:
		_, err := evalExpression(s.X, scope, ctx)
		return None, false, err
	case *IfStmt:
		cond, err := evalExpression(s.Cond, scope, ctx)
		if err != nil {
			return None, false, err
		}
		if IsTrue(cond) {
			return evalStatements(s.Then, scope, ctx)
		}
		return evalStatements(s.Else, scope, ctx)
	case *ClassStmt:
		return None, false, evalClassDef(s, scope, ctx)
	case *MethodDef:
		return None, false, ctx.runtimeErrorf("method definition %q encountered outside a class body", s.Name)
	default:
		return None, false, ctx.runtimeErrorf("unsupported statement")
	}
}

func evalPrint(s *PrintStmt, scope *Scope, ctx *execContext) error {
	parts := make([]string, len(s.Args))
	for i, arg := range s.Args {
		val, err := evalExpression(arg, scope, ctx)
		if err != nil {
			return err
		}
		text, err := displayArg(ctx, val)
		if err != nil {
			return err
		}
		parts[i] = text
	}
	_, err := io.WriteString(ctx.out, strings.Join(parts, " ")+"\n")
	return err
}

// evalAssign evaluates Value once, then writes it to every target in
// order: a bare Identifier inserts/overwrites in the current scope; a
// FieldAccess resolves its Object (which must already be an
// instance) and writes the named field.
func evalAssign(s *AssignStmt, scope *Scope, ctx *execContext) error {
	value, err := evalExpression(s.Value, scope, ctx)
	if err != nil {
		return err
	}
	for _, target := range s.Targets {
		switch t := target.(type) {
		case *Identifier:
			scope.Set(t.Name, value)
		case *FieldAccess:
			obj, err := evalExpression(t.Object, scope, ctx)
			if err != nil {
				return err
			}
			if !obj.IsInstance() {
				return ctx.runtimeErrorf("cannot assign field %q on a non-instance value", t.Name)
			}
			obj.Instance().Fields[t.Name] = value
		default:
			return ctx.runtimeErrorf("invalid assignment target")
		}
	}
	return nil
}

// evalClassDef builds the runtime ClassDef for a class statement:
// parent, when named, must already be a Class value bound in scope
// (top-to-bottom declaration order guarantees this since the
// parser's compile-time table already validated the name exists);
// the class itself is then bound in the current scope.
func evalClassDef(s *ClassStmt, scope *Scope, ctx *execContext) error {
	var parent *ClassDef
	if s.Parent != "" {
		parentVal, ok := scope.Get(s.Parent)
		if !ok || !parentVal.IsClass() {
			return ctx.runtimeErrorf("parent class %q is not defined", s.Parent)
		}
		parent = parentVal.Class()
	}
	methods := make([]*Method, len(s.Methods))
	for i, m := range s.Methods {
		methods[i] = &Method{Name: m.Name, Params: m.Params, Body: m.Body}
	}
	scope.Set(s.Name, NewClassValue(NewClassDef(s.Name, methods, parent)))
	return nil
}

func evalExpression(expr Expression, scope *Scope, ctx *execContext) (Value, error) {
	ctx.curLine, ctx.curCol = expr.Line(), expr.Col()
	switch e := expr.(type) {
	case *NumberLit:
		return NewNumber(e.Value), nil
	case *StringLit:
		return NewString(e.Value), nil
	case *BoolLit:
		return NewBool(e.Value), nil
	case *NoneLit:
		return None, nil
	case *Identifier:
		val, ok := scope.Get(e.Name)
		if !ok {
			return None, ctx.runtimeErrorf("name %q is not defined", e.Name)
		}
		return val, nil
	case *UnaryExpr:
		return evalUnary(e, scope, ctx)
	case *BinaryExpr:
		return evalBinary(e, scope, ctx)
	case *LogicalExpr:
		return evalLogical(e, scope, ctx)
	case *FieldAccess:
		return evalFieldAccess(e, scope, ctx)
	case *MethodCall:
		return evalMethodCall(e, scope, ctx)
	case *ConstructorCall:
		return evalConstructorCall(e, scope, ctx)
	default:
		return None, ctx.runtimeErrorf("unsupported expression")
	}
}

func evalUnary(e *UnaryExpr, scope *Scope, ctx *execContext) (Value, error) {
	x, err := evalExpression(e.X, scope, ctx)
	if err != nil {
		return None, err
	}
	switch e.Op {
	case "not":
		return NewBool(!IsTrue(x)), nil
	case "-":
		if !x.IsNumber() {
			return None, ctx.runtimeErrorf("unary minus requires a Number, got %s", kindName(x))
		}
		return NewNumber(-x.Number()), nil
	default:
		return None, ctx.runtimeErrorf("unsupported unary operator %q", e.Op)
	}
}

func evalLogical(e *LogicalExpr, scope *Scope, ctx *execContext) (Value, error) {
	left, err := evalExpression(e.Left, scope, ctx)
	if err != nil {
		return None, err
	}
	switch e.Op {
	case "or":
		if IsTrue(left) {
			return left, nil
		}
	case "and":
		if !IsTrue(left) {
			return left, nil
		}
	}
	return evalExpression(e.Right, scope, ctx)
}

func evalBinary(e *BinaryExpr, scope *Scope, ctx *execContext) (Value, error) {
	lhs, err := evalExpression(e.Left, scope, ctx)
	if err != nil {
		return None, err
	}
	rhs, err := evalExpression(e.Right, scope, ctx)
	if err != nil {
		return None, err
	}
	switch e.Op {
	case "+":
		return evalAdd(ctx, lhs, rhs)
	case "-":
		return numericOp(ctx, lhs, rhs, "-", func(a, b int64) int64 { return a - b })
	case "*":
		return numericOp(ctx, lhs, rhs, "*", func(a, b int64) int64 { return a * b })
	case "/":
		return evalDivide(ctx, lhs, rhs)
	case "==":
		ok, err := Equal(ctx, lhs, rhs)
		return NewBool(ok), err
	case "!=":
		ok, err := NotEqual(ctx, lhs, rhs)
		return NewBool(ok), err
	case "<":
		ok, err := Less(ctx, lhs, rhs)
		return NewBool(ok), err
	case ">":
		ok, err := Greater(ctx, lhs, rhs)
		return NewBool(ok), err
	case "<=":
		ok, err := LessOrEqual(ctx, lhs, rhs)
		return NewBool(ok), err
	case ">=":
		ok, err := GreaterOrEqual(ctx, lhs, rhs)
		return NewBool(ok), err
	default:
		return None, ctx.runtimeErrorf("unsupported operator %q", e.Op)
	}
}

// evalAdd implements the overloaded '+': Number+Number,
// String+String, or an Instance on the left with __add__ arity 1.
func evalAdd(ctx *execContext, lhs, rhs Value) (Value, error) {
	switch {
	case lhs.IsNumber() && rhs.IsNumber():
		return NewNumber(lhs.Number() + rhs.Number()), nil
	case lhs.IsString() && rhs.IsString():
		return NewString(lhs.Str() + rhs.Str()), nil
	case lhs.IsInstance() && lhs.Instance().Class.HasMethod("__add__", 1):
		return ctx.callMethod(lhs.Instance(), "__add__", []Value{rhs})
	default:
		return None, ctx.runtimeErrorf("unsupported operand types for +: %s and %s", kindName(lhs), kindName(rhs))
	}
}

func numericOp(ctx *execContext, lhs, rhs Value, op string, fn func(a, b int64) int64) (Value, error) {
	if !lhs.IsNumber() || !rhs.IsNumber() {
		return None, ctx.runtimeErrorf("unsupported operand types for %s: %s and %s", op, kindName(lhs), kindName(rhs))
	}
	return NewNumber(fn(lhs.Number(), rhs.Number())), nil
}

func evalDivide(ctx *execContext, lhs, rhs Value) (Value, error) {
	if !lhs.IsNumber() || !rhs.IsNumber() {
		return None, ctx.runtimeErrorf("unsupported operand types for /: %s and %s", kindName(lhs), kindName(rhs))
	}
	if rhs.Number() == 0 {
		return None, ctx.runtimeErrorf("division by zero")
	}
	return NewNumber(lhs.Number() / rhs.Number()), nil
}

func evalFieldAccess(e *FieldAccess, scope *Scope, ctx *execContext) (Value, error) {
	obj, err := evalExpression(e.Object, scope, ctx)
	if err != nil {
		return None, err
	}
	if !obj.IsInstance() {
		return None, ctx.runtimeErrorf("cannot access field %q on a non-instance value", e.Name)
	}
	val, ok := obj.Instance().Fields[e.Name]
	if !ok {
		return None, ctx.runtimeErrorf("object has no field %q", e.Name)
	}
	return val, nil
}

func evalMethodCall(e *MethodCall, scope *Scope, ctx *execContext) (Value, error) {
	obj, err := evalExpression(e.Object, scope, ctx)
	if err != nil {
		return None, err
	}
	if !obj.IsInstance() {
		return None, ctx.runtimeErrorf("cannot call method %q on a non-instance value", e.Name)
	}
	args := make([]Value, len(e.Args))
	for i, a := range e.Args {
		val, err := evalExpression(a, scope, ctx)
		if err != nil {
			return None, err
		}
		args[i] = val
	}
	if !obj.Instance().Class.HasMethod(e.Name, len(args)) {
		return None, ctx.runtimeErrorf("object has no method %q with %d argument(s)", e.Name, len(args))
	}
	return ctx.callMethod(obj.Instance(), e.Name, args)
}

// evalConstructorCall builds a new instance of the named class. If
// the class defines __init__ with matching arity, it is invoked for
// its side effects (its return value is discarded); otherwise any
// constructor arguments are a runtime error, mirroring the
// arity strictness ordinary method calls enforce.
func evalConstructorCall(e *ConstructorCall, scope *Scope, ctx *execContext) (Value, error) {
	classVal, ok := scope.Get(e.ClassName)
	if !ok || !classVal.IsClass() {
		return None, ctx.runtimeErrorf("name %q is not a class", e.ClassName)
	}
	class := classVal.Class()
	args := make([]Value, len(e.Args))
	for i, a := range e.Args {
		val, err := evalExpression(a, scope, ctx)
		if err != nil {
			return None, err
		}
		args[i] = val
	}
	inst := NewInstance(class)
	if class.HasMethod("__init__", len(args)) {
		if _, err := ctx.callMethod(inst, "__init__", args); err != nil {
			return None, err
		}
	} else if len(args) != 0 {
		return None, ctx.runtimeErrorf("class %q takes no arguments", e.ClassName)
	}
	return NewInstanceValue(inst), nil
}

package mython

// Equal implements Mython's equality rule: both None is true; a
// ClassInstance on the left with __eq__/1 dispatches and coerces via
// IsTrue; matching scalar kinds compare their underlying values;
// anything else is a RuntimeError.
func Equal(ctx *execContext, lhs, rhs Value) (bool, error) {
	if lhs.IsNone() && rhs.IsNone() {
		return true, nil
	}
	if lhs.IsInstance() && lhs.Instance().Class.HasMethod("__eq__", 1) {
		result, err := ctx.callMethod(lhs.Instance(), "__eq__", []Value{rhs})
		if err != nil {
			return false, err
		}
		return IsTrue(result), nil
	}
	if ok, eq := scalarEqual(lhs, rhs); ok {
		return eq, nil
	}
	return false, ctx.runtimeErrorf("cannot compare %s and %s for equality", kindName(lhs), kindName(rhs))
}

func scalarEqual(lhs, rhs Value) (matched bool, equal bool) {
	switch {
	case lhs.IsBool() && rhs.IsBool():
		return true, lhs.Bool() == rhs.Bool()
	case lhs.IsNumber() && rhs.IsNumber():
		return true, lhs.Number() == rhs.Number()
	case lhs.IsString() && rhs.IsString():
		return true, lhs.Str() == rhs.Str()
	default:
		return false, false
	}
}

// Less implements Mython's ordering rule: a ClassInstance on the
// left with __lt__/1 dispatches and coerces via IsTrue; matching
// scalar kinds compare underlying values; anything else is a
// RuntimeError.
func Less(ctx *execContext, lhs, rhs Value) (bool, error) {
	if lhs.IsInstance() && lhs.Instance().Class.HasMethod("__lt__", 1) {
		result, err := ctx.callMethod(lhs.Instance(), "__lt__", []Value{rhs})
		if err != nil {
			return false, err
		}
		return IsTrue(result), nil
	}
	switch {
	case lhs.IsBool() && rhs.IsBool():
		return !lhs.Bool() && rhs.Bool(), nil
	case lhs.IsNumber() && rhs.IsNumber():
		return lhs.Number() < rhs.Number(), nil
	case lhs.IsString() && rhs.IsString():
		return lhs.Str() < rhs.Str(), nil
	default:
		return false, ctx.runtimeErrorf("cannot order %s and %s", kindName(lhs), kindName(rhs))
	}
}

// NotEqual, Greater, LessOrEqual and GreaterOrEqual are all defined
// in terms of Equal/Less.
func NotEqual(ctx *execContext, lhs, rhs Value) (bool, error) {
	eq, err := Equal(ctx, lhs, rhs)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

// Greater is !(Less(lhs,rhs) || Equal(lhs,rhs)), not Less(rhs,lhs) —
// special-method dispatch (__lt__, __eq__) only ever happens on the
// left operand, and swapping the arguments would dispatch on rhs
// instead.
func Greater(ctx *execContext, lhs, rhs Value) (bool, error) {
	lt, err := Less(ctx, lhs, rhs)
	if err != nil {
		return false, err
	}
	if lt {
		return false, nil
	}
	eq, err := Equal(ctx, lhs, rhs)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

func LessOrEqual(ctx *execContext, lhs, rhs Value) (bool, error) {
	gt, err := Greater(ctx, lhs, rhs)
	if err != nil {
		return false, err
	}
	return !gt, nil
}

func GreaterOrEqual(ctx *execContext, lhs, rhs Value) (bool, error) {
	lt, err := Less(ctx, lhs, rhs)
	if err != nil {
		return false, err
	}
	return !lt, nil
}

func kindName(v Value) string {
	switch v.Kind() {
	case KindValueNone:
		return "None"
	case KindValueNumber:
		return "Number"
	case KindValueString:
		return "String"
	case KindValueBool:
		return "Bool"
	case KindValueClass:
		return "Class"
	case KindValueInstance:
		return "ClassInstance"
	default:
		return "Value"
	}
}

package mython

// Method is a parsed, not-yet-bound method body: a name, its formal
// parameter list as written in source (the receiver — conventionally
// named self — is always Params[0]), and a statement body.
type Method struct {
	Name   string
	Params []string
	Body   []Statement
}

// Arity returns the number of arguments Call expects beyond the
// receiver: len(Params) minus the leading self parameter every
// method declares explicitly.
func (m *Method) Arity() int {
	if len(m.Params) == 0 {
		return 0
	}
	return len(m.Params) - 1
}

// receiverName returns the name the method's source bound the
// receiver to (conventionally "self").
func (m *Method) receiverName() string {
	if len(m.Params) == 0 {
		return "self"
	}
	return m.Params[0]
}

// callParams returns the formal parameters beyond the receiver, in
// the order actual arguments bind to them.
func (m *Method) callParams() []string {
	if len(m.Params) == 0 {
		return nil
	}
	return m.Params[1:]
}

// ClassDef is a Class value's payload: an ordered method list, a
// name-indexed lookup table over that same list, and a non-owning
// pointer to a parent class: own table searched first, then the
// parent recursively.
type ClassDef struct {
	Name    string
	Methods []*Method
	byName  map[string]*Method
	Parent  *ClassDef
}

// NewClassDef builds a ClassDef from its ordered methods, indexing
// them by name. A later method with the same name as an earlier one
// overwrites the index entry but not its position in Methods, so
// lookups by name find the later definition. The parser does not
// reject duplicate method names.
func NewClassDef(name string, methods []*Method, parent *ClassDef) *ClassDef {
	c := &ClassDef{Name: name, Methods: methods, Parent: parent, byName: make(map[string]*Method, len(methods))}
	for _, m := range methods {
		c.byName[m.Name] = m
	}
	return c
}

// GetMethod searches this class's own table, then recurses into the
// parent chain. It returns nil if no class in the chain defines name.
func (c *ClassDef) GetMethod(name string) *Method {
	if m, ok := c.byName[name]; ok {
		return m
	}
	if c.Parent != nil {
		return c.Parent.GetMethod(name)
	}
	return nil
}

// HasMethod reports whether name resolves along the parent chain to a
// method whose parameter count equals argc. Dispatch is arity-aware:
// a same-named method with the wrong arity is treated as absent.
func (c *ClassDef) HasMethod(name string, argc int) bool {
	m := c.GetMethod(name)
	return m != nil && m.Arity() == argc
}

// Instance is a ClassInstance value's payload: a non-owning reference
// to the ClassDef that describes it (the class is created once at
// top-level scope and outlives every instance), and its own field
// scope.
type Instance struct {
	Class  *ClassDef
	Fields map[string]Value
}

// NewInstance creates an instance with an empty field scope.
func NewInstance(class *ClassDef) *Instance {
	return &Instance{Class: class, Fields: make(map[string]Value)}
}

package mython

// Scope is a flat mapping from identifier to value. A Scope has no
// parent pointer: scopes are not lexically nested at runtime, so a
// miss here is always a runtime error, never a fallback lookup.
type Scope struct {
	vars map[string]Value
}

// NewScope returns an empty scope.
func NewScope() *Scope {
	return &Scope{vars: make(map[string]Value)}
}

// Get looks up name in this scope only.
func (s *Scope) Get(name string) (Value, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// Set inserts or overwrites name in this scope.
func (s *Scope) Set(name string, v Value) {
	s.vars[name] = v
}

/*
File    : green/analyzer/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package analyzer

import "github.com/akashmaji946/green/parser"

// VariableScope is an insertion-ordered sequence of (name, type)
// declarations with an optional parent scope. Lookup walks the
// current scope first, then its ancestors, so a name declared in an
// inner scope shadows the same name declared in an outer one; within
// a single scope, redeclaring a name simply replaces its recorded
// type. It tracks static types only, not values, since that is all
// the analyzer needs to check declarations and expressions ahead of
// execution.
type VariableScope struct {
	order  []string
	types  map[string]parser.ValueType
	Parent *VariableScope
}

// NewVariableScope creates a scope nested under parent, or a root
// scope when parent is nil.
func NewVariableScope(parent *VariableScope) *VariableScope {
	return &VariableScope{
		types:  make(map[string]parser.ValueType),
		Parent: parent,
	}
}

// Declare records name's type in this scope, appending it to the
// insertion order the first time it is seen.
func (s *VariableScope) Declare(name string, typ parser.ValueType) {
	if _, exists := s.types[name]; !exists {
		s.order = append(s.order, name)
	}
	s.types[name] = typ
}

// Lookup searches this scope and its ancestors for name's declared
// type.
func (s *VariableScope) Lookup(name string) (parser.ValueType, bool) {
	if typ, ok := s.types[name]; ok {
		return typ, true
	}
	if s.Parent != nil {
		return s.Parent.Lookup(name)
	}
	return "", false
}

/*
File    : green/eval/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/green/objects"
	"github.com/akashmaji946/green/parser"
)

// Scope is the evaluator's own stack of variable bindings, distinct
// from the analyzer's VariableScope: it maps a name to its current
// value rather than its static type, though it still records the
// declared type alongside the value so an assignment can enforce it
// (Runtime010). Green has exactly one variable kind, so there is no
// var/const/let distinction to track, and no closure capture to copy.
type Scope struct {
	values map[string]objects.GreenObject
	types  map[string]parser.ValueType
	Parent *Scope
}

// NewScope creates a scope nested under parent, or a root scope when
// parent is nil.
func NewScope(parent *Scope) *Scope {
	return &Scope{
		values: make(map[string]objects.GreenObject),
		types:  make(map[string]parser.ValueType),
		Parent: parent,
	}
}

// Declare binds name to value in this scope, recording its type.
func (s *Scope) Declare(name string, typ parser.ValueType, value objects.GreenObject) {
	s.values[name] = value
	s.types[name] = typ
}

// Lookup searches this scope and its ancestors for name's current
// value.
func (s *Scope) Lookup(name string) (objects.GreenObject, bool) {
	if v, ok := s.values[name]; ok {
		return v, true
	}
	if s.Parent != nil {
		return s.Parent.Lookup(name)
	}
	return nil, false
}

// DeclaredType searches this scope and its ancestors for name's
// declared type.
func (s *Scope) DeclaredType(name string) (parser.ValueType, bool) {
	if t, ok := s.types[name]; ok {
		return t, true
	}
	if s.Parent != nil {
		return s.Parent.DeclaredType(name)
	}
	return "", false
}

// Assign mutates name's binding in the nearest scope (this one or an
// ancestor) where it is already declared, returning false if no such
// binding exists.
func (s *Scope) Assign(name string, value objects.GreenObject) bool {
	if _, ok := s.values[name]; ok {
		s.values[name] = value
		return true
	}
	if s.Parent != nil {
		return s.Parent.Assign(name, value)
	}
	return false
}

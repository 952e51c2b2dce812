/*
File    : green/objects/objects.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package objects defines Green's runtime value types: Int, Float,
// Bool, String, Coroutine (an opaque task handle), and Null (the
// absence of a value: a declared variable with no initializer, or the
// result of a call that returns nothing). Every concrete type implements GreenObject,
// letting the evaluator hold values behind one interface while still
// being able to recover the exact type for arithmetic/comparison
// dispatch.
package objects

import "fmt"

// GreenType identifies the runtime type of a GreenObject.
type GreenType string

const (
	IntegerType   GreenType = "int"
	FloatType     GreenType = "float"
	BooleanType   GreenType = "bool"
	StringType    GreenType = "string"
	CoroutineType GreenType = "coroutine"
	NullType      GreenType = "null"
)

// GreenObject is the interface every runtime value implements.
type GreenObject interface {
	// GetType returns the value's runtime type, used for type
	// checking and arithmetic/comparison dispatch.
	GetType() GreenType
	// ToString returns the value as Green's `print` would render it.
	ToString() string
	// ToObject returns a debug representation including the type.
	ToObject() string
}

// Integer is Green's 32-bit signed Int value.
type Integer struct {
	Value int32
}

func (i *Integer) GetType() GreenType { return IntegerType }
func (i *Integer) ToString() string   { return fmt.Sprintf("%d", i.Value) }
func (i *Integer) ToObject() string   { return fmt.Sprintf("<int(%d)>", i.Value) }

// Float is Green's 64-bit IEEE Float value.
type Float struct {
	Value float64
}

func (f *Float) GetType() GreenType { return FloatType }
func (f *Float) ToString() string   { return fmt.Sprintf("%g", f.Value) }
func (f *Float) ToObject() string   { return fmt.Sprintf("<float(%g)>", f.Value) }

// String is Green's String value.
type String struct {
	Value string
}

func (s *String) GetType() GreenType { return StringType }
func (s *String) ToString() string   { return s.Value }
func (s *String) ToObject() string   { return fmt.Sprintf("<string(%q)>", s.Value) }

// Boolean is Green's Bool value.
type Boolean struct {
	Value bool
}

func (b *Boolean) GetType() GreenType { return BooleanType }
func (b *Boolean) ToString() string   { return fmt.Sprintf("%t", b.Value) }
func (b *Boolean) ToObject() string   { return fmt.Sprintf("<bool(%t)>", b.Value) }

// Coroutine is Green's opaque task-handle value, produced by a
// CoroutineInstantiation and consumed by CoroutineResume. It carries
// only the task name the evaluator looks it up by in the TaskTable.
type Coroutine struct {
	TaskName string
}

func (c *Coroutine) GetType() GreenType { return CoroutineType }
func (c *Coroutine) ToString() string   { return fmt.Sprintf("coroutine(%s)", c.TaskName) }
func (c *Coroutine) ToObject() string   { return fmt.Sprintf("<coroutine(%s)>", c.TaskName) }

// Null represents the absence of a value: the state of a declared
// variable that has not yet been assigned an initializer, and the
// result of print or of a function that returns no value.
type Null struct{}

func (n *Null) GetType() GreenType { return NullType }
func (n *Null) ToString() string   { return "null" }
func (n *Null) ToObject() string   { return "<null>" }

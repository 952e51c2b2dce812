/*
File    : green/eval/types.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import "github.com/akashmaji946/green/parser"
import "github.com/akashmaji946/green/objects"

// greenType maps a parser.ValueType (a static type annotation) to the
// objects.GreenType it corresponds to at runtime, so an evaluated
// value's GetType() can be compared against a declared/parameter
// type.
func greenType(t parser.ValueType) objects.GreenType {
	switch t {
	case parser.IntType:
		return objects.IntegerType
	case parser.FloatType:
		return objects.FloatType
	case parser.BoolType:
		return objects.BooleanType
	case parser.StringType:
		return objects.StringType
	case parser.CoroutineType:
		return objects.CoroutineType
	}
	return objects.NullType
}

/*
File    : green/analyzer/tables.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package analyzer

import "github.com/akashmaji946/green/parser"

// FunctionInfo is a FunctionTable entry: everything the analyzer and
// evaluator need to call a function by name.
type FunctionInfo struct {
	Parameters []parser.Parameter
	ReturnType *parser.ValueType
	Body       *parser.Block
	IsVariadic bool
}

// CoroutineInfo is a CoroutineTable entry.
type CoroutineInfo struct {
	Body *parser.Block
}

// TaskStatus is the lifecycle state of a task snapshot in the
// TaskTable.
type TaskStatus string

const (
	TaskReady     TaskStatus = "Ready"
	TaskRunning   TaskStatus = "Running"
	TaskPaused    TaskStatus = "Paused"
	TaskCompleted TaskStatus = "Completed"
)

// TaskInfo is a TaskTable entry: a coroutine instantiation's
// statement snapshot plus where execution last left off.
type TaskInfo struct {
	CoroutineName   string
	Status          TaskStatus
	CurrentPosition int
	Statements      []parser.Statement
}

// printFunctionName is the one built-in pre-registered into every
// FunctionTable: variadic, no declared return type.
const printFunctionName = "print"

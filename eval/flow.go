/*
File    : green/eval/flow.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import "github.com/akashmaji946/green/objects"

// FlowKind tags how a statement's execution should affect its
// enclosing block: keep going, unwind to the nearest loop, or unwind
// to the nearest function/coroutine-resume boundary.
type FlowKind string

const (
	FlowNormal   FlowKind = "Normal"
	FlowBreak    FlowKind = "Break"
	FlowContinue FlowKind = "Continue"
	FlowReturn   FlowKind = "Return"
	FlowYield    FlowKind = "Yield"
)

// Flow is the result of executing a statement or block: a tag plus,
// for FlowReturn, the value being returned.
type Flow struct {
	Kind  FlowKind
	Value objects.GreenObject
}

// normalFlow is returned by every statement that does not affect
// control flow.
var normalFlow = Flow{Kind: FlowNormal}

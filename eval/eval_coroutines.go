/*
File    : green/eval/eval_coroutines.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/green/analyzer"
	"github.com/akashmaji946/green/errctx"
)

// resume locates taskName in the shared task table and steps its
// snapshot statements forward from current_position, executing each
// one against the evaluator's currently active scope (coroutines
// share their resumer's variable environment — no per-task scope is
// pushed, per §9). Execution stops and the task is marked Paused the
// moment a Yield flow bubbles up from the statement just executed;
// running off the end of the snapshot marks the task Completed.
//
// Because current_position only ever advances past a *top-level*
// snapshot statement, a Yield nested inside an if/while body resumes
// by re-entering at the next top-level statement rather than mid-
// block — a direct consequence of the single flat index the task
// table records (§3's TaskTable shape), not a gap in this resume
// loop.
func (ev *Evaluator) resume(taskName string, row, col int) error {
	task, ok := ev.Semantic.Tasks[taskName]
	if !ok {
		return errctx.NewAt(errctx.Runtime019, row, col, errctx.P("name", taskName))
	}

	switch task.Status {
	case analyzer.TaskCompleted:
		return errctx.NewAt(errctx.Runtime020, row, col, errctx.P("task", taskName))
	case analyzer.TaskRunning:
		return errctx.NewAt(errctx.Runtime001, row, col, errctx.P("reason", "task already running"))
	}
	task.Status = analyzer.TaskRunning

	for task.CurrentPosition < len(task.Statements) {
		stmt := task.Statements[task.CurrentPosition]
		flow, err := ev.execStatement(stmt)
		if err != nil {
			return err
		}
		task.CurrentPosition++
		if flow.Kind == FlowYield {
			task.Status = analyzer.TaskPaused
			return nil
		}
	}

	task.Status = analyzer.TaskCompleted
	return nil
}

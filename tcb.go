package rtkernel

import "github.com/sudar/RTuinOS/internal/tasklist"

// TaskID identifies a configured task (or the implicit idle task, whose ID
// is always Kernel.NumTasks). IDs are assigned densely, in InitTask call
// order, starting at 0.
type TaskID = tasklist.TaskID

// tcb ("task control block") is the kernel's per-task bookkeeping: the
// static configuration plus everything that changes across the task's
// lifetime. Every tcb is allocated once, at NewKernel time, and never
// again (spec's no-dynamic-allocation non-goal, carried through).
type tcb struct {
	id       TaskID
	priority int
	entry    TaskFunc
	stack    []byte

	timeSlice   uint8
	sliceLeft   uint8

	// resumeCh is the token the scheduler hands this task's goroutine to
	// run; the task goroutine blocks receiving from it whenever it is not
	// the active task.
	resumeCh chan EventMask

	// posted is the set of event bits currently pending delivery to this
	// task (spec's "sticky until consumed" semantics): bits accumulate
	// here via Post/tick-service timer firing, and are cleared only of
	// the specific bits that satisfy a Wait, at the moment of release.
	posted EventMask

	// waiting is true while this task is suspended in Wait.
	waiting bool
	// waitMask/waitAll describe the task's current resume condition.
	waitMask EventMask
	waitAll  bool
	// timeoutAt/hasTimeout describe the task's delay/absolute-timer
	// re-arm, if any (spec §4.1, §4.6).
	hasTimeout bool
	timeoutAt  Tick

	// overrunCount saturates rather than wraps (spec §4.9, §9).
	overrunCount uint32

	// wakeResult is the event mask to deliver the next time this task is
	// dispatched: either the bits that satisfied its last Wait, or zero
	// for a task merely resuming after being preempted.
	wakeResult EventMask

	// suspendSeq breaks priority ties among suspended waiters FIFO, since
	// the suspended set itself does not preserve insertion order.
	suspendSeq uint32

	// ownedMutexes records which configured mutex bits this task
	// currently holds, for diagnostics and for the ErrMutexNotOwned
	// check on release.
	ownedMutexes EventMask
}

func (t *tcb) String() string { return t.id.String() }

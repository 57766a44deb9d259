// Package rtkernel implements the scheduler and event/timer/synchronization
// core of a small priority-based, optionally round-robin, cooperative real
// time kernel, in the lineage of RTuinOS: a fixed, statically-configured set
// of tasks multiplexed onto a single core via 16-bit event vectors that
// double as broadcast signals, mutexes, semaphores and timers.
//
// The hard core is the scheduler and the event state machine: which tasks
// are ready, suspended or active; the tick-driven inspection of suspended
// tasks; atomic event posting that can preempt the poster; resume
// conditions; and the data structures backing all of it, sized once at
// construction and never grown.
//
// The kernel has no notion of a CPU register file or a hand-seeded call
// stack — those are artifacts of the 8-bit target this design originates
// from. In this module the context-switch contract (see ContextSwitcher) is
// instead realized with goroutines and channels: each configured task runs
// in its own goroutine, and at most one is ever runnable at a time, the
// rest parked on a channel receive. A task yields the run token by calling
// Wait or Post, exactly as spec'd; nothing else can force a running task's
// goroutine to stop mid-flight, since Go provides no mechanism to suspend
// an arbitrary running goroutine from the outside. Tick, correspondingly,
// only ever forces a switch away from a task that is already parked
// awaiting its next release (which is the overwhelming majority of a
// cooperative RTOS task's lifetime) — see the package-level doc comment on
// ContextSwitcher for the full discussion of this boundary.
package rtkernel

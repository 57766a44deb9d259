package rtkernel

import (
	"runtime"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"

	"github.com/sudar/RTuinOS/internal/tasklist"
)

// noOwner marks a configured mutex as currently unheld.
const noOwner TaskID = ^TaskID(0)

// Kernel is a fully configured, runnable instance of the scheduler: a
// fixed set of tasks, priority classes, mutex/semaphore event bits, and
// the tick clock that drives timer wakeups (spec §1-§4).
//
// All exported methods are safe to call concurrently; internally they
// serialize through the configured CriticalSection, exactly as a single
// microcontroller core serializes task code against its interrupt
// handlers.
type Kernel struct {
	cfg Config

	width       int
	numMutex    int
	numSem      int
	idleID      TaskID
	suspendSeq  uint32

	tasks     []*tcb
	ready     *tasklist.ReadyClasses
	suspended *tasklist.Suspended

	mutexOwner  []TaskID
	semCounters []int32

	activeID TaskID
	clock    Tick

	cs  CriticalSection
	sw  ContextSwitcher
	log *logiface.Logger[*stumpy.Event]

	started  bool
	nextTask int
}

// NewKernel validates cfg and allocates a Kernel with all scheduler
// storage pre-sized; no further allocation occurs once InitTask has been
// called for every task (spec's no-dynamic-allocation non-goal).
func NewKernel(cfg Config, opts ...Option) (*Kernel, error) {
	if err := cfg.validate(); err != nil {
		if cfg.Debug {
			panic(err)
		}
		return nil, err
	}
	o := resolveOptions(opts)

	k := &Kernel{
		cfg:         cfg,
		width:       cfg.TickWidth,
		numMutex:    cfg.NumMutexEvents,
		numSem:      cfg.NumSemaphoreEvents,
		idleID:      TaskID(cfg.NumTasks),
		tasks:       make([]*tcb, cfg.NumTasks+1),
		ready:       tasklist.NewReadyClasses(cfg.NumPriorityClasses, cfg.MaxTasksPerClass),
		suspended:   tasklist.NewSuspended(cfg.NumTasks),
		mutexOwner:  make([]TaskID, cfg.NumMutexEvents),
		semCounters: make([]int32, cfg.NumSemaphoreEvents),
		activeID:    TaskID(cfg.NumTasks),
		cs:          o.cs,
		sw:          o.sw,
		log:         o.logger,
	}
	for i := range k.mutexOwner {
		k.mutexOwner[i] = noOwner
	}
	for i, cap := range cfg.SemaphoreCapacity {
		if i >= len(k.semCounters) {
			break
		}
		k.semCounters[i] = int32(cap)
	}

	idle := &tcb{
		id:       k.idleID,
		priority: -1,
		resumeCh: make(chan EventMask, 1),
	}
	idle.entry = k.idleEntry
	k.tasks[k.idleID] = idle

	return k, nil
}

// InitTask configures the next unconfigured task slot, in call order; the
// first call configures task 0, the second task 1, and so on (spec §6).
// It returns the assigned TaskID.
func (k *Kernel) InitTask(tc TaskConfig) (TaskID, error) {
	if k.started {
		return 0, k.fail(ErrAlreadyStarted)
	}
	if k.nextTask >= int(k.idleID) {
		return 0, k.fail(ErrTaskIndexOutOfRange)
	}
	if tc.Priority < 0 || tc.Priority >= k.cfg.NumPriorityClasses {
		return 0, k.fail(ErrPriorityClassOutOfRange)
	}
	if tc.Entry == nil {
		return 0, k.fail(ErrNilEntry)
	}
	if len(tc.Stack) == 0 {
		return 0, k.fail(ErrNilStack)
	}

	id := TaskID(k.nextTask)
	k.nextTask++

	timeSlice := tc.TimeSlice
	if timeSlice == 0 {
		timeSlice = 1
	}

	t := &tcb{
		id:        id,
		priority:  tc.Priority,
		entry:     tc.Entry,
		stack:     tc.Stack,
		timeSlice: timeSlice,
		resumeCh:  make(chan EventMask, 1),
	}
	k.tasks[id] = t

	if tc.InitialEventMask == 0 {
		if !k.ready.Push(tc.Priority, id) {
			return 0, k.fail(ErrReadyListFull)
		}
	} else {
		t.waiting = true
		t.waitMask = tc.InitialEventMask
		t.waitAll = tc.InitialWaitAll
		if tc.InitialTimeout != 0 || t.waitMask.Any(timerEventMask) {
			t.hasTimeout = true
			t.timeoutAt = k.clock.add(uint32(tc.InitialTimeout), k.width)
		}
		t.suspendSeq = k.nextSuspendSeq()
		k.suspended.Add(id)
	}

	return id, nil
}

// Start runs Config.Setup, spawns every configured task's goroutine, and
// dispatches the first one (the highest-priority immediately-ready task,
// or idle if none is ready). It returns once the initial task has been
// handed the CPU; it does not block waiting for the kernel to finish,
// since a correctly configured kernel never does.
func (k *Kernel) Start() error {
	if k.started {
		return k.fail(ErrAlreadyStarted)
	}
	if k.nextTask != int(k.idleID) {
		return k.fail(ErrTaskIndexOutOfRange)
	}
	if k.cfg.Setup != nil {
		k.cfg.Setup(k)
	}

	token := k.cs.Enter()
	k.started = true
	prev := k.activeID
	next := k.pickNext()
	k.activeID = next
	k.cs.Leave(token)

	for _, t := range k.tasks {
		go k.runTCB(t)
	}
	k.dispatch(prev, next)
	return nil
}

// ActiveTaskID returns the TaskID currently holding the CPU.
func (k *Kernel) ActiveTaskID() TaskID {
	token := k.cs.Enter()
	defer k.cs.Leave(token)
	return k.activeID
}

// IdleTaskID returns the sentinel TaskID of the implicit idle task.
func (k *Kernel) IdleTaskID() TaskID { return k.idleID }

// MutexBit returns the event bit for configured mutex index idx. idx must be
// in [0,Config.NumMutexEvents); an out-of-range idx is exactly the "posted
// mask referencing unconfigured mutex" condition spec.md § 7 names, and is
// reported via ErrUnconfiguredMutex rather than by silently returning a bit
// that belongs to the semaphore or broadcast range.
func (k *Kernel) MutexBit(idx int) (EventMask, error) {
	if idx < 0 || idx >= k.numMutex {
		return 0, k.fail(ErrUnconfiguredMutex)
	}
	return mutexBit(idx), nil
}

// SemaphoreBit returns the event bit for configured semaphore index idx. idx
// must be in [0,Config.NumSemaphoreEvents); an out-of-range idx is reported
// via ErrUnconfiguredSemaphore.
func (k *Kernel) SemaphoreBit(idx int) (EventMask, error) {
	if idx < 0 || idx >= k.numSem {
		return 0, k.fail(ErrUnconfiguredSemaphore)
	}
	return semaphoreBit(k.numMutex, idx), nil
}

func (k *Kernel) task(id TaskID) *tcb { return k.tasks[id] }

func (k *Kernel) nextSuspendSeq() uint32 {
	k.suspendSeq++
	return k.suspendSeq
}

func (k *Kernel) fail(err error) error {
	if k.cfg.Debug {
		panic(err)
	}
	return err
}

// pickNext selects the next task to run when there is no active incumbent
// contesting the CPU: the head of the highest non-empty ready class, or
// idle if every class is empty.
func (k *Kernel) pickNext() TaskID {
	p := k.ready.HighestNonEmpty()
	if p < 0 {
		return k.idleID
	}
	id, _ := k.ready.PopHead(p)
	return id
}

// reschedule re-evaluates the scheduling decision while active still holds
// the CPU: it switches if a strictly higher-priority class has become
// non-empty, demoting active to the tail of its own class first. Idle's
// priority (-1) makes any non-empty class win unconditionally.
//
// It also switches at equal priority when Config.RoundRobin is set and
// active's time slice has run out (spec.md § 4.6 step 4, § 4.7): active is
// rotated behind its own class's waiting peers and the next one in line
// becomes active, exactly the round-robin rotation Config.TimeSlice
// configures. This is the cooperative checkpoint where that rotation
// actually happens — see the package doc and Kernel.Tick for why nothing
// can force it earlier, mid-execution.
func (k *Kernel) reschedule(active *tcb) bool {
	p := k.ready.HighestNonEmpty()
	if p < 0 || p < active.priority {
		return false
	}
	if p == active.priority && !(k.cfg.RoundRobin && active.sliceLeft == 0) {
		return false
	}
	next, _ := k.ready.PopHead(p)
	if active.id != k.idleID {
		k.ready.Push(active.priority, active.id)
	}
	k.activeID = next
	return true
}

// dispatch hands the CPU from whichever task previously held it to to,
// delivering whatever wake-up event mask to was most recently released
// with (zero for a task that is merely resuming after being preempted, or
// for one whose initial wait condition was trivially satisfied). from and
// to are always distinct tasks (spec.md § 9's context-switch contract of a
// source and a destination TCB), never the same one reported twice.
func (k *Kernel) dispatch(from, to TaskID) {
	t := k.task(to)
	result := t.wakeResult
	t.wakeResult = 0
	if k.cfg.RoundRobin {
		t.sliceLeft = t.timeSlice
	}
	k.logTaskSwitch(from, to)
	k.sw.Switch(from, to)
	t.resumeCh <- result
}

// runTCB is the goroutine body shared by every task, including idle: park
// until first dispatched, then run the entry function, which must never
// return.
func (k *Kernel) runTCB(t *tcb) {
	defer func() {
		if r := recover(); r != nil {
			if k.cfg.Debug {
				panic(r)
			}
			k.log.Err().Field(`task`, t.id).Field(`panic`, r).Log(`task entry panicked`)
		}
	}()
	first := <-t.resumeCh
	t.entry(first)
	k.log.Emerg().Field(`task`, t.id).Log(`task entry function returned; this is a contract violation`)
	if k.cfg.Debug {
		panic(ErrNotStarted)
	}
}

// idleEntry is the implicit idle task's body: run the configured idle
// hook (or cooperatively spin) for as long as idle remains the active
// task, yielding back to the scheduler the moment Post or Tick has
// switched the CPU away.
func (k *Kernel) idleEntry(EventMask) {
	for {
		if k.cfg.IdleHook != nil {
			k.cfg.IdleHook(k)
		} else {
			runtime.Gosched()
		}
		k.yieldIfPreempted()
	}
}

func (k *Kernel) yieldIfPreempted() {
	token := k.cs.Enter()
	stillActive := k.activeID == k.idleID
	k.cs.Leave(token)
	if !stillActive {
		<-k.tasks[k.idleID].resumeCh
	}
}

// evaluateWait reports whether posted satisfies waitMask, and if so, which
// bits of posted are the ones that did it.
//
// The two reserved timer bits (AbsTimerEvent, DelayEvent) are always an
// escape hatch, regardless of waitAll: a timeout must be able to release
// a WaitAll=true task even though not every requested bit arrived, since
// otherwise a single missing event could block a task forever (spec §9
// Open Question: "Wait-all with timeout"). When a timer bit is what
// releases the task, the returned mask is exactly that timer bit, never
// entangled with whatever non-timer bits happen to also be pending.
func evaluateWait(posted, waitMask EventMask, waitAll bool) (satisfied bool, result EventMask) {
	if fired := posted & waitMask & timerEventMask; fired != 0 {
		return true, fired
	}
	nonTimerMask := waitMask &^ timerEventMask
	relevant := posted & nonTimerMask
	if nonTimerMask == 0 {
		return true, relevant
	}
	if waitAll {
		if relevant == nonTimerMask {
			return true, relevant
		}
		return false, 0
	}
	if relevant != 0 {
		return true, relevant
	}
	return false, 0
}

// checkSatisfied reports whether posted bits satisfy a wait condition,
// without reporting which bits did it; used where only the boolean is
// needed (e.g. deciding whether a task is still a release candidate).
func checkSatisfied(posted, waitMask EventMask, waitAll bool) bool {
	satisfied, _ := evaluateWait(posted, waitMask, waitAll)
	return satisfied
}

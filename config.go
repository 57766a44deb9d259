package rtkernel

import (
	"fmt"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// TaskFunc is the signature every configured task's entry point must have.
// It is called exactly once per task, on first dispatch, with the event
// mask that satisfied the task's configured initial wait condition (spec
// §4.2's "start event"); it must never return (a return is treated as
// fatal, see Kernel.run).
type TaskFunc func(firstEvents EventMask)

// Config is the compile-time shape of a Kernel: task/priority-class counts
// and capacities, the tick width, and the mutex/semaphore/external-ISR
// event partitioning. It is validated once, by NewKernel.
type Config struct {
	// NumTasks is the number of application tasks, excluding the implicit
	// idle task. Range [1,255].
	NumTasks int

	// NumPriorityClasses is the number of distinct priority levels.
	// Range [1,NumTasks].
	NumPriorityClasses int

	// MaxTasksPerClass bounds the ready-list capacity of every priority
	// class. Range [1,255].
	MaxTasksPerClass int

	// RoundRobin enables time-slice rotation within a priority class.
	RoundRobin bool

	// TickWidth is the bit width of the cyclic system tick: 8, 16 or 32.
	TickWidth int

	// NumMutexEvents and NumSemaphoreEvents carve a contiguous prefix of
	// the low 12 broadcast-capable event bits into mutex, then semaphore,
	// bits. Each is in [0,8]; their sum must not exceed 12.
	NumMutexEvents      int
	NumSemaphoreEvents  int

	// SemaphoreCapacity gives the initial counter balance for each
	// configured semaphore bit (application-owned, spec §3). A nil or
	// short slice defaults missing entries to zero.
	SemaphoreCapacity []int

	// ExternalISREnable and ExternalISRNames describe the two optional
	// external-ISR hooks bound to ExternalISR0Event/ExternalISR1Event.
	// Names are used only for diagnostics/logging.
	ExternalISREnable [2]bool
	ExternalISRNames  [2]string
	ExternalISR       [2]func(enable bool)

	// IdleHook runs, in a loop, as the body of the implicit idle task. A
	// nil hook idles with an empty select{} spin; most non-trivial
	// programs will drive Kernel.Tick from here or from a dedicated timer
	// goroutine.
	IdleHook func(k *Kernel)

	// Setup runs once, before the scheduler starts dispatching any task.
	Setup func(k *Kernel)

	// Debug selects the kernel's error-handling policy: true makes every
	// configuration-contract and runtime-invariant violation a fatal
	// panic; false tolerates them silently (spec §7).
	Debug bool
}

func (c Config) validate() error {
	if c.NumTasks < 1 || c.NumTasks > 255 {
		return fmt.Errorf("%w: got %d", ErrTaskCountOutOfRange, c.NumTasks)
	}
	if c.NumPriorityClasses < 1 || c.NumPriorityClasses > c.NumTasks {
		return fmt.Errorf("%w: got %d", ErrPriorityClassOutOfRange, c.NumPriorityClasses)
	}
	if c.MaxTasksPerClass < 1 || c.MaxTasksPerClass > 255 {
		return fmt.Errorf("%w: got %d", ErrMaxPerClassOutOfRange, c.MaxTasksPerClass)
	}
	switch c.TickWidth {
	case 8, 16, 32:
	default:
		return fmt.Errorf("%w: got %d", ErrTickWidthInvalid, c.TickWidth)
	}
	if c.NumMutexEvents < 0 || c.NumMutexEvents > 8 {
		return fmt.Errorf("%w: got %d", ErrMutexEventCountOutOfRange, c.NumMutexEvents)
	}
	if c.NumSemaphoreEvents < 0 || c.NumSemaphoreEvents > 8 {
		return fmt.Errorf("%w: got %d", ErrSemaphoreEventCountOutOfRange, c.NumSemaphoreEvents)
	}
	if c.NumMutexEvents+c.NumSemaphoreEvents > maxBroadcastBit {
		return fmt.Errorf("%w: mutex=%d semaphore=%d", ErrEventBitsExhausted, c.NumMutexEvents, c.NumSemaphoreEvents)
	}
	return nil
}

// TaskConfig describes one task's static configuration and initial resume
// condition, as passed to Kernel.InitTask (spec §6: "initialize a single
// task").
type TaskConfig struct {
	// Priority is the task's priority class index, in [0,NumPriorityClasses).
	Priority int

	// Entry is the task's never-returning body.
	Entry TaskFunc

	// Stack is a caller-owned scratch buffer, prefilled with a recognizable
	// pattern at InitTask time so Kernel.StackReserve can report
	// approximate headroom (spec §4.2, §4.9). It is not the task
	// goroutine's real call stack, which Go manages itself; it exists to
	// preserve the diagnostic's observable contract across the
	// translation from hand-seeded assembly stacks to goroutines.
	Stack []byte

	// InitialEventMask, InitialWaitAll and InitialTimeout describe the
	// task's resume condition as of its very first dispatch, exactly as
	// if the task itself had already called Wait before its first
	// instruction (spec §4.2, §6). A zero InitialEventMask with zero
	// InitialTimeout means the task is immediately ready to run.
	InitialEventMask EventMask
	InitialWaitAll   bool
	InitialTimeout   Tick

	// TimeSlice is the number of ticks this task may run before being
	// rotated to the tail of its priority class, when Config.RoundRobin
	// is enabled. Zero means "use a time slice of 1".
	TimeSlice uint8
}

// Option configures optional, non-structural Kernel behavior (logging, the
// critical-section and context-switch collaborators).
type Option func(*kernelOptions)

type kernelOptions struct {
	logger *logiface.Logger[*stumpy.Event]
	cs     CriticalSection
	sw     ContextSwitcher
}

func resolveOptions(opts []Option) *kernelOptions {
	o := &kernelOptions{
		cs: newMutexCriticalSection(),
		sw: goroutineSwitcher{},
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(o)
	}
	if o.logger == nil {
		o.logger = stumpy.L.New(stumpy.L.WithStumpy())
	}
	return o
}

// WithLogger attaches a structured logiface logger, backed by stumpy, to
// the kernel. Without this option the kernel logs to a stumpy logger
// writing to os.Stderr at the package default level.
func WithLogger(l *logiface.Logger[*stumpy.Event]) Option {
	return func(o *kernelOptions) { o.logger = l }
}

// WithCriticalSection overrides the default sync.Mutex-backed
// CriticalSection collaborator, e.g. with a target-specific
// interrupt-masking implementation.
func WithCriticalSection(cs CriticalSection) Option {
	return func(o *kernelOptions) { o.cs = cs }
}

// WithContextSwitcher installs a ContextSwitcher observer, called on every
// task handoff.
func WithContextSwitcher(sw ContextSwitcher) Option {
	return func(o *kernelOptions) { o.sw = sw }
}

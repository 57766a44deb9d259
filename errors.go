package rtkernel

import "errors"

// Configuration-contract errors. In debug builds (Config.Debug true) these
// are raised as panics (the "fatal assertion" of a hard real-time kernel);
// in production builds the condition they name is documented as undefined
// behavior rather than checked.
var (
	ErrTaskCountOutOfRange      = errors.New("rtkernel: task count out of range [1,255]")
	ErrPriorityClassOutOfRange  = errors.New("rtkernel: priority class count out of range [1,numTasks]")
	ErrMaxPerClassOutOfRange    = errors.New("rtkernel: max tasks per class out of range [1,255]")
	ErrTickWidthInvalid         = errors.New("rtkernel: tick width must be 8, 16, or 32")
	ErrMutexEventCountOutOfRange = errors.New("rtkernel: mutex event count out of range [0,8]")
	ErrSemaphoreEventCountOutOfRange = errors.New("rtkernel: semaphore event count out of range [0,8]")
	ErrEventBitsExhausted       = errors.New("rtkernel: mutex + semaphore event counts exceed available broadcast bits")
	ErrTaskIndexOutOfRange      = errors.New("rtkernel: task index out of range")
	ErrNilEntry                 = errors.New("rtkernel: task entry function must not be nil")
	ErrNilStack                 = errors.New("rtkernel: task stack buffer must not be nil or empty")
	ErrAlreadyStarted           = errors.New("rtkernel: kernel already started")
	ErrNotStarted               = errors.New("rtkernel: kernel not started")
)

// Runtime-invariant errors. Same debug/production policy as above.
var (
	ErrIdleMustNotWait     = errors.New("rtkernel: the idle task must not call Wait")
	ErrMutexNotOwned       = errors.New("rtkernel: mutex released by a task that does not own it")
	ErrUnconfiguredMutex   = errors.New("rtkernel: event bit is not a configured mutex bit")
	ErrUnconfiguredSemaphore = errors.New("rtkernel: event bit is not a configured semaphore bit")
	ErrReadyListFull       = errors.New("rtkernel: ready list for priority class is at capacity")
)

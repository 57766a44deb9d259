package rtkernel

import "sync"

// CriticalSection is the kernel's abstraction of "disable/restore
// interrupts": the mechanism that makes a short span of scheduler-internal
// bookkeeping atomic with respect to whatever else might otherwise touch
// it concurrently (spec §4.8). Enter returns an opaque token that must be
// passed back to the matching Leave; implementations that nest (this one
// does not need to) can use it to detect the outermost Enter.
type CriticalSection interface {
	Enter() (token uint32)
	Leave(token uint32)
}

// mutexCriticalSection is the default CriticalSection, appropriate for a
// kernel whose tasks are goroutines rather than interrupt handlers: a
// single sync.Mutex serializes every scheduler entry point exactly as a
// microcontroller's global interrupt disable would serialize ISRs against
// the foreground task.
type mutexCriticalSection struct {
	mu    sync.Mutex
	epoch uint32
}

func newMutexCriticalSection() *mutexCriticalSection {
	return &mutexCriticalSection{}
}

func (c *mutexCriticalSection) Enter() uint32 {
	c.mu.Lock()
	c.epoch++
	return c.epoch
}

func (c *mutexCriticalSection) Leave(uint32) {
	c.mu.Unlock()
}

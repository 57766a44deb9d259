package rtkernel

import "fmt"

// EventMask is the kernel's 16-bit event vector. It is a stable ABI between
// application and kernel: bit 14 and bit 15 are permanently reserved for
// the two timer events; reassigning them is a breaking change.
type EventMask uint16

const (
	// AbsTimerEvent is set by the tick service when a task's absolute-due
	// tick has arrived. It is per-task and is never broadcast by Post.
	AbsTimerEvent EventMask = 1 << 14

	// DelayEvent is set by the tick service when a task's delay counter
	// reaches zero. It is per-task and is never broadcast by Post.
	DelayEvent EventMask = 1 << 15

	// ExternalISR0Event and ExternalISR1Event are the two broadcast-style
	// bits reserved for the optional external-ISR hooks (Config.ExternalISR).
	// Whether they are actually wired to a hardware source is a
	// configuration matter (Config.ExternalISREnable); the bit positions
	// themselves are always reserved, never reassigned to mutex/semaphore
	// use.
	ExternalISR0Event EventMask = 1 << 13
	ExternalISR1Event EventMask = 1 << 12

	// timerEventMask is the set of bits that are never broadcast by Post;
	// they are exclusively owned by the tick service.
	timerEventMask = AbsTimerEvent | DelayEvent

	// maxBroadcastBit is one past the highest bit index available for
	// broadcast/mutex/semaphore partitioning (bits 12 and 13 are reserved
	// for the external-ISR hooks).
	maxBroadcastBit = 12
)

// mutexBit returns the event bit for configured mutex index i.
func mutexBit(i int) EventMask { return 1 << uint(i) }

// semaphoreBit returns the event bit for configured semaphore index i,
// given the number of mutex bits the configuration carves out first.
func semaphoreBit(numMutex, i int) EventMask { return 1 << uint(numMutex+i) }

// mutexSemMask returns the set of all bits reserved for mutex and
// semaphore use under the given configuration.
func mutexSemMask(numMutex, numSemaphore int) EventMask {
	var m EventMask
	for i := 0; i < numMutex+numSemaphore; i++ {
		m |= 1 << uint(i)
	}
	return m
}

// String renders the set bits of an EventMask for logging/diagnostics.
func (e EventMask) String() string {
	return fmt.Sprintf("0x%04x", uint16(e))
}

// Has reports whether all bits in want are set in e.
func (e EventMask) Has(want EventMask) bool { return e&want == want }

// Any reports whether any bit in want is set in e.
func (e EventMask) Any(want EventMask) bool { return e&want != 0 }

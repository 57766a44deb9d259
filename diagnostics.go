package rtkernel

// stackFillByte is the pattern TaskConfig.Stack buffers should be
// pre-filled with (see NewStack) for StackReserve's scan to be meaningful.
const stackFillByte = 0xa5

// NewStack allocates a size-byte scratch buffer pre-filled with the
// stack-painting pattern StackReserve scans for.
func NewStack(size int) []byte {
	s := make([]byte, size)
	for i := range s {
		s[i] = stackFillByte
	}
	return s
}

// StackReserve reports the number of leading bytes of id's configured
// stack buffer that are still untouched by its configured fill pattern
// (0xa5, matching original_source's stack-painting convention), scanning
// from the end of the buffer. It approximates headroom in the absence of
// a real hand-seeded call stack (spec §4.9; see TaskConfig.Stack).
func (k *Kernel) StackReserve(id TaskID) int {
	token := k.cs.Enter()
	t := k.task(id)
	k.cs.Leave(token)

	n := 0
	for i := len(t.stack) - 1; i >= 0; i-- {
		if t.stack[i] != stackFillByte {
			break
		}
		n++
	}
	return n
}

// OverrunCount reports the number of times id's absolute-timer re-arm
// found its new due tick already passed (spec §4.1, §4.9, §9).
func (k *Kernel) OverrunCount(id TaskID) uint32 {
	token := k.cs.Enter()
	defer k.cs.Leave(token)
	return k.task(id).overrunCount
}

// ResetOverrunCount zeroes id's overrun counter.
func (k *Kernel) ResetOverrunCount(id TaskID) {
	token := k.cs.Enter()
	defer k.cs.Leave(token)
	k.task(id).overrunCount = 0
}

// TimeSliceExpired reports whether id's round-robin time slice has run
// out since it was last dispatched. It is meaningful only when
// Config.RoundRobin is set, and exists because nothing in this
// implementation can forcibly preempt a task goroutine that never calls
// Wait or Post (see package doc): a long-running task configured with a
// TimeSlice is expected to poll this periodically and cooperatively yield
// (e.g. via Wait or Post) once it reports true, rather than running
// forever on the strength of a single dispatch.
func (k *Kernel) TimeSliceExpired(id TaskID) bool {
	token := k.cs.Enter()
	defer k.cs.Leave(token)
	return k.task(id).sliceLeft == 0
}

// Clock returns the current value of the cyclic system tick.
func (k *Kernel) Clock() Tick {
	token := k.cs.Enter()
	defer k.cs.Leave(token)
	return k.clock
}

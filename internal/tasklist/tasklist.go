// Package tasklist implements the scheduler's ready and suspended indexes
// (spec: per-priority-class ready lists, ordered insertion, oldest first
// within a class; a flat suspended list, order irrelevant).
package tasklist

import (
	"strconv"

	"github.com/sudar/RTuinOS/internal/ring"
)

// TaskID identifies a configured task. The idle task's ID is conventionally
// one past the highest configured task index.
type TaskID uint16

func (id TaskID) String() string { return strconv.FormatUint(uint64(id), 10) }

// ReadyClasses holds one FIFO ready list per priority class, each bounded to
// a fixed maximum occupancy.
type ReadyClasses struct {
	classes []*ring.Buffer[TaskID]
}

// NewReadyClasses allocates numClasses ready lists, each with capacity
// maxPerClass.
func NewReadyClasses(numClasses, maxPerClass int) *ReadyClasses {
	rc := &ReadyClasses{classes: make([]*ring.Buffer[TaskID], numClasses)}
	for i := range rc.classes {
		rc.classes[i] = ring.NewBuffer[TaskID](maxPerClass)
	}
	return rc
}

// NumClasses returns the configured number of priority classes.
func (rc *ReadyClasses) NumClasses() int { return len(rc.classes) }

// Len returns the number of ready tasks in priority class p.
func (rc *ReadyClasses) Len(p int) int { return rc.classes[p].Len() }

// Full reports whether priority class p's ready list is at capacity.
func (rc *ReadyClasses) Full(p int) bool { return rc.classes[p].Full() }

// Push appends id to the tail of priority class p's ready list. Reports
// false if the class is already at its configured capacity.
func (rc *ReadyClasses) Push(p int, id TaskID) bool {
	return rc.classes[p].PushBack(id)
}

// Head returns the task at the front of priority class p's ready list,
// without removing it.
func (rc *ReadyClasses) Head(p int) (TaskID, bool) {
	c := rc.classes[p]
	if c.Len() == 0 {
		var zero TaskID
		return zero, false
	}
	return c.At(0), true
}

// PopHead removes and returns the task at the front of priority class p's
// ready list.
func (rc *ReadyClasses) PopHead(p int) (TaskID, bool) {
	return rc.classes[p].PopFront()
}

// HighestNonEmpty scans priority classes from highest index to lowest and
// returns the index of the first non-empty one. Returns -1 if every class
// is empty.
func (rc *ReadyClasses) HighestNonEmpty() int {
	for p := len(rc.classes) - 1; p >= 0; p-- {
		if rc.classes[p].Len() > 0 {
			return p
		}
	}
	return -1
}

// Suspended holds the flat, order-irrelevant set of suspended task IDs.
type Suspended struct {
	buf *ring.Buffer[TaskID]
}

// NewSuspended allocates a suspended set with the given fixed capacity
// (normally the configured task count).
func NewSuspended(capacity int) *Suspended {
	return &Suspended{buf: ring.NewBuffer[TaskID](capacity)}
}

// Len returns the number of currently suspended tasks.
func (s *Suspended) Len() int { return s.buf.Len() }

// At returns the ID at index i; iteration order is unspecified and may
// change across mutations.
func (s *Suspended) At(i int) TaskID { return s.buf.At(i) }

// Add places id into the suspended set.
func (s *Suspended) Add(id TaskID) bool { return s.buf.PushBack(id) }

// RemoveAt removes and returns the suspended task at index i, compacting the
// set (order is not preserved, per spec: "Order irrelevant for
// correctness; compacted on removal").
func (s *Suspended) RemoveAt(i int) TaskID { return s.buf.RemoveAtUnordered(i) }

// IndexOf returns the index of id within the suspended set, or -1.
func (s *Suspended) IndexOf(id TaskID) int { return s.buf.IndexOf(id) }

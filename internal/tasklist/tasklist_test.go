package tasklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadyClasses_FIFOWithinClass(t *testing.T) {
	rc := NewReadyClasses(2, 4)
	assert.True(t, rc.Push(0, 1))
	assert.True(t, rc.Push(0, 2))
	assert.True(t, rc.Push(1, 3))

	assert.Equal(t, 1, rc.HighestNonEmpty())

	id, ok := rc.Head(0)
	assert.True(t, ok)
	assert.Equal(t, TaskID(1), id)

	id, ok = rc.PopHead(0)
	assert.True(t, ok)
	assert.Equal(t, TaskID(1), id)
	id, ok = rc.PopHead(0)
	assert.True(t, ok)
	assert.Equal(t, TaskID(2), id)
	_, ok = rc.PopHead(0)
	assert.False(t, ok)
}

func TestReadyClasses_HighestNonEmpty_AllEmpty(t *testing.T) {
	rc := NewReadyClasses(3, 4)
	assert.Equal(t, -1, rc.HighestNonEmpty())
}

func TestReadyClasses_Full(t *testing.T) {
	rc := NewReadyClasses(1, 2)
	assert.True(t, rc.Push(0, 1))
	assert.True(t, rc.Push(0, 2))
	assert.True(t, rc.Full(0))
	assert.False(t, rc.Push(0, 3))
}

func TestSuspended_AddRemoveIndexOf(t *testing.T) {
	s := NewSuspended(4)
	s.Add(1)
	s.Add(2)
	s.Add(3)

	assert.Equal(t, 1, s.IndexOf(2))
	assert.Equal(t, -1, s.IndexOf(99))

	removed := s.RemoveAt(1)
	assert.Equal(t, TaskID(2), removed)
	assert.Equal(t, 2, s.Len())
	// order-irrelevant: last element swapped into the removed slot
	assert.Equal(t, TaskID(3), s.At(1))
}

func TestTaskID_String(t *testing.T) {
	assert.Equal(t, "42", TaskID(42).String())
}

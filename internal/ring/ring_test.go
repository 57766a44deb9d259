package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuffer_PanicsOnNonPositiveCapacity(t *testing.T) {
	assert.Panics(t, func() { NewBuffer[int](0) })
	assert.Panics(t, func() { NewBuffer[int](-1) })
}

func TestBuffer_PushBackAndFull(t *testing.T) {
	b := NewBuffer[int](3)
	assert.False(t, b.Full())
	assert.True(t, b.PushBack(1))
	assert.True(t, b.PushBack(2))
	assert.True(t, b.PushBack(3))
	assert.True(t, b.Full())
	assert.False(t, b.PushBack(4))
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, []int{1, 2, 3}, b.Slice())
}

func TestBuffer_PopFront(t *testing.T) {
	b := NewBuffer[int](3)
	b.PushBack(10)
	b.PushBack(20)
	b.PushBack(30)

	v, ok := b.PopFront()
	assert.True(t, ok)
	assert.Equal(t, 10, v)
	assert.Equal(t, []int{20, 30}, b.Slice())

	b.PopFront()
	b.PopFront()
	_, ok = b.PopFront()
	assert.False(t, ok)
}

func TestBuffer_RemoveAt_PreservesOrder(t *testing.T) {
	b := NewBuffer[int](4)
	for _, v := range []int{1, 2, 3, 4} {
		b.PushBack(v)
	}
	removed := b.RemoveAt(1)
	assert.Equal(t, 2, removed)
	assert.Equal(t, []int{1, 3, 4}, b.Slice())
}

func TestBuffer_RemoveAtUnordered_SwapsWithLast(t *testing.T) {
	b := NewBuffer[int](4)
	for _, v := range []int{1, 2, 3, 4} {
		b.PushBack(v)
	}
	removed := b.RemoveAtUnordered(1)
	assert.Equal(t, 2, removed)
	assert.Equal(t, []int{1, 4, 3}, b.Slice())
}

func TestBuffer_IndexOf(t *testing.T) {
	b := NewBuffer[int](4)
	for _, v := range []int{5, 6, 7} {
		b.PushBack(v)
	}
	assert.Equal(t, 1, b.IndexOf(6))
	assert.Equal(t, -1, b.IndexOf(99))
}

func TestBuffer_AtPanicsOutOfRange(t *testing.T) {
	b := NewBuffer[int](2)
	b.PushBack(1)
	assert.Panics(t, func() { b.At(1) })
	assert.Panics(t, func() { b.At(-1) })
}

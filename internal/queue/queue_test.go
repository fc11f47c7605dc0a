package queue

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNewFloat(t *testing.T, capacity int) *Float {
	t.Helper()
	q, err := NewFloat(capacity)
	require.NoError(t, err)
	return q
}

func TestFloatAppendAndView(t *testing.T) {
	q := mustNewFloat(t, 4)
	require.NoError(t, q.Append([]float32{1, 2, 3}))
	require.Equal(t, 3, q.Len())
	assert.Equal(t, []float32{1, 2, 3}, q.View(0))
	assert.Equal(t, []float32{2, 3}, q.View(1))
}

func TestFloatGrowthRule(t *testing.T) {
	q := mustNewFloat(t, 2)
	require.NoError(t, q.Append([]float32{1, 2}))
	require.Equal(t, 2, q.Cap())

	// oldCap=2, appending 3 -> needed=5 > cap; newCap = 2 + 1 + 3 = 6
	require.NoError(t, q.Append([]float32{3, 4, 5}))
	assert.Equal(t, 6, q.Cap())
	assert.Equal(t, []float32{1, 2, 3, 4, 5}, q.View(0))
}

func TestFloatDropShiftsSuffix(t *testing.T) {
	q := mustNewFloat(t, 0)
	require.NoError(t, q.Append([]float32{1, 2, 3, 4, 5}))
	q.Drop(2)
	assert.Equal(t, []float32{3, 4, 5}, q.View(0))
	q.Drop(100)
	assert.Equal(t, 0, q.Len())
}

func TestFloatRead(t *testing.T) {
	q := mustNewFloat(t, 0)
	require.NoError(t, q.Append([]float32{1, 2, 3}))
	dst := make([]float32, 2)
	n := q.Read(dst)
	assert.Equal(t, 2, n)
	assert.Equal(t, []float32{1, 2}, dst)
	assert.Equal(t, []float32{3}, q.View(0))
}

func TestFloatReadMoreThanAvailable(t *testing.T) {
	q := mustNewFloat(t, 0)
	require.NoError(t, q.Append([]float32{1, 2}))
	dst := make([]float32, 5)
	n := q.Read(dst)
	assert.Equal(t, 2, n)
	assert.Equal(t, 0, q.Len())
}

func TestFloatPadZero(t *testing.T) {
	q := mustNewFloat(t, 0)
	require.NoError(t, q.Append([]float32{1, 2}))
	require.NoError(t, q.PadZero(5))
	assert.Equal(t, []float32{1, 2, 0, 0, 0}, q.View(0))

	// Padding to a smaller size is a no-op.
	require.NoError(t, q.PadZero(3))
	assert.Equal(t, 5, q.Len())
}

func TestFloatReset(t *testing.T) {
	q := mustNewFloat(t, 0)
	require.NoError(t, q.Append([]float32{1, 2, 3}))
	capBefore := q.Cap()
	q.Reset()
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, capBefore, q.Cap())
}

func TestFloatAllocatorFailureLeavesQueueUnchanged(t *testing.T) {
	calls := 0
	failOn := 2
	alloc := func(n int) ([]float32, error) {
		calls++
		if calls == failOn {
			return nil, errors.New("injected allocation failure")
		}
		return make([]float32, n), nil
	}

	q, err := NewFloatWithAllocator(1, alloc)
	require.NoError(t, err)
	require.NoError(t, q.Append([]float32{1})) // fills initial capacity, no growth

	err = q.Append([]float32{2}) // triggers grow() -> second alloc call -> fails
	require.Error(t, err)
	assert.Equal(t, []float32{1}, q.View(0))

	// The allocator recovers afterward; a later append succeeds.
	require.NoError(t, q.Append([]float32{2}))
	assert.Equal(t, []float32{1, 2}, q.View(0))
}

package vector

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGrownCapacity(t *testing.T) {
	require.Equal(t, 1, grownCapacity(0))
	require.Equal(t, 2, grownCapacity(1))
	require.Equal(t, 4, grownCapacity(2))
	require.Equal(t, 7, grownCapacity(4))
	require.Equal(t, 11, grownCapacity(7))
}

func TestPushBackSizeAndCapacityInvariant(t *testing.T) {
	v := New[int]()
	for k := 1; k <= 100; k++ {
		v.PushBack(k)
		require.Equal(t, k, v.Len())
		require.GreaterOrEqual(t, v.Cap(), v.Len())
	}
	for i := 0; i < 100; i++ {
		got, err := v.At(i)
		require.NoError(t, err)
		require.Equal(t, i+1, got)
	}
}

func TestPushBackGrowthTrace(t *testing.T) {
	v := New[int]()

	// Reallocation happens only when size has reached capacity, and each
	// step follows cap+cap/2+1: 1, 2, 4, 7, 11, 17, ...
	wantCaps := []int{1, 2, 4, 7, 11, 17, 26}

	prevCap := v.Cap()
	var steps []int
	for k := 0; k < 26; k++ {
		full := v.Len() == v.Cap()
		v.PushBack(k)
		if v.Cap() != prevCap {
			require.True(t, full, "grew while slots were still free")
			require.Greater(t, v.Cap(), prevCap)
			steps = append(steps, v.Cap())
			prevCap = v.Cap()
		}
	}
	require.Equal(t, wantCaps, steps)
}

func TestReserveGrowsExactly(t *testing.T) {
	v := Of(1, 2, 3)
	v.Reserve(20)
	require.Equal(t, 20, v.Cap())
	require.Equal(t, 3, v.Len())
	require.Equal(t, "[1, 2, 3]", v.String())
}

func TestReserveSmallerIsNoop(t *testing.T) {
	v := WithCapacity[int](10)
	v.Reserve(5)
	require.Equal(t, 10, v.Cap())
	v.Reserve(10)
	require.Equal(t, 10, v.Cap())
}

func TestShrinkToFit(t *testing.T) {
	v := WithCapacity[int](32)
	v.PushBack(1)
	v.PushBack(2)

	v.ShrinkToFit()
	require.Equal(t, 2, v.Cap())
	require.Equal(t, "[1, 2]", v.String())
}

func TestShrinkToFitEmptyReleasesBuffer(t *testing.T) {
	v := WithCapacity[int](8)
	v.ShrinkToFit()
	require.Equal(t, 0, v.Cap())
	require.Equal(t, 0, v.Len())
}

func TestPopBack(t *testing.T) {
	v := Of(1, 2, 3)
	require.NoError(t, v.PopBack())
	require.Equal(t, 2, v.Len())
	require.Equal(t, "[1, 2]", v.String())

	// Capacity is untouched; the slot is reused by the next append.
	c := v.Cap()
	v.PushBack(9)
	require.Equal(t, c, v.Cap())
	require.Equal(t, "[1, 2, 9]", v.String())
}

func TestPopBackEmpty(t *testing.T) {
	v := New[int]()
	err := v.PopBack()
	require.ErrorIs(t, err, ErrEmpty)
	require.Equal(t, 0, v.Len())
}

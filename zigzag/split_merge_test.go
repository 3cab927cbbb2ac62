package zigzag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitMidpoint(t *testing.T) {
	a := build(t, map[int]string{5: "a", 10: "b", 15: "c", 20: "d"}, "T")

	left, splitKey, right, err := a.Split()
	require.NoError(t, err)

	require.Equal(t, 15, splitKey)
	require.Equal(t, []int{5, 10}, left.Keys())
	require.Equal(t, []int{20}, right.Keys())

	// the promoted pair's value became the left half's trailing value
	v, err := left.Right(Last)
	require.NoError(t, err)
	require.Equal(t, "c", v)

	// the right half inherits the original trailing value
	v, err = right.Right(Last)
	require.NoError(t, err)
	require.Equal(t, "T", v)
}

func TestSplitSingleKey(t *testing.T) {
	a := build(t, map[int]string{10: "A"}, "T")

	left, splitKey, right, err := a.Split()
	require.NoError(t, err)
	require.Equal(t, 10, splitKey)
	require.Equal(t, 0, left.Size())
	require.Equal(t, 0, right.Size())

	v, err := left.Right(Last)
	require.NoError(t, err)
	require.Equal(t, "A", v)
	v, err = right.Right(Last)
	require.NoError(t, err)
	require.Equal(t, "T", v)
}

func TestSplitEmptyFails(t *testing.T) {
	_, _, _, err := New[int, string](0).Split()
	require.ErrorIs(t, err, ErrOutOfRange)
}

// Splitting and re-inserting the promoted pair reconstructs the original.
func TestSplitMergeReconstruction(t *testing.T) {
	a := build(t, map[int]string{2: "a", 4: "b", 6: "c", 8: "d", 10: "e"}, "T")

	left, splitKey, right, err := a.Split()
	require.NoError(t, err)

	// the promoted pair's value is sitting in left's trailing slot
	donor, err := left.Right(Last)
	require.NoError(t, err)
	boundary, err := right.Insert(splitKey, donor)
	require.NoError(t, err)

	merged := left.Merge(boundary)
	require.Equal(t, a.ToMap(), merged.ToMap())
}

func TestMergeKeepsRightTrailing(t *testing.T) {
	left := build(t, map[int]string{1: "a", 2: "b"}, "L")
	right := build(t, map[int]string{5: "x", 6: "y"}, "R")

	merged := left.Merge(right)
	require.Equal(t, []int{1, 2, 5, 6}, merged.Keys())

	v, err := merged.Right(Last)
	require.NoError(t, err)
	require.Equal(t, "R", v)

	// inputs are untouched
	require.Equal(t, []int{1, 2}, left.Keys())
	require.Equal(t, []int{5, 6}, right.Keys())
}

package zigzag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertDuplicateFails(t *testing.T) {
	a := build(t, map[int]string{10: "A"}, "")
	_, err := a.Insert(10, "B")
	require.ErrorIs(t, err, ErrAlreadyExists)

	// failed insert leaves the original intact
	v, err := a.FindValue(10)
	require.NoError(t, err)
	require.Equal(t, "A", v)
}

func TestInsertBothOverwritesSuccessor(t *testing.T) {
	a := build(t, map[int]string{10: "A", 30: "C"}, "T")

	b, err := a.InsertBoth(20, "B", "C2")
	require.NoError(t, err)
	require.Equal(t, []int{10, 20, 30}, b.Keys())

	v, err := b.FindValue(20)
	require.NoError(t, err)
	require.Equal(t, "B", v)

	// 30's left value was overwritten by the pair's next value
	v, err = b.FindValue(30)
	require.NoError(t, err)
	require.Equal(t, "C2", v)

	// trailing untouched
	v, err = b.Right(Last)
	require.NoError(t, err)
	require.Equal(t, "T", v)
}

func TestInsertBothAsNewMaximumSetsTrailing(t *testing.T) {
	a := build(t, map[int]string{10: "A"}, "old")

	b, err := a.InsertBoth(20, "B", "new")
	require.NoError(t, err)

	v, err := b.Right(Last)
	require.NoError(t, err)
	require.Equal(t, "new", v)
}

func TestAppendKeyInstallsSentinel(t *testing.T) {
	a := build(t, map[int]string{10: "A"}, "")

	// the degenerate append: the caller passes the key itself as value and
	// only the trailing slot changes
	b, err := a.Append(SelKey, 99, "99")
	require.NoError(t, err)
	require.Equal(t, []int{10}, b.Keys())

	v, err := b.Right(Last)
	require.NoError(t, err)
	require.Equal(t, "99", v)
}

func TestAppendRightRenamesMaximum(t *testing.T) {
	a := build(t, map[int]string{10: "A", 20: "B"}, "")

	b, err := a.Append(SelRight, 30, "C")
	require.NoError(t, err)
	require.Equal(t, []int{10, 30}, b.Keys())

	v, err := b.FindValue(30)
	require.NoError(t, err)
	require.Equal(t, "B", v)

	v, err = b.Right(Last)
	require.NoError(t, err)
	require.Equal(t, "C", v)
}

func TestAppendRightOnEmptyFails(t *testing.T) {
	_, err := New[int, string](0).Append(SelRight, 10, "A")
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestAppendBoth(t *testing.T) {
	a := build(t, map[int]string{10: "A"}, "old")

	b, err := a.AppendBoth(20, "B", "T")
	require.NoError(t, err)
	require.Equal(t, []int{10, 20}, b.Keys())

	v, err := b.FindValue(20)
	require.NoError(t, err)
	require.Equal(t, "B", v)

	v, err = b.Right(Last)
	require.NoError(t, err)
	require.Equal(t, "T", v)
}

func TestPrepend(t *testing.T) {
	a := build(t, map[int]string{10: "A"}, "")

	b, err := a.Prepend(5, "Z")
	require.NoError(t, err)
	require.Equal(t, []int{5, 10}, b.Keys())

	r, err := b.Find(10)
	require.NoError(t, err)
	require.Equal(t, 2, r)
}

func TestBoundedArrayOutOfSpace(t *testing.T) {
	a := NewBounded[int, string](2)
	var err error
	a, err = a.Insert(10, "A")
	require.NoError(t, err)
	a, err = a.Insert(20, "B")
	require.NoError(t, err)

	_, err = a.Insert(30, "C")
	require.ErrorIs(t, err, ErrOutOfSpace)
	_, err = a.InsertBoth(30, "C", "D")
	require.ErrorIs(t, err, ErrOutOfSpace)
	_, err = a.AppendBoth(30, "C", "D")
	require.ErrorIs(t, err, ErrOutOfSpace)

	// prepend grows the key count too and honors the bound
	_, err = a.Prepend(5, "Z")
	require.ErrorIs(t, err, ErrOutOfSpace)
	require.Equal(t, 2, a.Size())

	// append right does not grow the key count and stays legal when full
	b, err := a.Append(SelRight, 30, "C")
	require.NoError(t, err)
	require.Equal(t, 2, b.Size())
}

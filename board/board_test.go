package board

import (
	"testing"

	"github.com/matryer/is"
)

func TestClearSingleFullRow(t *testing.T) {
	is := is.New(t)
	b := MustFromRows("##########")
	is.Equal(b.RowSum(0), Width)

	cleared := b.ClearLines()
	is.Equal(cleared, 1)
	is.Equal(b.LinesCleared(), 1)
	is.True(b.IsEmpty())
}

func TestClearTwoFullRowsShiftsAbove(t *testing.T) {
	is := is.New(t)
	b := MustFromRows(
		"#.........",
		".#........",
		"##########",
		"..#.......",
		"##########",
	)
	cleared := b.ClearLines()
	is.Equal(cleared, 2)
	is.Equal(b.LinesCleared(), 2)

	expected := MustFromRows(
		"#.........",
		".#........",
		"..#.......",
	)
	is.True(b.Equals(expected))
}

func TestClearAdjacentFullRowsRechecksIndex(t *testing.T) {
	is := is.New(t)
	b := MustFromRows(
		"...#......",
		"##########",
		"##########",
		"##########",
	)
	is.Equal(b.ClearLines(), 3)
	is.True(b.Occupied(3, 0))
	is.Equal(b.RowSum(0), 1)
	is.Equal(b.RowSum(1), 0)
}

func TestClearLeavesPartialRows(t *testing.T) {
	is := is.New(t)
	b := MustFromRows(
		"#########.",
		".#########",
	)
	before := b.Hash()
	is.Equal(b.ClearLines(), 0)
	is.Equal(b.Hash(), before)
	is.Equal(b.LinesCleared(), 0)
}

func TestClearCounterAccumulates(t *testing.T) {
	is := is.New(t)
	b := MustFromRows("##########")
	b.ClearLines()
	for x := 0; x < Width; x++ {
		b.Set(x, 0)
	}
	b.ClearLines()
	is.Equal(b.LinesCleared(), 2)
}

func TestHighestOccupiedRow(t *testing.T) {
	is := is.New(t)
	b := NewBoard()
	is.Equal(b.HighestOccupiedRow(), 0)

	b.Set(4, 0)
	is.Equal(b.HighestOccupiedRow(), 0)

	b.Set(9, 7)
	is.Equal(b.HighestOccupiedRow(), 7)

	b.Set(0, StorageHeight-1)
	is.Equal(b.HighestOccupiedRow(), StorageHeight-1)
}

func TestCloneIsIndependent(t *testing.T) {
	is := is.New(t)
	b := MustFromRows("#.#")
	c := b.Clone()
	c.Set(1, 0)
	is.True(!b.Occupied(1, 0))
	is.True(c.Occupied(1, 0))
	is.True(b.Hash() != c.Hash())
}

func TestFromRowsRejectsBadInput(t *testing.T) {
	is := is.New(t)
	_, err := FromRows("###########")
	is.True(err != nil)

	rows := make([]string, StorageHeight+1)
	_, err = FromRows(rows...)
	is.True(err != nil)
}

func TestOnBoard(t *testing.T) {
	is := is.New(t)
	is.True(OnBoard(0, 0))
	is.True(OnBoard(Width-1, StorageHeight-1))
	is.True(!OnBoard(-1, 0))
	is.True(!OnBoard(0, -1))
	is.True(!OnBoard(Width, 0))
	is.True(!OnBoard(0, StorageHeight))
}

func BenchmarkClearLines(b *testing.B) {
	full := MustFromRows(
		"##########",
		"#.########",
		"##########",
		"##########",
	)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bd := full.Clone()
		bd.ClearLines()
	}
}

func TestSetToPosition(t *testing.T) {
	is := is.New(t)
	b := MustFromRows("##########", "##########")
	b.ClearLines()
	is.Equal(b.LinesCleared(), 2)

	is.NoErr(b.SetToPosition(RightWell))
	is.Equal(b.LinesCleared(), 0)
	is.Equal(b.HighestOccupiedRow(), 3)
	for y := 0; y < 4; y++ {
		is.Equal(b.RowSum(y), Width-1)
		is.True(!b.Occupied(Width-1, y))
	}

	is.NoErr(b.SetToPosition(NearlyFull))
	is.Equal(b.HighestOccupiedRow(), VisibleHeight-2)
	is.True(!b.Occupied(0, 0))

	is.NoErr(b.SetToPosition(Staircase))
	is.Equal(b.RowSum(0), 8)
	is.Equal(b.RowSum(3), 3)
}

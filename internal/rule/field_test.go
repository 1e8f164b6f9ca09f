package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceBasic(t *testing.T) {
	t.Parallel()

	f := NewField()
	require.NoError(t, f.Place(ColorBlack, 7, 7))
	assert.Equal(t, CellBlack, f.Cell(7, 7))
	assert.Equal(t, 1, f.MoveCount())

	// 已占用
	assert.ErrorIs(t, f.Place(ColorWhite, 7, 7), ErrOccupied)

	// 越界
	assert.ErrorIs(t, f.Place(ColorWhite, 15, 0), ErrOutOfBounds)
	assert.ErrorIs(t, f.Place(ColorWhite, 0, -1), ErrOutOfBounds)
	assert.Equal(t, 1, f.MoveCount())
}

func TestWinDirections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		dx   int
		dy   int
	}{
		{name: "horizontal", dx: 1, dy: 0},
		{name: "vertical", dx: 0, dy: 1},
		{name: "diagonal", dx: 1, dy: 1},
		{name: "anti-diagonal", dx: 1, dy: -1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := NewField()
			// 黑棋从 (7,7) 沿方向连五，白棋落在远端不干扰
			for i := 0; i < 4; i++ {
				require.NoError(t, f.Place(ColorBlack, 7+tt.dx*i, 7+tt.dy*i))
				require.NoError(t, f.Place(ColorWhite, i, 14-i))
				assert.Equal(t, ResultOngoing, f.Result())
			}
			require.NoError(t, f.Place(ColorBlack, 7+tt.dx*4, 7+tt.dy*4))
			assert.Equal(t, ResultBlackWins, f.Result())
		})
	}
}

func TestWinThroughMiddleMove(t *testing.T) {
	t.Parallel()

	// 最后一手落在五连中间而非末端
	f := NewField()
	for _, x := range []int{3, 4, 6, 7} {
		require.NoError(t, f.Place(ColorWhite, x, 5))
		require.NoError(t, f.Place(ColorBlack, x, 10))
	}
	require.NoError(t, f.Place(ColorWhite, 5, 5))
	assert.Equal(t, ResultWhiteWins, f.Result())
}

func TestOverlineWins(t *testing.T) {
	t.Parallel()

	// 无长连禁手：六连同样获胜
	f := NewField()
	for _, x := range []int{2, 3, 4, 6, 7} {
		require.NoError(t, f.Place(ColorBlack, x, 0))
		require.NoError(t, f.Place(ColorWhite, x, 14))
	}
	assert.Equal(t, ResultOngoing, f.Result())
	require.NoError(t, f.Place(ColorBlack, 5, 0))
	assert.Equal(t, ResultBlackWins, f.Result())
}

func TestFourIsNotWin(t *testing.T) {
	t.Parallel()

	f := NewField()
	for i := 0; i < 4; i++ {
		require.NoError(t, f.Place(ColorBlack, i, i))
	}
	assert.Equal(t, ResultOngoing, f.Result())
}

// 全盘铺满且任何方向最长连子不超过二的染色：color(x,y) = (x/2 + y) % 2
func drawPatternColor(x, y int) Color {
	if (x/2+y)%2 == 0 {
		return ColorBlack
	}
	return ColorWhite
}

func TestDraw(t *testing.T) {
	t.Parallel()

	f := NewField()
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			require.NoError(t, f.Place(drawPatternColor(x, y), x, y))
			if f.MoveCount() < TotalCells {
				require.Equal(t, ResultOngoing, f.Result(), "premature result at (%d,%d)", x, y)
			}
		}
	}
	assert.Equal(t, ResultDraw, f.Result())
}

func TestUndoLast(t *testing.T) {
	t.Parallel()

	f := NewField()
	_, ok := f.UndoLast()
	assert.False(t, ok, "undo on empty board")

	require.NoError(t, f.Place(ColorBlack, 3, 3))
	require.NoError(t, f.Place(ColorWhite, 4, 4))

	mv, ok := f.UndoLast()
	require.True(t, ok)
	assert.Equal(t, Move{X: 4, Y: 4, Color: ColorWhite}, mv)
	assert.Equal(t, CellEmpty, f.Cell(4, 4))

	last, ok := f.LastMove()
	require.True(t, ok)
	assert.Equal(t, Move{X: 3, Y: 3, Color: ColorBlack}, last)

	// 悔棋后可重新落子
	require.NoError(t, f.Place(ColorWhite, 4, 5))
	assert.Equal(t, 2, f.MoveCount())
}

func TestUndoRemovesWin(t *testing.T) {
	t.Parallel()

	f := NewField()
	for i := 0; i < 5; i++ {
		require.NoError(t, f.Place(ColorBlack, i, 7))
	}
	require.Equal(t, ResultBlackWins, f.Result())

	_, ok := f.UndoLast()
	require.True(t, ok)
	assert.Equal(t, ResultOngoing, f.Result())
}

func TestStoneCount(t *testing.T) {
	t.Parallel()

	f := NewField()
	require.NoError(t, f.Place(ColorBlack, 0, 0))
	require.NoError(t, f.Place(ColorWhite, 1, 0))
	require.NoError(t, f.Place(ColorBlack, 2, 0))
	b, w := f.StoneCount()
	assert.Equal(t, 2, b)
	assert.Equal(t, 1, w)
}

package rule

import "errors"

// 棋盘边长
const BoardSize = 15

// 总交叉点数
const TotalCells = BoardSize * BoardSize

// 获胜所需连子数（五连或更长均获胜，无长连禁手）
const winCount = 5

// Color 棋子颜色
type Color uint8

const (
	ColorBlack Color = iota + 1
	ColorWhite
)

// Opponent 返回对方颜色
func (c Color) Opponent() Color {
	if c == ColorBlack {
		return ColorWhite
	}
	return ColorBlack
}

func (c Color) String() string {
	switch c {
	case ColorBlack:
		return "black"
	case ColorWhite:
		return "white"
	default:
		return "unknown"
	}
}

// Cell 棋盘格子状态
type Cell uint8

const (
	CellEmpty Cell = iota
	CellBlack
	CellWhite
)

// CellOf 颜色对应的格子状态
func CellOf(c Color) Cell {
	if c == ColorBlack {
		return CellBlack
	}
	return CellWhite
}

// Result 对局结果
type Result uint8

const (
	ResultOngoing Result = iota
	ResultBlackWins
	ResultWhiteWins
	ResultDraw
)

// Move 一步落子
type Move struct {
	X     int
	Y     int
	Color Color
}

var (
	ErrOutOfBounds = errors.New("position out of bounds")
	ErrOccupied    = errors.New("position occupied")
)

// Field 15×15 棋盘，记录落子历史以支持悔棋。
// 纯规则引擎：不校验轮次，不含任何并发控制，由调用方（Session）独占持有。
type Field struct {
	cells   [BoardSize][BoardSize]Cell
	history []Move
}

// NewField 创建空棋盘
func NewField() *Field {
	return &Field{history: make([]Move, 0, TotalCells)}
}

// InBounds 坐标是否在棋盘内
func InBounds(x, y int) bool {
	return x >= 0 && x < BoardSize && y >= 0 && y < BoardSize
}

// Place 落一子。越界返回 ErrOutOfBounds，已占用返回 ErrOccupied。
func (f *Field) Place(c Color, x, y int) error {
	if !InBounds(x, y) {
		return ErrOutOfBounds
	}
	if f.cells[x][y] != CellEmpty {
		return ErrOccupied
	}
	f.cells[x][y] = CellOf(c)
	f.history = append(f.history, Move{X: x, Y: y, Color: c})
	return nil
}

// UndoLast 撤销最近一步落子，返回被撤销的落子。
// 棋盘为空时返回 ok=false。
func (f *Field) UndoLast() (Move, bool) {
	if len(f.history) == 0 {
		return Move{}, false
	}
	last := f.history[len(f.history)-1]
	f.history = f.history[:len(f.history)-1]
	f.cells[last.X][last.Y] = CellEmpty
	return last, true
}

// Result 对局结果判定。
// 胜负只可能产生于最近一步落子：沿横、竖、两条对角线
// 统计穿过该点的同色连子数，达到五子（或以上）即获胜；
// 棋盘下满且无人获胜为和棋。
func (f *Field) Result() Result {
	last, ok := f.LastMove()
	if !ok {
		return ResultOngoing
	}
	dirs := [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}
	want := CellOf(last.Color)
	for _, d := range dirs {
		run := 1
		for i := 1; i < BoardSize; i++ {
			x, y := last.X+d[0]*i, last.Y+d[1]*i
			if !InBounds(x, y) || f.cells[x][y] != want {
				break
			}
			run++
		}
		for i := 1; i < BoardSize; i++ {
			x, y := last.X-d[0]*i, last.Y-d[1]*i
			if !InBounds(x, y) || f.cells[x][y] != want {
				break
			}
			run++
		}
		if run >= winCount {
			if last.Color == ColorBlack {
				return ResultBlackWins
			}
			return ResultWhiteWins
		}
	}
	if len(f.history) == TotalCells {
		return ResultDraw
	}
	return ResultOngoing
}

// LastMove 最近一步落子
func (f *Field) LastMove() (Move, bool) {
	if len(f.history) == 0 {
		return Move{}, false
	}
	return f.history[len(f.history)-1], true
}

// MoveCount 已落子数
func (f *Field) MoveCount() int {
	return len(f.history)
}

// Cell 读取格子状态，越界视为空
func (f *Field) Cell(x, y int) Cell {
	if !InBounds(x, y) {
		return CellEmpty
	}
	return f.cells[x][y]
}

// Snapshot 复制当前棋盘
func (f *Field) Snapshot() [BoardSize][BoardSize]Cell {
	return f.cells
}

// StoneCount 统计双方子数，用于一致性断言与测试
func (f *Field) StoneCount() (black, white int) {
	for _, m := range f.history {
		if m.Color == ColorBlack {
			black++
		} else {
			white++
		}
	}
	return black, white
}

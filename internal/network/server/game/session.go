package game

import (
	"sync"
	"time"

	"github.com/Congyuwang/wuziqi/internal/network/protocol"
	"github.com/Congyuwang/wuziqi/internal/network/server/types"
	"github.com/Congyuwang/wuziqi/internal/rule"
)

// GameSession 一盘对局。黑方先行，落子、悔棋、超时都在会话锁下串行处理
type GameSession struct {
	room    *Room
	clients [2]types.ClientInterface // 0=黑 1=白
	field   *rule.Field
	turn    rule.Color
	ended   bool

	// 对局参数，0 表示不限制
	moveTimeout time.Duration
	undoTimeout time.Duration
	undoDial    int
	undosUsed   [2]int

	// 悔棋对话，同一时刻最多一个
	undoPending   bool
	undoRequester rule.Color

	// 超时控制
	moveTimer     *time.Timer
	moveRemaining time.Duration // 暂停时剩余的时间
	moveStart     time.Time     // 计时器开始时间
	undoTimer     *time.Timer
	timerSeq      uint64 // 代次计数，过期回调据此丢弃
	timerMu       sync.Mutex

	mu sync.Mutex
}

// NewGameSession 创建对局会话
func NewGameSession(room *Room, black, white types.ClientInterface) *GameSession {
	return &GameSession{
		room:        room,
		clients:     [2]types.ClientInterface{black, white},
		field:       rule.NewField(),
		turn:        rule.ColorBlack,
		moveTimeout: time.Duration(room.Config.MoveTimeout) * time.Second,
		undoTimeout: time.Duration(room.Config.UndoRequestTimeout) * time.Second,
		undoDial:    room.Config.UndoDial,
	}
}

// Start 开始对局，启动黑方的落子计时
func (gs *GameSession) Start() {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.startMoveTimer()
}

// Abort 终止对局，不发任何消息，善后由房间完成
func (gs *GameSession) Abort() {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.ended = true
	gs.stopAllTimers()
}

// QuitSession 玩家中途退出对局。对局结束但双方都留在房间，不计分
func (gs *GameSession) QuitSession(clientID string) {
	gs.mu.Lock()
	if gs.ended {
		gs.mu.Unlock()
		return
	}
	c, ok := gs.colorOf(clientID)
	if !ok {
		gs.mu.Unlock()
		return
	}

	gs.ended = true
	gs.stopAllTimers()
	gs.clientOf(c.Opponent()).SendMessage(protocol.MustNewMessage(protocol.MsgOpponentQuitGameSession, nil))
	gs.mu.Unlock()

	gs.room.sessionEnded(nil)
}

// colorOf 返回玩家执子颜色。调用方持有 gs.mu
func (gs *GameSession) colorOf(clientID string) (rule.Color, bool) {
	for i, c := range gs.clients {
		if c.GetID() == clientID {
			return seatColor(i), true
		}
	}
	return 0, false
}

// clientOf 返回执某色的玩家。调用方持有 gs.mu
func (gs *GameSession) clientOf(c rule.Color) types.ClientInterface {
	return gs.clients[colorSeat(c)]
}

// broadcast 向双方发送同一条消息，先发给 first 一方
func (gs *GameSession) broadcast(msg *protocol.Message, first rule.Color) {
	gs.clientOf(first).SendMessage(msg)
	gs.clientOf(first.Opponent()).SendMessage(msg)
}

// colorSeat 执子颜色对应的座位
func colorSeat(c rule.Color) int {
	if c == rule.ColorBlack {
		return 0
	}
	return 1
}

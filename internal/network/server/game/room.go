package game

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/Congyuwang/wuziqi/internal/network/protocol"
	"github.com/Congyuwang/wuziqi/internal/network/server/types"
	"github.com/Congyuwang/wuziqi/internal/rule"
)

// RoomPlayer 房间中的玩家
type RoomPlayer struct {
	Client types.ClientInterface
	Ready  bool   // 是否准备
	Score  uint16 // 本房间累计胜局
}

// Room 对弈房间，座位 0 执黑、座位 1 执白
type Room struct {
	Token     string                     // 房间号
	Config    protocol.SessionConfigInfo // 对局参数
	Seats     [2]*RoomPlayer             // 座位，nil 表示空位
	CreatedAt time.Time                  // 创建时间

	lastActive time.Time
	session    *GameSession
	server     types.ServerContext
	mu         sync.RWMutex
}

// join 将玩家放入第一个空位，房间满时返回 ErrRoomFull
func (r *Room) join(client types.ClientInterface) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seat := -1
	for i, p := range r.Seats {
		if p == nil {
			seat = i
			break
		}
	}
	if seat == -1 {
		return ErrRoomFull
	}

	r.Seats[seat] = &RoomPlayer{Client: client}
	client.SetRoom(r.Token)
	client.SetPhase(types.PhaseRoom)
	r.lastActive = time.Now()

	// 通知对手（如有），再向加入者回执
	var opponent *protocol.OpponentInfo
	if other := r.Seats[1-seat]; other != nil {
		other.Client.SendMessage(protocol.MustNewMessage(protocol.MsgOpponentJoinRoom, protocol.OpponentJoinRoomPayload{
			Name: client.GetName(),
		}))
		opponent = &protocol.OpponentInfo{Name: other.Client.GetName(), Ready: other.Ready}
	}
	client.SendMessage(protocol.MustNewMessage(protocol.MsgJoinRoomSuccess, protocol.JoinRoomSuccessPayload{
		Token:    r.Token,
		Config:   r.Config,
		Opponent: opponent,
	}))

	log.Printf("👤 玩家 %s 加入房间 %s (座位 %d)", client.GetName(), r.Token, seat)
	return nil
}

// leave 玩家离开房间，返回离开后房间是否为空。
// 对局进行中离开会终止对局，留下的玩家回到房间等待状态且比分保留。
func (r *Room) leave(client types.ClientInterface, reason types.LeaveReason) (empty bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	seat := r.seatOf(client.GetID())
	if seat == -1 {
		return false
	}

	inSession := r.session != nil
	if inSession {
		r.session.Abort()
		r.session = nil
	}

	r.Seats[seat] = nil
	client.SetRoom("")
	if reason == types.LeaveQuitRoom {
		client.SetPhase(types.PhaseLobby)
	}
	r.lastActive = time.Now()

	log.Printf("👋 玩家 %s 离开房间 %s (座位 %d)", client.GetName(), r.Token, seat)

	other := r.Seats[1-seat]
	if other == nil {
		return true
	}

	// 通知留下的玩家
	var msgType protocol.MessageType
	switch reason {
	case types.LeaveExitGame:
		msgType = protocol.MsgOpponentExitGame
	case types.LeaveDisconnected:
		msgType = protocol.MsgOpponentDisconnected
	default:
		msgType = protocol.MsgOpponentQuitRoom
	}
	other.Client.SendMessage(protocol.MustNewMessage(msgType, nil))

	// 留下的玩家回到座位 0（黑方），比分保留；中断的对局不计分
	other.Ready = false
	other.Client.SetPhase(types.PhaseRoom)
	r.Seats[0] = other
	r.Seats[1] = nil

	return false
}

// SetReady 更新准备状态，双方就绪时开始对局。
// 不在房间中的玩家返回 ErrNotInRoom
func (r *Room) SetReady(client types.ClientInterface, ready bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seat := r.seatOf(client.GetID())
	if seat == -1 {
		return ErrNotInRoom
	}
	r.Seats[seat].Ready = ready
	r.lastActive = time.Now()

	if other := r.Seats[1-seat]; other != nil {
		msgType := protocol.MsgOpponentReady
		if !ready {
			msgType = protocol.MsgOpponentUnready
		}
		other.Client.SendMessage(protocol.MustNewMessage(msgType, nil))
	}

	if r.session == nil && r.bothReady() {
		r.startSession()
	}
	return nil
}

// Chat 将聊天消息转发给对手
func (r *Room) Chat(client types.ClientInterface, content string) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seat := r.seatOf(client.GetID())
	if seat == -1 {
		return
	}
	if other := r.Seats[1-seat]; other != nil {
		other.Client.SendMessage(protocol.MustNewMessage(protocol.MsgChat, protocol.ChatPayload{
			From:    client.GetName(),
			Content: content,
		}))
	}
}

// startSession 开始对局，调用方持有 r.mu
func (r *Room) startSession() {
	black := r.Seats[0].Client
	white := r.Seats[1].Client

	r.session = NewGameSession(r, black, white)

	black.SetPhase(types.PhaseGame)
	white.SetPhase(types.PhaseGame)
	black.SendMessage(protocol.MustNewMessage(protocol.MsgGameStarted, protocol.GameStartedPayload{Color: rule.ColorBlack.String()}))
	white.SendMessage(protocol.MustNewMessage(protocol.MsgGameStarted, protocol.GameStartedPayload{Color: rule.ColorWhite.String()}))

	r.session.Start()

	log.Printf("🎮 房间 %s 对局开始：%s(黑) vs %s(白)", r.Token, black.GetName(), white.GetName())
}

// sessionEnded 对局正常结束后的收尾：计分、广播比分、双方回到房间。
// 由 GameSession 在释放自身锁之后调用。
func (r *Room) sessionEnded(winner *rule.Color) {
	r.mu.Lock()

	if r.session == nil {
		r.mu.Unlock()
		return
	}
	r.session = nil
	r.lastActive = time.Now()

	var winnerName string
	scores := make([]protocol.PlayerScore, 0, 2)
	for i, p := range r.Seats {
		if p == nil {
			continue
		}
		if winner != nil && seatColor(i) == *winner {
			p.Score++
			winnerName = p.Client.GetName()
		}
		p.Ready = false
		p.Client.SetPhase(types.PhaseRoom)
		scores = append(scores, protocol.PlayerScore{Name: p.Client.GetName(), Score: p.Score})
	}

	msg := protocol.MustNewMessage(protocol.MsgRoomScores, protocol.RoomScoresPayload{Scores: scores})
	for _, p := range r.Seats {
		if p != nil {
			p.Client.SendMessage(msg)
		}
	}
	r.mu.Unlock()

	// 记录排行榜
	if winnerName != "" {
		if lb := r.server.GetLeaderboard(); lb != nil {
			go func() { _ = lb.RecordWin(context.Background(), winnerName) }()
		}
	}
}

// GetSession 获取当前对局，不在对局中时返回 nil
func (r *Room) GetSession() *GameSession {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.session
}

// seatOf 返回玩家所在座位，-1 表示不在房间中。调用方持有 r.mu
func (r *Room) seatOf(clientID string) int {
	for i, p := range r.Seats {
		if p != nil && p.Client.GetID() == clientID {
			return i
		}
	}
	return -1
}

// bothReady 双方是否都已准备。调用方持有 r.mu
func (r *Room) bothReady() bool {
	return r.Seats[0] != nil && r.Seats[1] != nil && r.Seats[0].Ready && r.Seats[1].Ready
}

// seatColor 座位对应的执子颜色
func seatColor(seat int) rule.Color {
	if seat == 0 {
		return rule.ColorBlack
	}
	return rule.ColorWhite
}

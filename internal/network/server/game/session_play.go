package game

import (
	"errors"
	"log"

	"github.com/Congyuwang/wuziqi/internal/network/protocol"
	"github.com/Congyuwang/wuziqi/internal/rule"
)

// Play 处理落子。越界的坐标静默丢弃，规则错误回给落子方，
// 落子成功后向双方广播棋盘，若有未应答的悔棋请求则自动作废
func (gs *GameSession) Play(clientID string, x, y int) {
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
	if !rule.InBounds(x, y) {
		gs.mu.Unlock()
		return
	}
	if c != gs.turn {
		gs.clientOf(c).SendMessage(protocol.NewGameSessionError("还没轮到您落子"))
		gs.mu.Unlock()
		return
	}
	if err := gs.field.Place(c, x, y); err != nil {
		if errors.Is(err, rule.ErrOccupied) {
			gs.clientOf(c).SendMessage(protocol.NewGameSessionError("该位置已有棋子"))
		}
		gs.mu.Unlock()
		return
	}

	gs.stopMoveTimer()

	// 对方在悔棋对话未应答期间落子，视为拒绝，先于棋盘更新下发
	if gs.undoPending {
		gs.stopUndoTimer()
		gs.undoPending = false
		gs.broadcast(protocol.MustNewMessage(protocol.MsgUndoAutoRejected, nil), c)
	}

	mv, _ := gs.field.LastMove()
	gs.broadcast(protocol.MustNewMessage(protocol.MsgFieldUpdate, protocol.FieldUpdatePayload{
		Cells:  protocol.CellsOf(gs.field),
		Latest: protocol.MoveInfoOf(mv),
	}), c)

	var endMsg protocol.MessageType
	var winner *rule.Color
	switch gs.field.Result() {
	case rule.ResultBlackWins:
		endMsg = protocol.MsgGameEndBlackWins
		w := rule.ColorBlack
		winner = &w
	case rule.ResultWhiteWins:
		endMsg = protocol.MsgGameEndWhiteWins
		w := rule.ColorWhite
		winner = &w
	case rule.ResultDraw:
		endMsg = protocol.MsgGameEndDraw
	default:
		// 对局继续，轮到对方
		gs.turn = c.Opponent()
		gs.startMoveTimer()
		gs.mu.Unlock()
		return
	}

	gs.ended = true
	gs.stopAllTimers()
	gs.broadcast(protocol.MustNewMessage(endMsg, nil), c)
	gs.mu.Unlock()

	log.Printf("🏁 房间 %s 对局结束：%s", gs.room.Token, endMsg)

	gs.room.sessionEnded(winner)
}

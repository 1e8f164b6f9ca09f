package game

import (
	"log"

	"github.com/Congyuwang/wuziqi/internal/network/protocol"
)

// RequestUndo 请求撤销自己的最后一手。对话未关闭时重复请求被忽略，
// 请求期间自己的落子计时暂停
func (gs *GameSession) RequestUndo(clientID string) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.ended || gs.undoPending {
		return
	}
	c, ok := gs.colorOf(clientID)
	if !ok {
		return
	}
	if gs.turn == c {
		gs.clientOf(c).SendMessage(protocol.NewGameSessionError("轮到您落子，无需悔棋"))
		return
	}
	if gs.field.MoveCount() == 0 {
		gs.clientOf(c).SendMessage(protocol.NewGameSessionError("没有可悔的棋"))
		return
	}
	if gs.undoDial > 0 && gs.undosUsed[colorSeat(c)] >= gs.undoDial {
		gs.clientOf(c).SendMessage(protocol.NewGameSessionError("悔棋次数已用完"))
		return
	}

	gs.undoPending = true
	gs.undoRequester = c
	gs.pauseMoveTimer()
	gs.startUndoTimer()
	gs.clientOf(c.Opponent()).SendMessage(protocol.MustNewMessage(protocol.MsgUndoRequest, nil))

	log.Printf("↩️ 房间 %s：%s 请求悔棋", gs.room.Token, c)
}

// ApproveUndo 同意对方的悔棋请求。撤销一手后轮到请求方重新落子，
// 落子计时重新计满
func (gs *GameSession) ApproveUndo(clientID string) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if !gs.approverGuard(clientID) {
		return
	}

	gs.stopUndoTimer()
	gs.undoPending = false

	mv, ok := gs.field.UndoLast()
	if !ok {
		gs.resumeMoveTimer()
		return
	}
	gs.turn = mv.Color
	gs.undosUsed[colorSeat(mv.Color)]++

	payload := protocol.UndoPayload{
		Cells:   protocol.CellsOf(gs.field),
		Cleared: protocol.MoveInfoOf(mv),
	}
	if last, ok := gs.field.LastMove(); ok {
		latest := protocol.MoveInfoOf(last)
		payload.Latest = &latest
	}
	gs.broadcast(protocol.MustNewMessage(protocol.MsgUndo, payload), mv.Color)

	gs.startMoveTimer()

	log.Printf("↩️ 房间 %s：悔棋生效，轮到 %s", gs.room.Token, gs.turn)
}

// RejectUndo 拒绝对方的悔棋请求，对局照常继续
func (gs *GameSession) RejectUndo(clientID string) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if !gs.approverGuard(clientID) {
		return
	}

	gs.stopUndoTimer()
	gs.undoPending = false
	gs.clientOf(gs.undoRequester).SendMessage(protocol.MustNewMessage(protocol.MsgUndoRejectedByOpponent, nil))
	gs.resumeMoveTimer()
}

// approverGuard 只有被请求方可以应答悔棋，其余情况一律忽略。调用方持有 gs.mu
func (gs *GameSession) approverGuard(clientID string) bool {
	if gs.ended || !gs.undoPending {
		return false
	}
	c, ok := gs.colorOf(clientID)
	if !ok || c != gs.undoRequester.Opponent() {
		return false
	}
	return true
}

// handleUndoTimeout 悔棋应答超时，视为拒绝
func (gs *GameSession) handleUndoTimeout(seq uint64) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.timerStale(seq) || gs.ended || !gs.undoPending {
		return
	}

	gs.undoPending = false
	gs.broadcast(protocol.MustNewMessage(protocol.MsgUndoTimeoutRejected, nil), gs.undoRequester)
	gs.resumeMoveTimer()

	log.Printf("⏰ 房间 %s：悔棋请求超时", gs.room.Token)
}

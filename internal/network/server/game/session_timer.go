package game

import (
	"log"
	"time"

	"github.com/Congyuwang/wuziqi/internal/network/protocol"
	"github.com/Congyuwang/wuziqi/internal/rule"
)

// --- 超时控制 ---
// 所有 start/stop/pause/resume 都要求调用方持有 gs.mu，
// timerSeq 保证已过期的回调不会产生效果。

func (gs *GameSession) startMoveTimer() {
	if gs.moveTimeout <= 0 {
		return
	}
	gs.timerMu.Lock()
	defer gs.timerMu.Unlock()

	gs.timerSeq++
	seq := gs.timerSeq
	gs.moveStart = time.Now()
	gs.moveRemaining = gs.moveTimeout
	gs.moveTimer = time.AfterFunc(gs.moveTimeout, func() {
		gs.handleMoveTimeout(seq)
	})
}

func (gs *GameSession) stopMoveTimer() {
	gs.timerMu.Lock()
	defer gs.timerMu.Unlock()

	gs.timerSeq++
	if gs.moveTimer != nil {
		gs.moveTimer.Stop()
		gs.moveTimer = nil
	}
}

// pauseMoveTimer 暂停落子计时并记录剩余时间
func (gs *GameSession) pauseMoveTimer() {
	gs.timerMu.Lock()
	defer gs.timerMu.Unlock()

	gs.timerSeq++
	if gs.moveTimer == nil {
		return
	}
	gs.moveTimer.Stop()
	gs.moveTimer = nil
	gs.moveRemaining -= time.Since(gs.moveStart)
	if gs.moveRemaining < 0 {
		gs.moveRemaining = 0
	}
}

// resumeMoveTimer 以剩余时间恢复落子计时
func (gs *GameSession) resumeMoveTimer() {
	if gs.moveTimeout <= 0 {
		return
	}
	gs.timerMu.Lock()
	defer gs.timerMu.Unlock()

	gs.timerSeq++
	seq := gs.timerSeq
	gs.moveStart = time.Now()
	gs.moveTimer = time.AfterFunc(gs.moveRemaining, func() {
		gs.handleMoveTimeout(seq)
	})
}

func (gs *GameSession) startUndoTimer() {
	if gs.undoTimeout <= 0 {
		return
	}
	gs.timerMu.Lock()
	defer gs.timerMu.Unlock()

	gs.timerSeq++
	seq := gs.timerSeq
	gs.undoTimer = time.AfterFunc(gs.undoTimeout, func() {
		gs.handleUndoTimeout(seq)
	})
}

func (gs *GameSession) stopUndoTimer() {
	gs.timerMu.Lock()
	defer gs.timerMu.Unlock()

	gs.timerSeq++
	if gs.undoTimer != nil {
		gs.undoTimer.Stop()
		gs.undoTimer = nil
	}
}

func (gs *GameSession) stopAllTimers() {
	gs.timerMu.Lock()
	defer gs.timerMu.Unlock()

	gs.timerSeq++
	if gs.moveTimer != nil {
		gs.moveTimer.Stop()
		gs.moveTimer = nil
	}
	if gs.undoTimer != nil {
		gs.undoTimer.Stop()
		gs.undoTimer = nil
	}
}

// timerStale 回调代次是否已过期。调用方持有 gs.mu
func (gs *GameSession) timerStale(seq uint64) bool {
	gs.timerMu.Lock()
	defer gs.timerMu.Unlock()
	return seq != gs.timerSeq
}

// handleMoveTimeout 落子超时判负
func (gs *GameSession) handleMoveTimeout(seq uint64) {
	gs.mu.Lock()

	if gs.timerStale(seq) || gs.ended || gs.undoPending {
		gs.mu.Unlock()
		return
	}

	loser := gs.turn
	gs.ended = true
	gs.stopAllTimers()

	endMsg := protocol.MsgGameEndBlackTimeout
	if loser == rule.ColorWhite {
		endMsg = protocol.MsgGameEndWhiteTimeout
	}
	gs.broadcast(protocol.MustNewMessage(endMsg, nil), loser)
	gs.mu.Unlock()

	log.Printf("⏰ 房间 %s：%s 落子超时判负", gs.room.Token, loser)

	// 超时不计分
	gs.room.sessionEnded(nil)
}

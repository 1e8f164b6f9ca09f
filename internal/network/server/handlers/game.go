package handlers

import (
	"github.com/Congyuwang/wuziqi/internal/network/protocol"
	"github.com/Congyuwang/wuziqi/internal/network/server/game"
	"github.com/Congyuwang/wuziqi/internal/network/server/types"
)

// handlePlay 处理落子
func (h *Handler) handlePlay(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.PlayPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewGameSessionError("无效的消息格式"))
		return
	}
	if gs := h.sessionOf(client); gs != nil {
		gs.Play(client.GetID(), payload.X, payload.Y)
	}
}

// handleRequestUndo 请求悔棋
func (h *Handler) handleRequestUndo(client types.ClientInterface) {
	if gs := h.sessionOf(client); gs != nil {
		gs.RequestUndo(client.GetID())
	}
}

// handleApproveUndo 同意悔棋
func (h *Handler) handleApproveUndo(client types.ClientInterface) {
	if gs := h.sessionOf(client); gs != nil {
		gs.ApproveUndo(client.GetID())
	}
}

// handleRejectUndo 拒绝悔棋
func (h *Handler) handleRejectUndo(client types.ClientInterface) {
	if gs := h.sessionOf(client); gs != nil {
		gs.RejectUndo(client.GetID())
	}
}

// handleQuitGameSession 中途退出对局，双方留在房间
func (h *Handler) handleQuitGameSession(client types.ClientInterface) {
	if gs := h.sessionOf(client); gs != nil {
		gs.QuitSession(client.GetID())
	}
}

// sessionOf 客户端所在房间的当前对局，不在对局中时返回 nil
func (h *Handler) sessionOf(client types.ClientInterface) *game.GameSession {
	room := h.roomOf(client)
	if room == nil {
		return nil
	}
	return room.GetSession()
}

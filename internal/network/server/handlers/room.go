package handlers

import (
	"errors"

	"github.com/Congyuwang/wuziqi/internal/network/protocol"
	"github.com/Congyuwang/wuziqi/internal/network/server/game"
	"github.com/Congyuwang/wuziqi/internal/network/server/types"
)

// handleCreateRoom 创建房间。未携带对局参数时使用服务端默认值
func (h *Handler) handleCreateRoom(client types.ClientInterface, msg *protocol.Message) {
	cfg := h.defaultSessionConfig()
	if msg.Payload != nil {
		payload, err := protocol.ParsePayload[protocol.CreateRoomPayload](msg)
		if err != nil {
			client.SendMessage(protocol.NewGameSessionError("无效的消息格式"))
			return
		}
		cfg = payload.Config
	}
	if cfg.MoveTimeout < 0 || cfg.UndoRequestTimeout < 0 || cfg.UndoDial < 0 {
		client.SendMessage(protocol.NewGameSessionError("对局参数不能为负"))
		return
	}

	// CreateRoom 负责回执 room_created
	_, _ = h.server.GetRoomManager().CreateRoom(client, cfg)
}

// handleJoinRoom 加入房间，失败时按原因回执
func (h *Handler) handleJoinRoom(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.JoinRoomPayload](msg)
	if err != nil {
		client.SendMessage(protocol.NewGameSessionError("无效的消息格式"))
		return
	}

	err = h.server.GetRoomManager().JoinRoom(client, payload.Token)
	switch {
	case err == nil:
	case errors.Is(err, game.ErrRoomNotFound):
		client.SendMessage(protocol.MustNewMessage(protocol.MsgJoinRoomFailureTokenNotFound, nil))
	case errors.Is(err, game.ErrRoomFull):
		client.SendMessage(protocol.MustNewMessage(protocol.MsgJoinRoomFailureRoomFull, nil))
	default:
		client.SendMessage(protocol.NewGameSessionError(err.Error()))
	}
}

// handleQuitRoom 退出房间，回到大厅
func (h *Handler) handleQuitRoom(client types.ClientInterface) {
	h.server.GetRoomManager().LeaveRoom(client, types.LeaveQuitRoom)
}

// handleReady 更新准备状态
func (h *Handler) handleReady(client types.ClientInterface, ready bool) {
	room := h.roomOf(client)
	if room == nil {
		return
	}
	if err := room.SetReady(client, ready); err != nil {
		client.SendMessage(protocol.NewGameSessionError(err.Error()))
	}
}

// handleChat 转发聊天消息
func (h *Handler) handleChat(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.ChatPayload](msg)
	if err != nil || payload.Content == "" {
		return
	}
	room := h.roomOf(client)
	if room == nil {
		return
	}
	room.Chat(client, payload.Content)
}

// roomOf 客户端所在的房间，不在房间中时返回 nil
func (h *Handler) roomOf(client types.ClientInterface) *game.Room {
	rm, ok := h.server.GetRoomManager().(*game.RoomManager)
	if !ok {
		return nil
	}
	return rm.GetRoom(client.GetRoom())
}

// defaultSessionConfig 服务端默认对局参数
func (h *Handler) defaultSessionConfig() protocol.SessionConfigInfo {
	gameCfg := h.server.GetGameConfig()
	return protocol.SessionConfigInfo{
		MoveTimeout:        gameCfg.MoveTimeout,
		UndoRequestTimeout: gameCfg.UndoRequestTimeout,
		UndoDial:           gameCfg.UndoDial,
	}
}

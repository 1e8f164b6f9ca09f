package handlers

import (
	"log"
	"strings"
	"unicode/utf8"

	"github.com/Congyuwang/wuziqi/internal/network/protocol"
	"github.com/Congyuwang/wuziqi/internal/network/server/types"
)

// 用户名最大长度（按字符计）
const maxNameLength = 32

// handleUserName 登记用户名，成功后进入大厅
func (h *Handler) handleUserName(client types.ClientInterface, msg *protocol.Message) {
	payload, err := protocol.ParsePayload[protocol.UserNamePayload](msg)
	if err != nil {
		client.SendMessage(protocol.MustNewMessage(protocol.MsgConnectionInitFailure, protocol.ConnectionInitFailurePayload{
			Reason: "无效的消息格式",
		}))
		return
	}

	name := strings.TrimSpace(payload.Name)
	if name == "" {
		client.SendMessage(protocol.MustNewMessage(protocol.MsgConnectionInitFailure, protocol.ConnectionInitFailurePayload{
			Reason: "用户名不能为空",
		}))
		return
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		client.SendMessage(protocol.MustNewMessage(protocol.MsgConnectionInitFailure, protocol.ConnectionInitFailurePayload{
			Reason: "用户名过长",
		}))
		return
	}

	client.SetName(name)
	client.SetPhase(types.PhaseLobby)
	client.SendMessage(protocol.MustNewMessage(protocol.MsgConnectionSuccess, nil))

	log.Printf("✅ 玩家 %s 已就绪 (ID: %s)", name, client.GetID())
}

// handleExitGame 退出游戏：离开房间并断开连接
func (h *Handler) handleExitGame(client types.ClientInterface) {
	h.server.GetRoomManager().LeaveRoom(client, types.LeaveExitGame)
	client.Close()
}

// handleClientError 客户端错误上报，记录后断开
func (h *Handler) handleClientError(client types.ClientInterface, msg *protocol.Message) {
	if payload, err := protocol.ParsePayload[protocol.ClientErrorPayload](msg); err == nil {
		log.Printf("💥 客户端错误 (玩家: %s): %s", client.GetName(), payload.Message)
	}
	h.server.GetRoomManager().LeaveRoom(client, types.LeaveDisconnected)
	client.Close()
}

package handlers

import (
	"log"

	"github.com/Congyuwang/wuziqi/internal/network/protocol"
	"github.com/Congyuwang/wuziqi/internal/network/server/types"
)

// Handler 消息处理器。按客户端阶段过滤消息：
// 连接后必须先设置用户名，之后才能进入大厅、房间、对局
type Handler struct {
	server types.ServerContext
}

// NewHandler 创建处理器
func NewHandler(s types.ServerContext) *Handler {
	return &Handler{server: s}
}

// Handle 处理消息
func (h *Handler) Handle(client types.ClientInterface, msg *protocol.Message) {
	switch msg.Type {
	// 连接操作
	case protocol.MsgUserName:
		if client.GetPhase() != types.PhaseAwaitName {
			// 重复设置用户名属于初始化错误，不走通用阶段错误
			client.SendMessage(protocol.MustNewMessage(protocol.MsgConnectionInitFailure, protocol.ConnectionInitFailurePayload{
				Reason: "用户名已设置",
			}))
			return
		}
		h.handleUserName(client, msg)

	// 房间操作
	case protocol.MsgCreateRoom:
		if !h.requirePhase(client, types.PhaseLobby) {
			return
		}
		h.handleCreateRoom(client, msg)
	case protocol.MsgJoinRoom:
		if !h.requirePhase(client, types.PhaseLobby) {
			return
		}
		h.handleJoinRoom(client, msg)
	case protocol.MsgQuitRoom:
		if !h.requirePhase(client, types.PhaseRoom) {
			return
		}
		h.handleQuitRoom(client)
	case protocol.MsgReady:
		if !h.requirePhase(client, types.PhaseRoom) {
			return
		}
		h.handleReady(client, true)
	case protocol.MsgUnready:
		if !h.requirePhase(client, types.PhaseRoom) {
			return
		}
		h.handleReady(client, false)
	case protocol.MsgChat:
		if !h.requirePhase(client, types.PhaseRoom, types.PhaseGame) {
			return
		}
		h.handleChat(client, msg)

	// 对局操作
	case protocol.MsgPlay:
		if !h.requirePhase(client, types.PhaseGame) {
			return
		}
		h.handlePlay(client, msg)
	case protocol.MsgRequestUndo:
		if !h.requirePhase(client, types.PhaseGame) {
			return
		}
		h.handleRequestUndo(client)
	case protocol.MsgApproveUndo:
		if !h.requirePhase(client, types.PhaseGame) {
			return
		}
		h.handleApproveUndo(client)
	case protocol.MsgRejectUndo:
		if !h.requirePhase(client, types.PhaseGame) {
			return
		}
		h.handleRejectUndo(client)
	case protocol.MsgQuitGameSession:
		if !h.requirePhase(client, types.PhaseGame) {
			return
		}
		h.handleQuitGameSession(client)

	// 退出与错误上报，任何阶段都接受
	case protocol.MsgExitGame:
		h.handleExitGame(client)
	case protocol.MsgClientError:
		h.handleClientError(client, msg)

	default:
		log.Printf("⚠️  未知消息类型: '%s' (来自玩家: %s, ID: %s)", msg.Type, client.GetName(), client.GetID())
	}
}

// requirePhase 客户端须处于给定阶段之一，否则回错误并丢弃消息
func (h *Handler) requirePhase(client types.ClientInterface, phases ...types.ClientPhase) bool {
	current := client.GetPhase()
	for _, p := range phases {
		if current == p {
			return true
		}
	}
	client.SendMessage(protocol.NewGameSessionError("当前阶段不能执行该操作"))
	return false
}

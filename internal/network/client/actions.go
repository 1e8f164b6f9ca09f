package client

import (
	"github.com/Congyuwang/wuziqi/internal/network/protocol"
)

// --- 便捷方法 ---

// Register 上报用户名
func (c *Client) Register(name string) error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgUserName, protocol.UserNamePayload{
		Name: name,
	}))
}

// CreateRoom 创建房间，config 为 nil 时使用服务端默认对局参数
func (c *Client) CreateRoom(config *protocol.SessionConfigInfo) error {
	if config == nil {
		return c.SendMessage(protocol.MustNewMessage(protocol.MsgCreateRoom, nil))
	}
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgCreateRoom, protocol.CreateRoomPayload{
		Config: *config,
	}))
}

// JoinRoom 加入房间
func (c *Client) JoinRoom(token string) error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgJoinRoom, protocol.JoinRoomPayload{
		Token: token,
	}))
}

// QuitRoom 退出房间
func (c *Client) QuitRoom() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgQuitRoom, nil))
}

// Ready 准备
func (c *Client) Ready() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgReady, nil))
}

// Unready 取消准备
func (c *Client) Unready() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgUnready, nil))
}

// Play 落子
func (c *Client) Play(x, y int) error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgPlay, protocol.PlayPayload{
		X: x,
		Y: y,
	}))
}

// RequestUndo 请求悔棋
func (c *Client) RequestUndo() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgRequestUndo, nil))
}

// ApproveUndo 同意悔棋
func (c *Client) ApproveUndo() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgApproveUndo, nil))
}

// RejectUndo 拒绝悔棋
func (c *Client) RejectUndo() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgRejectUndo, nil))
}

// QuitGameSession 认输退出本局
func (c *Client) QuitGameSession() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgQuitGameSession, nil))
}

// Chat 发送聊天消息
func (c *Client) Chat(content string) error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgChat, protocol.ChatPayload{
		Content: content,
	}))
}

// ExitGame 退出游戏
func (c *Client) ExitGame() error {
	return c.SendMessage(protocol.MustNewMessage(protocol.MsgExitGame, nil))
}

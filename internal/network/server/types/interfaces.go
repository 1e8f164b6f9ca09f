package types

import (
	"context"

	"github.com/Congyuwang/wuziqi/internal/config"
	"github.com/Congyuwang/wuziqi/internal/network/protocol"
)

// ClientPhase 客户端所处阶段，决定哪些消息可以被处理
type ClientPhase int

const (
	PhaseAwaitName ClientPhase = iota // 连接后等待用户名
	PhaseLobby                        // 大厅，可创建/加入房间
	PhaseRoom                         // 房间内，等待双方准备
	PhaseGame                         // 对局中
)

// ServerContext 服务器上下文接口 - 避免循环依赖
type ServerContext interface {
	GetRoomManager() RoomManagerInterface
	GetLeaderboard() LeaderboardInterface
	GetGameConfig() *config.GameConfig
	GetOnlineCount() int
	UnregisterClient(id string)
}

// LeaderboardInterface 排行榜接口
type LeaderboardInterface interface {
	RecordWin(ctx context.Context, playerName string) error
	GetTop(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}

// LeaderboardEntry 排行榜条目
type LeaderboardEntry struct {
	Name string
	Wins int64
}

// RoomManagerInterface 房间管理器接口
type RoomManagerInterface interface {
	CreateRoom(client ClientInterface, cfg protocol.SessionConfigInfo) (token string, err error)
	JoinRoom(client ClientInterface, token string) error
	LeaveRoom(client ClientInterface, reason LeaveReason)
	RoomCount() int
}

// LeaveReason 玩家离开房间的原因，决定通知对手的消息类型
type LeaveReason int

const (
	LeaveQuitRoom     LeaveReason = iota // 主动退出房间
	LeaveExitGame                        // 退出游戏
	LeaveDisconnected                    // 连接断开
)

// ClientInterface 客户端接口
type ClientInterface interface {
	GetID() string
	GetName() string
	SetName(name string)
	GetRoom() string
	SetRoom(token string)
	GetPhase() ClientPhase
	SetPhase(phase ClientPhase)
	SendMessage(msg *protocol.Message)
	Close()
}

// RoomError 房间错误
type RoomError struct {
	Code    int
	Message string
}

func (e *RoomError) Error() string {
	return e.Message
}

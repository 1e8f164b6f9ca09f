package protocol

import (
	"encoding/json"

	"github.com/Congyuwang/wuziqi/internal/rule"
)

// Message 基础消息结构
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
const (
	// 连接操作
	MsgUserName MessageType = "user_name" // 设置用户名（连接后第一条消息）

	// 房间操作
	MsgCreateRoom MessageType = "create_room" // 创建房间
	MsgJoinRoom   MessageType = "join_room"   // 加入房间
	MsgQuitRoom   MessageType = "quit_room"   // 退出房间
	MsgReady      MessageType = "ready"       // 准备就绪
	MsgUnready    MessageType = "unready"     // 取消准备

	// 对局操作
	MsgPlay            MessageType = "play"              // 落子
	MsgRequestUndo     MessageType = "request_undo"      // 请求悔棋
	MsgApproveUndo     MessageType = "approve_undo"      // 同意悔棋
	MsgRejectUndo      MessageType = "reject_undo"       // 拒绝悔棋
	MsgQuitGameSession MessageType = "quit_game_session" // 中途认输退出对局

	// 其他
	MsgChat        MessageType = "chat"         // 聊天
	MsgExitGame    MessageType = "exit_game"    // 退出游戏（断开连接）
	MsgClientError MessageType = "client_error" // 客户端错误上报
)

// 服务端 → 客户端 消息类型
const (
	// 连接相关
	MsgConnectionSuccess     MessageType = "connection_success"      // 用户名登记成功
	MsgConnectionInitFailure MessageType = "connection_init_failure" // 用户名登记失败

	// 房间相关
	MsgRoomCreated                  MessageType = "room_created"                       // 房间创建成功
	MsgJoinRoomSuccess              MessageType = "join_room_success"                  // 加入房间成功
	MsgJoinRoomFailureTokenNotFound MessageType = "join_room_failure_token_not_found"  // 房间号不存在
	MsgJoinRoomFailureRoomFull      MessageType = "join_room_failure_room_full"        // 房间已满
	MsgOpponentJoinRoom             MessageType = "opponent_join_room"                 // 对手加入房间
	MsgOpponentQuitRoom             MessageType = "opponent_quit_room"                 // 对手退出房间
	MsgOpponentReady                MessageType = "opponent_ready"                     // 对手准备
	MsgOpponentUnready              MessageType = "opponent_unready"                   // 对手取消准备
	MsgRoomScores                   MessageType = "room_scores"                        // 房间比分更新
	MsgRoomClosed                   MessageType = "room_closed"                        // 房间闲置超时被关闭

	// 对局流程
	MsgGameStarted             MessageType = "game_started"               // 对局开始
	MsgFieldUpdate             MessageType = "field_update"               // 棋盘更新
	MsgUndoRequest             MessageType = "undo_request"               // 对手请求悔棋
	MsgUndo                    MessageType = "undo"                       // 悔棋生效
	MsgUndoRejectedByOpponent  MessageType = "undo_rejected_by_opponent"  // 对手拒绝悔棋
	MsgUndoTimeoutRejected     MessageType = "undo_timeout_rejected"      // 悔棋请求超时
	MsgUndoAutoRejected        MessageType = "undo_auto_rejected"         // 对手已落子，悔棋自动作废
	MsgGameEndBlackWins        MessageType = "game_end_black_wins"        // 黑方连五获胜
	MsgGameEndWhiteWins        MessageType = "game_end_white_wins"        // 白方连五获胜
	MsgGameEndBlackTimeout     MessageType = "game_end_black_timeout"     // 黑方超时判负
	MsgGameEndWhiteTimeout     MessageType = "game_end_white_timeout"     // 白方超时判负
	MsgGameEndDraw             MessageType = "game_end_draw"              // 满盘和棋
	MsgOpponentQuitGameSession MessageType = "opponent_quit_game_session" // 对手中途退出对局
	MsgOpponentExitGame        MessageType = "opponent_exit_game"         // 对手退出游戏
	MsgOpponentDisconnected    MessageType = "opponent_disconnected"      // 对手掉线

	// 错误
	MsgGameSessionError MessageType = "game_session_error" // 规则或阶段错误
)

// --- 客户端请求 Payloads ---

// UserNamePayload 设置用户名请求
type UserNamePayload struct {
	Name string `json:"name"`
}

// SessionConfigInfo 对局参数（秒，0 表示不限制）
type SessionConfigInfo struct {
	MoveTimeout        int `json:"move_timeout"`         // 每步限时
	UndoRequestTimeout int `json:"undo_request_timeout"` // 悔棋应答限时
	UndoDial           int `json:"undo_dial"`            // 每人悔棋次数上限，0 不限
}

// CreateRoomPayload 创建房间请求
type CreateRoomPayload struct {
	Config SessionConfigInfo `json:"config"`
}

// JoinRoomPayload 加入房间请求
type JoinRoomPayload struct {
	Token string `json:"token"`
}

// PlayPayload 落子请求
type PlayPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ChatPayload 聊天消息（服务端转发时填充 From）
type ChatPayload struct {
	From    string `json:"from,omitempty"`
	Content string `json:"content"`
}

// ClientErrorPayload 客户端错误上报
type ClientErrorPayload struct {
	Message string `json:"message"`
}

// --- 服务端响应 Payloads ---

// ConnectionInitFailurePayload 用户名登记失败
type ConnectionInitFailurePayload struct {
	Reason string `json:"reason"`
}

// RoomCreatedPayload 房间创建成功响应
type RoomCreatedPayload struct {
	Token string `json:"token"`
}

// OpponentInfo 对手信息
type OpponentInfo struct {
	Name  string `json:"name"`
	Ready bool   `json:"ready"`
}

// JoinRoomSuccessPayload 加入房间成功响应
type JoinRoomSuccessPayload struct {
	Token    string            `json:"token"`
	Config   SessionConfigInfo `json:"config"`
	Opponent *OpponentInfo     `json:"opponent,omitempty"`
}

// OpponentJoinRoomPayload 对手加入通知
type OpponentJoinRoomPayload struct {
	Name string `json:"name"`
}

// GameStartedPayload 对局开始通知，告知本方执子颜色
type GameStartedPayload struct {
	Color string `json:"color"` // "black" / "white"
}

// MoveInfo 单步落子信息
type MoveInfo struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Color string `json:"color"`
}

// FieldUpdatePayload 棋盘更新通知
type FieldUpdatePayload struct {
	Cells  [rule.BoardSize][rule.BoardSize]uint8 `json:"cells"` // 0=空, 1=黑, 2=白
	Latest MoveInfo                              `json:"latest"`
}

// UndoPayload 悔棋生效通知
type UndoPayload struct {
	Cells   [rule.BoardSize][rule.BoardSize]uint8 `json:"cells"`
	Latest  *MoveInfo                             `json:"latest,omitempty"` // 悔棋后的最新一手，棋盘为空时缺省
	Cleared MoveInfo                              `json:"cleared"`          // 被撤销的那一手
}

// PlayerScore 单个玩家比分
type PlayerScore struct {
	Name  string `json:"name"`
	Score uint16 `json:"score"`
}

// RoomScoresPayload 房间比分通知
type RoomScoresPayload struct {
	Scores []PlayerScore `json:"scores"`
}

// GameSessionErrorPayload 规则或阶段错误
type GameSessionErrorPayload struct {
	Message string `json:"message"`
}

package protocol

import (
	"encoding/json"

	"github.com/Congyuwang/wuziqi/internal/rule"
)

// NewMessage 创建一个新消息
func NewMessage(msgType MessageType, payload any) (*Message, error) {
	var data json.RawMessage
	if payload != nil {
		var err error
		data, err = json.Marshal(payload)
		if err != nil {
			return nil, err
		}
	}
	return &Message{
		Type:    msgType,
		Payload: data,
	}, nil
}

// MustNewMessage 创建消息，失败时 panic
func MustNewMessage(msgType MessageType, payload any) *Message {
	msg, err := NewMessage(msgType, payload)
	if err != nil {
		panic(err)
	}
	return msg
}

// Encode 将消息编码为 JSON 字节
func (m *Message) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// Decode 从 JSON 字节解码消息
func Decode(data []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// ParsePayload 解析消息的 Payload 到指定类型
func ParsePayload[T any](msg *Message) (*T, error) {
	var payload T
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// NewGameSessionError 创建规则/阶段错误消息
func NewGameSessionError(text string) *Message {
	msg, _ := NewMessage(MsgGameSessionError, GameSessionErrorPayload{Message: text})
	return msg
}

// ColorName 棋子颜色的协议表示
func ColorName(c rule.Color) string {
	return c.String()
}

// CellsOf 将棋盘快照转换为协议格式
func CellsOf(f *rule.Field) [rule.BoardSize][rule.BoardSize]uint8 {
	var cells [rule.BoardSize][rule.BoardSize]uint8
	snapshot := f.Snapshot()
	for x := 0; x < rule.BoardSize; x++ {
		for y := 0; y < rule.BoardSize; y++ {
			cells[x][y] = uint8(snapshot[x][y])
		}
	}
	return cells
}

// MoveInfoOf 将落子转换为协议格式
func MoveInfoOf(mv rule.Move) MoveInfo {
	return MoveInfo{X: mv.X, Y: mv.Y, Color: mv.Color.String()}
}

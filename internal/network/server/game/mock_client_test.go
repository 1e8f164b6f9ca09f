package game

import (
	"sync"

	"github.com/Congyuwang/wuziqi/internal/config"
	"github.com/Congyuwang/wuziqi/internal/network/protocol"
	"github.com/Congyuwang/wuziqi/internal/network/server/types"
)

// MockClient 记录收到的消息，计时器回调会并发发送，需要加锁
type MockClient struct {
	ID    string
	Name  string
	Token string
	Phase types.ClientPhase

	mu       sync.Mutex
	messages []*protocol.Message
}

func (m *MockClient) GetID() string   { return m.ID }
func (m *MockClient) GetName() string { return m.Name }
func (m *MockClient) SetName(name string) {
	m.Name = name
}

func (m *MockClient) GetRoom() string      { return m.Token }
func (m *MockClient) SetRoom(token string) { m.Token = token }

func (m *MockClient) GetPhase() types.ClientPhase      { return m.Phase }
func (m *MockClient) SetPhase(phase types.ClientPhase) { m.Phase = phase }

func (m *MockClient) SendMessage(msg *protocol.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
}

func (m *MockClient) Close() {}

// Messages 返回已收到消息的副本
func (m *MockClient) Messages() []*protocol.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*protocol.Message, len(m.messages))
	copy(out, m.messages)
	return out
}

// LastMessage 返回最后一条消息，没有则返回 nil
func (m *MockClient) LastMessage() *protocol.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.messages) == 0 {
		return nil
	}
	return m.messages[len(m.messages)-1]
}

// HasMessage 是否收到过指定类型的消息
func (m *MockClient) HasMessage(t protocol.MessageType) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, msg := range m.messages {
		if msg.Type == t {
			return true
		}
	}
	return false
}

// CountMessage 指定类型消息的数量
func (m *MockClient) CountMessage(t protocol.MessageType) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, msg := range m.messages {
		if msg.Type == t {
			n++
		}
	}
	return n
}

// MockServer 实现 types.ServerContext
type MockServer struct {
	GameCfg *config.GameConfig
	Manager types.RoomManagerInterface
}

func (s *MockServer) GetRoomManager() types.RoomManagerInterface   { return s.Manager }
func (s *MockServer) GetLeaderboard() types.LeaderboardInterface   { return nil }
func (s *MockServer) GetOnlineCount() int                          { return 0 }
func (s *MockServer) UnregisterClient(id string)                   {}
func (s *MockServer) GetGameConfig() *config.GameConfig {
	if s.GameCfg != nil {
		return s.GameCfg
	}
	return &config.Default().Game
}

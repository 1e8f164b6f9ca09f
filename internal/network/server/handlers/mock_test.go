package handlers

import (
	"sync"

	"github.com/Congyuwang/wuziqi/internal/config"
	"github.com/Congyuwang/wuziqi/internal/network/protocol"
	"github.com/Congyuwang/wuziqi/internal/network/server/types"
)

// mockClient 记录收到的消息
type mockClient struct {
	id    string
	name  string
	token string
	phase types.ClientPhase

	closed bool

	mu       sync.Mutex
	messages []*protocol.Message
}

func (m *mockClient) GetID() string                     { return m.id }
func (m *mockClient) GetName() string                   { return m.name }
func (m *mockClient) SetName(name string)               { m.name = name }
func (m *mockClient) GetRoom() string                   { return m.token }
func (m *mockClient) SetRoom(token string)              { m.token = token }
func (m *mockClient) GetPhase() types.ClientPhase       { return m.phase }
func (m *mockClient) SetPhase(phase types.ClientPhase)  { m.phase = phase }
func (m *mockClient) Close()                            { m.closed = true }

func (m *mockClient) SendMessage(msg *protocol.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
}

func (m *mockClient) lastMessage() *protocol.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.messages) == 0 {
		return nil
	}
	return m.messages[len(m.messages)-1]
}

func (m *mockClient) hasMessage(t protocol.MessageType) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, msg := range m.messages {
		if msg.Type == t {
			return true
		}
	}
	return false
}

// mockServer 实现 types.ServerContext，Manager 在 NewRoomManager 之后注入
type mockServer struct {
	manager types.RoomManagerInterface
	gameCfg *config.GameConfig
}

func (s *mockServer) GetRoomManager() types.RoomManagerInterface { return s.manager }
func (s *mockServer) GetLeaderboard() types.LeaderboardInterface { return nil }
func (s *mockServer) GetOnlineCount() int                        { return 0 }
func (s *mockServer) UnregisterClient(id string)                 {}
func (s *mockServer) GetGameConfig() *config.GameConfig {
	if s.gameCfg != nil {
		return s.gameCfg
	}
	return &config.Default().Game
}

package game

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/Congyuwang/wuziqi/internal/network/protocol"
	"github.com/Congyuwang/wuziqi/internal/network/server/types"
)

const (
	// 房间号长度
	roomTokenLength = 8
	// 房间号字符集（base32 小写）
	roomTokenChars = "abcdefghijklmnopqrstuvwxyz234567"
)

// RoomManager 房间管理器
type RoomManager struct {
	server types.ServerContext
	rooms  map[string]*Room
	mu     sync.RWMutex

	cleanInterval time.Duration
	idleTimeout   time.Duration
	stopClean     chan struct{}
}

// NewRoomManager 创建房间管理器并启动闲置房间清理协程
func NewRoomManager(s types.ServerContext) *RoomManager {
	gameCfg := s.GetGameConfig()
	rm := &RoomManager{
		server:        s,
		rooms:         make(map[string]*Room),
		cleanInterval: gameCfg.RoomCleanIntervalDuration(),
		idleTimeout:   gameCfg.RoomIdleTimeoutDuration(),
		stopClean:     make(chan struct{}),
	}

	go rm.cleanupLoop()

	return rm
}

// CreateRoom 创建房间，创建者占座位 0（黑方）
func (rm *RoomManager) CreateRoom(client types.ClientInterface, cfg protocol.SessionConfigInfo) (string, error) {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	token := rm.generateToken()

	room := &Room{
		Token:      token,
		Config:     cfg,
		CreatedAt:  time.Now(),
		lastActive: time.Now(),
		server:     rm.server,
	}
	room.Seats[0] = &RoomPlayer{Client: client}
	client.SetRoom(token)
	client.SetPhase(types.PhaseRoom)

	rm.rooms[token] = room

	log.Printf("🏠 房间 %s 已创建，玩家 %s", token, client.GetName())

	client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomCreated, protocol.RoomCreatedPayload{Token: token}))

	return token, nil
}

// JoinRoom 加入房间
func (rm *RoomManager) JoinRoom(client types.ClientInterface, token string) error {
	rm.mu.RLock()
	room, exists := rm.rooms[token]
	rm.mu.RUnlock()
	if !exists {
		return ErrRoomNotFound
	}

	return room.join(client)
}

// LeaveRoom 玩家离开所在房间，房间空了则销毁
func (rm *RoomManager) LeaveRoom(client types.ClientInterface, reason types.LeaveReason) {
	token := client.GetRoom()
	if token == "" {
		return
	}

	rm.mu.RLock()
	room, exists := rm.rooms[token]
	rm.mu.RUnlock()
	if !exists {
		return
	}

	if room.leave(client, reason) {
		rm.mu.Lock()
		delete(rm.rooms, token)
		rm.mu.Unlock()
		log.Printf("🏠 房间 %s 已解散", token)
	}
}

// GetRoom 获取房间
func (rm *RoomManager) GetRoom(token string) *Room {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return rm.rooms[token]
}

// RoomCount 当前房间数
func (rm *RoomManager) RoomCount() int {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return len(rm.rooms)
}

// Stop 停止清理协程
func (rm *RoomManager) Stop() {
	close(rm.stopClean)
}

// generateToken 生成唯一房间号。调用方持有 rm.mu
func (rm *RoomManager) generateToken() string {
	for {
		token := make([]byte, roomTokenLength)
		for i := range token {
			token[i] = roomTokenChars[rand.Intn(len(roomTokenChars))]
		}
		tokenStr := string(token)
		if _, exists := rm.rooms[tokenStr]; !exists {
			return tokenStr
		}
	}
}

// cleanupLoop 定期清理闲置房间
func (rm *RoomManager) cleanupLoop() {
	ticker := time.NewTicker(rm.cleanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rm.cleanup()
		case <-rm.stopClean:
			return
		}
	}
}

// cleanup 清理长时间无活动且不在对局中的房间
func (rm *RoomManager) cleanup() {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	now := time.Now()
	for token, room := range rm.rooms {
		room.mu.Lock()
		idle := room.session == nil && now.Sub(room.lastActive) > rm.idleTimeout
		if idle {
			for i, p := range room.Seats {
				if p != nil {
					p.Client.SetRoom("")
					p.Client.SetPhase(types.PhaseLobby)
					p.Client.SendMessage(protocol.MustNewMessage(protocol.MsgRoomClosed, nil))
					room.Seats[i] = nil
				}
			}
		}
		room.mu.Unlock()
		if idle {
			delete(rm.rooms, token)
			log.Printf("🏠 房间 %s 闲置超时已清理", token)
		}
	}
}

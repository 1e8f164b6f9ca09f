package server

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Congyuwang/wuziqi/internal/network/protocol"
	"github.com/Congyuwang/wuziqi/internal/network/server/types"
)

const (
	// 写入超时
	writeWait = 10 * time.Second

	// 读取超时（pong 等待时间）
	pongWait = 60 * time.Second

	// ping 发送间隔（必须小于 pongWait）
	pingPeriod = (pongWait * 9) / 10

	// 消息最大大小
	maxMessageSize = 4096
)

// Client 代表一个连接的玩家
type Client struct {
	ID string // 玩家唯一 ID
	IP string // 客户端 IP 地址

	server     *Server
	conn       *websocket.Conn
	send       chan []byte
	stallGrace time.Duration
	release    func() // 归还连接信号量，断开时调用一次

	done chan struct{} // 关闭时广播，避免向已关闭通道发送

	mu     sync.RWMutex
	name   string
	room   string
	phase  types.ClientPhase
	closed bool
}

// NewClient 创建新客户端，初始阶段等待用户名
func NewClient(s *Server, conn *websocket.Conn, release func()) *Client {
	return &Client{
		ID:         uuid.New().String(),
		server:     s,
		conn:       conn,
		send:       make(chan []byte, s.config.Server.SendQueueSize),
		done:       make(chan struct{}),
		stallGrace: s.config.Server.StallGraceDuration(),
		release:    release,
		phase:      types.PhaseAwaitName,
	}
}

// ReadPump 从 WebSocket 读取消息
func (c *Client) ReadPump() {
	defer func() {
		c.handleDisconnect()
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("读取错误: %v", err)
			}
			break
		}

		msg, err := protocol.Decode(message)
		if err != nil {
			log.Printf("消息解析错误: %v", err)
			c.SendMessage(protocol.NewGameSessionError("无效的消息格式"))
			continue
		}

		c.server.handler.Handle(c, msg)
	}
}

// WritePump 向 WebSocket 写入消息
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}

// SendMessage 发送消息给客户端。发送队列满时最多等待一个宽限期，
// 仍然写不进去就视为客户端失速，断开连接
func (c *Client) SendMessage(msg *protocol.Message) {
	c.mu.RLock()
	if c.closed {
		c.mu.RUnlock()
		return
	}
	c.mu.RUnlock()

	data, err := msg.Encode()
	if err != nil {
		log.Printf("消息编码错误: %v", err)
		return
	}

	select {
	case c.send <- data:
		return
	case <-c.done:
		return
	default:
	}

	select {
	case c.send <- data:
	case <-c.done:
	case <-time.After(c.stallGrace):
		log.Printf("🐌 客户端 %s 发送队列长时间拥塞，断开连接", c.ID)
		c.Close()
	}
}

// handleDisconnect 处理断开连接
func (c *Client) handleDisconnect() {
	c.server.roomManager.LeaveRoom(c, types.LeaveDisconnected)
	c.server.unregisterClient(c)
	if c.release != nil {
		c.release()
	}
}

// Close 关闭客户端连接
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.done)
	}
}

// GetID 玩家唯一 ID
func (c *Client) GetID() string { return c.ID }

// GetName 玩家昵称
func (c *Client) GetName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.name
}

// SetName 设置玩家昵称
func (c *Client) SetName(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.name = name
}

// GetRoom 获取客户端所在房间
func (c *Client) GetRoom() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.room
}

// SetRoom 设置客户端所在房间
func (c *Client) SetRoom(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.room = token
}

// GetPhase 客户端所处阶段
func (c *Client) GetPhase() types.ClientPhase {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.phase
}

// SetPhase 设置客户端所处阶段
func (c *Client) SetPhase(phase types.ClientPhase) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.phase = phase
}

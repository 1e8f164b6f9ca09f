// Package ui 实现五子棋联机对战的终端界面
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Congyuwang/wuziqi/internal/network/client"
	"github.com/Congyuwang/wuziqi/internal/network/protocol"
	"github.com/Congyuwang/wuziqi/internal/rule"
	"github.com/Congyuwang/wuziqi/internal/sound"
)

// 界面阶段
type GamePhase int

const (
	PhaseConnecting GamePhase = iota
	PhaseNameEntry
	PhaseLobby
	PhaseJoinEntry
	PhaseRoom
	PhasePlaying
	PhaseGameOver
)

// ServerMessage 服务器消息（用于 tea.Msg）
type ServerMessage struct {
	Msg *protocol.Message
}

// ConnectedMsg 连接成功消息
type ConnectedMsg struct{}

// ConnectionErrorMsg 连接错误消息
type ConnectionErrorMsg struct {
	Err error
}

// ClearErrorMsg 清除错误消息
type ClearErrorMsg struct{}

// ClearStatusMsg 清除状态提示
type ClearStatusMsg struct{}

// OnlineModel 联机对战的 model
type OnlineModel struct {
	client *client.Client
	phase  GamePhase
	error  string
	status string

	playerName string

	// 房间状态
	roomToken     string
	roomConfig    protocol.SessionConfigInfo
	opponentName  string
	opponentReady bool
	myReady       bool
	scores        []protocol.PlayerScore

	// 对局状态
	myColor      string // "black" / "white"
	turn         string // 轮到谁落子
	board        [rule.BoardSize][rule.BoardSize]uint8
	latest       *protocol.MoveInfo
	undoIncoming bool // 对方请求悔棋，等待本方应答
	undoOutgoing bool // 本方请求悔棋，等待对方应答
	resultText   string
	cursorX      int
	cursorY      int

	// 聊天
	chatHistory []string
	chatInput   textinput.Model

	// 落子计时（仅展示，裁决在服务端）
	moveTimer   timer.Model
	timerActive bool

	// Audio
	soundManager *sound.SoundManager

	// UI 组件
	input  *textinput.Model
	width  int
	height int
}

// NewOnlineModel 创建联机对战 model
func NewOnlineModel(serverURL string) *OnlineModel {
	ti := textinput.New()
	ti.Placeholder = "输入昵称..."
	ti.CharLimit = 32
	ti.Width = 24
	ti.Focus()

	chatInput := textinput.New()
	chatInput.Placeholder = "按 / 键聊天..."
	chatInput.CharLimit = 100
	chatInput.Width = 30

	return &OnlineModel{
		client:       client.NewClient(serverURL),
		phase:        PhaseConnecting,
		input:        &ti,
		chatInput:    chatInput,
		cursorX:      rule.BoardSize / 2,
		cursorY:      rule.BoardSize / 2,
		soundManager: sound.NewSoundManager(),
	}
}

func (m *OnlineModel) Init() tea.Cmd {
	// Initialize sound
	go func() {
		_ = m.soundManager.Init()
	}()

	return tea.Batch(
		m.connectToServer(),
		textinput.Blink,
	)
}

// connectToServer 连接服务器
func (m *OnlineModel) connectToServer() tea.Cmd {
	return func() tea.Msg {
		if err := m.client.Connect(); err != nil {
			return ConnectionErrorMsg{Err: err}
		}
		return ConnectedMsg{}
	}
}

// listenForMessages 监听服务器消息
func (m *OnlineModel) listenForMessages() tea.Cmd {
	return func() tea.Msg {
		msg, err := m.client.Receive()
		if err != nil {
			return ConnectionErrorMsg{Err: err}
		}
		return ServerMessage{Msg: msg}
	}
}

func (m *OnlineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		handled, returnCmd := m.handleKeyPress(msg)
		if handled {
			return m, returnCmd
		}

	case ConnectedMsg:
		m.phase = PhaseNameEntry
		cmds = append(cmds, m.listenForMessages())

	case ConnectionErrorMsg:
		m.error = "无法连接到服务器，按 ESC 退出"
		m.phase = PhaseConnecting

	case ClearErrorMsg:
		m.error = ""

	case ClearStatusMsg:
		m.status = ""

	case ServerMessage:
		cmd = m.handleServerMessage(msg.Msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		// 继续监听
		if m.client.IsConnected() {
			cmds = append(cmds, m.listenForMessages())
		}

	case timer.TimeoutMsg:
		// 计时只做展示，超时裁决由服务端下发
		m.timerActive = false
	}

	m.moveTimer, cmd = m.moveTimer.Update(msg)
	cmds = append(cmds, cmd)

	newInput, cmd := m.input.Update(msg)
	*m.input = newInput
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// restartMoveTimer 轮次切换时重置落子倒计时
func (m *OnlineModel) restartMoveTimer() tea.Cmd {
	if m.roomConfig.MoveTimeout <= 0 {
		m.timerActive = false
		return nil
	}
	m.moveTimer = timer.NewWithInterval(
		time.Duration(m.roomConfig.MoveTimeout)*time.Second, time.Second)
	m.timerActive = true
	return m.moveTimer.Init()
}

// clearStatusLater 让状态提示 3 秒后消失
func clearStatusLater() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// clearErrorLater 让错误提示 3 秒后消失
func clearErrorLater() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return ClearErrorMsg{}
	})
}

// resetBoard 清空棋盘与对局内状态
func (m *OnlineModel) resetBoard() {
	m.board = [rule.BoardSize][rule.BoardSize]uint8{}
	m.latest = nil
	m.undoIncoming = false
	m.undoOutgoing = false
	m.resultText = ""
	m.cursorX = rule.BoardSize / 2
	m.cursorY = rule.BoardSize / 2
}

// leaveRoomState 回到大厅时清理房间内状态
func (m *OnlineModel) leaveRoomState() {
	m.roomToken = ""
	m.opponentName = ""
	m.opponentReady = false
	m.myReady = false
	m.scores = nil
	m.chatHistory = nil
	m.timerActive = false
	m.resetBoard()
}

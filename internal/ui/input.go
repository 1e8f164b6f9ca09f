package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyPress 处理按键消息，返回是否已处理和命令
func (m *OnlineModel) handleKeyPress(msg tea.KeyMsg) (bool, tea.Cmd) {
	// 聊天输入框聚焦时优先处理（房间内和对局中通用）
	if m.chatInput.Focused() {
		switch msg.Type {
		case tea.KeyEnter:
			content := strings.TrimSpace(m.chatInput.Value())
			if content != "" {
				_ = m.client.Chat(content)
				m.chatHistory = append(m.chatHistory, "我: "+content)
			}
			m.chatInput.SetValue("")
			m.chatInput.Blur()
			return true, nil
		case tea.KeyEsc:
			m.chatInput.Blur()
			return true, nil
		default:
			var cmd tea.Cmd
			m.chatInput, cmd = m.chatInput.Update(msg)
			return true, cmd
		}
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		_ = m.client.ExitGame()
		m.client.Close()
		return true, tea.Quit
	case tea.KeyEsc:
		return m.handleEscKey()
	case tea.KeyEnter:
		return m.handleEnter()
	}

	switch m.phase {
	case PhaseRoom:
		return m.handleRoomKey(msg)
	case PhasePlaying:
		return m.handleGameKey(msg)
	case PhaseLobby:
		return m.handleLobbyKey(msg)
	}
	return false, nil
}

// handleEscKey 处理 ESC 键
func (m *OnlineModel) handleEscKey() (bool, tea.Cmd) {
	switch m.phase {
	case PhaseJoinEntry:
		m.phase = PhaseLobby
		m.error = ""
		m.input.Reset()
		m.input.Blur()
		return true, nil
	case PhaseRoom, PhaseGameOver:
		_ = m.client.QuitRoom()
		m.leaveRoomState()
		m.phase = PhaseLobby
		return true, nil
	case PhasePlaying:
		// 对局中 ESC 不退出，避免误操作
		m.error = "对局进行中，按 q 认输退出本局"
		return true, clearErrorLater()
	default:
		_ = m.client.ExitGame()
		m.client.Close()
		return true, tea.Quit
	}
}

// handleEnter 处理回车键
func (m *OnlineModel) handleEnter() (bool, tea.Cmd) {
	switch m.phase {
	case PhaseNameEntry:
		name := strings.TrimSpace(m.input.Value())
		if name == "" {
			m.error = "昵称不能为空"
			return true, clearErrorLater()
		}
		m.playerName = name
		_ = m.client.Register(name)
		return true, nil

	case PhaseLobby:
		switch strings.TrimSpace(m.input.Value()) {
		case "", "1":
			_ = m.client.CreateRoom(nil)
		case "2":
			m.enterJoinEntry()
		}
		m.input.Reset()
		return true, nil

	case PhaseJoinEntry:
		token := strings.ToLower(strings.TrimSpace(m.input.Value()))
		if token != "" {
			_ = m.client.JoinRoom(token)
		}
		return true, nil

	case PhasePlaying:
		return m.playAtCursor()

	case PhaseGameOver:
		// 回到房间等待下一局
		m.phase = PhaseRoom
		m.resetBoard()
		return true, nil
	}
	return false, nil
}

func (m *OnlineModel) enterJoinEntry() {
	m.phase = PhaseJoinEntry
	m.input.Reset()
	m.input.Placeholder = "输入 8 位房间号..."
	m.input.CharLimit = 8
	m.input.Focus()
}

// handleLobbyKey 大厅快捷键
func (m *OnlineModel) handleLobbyKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "1", "c":
		_ = m.client.CreateRoom(nil)
		return true, nil
	case "2", "j":
		m.enterJoinEntry()
		return true, nil
	}
	return false, nil
}

// handleRoomKey 房间内快捷键
func (m *OnlineModel) handleRoomKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "r":
		if m.myReady {
			_ = m.client.Unready()
			m.myReady = false
		} else {
			_ = m.client.Ready()
			m.myReady = true
		}
		return true, nil
	case "/":
		m.chatInput.Focus()
		return true, nil
	}
	return false, nil
}

// handleGameKey 对局中快捷键
func (m *OnlineModel) handleGameKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	// 悔棋应答模态：对方在等本方点头
	if m.undoIncoming {
		switch msg.String() {
		case "y":
			_ = m.client.ApproveUndo()
			m.undoIncoming = false
			return true, nil
		case "n":
			_ = m.client.RejectUndo()
			m.undoIncoming = false
			return true, nil
		}
	}

	switch msg.String() {
	case "up", "k":
		if m.cursorY > 0 {
			m.cursorY--
		}
		return true, nil
	case "down", "j":
		if m.cursorY < len(m.board)-1 {
			m.cursorY++
		}
		return true, nil
	case "left", "h":
		if m.cursorX > 0 {
			m.cursorX--
		}
		return true, nil
	case "right", "l":
		if m.cursorX < len(m.board)-1 {
			m.cursorX++
		}
		return true, nil
	case " ":
		return m.playAtCursor()
	case "u":
		if !m.undoOutgoing {
			_ = m.client.RequestUndo()
			m.undoOutgoing = true
		}
		return true, nil
	case "q":
		_ = m.client.QuitGameSession()
		return true, nil
	case "/":
		m.chatInput.Focus()
		return true, nil
	}
	return false, nil
}

// playAtCursor 在光标处落子
func (m *OnlineModel) playAtCursor() (bool, tea.Cmd) {
	if m.turn != m.myColor {
		m.error = "还没轮到您落子"
		return true, clearErrorLater()
	}
	if m.board[m.cursorX][m.cursorY] != 0 {
		m.error = "该位置已有棋子"
		return true, clearErrorLater()
	}
	_ = m.client.Play(m.cursorX, m.cursorY)
	return true, nil
}

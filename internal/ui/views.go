package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Congyuwang/wuziqi/internal/rule"
)

// --- 视图渲染 ---

func (m *OnlineModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string

	switch m.phase {
	case PhaseConnecting:
		content = m.connectingView()
	case PhaseNameEntry:
		content = m.nameEntryView()
	case PhaseLobby:
		content = m.lobbyView()
	case PhaseJoinEntry:
		content = m.joinEntryView()
	case PhaseRoom:
		content = m.roomView()
	case PhasePlaying, PhaseGameOver:
		content = m.gameView()
	}

	return docStyle.Render(content)
}

func (m *OnlineModel) connectingView() string {
	s := "🔌 正在连接服务器..."
	if m.error != "" {
		s += "\n\n" + errorStyle.Render(m.error)
	}
	return lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Render(s)
}

func (m *OnlineModel) nameEntryView() string {
	var sb strings.Builder

	title := titleStyle("⚫⚪ 五子棋对战")
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, "请输入昵称后回车"))
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.input.View()))
	m.appendNotices(&sb)
	return sb.String()
}

func (m *OnlineModel) lobbyView() string {
	var sb strings.Builder

	title := titleStyle("⚫⚪ 五子棋对战")
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	sb.WriteString("\n\n")

	if m.playerName != "" {
		welcome := fmt.Sprintf("欢迎, %s!", m.playerName)
		sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, welcome))
		sb.WriteString("\n\n")
	}

	menu := boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		"请选择:",
		"",
		"  1. 创建房间",
		"  2. 加入房间",
		"",
		dimStyle.Render("  ESC 退出"),
	))
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, menu))
	m.appendNotices(&sb)
	return sb.String()
}

func (m *OnlineModel) joinEntryView() string {
	var sb strings.Builder

	title := titleStyle("加入房间")
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.input.View()))
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, dimStyle.Render("ESC 返回大厅")))
	m.appendNotices(&sb)
	return sb.String()
}

func (m *OnlineModel) roomView() string {
	var sb strings.Builder

	title := titleStyle("房间 ") + tokenStyle.Render(m.roomToken)
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	sb.WriteString("\n\n")

	var lines []string
	lines = append(lines, fmt.Sprintf("%s %s", m.playerName, readyMark(m.myReady)))
	if m.opponentName != "" {
		lines = append(lines, fmt.Sprintf("%s %s", m.opponentName, readyMark(m.opponentReady)))
	} else {
		lines = append(lines, dimStyle.Render("等待对手加入..."))
	}
	if len(m.scores) > 0 {
		lines = append(lines, "", m.scoreLine())
	}
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boxStyle.Render(strings.Join(lines, "\n"))))
	sb.WriteString("\n\n")

	hint := "R 准备/取消  / 聊天  ESC 退出房间"
	sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, dimStyle.Render(hint)))

	if chat := m.renderChatBox(); chat != "" {
		sb.WriteString("\n")
		sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, chat))
	}
	if m.chatInput.Focused() {
		sb.WriteString("\n")
		sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.chatInput.View()))
	}
	m.appendNotices(&sb)
	return sb.String()
}

func (m *OnlineModel) gameView() string {
	board := m.renderBoard()
	side := m.renderSidePanel()
	content := lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", side)

	var sb strings.Builder
	sb.WriteString(content)
	m.appendNotices(&sb)
	return sb.String()
}

// renderBoard 渲染 15×15 棋盘，光标与最新一手高亮
func (m *OnlineModel) renderBoard() string {
	var sb strings.Builder

	// 列号
	sb.WriteString("   ")
	for x := 0; x < rule.BoardSize; x++ {
		sb.WriteString(fmt.Sprintf("%2d", x))
	}
	sb.WriteString("\n")

	for y := 0; y < rule.BoardSize; y++ {
		sb.WriteString(fmt.Sprintf("%2d ", y))
		for x := 0; x < rule.BoardSize; x++ {
			sb.WriteString(" ")
			sb.WriteString(m.renderPoint(x, y))
		}
		sb.WriteString("\n")
	}

	return boxStyle.Render(sb.String())
}

func (m *OnlineModel) renderPoint(x, y int) string {
	var glyph string
	switch m.board[x][y] {
	case uint8(rule.CellBlack):
		glyph = BlackStone
	case uint8(rule.CellWhite):
		glyph = WhiteStone
	default:
		glyph = EmptyPoint
	}

	if m.phase == PhasePlaying && x == m.cursorX && y == m.cursorY {
		return cursorStyle.Render(glyph)
	}
	if m.latest != nil && x == m.latest.X && y == m.latest.Y {
		return latestStyle.Render(glyph)
	}
	if m.board[x][y] == 0 {
		return dimStyle.Render(glyph)
	}
	return glyph
}

func (m *OnlineModel) renderSidePanel() string {
	var lines []string

	lines = append(lines, titleStyle("房间 ")+tokenStyle.Render(m.roomToken), "")
	lines = append(lines, fmt.Sprintf("您执%s", colorLabel(m.myColor)))

	if m.phase == PhaseGameOver {
		lines = append(lines, "", statusStyle.Render(m.resultText))
		lines = append(lines, dimStyle.Render("回车返回房间"))
	} else {
		if m.turn == m.myColor {
			lines = append(lines, statusStyle.Render("轮到您落子"))
		} else {
			lines = append(lines, dimStyle.Render(fmt.Sprintf("等待%s落子...", colorLabel(m.turn))))
		}
		if m.timerActive {
			lines = append(lines, fmt.Sprintf("⏱  %s", m.moveTimer.View()))
		}
	}

	if len(m.scores) > 0 {
		lines = append(lines, "", m.scoreLine())
	}

	if m.undoIncoming {
		lines = append(lines, "", errorStyle.Render("对方请求悔棋  Y 同意 / N 拒绝"))
	}
	if m.undoOutgoing {
		lines = append(lines, "", dimStyle.Render("悔棋请求已发出，等待对方应答..."))
	}

	if m.phase == PhasePlaying {
		lines = append(lines, "",
			dimStyle.Render("方向键移动  回车/空格落子"),
			dimStyle.Render("U 悔棋  Q 认输  / 聊天"))
	}

	if chat := m.renderChatBox(); chat != "" {
		lines = append(lines, "", chat)
	}
	if m.chatInput.Focused() {
		lines = append(lines, m.chatInput.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderChatBox 最近 5 条聊天记录
func (m *OnlineModel) renderChatBox() string {
	if len(m.chatHistory) == 0 {
		return ""
	}

	count := len(m.chatHistory)
	start := 0
	if count > 5 {
		start = count - 5
	}
	return boxStyle.Width(34).Render(strings.Join(m.chatHistory[start:], "\n"))
}

func (m *OnlineModel) scoreLine() string {
	parts := make([]string, 0, len(m.scores))
	for _, s := range m.scores {
		parts = append(parts, fmt.Sprintf("%s %d", s.Name, s.Score))
	}
	return "比分  " + strings.Join(parts, " : ")
}

// appendNotices 追加错误与状态提示行
func (m *OnlineModel) appendNotices(sb *strings.Builder) {
	if m.error != "" {
		sb.WriteString("\n\n")
		sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, errorStyle.Render(m.error)))
	}
	if m.status != "" {
		sb.WriteString("\n\n")
		sb.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, statusStyle.Render(m.status)))
	}
}

func readyMark(ready bool) string {
	if ready {
		return statusStyle.Render("已准备 ✓")
	}
	return dimStyle.Render("未准备")
}

func colorLabel(c string) string {
	if c == "black" {
		return "黑 " + BlackStone
	}
	return "白 " + WhiteStone
}

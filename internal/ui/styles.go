package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// 棋盘符号
const (
	BlackStone = "●"
	WhiteStone = "○"
	EmptyPoint = "·"
)

// Lipgloss Styles
var (
	docStyle    = lipgloss.NewStyle().Margin(1, 2)
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	tokenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("228"))
	latestStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Congyuwang/wuziqi/internal/network/protocol"
	"github.com/Congyuwang/wuziqi/internal/sound"
)

// handleServerMessage 处理服务器下发的消息
func (m *OnlineModel) handleServerMessage(msg *protocol.Message) tea.Cmd {
	switch msg.Type {
	case protocol.MsgConnectionSuccess:
		m.phase = PhaseLobby
		m.input.Reset()
		m.input.Blur()
		return nil

	case protocol.MsgConnectionInitFailure:
		if p, err := protocol.ParsePayload[protocol.ConnectionInitFailurePayload](msg); err == nil {
			m.error = p.Reason
		} else {
			m.error = "昵称不可用"
		}
		return nil

	case protocol.MsgRoomCreated:
		if p, err := protocol.ParsePayload[protocol.RoomCreatedPayload](msg); err == nil {
			m.leaveRoomState()
			m.roomToken = p.Token
			m.phase = PhaseRoom
			m.status = "房间已创建，把房间号告诉对手吧"
			return clearStatusLater()
		}
		return nil

	case protocol.MsgJoinRoomSuccess:
		if p, err := protocol.ParsePayload[protocol.JoinRoomSuccessPayload](msg); err == nil {
			m.leaveRoomState()
			m.roomToken = p.Token
			m.roomConfig = p.Config
			if p.Opponent != nil {
				m.opponentName = p.Opponent.Name
				m.opponentReady = p.Opponent.Ready
			}
			m.phase = PhaseRoom
			m.input.Reset()
			m.input.Blur()
			m.error = ""
		}
		return nil

	case protocol.MsgJoinRoomFailureTokenNotFound:
		m.error = "房间不存在，请检查房间号"
		return nil

	case protocol.MsgJoinRoomFailureRoomFull:
		m.error = "房间已满"
		return nil

	case protocol.MsgOpponentJoinRoom:
		if p, err := protocol.ParsePayload[protocol.OpponentJoinRoomPayload](msg); err == nil {
			m.opponentName = p.Name
			m.opponentReady = false
			m.status = fmt.Sprintf("%s 加入了房间", p.Name)
			return clearStatusLater()
		}
		return nil

	case protocol.MsgOpponentQuitRoom:
		m.opponentLeft("对方退出了房间")
		return clearStatusLater()

	case protocol.MsgOpponentExitGame:
		m.opponentLeft("对方退出了游戏")
		return clearStatusLater()

	case protocol.MsgOpponentDisconnected:
		m.opponentLeft("对方掉线了")
		return clearStatusLater()

	case protocol.MsgOpponentReady:
		m.opponentReady = true
		return nil

	case protocol.MsgOpponentUnready:
		m.opponentReady = false
		return nil

	case protocol.MsgRoomScores:
		if p, err := protocol.ParsePayload[protocol.RoomScoresPayload](msg); err == nil {
			m.scores = p.Scores
		}
		return nil

	case protocol.MsgRoomClosed:
		m.leaveRoomState()
		m.phase = PhaseLobby
		m.error = "房间因长时间无人对局被关闭"
		return nil

	case protocol.MsgGameStarted:
		if p, err := protocol.ParsePayload[protocol.GameStartedPayload](msg); err == nil {
			m.resetBoard()
			m.myColor = p.Color
			m.turn = "black"
			m.myReady = false
			m.opponentReady = false
			m.phase = PhasePlaying
			m.soundManager.Play(sound.SoundStart)
			return m.restartMoveTimer()
		}
		return nil

	case protocol.MsgFieldUpdate:
		if p, err := protocol.ParsePayload[protocol.FieldUpdatePayload](msg); err == nil {
			m.board = p.Cells
			m.latest = &p.Latest
			m.turn = opponentColor(p.Latest.Color)
			m.soundManager.Play(sound.SoundPlace)
			return m.restartMoveTimer()
		}
		return nil

	case protocol.MsgUndoRequest:
		m.undoIncoming = true
		return nil

	case protocol.MsgUndo:
		if p, err := protocol.ParsePayload[protocol.UndoPayload](msg); err == nil {
			m.board = p.Cells
			m.latest = p.Latest
			m.turn = p.Cleared.Color
			m.undoIncoming = false
			m.undoOutgoing = false
			m.status = "悔棋成功"
			return tea.Batch(m.restartMoveTimer(), clearStatusLater())
		}
		return nil

	case protocol.MsgUndoRejectedByOpponent:
		m.undoOutgoing = false
		m.status = "对方拒绝了悔棋请求"
		return tea.Batch(m.restartMoveTimer(), clearStatusLater())

	case protocol.MsgUndoTimeoutRejected:
		m.undoIncoming = false
		m.undoOutgoing = false
		m.status = "悔棋请求超时，自动拒绝"
		return tea.Batch(m.restartMoveTimer(), clearStatusLater())

	case protocol.MsgUndoAutoRejected:
		m.undoIncoming = false
		m.undoOutgoing = false
		m.status = "对方已落子，悔棋请求作废"
		return tea.Batch(m.restartMoveTimer(), clearStatusLater())

	case protocol.MsgGameEndBlackWins:
		return m.gameEnded("black", "黑方五连获胜")
	case protocol.MsgGameEndWhiteWins:
		return m.gameEnded("white", "白方五连获胜")
	case protocol.MsgGameEndBlackTimeout:
		return m.gameEnded("white", "黑方超时，白方获胜")
	case protocol.MsgGameEndWhiteTimeout:
		return m.gameEnded("black", "白方超时，黑方获胜")
	case protocol.MsgGameEndDraw:
		return m.gameEnded("", "棋盘已满，平局")

	case protocol.MsgOpponentQuitGameSession:
		m.resultText = "对方退出了本局"
		m.phase = PhaseGameOver
		m.timerActive = false
		m.undoIncoming = false
		m.undoOutgoing = false
		return nil

	case protocol.MsgChat:
		if p, err := protocol.ParsePayload[protocol.ChatPayload](msg); err == nil {
			m.chatHistory = append(m.chatHistory, fmt.Sprintf("%s: %s", p.From, p.Content))
			m.soundManager.Play(sound.SoundChat)
		}
		return nil

	case protocol.MsgGameSessionError:
		if p, err := protocol.ParsePayload[protocol.GameSessionErrorPayload](msg); err == nil {
			m.error = p.Message
			return clearErrorLater()
		}
		return nil
	}

	return nil
}

// opponentLeft 对手离开：本方升为房主（执黑），准备态清零
func (m *OnlineModel) opponentLeft(note string) {
	m.opponentName = ""
	m.opponentReady = false
	m.myReady = false
	m.timerActive = false
	m.resetBoard()
	if m.phase == PhasePlaying || m.phase == PhaseGameOver {
		m.phase = PhaseRoom
	}
	m.status = note
}

// gameEnded 处理终局消息，winner 为空表示平局
func (m *OnlineModel) gameEnded(winner, text string) tea.Cmd {
	m.resultText = text
	m.phase = PhaseGameOver
	m.timerActive = false
	m.undoIncoming = false
	m.undoOutgoing = false
	switch {
	case winner == "":
		// 平局不响胜负音效
	case winner == m.myColor:
		m.soundManager.Play(sound.SoundWin)
	default:
		m.soundManager.Play(sound.SoundLose)
	}
	return nil
}

func opponentColor(c string) string {
	if c == "black" {
		return "white"
	}
	return "black"
}

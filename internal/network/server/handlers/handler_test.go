package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Congyuwang/wuziqi/internal/network/protocol"
	"github.com/Congyuwang/wuziqi/internal/network/server/game"
	"github.com/Congyuwang/wuziqi/internal/network/server/types"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	srv := &mockServer{}
	rm := game.NewRoomManager(srv)
	t.Cleanup(rm.Stop)
	srv.manager = rm
	return NewHandler(srv)
}

func TestHandleUserName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantType protocol.MessageType
		wantPhase types.ClientPhase
	}{
		{name: "valid", input: "Alice", wantType: protocol.MsgConnectionSuccess, wantPhase: types.PhaseLobby},
		{name: "empty", input: "", wantType: protocol.MsgConnectionInitFailure, wantPhase: types.PhaseAwaitName},
		{name: "whitespace only", input: "   ", wantType: protocol.MsgConnectionInitFailure, wantPhase: types.PhaseAwaitName},
		{name: "too long", input: "一二三四五六七八九十一二三四五六七八九十一二三四五六七八九十一二三", wantType: protocol.MsgConnectionInitFailure, wantPhase: types.PhaseAwaitName},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newTestHandler(t)
			client := &mockClient{id: "c1", phase: types.PhaseAwaitName}
			h.Handle(client, protocol.MustNewMessage(protocol.MsgUserName, protocol.UserNamePayload{Name: tt.input}))

			require.NotNil(t, client.lastMessage())
			assert.Equal(t, tt.wantType, client.lastMessage().Type)
			assert.Equal(t, tt.wantPhase, client.phase)
		})
	}
}

func TestPhaseFiltering(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	// 未登记用户名不能创建房间
	client := &mockClient{id: "c1", phase: types.PhaseAwaitName}
	h.Handle(client, protocol.MustNewMessage(protocol.MsgCreateRoom, nil))
	require.NotNil(t, client.lastMessage())
	assert.Equal(t, protocol.MsgGameSessionError, client.lastMessage().Type)

	// 大厅中不能落子
	client.phase = types.PhaseLobby
	h.Handle(client, protocol.MustNewMessage(protocol.MsgPlay, protocol.PlayPayload{X: 7, Y: 7}))
	assert.Equal(t, protocol.MsgGameSessionError, client.lastMessage().Type)

	// 已登记后重复登记回初始化失败
	h.Handle(client, protocol.MustNewMessage(protocol.MsgUserName, protocol.UserNamePayload{Name: "again"}))
	require.NotNil(t, client.lastMessage())
	assert.Equal(t, protocol.MsgConnectionInitFailure, client.lastMessage().Type)
	reason, err := protocol.ParsePayload[protocol.ConnectionInitFailurePayload](client.lastMessage())
	require.NoError(t, err)
	assert.Equal(t, "用户名已设置", reason.Reason)
	assert.Equal(t, types.PhaseLobby, client.phase)
}

func TestCreateRoomWithDefaults(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	client := &mockClient{id: "c1", name: "Alice", phase: types.PhaseLobby}

	// 不携带参数时使用服务端默认对局参数
	h.Handle(client, protocol.MustNewMessage(protocol.MsgCreateRoom, nil))

	require.True(t, client.hasMessage(protocol.MsgRoomCreated))
	assert.Equal(t, types.PhaseRoom, client.phase)

	room := h.roomOf(client)
	require.NotNil(t, room)
	assert.Equal(t, 60, room.Config.MoveTimeout)
	assert.Equal(t, 3, room.Config.UndoDial)
}

func TestCreateRoomWithConfig(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	client := &mockClient{id: "c1", name: "Alice", phase: types.PhaseLobby}

	h.Handle(client, protocol.MustNewMessage(protocol.MsgCreateRoom, protocol.CreateRoomPayload{
		Config: protocol.SessionConfigInfo{MoveTimeout: 120, UndoRequestTimeout: 15, UndoDial: 1},
	}))

	room := h.roomOf(client)
	require.NotNil(t, room)
	assert.Equal(t, 120, room.Config.MoveTimeout)
	assert.Equal(t, 15, room.Config.UndoRequestTimeout)
	assert.Equal(t, 1, room.Config.UndoDial)
}

func TestCreateRoomNegativeConfig(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	client := &mockClient{id: "c1", name: "Alice", phase: types.PhaseLobby}

	h.Handle(client, protocol.MustNewMessage(protocol.MsgCreateRoom, protocol.CreateRoomPayload{
		Config: protocol.SessionConfigInfo{MoveTimeout: -1},
	}))

	assert.Equal(t, protocol.MsgGameSessionError, client.lastMessage().Type)
	assert.Equal(t, types.PhaseLobby, client.phase)
}

func TestJoinRoomFailures(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)

	joiner := &mockClient{id: "c2", name: "Bob", phase: types.PhaseLobby}
	h.Handle(joiner, protocol.MustNewMessage(protocol.MsgJoinRoom, protocol.JoinRoomPayload{Token: "nosuchtk"}))
	assert.Equal(t, protocol.MsgJoinRoomFailureTokenNotFound, joiner.lastMessage().Type)

	// 建满一个房间再加入
	creator := &mockClient{id: "c1", name: "Alice", phase: types.PhaseLobby}
	h.Handle(creator, protocol.MustNewMessage(protocol.MsgCreateRoom, nil))
	token := creator.GetRoom()
	require.NotEmpty(t, token)

	second := &mockClient{id: "c3", name: "Carol", phase: types.PhaseLobby}
	h.Handle(second, protocol.MustNewMessage(protocol.MsgJoinRoom, protocol.JoinRoomPayload{Token: token}))
	require.True(t, second.hasMessage(protocol.MsgJoinRoomSuccess))

	h.Handle(joiner, protocol.MustNewMessage(protocol.MsgJoinRoom, protocol.JoinRoomPayload{Token: token}))
	assert.Equal(t, protocol.MsgJoinRoomFailureRoomFull, joiner.lastMessage().Type)
}

// setupGame 通过处理器走完建房、加入、双方准备的完整流程
func setupGame(t *testing.T, h *Handler) (*mockClient, *mockClient) {
	t.Helper()

	black := &mockClient{id: "c1", phase: types.PhaseAwaitName}
	white := &mockClient{id: "c2", phase: types.PhaseAwaitName}
	h.Handle(black, protocol.MustNewMessage(protocol.MsgUserName, protocol.UserNamePayload{Name: "Alice"}))
	h.Handle(white, protocol.MustNewMessage(protocol.MsgUserName, protocol.UserNamePayload{Name: "Bob"}))

	h.Handle(black, protocol.MustNewMessage(protocol.MsgCreateRoom, protocol.CreateRoomPayload{
		Config: protocol.SessionConfigInfo{},
	}))
	h.Handle(white, protocol.MustNewMessage(protocol.MsgJoinRoom, protocol.JoinRoomPayload{Token: black.GetRoom()}))
	h.Handle(black, protocol.MustNewMessage(protocol.MsgReady, nil))
	h.Handle(white, protocol.MustNewMessage(protocol.MsgReady, nil))

	require.True(t, black.hasMessage(protocol.MsgGameStarted))
	require.True(t, white.hasMessage(protocol.MsgGameStarted))
	return black, white
}

func TestFullGameFlow(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	black, white := setupGame(t, h)

	h.Handle(black, protocol.MustNewMessage(protocol.MsgPlay, protocol.PlayPayload{X: 7, Y: 7}))
	assert.True(t, black.hasMessage(protocol.MsgFieldUpdate))
	assert.True(t, white.hasMessage(protocol.MsgFieldUpdate))

	// 悔棋往返
	h.Handle(black, protocol.MustNewMessage(protocol.MsgRequestUndo, nil))
	require.True(t, white.hasMessage(protocol.MsgUndoRequest))
	h.Handle(white, protocol.MustNewMessage(protocol.MsgApproveUndo, nil))
	assert.True(t, black.hasMessage(protocol.MsgUndo))

	// 对局中聊天
	h.Handle(white, protocol.MustNewMessage(protocol.MsgChat, protocol.ChatPayload{Content: "快点"}))
	assert.True(t, black.hasMessage(protocol.MsgChat))
}

func TestQuitGameSessionFlow(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	black, white := setupGame(t, h)

	h.Handle(white, protocol.MustNewMessage(protocol.MsgQuitGameSession, nil))
	assert.True(t, black.hasMessage(protocol.MsgOpponentQuitGameSession))
	assert.Equal(t, types.PhaseRoom, black.phase)
	assert.Equal(t, types.PhaseRoom, white.phase)
}

func TestExitGameFlow(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	black, white := setupGame(t, h)

	h.Handle(white, protocol.MustNewMessage(protocol.MsgExitGame, nil))
	assert.True(t, white.closed)
	assert.True(t, black.hasMessage(protocol.MsgOpponentExitGame))
	assert.Empty(t, white.GetRoom())
}

func TestQuitRoomFlow(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	creator := &mockClient{id: "c1", name: "Alice", phase: types.PhaseLobby}
	h.Handle(creator, protocol.MustNewMessage(protocol.MsgCreateRoom, nil))
	require.Equal(t, types.PhaseRoom, creator.phase)

	h.Handle(creator, protocol.MustNewMessage(protocol.MsgQuitRoom, nil))
	assert.Empty(t, creator.GetRoom())
	assert.Equal(t, types.PhaseLobby, creator.phase)
}

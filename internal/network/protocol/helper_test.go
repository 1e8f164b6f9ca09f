package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Congyuwang/wuziqi/internal/rule"
)

func TestMessageRoundTrip(t *testing.T) {
	t.Parallel()

	msg, err := NewMessage(MsgPlay, PlayPayload{X: 7, Y: 8})
	require.NoError(t, err)

	data, err := msg.Encode()
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, MsgPlay, decoded.Type)

	payload, err := ParsePayload[PlayPayload](decoded)
	require.NoError(t, err)
	assert.Equal(t, 7, payload.X)
	assert.Equal(t, 8, payload.Y)
}

func TestNewMessageNilPayload(t *testing.T) {
	t.Parallel()

	msg, err := NewMessage(MsgReady, nil)
	require.NoError(t, err)
	assert.Nil(t, msg.Payload)

	data, err := msg.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"ready"}`, string(data))
}

func TestDecodeInvalid(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte("not json"))
	assert.Error(t, err)
}

func TestNewGameSessionError(t *testing.T) {
	t.Parallel()

	msg := NewGameSessionError("还没轮到您落子")
	assert.Equal(t, MsgGameSessionError, msg.Type)

	payload, err := ParsePayload[GameSessionErrorPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, "还没轮到您落子", payload.Message)
}

func TestCellsOf(t *testing.T) {
	t.Parallel()

	f := rule.NewField()
	require.NoError(t, f.Place(rule.ColorBlack, 7, 7))
	require.NoError(t, f.Place(rule.ColorWhite, 8, 8))

	cells := CellsOf(f)
	assert.Equal(t, uint8(1), cells[7][7])
	assert.Equal(t, uint8(2), cells[8][8])
	assert.Equal(t, uint8(0), cells[0][0])
}

func TestMoveInfoOf(t *testing.T) {
	t.Parallel()

	info := MoveInfoOf(rule.Move{X: 3, Y: 4, Color: rule.ColorWhite})
	assert.Equal(t, MoveInfo{X: 3, Y: 4, Color: "white"}, info)
}

package game

import (
	"github.com/Congyuwang/wuziqi/internal/network/server/types"
)

// RoomError type alias
type RoomError = types.RoomError

// 错误码
const (
	ErrCodeRoomNotFound = 2001
	ErrCodeRoomFull     = 2002
	ErrCodeNotInRoom    = 2003
)

// Error variables
var (
	ErrRoomNotFound = &RoomError{Code: ErrCodeRoomNotFound, Message: "房间不存在"}
	ErrRoomFull     = &RoomError{Code: ErrCodeRoomFull, Message: "房间已满"}
	ErrNotInRoom    = &RoomError{Code: ErrCodeNotInRoom, Message: "您不在房间中"}
)

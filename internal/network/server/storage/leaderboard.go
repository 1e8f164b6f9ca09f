package storage

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/Congyuwang/wuziqi/internal/network/server/types"
)

// Redis key
const winsKey = "wuziqi:leaderboard:wins"

// LeaderboardManager 胜局排行榜，以玩家名为维度累计跨房间的胜局数
type LeaderboardManager struct {
	redis *redis.Client
}

// NewLeaderboardManager 创建排行榜管理器
func NewLeaderboardManager(client *redis.Client) *LeaderboardManager {
	return &LeaderboardManager{redis: client}
}

// RecordWin 记录一场胜局
func (lm *LeaderboardManager) RecordWin(ctx context.Context, playerName string) error {
	return lm.redis.ZIncrBy(ctx, winsKey, 1, playerName).Err()
}

// GetTop 按胜局数从高到低返回前 limit 名
func (lm *LeaderboardManager) GetTop(ctx context.Context, limit int) ([]types.LeaderboardEntry, error) {
	if limit <= 0 {
		return nil, nil
	}

	members, err := lm.redis.ZRevRangeWithScores(ctx, winsKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]types.LeaderboardEntry, 0, len(members))
	for _, m := range members {
		name, ok := m.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, types.LeaderboardEntry{
			Name: name,
			Wins: int64(m.Score),
		})
	}
	return entries, nil
}

package cache

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const leaderboardKey = "pointmax:leaderboard:lifetime"

// LeaderboardStorage 终身积分排行榜，按累计积分降序
type LeaderboardStorage struct {
	redis *redis.Client
}

func NewLeaderboardStorage(redis *redis.Client) *LeaderboardStorage {
	return &LeaderboardStorage{redis: redis}
}

// IncrScore 入账成功后累加排行榜分数
func (l *LeaderboardStorage) IncrScore(ctx context.Context, userID uint64, delta int64) error {
	return l.redis.ZIncrBy(ctx, leaderboardKey, float64(delta), formatUserID(userID)).Err()
}

// Rank 用户名次（1 开始），未上榜返回 0
func (l *LeaderboardStorage) Rank(ctx context.Context, userID uint64) (int64, error) {
	rank, err := l.redis.ZRevRank(ctx, leaderboardKey, formatUserID(userID)).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return rank + 1, nil
}

// TopN 前 N 名及其分数
func (l *LeaderboardStorage) TopN(ctx context.Context, n int64) ([]Entry, error) {
	items, err := l.redis.ZRevRangeWithScores(ctx, leaderboardKey, 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		member, ok := item.Member.(string)
		if !ok {
			continue
		}
		uid, err := strconv.ParseUint(member, 10, 64)
		if err != nil {
			continue
		}
		entries = append(entries, Entry{UserID: uid, Score: int64(item.Score)})
	}
	return entries, nil
}

type Entry struct {
	UserID uint64
	Score  int64
}

func formatUserID(userID uint64) string {
	return strconv.FormatUint(userID, 10)
}

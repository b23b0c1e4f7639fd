package service

import (
	"context"
	"errors"
	"fmt"
	"pointmax/dao"
	"pointmax/dao/cache"
	"pointmax/types"

	"gorm.io/gorm"
)

// RankingService 终身积分排行榜读侧，数据由入账时写入 Redis ZSET
type RankingService struct {
	AccountDAO  *dao.Account
	Leaderboard *cache.LeaderboardStorage
}

var _ IRankingService = (*RankingService)(nil)

type IRankingService interface {
	TopN(ctx context.Context, n int64) ([]types.LeaderboardEntry, error)
	MyRank(ctx context.Context, userID uint64) (*types.MyRank, error)
}

func (s *RankingService) TopN(ctx context.Context, n int64) ([]types.LeaderboardEntry, error) {
	if n <= 0 || n > 100 {
		n = 10
	}

	raw, err := s.Leaderboard.TopN(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("读取排行榜失败: %w", err)
	}

	entries := make([]types.LeaderboardEntry, 0, len(raw))
	for i, e := range raw {
		username := ""
		acc, err := s.AccountDAO.GetByID(ctx, e.UserID)
		if err == nil {
			username = acc.Username
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		entries = append(entries, types.LeaderboardEntry{
			Position: int64(i) + 1,
			UserID:   e.UserID,
			Username: username,
			Points:   e.Score,
		})
	}
	return entries, nil
}

func (s *RankingService) MyRank(ctx context.Context, userID uint64) (*types.MyRank, error) {
	acc, err := s.AccountDAO.GetByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}

	position, err := s.Leaderboard.Rank(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("读取排行榜名次失败: %w", err)
	}

	tier := RankFor(acc.RankPoints)
	return &types.MyRank{
		Position:       position,
		TotalPoints:    acc.TotalPoints,
		Rank:           tier.Name,
		RankMultiplier: tier.Multiplier,
	}, nil
}

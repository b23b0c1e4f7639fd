package service

import (
	"context"
	"errors"
	"fmt"
	"pointmax/config"
	"pointmax/dao"
	"pointmax/models"
	"pointmax/pkg/log"
	"pointmax/types"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DailyService 每日签到：连续登录天数驱动阶梯奖励
type DailyService struct {
	Config       *config.Config
	DB           *gorm.DB
	AccountDAO   *dao.Account
	DailyDAO     *dao.Daily
	Cache        *AccountCache
	Ledger       ILedgerService
	Achievements IAchievementService
}

var _ IDailyService = (*DailyService)(nil)

type IDailyService interface {
	Claim(ctx context.Context, userID uint64) (*types.DailyBonusResult, error)
}

// Claim 同一 UTC 日历日只能领一次。昨天领过则连击 +1，否则连击重置为 1。
// 奖励入账凭 daily:<userID>:<日期> 单号天然幂等。
func (s *DailyService) Claim(ctx context.Context, userID uint64) (*types.DailyBonusResult, error) {
	now := time.Now().UTC()
	today := now.Format("2006-01-02")
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")

	acc, err := s.AccountDAO.GetByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	if acc.LastBonusDate == today {
		return nil, ErrAlreadyClaimed
	}

	from, to := dayWindow(now)
	claimed, err := s.DailyDAO.HasClaimedBetween(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("查询签到记录失败: %w", err)
	}
	if claimed {
		return nil, ErrAlreadyClaimed
	}

	streak := 1
	if acc.LastBonusDate == yesterday {
		streak = acc.ConsecutiveLoginDays + 1
	}
	points := dailyBonusPoints(s.Config.Rewards.DailyBonusSchedule, streak)

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		accounts := s.AccountDAO.Tx(tx)
		daily := s.DailyDAO.Tx(tx)

		if err := accounts.UpdateLoginStreak(ctx, userID, streak, today); err != nil {
			return fmt.Errorf("更新连续登录天数失败: %w", err)
		}
		return daily.CreateClaim(ctx, &models.DailyBonus{
			UserID:    userID,
			DayNumber: streak,
			Points:    points,
		})
	})
	if err != nil {
		return nil, err
	}
	s.Cache.Invalidate(userID)

	sourceID := fmt.Sprintf("daily:%d:%s", userID, today)
	remark := fmt.Sprintf("Day %d 签到奖励", streak)
	if _, err := s.Ledger.Credit(ctx, userID, points, models.CategoryDaily, sourceID, remark); err != nil {
		if !errors.Is(err, ErrDuplicateSource) {
			return nil, fmt.Errorf("%w: 签到奖励未入账: %v", ErrPartiallyApplied, err)
		}
	}

	// 连击天数已刷新，weekly_login/habit_formed 等在这里跨过阈值
	if _, err := s.Achievements.Evaluate(ctx, userID); err != nil {
		log.L.Warn("achievement evaluate after daily claim failed",
			zap.Uint64("user_id", userID), zap.Error(err))
	}

	return &types.DailyBonusResult{
		DayNumber: streak,
		Points:    points,
	}, nil
}

// dailyBonusPoints 连击第 N 天的奖励，超出表长按最后一档
func dailyBonusPoints(schedule []int64, day int) int64 {
	if day < 1 {
		day = 1
	}
	if day > len(schedule) {
		day = len(schedule)
	}
	return schedule[day-1]
}

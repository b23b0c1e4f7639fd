package service

import (
	"context"
	"errors"
	"fmt"
	"pointmax/dao"
	"pointmax/models"
	"pointmax/pkg/log"
	"pointmax/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AchievementService 成就解锁是单向状态机：Locked -> Unlocked，不可回退。
type AchievementService struct {
	AccountDAO     *dao.Account
	AchievementDAO *dao.Achievement
	Ledger         ILedgerService
}

var _ IAchievementService = (*AchievementService)(nil)

type IAchievementService interface {
	Evaluate(ctx context.Context, userID uint64) ([]types.UnlockedAchievement, error)
	ListByUser(ctx context.Context, userID uint64) ([]types.AchievementStatus, error)
}

// Evaluate 按目录逐条检查指标阈值，满足且未解锁的依次发奖。
// 解锁记录先于奖励入账落库：重复评估时记录已存在，不会二次发奖。
// 记录写入后奖励入账失败，返回 ErrPartiallyApplied 而不是假装成功；
// 丢失的奖励由带外任务凭 achievement 业务单号补发。
func (s *AchievementService) Evaluate(ctx context.Context, userID uint64) ([]types.UnlockedAchievement, error) {
	acc, err := s.AccountDAO.GetByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}

	unlocked := make([]types.UnlockedAchievement, 0)
	for _, def := range models.AchievementCatalog {
		if metricValue(acc, def.Metric) < def.Threshold {
			continue
		}

		exists, err := s.AchievementDAO.IsUnlocked(ctx, userID, def.Name)
		if err != nil {
			return unlocked, fmt.Errorf("查询成就解锁记录失败: %w", err)
		}
		if exists {
			continue
		}

		// 先落解锁记录（去重闸门），后发奖
		if err := s.AchievementDAO.CreateUnlock(ctx, &models.AchievementUnlock{
			UserID:        userID,
			Name:          def.Name,
			AwardedPoints: def.BonusPoints,
		}); err != nil {
			// 唯一索引冲突说明并发评估已处理过，跳过即可
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				continue
			}
			return unlocked, fmt.Errorf("创建成就解锁记录失败: %w", err)
		}

		sourceID := fmt.Sprintf("achievement:%d:%s", userID, def.Name)
		remark := "成就解锁: " + def.Name
		if _, err := s.Ledger.Credit(ctx, userID, def.BonusPoints, models.CategoryAchievement, sourceID, remark); err != nil {
			if errors.Is(err, ErrDuplicateSource) {
				continue
			}
			log.L.Error("achievement bonus credit failed after unlock",
				zap.Uint64("user_id", userID),
				zap.String("achievement", def.Name),
				zap.Error(err),
			)
			return unlocked, fmt.Errorf("%w: %s 奖励未入账: %v", ErrPartiallyApplied, def.Name, err)
		}

		unlocked = append(unlocked, types.UnlockedAchievement{
			Name:        def.Name,
			Icon:        def.Icon,
			BonusPoints: def.BonusPoints,
		})
	}
	return unlocked, nil
}

func (s *AchievementService) ListByUser(ctx context.Context, userID uint64) ([]types.AchievementStatus, error) {
	unlocks, err := s.AchievementDAO.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	unlockedAt := make(map[string]string, len(unlocks))
	for _, u := range unlocks {
		unlockedAt[u.Name] = u.UnlockedAt.Format("2006-01-02 15:04:05")
	}

	statuses := make([]types.AchievementStatus, 0, len(models.AchievementCatalog))
	for _, def := range models.AchievementCatalog {
		at, ok := unlockedAt[def.Name]
		statuses = append(statuses, types.AchievementStatus{
			Name:        def.Name,
			Metric:      def.Metric.String(),
			Threshold:   def.Threshold,
			BonusPoints: def.BonusPoints,
			Icon:        def.Icon,
			Unlocked:    ok,
			UnlockedAt:  at,
		})
	}
	return statuses, nil
}

// metricValue 成就指标取值，新增指标时这里必须补全
func metricValue(acc *models.Account, metric models.Metric) int64 {
	switch metric {
	case models.MetricLifetimePoints:
		return acc.TotalPoints
	case models.MetricLoginStreak:
		return int64(acc.ConsecutiveLoginDays)
	case models.MetricExchangeCount:
		return int64(acc.ExchangeCount)
	case models.MetricReferralCount:
		return int64(acc.TotalReferrals)
	}
	return 0
}

package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"pointmax/config"
	"pointmax/dao"
	"pointmax/models"
	"pointmax/pkg/log"
	"pointmax/types"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GachaService 每日限次的加权随机抽奖
type GachaService struct {
	Config       *config.Config
	DB           *gorm.DB
	GachaDAO     *dao.Gacha
	Ledger       ILedgerService
	Achievements IAchievementService
}

var _ IGachaService = (*GachaService)(nil)

type IGachaService interface {
	CanPlay(ctx context.Context, userID uint64) (bool, int, error)
	Play(ctx context.Context, userID uint64) (*types.GachaResult, error)
}

func init() {
	if err := ValidatePrizeTable(models.DefaultPrizeTable); err != nil {
		panic(err)
	}
}

// ValidatePrizeTable 概率合计必须为 1.0（容忍浮点误差）
func ValidatePrizeTable(table []models.GachaPrize) error {
	if len(table) == 0 {
		return errors.New("奖品表不能为空")
	}
	var sum float64
	for _, p := range table {
		if p.Probability < 0 {
			return fmt.Errorf("奖品 %dpt 概率为负", p.Points)
		}
		sum += p.Probability
	}
	if math.Abs(sum-1.0) > 1e-6 {
		return fmt.Errorf("奖品概率合计 %f != 1.0", sum)
	}
	return nil
}

// DrawPrize 按声明顺序累计概率选取：取第一个累计概率 >= r 的条目。
// 浮点截断导致 r 没命中任何区间时落到最后一项，抽取永不失败。
func DrawPrize(table []models.GachaPrize, r float64) models.GachaPrize {
	var cumulative float64
	for _, p := range table {
		cumulative += p.Probability
		if r <= cumulative {
			return p
		}
	}
	return table[len(table)-1]
}

// CanPlay 当日（UTC 日历日）抽奖次数未达上限
func (s *GachaService) CanPlay(ctx context.Context, userID uint64) (bool, int, error) {
	from, to := dayWindow(time.Now().UTC())
	count, err := s.GachaDAO.CountBetween(ctx, userID, from, to)
	if err != nil {
		return false, 0, fmt.Errorf("统计当日抽奖次数失败: %w", err)
	}
	remaining := s.Config.Rewards.GachaDailyQuota - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return remaining > 0, remaining, nil
}

// Play 抽奖并入账。抽奖记录先落库（配额占用），再发奖励；
// 奖励入账失败返回部分生效信号，可凭 gacha:<playID> 单号补发。
func (s *GachaService) Play(ctx context.Context, userID uint64) (*types.GachaResult, error) {
	prize := DrawPrize(models.DefaultPrizeTable, rand.Float64())

	play := models.GachaPlay{
		UserID: userID,
		Points: prize.Points,
		Rarity: prize.Rarity,
	}
	// 配额占用放事务内：先落记录再数当日条数，超限整体回滚。
	// 单独先查后写的话，并发抽奖会一起挤进最后一个名额。
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		plays := s.GachaDAO.Tx(tx)
		if err := plays.CreatePlay(ctx, &play); err != nil {
			return fmt.Errorf("记录抽奖历史失败: %w", err)
		}
		from, to := dayWindow(time.Now().UTC())
		count, err := plays.CountBetween(ctx, userID, from, to)
		if err != nil {
			return fmt.Errorf("统计当日抽奖次数失败: %w", err)
		}
		if count > int64(s.Config.Rewards.GachaDailyQuota) {
			return ErrQuotaExceeded
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sourceID := fmt.Sprintf("gacha:%d", play.ID)
	remark := fmt.Sprintf("抽奖奖励（%s）", prize.Rarity)
	if _, err := s.Ledger.Credit(ctx, userID, prize.Points, models.CategoryGacha, sourceID, remark); err != nil {
		if !errors.Is(err, ErrDuplicateSource) {
			log.L.Error("gacha prize credit failed after play recorded",
				zap.Uint64("user_id", userID),
				zap.Uint64("play_id", play.ID),
				zap.Error(err),
			)
			return nil, fmt.Errorf("%w: 抽奖奖励未入账: %v", ErrPartiallyApplied, err)
		}
	}

	// 奖励已入账，按最新累计积分重评成就（失败不影响本次抽奖）
	if _, err := s.Achievements.Evaluate(ctx, userID); err != nil {
		log.L.Warn("achievement evaluate after gacha failed",
			zap.Uint64("user_id", userID), zap.Error(err))
	}

	_, remaining, err := s.CanPlay(ctx, userID)
	if err != nil {
		remaining = 0
	}

	return &types.GachaResult{
		Points:         prize.Points,
		Rarity:         string(prize.Rarity),
		RemainingToday: remaining,
	}, nil
}

// dayWindow UTC 日历日窗口 [from, to)
func dayWindow(now time.Time) (time.Time, time.Time) {
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return from, from.Add(24 * time.Hour)
}

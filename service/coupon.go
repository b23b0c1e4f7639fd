package service

import (
	"context"
	"errors"
	"fmt"
	"pointmax/dao"
	"pointmax/models"
	"pointmax/pkg/log"
	"pointmax/types"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CouponService 优惠码兑换积分
type CouponService struct {
	CouponDAO    *dao.Coupon
	Ledger       ILedgerService
	Achievements IAchievementService
}

var _ ICouponService = (*CouponService)(nil)

type ICouponService interface {
	Use(ctx context.Context, userID uint64, code string) (*types.CouponResult, error)
}

// Use 兑换优惠码：使用额度原子占用，同一用户同一券只入账一次
func (s *CouponService) Use(ctx context.Context, userID uint64, code string) (*types.CouponResult, error) {
	if code == "" {
		return nil, ErrCouponInvalid
	}

	coupon, err := s.CouponDAO.GetByCode(ctx, code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCouponInvalid
	}
	if err != nil {
		return nil, fmt.Errorf("查询优惠码失败: %w", err)
	}

	if !coupon.IsActive {
		return nil, ErrCouponInvalid
	}
	if time.Now().After(coupon.ExpiresAt) {
		return nil, ErrCouponExpired
	}
	if coupon.UsedCount >= coupon.UsageLimit {
		return nil, ErrCouponExhausted
	}

	rows, err := s.CouponDAO.ConsumeUse(ctx, coupon.ID)
	if err != nil {
		return nil, fmt.Errorf("占用优惠码额度失败: %w", err)
	}
	if rows == 0 {
		// 并发下额度刚好被用完
		return nil, ErrCouponExhausted
	}

	sourceID := fmt.Sprintf("coupon:%d:%d", coupon.ID, userID)
	remark := fmt.Sprintf("优惠码「%s」兑换", code)
	if _, err := s.Ledger.Credit(ctx, userID, coupon.BonusPoints, models.CategoryBonus, sourceID, remark); err != nil {
		if errors.Is(err, ErrDuplicateSource) {
			// 同一用户重复兑换同一券：额度已占用但不再发奖
			return nil, ErrCouponInvalid
		}
		log.L.Error("coupon credit failed after use consumed",
			zap.Uint64("user_id", userID),
			zap.String("code", code),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: 优惠码奖励未入账: %v", ErrPartiallyApplied, err)
	}

	// 奖励已入账，按最新累计积分重评成就（失败不影响本次兑换）
	if _, err := s.Achievements.Evaluate(ctx, userID); err != nil {
		log.L.Warn("achievement evaluate after coupon failed",
			zap.Uint64("user_id", userID), zap.Error(err))
	}

	return &types.CouponResult{
		Code:        code,
		BonusPoints: coupon.BonusPoints,
	}, nil
}

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

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReferralService 邀请绑定与奖励发放。
// ReferralLink 记录是整条流程的幂等锚点：记录在奖励之前创建，
// 奖励入账凭 referral:<linkID> 业务单号去重，重放安全。
type ReferralService struct {
	Config       *config.Config
	DB           *gorm.DB
	AccountDAO   *dao.Account
	ReferralDAO  *dao.Referral
	Cache        *AccountCache
	Ledger       ILedgerService
	Achievements IAchievementService
}

var _ IReferralService = (*ReferralService)(nil)

type IReferralService interface {
	LinkReferral(ctx context.Context, referrerCode string, referredID uint64) (*types.ReferralResult, error)
}

// LinkReferral 绑定邀请关系：
//  1. 邀请码找人，找不到或自邀拒绝
//  2. 被邀请人已绑定过则拒绝
//  3. 事务内创建绑定并刷新邀请人数/加成比例
//  4. 双方各发一次欢迎奖励（邀请人500 / 被邀请人300）
func (s *ReferralService) LinkReferral(ctx context.Context, referrerCode string, referredID uint64) (*types.ReferralResult, error) {
	if referrerCode == "" {
		return nil, ErrUnknownReferralCode
	}

	referrer, err := s.AccountDAO.GetByReferralCode(ctx, referrerCode)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUnknownReferralCode
	}
	if err != nil {
		return nil, fmt.Errorf("查询邀请人失败: %w", err)
	}
	if referrer.ID == referredID {
		// 自己邀请自己
		return nil, ErrUnknownReferralCode
	}

	linked, err := s.ReferralDAO.IsLinked(ctx, referredID)
	if err != nil {
		return nil, fmt.Errorf("查询邀请关系失败: %w", err)
	}
	if linked {
		return nil, ErrAlreadyLinked
	}

	var (
		link    models.ReferralLink
		newRate int
	)
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		accounts := s.AccountDAO.Tx(tx)
		referrals := s.ReferralDAO.Tx(tx)

		link = models.ReferralLink{
			ReferrerID: referrer.ID,
			ReferredID: referredID,
			Code:       referrerCode,
		}
		if err := referrals.CreateLink(ctx, &link); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyLinked
			}
			return fmt.Errorf("创建邀请记录失败: %w", err)
		}

		count, err := referrals.CountByReferrer(ctx, referrer.ID)
		if err != nil {
			return fmt.Errorf("统计邀请人数失败: %w", err)
		}
		newRate = referralBonusRate(int(count), s.Config.Rewards)

		return accounts.BumpReferralStats(ctx, referrer.ID, newRate)
	})
	if err != nil {
		return nil, err
	}

	s.Cache.Invalidate(referrer.ID)

	// 欢迎奖励：绑定已落库，入账失败返回部分生效信号
	sourceID := fmt.Sprintf("referral:%d", link.ID)
	if _, err := s.Ledger.Credit(ctx, referrer.ID, s.Config.Rewards.ReferrerWelcomeBonus,
		models.CategoryReferral, sourceID, "邀请好友奖励"); err != nil && !errors.Is(err, ErrDuplicateSource) {
		log.L.Error("referrer welcome bonus failed after link",
			zap.Uint64("referrer_id", referrer.ID), zap.Error(err))
		return nil, fmt.Errorf("%w: 邀请人奖励未入账: %v", ErrPartiallyApplied, err)
	}
	if _, err := s.Ledger.Credit(ctx, referredID, s.Config.Rewards.ReferredWelcomeBonus,
		models.CategoryReferral, sourceID, "受邀注册奖励"); err != nil && !errors.Is(err, ErrDuplicateSource) {
		log.L.Error("referred welcome bonus failed after link",
			zap.Uint64("referred_id", referredID), zap.Error(err))
		return nil, fmt.Errorf("%w: 被邀请人奖励未入账: %v", ErrPartiallyApplied, err)
	}

	// 邀请人数已刷新，circle_of_friends/influencer 的阈值在这里跨过；
	// 被邀请人拿了欢迎奖励，累计积分类成就同样要重评
	for _, id := range []uint64{referrer.ID, referredID} {
		if _, err := s.Achievements.Evaluate(ctx, id); err != nil {
			log.L.Warn("achievement evaluate after referral failed",
				zap.Uint64("user_id", id), zap.Error(err))
		}
	}

	return &types.ReferralResult{
		ReferrerID:    referrer.ID,
		ReferredID:    referredID,
		ReferralRate:  newRate,
		ReferrerBonus: s.Config.Rewards.ReferrerWelcomeBonus,
		ReferredBonus: s.Config.Rewards.ReferredWelcomeBonus,
	}, nil
}

// referralBonusRate min(人数 × 每人比例, 上限)
func referralBonusRate(referralCount int, rw *config.Rewards) int {
	rate := referralCount * rw.ReferralRatePerUser
	if rate > rw.ReferralRateCap {
		return rw.ReferralRateCap
	}
	return rate
}

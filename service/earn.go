package service

import (
	"context"
	"fmt"
	"pointmax/config"
	"pointmax/dao"
	"pointmax/models"
	"pointmax/pkg/log"
	"pointmax/types"
	"time"

	"go.uber.org/zap"
)

// EarnService 任务/问卷完成的积分计算与入账编排
type EarnService struct {
	Config       *config.Config
	CampaignDAO  *dao.Campaign
	Accounts     IAccountService
	Ledger       ILedgerService
	Achievements IAchievementService
}

var _ IEarnService = (*EarnService)(nil)

type IEarnService interface {
	ComputeEarnedPoints(ctx context.Context, userID uint64, basePoints int64, category string) (*types.EarnBreakdown, error)
	Complete(ctx context.Context, userID uint64, req types.EarnReq) (*types.EarnResult, error)
}

// ComputeEarnedPoints 纯计算：活动加倍 → 等级倍率 → 加成百分比，不入账
func (s *EarnService) ComputeEarnedPoints(ctx context.Context, userID uint64, basePoints int64, category string) (*types.EarnBreakdown, error) {
	if basePoints <= 0 {
		return nil, ErrInvalidAmount
	}

	acc, err := s.Accounts.GetAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	boost := 1.0
	campaign, err := s.CampaignDAO.FindActiveBoost(ctx, category, time.Now())
	if err != nil {
		return nil, fmt.Errorf("查询活动加倍失败: %w", err)
	}
	if campaign != nil {
		boost = campaign.BoostMultiplier
	}

	b := ComposeEarn(basePoints, boost, acc, s.Config.Rewards.VerifyBonusRate)
	return &b, nil
}

// Complete 完成任务/问卷：计算、入账、重新评估成就
func (s *EarnService) Complete(ctx context.Context, userID uint64, req types.EarnReq) (*types.EarnResult, error) {
	breakdown, err := s.ComputeEarnedPoints(ctx, userID, req.BasePoints, req.Category)
	if err != nil {
		return nil, err
	}

	category := models.CategoryEarn
	if req.Survey {
		category = models.CategorySurvey
	}
	remark := req.Remark
	if remark == "" {
		remark = fmt.Sprintf("%s 完成奖励", req.Category)
	}

	acc, err := s.Ledger.Credit(ctx, userID, breakdown.FinalPoints, category, req.SourceID, remark)
	if err != nil {
		return nil, err
	}

	// 成就评估失败不回滚入账，部分生效信号向上传递给通知层
	unlocked, achErr := s.Achievements.Evaluate(ctx, userID)
	if achErr != nil {
		log.L.Warn("achievement evaluate after earn failed",
			zap.Uint64("user_id", userID), zap.Error(achErr))
	}

	return &types.EarnResult{
		Breakdown: *breakdown,
		Balance:   acc.AvailablePoints,
		Rank:      acc.Rank,
		Unlocked:  unlocked,
	}, nil
}

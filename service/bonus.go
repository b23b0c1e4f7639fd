package service

import (
	"math"
	"pointmax/models"
	"pointmax/types"
)

// ComposeEarn 积分计算的唯一口径：
//  1. 活动加倍  floor(base × campaignBoost)
//  2. 等级倍率  floor(× rankMultiplier)
//  3. 加成百分比 floor(× (1 + Σrate/100))
//
// 每步向下取整。纯计算，入账由调用方负责。
func ComposeEarn(basePoints int64, campaignBoost float64, account *models.Account, verifyRate int) types.EarnBreakdown {
	if campaignBoost <= 0 {
		campaignBoost = 1.0
	}

	b := types.EarnBreakdown{
		BasePoints:    basePoints,
		CampaignBoost: campaignBoost,
	}

	b.AfterCampaign = int64(math.Floor(float64(basePoints) * campaignBoost))

	b.RankMultiplier = RankFor(account.RankPoints).Multiplier
	b.AfterRank = int64(math.Floor(float64(b.AfterCampaign) * b.RankMultiplier))

	b.ProfileRate = account.ProfileBonusRate
	b.ReferralRate = account.ReferralBonusRate
	if account.PhoneVerified {
		b.PhoneRate = verifyRate
	}
	if account.IdentityVerified {
		b.IdentityRate = verifyRate
	}
	b.BonusRate = b.ProfileRate + b.ReferralRate + b.PhoneRate + b.IdentityRate

	b.FinalPoints = int64(math.Floor(float64(b.AfterRank) * (1 + float64(b.BonusRate)/100)))
	return b
}

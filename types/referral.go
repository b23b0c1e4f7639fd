package types

// LinkReferralReq 邀请码绑定请求
type LinkReferralReq struct {
	Code string `json:"code" binding:"required"`
}

// ReferralResult 绑定结果：双方奖励与邀请人最新加成比例
type ReferralResult struct {
	ReferrerID    uint64 `json:"referrer_id"`
	ReferredID    uint64 `json:"referred_id"`
	ReferralRate  int    `json:"referral_rate"` // 邀请人最新加成（%）
	ReferrerBonus int64  `json:"referrer_bonus"`
	ReferredBonus int64  `json:"referred_bonus"`
}

package types

// RegisterReq 开户请求
type RegisterReq struct {
	Username string `json:"username" binding:"required,min=2,max=32"`
}

// RegisterResp 开户结果：账户快照 + 访问令牌
type RegisterResp struct {
	UserID       uint64 `json:"user_id"`
	Username     string `json:"username"`
	ReferralCode string `json:"referral_code"` // 分享给好友的邀请码
	Rank         string `json:"rank"`
	AccessToken  string `json:"access_token"`
}

// AccountDetail 账户详情（含加成构成）
type AccountDetail struct {
	UserID            uint64 `json:"user_id"`
	Username          string `json:"username"`
	ReferralCode      string `json:"referral_code"`
	Rank              string `json:"rank"`
	Balance           int64  `json:"balance"`
	TotalEarned       int64  `json:"total_earned"`
	ProfileBonusRate  int    `json:"profile_bonus_rate"`
	ReferralBonusRate int    `json:"referral_bonus_rate"`
	PhoneVerified     bool   `json:"phone_verified"`
	IdentityVerified  bool   `json:"identity_verified"`
	TotalReferrals    int    `json:"total_referrals"`
	Frozen            bool   `json:"frozen"`
}

package config

// Rewards 积分规则配置：兑换下限、抽奖次数、邀请奖励等可调参数
type Rewards struct {
	MinRedemption   int64 `json:"min_redemption" yaml:"min_redemption"`       // 最低兑换积分
	GachaDailyQuota int   `json:"gacha_daily_quota" yaml:"gacha_daily_quota"` // 每日抽奖次数上限

	ReferrerWelcomeBonus int64 `json:"referrer_welcome_bonus" yaml:"referrer_welcome_bonus"`
	ReferredWelcomeBonus int64 `json:"referred_welcome_bonus" yaml:"referred_welcome_bonus"`
	ReferralRatePerUser  int   `json:"referral_rate_per_user" yaml:"referral_rate_per_user"` // 每邀请1人 +2%
	ReferralRateCap      int   `json:"referral_rate_cap" yaml:"referral_rate_cap"`           // 上限 10%

	ProfileBonusRate int `json:"profile_bonus_rate" yaml:"profile_bonus_rate"` // 完善资料 +10%
	VerifyBonusRate  int `json:"verify_bonus_rate" yaml:"verify_bonus_rate"`   // 实名/手机认证 各 +10%

	DailyBonusSchedule []int64 `json:"daily_bonus_schedule" yaml:"daily_bonus_schedule"`

	// ExchangeRates 兑换类型 -> 换算比例
	ExchangeRates map[string]float64 `json:"exchange_rates" yaml:"exchange_rates"`
}

func DefaultRewards() *Rewards {
	return &Rewards{}
}

func (r *Rewards) applyDefaults() {
	if r.MinRedemption <= 0 {
		r.MinRedemption = 100
	}
	if r.GachaDailyQuota <= 0 {
		r.GachaDailyQuota = 3
	}
	if r.ReferrerWelcomeBonus <= 0 {
		r.ReferrerWelcomeBonus = 500
	}
	if r.ReferredWelcomeBonus <= 0 {
		r.ReferredWelcomeBonus = 300
	}
	if r.ReferralRatePerUser <= 0 {
		r.ReferralRatePerUser = 2
	}
	if r.ReferralRateCap <= 0 {
		r.ReferralRateCap = 10
	}
	if r.ProfileBonusRate <= 0 {
		r.ProfileBonusRate = 10
	}
	if r.VerifyBonusRate <= 0 {
		r.VerifyBonusRate = 10
	}
	if len(r.DailyBonusSchedule) == 0 {
		r.DailyBonusSchedule = []int64{10, 20, 30, 50, 100, 150, 500}
	}
	if len(r.ExchangeRates) == 0 {
		r.ExchangeRates = map[string]float64{
			"amazon": 1.0,
			"paypay": 1.0,
			"bank":   0.9,
		}
	}
}

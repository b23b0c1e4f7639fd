package models

import "time"

// Account 用户积分账户：余额、累计积分、等级与各类加成比例的快照。
// TotalPoints / RankPoints 只增不减，AvailablePoints 只有兑换会扣减。
type Account struct {
	ID           uint64 `gorm:"primaryKey;column:id"`
	Username     string `gorm:"column:username;size:64"`
	ReferralCode string `gorm:"column:referral_code;uniqueIndex;size:16"`

	TotalPoints     int64  `gorm:"column:total_points;default:0"`     // 历史累计获得（终身积分）
	AvailablePoints int64  `gorm:"column:available_points;default:0"` // 当前可用余额
	RankPoints      int64  `gorm:"column:rank_points;default:0"`      // 等级积分（与终身积分同步累加）
	Rank            string `gorm:"column:rank;size:16;default:bronze"`

	ProfileBonusRate  int  `gorm:"column:profile_bonus_rate;default:0"`  // 0 或 10
	ReferralBonusRate int  `gorm:"column:referral_bonus_rate;default:0"` // min(邀请人数*2, 10)
	PhoneVerified     bool `gorm:"column:phone_verified;default:false"`
	IdentityVerified  bool `gorm:"column:identity_verified;default:false"`

	ConsecutiveLoginDays int `gorm:"column:consecutive_login_days;default:0"`
	TotalReferrals       int `gorm:"column:total_referrals;default:0"`
	ExchangeCount        int `gorm:"column:exchange_count;default:0"`

	// LastBonusDate 最近一次签到日期（UTC, yyyy-mm-dd），用于连续登录判定
	LastBonusDate string `gorm:"column:last_bonus_date;size:10"`

	// Frozen 对账失败后冻结，禁止继续自动变动余额
	Frozen bool `gorm:"column:frozen;default:false"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Account) TableName() string {
	return "users"
}

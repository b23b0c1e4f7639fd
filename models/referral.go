package models

import "time"

// ReferralLink 邀请关系，每个被邀请人只能有一条。
// 记录本身是整条邀请流程（奖励发放含）的幂等锚点。
type ReferralLink struct {
	ID         uint64    `gorm:"primaryKey;column:id"`
	ReferrerID uint64    `gorm:"column:referrer_id;index:idx_referrer_id"`
	ReferredID uint64    `gorm:"column:referred_id;uniqueIndex"`
	Code       string    `gorm:"column:code;size:16"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (ReferralLink) TableName() string {
	return "referrals"
}

package models

import "time"

// Coupon 优惠码，兑换一次加一次 used_count，到上限失效
type Coupon struct {
	ID          uint64    `gorm:"primaryKey;column:id"`
	Code        string    `gorm:"column:code;uniqueIndex;size:32"`
	BonusPoints int64     `gorm:"column:bonus_points"`
	UsageLimit  int       `gorm:"column:usage_limit;default:0"`
	UsedCount   int       `gorm:"column:used_count;default:0"`
	ExpiresAt   time.Time `gorm:"column:expires_at"`
	IsActive    bool      `gorm:"column:is_active;default:true"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (Coupon) TableName() string {
	return "coupons"
}

package models

import "time"

// DailyBonus 签到奖励领取记录
type DailyBonus struct {
	ID        uint64    `gorm:"primaryKey;column:id"`
	UserID    uint64    `gorm:"column:user_id;index:idx_daily_bonuses_user_id"`
	DayNumber int       `gorm:"column:day_number"` // 连续登录天数
	Points    int64     `gorm:"column:points"`
	ClaimedAt time.Time `gorm:"column:claimed_at;autoCreateTime"`
}

func (DailyBonus) TableName() string {
	return "daily_bonuses"
}

package models

import "time"

// Campaign 分类积分加倍活动，运营侧维护，引擎只读
type Campaign struct {
	ID              uint64    `gorm:"primaryKey;column:id"`
	Title           string    `gorm:"column:title;size:128"`
	TargetCategory  string    `gorm:"column:target_category;size:64;index"`
	BoostMultiplier float64   `gorm:"column:boost_multiplier;default:1"`
	ActiveFrom      time.Time `gorm:"column:active_from"`
	ActiveTo        time.Time `gorm:"column:active_to"`
	IsActive        bool      `gorm:"column:is_active;default:true"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

func (Campaign) TableName() string {
	return "campaigns"
}

// ActiveAt 活动在指定时刻是否生效
func (c *Campaign) ActiveAt(t time.Time) bool {
	return c.IsActive && !t.Before(c.ActiveFrom) && !t.After(c.ActiveTo)
}

package models

import (
	"fmt"
	"time"
)

// Metric 成就考核的账户指标
type Metric int8

const (
	MetricLifetimePoints Metric = 1
	MetricLoginStreak    Metric = 2
	MetricExchangeCount  Metric = 3
	MetricReferralCount  Metric = 4
)

func (m Metric) String() string {
	switch m {
	case MetricLifetimePoints:
		return "lifetime_points"
	case MetricLoginStreak:
		return "login_streak"
	case MetricExchangeCount:
		return "exchange_count"
	case MetricReferralCount:
		return "referral_count"
	}
	return fmt.Sprintf("metric(%d)", int8(m))
}

// AchievementDefinition 静态成就目录项
type AchievementDefinition struct {
	Name        string
	Metric      Metric
	Threshold   int64
	BonusPoints int64
	Icon        string
}

// AchievementCatalog 固定成就目录，顺序即评估顺序
var AchievementCatalog = []AchievementDefinition{
	{Name: "first_step", Metric: MetricLifetimePoints, Threshold: 1, BonusPoints: 100, Icon: "fa-star"},
	{Name: "steady_saver", Metric: MetricLifetimePoints, Threshold: 1000, BonusPoints: 200, Icon: "fa-coins"},
	{Name: "point_master", Metric: MetricLifetimePoints, Threshold: 10000, BonusPoints: 1000, Icon: "fa-trophy"},
	{Name: "weekly_login", Metric: MetricLoginStreak, Threshold: 7, BonusPoints: 300, Icon: "fa-calendar-check"},
	{Name: "habit_formed", Metric: MetricLoginStreak, Threshold: 30, BonusPoints: 1500, Icon: "fa-fire"},
	{Name: "first_exchange", Metric: MetricExchangeCount, Threshold: 1, BonusPoints: 150, Icon: "fa-exchange-alt"},
	{Name: "circle_of_friends", Metric: MetricReferralCount, Threshold: 5, BonusPoints: 500, Icon: "fa-users"},
	{Name: "influencer", Metric: MetricReferralCount, Threshold: 20, BonusPoints: 3000, Icon: "fa-bullhorn"},
}

// AchievementUnlock 解锁记录，(user_id, name) 唯一。
// 唯一索引是防止重复发奖的幂等护栏。
type AchievementUnlock struct {
	ID            uint64    `gorm:"primaryKey;column:id"`
	UserID        uint64    `gorm:"column:user_id;uniqueIndex:uk_user_achievement"`
	Name          string    `gorm:"column:name;uniqueIndex:uk_user_achievement;size:64"`
	AwardedPoints int64     `gorm:"column:awarded_points"`
	UnlockedAt    time.Time `gorm:"column:unlocked_at;autoCreateTime"`
}

func (AchievementUnlock) TableName() string {
	return "achievements"
}

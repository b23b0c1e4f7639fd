package models

import (
	"fmt"
	"time"
)

// Category 积分流水业务类型
type Category int8

const (
	CategoryEarn        Category = 1 // 完成任务
	CategoryBonus       Category = 2 // 资料完善/优惠券等一次性奖励
	CategoryAchievement Category = 3 // 成就解锁
	CategoryReferral    Category = 4 // 邀请奖励
	CategoryDaily       Category = 5 // 每日签到
	CategorySurvey      Category = 6 // 问卷回答
	CategoryGacha       Category = 7 // 抽奖
	CategoryExchange    Category = 8 // 积分兑换（支出）
)

func (c Category) String() string {
	switch c {
	case CategoryEarn:
		return "earn"
	case CategoryBonus:
		return "bonus"
	case CategoryAchievement:
		return "achievement"
	case CategoryReferral:
		return "referral"
	case CategoryDaily:
		return "daily"
	case CategorySurvey:
		return "survey"
	case CategoryGacha:
		return "gacha"
	case CategoryExchange:
		return "exchange"
	}
	return fmt.Sprintf("category(%d)", int8(c))
}

func (c Category) Valid() bool {
	return c >= CategoryEarn && c <= CategoryExchange
}

// PointsLog 积分流水，落库后不可修改。
// 余额对账基准：任一时刻 available_points == SUM(amount)。
type PointsLog struct {
	ID        uint64    `gorm:"primaryKey;column:id"`
	UserID    uint64    `gorm:"column:user_id;index:idx_point_logs_user_id"`
	Amount    int64     `gorm:"column:amount"`  // 变动数额（正负）
	Balance   int64     `gorm:"column:balance"` // 变动后余额快照
	Category  Category  `gorm:"column:category"`
	SourceID  string    `gorm:"column:source_id;index:idx_source_id;size:64"` // 业务单号（幂等关键）
	Remark    string    `gorm:"column:remark;size:255"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (PointsLog) TableName() string {
	return "point_logs"
}

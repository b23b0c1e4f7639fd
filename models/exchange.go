package models

import "time"

const (
	ExchangeStatusCompleted = "completed"
)

// Exchange 兑换记录，Code 为发给用户的兑换码
type Exchange struct {
	ID            uint64    `gorm:"primaryKey;column:id"`
	UserID        uint64    `gorm:"column:user_id;index:idx_exchanges_user_id"`
	ExchangeType  string    `gorm:"column:exchange_type;size:32"`
	PointsUsed    int64     `gorm:"column:points_used"`
	ExchangeValue int64     `gorm:"column:exchange_value"`
	Code          string    `gorm:"column:code;size:16"`
	Status        string    `gorm:"column:status;size:16"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Exchange) TableName() string {
	return "exchange_history"
}

package models

import "time"

// Rarity 抽奖奖品稀有度
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// GachaPrize 奖品表条目，按声明顺序累计概率抽取
type GachaPrize struct {
	Points      int64
	Rarity      Rarity
	Probability float64
}

// DefaultPrizeTable 概率合计 1.0
var DefaultPrizeTable = []GachaPrize{
	{Points: 10, Rarity: RarityCommon, Probability: 0.40},
	{Points: 50, Rarity: RarityCommon, Probability: 0.30},
	{Points: 100, Rarity: RarityRare, Probability: 0.15},
	{Points: 500, Rarity: RarityEpic, Probability: 0.10},
	{Points: 1000, Rarity: RarityEpic, Probability: 0.04},
	{Points: 5000, Rarity: RarityLegendary, Probability: 0.01},
}

// GachaPlay 抽奖记录，用于当日次数限制统计
type GachaPlay struct {
	ID       uint64    `gorm:"primaryKey;column:id"`
	UserID   uint64    `gorm:"column:user_id;index:idx_user_played,priority:1"`
	Points   int64     `gorm:"column:points"`
	Rarity   Rarity    `gorm:"column:rarity;size:16"`
	PlayedAt time.Time `gorm:"column:played_at;index:idx_user_played,priority:2;autoCreateTime"`
}

func (GachaPlay) TableName() string {
	return "gacha_plays"
}

package types

// GachaResult 抽奖结果
type GachaResult struct {
	Points         int64  `json:"points"`
	Rarity         string `json:"rarity"`
	RemainingToday int    `json:"remaining_today"`
}

// GachaStatus 抽奖状态查询
type GachaStatus struct {
	CanPlay        bool `json:"can_play"`
	RemainingToday int  `json:"remaining_today"`
	DailyQuota     int  `json:"daily_quota"`
}

package types

// LeaderboardEntry 排行榜条目
type LeaderboardEntry struct {
	Position int64  `json:"position"` // 名次，从 1 开始
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
	Points   int64  `json:"points"`
}

// MyRank 当前用户的榜上信息与等级
type MyRank struct {
	Position       int64   `json:"position"` // 0 表示未上榜
	TotalPoints    int64   `json:"total_points"`
	Rank           string  `json:"rank"`
	RankMultiplier float64 `json:"rank_multiplier"`
}

package types

// UnlockedAchievement 本次评估新解锁的成就，供通知层展示
type UnlockedAchievement struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	BonusPoints int64  `json:"bonus_points"`
}

// AchievementStatus 成就目录项 + 当前用户解锁状态
type AchievementStatus struct {
	Name        string `json:"name"`
	Metric      string `json:"metric"`
	Threshold   int64  `json:"threshold"`
	BonusPoints int64  `json:"bonus_points"`
	Icon        string `json:"icon"`
	Unlocked    bool   `json:"unlocked"`
	UnlockedAt  string `json:"unlocked_at,omitempty"`
}

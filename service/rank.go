package service

// RankTier 等级档位：阈值为含下界，命中最高档
type RankTier struct {
	Name       string
	Threshold  int64
	Multiplier float64
}

// rankTable 从低到高排列
var rankTable = []RankTier{
	{Name: "bronze", Threshold: 0, Multiplier: 1.0},
	{Name: "silver", Threshold: 1000, Multiplier: 1.1},
	{Name: "gold", Threshold: 5000, Multiplier: 1.2},
	{Name: "platinum", Threshold: 15000, Multiplier: 1.3},
	{Name: "diamond", Threshold: 50000, Multiplier: 1.5},
}

// RankFor 等级积分 -> 档位。纯函数，全定义域无错误分支。
func RankFor(rankPoints int64) RankTier {
	tier := rankTable[0]
	for _, t := range rankTable {
		if rankPoints >= t.Threshold {
			tier = t
		}
	}
	return tier
}

// RankMultiplier 档位名 -> 倍率，未知档位按 1.0 处理
func RankMultiplier(name string) float64 {
	for _, t := range rankTable {
		if t.Name == name {
			return t.Multiplier
		}
	}
	return 1.0
}

// RankTiers 返回档位表副本，供展示层使用
func RankTiers() []RankTier {
	tiers := make([]RankTier, len(rankTable))
	copy(tiers, rankTable)
	return tiers
}

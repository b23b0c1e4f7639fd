package service

import "testing"

func TestRankFor(t *testing.T) {
	cases := []struct {
		points int64
		want   string
	}{
		{0, "bronze"},
		{999, "bronze"},
		{1000, "silver"},
		{4999, "silver"},
		{5000, "gold"},
		{14999, "gold"},
		{15000, "platinum"},
		{49999, "platinum"},
		{50000, "diamond"},
		{1000000, "diamond"},
	}
	for _, c := range cases {
		if got := RankFor(c.points); got.Name != c.want {
			t.Errorf("RankFor(%d) = %s, want %s", c.points, got.Name, c.want)
		}
	}
}

func TestRankForMonotonic(t *testing.T) {
	// 等级倍率随积分单调不减
	prev := 0.0
	for p := int64(0); p <= 60000; p += 100 {
		m := RankFor(p).Multiplier
		if m < prev {
			t.Fatalf("multiplier decreased at %d points: %f < %f", p, m, prev)
		}
		prev = m
	}
}

func TestRankMultiplier(t *testing.T) {
	if got := RankMultiplier("gold"); got != 1.2 {
		t.Errorf("RankMultiplier(gold) = %f, want 1.2", got)
	}
	if got := RankMultiplier("nonsense"); got != 1.0 {
		t.Errorf("unknown rank should fall back to 1.0, got %f", got)
	}
}

func TestRankTiersCopy(t *testing.T) {
	tiers := RankTiers()
	tiers[0].Multiplier = 99
	if rankTable[0].Multiplier == 99 {
		t.Fatal("RankTiers must return a copy")
	}
}

package service

import (
	"testing"

	"pointmax/models"
)

func TestComposeEarnNoBonuses(t *testing.T) {
	acc := &models.Account{RankPoints: 0}
	b := ComposeEarn(1000, 1.0, acc, 10)

	if b.FinalPoints != 1000 {
		t.Errorf("final = %d, want 1000", b.FinalPoints)
	}
	if b.RankMultiplier != 1.0 || b.BonusRate != 0 {
		t.Errorf("unexpected breakdown: %+v", b)
	}
}

func TestComposeEarnGoldWithProfileBonus(t *testing.T) {
	// 金级 ×1.2，资料加成 +10%：1000 → 1200 → 1320
	acc := &models.Account{RankPoints: 5000, ProfileBonusRate: 10}
	b := ComposeEarn(1000, 1.0, acc, 10)

	if b.AfterRank != 1200 {
		t.Errorf("after rank = %d, want 1200", b.AfterRank)
	}
	if b.FinalPoints != 1320 {
		t.Errorf("final = %d, want 1320", b.FinalPoints)
	}
}

func TestComposeEarnAllBonusesStack(t *testing.T) {
	// 资料10 + 邀请10 + 手机10 + 实名10 = +40%
	acc := &models.Account{
		RankPoints:        0,
		ProfileBonusRate:  10,
		ReferralBonusRate: 10,
		PhoneVerified:     true,
		IdentityVerified:  true,
	}
	b := ComposeEarn(100, 1.0, acc, 10)

	if b.BonusRate != 40 {
		t.Errorf("bonus rate = %d, want 40", b.BonusRate)
	}
	if b.FinalPoints != 140 {
		t.Errorf("final = %d, want 140", b.FinalPoints)
	}
}

func TestComposeEarnCampaignBoost(t *testing.T) {
	acc := &models.Account{RankPoints: 1000} // silver ×1.1
	b := ComposeEarn(100, 2.0, acc, 10)

	if b.AfterCampaign != 200 {
		t.Errorf("after campaign = %d, want 200", b.AfterCampaign)
	}
	if b.FinalPoints != 220 {
		t.Errorf("final = %d, want 220", b.FinalPoints)
	}
}

func TestComposeEarnFloorsEachStep(t *testing.T) {
	// 每步向下取整：15 ×1.1 = 16.5 → 16；16 ×1.1 = 17.6 → 17
	acc := &models.Account{RankPoints: 1000, ProfileBonusRate: 10}
	b := ComposeEarn(15, 1.0, acc, 10)

	if b.AfterRank != 16 {
		t.Errorf("after rank = %d, want 16", b.AfterRank)
	}
	if b.FinalPoints != 17 {
		t.Errorf("final = %d, want 17", b.FinalPoints)
	}
}

func TestComposeEarnZeroBoostFallsBack(t *testing.T) {
	acc := &models.Account{}
	b := ComposeEarn(100, 0, acc, 10)
	if b.CampaignBoost != 1.0 || b.FinalPoints != 100 {
		t.Errorf("zero boost should normalize to 1.0: %+v", b)
	}
}

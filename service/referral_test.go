package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"pointmax/models"
)

func TestLinkReferralWelcomeBonuses(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedAccount(t, &models.Account{ID: 1, Username: "referrer", ReferralCode: "PMAAA"})
	env.seedAccount(t, &models.Account{ID: 2, Username: "invited", ReferralCode: "PMBBB"})

	res, err := env.referral.LinkReferral(ctx, "PMAAA", 2)
	if err != nil {
		t.Fatal(err)
	}
	if res.ReferrerBonus != 500 || res.ReferredBonus != 300 {
		t.Errorf("bonuses = %d/%d, want 500/300", res.ReferrerBonus, res.ReferredBonus)
	}
	if res.ReferralRate != 2 {
		t.Errorf("rate after 1 referral = %d, want 2", res.ReferralRate)
	}

	// 绑定后双方都重评成就：各自首笔入账解锁 first_step（+100）
	referrer := env.mustAccount(t, 1)
	if referrer.AvailablePoints != 600 || referrer.TotalReferrals != 1 || referrer.ReferralBonusRate != 2 {
		t.Errorf("referrer = %+v", referrer)
	}
	if invited := env.mustAccount(t, 2); invited.AvailablePoints != 400 {
		t.Errorf("invited balance = %d, want 400", invited.AvailablePoints)
	}
}

func TestLinkReferralRejections(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedAccount(t, &models.Account{ID: 1, Username: "referrer", ReferralCode: "PMAAA"})
	env.seedAccount(t, &models.Account{ID: 2, Username: "invited", ReferralCode: "PMBBB"})

	if _, err := env.referral.LinkReferral(ctx, "NOPE", 2); !errors.Is(err, ErrUnknownReferralCode) {
		t.Errorf("unknown code = %v, want ErrUnknownReferralCode", err)
	}
	if _, err := env.referral.LinkReferral(ctx, "PMAAA", 1); !errors.Is(err, ErrUnknownReferralCode) {
		t.Errorf("self referral = %v, want ErrUnknownReferralCode", err)
	}

	if _, err := env.referral.LinkReferral(ctx, "PMAAA", 2); err != nil {
		t.Fatal(err)
	}
	if _, err := env.referral.LinkReferral(ctx, "PMAAA", 2); !errors.Is(err, ErrAlreadyLinked) {
		t.Errorf("relink = %v, want ErrAlreadyLinked", err)
	}

	// 重复绑定不得重复发奖（300 欢迎奖励 + 100 first_step）
	if acc := env.mustAccount(t, 2); acc.AvailablePoints != 400 {
		t.Errorf("invited balance = %d, want 400", acc.AvailablePoints)
	}
}

func TestReferralRateCapsAtTen(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedAccount(t, &models.Account{ID: 1, Username: "referrer", ReferralCode: "PMAAA"})

	for i := uint64(2); i <= 8; i++ {
		env.seedAccount(t, &models.Account{
			ID: i, Username: fmt.Sprintf("u%d", i), ReferralCode: fmt.Sprintf("PM%03d", i),
		})
		res, err := env.referral.LinkReferral(ctx, "PMAAA", i)
		if err != nil {
			t.Fatalf("link %d: %v", i, err)
		}

		want := int(i-1) * 2
		if want > 10 {
			want = 10
		}
		if res.ReferralRate != want {
			t.Errorf("rate after %d referrals = %d, want %d", i-1, res.ReferralRate, want)
		}
	}

	if acc := env.mustAccount(t, 1); acc.ReferralBonusRate != 10 || acc.TotalReferrals != 7 {
		t.Errorf("referrer after 7 links = %+v", acc)
	}

	// 第 5 次绑定时邀请人数跨过阈值，circle_of_friends 当场解锁
	unlocked := env.unlockedNames(t, 1)
	if !unlocked["circle_of_friends"] {
		t.Errorf("unlocked = %v, want circle_of_friends", unlocked)
	}
	if unlocked["influencer"] {
		t.Errorf("influencer needs 20 referrals, got unlocked at 7")
	}
}

func TestReferralBonusRate(t *testing.T) {
	rw := testRewards()
	cases := []struct{ count, want int }{
		{0, 0}, {1, 2}, {4, 8}, {5, 10}, {6, 10}, {100, 10},
	}
	for _, c := range cases {
		if got := referralBonusRate(c.count, rw); got != c.want {
			t.Errorf("referralBonusRate(%d) = %d, want %d", c.count, got, c.want)
		}
	}
}

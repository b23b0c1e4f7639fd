package service

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"pointmax/models"
)

func TestRedeemSuccess(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedAccount(t, &models.Account{ID: 1, Username: "u1", ReferralCode: "PM1", AvailablePoints: 2000, TotalPoints: 2000, RankPoints: 2000, Rank: "silver"})

	res, err := env.exchange.Redeem(ctx, 1, "bank", 1000)
	if err != nil {
		t.Fatal(err)
	}
	// res.Balance 是扣账时的快照，成就奖励在这之后入账
	if res.PointsUsed != 1000 || res.Balance != 1000 {
		t.Errorf("result = %+v", res)
	}
	// bank 比例 0.9，向下取整
	if res.ExchangeValue != 900 {
		t.Errorf("exchange value = %d, want 900", res.ExchangeValue)
	}

	// 兑换计数跨过阈值后 first_exchange 立即解锁，无需手动触发评估；
	// 累计 2000 分同时解锁 first_step/steady_saver，合计 +450
	unlocked := env.unlockedNames(t, 1)
	if !unlocked["first_exchange"] || !unlocked["first_step"] || !unlocked["steady_saver"] {
		t.Errorf("unlocked = %v, want first_exchange/first_step/steady_saver", unlocked)
	}

	acc := env.mustAccount(t, 1)
	if acc.AvailablePoints != 1450 || acc.ExchangeCount != 1 {
		t.Errorf("account = %+v", acc)
	}
	// 等级积分不随兑换回退
	if acc.RankPoints != 2450 || acc.Rank != "silver" {
		t.Errorf("rank must survive exchange: %+v", acc)
	}

	history, err := env.exchange.History(ctx, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 1 || history[0].Status != models.ExchangeStatusCompleted {
		t.Errorf("history = %+v", history)
	}
}

func TestRedeemRejections(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedAccount(t, &models.Account{ID: 1, Username: "u1", ReferralCode: "PM1", AvailablePoints: 500})

	if _, err := env.exchange.Redeem(ctx, 1, "bitcoin", 200); !errors.Is(err, ErrUnknownExchangeType) {
		t.Errorf("unknown type = %v, want ErrUnknownExchangeType", err)
	}
	if _, err := env.exchange.Redeem(ctx, 1, "amazon", 50); !errors.Is(err, ErrBelowMinimum) {
		t.Errorf("below minimum = %v, want ErrBelowMinimum", err)
	}
	if _, err := env.exchange.Redeem(ctx, 1, "amazon", 600); !errors.Is(err, ErrInsufficientBalance) {
		t.Errorf("overdraw = %v, want ErrInsufficientBalance", err)
	}

	if acc := env.mustAccount(t, 1); acc.AvailablePoints != 500 {
		t.Errorf("rejected redeems must not move balance, got %d", acc.AvailablePoints)
	}
}

func TestGenerateExchangeCodeFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z0-9]{4}-[A-Z0-9]{4}-[A-Z0-9]{4}$`)
	for i := 0; i < 100; i++ {
		code := generateExchangeCode()
		if !pattern.MatchString(code) {
			t.Fatalf("code %q does not match XXXX-XXXX-XXXX", code)
		}
	}
}

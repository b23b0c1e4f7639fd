package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"pointmax/models"
)

func (e *testEnv) seedCoupon(t *testing.T, coupon *models.Coupon) *models.Coupon {
	t.Helper()
	if err := e.db.Create(coupon).Error; err != nil {
		t.Fatalf("seed coupon: %v", err)
	}
	return coupon
}

func TestCouponUse(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedAccount(t, &models.Account{ID: 1, Username: "u1", ReferralCode: "PM1"})
	env.seedCoupon(t, &models.Coupon{
		Code: "WELCOME500", BonusPoints: 500, UsageLimit: 10,
		ExpiresAt: time.Now().Add(24 * time.Hour), IsActive: true,
	})

	res, err := env.coupon.Use(ctx, 1, "WELCOME500")
	if err != nil {
		t.Fatal(err)
	}
	if res.BonusPoints != 500 {
		t.Errorf("bonus = %d, want 500", res.BonusPoints)
	}
	// 500 优惠码 + 100 first_step（入账后随手重评成就）
	if acc := env.mustAccount(t, 1); acc.AvailablePoints != 600 {
		t.Errorf("balance = %d, want 600", acc.AvailablePoints)
	}

	// 同一用户不能重复兑换同一券
	if _, err := env.coupon.Use(ctx, 1, "WELCOME500"); !errors.Is(err, ErrCouponInvalid) {
		t.Errorf("reuse = %v, want ErrCouponInvalid", err)
	}
	if acc := env.mustAccount(t, 1); acc.AvailablePoints != 600 {
		t.Errorf("reuse credited, balance = %d", acc.AvailablePoints)
	}
}

func TestCouponRejections(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedAccount(t, &models.Account{ID: 1, Username: "u1", ReferralCode: "PM1"})

	env.seedCoupon(t, &models.Coupon{
		Code: "EXPIRED", BonusPoints: 100, UsageLimit: 10,
		ExpiresAt: time.Now().Add(-time.Hour), IsActive: true,
	})
	env.seedCoupon(t, &models.Coupon{
		Code: "DRAINED", BonusPoints: 100, UsageLimit: 2, UsedCount: 2,
		ExpiresAt: time.Now().Add(24 * time.Hour), IsActive: true,
	})
	disabled := env.seedCoupon(t, &models.Coupon{
		Code: "DISABLED", BonusPoints: 100, UsageLimit: 10,
		ExpiresAt: time.Now().Add(24 * time.Hour), IsActive: true,
	})
	// 建表默认 is_active=true，停用要单独落
	if err := env.db.Model(disabled).Update("is_active", false).Error; err != nil {
		t.Fatal(err)
	}

	if _, err := env.coupon.Use(ctx, 1, "NO-SUCH"); !errors.Is(err, ErrCouponInvalid) {
		t.Errorf("missing coupon = %v, want ErrCouponInvalid", err)
	}
	if _, err := env.coupon.Use(ctx, 1, "EXPIRED"); !errors.Is(err, ErrCouponExpired) {
		t.Errorf("expired = %v, want ErrCouponExpired", err)
	}
	if _, err := env.coupon.Use(ctx, 1, "DRAINED"); !errors.Is(err, ErrCouponExhausted) {
		t.Errorf("drained = %v, want ErrCouponExhausted", err)
	}
	if _, err := env.coupon.Use(ctx, 1, "DISABLED"); !errors.Is(err, ErrCouponInvalid) {
		t.Errorf("disabled = %v, want ErrCouponInvalid", err)
	}

	if acc := env.mustAccount(t, 1); acc.AvailablePoints != 0 {
		t.Errorf("rejected coupons credited, balance = %d", acc.AvailablePoints)
	}
}

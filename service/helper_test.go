package service

import (
	"context"
	"testing"

	"pointmax/config"
	"pointmax/dao"
	"pointmax/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 每个用例独立的内存库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	// 内存库绑定单连接，避免连接池拿到空库
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Account{},
		&models.PointsLog{},
		&models.AchievementUnlock{},
		&models.ReferralLink{},
		&models.GachaPlay{},
		&models.Campaign{},
		&models.Coupon{},
		&models.Exchange{},
		&models.DailyBonus{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testRewards() *config.Rewards {
	return &config.Rewards{
		MinRedemption:        100,
		GachaDailyQuota:      3,
		ReferrerWelcomeBonus: 500,
		ReferredWelcomeBonus: 300,
		ReferralRatePerUser:  2,
		ReferralRateCap:      10,
		ProfileBonusRate:     10,
		VerifyBonusRate:      10,
		DailyBonusSchedule:   []int64{10, 20, 30, 50, 100, 150, 500},
		ExchangeRates: map[string]float64{
			"amazon": 1.0,
			"paypay": 1.0,
			"bank":   0.9,
		},
	}
}

type testEnv struct {
	db  *gorm.DB
	cfg *config.Config

	accountDAO *dao.Account
	ledgerDAO  *dao.Ledger

	accounts    *AccountService
	ledger      *LedgerService
	achievement *AchievementService
	referral    *ReferralService
	gacha       *GachaService
	exchange    *ExchangeService
	daily       *DailyService
	coupon      *CouponService
	earn        *EarnService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	cfg := &config.Config{Rewards: testRewards()}
	cache := NewAccountCache()

	accountDAO := dao.NewAccount(db)
	ledgerDAO := dao.NewLedger(db)

	ledger := &LedgerService{
		Config:     cfg,
		DB:         db,
		AccountDAO: accountDAO,
		LedgerDAO:  ledgerDAO,
		Cache:      cache,
	}
	accounts := &AccountService{
		Config:     cfg,
		AccountDAO: accountDAO,
		Cache:      cache,
	}
	achievement := &AchievementService{
		AccountDAO:     accountDAO,
		AchievementDAO: dao.NewAchievement(db),
		Ledger:         ledger,
	}

	return &testEnv{
		db:          db,
		cfg:         cfg,
		accountDAO:  accountDAO,
		ledgerDAO:   ledgerDAO,
		accounts:    accounts,
		ledger:      ledger,
		achievement: achievement,
		referral: &ReferralService{
			Config:       cfg,
			DB:           db,
			AccountDAO:   accountDAO,
			ReferralDAO:  dao.NewReferral(db),
			Cache:        cache,
			Ledger:       ledger,
			Achievements: achievement,
		},
		gacha: &GachaService{
			Config:       cfg,
			DB:           db,
			GachaDAO:     dao.NewGacha(db),
			Ledger:       ledger,
			Achievements: achievement,
		},
		exchange: &ExchangeService{
			Config:       cfg,
			AccountDAO:   accountDAO,
			ExchangeDAO:  dao.NewExchange(db),
			Cache:        cache,
			Ledger:       ledger,
			Achievements: achievement,
		},
		daily: &DailyService{
			Config:       cfg,
			DB:           db,
			AccountDAO:   accountDAO,
			DailyDAO:     dao.NewDaily(db),
			Cache:        cache,
			Ledger:       ledger,
			Achievements: achievement,
		},
		coupon: &CouponService{
			CouponDAO:    dao.NewCoupon(db),
			Ledger:       ledger,
			Achievements: achievement,
		},
		earn: &EarnService{
			Config:       cfg,
			CampaignDAO:  dao.NewCampaign(db),
			Accounts:     accounts,
			Ledger:       ledger,
			Achievements: achievement,
		},
	}
}

// seedAccount 直接落一条账户记录
func (e *testEnv) seedAccount(t *testing.T, acc *models.Account) *models.Account {
	t.Helper()
	if acc.Rank == "" {
		acc.Rank = RankFor(acc.RankPoints).Name
	}
	if err := e.db.Create(acc).Error; err != nil {
		t.Fatalf("seed account: %v", err)
	}
	return acc
}

// mustAccount 读取账户当前状态
func (e *testEnv) mustAccount(t *testing.T, userID uint64) *models.Account {
	t.Helper()
	var acc models.Account
	if err := e.db.First(&acc, "id = ?", userID).Error; err != nil {
		t.Fatalf("load account %d: %v", userID, err)
	}
	return &acc
}

// ledgerSum 流水合计
func (e *testEnv) ledgerSum(t *testing.T, userID uint64) int64 {
	t.Helper()
	total, err := e.ledgerDAO.SumAmounts(context.Background(), userID)
	if err != nil {
		t.Fatalf("sum ledger: %v", err)
	}
	return total
}

// unlockedNames 用户已解锁的成就名集合
func (e *testEnv) unlockedNames(t *testing.T, userID uint64) map[string]bool {
	t.Helper()
	var unlocks []models.AchievementUnlock
	if err := e.db.Where("user_id = ?", userID).Find(&unlocks).Error; err != nil {
		t.Fatalf("load unlocks: %v", err)
	}
	names := make(map[string]bool, len(unlocks))
	for _, u := range unlocks {
		names[u.Name] = true
	}
	return names
}

// unlockBonusSum 成就奖励合计
func (e *testEnv) unlockBonusSum(t *testing.T, userID uint64) int64 {
	t.Helper()
	var unlocks []models.AchievementUnlock
	if err := e.db.Where("user_id = ?", userID).Find(&unlocks).Error; err != nil {
		t.Fatalf("load unlocks: %v", err)
	}
	var sum int64
	for _, u := range unlocks {
		sum += u.AwardedPoints
	}
	return sum
}

// TestMigrateAllModels 九张表同库建表必须成功（索引名冲突会在这里暴露）
func TestMigrateAllModels(t *testing.T) {
	newTestDB(t)
}

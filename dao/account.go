package dao

import (
	"context"
	"pointmax/models"

	"gorm.io/gorm"
)

type Account struct {
	Repo[models.Account]
}

func NewAccount(db *gorm.DB) *Account {
	return &Account{
		Repo: NewRepo[models.Account](db),
	}
}

func (a *Account) GetByID(ctx context.Context, userID uint64) (*models.Account, error) {
	return a.FindByWhere(ctx, "id = ?", userID)
}

func (a *Account) GetByReferralCode(ctx context.Context, code string) (*models.Account, error) {
	return a.FindByWhere(ctx, "referral_code = ?", code)
}

// ApplyCredit 原子加积分：余额、终身积分、等级积分同步增加。
// gorm.Expr 保证并发下的原子加减，避免读改写覆盖。
func (a *Account) ApplyCredit(ctx context.Context, userID uint64, amount int64) (int64, error) {
	result := a.Db.WithContext(ctx).Model(&models.Account{}).
		Where("id = ? AND frozen = ?", userID, false).
		Updates(map[string]interface{}{
			"available_points": gorm.Expr("available_points + ?", amount),
			"total_points":     gorm.Expr("total_points + ?", amount),
			"rank_points":      gorm.Expr("rank_points + ?", amount),
		})
	return result.RowsAffected, result.Error
}

// ApplyDebit 原子扣余额，余额不足时不更新任何行。
// 终身积分与等级积分不受兑换影响。
func (a *Account) ApplyDebit(ctx context.Context, userID uint64, amount int64) (int64, error) {
	result := a.Db.WithContext(ctx).Model(&models.Account{}).
		Where("id = ? AND frozen = ? AND available_points >= ?", userID, false, amount).
		Update("available_points", gorm.Expr("available_points - ?", amount))
	return result.RowsAffected, result.Error
}

func (a *Account) UpdateRank(ctx context.Context, userID uint64, rank string) error {
	return a.Db.WithContext(ctx).Model(&models.Account{}).
		Where("id = ?", userID).
		Update("rank", rank).Error
}

// BumpReferralStats 邀请成功后累加人数并刷新邀请加成比例
func (a *Account) BumpReferralStats(ctx context.Context, userID uint64, bonusRate int) error {
	return a.Db.WithContext(ctx).Model(&models.Account{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"total_referrals":     gorm.Expr("total_referrals + 1"),
			"referral_bonus_rate": bonusRate,
		}).Error
}

func (a *Account) BumpExchangeCount(ctx context.Context, userID uint64) error {
	return a.Db.WithContext(ctx).Model(&models.Account{}).
		Where("id = ?", userID).
		Update("exchange_count", gorm.Expr("exchange_count + 1")).Error
}

// UpdateLoginStreak 刷新连续登录天数与最近签到日期
func (a *Account) UpdateLoginStreak(ctx context.Context, userID uint64, days int, date string) error {
	return a.Db.WithContext(ctx).Model(&models.Account{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"consecutive_login_days": days,
			"last_bonus_date":        date,
		}).Error
}

// SetProfileBonus 资料完善加成只升不降
func (a *Account) SetProfileBonus(ctx context.Context, userID uint64, rate int) error {
	return a.Db.WithContext(ctx).Model(&models.Account{}).
		Where("id = ? AND profile_bonus_rate < ?", userID, rate).
		Update("profile_bonus_rate", rate).Error
}

func (a *Account) MarkPhoneVerified(ctx context.Context, userID uint64) error {
	return a.Db.WithContext(ctx).Model(&models.Account{}).
		Where("id = ?", userID).
		Update("phone_verified", true).Error
}

func (a *Account) MarkIdentityVerified(ctx context.Context, userID uint64) error {
	return a.Db.WithContext(ctx).Model(&models.Account{}).
		Where("id = ?", userID).
		Update("identity_verified", true).Error
}

// Freeze 对账失败后冻结账户，停止自动变动
func (a *Account) Freeze(ctx context.Context, userID uint64) error {
	return a.Db.WithContext(ctx).Model(&models.Account{}).
		Where("id = ?", userID).
		Update("frozen", true).Error
}

// SetBalance 管理修复用：用流水重算结果覆盖余额并解冻
func (a *Account) SetBalance(ctx context.Context, userID uint64, balance int64) error {
	return a.Db.WithContext(ctx).Model(&models.Account{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"available_points": balance,
			"frozen":           false,
		}).Error
}

// Tx 返回绑定到事务的 DAO
func (a *Account) Tx(tx *gorm.DB) *Account {
	return &Account{Repo: NewRepo[models.Account](tx)}
}

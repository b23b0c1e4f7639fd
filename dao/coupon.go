package dao

import (
	"context"
	"pointmax/models"

	"gorm.io/gorm"
)

type Coupon struct {
	Repo[models.Coupon]
}

func NewCoupon(db *gorm.DB) *Coupon {
	return &Coupon{
		Repo: NewRepo[models.Coupon](db),
	}
}

func (c *Coupon) GetByCode(ctx context.Context, code string) (*models.Coupon, error) {
	return c.FindByWhere(ctx, "code = ?", code)
}

// ConsumeUse 原子占用一次使用额度，WHERE 条件兜底使用上限，
// 返回 0 行表示额度已被并发耗尽。
func (c *Coupon) ConsumeUse(ctx context.Context, couponID uint64) (int64, error) {
	result := c.Db.WithContext(ctx).Model(&models.Coupon{}).
		Where("id = ? AND used_count < usage_limit", couponID).
		Update("used_count", gorm.Expr("used_count + 1"))
	return result.RowsAffected, result.Error
}

// Tx 返回绑定到事务的 DAO
func (c *Coupon) Tx(tx *gorm.DB) *Coupon {
	return &Coupon{Repo: NewRepo[models.Coupon](tx)}
}

package dao

import (
	"context"
	"pointmax/models"
	"time"

	"gorm.io/gorm"
)

type Daily struct {
	Repo[models.DailyBonus]
}

func NewDaily(db *gorm.DB) *Daily {
	return &Daily{
		Repo: NewRepo[models.DailyBonus](db),
	}
}

func (d *Daily) CreateClaim(ctx context.Context, claim *models.DailyBonus) error {
	return d.Db.WithContext(ctx).Create(claim).Error
}

// HasClaimedBetween 当日是否已领取
func (d *Daily) HasClaimedBetween(ctx context.Context, userID uint64, from, to time.Time) (bool, error) {
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.DailyBonus{}).
		Where("user_id = ? AND claimed_at >= ? AND claimed_at < ?", userID, from, to).
		Count(&count).Error
	return count > 0, err
}

// Tx 返回绑定到事务的 DAO
func (d *Daily) Tx(tx *gorm.DB) *Daily {
	return &Daily{Repo: NewRepo[models.DailyBonus](tx)}
}

package dao

import (
	"context"
	"pointmax/models"
	"time"

	"gorm.io/gorm"
)

type Gacha struct {
	Repo[models.GachaPlay]
}

func NewGacha(db *gorm.DB) *Gacha {
	return &Gacha{
		Repo: NewRepo[models.GachaPlay](db),
	}
}

// CountBetween 统计窗口内抽奖次数，用于当日配额判定
func (g *Gacha) CountBetween(ctx context.Context, userID uint64, from, to time.Time) (int64, error) {
	var count int64
	err := g.Db.WithContext(ctx).Model(&models.GachaPlay{}).
		Where("user_id = ? AND played_at >= ? AND played_at < ?", userID, from, to).
		Count(&count).Error
	return count, err
}

func (g *Gacha) CreatePlay(ctx context.Context, play *models.GachaPlay) error {
	return g.Db.WithContext(ctx).Create(play).Error
}

func (g *Gacha) ListByUser(ctx context.Context, userID uint64, limit int) ([]models.GachaPlay, error) {
	var plays []models.GachaPlay
	err := g.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("played_at DESC").
		Limit(limit).
		Find(&plays).Error
	return plays, err
}

// Tx 返回绑定到事务的 DAO
func (g *Gacha) Tx(tx *gorm.DB) *Gacha {
	return &Gacha{Repo: NewRepo[models.GachaPlay](tx)}
}

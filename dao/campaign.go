package dao

import (
	"context"
	"errors"
	"pointmax/models"
	"time"

	"gorm.io/gorm"
)

type Campaign struct {
	Repo[models.Campaign]
}

func NewCampaign(db *gorm.DB) *Campaign {
	return &Campaign{
		Repo: NewRepo[models.Campaign](db),
	}
}

// FindActiveBoost 查询指定分类当前生效的加倍活动，没有则返回 nil
func (c *Campaign) FindActiveBoost(ctx context.Context, category string, now time.Time) (*models.Campaign, error) {
	var campaign models.Campaign
	err := c.Db.WithContext(ctx).
		Where("target_category = ? AND is_active = ? AND active_from <= ? AND active_to >= ?",
			category, true, now, now).
		Order("boost_multiplier DESC").
		First(&campaign).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (c *Campaign) ListActive(ctx context.Context, now time.Time) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	err := c.Db.WithContext(ctx).
		Where("is_active = ? AND active_from <= ? AND active_to >= ?", true, now, now).
		Find(&campaigns).Error
	return campaigns, err
}

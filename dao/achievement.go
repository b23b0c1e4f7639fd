package dao

import (
	"context"
	"pointmax/models"

	"gorm.io/gorm"
)

type Achievement struct {
	Repo[models.AchievementUnlock]
}

func NewAchievement(db *gorm.DB) *Achievement {
	return &Achievement{
		Repo: NewRepo[models.AchievementUnlock](db),
	}
}

func (a *Achievement) IsUnlocked(ctx context.Context, userID uint64, name string) (bool, error) {
	return a.IsExist(ctx, "user_id = ? AND name = ?", userID, name)
}

// CreateUnlock 解锁记录先落库，(user_id, name) 唯一索引兜底防重复发奖
func (a *Achievement) CreateUnlock(ctx context.Context, unlock *models.AchievementUnlock) error {
	return a.Db.WithContext(ctx).Create(unlock).Error
}

func (a *Achievement) ListByUser(ctx context.Context, userID uint64) ([]models.AchievementUnlock, error) {
	var unlocks []models.AchievementUnlock
	err := a.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("unlocked_at ASC").
		Find(&unlocks).Error
	return unlocks, err
}

// Tx 返回绑定到事务的 DAO
func (a *Achievement) Tx(tx *gorm.DB) *Achievement {
	return &Achievement{Repo: NewRepo[models.AchievementUnlock](tx)}
}

package dao

import (
	"context"
	"pointmax/models"

	"gorm.io/gorm"
)

type Exchange struct {
	Repo[models.Exchange]
}

func NewExchange(db *gorm.DB) *Exchange {
	return &Exchange{
		Repo: NewRepo[models.Exchange](db),
	}
}

func (e *Exchange) CreateRecord(ctx context.Context, record *models.Exchange) error {
	return e.Db.WithContext(ctx).Create(record).Error
}

func (e *Exchange) ListByUser(ctx context.Context, userID uint64, limit int) ([]models.Exchange, error) {
	var records []models.Exchange
	err := e.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

// Tx 返回绑定到事务的 DAO
func (e *Exchange) Tx(tx *gorm.DB) *Exchange {
	return &Exchange{Repo: NewRepo[models.Exchange](tx)}
}

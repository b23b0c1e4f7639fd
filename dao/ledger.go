package dao

import (
	"context"
	"pointmax/models"

	"gorm.io/gorm"
)

type Ledger struct {
	Repo[models.PointsLog]
}

func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{
		Repo: NewRepo[models.PointsLog](db),
	}
}

// ExistsBySource 幂等检查：同一业务单号同一用户只允许入账一次
func (l *Ledger) ExistsBySource(ctx context.Context, userID uint64, sourceID string) (bool, error) {
	var count int64
	err := l.Db.WithContext(ctx).Model(&models.PointsLog{}).
		Where("user_id = ? AND source_id = ?", userID, sourceID).
		Count(&count).Error
	return count > 0, err
}

func (l *Ledger) Append(ctx context.Context, entry *models.PointsLog) error {
	return l.Db.WithContext(ctx).Create(entry).Error
}

// SumAmounts 对账基准：该用户全部流水之和
func (l *Ledger) SumAmounts(ctx context.Context, userID uint64) (int64, error) {
	var res struct {
		Total int64
	}
	err := l.Db.WithContext(ctx).Model(&models.PointsLog{}).
		Select("IFNULL(SUM(amount), 0) AS total").
		Where("user_id = ?", userID).
		Scan(&res).Error
	return res.Total, err
}

// ListRecords 游标分页，action 过滤收入/支出
func (l *Ledger) ListRecords(ctx context.Context, userID uint64, action string, cursor int64, limit int) ([]models.PointsLog, error) {
	var logs []models.PointsLog
	query := l.Db.WithContext(ctx).Where("user_id = ?", userID)

	switch action {
	case "income":
		query = query.Where("amount > ?", 0)
	case "expense":
		query = query.Where("amount < ?", 0)
	}

	if cursor > 0 {
		query = query.Where("id < ?", cursor)
	}

	err := query.Order("id DESC").Limit(limit).Find(&logs).Error
	return logs, err
}

// Tx 返回绑定到事务的 DAO
func (l *Ledger) Tx(tx *gorm.DB) *Ledger {
	return &Ledger{Repo: NewRepo[models.PointsLog](tx)}
}

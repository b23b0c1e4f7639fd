package dao

import (
	"context"
	"pointmax/models"

	"gorm.io/gorm"
)

type Referral struct {
	Repo[models.ReferralLink]
}

func NewReferral(db *gorm.DB) *Referral {
	return &Referral{
		Repo: NewRepo[models.ReferralLink](db),
	}
}

// IsLinked 每个被邀请人只允许绑定一个邀请人
func (r *Referral) IsLinked(ctx context.Context, referredID uint64) (bool, error) {
	return r.IsExist(ctx, "referred_id = ?", referredID)
}

func (r *Referral) CreateLink(ctx context.Context, link *models.ReferralLink) error {
	return r.Db.WithContext(ctx).Create(link).Error
}

func (r *Referral) CountByReferrer(ctx context.Context, referrerID uint64) (int64, error) {
	var count int64
	err := r.Db.WithContext(ctx).Model(&models.ReferralLink{}).
		Where("referrer_id = ?", referrerID).
		Count(&count).Error
	return count, err
}

// Tx 返回绑定到事务的 DAO
func (r *Referral) Tx(tx *gorm.DB) *Referral {
	return &Referral{Repo: NewRepo[models.ReferralLink](tx)}
}

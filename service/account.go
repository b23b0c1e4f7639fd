package service

import (
	"context"
	"errors"
	"fmt"
	"pointmax/config"
	"pointmax/dao"
	"pointmax/models"

	"github.com/speps/go-hashids/v2"
	"gorm.io/gorm"
)

type AccountService struct {
	Config     *config.Config
	AccountDAO *dao.Account
	Cache      *AccountCache
}

var _ IAccountService = (*AccountService)(nil)

type IAccountService interface {
	Register(ctx context.Context, userID uint64, username string) (*models.Account, error)
	GetAccount(ctx context.Context, userID uint64) (*models.Account, error)
	UpdateProfile(ctx context.Context, userID uint64, profile ProfileInput) (*models.Account, error)
	MarkPhoneVerified(ctx context.Context, userID uint64) error
	MarkIdentityVerified(ctx context.Context, userID uint64) error
}

// ProfileInput 资料完善度判定所需字段，资料本身由会话层持有
type ProfileInput struct {
	Gender     string   `json:"gender"`
	AgeGroup   string   `json:"age_group"`
	Occupation string   `json:"occupation"`
	Region     string   `json:"region"`
	Interests  []string `json:"interests"`
}

// Complete 性别、年龄段、职业、地区、至少一个兴趣都填写才算完善
func (p ProfileInput) Complete() bool {
	return p.Gender != "" && p.AgeGroup != "" && p.Occupation != "" &&
		p.Region != "" && len(p.Interests) > 0
}

func (s *AccountService) Register(ctx context.Context, userID uint64, username string) (*models.Account, error) {
	code, err := s.generateReferralCode(userID)
	if err != nil {
		return nil, fmt.Errorf("生成邀请码失败: %w", err)
	}

	account := &models.Account{
		ID:           userID,
		Username:     username,
		ReferralCode: code,
		Rank:         RankFor(0).Name,
	}
	if err := s.AccountDAO.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("创建积分账户失败: %w", err)
	}
	return account, nil
}

// GetAccount 优先读会话缓存，未命中回源数据库
func (s *AccountService) GetAccount(ctx context.Context, userID uint64) (*models.Account, error) {
	if account, ok := s.Cache.Get(userID); ok {
		return account, nil
	}

	account, err := s.AccountDAO.GetByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}

	s.Cache.Set(account)
	return account, nil
}

// UpdateProfile 资料完善后一次性设置 +10% 加成，只升不降
func (s *AccountService) UpdateProfile(ctx context.Context, userID uint64, profile ProfileInput) (*models.Account, error) {
	if _, err := s.GetAccount(ctx, userID); err != nil {
		return nil, err
	}

	if profile.Complete() {
		if err := s.AccountDAO.SetProfileBonus(ctx, userID, s.Config.Rewards.ProfileBonusRate); err != nil {
			return nil, fmt.Errorf("更新资料加成失败: %w", err)
		}
	}

	s.Cache.Invalidate(userID)
	return s.GetAccount(ctx, userID)
}

func (s *AccountService) MarkPhoneVerified(ctx context.Context, userID uint64) error {
	if err := s.AccountDAO.MarkPhoneVerified(ctx, userID); err != nil {
		return err
	}
	s.Cache.Invalidate(userID)
	return nil
}

func (s *AccountService) MarkIdentityVerified(ctx context.Context, userID uint64) error {
	if err := s.AccountDAO.MarkIdentityVerified(ctx, userID); err != nil {
		return err
	}
	s.Cache.Invalidate(userID)
	return nil
}

// generateReferralCode 用户ID 编码为 PM 前缀的短码
func (s *AccountService) generateReferralCode(userID uint64) (string, error) {
	hd := hashids.NewData()
	hd.Salt = "pointmax-referral"
	hd.MinLength = 8
	hd.Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	h, err := hashids.NewWithData(hd)
	if err != nil {
		return "", err
	}
	code, err := h.EncodeInt64([]int64{int64(userID)})
	if err != nil {
		return "", err
	}
	return "PM" + code, nil
}

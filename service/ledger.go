package service

import (
	"context"
	"errors"
	"fmt"
	"pointmax/config"
	"pointmax/dao"
	"pointmax/dao/cache"
	"pointmax/models"
	"pointmax/pkg/log"
	"pointmax/types"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LedgerService 积分入账/扣账的唯一入口。
// 并发安全依赖存储侧原子加减（gorm.Expr），不做读改写。
type LedgerService struct {
	Config      *config.Config
	DB          *gorm.DB
	AccountDAO  *dao.Account
	LedgerDAO   *dao.Ledger
	Cache       *AccountCache
	Leaderboard *cache.LeaderboardStorage
}

var _ ILedgerService = (*LedgerService)(nil)

type ILedgerService interface {
	Credit(ctx context.Context, userID uint64, amount int64, category models.Category, sourceID, remark string) (*models.Account, error)
	Debit(ctx context.Context, userID uint64, amount int64, category models.Category, sourceID, remark string) (*models.Account, error)
	Reconcile(ctx context.Context, userID uint64) error
	Repair(ctx context.Context, userID uint64) (*models.Account, error)
	GetDashboard(ctx context.Context, userID uint64) (*types.PointsAccount, error)
	ListRecords(ctx context.Context, userID uint64, action string, cursor int64, limit int) (*types.ListPointsRecord, error)
}

// Credit 入账：余额、终身积分、等级积分同增，等级重算，追加流水。
// 同一 (userID, sourceID) 只会入账一次。
func (s *LedgerService) Credit(ctx context.Context, userID uint64, amount int64, category models.Category, sourceID, remark string) (*models.Account, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}

	var snapshot models.Account
	err := s.runTx(ctx, func(tx *gorm.DB) error {
		accounts := s.AccountDAO.Tx(tx)
		ledger := s.LedgerDAO.Tx(tx)

		// 幂等检查
		if sourceID != "" {
			exists, err := ledger.ExistsBySource(ctx, userID, sourceID)
			if err != nil {
				return fmt.Errorf("检查积分变动记录失败: %w", err)
			}
			if exists {
				return ErrDuplicateSource
			}
		}

		rows, err := accounts.ApplyCredit(ctx, userID, amount)
		if err != nil {
			return fmt.Errorf("更新用户积分余额失败: %w", err)
		}
		if rows == 0 {
			return s.classifyNoRows(ctx, accounts, userID)
		}

		// 账户快照 + 等级重算
		acc, err := accounts.GetByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("读取积分账户失败: %w", err)
		}
		if tier := RankFor(acc.RankPoints); tier.Name != acc.Rank {
			if err := accounts.UpdateRank(ctx, userID, tier.Name); err != nil {
				return fmt.Errorf("更新用户等级失败: %w", err)
			}
			acc.Rank = tier.Name
		}
		snapshot = *acc

		return ledger.Append(ctx, &models.PointsLog{
			UserID:   userID,
			Amount:   amount,
			Balance:  acc.AvailablePoints,
			Category: category,
			SourceID: sourceID,
			Remark:   remark,
		})
	})
	if err != nil {
		return nil, err
	}

	s.Cache.Invalidate(userID)
	s.bumpLeaderboard(ctx, userID, amount)
	return &snapshot, nil
}

// Debit 扣账：只减可用余额，终身积分与等级不受影响。
// 余额校验与扣减在同一条 UPDATE 里完成，并发下不会扣穿。
func (s *LedgerService) Debit(ctx context.Context, userID uint64, amount int64, category models.Category, sourceID, remark string) (*models.Account, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}
	if amount < s.Config.Rewards.MinRedemption {
		return nil, ErrBelowMinimum
	}

	var snapshot models.Account
	err := s.runTx(ctx, func(tx *gorm.DB) error {
		accounts := s.AccountDAO.Tx(tx)
		ledger := s.LedgerDAO.Tx(tx)

		if sourceID != "" {
			exists, err := ledger.ExistsBySource(ctx, userID, sourceID)
			if err != nil {
				return fmt.Errorf("检查积分变动记录失败: %w", err)
			}
			if exists {
				return ErrDuplicateSource
			}
		}

		rows, err := accounts.ApplyDebit(ctx, userID, amount)
		if err != nil {
			return fmt.Errorf("扣减用户积分余额失败: %w", err)
		}
		if rows == 0 {
			if err := s.classifyNoRows(ctx, accounts, userID); err != nil {
				return err
			}
			return ErrInsufficientBalance
		}

		acc, err := accounts.GetByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("读取积分账户失败: %w", err)
		}
		snapshot = *acc

		return ledger.Append(ctx, &models.PointsLog{
			UserID:   userID,
			Amount:   -amount,
			Balance:  acc.AvailablePoints,
			Category: category,
			SourceID: sourceID,
			Remark:   remark,
		})
	})
	if err != nil {
		return nil, err
	}

	s.Cache.Invalidate(userID)
	return &snapshot, nil
}

const txRetries = 3

// runTx 事务整体重试存储层瞬时故障，业务拒绝直接返回。
// 整个事务原子重放，幂等检查在事务内，重试不会重复入账。
func (s *LedgerService) runTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	var err error
	for attempt := 0; attempt < txRetries; attempt++ {
		err = s.DB.WithContext(ctx).Transaction(fn)
		if err == nil || IsBusinessReject(err) {
			return err
		}
		log.L.Warn("ledger transaction retry",
			zap.Int("attempt", attempt+1), zap.Error(err))

		select {
		case <-ctx.Done():
			return err
		case <-time.After(time.Duration(attempt+1) * 50 * time.Millisecond):
		}
	}
	return err
}

// classifyNoRows 更新影响 0 行时区分账户不存在/已冻结
func (s *LedgerService) classifyNoRows(ctx context.Context, accounts *dao.Account, userID uint64) error {
	acc, err := accounts.GetByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrAccountNotFound
	}
	if err != nil {
		return fmt.Errorf("读取积分账户失败: %w", err)
	}
	if acc.Frozen {
		return ErrAccountFrozen
	}
	return nil
}

// Reconcile 对账：余额必须等于流水合计。
// 不一致时冻结账户并返回 ErrInvariantViolation，不做静默自动修复。
func (s *LedgerService) Reconcile(ctx context.Context, userID uint64) error {
	acc, err := s.AccountDAO.GetByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrAccountNotFound
	}
	if err != nil {
		return err
	}

	total, err := s.LedgerDAO.SumAmounts(ctx, userID)
	if err != nil {
		return err
	}

	if acc.AvailablePoints != total {
		log.L.Error("ledger reconciliation mismatch",
			zap.Uint64("user_id", userID),
			zap.Int64("balance", acc.AvailablePoints),
			zap.Int64("ledger_sum", total),
		)
		if err := s.AccountDAO.Freeze(ctx, userID); err != nil {
			return fmt.Errorf("冻结账户失败: %w", err)
		}
		s.Cache.Invalidate(userID)
		return fmt.Errorf("%w: balance=%d ledger=%d", ErrInvariantViolation, acc.AvailablePoints, total)
	}
	return nil
}

// Repair 管理修复：以流水合计覆盖余额并解冻
func (s *LedgerService) Repair(ctx context.Context, userID uint64) (*models.Account, error) {
	total, err := s.LedgerDAO.SumAmounts(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.AccountDAO.SetBalance(ctx, userID, total); err != nil {
		return nil, err
	}
	s.Cache.Invalidate(userID)

	acc, err := s.AccountDAO.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	log.L.Info("account balance repaired from ledger",
		zap.Uint64("user_id", userID), zap.Int64("balance", total))
	return acc, nil
}

func (s *LedgerService) GetDashboard(ctx context.Context, userID uint64) (*types.PointsAccount, error) {
	acc, err := s.AccountDAO.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &types.PointsAccount{Rank: RankFor(0).Name}, nil
		}
		return nil, errors.New("查询积分账户失败")
	}
	return &types.PointsAccount{
		Balance:        acc.AvailablePoints,
		TotalEarned:    acc.TotalPoints,
		RankPoints:     acc.RankPoints,
		Rank:           acc.Rank,
		RankMultiplier: RankMultiplier(acc.Rank),
	}, nil
}

func (s *LedgerService) ListRecords(ctx context.Context, userID uint64, action string, cursor int64, limit int) (*types.ListPointsRecord, error) {
	logs, err := s.LedgerDAO.ListRecords(ctx, userID, action, cursor, limit+1)
	if err != nil {
		return nil, errors.New("查询积分流水失败")
	}

	resp := &types.ListPointsRecord{
		Records: make([]types.PointRecord, 0),
		HasMore: false,
	}

	if len(logs) > limit {
		resp.HasMore = true
		logs = logs[:limit]
		resp.NextCursor = int64(logs[len(logs)-1].ID)
	}

	for _, l := range logs {
		orderType := "INCOME"
		if l.Amount < 0 {
			orderType = "EXPENSE"
		}
		resp.Records = append(resp.Records, types.PointRecord{
			ID:          l.ID,
			Amount:      l.Amount,
			Balance:     l.Balance,
			Category:    l.Category.String(),
			Description: l.Remark,
			OrderType:   orderType,
			CreatedAt:   l.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return resp, nil
}

// bumpLeaderboard 排行榜尽力而为，失败只记日志不影响入账
func (s *LedgerService) bumpLeaderboard(ctx context.Context, userID uint64, delta int64) {
	if s.Leaderboard == nil {
		return
	}
	if err := s.Leaderboard.IncrScore(ctx, userID, delta); err != nil {
		log.L.Warn("leaderboard update failed",
			zap.Uint64("user_id", userID), zap.Error(err))
	}
}

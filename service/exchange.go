package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"pointmax/config"
	"pointmax/dao"
	"pointmax/models"
	"pointmax/pkg/log"
	"pointmax/pkg/snowflake"
	"pointmax/types"
	"strings"

	"go.uber.org/zap"
)

// ExchangeService 积分兑换：只扣可用余额，等级与终身积分不回退
type ExchangeService struct {
	Config       *config.Config
	AccountDAO   *dao.Account
	ExchangeDAO  *dao.Exchange
	Cache        *AccountCache
	Ledger       ILedgerService
	Achievements IAchievementService
}

var _ IExchangeService = (*ExchangeService)(nil)

type IExchangeService interface {
	Redeem(ctx context.Context, userID uint64, exchangeType string, amount int64) (*types.ExchangeResult, error)
	History(ctx context.Context, userID uint64, limit int) ([]types.ExchangeRecord, error)
}

// Redeem 扣账成功后生成兑换码并落兑换记录。
// 扣账后的步骤失败返回部分生效信号，扣账凭 exchange 单号可追溯。
func (s *ExchangeService) Redeem(ctx context.Context, userID uint64, exchangeType string, amount int64) (*types.ExchangeResult, error) {
	rate, ok := s.Config.Rewards.ExchangeRates[exchangeType]
	if !ok {
		return nil, ErrUnknownExchangeType
	}

	sourceID := snowflake.GenSourceID("exchange")
	remark := fmt.Sprintf("积分兑换（%s）", exchangeType)
	acc, err := s.Ledger.Debit(ctx, userID, amount, models.CategoryExchange, sourceID, remark)
	if err != nil {
		return nil, err
	}

	record := models.Exchange{
		UserID:        userID,
		ExchangeType:  exchangeType,
		PointsUsed:    amount,
		ExchangeValue: int64(math.Floor(float64(amount) * rate)),
		Code:          generateExchangeCode(),
		Status:        models.ExchangeStatusCompleted,
	}
	if err := s.ExchangeDAO.CreateRecord(ctx, &record); err != nil {
		log.L.Error("exchange record create failed after debit",
			zap.Uint64("user_id", userID),
			zap.String("source_id", sourceID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: 已扣积分但兑换记录未生成: %v", ErrPartiallyApplied, err)
	}

	if err := s.AccountDAO.BumpExchangeCount(ctx, userID); err != nil {
		log.L.Warn("bump exchange count failed", zap.Uint64("user_id", userID), zap.Error(err))
	}
	s.Cache.Invalidate(userID)

	// 兑换计数已刷新，按最新指标重评成就（失败不影响本次兑换）
	if _, err := s.Achievements.Evaluate(ctx, userID); err != nil {
		log.L.Warn("achievement evaluate after redeem failed",
			zap.Uint64("user_id", userID), zap.Error(err))
	}

	return &types.ExchangeResult{
		ExchangeType:  exchangeType,
		PointsUsed:    amount,
		ExchangeValue: record.ExchangeValue,
		Code:          record.Code,
		Balance:       acc.AvailablePoints,
	}, nil
}

func (s *ExchangeService) History(ctx context.Context, userID uint64, limit int) ([]types.ExchangeRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	records, err := s.ExchangeDAO.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, errors.New("查询兑换记录失败")
	}

	resp := make([]types.ExchangeRecord, 0, len(records))
	for _, r := range records {
		resp = append(resp, types.ExchangeRecord{
			ExchangeType:  r.ExchangeType,
			PointsUsed:    r.PointsUsed,
			ExchangeValue: r.ExchangeValue,
			Code:          r.Code,
			Status:        r.Status,
			CreatedAt:     r.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return resp, nil
}

const exchangeCodeChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateExchangeCode XXXX-XXXX-XXXX 形式的兑换码
func generateExchangeCode() string {
	var b strings.Builder
	for i := 0; i < 12; i++ {
		if i > 0 && i%4 == 0 {
			b.WriteByte('-')
		}
		b.WriteByte(exchangeCodeChars[rand.Intn(len(exchangeCodeChars))])
	}
	return b.String()
}

package service

import "errors"

// 业务规则拒绝：入库前返回，调用方可提示用户后重试
var (
	ErrInvalidAmount       = errors.New("积分数额必须大于0")
	ErrInvalidCategory     = errors.New("无效的积分变动类型")
	ErrAccountNotFound     = errors.New("积分账户不存在")
	ErrAccountFrozen       = errors.New("账户已冻结，禁止积分变动")
	ErrDuplicateSource     = errors.New("该业务单号已处理，请勿重复操作")
	ErrInsufficientBalance = errors.New("积分余额不足")
	ErrBelowMinimum        = errors.New("低于最低兑换积分")
	ErrQuotaExceeded       = errors.New("今日抽奖次数已用完")
	ErrUnknownReferralCode = errors.New("邀请码无效")
	ErrAlreadyLinked       = errors.New("该用户已绑定邀请人")
	ErrAlreadyClaimed      = errors.New("今日签到奖励已领取")
	ErrUnknownExchangeType = errors.New("不支持的兑换类型")
	ErrCouponInvalid       = errors.New("无效的优惠码")
	ErrCouponExpired       = errors.New("优惠码已过期")
	ErrCouponExhausted     = errors.New("优惠码使用次数已达上限")
)

// businessErrors 规则拒绝类错误，重试不会改变结果
var businessErrors = []error{
	ErrInvalidAmount,
	ErrInvalidCategory,
	ErrAccountNotFound,
	ErrAccountFrozen,
	ErrDuplicateSource,
	ErrInsufficientBalance,
	ErrBelowMinimum,
	ErrQuotaExceeded,
	ErrUnknownReferralCode,
	ErrAlreadyLinked,
	ErrAlreadyClaimed,
	ErrUnknownExchangeType,
	ErrCouponInvalid,
	ErrCouponExpired,
	ErrCouponExhausted,
}

// IsBusinessReject 业务规则拒绝判定，区别于可重试的存储故障
func IsBusinessReject(err error) bool {
	for _, be := range businessErrors {
		if errors.Is(err, be) {
			return true
		}
	}
	return false
}

// 系统级状态：需要人工或带外修复
var (
	// ErrInvariantViolation 余额与流水合计不一致，账户已冻结待人工处理
	ErrInvariantViolation = errors.New("余额与流水对账不一致")

	// ErrPartiallyApplied 多步流程只完成了一部分。
	// 凭流水的业务单号幂等，修复任务可以安全重放未完成的入账。
	ErrPartiallyApplied = errors.New("操作部分生效，待修复")
)

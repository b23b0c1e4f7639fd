package types

// DailyBonusResult 签到结果
type DailyBonusResult struct {
	DayNumber int   `json:"day_number"` // 连续登录第几天
	Points    int64 `json:"points"`
}

// CouponResult 优惠码兑换结果
type CouponResult struct {
	Code        string `json:"code"`
	BonusPoints int64  `json:"bonus_points"`
}

// UseCouponReq 优惠码兑换请求
type UseCouponReq struct {
	Code string `json:"code" binding:"required"`
}

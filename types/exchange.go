package types

// RedeemReq 积分兑换请求
type RedeemReq struct {
	ExchangeType string `json:"exchange_type" binding:"required"`
	Amount       int64  `json:"amount" binding:"required,gt=0"`
}

// ExchangeResult 兑换结果
type ExchangeResult struct {
	ExchangeType  string `json:"exchange_type"`
	PointsUsed    int64  `json:"points_used"`
	ExchangeValue int64  `json:"exchange_value"`
	Code          string `json:"code"` // 发给用户的兑换码
	Balance       int64  `json:"balance"`
}

// ExchangeRecord 兑换历史条目
type ExchangeRecord struct {
	ExchangeType  string `json:"exchange_type"`
	PointsUsed    int64  `json:"points_used"`
	ExchangeValue int64  `json:"exchange_value"`
	Code          string `json:"code"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}

package types

// PointsAccount 账户概览
type PointsAccount struct {
	Balance        int64   `json:"balance"`      // 当前可用积分余额
	TotalEarned    int64   `json:"total_earned"` // 历史累计获得
	RankPoints     int64   `json:"rank_points"`
	Rank           string  `json:"rank"`
	RankMultiplier float64 `json:"rank_multiplier"`
}

// PointRecord 每一条流水的细节
type PointRecord struct {
	ID          uint64 `json:"id"`
	Amount      int64  `json:"amount"`  // 变动数值（正数入账，负数支出）
	Balance     int64  `json:"balance"` // 变动后余额快照
	Category    string `json:"category"`
	Description string `json:"description"`
	OrderType   string `json:"order_type"` // INCOME / EXPENSE
	CreatedAt   string `json:"created_at"`
}

// ListPointsRecord 流水列表包装
type ListPointsRecord struct {
	Records    []PointRecord `json:"records"`
	NextCursor int64         `json:"next_cursor"` // 游标：用于下一页请求
	HasMore    bool          `json:"has_more"`
}

type ListPointRecordsReq struct {
	Action string `form:"action" binding:"omitempty,oneof=all income expense"` // 默认全部
	Cursor int64  `form:"cursor"`
	Limit  int    `form:"limit,default=10"`
}

// EarnBreakdown 积分计算过程分解，用于展示与审计
type EarnBreakdown struct {
	BasePoints     int64   `json:"base_points"`
	CampaignBoost  float64 `json:"campaign_boost"`
	AfterCampaign  int64   `json:"after_campaign"`
	RankMultiplier float64 `json:"rank_multiplier"`
	AfterRank      int64   `json:"after_rank"`
	BonusRate      int     `json:"bonus_rate"` // 各加成百分比合计
	FinalPoints    int64   `json:"final_points"`
	ProfileRate    int     `json:"profile_rate"`
	ReferralRate   int     `json:"referral_rate"`
	PhoneRate      int     `json:"phone_rate"`
	IdentityRate   int     `json:"identity_rate"`
}

// EarnResult 入账结果：计算明细 + 入账后快照 + 连带解锁的成就
type EarnResult struct {
	Breakdown EarnBreakdown         `json:"breakdown"`
	Balance   int64                 `json:"balance"`
	Rank      string                `json:"rank"`
	Unlocked  []UnlockedAchievement `json:"unlocked_achievements"`
}

// EarnReq 任务/问卷完成入账请求
type EarnReq struct {
	BasePoints int64  `json:"base_points" binding:"required,gt=0"`
	Category   string `json:"category" binding:"required"`  // 活动加倍匹配用的任务分类
	SourceID   string `json:"source_id" binding:"required"` // 任务/问卷唯一单号（幂等关键）
	Survey     bool   `json:"survey"`                       // true 走问卷类型
	Remark     string `json:"remark"`
}

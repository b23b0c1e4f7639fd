package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewAccount,
	NewLedger,
	NewAchievement,
	NewReferral,
	NewGacha,
	NewCampaign,
	NewCoupon,
	NewExchange,
	NewDaily,
)

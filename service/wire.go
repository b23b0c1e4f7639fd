package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewAccountCache,

	wire.Struct(new(AccountService), "*"),
	wire.Bind(new(IAccountService), new(*AccountService)),

	wire.Struct(new(LedgerService), "*"),
	wire.Bind(new(ILedgerService), new(*LedgerService)),

	wire.Struct(new(AchievementService), "*"),
	wire.Bind(new(IAchievementService), new(*AchievementService)),

	wire.Struct(new(ReferralService), "*"),
	wire.Bind(new(IReferralService), new(*ReferralService)),

	wire.Struct(new(GachaService), "*"),
	wire.Bind(new(IGachaService), new(*GachaService)),

	wire.Struct(new(ExchangeService), "*"),
	wire.Bind(new(IExchangeService), new(*ExchangeService)),

	wire.Struct(new(DailyService), "*"),
	wire.Bind(new(IDailyService), new(*DailyService)),

	wire.Struct(new(CouponService), "*"),
	wire.Bind(new(ICouponService), new(*CouponService)),

	wire.Struct(new(EarnService), "*"),
	wire.Bind(new(IEarnService), new(*EarnService)),

	wire.Struct(new(RankingService), "*"),
	wire.Bind(new(IRankingService), new(*RankingService)),
)

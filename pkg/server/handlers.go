package server

import (
	"pointmax/handler"
)

type Handlers struct {
	Account     *handler.Account
	Point       *handler.Point
	Achievement *handler.Achievement
	Referral    *handler.Referral
	Gacha       *handler.Gacha
	Exchange    *handler.Exchange
	Daily       *handler.Daily
	Leaderboard *handler.Leaderboard
}

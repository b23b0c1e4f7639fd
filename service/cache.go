package service

import (
	"pointmax/models"
	"strconv"

	cmap "github.com/orcaman/concurrent-map/v2"
)

// AccountCache 当前会话账户快照缓存。
// 引擎无状态，快照只做快速读，任何余额变动后立即失效。
type AccountCache struct {
	m cmap.ConcurrentMap[string, models.Account]
}

func NewAccountCache() *AccountCache {
	return &AccountCache{m: cmap.New[models.Account]()}
}

func (c *AccountCache) Get(userID uint64) (*models.Account, bool) {
	v, ok := c.m.Get(key(userID))
	if !ok {
		return nil, false
	}
	return &v, true
}

func (c *AccountCache) Set(account *models.Account) {
	c.m.Set(key(account.ID), *account)
}

func (c *AccountCache) Invalidate(userID uint64) {
	c.m.Remove(key(userID))
}

func key(userID uint64) string {
	return strconv.FormatUint(userID, 10)
}

package ratelimit

import (
	"fmt"
	"sync"
	"time"
)

// Cooldown 按群+用户维度限制请求频率的冷却表，进程内有效，重启后清零
type Cooldown struct {
	mu       sync.Mutex
	interval time.Duration
	lastSeen map[string]time.Time
	now      func() time.Time
}

func NewCooldown(interval time.Duration) *Cooldown {
	return &Cooldown{
		interval: interval,
		lastSeen: make(map[string]time.Time),
		now:      time.Now,
	}
}

// Allow 判断该用户在该群是否可以发起新请求，允许时记录本次请求时间
func (c *Cooldown) Allow(chatID, userID int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cooldownKey(chatID, userID)
	now := c.now()
	if last, ok := c.lastSeen[key]; ok && now.Sub(last) < c.interval {
		return false
	}
	c.lastSeen[key] = now
	return true
}

// Remaining 距离下次允许请求的剩余时长，未处于冷却期时返回 0
func (c *Cooldown) Remaining(chatID, userID int64) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	last, ok := c.lastSeen[cooldownKey(chatID, userID)]
	if !ok {
		return 0
	}
	remaining := c.interval - c.now().Sub(last)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Sweep 清理已过冷却期的记录，返回清理数量
func (c *Cooldown) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for key, last := range c.lastSeen {
		if now.Sub(last) >= c.interval {
			delete(c.lastSeen, key)
			removed++
		}
	}
	return removed
}

func cooldownKey(chatID, userID int64) string {
	return fmt.Sprintf("%d:%d", chatID, userID)
}

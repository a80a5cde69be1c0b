package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// newTestCooldown 创建使用可控时钟的冷却表
func newTestCooldown(interval time.Duration) (*Cooldown, *time.Time) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewCooldown(interval)
	c.now = func() time.Time { return current }
	return c, &current
}

func TestCooldown_Allow(t *testing.T) {
	c, current := newTestCooldown(60 * time.Second)

	assert.True(t, c.Allow(100, 1), "首次请求应放行")
	assert.False(t, c.Allow(100, 1), "冷却期内应拒绝")

	*current = current.Add(30 * time.Second)
	assert.False(t, c.Allow(100, 1), "冷却期未满仍应拒绝")

	*current = current.Add(30 * time.Second)
	assert.True(t, c.Allow(100, 1), "冷却期满后应放行")
}

func TestCooldown_KeyedByChatAndUser(t *testing.T) {
	c, _ := newTestCooldown(60 * time.Second)

	assert.True(t, c.Allow(100, 1))
	assert.True(t, c.Allow(100, 2), "同群不同用户互不影响")
	assert.True(t, c.Allow(200, 1), "同用户不同群互不影响")
	assert.False(t, c.Allow(100, 1))
}

func TestCooldown_DeniedRequestDoesNotExtend(t *testing.T) {
	c, current := newTestCooldown(60 * time.Second)

	assert.True(t, c.Allow(100, 1))
	*current = current.Add(50 * time.Second)
	assert.False(t, c.Allow(100, 1), "被拒绝的请求不应刷新冷却起点")
	*current = current.Add(10 * time.Second)
	assert.True(t, c.Allow(100, 1))
}

func TestCooldown_Remaining(t *testing.T) {
	c, current := newTestCooldown(60 * time.Second)

	assert.Equal(t, time.Duration(0), c.Remaining(100, 1))

	c.Allow(100, 1)
	assert.Equal(t, 60*time.Second, c.Remaining(100, 1))

	*current = current.Add(45 * time.Second)
	assert.Equal(t, 15*time.Second, c.Remaining(100, 1))

	*current = current.Add(30 * time.Second)
	assert.Equal(t, time.Duration(0), c.Remaining(100, 1))
}

func TestCooldown_Sweep(t *testing.T) {
	c, current := newTestCooldown(60 * time.Second)

	c.Allow(100, 1)
	c.Allow(100, 2)
	*current = current.Add(30 * time.Second)
	c.Allow(100, 3)

	*current = current.Add(40 * time.Second)
	removed := c.Sweep()
	assert.Equal(t, 2, removed, "只应清理已过期的记录")
	assert.False(t, c.Allow(100, 3), "未过期记录应保留")
	assert.True(t, c.Allow(100, 1), "已清理的用户可以立即请求")
}

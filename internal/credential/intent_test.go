package credential

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// newTestIntentTable 创建使用可控时钟的意向表
func newTestIntentTable(ttl time.Duration) (*IntentTable, *time.Time) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	table := NewIntentTable(ttl)
	table.now = func() time.Time { return current }
	return table, &current
}

func TestIntentTable_PutGet(t *testing.T) {
	table, _ := newTestIntentTable(30 * time.Minute)

	_, ok := table.Get(1)
	assert.False(t, ok)

	table.Put(1, -100123, "测试群")
	intent, ok := table.Get(1)
	assert.True(t, ok)
	assert.Equal(t, int64(-100123), intent.ChatID)
	assert.Equal(t, "测试群", intent.ChatTitle)
}

func TestIntentTable_LastWriterWins(t *testing.T) {
	table, _ := newTestIntentTable(30 * time.Minute)

	table.Put(1, -100, "群A")
	table.Put(1, -200, "群B")

	intent, ok := table.Get(1)
	assert.True(t, ok)
	assert.Equal(t, int64(-200), intent.ChatID, "后写入的意向应覆盖先前的")
}

func TestIntentTable_Expiry(t *testing.T) {
	table, current := newTestIntentTable(30 * time.Minute)

	table.Put(1, -100, "群A")

	*current = current.Add(29 * time.Minute)
	_, ok := table.Get(1)
	assert.True(t, ok, "未过期应能取到")

	*current = current.Add(1 * time.Minute)
	_, ok = table.Get(1)
	assert.False(t, ok, "过期后应取不到")

	_, exists := table.entries[1]
	assert.False(t, exists, "过期意向应在读取时被移除")
}

func TestIntentTable_Delete(t *testing.T) {
	table, _ := newTestIntentTable(30 * time.Minute)

	table.Put(1, -100, "群A")
	table.Delete(1)
	_, ok := table.Get(1)
	assert.False(t, ok)

	table.Delete(2)
}

func TestIntentTable_Sweep(t *testing.T) {
	table, current := newTestIntentTable(30 * time.Minute)

	table.Put(1, -100, "群A")
	table.Put(2, -200, "群B")
	*current = current.Add(20 * time.Minute)
	table.Put(3, -300, "群C")

	*current = current.Add(15 * time.Minute)
	removed := table.Sweep()
	assert.Equal(t, 2, removed)

	_, ok := table.Get(3)
	assert.True(t, ok, "未过期意向应保留")
}

package credential

import (
	"sync"
	"time"
)

// Intent 等待用户在私聊中发来新 API Key 的设置意向
type Intent struct {
	ChatID    int64
	ChatTitle string
	CreatedAt time.Time
}

// IntentTable 记录未完成的 Key 设置意向，同一用户只保留最后一个，过期自动失效。
// 进程内有效，重启后清零。
type IntentTable struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[int64]Intent
	now     func() time.Time
}

func NewIntentTable(ttl time.Duration) *IntentTable {
	return &IntentTable{
		ttl:     ttl,
		entries: make(map[int64]Intent),
		now:     time.Now,
	}
}

// Put 记录用户的设置意向，覆盖该用户已有的意向
func (t *IntentTable) Put(userID int64, chatID int64, chatTitle string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries[userID] = Intent{
		ChatID:    chatID,
		ChatTitle: chatTitle,
		CreatedAt: t.now(),
	}
}

// Get 返回用户未过期的意向，过期的意向被移除
func (t *IntentTable) Get(userID int64) (Intent, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	intent, ok := t.entries[userID]
	if !ok {
		return Intent{}, false
	}
	if t.now().Sub(intent.CreatedAt) >= t.ttl {
		delete(t.entries, userID)
		return Intent{}, false
	}
	return intent, true
}

// Delete 移除用户的意向
func (t *IntentTable) Delete(userID int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.entries, userID)
}

// Sweep 清理所有过期意向，返回清理数量
func (t *IntentTable) Sweep() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	removed := 0
	for userID, intent := range t.entries {
		if now.Sub(intent.CreatedAt) >= t.ttl {
			delete(t.entries, userID)
			removed++
		}
	}
	return removed
}

package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fachebot/chat-tldr-bot/internal/config"
	"github.com/fachebot/chat-tldr-bot/internal/credential"
	"github.com/fachebot/chat-tldr-bot/internal/logger"
	"github.com/fachebot/chat-tldr-bot/internal/ratelimit"
	"github.com/robfig/cron/v3"
)

// messageStore 删除过期消息（便于测试注入 mock）
type messageStore interface {
	DeleteBefore(ctx context.Context, cutoffDate time.Time) (int, error)
}

// locUTC UTC 标准时间（UTC）
var locUTC = time.UTC

// Scheduler 周期性清理过期消息，并清扫冷却表和 Key 设置意向表
type Scheduler struct {
	cron         *cron.Cron
	messageModel messageStore
	cooldown     *ratelimit.Cooldown
	intents      *credential.IntentTable
	config       *config.Tldr
	now          func() time.Time
	ctx          context.Context
	cancel       context.CancelFunc
	mu           sync.Mutex
}

func NewScheduler(
	messageModel messageStore,
	cooldown *ratelimit.Cooldown,
	intents *credential.IntentTable,
	cfg *config.Tldr,
) *Scheduler {
	return &Scheduler{
		cron:         cron.New(cron.WithLocation(locUTC)),
		messageModel: messageModel,
		cooldown:     cooldown,
		intents:      intents,
		config:       cfg,
		now:          time.Now,
	}
}

// Start 启动调度器
func (s *Scheduler) Start() error {
	s.mu.Lock()
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.mu.Unlock()

	_, err := s.cron.AddFunc(s.config.CleanupCron, s.runCleanup)
	if err != nil {
		return fmt.Errorf("注册清理任务失败: %w", err)
	}

	s.cron.Start()
	logger.Infof("[Scheduler] 调度器已启动，清理任务: %s", s.config.CleanupCron)
	return nil
}

// Stop 停止调度器
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()

	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Infof("[Scheduler] 调度器已停止")
}

// runCleanup 执行一轮清理（cron 触发）
func (s *Scheduler) runCleanup() {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()

	select {
	case <-ctx.Done():
		logger.Infof("[Scheduler] 任务已取消，退出")
		return
	default:
	}

	s.cleanupMessages(ctx)
	s.sweepTables()
}

// cleanupMessages 删除超过保留时长的消息
func (s *Scheduler) cleanupMessages(ctx context.Context) {
	retention := s.config.RetentionHours
	if retention <= 0 {
		retention = 168
	}
	cutoffDate := s.now().In(locUTC).Add(-time.Duration(retention) * time.Hour)

	logger.Infof("[Scheduler] 开始清理 %s 之前的消息", cutoffDate.Format("2006-01-02 15:04"))
	deleted, err := s.messageModel.DeleteBefore(ctx, cutoffDate)
	if err != nil {
		logger.Errorf("[Scheduler] 清理消息失败: %v", err)
	} else {
		logger.Infof("[Scheduler] 已清理 %d 条消息", deleted)
	}
}

// sweepTables 清扫进程内的冷却表和 Key 设置意向表
func (s *Scheduler) sweepTables() {
	if removed := s.cooldown.Sweep(); removed > 0 {
		logger.Debugf("[Scheduler] 冷却表清理 %d 条过期记录", removed)
	}
	if removed := s.intents.Sweep(); removed > 0 {
		logger.Infof("[Scheduler] 意向表清理 %d 条过期意向", removed)
	}
}

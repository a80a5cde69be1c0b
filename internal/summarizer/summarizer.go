package summarizer

import (
	"context"
	"time"

	"github.com/fachebot/chat-tldr-bot/internal/llm"
	"github.com/fachebot/chat-tldr-bot/internal/logger"
)

const (
	defaultMaxAttempts      = 3
	emptySummaryPlaceholder = "（模型没有返回任何总结内容）"
)

// llmCompleter 调用 LLM 生成文本（便于测试注入 mock）
type llmCompleter interface {
	Complete(ctx context.Context, req llm.CompletionRequest) (string, error)
	MaxInputTokens() int
}

type Summarizer struct {
	llmClient   llmCompleter
	maxAttempts int
	sleep       func(ctx context.Context, d time.Duration)
}

func NewSummarizer(llmClient *llm.Client) *Summarizer {
	return &Summarizer{
		llmClient:   llmClient,
		maxAttempts: defaultMaxAttempts,
		sleep:       sleepWithContext,
	}
}

// Summarize 生成消息列表的总结，内部做指数退避重试。
// 不可重试错误立即失败，重试耗尽后返回 *SummaryError。
func (s *Summarizer) Summarize(ctx context.Context, messages []ChatMessage, opts Options) (string, error) {
	if len(messages) == 0 {
		return "", nil
	}

	req := llm.CompletionRequest{
		SystemPrompt: buildSystemPrompt(opts),
		UserPrompt:   buildUserPrompt(messages, opts, s.llmClient.MaxInputTokens()),
		Temperature:  0.3,
		MaxTokens:    4000,
	}

	var lastErr error
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		text, err := s.llmClient.Complete(ctx, req)
		if err == nil {
			if text == "" {
				return emptySummaryPlaceholder, nil
			}
			return text, nil
		}
		lastErr = err

		if backendErr := llm.AsBackendError(err); backendErr != nil && !backendErr.Retryable {
			logger.Warnf("[Summarizer] LLM 调用失败且不可重试: %v", err)
			return "", &SummaryError{Kind: backendErr.Kind, Err: err}
		}

		if attempt == s.maxAttempts-1 {
			break
		}

		delay := time.Duration(1<<attempt) * time.Second
		logger.Warnf("[Summarizer] LLM 调用失败，%v 后重试: %v", delay, err)
		s.sleep(ctx, delay)
	}

	kind := llm.KindOther
	if backendErr := llm.AsBackendError(lastErr); backendErr != nil {
		kind = backendErr.Kind
	}
	logger.Errorf("[Summarizer] 重试 %d 次后仍失败: %v", s.maxAttempts, lastErr)
	return "", &SummaryError{Kind: kind, Err: lastErr}
}

func sleepWithContext(ctx context.Context, d time.Duration) {
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}

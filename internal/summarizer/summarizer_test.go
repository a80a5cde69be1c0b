package summarizer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fachebot/chat-tldr-bot/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockResult struct {
	text string
	err  error
}

// mockCompleter 按脚本顺序返回结果的 llmCompleter mock，脚本耗尽后重复最后一项
type mockCompleter struct {
	script []mockResult
	calls  int
	reqs   []llm.CompletionRequest
}

func (m *mockCompleter) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	m.reqs = append(m.reqs, req)
	idx := m.calls
	m.calls++
	if idx >= len(m.script) {
		idx = len(m.script) - 1
	}
	r := m.script[idx]
	return r.text, r.err
}

func (m *mockCompleter) MaxInputTokens() int {
	return 8000
}

// newTestSummarizer 创建记录退避时长而不真正睡眠的 Summarizer
func newTestSummarizer(mock *mockCompleter) (*Summarizer, *[]time.Duration) {
	var sleeps []time.Duration
	s := &Summarizer{
		llmClient:   mock,
		maxAttempts: 3,
		sleep: func(ctx context.Context, d time.Duration) {
			sleeps = append(sleeps, d)
		},
	}
	return s, &sleeps
}

func transientError(kind llm.ErrorKind) error {
	return &llm.BackendError{Kind: kind, Retryable: true, Err: errors.New("transient")}
}

func fatalError(kind llm.ErrorKind) error {
	return &llm.BackendError{Kind: kind, Retryable: false, Err: errors.New("fatal")}
}

var testMessages = []ChatMessage{
	{MessageID: 100, SenderID: 1, SenderName: "张三", Text: "你好"},
	{MessageID: 101, SenderID: 2, SenderName: "李四", Text: "大家好"},
}

func TestSummarize_EmptyMessages(t *testing.T) {
	mock := &mockCompleter{}
	s, _ := newTestSummarizer(mock)

	result, err := s.Summarize(context.Background(), nil, Options{})
	assert.NoError(t, err)
	assert.Empty(t, result)
	assert.Equal(t, 0, mock.calls, "空消息不应调用 LLM")
}

func TestSummarize_SuccessFirstAttempt(t *testing.T) {
	mock := &mockCompleter{script: []mockResult{{text: "总结内容"}}}
	s, sleeps := newTestSummarizer(mock)

	result, err := s.Summarize(context.Background(), testMessages, Options{})
	assert.NoError(t, err)
	assert.Equal(t, "总结内容", result)
	assert.Equal(t, 1, mock.calls)
	assert.Empty(t, *sleeps)
}

func TestSummarize_RetriesTransientThenSucceeds(t *testing.T) {
	mock := &mockCompleter{script: []mockResult{
		{err: transientError(llm.KindTimeout)},
		{err: transientError(llm.KindNetwork)},
		{text: "第三次成功"},
	}}
	s, sleeps := newTestSummarizer(mock)

	result, err := s.Summarize(context.Background(), testMessages, Options{})
	assert.NoError(t, err)
	assert.Equal(t, "第三次成功", result)
	assert.Equal(t, 3, mock.calls)
	assert.Equal(t, []time.Duration{1 * time.Second, 2 * time.Second}, *sleeps, "退避应为 1s、2s")
}

func TestSummarize_PermissionErrorNotRetried(t *testing.T) {
	mock := &mockCompleter{script: []mockResult{{err: fatalError(llm.KindPermission)}}}
	s, sleeps := newTestSummarizer(mock)

	_, err := s.Summarize(context.Background(), testMessages, Options{})
	require.Error(t, err)
	assert.Equal(t, 1, mock.calls, "不可重试错误只应尝试一次")
	assert.Empty(t, *sleeps)

	summaryErr := AsSummaryError(err)
	require.NotNil(t, summaryErr)
	assert.Equal(t, llm.KindPermission, summaryErr.Kind)
}

func TestSummarize_AuthErrorNotRetried(t *testing.T) {
	mock := &mockCompleter{script: []mockResult{{err: fatalError(llm.KindAuth)}}}
	s, _ := newTestSummarizer(mock)

	_, err := s.Summarize(context.Background(), testMessages, Options{})
	require.Error(t, err)
	assert.Equal(t, 1, mock.calls)

	summaryErr := AsSummaryError(err)
	require.NotNil(t, summaryErr)
	assert.Equal(t, llm.KindAuth, summaryErr.Kind)
}

func TestSummarize_ExhaustsRetries(t *testing.T) {
	mock := &mockCompleter{script: []mockResult{{err: transientError(llm.KindQuota)}}}
	s, sleeps := newTestSummarizer(mock)

	_, err := s.Summarize(context.Background(), testMessages, Options{})
	require.Error(t, err)
	assert.Equal(t, 3, mock.calls, "尝试次数不应超过上限")
	assert.Equal(t, []time.Duration{1 * time.Second, 2 * time.Second}, *sleeps)

	summaryErr := AsSummaryError(err)
	require.NotNil(t, summaryErr)
	assert.Equal(t, llm.KindQuota, summaryErr.Kind, "耗尽后应保留最后一次错误的分类")
}

func TestSummarize_PlainErrorRetried(t *testing.T) {
	mock := &mockCompleter{script: []mockResult{{err: errors.New("unexpected")}}}
	s, _ := newTestSummarizer(mock)

	_, err := s.Summarize(context.Background(), testMessages, Options{})
	require.Error(t, err)
	assert.Equal(t, 3, mock.calls, "未分类错误按可重试处理")

	summaryErr := AsSummaryError(err)
	require.NotNil(t, summaryErr)
	assert.Equal(t, llm.KindOther, summaryErr.Kind)
}

func TestSummarize_EmptyTextUsesPlaceholder(t *testing.T) {
	mock := &mockCompleter{script: []mockResult{{text: ""}}}
	s, _ := newTestSummarizer(mock)

	result, err := s.Summarize(context.Background(), testMessages, Options{})
	assert.NoError(t, err)
	assert.Equal(t, emptySummaryPlaceholder, result)
}

func TestSummarize_BuildsPrompts(t *testing.T) {
	mock := &mockCompleter{script: []mockResult{{text: "ok"}}}
	s, _ := newTestSummarizer(mock)

	_, err := s.Summarize(context.Background(), testMessages, Options{Style: "brief", Topic: "weekend plans"})
	require.NoError(t, err)
	require.Len(t, mock.reqs, 1)

	req := mock.reqs[0]
	assert.Contains(t, req.SystemPrompt, "消息ID")
	assert.Contains(t, req.SystemPrompt, styleInstructions["brief"])
	assert.Contains(t, req.SystemPrompt, "weekend plans")
	assert.Contains(t, req.UserPrompt, "[100] 张三: 你好")
	assert.Contains(t, req.UserPrompt, "[101] 李四: 大家好")
	assert.Equal(t, float32(0.3), req.Temperature)
}

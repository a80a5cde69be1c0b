package summarizer

import (
	"errors"
	"fmt"

	"github.com/fachebot/chat-tldr-bot/internal/llm"
)

// ChatMessage 参与总结的单条消息
type ChatMessage struct {
	MessageID     int64
	SenderID      int64
	SenderName    string
	Text          string
	IsBot         bool
	IsChannelPost bool
}

// Options 总结生成选项
type Options struct {
	Style        string // 总结风格，空值按 default 处理
	Topic        string // 聚焦话题，为空表示总结全部内容
	CustomPrompt string // 群自定义提示词模板，{messages} 会被替换为聊天记录
}

// SummaryError 总结失败的终态错误，Kind 供调用方选择给用户的提示
type SummaryError struct {
	Kind llm.ErrorKind
	Err  error
}

func (e *SummaryError) Error() string {
	return fmt.Sprintf("生成总结失败(%s): %v", e.Kind, e.Err)
}

func (e *SummaryError) Unwrap() error {
	return e.Err
}

// AsSummaryError 提取错误链中的 SummaryError，不存在时返回 nil
func AsSummaryError(err error) *SummaryError {
	var summaryErr *SummaryError
	if errors.As(err, &summaryErr) {
		return summaryErr
	}
	return nil
}

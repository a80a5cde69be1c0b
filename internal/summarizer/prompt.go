package summarizer

import (
	"fmt"
	"strings"

	"github.com/fachebot/chat-tldr-bot/internal/llm"
	"github.com/fachebot/chat-tldr-bot/internal/logger"
)

var styleInstructions = map[string]string{
	"default":  "输出结构化的总结：先用一段话概括整体讨论，再按话题分点展开。",
	"brief":    "只输出不超过三句话的极简总结，只保留最重要的结论。",
	"detailed": "输出详细的总结：按话题分节，写明每个话题的讨论过程、参与者和结论。",
	"bullet":   "全部用无序列表输出，每条一个要点，不写成段落。",
	"timeline": "按时间顺序输出总结，每条以讨论发生的先后为序，标注大致的时间线索。",
}

// buildSystemPrompt 构造系统提示词，包含消息引用格式和风格要求
func buildSystemPrompt(opts Options) string {
	var sb strings.Builder
	sb.WriteString("你是一个群聊总结助手，根据提供的聊天记录生成总结。\n")
	sb.WriteString("聊天记录每行的格式为「[消息ID] 发送者: 内容」。\n")
	sb.WriteString("提到具体讨论时，在该处标注来源消息ID，单条写作 [12345]，多条写作 [12345, 12346]。\n")
	sb.WriteString("输出语言与聊天记录的主要语言一致，可以用 **粗体** 标记话题标题。\n")

	instruction := styleInstructions[opts.Style]
	if instruction == "" {
		instruction = styleInstructions["default"]
	}
	sb.WriteString(instruction)

	if opts.Topic != "" {
		sb.WriteString(fmt.Sprintf("\n只总结与话题 %q 相关的内容，无关内容忽略；没有相关内容时直接说明。", opts.Topic))
	}

	return sb.String()
}

// buildUserPrompt 将消息拼为聊天记录文本，超出 token 预算时丢弃最早的消息
func buildUserPrompt(messages []ChatMessage, opts Options, maxInputTokens int) string {
	lines := make([]string, len(messages))
	for i, m := range messages {
		sender := m.SenderName
		if m.IsChannelPost {
			sender += "（频道）"
		} else if m.IsBot {
			sender += "（机器人）"
		}
		lines[i] = fmt.Sprintf("[%d] %s: %s", m.MessageID, sender, m.Text)
	}

	// 从最新的消息往回累计 token，放不下的最早消息被丢弃
	start := 0
	total := 0
	for i := len(lines) - 1; i >= 0; i-- {
		tokens := llm.EstimateTokens(lines[i])
		if total+tokens > maxInputTokens && i < len(lines)-1 {
			start = i + 1
			break
		}
		total += tokens
	}
	if start > 0 {
		logger.Infof("[Summarizer] 消息超出 token 预算，丢弃最早的 %d 条", start)
	}

	chatText := strings.Join(lines[start:], "\n")

	if opts.CustomPrompt != "" && strings.Contains(opts.CustomPrompt, "{messages}") {
		return strings.ReplaceAll(opts.CustomPrompt, "{messages}", chatText)
	}
	return "聊天记录：\n" + chatText + "\n\n请输出总结。"
}

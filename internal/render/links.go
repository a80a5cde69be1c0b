package render

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	markdownLinkPattern = regexp.MustCompile(`\[(\d+)\]\((https?://[^\s)]+)\)`)
	idListPattern       = regexp.MustCompile(`\[(\d+(?:\s*,\s*\d+)+)\]`)
	singleIDPattern     = regexp.MustCompile(`\[(\d+)\]`)
)

// MessageLink 构造消息链接。公开群用用户名链接，私有超级群用 t.me/c/ 链接，
// 非超级群（channelID <= 0）无法构造链接，返回空字符串。
func MessageLink(chatCtx ChatContext, messageID string) string {
	if chatCtx.Username != "" {
		return fmt.Sprintf("https://t.me/%s/%s", chatCtx.Username, messageID)
	}

	// TDLib 超级群组 chat_id 格式为 -100XXXXXXXXXX，channel_id = -chat_id - 1000000000000
	channelID := -chatCtx.ChatID - 1000000000000
	if channelID <= 0 {
		return ""
	}
	return fmt.Sprintf("https://t.me/c/%d/%s", channelID, messageID)
}

// RewriteMessageLinks 把 LLM 输出中的消息ID引用改写为带链接的形式：
//  1. 已有的 [id](url) 链接规范化为 id (url)
//  2. ID 列表 [id1, id2] 展开为 [id1 (url1), id2 (url2)]
//  3. 单个 [id] 展开为 id (url)
//
// 无法构造链接时，单个 [id] 退化为纯 id，列表保持原样。
func RewriteMessageLinks(text string, chatCtx ChatContext) string {
	// 已有链接统一为 id (url) 形式
	text = markdownLinkPattern.ReplaceAllString(text, "$1 ($2)")

	// ID 列表逐个补链接
	text = idListPattern.ReplaceAllStringFunc(text, func(match string) string {
		inner := strings.Trim(match, "[]")
		ids := strings.Split(inner, ",")
		parts := make([]string, 0, len(ids))
		for _, id := range ids {
			id = strings.TrimSpace(id)
			link := MessageLink(chatCtx, id)
			if link == "" {
				return match
			}
			parts = append(parts, fmt.Sprintf("%s (%s)", id, link))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	})

	// 剩下的单个 [id]（此时已不可能跟着链接）
	text = singleIDPattern.ReplaceAllStringFunc(text, func(match string) string {
		id := strings.Trim(match, "[]")
		link := MessageLink(chatCtx, id)
		if link == "" {
			return id
		}
		return fmt.Sprintf("%s (%s)", id, link)
	})

	return text
}

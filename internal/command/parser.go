package command

import (
	"regexp"
	"strings"

	"github.com/fachebot/chat-tldr-bot/internal/sanitize"
)

const defaultRangeSpec = "1h"

// Request 一次总结请求的结构化参数
type Request struct {
	RangeSpec      string // 范围写法，如 "500"、"24h"、"day"，默认 "1h"
	Username       string // 只总结该用户的发言，不带 @ 前缀，为空表示不过滤
	Style          string // 总结风格，为空表示使用群设置
	Topic          string // 聚焦话题，清洗通过后的规范化文本
	TopicRequested bool   // 用户是否提供了话题（即使被清洗拒绝）
}

var (
	rangeTokenPattern = regexp.MustCompile(`^(?i)\d+[hd]?$`)

	styleTokens = map[string]bool{
		"default":  true,
		"brief":    true,
		"detailed": true,
		"bullet":   true,
		"timeline": true,
	}
)

// Parse 把命令参数逐个归类为风格、用户、范围或话题，同类参数只取第一个。
// 任何参数都不会导致错误，无法归类的一律并入话题。
func Parse(tokens []string) Request {
	req := Request{RangeSpec: defaultRangeSpec}
	var topicParts []string
	rangeSet := false

	for _, token := range tokens {
		if token == "" {
			continue
		}

		if styleTokens[strings.ToLower(token)] {
			if req.Style == "" {
				req.Style = strings.ToLower(token)
			}
			continue
		}

		if strings.HasPrefix(token, "@") && len(token) > 1 {
			if req.Username == "" {
				req.Username = strings.TrimPrefix(token, "@")
			}
			continue
		}

		if !rangeSet && isRangeToken(token) {
			req.RangeSpec = strings.ToLower(token)
			rangeSet = true
			continue
		}

		topicParts = append(topicParts, token)
	}

	if len(topicParts) > 0 {
		req.TopicRequested = true
		if topic, ok := sanitize.Topic(strings.Join(topicParts, " ")); ok {
			req.Topic = topic
		}
	}

	return req
}

// ParseArgs 把命令参数字符串按空白切分后解析
func ParseArgs(args string) Request {
	return Parse(strings.Fields(args))
}

// NormalizeStyle 校验风格写法并转为小写，非法写法返回 false
func NormalizeStyle(token string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(token))
	if !styleTokens[lower] {
		return "", false
	}
	return lower, true
}

func isRangeToken(token string) bool {
	lower := strings.ToLower(token)
	return rangeTokenPattern.MatchString(token) || lower == "day" || lower == "week"
}

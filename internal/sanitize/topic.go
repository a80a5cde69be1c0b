package sanitize

import (
	"regexp"
	"strings"
)

const (
	maxTopicLength      = 200
	maxPunctuationRatio = 0.3
	maxImperativeWords  = 8
)

var (
	topicWhitelist = regexp.MustCompile(`^[A-Za-z0-9 \-'.,!?()]+$`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
	repeatedPunct  = regexp.MustCompile(`\.{3,}|,{3,}|!{3,}|\?{3,}|\({3,}|\){3,}|'{3,}|-{3,}`)

	// 提示词注入特征，命中任意一条即拒绝
	injectionSignatures = []*regexp.Regexp{
		// 指令覆盖，如 "ignore previous instructions"
		regexp.MustCompile(`(?i)\b(ignore|forget|disregard|override|overwrite)\b.{0,40}\b(previous|above|prior|earlier|all)\b.{0,20}\b(instructions?|prompts?|rules?|context)\b`),
		// 角色扮演指令
		regexp.MustCompile(`(?i)\bact(ing)?\s+as\b`),
		regexp.MustCompile(`(?i)\byou\s+are\s+(now|a|an)\b`),
		regexp.MustCompile(`(?i)\bpretend\s+(to|you)\b`),
		// system prompt 引用
		regexp.MustCompile(`(?i)\b(system|assistant|developer)\s+(prompt|message|instructions?|role)\b`),
		regexp.MustCompile(`(?i)\bnew\s+(instructions?|rules?|prompts?)\b`),
		// 标记语法
		regexp.MustCompile("[<>{}`\\[\\]#*_~|\\\\]"),
		// 代码特征
		regexp.MustCompile(`(?i)\b(eval|exec|script|function|import|require)\s*\(`),
		// 对群成员排名
		regexp.MustCompile(`(?i)\brank\b.{0,40}\b(users?|members?|people|persons?|everyone)\b`),
		// 输出重定向
		regexp.MustCompile(`(?i)\binstead\s+of\s+summariz`),
		regexp.MustCompile(`(?i)\b(output|print|repeat|say|write)\b.{0,30}\b(exactly|verbatim|word\s+for\s+word|nothing)\b`),
	}

	// 以这些动词开头的短文本视为指令而不是话题
	instructionStarters = map[string]bool{
		"ignore": true, "forget": true, "disregard": true, "override": true,
		"rank": true, "list": true, "execute": true, "run": true,
		"act": true, "pretend": true, "output": true, "print": true,
		"repeat": true, "say": true, "write": true, "tell": true,
	}
)

// Topic 清洗用户提供的总结话题，返回规范化结果，任何一步检查失败即拒绝。
// 话题会被原样拼入 LLM 提示词，所有检查都在词法层面，不做语义判断。
func Topic(raw string) (string, bool) {
	topic := strings.TrimSpace(raw)
	if topic == "" || len(topic) > maxTopicLength {
		return "", false
	}

	if !topicWhitelist.MatchString(topic) {
		return "", false
	}

	topic = strings.TrimSpace(whitespaceRuns.ReplaceAllString(topic, " "))

	if punctuationRatio(topic) > maxPunctuationRatio {
		return "", false
	}

	if repeatedPunct.MatchString(topic) {
		return "", false
	}

	for _, sig := range injectionSignatures {
		if sig.MatchString(topic) {
			return "", false
		}
	}

	words := strings.Fields(topic)
	if len(words) <= maxImperativeWords {
		first := strings.ToLower(strings.TrimRight(words[0], ".,!?()'-"))
		if instructionStarters[first] {
			return "", false
		}
	}

	return topic, true
}

// punctuationRatio 计算 .,!?() 在文本中的占比
func punctuationRatio(text string) float64 {
	if text == "" {
		return 0
	}
	count := 0
	for _, r := range text {
		switch r {
		case '.', ',', '!', '?', '(', ')':
			count++
		}
	}
	return float64(count) / float64(len(text))
}

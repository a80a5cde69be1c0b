package render

import (
	"regexp"
	"strings"
)

var (
	fencedBlockPattern = regexp.MustCompile("(?s)```[a-zA-Z0-9]*\\n?(.*?)```")
	inlineCodePattern  = regexp.MustCompile("`([^`\n]+)`")
	boldStarPattern    = regexp.MustCompile(`\*\*([^*\n]+)\*\*`)
	boldUnderPattern   = regexp.MustCompile(`__([^_\n]+)__`)
	italicStarPattern  = regexp.MustCompile(`\*([^*\n]+)\*`)
	italicUnderPattern = regexp.MustCompile(`_([^_\n]+)_`)
)

// escapeHTML 对文本进行 HTML 转义，防止用户内容破坏标签
func escapeHTML(text string) string {
	result := strings.ReplaceAll(text, "&", "&amp;")
	result = strings.ReplaceAll(result, "<", "&lt;")
	result = strings.ReplaceAll(result, ">", "&gt;")
	return result
}

// MarkupToHTML 把 LLM 输出的轻量 Markdown 转换为 Telegram HTML。
// 先整体转义再替换标记，保证只有这里生成的标签是合法 HTML。
func MarkupToHTML(text string) string {
	text = escapeHTML(text)

	text = fencedBlockPattern.ReplaceAllString(text, "<pre>$1</pre>")
	text = inlineCodePattern.ReplaceAllString(text, "<code>$1</code>")
	text = boldStarPattern.ReplaceAllString(text, "<b>$1</b>")
	text = boldUnderPattern.ReplaceAllString(text, "<b>$1</b>")
	text = italicStarPattern.ReplaceAllString(text, "<i>$1</i>")
	text = italicUnderPattern.ReplaceAllString(text, "<i>$1</i>")

	return text
}

package render

const (
	maxMessageLength = 4096
	chunkMargin      = 100
)

// ChatContext 渲染目标群的上下文，决定消息链接的形式
type ChatContext struct {
	ChatID   int64
	Username string // 公开群的用户名，为空表示私有群
}

// Chunk 渲染输出的单条消息，Index 从 1 开始
type Chunk struct {
	Index int
	Total int
	Text  string
}

// Render 把 LLM 输出转换为可直接发送的 Telegram HTML 消息序列。
// headerLength 是调用方为每条消息添加的标题长度，预算中为其预留空间。
func Render(summaryText string, chatCtx ChatContext, headerLength int) []Chunk {
	text := RewriteMessageLinks(summaryText, chatCtx)
	text = MarkupToHTML(text)

	budget := maxMessageLength - headerLength - chunkMargin
	parts := splitText(text, budget)

	chunks := make([]Chunk, len(parts))
	for i, part := range parts {
		chunks[i] = Chunk{Index: i + 1, Total: len(parts), Text: part}
	}
	return chunks
}

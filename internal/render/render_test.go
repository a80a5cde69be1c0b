package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	publicChat  = ChatContext{ChatID: -1001234567890, Username: "golangchat"}
	privateChat = ChatContext{ChatID: -1001234567890}
	basicGroup  = ChatContext{ChatID: -987654}
)

func TestMessageLink(t *testing.T) {
	tests := []struct {
		name    string
		chatCtx ChatContext
		want    string
	}{
		{"公开群用用户名链接", publicChat, "https://t.me/golangchat/42"},
		{"私有超级群用 t.me/c/ 链接", privateChat, "https://t.me/c/1234567890/42"},
		{"普通群无法构造链接", basicGroup, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MessageLink(tt.chatCtx, "42"))
		})
	}
}

func TestRewriteMessageLinks(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		chatCtx ChatContext
		want    string
	}{
		{
			"已有链接规范化",
			"讨论见 [100](https://t.me/c/1234567890/100) 处",
			privateChat,
			"讨论见 100 (https://t.me/c/1234567890/100) 处",
		},
		{
			"单个消息ID展开",
			"结论在 [100]",
			privateChat,
			"结论在 100 (https://t.me/c/1234567890/100)",
		},
		{
			"ID列表逐个展开",
			"[10,20,30]",
			privateChat,
			"[10 (https://t.me/c/1234567890/10), 20 (https://t.me/c/1234567890/20), 30 (https://t.me/c/1234567890/30)]",
		},
		{
			"公开群使用用户名链接",
			"见 [55]",
			publicChat,
			"见 55 (https://t.me/golangchat/55)",
		},
		{
			"普通群单个ID退化为纯文本",
			"见 [55]",
			basicGroup,
			"见 55",
		},
		{
			"普通群ID列表保持原样",
			"[10, 20]",
			basicGroup,
			"[10, 20]",
		},
		{
			"无引用的文本原样返回",
			"没有任何引用",
			privateChat,
			"没有任何引用",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RewriteMessageLinks(tt.input, tt.chatCtx))
		})
	}
}

func TestMarkupToHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"星号粗体", "**话题**", "<b>话题</b>"},
		{"下划线粗体", "__话题__", "<b>话题</b>"},
		{"星号斜体", "*强调*", "<i>强调</i>"},
		{"行内代码", "`go build`", "<code>go build</code>"},
		{"代码块", "```go\nfmt.Println()\n```", "<pre>fmt.Println()\n</pre>"},
		{"HTML特殊字符转义", "a < b && c > d", "a &lt; b &amp;&amp; c &gt; d"},
		{"用户内容中的标签被转义", "**<script>**", "<b>&lt;script&gt;</b>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MarkupToHTML(tt.input))
		})
	}
}

func TestRender_SingleChunk(t *testing.T) {
	headerLength := 20
	budget := maxMessageLength - headerLength - chunkMargin
	text := strings.Repeat("a", budget)

	chunks := Render(text, privateChat, headerLength)
	require.Len(t, chunks, 1)
	assert.Equal(t, 1, chunks[0].Index)
	assert.Equal(t, 1, chunks[0].Total)
	assert.Equal(t, text, chunks[0].Text)
}

func TestRender_OversizedTextSplitsOrdered(t *testing.T) {
	headerLength := 20
	budget := maxMessageLength - headerLength - chunkMargin

	// 拼一段约 3 倍预算的文本，段落间用空行分隔
	para := strings.Repeat("这是一句测试文本。", 40)
	var sb strings.Builder
	for sb.Len() < budget*3 {
		sb.WriteString(para)
		sb.WriteString("\n\n")
	}
	text := strings.TrimSpace(sb.String())

	chunks := Render(text, privateChat, headerLength)
	require.GreaterOrEqual(t, len(chunks), 3)

	var reassembled []string
	for i, chunk := range chunks {
		assert.Equal(t, i+1, chunk.Index)
		assert.Equal(t, len(chunks), chunk.Total)
		assert.LessOrEqual(t, len(chunk.Text), budget)
		reassembled = append(reassembled, chunk.Text)
	}

	// 去掉分块引入的空白差异后内容应一致
	normalize := func(s string) string {
		return strings.Join(strings.Fields(s), "")
	}
	assert.Equal(t, normalize(text), normalize(strings.Join(reassembled, "")))
}

func TestRender_RewritesLinksAndMarkup(t *testing.T) {
	chunks := Render("**结论**见 [77]", privateChat, 10)
	require.Len(t, chunks, 1)
	assert.Equal(t, "<b>结论</b>见 77 (https://t.me/c/1234567890/77)", chunks[0].Text)
}

func TestSplitText_HardCutLongSentence(t *testing.T) {
	// 没有任何标点和空行的超长文本只能硬切
	text := strings.Repeat("x", 250)
	parts := splitText(text, 100)
	require.GreaterOrEqual(t, len(parts), 3)
	total := 0
	for _, p := range parts {
		assert.LessOrEqual(t, len(p), 100)
		total += len(p)
	}
	assert.Equal(t, len(text), total)
}

package llm

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/fachebot/chat-tldr-bot/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// integrationTestConfig 从环境变量构建测试配置，若 LLM_API_KEY 未设置则跳过
func integrationTestConfig(t *testing.T) *config.LLM {
	apiKey := os.Getenv("LLM_API_KEY")
	if apiKey == "" || apiKey == "your-api-key-here" {
		t.Skip("跳过集成测试：请设置 LLM_API_KEY 环境变量")
	}
	baseURL := os.Getenv("LLM_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	model := os.Getenv("LLM_MODEL")
	if model == "" {
		model = "gpt-3.5-turbo"
	}
	return &config.LLM{
		APIKey:    apiKey,
		BaseURL:   baseURL,
		Model:     model,
		MaxTokens: 16000,
	}
}

func TestComplete_Integration(t *testing.T) {
	cfg := integrationTestConfig(t)
	client := NewClient(cfg, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	userPrompt := `[101] 张三: 大家下午好，我们来同步一下本周进度
[102] 李四: 好的，我这边前端页面基本完成了，还差几个接口联调
[103] 王五: 后端 API 已经开发完了，文档也更新到 swagger 了
[104] 张三: 不错，李四你明天跟王五对接一下，把接口串起来
[105] 李四: 行，我上午找他
[106] 赵六: 测试环境我部署好了，你们联调完告诉我，我安排回归测试`

	result, err := client.Complete(ctx, CompletionRequest{
		SystemPrompt: "你是一个群聊总结助手，请用几句话总结群聊内容的主要话题和结论。",
		UserPrompt:   userPrompt,
		Temperature:  0.3,
		MaxTokens:    1000,
	})
	require.NoError(t, err)
	require.NotEmpty(t, result)

	t.Log("\n--- 总结内容 ---")
	t.Log(result)
}

func TestComplete_Integration_InvalidKey(t *testing.T) {
	cfg := integrationTestConfig(t)
	cfg.APIKey = "sk-invalid-key-for-testing"
	client := NewClient(cfg, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := client.Complete(ctx, CompletionRequest{
		SystemPrompt: "你是一个助手",
		UserPrompt:   "你好",
		MaxTokens:    10,
	})
	require.Error(t, err)

	backendErr := AsBackendError(err)
	require.NotNil(t, backendErr)
	assert.Equal(t, KindAuth, backendErr.Kind)
	assert.False(t, backendErr.Retryable)
}

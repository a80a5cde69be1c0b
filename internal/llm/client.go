package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/fachebot/chat-tldr-bot/internal/config"
	"github.com/sashabaranov/go-openai"
)

// openAIClientInterface 定义 OpenAI 客户端接口，便于测试
type openAIClientInterface interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Client struct {
	config         *config.LLM
	apiKey         string
	transport      *http.Transport
	openaiClient   openAIClientInterface
	maxInputTokens int
}

func NewClient(cfg *config.LLM, transport *http.Transport) *Client {
	return newClientWithKey(cfg, transport, cfg.APIKey)
}

func newClientWithKey(cfg *config.LLM, transport *http.Transport, apiKey string) *Client {
	openaiConfig := openai.DefaultConfig(apiKey)
	openaiConfig.BaseURL = cfg.BaseURL
	if transport != nil {
		openaiConfig.HTTPClient = &http.Client{Transport: transport}
	}

	return &Client{
		config:         cfg,
		apiKey:         apiKey,
		transport:      transport,
		openaiClient:   openai.NewClientWithConfig(openaiConfig),
		maxInputTokens: cfg.MaxTokens - 2000, // 预留 2000 tokens 给 system prompt 和输出
	}
}

// WithAPIKey 返回使用指定 API Key 的新客户端，用于群组配置了专属 Key 的场景
func (c *Client) WithAPIKey(apiKey string) *Client {
	return newClientWithKey(c.config, c.transport, apiKey)
}

// HasAPIKey 是否持有可用的 API Key
func (c *Client) HasAPIKey() bool {
	return c.apiKey != ""
}

// MaxInputTokens 输入 prompt 的 token 预算
func (c *Client) MaxInputTokens() int {
	return c.maxInputTokens
}

// EstimateTokens 估算文本的 token 数量
func EstimateTokens(text string) int {
	// 简单估算：中文约 1.5 token/字，英文约 1.3 token/词
	chineseChars := 0
	for _, r := range text {
		if r >= 0x4e00 && r <= 0x9fff {
			chineseChars++
		}
	}
	words := len(strings.Fields(text))

	tokens := int(float64(chineseChars)*1.5 + float64(words)*1.3)
	if tokens < len(text)/4 {
		// 如果估算值太小，使用字符数的 1/4 作为下限
		tokens = len(text) / 4
	}
	return tokens
}

// CompletionRequest 一次文本补全请求
type CompletionRequest struct {
	SystemPrompt string
	UserPrompt   string
	Temperature  float32
	MaxTokens    int
}

// Complete 执行一次补全调用，失败时返回带分类标签的 *BackendError
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	resp, err := c.openaiClient.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.UserPrompt},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", classifyError(err)
	}

	if len(resp.Choices) == 0 {
		return "", &BackendError{Kind: KindOther, Retryable: true, Err: errors.New("LLM API 返回空结果")}
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	content = strings.TrimPrefix(content, "```markdown")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content), nil
}

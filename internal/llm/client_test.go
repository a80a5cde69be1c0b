package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/fachebot/chat-tldr-bot/internal/config"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockOpenAIClient 模拟 OpenAI 客户端
type mockOpenAIClient struct {
	mock.Mock
}

func (m *mockOpenAIClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(openai.ChatCompletionResponse), args.Error(1)
}

// newTestClient 创建用于测试的客户端，注入 mock
func newTestClient(cfg *config.LLM, mockClient openAIClientInterface) *Client {
	maxInputTokens := cfg.MaxTokens - 2000
	if maxInputTokens <= 0 {
		maxInputTokens = 6000
	}
	return &Client{
		config:         cfg,
		apiKey:         cfg.APIKey,
		openaiClient:   mockClient,
		maxInputTokens: maxInputTokens,
	}
}

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantMin int
		wantMax int
	}{
		{"空文本", "", 0, 0},
		{"纯中文", "这是一段中文测试文本", 8, 50},
		{"纯英文", "This is a test message", 4, 30},
		{"中英混合", "Hello 世界 test 测试", 4, 40},
		{"长文本", "这是一段很长的中文文本。" + "重复" + "重复" + "重复" + "重复" + "重复", 20, 120},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateTokens(tt.text)
			assert.GreaterOrEqual(t, got, tt.wantMin)
			assert.LessOrEqual(t, got, tt.wantMax)
		})
	}
}

func TestComplete_Success(t *testing.T) {
	mockAPI := new(mockOpenAIClient)
	mockAPI.On("CreateChatCompletion", mock.Anything, mock.MatchedBy(func(req openai.ChatCompletionRequest) bool {
		return req.Model == "test-model" &&
			len(req.Messages) == 2 &&
			req.Messages[0].Role == openai.ChatMessageRoleSystem &&
			req.Messages[0].Content == "system prompt" &&
			req.Messages[1].Role == openai.ChatMessageRoleUser &&
			req.Messages[1].Content == "user prompt"
	})).Return(openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: "总结内容"}},
		},
	}, nil)

	cfg := &config.LLM{Model: "test-model", MaxTokens: 10000}
	client := newTestClient(cfg, mockAPI)

	result, err := client.Complete(context.Background(), CompletionRequest{
		SystemPrompt: "system prompt",
		UserPrompt:   "user prompt",
		Temperature:  0.3,
		MaxTokens:    4000,
	})
	assert.NoError(t, err)
	assert.Equal(t, "总结内容", result)
	mockAPI.AssertExpectations(t)
}

func TestComplete_TrimsMarkdownCodeBlock(t *testing.T) {
	mockAPI := new(mockOpenAIClient)
	mockAPI.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: "```markdown\n**总结**\n```"}},
			},
		}, nil)

	cfg := &config.LLM{Model: "test", MaxTokens: 10000}
	client := newTestClient(cfg, mockAPI)

	result, err := client.Complete(context.Background(), CompletionRequest{UserPrompt: "x"})
	assert.NoError(t, err)
	assert.Equal(t, "**总结**", result)
}

func TestComplete_EmptyResponse(t *testing.T) {
	mockAPI := new(mockOpenAIClient)
	mockAPI.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(openai.ChatCompletionResponse{Choices: nil}, nil)

	cfg := &config.LLM{Model: "test", MaxTokens: 10000}
	client := newTestClient(cfg, mockAPI)

	_, err := client.Complete(context.Background(), CompletionRequest{UserPrompt: "x"})
	require.Error(t, err)

	backendErr := AsBackendError(err)
	require.NotNil(t, backendErr)
	assert.Equal(t, KindOther, backendErr.Kind)
	assert.True(t, backendErr.Retryable)
}

func TestComplete_ClassifiesAPIErrors(t *testing.T) {
	tests := []struct {
		name          string
		apiErr        *openai.APIError
		wantKind      ErrorKind
		wantRetryable bool
	}{
		{
			name:          "401归类为auth",
			apiErr:        &openai.APIError{HTTPStatusCode: 401, Message: "Incorrect API key provided"},
			wantKind:      KindAuth,
			wantRetryable: false,
		},
		{
			name:          "403归类为permission",
			apiErr:        &openai.APIError{HTTPStatusCode: 403, Message: "You do not have access to this model"},
			wantKind:      KindPermission,
			wantRetryable: false,
		},
		{
			name:          "429配额耗尽归类为quota",
			apiErr:        &openai.APIError{HTTPStatusCode: 429, Code: "insufficient_quota", Message: "You exceeded your current quota"},
			wantKind:      KindQuota,
			wantRetryable: true,
		},
		{
			name:          "429限流归类为rate_limit",
			apiErr:        &openai.APIError{HTTPStatusCode: 429, Message: "Rate limit reached"},
			wantKind:      KindRateLimit,
			wantRetryable: true,
		},
		{
			name:          "500归类为other且可重试",
			apiErr:        &openai.APIError{HTTPStatusCode: 500, Message: "The server had an error"},
			wantKind:      KindOther,
			wantRetryable: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAPI := new(mockOpenAIClient)
			mockAPI.On("CreateChatCompletion", mock.Anything, mock.Anything).
				Return(openai.ChatCompletionResponse{}, tt.apiErr)

			cfg := &config.LLM{Model: "test", MaxTokens: 10000}
			client := newTestClient(cfg, mockAPI)

			_, err := client.Complete(context.Background(), CompletionRequest{UserPrompt: "x"})
			require.Error(t, err)

			backendErr := AsBackendError(err)
			require.NotNil(t, backendErr)
			assert.Equal(t, tt.wantKind, backendErr.Kind)
			assert.Equal(t, tt.wantRetryable, backendErr.Retryable)
			assert.ErrorIs(t, err, tt.apiErr)
		})
	}
}

func TestWithAPIKey(t *testing.T) {
	cfg := &config.LLM{BaseURL: "https://api.example.com/v1", Model: "test", MaxTokens: 10000}
	client := NewClient(cfg, nil)
	assert.False(t, client.HasAPIKey())

	derived := client.WithAPIKey("sk-group-key")
	assert.True(t, derived.HasAPIKey())
	assert.False(t, client.HasAPIKey(), "原客户端不应被修改")
	assert.Equal(t, client.MaxInputTokens(), derived.MaxInputTokens())
}

func TestAsBackendError(t *testing.T) {
	backendErr := &BackendError{Kind: KindAuth, Retryable: false, Err: errors.New("bad key")}
	assert.Equal(t, backendErr, AsBackendError(backendErr))
	assert.Nil(t, AsBackendError(errors.New("plain error")))
	assert.Nil(t, AsBackendError(nil))
}

package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantKind      ErrorKind
		wantRetryable bool
	}{
		{
			name:          "超时错误",
			err:           context.DeadlineExceeded,
			wantKind:      KindTimeout,
			wantRetryable: true,
		},
		{
			name:          "包装过的超时错误",
			err:           fmt.Errorf("请求失败: %w", context.DeadlineExceeded),
			wantKind:      KindTimeout,
			wantRetryable: true,
		},
		{
			name:          "网络超时",
			err:           &net.DNSError{Err: "i/o timeout", IsTimeout: true},
			wantKind:      KindTimeout,
			wantRetryable: true,
		},
		{
			name:          "网络不可达",
			err:           &net.DNSError{Err: "no such host"},
			wantKind:      KindNetwork,
			wantRetryable: true,
		},
		{
			name:          "未知错误默认可重试",
			err:           errors.New("something broke"),
			wantKind:      KindOther,
			wantRetryable: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyError(tt.err)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantRetryable, got.Retryable)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestIsQuotaExceeded(t *testing.T) {
	assert.True(t, isQuotaExceeded(&openai.APIError{Code: "insufficient_quota"}))
	assert.True(t, isQuotaExceeded(&openai.APIError{Type: "insufficient_quota"}))
	assert.False(t, isQuotaExceeded(&openai.APIError{Code: "rate_limit_exceeded"}))
	assert.False(t, isQuotaExceeded(&openai.APIError{}))
}

func TestBackendError_Error(t *testing.T) {
	err := &BackendError{Kind: KindAuth, Retryable: false, Err: errors.New("invalid key")}
	assert.Contains(t, err.Error(), "auth")
	assert.Contains(t, err.Error(), "invalid key")
	assert.Equal(t, "invalid key", err.Unwrap().Error())
}

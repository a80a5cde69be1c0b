package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/sashabaranov/go-openai"
)

// ErrorKind LLM 后端错误分类
type ErrorKind string

const (
	KindAuth       ErrorKind = "auth"       // API Key 无效
	KindPermission ErrorKind = "permission" // 无权访问模型
	KindQuota      ErrorKind = "quota"      // 配额耗尽
	KindRateLimit  ErrorKind = "rate_limit" // 触发限流
	KindTimeout    ErrorKind = "timeout"    // 请求超时
	KindNetwork    ErrorKind = "network"    // 网络错误
	KindOther      ErrorKind = "other"      // 其他错误
)

// BackendError 带分类标签的后端错误，重试策略只读取 Kind 和 Retryable，不解析错误文本
type BackendError struct {
	Kind      ErrorKind
	Retryable bool
	Err       error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("LLM后端错误(%s): %v", e.Kind, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// AsBackendError 提取错误链中的 BackendError，不存在时返回 nil
func AsBackendError(err error) *BackendError {
	var backendErr *BackendError
	if errors.As(err, &backendErr) {
		return backendErr
	}
	return nil
}

// classifyError 将底层调用错误归类为 BackendError
func classifyError(err error) *BackendError {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized:
			return &BackendError{Kind: KindAuth, Retryable: false, Err: err}
		case http.StatusForbidden:
			return &BackendError{Kind: KindPermission, Retryable: false, Err: err}
		case http.StatusTooManyRequests:
			if isQuotaExceeded(apiErr) {
				return &BackendError{Kind: KindQuota, Retryable: true, Err: err}
			}
			return &BackendError{Kind: KindRateLimit, Retryable: true, Err: err}
		}
		return &BackendError{Kind: KindOther, Retryable: true, Err: err}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &BackendError{Kind: KindTimeout, Retryable: true, Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return &BackendError{Kind: KindTimeout, Retryable: true, Err: err}
		}
		return &BackendError{Kind: KindNetwork, Retryable: true, Err: err}
	}

	return &BackendError{Kind: KindOther, Retryable: true, Err: err}
}

// isQuotaExceeded 区分 429 中的配额耗尽和普通限流
func isQuotaExceeded(apiErr *openai.APIError) bool {
	if code, ok := apiErr.Code.(string); ok && code == "insufficient_quota" {
		return true
	}
	return apiErr.Type == "insufficient_quota"
}

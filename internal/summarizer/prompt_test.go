package summarizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSystemPrompt(t *testing.T) {
	tests := []struct {
		name        string
		opts        Options
		wantContain []string
		notContain  []string
	}{
		{
			name:        "默认风格",
			opts:        Options{},
			wantContain: []string{styleInstructions["default"], "[12345]"},
		},
		{
			name:        "未知风格回退默认",
			opts:        Options{Style: "unknown"},
			wantContain: []string{styleInstructions["default"]},
		},
		{
			name:        "brief风格",
			opts:        Options{Style: "brief"},
			wantContain: []string{styleInstructions["brief"]},
			notContain:  []string{styleInstructions["default"]},
		},
		{
			name:        "带话题",
			opts:        Options{Topic: "Secret Santa"},
			wantContain: []string{"Secret Santa", "无关内容忽略"},
		},
		{
			name:       "无话题不包含话题段",
			opts:       Options{},
			notContain: []string{"无关内容忽略"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildSystemPrompt(tt.opts)
			for _, want := range tt.wantContain {
				assert.Contains(t, got, want)
			}
			for _, not := range tt.notContain {
				assert.NotContains(t, got, not)
			}
		})
	}
}

func TestBuildUserPrompt(t *testing.T) {
	messages := []ChatMessage{
		{MessageID: 100, SenderName: "张三", Text: "你好"},
		{MessageID: 101, SenderName: "李四", Text: "大家好"},
	}

	got := buildUserPrompt(messages, Options{}, 8000)
	assert.Contains(t, got, "[100] 张三: 你好")
	assert.Contains(t, got, "[101] 李四: 大家好")
	assert.True(t, strings.Index(got, "[100]") < strings.Index(got, "[101]"), "消息应保持时间顺序")
}

func TestBuildUserPrompt_CustomTemplate(t *testing.T) {
	messages := []ChatMessage{
		{MessageID: 100, SenderName: "张三", Text: "你好"},
	}

	got := buildUserPrompt(messages, Options{CustomPrompt: "请按班级日报格式总结：\n{messages}\n结束"}, 8000)
	assert.Contains(t, got, "请按班级日报格式总结：")
	assert.Contains(t, got, "[100] 张三: 你好")
	assert.Contains(t, got, "结束")
	assert.NotContains(t, got, "{messages}")

	// 模板没有占位符时退回默认格式
	got = buildUserPrompt(messages, Options{CustomPrompt: "没有占位符的模板"}, 8000)
	assert.NotContains(t, got, "没有占位符的模板")
	assert.Contains(t, got, "聊天记录：")
}

func TestBuildUserPrompt_DropsOldestWhenOverBudget(t *testing.T) {
	messages := []ChatMessage{
		{MessageID: 1, SenderName: "A", Text: "oldest message foo"},
		{MessageID: 2, SenderName: "A", Text: "middle message foo"},
		{MessageID: 3, SenderName: "A", Text: "newest message foo"},
	}

	got := buildUserPrompt(messages, Options{}, 15)
	assert.Contains(t, got, "newest message foo")
	assert.Contains(t, got, "middle message foo")
	assert.NotContains(t, got, "oldest message foo", "超出预算时应丢弃最早的消息")
}

func TestBuildUserPrompt_KeepsNewestEvenIfOversize(t *testing.T) {
	messages := []ChatMessage{
		{MessageID: 1, SenderName: "A", Text: strings.Repeat("word ", 200)},
	}

	got := buildUserPrompt(messages, Options{}, 10)
	assert.Contains(t, got, "word word", "唯一一条消息即使超预算也应保留")
}

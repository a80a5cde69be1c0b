package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Sock5Proxy struct {
	Host   string `yaml:"Host"`
	Port   int32  `yaml:"Port"`
	Enable bool   `yaml:"Enable"`
}

type TelegramApp struct {
	ApiId   int32  `yaml:"ApiId"`
	ApiHash string `yaml:"ApiHash"`
}

type LLM struct {
	BaseURL   string `yaml:"BaseURL"` // 兼容 OpenAI API 的端点
	APIKey    string `yaml:"APIKey"`  // 全局 API Key，可为空（此时各群必须配置自己的 Key）
	Model     string `yaml:"Model"`   // 如 gpt-4o, deepseek-chat, qwen-plus
	MaxTokens int    `yaml:"MaxTokens"` // 模型上下文窗口大小
}

type Tldr struct {
	CooldownSeconds int    `yaml:"CooldownSeconds"` // 同一用户在同一群的请求冷却时间（秒），默认 60
	RetentionHours  int    `yaml:"RetentionHours"`  // 消息保留时长（小时），默认 168（7天）
	CleanupCron     string `yaml:"CleanupCron"`     // 清理任务 cron 表达式，如 "0 * * * *"
}

type Credential struct {
	MasterKey string `yaml:"MasterKey"` // 加密各群 API Key 的主密钥；为空则禁用群组级 Key
}

type Config struct {
	Sock5Proxy  Sock5Proxy  `yaml:"Sock5Proxy"`
	TelegramApp TelegramApp `yaml:"TelegramApp"`
	LLM         LLM         `yaml:"LLM"`
	Tldr        Tldr        `yaml:"Tldr"`
	Credential  Credential  `yaml:"Credential"`
}

func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var c Config
	err = yaml.Unmarshal([]byte(data), &c)
	if err != nil {
		return nil, err
	}

	// 填充默认值
	c.applyDefaults()

	// 验证配置
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// applyDefaults 为未配置的字段填充默认值
func (c *Config) applyDefaults() {
	if c.Tldr.CooldownSeconds == 0 {
		c.Tldr.CooldownSeconds = 60
	}
	if c.Tldr.RetentionHours == 0 {
		c.Tldr.RetentionHours = 168
	}
	if c.Tldr.CleanupCron == "" {
		c.Tldr.CleanupCron = "0 * * * *"
	}
}

// Validate 验证配置的有效性
func (c *Config) Validate() error {
	// 验证 TelegramApp
	if c.TelegramApp.ApiId == 0 {
		return fmt.Errorf("TelegramApp.ApiId 不能为空")
	}
	if c.TelegramApp.ApiHash == "" {
		return fmt.Errorf("TelegramApp.ApiHash 不能为空")
	}

	// 验证 LLM
	if c.LLM.BaseURL == "" {
		return fmt.Errorf("LLM.BaseURL 不能为空")
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("LLM.Model 不能为空")
	}
	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("LLM.MaxTokens 必须大于 0")
	}

	// 全局 Key 和加密主密钥至少要有一个，否则任何群都无法调用 LLM
	if c.LLM.APIKey == "" && c.Credential.MasterKey == "" {
		return fmt.Errorf("LLM.APIKey 和 Credential.MasterKey 不能同时为空")
	}

	// 验证 Tldr
	if c.Tldr.CooldownSeconds < 0 {
		return fmt.Errorf("Tldr.CooldownSeconds 必须 >= 0")
	}
	if c.Tldr.RetentionHours < 0 {
		return fmt.Errorf("Tldr.RetentionHours 必须 >= 0")
	}

	return nil
}

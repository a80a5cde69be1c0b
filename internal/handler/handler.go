package handler

import (
	"context"
	"errors"
	"time"

	"github.com/fachebot/chat-tldr-bot/internal/config"
	"github.com/fachebot/chat-tldr-bot/internal/credential"
	"github.com/fachebot/chat-tldr-bot/internal/ent"
	"github.com/fachebot/chat-tldr-bot/internal/ent/groupsettings"
	"github.com/fachebot/chat-tldr-bot/internal/llm"
	"github.com/fachebot/chat-tldr-bot/internal/logger"
	"github.com/fachebot/chat-tldr-bot/internal/model"
	"github.com/fachebot/chat-tldr-bot/internal/ratelimit"
	"github.com/fachebot/chat-tldr-bot/internal/render"
	"github.com/fachebot/chat-tldr-bot/internal/summarizer"
	"github.com/fachebot/chat-tldr-bot/internal/svc"
)

// ErrMessageTooLong 传输层因消息超长拒绝写入，发送方应去掉标题后重发
var ErrMessageTooLong = errors.New("message too long")

// CommandEvent 群聊中的一条命令消息
type CommandEvent struct {
	ChatID           int64
	ChatTitle        string
	MessageID        int64
	SenderID         int64
	Command          string // 如 "/tldr"，不含 @机器人 后缀
	Args             string // 命令之后的原始参数串
	ReplyToMessageID int64  // 命令作为回复发送时，被回复消息的ID，否则为 0
}

// PrivateMessageEvent 私聊中的一条文本消息，用于接收 API Key
type PrivateMessageEvent struct {
	SenderID int64
	Text     string
}

// Transport 与 Telegram 的交互（便于测试注入 mock）。
// 消息超长被拒绝时，实现方需返回包装了 ErrMessageTooLong 的错误。
type Transport interface {
	SendHTML(chatID int64, text string) (int64, error)
	SendText(chatID int64, text string) (int64, error)
	EditHTML(chatID int64, messageID int64, text string) error
	IsAdmin(chatID int64, userID int64) (bool, error)
	ChatContext(chatID int64) render.ChatContext
}

// 各依赖的窄接口（便于测试注入 mock）
type messageStore interface {
	GetLastN(ctx context.Context, chatID int64, n int, username string) ([]*ent.Message, error)
	GetSince(ctx context.Context, chatID int64, since time.Time, username string) ([]*ent.Message, error)
	GetSinceMessageID(ctx context.Context, chatID int64, messageID int64, username string) ([]*ent.Message, error)
	CountByChat(ctx context.Context, chatID int64) (int, error)
	GetOldest(ctx context.Context, chatID int64) (*ent.Message, error)
}

type groupStore interface {
	GetByChatID(ctx context.Context, chatID int64) (*ent.Group, error)
	SetEnabled(ctx context.Context, chatID int64, title string, enabled bool) (*ent.Group, error)
	SetAPIKeyCipher(ctx context.Context, chatID int64, cipher string) (*ent.Group, error)
	ClearAPIKeyCipher(ctx context.Context, chatID int64) error
}

type settingsStore interface {
	GetByChatID(ctx context.Context, chatID int64) (*ent.GroupSettings, error)
	SetStyle(ctx context.Context, chatID int64, style groupsettings.Style) (*ent.GroupSettings, error)
}

type summaryRecordStore interface {
	Create(ctx context.Context, data *model.SummaryRecordData) (*ent.SummaryRecord, error)
	CountByChat(ctx context.Context, chatID int64) (int, error)
}

type summaryGenerator interface {
	Summarize(ctx context.Context, messages []summarizer.ChatMessage, opts summarizer.Options) (string, error)
}

type Handler struct {
	config        *config.Config
	transport     Transport
	cooldown      *ratelimit.Cooldown
	intents       *credential.IntentTable
	cipher        *credential.Cipher // 未配置主密钥时为 nil
	messageModel  messageStore
	groupModel    groupStore
	settingsModel settingsStore
	recordModel   summaryRecordStore
	hasGlobalKey  bool
	newSummarizer func(apiKey string) summaryGenerator
	now           func() time.Time
}

func NewHandler(
	svcCtx *svc.ServiceContext,
	transport Transport,
	cooldown *ratelimit.Cooldown,
	intents *credential.IntentTable,
) *Handler {
	return &Handler{
		config:        svcCtx.Config,
		transport:     transport,
		cooldown:      cooldown,
		intents:       intents,
		cipher:        svcCtx.Cipher,
		messageModel:  svcCtx.MessageModel,
		groupModel:    svcCtx.GroupModel,
		settingsModel: svcCtx.SettingsModel,
		recordModel:   svcCtx.SummaryRecordModel,
		hasGlobalKey:  svcCtx.LLMClient.HasAPIKey(),
		newSummarizer: summarizerFactory(svcCtx.LLMClient),
		now:           time.Now,
	}
}

// summarizerFactory 按请求的 API Key 构造总结器，群组 Key 优先于全局 Key
func summarizerFactory(llmClient *llm.Client) func(apiKey string) summaryGenerator {
	return func(apiKey string) summaryGenerator {
		client := llmClient
		if apiKey != "" {
			client = llmClient.WithAPIKey(apiKey)
		}
		return summarizer.NewSummarizer(client)
	}
}

// HandleCommand 处理群聊命令，每个命令在独立的 goroutine 中执行
func (h *Handler) HandleCommand(ctx context.Context, event CommandEvent) {
	switch event.Command {
	case "/tldr":
		h.handleTldr(ctx, event)
	case "/tldr_help":
		h.reply(event.ChatID, helpText)
	case "/tldr_info":
		h.handleInfo(ctx, event)
	case "/enable":
		h.handleSetEnabled(ctx, event, true)
	case "/disable":
		h.handleSetEnabled(ctx, event, false)
	case "/tldr_style":
		h.handleSetStyle(ctx, event)
	case "/tldr_setkey":
		h.handleSetKey(ctx, event)
	case "/tldr_delkey":
		h.handleDelKey(ctx, event)
	}
}

// reply 发送纯文本回复，发送失败只记录日志
func (h *Handler) reply(chatID int64, text string) {
	if _, err := h.transport.SendText(chatID, text); err != nil {
		logger.Errorf("[Handler] 发送回复失败: chatID=%d, %v", chatID, err)
	}
}

package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fachebot/chat-tldr-bot/internal/command"
	"github.com/fachebot/chat-tldr-bot/internal/ent"
	"github.com/fachebot/chat-tldr-bot/internal/llm"
	"github.com/fachebot/chat-tldr-bot/internal/logger"
	"github.com/fachebot/chat-tldr-bot/internal/model"
	"github.com/fachebot/chat-tldr-bot/internal/render"
	"github.com/fachebot/chat-tldr-bot/internal/summarizer"

	"github.com/google/uuid"
)

// handleTldr 执行完整的总结流水线：
// 冷却检查 → 解析参数 → 拉取消息 → 按设置过滤 → 话题检查 → 生成总结 → 渲染 → 发送
func (h *Handler) handleTldr(ctx context.Context, event CommandEvent) {
	reqID := uuid.New().String()[:8]

	// 冷却检查在任何 I/O 之前
	if !h.cooldown.Allow(event.ChatID, event.SenderID) {
		remaining := h.cooldown.Remaining(event.ChatID, event.SenderID)
		h.reply(event.ChatID, fmt.Sprintf("%s请求过于频繁，请 %d 秒后再试", failurePrefix, int(remaining.Seconds())+1))
		return
	}

	group, err := h.groupModel.GetByChatID(ctx, event.ChatID)
	if err != nil {
		logger.Errorf("[Handler] (%s) 查询群组失败: %v", reqID, err)
		h.reply(event.ChatID, msgInternalError)
		return
	}
	if group == nil || !group.Enabled {
		h.reply(event.ChatID, msgNotEnabled)
		return
	}

	apiKey, errMsg := h.resolveAPIKey(reqID, group)
	if errMsg != "" {
		h.reply(event.ChatID, errMsg)
		return
	}

	req := command.ParseArgs(event.Args)
	logger.Infof("[Handler] (%s) 收到总结请求: chatID=%d, userID=%d, range=%s, user=%q, style=%q, topic=%q",
		reqID, event.ChatID, event.SenderID, req.RangeSpec, req.Username, req.Style, req.Topic)

	messages, rangeLabel, err := h.fetchMessages(ctx, event, req)
	if err != nil {
		logger.Errorf("[Handler] (%s) 拉取消息失败: %v", reqID, err)
		h.reply(event.ChatID, msgInternalError)
		return
	}

	settings, err := h.settingsModel.GetByChatID(ctx, event.ChatID)
	if err != nil {
		logger.Errorf("[Handler] (%s) 查询群设置失败: %v", reqID, err)
		h.reply(event.ChatID, msgInternalError)
		return
	}

	messages = filterMessages(messages, settings)
	if len(messages) == 0 {
		h.reply(event.ChatID, msgNoMessages)
		return
	}

	// 话题被清洗拒绝时在调用 LLM 之前终止
	if req.TopicRequested && req.Topic == "" {
		h.reply(event.ChatID, msgInvalidTopic)
		return
	}

	opts := buildOptions(req, settings)

	placeholderID, err := h.transport.SendText(event.ChatID, msgGenerating)
	if err != nil {
		logger.Errorf("[Handler] (%s) 发送占位消息失败: %v", reqID, err)
		placeholderID = 0
	}

	gen := h.newSummarizer(apiKey)
	summary, err := gen.Summarize(ctx, toChatMessages(messages), opts)
	if err != nil {
		logger.Errorf("[Handler] (%s) 生成总结失败: %v", reqID, err)
		h.deliver(event.ChatID, placeholderID, summaryFailureText(err))
		return
	}

	headerBase := chunkHeaderBase(rangeLabel)
	chunks := render.Render(summary, h.transport.ChatContext(event.ChatID), len(headerBase)+chunkSuffixAllowance)
	h.emitChunks(reqID, event.ChatID, placeholderID, headerBase, chunks)

	record := &model.SummaryRecordData{
		ChatID:       event.ChatID,
		RequestedBy:  event.SenderID,
		RangeLabel:   rangeLabel,
		Style:        opts.Style,
		MessageCount: len(messages),
		Content:      summary,
	}
	if _, err := h.recordModel.Create(ctx, record); err != nil {
		logger.Warnf("[Handler] (%s) 保存总结记录失败: %v", reqID, err)
	}

	logger.Infof("[Handler] (%s) 总结完成: chatID=%d, messages=%d, chunks=%d",
		reqID, event.ChatID, len(messages), len(chunks))
}

// resolveAPIKey 取本次请求使用的 API Key，优先使用群组专属 Key。
// 返回的第二个值非空时表示无法继续，应直接回复该消息。
func (h *Handler) resolveAPIKey(reqID string, group *ent.Group) (string, string) {
	if group.APIKeyCipher != "" && h.cipher != nil {
		apiKey, err := h.cipher.Decrypt(group.APIKeyCipher)
		if err != nil {
			logger.Errorf("[Handler] (%s) 解密群组 API Key 失败: %v", reqID, err)
			return "", msgKeyDecryptFailed
		}
		return apiKey, ""
	}
	if !h.hasGlobalKey {
		return "", msgNoAPIKey
	}
	return "", ""
}

// fetchMessages 按请求的范围拉取消息，回复模式优先于范围参数
func (h *Handler) fetchMessages(ctx context.Context, event CommandEvent, req command.Request) ([]*ent.Message, string, error) {
	if event.ReplyToMessageID > 0 {
		messages, err := h.messageModel.GetSinceMessageID(ctx, event.ChatID, event.ReplyToMessageID, req.Username)
		return messages, "自被回复消息起", err
	}

	resolved := command.ResolveRange(req.RangeSpec, h.now())
	if resolved.IsCount() {
		messages, err := h.messageModel.GetLastN(ctx, event.ChatID, resolved.Count, req.Username)
		return messages, resolved.Label(), err
	}
	messages, err := h.messageModel.GetSince(ctx, event.ChatID, resolved.Since, req.Username)
	return messages, resolved.Label(), err
}

// filterMessages 按群设置过滤消息，settings 为 nil 时用默认设置（排除机器人和命令）
func filterMessages(messages []*ent.Message, settings *ent.GroupSettings) []*ent.Message {
	excludeBots := true
	excludeCommands := true
	var excludedUsers map[int64]bool

	if settings != nil {
		excludeBots = settings.ExcludeBots
		excludeCommands = settings.ExcludeCommands
		if len(settings.ExcludedUsers) > 0 {
			excludedUsers = make(map[int64]bool, len(settings.ExcludedUsers))
			for _, id := range settings.ExcludedUsers {
				excludedUsers[id] = true
			}
		}
	}

	filtered := messages[:0]
	for _, msg := range messages {
		if excludeBots && msg.IsBot {
			continue
		}
		if excludeCommands && strings.HasPrefix(msg.Text, "/") {
			continue
		}
		if excludedUsers[msg.SenderID] {
			continue
		}
		filtered = append(filtered, msg)
	}
	return filtered
}

// buildOptions 组合总结选项：请求里的风格优先于群设置
func buildOptions(req command.Request, settings *ent.GroupSettings) summarizer.Options {
	opts := summarizer.Options{
		Style: req.Style,
		Topic: req.Topic,
	}
	if settings != nil {
		if opts.Style == "" {
			opts.Style = string(settings.Style)
		}
		opts.CustomPrompt = settings.CustomPrompt
	}
	if opts.Style == "" {
		opts.Style = "default"
	}
	return opts
}

func toChatMessages(messages []*ent.Message) []summarizer.ChatMessage {
	chatMsgs := make([]summarizer.ChatMessage, len(messages))
	for i, msg := range messages {
		chatMsgs[i] = summarizer.ChatMessage{
			MessageID:     msg.MessageID,
			SenderID:      msg.SenderID,
			SenderName:    msg.SenderName,
			Text:          msg.Text,
			IsBot:         msg.IsBot,
			IsChannelPost: msg.IsChannelPost,
		}
	}
	return chatMsgs
}

// summaryFailureText 把总结错误转换为带补救提示的用户消息
func summaryFailureText(err error) string {
	summaryErr := summarizer.AsSummaryError(err)
	if summaryErr == nil {
		return msgSummaryFailed
	}
	switch summaryErr.Kind {
	case llm.KindAuth:
		return failurePrefix + "API Key 无效。请管理员使用 /tldr_setkey 更换群组 Key，或联系机器人运营方检查全局配置。"
	case llm.KindPermission:
		return failurePrefix + "没有权限访问所配置的模型。请检查 API Key 的模型访问权限。"
	case llm.KindQuota:
		return failurePrefix + "API 配额已耗尽。请充值或更换 API Key 后再试。"
	default:
		return msgSummaryFailed
	}
}

const chunkSuffixAllowance = 12 // 预留 " (i/total)" 后缀空间

func chunkHeaderBase(rangeLabel string) string {
	return fmt.Sprintf("📝 群聊总结 · %s", rangeLabel)
}

func chunkHeader(headerBase string, chunk render.Chunk) string {
	if chunk.Total > 1 {
		return fmt.Sprintf("%s (%d/%d)\n\n", headerBase, chunk.Index, chunk.Total)
	}
	return headerBase + "\n\n"
}

// emitChunks 按序发送分块：第一块编辑占位消息，其余块追加发送。
// 消息超长被拒绝时去掉标题重发，占位消息编辑失败时改为发送新消息，
// 绝不让整个请求失败。
func (h *Handler) emitChunks(reqID string, chatID, placeholderID int64, headerBase string, chunks []render.Chunk) {
	for _, chunk := range chunks {
		text := chunkHeader(headerBase, chunk) + chunk.Text

		if chunk.Index == 1 && placeholderID != 0 {
			err := h.transport.EditHTML(chatID, placeholderID, text)
			if errors.Is(err, ErrMessageTooLong) {
				logger.Warnf("[Handler] (%s) 分块 %d 超长，去掉标题重发", reqID, chunk.Index)
				err = h.transport.EditHTML(chatID, placeholderID, chunk.Text)
			}
			if err == nil {
				continue
			}
			// 占位消息可能已被删除，退回为普通发送
			logger.Warnf("[Handler] (%s) 编辑占位消息失败，改为发送新消息: %v", reqID, err)
		}

		_, err := h.transport.SendHTML(chatID, text)
		if errors.Is(err, ErrMessageTooLong) {
			logger.Warnf("[Handler] (%s) 分块 %d 超长，去掉标题重发", reqID, chunk.Index)
			_, err = h.transport.SendHTML(chatID, chunk.Text)
		}
		if err != nil {
			logger.Errorf("[Handler] (%s) 发送分块 %d 失败: %v", reqID, chunk.Index, err)
		}
	}
}

// deliver 优先编辑占位消息，没有占位消息时直接发送
func (h *Handler) deliver(chatID, placeholderID int64, text string) {
	if placeholderID != 0 {
		if err := h.transport.EditHTML(chatID, placeholderID, text); err == nil {
			return
		}
	}
	h.reply(chatID, text)
}

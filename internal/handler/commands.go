package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/fachebot/chat-tldr-bot/internal/command"
	"github.com/fachebot/chat-tldr-bot/internal/credential"
	"github.com/fachebot/chat-tldr-bot/internal/ent/groupsettings"
	"github.com/fachebot/chat-tldr-bot/internal/logger"
)

// requireAdmin 校验发送者是否为群管理员，不是时回复拒绝消息并返回 false
func (h *Handler) requireAdmin(event CommandEvent) bool {
	isAdmin, err := h.transport.IsAdmin(event.ChatID, event.SenderID)
	if err != nil {
		logger.Errorf("[Handler] 查询管理员身份失败: chatID=%d, userID=%d, %v", event.ChatID, event.SenderID, err)
		h.reply(event.ChatID, msgInternalError)
		return false
	}
	if !isAdmin {
		h.reply(event.ChatID, msgAdminOnly)
		return false
	}
	return true
}

func (h *Handler) handleSetEnabled(ctx context.Context, event CommandEvent, enabled bool) {
	if !h.requireAdmin(event) {
		return
	}

	if _, err := h.groupModel.SetEnabled(ctx, event.ChatID, event.ChatTitle, enabled); err != nil {
		logger.Errorf("[Handler] 更新群组状态失败: chatID=%d, %v", event.ChatID, err)
		h.reply(event.ChatID, msgInternalError)
		return
	}

	if enabled {
		h.reply(event.ChatID, "✅ 总结功能已启用，发送 /tldr_help 查看用法")
	} else {
		h.reply(event.ChatID, "总结功能已禁用")
	}
}

func (h *Handler) handleInfo(ctx context.Context, event CommandEvent) {
	group, err := h.groupModel.GetByChatID(ctx, event.ChatID)
	if err != nil {
		logger.Errorf("[Handler] 查询群组失败: chatID=%d, %v", event.ChatID, err)
		h.reply(event.ChatID, msgInternalError)
		return
	}

	enabled := group != nil && group.Enabled
	hasKey := group != nil && group.APIKeyCipher != ""

	messageCount, err := h.messageModel.CountByChat(ctx, event.ChatID)
	if err != nil {
		logger.Errorf("[Handler] 统计消息数量失败: chatID=%d, %v", event.ChatID, err)
		h.reply(event.ChatID, msgInternalError)
		return
	}
	summaryCount, err := h.recordModel.CountByChat(ctx, event.ChatID)
	if err != nil {
		logger.Errorf("[Handler] 统计总结数量失败: chatID=%d, %v", event.ChatID, err)
		h.reply(event.ChatID, msgInternalError)
		return
	}

	style := "default"
	settings, err := h.settingsModel.GetByChatID(ctx, event.ChatID)
	if err == nil && settings != nil {
		style = string(settings.Style)
	}

	var sb strings.Builder
	sb.WriteString("📊 群组状态\n")
	sb.WriteString(fmt.Sprintf("· 总结功能：%s\n", onOff(enabled)))
	if hasKey {
		sb.WriteString("· API Key：已配置群组专属 Key\n")
	} else if h.hasGlobalKey {
		sb.WriteString("· API Key：使用全局配置\n")
	} else {
		sb.WriteString("· API Key：未配置\n")
	}
	sb.WriteString(fmt.Sprintf("· 已缓存消息：%d 条\n", messageCount))
	if messageCount > 0 {
		oldest, err := h.messageModel.GetOldest(ctx, event.ChatID)
		if err != nil {
			logger.Warnf("[Handler] 查询最早消息失败: chatID=%d, %v", event.ChatID, err)
		} else if oldest != nil {
			sb.WriteString(fmt.Sprintf("· 最早缓存消息：%s\n", oldest.SentAt.Format("2006-01-02 15:04")))
		}
	}
	sb.WriteString(fmt.Sprintf("· 已生成总结：%d 次\n", summaryCount))
	sb.WriteString(fmt.Sprintf("· 默认风格：%s", style))

	h.reply(event.ChatID, sb.String())
}

func onOff(enabled bool) string {
	if enabled {
		return "已启用"
	}
	return "已禁用"
}

func (h *Handler) handleSetStyle(ctx context.Context, event CommandEvent) {
	if !h.requireAdmin(event) {
		return
	}

	style, ok := command.NormalizeStyle(event.Args)
	if !ok {
		h.reply(event.ChatID, failurePrefix+"无效的风格。可选：default、brief、detailed、bullet、timeline")
		return
	}

	if _, err := h.settingsModel.SetStyle(ctx, event.ChatID, groupsettings.Style(style)); err != nil {
		logger.Errorf("[Handler] 更新群默认风格失败: chatID=%d, %v", event.ChatID, err)
		h.reply(event.ChatID, msgInternalError)
		return
	}
	h.reply(event.ChatID, fmt.Sprintf("✅ 本群默认总结风格已设为 %s", style))
}

func (h *Handler) handleSetKey(ctx context.Context, event CommandEvent) {
	if !h.requireAdmin(event) {
		return
	}
	if h.cipher == nil {
		h.reply(event.ChatID, failurePrefix+"机器人未配置加密主密钥，无法保存群组 Key")
		return
	}

	h.intents.Put(event.SenderID, event.ChatID, event.ChatTitle)
	h.reply(event.ChatID, "请在 30 分钟内私聊我发送 API Key（不要在群里发送）。Key 会被加密后保存，仅用于本群的总结请求。")
}

func (h *Handler) handleDelKey(ctx context.Context, event CommandEvent) {
	if !h.requireAdmin(event) {
		return
	}

	if err := h.groupModel.ClearAPIKeyCipher(ctx, event.ChatID); err != nil {
		logger.Errorf("[Handler] 清除群组 API Key 失败: chatID=%d, %v", event.ChatID, err)
		h.reply(event.ChatID, msgInternalError)
		return
	}
	h.reply(event.ChatID, "已删除本群的 API Key")
}

// HandlePrivateMessage 处理私聊文本。仅当发送者有未过期的 Key 设置意向时，
// 该消息才被当作 API Key 处理，否则忽略。
func (h *Handler) HandlePrivateMessage(ctx context.Context, event PrivateMessageEvent) {
	intent, ok := h.intents.Get(event.SenderID)
	if !ok {
		return
	}

	apiKey := strings.TrimSpace(event.Text)
	if !credential.LooksLikeAPIKey(apiKey) {
		h.reply(event.SenderID, failurePrefix+"这看起来不像有效的 API Key，请检查后重新发送")
		return
	}
	if h.cipher == nil {
		h.reply(event.SenderID, failurePrefix+"机器人未配置加密主密钥，无法保存群组 Key")
		return
	}

	cipherText, err := h.cipher.Encrypt(apiKey)
	if err != nil {
		logger.Errorf("[Handler] 加密 API Key 失败: userID=%d, %v", event.SenderID, err)
		h.reply(event.SenderID, msgInternalError)
		return
	}

	if _, err := h.groupModel.SetAPIKeyCipher(ctx, intent.ChatID, cipherText); err != nil {
		logger.Errorf("[Handler] 保存群组 API Key 失败: chatID=%d, %v", intent.ChatID, err)
		h.reply(event.SenderID, msgInternalError)
		return
	}

	h.intents.Delete(event.SenderID)
	logger.Infof("[Handler] 群组 API Key 已更新: chatID=%d, userID=%d", intent.ChatID, event.SenderID)
	h.reply(event.SenderID, fmt.Sprintf("✅ 已为群「%s」设置 API Key", intent.ChatTitle))
}

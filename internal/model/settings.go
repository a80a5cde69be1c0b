package model

import (
	"context"

	"github.com/fachebot/chat-tldr-bot/internal/ent"
	"github.com/fachebot/chat-tldr-bot/internal/ent/groupsettings"
)

type SettingsModel struct {
	client *ent.GroupSettingsClient
}

func NewSettingsModel(client *ent.GroupSettingsClient) *SettingsModel {
	return &SettingsModel{client: client}
}

// GetByChatID 查询群设置，不存在时返回 nil，调用方使用默认设置
func (m *SettingsModel) GetByChatID(ctx context.Context, chatID int64) (*ent.GroupSettings, error) {
	settings, err := m.client.Query().
		Where(groupsettings.ChatIDEQ(chatID)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	return settings, err
}

// SetStyle 设置群的总结风格，设置不存在时自动创建
func (m *SettingsModel) SetStyle(ctx context.Context, chatID int64, style groupsettings.Style) (*ent.GroupSettings, error) {
	existing, err := m.GetByChatID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return m.client.UpdateOneID(existing.ID).
			SetStyle(style).
			Save(ctx)
	}
	return m.client.Create().
		SetChatID(chatID).
		SetStyle(style).
		Save(ctx)
}

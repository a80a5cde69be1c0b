package model

import (
	"context"

	"github.com/fachebot/chat-tldr-bot/internal/ent"
	"github.com/fachebot/chat-tldr-bot/internal/ent/group"
)

type GroupModel struct {
	client *ent.GroupClient
}

func NewGroupModel(client *ent.GroupClient) *GroupModel {
	return &GroupModel{client: client}
}

// GetByChatID 按群聊ID查询群组，不存在时返回 nil
func (m *GroupModel) GetByChatID(ctx context.Context, chatID int64) (*ent.Group, error) {
	g, err := m.client.Query().
		Where(group.ChatIDEQ(chatID)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	return g, err
}

// SetEnabled 启用或禁用群组的总结功能，群组不存在时自动创建
func (m *GroupModel) SetEnabled(ctx context.Context, chatID int64, title string, enabled bool) (*ent.Group, error) {
	existing, err := m.GetByChatID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return m.client.UpdateOneID(existing.ID).
			SetTitle(title).
			SetEnabled(enabled).
			Save(ctx)
	}
	return m.client.Create().
		SetChatID(chatID).
		SetTitle(title).
		SetEnabled(enabled).
		Save(ctx)
}

// SetAPIKeyCipher 设置群组专属 API Key 密文，群组不存在时自动创建
func (m *GroupModel) SetAPIKeyCipher(ctx context.Context, chatID int64, cipher string) (*ent.Group, error) {
	existing, err := m.GetByChatID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return m.client.UpdateOneID(existing.ID).
			SetAPIKeyCipher(cipher).
			Save(ctx)
	}
	return m.client.Create().
		SetChatID(chatID).
		SetAPIKeyCipher(cipher).
		Save(ctx)
}

// ClearAPIKeyCipher 清除群组专属 API Key
func (m *GroupModel) ClearAPIKeyCipher(ctx context.Context, chatID int64) error {
	existing, err := m.GetByChatID(ctx, chatID)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}
	return m.client.UpdateOneID(existing.ID).
		ClearAPIKeyCipher().
		Exec(ctx)
}

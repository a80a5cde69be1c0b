package model

import (
	"context"
	"time"

	"github.com/fachebot/chat-tldr-bot/internal/ent"
	"github.com/fachebot/chat-tldr-bot/internal/ent/message"
	"github.com/fachebot/chat-tldr-bot/internal/ent/predicate"
)

type MessageModel struct {
	client *ent.MessageClient
}

func NewMessageModel(client *ent.MessageClient) *MessageModel {
	return &MessageModel{client: client}
}

type MessageData struct {
	MessageID      int64
	ChatID         int64
	SenderID       int64
	SenderName     string
	SenderUsername *string
	Text           string
	SentAt         time.Time
	IsBot          bool
	IsChannelPost  bool
}

// Create 创建消息，同一群内消息ID重复时直接忽略
func (m *MessageModel) Create(ctx context.Context, data *MessageData) (*ent.Message, error) {
	create := m.client.Create().
		SetMessageID(data.MessageID).
		SetChatID(data.ChatID).
		SetSenderID(data.SenderID).
		SetSenderName(data.SenderName).
		SetText(data.Text).
		SetSentAt(data.SentAt).
		SetIsBot(data.IsBot).
		SetIsChannelPost(data.IsChannelPost)

	if data.SenderUsername != nil {
		create.SetSenderUsername(*data.SenderUsername)
	}

	msg, err := create.Save(ctx)
	if ent.IsConstraintError(err) {
		return nil, nil
	}
	return msg, err
}

// usernamePredicates 构造可选的发送者用户名过滤条件，username 不带 @ 前缀
func usernamePredicates(chatID int64, username string) []predicate.Message {
	preds := []predicate.Message{message.ChatIDEQ(chatID)}
	if username != "" {
		// 存储时带 @ 前缀，用户名大小写不敏感
		preds = append(preds, message.SenderUsernameEqualFold("@"+username))
	}
	return preds
}

// GetLastN 获取群内最近 n 条消息，按时间正序返回。username 非空时只取该用户的发言。
func (m *MessageModel) GetLastN(ctx context.Context, chatID int64, n int, username string) ([]*ent.Message, error) {
	messages, err := m.client.Query().
		Where(usernamePredicates(chatID, username)...).
		Order(ent.Desc(message.FieldSentAt), ent.Desc(message.FieldMessageID)).
		Limit(n).
		All(ctx)
	if err != nil {
		return nil, err
	}

	// 翻转为时间正序
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// GetSince 获取指定时间之后的群消息，username 非空时只取该用户的发言
func (m *MessageModel) GetSince(ctx context.Context, chatID int64, since time.Time, username string) ([]*ent.Message, error) {
	preds := append(usernamePredicates(chatID, username), message.SentAtGTE(since))
	return m.client.Query().
		Where(preds...).
		Order(message.BySentAt()).
		All(ctx)
}

// GetSinceMessageID 获取指定消息（含）之后的群消息，username 非空时只取该用户的发言
func (m *MessageModel) GetSinceMessageID(ctx context.Context, chatID int64, messageID int64, username string) ([]*ent.Message, error) {
	preds := append(usernamePredicates(chatID, username), message.MessageIDGTE(messageID))
	return m.client.Query().
		Where(preds...).
		Order(message.BySentAt()).
		All(ctx)
}

// CountByChat 统计群内已存储的消息数量
func (m *MessageModel) CountByChat(ctx context.Context, chatID int64) (int, error) {
	return m.client.Query().
		Where(message.ChatIDEQ(chatID)).
		Count(ctx)
}

// GetOldest 获取群内最早的一条消息，没有消息时返回 nil
func (m *MessageModel) GetOldest(ctx context.Context, chatID int64) (*ent.Message, error) {
	msg, err := m.client.Query().
		Where(message.ChatIDEQ(chatID)).
		Order(message.BySentAt()).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	return msg, err
}

// DeleteBefore 删除指定时间之前的消息
func (m *MessageModel) DeleteBefore(ctx context.Context, cutoffDate time.Time) (int, error) {
	return m.client.Delete().
		Where(message.SentAtLT(cutoffDate)).
		Exec(ctx)
}

package model

import (
	"context"

	"github.com/fachebot/chat-tldr-bot/internal/ent"
	"github.com/fachebot/chat-tldr-bot/internal/ent/summaryrecord"
)

type SummaryRecordModel struct {
	client *ent.SummaryRecordClient
}

func NewSummaryRecordModel(client *ent.SummaryRecordClient) *SummaryRecordModel {
	return &SummaryRecordModel{client: client}
}

type SummaryRecordData struct {
	ChatID       int64
	RequestedBy  int64
	RangeLabel   string
	Style        string
	MessageCount int
	Content      string
}

// Create 创建总结记录
func (m *SummaryRecordModel) Create(ctx context.Context, data *SummaryRecordData) (*ent.SummaryRecord, error) {
	return m.client.Create().
		SetChatID(data.ChatID).
		SetRequestedBy(data.RequestedBy).
		SetRangeLabel(data.RangeLabel).
		SetStyle(data.Style).
		SetMessageCount(data.MessageCount).
		SetContent(data.Content).
		Save(ctx)
}

// CountByChat 统计群内已生成的总结数量
func (m *SummaryRecordModel) CountByChat(ctx context.Context, chatID int64) (int, error) {
	return m.client.Query().
		Where(summaryrecord.ChatIDEQ(chatID)).
		Count(ctx)
}

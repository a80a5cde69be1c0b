package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// SummaryRecord holds the schema definition for the SummaryRecord entity.
type SummaryRecord struct {
	ent.Schema
}

func (SummaryRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.Time{},
	}
}

// Fields of the SummaryRecord.
func (SummaryRecord) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("chat_id").Comment("群聊ID"),
		field.Int64("requested_by").Comment("发起总结的用户ID"),
		field.String("range_label").Comment("总结范围描述，如 500条 或 24小时"),
		field.String("style").Comment("生成时使用的风格"),
		field.Int("message_count").Comment("参与总结的消息数量"),
		field.Text("content").Comment("总结内容"),
	}
}

// Indexes of the SummaryRecord.
func (SummaryRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("chat_id"),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// Group holds the schema definition for the Group entity.
type Group struct {
	ent.Schema
}

func (Group) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.Time{},
	}
}

// Fields of the Group.
func (Group) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("chat_id").Comment("群聊ID"),
		field.String("title").Optional().Comment("群聊名称"),
		field.Bool("enabled").Default(true).Comment("是否启用总结功能"),
		field.String("api_key_cipher").Optional().Comment("群组专属 API Key 密文，Base64 编码"),
	}
}

// Indexes of the Group.
func (Group) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("chat_id").Unique(),
	}
}

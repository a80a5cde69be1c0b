package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// GroupSettings holds the schema definition for the GroupSettings entity.
type GroupSettings struct {
	ent.Schema
}

func (GroupSettings) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.Time{},
	}
}

// Fields of the GroupSettings.
func (GroupSettings) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("chat_id").Comment("群聊ID"),
		field.Enum("style").
			Values("default", "brief", "detailed", "bullet", "timeline").
			Default("default").
			Comment("总结风格：default=默认, brief=简短, detailed=详细, bullet=要点列表, timeline=时间线"),
		field.Text("custom_prompt").Optional().Comment("自定义提示词模板，{messages} 占位符会被替换为消息内容"),
		field.Bool("exclude_bots").Default(true).Comment("是否排除机器人消息"),
		field.Bool("exclude_commands").Default(true).Comment("是否排除命令消息（以 / 开头）"),
		field.JSON("excluded_users", []int64{}).Optional().Comment("排除的用户ID列表"),
	}
}

// Indexes of the GroupSettings.
func (GroupSettings) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("chat_id").Unique(),
	}
}

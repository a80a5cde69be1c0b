// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/chat-tldr-bot/internal/ent/groupsettings"
)

// GroupSettings is the model entity for the GroupSettings schema.
type GroupSettings struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CreateTime holds the value of the "create_time" field.
	CreateTime time.Time `json:"create_time,omitempty"`
	// UpdateTime holds the value of the "update_time" field.
	UpdateTime time.Time `json:"update_time,omitempty"`
	// 群聊ID
	ChatID int64 `json:"chat_id,omitempty"`
	// 总结风格：default=默认, brief=简短, detailed=详细, bullet=要点列表, timeline=时间线
	Style groupsettings.Style `json:"style,omitempty"`
	// 自定义提示词模板，{messages} 占位符会被替换为消息内容
	CustomPrompt string `json:"custom_prompt,omitempty"`
	// 是否排除机器人消息
	ExcludeBots bool `json:"exclude_bots,omitempty"`
	// 是否排除命令消息（以 / 开头）
	ExcludeCommands bool `json:"exclude_commands,omitempty"`
	// 排除的用户ID列表
	ExcludedUsers []int64 `json:"excluded_users,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GroupSettings) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case groupsettings.FieldExcludedUsers:
			values[i] = new([]byte)
		case groupsettings.FieldExcludeBots, groupsettings.FieldExcludeCommands:
			values[i] = new(sql.NullBool)
		case groupsettings.FieldID, groupsettings.FieldChatID:
			values[i] = new(sql.NullInt64)
		case groupsettings.FieldStyle, groupsettings.FieldCustomPrompt:
			values[i] = new(sql.NullString)
		case groupsettings.FieldCreateTime, groupsettings.FieldUpdateTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GroupSettings fields.
func (gs *GroupSettings) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case groupsettings.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			gs.ID = int(value.Int64)
		case groupsettings.FieldCreateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field create_time", values[i])
			} else if value.Valid {
				gs.CreateTime = value.Time
			}
		case groupsettings.FieldUpdateTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field update_time", values[i])
			} else if value.Valid {
				gs.UpdateTime = value.Time
			}
		case groupsettings.FieldChatID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chat_id", values[i])
			} else if value.Valid {
				gs.ChatID = value.Int64
			}
		case groupsettings.FieldStyle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field style", values[i])
			} else if value.Valid {
				gs.Style = groupsettings.Style(value.String)
			}
		case groupsettings.FieldCustomPrompt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field custom_prompt", values[i])
			} else if value.Valid {
				gs.CustomPrompt = value.String
			}
		case groupsettings.FieldExcludeBots:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field exclude_bots", values[i])
			} else if value.Valid {
				gs.ExcludeBots = value.Bool
			}
		case groupsettings.FieldExcludeCommands:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field exclude_commands", values[i])
			} else if value.Valid {
				gs.ExcludeCommands = value.Bool
			}
		case groupsettings.FieldExcludedUsers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field excluded_users", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &gs.ExcludedUsers); err != nil {
					return fmt.Errorf("unmarshal field excluded_users: %w", err)
				}
			}
		default:
			gs.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GroupSettings.
// This includes values selected through modifiers, order, etc.
func (gs *GroupSettings) Value(name string) (ent.Value, error) {
	return gs.selectValues.Get(name)
}

// Update returns a builder for updating this GroupSettings.
// Note that you need to call GroupSettings.Unwrap() before calling this method if this GroupSettings
// was returned from a transaction, and the transaction was committed or rolled back.
func (gs *GroupSettings) Update() *GroupSettingsUpdateOne {
	return NewGroupSettingsClient(gs.config).UpdateOne(gs)
}

// Unwrap unwraps the GroupSettings entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (gs *GroupSettings) Unwrap() *GroupSettings {
	_tx, ok := gs.config.driver.(*txDriver)
	if !ok {
		panic("ent: GroupSettings is not a transactional entity")
	}
	gs.config.driver = _tx.drv
	return gs
}

// String implements the fmt.Stringer.
func (gs *GroupSettings) String() string {
	var builder strings.Builder
	builder.WriteString("GroupSettings(")
	builder.WriteString(fmt.Sprintf("id=%v, ", gs.ID))
	builder.WriteString("create_time=")
	builder.WriteString(gs.CreateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("update_time=")
	builder.WriteString(gs.UpdateTime.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("chat_id=")
	builder.WriteString(fmt.Sprintf("%v", gs.ChatID))
	builder.WriteString(", ")
	builder.WriteString("style=")
	builder.WriteString(fmt.Sprintf("%v", gs.Style))
	builder.WriteString(", ")
	builder.WriteString("custom_prompt=")
	builder.WriteString(gs.CustomPrompt)
	builder.WriteString(", ")
	builder.WriteString("exclude_bots=")
	builder.WriteString(fmt.Sprintf("%v", gs.ExcludeBots))
	builder.WriteString(", ")
	builder.WriteString("exclude_commands=")
	builder.WriteString(fmt.Sprintf("%v", gs.ExcludeCommands))
	builder.WriteString(", ")
	builder.WriteString("excluded_users=")
	builder.WriteString(fmt.Sprintf("%v", gs.ExcludedUsers))
	builder.WriteByte(')')
	return builder.String()
}

// GroupSettingsSlice is a parsable slice of GroupSettings.
type GroupSettingsSlice []*GroupSettings

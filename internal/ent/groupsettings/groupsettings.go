// Code generated by ent, DO NOT EDIT.

package groupsettings

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the groupsettings type in the database.
	Label = "group_settings"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreateTime holds the string denoting the create_time field in the database.
	FieldCreateTime = "create_time"
	// FieldUpdateTime holds the string denoting the update_time field in the database.
	FieldUpdateTime = "update_time"
	// FieldChatID holds the string denoting the chat_id field in the database.
	FieldChatID = "chat_id"
	// FieldStyle holds the string denoting the style field in the database.
	FieldStyle = "style"
	// FieldCustomPrompt holds the string denoting the custom_prompt field in the database.
	FieldCustomPrompt = "custom_prompt"
	// FieldExcludeBots holds the string denoting the exclude_bots field in the database.
	FieldExcludeBots = "exclude_bots"
	// FieldExcludeCommands holds the string denoting the exclude_commands field in the database.
	FieldExcludeCommands = "exclude_commands"
	// FieldExcludedUsers holds the string denoting the excluded_users field in the database.
	FieldExcludedUsers = "excluded_users"
	// Table holds the table name of the groupsettings in the database.
	Table = "group_settings"
)

// Columns holds all SQL columns for groupsettings fields.
var Columns = []string{
	FieldID,
	FieldCreateTime,
	FieldUpdateTime,
	FieldChatID,
	FieldStyle,
	FieldCustomPrompt,
	FieldExcludeBots,
	FieldExcludeCommands,
	FieldExcludedUsers,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreateTime holds the default value on creation for the "create_time" field.
	DefaultCreateTime func() time.Time
	// DefaultUpdateTime holds the default value on creation for the "update_time" field.
	DefaultUpdateTime func() time.Time
	// UpdateDefaultUpdateTime holds the default value on update for the "update_time" field.
	UpdateDefaultUpdateTime func() time.Time
	// DefaultExcludeBots holds the default value on creation for the "exclude_bots" field.
	DefaultExcludeBots bool
	// DefaultExcludeCommands holds the default value on creation for the "exclude_commands" field.
	DefaultExcludeCommands bool
)

// Style defines the type for the "style" enum field.
type Style string

// StyleDefault is the default value of the Style enum.
const DefaultStyle = StyleDefault

// Style values.
const (
	StyleDefault  Style = "default"
	StyleBrief    Style = "brief"
	StyleDetailed Style = "detailed"
	StyleBullet   Style = "bullet"
	StyleTimeline Style = "timeline"
)

func (s Style) String() string {
	return string(s)
}

// StyleValidator is a validator for the "style" field enum values. It is called by the builders before save.
func StyleValidator(s Style) error {
	switch s {
	case StyleDefault, StyleBrief, StyleDetailed, StyleBullet, StyleTimeline:
		return nil
	default:
		return fmt.Errorf("groupsettings: invalid enum value for style field: %q", s)
	}
}

// OrderOption defines the ordering options for the GroupSettings queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreateTime orders the results by the create_time field.
func ByCreateTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreateTime, opts...).ToFunc()
}

// ByUpdateTime orders the results by the update_time field.
func ByUpdateTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdateTime, opts...).ToFunc()
}

// ByChatID orders the results by the chat_id field.
func ByChatID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChatID, opts...).ToFunc()
}

// ByStyle orders the results by the style field.
func ByStyle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStyle, opts...).ToFunc()
}

// ByCustomPrompt orders the results by the custom_prompt field.
func ByCustomPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomPrompt, opts...).ToFunc()
}

// ByExcludeBots orders the results by the exclude_bots field.
func ByExcludeBots(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExcludeBots, opts...).ToFunc()
}

// ByExcludeCommands orders the results by the exclude_commands field.
func ByExcludeCommands(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExcludeCommands, opts...).ToFunc()
}

// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// GroupsColumns holds the columns for the "groups" table.
	GroupsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "chat_id", Type: field.TypeInt64},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "api_key_cipher", Type: field.TypeString, Nullable: true},
	}
	// GroupsTable holds the schema information for the "groups" table.
	GroupsTable = &schema.Table{
		Name:       "groups",
		Columns:    GroupsColumns,
		PrimaryKey: []*schema.Column{GroupsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "group_chat_id",
				Unique:  true,
				Columns: []*schema.Column{GroupsColumns[3]},
			},
		},
	}
	// GroupSettingsColumns holds the columns for the "group_settings" table.
	GroupSettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "chat_id", Type: field.TypeInt64},
		{Name: "style", Type: field.TypeEnum, Enums: []string{"default", "brief", "detailed", "bullet", "timeline"}, Default: "default"},
		{Name: "custom_prompt", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "exclude_bots", Type: field.TypeBool, Default: true},
		{Name: "exclude_commands", Type: field.TypeBool, Default: true},
		{Name: "excluded_users", Type: field.TypeJSON, Nullable: true},
	}
	// GroupSettingsTable holds the schema information for the "group_settings" table.
	GroupSettingsTable = &schema.Table{
		Name:       "group_settings",
		Columns:    GroupSettingsColumns,
		PrimaryKey: []*schema.Column{GroupSettingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "groupsettings_chat_id",
				Unique:  true,
				Columns: []*schema.Column{GroupSettingsColumns[3]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "message_id", Type: field.TypeInt64},
		{Name: "chat_id", Type: field.TypeInt64},
		{Name: "sender_id", Type: field.TypeInt64},
		{Name: "sender_name", Type: field.TypeString},
		{Name: "sender_username", Type: field.TypeString, Nullable: true},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "sent_at", Type: field.TypeTime},
		{Name: "is_bot", Type: field.TypeBool, Default: false},
		{Name: "is_channel_post", Type: field.TypeBool, Default: false},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "message_chat_id_message_id",
				Unique:  true,
				Columns: []*schema.Column{MessagesColumns[4], MessagesColumns[3]},
			},
			{
				Name:    "message_chat_id_sent_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[4], MessagesColumns[9]},
			},
		},
	}
	// SummaryRecordsColumns holds the columns for the "summary_records" table.
	SummaryRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "create_time", Type: field.TypeTime},
		{Name: "update_time", Type: field.TypeTime},
		{Name: "chat_id", Type: field.TypeInt64},
		{Name: "requested_by", Type: field.TypeInt64},
		{Name: "range_label", Type: field.TypeString},
		{Name: "style", Type: field.TypeString},
		{Name: "message_count", Type: field.TypeInt},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
	}
	// SummaryRecordsTable holds the schema information for the "summary_records" table.
	SummaryRecordsTable = &schema.Table{
		Name:       "summary_records",
		Columns:    SummaryRecordsColumns,
		PrimaryKey: []*schema.Column{SummaryRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "summaryrecord_chat_id",
				Unique:  false,
				Columns: []*schema.Column{SummaryRecordsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		GroupsTable,
		GroupSettingsTable,
		MessagesTable,
		SummaryRecordsTable,
	}
)

func init() {
}

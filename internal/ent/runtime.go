// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/fachebot/chat-tldr-bot/internal/ent/group"
	"github.com/fachebot/chat-tldr-bot/internal/ent/groupsettings"
	"github.com/fachebot/chat-tldr-bot/internal/ent/message"
	"github.com/fachebot/chat-tldr-bot/internal/ent/schema"
	"github.com/fachebot/chat-tldr-bot/internal/ent/summaryrecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	groupMixin := schema.Group{}.Mixin()
	groupMixinFields0 := groupMixin[0].Fields()
	_ = groupMixinFields0
	groupFields := schema.Group{}.Fields()
	_ = groupFields
	// groupDescCreateTime is the schema descriptor for create_time field.
	groupDescCreateTime := groupMixinFields0[0].Descriptor()
	// group.DefaultCreateTime holds the default value on creation for the create_time field.
	group.DefaultCreateTime = groupDescCreateTime.Default.(func() time.Time)
	// groupDescUpdateTime is the schema descriptor for update_time field.
	groupDescUpdateTime := groupMixinFields0[1].Descriptor()
	// group.DefaultUpdateTime holds the default value on creation for the update_time field.
	group.DefaultUpdateTime = groupDescUpdateTime.Default.(func() time.Time)
	// group.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	group.UpdateDefaultUpdateTime = groupDescUpdateTime.UpdateDefault.(func() time.Time)
	// groupDescEnabled is the schema descriptor for enabled field.
	groupDescEnabled := groupFields[2].Descriptor()
	// group.DefaultEnabled holds the default value on creation for the enabled field.
	group.DefaultEnabled = groupDescEnabled.Default.(bool)
	groupsettingsMixin := schema.GroupSettings{}.Mixin()
	groupsettingsMixinFields0 := groupsettingsMixin[0].Fields()
	_ = groupsettingsMixinFields0
	groupsettingsFields := schema.GroupSettings{}.Fields()
	_ = groupsettingsFields
	// groupsettingsDescCreateTime is the schema descriptor for create_time field.
	groupsettingsDescCreateTime := groupsettingsMixinFields0[0].Descriptor()
	// groupsettings.DefaultCreateTime holds the default value on creation for the create_time field.
	groupsettings.DefaultCreateTime = groupsettingsDescCreateTime.Default.(func() time.Time)
	// groupsettingsDescUpdateTime is the schema descriptor for update_time field.
	groupsettingsDescUpdateTime := groupsettingsMixinFields0[1].Descriptor()
	// groupsettings.DefaultUpdateTime holds the default value on creation for the update_time field.
	groupsettings.DefaultUpdateTime = groupsettingsDescUpdateTime.Default.(func() time.Time)
	// groupsettings.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	groupsettings.UpdateDefaultUpdateTime = groupsettingsDescUpdateTime.UpdateDefault.(func() time.Time)
	// groupsettingsDescExcludeBots is the schema descriptor for exclude_bots field.
	groupsettingsDescExcludeBots := groupsettingsFields[3].Descriptor()
	// groupsettings.DefaultExcludeBots holds the default value on creation for the exclude_bots field.
	groupsettings.DefaultExcludeBots = groupsettingsDescExcludeBots.Default.(bool)
	// groupsettingsDescExcludeCommands is the schema descriptor for exclude_commands field.
	groupsettingsDescExcludeCommands := groupsettingsFields[4].Descriptor()
	// groupsettings.DefaultExcludeCommands holds the default value on creation for the exclude_commands field.
	groupsettings.DefaultExcludeCommands = groupsettingsDescExcludeCommands.Default.(bool)
	messageMixin := schema.Message{}.Mixin()
	messageMixinFields0 := messageMixin[0].Fields()
	_ = messageMixinFields0
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreateTime is the schema descriptor for create_time field.
	messageDescCreateTime := messageMixinFields0[0].Descriptor()
	// message.DefaultCreateTime holds the default value on creation for the create_time field.
	message.DefaultCreateTime = messageDescCreateTime.Default.(func() time.Time)
	// messageDescUpdateTime is the schema descriptor for update_time field.
	messageDescUpdateTime := messageMixinFields0[1].Descriptor()
	// message.DefaultUpdateTime holds the default value on creation for the update_time field.
	message.DefaultUpdateTime = messageDescUpdateTime.Default.(func() time.Time)
	// message.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	message.UpdateDefaultUpdateTime = messageDescUpdateTime.UpdateDefault.(func() time.Time)
	// messageDescIsBot is the schema descriptor for is_bot field.
	messageDescIsBot := messageFields[7].Descriptor()
	// message.DefaultIsBot holds the default value on creation for the is_bot field.
	message.DefaultIsBot = messageDescIsBot.Default.(bool)
	// messageDescIsChannelPost is the schema descriptor for is_channel_post field.
	messageDescIsChannelPost := messageFields[8].Descriptor()
	// message.DefaultIsChannelPost holds the default value on creation for the is_channel_post field.
	message.DefaultIsChannelPost = messageDescIsChannelPost.Default.(bool)
	summaryrecordMixin := schema.SummaryRecord{}.Mixin()
	summaryrecordMixinFields0 := summaryrecordMixin[0].Fields()
	_ = summaryrecordMixinFields0
	summaryrecordFields := schema.SummaryRecord{}.Fields()
	_ = summaryrecordFields
	// summaryrecordDescCreateTime is the schema descriptor for create_time field.
	summaryrecordDescCreateTime := summaryrecordMixinFields0[0].Descriptor()
	// summaryrecord.DefaultCreateTime holds the default value on creation for the create_time field.
	summaryrecord.DefaultCreateTime = summaryrecordDescCreateTime.Default.(func() time.Time)
	// summaryrecordDescUpdateTime is the schema descriptor for update_time field.
	summaryrecordDescUpdateTime := summaryrecordMixinFields0[1].Descriptor()
	// summaryrecord.DefaultUpdateTime holds the default value on creation for the update_time field.
	summaryrecord.DefaultUpdateTime = summaryrecordDescUpdateTime.Default.(func() time.Time)
	// summaryrecord.UpdateDefaultUpdateTime holds the default value on update for the update_time field.
	summaryrecord.UpdateDefaultUpdateTime = summaryrecordDescUpdateTime.UpdateDefault.(func() time.Time)
}

// Code generated by ent, DO NOT EDIT.

package groupsettings

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/chat-tldr-bot/internal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldLTE(FieldID, id))
}

// CreateTime applies equality check predicate on the "create_time" field. It's identical to CreateTimeEQ.
func CreateTime(v time.Time) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldEQ(FieldCreateTime, v))
}

// UpdateTime applies equality check predicate on the "update_time" field. It's identical to UpdateTimeEQ.
func UpdateTime(v time.Time) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldEQ(FieldUpdateTime, v))
}

// ChatID applies equality check predicate on the "chat_id" field. It's identical to ChatIDEQ.
func ChatID(v int64) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldEQ(FieldChatID, v))
}

// CustomPrompt applies equality check predicate on the "custom_prompt" field. It's identical to CustomPromptEQ.
func CustomPrompt(v string) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldEQ(FieldCustomPrompt, v))
}

// ExcludeBots applies equality check predicate on the "exclude_bots" field. It's identical to ExcludeBotsEQ.
func ExcludeBots(v bool) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldEQ(FieldExcludeBots, v))
}

// ExcludeCommands applies equality check predicate on the "exclude_commands" field. It's identical to ExcludeCommandsEQ.
func ExcludeCommands(v bool) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldEQ(FieldExcludeCommands, v))
}

// CreateTimeEQ applies the EQ predicate on the "create_time" field.
func CreateTimeEQ(v time.Time) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldEQ(FieldCreateTime, v))
}

// CreateTimeNEQ applies the NEQ predicate on the "create_time" field.
func CreateTimeNEQ(v time.Time) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldNEQ(FieldCreateTime, v))
}

// CreateTimeIn applies the In predicate on the "create_time" field.
func CreateTimeIn(vs ...time.Time) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldIn(FieldCreateTime, vs...))
}

// CreateTimeNotIn applies the NotIn predicate on the "create_time" field.
func CreateTimeNotIn(vs ...time.Time) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldNotIn(FieldCreateTime, vs...))
}

// CreateTimeGT applies the GT predicate on the "create_time" field.
func CreateTimeGT(v time.Time) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldGT(FieldCreateTime, v))
}

// CreateTimeGTE applies the GTE predicate on the "create_time" field.
func CreateTimeGTE(v time.Time) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldGTE(FieldCreateTime, v))
}

// CreateTimeLT applies the LT predicate on the "create_time" field.
func CreateTimeLT(v time.Time) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldLT(FieldCreateTime, v))
}

// CreateTimeLTE applies the LTE predicate on the "create_time" field.
func CreateTimeLTE(v time.Time) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldLTE(FieldCreateTime, v))
}

// UpdateTimeEQ applies the EQ predicate on the "update_time" field.
func UpdateTimeEQ(v time.Time) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldEQ(FieldUpdateTime, v))
}

// UpdateTimeNEQ applies the NEQ predicate on the "update_time" field.
func UpdateTimeNEQ(v time.Time) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldNEQ(FieldUpdateTime, v))
}

// UpdateTimeIn applies the In predicate on the "update_time" field.
func UpdateTimeIn(vs ...time.Time) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldIn(FieldUpdateTime, vs...))
}

// UpdateTimeNotIn applies the NotIn predicate on the "update_time" field.
func UpdateTimeNotIn(vs ...time.Time) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldNotIn(FieldUpdateTime, vs...))
}

// UpdateTimeGT applies the GT predicate on the "update_time" field.
func UpdateTimeGT(v time.Time) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldGT(FieldUpdateTime, v))
}

// UpdateTimeGTE applies the GTE predicate on the "update_time" field.
func UpdateTimeGTE(v time.Time) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldGTE(FieldUpdateTime, v))
}

// UpdateTimeLT applies the LT predicate on the "update_time" field.
func UpdateTimeLT(v time.Time) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldLT(FieldUpdateTime, v))
}

// UpdateTimeLTE applies the LTE predicate on the "update_time" field.
func UpdateTimeLTE(v time.Time) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldLTE(FieldUpdateTime, v))
}

// ChatIDEQ applies the EQ predicate on the "chat_id" field.
func ChatIDEQ(v int64) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldEQ(FieldChatID, v))
}

// ChatIDNEQ applies the NEQ predicate on the "chat_id" field.
func ChatIDNEQ(v int64) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldNEQ(FieldChatID, v))
}

// ChatIDIn applies the In predicate on the "chat_id" field.
func ChatIDIn(vs ...int64) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldIn(FieldChatID, vs...))
}

// ChatIDNotIn applies the NotIn predicate on the "chat_id" field.
func ChatIDNotIn(vs ...int64) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldNotIn(FieldChatID, vs...))
}

// ChatIDGT applies the GT predicate on the "chat_id" field.
func ChatIDGT(v int64) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldGT(FieldChatID, v))
}

// ChatIDGTE applies the GTE predicate on the "chat_id" field.
func ChatIDGTE(v int64) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldGTE(FieldChatID, v))
}

// ChatIDLT applies the LT predicate on the "chat_id" field.
func ChatIDLT(v int64) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldLT(FieldChatID, v))
}

// ChatIDLTE applies the LTE predicate on the "chat_id" field.
func ChatIDLTE(v int64) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldLTE(FieldChatID, v))
}

// StyleEQ applies the EQ predicate on the "style" field.
func StyleEQ(v Style) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldEQ(FieldStyle, v))
}

// StyleNEQ applies the NEQ predicate on the "style" field.
func StyleNEQ(v Style) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldNEQ(FieldStyle, v))
}

// StyleIn applies the In predicate on the "style" field.
func StyleIn(vs ...Style) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldIn(FieldStyle, vs...))
}

// StyleNotIn applies the NotIn predicate on the "style" field.
func StyleNotIn(vs ...Style) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldNotIn(FieldStyle, vs...))
}

// CustomPromptEQ applies the EQ predicate on the "custom_prompt" field.
func CustomPromptEQ(v string) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldEQ(FieldCustomPrompt, v))
}

// CustomPromptNEQ applies the NEQ predicate on the "custom_prompt" field.
func CustomPromptNEQ(v string) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldNEQ(FieldCustomPrompt, v))
}

// CustomPromptIn applies the In predicate on the "custom_prompt" field.
func CustomPromptIn(vs ...string) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldIn(FieldCustomPrompt, vs...))
}

// CustomPromptNotIn applies the NotIn predicate on the "custom_prompt" field.
func CustomPromptNotIn(vs ...string) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldNotIn(FieldCustomPrompt, vs...))
}

// CustomPromptGT applies the GT predicate on the "custom_prompt" field.
func CustomPromptGT(v string) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldGT(FieldCustomPrompt, v))
}

// CustomPromptGTE applies the GTE predicate on the "custom_prompt" field.
func CustomPromptGTE(v string) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldGTE(FieldCustomPrompt, v))
}

// CustomPromptLT applies the LT predicate on the "custom_prompt" field.
func CustomPromptLT(v string) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldLT(FieldCustomPrompt, v))
}

// CustomPromptLTE applies the LTE predicate on the "custom_prompt" field.
func CustomPromptLTE(v string) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldLTE(FieldCustomPrompt, v))
}

// CustomPromptContains applies the Contains predicate on the "custom_prompt" field.
func CustomPromptContains(v string) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldContains(FieldCustomPrompt, v))
}

// CustomPromptHasPrefix applies the HasPrefix predicate on the "custom_prompt" field.
func CustomPromptHasPrefix(v string) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldHasPrefix(FieldCustomPrompt, v))
}

// CustomPromptHasSuffix applies the HasSuffix predicate on the "custom_prompt" field.
func CustomPromptHasSuffix(v string) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldHasSuffix(FieldCustomPrompt, v))
}

// CustomPromptIsNil applies the IsNil predicate on the "custom_prompt" field.
func CustomPromptIsNil() predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldIsNull(FieldCustomPrompt))
}

// CustomPromptNotNil applies the NotNil predicate on the "custom_prompt" field.
func CustomPromptNotNil() predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldNotNull(FieldCustomPrompt))
}

// CustomPromptEqualFold applies the EqualFold predicate on the "custom_prompt" field.
func CustomPromptEqualFold(v string) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldEqualFold(FieldCustomPrompt, v))
}

// CustomPromptContainsFold applies the ContainsFold predicate on the "custom_prompt" field.
func CustomPromptContainsFold(v string) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldContainsFold(FieldCustomPrompt, v))
}

// ExcludeBotsEQ applies the EQ predicate on the "exclude_bots" field.
func ExcludeBotsEQ(v bool) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldEQ(FieldExcludeBots, v))
}

// ExcludeBotsNEQ applies the NEQ predicate on the "exclude_bots" field.
func ExcludeBotsNEQ(v bool) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldNEQ(FieldExcludeBots, v))
}

// ExcludeCommandsEQ applies the EQ predicate on the "exclude_commands" field.
func ExcludeCommandsEQ(v bool) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldEQ(FieldExcludeCommands, v))
}

// ExcludeCommandsNEQ applies the NEQ predicate on the "exclude_commands" field.
func ExcludeCommandsNEQ(v bool) predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldNEQ(FieldExcludeCommands, v))
}

// ExcludedUsersIsNil applies the IsNil predicate on the "excluded_users" field.
func ExcludedUsersIsNil() predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldIsNull(FieldExcludedUsers))
}

// ExcludedUsersNotNil applies the NotNil predicate on the "excluded_users" field.
func ExcludedUsersNotNil() predicate.GroupSettings {
	return predicate.GroupSettings(sql.FieldNotNull(FieldExcludedUsers))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GroupSettings) predicate.GroupSettings {
	return predicate.GroupSettings(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GroupSettings) predicate.GroupSettings {
	return predicate.GroupSettings(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GroupSettings) predicate.GroupSettings {
	return predicate.GroupSettings(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package group

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/chat-tldr-bot/internal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Group {
	return predicate.Group(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Group {
	return predicate.Group(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Group {
	return predicate.Group(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Group {
	return predicate.Group(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Group {
	return predicate.Group(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Group {
	return predicate.Group(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Group {
	return predicate.Group(sql.FieldLTE(FieldID, id))
}

// CreateTime applies equality check predicate on the "create_time" field. It's identical to CreateTimeEQ.
func CreateTime(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldCreateTime, v))
}

// UpdateTime applies equality check predicate on the "update_time" field. It's identical to UpdateTimeEQ.
func UpdateTime(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldUpdateTime, v))
}

// ChatID applies equality check predicate on the "chat_id" field. It's identical to ChatIDEQ.
func ChatID(v int64) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldChatID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldTitle, v))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldEnabled, v))
}

// APIKeyCipher applies equality check predicate on the "api_key_cipher" field. It's identical to APIKeyCipherEQ.
func APIKeyCipher(v string) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldAPIKeyCipher, v))
}

// CreateTimeEQ applies the EQ predicate on the "create_time" field.
func CreateTimeEQ(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldCreateTime, v))
}

// CreateTimeNEQ applies the NEQ predicate on the "create_time" field.
func CreateTimeNEQ(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldNEQ(FieldCreateTime, v))
}

// CreateTimeIn applies the In predicate on the "create_time" field.
func CreateTimeIn(vs ...time.Time) predicate.Group {
	return predicate.Group(sql.FieldIn(FieldCreateTime, vs...))
}

// CreateTimeNotIn applies the NotIn predicate on the "create_time" field.
func CreateTimeNotIn(vs ...time.Time) predicate.Group {
	return predicate.Group(sql.FieldNotIn(FieldCreateTime, vs...))
}

// CreateTimeGT applies the GT predicate on the "create_time" field.
func CreateTimeGT(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldGT(FieldCreateTime, v))
}

// CreateTimeGTE applies the GTE predicate on the "create_time" field.
func CreateTimeGTE(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldGTE(FieldCreateTime, v))
}

// CreateTimeLT applies the LT predicate on the "create_time" field.
func CreateTimeLT(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldLT(FieldCreateTime, v))
}

// CreateTimeLTE applies the LTE predicate on the "create_time" field.
func CreateTimeLTE(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldLTE(FieldCreateTime, v))
}

// UpdateTimeEQ applies the EQ predicate on the "update_time" field.
func UpdateTimeEQ(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldUpdateTime, v))
}

// UpdateTimeNEQ applies the NEQ predicate on the "update_time" field.
func UpdateTimeNEQ(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldNEQ(FieldUpdateTime, v))
}

// UpdateTimeIn applies the In predicate on the "update_time" field.
func UpdateTimeIn(vs ...time.Time) predicate.Group {
	return predicate.Group(sql.FieldIn(FieldUpdateTime, vs...))
}

// UpdateTimeNotIn applies the NotIn predicate on the "update_time" field.
func UpdateTimeNotIn(vs ...time.Time) predicate.Group {
	return predicate.Group(sql.FieldNotIn(FieldUpdateTime, vs...))
}

// UpdateTimeGT applies the GT predicate on the "update_time" field.
func UpdateTimeGT(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldGT(FieldUpdateTime, v))
}

// UpdateTimeGTE applies the GTE predicate on the "update_time" field.
func UpdateTimeGTE(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldGTE(FieldUpdateTime, v))
}

// UpdateTimeLT applies the LT predicate on the "update_time" field.
func UpdateTimeLT(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldLT(FieldUpdateTime, v))
}

// UpdateTimeLTE applies the LTE predicate on the "update_time" field.
func UpdateTimeLTE(v time.Time) predicate.Group {
	return predicate.Group(sql.FieldLTE(FieldUpdateTime, v))
}

// ChatIDEQ applies the EQ predicate on the "chat_id" field.
func ChatIDEQ(v int64) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldChatID, v))
}

// ChatIDNEQ applies the NEQ predicate on the "chat_id" field.
func ChatIDNEQ(v int64) predicate.Group {
	return predicate.Group(sql.FieldNEQ(FieldChatID, v))
}

// ChatIDIn applies the In predicate on the "chat_id" field.
func ChatIDIn(vs ...int64) predicate.Group {
	return predicate.Group(sql.FieldIn(FieldChatID, vs...))
}

// ChatIDNotIn applies the NotIn predicate on the "chat_id" field.
func ChatIDNotIn(vs ...int64) predicate.Group {
	return predicate.Group(sql.FieldNotIn(FieldChatID, vs...))
}

// ChatIDGT applies the GT predicate on the "chat_id" field.
func ChatIDGT(v int64) predicate.Group {
	return predicate.Group(sql.FieldGT(FieldChatID, v))
}

// ChatIDGTE applies the GTE predicate on the "chat_id" field.
func ChatIDGTE(v int64) predicate.Group {
	return predicate.Group(sql.FieldGTE(FieldChatID, v))
}

// ChatIDLT applies the LT predicate on the "chat_id" field.
func ChatIDLT(v int64) predicate.Group {
	return predicate.Group(sql.FieldLT(FieldChatID, v))
}

// ChatIDLTE applies the LTE predicate on the "chat_id" field.
func ChatIDLTE(v int64) predicate.Group {
	return predicate.Group(sql.FieldLTE(FieldChatID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Group {
	return predicate.Group(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Group {
	return predicate.Group(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Group {
	return predicate.Group(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Group {
	return predicate.Group(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Group {
	return predicate.Group(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Group {
	return predicate.Group(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Group {
	return predicate.Group(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Group {
	return predicate.Group(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Group {
	return predicate.Group(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Group {
	return predicate.Group(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.Group {
	return predicate.Group(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.Group {
	return predicate.Group(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Group {
	return predicate.Group(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Group {
	return predicate.Group(sql.FieldContainsFold(FieldTitle, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.Group {
	return predicate.Group(sql.FieldNEQ(FieldEnabled, v))
}

// APIKeyCipherEQ applies the EQ predicate on the "api_key_cipher" field.
func APIKeyCipherEQ(v string) predicate.Group {
	return predicate.Group(sql.FieldEQ(FieldAPIKeyCipher, v))
}

// APIKeyCipherNEQ applies the NEQ predicate on the "api_key_cipher" field.
func APIKeyCipherNEQ(v string) predicate.Group {
	return predicate.Group(sql.FieldNEQ(FieldAPIKeyCipher, v))
}

// APIKeyCipherIn applies the In predicate on the "api_key_cipher" field.
func APIKeyCipherIn(vs ...string) predicate.Group {
	return predicate.Group(sql.FieldIn(FieldAPIKeyCipher, vs...))
}

// APIKeyCipherNotIn applies the NotIn predicate on the "api_key_cipher" field.
func APIKeyCipherNotIn(vs ...string) predicate.Group {
	return predicate.Group(sql.FieldNotIn(FieldAPIKeyCipher, vs...))
}

// APIKeyCipherGT applies the GT predicate on the "api_key_cipher" field.
func APIKeyCipherGT(v string) predicate.Group {
	return predicate.Group(sql.FieldGT(FieldAPIKeyCipher, v))
}

// APIKeyCipherGTE applies the GTE predicate on the "api_key_cipher" field.
func APIKeyCipherGTE(v string) predicate.Group {
	return predicate.Group(sql.FieldGTE(FieldAPIKeyCipher, v))
}

// APIKeyCipherLT applies the LT predicate on the "api_key_cipher" field.
func APIKeyCipherLT(v string) predicate.Group {
	return predicate.Group(sql.FieldLT(FieldAPIKeyCipher, v))
}

// APIKeyCipherLTE applies the LTE predicate on the "api_key_cipher" field.
func APIKeyCipherLTE(v string) predicate.Group {
	return predicate.Group(sql.FieldLTE(FieldAPIKeyCipher, v))
}

// APIKeyCipherContains applies the Contains predicate on the "api_key_cipher" field.
func APIKeyCipherContains(v string) predicate.Group {
	return predicate.Group(sql.FieldContains(FieldAPIKeyCipher, v))
}

// APIKeyCipherHasPrefix applies the HasPrefix predicate on the "api_key_cipher" field.
func APIKeyCipherHasPrefix(v string) predicate.Group {
	return predicate.Group(sql.FieldHasPrefix(FieldAPIKeyCipher, v))
}

// APIKeyCipherHasSuffix applies the HasSuffix predicate on the "api_key_cipher" field.
func APIKeyCipherHasSuffix(v string) predicate.Group {
	return predicate.Group(sql.FieldHasSuffix(FieldAPIKeyCipher, v))
}

// APIKeyCipherIsNil applies the IsNil predicate on the "api_key_cipher" field.
func APIKeyCipherIsNil() predicate.Group {
	return predicate.Group(sql.FieldIsNull(FieldAPIKeyCipher))
}

// APIKeyCipherNotNil applies the NotNil predicate on the "api_key_cipher" field.
func APIKeyCipherNotNil() predicate.Group {
	return predicate.Group(sql.FieldNotNull(FieldAPIKeyCipher))
}

// APIKeyCipherEqualFold applies the EqualFold predicate on the "api_key_cipher" field.
func APIKeyCipherEqualFold(v string) predicate.Group {
	return predicate.Group(sql.FieldEqualFold(FieldAPIKeyCipher, v))
}

// APIKeyCipherContainsFold applies the ContainsFold predicate on the "api_key_cipher" field.
func APIKeyCipherContainsFold(v string) predicate.Group {
	return predicate.Group(sql.FieldContainsFold(FieldAPIKeyCipher, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Group) predicate.Group {
	return predicate.Group(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Group) predicate.Group {
	return predicate.Group(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Group) predicate.Group {
	return predicate.Group(sql.NotPredicates(p))
}

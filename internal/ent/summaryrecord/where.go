// Code generated by ent, DO NOT EDIT.

package summaryrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/chat-tldr-bot/internal/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldLTE(FieldID, id))
}

// CreateTime applies equality check predicate on the "create_time" field. It's identical to CreateTimeEQ.
func CreateTime(v time.Time) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldEQ(FieldCreateTime, v))
}

// UpdateTime applies equality check predicate on the "update_time" field. It's identical to UpdateTimeEQ.
func UpdateTime(v time.Time) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldEQ(FieldUpdateTime, v))
}

// ChatID applies equality check predicate on the "chat_id" field. It's identical to ChatIDEQ.
func ChatID(v int64) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldEQ(FieldChatID, v))
}

// RequestedBy applies equality check predicate on the "requested_by" field. It's identical to RequestedByEQ.
func RequestedBy(v int64) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldEQ(FieldRequestedBy, v))
}

// RangeLabel applies equality check predicate on the "range_label" field. It's identical to RangeLabelEQ.
func RangeLabel(v string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldEQ(FieldRangeLabel, v))
}

// Style applies equality check predicate on the "style" field. It's identical to StyleEQ.
func Style(v string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldEQ(FieldStyle, v))
}

// MessageCount applies equality check predicate on the "message_count" field. It's identical to MessageCountEQ.
func MessageCount(v int) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldEQ(FieldMessageCount, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldEQ(FieldContent, v))
}

// CreateTimeEQ applies the EQ predicate on the "create_time" field.
func CreateTimeEQ(v time.Time) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldEQ(FieldCreateTime, v))
}

// CreateTimeNEQ applies the NEQ predicate on the "create_time" field.
func CreateTimeNEQ(v time.Time) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldNEQ(FieldCreateTime, v))
}

// CreateTimeIn applies the In predicate on the "create_time" field.
func CreateTimeIn(vs ...time.Time) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldIn(FieldCreateTime, vs...))
}

// CreateTimeNotIn applies the NotIn predicate on the "create_time" field.
func CreateTimeNotIn(vs ...time.Time) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldNotIn(FieldCreateTime, vs...))
}

// CreateTimeGT applies the GT predicate on the "create_time" field.
func CreateTimeGT(v time.Time) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldGT(FieldCreateTime, v))
}

// CreateTimeGTE applies the GTE predicate on the "create_time" field.
func CreateTimeGTE(v time.Time) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldGTE(FieldCreateTime, v))
}

// CreateTimeLT applies the LT predicate on the "create_time" field.
func CreateTimeLT(v time.Time) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldLT(FieldCreateTime, v))
}

// CreateTimeLTE applies the LTE predicate on the "create_time" field.
func CreateTimeLTE(v time.Time) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldLTE(FieldCreateTime, v))
}

// UpdateTimeEQ applies the EQ predicate on the "update_time" field.
func UpdateTimeEQ(v time.Time) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldEQ(FieldUpdateTime, v))
}

// UpdateTimeNEQ applies the NEQ predicate on the "update_time" field.
func UpdateTimeNEQ(v time.Time) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldNEQ(FieldUpdateTime, v))
}

// UpdateTimeIn applies the In predicate on the "update_time" field.
func UpdateTimeIn(vs ...time.Time) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldIn(FieldUpdateTime, vs...))
}

// UpdateTimeNotIn applies the NotIn predicate on the "update_time" field.
func UpdateTimeNotIn(vs ...time.Time) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldNotIn(FieldUpdateTime, vs...))
}

// UpdateTimeGT applies the GT predicate on the "update_time" field.
func UpdateTimeGT(v time.Time) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldGT(FieldUpdateTime, v))
}

// UpdateTimeGTE applies the GTE predicate on the "update_time" field.
func UpdateTimeGTE(v time.Time) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldGTE(FieldUpdateTime, v))
}

// UpdateTimeLT applies the LT predicate on the "update_time" field.
func UpdateTimeLT(v time.Time) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldLT(FieldUpdateTime, v))
}

// UpdateTimeLTE applies the LTE predicate on the "update_time" field.
func UpdateTimeLTE(v time.Time) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldLTE(FieldUpdateTime, v))
}

// ChatIDEQ applies the EQ predicate on the "chat_id" field.
func ChatIDEQ(v int64) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldEQ(FieldChatID, v))
}

// ChatIDNEQ applies the NEQ predicate on the "chat_id" field.
func ChatIDNEQ(v int64) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldNEQ(FieldChatID, v))
}

// ChatIDIn applies the In predicate on the "chat_id" field.
func ChatIDIn(vs ...int64) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldIn(FieldChatID, vs...))
}

// ChatIDNotIn applies the NotIn predicate on the "chat_id" field.
func ChatIDNotIn(vs ...int64) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldNotIn(FieldChatID, vs...))
}

// ChatIDGT applies the GT predicate on the "chat_id" field.
func ChatIDGT(v int64) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldGT(FieldChatID, v))
}

// ChatIDGTE applies the GTE predicate on the "chat_id" field.
func ChatIDGTE(v int64) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldGTE(FieldChatID, v))
}

// ChatIDLT applies the LT predicate on the "chat_id" field.
func ChatIDLT(v int64) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldLT(FieldChatID, v))
}

// ChatIDLTE applies the LTE predicate on the "chat_id" field.
func ChatIDLTE(v int64) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldLTE(FieldChatID, v))
}

// RequestedByEQ applies the EQ predicate on the "requested_by" field.
func RequestedByEQ(v int64) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldEQ(FieldRequestedBy, v))
}

// RequestedByNEQ applies the NEQ predicate on the "requested_by" field.
func RequestedByNEQ(v int64) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldNEQ(FieldRequestedBy, v))
}

// RequestedByIn applies the In predicate on the "requested_by" field.
func RequestedByIn(vs ...int64) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldIn(FieldRequestedBy, vs...))
}

// RequestedByNotIn applies the NotIn predicate on the "requested_by" field.
func RequestedByNotIn(vs ...int64) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldNotIn(FieldRequestedBy, vs...))
}

// RequestedByGT applies the GT predicate on the "requested_by" field.
func RequestedByGT(v int64) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldGT(FieldRequestedBy, v))
}

// RequestedByGTE applies the GTE predicate on the "requested_by" field.
func RequestedByGTE(v int64) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldGTE(FieldRequestedBy, v))
}

// RequestedByLT applies the LT predicate on the "requested_by" field.
func RequestedByLT(v int64) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldLT(FieldRequestedBy, v))
}

// RequestedByLTE applies the LTE predicate on the "requested_by" field.
func RequestedByLTE(v int64) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldLTE(FieldRequestedBy, v))
}

// RangeLabelEQ applies the EQ predicate on the "range_label" field.
func RangeLabelEQ(v string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldEQ(FieldRangeLabel, v))
}

// RangeLabelNEQ applies the NEQ predicate on the "range_label" field.
func RangeLabelNEQ(v string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldNEQ(FieldRangeLabel, v))
}

// RangeLabelIn applies the In predicate on the "range_label" field.
func RangeLabelIn(vs ...string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldIn(FieldRangeLabel, vs...))
}

// RangeLabelNotIn applies the NotIn predicate on the "range_label" field.
func RangeLabelNotIn(vs ...string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldNotIn(FieldRangeLabel, vs...))
}

// RangeLabelGT applies the GT predicate on the "range_label" field.
func RangeLabelGT(v string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldGT(FieldRangeLabel, v))
}

// RangeLabelGTE applies the GTE predicate on the "range_label" field.
func RangeLabelGTE(v string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldGTE(FieldRangeLabel, v))
}

// RangeLabelLT applies the LT predicate on the "range_label" field.
func RangeLabelLT(v string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldLT(FieldRangeLabel, v))
}

// RangeLabelLTE applies the LTE predicate on the "range_label" field.
func RangeLabelLTE(v string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldLTE(FieldRangeLabel, v))
}

// RangeLabelContains applies the Contains predicate on the "range_label" field.
func RangeLabelContains(v string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldContains(FieldRangeLabel, v))
}

// RangeLabelHasPrefix applies the HasPrefix predicate on the "range_label" field.
func RangeLabelHasPrefix(v string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldHasPrefix(FieldRangeLabel, v))
}

// RangeLabelHasSuffix applies the HasSuffix predicate on the "range_label" field.
func RangeLabelHasSuffix(v string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldHasSuffix(FieldRangeLabel, v))
}

// RangeLabelEqualFold applies the EqualFold predicate on the "range_label" field.
func RangeLabelEqualFold(v string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldEqualFold(FieldRangeLabel, v))
}

// RangeLabelContainsFold applies the ContainsFold predicate on the "range_label" field.
func RangeLabelContainsFold(v string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldContainsFold(FieldRangeLabel, v))
}

// StyleEQ applies the EQ predicate on the "style" field.
func StyleEQ(v string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldEQ(FieldStyle, v))
}

// StyleNEQ applies the NEQ predicate on the "style" field.
func StyleNEQ(v string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldNEQ(FieldStyle, v))
}

// StyleIn applies the In predicate on the "style" field.
func StyleIn(vs ...string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldIn(FieldStyle, vs...))
}

// StyleNotIn applies the NotIn predicate on the "style" field.
func StyleNotIn(vs ...string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldNotIn(FieldStyle, vs...))
}

// StyleGT applies the GT predicate on the "style" field.
func StyleGT(v string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldGT(FieldStyle, v))
}

// StyleGTE applies the GTE predicate on the "style" field.
func StyleGTE(v string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldGTE(FieldStyle, v))
}

// StyleLT applies the LT predicate on the "style" field.
func StyleLT(v string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldLT(FieldStyle, v))
}

// StyleLTE applies the LTE predicate on the "style" field.
func StyleLTE(v string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldLTE(FieldStyle, v))
}

// StyleContains applies the Contains predicate on the "style" field.
func StyleContains(v string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldContains(FieldStyle, v))
}

// StyleHasPrefix applies the HasPrefix predicate on the "style" field.
func StyleHasPrefix(v string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldHasPrefix(FieldStyle, v))
}

// StyleHasSuffix applies the HasSuffix predicate on the "style" field.
func StyleHasSuffix(v string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldHasSuffix(FieldStyle, v))
}

// StyleEqualFold applies the EqualFold predicate on the "style" field.
func StyleEqualFold(v string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldEqualFold(FieldStyle, v))
}

// StyleContainsFold applies the ContainsFold predicate on the "style" field.
func StyleContainsFold(v string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldContainsFold(FieldStyle, v))
}

// MessageCountEQ applies the EQ predicate on the "message_count" field.
func MessageCountEQ(v int) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldEQ(FieldMessageCount, v))
}

// MessageCountNEQ applies the NEQ predicate on the "message_count" field.
func MessageCountNEQ(v int) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldNEQ(FieldMessageCount, v))
}

// MessageCountIn applies the In predicate on the "message_count" field.
func MessageCountIn(vs ...int) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldIn(FieldMessageCount, vs...))
}

// MessageCountNotIn applies the NotIn predicate on the "message_count" field.
func MessageCountNotIn(vs ...int) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldNotIn(FieldMessageCount, vs...))
}

// MessageCountGT applies the GT predicate on the "message_count" field.
func MessageCountGT(v int) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldGT(FieldMessageCount, v))
}

// MessageCountGTE applies the GTE predicate on the "message_count" field.
func MessageCountGTE(v int) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldGTE(FieldMessageCount, v))
}

// MessageCountLT applies the LT predicate on the "message_count" field.
func MessageCountLT(v int) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldLT(FieldMessageCount, v))
}

// MessageCountLTE applies the LTE predicate on the "message_count" field.
func MessageCountLTE(v int) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldLTE(FieldMessageCount, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.FieldContainsFold(FieldContent, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SummaryRecord) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SummaryRecord) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SummaryRecord) predicate.SummaryRecord {
	return predicate.SummaryRecord(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fachebot/chat-tldr-bot/internal/ent/predicate"
	"github.com/fachebot/chat-tldr-bot/internal/ent/summaryrecord"
)

// SummaryRecordUpdate is the builder for updating SummaryRecord entities.
type SummaryRecordUpdate struct {
	config
	hooks    []Hook
	mutation *SummaryRecordMutation
}

// Where appends a list predicates to the SummaryRecordUpdate builder.
func (sru *SummaryRecordUpdate) Where(ps ...predicate.SummaryRecord) *SummaryRecordUpdate {
	sru.mutation.Where(ps...)
	return sru
}

// SetUpdateTime sets the "update_time" field.
func (sru *SummaryRecordUpdate) SetUpdateTime(t time.Time) *SummaryRecordUpdate {
	sru.mutation.SetUpdateTime(t)
	return sru
}

// SetChatID sets the "chat_id" field.
func (sru *SummaryRecordUpdate) SetChatID(i int64) *SummaryRecordUpdate {
	sru.mutation.ResetChatID()
	sru.mutation.SetChatID(i)
	return sru
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (sru *SummaryRecordUpdate) SetNillableChatID(i *int64) *SummaryRecordUpdate {
	if i != nil {
		sru.SetChatID(*i)
	}
	return sru
}

// AddChatID adds i to the "chat_id" field.
func (sru *SummaryRecordUpdate) AddChatID(i int64) *SummaryRecordUpdate {
	sru.mutation.AddChatID(i)
	return sru
}

// SetRequestedBy sets the "requested_by" field.
func (sru *SummaryRecordUpdate) SetRequestedBy(i int64) *SummaryRecordUpdate {
	sru.mutation.ResetRequestedBy()
	sru.mutation.SetRequestedBy(i)
	return sru
}

// SetNillableRequestedBy sets the "requested_by" field if the given value is not nil.
func (sru *SummaryRecordUpdate) SetNillableRequestedBy(i *int64) *SummaryRecordUpdate {
	if i != nil {
		sru.SetRequestedBy(*i)
	}
	return sru
}

// AddRequestedBy adds i to the "requested_by" field.
func (sru *SummaryRecordUpdate) AddRequestedBy(i int64) *SummaryRecordUpdate {
	sru.mutation.AddRequestedBy(i)
	return sru
}

// SetRangeLabel sets the "range_label" field.
func (sru *SummaryRecordUpdate) SetRangeLabel(s string) *SummaryRecordUpdate {
	sru.mutation.SetRangeLabel(s)
	return sru
}

// SetNillableRangeLabel sets the "range_label" field if the given value is not nil.
func (sru *SummaryRecordUpdate) SetNillableRangeLabel(s *string) *SummaryRecordUpdate {
	if s != nil {
		sru.SetRangeLabel(*s)
	}
	return sru
}

// SetStyle sets the "style" field.
func (sru *SummaryRecordUpdate) SetStyle(s string) *SummaryRecordUpdate {
	sru.mutation.SetStyle(s)
	return sru
}

// SetNillableStyle sets the "style" field if the given value is not nil.
func (sru *SummaryRecordUpdate) SetNillableStyle(s *string) *SummaryRecordUpdate {
	if s != nil {
		sru.SetStyle(*s)
	}
	return sru
}

// SetMessageCount sets the "message_count" field.
func (sru *SummaryRecordUpdate) SetMessageCount(i int) *SummaryRecordUpdate {
	sru.mutation.ResetMessageCount()
	sru.mutation.SetMessageCount(i)
	return sru
}

// SetNillableMessageCount sets the "message_count" field if the given value is not nil.
func (sru *SummaryRecordUpdate) SetNillableMessageCount(i *int) *SummaryRecordUpdate {
	if i != nil {
		sru.SetMessageCount(*i)
	}
	return sru
}

// AddMessageCount adds i to the "message_count" field.
func (sru *SummaryRecordUpdate) AddMessageCount(i int) *SummaryRecordUpdate {
	sru.mutation.AddMessageCount(i)
	return sru
}

// SetContent sets the "content" field.
func (sru *SummaryRecordUpdate) SetContent(s string) *SummaryRecordUpdate {
	sru.mutation.SetContent(s)
	return sru
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (sru *SummaryRecordUpdate) SetNillableContent(s *string) *SummaryRecordUpdate {
	if s != nil {
		sru.SetContent(*s)
	}
	return sru
}

// Mutation returns the SummaryRecordMutation object of the builder.
func (sru *SummaryRecordUpdate) Mutation() *SummaryRecordMutation {
	return sru.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (sru *SummaryRecordUpdate) Save(ctx context.Context) (int, error) {
	sru.defaults()
	return withHooks(ctx, sru.sqlSave, sru.mutation, sru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (sru *SummaryRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := sru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (sru *SummaryRecordUpdate) Exec(ctx context.Context) error {
	_, err := sru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sru *SummaryRecordUpdate) ExecX(ctx context.Context) {
	if err := sru.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sru *SummaryRecordUpdate) defaults() {
	if _, ok := sru.mutation.UpdateTime(); !ok {
		v := summaryrecord.UpdateDefaultUpdateTime()
		sru.mutation.SetUpdateTime(v)
	}
}

func (sru *SummaryRecordUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(summaryrecord.Table, summaryrecord.Columns, sqlgraph.NewFieldSpec(summaryrecord.FieldID, field.TypeInt))
	if ps := sru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := sru.mutation.UpdateTime(); ok {
		_spec.SetField(summaryrecord.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := sru.mutation.ChatID(); ok {
		_spec.SetField(summaryrecord.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := sru.mutation.AddedChatID(); ok {
		_spec.AddField(summaryrecord.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := sru.mutation.RequestedBy(); ok {
		_spec.SetField(summaryrecord.FieldRequestedBy, field.TypeInt64, value)
	}
	if value, ok := sru.mutation.AddedRequestedBy(); ok {
		_spec.AddField(summaryrecord.FieldRequestedBy, field.TypeInt64, value)
	}
	if value, ok := sru.mutation.RangeLabel(); ok {
		_spec.SetField(summaryrecord.FieldRangeLabel, field.TypeString, value)
	}
	if value, ok := sru.mutation.Style(); ok {
		_spec.SetField(summaryrecord.FieldStyle, field.TypeString, value)
	}
	if value, ok := sru.mutation.MessageCount(); ok {
		_spec.SetField(summaryrecord.FieldMessageCount, field.TypeInt, value)
	}
	if value, ok := sru.mutation.AddedMessageCount(); ok {
		_spec.AddField(summaryrecord.FieldMessageCount, field.TypeInt, value)
	}
	if value, ok := sru.mutation.Content(); ok {
		_spec.SetField(summaryrecord.FieldContent, field.TypeString, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, sru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{summaryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	sru.mutation.done = true
	return n, nil
}

// SummaryRecordUpdateOne is the builder for updating a single SummaryRecord entity.
type SummaryRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SummaryRecordMutation
}

// SetUpdateTime sets the "update_time" field.
func (sruo *SummaryRecordUpdateOne) SetUpdateTime(t time.Time) *SummaryRecordUpdateOne {
	sruo.mutation.SetUpdateTime(t)
	return sruo
}

// SetChatID sets the "chat_id" field.
func (sruo *SummaryRecordUpdateOne) SetChatID(i int64) *SummaryRecordUpdateOne {
	sruo.mutation.ResetChatID()
	sruo.mutation.SetChatID(i)
	return sruo
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (sruo *SummaryRecordUpdateOne) SetNillableChatID(i *int64) *SummaryRecordUpdateOne {
	if i != nil {
		sruo.SetChatID(*i)
	}
	return sruo
}

// AddChatID adds i to the "chat_id" field.
func (sruo *SummaryRecordUpdateOne) AddChatID(i int64) *SummaryRecordUpdateOne {
	sruo.mutation.AddChatID(i)
	return sruo
}

// SetRequestedBy sets the "requested_by" field.
func (sruo *SummaryRecordUpdateOne) SetRequestedBy(i int64) *SummaryRecordUpdateOne {
	sruo.mutation.ResetRequestedBy()
	sruo.mutation.SetRequestedBy(i)
	return sruo
}

// SetNillableRequestedBy sets the "requested_by" field if the given value is not nil.
func (sruo *SummaryRecordUpdateOne) SetNillableRequestedBy(i *int64) *SummaryRecordUpdateOne {
	if i != nil {
		sruo.SetRequestedBy(*i)
	}
	return sruo
}

// AddRequestedBy adds i to the "requested_by" field.
func (sruo *SummaryRecordUpdateOne) AddRequestedBy(i int64) *SummaryRecordUpdateOne {
	sruo.mutation.AddRequestedBy(i)
	return sruo
}

// SetRangeLabel sets the "range_label" field.
func (sruo *SummaryRecordUpdateOne) SetRangeLabel(s string) *SummaryRecordUpdateOne {
	sruo.mutation.SetRangeLabel(s)
	return sruo
}

// SetNillableRangeLabel sets the "range_label" field if the given value is not nil.
func (sruo *SummaryRecordUpdateOne) SetNillableRangeLabel(s *string) *SummaryRecordUpdateOne {
	if s != nil {
		sruo.SetRangeLabel(*s)
	}
	return sruo
}

// SetStyle sets the "style" field.
func (sruo *SummaryRecordUpdateOne) SetStyle(s string) *SummaryRecordUpdateOne {
	sruo.mutation.SetStyle(s)
	return sruo
}

// SetNillableStyle sets the "style" field if the given value is not nil.
func (sruo *SummaryRecordUpdateOne) SetNillableStyle(s *string) *SummaryRecordUpdateOne {
	if s != nil {
		sruo.SetStyle(*s)
	}
	return sruo
}

// SetMessageCount sets the "message_count" field.
func (sruo *SummaryRecordUpdateOne) SetMessageCount(i int) *SummaryRecordUpdateOne {
	sruo.mutation.ResetMessageCount()
	sruo.mutation.SetMessageCount(i)
	return sruo
}

// SetNillableMessageCount sets the "message_count" field if the given value is not nil.
func (sruo *SummaryRecordUpdateOne) SetNillableMessageCount(i *int) *SummaryRecordUpdateOne {
	if i != nil {
		sruo.SetMessageCount(*i)
	}
	return sruo
}

// AddMessageCount adds i to the "message_count" field.
func (sruo *SummaryRecordUpdateOne) AddMessageCount(i int) *SummaryRecordUpdateOne {
	sruo.mutation.AddMessageCount(i)
	return sruo
}

// SetContent sets the "content" field.
func (sruo *SummaryRecordUpdateOne) SetContent(s string) *SummaryRecordUpdateOne {
	sruo.mutation.SetContent(s)
	return sruo
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (sruo *SummaryRecordUpdateOne) SetNillableContent(s *string) *SummaryRecordUpdateOne {
	if s != nil {
		sruo.SetContent(*s)
	}
	return sruo
}

// Mutation returns the SummaryRecordMutation object of the builder.
func (sruo *SummaryRecordUpdateOne) Mutation() *SummaryRecordMutation {
	return sruo.mutation
}

// Where appends a list predicates to the SummaryRecordUpdate builder.
func (sruo *SummaryRecordUpdateOne) Where(ps ...predicate.SummaryRecord) *SummaryRecordUpdateOne {
	sruo.mutation.Where(ps...)
	return sruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (sruo *SummaryRecordUpdateOne) Select(field string, fields ...string) *SummaryRecordUpdateOne {
	sruo.fields = append([]string{field}, fields...)
	return sruo
}

// Save executes the query and returns the updated SummaryRecord entity.
func (sruo *SummaryRecordUpdateOne) Save(ctx context.Context) (*SummaryRecord, error) {
	sruo.defaults()
	return withHooks(ctx, sruo.sqlSave, sruo.mutation, sruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (sruo *SummaryRecordUpdateOne) SaveX(ctx context.Context) *SummaryRecord {
	node, err := sruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (sruo *SummaryRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := sruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sruo *SummaryRecordUpdateOne) ExecX(ctx context.Context) {
	if err := sruo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sruo *SummaryRecordUpdateOne) defaults() {
	if _, ok := sruo.mutation.UpdateTime(); !ok {
		v := summaryrecord.UpdateDefaultUpdateTime()
		sruo.mutation.SetUpdateTime(v)
	}
}

func (sruo *SummaryRecordUpdateOne) sqlSave(ctx context.Context) (_node *SummaryRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(summaryrecord.Table, summaryrecord.Columns, sqlgraph.NewFieldSpec(summaryrecord.FieldID, field.TypeInt))
	id, ok := sruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SummaryRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := sruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, summaryrecord.FieldID)
		for _, f := range fields {
			if !summaryrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != summaryrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := sruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := sruo.mutation.UpdateTime(); ok {
		_spec.SetField(summaryrecord.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := sruo.mutation.ChatID(); ok {
		_spec.SetField(summaryrecord.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := sruo.mutation.AddedChatID(); ok {
		_spec.AddField(summaryrecord.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := sruo.mutation.RequestedBy(); ok {
		_spec.SetField(summaryrecord.FieldRequestedBy, field.TypeInt64, value)
	}
	if value, ok := sruo.mutation.AddedRequestedBy(); ok {
		_spec.AddField(summaryrecord.FieldRequestedBy, field.TypeInt64, value)
	}
	if value, ok := sruo.mutation.RangeLabel(); ok {
		_spec.SetField(summaryrecord.FieldRangeLabel, field.TypeString, value)
	}
	if value, ok := sruo.mutation.Style(); ok {
		_spec.SetField(summaryrecord.FieldStyle, field.TypeString, value)
	}
	if value, ok := sruo.mutation.MessageCount(); ok {
		_spec.SetField(summaryrecord.FieldMessageCount, field.TypeInt, value)
	}
	if value, ok := sruo.mutation.AddedMessageCount(); ok {
		_spec.AddField(summaryrecord.FieldMessageCount, field.TypeInt, value)
	}
	if value, ok := sruo.mutation.Content(); ok {
		_spec.SetField(summaryrecord.FieldContent, field.TypeString, value)
	}
	_node = &SummaryRecord{config: sruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, sruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{summaryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	sruo.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fachebot/chat-tldr-bot/internal/ent/summaryrecord"
)

// SummaryRecordCreate is the builder for creating a SummaryRecord entity.
type SummaryRecordCreate struct {
	config
	mutation *SummaryRecordMutation
	hooks    []Hook
}

// SetCreateTime sets the "create_time" field.
func (src *SummaryRecordCreate) SetCreateTime(t time.Time) *SummaryRecordCreate {
	src.mutation.SetCreateTime(t)
	return src
}

// SetNillableCreateTime sets the "create_time" field if the given value is not nil.
func (src *SummaryRecordCreate) SetNillableCreateTime(t *time.Time) *SummaryRecordCreate {
	if t != nil {
		src.SetCreateTime(*t)
	}
	return src
}

// SetUpdateTime sets the "update_time" field.
func (src *SummaryRecordCreate) SetUpdateTime(t time.Time) *SummaryRecordCreate {
	src.mutation.SetUpdateTime(t)
	return src
}

// SetNillableUpdateTime sets the "update_time" field if the given value is not nil.
func (src *SummaryRecordCreate) SetNillableUpdateTime(t *time.Time) *SummaryRecordCreate {
	if t != nil {
		src.SetUpdateTime(*t)
	}
	return src
}

// SetChatID sets the "chat_id" field.
func (src *SummaryRecordCreate) SetChatID(i int64) *SummaryRecordCreate {
	src.mutation.SetChatID(i)
	return src
}

// SetRequestedBy sets the "requested_by" field.
func (src *SummaryRecordCreate) SetRequestedBy(i int64) *SummaryRecordCreate {
	src.mutation.SetRequestedBy(i)
	return src
}

// SetRangeLabel sets the "range_label" field.
func (src *SummaryRecordCreate) SetRangeLabel(s string) *SummaryRecordCreate {
	src.mutation.SetRangeLabel(s)
	return src
}

// SetStyle sets the "style" field.
func (src *SummaryRecordCreate) SetStyle(s string) *SummaryRecordCreate {
	src.mutation.SetStyle(s)
	return src
}

// SetMessageCount sets the "message_count" field.
func (src *SummaryRecordCreate) SetMessageCount(i int) *SummaryRecordCreate {
	src.mutation.SetMessageCount(i)
	return src
}

// SetContent sets the "content" field.
func (src *SummaryRecordCreate) SetContent(s string) *SummaryRecordCreate {
	src.mutation.SetContent(s)
	return src
}

// Mutation returns the SummaryRecordMutation object of the builder.
func (src *SummaryRecordCreate) Mutation() *SummaryRecordMutation {
	return src.mutation
}

// Save creates the SummaryRecord in the database.
func (src *SummaryRecordCreate) Save(ctx context.Context) (*SummaryRecord, error) {
	src.defaults()
	return withHooks(ctx, src.sqlSave, src.mutation, src.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (src *SummaryRecordCreate) SaveX(ctx context.Context) *SummaryRecord {
	v, err := src.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (src *SummaryRecordCreate) Exec(ctx context.Context) error {
	_, err := src.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (src *SummaryRecordCreate) ExecX(ctx context.Context) {
	if err := src.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (src *SummaryRecordCreate) defaults() {
	if _, ok := src.mutation.CreateTime(); !ok {
		v := summaryrecord.DefaultCreateTime()
		src.mutation.SetCreateTime(v)
	}
	if _, ok := src.mutation.UpdateTime(); !ok {
		v := summaryrecord.DefaultUpdateTime()
		src.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (src *SummaryRecordCreate) check() error {
	if _, ok := src.mutation.CreateTime(); !ok {
		return &ValidationError{Name: "create_time", err: errors.New(`ent: missing required field "SummaryRecord.create_time"`)}
	}
	if _, ok := src.mutation.UpdateTime(); !ok {
		return &ValidationError{Name: "update_time", err: errors.New(`ent: missing required field "SummaryRecord.update_time"`)}
	}
	if _, ok := src.mutation.ChatID(); !ok {
		return &ValidationError{Name: "chat_id", err: errors.New(`ent: missing required field "SummaryRecord.chat_id"`)}
	}
	if _, ok := src.mutation.RequestedBy(); !ok {
		return &ValidationError{Name: "requested_by", err: errors.New(`ent: missing required field "SummaryRecord.requested_by"`)}
	}
	if _, ok := src.mutation.RangeLabel(); !ok {
		return &ValidationError{Name: "range_label", err: errors.New(`ent: missing required field "SummaryRecord.range_label"`)}
	}
	if _, ok := src.mutation.Style(); !ok {
		return &ValidationError{Name: "style", err: errors.New(`ent: missing required field "SummaryRecord.style"`)}
	}
	if _, ok := src.mutation.MessageCount(); !ok {
		return &ValidationError{Name: "message_count", err: errors.New(`ent: missing required field "SummaryRecord.message_count"`)}
	}
	if _, ok := src.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "SummaryRecord.content"`)}
	}
	return nil
}

func (src *SummaryRecordCreate) sqlSave(ctx context.Context) (*SummaryRecord, error) {
	if err := src.check(); err != nil {
		return nil, err
	}
	_node, _spec := src.createSpec()
	if err := sqlgraph.CreateNode(ctx, src.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	src.mutation.id = &_node.ID
	src.mutation.done = true
	return _node, nil
}

func (src *SummaryRecordCreate) createSpec() (*SummaryRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &SummaryRecord{config: src.config}
		_spec = sqlgraph.NewCreateSpec(summaryrecord.Table, sqlgraph.NewFieldSpec(summaryrecord.FieldID, field.TypeInt))
	)
	if value, ok := src.mutation.CreateTime(); ok {
		_spec.SetField(summaryrecord.FieldCreateTime, field.TypeTime, value)
		_node.CreateTime = value
	}
	if value, ok := src.mutation.UpdateTime(); ok {
		_spec.SetField(summaryrecord.FieldUpdateTime, field.TypeTime, value)
		_node.UpdateTime = value
	}
	if value, ok := src.mutation.ChatID(); ok {
		_spec.SetField(summaryrecord.FieldChatID, field.TypeInt64, value)
		_node.ChatID = value
	}
	if value, ok := src.mutation.RequestedBy(); ok {
		_spec.SetField(summaryrecord.FieldRequestedBy, field.TypeInt64, value)
		_node.RequestedBy = value
	}
	if value, ok := src.mutation.RangeLabel(); ok {
		_spec.SetField(summaryrecord.FieldRangeLabel, field.TypeString, value)
		_node.RangeLabel = value
	}
	if value, ok := src.mutation.Style(); ok {
		_spec.SetField(summaryrecord.FieldStyle, field.TypeString, value)
		_node.Style = value
	}
	if value, ok := src.mutation.MessageCount(); ok {
		_spec.SetField(summaryrecord.FieldMessageCount, field.TypeInt, value)
		_node.MessageCount = value
	}
	if value, ok := src.mutation.Content(); ok {
		_spec.SetField(summaryrecord.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	return _node, _spec
}

// SummaryRecordCreateBulk is the builder for creating many SummaryRecord entities in bulk.
type SummaryRecordCreateBulk struct {
	config
	err      error
	builders []*SummaryRecordCreate
}

// Save creates the SummaryRecord entities in the database.
func (srcb *SummaryRecordCreateBulk) Save(ctx context.Context) ([]*SummaryRecord, error) {
	if srcb.err != nil {
		return nil, srcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(srcb.builders))
	nodes := make([]*SummaryRecord, len(srcb.builders))
	mutators := make([]Mutator, len(srcb.builders))
	for i := range srcb.builders {
		func(i int, root context.Context) {
			builder := srcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SummaryRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, srcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, srcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, srcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (srcb *SummaryRecordCreateBulk) SaveX(ctx context.Context) []*SummaryRecord {
	v, err := srcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (srcb *SummaryRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := srcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (srcb *SummaryRecordCreateBulk) ExecX(ctx context.Context) {
	if err := srcb.Exec(ctx); err != nil {
		panic(err)
	}
}

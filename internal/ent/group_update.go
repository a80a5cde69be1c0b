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
	"github.com/fachebot/chat-tldr-bot/internal/ent/group"
	"github.com/fachebot/chat-tldr-bot/internal/ent/predicate"
)

// GroupUpdate is the builder for updating Group entities.
type GroupUpdate struct {
	config
	hooks    []Hook
	mutation *GroupMutation
}

// Where appends a list predicates to the GroupUpdate builder.
func (gu *GroupUpdate) Where(ps ...predicate.Group) *GroupUpdate {
	gu.mutation.Where(ps...)
	return gu
}

// SetUpdateTime sets the "update_time" field.
func (gu *GroupUpdate) SetUpdateTime(t time.Time) *GroupUpdate {
	gu.mutation.SetUpdateTime(t)
	return gu
}

// SetChatID sets the "chat_id" field.
func (gu *GroupUpdate) SetChatID(i int64) *GroupUpdate {
	gu.mutation.ResetChatID()
	gu.mutation.SetChatID(i)
	return gu
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (gu *GroupUpdate) SetNillableChatID(i *int64) *GroupUpdate {
	if i != nil {
		gu.SetChatID(*i)
	}
	return gu
}

// AddChatID adds i to the "chat_id" field.
func (gu *GroupUpdate) AddChatID(i int64) *GroupUpdate {
	gu.mutation.AddChatID(i)
	return gu
}

// SetTitle sets the "title" field.
func (gu *GroupUpdate) SetTitle(s string) *GroupUpdate {
	gu.mutation.SetTitle(s)
	return gu
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (gu *GroupUpdate) SetNillableTitle(s *string) *GroupUpdate {
	if s != nil {
		gu.SetTitle(*s)
	}
	return gu
}

// ClearTitle clears the value of the "title" field.
func (gu *GroupUpdate) ClearTitle() *GroupUpdate {
	gu.mutation.ClearTitle()
	return gu
}

// SetEnabled sets the "enabled" field.
func (gu *GroupUpdate) SetEnabled(b bool) *GroupUpdate {
	gu.mutation.SetEnabled(b)
	return gu
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (gu *GroupUpdate) SetNillableEnabled(b *bool) *GroupUpdate {
	if b != nil {
		gu.SetEnabled(*b)
	}
	return gu
}

// SetAPIKeyCipher sets the "api_key_cipher" field.
func (gu *GroupUpdate) SetAPIKeyCipher(s string) *GroupUpdate {
	gu.mutation.SetAPIKeyCipher(s)
	return gu
}

// SetNillableAPIKeyCipher sets the "api_key_cipher" field if the given value is not nil.
func (gu *GroupUpdate) SetNillableAPIKeyCipher(s *string) *GroupUpdate {
	if s != nil {
		gu.SetAPIKeyCipher(*s)
	}
	return gu
}

// ClearAPIKeyCipher clears the value of the "api_key_cipher" field.
func (gu *GroupUpdate) ClearAPIKeyCipher() *GroupUpdate {
	gu.mutation.ClearAPIKeyCipher()
	return gu
}

// Mutation returns the GroupMutation object of the builder.
func (gu *GroupUpdate) Mutation() *GroupMutation {
	return gu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (gu *GroupUpdate) Save(ctx context.Context) (int, error) {
	gu.defaults()
	return withHooks(ctx, gu.sqlSave, gu.mutation, gu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (gu *GroupUpdate) SaveX(ctx context.Context) int {
	affected, err := gu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (gu *GroupUpdate) Exec(ctx context.Context) error {
	_, err := gu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (gu *GroupUpdate) ExecX(ctx context.Context) {
	if err := gu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (gu *GroupUpdate) defaults() {
	if _, ok := gu.mutation.UpdateTime(); !ok {
		v := group.UpdateDefaultUpdateTime()
		gu.mutation.SetUpdateTime(v)
	}
}

func (gu *GroupUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(group.Table, group.Columns, sqlgraph.NewFieldSpec(group.FieldID, field.TypeInt))
	if ps := gu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := gu.mutation.UpdateTime(); ok {
		_spec.SetField(group.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := gu.mutation.ChatID(); ok {
		_spec.SetField(group.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := gu.mutation.AddedChatID(); ok {
		_spec.AddField(group.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := gu.mutation.Title(); ok {
		_spec.SetField(group.FieldTitle, field.TypeString, value)
	}
	if gu.mutation.TitleCleared() {
		_spec.ClearField(group.FieldTitle, field.TypeString)
	}
	if value, ok := gu.mutation.Enabled(); ok {
		_spec.SetField(group.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := gu.mutation.APIKeyCipher(); ok {
		_spec.SetField(group.FieldAPIKeyCipher, field.TypeString, value)
	}
	if gu.mutation.APIKeyCipherCleared() {
		_spec.ClearField(group.FieldAPIKeyCipher, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, gu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{group.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	gu.mutation.done = true
	return n, nil
}

// GroupUpdateOne is the builder for updating a single Group entity.
type GroupUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GroupMutation
}

// SetUpdateTime sets the "update_time" field.
func (guo *GroupUpdateOne) SetUpdateTime(t time.Time) *GroupUpdateOne {
	guo.mutation.SetUpdateTime(t)
	return guo
}

// SetChatID sets the "chat_id" field.
func (guo *GroupUpdateOne) SetChatID(i int64) *GroupUpdateOne {
	guo.mutation.ResetChatID()
	guo.mutation.SetChatID(i)
	return guo
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (guo *GroupUpdateOne) SetNillableChatID(i *int64) *GroupUpdateOne {
	if i != nil {
		guo.SetChatID(*i)
	}
	return guo
}

// AddChatID adds i to the "chat_id" field.
func (guo *GroupUpdateOne) AddChatID(i int64) *GroupUpdateOne {
	guo.mutation.AddChatID(i)
	return guo
}

// SetTitle sets the "title" field.
func (guo *GroupUpdateOne) SetTitle(s string) *GroupUpdateOne {
	guo.mutation.SetTitle(s)
	return guo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (guo *GroupUpdateOne) SetNillableTitle(s *string) *GroupUpdateOne {
	if s != nil {
		guo.SetTitle(*s)
	}
	return guo
}

// ClearTitle clears the value of the "title" field.
func (guo *GroupUpdateOne) ClearTitle() *GroupUpdateOne {
	guo.mutation.ClearTitle()
	return guo
}

// SetEnabled sets the "enabled" field.
func (guo *GroupUpdateOne) SetEnabled(b bool) *GroupUpdateOne {
	guo.mutation.SetEnabled(b)
	return guo
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (guo *GroupUpdateOne) SetNillableEnabled(b *bool) *GroupUpdateOne {
	if b != nil {
		guo.SetEnabled(*b)
	}
	return guo
}

// SetAPIKeyCipher sets the "api_key_cipher" field.
func (guo *GroupUpdateOne) SetAPIKeyCipher(s string) *GroupUpdateOne {
	guo.mutation.SetAPIKeyCipher(s)
	return guo
}

// SetNillableAPIKeyCipher sets the "api_key_cipher" field if the given value is not nil.
func (guo *GroupUpdateOne) SetNillableAPIKeyCipher(s *string) *GroupUpdateOne {
	if s != nil {
		guo.SetAPIKeyCipher(*s)
	}
	return guo
}

// ClearAPIKeyCipher clears the value of the "api_key_cipher" field.
func (guo *GroupUpdateOne) ClearAPIKeyCipher() *GroupUpdateOne {
	guo.mutation.ClearAPIKeyCipher()
	return guo
}

// Mutation returns the GroupMutation object of the builder.
func (guo *GroupUpdateOne) Mutation() *GroupMutation {
	return guo.mutation
}

// Where appends a list predicates to the GroupUpdate builder.
func (guo *GroupUpdateOne) Where(ps ...predicate.Group) *GroupUpdateOne {
	guo.mutation.Where(ps...)
	return guo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (guo *GroupUpdateOne) Select(field string, fields ...string) *GroupUpdateOne {
	guo.fields = append([]string{field}, fields...)
	return guo
}

// Save executes the query and returns the updated Group entity.
func (guo *GroupUpdateOne) Save(ctx context.Context) (*Group, error) {
	guo.defaults()
	return withHooks(ctx, guo.sqlSave, guo.mutation, guo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (guo *GroupUpdateOne) SaveX(ctx context.Context) *Group {
	node, err := guo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (guo *GroupUpdateOne) Exec(ctx context.Context) error {
	_, err := guo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (guo *GroupUpdateOne) ExecX(ctx context.Context) {
	if err := guo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (guo *GroupUpdateOne) defaults() {
	if _, ok := guo.mutation.UpdateTime(); !ok {
		v := group.UpdateDefaultUpdateTime()
		guo.mutation.SetUpdateTime(v)
	}
}

func (guo *GroupUpdateOne) sqlSave(ctx context.Context) (_node *Group, err error) {
	_spec := sqlgraph.NewUpdateSpec(group.Table, group.Columns, sqlgraph.NewFieldSpec(group.FieldID, field.TypeInt))
	id, ok := guo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Group.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := guo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, group.FieldID)
		for _, f := range fields {
			if !group.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != group.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := guo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := guo.mutation.UpdateTime(); ok {
		_spec.SetField(group.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := guo.mutation.ChatID(); ok {
		_spec.SetField(group.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := guo.mutation.AddedChatID(); ok {
		_spec.AddField(group.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := guo.mutation.Title(); ok {
		_spec.SetField(group.FieldTitle, field.TypeString, value)
	}
	if guo.mutation.TitleCleared() {
		_spec.ClearField(group.FieldTitle, field.TypeString)
	}
	if value, ok := guo.mutation.Enabled(); ok {
		_spec.SetField(group.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := guo.mutation.APIKeyCipher(); ok {
		_spec.SetField(group.FieldAPIKeyCipher, field.TypeString, value)
	}
	if guo.mutation.APIKeyCipherCleared() {
		_spec.ClearField(group.FieldAPIKeyCipher, field.TypeString)
	}
	_node = &Group{config: guo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, guo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{group.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	guo.mutation.done = true
	return _node, nil
}

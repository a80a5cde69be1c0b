// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fachebot/chat-tldr-bot/internal/ent/groupsettings"
)

// GroupSettingsCreate is the builder for creating a GroupSettings entity.
type GroupSettingsCreate struct {
	config
	mutation *GroupSettingsMutation
	hooks    []Hook
}

// SetCreateTime sets the "create_time" field.
func (gsc *GroupSettingsCreate) SetCreateTime(t time.Time) *GroupSettingsCreate {
	gsc.mutation.SetCreateTime(t)
	return gsc
}

// SetNillableCreateTime sets the "create_time" field if the given value is not nil.
func (gsc *GroupSettingsCreate) SetNillableCreateTime(t *time.Time) *GroupSettingsCreate {
	if t != nil {
		gsc.SetCreateTime(*t)
	}
	return gsc
}

// SetUpdateTime sets the "update_time" field.
func (gsc *GroupSettingsCreate) SetUpdateTime(t time.Time) *GroupSettingsCreate {
	gsc.mutation.SetUpdateTime(t)
	return gsc
}

// SetNillableUpdateTime sets the "update_time" field if the given value is not nil.
func (gsc *GroupSettingsCreate) SetNillableUpdateTime(t *time.Time) *GroupSettingsCreate {
	if t != nil {
		gsc.SetUpdateTime(*t)
	}
	return gsc
}

// SetChatID sets the "chat_id" field.
func (gsc *GroupSettingsCreate) SetChatID(i int64) *GroupSettingsCreate {
	gsc.mutation.SetChatID(i)
	return gsc
}

// SetStyle sets the "style" field.
func (gsc *GroupSettingsCreate) SetStyle(gr groupsettings.Style) *GroupSettingsCreate {
	gsc.mutation.SetStyle(gr)
	return gsc
}

// SetNillableStyle sets the "style" field if the given value is not nil.
func (gsc *GroupSettingsCreate) SetNillableStyle(gr *groupsettings.Style) *GroupSettingsCreate {
	if gr != nil {
		gsc.SetStyle(*gr)
	}
	return gsc
}

// SetCustomPrompt sets the "custom_prompt" field.
func (gsc *GroupSettingsCreate) SetCustomPrompt(s string) *GroupSettingsCreate {
	gsc.mutation.SetCustomPrompt(s)
	return gsc
}

// SetNillableCustomPrompt sets the "custom_prompt" field if the given value is not nil.
func (gsc *GroupSettingsCreate) SetNillableCustomPrompt(s *string) *GroupSettingsCreate {
	if s != nil {
		gsc.SetCustomPrompt(*s)
	}
	return gsc
}

// SetExcludeBots sets the "exclude_bots" field.
func (gsc *GroupSettingsCreate) SetExcludeBots(b bool) *GroupSettingsCreate {
	gsc.mutation.SetExcludeBots(b)
	return gsc
}

// SetNillableExcludeBots sets the "exclude_bots" field if the given value is not nil.
func (gsc *GroupSettingsCreate) SetNillableExcludeBots(b *bool) *GroupSettingsCreate {
	if b != nil {
		gsc.SetExcludeBots(*b)
	}
	return gsc
}

// SetExcludeCommands sets the "exclude_commands" field.
func (gsc *GroupSettingsCreate) SetExcludeCommands(b bool) *GroupSettingsCreate {
	gsc.mutation.SetExcludeCommands(b)
	return gsc
}

// SetNillableExcludeCommands sets the "exclude_commands" field if the given value is not nil.
func (gsc *GroupSettingsCreate) SetNillableExcludeCommands(b *bool) *GroupSettingsCreate {
	if b != nil {
		gsc.SetExcludeCommands(*b)
	}
	return gsc
}

// SetExcludedUsers sets the "excluded_users" field.
func (gsc *GroupSettingsCreate) SetExcludedUsers(i []int64) *GroupSettingsCreate {
	gsc.mutation.SetExcludedUsers(i)
	return gsc
}

// Mutation returns the GroupSettingsMutation object of the builder.
func (gsc *GroupSettingsCreate) Mutation() *GroupSettingsMutation {
	return gsc.mutation
}

// Save creates the GroupSettings in the database.
func (gsc *GroupSettingsCreate) Save(ctx context.Context) (*GroupSettings, error) {
	gsc.defaults()
	return withHooks(ctx, gsc.sqlSave, gsc.mutation, gsc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (gsc *GroupSettingsCreate) SaveX(ctx context.Context) *GroupSettings {
	v, err := gsc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (gsc *GroupSettingsCreate) Exec(ctx context.Context) error {
	_, err := gsc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (gsc *GroupSettingsCreate) ExecX(ctx context.Context) {
	if err := gsc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (gsc *GroupSettingsCreate) defaults() {
	if _, ok := gsc.mutation.CreateTime(); !ok {
		v := groupsettings.DefaultCreateTime()
		gsc.mutation.SetCreateTime(v)
	}
	if _, ok := gsc.mutation.UpdateTime(); !ok {
		v := groupsettings.DefaultUpdateTime()
		gsc.mutation.SetUpdateTime(v)
	}
	if _, ok := gsc.mutation.Style(); !ok {
		v := groupsettings.DefaultStyle
		gsc.mutation.SetStyle(v)
	}
	if _, ok := gsc.mutation.ExcludeBots(); !ok {
		v := groupsettings.DefaultExcludeBots
		gsc.mutation.SetExcludeBots(v)
	}
	if _, ok := gsc.mutation.ExcludeCommands(); !ok {
		v := groupsettings.DefaultExcludeCommands
		gsc.mutation.SetExcludeCommands(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (gsc *GroupSettingsCreate) check() error {
	if _, ok := gsc.mutation.CreateTime(); !ok {
		return &ValidationError{Name: "create_time", err: errors.New(`ent: missing required field "GroupSettings.create_time"`)}
	}
	if _, ok := gsc.mutation.UpdateTime(); !ok {
		return &ValidationError{Name: "update_time", err: errors.New(`ent: missing required field "GroupSettings.update_time"`)}
	}
	if _, ok := gsc.mutation.ChatID(); !ok {
		return &ValidationError{Name: "chat_id", err: errors.New(`ent: missing required field "GroupSettings.chat_id"`)}
	}
	if _, ok := gsc.mutation.Style(); !ok {
		return &ValidationError{Name: "style", err: errors.New(`ent: missing required field "GroupSettings.style"`)}
	}
	if v, ok := gsc.mutation.Style(); ok {
		if err := groupsettings.StyleValidator(v); err != nil {
			return &ValidationError{Name: "style", err: fmt.Errorf(`ent: validator failed for field "GroupSettings.style": %w`, err)}
		}
	}
	if _, ok := gsc.mutation.ExcludeBots(); !ok {
		return &ValidationError{Name: "exclude_bots", err: errors.New(`ent: missing required field "GroupSettings.exclude_bots"`)}
	}
	if _, ok := gsc.mutation.ExcludeCommands(); !ok {
		return &ValidationError{Name: "exclude_commands", err: errors.New(`ent: missing required field "GroupSettings.exclude_commands"`)}
	}
	return nil
}

func (gsc *GroupSettingsCreate) sqlSave(ctx context.Context) (*GroupSettings, error) {
	if err := gsc.check(); err != nil {
		return nil, err
	}
	_node, _spec := gsc.createSpec()
	if err := sqlgraph.CreateNode(ctx, gsc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	gsc.mutation.id = &_node.ID
	gsc.mutation.done = true
	return _node, nil
}

func (gsc *GroupSettingsCreate) createSpec() (*GroupSettings, *sqlgraph.CreateSpec) {
	var (
		_node = &GroupSettings{config: gsc.config}
		_spec = sqlgraph.NewCreateSpec(groupsettings.Table, sqlgraph.NewFieldSpec(groupsettings.FieldID, field.TypeInt))
	)
	if value, ok := gsc.mutation.CreateTime(); ok {
		_spec.SetField(groupsettings.FieldCreateTime, field.TypeTime, value)
		_node.CreateTime = value
	}
	if value, ok := gsc.mutation.UpdateTime(); ok {
		_spec.SetField(groupsettings.FieldUpdateTime, field.TypeTime, value)
		_node.UpdateTime = value
	}
	if value, ok := gsc.mutation.ChatID(); ok {
		_spec.SetField(groupsettings.FieldChatID, field.TypeInt64, value)
		_node.ChatID = value
	}
	if value, ok := gsc.mutation.Style(); ok {
		_spec.SetField(groupsettings.FieldStyle, field.TypeEnum, value)
		_node.Style = value
	}
	if value, ok := gsc.mutation.CustomPrompt(); ok {
		_spec.SetField(groupsettings.FieldCustomPrompt, field.TypeString, value)
		_node.CustomPrompt = value
	}
	if value, ok := gsc.mutation.ExcludeBots(); ok {
		_spec.SetField(groupsettings.FieldExcludeBots, field.TypeBool, value)
		_node.ExcludeBots = value
	}
	if value, ok := gsc.mutation.ExcludeCommands(); ok {
		_spec.SetField(groupsettings.FieldExcludeCommands, field.TypeBool, value)
		_node.ExcludeCommands = value
	}
	if value, ok := gsc.mutation.ExcludedUsers(); ok {
		_spec.SetField(groupsettings.FieldExcludedUsers, field.TypeJSON, value)
		_node.ExcludedUsers = value
	}
	return _node, _spec
}

// GroupSettingsCreateBulk is the builder for creating many GroupSettings entities in bulk.
type GroupSettingsCreateBulk struct {
	config
	err      error
	builders []*GroupSettingsCreate
}

// Save creates the GroupSettings entities in the database.
func (gscb *GroupSettingsCreateBulk) Save(ctx context.Context) ([]*GroupSettings, error) {
	if gscb.err != nil {
		return nil, gscb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(gscb.builders))
	nodes := make([]*GroupSettings, len(gscb.builders))
	mutators := make([]Mutator, len(gscb.builders))
	for i := range gscb.builders {
		func(i int, root context.Context) {
			builder := gscb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GroupSettingsMutation)
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
					_, err = mutators[i+1].Mutate(root, gscb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, gscb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, gscb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (gscb *GroupSettingsCreateBulk) SaveX(ctx context.Context) []*GroupSettings {
	v, err := gscb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (gscb *GroupSettingsCreateBulk) Exec(ctx context.Context) error {
	_, err := gscb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (gscb *GroupSettingsCreateBulk) ExecX(ctx context.Context) {
	if err := gscb.Exec(ctx); err != nil {
		panic(err)
	}
}

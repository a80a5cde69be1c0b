// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/fachebot/chat-tldr-bot/internal/ent/groupsettings"
	"github.com/fachebot/chat-tldr-bot/internal/ent/predicate"
)

// GroupSettingsUpdate is the builder for updating GroupSettings entities.
type GroupSettingsUpdate struct {
	config
	hooks    []Hook
	mutation *GroupSettingsMutation
}

// Where appends a list predicates to the GroupSettingsUpdate builder.
func (gsu *GroupSettingsUpdate) Where(ps ...predicate.GroupSettings) *GroupSettingsUpdate {
	gsu.mutation.Where(ps...)
	return gsu
}

// SetUpdateTime sets the "update_time" field.
func (gsu *GroupSettingsUpdate) SetUpdateTime(t time.Time) *GroupSettingsUpdate {
	gsu.mutation.SetUpdateTime(t)
	return gsu
}

// SetChatID sets the "chat_id" field.
func (gsu *GroupSettingsUpdate) SetChatID(i int64) *GroupSettingsUpdate {
	gsu.mutation.ResetChatID()
	gsu.mutation.SetChatID(i)
	return gsu
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (gsu *GroupSettingsUpdate) SetNillableChatID(i *int64) *GroupSettingsUpdate {
	if i != nil {
		gsu.SetChatID(*i)
	}
	return gsu
}

// AddChatID adds i to the "chat_id" field.
func (gsu *GroupSettingsUpdate) AddChatID(i int64) *GroupSettingsUpdate {
	gsu.mutation.AddChatID(i)
	return gsu
}

// SetStyle sets the "style" field.
func (gsu *GroupSettingsUpdate) SetStyle(gr groupsettings.Style) *GroupSettingsUpdate {
	gsu.mutation.SetStyle(gr)
	return gsu
}

// SetNillableStyle sets the "style" field if the given value is not nil.
func (gsu *GroupSettingsUpdate) SetNillableStyle(gr *groupsettings.Style) *GroupSettingsUpdate {
	if gr != nil {
		gsu.SetStyle(*gr)
	}
	return gsu
}

// SetCustomPrompt sets the "custom_prompt" field.
func (gsu *GroupSettingsUpdate) SetCustomPrompt(s string) *GroupSettingsUpdate {
	gsu.mutation.SetCustomPrompt(s)
	return gsu
}

// SetNillableCustomPrompt sets the "custom_prompt" field if the given value is not nil.
func (gsu *GroupSettingsUpdate) SetNillableCustomPrompt(s *string) *GroupSettingsUpdate {
	if s != nil {
		gsu.SetCustomPrompt(*s)
	}
	return gsu
}

// ClearCustomPrompt clears the value of the "custom_prompt" field.
func (gsu *GroupSettingsUpdate) ClearCustomPrompt() *GroupSettingsUpdate {
	gsu.mutation.ClearCustomPrompt()
	return gsu
}

// SetExcludeBots sets the "exclude_bots" field.
func (gsu *GroupSettingsUpdate) SetExcludeBots(b bool) *GroupSettingsUpdate {
	gsu.mutation.SetExcludeBots(b)
	return gsu
}

// SetNillableExcludeBots sets the "exclude_bots" field if the given value is not nil.
func (gsu *GroupSettingsUpdate) SetNillableExcludeBots(b *bool) *GroupSettingsUpdate {
	if b != nil {
		gsu.SetExcludeBots(*b)
	}
	return gsu
}

// SetExcludeCommands sets the "exclude_commands" field.
func (gsu *GroupSettingsUpdate) SetExcludeCommands(b bool) *GroupSettingsUpdate {
	gsu.mutation.SetExcludeCommands(b)
	return gsu
}

// SetNillableExcludeCommands sets the "exclude_commands" field if the given value is not nil.
func (gsu *GroupSettingsUpdate) SetNillableExcludeCommands(b *bool) *GroupSettingsUpdate {
	if b != nil {
		gsu.SetExcludeCommands(*b)
	}
	return gsu
}

// SetExcludedUsers sets the "excluded_users" field.
func (gsu *GroupSettingsUpdate) SetExcludedUsers(i []int64) *GroupSettingsUpdate {
	gsu.mutation.SetExcludedUsers(i)
	return gsu
}

// AppendExcludedUsers appends i to the "excluded_users" field.
func (gsu *GroupSettingsUpdate) AppendExcludedUsers(i []int64) *GroupSettingsUpdate {
	gsu.mutation.AppendExcludedUsers(i)
	return gsu
}

// ClearExcludedUsers clears the value of the "excluded_users" field.
func (gsu *GroupSettingsUpdate) ClearExcludedUsers() *GroupSettingsUpdate {
	gsu.mutation.ClearExcludedUsers()
	return gsu
}

// Mutation returns the GroupSettingsMutation object of the builder.
func (gsu *GroupSettingsUpdate) Mutation() *GroupSettingsMutation {
	return gsu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (gsu *GroupSettingsUpdate) Save(ctx context.Context) (int, error) {
	gsu.defaults()
	return withHooks(ctx, gsu.sqlSave, gsu.mutation, gsu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (gsu *GroupSettingsUpdate) SaveX(ctx context.Context) int {
	affected, err := gsu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (gsu *GroupSettingsUpdate) Exec(ctx context.Context) error {
	_, err := gsu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (gsu *GroupSettingsUpdate) ExecX(ctx context.Context) {
	if err := gsu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (gsu *GroupSettingsUpdate) defaults() {
	if _, ok := gsu.mutation.UpdateTime(); !ok {
		v := groupsettings.UpdateDefaultUpdateTime()
		gsu.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (gsu *GroupSettingsUpdate) check() error {
	if v, ok := gsu.mutation.Style(); ok {
		if err := groupsettings.StyleValidator(v); err != nil {
			return &ValidationError{Name: "style", err: fmt.Errorf(`ent: validator failed for field "GroupSettings.style": %w`, err)}
		}
	}
	return nil
}

func (gsu *GroupSettingsUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := gsu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(groupsettings.Table, groupsettings.Columns, sqlgraph.NewFieldSpec(groupsettings.FieldID, field.TypeInt))
	if ps := gsu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := gsu.mutation.UpdateTime(); ok {
		_spec.SetField(groupsettings.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := gsu.mutation.ChatID(); ok {
		_spec.SetField(groupsettings.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := gsu.mutation.AddedChatID(); ok {
		_spec.AddField(groupsettings.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := gsu.mutation.Style(); ok {
		_spec.SetField(groupsettings.FieldStyle, field.TypeEnum, value)
	}
	if value, ok := gsu.mutation.CustomPrompt(); ok {
		_spec.SetField(groupsettings.FieldCustomPrompt, field.TypeString, value)
	}
	if gsu.mutation.CustomPromptCleared() {
		_spec.ClearField(groupsettings.FieldCustomPrompt, field.TypeString)
	}
	if value, ok := gsu.mutation.ExcludeBots(); ok {
		_spec.SetField(groupsettings.FieldExcludeBots, field.TypeBool, value)
	}
	if value, ok := gsu.mutation.ExcludeCommands(); ok {
		_spec.SetField(groupsettings.FieldExcludeCommands, field.TypeBool, value)
	}
	if value, ok := gsu.mutation.ExcludedUsers(); ok {
		_spec.SetField(groupsettings.FieldExcludedUsers, field.TypeJSON, value)
	}
	if value, ok := gsu.mutation.AppendedExcludedUsers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, groupsettings.FieldExcludedUsers, value)
		})
	}
	if gsu.mutation.ExcludedUsersCleared() {
		_spec.ClearField(groupsettings.FieldExcludedUsers, field.TypeJSON)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, gsu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{groupsettings.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	gsu.mutation.done = true
	return n, nil
}

// GroupSettingsUpdateOne is the builder for updating a single GroupSettings entity.
type GroupSettingsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GroupSettingsMutation
}

// SetUpdateTime sets the "update_time" field.
func (gsuo *GroupSettingsUpdateOne) SetUpdateTime(t time.Time) *GroupSettingsUpdateOne {
	gsuo.mutation.SetUpdateTime(t)
	return gsuo
}

// SetChatID sets the "chat_id" field.
func (gsuo *GroupSettingsUpdateOne) SetChatID(i int64) *GroupSettingsUpdateOne {
	gsuo.mutation.ResetChatID()
	gsuo.mutation.SetChatID(i)
	return gsuo
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (gsuo *GroupSettingsUpdateOne) SetNillableChatID(i *int64) *GroupSettingsUpdateOne {
	if i != nil {
		gsuo.SetChatID(*i)
	}
	return gsuo
}

// AddChatID adds i to the "chat_id" field.
func (gsuo *GroupSettingsUpdateOne) AddChatID(i int64) *GroupSettingsUpdateOne {
	gsuo.mutation.AddChatID(i)
	return gsuo
}

// SetStyle sets the "style" field.
func (gsuo *GroupSettingsUpdateOne) SetStyle(gr groupsettings.Style) *GroupSettingsUpdateOne {
	gsuo.mutation.SetStyle(gr)
	return gsuo
}

// SetNillableStyle sets the "style" field if the given value is not nil.
func (gsuo *GroupSettingsUpdateOne) SetNillableStyle(gr *groupsettings.Style) *GroupSettingsUpdateOne {
	if gr != nil {
		gsuo.SetStyle(*gr)
	}
	return gsuo
}

// SetCustomPrompt sets the "custom_prompt" field.
func (gsuo *GroupSettingsUpdateOne) SetCustomPrompt(s string) *GroupSettingsUpdateOne {
	gsuo.mutation.SetCustomPrompt(s)
	return gsuo
}

// SetNillableCustomPrompt sets the "custom_prompt" field if the given value is not nil.
func (gsuo *GroupSettingsUpdateOne) SetNillableCustomPrompt(s *string) *GroupSettingsUpdateOne {
	if s != nil {
		gsuo.SetCustomPrompt(*s)
	}
	return gsuo
}

// ClearCustomPrompt clears the value of the "custom_prompt" field.
func (gsuo *GroupSettingsUpdateOne) ClearCustomPrompt() *GroupSettingsUpdateOne {
	gsuo.mutation.ClearCustomPrompt()
	return gsuo
}

// SetExcludeBots sets the "exclude_bots" field.
func (gsuo *GroupSettingsUpdateOne) SetExcludeBots(b bool) *GroupSettingsUpdateOne {
	gsuo.mutation.SetExcludeBots(b)
	return gsuo
}

// SetNillableExcludeBots sets the "exclude_bots" field if the given value is not nil.
func (gsuo *GroupSettingsUpdateOne) SetNillableExcludeBots(b *bool) *GroupSettingsUpdateOne {
	if b != nil {
		gsuo.SetExcludeBots(*b)
	}
	return gsuo
}

// SetExcludeCommands sets the "exclude_commands" field.
func (gsuo *GroupSettingsUpdateOne) SetExcludeCommands(b bool) *GroupSettingsUpdateOne {
	gsuo.mutation.SetExcludeCommands(b)
	return gsuo
}

// SetNillableExcludeCommands sets the "exclude_commands" field if the given value is not nil.
func (gsuo *GroupSettingsUpdateOne) SetNillableExcludeCommands(b *bool) *GroupSettingsUpdateOne {
	if b != nil {
		gsuo.SetExcludeCommands(*b)
	}
	return gsuo
}

// SetExcludedUsers sets the "excluded_users" field.
func (gsuo *GroupSettingsUpdateOne) SetExcludedUsers(i []int64) *GroupSettingsUpdateOne {
	gsuo.mutation.SetExcludedUsers(i)
	return gsuo
}

// AppendExcludedUsers appends i to the "excluded_users" field.
func (gsuo *GroupSettingsUpdateOne) AppendExcludedUsers(i []int64) *GroupSettingsUpdateOne {
	gsuo.mutation.AppendExcludedUsers(i)
	return gsuo
}

// ClearExcludedUsers clears the value of the "excluded_users" field.
func (gsuo *GroupSettingsUpdateOne) ClearExcludedUsers() *GroupSettingsUpdateOne {
	gsuo.mutation.ClearExcludedUsers()
	return gsuo
}

// Mutation returns the GroupSettingsMutation object of the builder.
func (gsuo *GroupSettingsUpdateOne) Mutation() *GroupSettingsMutation {
	return gsuo.mutation
}

// Where appends a list predicates to the GroupSettingsUpdate builder.
func (gsuo *GroupSettingsUpdateOne) Where(ps ...predicate.GroupSettings) *GroupSettingsUpdateOne {
	gsuo.mutation.Where(ps...)
	return gsuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (gsuo *GroupSettingsUpdateOne) Select(field string, fields ...string) *GroupSettingsUpdateOne {
	gsuo.fields = append([]string{field}, fields...)
	return gsuo
}

// Save executes the query and returns the updated GroupSettings entity.
func (gsuo *GroupSettingsUpdateOne) Save(ctx context.Context) (*GroupSettings, error) {
	gsuo.defaults()
	return withHooks(ctx, gsuo.sqlSave, gsuo.mutation, gsuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (gsuo *GroupSettingsUpdateOne) SaveX(ctx context.Context) *GroupSettings {
	node, err := gsuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (gsuo *GroupSettingsUpdateOne) Exec(ctx context.Context) error {
	_, err := gsuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (gsuo *GroupSettingsUpdateOne) ExecX(ctx context.Context) {
	if err := gsuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (gsuo *GroupSettingsUpdateOne) defaults() {
	if _, ok := gsuo.mutation.UpdateTime(); !ok {
		v := groupsettings.UpdateDefaultUpdateTime()
		gsuo.mutation.SetUpdateTime(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (gsuo *GroupSettingsUpdateOne) check() error {
	if v, ok := gsuo.mutation.Style(); ok {
		if err := groupsettings.StyleValidator(v); err != nil {
			return &ValidationError{Name: "style", err: fmt.Errorf(`ent: validator failed for field "GroupSettings.style": %w`, err)}
		}
	}
	return nil
}

func (gsuo *GroupSettingsUpdateOne) sqlSave(ctx context.Context) (_node *GroupSettings, err error) {
	if err := gsuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(groupsettings.Table, groupsettings.Columns, sqlgraph.NewFieldSpec(groupsettings.FieldID, field.TypeInt))
	id, ok := gsuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GroupSettings.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := gsuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, groupsettings.FieldID)
		for _, f := range fields {
			if !groupsettings.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != groupsettings.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := gsuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := gsuo.mutation.UpdateTime(); ok {
		_spec.SetField(groupsettings.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := gsuo.mutation.ChatID(); ok {
		_spec.SetField(groupsettings.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := gsuo.mutation.AddedChatID(); ok {
		_spec.AddField(groupsettings.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := gsuo.mutation.Style(); ok {
		_spec.SetField(groupsettings.FieldStyle, field.TypeEnum, value)
	}
	if value, ok := gsuo.mutation.CustomPrompt(); ok {
		_spec.SetField(groupsettings.FieldCustomPrompt, field.TypeString, value)
	}
	if gsuo.mutation.CustomPromptCleared() {
		_spec.ClearField(groupsettings.FieldCustomPrompt, field.TypeString)
	}
	if value, ok := gsuo.mutation.ExcludeBots(); ok {
		_spec.SetField(groupsettings.FieldExcludeBots, field.TypeBool, value)
	}
	if value, ok := gsuo.mutation.ExcludeCommands(); ok {
		_spec.SetField(groupsettings.FieldExcludeCommands, field.TypeBool, value)
	}
	if value, ok := gsuo.mutation.ExcludedUsers(); ok {
		_spec.SetField(groupsettings.FieldExcludedUsers, field.TypeJSON, value)
	}
	if value, ok := gsuo.mutation.AppendedExcludedUsers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, groupsettings.FieldExcludedUsers, value)
		})
	}
	if gsuo.mutation.ExcludedUsersCleared() {
		_spec.ClearField(groupsettings.FieldExcludedUsers, field.TypeJSON)
	}
	_node = &GroupSettings{config: gsuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, gsuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{groupsettings.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	gsuo.mutation.done = true
	return _node, nil
}

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
	"github.com/fachebot/chat-tldr-bot/internal/ent/message"
	"github.com/fachebot/chat-tldr-bot/internal/ent/predicate"
)

// MessageUpdate is the builder for updating Message entities.
type MessageUpdate struct {
	config
	hooks    []Hook
	mutation *MessageMutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (mu *MessageUpdate) Where(ps ...predicate.Message) *MessageUpdate {
	mu.mutation.Where(ps...)
	return mu
}

// SetUpdateTime sets the "update_time" field.
func (mu *MessageUpdate) SetUpdateTime(t time.Time) *MessageUpdate {
	mu.mutation.SetUpdateTime(t)
	return mu
}

// SetMessageID sets the "message_id" field.
func (mu *MessageUpdate) SetMessageID(i int64) *MessageUpdate {
	mu.mutation.ResetMessageID()
	mu.mutation.SetMessageID(i)
	return mu
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (mu *MessageUpdate) SetNillableMessageID(i *int64) *MessageUpdate {
	if i != nil {
		mu.SetMessageID(*i)
	}
	return mu
}

// AddMessageID adds i to the "message_id" field.
func (mu *MessageUpdate) AddMessageID(i int64) *MessageUpdate {
	mu.mutation.AddMessageID(i)
	return mu
}

// SetChatID sets the "chat_id" field.
func (mu *MessageUpdate) SetChatID(i int64) *MessageUpdate {
	mu.mutation.ResetChatID()
	mu.mutation.SetChatID(i)
	return mu
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (mu *MessageUpdate) SetNillableChatID(i *int64) *MessageUpdate {
	if i != nil {
		mu.SetChatID(*i)
	}
	return mu
}

// AddChatID adds i to the "chat_id" field.
func (mu *MessageUpdate) AddChatID(i int64) *MessageUpdate {
	mu.mutation.AddChatID(i)
	return mu
}

// SetSenderID sets the "sender_id" field.
func (mu *MessageUpdate) SetSenderID(i int64) *MessageUpdate {
	mu.mutation.ResetSenderID()
	mu.mutation.SetSenderID(i)
	return mu
}

// SetNillableSenderID sets the "sender_id" field if the given value is not nil.
func (mu *MessageUpdate) SetNillableSenderID(i *int64) *MessageUpdate {
	if i != nil {
		mu.SetSenderID(*i)
	}
	return mu
}

// AddSenderID adds i to the "sender_id" field.
func (mu *MessageUpdate) AddSenderID(i int64) *MessageUpdate {
	mu.mutation.AddSenderID(i)
	return mu
}

// SetSenderName sets the "sender_name" field.
func (mu *MessageUpdate) SetSenderName(s string) *MessageUpdate {
	mu.mutation.SetSenderName(s)
	return mu
}

// SetNillableSenderName sets the "sender_name" field if the given value is not nil.
func (mu *MessageUpdate) SetNillableSenderName(s *string) *MessageUpdate {
	if s != nil {
		mu.SetSenderName(*s)
	}
	return mu
}

// SetSenderUsername sets the "sender_username" field.
func (mu *MessageUpdate) SetSenderUsername(s string) *MessageUpdate {
	mu.mutation.SetSenderUsername(s)
	return mu
}

// SetNillableSenderUsername sets the "sender_username" field if the given value is not nil.
func (mu *MessageUpdate) SetNillableSenderUsername(s *string) *MessageUpdate {
	if s != nil {
		mu.SetSenderUsername(*s)
	}
	return mu
}

// ClearSenderUsername clears the value of the "sender_username" field.
func (mu *MessageUpdate) ClearSenderUsername() *MessageUpdate {
	mu.mutation.ClearSenderUsername()
	return mu
}

// SetText sets the "text" field.
func (mu *MessageUpdate) SetText(s string) *MessageUpdate {
	mu.mutation.SetText(s)
	return mu
}

// SetNillableText sets the "text" field if the given value is not nil.
func (mu *MessageUpdate) SetNillableText(s *string) *MessageUpdate {
	if s != nil {
		mu.SetText(*s)
	}
	return mu
}

// SetSentAt sets the "sent_at" field.
func (mu *MessageUpdate) SetSentAt(t time.Time) *MessageUpdate {
	mu.mutation.SetSentAt(t)
	return mu
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (mu *MessageUpdate) SetNillableSentAt(t *time.Time) *MessageUpdate {
	if t != nil {
		mu.SetSentAt(*t)
	}
	return mu
}

// SetIsBot sets the "is_bot" field.
func (mu *MessageUpdate) SetIsBot(b bool) *MessageUpdate {
	mu.mutation.SetIsBot(b)
	return mu
}

// SetNillableIsBot sets the "is_bot" field if the given value is not nil.
func (mu *MessageUpdate) SetNillableIsBot(b *bool) *MessageUpdate {
	if b != nil {
		mu.SetIsBot(*b)
	}
	return mu
}

// SetIsChannelPost sets the "is_channel_post" field.
func (mu *MessageUpdate) SetIsChannelPost(b bool) *MessageUpdate {
	mu.mutation.SetIsChannelPost(b)
	return mu
}

// SetNillableIsChannelPost sets the "is_channel_post" field if the given value is not nil.
func (mu *MessageUpdate) SetNillableIsChannelPost(b *bool) *MessageUpdate {
	if b != nil {
		mu.SetIsChannelPost(*b)
	}
	return mu
}

// Mutation returns the MessageMutation object of the builder.
func (mu *MessageUpdate) Mutation() *MessageMutation {
	return mu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (mu *MessageUpdate) Save(ctx context.Context) (int, error) {
	mu.defaults()
	return withHooks(ctx, mu.sqlSave, mu.mutation, mu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (mu *MessageUpdate) SaveX(ctx context.Context) int {
	affected, err := mu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (mu *MessageUpdate) Exec(ctx context.Context) error {
	_, err := mu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mu *MessageUpdate) ExecX(ctx context.Context) {
	if err := mu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (mu *MessageUpdate) defaults() {
	if _, ok := mu.mutation.UpdateTime(); !ok {
		v := message.UpdateDefaultUpdateTime()
		mu.mutation.SetUpdateTime(v)
	}
}

func (mu *MessageUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeInt))
	if ps := mu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := mu.mutation.UpdateTime(); ok {
		_spec.SetField(message.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := mu.mutation.MessageID(); ok {
		_spec.SetField(message.FieldMessageID, field.TypeInt64, value)
	}
	if value, ok := mu.mutation.AddedMessageID(); ok {
		_spec.AddField(message.FieldMessageID, field.TypeInt64, value)
	}
	if value, ok := mu.mutation.ChatID(); ok {
		_spec.SetField(message.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := mu.mutation.AddedChatID(); ok {
		_spec.AddField(message.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := mu.mutation.SenderID(); ok {
		_spec.SetField(message.FieldSenderID, field.TypeInt64, value)
	}
	if value, ok := mu.mutation.AddedSenderID(); ok {
		_spec.AddField(message.FieldSenderID, field.TypeInt64, value)
	}
	if value, ok := mu.mutation.SenderName(); ok {
		_spec.SetField(message.FieldSenderName, field.TypeString, value)
	}
	if value, ok := mu.mutation.SenderUsername(); ok {
		_spec.SetField(message.FieldSenderUsername, field.TypeString, value)
	}
	if mu.mutation.SenderUsernameCleared() {
		_spec.ClearField(message.FieldSenderUsername, field.TypeString)
	}
	if value, ok := mu.mutation.Text(); ok {
		_spec.SetField(message.FieldText, field.TypeString, value)
	}
	if value, ok := mu.mutation.SentAt(); ok {
		_spec.SetField(message.FieldSentAt, field.TypeTime, value)
	}
	if value, ok := mu.mutation.IsBot(); ok {
		_spec.SetField(message.FieldIsBot, field.TypeBool, value)
	}
	if value, ok := mu.mutation.IsChannelPost(); ok {
		_spec.SetField(message.FieldIsChannelPost, field.TypeBool, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, mu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	mu.mutation.done = true
	return n, nil
}

// MessageUpdateOne is the builder for updating a single Message entity.
type MessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageMutation
}

// SetUpdateTime sets the "update_time" field.
func (muo *MessageUpdateOne) SetUpdateTime(t time.Time) *MessageUpdateOne {
	muo.mutation.SetUpdateTime(t)
	return muo
}

// SetMessageID sets the "message_id" field.
func (muo *MessageUpdateOne) SetMessageID(i int64) *MessageUpdateOne {
	muo.mutation.ResetMessageID()
	muo.mutation.SetMessageID(i)
	return muo
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (muo *MessageUpdateOne) SetNillableMessageID(i *int64) *MessageUpdateOne {
	if i != nil {
		muo.SetMessageID(*i)
	}
	return muo
}

// AddMessageID adds i to the "message_id" field.
func (muo *MessageUpdateOne) AddMessageID(i int64) *MessageUpdateOne {
	muo.mutation.AddMessageID(i)
	return muo
}

// SetChatID sets the "chat_id" field.
func (muo *MessageUpdateOne) SetChatID(i int64) *MessageUpdateOne {
	muo.mutation.ResetChatID()
	muo.mutation.SetChatID(i)
	return muo
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (muo *MessageUpdateOne) SetNillableChatID(i *int64) *MessageUpdateOne {
	if i != nil {
		muo.SetChatID(*i)
	}
	return muo
}

// AddChatID adds i to the "chat_id" field.
func (muo *MessageUpdateOne) AddChatID(i int64) *MessageUpdateOne {
	muo.mutation.AddChatID(i)
	return muo
}

// SetSenderID sets the "sender_id" field.
func (muo *MessageUpdateOne) SetSenderID(i int64) *MessageUpdateOne {
	muo.mutation.ResetSenderID()
	muo.mutation.SetSenderID(i)
	return muo
}

// SetNillableSenderID sets the "sender_id" field if the given value is not nil.
func (muo *MessageUpdateOne) SetNillableSenderID(i *int64) *MessageUpdateOne {
	if i != nil {
		muo.SetSenderID(*i)
	}
	return muo
}

// AddSenderID adds i to the "sender_id" field.
func (muo *MessageUpdateOne) AddSenderID(i int64) *MessageUpdateOne {
	muo.mutation.AddSenderID(i)
	return muo
}

// SetSenderName sets the "sender_name" field.
func (muo *MessageUpdateOne) SetSenderName(s string) *MessageUpdateOne {
	muo.mutation.SetSenderName(s)
	return muo
}

// SetNillableSenderName sets the "sender_name" field if the given value is not nil.
func (muo *MessageUpdateOne) SetNillableSenderName(s *string) *MessageUpdateOne {
	if s != nil {
		muo.SetSenderName(*s)
	}
	return muo
}

// SetSenderUsername sets the "sender_username" field.
func (muo *MessageUpdateOne) SetSenderUsername(s string) *MessageUpdateOne {
	muo.mutation.SetSenderUsername(s)
	return muo
}

// SetNillableSenderUsername sets the "sender_username" field if the given value is not nil.
func (muo *MessageUpdateOne) SetNillableSenderUsername(s *string) *MessageUpdateOne {
	if s != nil {
		muo.SetSenderUsername(*s)
	}
	return muo
}

// ClearSenderUsername clears the value of the "sender_username" field.
func (muo *MessageUpdateOne) ClearSenderUsername() *MessageUpdateOne {
	muo.mutation.ClearSenderUsername()
	return muo
}

// SetText sets the "text" field.
func (muo *MessageUpdateOne) SetText(s string) *MessageUpdateOne {
	muo.mutation.SetText(s)
	return muo
}

// SetNillableText sets the "text" field if the given value is not nil.
func (muo *MessageUpdateOne) SetNillableText(s *string) *MessageUpdateOne {
	if s != nil {
		muo.SetText(*s)
	}
	return muo
}

// SetSentAt sets the "sent_at" field.
func (muo *MessageUpdateOne) SetSentAt(t time.Time) *MessageUpdateOne {
	muo.mutation.SetSentAt(t)
	return muo
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (muo *MessageUpdateOne) SetNillableSentAt(t *time.Time) *MessageUpdateOne {
	if t != nil {
		muo.SetSentAt(*t)
	}
	return muo
}

// SetIsBot sets the "is_bot" field.
func (muo *MessageUpdateOne) SetIsBot(b bool) *MessageUpdateOne {
	muo.mutation.SetIsBot(b)
	return muo
}

// SetNillableIsBot sets the "is_bot" field if the given value is not nil.
func (muo *MessageUpdateOne) SetNillableIsBot(b *bool) *MessageUpdateOne {
	if b != nil {
		muo.SetIsBot(*b)
	}
	return muo
}

// SetIsChannelPost sets the "is_channel_post" field.
func (muo *MessageUpdateOne) SetIsChannelPost(b bool) *MessageUpdateOne {
	muo.mutation.SetIsChannelPost(b)
	return muo
}

// SetNillableIsChannelPost sets the "is_channel_post" field if the given value is not nil.
func (muo *MessageUpdateOne) SetNillableIsChannelPost(b *bool) *MessageUpdateOne {
	if b != nil {
		muo.SetIsChannelPost(*b)
	}
	return muo
}

// Mutation returns the MessageMutation object of the builder.
func (muo *MessageUpdateOne) Mutation() *MessageMutation {
	return muo.mutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (muo *MessageUpdateOne) Where(ps ...predicate.Message) *MessageUpdateOne {
	muo.mutation.Where(ps...)
	return muo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (muo *MessageUpdateOne) Select(field string, fields ...string) *MessageUpdateOne {
	muo.fields = append([]string{field}, fields...)
	return muo
}

// Save executes the query and returns the updated Message entity.
func (muo *MessageUpdateOne) Save(ctx context.Context) (*Message, error) {
	muo.defaults()
	return withHooks(ctx, muo.sqlSave, muo.mutation, muo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (muo *MessageUpdateOne) SaveX(ctx context.Context) *Message {
	node, err := muo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (muo *MessageUpdateOne) Exec(ctx context.Context) error {
	_, err := muo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (muo *MessageUpdateOne) ExecX(ctx context.Context) {
	if err := muo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (muo *MessageUpdateOne) defaults() {
	if _, ok := muo.mutation.UpdateTime(); !ok {
		v := message.UpdateDefaultUpdateTime()
		muo.mutation.SetUpdateTime(v)
	}
}

func (muo *MessageUpdateOne) sqlSave(ctx context.Context) (_node *Message, err error) {
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeInt))
	id, ok := muo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Message.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := muo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, message.FieldID)
		for _, f := range fields {
			if !message.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != message.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := muo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := muo.mutation.UpdateTime(); ok {
		_spec.SetField(message.FieldUpdateTime, field.TypeTime, value)
	}
	if value, ok := muo.mutation.MessageID(); ok {
		_spec.SetField(message.FieldMessageID, field.TypeInt64, value)
	}
	if value, ok := muo.mutation.AddedMessageID(); ok {
		_spec.AddField(message.FieldMessageID, field.TypeInt64, value)
	}
	if value, ok := muo.mutation.ChatID(); ok {
		_spec.SetField(message.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := muo.mutation.AddedChatID(); ok {
		_spec.AddField(message.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := muo.mutation.SenderID(); ok {
		_spec.SetField(message.FieldSenderID, field.TypeInt64, value)
	}
	if value, ok := muo.mutation.AddedSenderID(); ok {
		_spec.AddField(message.FieldSenderID, field.TypeInt64, value)
	}
	if value, ok := muo.mutation.SenderName(); ok {
		_spec.SetField(message.FieldSenderName, field.TypeString, value)
	}
	if value, ok := muo.mutation.SenderUsername(); ok {
		_spec.SetField(message.FieldSenderUsername, field.TypeString, value)
	}
	if muo.mutation.SenderUsernameCleared() {
		_spec.ClearField(message.FieldSenderUsername, field.TypeString)
	}
	if value, ok := muo.mutation.Text(); ok {
		_spec.SetField(message.FieldText, field.TypeString, value)
	}
	if value, ok := muo.mutation.SentAt(); ok {
		_spec.SetField(message.FieldSentAt, field.TypeTime, value)
	}
	if value, ok := muo.mutation.IsBot(); ok {
		_spec.SetField(message.FieldIsBot, field.TypeBool, value)
	}
	if value, ok := muo.mutation.IsChannelPost(); ok {
		_spec.SetField(message.FieldIsChannelPost, field.TypeBool, value)
	}
	_node = &Message{config: muo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, muo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	muo.mutation.done = true
	return _node, nil
}

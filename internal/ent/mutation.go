// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/fachebot/chat-tldr-bot/internal/ent/group"
	"github.com/fachebot/chat-tldr-bot/internal/ent/groupsettings"
	"github.com/fachebot/chat-tldr-bot/internal/ent/message"
	"github.com/fachebot/chat-tldr-bot/internal/ent/predicate"
	"github.com/fachebot/chat-tldr-bot/internal/ent/summaryrecord"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeGroup         = "Group"
	TypeGroupSettings = "GroupSettings"
	TypeMessage       = "Message"
	TypeSummaryRecord = "SummaryRecord"
)

// GroupMutation represents an operation that mutates the Group nodes in the graph.
type GroupMutation struct {
	config
	op             Op
	typ            string
	id             *int
	create_time    *time.Time
	update_time    *time.Time
	chat_id        *int64
	addchat_id     *int64
	title          *string
	enabled        *bool
	api_key_cipher *string
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Group, error)
	predicates     []predicate.Group
}

var _ ent.Mutation = (*GroupMutation)(nil)

// groupOption allows management of the mutation configuration using functional options.
type groupOption func(*GroupMutation)

// newGroupMutation creates new mutation for the Group entity.
func newGroupMutation(c config, op Op, opts ...groupOption) *GroupMutation {
	m := &GroupMutation{
		config:        c,
		op:            op,
		typ:           TypeGroup,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGroupID sets the ID field of the mutation.
func withGroupID(id int) groupOption {
	return func(m *GroupMutation) {
		var (
			err   error
			once  sync.Once
			value *Group
		)
		m.oldValue = func(ctx context.Context) (*Group, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Group.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGroup sets the old Group of the mutation.
func withGroup(node *Group) groupOption {
	return func(m *GroupMutation) {
		m.oldValue = func(context.Context) (*Group, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GroupMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GroupMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GroupMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GroupMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Group.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreateTime sets the "create_time" field.
func (m *GroupMutation) SetCreateTime(t time.Time) {
	m.create_time = &t
}

// CreateTime returns the value of the "create_time" field in the mutation.
func (m *GroupMutation) CreateTime() (r time.Time, exists bool) {
	v := m.create_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTime returns the old "create_time" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldCreateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTime: %w", err)
	}
	return oldValue.CreateTime, nil
}

// ResetCreateTime resets all changes to the "create_time" field.
func (m *GroupMutation) ResetCreateTime() {
	m.create_time = nil
}

// SetUpdateTime sets the "update_time" field.
func (m *GroupMutation) SetUpdateTime(t time.Time) {
	m.update_time = &t
}

// UpdateTime returns the value of the "update_time" field in the mutation.
func (m *GroupMutation) UpdateTime() (r time.Time, exists bool) {
	v := m.update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateTime returns the old "update_time" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateTime: %w", err)
	}
	return oldValue.UpdateTime, nil
}

// ResetUpdateTime resets all changes to the "update_time" field.
func (m *GroupMutation) ResetUpdateTime() {
	m.update_time = nil
}

// SetChatID sets the "chat_id" field.
func (m *GroupMutation) SetChatID(i int64) {
	m.chat_id = &i
	m.addchat_id = nil
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *GroupMutation) ChatID() (r int64, exists bool) {
	v := m.chat_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldChatID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// AddChatID adds i to the "chat_id" field.
func (m *GroupMutation) AddChatID(i int64) {
	if m.addchat_id != nil {
		*m.addchat_id += i
	} else {
		m.addchat_id = &i
	}
}

// AddedChatID returns the value that was added to the "chat_id" field in this mutation.
func (m *GroupMutation) AddedChatID() (r int64, exists bool) {
	v := m.addchat_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *GroupMutation) ResetChatID() {
	m.chat_id = nil
	m.addchat_id = nil
}

// SetTitle sets the "title" field.
func (m *GroupMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *GroupMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *GroupMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[group.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *GroupMutation) TitleCleared() bool {
	_, ok := m.clearedFields[group.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *GroupMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, group.FieldTitle)
}

// SetEnabled sets the "enabled" field.
func (m *GroupMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *GroupMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *GroupMutation) ResetEnabled() {
	m.enabled = nil
}

// SetAPIKeyCipher sets the "api_key_cipher" field.
func (m *GroupMutation) SetAPIKeyCipher(s string) {
	m.api_key_cipher = &s
}

// APIKeyCipher returns the value of the "api_key_cipher" field in the mutation.
func (m *GroupMutation) APIKeyCipher() (r string, exists bool) {
	v := m.api_key_cipher
	if v == nil {
		return
	}
	return *v, true
}

// OldAPIKeyCipher returns the old "api_key_cipher" field's value of the Group entity.
// If the Group object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupMutation) OldAPIKeyCipher(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAPIKeyCipher is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAPIKeyCipher requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAPIKeyCipher: %w", err)
	}
	return oldValue.APIKeyCipher, nil
}

// ClearAPIKeyCipher clears the value of the "api_key_cipher" field.
func (m *GroupMutation) ClearAPIKeyCipher() {
	m.api_key_cipher = nil
	m.clearedFields[group.FieldAPIKeyCipher] = struct{}{}
}

// APIKeyCipherCleared returns if the "api_key_cipher" field was cleared in this mutation.
func (m *GroupMutation) APIKeyCipherCleared() bool {
	_, ok := m.clearedFields[group.FieldAPIKeyCipher]
	return ok
}

// ResetAPIKeyCipher resets all changes to the "api_key_cipher" field.
func (m *GroupMutation) ResetAPIKeyCipher() {
	m.api_key_cipher = nil
	delete(m.clearedFields, group.FieldAPIKeyCipher)
}

// Where appends a list predicates to the GroupMutation builder.
func (m *GroupMutation) Where(ps ...predicate.Group) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GroupMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GroupMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Group, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GroupMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GroupMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Group).
func (m *GroupMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GroupMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.create_time != nil {
		fields = append(fields, group.FieldCreateTime)
	}
	if m.update_time != nil {
		fields = append(fields, group.FieldUpdateTime)
	}
	if m.chat_id != nil {
		fields = append(fields, group.FieldChatID)
	}
	if m.title != nil {
		fields = append(fields, group.FieldTitle)
	}
	if m.enabled != nil {
		fields = append(fields, group.FieldEnabled)
	}
	if m.api_key_cipher != nil {
		fields = append(fields, group.FieldAPIKeyCipher)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GroupMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case group.FieldCreateTime:
		return m.CreateTime()
	case group.FieldUpdateTime:
		return m.UpdateTime()
	case group.FieldChatID:
		return m.ChatID()
	case group.FieldTitle:
		return m.Title()
	case group.FieldEnabled:
		return m.Enabled()
	case group.FieldAPIKeyCipher:
		return m.APIKeyCipher()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GroupMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case group.FieldCreateTime:
		return m.OldCreateTime(ctx)
	case group.FieldUpdateTime:
		return m.OldUpdateTime(ctx)
	case group.FieldChatID:
		return m.OldChatID(ctx)
	case group.FieldTitle:
		return m.OldTitle(ctx)
	case group.FieldEnabled:
		return m.OldEnabled(ctx)
	case group.FieldAPIKeyCipher:
		return m.OldAPIKeyCipher(ctx)
	}
	return nil, fmt.Errorf("unknown Group field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupMutation) SetField(name string, value ent.Value) error {
	switch name {
	case group.FieldCreateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTime(v)
		return nil
	case group.FieldUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateTime(v)
		return nil
	case group.FieldChatID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case group.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case group.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case group.FieldAPIKeyCipher:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAPIKeyCipher(v)
		return nil
	}
	return fmt.Errorf("unknown Group field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GroupMutation) AddedFields() []string {
	var fields []string
	if m.addchat_id != nil {
		fields = append(fields, group.FieldChatID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GroupMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case group.FieldChatID:
		return m.AddedChatID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupMutation) AddField(name string, value ent.Value) error {
	switch name {
	case group.FieldChatID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChatID(v)
		return nil
	}
	return fmt.Errorf("unknown Group numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GroupMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(group.FieldTitle) {
		fields = append(fields, group.FieldTitle)
	}
	if m.FieldCleared(group.FieldAPIKeyCipher) {
		fields = append(fields, group.FieldAPIKeyCipher)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GroupMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GroupMutation) ClearField(name string) error {
	switch name {
	case group.FieldTitle:
		m.ClearTitle()
		return nil
	case group.FieldAPIKeyCipher:
		m.ClearAPIKeyCipher()
		return nil
	}
	return fmt.Errorf("unknown Group nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GroupMutation) ResetField(name string) error {
	switch name {
	case group.FieldCreateTime:
		m.ResetCreateTime()
		return nil
	case group.FieldUpdateTime:
		m.ResetUpdateTime()
		return nil
	case group.FieldChatID:
		m.ResetChatID()
		return nil
	case group.FieldTitle:
		m.ResetTitle()
		return nil
	case group.FieldEnabled:
		m.ResetEnabled()
		return nil
	case group.FieldAPIKeyCipher:
		m.ResetAPIKeyCipher()
		return nil
	}
	return fmt.Errorf("unknown Group field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GroupMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GroupMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GroupMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GroupMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GroupMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GroupMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GroupMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Group unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GroupMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Group edge %s", name)
}

// GroupSettingsMutation represents an operation that mutates the GroupSettings nodes in the graph.
type GroupSettingsMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	create_time          *time.Time
	update_time          *time.Time
	chat_id              *int64
	addchat_id           *int64
	style                *groupsettings.Style
	custom_prompt        *string
	exclude_bots         *bool
	exclude_commands     *bool
	excluded_users       *[]int64
	appendexcluded_users []int64
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*GroupSettings, error)
	predicates           []predicate.GroupSettings
}

var _ ent.Mutation = (*GroupSettingsMutation)(nil)

// groupsettingsOption allows management of the mutation configuration using functional options.
type groupsettingsOption func(*GroupSettingsMutation)

// newGroupSettingsMutation creates new mutation for the GroupSettings entity.
func newGroupSettingsMutation(c config, op Op, opts ...groupsettingsOption) *GroupSettingsMutation {
	m := &GroupSettingsMutation{
		config:        c,
		op:            op,
		typ:           TypeGroupSettings,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGroupSettingsID sets the ID field of the mutation.
func withGroupSettingsID(id int) groupsettingsOption {
	return func(m *GroupSettingsMutation) {
		var (
			err   error
			once  sync.Once
			value *GroupSettings
		)
		m.oldValue = func(ctx context.Context) (*GroupSettings, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GroupSettings.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGroupSettings sets the old GroupSettings of the mutation.
func withGroupSettings(node *GroupSettings) groupsettingsOption {
	return func(m *GroupSettingsMutation) {
		m.oldValue = func(context.Context) (*GroupSettings, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GroupSettingsMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GroupSettingsMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GroupSettingsMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GroupSettingsMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GroupSettings.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreateTime sets the "create_time" field.
func (m *GroupSettingsMutation) SetCreateTime(t time.Time) {
	m.create_time = &t
}

// CreateTime returns the value of the "create_time" field in the mutation.
func (m *GroupSettingsMutation) CreateTime() (r time.Time, exists bool) {
	v := m.create_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTime returns the old "create_time" field's value of the GroupSettings entity.
// If the GroupSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupSettingsMutation) OldCreateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTime: %w", err)
	}
	return oldValue.CreateTime, nil
}

// ResetCreateTime resets all changes to the "create_time" field.
func (m *GroupSettingsMutation) ResetCreateTime() {
	m.create_time = nil
}

// SetUpdateTime sets the "update_time" field.
func (m *GroupSettingsMutation) SetUpdateTime(t time.Time) {
	m.update_time = &t
}

// UpdateTime returns the value of the "update_time" field in the mutation.
func (m *GroupSettingsMutation) UpdateTime() (r time.Time, exists bool) {
	v := m.update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateTime returns the old "update_time" field's value of the GroupSettings entity.
// If the GroupSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupSettingsMutation) OldUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateTime: %w", err)
	}
	return oldValue.UpdateTime, nil
}

// ResetUpdateTime resets all changes to the "update_time" field.
func (m *GroupSettingsMutation) ResetUpdateTime() {
	m.update_time = nil
}

// SetChatID sets the "chat_id" field.
func (m *GroupSettingsMutation) SetChatID(i int64) {
	m.chat_id = &i
	m.addchat_id = nil
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *GroupSettingsMutation) ChatID() (r int64, exists bool) {
	v := m.chat_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the GroupSettings entity.
// If the GroupSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupSettingsMutation) OldChatID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// AddChatID adds i to the "chat_id" field.
func (m *GroupSettingsMutation) AddChatID(i int64) {
	if m.addchat_id != nil {
		*m.addchat_id += i
	} else {
		m.addchat_id = &i
	}
}

// AddedChatID returns the value that was added to the "chat_id" field in this mutation.
func (m *GroupSettingsMutation) AddedChatID() (r int64, exists bool) {
	v := m.addchat_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *GroupSettingsMutation) ResetChatID() {
	m.chat_id = nil
	m.addchat_id = nil
}

// SetStyle sets the "style" field.
func (m *GroupSettingsMutation) SetStyle(gr groupsettings.Style) {
	m.style = &gr
}

// Style returns the value of the "style" field in the mutation.
func (m *GroupSettingsMutation) Style() (r groupsettings.Style, exists bool) {
	v := m.style
	if v == nil {
		return
	}
	return *v, true
}

// OldStyle returns the old "style" field's value of the GroupSettings entity.
// If the GroupSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupSettingsMutation) OldStyle(ctx context.Context) (v groupsettings.Style, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStyle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStyle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStyle: %w", err)
	}
	return oldValue.Style, nil
}

// ResetStyle resets all changes to the "style" field.
func (m *GroupSettingsMutation) ResetStyle() {
	m.style = nil
}

// SetCustomPrompt sets the "custom_prompt" field.
func (m *GroupSettingsMutation) SetCustomPrompt(s string) {
	m.custom_prompt = &s
}

// CustomPrompt returns the value of the "custom_prompt" field in the mutation.
func (m *GroupSettingsMutation) CustomPrompt() (r string, exists bool) {
	v := m.custom_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomPrompt returns the old "custom_prompt" field's value of the GroupSettings entity.
// If the GroupSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupSettingsMutation) OldCustomPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomPrompt: %w", err)
	}
	return oldValue.CustomPrompt, nil
}

// ClearCustomPrompt clears the value of the "custom_prompt" field.
func (m *GroupSettingsMutation) ClearCustomPrompt() {
	m.custom_prompt = nil
	m.clearedFields[groupsettings.FieldCustomPrompt] = struct{}{}
}

// CustomPromptCleared returns if the "custom_prompt" field was cleared in this mutation.
func (m *GroupSettingsMutation) CustomPromptCleared() bool {
	_, ok := m.clearedFields[groupsettings.FieldCustomPrompt]
	return ok
}

// ResetCustomPrompt resets all changes to the "custom_prompt" field.
func (m *GroupSettingsMutation) ResetCustomPrompt() {
	m.custom_prompt = nil
	delete(m.clearedFields, groupsettings.FieldCustomPrompt)
}

// SetExcludeBots sets the "exclude_bots" field.
func (m *GroupSettingsMutation) SetExcludeBots(b bool) {
	m.exclude_bots = &b
}

// ExcludeBots returns the value of the "exclude_bots" field in the mutation.
func (m *GroupSettingsMutation) ExcludeBots() (r bool, exists bool) {
	v := m.exclude_bots
	if v == nil {
		return
	}
	return *v, true
}

// OldExcludeBots returns the old "exclude_bots" field's value of the GroupSettings entity.
// If the GroupSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupSettingsMutation) OldExcludeBots(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExcludeBots is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExcludeBots requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExcludeBots: %w", err)
	}
	return oldValue.ExcludeBots, nil
}

// ResetExcludeBots resets all changes to the "exclude_bots" field.
func (m *GroupSettingsMutation) ResetExcludeBots() {
	m.exclude_bots = nil
}

// SetExcludeCommands sets the "exclude_commands" field.
func (m *GroupSettingsMutation) SetExcludeCommands(b bool) {
	m.exclude_commands = &b
}

// ExcludeCommands returns the value of the "exclude_commands" field in the mutation.
func (m *GroupSettingsMutation) ExcludeCommands() (r bool, exists bool) {
	v := m.exclude_commands
	if v == nil {
		return
	}
	return *v, true
}

// OldExcludeCommands returns the old "exclude_commands" field's value of the GroupSettings entity.
// If the GroupSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupSettingsMutation) OldExcludeCommands(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExcludeCommands is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExcludeCommands requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExcludeCommands: %w", err)
	}
	return oldValue.ExcludeCommands, nil
}

// ResetExcludeCommands resets all changes to the "exclude_commands" field.
func (m *GroupSettingsMutation) ResetExcludeCommands() {
	m.exclude_commands = nil
}

// SetExcludedUsers sets the "excluded_users" field.
func (m *GroupSettingsMutation) SetExcludedUsers(i []int64) {
	m.excluded_users = &i
	m.appendexcluded_users = nil
}

// ExcludedUsers returns the value of the "excluded_users" field in the mutation.
func (m *GroupSettingsMutation) ExcludedUsers() (r []int64, exists bool) {
	v := m.excluded_users
	if v == nil {
		return
	}
	return *v, true
}

// OldExcludedUsers returns the old "excluded_users" field's value of the GroupSettings entity.
// If the GroupSettings object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupSettingsMutation) OldExcludedUsers(ctx context.Context) (v []int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExcludedUsers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExcludedUsers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExcludedUsers: %w", err)
	}
	return oldValue.ExcludedUsers, nil
}

// AppendExcludedUsers adds i to the "excluded_users" field.
func (m *GroupSettingsMutation) AppendExcludedUsers(i []int64) {
	m.appendexcluded_users = append(m.appendexcluded_users, i...)
}

// AppendedExcludedUsers returns the list of values that were appended to the "excluded_users" field in this mutation.
func (m *GroupSettingsMutation) AppendedExcludedUsers() ([]int64, bool) {
	if len(m.appendexcluded_users) == 0 {
		return nil, false
	}
	return m.appendexcluded_users, true
}

// ClearExcludedUsers clears the value of the "excluded_users" field.
func (m *GroupSettingsMutation) ClearExcludedUsers() {
	m.excluded_users = nil
	m.appendexcluded_users = nil
	m.clearedFields[groupsettings.FieldExcludedUsers] = struct{}{}
}

// ExcludedUsersCleared returns if the "excluded_users" field was cleared in this mutation.
func (m *GroupSettingsMutation) ExcludedUsersCleared() bool {
	_, ok := m.clearedFields[groupsettings.FieldExcludedUsers]
	return ok
}

// ResetExcludedUsers resets all changes to the "excluded_users" field.
func (m *GroupSettingsMutation) ResetExcludedUsers() {
	m.excluded_users = nil
	m.appendexcluded_users = nil
	delete(m.clearedFields, groupsettings.FieldExcludedUsers)
}

// Where appends a list predicates to the GroupSettingsMutation builder.
func (m *GroupSettingsMutation) Where(ps ...predicate.GroupSettings) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GroupSettingsMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GroupSettingsMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GroupSettings, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GroupSettingsMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GroupSettingsMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GroupSettings).
func (m *GroupSettingsMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GroupSettingsMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.create_time != nil {
		fields = append(fields, groupsettings.FieldCreateTime)
	}
	if m.update_time != nil {
		fields = append(fields, groupsettings.FieldUpdateTime)
	}
	if m.chat_id != nil {
		fields = append(fields, groupsettings.FieldChatID)
	}
	if m.style != nil {
		fields = append(fields, groupsettings.FieldStyle)
	}
	if m.custom_prompt != nil {
		fields = append(fields, groupsettings.FieldCustomPrompt)
	}
	if m.exclude_bots != nil {
		fields = append(fields, groupsettings.FieldExcludeBots)
	}
	if m.exclude_commands != nil {
		fields = append(fields, groupsettings.FieldExcludeCommands)
	}
	if m.excluded_users != nil {
		fields = append(fields, groupsettings.FieldExcludedUsers)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GroupSettingsMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case groupsettings.FieldCreateTime:
		return m.CreateTime()
	case groupsettings.FieldUpdateTime:
		return m.UpdateTime()
	case groupsettings.FieldChatID:
		return m.ChatID()
	case groupsettings.FieldStyle:
		return m.Style()
	case groupsettings.FieldCustomPrompt:
		return m.CustomPrompt()
	case groupsettings.FieldExcludeBots:
		return m.ExcludeBots()
	case groupsettings.FieldExcludeCommands:
		return m.ExcludeCommands()
	case groupsettings.FieldExcludedUsers:
		return m.ExcludedUsers()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GroupSettingsMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case groupsettings.FieldCreateTime:
		return m.OldCreateTime(ctx)
	case groupsettings.FieldUpdateTime:
		return m.OldUpdateTime(ctx)
	case groupsettings.FieldChatID:
		return m.OldChatID(ctx)
	case groupsettings.FieldStyle:
		return m.OldStyle(ctx)
	case groupsettings.FieldCustomPrompt:
		return m.OldCustomPrompt(ctx)
	case groupsettings.FieldExcludeBots:
		return m.OldExcludeBots(ctx)
	case groupsettings.FieldExcludeCommands:
		return m.OldExcludeCommands(ctx)
	case groupsettings.FieldExcludedUsers:
		return m.OldExcludedUsers(ctx)
	}
	return nil, fmt.Errorf("unknown GroupSettings field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupSettingsMutation) SetField(name string, value ent.Value) error {
	switch name {
	case groupsettings.FieldCreateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTime(v)
		return nil
	case groupsettings.FieldUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateTime(v)
		return nil
	case groupsettings.FieldChatID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case groupsettings.FieldStyle:
		v, ok := value.(groupsettings.Style)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStyle(v)
		return nil
	case groupsettings.FieldCustomPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomPrompt(v)
		return nil
	case groupsettings.FieldExcludeBots:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExcludeBots(v)
		return nil
	case groupsettings.FieldExcludeCommands:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExcludeCommands(v)
		return nil
	case groupsettings.FieldExcludedUsers:
		v, ok := value.([]int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExcludedUsers(v)
		return nil
	}
	return fmt.Errorf("unknown GroupSettings field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GroupSettingsMutation) AddedFields() []string {
	var fields []string
	if m.addchat_id != nil {
		fields = append(fields, groupsettings.FieldChatID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GroupSettingsMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case groupsettings.FieldChatID:
		return m.AddedChatID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupSettingsMutation) AddField(name string, value ent.Value) error {
	switch name {
	case groupsettings.FieldChatID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChatID(v)
		return nil
	}
	return fmt.Errorf("unknown GroupSettings numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GroupSettingsMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(groupsettings.FieldCustomPrompt) {
		fields = append(fields, groupsettings.FieldCustomPrompt)
	}
	if m.FieldCleared(groupsettings.FieldExcludedUsers) {
		fields = append(fields, groupsettings.FieldExcludedUsers)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GroupSettingsMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GroupSettingsMutation) ClearField(name string) error {
	switch name {
	case groupsettings.FieldCustomPrompt:
		m.ClearCustomPrompt()
		return nil
	case groupsettings.FieldExcludedUsers:
		m.ClearExcludedUsers()
		return nil
	}
	return fmt.Errorf("unknown GroupSettings nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GroupSettingsMutation) ResetField(name string) error {
	switch name {
	case groupsettings.FieldCreateTime:
		m.ResetCreateTime()
		return nil
	case groupsettings.FieldUpdateTime:
		m.ResetUpdateTime()
		return nil
	case groupsettings.FieldChatID:
		m.ResetChatID()
		return nil
	case groupsettings.FieldStyle:
		m.ResetStyle()
		return nil
	case groupsettings.FieldCustomPrompt:
		m.ResetCustomPrompt()
		return nil
	case groupsettings.FieldExcludeBots:
		m.ResetExcludeBots()
		return nil
	case groupsettings.FieldExcludeCommands:
		m.ResetExcludeCommands()
		return nil
	case groupsettings.FieldExcludedUsers:
		m.ResetExcludedUsers()
		return nil
	}
	return fmt.Errorf("unknown GroupSettings field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GroupSettingsMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GroupSettingsMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GroupSettingsMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GroupSettingsMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GroupSettingsMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GroupSettingsMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GroupSettingsMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GroupSettings unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GroupSettingsMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GroupSettings edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op              Op
	typ             string
	id              *int
	create_time     *time.Time
	update_time     *time.Time
	message_id      *int64
	addmessage_id   *int64
	chat_id         *int64
	addchat_id      *int64
	sender_id       *int64
	addsender_id    *int64
	sender_name     *string
	sender_username *string
	text            *string
	sent_at         *time.Time
	is_bot          *bool
	is_channel_post *bool
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Message, error)
	predicates      []predicate.Message
}

var _ ent.Mutation = (*MessageMutation)(nil)

// messageOption allows management of the mutation configuration using functional options.
type messageOption func(*MessageMutation)

// newMessageMutation creates new mutation for the Message entity.
func newMessageMutation(c config, op Op, opts ...messageOption) *MessageMutation {
	m := &MessageMutation{
		config:        c,
		op:            op,
		typ:           TypeMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageID sets the ID field of the mutation.
func withMessageID(id int) messageOption {
	return func(m *MessageMutation) {
		var (
			err   error
			once  sync.Once
			value *Message
		)
		m.oldValue = func(ctx context.Context) (*Message, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Message.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessage sets the old Message of the mutation.
func withMessage(node *Message) messageOption {
	return func(m *MessageMutation) {
		m.oldValue = func(context.Context) (*Message, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreateTime sets the "create_time" field.
func (m *MessageMutation) SetCreateTime(t time.Time) {
	m.create_time = &t
}

// CreateTime returns the value of the "create_time" field in the mutation.
func (m *MessageMutation) CreateTime() (r time.Time, exists bool) {
	v := m.create_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTime returns the old "create_time" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldCreateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTime: %w", err)
	}
	return oldValue.CreateTime, nil
}

// ResetCreateTime resets all changes to the "create_time" field.
func (m *MessageMutation) ResetCreateTime() {
	m.create_time = nil
}

// SetUpdateTime sets the "update_time" field.
func (m *MessageMutation) SetUpdateTime(t time.Time) {
	m.update_time = &t
}

// UpdateTime returns the value of the "update_time" field in the mutation.
func (m *MessageMutation) UpdateTime() (r time.Time, exists bool) {
	v := m.update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateTime returns the old "update_time" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateTime: %w", err)
	}
	return oldValue.UpdateTime, nil
}

// ResetUpdateTime resets all changes to the "update_time" field.
func (m *MessageMutation) ResetUpdateTime() {
	m.update_time = nil
}

// SetMessageID sets the "message_id" field.
func (m *MessageMutation) SetMessageID(i int64) {
	m.message_id = &i
	m.addmessage_id = nil
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *MessageMutation) MessageID() (r int64, exists bool) {
	v := m.message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldMessageID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// AddMessageID adds i to the "message_id" field.
func (m *MessageMutation) AddMessageID(i int64) {
	if m.addmessage_id != nil {
		*m.addmessage_id += i
	} else {
		m.addmessage_id = &i
	}
}

// AddedMessageID returns the value that was added to the "message_id" field in this mutation.
func (m *MessageMutation) AddedMessageID() (r int64, exists bool) {
	v := m.addmessage_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *MessageMutation) ResetMessageID() {
	m.message_id = nil
	m.addmessage_id = nil
}

// SetChatID sets the "chat_id" field.
func (m *MessageMutation) SetChatID(i int64) {
	m.chat_id = &i
	m.addchat_id = nil
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *MessageMutation) ChatID() (r int64, exists bool) {
	v := m.chat_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldChatID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// AddChatID adds i to the "chat_id" field.
func (m *MessageMutation) AddChatID(i int64) {
	if m.addchat_id != nil {
		*m.addchat_id += i
	} else {
		m.addchat_id = &i
	}
}

// AddedChatID returns the value that was added to the "chat_id" field in this mutation.
func (m *MessageMutation) AddedChatID() (r int64, exists bool) {
	v := m.addchat_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *MessageMutation) ResetChatID() {
	m.chat_id = nil
	m.addchat_id = nil
}

// SetSenderID sets the "sender_id" field.
func (m *MessageMutation) SetSenderID(i int64) {
	m.sender_id = &i
	m.addsender_id = nil
}

// SenderID returns the value of the "sender_id" field in the mutation.
func (m *MessageMutation) SenderID() (r int64, exists bool) {
	v := m.sender_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderID returns the old "sender_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSenderID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderID: %w", err)
	}
	return oldValue.SenderID, nil
}

// AddSenderID adds i to the "sender_id" field.
func (m *MessageMutation) AddSenderID(i int64) {
	if m.addsender_id != nil {
		*m.addsender_id += i
	} else {
		m.addsender_id = &i
	}
}

// AddedSenderID returns the value that was added to the "sender_id" field in this mutation.
func (m *MessageMutation) AddedSenderID() (r int64, exists bool) {
	v := m.addsender_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetSenderID resets all changes to the "sender_id" field.
func (m *MessageMutation) ResetSenderID() {
	m.sender_id = nil
	m.addsender_id = nil
}

// SetSenderName sets the "sender_name" field.
func (m *MessageMutation) SetSenderName(s string) {
	m.sender_name = &s
}

// SenderName returns the value of the "sender_name" field in the mutation.
func (m *MessageMutation) SenderName() (r string, exists bool) {
	v := m.sender_name
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderName returns the old "sender_name" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSenderName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderName: %w", err)
	}
	return oldValue.SenderName, nil
}

// ResetSenderName resets all changes to the "sender_name" field.
func (m *MessageMutation) ResetSenderName() {
	m.sender_name = nil
}

// SetSenderUsername sets the "sender_username" field.
func (m *MessageMutation) SetSenderUsername(s string) {
	m.sender_username = &s
}

// SenderUsername returns the value of the "sender_username" field in the mutation.
func (m *MessageMutation) SenderUsername() (r string, exists bool) {
	v := m.sender_username
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderUsername returns the old "sender_username" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSenderUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderUsername: %w", err)
	}
	return oldValue.SenderUsername, nil
}

// ClearSenderUsername clears the value of the "sender_username" field.
func (m *MessageMutation) ClearSenderUsername() {
	m.sender_username = nil
	m.clearedFields[message.FieldSenderUsername] = struct{}{}
}

// SenderUsernameCleared returns if the "sender_username" field was cleared in this mutation.
func (m *MessageMutation) SenderUsernameCleared() bool {
	_, ok := m.clearedFields[message.FieldSenderUsername]
	return ok
}

// ResetSenderUsername resets all changes to the "sender_username" field.
func (m *MessageMutation) ResetSenderUsername() {
	m.sender_username = nil
	delete(m.clearedFields, message.FieldSenderUsername)
}

// SetText sets the "text" field.
func (m *MessageMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *MessageMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *MessageMutation) ResetText() {
	m.text = nil
}

// SetSentAt sets the "sent_at" field.
func (m *MessageMutation) SetSentAt(t time.Time) {
	m.sent_at = &t
}

// SentAt returns the value of the "sent_at" field in the mutation.
func (m *MessageMutation) SentAt() (r time.Time, exists bool) {
	v := m.sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSentAt returns the old "sent_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSentAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentAt: %w", err)
	}
	return oldValue.SentAt, nil
}

// ResetSentAt resets all changes to the "sent_at" field.
func (m *MessageMutation) ResetSentAt() {
	m.sent_at = nil
}

// SetIsBot sets the "is_bot" field.
func (m *MessageMutation) SetIsBot(b bool) {
	m.is_bot = &b
}

// IsBot returns the value of the "is_bot" field in the mutation.
func (m *MessageMutation) IsBot() (r bool, exists bool) {
	v := m.is_bot
	if v == nil {
		return
	}
	return *v, true
}

// OldIsBot returns the old "is_bot" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldIsBot(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsBot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsBot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsBot: %w", err)
	}
	return oldValue.IsBot, nil
}

// ResetIsBot resets all changes to the "is_bot" field.
func (m *MessageMutation) ResetIsBot() {
	m.is_bot = nil
}

// SetIsChannelPost sets the "is_channel_post" field.
func (m *MessageMutation) SetIsChannelPost(b bool) {
	m.is_channel_post = &b
}

// IsChannelPost returns the value of the "is_channel_post" field in the mutation.
func (m *MessageMutation) IsChannelPost() (r bool, exists bool) {
	v := m.is_channel_post
	if v == nil {
		return
	}
	return *v, true
}

// OldIsChannelPost returns the old "is_channel_post" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldIsChannelPost(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsChannelPost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsChannelPost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsChannelPost: %w", err)
	}
	return oldValue.IsChannelPost, nil
}

// ResetIsChannelPost resets all changes to the "is_channel_post" field.
func (m *MessageMutation) ResetIsChannelPost() {
	m.is_channel_post = nil
}

// Where appends a list predicates to the MessageMutation builder.
func (m *MessageMutation) Where(ps ...predicate.Message) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Message, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Message).
func (m *MessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.create_time != nil {
		fields = append(fields, message.FieldCreateTime)
	}
	if m.update_time != nil {
		fields = append(fields, message.FieldUpdateTime)
	}
	if m.message_id != nil {
		fields = append(fields, message.FieldMessageID)
	}
	if m.chat_id != nil {
		fields = append(fields, message.FieldChatID)
	}
	if m.sender_id != nil {
		fields = append(fields, message.FieldSenderID)
	}
	if m.sender_name != nil {
		fields = append(fields, message.FieldSenderName)
	}
	if m.sender_username != nil {
		fields = append(fields, message.FieldSenderUsername)
	}
	if m.text != nil {
		fields = append(fields, message.FieldText)
	}
	if m.sent_at != nil {
		fields = append(fields, message.FieldSentAt)
	}
	if m.is_bot != nil {
		fields = append(fields, message.FieldIsBot)
	}
	if m.is_channel_post != nil {
		fields = append(fields, message.FieldIsChannelPost)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case message.FieldCreateTime:
		return m.CreateTime()
	case message.FieldUpdateTime:
		return m.UpdateTime()
	case message.FieldMessageID:
		return m.MessageID()
	case message.FieldChatID:
		return m.ChatID()
	case message.FieldSenderID:
		return m.SenderID()
	case message.FieldSenderName:
		return m.SenderName()
	case message.FieldSenderUsername:
		return m.SenderUsername()
	case message.FieldText:
		return m.Text()
	case message.FieldSentAt:
		return m.SentAt()
	case message.FieldIsBot:
		return m.IsBot()
	case message.FieldIsChannelPost:
		return m.IsChannelPost()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case message.FieldCreateTime:
		return m.OldCreateTime(ctx)
	case message.FieldUpdateTime:
		return m.OldUpdateTime(ctx)
	case message.FieldMessageID:
		return m.OldMessageID(ctx)
	case message.FieldChatID:
		return m.OldChatID(ctx)
	case message.FieldSenderID:
		return m.OldSenderID(ctx)
	case message.FieldSenderName:
		return m.OldSenderName(ctx)
	case message.FieldSenderUsername:
		return m.OldSenderUsername(ctx)
	case message.FieldText:
		return m.OldText(ctx)
	case message.FieldSentAt:
		return m.OldSentAt(ctx)
	case message.FieldIsBot:
		return m.OldIsBot(ctx)
	case message.FieldIsChannelPost:
		return m.OldIsChannelPost(ctx)
	}
	return nil, fmt.Errorf("unknown Message field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case message.FieldCreateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTime(v)
		return nil
	case message.FieldUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateTime(v)
		return nil
	case message.FieldMessageID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case message.FieldChatID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case message.FieldSenderID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderID(v)
		return nil
	case message.FieldSenderName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderName(v)
		return nil
	case message.FieldSenderUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderUsername(v)
		return nil
	case message.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case message.FieldSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentAt(v)
		return nil
	case message.FieldIsBot:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsBot(v)
		return nil
	case message.FieldIsChannelPost:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsChannelPost(v)
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageMutation) AddedFields() []string {
	var fields []string
	if m.addmessage_id != nil {
		fields = append(fields, message.FieldMessageID)
	}
	if m.addchat_id != nil {
		fields = append(fields, message.FieldChatID)
	}
	if m.addsender_id != nil {
		fields = append(fields, message.FieldSenderID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case message.FieldMessageID:
		return m.AddedMessageID()
	case message.FieldChatID:
		return m.AddedChatID()
	case message.FieldSenderID:
		return m.AddedSenderID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case message.FieldMessageID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMessageID(v)
		return nil
	case message.FieldChatID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChatID(v)
		return nil
	case message.FieldSenderID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSenderID(v)
		return nil
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(message.FieldSenderUsername) {
		fields = append(fields, message.FieldSenderUsername)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageMutation) ClearField(name string) error {
	switch name {
	case message.FieldSenderUsername:
		m.ClearSenderUsername()
		return nil
	}
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldCreateTime:
		m.ResetCreateTime()
		return nil
	case message.FieldUpdateTime:
		m.ResetUpdateTime()
		return nil
	case message.FieldMessageID:
		m.ResetMessageID()
		return nil
	case message.FieldChatID:
		m.ResetChatID()
		return nil
	case message.FieldSenderID:
		m.ResetSenderID()
		return nil
	case message.FieldSenderName:
		m.ResetSenderName()
		return nil
	case message.FieldSenderUsername:
		m.ResetSenderUsername()
		return nil
	case message.FieldText:
		m.ResetText()
		return nil
	case message.FieldSentAt:
		m.ResetSentAt()
		return nil
	case message.FieldIsBot:
		m.ResetIsBot()
		return nil
	case message.FieldIsChannelPost:
		m.ResetIsChannelPost()
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Message edge %s", name)
}

// SummaryRecordMutation represents an operation that mutates the SummaryRecord nodes in the graph.
type SummaryRecordMutation struct {
	config
	op               Op
	typ              string
	id               *int
	create_time      *time.Time
	update_time      *time.Time
	chat_id          *int64
	addchat_id       *int64
	requested_by     *int64
	addrequested_by  *int64
	range_label      *string
	style            *string
	message_count    *int
	addmessage_count *int
	content          *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*SummaryRecord, error)
	predicates       []predicate.SummaryRecord
}

var _ ent.Mutation = (*SummaryRecordMutation)(nil)

// summaryrecordOption allows management of the mutation configuration using functional options.
type summaryrecordOption func(*SummaryRecordMutation)

// newSummaryRecordMutation creates new mutation for the SummaryRecord entity.
func newSummaryRecordMutation(c config, op Op, opts ...summaryrecordOption) *SummaryRecordMutation {
	m := &SummaryRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeSummaryRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSummaryRecordID sets the ID field of the mutation.
func withSummaryRecordID(id int) summaryrecordOption {
	return func(m *SummaryRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *SummaryRecord
		)
		m.oldValue = func(ctx context.Context) (*SummaryRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SummaryRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSummaryRecord sets the old SummaryRecord of the mutation.
func withSummaryRecord(node *SummaryRecord) summaryrecordOption {
	return func(m *SummaryRecordMutation) {
		m.oldValue = func(context.Context) (*SummaryRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SummaryRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SummaryRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SummaryRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SummaryRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SummaryRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreateTime sets the "create_time" field.
func (m *SummaryRecordMutation) SetCreateTime(t time.Time) {
	m.create_time = &t
}

// CreateTime returns the value of the "create_time" field in the mutation.
func (m *SummaryRecordMutation) CreateTime() (r time.Time, exists bool) {
	v := m.create_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCreateTime returns the old "create_time" field's value of the SummaryRecord entity.
// If the SummaryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryRecordMutation) OldCreateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreateTime: %w", err)
	}
	return oldValue.CreateTime, nil
}

// ResetCreateTime resets all changes to the "create_time" field.
func (m *SummaryRecordMutation) ResetCreateTime() {
	m.create_time = nil
}

// SetUpdateTime sets the "update_time" field.
func (m *SummaryRecordMutation) SetUpdateTime(t time.Time) {
	m.update_time = &t
}

// UpdateTime returns the value of the "update_time" field in the mutation.
func (m *SummaryRecordMutation) UpdateTime() (r time.Time, exists bool) {
	v := m.update_time
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdateTime returns the old "update_time" field's value of the SummaryRecord entity.
// If the SummaryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryRecordMutation) OldUpdateTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdateTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdateTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdateTime: %w", err)
	}
	return oldValue.UpdateTime, nil
}

// ResetUpdateTime resets all changes to the "update_time" field.
func (m *SummaryRecordMutation) ResetUpdateTime() {
	m.update_time = nil
}

// SetChatID sets the "chat_id" field.
func (m *SummaryRecordMutation) SetChatID(i int64) {
	m.chat_id = &i
	m.addchat_id = nil
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *SummaryRecordMutation) ChatID() (r int64, exists bool) {
	v := m.chat_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the SummaryRecord entity.
// If the SummaryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryRecordMutation) OldChatID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// AddChatID adds i to the "chat_id" field.
func (m *SummaryRecordMutation) AddChatID(i int64) {
	if m.addchat_id != nil {
		*m.addchat_id += i
	} else {
		m.addchat_id = &i
	}
}

// AddedChatID returns the value that was added to the "chat_id" field in this mutation.
func (m *SummaryRecordMutation) AddedChatID() (r int64, exists bool) {
	v := m.addchat_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *SummaryRecordMutation) ResetChatID() {
	m.chat_id = nil
	m.addchat_id = nil
}

// SetRequestedBy sets the "requested_by" field.
func (m *SummaryRecordMutation) SetRequestedBy(i int64) {
	m.requested_by = &i
	m.addrequested_by = nil
}

// RequestedBy returns the value of the "requested_by" field in the mutation.
func (m *SummaryRecordMutation) RequestedBy() (r int64, exists bool) {
	v := m.requested_by
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedBy returns the old "requested_by" field's value of the SummaryRecord entity.
// If the SummaryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryRecordMutation) OldRequestedBy(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedBy: %w", err)
	}
	return oldValue.RequestedBy, nil
}

// AddRequestedBy adds i to the "requested_by" field.
func (m *SummaryRecordMutation) AddRequestedBy(i int64) {
	if m.addrequested_by != nil {
		*m.addrequested_by += i
	} else {
		m.addrequested_by = &i
	}
}

// AddedRequestedBy returns the value that was added to the "requested_by" field in this mutation.
func (m *SummaryRecordMutation) AddedRequestedBy() (r int64, exists bool) {
	v := m.addrequested_by
	if v == nil {
		return
	}
	return *v, true
}

// ResetRequestedBy resets all changes to the "requested_by" field.
func (m *SummaryRecordMutation) ResetRequestedBy() {
	m.requested_by = nil
	m.addrequested_by = nil
}

// SetRangeLabel sets the "range_label" field.
func (m *SummaryRecordMutation) SetRangeLabel(s string) {
	m.range_label = &s
}

// RangeLabel returns the value of the "range_label" field in the mutation.
func (m *SummaryRecordMutation) RangeLabel() (r string, exists bool) {
	v := m.range_label
	if v == nil {
		return
	}
	return *v, true
}

// OldRangeLabel returns the old "range_label" field's value of the SummaryRecord entity.
// If the SummaryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryRecordMutation) OldRangeLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRangeLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRangeLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRangeLabel: %w", err)
	}
	return oldValue.RangeLabel, nil
}

// ResetRangeLabel resets all changes to the "range_label" field.
func (m *SummaryRecordMutation) ResetRangeLabel() {
	m.range_label = nil
}

// SetStyle sets the "style" field.
func (m *SummaryRecordMutation) SetStyle(s string) {
	m.style = &s
}

// Style returns the value of the "style" field in the mutation.
func (m *SummaryRecordMutation) Style() (r string, exists bool) {
	v := m.style
	if v == nil {
		return
	}
	return *v, true
}

// OldStyle returns the old "style" field's value of the SummaryRecord entity.
// If the SummaryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryRecordMutation) OldStyle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStyle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStyle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStyle: %w", err)
	}
	return oldValue.Style, nil
}

// ResetStyle resets all changes to the "style" field.
func (m *SummaryRecordMutation) ResetStyle() {
	m.style = nil
}

// SetMessageCount sets the "message_count" field.
func (m *SummaryRecordMutation) SetMessageCount(i int) {
	m.message_count = &i
	m.addmessage_count = nil
}

// MessageCount returns the value of the "message_count" field in the mutation.
func (m *SummaryRecordMutation) MessageCount() (r int, exists bool) {
	v := m.message_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageCount returns the old "message_count" field's value of the SummaryRecord entity.
// If the SummaryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryRecordMutation) OldMessageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageCount: %w", err)
	}
	return oldValue.MessageCount, nil
}

// AddMessageCount adds i to the "message_count" field.
func (m *SummaryRecordMutation) AddMessageCount(i int) {
	if m.addmessage_count != nil {
		*m.addmessage_count += i
	} else {
		m.addmessage_count = &i
	}
}

// AddedMessageCount returns the value that was added to the "message_count" field in this mutation.
func (m *SummaryRecordMutation) AddedMessageCount() (r int, exists bool) {
	v := m.addmessage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMessageCount resets all changes to the "message_count" field.
func (m *SummaryRecordMutation) ResetMessageCount() {
	m.message_count = nil
	m.addmessage_count = nil
}

// SetContent sets the "content" field.
func (m *SummaryRecordMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *SummaryRecordMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the SummaryRecord entity.
// If the SummaryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryRecordMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *SummaryRecordMutation) ResetContent() {
	m.content = nil
}

// Where appends a list predicates to the SummaryRecordMutation builder.
func (m *SummaryRecordMutation) Where(ps ...predicate.SummaryRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SummaryRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SummaryRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SummaryRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SummaryRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SummaryRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SummaryRecord).
func (m *SummaryRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SummaryRecordMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.create_time != nil {
		fields = append(fields, summaryrecord.FieldCreateTime)
	}
	if m.update_time != nil {
		fields = append(fields, summaryrecord.FieldUpdateTime)
	}
	if m.chat_id != nil {
		fields = append(fields, summaryrecord.FieldChatID)
	}
	if m.requested_by != nil {
		fields = append(fields, summaryrecord.FieldRequestedBy)
	}
	if m.range_label != nil {
		fields = append(fields, summaryrecord.FieldRangeLabel)
	}
	if m.style != nil {
		fields = append(fields, summaryrecord.FieldStyle)
	}
	if m.message_count != nil {
		fields = append(fields, summaryrecord.FieldMessageCount)
	}
	if m.content != nil {
		fields = append(fields, summaryrecord.FieldContent)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SummaryRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case summaryrecord.FieldCreateTime:
		return m.CreateTime()
	case summaryrecord.FieldUpdateTime:
		return m.UpdateTime()
	case summaryrecord.FieldChatID:
		return m.ChatID()
	case summaryrecord.FieldRequestedBy:
		return m.RequestedBy()
	case summaryrecord.FieldRangeLabel:
		return m.RangeLabel()
	case summaryrecord.FieldStyle:
		return m.Style()
	case summaryrecord.FieldMessageCount:
		return m.MessageCount()
	case summaryrecord.FieldContent:
		return m.Content()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SummaryRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case summaryrecord.FieldCreateTime:
		return m.OldCreateTime(ctx)
	case summaryrecord.FieldUpdateTime:
		return m.OldUpdateTime(ctx)
	case summaryrecord.FieldChatID:
		return m.OldChatID(ctx)
	case summaryrecord.FieldRequestedBy:
		return m.OldRequestedBy(ctx)
	case summaryrecord.FieldRangeLabel:
		return m.OldRangeLabel(ctx)
	case summaryrecord.FieldStyle:
		return m.OldStyle(ctx)
	case summaryrecord.FieldMessageCount:
		return m.OldMessageCount(ctx)
	case summaryrecord.FieldContent:
		return m.OldContent(ctx)
	}
	return nil, fmt.Errorf("unknown SummaryRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SummaryRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case summaryrecord.FieldCreateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreateTime(v)
		return nil
	case summaryrecord.FieldUpdateTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdateTime(v)
		return nil
	case summaryrecord.FieldChatID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case summaryrecord.FieldRequestedBy:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedBy(v)
		return nil
	case summaryrecord.FieldRangeLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRangeLabel(v)
		return nil
	case summaryrecord.FieldStyle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStyle(v)
		return nil
	case summaryrecord.FieldMessageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageCount(v)
		return nil
	case summaryrecord.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	}
	return fmt.Errorf("unknown SummaryRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SummaryRecordMutation) AddedFields() []string {
	var fields []string
	if m.addchat_id != nil {
		fields = append(fields, summaryrecord.FieldChatID)
	}
	if m.addrequested_by != nil {
		fields = append(fields, summaryrecord.FieldRequestedBy)
	}
	if m.addmessage_count != nil {
		fields = append(fields, summaryrecord.FieldMessageCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SummaryRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case summaryrecord.FieldChatID:
		return m.AddedChatID()
	case summaryrecord.FieldRequestedBy:
		return m.AddedRequestedBy()
	case summaryrecord.FieldMessageCount:
		return m.AddedMessageCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SummaryRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case summaryrecord.FieldChatID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChatID(v)
		return nil
	case summaryrecord.FieldRequestedBy:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequestedBy(v)
		return nil
	case summaryrecord.FieldMessageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMessageCount(v)
		return nil
	}
	return fmt.Errorf("unknown SummaryRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SummaryRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SummaryRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SummaryRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SummaryRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SummaryRecordMutation) ResetField(name string) error {
	switch name {
	case summaryrecord.FieldCreateTime:
		m.ResetCreateTime()
		return nil
	case summaryrecord.FieldUpdateTime:
		m.ResetUpdateTime()
		return nil
	case summaryrecord.FieldChatID:
		m.ResetChatID()
		return nil
	case summaryrecord.FieldRequestedBy:
		m.ResetRequestedBy()
		return nil
	case summaryrecord.FieldRangeLabel:
		m.ResetRangeLabel()
		return nil
	case summaryrecord.FieldStyle:
		m.ResetStyle()
		return nil
	case summaryrecord.FieldMessageCount:
		m.ResetMessageCount()
		return nil
	case summaryrecord.FieldContent:
		m.ResetContent()
		return nil
	}
	return fmt.Errorf("unknown SummaryRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SummaryRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SummaryRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SummaryRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SummaryRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SummaryRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SummaryRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SummaryRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SummaryRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SummaryRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SummaryRecord edge %s", name)
}

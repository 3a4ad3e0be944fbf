// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/eslsoft/lingobot/internal/infrastructure/database/ent/confusionscore"
	"github.com/eslsoft/lingobot/internal/infrastructure/database/ent/page"
	"github.com/eslsoft/lingobot/internal/infrastructure/database/ent/predicate"
	"github.com/eslsoft/lingobot/internal/infrastructure/database/ent/relation"
	"github.com/eslsoft/lingobot/internal/infrastructure/database/ent/sentence"
	"github.com/eslsoft/lingobot/internal/infrastructure/database/ent/word"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeConfusionScore = "ConfusionScore"
	TypePage           = "Page"
	TypeRelation       = "Relation"
	TypeSentence       = "Sentence"
	TypeWord           = "Word"
)

// ConfusionScoreMutation represents an operation that mutates the ConfusionScore nodes in the graph.
type ConfusionScoreMutation struct {
	config
	op              Op
	typ             string
	id              *int
	word_low_id     *int64
	addword_low_id  *int64
	word_high_id    *int64
	addword_high_id *int64
	weight          *float64
	addweight       *float64
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ConfusionScore, error)
	predicates      []predicate.ConfusionScore
}

var _ ent.Mutation = (*ConfusionScoreMutation)(nil)

// confusionscoreOption allows management of the mutation configuration using functional options.
type confusionscoreOption func(*ConfusionScoreMutation)

// newConfusionScoreMutation creates new mutation for the ConfusionScore entity.
func newConfusionScoreMutation(c config, op Op, opts ...confusionscoreOption) *ConfusionScoreMutation {
	m := &ConfusionScoreMutation{
		config:        c,
		op:            op,
		typ:           TypeConfusionScore,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConfusionScoreID sets the ID field of the mutation.
func withConfusionScoreID(id int) confusionscoreOption {
	return func(m *ConfusionScoreMutation) {
		var (
			err   error
			once  sync.Once
			value *ConfusionScore
		)
		m.oldValue = func(ctx context.Context) (*ConfusionScore, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConfusionScore.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConfusionScore sets the old ConfusionScore of the mutation.
func withConfusionScore(node *ConfusionScore) confusionscoreOption {
	return func(m *ConfusionScoreMutation) {
		m.oldValue = func(context.Context) (*ConfusionScore, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConfusionScoreMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConfusionScoreMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConfusionScoreMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConfusionScoreMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConfusionScore.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWordLowID sets the "word_low_id" field.
func (m *ConfusionScoreMutation) SetWordLowID(i int64) {
	m.word_low_id = &i
	m.addword_low_id = nil
}

// WordLowID returns the value of the "word_low_id" field in the mutation.
func (m *ConfusionScoreMutation) WordLowID() (r int64, exists bool) {
	v := m.word_low_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWordLowID returns the old "word_low_id" field's value of the ConfusionScore entity.
// If the ConfusionScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfusionScoreMutation) OldWordLowID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWordLowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWordLowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWordLowID: %w", err)
	}
	return oldValue.WordLowID, nil
}

// AddWordLowID adds i to the "word_low_id" field.
func (m *ConfusionScoreMutation) AddWordLowID(i int64) {
	if m.addword_low_id != nil {
		*m.addword_low_id += i
	} else {
		m.addword_low_id = &i
	}
}

// AddedWordLowID returns the value that was added to the "word_low_id" field in this mutation.
func (m *ConfusionScoreMutation) AddedWordLowID() (r int64, exists bool) {
	v := m.addword_low_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetWordLowID resets all changes to the "word_low_id" field.
func (m *ConfusionScoreMutation) ResetWordLowID() {
	m.word_low_id = nil
	m.addword_low_id = nil
}

// SetWordHighID sets the "word_high_id" field.
func (m *ConfusionScoreMutation) SetWordHighID(i int64) {
	m.word_high_id = &i
	m.addword_high_id = nil
}

// WordHighID returns the value of the "word_high_id" field in the mutation.
func (m *ConfusionScoreMutation) WordHighID() (r int64, exists bool) {
	v := m.word_high_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWordHighID returns the old "word_high_id" field's value of the ConfusionScore entity.
// If the ConfusionScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfusionScoreMutation) OldWordHighID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWordHighID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWordHighID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWordHighID: %w", err)
	}
	return oldValue.WordHighID, nil
}

// AddWordHighID adds i to the "word_high_id" field.
func (m *ConfusionScoreMutation) AddWordHighID(i int64) {
	if m.addword_high_id != nil {
		*m.addword_high_id += i
	} else {
		m.addword_high_id = &i
	}
}

// AddedWordHighID returns the value that was added to the "word_high_id" field in this mutation.
func (m *ConfusionScoreMutation) AddedWordHighID() (r int64, exists bool) {
	v := m.addword_high_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetWordHighID resets all changes to the "word_high_id" field.
func (m *ConfusionScoreMutation) ResetWordHighID() {
	m.word_high_id = nil
	m.addword_high_id = nil
}

// SetWeight sets the "weight" field.
func (m *ConfusionScoreMutation) SetWeight(f float64) {
	m.weight = &f
	m.addweight = nil
}

// Weight returns the value of the "weight" field in the mutation.
func (m *ConfusionScoreMutation) Weight() (r float64, exists bool) {
	v := m.weight
	if v == nil {
		return
	}
	return *v, true
}

// OldWeight returns the old "weight" field's value of the ConfusionScore entity.
// If the ConfusionScore object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConfusionScoreMutation) OldWeight(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeight: %w", err)
	}
	return oldValue.Weight, nil
}

// AddWeight adds f to the "weight" field.
func (m *ConfusionScoreMutation) AddWeight(f float64) {
	if m.addweight != nil {
		*m.addweight += f
	} else {
		m.addweight = &f
	}
}

// AddedWeight returns the value that was added to the "weight" field in this mutation.
func (m *ConfusionScoreMutation) AddedWeight() (r float64, exists bool) {
	v := m.addweight
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeight resets all changes to the "weight" field.
func (m *ConfusionScoreMutation) ResetWeight() {
	m.weight = nil
	m.addweight = nil
}

// Where appends a list predicates to the ConfusionScoreMutation builder.
func (m *ConfusionScoreMutation) Where(ps ...predicate.ConfusionScore) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConfusionScoreMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConfusionScoreMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConfusionScore, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConfusionScoreMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConfusionScoreMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConfusionScore).
func (m *ConfusionScoreMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConfusionScoreMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.word_low_id != nil {
		fields = append(fields, confusionscore.FieldWordLowID)
	}
	if m.word_high_id != nil {
		fields = append(fields, confusionscore.FieldWordHighID)
	}
	if m.weight != nil {
		fields = append(fields, confusionscore.FieldWeight)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConfusionScoreMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case confusionscore.FieldWordLowID:
		return m.WordLowID()
	case confusionscore.FieldWordHighID:
		return m.WordHighID()
	case confusionscore.FieldWeight:
		return m.Weight()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConfusionScoreMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case confusionscore.FieldWordLowID:
		return m.OldWordLowID(ctx)
	case confusionscore.FieldWordHighID:
		return m.OldWordHighID(ctx)
	case confusionscore.FieldWeight:
		return m.OldWeight(ctx)
	}
	return nil, fmt.Errorf("unknown ConfusionScore field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConfusionScoreMutation) SetField(name string, value ent.Value) error {
	switch name {
	case confusionscore.FieldWordLowID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWordLowID(v)
		return nil
	case confusionscore.FieldWordHighID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWordHighID(v)
		return nil
	case confusionscore.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeight(v)
		return nil
	}
	return fmt.Errorf("unknown ConfusionScore field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConfusionScoreMutation) AddedFields() []string {
	var fields []string
	if m.addword_low_id != nil {
		fields = append(fields, confusionscore.FieldWordLowID)
	}
	if m.addword_high_id != nil {
		fields = append(fields, confusionscore.FieldWordHighID)
	}
	if m.addweight != nil {
		fields = append(fields, confusionscore.FieldWeight)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConfusionScoreMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case confusionscore.FieldWordLowID:
		return m.AddedWordLowID()
	case confusionscore.FieldWordHighID:
		return m.AddedWordHighID()
	case confusionscore.FieldWeight:
		return m.AddedWeight()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConfusionScoreMutation) AddField(name string, value ent.Value) error {
	switch name {
	case confusionscore.FieldWordLowID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWordLowID(v)
		return nil
	case confusionscore.FieldWordHighID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWordHighID(v)
		return nil
	case confusionscore.FieldWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeight(v)
		return nil
	}
	return fmt.Errorf("unknown ConfusionScore numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConfusionScoreMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConfusionScoreMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConfusionScoreMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ConfusionScore nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConfusionScoreMutation) ResetField(name string) error {
	switch name {
	case confusionscore.FieldWordLowID:
		m.ResetWordLowID()
		return nil
	case confusionscore.FieldWordHighID:
		m.ResetWordHighID()
		return nil
	case confusionscore.FieldWeight:
		m.ResetWeight()
		return nil
	}
	return fmt.Errorf("unknown ConfusionScore field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConfusionScoreMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConfusionScoreMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConfusionScoreMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConfusionScoreMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConfusionScoreMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConfusionScoreMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConfusionScoreMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ConfusionScore unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConfusionScoreMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ConfusionScore edge %s", name)
}

// PageMutation represents an operation that mutates the Page nodes in the graph.
type PageMutation struct {
	config
	op             Op
	typ            string
	id             *int
	lesson         *int32
	addlesson      *int32
	number         *int32
	addnumber      *int32
	message_ref    *int64
	addmessage_ref *int64
	name           *string
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Page, error)
	predicates     []predicate.Page
}

var _ ent.Mutation = (*PageMutation)(nil)

// pageOption allows management of the mutation configuration using functional options.
type pageOption func(*PageMutation)

// newPageMutation creates new mutation for the Page entity.
func newPageMutation(c config, op Op, opts ...pageOption) *PageMutation {
	m := &PageMutation{
		config:        c,
		op:            op,
		typ:           TypePage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPageID sets the ID field of the mutation.
func withPageID(id int) pageOption {
	return func(m *PageMutation) {
		var (
			err   error
			once  sync.Once
			value *Page
		)
		m.oldValue = func(ctx context.Context) (*Page, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Page.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPage sets the old Page of the mutation.
func withPage(node *Page) pageOption {
	return func(m *PageMutation) {
		m.oldValue = func(context.Context) (*Page, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Page.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLesson sets the "lesson" field.
func (m *PageMutation) SetLesson(i int32) {
	m.lesson = &i
	m.addlesson = nil
}

// Lesson returns the value of the "lesson" field in the mutation.
func (m *PageMutation) Lesson() (r int32, exists bool) {
	v := m.lesson
	if v == nil {
		return
	}
	return *v, true
}

// OldLesson returns the old "lesson" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldLesson(ctx context.Context) (v int32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLesson is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLesson requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLesson: %w", err)
	}
	return oldValue.Lesson, nil
}

// AddLesson adds i to the "lesson" field.
func (m *PageMutation) AddLesson(i int32) {
	if m.addlesson != nil {
		*m.addlesson += i
	} else {
		m.addlesson = &i
	}
}

// AddedLesson returns the value that was added to the "lesson" field in this mutation.
func (m *PageMutation) AddedLesson() (r int32, exists bool) {
	v := m.addlesson
	if v == nil {
		return
	}
	return *v, true
}

// ResetLesson resets all changes to the "lesson" field.
func (m *PageMutation) ResetLesson() {
	m.lesson = nil
	m.addlesson = nil
}

// SetNumber sets the "number" field.
func (m *PageMutation) SetNumber(i int32) {
	m.number = &i
	m.addnumber = nil
}

// Number returns the value of the "number" field in the mutation.
func (m *PageMutation) Number() (r int32, exists bool) {
	v := m.number
	if v == nil {
		return
	}
	return *v, true
}

// OldNumber returns the old "number" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldNumber(ctx context.Context) (v int32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumber: %w", err)
	}
	return oldValue.Number, nil
}

// AddNumber adds i to the "number" field.
func (m *PageMutation) AddNumber(i int32) {
	if m.addnumber != nil {
		*m.addnumber += i
	} else {
		m.addnumber = &i
	}
}

// AddedNumber returns the value that was added to the "number" field in this mutation.
func (m *PageMutation) AddedNumber() (r int32, exists bool) {
	v := m.addnumber
	if v == nil {
		return
	}
	return *v, true
}

// ResetNumber resets all changes to the "number" field.
func (m *PageMutation) ResetNumber() {
	m.number = nil
	m.addnumber = nil
}

// SetMessageRef sets the "message_ref" field.
func (m *PageMutation) SetMessageRef(i int64) {
	m.message_ref = &i
	m.addmessage_ref = nil
}

// MessageRef returns the value of the "message_ref" field in the mutation.
func (m *PageMutation) MessageRef() (r int64, exists bool) {
	v := m.message_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageRef returns the old "message_ref" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldMessageRef(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageRef: %w", err)
	}
	return oldValue.MessageRef, nil
}

// AddMessageRef adds i to the "message_ref" field.
func (m *PageMutation) AddMessageRef(i int64) {
	if m.addmessage_ref != nil {
		*m.addmessage_ref += i
	} else {
		m.addmessage_ref = &i
	}
}

// AddedMessageRef returns the value that was added to the "message_ref" field in this mutation.
func (m *PageMutation) AddedMessageRef() (r int64, exists bool) {
	v := m.addmessage_ref
	if v == nil {
		return
	}
	return *v, true
}

// ResetMessageRef resets all changes to the "message_ref" field.
func (m *PageMutation) ResetMessageRef() {
	m.message_ref = nil
	m.addmessage_ref = nil
}

// SetName sets the "name" field.
func (m *PageMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PageMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Page entity.
// If the Page object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PageMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PageMutation) ResetName() {
	m.name = nil
}

// Where appends a list predicates to the PageMutation builder.
func (m *PageMutation) Where(ps ...predicate.Page) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Page, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Page).
func (m *PageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PageMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.lesson != nil {
		fields = append(fields, page.FieldLesson)
	}
	if m.number != nil {
		fields = append(fields, page.FieldNumber)
	}
	if m.message_ref != nil {
		fields = append(fields, page.FieldMessageRef)
	}
	if m.name != nil {
		fields = append(fields, page.FieldName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case page.FieldLesson:
		return m.Lesson()
	case page.FieldNumber:
		return m.Number()
	case page.FieldMessageRef:
		return m.MessageRef()
	case page.FieldName:
		return m.Name()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case page.FieldLesson:
		return m.OldLesson(ctx)
	case page.FieldNumber:
		return m.OldNumber(ctx)
	case page.FieldMessageRef:
		return m.OldMessageRef(ctx)
	case page.FieldName:
		return m.OldName(ctx)
	}
	return nil, fmt.Errorf("unknown Page field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case page.FieldLesson:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLesson(v)
		return nil
	case page.FieldNumber:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumber(v)
		return nil
	case page.FieldMessageRef:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageRef(v)
		return nil
	case page.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	}
	return fmt.Errorf("unknown Page field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PageMutation) AddedFields() []string {
	var fields []string
	if m.addlesson != nil {
		fields = append(fields, page.FieldLesson)
	}
	if m.addnumber != nil {
		fields = append(fields, page.FieldNumber)
	}
	if m.addmessage_ref != nil {
		fields = append(fields, page.FieldMessageRef)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case page.FieldLesson:
		return m.AddedLesson()
	case page.FieldNumber:
		return m.AddedNumber()
	case page.FieldMessageRef:
		return m.AddedMessageRef()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case page.FieldLesson:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLesson(v)
		return nil
	case page.FieldNumber:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNumber(v)
		return nil
	case page.FieldMessageRef:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMessageRef(v)
		return nil
	}
	return fmt.Errorf("unknown Page numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Page nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PageMutation) ResetField(name string) error {
	switch name {
	case page.FieldLesson:
		m.ResetLesson()
		return nil
	case page.FieldNumber:
		m.ResetNumber()
		return nil
	case page.FieldMessageRef:
		m.ResetMessageRef()
		return nil
	case page.FieldName:
		m.ResetName()
		return nil
	}
	return fmt.Errorf("unknown Page field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Page unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Page edge %s", name)
}

// RelationMutation represents an operation that mutates the Relation nodes in the graph.
type RelationMutation struct {
	config
	op                Op
	typ               string
	id                *int
	source_word_id    *int64
	addsource_word_id *int64
	target_word_id    *int64
	addtarget_word_id *int64
	relation_type     *string
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Relation, error)
	predicates        []predicate.Relation
}

var _ ent.Mutation = (*RelationMutation)(nil)

// relationOption allows management of the mutation configuration using functional options.
type relationOption func(*RelationMutation)

// newRelationMutation creates new mutation for the Relation entity.
func newRelationMutation(c config, op Op, opts ...relationOption) *RelationMutation {
	m := &RelationMutation{
		config:        c,
		op:            op,
		typ:           TypeRelation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRelationID sets the ID field of the mutation.
func withRelationID(id int) relationOption {
	return func(m *RelationMutation) {
		var (
			err   error
			once  sync.Once
			value *Relation
		)
		m.oldValue = func(ctx context.Context) (*Relation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Relation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRelation sets the old Relation of the mutation.
func withRelation(node *Relation) relationOption {
	return func(m *RelationMutation) {
		m.oldValue = func(context.Context) (*Relation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RelationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RelationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RelationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RelationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Relation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceWordID sets the "source_word_id" field.
func (m *RelationMutation) SetSourceWordID(i int64) {
	m.source_word_id = &i
	m.addsource_word_id = nil
}

// SourceWordID returns the value of the "source_word_id" field in the mutation.
func (m *RelationMutation) SourceWordID() (r int64, exists bool) {
	v := m.source_word_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceWordID returns the old "source_word_id" field's value of the Relation entity.
// If the Relation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RelationMutation) OldSourceWordID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceWordID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceWordID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceWordID: %w", err)
	}
	return oldValue.SourceWordID, nil
}

// AddSourceWordID adds i to the "source_word_id" field.
func (m *RelationMutation) AddSourceWordID(i int64) {
	if m.addsource_word_id != nil {
		*m.addsource_word_id += i
	} else {
		m.addsource_word_id = &i
	}
}

// AddedSourceWordID returns the value that was added to the "source_word_id" field in this mutation.
func (m *RelationMutation) AddedSourceWordID() (r int64, exists bool) {
	v := m.addsource_word_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetSourceWordID resets all changes to the "source_word_id" field.
func (m *RelationMutation) ResetSourceWordID() {
	m.source_word_id = nil
	m.addsource_word_id = nil
}

// SetTargetWordID sets the "target_word_id" field.
func (m *RelationMutation) SetTargetWordID(i int64) {
	m.target_word_id = &i
	m.addtarget_word_id = nil
}

// TargetWordID returns the value of the "target_word_id" field in the mutation.
func (m *RelationMutation) TargetWordID() (r int64, exists bool) {
	v := m.target_word_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetWordID returns the old "target_word_id" field's value of the Relation entity.
// If the Relation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RelationMutation) OldTargetWordID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetWordID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetWordID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetWordID: %w", err)
	}
	return oldValue.TargetWordID, nil
}

// AddTargetWordID adds i to the "target_word_id" field.
func (m *RelationMutation) AddTargetWordID(i int64) {
	if m.addtarget_word_id != nil {
		*m.addtarget_word_id += i
	} else {
		m.addtarget_word_id = &i
	}
}

// AddedTargetWordID returns the value that was added to the "target_word_id" field in this mutation.
func (m *RelationMutation) AddedTargetWordID() (r int64, exists bool) {
	v := m.addtarget_word_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetTargetWordID resets all changes to the "target_word_id" field.
func (m *RelationMutation) ResetTargetWordID() {
	m.target_word_id = nil
	m.addtarget_word_id = nil
}

// SetRelationType sets the "relation_type" field.
func (m *RelationMutation) SetRelationType(s string) {
	m.relation_type = &s
}

// RelationType returns the value of the "relation_type" field in the mutation.
func (m *RelationMutation) RelationType() (r string, exists bool) {
	v := m.relation_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRelationType returns the old "relation_type" field's value of the Relation entity.
// If the Relation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RelationMutation) OldRelationType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelationType: %w", err)
	}
	return oldValue.RelationType, nil
}

// ResetRelationType resets all changes to the "relation_type" field.
func (m *RelationMutation) ResetRelationType() {
	m.relation_type = nil
}

// Where appends a list predicates to the RelationMutation builder.
func (m *RelationMutation) Where(ps ...predicate.Relation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RelationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RelationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Relation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RelationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RelationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Relation).
func (m *RelationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RelationMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.source_word_id != nil {
		fields = append(fields, relation.FieldSourceWordID)
	}
	if m.target_word_id != nil {
		fields = append(fields, relation.FieldTargetWordID)
	}
	if m.relation_type != nil {
		fields = append(fields, relation.FieldRelationType)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RelationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case relation.FieldSourceWordID:
		return m.SourceWordID()
	case relation.FieldTargetWordID:
		return m.TargetWordID()
	case relation.FieldRelationType:
		return m.RelationType()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RelationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case relation.FieldSourceWordID:
		return m.OldSourceWordID(ctx)
	case relation.FieldTargetWordID:
		return m.OldTargetWordID(ctx)
	case relation.FieldRelationType:
		return m.OldRelationType(ctx)
	}
	return nil, fmt.Errorf("unknown Relation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RelationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case relation.FieldSourceWordID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceWordID(v)
		return nil
	case relation.FieldTargetWordID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetWordID(v)
		return nil
	case relation.FieldRelationType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelationType(v)
		return nil
	}
	return fmt.Errorf("unknown Relation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RelationMutation) AddedFields() []string {
	var fields []string
	if m.addsource_word_id != nil {
		fields = append(fields, relation.FieldSourceWordID)
	}
	if m.addtarget_word_id != nil {
		fields = append(fields, relation.FieldTargetWordID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RelationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case relation.FieldSourceWordID:
		return m.AddedSourceWordID()
	case relation.FieldTargetWordID:
		return m.AddedTargetWordID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RelationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case relation.FieldSourceWordID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSourceWordID(v)
		return nil
	case relation.FieldTargetWordID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTargetWordID(v)
		return nil
	}
	return fmt.Errorf("unknown Relation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RelationMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RelationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RelationMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Relation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RelationMutation) ResetField(name string) error {
	switch name {
	case relation.FieldSourceWordID:
		m.ResetSourceWordID()
		return nil
	case relation.FieldTargetWordID:
		m.ResetTargetWordID()
		return nil
	case relation.FieldRelationType:
		m.ResetRelationType()
		return nil
	}
	return fmt.Errorf("unknown Relation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RelationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RelationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RelationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RelationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RelationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RelationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RelationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Relation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RelationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Relation edge %s", name)
}

// SentenceMutation represents an operation that mutates the Sentence nodes in the graph.
type SentenceMutation struct {
	config
	op            Op
	typ           string
	id            *int
	text          *string
	translation   *string
	lesson        *int32
	addlesson     *int32
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Sentence, error)
	predicates    []predicate.Sentence
}

var _ ent.Mutation = (*SentenceMutation)(nil)

// sentenceOption allows management of the mutation configuration using functional options.
type sentenceOption func(*SentenceMutation)

// newSentenceMutation creates new mutation for the Sentence entity.
func newSentenceMutation(c config, op Op, opts ...sentenceOption) *SentenceMutation {
	m := &SentenceMutation{
		config:        c,
		op:            op,
		typ:           TypeSentence,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSentenceID sets the ID field of the mutation.
func withSentenceID(id int) sentenceOption {
	return func(m *SentenceMutation) {
		var (
			err   error
			once  sync.Once
			value *Sentence
		)
		m.oldValue = func(ctx context.Context) (*Sentence, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Sentence.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSentence sets the old Sentence of the mutation.
func withSentence(node *Sentence) sentenceOption {
	return func(m *SentenceMutation) {
		m.oldValue = func(context.Context) (*Sentence, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SentenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SentenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SentenceMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SentenceMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Sentence.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetText sets the "text" field.
func (m *SentenceMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *SentenceMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Sentence entity.
// If the Sentence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SentenceMutation) OldText(ctx context.Context) (v string, err error) {
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
func (m *SentenceMutation) ResetText() {
	m.text = nil
}

// SetTranslation sets the "translation" field.
func (m *SentenceMutation) SetTranslation(s string) {
	m.translation = &s
}

// Translation returns the value of the "translation" field in the mutation.
func (m *SentenceMutation) Translation() (r string, exists bool) {
	v := m.translation
	if v == nil {
		return
	}
	return *v, true
}

// OldTranslation returns the old "translation" field's value of the Sentence entity.
// If the Sentence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SentenceMutation) OldTranslation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTranslation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTranslation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTranslation: %w", err)
	}
	return oldValue.Translation, nil
}

// ResetTranslation resets all changes to the "translation" field.
func (m *SentenceMutation) ResetTranslation() {
	m.translation = nil
}

// SetLesson sets the "lesson" field.
func (m *SentenceMutation) SetLesson(i int32) {
	m.lesson = &i
	m.addlesson = nil
}

// Lesson returns the value of the "lesson" field in the mutation.
func (m *SentenceMutation) Lesson() (r int32, exists bool) {
	v := m.lesson
	if v == nil {
		return
	}
	return *v, true
}

// OldLesson returns the old "lesson" field's value of the Sentence entity.
// If the Sentence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SentenceMutation) OldLesson(ctx context.Context) (v int32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLesson is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLesson requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLesson: %w", err)
	}
	return oldValue.Lesson, nil
}

// AddLesson adds i to the "lesson" field.
func (m *SentenceMutation) AddLesson(i int32) {
	if m.addlesson != nil {
		*m.addlesson += i
	} else {
		m.addlesson = &i
	}
}

// AddedLesson returns the value that was added to the "lesson" field in this mutation.
func (m *SentenceMutation) AddedLesson() (r int32, exists bool) {
	v := m.addlesson
	if v == nil {
		return
	}
	return *v, true
}

// ResetLesson resets all changes to the "lesson" field.
func (m *SentenceMutation) ResetLesson() {
	m.lesson = nil
	m.addlesson = nil
}

// Where appends a list predicates to the SentenceMutation builder.
func (m *SentenceMutation) Where(ps ...predicate.Sentence) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SentenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SentenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Sentence, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SentenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SentenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Sentence).
func (m *SentenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SentenceMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.text != nil {
		fields = append(fields, sentence.FieldText)
	}
	if m.translation != nil {
		fields = append(fields, sentence.FieldTranslation)
	}
	if m.lesson != nil {
		fields = append(fields, sentence.FieldLesson)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SentenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sentence.FieldText:
		return m.Text()
	case sentence.FieldTranslation:
		return m.Translation()
	case sentence.FieldLesson:
		return m.Lesson()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SentenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sentence.FieldText:
		return m.OldText(ctx)
	case sentence.FieldTranslation:
		return m.OldTranslation(ctx)
	case sentence.FieldLesson:
		return m.OldLesson(ctx)
	}
	return nil, fmt.Errorf("unknown Sentence field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SentenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sentence.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case sentence.FieldTranslation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTranslation(v)
		return nil
	case sentence.FieldLesson:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLesson(v)
		return nil
	}
	return fmt.Errorf("unknown Sentence field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SentenceMutation) AddedFields() []string {
	var fields []string
	if m.addlesson != nil {
		fields = append(fields, sentence.FieldLesson)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SentenceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sentence.FieldLesson:
		return m.AddedLesson()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SentenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sentence.FieldLesson:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLesson(v)
		return nil
	}
	return fmt.Errorf("unknown Sentence numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SentenceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SentenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SentenceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Sentence nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SentenceMutation) ResetField(name string) error {
	switch name {
	case sentence.FieldText:
		m.ResetText()
		return nil
	case sentence.FieldTranslation:
		m.ResetTranslation()
		return nil
	case sentence.FieldLesson:
		m.ResetLesson()
		return nil
	}
	return fmt.Errorf("unknown Sentence field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SentenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SentenceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SentenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SentenceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SentenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SentenceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SentenceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Sentence unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SentenceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Sentence edge %s", name)
}

// WordMutation represents an operation that mutates the Word nodes in the graph.
type WordMutation struct {
	config
	op               Op
	typ              string
	id               *int
	english          *string
	russian          *string
	alternates       *[]string
	appendalternates []string
	lesson           *int32
	addlesson        *int32
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Word, error)
	predicates       []predicate.Word
}

var _ ent.Mutation = (*WordMutation)(nil)

// wordOption allows management of the mutation configuration using functional options.
type wordOption func(*WordMutation)

// newWordMutation creates new mutation for the Word entity.
func newWordMutation(c config, op Op, opts ...wordOption) *WordMutation {
	m := &WordMutation{
		config:        c,
		op:            op,
		typ:           TypeWord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWordID sets the ID field of the mutation.
func withWordID(id int) wordOption {
	return func(m *WordMutation) {
		var (
			err   error
			once  sync.Once
			value *Word
		)
		m.oldValue = func(ctx context.Context) (*Word, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Word.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWord sets the old Word of the mutation.
func withWord(node *Word) wordOption {
	return func(m *WordMutation) {
		m.oldValue = func(context.Context) (*Word, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Word.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEnglish sets the "english" field.
func (m *WordMutation) SetEnglish(s string) {
	m.english = &s
}

// English returns the value of the "english" field in the mutation.
func (m *WordMutation) English() (r string, exists bool) {
	v := m.english
	if v == nil {
		return
	}
	return *v, true
}

// OldEnglish returns the old "english" field's value of the Word entity.
// If the Word object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WordMutation) OldEnglish(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnglish is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnglish requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnglish: %w", err)
	}
	return oldValue.English, nil
}

// ResetEnglish resets all changes to the "english" field.
func (m *WordMutation) ResetEnglish() {
	m.english = nil
}

// SetRussian sets the "russian" field.
func (m *WordMutation) SetRussian(s string) {
	m.russian = &s
}

// Russian returns the value of the "russian" field in the mutation.
func (m *WordMutation) Russian() (r string, exists bool) {
	v := m.russian
	if v == nil {
		return
	}
	return *v, true
}

// OldRussian returns the old "russian" field's value of the Word entity.
// If the Word object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WordMutation) OldRussian(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRussian is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRussian requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRussian: %w", err)
	}
	return oldValue.Russian, nil
}

// ResetRussian resets all changes to the "russian" field.
func (m *WordMutation) ResetRussian() {
	m.russian = nil
}

// SetAlternates sets the "alternates" field.
func (m *WordMutation) SetAlternates(s []string) {
	m.alternates = &s
	m.appendalternates = nil
}

// Alternates returns the value of the "alternates" field in the mutation.
func (m *WordMutation) Alternates() (r []string, exists bool) {
	v := m.alternates
	if v == nil {
		return
	}
	return *v, true
}

// OldAlternates returns the old "alternates" field's value of the Word entity.
// If the Word object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WordMutation) OldAlternates(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlternates is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlternates requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlternates: %w", err)
	}
	return oldValue.Alternates, nil
}

// AppendAlternates adds s to the "alternates" field.
func (m *WordMutation) AppendAlternates(s []string) {
	m.appendalternates = append(m.appendalternates, s...)
}

// AppendedAlternates returns the list of values that were appended to the "alternates" field in this mutation.
func (m *WordMutation) AppendedAlternates() ([]string, bool) {
	if len(m.appendalternates) == 0 {
		return nil, false
	}
	return m.appendalternates, true
}

// ResetAlternates resets all changes to the "alternates" field.
func (m *WordMutation) ResetAlternates() {
	m.alternates = nil
	m.appendalternates = nil
}

// SetLesson sets the "lesson" field.
func (m *WordMutation) SetLesson(i int32) {
	m.lesson = &i
	m.addlesson = nil
}

// Lesson returns the value of the "lesson" field in the mutation.
func (m *WordMutation) Lesson() (r int32, exists bool) {
	v := m.lesson
	if v == nil {
		return
	}
	return *v, true
}

// OldLesson returns the old "lesson" field's value of the Word entity.
// If the Word object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WordMutation) OldLesson(ctx context.Context) (v int32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLesson is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLesson requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLesson: %w", err)
	}
	return oldValue.Lesson, nil
}

// AddLesson adds i to the "lesson" field.
func (m *WordMutation) AddLesson(i int32) {
	if m.addlesson != nil {
		*m.addlesson += i
	} else {
		m.addlesson = &i
	}
}

// AddedLesson returns the value that was added to the "lesson" field in this mutation.
func (m *WordMutation) AddedLesson() (r int32, exists bool) {
	v := m.addlesson
	if v == nil {
		return
	}
	return *v, true
}

// ResetLesson resets all changes to the "lesson" field.
func (m *WordMutation) ResetLesson() {
	m.lesson = nil
	m.addlesson = nil
}

// Where appends a list predicates to the WordMutation builder.
func (m *WordMutation) Where(ps ...predicate.Word) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Word, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Word).
func (m *WordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WordMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.english != nil {
		fields = append(fields, word.FieldEnglish)
	}
	if m.russian != nil {
		fields = append(fields, word.FieldRussian)
	}
	if m.alternates != nil {
		fields = append(fields, word.FieldAlternates)
	}
	if m.lesson != nil {
		fields = append(fields, word.FieldLesson)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case word.FieldEnglish:
		return m.English()
	case word.FieldRussian:
		return m.Russian()
	case word.FieldAlternates:
		return m.Alternates()
	case word.FieldLesson:
		return m.Lesson()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case word.FieldEnglish:
		return m.OldEnglish(ctx)
	case word.FieldRussian:
		return m.OldRussian(ctx)
	case word.FieldAlternates:
		return m.OldAlternates(ctx)
	case word.FieldLesson:
		return m.OldLesson(ctx)
	}
	return nil, fmt.Errorf("unknown Word field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case word.FieldEnglish:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnglish(v)
		return nil
	case word.FieldRussian:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRussian(v)
		return nil
	case word.FieldAlternates:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlternates(v)
		return nil
	case word.FieldLesson:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLesson(v)
		return nil
	}
	return fmt.Errorf("unknown Word field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WordMutation) AddedFields() []string {
	var fields []string
	if m.addlesson != nil {
		fields = append(fields, word.FieldLesson)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case word.FieldLesson:
		return m.AddedLesson()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case word.FieldLesson:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLesson(v)
		return nil
	}
	return fmt.Errorf("unknown Word numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Word nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WordMutation) ResetField(name string) error {
	switch name {
	case word.FieldEnglish:
		m.ResetEnglish()
		return nil
	case word.FieldRussian:
		m.ResetRussian()
		return nil
	case word.FieldAlternates:
		m.ResetAlternates()
		return nil
	case word.FieldLesson:
		m.ResetLesson()
		return nil
	}
	return fmt.Errorf("unknown Word field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Word unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Word edge %s", name)
}

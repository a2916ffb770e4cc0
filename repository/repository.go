package repository

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jacentio/propman/entity"
	"github.com/jacentio/propman/schema"
	"github.com/jacentio/propman/store"
)

// Store is the subset of *store.Store used by repositories.
type Store interface {
	Get(ctx context.Context, key schema.Key) (*store.Item, error)
	Put(ctx context.Context, attrs map[string]types.AttributeValue, opts store.PutOptions) (*store.Item, error)
	Update(ctx context.Context, key schema.Key, set map[string]types.AttributeValue, remove []string) (*store.Item, error)
	Delete(ctx context.Context, key schema.Key) error
	Query(ctx context.Context, in store.QueryInput) (*store.Page, error)
}

var _ Store = (*store.Store)(nil)

// Fields is a partial update. A nil value removes the attribute.
type Fields map[string]any

// PageOptions controls a list call.
type PageOptions struct {
	// Limit is the page size; 0 uses the store default.
	Limit int32

	// Cursor resumes a previous list call.
	Cursor store.Cursor
}

// Page is one page of decoded records.
type Page[T any] struct {
	Items []*T

	// Cursor resumes the listing; empty when there are no more records.
	Cursor store.Cursor
}

type options struct {
	registry *schema.Registry
	logger   zerolog.Logger
	newID    func() string
}

// Option configures a repository.
type Option func(*options)

// WithRegistry sets the key schema registry. Defaults to schema.Default().
func WithRegistry(reg *schema.Registry) Option {
	return func(o *options) { o.registry = reg }
}

// WithLogger sets the logger that data integrity violations are reported to.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithIDGenerator sets the function that assigns ids on create. Defaults to random UUIDs.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) { o.newID = fn }
}

func buildOptions(opts []Option) options {
	o := options{logger: zerolog.Nop(), newID: uuid.NewString}
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = schema.Default()
	}
	return o
}

// Repository stores entities of one kind.
type Repository[T any, PT Record[T]] struct {
	store  Store
	codec  *codec[T, PT]
	logger zerolog.Logger
	newID  func() string
}

// New creates a repository for the kind of T.
func New[T any, PT Record[T]](st Store, opts ...Option) (*Repository[T, PT], error) {
	o := buildOptions(opts)
	c, err := newCodec[T, PT](o.registry, newValidator())
	if err != nil {
		return nil, err
	}
	return &Repository[T, PT]{
		store:  st,
		codec:  c,
		logger: o.logger.With().Str("kind", string(c.def.Kind)).Logger(),
		newID:  o.newID,
	}, nil
}

// Definition returns the key layout of the repository's kind.
func (r *Repository[T, PT]) Definition() *schema.Definition {
	return r.codec.def
}

func (r *Repository[T, PT]) decode(op string, raw map[string]types.AttributeValue) (*T, error) {
	v, err := r.codec.decode(raw)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("op", op).
			Interface("raw", plain(raw)).
			Msg("stored record failed validation")
		return nil, &DataIntegrityError{Kind: r.codec.def.Kind, Op: op, Raw: raw, Err: err}
	}
	return v, nil
}

// Create writes a new record. The id attribute is generated when empty, registry
// defaults fill absent attributes and audit timestamps are assigned by the store.
// A caller supplied id that is already taken fails with store.ErrConditionalWriteFailed.
func (r *Repository[T, PT]) Create(ctx context.Context, e *T) (*T, error) {
	def := r.codec.def
	attrs, err := r.codec.encode(e)
	if err != nil {
		return nil, fmt.Errorf("%s create: %w", def.Kind, err)
	}
	delete(attrs, schema.AttrCreatedAt)
	delete(attrs, schema.AttrUpdatedAt)

	var opts store.PutOptions
	if s, ok := attrs[def.IDAttr].(*types.AttributeValueMemberS); !ok || s.Value == "" {
		attrs[def.IDAttr] = &types.AttributeValueMemberS{Value: r.newID()}
	} else {
		opts.IfNotExists = true
	}
	for name, v := range def.Defaults {
		if _, ok := attrs[name]; !ok {
			attrs[name] = &types.AttributeValueMemberS{Value: v}
		}
	}

	keys, err := def.KeyAttrs(stringAttrs(attrs))
	if err != nil {
		return nil, fmt.Errorf("%s create: %w", def.Kind, err)
	}
	for name, v := range keys {
		attrs[name] = &types.AttributeValueMemberS{Value: v}
	}

	if err := r.check(attrs); err != nil {
		return nil, fmt.Errorf("%s create: %w", def.Kind, err)
	}

	item, err := r.store.Put(ctx, attrs, opts)
	if err != nil {
		return nil, fmt.Errorf("%s create: %w", def.Kind, err)
	}
	return r.decode("create", item.Raw)
}

// check validates a record about to be written, with provisional audit timestamps.
func (r *Repository[T, PT]) check(attrs map[string]types.AttributeValue) error {
	candidate := maps.Clone(attrs)
	now := &types.AttributeValueMemberS{Value: string(entity.NewTimestamp(time.Now()))}
	candidate[schema.AttrCreatedAt] = now
	candidate[schema.AttrUpdatedAt] = now
	if _, err := r.codec.decode(candidate); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidField, err)
	}
	return nil
}

// Get reads a record by its primary key values. A missing record is (nil, nil).
func (r *Repository[T, PT]) Get(ctx context.Context, keyValues ...string) (*T, error) {
	key, err := r.codec.def.PrimaryKey(keyValues...)
	if err != nil {
		return nil, err
	}
	item, err := r.store.Get(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.decode("get", item.Raw)
}

// List reads one page of the named access pattern. values bind the pattern's partition
// attributes and optionally a leading part of its sort attributes.
func (r *Repository[T, PT]) List(ctx context.Context, pattern string, opts PageOptions, values ...string) (*Page[T], error) {
	def := r.codec.def
	access, err := def.Pattern(pattern)
	if err != nil {
		return nil, err
	}
	partition, sort, err := access.Bind(values...)
	if err != nil {
		return nil, fmt.Errorf("%s.%s: %w", def.Kind, pattern, err)
	}

	page, err := r.store.Query(ctx, store.QueryInput{
		Kind:      def.Kind,
		Slot:      access.Slot,
		Partition: partition,
		Sort:      sort,
		Limit:     opts.Limit,
		Cursor:    opts.Cursor,
	})
	if err != nil {
		return nil, err
	}

	out := &Page[T]{Items: make([]*T, 0, len(page.Items)), Cursor: page.Next}
	for _, item := range page.Items {
		v, err := r.decode("list", item.Raw)
		if err != nil {
			return nil, err
		}
		out.Items = append(out.Items, v)
	}
	return out, nil
}

// Update merges fields into an existing record and returns the result. Key attributes
// and audit timestamps cannot be changed and are ignored. Index keys are rebuilt when
// an attribute they are derived from changes. Returns store.ErrNotFound if the record
// does not exist.
func (r *Repository[T, PT]) Update(ctx context.Context, fields Fields, keyValues ...string) (*T, error) {
	def := r.codec.def
	key, err := def.PrimaryKey(keyValues...)
	if err != nil {
		return nil, err
	}

	immutable := def.KeyAttributeNames()
	set := map[string]types.AttributeValue{}
	var remove []string
	for name, v := range fields {
		if schema.IsReserved(name) || name == schema.AttrCreatedAt || name == schema.AttrUpdatedAt ||
			slices.Contains(immutable, name) {
			r.logger.Debug().Str("attribute", name).Msg("ignoring immutable attribute")
			continue
		}
		av, err := r.codec.value(name, v)
		if err != nil {
			return nil, fmt.Errorf("%s update: %w", def.Kind, err)
		}
		if av == nil {
			remove = append(remove, name)
			continue
		}
		set[name] = av
	}

	if r.touchesIndex(set, remove) {
		if remove, err = r.reindex(ctx, key, set, remove); err != nil {
			return nil, err
		}
	}

	item, err := r.store.Update(ctx, key, set, remove)
	if err != nil {
		return nil, err
	}
	return r.decode("update", item.Raw)
}

func (r *Repository[T, PT]) touchesIndex(set map[string]types.AttributeValue, remove []string) bool {
	for _, name := range r.codec.def.IndexedAttrs() {
		if _, ok := set[name]; ok || slices.Contains(remove, name) {
			return true
		}
	}
	return false
}

// reindex adds the rebuilt index keys to set. Index keys that can no longer be built
// are appended to remove, which is returned.
func (r *Repository[T, PT]) reindex(ctx context.Context, key schema.Key, set map[string]types.AttributeValue, remove []string) ([]string, error) {
	def := r.codec.def
	current, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	attrs := stringAttrs(current.Raw)
	for name, av := range set {
		if s, ok := av.(*types.AttributeValueMemberS); ok {
			attrs[name] = s.Value
		} else {
			delete(attrs, name)
		}
	}
	for _, name := range remove {
		delete(attrs, name)
	}

	keys, err := def.KeyAttrs(attrs)
	if err != nil {
		return nil, fmt.Errorf("%s update: %w", def.Kind, err)
	}
	for _, a := range def.Indexes {
		pk, sk := a.Slot.PartitionAttr(), a.Slot.SortAttr()
		if v, ok := keys[pk]; ok {
			set[pk] = &types.AttributeValueMemberS{Value: v}
			set[sk] = &types.AttributeValueMemberS{Value: keys[sk]}
			continue
		}
		remove = append(remove, pk, sk)
	}
	return remove, nil
}

// Delete removes a record. Deleting a missing record is not an error.
func (r *Repository[T, PT]) Delete(ctx context.Context, keyValues ...string) error {
	key, err := r.codec.def.PrimaryKey(keyValues...)
	if err != nil {
		return err
	}
	return r.store.Delete(ctx, key)
}

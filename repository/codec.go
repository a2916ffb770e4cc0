package repository

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-playground/validator/v10"

	"github.com/jacentio/propman/entity"
	"github.com/jacentio/propman/schema"
)

// Record constrains the type parameters of a repository: PT is a pointer to the
// entity struct T.
type Record[T any] interface {
	*T
	entity.Record
}

// field describes one declared attribute of an entity struct.
type field struct {
	typ reflect.Type
	tag string
}

func (f field) required() bool {
	return slices.Contains(strings.Split(f.tag, ","), "required")
}

var unmarshalerType = reflect.TypeFor[attributevalue.Unmarshaler]()

// accepts reports whether av has the attribute type the field is declared with.
// attributevalue would otherwise coerce, e.g. a number into a string field. Types
// with their own unmarshaler decide for themselves.
func (f field) accepts(av types.AttributeValue) error {
	if f.typ.Implements(unmarshalerType) || reflect.PointerTo(f.typ).Implements(unmarshalerType) {
		return nil
	}
	if _, ok := av.(*types.AttributeValueMemberNULL); ok {
		if f.required() {
			return fmt.Errorf("null in required field")
		}
		return nil
	}

	t := f.typ
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	var ok bool
	switch t.Kind() {
	case reflect.String:
		_, ok = av.(*types.AttributeValueMemberS)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		_, ok = av.(*types.AttributeValueMemberN)
	case reflect.Bool:
		_, ok = av.(*types.AttributeValueMemberBOOL)
	default:
		ok = true
	}
	if !ok {
		return fmt.Errorf("%T is not a %s", av, t.Kind())
	}
	return nil
}

// newValidator returns a validator reporting attribute names instead of Go field names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("dynamodbav"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldsOf collects the attributes declared by a struct type, embedded structs included.
func fieldsOf(t reflect.Type, out map[string]field) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("dynamodbav"), ",")
		if name == "-" {
			continue
		}
		if f.Anonymous && name == "" && f.Type.Kind() == reflect.Struct {
			fieldsOf(f.Type, out)
			continue
		}
		if name == "" {
			name = f.Name
		}
		out[name] = field{typ: f.Type, tag: f.Tag.Get("validate")}
	}
}

// codec converts between stored records and entity structs of one kind.
type codec[T any, PT Record[T]] struct {
	def      *schema.Definition
	validate *validator.Validate
	fields   map[string]field
}

func newCodec[T any, PT Record[T]](reg *schema.Registry, v *validator.Validate) (*codec[T, PT], error) {
	def, err := reg.Lookup(PT(new(T)).Kind())
	if err != nil {
		return nil, err
	}
	fields := map[string]field{}
	fieldsOf(reflect.TypeFor[T](), fields)
	return &codec[T, PT]{def: def, validate: v, fields: fields}, nil
}

// decode unmarshals and validates a stored record. Attributes the struct does not
// declare are kept in Base.Extra.
func (c *codec[T, PT]) decode(raw map[string]types.AttributeValue) (*T, error) {
	et, ok := raw[schema.AttrEntityType].(*types.AttributeValueMemberS)
	if !ok {
		return nil, fmt.Errorf("missing %s", schema.AttrEntityType)
	}
	if et.Value != string(c.def.Kind) {
		return nil, fmt.Errorf("%s is %q, want %q", schema.AttrEntityType, et.Value, c.def.Kind)
	}

	for name, av := range raw {
		if f, ok := c.fields[name]; ok {
			if err := f.accepts(av); err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
		}
	}

	out := new(T)
	if err := attributevalue.UnmarshalMap(raw, out); err != nil {
		return nil, err
	}
	if err := c.validate.Struct(out); err != nil {
		return nil, err
	}

	var extra map[string]types.AttributeValue
	for name, av := range raw {
		if _, declared := c.fields[name]; declared || schema.IsReserved(name) {
			continue
		}
		if extra == nil {
			extra = map[string]types.AttributeValue{}
		}
		extra[name] = av
	}
	PT(out).Meta().Extra = extra
	return out, nil
}

// encode marshals an entity with its extra attributes. Declared attributes win over
// extras of the same name; reserved attributes are never taken from extras.
func (c *codec[T, PT]) encode(e *T) (map[string]types.AttributeValue, error) {
	attrs, err := attributevalue.MarshalMap(e)
	if err != nil {
		return nil, err
	}
	for name, av := range PT(e).Meta().Extra {
		if _, ok := attrs[name]; ok || schema.IsReserved(name) {
			continue
		}
		attrs[name] = av
	}
	return attrs, nil
}

// value converts one update field to its attribute value. A nil result means the
// attribute is to be removed.
func (c *codec[T, PT]) value(name string, v any) (types.AttributeValue, error) {
	f, declared := c.fields[name]

	var av types.AttributeValue
	if v != nil {
		var err error
		if av, err = attributevalue.Marshal(v); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidField, name, err)
		}
		if empty(av) {
			av = nil
		}
	}

	if !declared {
		return av, nil
	}
	if av == nil {
		if f.required() {
			return nil, fmt.Errorf("%w: %s is required", ErrInvalidField, name)
		}
		return nil, nil
	}

	// Round-trip through the declared type so a value of the wrong shape is rejected
	// before the validation rule sees it.
	if err := f.accepts(av); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidField, name, err)
	}
	typed := reflect.New(f.typ)
	if err := attributevalue.Unmarshal(av, typed.Interface()); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidField, name, err)
	}
	if f.tag != "" && f.tag != "-" {
		if err := c.validate.Var(typed.Elem().Interface(), f.tag); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidField, name, err)
		}
	}
	return attributevalue.Marshal(typed.Elem().Interface())
}

func empty(av types.AttributeValue) bool {
	switch v := av.(type) {
	case *types.AttributeValueMemberNULL:
		return true
	case *types.AttributeValueMemberS:
		return v.Value == ""
	}
	return false
}

// stringAttrs returns the string-valued attributes, the only ones keys are built from.
func stringAttrs(attrs map[string]types.AttributeValue) map[string]string {
	out := make(map[string]string, len(attrs))
	for name, av := range attrs {
		if s, ok := av.(*types.AttributeValueMemberS); ok {
			out[name] = s.Value
		}
	}
	return out
}

// plain converts a record to JSON-friendly values for logging.
func plain(raw map[string]types.AttributeValue) map[string]any {
	var out map[string]any
	if err := attributevalue.UnmarshalMap(raw, &out); err != nil {
		return map[string]any{"unreadable": err.Error()}
	}
	return out
}

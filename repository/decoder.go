package repository

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-playground/validator/v10"

	"github.com/jacentio/propman/entity"
	"github.com/jacentio/propman/schema"
)

// Decoder decodes records of any kind, dispatching on the entityType attribute.
type Decoder struct {
	registry *schema.Registry
	decoders map[schema.Kind]func(map[string]types.AttributeValue) (entity.Record, error)
}

// NewDecoder returns a Decoder for every entity kind.
func NewDecoder(opts ...Option) (*Decoder, error) {
	o := buildOptions(opts)
	d := &Decoder{
		registry: o.registry,
		decoders: map[schema.Kind]func(map[string]types.AttributeValue) (entity.Record, error){},
	}
	v := newValidator()

	adders := []func(*Decoder, *validator.Validate) error{
		add[entity.Organization], add[entity.Employee], add[entity.Customer],
		add[entity.Delegate], add[entity.Account], add[entity.PropertyType],
		add[entity.Property], add[entity.ServiceType], add[entity.CostType],
		add[entity.Cost], add[entity.Plan], add[entity.PlanService],
		add[entity.PropertyService], add[entity.Servicer], add[entity.Capability],
		add[entity.ServiceSchedule], add[entity.Pay], add[entity.PaySchedule],
		add[entity.Invoice], add[entity.InvoiceSchedule], add[entity.PaymentMethod],
	}
	for _, fn := range adders {
		if err := fn(d, v); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func add[T any, PT Record[T]](d *Decoder, v *validator.Validate) error {
	c, err := newCodec[T, PT](d.registry, v)
	if err != nil {
		return err
	}
	d.decoders[c.def.Kind] = func(raw map[string]types.AttributeValue) (entity.Record, error) {
		out, err := c.decode(raw)
		if err != nil {
			return nil, err
		}
		return PT(out), nil
	}
	return nil
}

// Kind returns the kind a record claims to be.
func Kind(raw map[string]types.AttributeValue) (schema.Kind, bool) {
	s, ok := raw[schema.AttrEntityType].(*types.AttributeValueMemberS)
	if !ok || s.Value == "" {
		return "", false
	}
	return schema.Kind(s.Value), true
}

// Decode decodes and validates a record. Records of a kind the decoder does not know
// fail with schema.ErrUnknownKind; records that fail validation fail with a
// *DataIntegrityError.
func (d *Decoder) Decode(op string, raw map[string]types.AttributeValue) (entity.Record, error) {
	kind, ok := Kind(raw)
	if !ok {
		return nil, &DataIntegrityError{Op: op, Raw: raw, Err: fmt.Errorf("missing %s", schema.AttrEntityType)}
	}
	fn, ok := d.decoders[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", schema.ErrUnknownKind, kind)
	}
	rec, err := fn(raw)
	if err != nil {
		return nil, &DataIntegrityError{Kind: kind, Op: op, Raw: raw, Err: err}
	}
	return rec, nil
}

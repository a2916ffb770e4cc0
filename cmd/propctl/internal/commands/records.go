package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/jacentio/propman/repository"
	"github.com/jacentio/propman/schema"
	"github.com/jacentio/propman/store"
)

type GetCmd struct {
	Kind string   `arg:"" help:"entity kind, e.g. employee"`
	Key  []string `arg:"" help:"primary key values in key order"`
	Raw  bool     `help:"print the stored record without validating it"`
}

func (c *GetCmd) Run(ctx context.Context, globals *Globals) error {
	st, err := globals.store(ctx)
	if err != nil {
		return err
	}
	return c.run(ctx, globals, st)
}

func (c *GetCmd) run(ctx context.Context, globals *Globals, st *store.Store) error {
	def, err := schema.Default().Lookup(schema.Kind(c.Kind))
	if err != nil {
		return err
	}
	key, err := def.PrimaryKey(c.Key...)
	if err != nil {
		return err
	}

	item, err := st.Get(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("%s %s not found", def.Kind, key)
	}
	if err != nil {
		return err
	}

	d, err := decoder(globals, c.Raw)
	if err != nil {
		return err
	}
	if err := check(d, item); err != nil {
		return err
	}
	return printRecord(globals.Out, item.Raw)
}

type ListCmd struct {
	Kind    string   `arg:"" help:"entity kind, e.g. employee"`
	Pattern string   `arg:"" help:"access pattern name, e.g. byStatus"`
	Values  []string `arg:"" optional:"" help:"partition values followed by any leading sort values"`
	Limit   int32    `help:"page size" default:"20"`
	Cursor  string   `help:"cursor returned by a previous page"`
	Raw     bool     `help:"print stored records without validating them"`
}

func (c *ListCmd) Run(ctx context.Context, globals *Globals) error {
	st, err := globals.store(ctx)
	if err != nil {
		return err
	}
	return c.run(ctx, globals, st)
}

func (c *ListCmd) run(ctx context.Context, globals *Globals, st *store.Store) error {
	def, err := schema.Default().Lookup(schema.Kind(c.Kind))
	if err != nil {
		return err
	}
	access, err := def.Pattern(c.Pattern)
	if err != nil {
		return err
	}
	partition, sort, err := access.Bind(c.Values...)
	if err != nil {
		return err
	}

	page, err := st.Query(ctx, store.QueryInput{
		Kind:      def.Kind,
		Slot:      access.Slot,
		Partition: partition,
		Sort:      sort,
		Limit:     c.Limit,
		Cursor:    store.Cursor(c.Cursor),
	})
	if err != nil {
		return err
	}

	d, err := decoder(globals, c.Raw)
	if err != nil {
		return err
	}
	for _, item := range page.Items {
		if err := check(d, item); err != nil {
			return err
		}
		if err := printRecord(globals.Out, item.Raw); err != nil {
			return err
		}
	}
	if page.Next != "" {
		fmt.Fprintf(globals.Err, "next cursor: %s\n", page.Next)
	}
	return nil
}

// decoder returns the validator for printed records, or nil when validation is off.
func decoder(globals *Globals, raw bool) (*repository.Decoder, error) {
	if raw {
		return nil, nil
	}
	return repository.NewDecoder(repository.WithLogger(globals.logger()))
}

// check runs a stored record through the same validation the repositories apply.
func check(d *repository.Decoder, item *store.Item) error {
	if d == nil {
		return nil
	}
	_, err := d.Decode("propctl", item.Raw)
	return err
}

package commands

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jacentio/propman/schema"
)

type SchemaCmd struct {
	Kind string `arg:"" optional:"" help:"only print this kind"`
}

func (c *SchemaCmd) Run(_ context.Context, globals *Globals) error {
	return c.print(globals.Out, schema.Default())
}

func (c *SchemaCmd) print(w io.Writer, reg *schema.Registry) error {
	defs := reg.All()
	if c.Kind != "" {
		def, err := reg.Lookup(schema.Kind(c.Kind))
		if err != nil {
			return err
		}
		defs = []*schema.Definition{def}
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tSCOPE\tPATTERN\tSLOT\tPARTITION\tSORT")
	for _, def := range defs {
		for _, a := range def.Patterns() {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				def.Kind, def.Scope, a.Name, a.Slot, describe(a.Partition), describe(a.Sort))
		}
	}
	return tw.Flush()
}

// describe renders a template with attribute placeholders, e.g. ORG#{organizationId}.
func describe(t schema.Template) string {
	var b strings.Builder
	b.WriteString(t.Prefix)
	for _, name := range t.Attrs {
		b.WriteString(schema.Separator + "{" + name + "}")
	}
	return b.String()
}

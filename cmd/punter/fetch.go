package main

import (
	"fmt"

	"github.com/fwojciec/punter"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	units, err := deps.Service.FetchUnits(deps.Ctx, punter.FetchRequest{
		Include:     c.Include,
		SaveSource:  c.SaveSource,
		Concurrency: c.Concurrency,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", punter.ErrorMessage(err))
		return err
	}

	if err := deps.Writer.WriteUnits(deps.Ctx, units); err != nil {
		fmt.Fprintf(deps.Stderr, "error writing output: %s\n", punter.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d units to %s\n", len(units), c.Out)
	return nil
}

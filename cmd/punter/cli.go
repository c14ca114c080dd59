package main

import (
	"context"
	"io"

	"github.com/fwojciec/punter"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Service punter.UnitService
	Writer  punter.UnitWriter
}

// FetchCmd handles the fetch-and-export operation.
type FetchCmd struct {
	Include     []string
	SaveSource  bool
	Concurrency int
	Out         string
}

package controller

import (
	"context"

	"github.com/itbasis/go-clock"
	"github.com/mww/fpl_analyzer/fpl"
	"github.com/mww/fpl_analyzer/model"
)

// C runs the position analyses without worrying about how charts are shown.
type C interface {
	// Fetch the players once and build every chart in Plan() order.
	// The first error aborts the remaining analyses.
	Analyze(ctx context.Context) ([]model.Chart, error)
	// Analyze and hand each chart to the presenter as soon as it is built.
	Run(ctx context.Context, p Presenter) error
	Plan() []Analysis
}

// Presenter displays a single chart.
type Presenter interface {
	Present(c model.Chart) error
}

type controller struct {
	clock clock.Clock
	fpl   fpl.Client
	plan  []Analysis
}

func New(clock clock.Clock, fpl fpl.Client) (C, error) {
	c := &controller{
		clock: clock,
		fpl:   fpl,
		plan:  DefaultPlan(),
	}
	return c, nil
}

func (c *controller) Plan() []Analysis {
	return c.plan
}

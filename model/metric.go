package model

import (
	"github.com/shopspring/decimal"
)

// Metric selects which player attribute an aggregation reads.
type Metric string

const (
	MetricTotalPoints Metric = "total_points"
	MetricCost        Metric = "now_cost"
	// MetricCount contributes 1 per player. Only meaningful as a denominator.
	MetricCount Metric = "count"
)

var metricValues = map[Metric]func(p *Player) decimal.Decimal{
	MetricTotalPoints: func(p *Player) decimal.Decimal { return decimal.NewFromInt(int64(p.TotalPoints)) },
	MetricCost:        func(p *Player) decimal.Decimal { return p.Cost.Millions() },
	MetricCount:       func(_ *Player) decimal.Decimal { return decimal.NewFromInt(1) },
}

// Value returns the player's value for the metric, with cost normalized to millions.
// The second return is false for an unknown metric.
func (m Metric) Value(p *Player) (decimal.Decimal, bool) {
	f, ok := metricValues[m]
	if !ok {
		return decimal.Zero, false
	}
	return f(p), true
}

func (m Metric) Valid() bool {
	_, ok := metricValues[m]
	return ok
}

package controller

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/mww/fpl_analyzer/model"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyPosition = errors.New("no players in position")
	ErrInvalidMetric = errors.New("invalid metric")
)

// EmptyPositionError lists every position that had no players (or a zero
// denominator) when aggregating.
type EmptyPositionError struct {
	Positions []model.Position
}

func (e *EmptyPositionError) Error() string {
	names := make([]string, 0, len(e.Positions))
	for _, p := range e.Positions {
		names = append(names, string(p))
	}
	return fmt.Sprintf("%v: %s", ErrEmptyPosition, strings.Join(names, ", "))
}

func (e *EmptyPositionError) Is(target error) bool {
	return target == ErrEmptyPosition
}

// AggregateByPosition sums primary for each position and divides it by either
// the number of players in the position (secondary == model.MetricCount) or
// the summed secondary metric. The result is sorted by value, highest first,
// with ties left in model.Positions order.
func AggregateByPosition(players []model.Player, primary, secondary model.Metric) (model.Series, error) {
	if !primary.Valid() || primary == model.MetricCount {
		return nil, fmt.Errorf("%w: %q can not be summed", ErrInvalidMetric, primary)
	}
	if !secondary.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMetric, secondary)
	}

	numerators := make(map[model.Position]decimal.Decimal, len(model.Positions))
	denominators := make(map[model.Position]decimal.Decimal, len(model.Positions))
	for i := range players {
		p := &players[i]
		if p.Position == model.POS_UNKNOWN {
			continue
		}
		n, _ := primary.Value(p)
		d, _ := secondary.Value(p)
		numerators[p.Position] = numerators[p.Position].Add(n)
		denominators[p.Position] = denominators[p.Position].Add(d)
	}

	var empty []model.Position
	for _, pos := range model.Positions {
		if denominators[pos].IsZero() {
			empty = append(empty, pos)
		}
	}
	if len(empty) > 0 {
		return nil, &EmptyPositionError{Positions: empty}
	}

	result := make(model.Series, 0, len(model.Positions))
	for _, pos := range model.Positions {
		v, _ := numerators[pos].Div(denominators[pos]).Float64()
		result = append(result, model.Bar{Label: string(pos), Value: v})
	}

	slices.SortStableFunc(result, func(a, b model.Bar) int {
		return cmp.Compare(b.Value, a.Value)
	})
	return result, nil
}

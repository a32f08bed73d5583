package controller

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/mww/fpl_analyzer/model"
)

// TopPlayers returns the n highest scoring players, labeled by display name
// and valued by the given metric. Players with equal points keep their
// original order. The input slice is not modified.
func TopPlayers(players []model.Player, n int, value model.Metric) (model.Series, error) {
	if !value.Valid() || value == model.MetricCount {
		return nil, fmt.Errorf("%w: %q can not be shown per player", ErrInvalidMetric, value)
	}
	return topPlayers(players, n, value), nil
}

func TopPoints(players []model.Player, n int) model.Series {
	return topPlayers(players, n, model.MetricTotalPoints)
}

func TopCosts(players []model.Player, n int) model.Series {
	return topPlayers(players, n, model.MetricCost)
}

// topPlayers expects a metric that has a per-player value.
func topPlayers(players []model.Player, n int, value model.Metric) model.Series {
	if n <= 0 || len(players) == 0 {
		return model.Series{}
	}

	sorted := slices.Clone(players)
	slices.SortStableFunc(sorted, func(a, b model.Player) int {
		return cmp.Compare(b.TotalPoints, a.TotalPoints)
	})
	sorted = sorted[:min(n, len(sorted))]

	result := make(model.Series, 0, len(sorted))
	for i := range sorted {
		p := &sorted[i]
		v, _ := value.Value(p)
		f, _ := v.Float64()
		bar := model.Bar{Label: p.WebName, Value: f}
		if value == model.MetricCost {
			bar.Text = p.Cost.String()
		}
		result = append(result, bar)
	}
	return result
}

package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mww/fpl_analyzer/model"
	log "github.com/sirupsen/logrus"
)

type AnalysisKind int

const (
	// Ratio of two metrics summed per position.
	KindPositionAverage AnalysisKind = iota
	// The top N players of a position by total points.
	KindTopPlayers
)

// Analysis describes one chart. For KindPositionAverage, Primary/Secondary are
// the numerator and denominator. For KindTopPlayers, Primary is the value
// shown for each of the N best players in Position.
type Analysis struct {
	Name      string
	Title     string
	XLabel    string
	YLabel    string
	Kind      AnalysisKind
	Primary   model.Metric
	Secondary model.Metric
	Position  model.Position
	N         int
}

func (a *Analysis) Build(players []model.Player) (model.Chart, error) {
	chart := model.Chart{
		Name:   a.Name,
		Title:  a.Title,
		XLabel: a.XLabel,
		YLabel: a.YLabel,
	}

	switch a.Kind {
	case KindPositionAverage:
		s, err := AggregateByPosition(players, a.Primary, a.Secondary)
		if err != nil {
			return model.Chart{}, fmt.Errorf("error building %s: %w", a.Name, err)
		}
		chart.Series = s
	case KindTopPlayers:
		s, err := TopPlayers(model.FilterByPosition(players, a.Position), a.N, a.Primary)
		if err != nil {
			return model.Chart{}, fmt.Errorf("error building %s: %w", a.Name, err)
		}
		chart.Series = s
	default:
		return model.Chart{}, fmt.Errorf("error building %s: unknown analysis kind %d", a.Name, a.Kind)
	}
	return chart, nil
}

// DefaultPlan is the sequence of charts used to pick a squad: position
// averages first, then the best players of each position by points and by
// cost, then cheap bench options.
func DefaultPlan() []Analysis {
	plan := []Analysis{
		{
			Name: "avg-points", Title: "Average points per player",
			XLabel: "Positions", YLabel: "Points / Player",
			Kind: KindPositionAverage, Primary: model.MetricTotalPoints, Secondary: model.MetricCount,
		},
		{
			Name: "avg-cost", Title: "Average price per player",
			XLabel: "Positions", YLabel: "$Millions / Player",
			Kind: KindPositionAverage, Primary: model.MetricCost, Secondary: model.MetricCount,
		},
		{
			Name: "points-per-million", Title: "Points per million",
			XLabel: "Positions", YLabel: "Points / Million",
			Kind: KindPositionAverage, Primary: model.MetricTotalPoints, Secondary: model.MetricCost,
		},
	}

	starters := []struct {
		pos model.Position
		n   int
	}{
		{pos: model.POS_GK, n: 5},
		{pos: model.POS_DEF, n: 5},
		{pos: model.POS_MID, n: 10},
		{pos: model.POS_FWD, n: 10},
	}
	for _, s := range starters {
		plan = append(plan,
			topAnalysis("top-points", "Top %d %s by total points", "Total Points", model.MetricTotalPoints, s.pos, s.n),
			topAnalysis("top-costs", "Cost of the top %d %s", "Cost", model.MetricCost, s.pos, s.n),
		)
	}

	bench := []struct {
		pos model.Position
		n   int
	}{
		{pos: model.POS_GK, n: 10},
		{pos: model.POS_DEF, n: 10},
		{pos: model.POS_MID, n: 40},
	}
	for _, b := range bench {
		plan = append(plan, topAnalysis("bench-costs", "Bench options: cost of the top %d %s", "Cost", model.MetricCost, b.pos, b.n))
	}

	return plan
}

func topAnalysis(suffix, titleFmt, yLabel string, m model.Metric, pos model.Position, n int) Analysis {
	return Analysis{
		Name:     fmt.Sprintf("%s-%s", strings.ToLower(string(pos)), suffix),
		Title:    fmt.Sprintf(titleFmt, n, pos),
		XLabel:   fmt.Sprintf("%s Players", pos),
		YLabel:   yLabel,
		Kind:     KindTopPlayers,
		Primary:  m,
		Position: pos,
		N:        n,
	}
}

func (c *controller) Analyze(ctx context.Context) ([]model.Chart, error) {
	charts := make([]model.Chart, 0, len(c.plan))
	err := c.run(ctx, func(chart model.Chart) error {
		charts = append(charts, chart)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return charts, nil
}

func (c *controller) Run(ctx context.Context, p Presenter) error {
	return c.run(ctx, func(chart model.Chart) error {
		if err := p.Present(chart); err != nil {
			return fmt.Errorf("error presenting %s: %w", chart.Name, err)
		}
		return nil
	})
}

func (c *controller) run(ctx context.Context, emit func(model.Chart) error) error {
	start := c.clock.Now()
	logger := log.WithField("run_id", uuid.NewString())
	logger.Info("analysis starting")

	players, err := c.fpl.LoadPlayers(ctx)
	if err != nil {
		return err
	}
	logger.WithFields(log.Fields{"players": len(players), "took": c.clock.Since(start)}).Info("players loaded")

	for i := range c.plan {
		a := &c.plan[i]
		chart, err := a.Build(players)
		if err != nil {
			return err
		}
		if err := emit(chart); err != nil {
			return err
		}
		logger.WithFields(log.Fields{"chart": chart.Name, "bars": len(chart.Series)}).Debug("chart built")
	}

	logger.WithFields(log.Fields{"charts": len(c.plan), "took": c.clock.Since(start)}).Info("analysis finished")
	return nil
}

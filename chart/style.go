package chart

import (
	"errors"
	"fmt"
)

// Style holds everything that affects how a chart looks. It is passed to the
// presenter explicitly; there is no package level styling.
type Style struct {
	Width        int
	Height       int
	MarginTop    int
	MarginRight  int
	MarginBottom int
	MarginLeft   int

	Background string
	BarColor   string
	AxisColor  string
	TextColor  string

	FontFamily      string
	TitleFontSize   int
	LabelFontSize   int // axis labels
	TickFontSize    int // category names under the bars
	ValueFontSize   int // numbers above the bars
	BarWidthRatio   float64
	RotateTicksOver int // tick labels are rotated when there are more bars than this
}

func DefaultStyle() Style {
	return Style{
		Width:           960,
		Height:          540,
		MarginTop:       60,
		MarginRight:     30,
		MarginBottom:    110,
		MarginLeft:      80,
		Background:      "#eaeaf2",
		BarColor:        "#38003b",
		AxisColor:       "#555555",
		TextColor:       "#222222",
		FontFamily:      "DejaVu Sans,Arial,sans-serif",
		TitleFontSize:   18,
		LabelFontSize:   14,
		TickFontSize:    8,
		ValueFontSize:   10,
		BarWidthRatio:   0.8,
		RotateTicksOver: 6,
	}
}

func (s *Style) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("chart size must be positive, got %dx%d", s.Width, s.Height)
	}
	if s.plotWidth() <= 0 || s.plotHeight() <= 0 {
		return errors.New("chart margins leave no room to plot")
	}
	if s.BarWidthRatio <= 0 || s.BarWidthRatio > 1 {
		return fmt.Errorf("bar width ratio must be in (0, 1], got %v", s.BarWidthRatio)
	}
	return nil
}

func (s *Style) plotWidth() int {
	return s.Width - s.MarginLeft - s.MarginRight
}

func (s *Style) plotHeight() int {
	return s.Height - s.MarginTop - s.MarginBottom
}

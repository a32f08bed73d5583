package chart

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/mww/fpl_analyzer/model"
)

var ErrPresentationUnavailable = errors.New("presentation unavailable")

// Surface is somewhere a rendered chart can be shown.
type Surface interface {
	Show(name, title string, svg []byte) error
}

type Presenter struct {
	style   Style
	surface Surface
}

// New creates a Presenter. A nil surface is allowed, but every call to
// Present will then fail with ErrPresentationUnavailable.
func New(style Style, surface Surface) (*Presenter, error) {
	if err := style.Validate(); err != nil {
		return nil, fmt.Errorf("invalid chart style: %w", err)
	}
	return &Presenter{style: style, surface: surface}, nil
}

func (p *Presenter) Present(c model.Chart) error {
	if p.surface == nil {
		return fmt.Errorf("%w: no display surface for %s", ErrPresentationUnavailable, c.Name)
	}

	var buf bytes.Buffer
	if err := p.Render(&buf, c); err != nil {
		return err
	}

	if err := p.surface.Show(c.Name, c.Title, buf.Bytes()); err != nil {
		if errors.Is(err, ErrPresentationUnavailable) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrPresentationUnavailable, err)
	}
	return nil
}

// Render draws the chart as SVG: one bar per entry in series order, with the
// value (one decimal place, or the bar's Text) printed past the end of each
// bar. Negative values hang below a zero line. An empty series draws just the
// frame and axes.
func (p *Presenter) Render(w io.Writer, c model.Chart) error {
	s := &p.style
	var buf bytes.Buffer
	canvas := svg.New(&buf)

	canvas.Start(s.Width, s.Height)
	canvas.Title(c.Title)
	canvas.Rect(0, 0, s.Width, s.Height, "fill:white")
	canvas.Rect(s.MarginLeft, s.MarginTop, s.plotWidth(), s.plotHeight(), "fill:"+s.Background)
	canvas.Gstyle(fmt.Sprintf("font-family:%s;fill:%s", s.FontFamily, s.TextColor))

	if c.Title != "" {
		canvas.Text(s.Width/2, s.MarginTop/2, c.Title, fmt.Sprintf("text-anchor:middle;font-size:%dpx", s.TitleFontSize))
	}

	drawBars(canvas, s, c.Series)
	drawAxes(canvas, s, c.XLabel, c.YLabel)

	canvas.Gend()
	canvas.End()

	_, err := w.Write(buf.Bytes())
	return err
}

func drawBars(canvas *svg.SVG, s *Style, series model.Series) {
	if len(series) == 0 {
		return
	}

	pw, ph := float64(s.plotWidth()), float64(s.plotHeight())
	baseline := s.MarginTop + s.plotHeight()
	slot := pw / float64(len(series))
	barWidth := max(1, int(slot*s.BarWidthRatio))

	// Leave headroom past the longest bars for their value labels.
	lo, hi := series.Bounds()
	lo, hi = lo*1.1, hi*1.1
	scale := 0.0
	if hi > lo {
		scale = ph / (hi - lo)
	}
	zero := s.MarginTop + int(math.Round(hi*scale))
	if lo < 0 {
		canvas.Line(s.MarginLeft, zero, s.MarginLeft+s.plotWidth(), zero,
			fmt.Sprintf("stroke:%s;stroke-width:1", s.AxisColor))
	}

	rotate := s.RotateTicksOver > 0 && len(series) > s.RotateTicksOver
	valueStyle := fmt.Sprintf("text-anchor:middle;font-size:%dpx", s.ValueFontSize)
	tickStyle := fmt.Sprintf("font-size:%dpx", s.TickFontSize)

	for i, b := range series {
		center := s.MarginLeft + int(slot*float64(i)+slot/2)
		h := int(math.Round(math.Abs(b.Value) * scale))
		text := b.Text
		if text == "" {
			text = formatValue(b.Value)
		}

		if b.Value < 0 {
			canvas.Rect(center-barWidth/2, zero, barWidth, h, "fill:"+s.BarColor)
			canvas.Text(center, zero+h+s.ValueFontSize+2, text, valueStyle)
		} else {
			canvas.Rect(center-barWidth/2, zero-h, barWidth, h, "fill:"+s.BarColor)
			canvas.Text(center, zero-h-4, text, valueStyle)
		}

		if rotate {
			canvas.TranslateRotate(center, baseline+s.TickFontSize+2, -45)
			canvas.Text(0, 0, b.Label, "text-anchor:end;"+tickStyle)
			canvas.Gend()
		} else {
			canvas.Text(center, baseline+s.TickFontSize+6, b.Label, "text-anchor:middle;"+tickStyle)
		}
	}
}

func drawAxes(canvas *svg.SVG, s *Style, xLabel, yLabel string) {
	baseline := s.MarginTop + s.plotHeight()
	axis := fmt.Sprintf("stroke:%s;stroke-width:1", s.AxisColor)
	canvas.Line(s.MarginLeft, baseline, s.MarginLeft+s.plotWidth(), baseline, axis)
	canvas.Line(s.MarginLeft, s.MarginTop, s.MarginLeft, baseline, axis)

	labelStyle := fmt.Sprintf("text-anchor:middle;font-size:%dpx", s.LabelFontSize)
	if xLabel != "" {
		canvas.Text(s.MarginLeft+s.plotWidth()/2, s.Height-s.LabelFontSize, xLabel, labelStyle)
	}
	if yLabel != "" {
		canvas.TranslateRotate(s.LabelFontSize+4, s.MarginTop+s.plotHeight()/2, -90)
		canvas.Text(0, 0, yLabel, labelStyle)
		canvas.Gend()
	}
}

func formatValue(v float64) string {
	return fmt.Sprintf("%.1f", math.Round(v*100)/100)
}

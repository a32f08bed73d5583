package model

// Bar is a single labeled value in a Series. Text, when set, is shown in
// place of the formatted value.
type Bar struct {
	Label string
	Value float64
	Text  string
}

// Series is an ordered label -> value mapping. Order is significant: it is
// the order bars are drawn in.
type Series []Bar

func (s Series) Labels() []string {
	labels := make([]string, 0, len(s))
	for _, b := range s {
		labels = append(labels, b.Label)
	}
	return labels
}

// Bounds returns the smallest and largest values, widened to include zero so
// every bar can be drawn from a zero line.
func (s Series) Bounds() (lo, hi float64) {
	for _, b := range s {
		lo = min(lo, b.Value)
		hi = max(hi, b.Value)
	}
	return lo, hi
}

type Chart struct {
	// Name identifies the chart on a surface, e.g. "gk-top-points".
	Name   string
	Title  string
	XLabel string
	YLabel string
	Series Series
}

package chart

import "remote-report/src/pkg/render"

// Options tune the chart builders. Zero values are replaced by WithDefaults.
type Options struct {
	DPI           int     `json:"dpi,omitempty"`
	ReferenceLine float64 `json:"reference_line,omitempty"`
	DateLayout    string  `json:"date_layout,omitempty"`
}

func (o Options) WithDefaults() Options {
	if o.DPI <= 0 {
		o.DPI = render.DefaultDPI
	}
	if o.ReferenceLine <= 0 {
		o.ReferenceLine = 8
	}
	if o.DateLayout == "" {
		o.DateLayout = "2006-01-02"
	}
	return o
}

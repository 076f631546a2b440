package chart

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"
	"github.com/tuumbleweed/xerr"

	"remote-report/src/pkg/render"
)

const (
	AccentColor  = "#1f77b4"
	WarningColor = "#c73636"
	GridColor    = "#EEEEEE"
	SpineColor   = "#DDDDDD"
	AxisText     = "#333333"
)

// Bar is one bar of the chart. Lines is the x tick label, one entry per line.
type Bar struct {
	Lines []string `json:"lines"`
	Value float64  `json:"value"`
	Text  string   `json:"text"`
}

// Reference is a horizontal line drawn across the plot area.
type Reference struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
	Color string  `json:"color"`
}

/*
BarChart is a complete drawing plan for a vertical bar chart.

Building the plan is pure; Render turns it into a PNG artifact.
*/
type BarChart struct {
	Name         string     `json:"name"`
	Title        string     `json:"title"`
	YLabel       string     `json:"y_label"`
	Bars         []Bar      `json:"bars"`
	BarWidth     float64    `json:"bar_width"`     // fraction of the slot
	TickRotation float64    `json:"tick_rotation"` // degrees, counter-clockwise
	Reference    *Reference `json:"reference,omitempty"`

	WidthInches  float64 `json:"width_inches"`
	HeightInches float64 `json:"height_inches"`
	DPI          int     `json:"dpi"`
}

// Ticks returns the y axis maximum and the tick step for the plan.
func (c BarChart) Ticks() (maximum float64, step float64) {
	highest := 0.0
	for _, bar := range c.Bars {
		highest = math.Max(highest, bar.Value)
	}
	if c.Reference != nil {
		highest = math.Max(highest, c.Reference.Value)
	}
	if highest <= 0 {
		highest = 1
	}

	step = niceStep(highest * 1.1 / 5)
	maximum = math.Ceil(highest*1.1/step) * step
	return maximum, step
}

// niceStep rounds raw up to 1, 2 or 5 times a power of ten.
func niceStep(raw float64) float64 {
	magnitude := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, factor := range []float64{1, 2, 5, 10} {
		if raw <= factor*magnitude {
			return factor * magnitude
		}
	}
	return 10 * magnitude
}

// Render draws the plan and encodes it as PNG.
func (c BarChart) Render() (artifact render.Artifact, e *xerr.Error) {
	canvas := render.NewCanvas(c.WidthInches, c.HeightInches, c.DPI)
	err := c.draw(canvas)
	if err != nil {
		e = xerr.NewError(fmt.Errorf("draw %s: %w", c.Name, err), "Unable to draw chart", c.Name)
		return render.Artifact{}, e
	}
	return canvas.Artifact(c.Name)
}

func (c BarChart) draw(canvas *render.Canvas) error {
	width := float64(canvas.Width())
	height := float64(canvas.Height())

	bottomMargin := canvas.DPI * 0.8
	if c.TickRotation != 0 {
		bottomMargin = canvas.DPI * 1.6
	}
	left, right := canvas.DPI*0.9, width-canvas.DPI*0.5
	top, bottom := canvas.DPI*0.6, height-bottomMargin
	plotHeight := bottom - top

	maximum, step := c.Ticks()
	toY := func(value float64) float64 {
		return bottom - value/maximum*plotHeight
	}

	// gridlines and y tick labels
	err := canvas.UseFont(false, 8)
	if err != nil {
		return err
	}
	canvas.SetLineWidth(canvas.Points(0.8))
	for value := step; value <= maximum+step/2; value += step {
		y := toY(value)
		canvas.SetHexColor(GridColor)
		canvas.DrawLine(left, y, right, y)
		canvas.Stroke()

		canvas.SetHexColor(AxisText)
		canvas.DrawStringAnchored(formatTick(value), left-canvas.Points(4), y, 1, 0.35)
	}
	canvas.SetHexColor(AxisText)
	canvas.DrawStringAnchored("0", left-canvas.Points(4), bottom, 1, 0.35)

	// bars
	slot := (right - left) / float64(max(len(c.Bars), 1))
	for index, bar := range c.Bars {
		center := left + slot*(float64(index)+0.5)
		barWidth := slot * c.BarWidth
		barTop := toY(bar.Value)

		canvas.SetHexColor(AccentColor)
		canvas.DrawRectangle(center-barWidth/2, barTop, barWidth, bottom-barTop)
		canvas.Fill()

		err = canvas.UseFont(true, 8)
		if err != nil {
			return err
		}
		canvas.DrawStringAnchored(bar.Text, center, barTop-canvas.Points(2), 0.5, 0)

		err = canvas.UseFont(false, 8)
		if err != nil {
			return err
		}
		canvas.SetHexColor(AxisText)
		c.drawTick(canvas, bar.Lines, center, bottom+canvas.Points(4))
	}

	// bottom spine
	canvas.SetHexColor(SpineColor)
	canvas.SetLineWidth(canvas.Points(1))
	canvas.DrawLine(left, bottom, right, bottom)
	canvas.Stroke()

	if c.Reference != nil {
		y := toY(c.Reference.Value)
		canvas.SetHexColor(c.Reference.Color)
		canvas.SetLineWidth(canvas.Points(1.5))
		canvas.DrawLine(left, y, right, y)
		canvas.Stroke()
		canvas.DrawStringAnchored(c.Reference.Label, right+canvas.Points(4), y, 0, 0.35)
	}

	// title and y label
	err = canvas.UseFont(true, 12)
	if err != nil {
		return err
	}
	canvas.SetHexColor(AccentColor)
	canvas.DrawStringAnchored(c.Title, width/2, top/2, 0.5, 0.5)

	err = canvas.UseFont(false, 8)
	if err != nil {
		return err
	}
	canvas.SetHexColor(AccentColor)
	labelX, labelY := canvas.DPI*0.3, top+plotHeight/2
	canvas.Push()
	canvas.RotateAbout(gg.Radians(-90), labelX, labelY)
	canvas.DrawStringAnchored(c.YLabel, labelX, labelY, 0.5, 0.5)
	canvas.Pop()

	return nil
}

// drawTick writes a tick label below the axis, rotated around its top-right corner when TickRotation is set.
func (c BarChart) drawTick(canvas *render.Canvas, lines []string, x float64, y float64) {
	if c.TickRotation != 0 {
		canvas.Push()
		canvas.RotateAbout(gg.Radians(-c.TickRotation), x, y)
		for index, line := range lines {
			canvas.DrawStringAnchored(line, x, y+float64(index)*canvas.FontHeight()*1.3, 1, 1)
		}
		canvas.Pop()
		return
	}

	for index, line := range lines {
		canvas.DrawStringAnchored(line, x, y+float64(index)*canvas.FontHeight()*1.3, 0.5, 1)
	}
}

func formatTick(value float64) string {
	if value == math.Trunc(value) {
		return fmt.Sprintf("%d", int(value))
	}
	return fmt.Sprintf("%g", value)
}

package imagetable

import (
	"fmt"

	"github.com/tuumbleweed/xerr"

	"remote-report/src/pkg/render"
)

const (
	HeaderColor   = "#1f77b4"
	TextColor     = "#4f4e4b"
	WarningColor  = "#c73636"
	BorderColor   = "#96948d"
	DividerColor  = "#808080"
	BorderWidth   = 1.5
	DividerWidth  = 1.15
	AlignLeft     = "left"
	AlignCenter   = "center"
	defaultPoints = 10
)

// Cell is one text placed in data coordinates.
type Cell struct {
	Row    int     `json:"row"` // -1 for headers
	Col    int     `json:"col"`
	Text   string  `json:"text"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Align  string  `json:"align"`
	Bold   bool    `json:"bold"`
	Color  string  `json:"color"`
	Points float64 `json:"points"`
	Header bool    `json:"header"`
}

// Divider is a horizontal line across the full width at data height Y.
type Divider struct {
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Color  string  `json:"color"`
	Dotted bool    `json:"dotted"`
}

/*
Table is a drawing plan for a table rendered as an image.

Coordinates are in data units: x spans [0, XMax] and y spans [0, YMax] with y pointing up,
so the first data row sits at the bottom of the image.
*/
type Table struct {
	Name     string    `json:"name"`
	Columns  int       `json:"columns"`
	Rows     int       `json:"rows"`
	XMax     float64   `json:"x_max"`
	YMax     float64   `json:"y_max"`
	Cells    []Cell    `json:"cells"`
	Dividers []Divider `json:"dividers"`

	WidthInches  float64 `json:"width_inches"`
	HeightInches float64 `json:"height_inches"`
}

// column describes where and how one column is written.
type column struct {
	header string
	x      float64
	align  string
}

// layout places headers and dividers for a table with the given columns and row count.
func layout(name string, columns []column, rows int, headerPoints float64) Table {
	table := Table{
		Name:    name,
		Columns: len(columns),
		Rows:    rows,
		XMax:    float64(len(columns) + 1),
		YMax:    float64(rows + 1),
	}

	for index, col := range columns {
		table.Cells = append(table.Cells, Cell{
			Row:    -1,
			Col:    index,
			Text:   col.header,
			X:      col.x,
			Y:      float64(rows) + 0.25,
			Align:  col.align,
			Bold:   true,
			Color:  HeaderColor,
			Points: headerPoints,
			Header: true,
		})
	}

	table.Dividers = append(table.Dividers,
		Divider{Y: float64(rows), Width: BorderWidth, Color: BorderColor},
		Divider{Y: 0, Width: BorderWidth, Color: BorderColor},
	)
	for y := 1; y < rows; y++ {
		table.Dividers = append(table.Dividers, Divider{Y: float64(y), Width: DividerWidth, Color: DividerColor, Dotted: true})
	}

	return table
}

// Cell returns the cell at (row, col) and whether it exists. Use row -1 for headers.
func (t Table) Cell(row int, col int) (Cell, bool) {
	for _, cell := range t.Cells {
		if cell.Row == row && cell.Col == col {
			return cell, true
		}
	}
	return Cell{}, false
}

// Render draws the plan at dpi and encodes it as PNG.
func (t Table) Render(dpi int) (artifact render.Artifact, e *xerr.Error) {
	canvas := render.NewCanvas(t.WidthInches, t.HeightInches, dpi)
	err := t.draw(canvas)
	if err != nil {
		e = xerr.NewError(fmt.Errorf("draw %s: %w", t.Name, err), "Unable to draw table", t.Name)
		return render.Artifact{}, e
	}
	return canvas.Artifact(t.Name)
}

func (t Table) draw(canvas *render.Canvas) error {
	margin := canvas.DPI * 0.3
	width := float64(canvas.Width()) - 2*margin
	height := float64(canvas.Height()) - 2*margin

	toX := func(x float64) float64 { return margin + x/t.XMax*width }
	toY := func(y float64) float64 { return margin + (1-y/t.YMax)*height }

	for _, divider := range t.Dividers {
		canvas.SetHexColor(divider.Color)
		canvas.SetLineWidth(canvas.Points(divider.Width))
		if divider.Dotted {
			dot := canvas.Points(divider.Width)
			canvas.SetDash(dot, 2*dot)
		}
		canvas.DrawLine(toX(0), toY(divider.Y), toX(t.XMax), toY(divider.Y))
		canvas.Stroke()
		canvas.SetDash()
	}

	for _, cell := range t.Cells {
		err := canvas.UseFont(cell.Bold, cell.Points)
		if err != nil {
			return err
		}

		ax := 0.5
		if cell.Align == AlignLeft {
			ax = 0
		}
		// headers sit on their baseline, data cells are centred on the row
		ay := 0.35
		if cell.Header {
			ay = 0
		}

		canvas.SetHexColor(cell.Color)
		canvas.DrawStringAnchored(cell.Text, toX(cell.X), toY(cell.Y), ax, ay)
	}

	return nil
}

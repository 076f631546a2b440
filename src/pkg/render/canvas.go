package render

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/tuumbleweed/xerr"
)

const DefaultDPI = 100

/*
Canvas is a white drawing surface sized in inches.

Line widths and font sizes passed to it are in points and scaled by DPI.
*/
type Canvas struct {
	*gg.Context
	DPI float64
}

func NewCanvas(widthInches, heightInches float64, dpi int) *Canvas {
	if dpi <= 0 {
		dpi = DefaultDPI
	}

	width := int(widthInches * float64(dpi))
	height := int(heightInches * float64(dpi))

	dc := gg.NewContext(width, height)
	dc.SetHexColor("#FFFFFF")
	dc.Clear()

	return &Canvas{Context: dc, DPI: float64(dpi)}
}

// Points converts a length in points to pixels.
func (c *Canvas) Points(points float64) float64 {
	return points * c.DPI / 72
}

// UseFont switches the active face. size is in points.
func (c *Canvas) UseFont(bold bool, size float64) error {
	face, err := newFace(bold, size, c.DPI)
	if err != nil {
		return err
	}
	c.SetFontFace(face)
	return nil
}

// Artifact encodes the canvas as PNG.
func (c *Canvas) Artifact(name string) (artifact Artifact, e *xerr.Error) {
	var buf bytes.Buffer

	err := imaging.Encode(&buf, c.Image(), imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
	if err != nil {
		e = xerr.NewError(fmt.Errorf("encode %s: %w", name, err), "Unable to encode image as PNG", name)
		return Artifact{}, e
	}

	artifact = Artifact{
		Name:   name,
		Width:  c.Width(),
		Height: c.Height(),
		PNG:    buf.Bytes(),
	}
	return artifact, nil
}

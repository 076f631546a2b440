package render

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var regularFont = sync.OnceValues(func() (*truetype.Font, error) {
	return truetype.Parse(goregular.TTF)
})

var boldFont = sync.OnceValues(func() (*truetype.Font, error) {
	return truetype.Parse(gobold.TTF)
})

// newFace builds a face where size is in points at the given dpi.
func newFace(bold bool, size float64, dpi float64) (font.Face, error) {
	parse := regularFont
	if bold {
		parse = boldFont
	}

	parsed, err := parse()
	if err != nil {
		return nil, fmt.Errorf("parse embedded font (bold=%t): %w", bold, err)
	}

	return truetype.NewFace(parsed, &truetype.Options{Size: size, DPI: dpi, Hinting: font.HintingFull}), nil
}

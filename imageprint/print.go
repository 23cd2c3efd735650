// Package imageprint prints images on terminal. Debug package.
//
// This package has an API with no stability guarantees.
package imageprint

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	ic "image/color"
	"image/png"
	"io"

	"github.com/gookit/color"
)

// Mode selects how an image is drawn.
type Mode int

const (
	MODE_NO_COLOR Mode = iota
	MODE_256_COLOR
	MODE_24BIT
	MODE_ITERM
	MODE_RASTERM
)

func (m Mode) String() string {
	switch m {
	case MODE_NO_COLOR:
		return "nocolor"
	case MODE_256_COLOR:
		return "256color"
	case MODE_24BIT:
		return "24bit"
	case MODE_ITERM:
		return "iterm"
	case MODE_RASTERM:
		return "rasterm"
	}
	return fmt.Sprintf("mode %d unknown", int(m))
}

// ParseMode returns the mode whose String is s.
func ParseMode(s string) (Mode, error) {
	for m := MODE_NO_COLOR; m <= MODE_RASTERM; m++ {
		if m.String() == s {
			return m, nil
		}
	}
	return MODE_NO_COLOR, fmt.Errorf("unknown print mode %q", s)
}

// Printer draws images as text.
type Printer struct {
	W io.Writer
	// Blanks draws pixels as spaces on a colored background instead of
	// characters picked by brightness.
	Blanks bool
}

// Print draws i in the passed mode. name is used by modes that transfer the
// image as a file.
func (p Printer) Print(m Mode, i image.Image, name string) error {
	switch m {
	case MODE_256_COLOR:
		p.rows(i, p.shade256)
	case MODE_24BIT:
		p.rows(i, p.shade24bit)
	case MODE_ITERM:
		return p.PrintITerm(i, name)
	case MODE_RASTERM:
		return PrintRasTerm(p.W, i)
	default:
		p.rows(i, p.shadeNoColor)
	}
	return nil
}

func (p Printer) rows(i image.Image, shade func(ic.Color)) {
	b := i.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			shade(i.At(x, y))
		}
		fmt.Fprintf(p.W, "\x1b[0m\n")
	}
}

// cell returns the two characters drawn for a pixel.
func (p Printer) cell(r, g, b uint32) string {
	if p.Blanks {
		return "  "
	}
	switch a := ((r + g + b) / 3) >> 8; {
	case a < 32:
		return ".."
	case a < 64:
		return "--"
	case a < 128:
		return "=="
	}
	return "##"
}

func (p Printer) shadeNoColor(col ic.Color) {
	r, g, b, a := col.RGBA()
	if a == 0 {
		fmt.Fprint(p.W, "  ")
		return
	}
	fmt.Fprint(p.W, p.cell(r, g, b))
}

func (p Printer) shade256(col ic.Color) {
	r, g, b, a := col.RGBA()
	if a == 0 {
		fmt.Fprint(p.W, "\x1b[0m  ")
		return
	}
	fmt.Fprint(p.W, color.RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8), true).Sprint(p.cell(r, g, b)))
}

func (p Printer) shade24bit(col ic.Color) {
	r, g, b, a := col.RGBA()
	if a == 0 {
		fmt.Fprint(p.W, "\x1b[0m  ")
		return
	}
	fmt.Fprintf(p.W, "\x1b[48;2;%d;%d;%dm%s\x1b[0m", uint8(r>>8), uint8(g>>8), uint8(b>>8), p.cell(r, g, b))
}

// PrintITerm draws an image using iTerm2's escape sequences.
//
// https://www.iterm2.com/documentation-images.html
func (p Printer) PrintITerm(i image.Image, name string) error {
	buf := &bytes.Buffer{}
	enc := base64.NewEncoder(base64.StdEncoding, buf)
	if err := png.Encode(enc, i); err != nil {
		return err
	}
	enc.Close()
	size := i.Bounds().Size()
	_, err := fmt.Fprintf(p.W, "\n\033]1337;File=name=%s;inline=1;size=%d,width=%dpx;height=%dpx:%s\a\n",
		base64.StdEncoding.EncodeToString([]byte(name)), buf.Len(), size.X, size.Y, buf.String())
	return err
}

//go:build go1.13 && !windows
// +build go1.13,!windows

package imageprint

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/BourgeoisBear/rasterm"
	"github.com/andybons/gogif"
)

// PrintRasTerm draws an image with the first graphics protocol the terminal
// supports: kitty, iTerm2 or sixel.
func PrintRasTerm(w io.Writer, i image.Image) error {
	var err error
	switch {
	case rasterm.IsTermKitty():
		err = rasterm.Settings{}.KittyWriteImage(w, i)
	case rasterm.IsTermItermWez():
		err = rasterm.Settings{}.ItermWriteImage(w, i)
	default:
		capable, serr := rasterm.IsSixelCapable()
		if serr != nil || !capable {
			return errors.New("terminal supports no known graphics protocol")
		}
		paletted := image.NewPaletted(i.Bounds(), nil)
		quantizer := gogif.MedianCutQuantizer{NumColor: 64}
		quantizer.Quantize(paletted, i.Bounds(), i, image.Point{})
		err = rasterm.Settings{}.SixelWriteImage(w, paletted)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	return nil
}

// Command cellprint prints one cell of an .ssbp project's atlas on the
// terminal. Without -cell, it lists the cells of the project.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-ssbp/imageprint"
	"badc0de.net/pkg/go-ssbp/paths"
	"badc0de.net/pkg/go-ssbp/ssbp"
	"badc0de.net/pkg/go-ssbp/ssbp/cellmap"
	"badc0de.net/pkg/go-ssbp/texture"
)

var (
	cellName          = flag.String("cell", "", "Name of the cell to print")
	mapName           = flag.String("map", "", "Only consider cells of this cell map")
	mode              = flag.String("mode", imageprint.MODE_24BIT.String(), "One of nocolor, 256color, 24bit, iterm or rasterm")
	blanks            = flag.Bool("blanks", true, "Whether to just use colored blanks instead of some bad ascii art")
	downsize          = flag.Bool("downsize", true, "Whether to shrink the cell to fit the terminal")
	textureDir        = flag.String("texture_dir", "", "Directory holding texture archives; derived from the input path when empty")
	extractedArchives = flag.Bool("extracted_archives", false, "Read texture archives from the directories they were unpacked into")

	locale string
)

// findCell returns the cell map holding the named cell and the cell itself.
func findCell(cells *cellmap.Table, mapName, name string) (*cellmap.Cell, cellmap.Entry, error) {
	for _, cm := range cells.Encountered() {
		if mapName != "" && cm.Name != mapName {
			continue
		}
		for _, e := range cm.Entries {
			if e.Name == name {
				return cm, e, nil
			}
		}
	}
	return nil, cellmap.Entry{}, errors.Errorf("no cell named %q", name)
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// crop returns the part of atlas covered by e.
func crop(atlas image.Image, e cellmap.Entry) (image.Image, error) {
	origin := atlas.Bounds().Min
	r := image.Rect(int(e.X), int(e.Y), int(e.X)+int(e.Width), int(e.Y)+int(e.Height)).Add(origin)
	if !r.In(atlas.Bounds()) {
		return nil, errors.Errorf("cell %q at %v lies outside its atlas %v", e.Name, r, atlas.Bounds())
	}
	si, ok := atlas.(subImager)
	if !ok {
		return nil, errors.Errorf("cannot crop %T", atlas)
	}
	return si.SubImage(r), nil
}

func list(cells *cellmap.Table) {
	for _, cm := range cells.Sorted() {
		fmt.Printf("%s (%s)\n", cm.Name, cm.ImagePath)
		for _, e := range cm.Entries {
			fmt.Printf("\t%s\t%dx%d at %d,%d\n", e.Name, e.Width, e.Height, e.X, e.Y)
		}
	}
}

func fit(img image.Image, m imageprint.Mode) image.Image {
	ts, err := GetTermSize()
	if err != nil {
		glog.V(1).Infof("not downsizing: %v", err)
		return img
	}
	if (m == imageprint.MODE_ITERM || m == imageprint.MODE_RASTERM) && ts.WSXPixel != 0 && ts.WSYPixel != 0 {
		return resize.Thumbnail(ts.WSXPixel/2, ts.WSYPixel/2, img, resize.Lanczos3)
	}
	// Character modes draw a pixel two columns wide.
	return resize.Thumbnail(ts.WSCol/2, ts.WSRow, img, resize.Lanczos3)
}

func main() {
	paths.SetupLocaleFlag("locale", &locale)
	flag.Set("logtostderr", "true")
	flagutil.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <file.ssbp>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	input := flag.Arg(0)
	m, err := imageprint.ParseMode(*mode)
	if err != nil {
		glog.Exitf("%v", err)
	}

	data, err := os.ReadFile(input)
	if err != nil {
		glog.Exitf("%v", err)
	}
	p, err := ssbp.Open(data)
	if err != nil {
		glog.Exitf("%s: %v", input, err)
	}
	cells, err := cellmap.Resolve(p)
	if err != nil {
		glog.Exitf("%s: %v", input, err)
	}
	if *cellName == "" {
		list(cells)
		return
	}

	cm, e, err := findCell(cells, *mapName, *cellName)
	if err != nil {
		glog.Exitf("%s: %v", input, err)
	}

	textures := texture.New(filepath.Dir(input), "")
	if *textureDir != "" {
		textures.ArchiveDirs = []string{*textureDir}
	} else if d, err := paths.Resolve(input, locale); err == nil {
		textures.ArchiveDirs = []string{d.Textures, d.Locale}
	} else {
		glog.V(1).Infof("%v", err)
	}
	if *extractedArchives {
		textures.OpenArchive = texture.OpenExtracted
	}
	atlas, err := textures.Decode(cm.ImagePath)
	if err != nil {
		glog.Exitf("%v", err)
	}
	img, err := crop(atlas, e)
	if err != nil {
		glog.Exitf("%v", err)
	}
	if *downsize {
		img = fit(img, m)
	}

	pr := imageprint.Printer{W: os.Stdout, Blanks: *blanks}
	if err := pr.Print(m, img, e.Name+".png"); err != nil {
		glog.Exitf("printing %q: %v", e.Name, err)
	}
}

// Package sspj converts a decoded .ssbp project into the XML documents of a
// SpriteStudio 6 project: one .ssce per cell map, one .ssae per anime pack,
// one .ssee per effect, and the .sspj tying them together.
//
// Documents are handed to a Sink as they are rendered. Image files referenced
// by cell maps are located (and, when needed, re-encoded) by a
// TextureResolver. Errors returned by either are passed through unchanged.
package sspj

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-ssbp/ssbp"
	"badc0de.net/pkg/go-ssbp/ssbp/anime"
	"badc0de.net/pkg/go-ssbp/ssbp/cellmap"
	"badc0de.net/pkg/go-ssbp/ssbp/effect"
	"badc0de.net/pkg/go-ssbp/xmls"
)

const (
	CELLMAP_EXT   = ".ssce"
	ANIMEPACK_EXT = ".ssae"
	EFFECT_EXT    = ".ssee"
	PROJECT_EXT   = ".sspj"
)

// Texture is an image as a cell map document refers to it.
type Texture struct {
	// Name is the file name written into the cell map.
	Name   string
	Width  int
	Height int
}

// TextureResolver maps an image path stored in a cell map to the image file
// the converted project uses.
type TextureResolver interface {
	Resolve(imagePath string) (Texture, error)
}

// TextureResolverFunc adapts a function to TextureResolver.
type TextureResolverFunc func(imagePath string) (Texture, error)

func (f TextureResolverFunc) Resolve(imagePath string) (Texture, error) {
	return f(imagePath)
}

// Sink persists rendered documents under their file names.
type Sink interface {
	Put(name string, data []byte) error
}

// Settings are the values of the project settings block that may be changed
// from their defaults.
type Settings struct {
	ExportBaseDirectory      string
	RenderBGColor            string
	EffectGridSize           int
	MaxLoadableImageWidth    int
	MaxLoadableImageHeight   int
	MaxLoadableImageFileSize int64
}

// DefaultSettings returns the settings the authoring tool creates new
// projects with.
func DefaultSettings() Settings {
	return Settings{
		ExportBaseDirectory:      "Export",
		RenderBGColor:            "FF606060",
		EffectGridSize:           50,
		MaxLoadableImageWidth:    8192,
		MaxLoadableImageHeight:   8192,
		MaxLoadableImageFileSize: 73400320,
	}
}

// Converter converts .ssbp files.
type Converter struct {
	Textures TextureResolver
	Settings Settings
}

// NewConverter returns a converter with default settings.
func NewConverter(textures TextureResolver) *Converter {
	return &Converter{Textures: textures, Settings: DefaultSettings()}
}

// Result lists the documents written by a conversion, in the order the
// project document lists them.
type Result struct {
	Project    string
	CellMaps   []string
	AnimePacks []string
	Effects    []string
}

// Convert decodes data and writes the project named name to sink.
//
// Nothing is written until the whole file has decoded. Documents already
// handed to sink stay there if a later document fails.
func (c *Converter) Convert(name string, data []byte, sink Sink) (*Result, error) {
	p, err := ssbp.Open(data)
	if err != nil {
		return nil, errors.Wrap(err, "reading header")
	}
	cells, err := cellmap.Resolve(p)
	if err != nil {
		return nil, errors.Wrap(err, "resolving cells")
	}
	packs, err := anime.DecodeAll(p, cells)
	if err != nil {
		return nil, err
	}
	effects, err := effect.DecodeAll(p, cells)
	if err != nil {
		return nil, err
	}
	glog.V(1).Infof("%s: %d cell maps, %d anime packs, %d effects", name, cells.Len(), len(packs), len(effects))

	res := &Result{}
	for _, cm := range cells.Sorted() {
		tex, err := c.Textures.Resolve(cm.ImagePath)
		if err != nil {
			return nil, err
		}
		fn := cm.Name + CELLMAP_EXT
		if err := put(sink, fn, renderCellMap(cm, tex)); err != nil {
			return nil, err
		}
		res.CellMaps = append(res.CellMaps, fn)
	}
	for _, pack := range packs {
		fn := pack.Name + ANIMEPACK_EXT
		if err := put(sink, fn, renderAnimePack(pack, cells)); err != nil {
			return nil, err
		}
		res.AnimePacks = append(res.AnimePacks, fn)
	}
	for _, e := range effects {
		fn := e.Name + EFFECT_EXT
		if err := put(sink, fn, renderEffect(e)); err != nil {
			return nil, err
		}
		res.Effects = append(res.Effects, fn)
	}

	res.Project = name + PROJECT_EXT
	if err := put(sink, res.Project, c.renderProject(name, res)); err != nil {
		return nil, err
	}
	return res, nil
}

func put(sink Sink, name string, doc interface{}) error {
	b, err := xmls.Marshal(doc)
	if err != nil {
		return errors.Wrapf(err, "rendering %s", name)
	}
	glog.V(2).Infof("writing %s (%d bytes)", name, len(b))
	return sink.Put(name, b)
}

// Package paths locates sprite projects and the directories their textures
// are stored in.
//
// Extracted game data keeps sprites under a COMMON tree and their textures in
// the 4K counterpart of the same path, with localized textures in a sibling
// tree named after the locale:
//
//	data/COMMON/ui/ss/menu.ssbp
//	data/COMMON/4K/ui/ss/menu.apk
//	data/EN/4K/ui/ss/menu.apk
package paths

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

const (
	SPRITE_EXT     = ".ssbp"
	COMMON_DIR     = "COMMON"
	RESOLUTION_DIR = "4K"
	DEFAULT_LOCALE = "EN"
)

// Dirs are the directories a sprite's images are looked up in.
type Dirs struct {
	// Sprites holds the .ssbp files and any loose images.
	Sprites string
	// Textures and Locale hold texture archives, searched in that order.
	Textures string
	Locale   string
}

// NotInCommonTreeError is returned for inputs outside a COMMON tree.
type NotInCommonTreeError struct {
	Path string
}

func (e *NotInCommonTreeError) Error() string {
	return "no " + COMMON_DIR + " directory in " + e.Path
}

// IsSprite tells whether path names an .ssbp file.
func IsSprite(path string) bool {
	return strings.EqualFold(filepath.Ext(path), SPRITE_EXT)
}

// Resolve returns the directories for input, which is either an .ssbp file
// or a directory of them.
func Resolve(input, locale string) (Dirs, error) {
	fi, err := os.Stat(input)
	if err != nil {
		return Dirs{}, errors.Wrap(err, "reading input")
	}
	dir := filepath.Clean(input)
	if !fi.IsDir() {
		if !IsSprite(input) {
			return Dirs{}, errors.Errorf("%s is not an %s file", input, SPRITE_EXT)
		}
		dir = filepath.Dir(dir)
	}
	if locale == "" {
		locale = DEFAULT_LOCALE
	}

	parts := strings.Split(dir, string(filepath.Separator))
	for i, p := range parts {
		if p != COMMON_DIR {
			continue
		}
		root := strings.Join(parts[:i], string(filepath.Separator))
		if root == "" && filepath.IsAbs(dir) {
			root = string(filepath.Separator)
		}
		rest := filepath.Join(parts[i+1:]...)
		d := Dirs{
			Sprites:  dir,
			Textures: filepath.Join(root, COMMON_DIR, RESOLUTION_DIR, rest),
			Locale:   filepath.Join(root, locale, RESOLUTION_DIR, rest),
		}
		glog.V(1).Infof("%s: textures in %s, then %s", input, d.Textures, d.Locale)
		return d, nil
	}
	return Dirs{}, &NotInCommonTreeError{Path: input}
}

// FindSprites returns every .ssbp file under dir, in lexical order.
func FindSprites(dir string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && IsSprite(path) {
			out = append(out, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "searching %s", dir)
	}
	return out, nil
}

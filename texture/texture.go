// Package texture locates the images referenced by cell maps.
//
// Loose PNG and JPEG images are used as they are. DDS images, loose or
// stored inside a texture archive, are decoded and re-encoded as PNG into
// the output directory, where later conversions reuse them.
package texture

import (
	"bytes"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/golang/glog"
	_ "github.com/lukegb/dds"
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"

	"badc0de.net/pkg/go-ssbp/sspj"
)

const (
	ARCHIVE_EXT = ".apk"
	DDS_EXT     = ".dds"
	PNG_EXT     = ".png"
)

// Archive is an opened texture archive.
type Archive interface {
	ReadFile(name string) ([]byte, error)
	Close() error
}

// ArchiveOpener opens the texture archive stored at path.
type ArchiveOpener func(path string) (Archive, error)

// ErrNoArchiveReader is returned for images inside a texture archive when the
// resolver was not given a way to open archives.
var ErrNoArchiveReader = errors.New("no texture archive reader configured")

// Resolver implements sspj.TextureResolver over the local filesystem.
type Resolver struct {
	// SourceDir holds loose images, usually the directory of the .ssbp.
	SourceDir string
	// ArchiveDirs are searched in order for texture archives.
	ArchiveDirs []string
	// OutputDir receives re-encoded and copied images. When empty, nothing
	// is written and loose images are referenced where they are.
	OutputDir string
	// OpenArchive opens texture archives.
	OpenArchive ArchiveOpener

	once  sync.Once
	group *singleflight.Group
}

// New returns a resolver reading loose images from sourceDir and writing into
// outputDir.
func New(sourceDir, outputDir string, archiveDirs ...string) *Resolver {
	return &Resolver{
		SourceDir:   sourceDir,
		ArchiveDirs: archiveDirs,
		OutputDir:   outputDir,
		group:       &singleflight.Group{},
	}
}

// ForDirs returns a resolver with other source and output directories that
// shares r's archive setup. Resolvers derived from one another never write
// the same output file concurrently.
func (r *Resolver) ForDirs(sourceDir, outputDir string) *Resolver {
	return &Resolver{
		SourceDir:   sourceDir,
		ArchiveDirs: r.ArchiveDirs,
		OutputDir:   outputDir,
		OpenArchive: r.OpenArchive,
		group:       r.flight(),
	}
}

// flight returns the group deduplicating writes, creating it on first use
// for resolvers not made by New.
func (r *Resolver) flight() *singleflight.Group {
	r.once.Do(func() {
		if r.group == nil {
			r.group = &singleflight.Group{}
		}
	})
	return r.group
}

func split(imagePath string) (base, ext string) {
	ext = filepath.Ext(imagePath)
	return strings.TrimSuffix(imagePath, ext), strings.ToLower(ext)
}

// Resolve returns the texture to reference for imagePath, writing it into
// the output directory if it is not there yet.
func (r *Resolver) Resolve(imagePath string) (sspj.Texture, error) {
	base, ext := split(imagePath)
	name := imagePath
	if ext == ARCHIVE_EXT || ext == DDS_EXT {
		name = base + PNG_EXT
	}
	if r.OutputDir == "" {
		img, err := r.Decode(imagePath)
		if err != nil {
			return sspj.Texture{}, err
		}
		b := img.Bounds()
		return sspj.Texture{Name: name, Width: b.Dx(), Height: b.Dy()}, nil
	}

	out := filepath.Join(r.OutputDir, name)
	v, err, shared := r.flight().Do(out, func() (interface{}, error) {
		if cfg, err := decodeConfig(out); err == nil {
			glog.V(2).Infof("texture %s: reusing %s", imagePath, out)
			return cfg, nil
		} else if !os.IsNotExist(errors.Cause(err)) {
			return nil, err
		}
		if name == imagePath {
			return r.copyLoose(imagePath, out)
		}
		img, err := r.Decode(imagePath)
		if err != nil {
			return nil, err
		}
		glog.V(1).Infof("texture %s: re-encoding as %s", imagePath, out)
		if err := publish(out, func(w io.Writer) error { return png.Encode(w, img) }); err != nil {
			return nil, err
		}
		b := img.Bounds()
		return image.Config{Width: b.Dx(), Height: b.Dy()}, nil
	})
	if err != nil {
		return sspj.Texture{}, err
	}
	if shared && bool(glog.V(3)) {
		glog.Infof("texture %s: shared result for %s", imagePath, out)
	}
	cfg := v.(image.Config)
	return sspj.Texture{Name: name, Width: cfg.Width, Height: cfg.Height}, nil
}

func (r *Resolver) copyLoose(imagePath, out string) (image.Config, error) {
	src := filepath.Join(r.SourceDir, imagePath)
	data, err := os.ReadFile(src)
	if err != nil {
		return image.Config{}, errors.Wrapf(err, "reading image %s", src)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return image.Config{}, errors.Wrapf(err, "reading dimensions of %s", src)
	}
	if samePath(src, out) {
		return cfg, nil
	}
	glog.V(1).Infof("texture %s: copying to %s", imagePath, out)
	if err := publish(out, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	}); err != nil {
		return image.Config{}, err
	}
	return cfg, nil
}

// Decode decodes the image imagePath refers to without writing anything.
func (r *Resolver) Decode(imagePath string) (image.Image, error) {
	base, ext := split(imagePath)
	var data []byte
	var err error
	var from string
	switch ext {
	case ARCHIVE_EXT:
		from = imagePath + ":" + base + DDS_EXT
		data, err = r.readArchive(imagePath, base+DDS_EXT)
	default:
		from = filepath.Join(r.SourceDir, imagePath)
		data, err = os.ReadFile(from)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading image %s", from)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "decoding image %s", from)
	}
	glog.V(2).Infof("texture %s: decoded %s image, %v", imagePath, format, img.Bounds())
	return img, nil
}

func (r *Resolver) readArchive(archivePath, entry string) ([]byte, error) {
	for _, dir := range r.ArchiveDirs {
		p := filepath.Join(dir, archivePath)
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if r.OpenArchive == nil {
			return nil, ErrNoArchiveReader
		}
		a, err := r.OpenArchive(p)
		if err != nil {
			return nil, errors.Wrapf(err, "opening texture archive %s", p)
		}
		defer a.Close()
		return a.ReadFile(entry)
	}
	return nil, errors.Wrapf(os.ErrNotExist, "texture archive not found in %v", r.ArchiveDirs)
}

// extracted is an archive unpacked into a directory named after it.
type extracted string

func (d extracted) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(string(d), filepath.Base(filepath.FromSlash(name))))
}

func (extracted) Close() error {
	return nil
}

// OpenExtracted opens an archive that was unpacked next to its original
// location: "tex/a.apk" is read from the directory "tex/a". Entries are
// looked up by file name only.
func OpenExtracted(path string) (Archive, error) {
	dir := strings.TrimSuffix(path, filepath.Ext(path))
	if fi, err := os.Stat(dir); err != nil {
		return nil, err
	} else if !fi.IsDir() {
		return nil, errors.Errorf("%s is not a directory", dir)
	}
	return extracted(dir), nil
}

func decodeConfig(path string) (image.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return image.Config{}, err
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return image.Config{}, errors.Wrapf(err, "reading dimensions of %s", path)
	}
	return cfg, nil
}

// publish writes a file under a temporary name and renames it into place, so
// that a partially written image is never seen under its final name.
func publish(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "creating output directory")
	}
	tmp, err := os.CreateTemp(dir, ".texture-*")
	if err != nil {
		return errors.Wrap(err, "creating temporary image")
	}
	tmpPath := tmp.Name()
	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.Wrapf(err, "writing %s", path)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Wrapf(err, "writing %s", path)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.Wrapf(err, "publishing %s", path)
	}
	return nil
}

func samePath(a, b string) bool {
	aa, err1 := filepath.Abs(a)
	bb, err2 := filepath.Abs(b)
	return err1 == nil && err2 == nil && aa == bb
}

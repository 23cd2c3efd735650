// Command ssbp2sspj converts SpriteStudio .ssbp binaries back into editable
// projects.
//
// Usage:
//
//	ssbp2sspj [flags] <file.ssbp|dir> <outdir>
//
// A directory is searched recursively; each project found is written into
// its own subdirectory of outdir, mirroring the input tree.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"
	"github.com/klauspost/compress/zip"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"badc0de.net/pkg/go-ssbp/config"
	"badc0de.net/pkg/go-ssbp/paths"
	"badc0de.net/pkg/go-ssbp/sspj"
	"badc0de.net/pkg/go-ssbp/texture"
)

var (
	configPath        = flag.String("config", "", "Optional ini file with conversion settings")
	textureDir        = flag.String("texture_dir", "", "Directory holding texture archives; derived from the input path when empty")
	workers           = flag.Int("workers", 4, "Number of files converted in parallel")
	zipOutput         = flag.Bool("zip", false, "Write each project as a zip archive instead of a directory")
	extractedArchives = flag.Bool("extracted_archives", false, "Read texture archives from the directories they were unpacked into")

	locale string
)

// job is one .ssbp to convert.
type job struct {
	input string
	// out is the directory, or with -zip the archive, written for input.
	out  string
	name string
}

// applyFlags overrides c with the flags set on the command line.
func applyFlags(c *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "locale":
			c.Input.Locale = locale
		case "texture_dir":
			c.Input.TextureDir = *textureDir
		case "extracted_archives":
			c.Input.ExtractedArchives = *extractedArchives
		case "workers":
			c.Convert.Workers = *workers
		case "zip":
			c.Convert.Zip = *zipOutput
		}
	})
}

func jobs(input, output string, zipped bool) ([]job, error) {
	fi, err := os.Stat(input)
	if err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	out := func(rel string) job {
		name := strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel))
		dst := filepath.Join(output, strings.TrimSuffix(rel, filepath.Ext(rel)))
		if zipped {
			dst += ".zip"
		}
		return job{out: dst, name: name}
	}
	if !fi.IsDir() {
		j := out(filepath.Base(input))
		if !zipped {
			j.out = output
		}
		j.input = input
		return []job{j}, nil
	}
	files, err := paths.FindSprites(input)
	if err != nil {
		return nil, err
	}
	var js []job
	for _, f := range files {
		rel, err := filepath.Rel(input, f)
		if err != nil {
			return nil, err
		}
		j := out(rel)
		j.input = f
		js = append(js, j)
	}
	return js, nil
}

type converter struct {
	cfg      *config.Config
	settings sspj.Settings
	textures *texture.Resolver
}

// textureDirs returns the directories searched for the texture archives of
// input, in order.
func (c *converter) textureDirs(input string) []string {
	if c.cfg.Input.TextureDir != "" {
		return []string{c.cfg.Input.TextureDir}
	}
	d, err := paths.Resolve(input, c.cfg.Input.Locale)
	if err != nil {
		var nc *paths.NotInCommonTreeError
		if errors.As(err, &nc) {
			glog.V(1).Infof("%s: not in a %s tree, only loose images are found", input, paths.COMMON_DIR)
			return nil
		}
		glog.Warningf("%s: %v", input, err)
		return nil
	}
	return []string{d.Textures, d.Locale}
}

func (c *converter) convert(j job) error {
	data, err := os.ReadFile(j.input)
	if err != nil {
		return err
	}

	if !c.cfg.Convert.Zip {
		textures := c.textures.ForDirs(filepath.Dir(j.input), j.out)
		textures.ArchiveDirs = c.textureDirs(j.input)
		conv := &sspj.Converter{Textures: textures, Settings: c.settings}
		_, err := conv.Convert(j.name, data, sspj.DirSink{Dir: j.out})
		return err
	}

	tmp, err := os.MkdirTemp("", "ssbp2sspj-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmp)
	if err := os.MkdirAll(filepath.Dir(j.out), 0755); err != nil {
		return err
	}
	f, err := os.Create(j.out)
	if err != nil {
		return err
	}
	defer f.Close()

	textures := c.textures.ForDirs(filepath.Dir(j.input), tmp)
	textures.ArchiveDirs = c.textureDirs(j.input)
	conv := &sspj.Converter{Textures: textures, Settings: c.settings}
	sink := sspj.NewZipSink(zip.NewWriter(f))
	if _, err := conv.Convert(j.name, data, sink); err != nil {
		return err
	}
	if err := sink.AddDir(tmp); err != nil {
		return err
	}
	if err := sink.Close(); err != nil {
		return err
	}
	return f.Close()
}

func main() {
	paths.SetupLocaleFlag("locale", &locale)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <file.ssbp|dir> <outdir>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Set("logtostderr", "true")
	flagutil.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	input, output := flag.Arg(0), flag.Arg(1)

	cfg, err := config.Load(*configPath)
	if err != nil {
		glog.Exitf("%v", err)
	}
	applyFlags(cfg)
	if cfg.Convert.Workers < 1 {
		glog.Exitf("-workers must be at least 1, got %d", cfg.Convert.Workers)
	}

	js, err := jobs(input, output, cfg.Convert.Zip)
	if err != nil {
		glog.Exitf("%v", err)
	}
	if len(js) == 0 {
		glog.Exitf("no %s files in %s", paths.SPRITE_EXT, input)
	}

	textures := texture.New("", "")
	if cfg.Input.ExtractedArchives {
		textures.OpenArchive = texture.OpenExtracted
	}
	c := &converter{cfg: cfg, settings: cfg.Settings(), textures: textures}

	var failed int32
	var g errgroup.Group
	g.SetLimit(cfg.Convert.Workers)
	for _, j := range js {
		j := j
		g.Go(func() error {
			if err := c.convert(j); err != nil {
				glog.Errorf("%s: %v", j.input, err)
				atomic.AddInt32(&failed, 1)
				return nil
			}
			glog.Infof("%s -> %s", j.input, j.out)
			return nil
		})
	}
	g.Wait()

	if failed > 0 {
		glog.Errorf("%d of %d files failed", failed, len(js))
		glog.Flush()
		os.Exit(1)
	}
}

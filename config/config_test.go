package config

import (
	"os"
	"path/filepath"
	"testing"

	"badc0de.net/pkg/go-ssbp/ttesting"
)

func TestDefault(t *testing.T) {
	c := Default()
	ttesting.AssertEqualString(t, "locale", c.Input.Locale, "EN")
	ttesting.AssertEqualString(t, "texture dir", c.Input.TextureDir, "")
	ttesting.AssertEqualInt(t, "workers", c.Convert.Workers, 4)
	ttesting.AssertEqualBool(t, "zip", c.Convert.Zip, false)

	s := c.Settings()
	ttesting.AssertEqualString(t, "export base directory", s.ExportBaseDirectory, "Export")
	ttesting.AssertEqualInt(t, "effect grid size", s.EffectGridSize, 50)
	ttesting.AssertEqualInt(t, "max image width", s.MaxLoadableImageWidth, 8192)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ssbp2sspj.ini")
	err := os.WriteFile(path, []byte(`
[input]
locale = JP

[convert]
workers = 2
zip = true

[project]
effect_grid_size = 16
`), 0644)
	if err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("failed to load: %s", err)
	}
	ttesting.AssertEqualString(t, "locale", c.Input.Locale, "JP")
	ttesting.AssertEqualInt(t, "workers", c.Convert.Workers, 2)
	ttesting.AssertEqualBool(t, "zip", c.Convert.Zip, true)
	ttesting.AssertEqualInt(t, "effect grid size", c.Settings().EffectGridSize, 16)
	ttesting.AssertEqualString(t, "untouched default", c.Settings().RenderBGColor, "FF606060")
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.ini")); err == nil {
		t.Errorf("got nil error for a missing file")
	}
}

func TestLoadBadWorkers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ini")
	if err := os.WriteFile(path, []byte("[convert]\nworkers = 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Errorf("got nil error for zero workers")
	}
}

package ssbptest

import (
	"badc0de.net/pkg/go-ssbp/ssbp"
)

// Minimal returns a project with one cell map ("atlas", index 0, image
// "atlas.png") holding one cell ("cell0", index 0), and one anime pack
// ("pack") whose single normal part ("root") has two one-frame clips at 30
// fps: "Setup" and "Run". Both clips use a neutral default pose pointing at
// cell0, and Run's only frame sets no attributes.
func Minimal() []byte {
	b := New()
	cells := b.Cells("atlas", 0, "cell0")

	frame := &Stream{}
	frame.Part(0, 0)
	pack := b.AnimePack(Pack{
		Name:  "pack",
		Parts: []Part{{Name: "root", Type: ssbp.PART_TYPE_NORMAL, Parent: -1}},
		Clips: []Clip{
			{Name: "Setup", FPS: 30, Frames: [][]byte{frame.Bytes()}},
			{Name: "Run", FPS: 30, Frames: [][]byte{frame.Bytes()}},
		},
	})
	return b.Finish(cells, []ssbp.AnimePack{pack})
}

package anime

import (
	"testing"

	"badc0de.net/pkg/go-ssbp/ssbp"
	"badc0de.net/pkg/go-ssbp/ssbp/cellmap"
	"badc0de.net/pkg/go-ssbp/ssbp/ssbptest"
	"badc0de.net/pkg/go-ssbp/ttesting"
)

var twoParts = []ssbptest.Part{
	{Name: "root", Type: ssbp.PART_TYPE_NORMAL, Parent: -1},
	{Name: "arm", Type: ssbp.PART_TYPE_NORMAL, Parent: 0},
}

// decodePack lays out one pack on top of a two-cell atlas and decodes it.
func decodePack(t *testing.T, parts []ssbptest.Part, clips ...ssbptest.Clip) (*Pack, error) {
	t.Helper()
	b := ssbptest.New()
	cells := b.Cells("atlas", 0, "cell0", "cell1")
	pack := b.AnimePack(ssbptest.Pack{Name: "pack", Parts: parts, Clips: clips})
	p, err := ssbp.Open(b.Finish(cells, []ssbp.AnimePack{pack}))
	if err != nil {
		t.Fatalf("failed to open project: %s", err)
	}
	tbl, err := cellmap.Resolve(p)
	if err != nil {
		t.Fatalf("failed to resolve cells: %s", err)
	}
	packs, err := DecodeAll(p, tbl)
	if err != nil {
		return nil, err
	}
	return packs[0], nil
}

func mustDecodePack(t *testing.T, parts []ssbptest.Part, clips ...ssbptest.Clip) *Pack {
	t.Helper()
	pack, err := decodePack(t, parts, clips...)
	if err != nil {
		t.Fatalf("failed to decode pack: %s", err)
	}
	return pack
}

func frames(streams ...*ssbptest.Stream) [][]byte {
	out := make([][]byte, len(streams))
	for i, s := range streams {
		out[i] = s.Bytes()
	}
	return out
}

func track(t *testing.T, c Clip, part string, tag Tag) []Keyframe {
	t.Helper()
	for _, pt := range c.Parts {
		if pt.Part != part {
			continue
		}
		for _, tr := range pt.Tracks {
			if tr.Tag == tag {
				return tr.Keys
			}
		}
	}
	return nil
}

func tags(c Clip, part string) []Tag {
	var out []Tag
	for _, pt := range c.Parts {
		if pt.Part == part {
			for _, tr := range pt.Tracks {
				out = append(out, tr.Tag)
			}
		}
	}
	return out
}

func TestStreamFieldsAscending(t *testing.T) {
	for i := 1; i < len(streamFields); i++ {
		if streamFields[i].flag <= streamFields[i-1].flag {
			t.Errorf("field %s (0x%x) listed after 0x%x", streamFields[i].tag, uint32(streamFields[i].flag), uint32(streamFields[i-1].flag))
		}
	}
	ttesting.AssertEqualInt(t, "field-bearing flags", len(streamFields), 29)
}

func TestSetupNeutral(t *testing.T) {
	pack := mustDecodePack(t, twoParts[:1], ssbptest.Clip{Name: SETUP_CLIP, FPS: 30})
	c := pack.Clips[0]
	ttesting.AssertEqualBool(t, "setup", c.Setup, true)
	ttesting.AssertEqualInt(t, "parts with keys", len(c.Parts), 1)

	got := tags(c, "root")
	ttesting.AssertEqualInt(t, "tracks", len(got), 2)
	ttesting.AssertEqualString(t, "first track", string(got[0]), "CELL")
	ttesting.AssertEqualString(t, "second track", string(got[1]), "HIDE")

	cell := track(t, c, "root", TAG_CELL)[0].Value.(CellRef)
	ttesting.AssertEqualString(t, "cell", cell.Name, "cell0")
	ttesting.AssertEqualString(t, "cell map", cell.MapName, "atlas")
	ttesting.AssertEqualBool(t, "hidden", bool(track(t, c, "root", TAG_HIDE)[0].Value.(Bool)), false)
}

func TestSetupNonNeutral(t *testing.T) {
	root := ssbp.NeutralAnimInitial(0)
	root.CellIndex = 1
	root.Opacity = 51
	root.Scale[0] = 2
	root.Position[1] = -4
	root.Priority = uint16(0xFFFE)
	root.LowFlags = uint32(PART_FLAG_FLIP_H)
	null := ssbp.NeutralAnimInitial(1)
	null.LowFlags = uint32(PART_FLAG_INVISIBLE)

	parts := []ssbptest.Part{
		{Name: "root", Type: ssbp.PART_TYPE_NORMAL, Parent: -1},
		{Name: "null", Type: ssbp.PART_TYPE_NULL, Parent: 0},
	}
	pack := mustDecodePack(t, parts, ssbptest.Clip{
		Name:    SETUP_CLIP,
		Initial: []ssbp.AnimInitial{root, null},
	})
	c := pack.Clips[0]

	got := tags(c, "root")
	want := []Tag{TAG_CELL, TAG_POSY, TAG_SCLX, TAG_ALPH, TAG_PRIO, TAG_FLPH, TAG_HIDE}
	ttesting.AssertEqualInt(t, "root tracks", len(got), len(want))
	for i := range want {
		if i < len(got) {
			ttesting.AssertEqualString(t, "root track", string(got[i]), string(want[i]))
		}
	}
	ttesting.AssertEqualString(t, "cell", track(t, c, "root", TAG_CELL)[0].Value.(CellRef).Name, "cell1")
	ttesting.AssertEqualFloat32(t, "opacity", float32(track(t, c, "root", TAG_ALPH)[0].Value.(Float)), float32(51)/255)
	ttesting.AssertEqualInt(t, "priority", int(track(t, c, "root", TAG_PRIO)[0].Value.(Int)), -2)

	got = tags(c, "null")
	ttesting.AssertEqualInt(t, "null tracks", len(got), 1)
	ttesting.AssertEqualBool(t, "null hidden", bool(track(t, c, "null", TAG_HIDE)[0].Value.(Bool)), true)
}

func TestFramePositionAndScale(t *testing.T) {
	s := &ssbptest.Stream{}
	s.Part(0, uint32(PART_FLAG_POSITION_X|PART_FLAG_SCALE_Y)).F32(12.5).F32(0.5)
	ttesting.AssertEqualInt(t, "record bytes", s.Len(), 6+8)
	s.Part(1, uint32(PART_FLAG_PRIORITY)).I16(7)

	pack := mustDecodePack(t, twoParts, ssbptest.Clip{Name: "Run", Frames: frames(s)})
	c := pack.Clips[0]

	got := tags(c, "root")
	ttesting.AssertEqualInt(t, "root tracks", len(got), 2)
	ttesting.AssertEqualString(t, "first", string(got[0]), "POSX")
	ttesting.AssertEqualString(t, "second", string(got[1]), "SCLY")
	posx := track(t, c, "root", TAG_POSX)
	ttesting.AssertEqualInt(t, "posx frame", posx[0].Frame, 0)
	ttesting.AssertEqualFloat32(t, "posx", float32(posx[0].Value.(Float)), 12.5)
	ttesting.AssertEqualFloat32(t, "scly", float32(track(t, c, "root", TAG_SCLY)[0].Value.(Float)), 0.5)

	// The second part only decodes right if the first consumed exactly 8 bytes.
	ttesting.AssertEqualInt(t, "arm priority", int(track(t, c, "arm", TAG_PRIO)[0].Value.(Int)), 7)
}

func TestFrameRestoresDefaults(t *testing.T) {
	f0 := &ssbptest.Stream{}
	f0.Part(0, uint32(PART_FLAG_POSITION_X|PART_FLAG_OPACITY)).F32(3).U16(255)
	f1 := &ssbptest.Stream{}
	f1.Part(0, 0)
	f2 := &ssbptest.Stream{}
	f2.Part(0, 0)

	pack := mustDecodePack(t, twoParts[:1], ssbptest.Clip{Name: "Run", Frames: frames(f0, f1, f2)})
	c := pack.Clips[0]

	posx := track(t, c, "root", TAG_POSX)
	ttesting.AssertEqualInt(t, "posx keys", len(posx), 2)
	if len(posx) == 2 {
		ttesting.AssertEqualInt(t, "restore frame", posx[1].Frame, 1)
		ttesting.AssertEqualFloat32(t, "restored", float32(posx[1].Value.(Float)), 0)
	}
	// Full opacity equals the default, so nothing needs restoring.
	ttesting.AssertEqualInt(t, "alph keys", len(track(t, c, "root", TAG_ALPH)), 1)
}

func TestFrameStateBits(t *testing.T) {
	var streams []*ssbptest.Stream
	for _, flags := range []PartFlag{PART_FLAG_INVISIBLE, PART_FLAG_INVISIBLE | PART_FLAG_FLIP_V, 0} {
		s := &ssbptest.Stream{}
		s.Part(0, uint32(flags))
		streams = append(streams, s)
	}
	pack := mustDecodePack(t, twoParts[:1], ssbptest.Clip{Name: "Run", Frames: frames(streams...)})
	c := pack.Clips[0]

	hide := track(t, c, "root", TAG_HIDE)
	ttesting.AssertEqualInt(t, "hide keys", len(hide), 2)
	if len(hide) == 2 {
		ttesting.AssertEqualInt(t, "hidden at", hide[0].Frame, 0)
		ttesting.AssertEqualBool(t, "hidden", bool(hide[0].Value.(Bool)), true)
		ttesting.AssertEqualInt(t, "shown at", hide[1].Frame, 2)
		ttesting.AssertEqualBool(t, "shown", bool(hide[1].Value.(Bool)), false)
	}
	ttesting.AssertEqualInt(t, "flpv keys", len(track(t, c, "root", TAG_FLPV)), 2)
	ttesting.AssertEqualInt(t, "flph keys", len(track(t, c, "root", TAG_FLPH)), 0)
}

func TestFramePartsColor(t *testing.T) {
	s := &ssbptest.Stream{}
	// blend add, whole quad
	s.Part(0, uint32(PART_FLAG_PARTS_COLOR)).U16(uint16(COLOR_BLEND_ADD) | VERTEX_FLAG_ALL<<8).U32(0xFF102030).F32(0.5)
	ttesting.AssertEqualInt(t, "whole quad record", s.Len(), 6+2+8)
	// blend mul, LT and LB
	s.Part(1, uint32(PART_FLAG_PARTS_COLOR|PART_FLAG_PRIORITY)).
		U16(uint16(COLOR_BLEND_MUL) | 0x05<<8).
		U32(0xFF0000FF).F32(1).
		U32(0xFF00FF00).F32(0.25).
		I16(3)

	pack := mustDecodePack(t, twoParts, ssbptest.Clip{Name: "Run", Frames: frames(s)})
	c := pack.Clips[0]

	whole := track(t, c, "root", TAG_PCOL)[0].Value.(PartsColor)
	ttesting.AssertEqualBool(t, "whole", whole.All, true)
	ttesting.AssertEqualString(t, "whole blend", whole.Blend.String(), "add")
	ttesting.AssertEqualUint32(t, "whole color", whole.Colors[0].ARGB, 0xFF102030)
	ttesting.AssertEqualFloat32(t, "whole rate", whole.Colors[0].Rate, 0.5)

	corners := track(t, c, "arm", TAG_PCOL)[0].Value.(PartsColor)
	ttesting.AssertEqualBool(t, "corners", corners.All, false)
	ttesting.AssertEqualInt(t, "mask", int(corners.Mask), 0x05)
	ttesting.AssertEqualUint32(t, "LT", corners.Colors[VERTEX_LT].ARGB, 0xFF0000FF)
	ttesting.AssertEqualUint32(t, "LB", corners.Colors[VERTEX_LB].ARGB, 0xFF00FF00)
	ttesting.AssertEqualFloat32(t, "LB rate", corners.Colors[VERTEX_LB].Rate, 0.25)
	ttesting.AssertEqualUint32(t, "RT unset", corners.Colors[VERTEX_RT].ARGB, 0)
	ttesting.AssertEqualInt(t, "priority after colors", int(track(t, c, "arm", TAG_PRIO)[0].Value.(Int)), 3)
}

func TestFramePartsColorUnknownBlend(t *testing.T) {
	s := &ssbptest.Stream{}
	s.Part(0, uint32(PART_FLAG_PARTS_COLOR|PART_FLAG_PRIORITY)).U16(7 | VERTEX_FLAG_ALL<<8).U32(0xFF445566).F32(1).I16(4)
	ttesting.AssertEqualInt(t, "stream bytes", s.Len(), 6+2+8+2)

	pack := mustDecodePack(t, twoParts[:1], ssbptest.Clip{Name: "Run", Frames: frames(s)})
	c := pack.Clips[0]
	pc := track(t, c, "root", TAG_PCOL)[0].Value.(PartsColor)
	ttesting.AssertEqualString(t, "blend", pc.Blend.String(), COLOR_BLEND_MIX.String())
	ttesting.AssertEqualUint32(t, "color", pc.Colors[0].ARGB, 0xFF445566)
	ttesting.AssertEqualInt(t, "priority after colors", int(track(t, c, "root", TAG_PRIO)[0].Value.(Int)), 4)
}

func TestFrameVertexOffsets(t *testing.T) {
	s := &ssbptest.Stream{}
	s.Part(0, uint32(PART_FLAG_VERTEX_TRANSFORM|PART_FLAG_SIZE_X)).U16(0x0A).I16(1).I16(-1).I16(4).I16(5).F32(64)

	pack := mustDecodePack(t, twoParts[:1], ssbptest.Clip{Name: "Run", Frames: frames(s)})
	c := pack.Clips[0]

	vo := track(t, c, "root", TAG_VERT)[0].Value.(VertexOffsets)
	ttesting.AssertEqualInt(t, "mask", int(vo.Mask), 0x0A)
	ttesting.AssertEqualInt(t, "RT x", int(vo.Offsets[VERTEX_RT][0]), 1)
	ttesting.AssertEqualInt(t, "RT y", int(vo.Offsets[VERTEX_RT][1]), -1)
	ttesting.AssertEqualInt(t, "RB y", int(vo.Offsets[VERTEX_RB][1]), 5)
	ttesting.AssertEqualFloat32(t, "size after offsets", float32(track(t, c, "root", TAG_SIZX)[0].Value.(Float)), 64)
}

func TestFrameInstanceAndEffectBlocks(t *testing.T) {
	s := &ssbptest.Stream{}
	s.Part(0, uint32(PART_FLAG_INSTANCE_KEYFRAME))
	for i := 0; i < INSTANCE_KEYFRAME_SIZE/4; i++ {
		s.U32(0xAAAAAAAA)
	}
	// MASK is bit 28, so its field precedes the effect block.
	s.Part(1, uint32(PART_FLAG_EFFECT_KEYFRAME|PART_FLAG_MASK)).U16(9)
	for i := 0; i < EFFECT_KEYFRAME_SIZE/4; i++ {
		s.U32(0xBBBBBBBB)
	}
	ttesting.AssertEqualInt(t, "stream bytes", s.Len(), 6+24+6+2+16)

	pack := mustDecodePack(t, twoParts, ssbptest.Clip{Name: "Run", Frames: frames(s)})
	c := pack.Clips[0]
	ttesting.AssertEqualInt(t, "root tracks", len(tags(c, "root")), 0)
	got := tags(c, "arm")
	ttesting.AssertEqualInt(t, "arm tracks", len(got), 1)
	ttesting.AssertEqualInt(t, "mask", int(track(t, c, "arm", TAG_MASK)[0].Value.(Int)), 9)
}

func TestFrameCellKeys(t *testing.T) {
	s := &ssbptest.Stream{}
	s.Part(0, uint32(PART_FLAG_CELL_INDEX)).U16(1)
	s.Part(1, uint32(PART_FLAG_CELL_INDEX)).U16(NO_CELL)

	pack := mustDecodePack(t, twoParts, ssbptest.Clip{Name: "Run", Frames: frames(s)})
	c := pack.Clips[0]
	ttesting.AssertEqualString(t, "root cell", track(t, c, "root", TAG_CELL)[0].Value.(CellRef).Name, "cell1")
	ttesting.AssertEqualBool(t, "arm has no cell", track(t, c, "arm", TAG_CELL)[0].Value.(CellRef).None, true)

	bad := &ssbptest.Stream{}
	bad.Part(0, uint32(PART_FLAG_CELL_INDEX)).U16(2)
	_, err := decodePack(t, twoParts[:1], ssbptest.Clip{Name: "Run", Frames: frames(bad)})
	var mce *ssbp.MissingCellError
	ttesting.AssertErrorAs(t, "cell past table", err, &mce)
}

func TestFrameRestatedPartIndex(t *testing.T) {
	s := &ssbptest.Stream{}
	s.Part(1, uint32(PART_FLAG_POSITION_X)).F32(10)
	s.Part(0, uint32(PART_FLAG_POSITION_Y)).F32(20)

	pack := mustDecodePack(t, twoParts, ssbptest.Clip{Name: "Run", Frames: frames(s)})
	c := pack.Clips[0]
	// Keys follow record order, whatever index a record restates.
	ttesting.AssertEqualFloat32(t, "root", float32(track(t, c, "root", TAG_POSX)[0].Value.(Float)), 10)
	ttesting.AssertEqualFloat32(t, "arm", float32(track(t, c, "arm", TAG_POSY)[0].Value.(Float)), 20)
	ttesting.AssertEqualInt(t, "root tracks", len(tags(c, "root")), 1)
	ttesting.AssertEqualInt(t, "arm tracks", len(tags(c, "arm")), 1)
}

func TestFramePartIndexOutOfRange(t *testing.T) {
	for _, idx := range []int16{9, -1} {
		s := &ssbptest.Stream{}
		s.Part(idx, uint32(PART_FLAG_SCALE_X)).F32(2)
		pack, err := decodePack(t, twoParts[:1], ssbptest.Clip{Name: "Run", Frames: frames(s)})
		if err != nil {
			t.Errorf("index %d: failed to decode: %s", idx, err)
			continue
		}
		got := track(t, pack.Clips[0], "root", TAG_SCLX)
		ttesting.AssertEqualFloat32(t, "scale", float32(got[0].Value.(Float)), 2)
	}
}

func TestLabels(t *testing.T) {
	s := &ssbptest.Stream{}
	s.Part(0, 0)
	pack := mustDecodePack(t, twoParts[:1], ssbptest.Clip{
		Name:   "Run",
		Frames: frames(s, s),
		Labels: []ssbptest.Label{{Name: "hit", Frame: 1}},
	})
	c := pack.Clips[0]
	ttesting.AssertEqualInt(t, "labels", len(c.Labels), 1)
	ttesting.AssertEqualString(t, "label", c.Labels[0].Name, "hit")
	ttesting.AssertEqualInt(t, "label frame", c.Labels[0].Frame, 1)
	ttesting.AssertEqualInt(t, "total frames", c.TotalFrames, 2)
	ttesting.AssertEqualInt(t, "no keys", len(c.Parts), 0)
}

func TestMinimal(t *testing.T) {
	p, err := ssbp.Open(ssbptest.Minimal())
	if err != nil {
		t.Fatalf("failed to open project: %s", err)
	}
	tbl, err := cellmap.Resolve(p)
	if err != nil {
		t.Fatalf("failed to resolve cells: %s", err)
	}
	packs, err := DecodeAll(p, tbl)
	if err != nil {
		t.Fatalf("failed to decode: %s", err)
	}
	ttesting.AssertEqualInt(t, "packs", len(packs), 1)
	ttesting.AssertEqualInt(t, "clips", len(packs[0].Clips), 2)
	ttesting.AssertEqualInt(t, "setup parts", len(packs[0].Clips[0].Parts), 1)
	ttesting.AssertEqualInt(t, "run parts", len(packs[0].Clips[1].Parts), 0)
	ttesting.AssertEqualInt(t, "fps", packs[0].Clips[1].FPS, 30)
}

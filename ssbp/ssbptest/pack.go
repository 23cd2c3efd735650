package ssbptest

import (
	"badc0de.net/pkg/go-ssbp/ssbp"
)

// Part describes one part of a Pack.
type Part struct {
	Name    string
	Type    ssbp.PartType
	Parent  int16
	RefName string
}

// Label describes one label of a Clip.
type Label struct {
	Name  string
	Frame uint16
}

// Clip describes one animation of a Pack. A nil Initial gets a neutral
// default pose per part. Frames holds one complete stream per frame.
type Clip struct {
	Name    string
	FPS     uint16
	Initial []ssbp.AnimInitial
	Frames  [][]byte
	Labels  []Label
}

// Pack describes an anime pack.
type Pack struct {
	Name  string
	Parts []Part
	Clips []Clip
}

// AnimePack lays out everything p refers to and returns the pack record,
// ready to be stored with Put as part of the project's pack table.
func (b *Builder) AnimePack(p Pack) ssbp.AnimePack {
	parts := make([]ssbp.PartEntry, len(p.Parts))
	for i, part := range p.Parts {
		parts[i] = ssbp.PartEntry{
			Name:        b.String(part.Name),
			Index:       int16(i),
			ParentIndex: part.Parent,
			Type:        part.Type,
		}
		if part.RefName != "" {
			parts[i].RefName = b.String(part.RefName)
		}
	}
	partsOff := b.Put(parts)

	anims := make([]ssbp.AnimEntry, len(p.Clips))
	for i, c := range p.Clips {
		initial := c.Initial
		if initial == nil {
			for j := range p.Parts {
				initial = append(initial, ssbp.NeutralAnimInitial(uint16(j)))
			}
		}
		anims[i] = ssbp.AnimEntry{
			Name:        b.String(c.Name),
			DefaultData: ssbp.Ref[ssbp.AnimInitial]{Offset: b.Put(initial)},
			TotalFrames: uint16(len(c.Frames)),
			FPS:         c.FPS,
		}
		if len(c.Frames) > 0 {
			anims[i].EndFrame = uint16(len(c.Frames) - 1)
			offsets := make([]uint32, len(c.Frames))
			for f, frame := range c.Frames {
				offsets[f] = b.Raw(frame)
			}
			anims[i].FrameData = ssbp.Ref[uint32]{Offset: b.Put(offsets)}
		}
		if len(c.Labels) > 0 {
			labels := make([]ssbp.LabelEntry, len(c.Labels))
			for j, l := range c.Labels {
				labels[j] = ssbp.LabelEntry{Name: b.String(l.Name), Time: l.Frame}
			}
			anims[i].Labels = ssbp.Ref[ssbp.LabelEntry]{Offset: b.Put(labels)}
			anims[i].NumLabels = uint16(len(labels))
		}
	}
	animsOff := b.Put(anims)

	return ssbp.AnimePack{
		Name:     b.String(p.Name),
		Parts:    ssbp.Ref[ssbp.PartEntry]{Offset: partsOff},
		Anims:    ssbp.Ref[ssbp.AnimEntry]{Offset: animsOff},
		NumParts: uint16(len(p.Parts)),
		NumAnims: uint16(len(p.Clips)),
	}
}

// Cells lays out one cell map named name, with image name+".png", holding one
// 32x32 cell per passed name, indexed from zero. It returns the cell entries
// for the caller to store in the project's flat cell table.
func (b *Builder) Cells(name string, index uint16, cells ...string) []ssbp.CellEntry {
	cm := b.Put(&ssbp.CellMap{
		Name:       b.String(name),
		ImagePath:  b.String(name + ".png"),
		Index:      index,
		WrapMode:   ssbp.WRAP_MODE_CLAMP,
		FilterMode: ssbp.FILTER_MODE_LINEAR,
	})
	out := make([]ssbp.CellEntry, len(cells))
	for i, c := range cells {
		out[i] = ssbp.CellEntry{
			Name:    b.String(c),
			CellMap: ssbp.Ref[ssbp.CellMap]{Offset: cm},
			Index:   uint16(i),
			X:       uint16(32 * i),
			Width:   32,
			Height:  32,
			U2:      1,
			V2:      1,
		}
	}
	return out
}

// Finish stores the cell table and the anime packs, points the header at
// them, and returns the finished file.
func (b *Builder) Finish(cells []ssbp.CellEntry, packs []ssbp.AnimePack) []byte {
	h := b.Header()
	if h.DataID == 0 {
		h.DataID = ssbp.DATA_ID
	}
	if h.Version == 0 {
		h.Version = ssbp.DATA_VERSION
	}
	if len(cells) > 0 {
		h.Cells = ssbp.Ref[ssbp.CellEntry]{Offset: b.Put(cells)}
		h.NumCells = uint16(len(cells))
	}
	if len(packs) > 0 {
		h.AnimePacks = ssbp.Ref[ssbp.AnimePack]{Offset: b.Put(packs)}
		h.NumAnimePacks = uint16(len(packs))
	}
	return b.Bytes()
}

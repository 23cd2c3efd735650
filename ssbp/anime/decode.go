// Package anime decodes the anime packs of an .ssbp project: the rig's parts
// and, for every clip, one track of keyframes per part and attribute.
//
// The clip named "Setup" carries the rig's default pose and is rebuilt from
// the per-part default records. Every other clip is rebuilt from its frame
// stream: per frame, one record per part, each a part index and a 32-bit flag
// word followed by the fields the word's bits announce. Nothing in a stream
// states its length, so a field read with the wrong width desynchronizes
// everything after it.
package anime

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-ssbp/ssbp"
	"badc0de.net/pkg/go-ssbp/ssbp/cellmap"
)

// SETUP_CLIP is the name of the clip holding the default pose.
const SETUP_CLIP = "Setup"

// DecodeAll decodes every anime pack of the project.
func DecodeAll(p *ssbp.Project, cells *cellmap.Table) ([]*Pack, error) {
	packs, err := p.AnimePacks()
	if err != nil {
		return nil, errors.Wrap(err, "reading anime pack table")
	}
	out := make([]*Pack, 0, len(packs))
	for i, ap := range packs {
		pack, err := Decode(p, ap, cells)
		if err != nil {
			return nil, errors.Wrapf(err, "anime pack %d", i)
		}
		out = append(out, pack)
	}
	return out, nil
}

type decoder struct {
	v     *ssbp.View
	cells *cellmap.Table
	parts []Part
}

// Decode decodes one anime pack. Cells referenced by keyframes are resolved
// through cells.
func Decode(p *ssbp.Project, ap ssbp.AnimePack, cells *cellmap.Table) (*Pack, error) {
	v := p.View()
	name, err := v.String(ap.Name)
	if err != nil {
		return nil, errors.Wrap(err, "reading anime pack name")
	}
	entries, err := ap.PartEntries(v)
	if err != nil {
		return nil, errors.Wrapf(err, "reading parts of %q", name)
	}
	parts, err := decodeParts(v, entries)
	if err != nil {
		return nil, errors.Wrapf(err, "anime pack %q", name)
	}
	anims, err := ap.AnimEntries(v)
	if err != nil {
		return nil, errors.Wrapf(err, "reading animations of %q", name)
	}
	glog.V(2).Infof("anime pack %q: %d parts, %d animations", name, len(parts), len(anims))

	d := &decoder{v: v, cells: cells, parts: parts}
	pack := &Pack{Name: name, Parts: parts, Clips: make([]Clip, 0, len(anims))}
	for i, e := range anims {
		clip, err := d.clip(e)
		if err != nil {
			return nil, errors.Wrapf(err, "anime pack %q, animation %d", name, i)
		}
		pack.Clips = append(pack.Clips, clip)
	}
	return pack, nil
}

func (d *decoder) clip(e ssbp.AnimEntry) (Clip, error) {
	name, err := d.v.String(e.Name)
	if err != nil {
		return Clip{}, errors.Wrap(err, "reading name")
	}
	c := Clip{
		Name:         name,
		Setup:        name == SETUP_CLIP,
		FPS:          int(e.FPS),
		StartFrame:   int(e.StartFrame),
		EndFrame:     int(e.EndFrame),
		TotalFrames:  int(e.TotalFrames),
		CanvasWidth:  int(e.CanvasWidth),
		CanvasHeight: int(e.CanvasHeight),
		CanvasPivotX: e.CanvasPivotX,
		CanvasPivotY: e.CanvasPivotY,
	}

	labels, err := e.LabelEntries(d.v)
	if err != nil {
		return Clip{}, errors.Wrapf(err, "reading labels of %q", name)
	}
	for _, l := range labels {
		ln, err := d.v.String(l.Name)
		if err != nil {
			return Clip{}, errors.Wrapf(err, "reading label of %q", name)
		}
		c.Labels = append(c.Labels, Label{Name: ln, Frame: int(l.Time)})
	}

	initial, err := e.InitialData(d.v, len(d.parts))
	if err != nil {
		return Clip{}, errors.Wrapf(err, "reading default pose of %q", name)
	}

	ts := newTrackSet(len(d.parts))
	if c.Setup {
		err = d.setup(initial, ts)
	} else {
		err = d.frames(e, initial, ts)
	}
	if err != nil {
		return Clip{}, errors.Wrapf(err, "animation %q", name)
	}
	c.Parts = ts.build(d.parts)
	glog.V(2).Infof("animation %q: %d frames at %d fps, %d keys on %d parts", name, c.TotalFrames, c.FPS, ts.count, len(c.Parts))
	return c, nil
}

// setup keys every field of the default pose that differs from the neutral
// value. Normal parts additionally always get their cell and visibility.
func (d *decoder) setup(initial []ssbp.AnimInitial, ts *trackSet) error {
	for i, part := range d.parts {
		a := &initial[i]
		flags := PartFlag(a.LowFlags)
		if part.Type == ssbp.PART_TYPE_NORMAL {
			cell, err := cellRef(d.cells, a.CellIndex)
			if err != nil {
				return errors.Wrapf(err, "cell of part %q", part.Name)
			}
			ts.add(i, TAG_CELL, 0, cell)
			ts.add(i, TAG_HIDE, 0, Bool(false))
		} else if flags&PART_FLAG_INVISIBLE != 0 {
			ts.add(i, TAG_HIDE, 0, Bool(true))
		}
		if flags&PART_FLAG_FLIP_H != 0 {
			ts.add(i, TAG_FLPH, 0, Bool(true))
		}
		if flags&PART_FLAG_FLIP_V != 0 {
			ts.add(i, TAG_FLPV, 0, Bool(true))
		}
		for _, f := range initialFields {
			if f.raw(a) != f.neutral {
				ts.add(i, f.tag, 0, f.value(a))
			}
		}
	}
	return nil
}

// partState is what a part looked like on the previous frame.
type partState struct {
	hidden, flipH, flipV bool
	// changed holds the tags keyed on the previous frame to a value other
	// than the clip's default.
	changed map[Tag]bool
}

func (d *decoder) frames(e ssbp.AnimEntry, initial []ssbp.AnimInitial, ts *trackSet) error {
	offsets, err := e.FrameOffsets(d.v)
	if err != nil {
		return errors.Wrap(err, "reading frame table")
	}
	n := len(d.parts)
	states := make([]partState, n)
	reordered := false
	for f, off := range offsets {
		r := &frameReader{c: d.v.Cursor(off), cells: d.cells}
		for i := 0; i < n; i++ {
			start := r.c.Pos()
			idx, err := r.c.I16()
			if err != nil {
				return errors.Wrapf(err, "frame %d", f)
			}
			lo, err := r.c.U16()
			if err != nil {
				return errors.Wrapf(err, "frame %d", f)
			}
			hi, err := r.c.U16()
			if err != nil {
				return errors.Wrapf(err, "frame %d", f)
			}
			// The restated index is informational; records are in rig order.
			if int(idx) != i && !reordered {
				glog.Warningf("frame %d: record %d restates part index %d; keys follow record order", f, i, idx)
				reordered = true
			}
			flags := PartFlag(lo) | PartFlag(hi)<<16
			if glog.V(3) {
				glog.Infof("frame %d part %d at 0x%x: flags 0x%08x", f, i, start, uint32(flags))
			}
			if err := d.part(r, f, i, flags, &initial[i], &states[i], ts); err != nil {
				return errors.Wrapf(err, "frame %d, part %q", f, d.parts[i].Name)
			}
		}
	}
	return nil
}

func (d *decoder) part(r *frameReader, frame, part int, flags PartFlag, a *ssbp.AnimInitial, st *partState, ts *trackSet) error {
	for _, s := range []struct {
		flag PartFlag
		tag  Tag
		prev *bool
	}{
		{PART_FLAG_INVISIBLE, TAG_HIDE, &st.hidden},
		{PART_FLAG_FLIP_H, TAG_FLPH, &st.flipH},
		{PART_FLAG_FLIP_V, TAG_FLPV, &st.flipV},
	} {
		on := flags&s.flag != 0
		if on != *s.prev {
			ts.add(part, s.tag, frame, Bool(on))
			*s.prev = on
		}
	}

	decoded := make(map[Tag]Value)
	for _, sf := range streamFields {
		if flags&sf.flag == 0 {
			continue
		}
		val, err := sf.read(r)
		if err != nil {
			return err
		}
		if sf.tag == "" {
			continue
		}
		ts.add(part, sf.tag, frame, val)
		decoded[sf.tag] = val
	}

	// Tags that moved away from the default on the previous frame and are
	// absent now return to the default.
	for _, tag := range tagOrder {
		if !st.changed[tag] {
			continue
		}
		if _, ok := decoded[tag]; ok {
			continue
		}
		def, ok, err := d.initialValue(tag, a)
		if err != nil {
			return err
		}
		if ok {
			ts.add(part, tag, frame, def)
		}
	}

	st.changed = make(map[Tag]bool, len(decoded))
	for tag, val := range decoded {
		def, ok, err := d.initialValue(tag, a)
		if err != nil {
			return err
		}
		if ok && def != val {
			st.changed[tag] = true
		}
	}
	return nil
}

// initialValue returns the clip default of the passed tag. Tags without a
// default, such as parts color and vertex offsets, report false.
func (d *decoder) initialValue(tag Tag, a *ssbp.AnimInitial) (Value, bool, error) {
	if tag == TAG_CELL {
		cell, err := cellRef(d.cells, a.CellIndex)
		if err != nil {
			return nil, false, err
		}
		return cell, true, nil
	}
	f, ok := initialFieldByTag[tag]
	if !ok {
		return nil, false, nil
	}
	return f.value(a), true, nil
}

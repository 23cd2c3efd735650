package sspj

import (
	"fmt"
	"strconv"

	"badc0de.net/pkg/go-ssbp/ssbp/anime"
	"badc0de.net/pkg/go-ssbp/ssbp/cellmap"
	"badc0de.net/pkg/go-ssbp/xmls"
)

func renderAnimePack(pack *anime.Pack, cells *cellmap.Table) xmls.AnimePack {
	doc := xmls.AnimePack{
		Version:  xmls.VERSION,
		Settings: xmls.DefaultAnimeSettings(),
		Name:     pack.Name,
	}
	for _, c := range pack.Clips {
		if !c.Setup {
			doc.Settings = clipSettings(c)
			break
		}
	}

	for _, p := range pack.Parts {
		doc.Model.PartList.Value = append(doc.Model.PartList.Value, renderPart(p))
	}
	for _, cm := range cells.Sorted() {
		doc.CellmapNames.Value = append(doc.CellmapNames.Value, cm.Name+CELLMAP_EXT)
	}
	for _, c := range pack.Clips {
		doc.AnimeList.Anime = append(doc.AnimeList.Anime, renderClip(c, cells))
	}
	return doc
}

func renderPart(p anime.Part) xmls.Part {
	label := p.ColorLabel
	if label == "" {
		label = "none"
	}
	return xmls.Part{
		Name:           p.Name,
		ArrayIndex:     p.Index,
		ParentIndex:    p.ParentIndex,
		Type:           p.Type.String(),
		BoundsType:     p.BoundsType.String(),
		InheritType:    "parent",
		InheritRates:   xmls.DefaultInheritRates(),
		AlphaBlendType: p.BlendType.String(),
		Show:           1,
		ColorLabel:     label,
		MaskInfluence:  boolInt(p.MaskInfluence),
		RefAnimePack:   p.RefPack,
		RefAnime:       p.RefAnime,
		RefEffectName:  p.EffectName,
	}
}

func refFile(name, ext string) string {
	if name == "" {
		return ""
	}
	return name + ext
}

func clipSettings(c anime.Clip) xmls.AnimeSettings {
	s := xmls.DefaultAnimeSettings()
	s.FPS = c.FPS
	s.FrameCount = c.TotalFrames
	s.CanvasSize = xmls.Pair(strconv.Itoa(c.CanvasWidth), strconv.Itoa(c.CanvasHeight))
	s.Pivot = xmls.Pair(xmls.Float(c.CanvasPivotX), xmls.Float(c.CanvasPivotY))
	s.StartFrame = c.StartFrame
	s.EndFrame = c.EndFrame
	return s
}

func renderClip(c anime.Clip, cells *cellmap.Table) xmls.Anime {
	a := xmls.Anime{
		Name:             c.Name,
		OverrideSettings: 1,
		Settings:         clipSettings(c),
		IsSetup:          boolInt(c.Setup),
	}
	for _, l := range c.Labels {
		a.Labels.Value = append(a.Labels.Value, xmls.Label{Name: l.Name, Time: l.Frame})
	}
	for _, pt := range c.Parts {
		pa := xmls.PartAnime{PartName: pt.Part}
		for _, tr := range pt.Tracks {
			attr := xmls.Attribute{Tag: string(tr.Tag)}
			for _, k := range tr.Keys {
				attr.Keys = append(attr.Keys, renderKey(k, cells))
			}
			pa.Attributes = append(pa.Attributes, attr)
		}
		a.PartAnimes.PartAnime = append(a.PartAnimes.PartAnime, pa)
	}
	return a
}

func renderKey(k anime.Keyframe, cells *cellmap.Table) xmls.Key {
	key := xmls.Key{Time: k.Frame}
	switch v := k.Value.(type) {
	case anime.Float:
		key.IpType = "linear"
		key.Value.Text = xmls.Float(float32(v))
	case anime.Int:
		key.IpType = "linear"
		key.Value.Text = strconv.Itoa(int(v))
	case anime.Bool:
		key.Value.Text = strconv.Itoa(boolInt(bool(v)))
	case anime.CellRef:
		id := -1
		if !v.None {
			id = cells.Position(v.MapIndex)
			key.Value.Name = v.Name
		}
		key.Value.MapID = &id
	case anime.PartsColor:
		key.IpType = "linear"
		key.Value.BlendType = v.Blend.String()
		if v.All {
			key.Value.Target = "whole"
			key.Value.Color = colorCorner(v.Colors[0])
			break
		}
		key.Value.Target = "vertex"
		for vx, c := range corners(&key.Value) {
			if v.Mask&(1<<vx) != 0 {
				*c = colorCorner(v.Colors[vx])
			}
		}
	case anime.VertexOffsets:
		key.IpType = "linear"
		for vx, c := range corners(&key.Value) {
			if v.Mask&(1<<vx) != 0 {
				off := v.Offsets[vx]
				*c = &xmls.Corner{Text: xmls.Pair(strconv.Itoa(int(off[0])), strconv.Itoa(int(off[1])))}
			}
		}
	}
	return key
}

// corners returns the corner slots of v indexed by anime.Vertex.
func corners(v *xmls.KeyValue) [anime.VERTEX_COUNT]**xmls.Corner {
	return [anime.VERTEX_COUNT]**xmls.Corner{&v.LT, &v.RT, &v.LB, &v.RB}
}

func colorCorner(c anime.VertexColor) *xmls.Corner {
	return &xmls.Corner{RGBA: fmt.Sprintf("%08X", c.ARGB), Rate: xmls.Float(c.Rate)}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

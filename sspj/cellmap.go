package sspj

import (
	"strconv"

	"badc0de.net/pkg/go-ssbp/ssbp/cellmap"
	"badc0de.net/pkg/go-ssbp/xmls"
)

func renderCellMap(cm *cellmap.Cell, tex Texture) xmls.CellMap {
	doc := xmls.CellMap{
		Version:         xmls.VERSION,
		Name:            cm.Name,
		Generator:       "SpriteStudio",
		ImagePath:       tex.Name,
		PixelSize:       xmls.Pair(strconv.Itoa(tex.Width), strconv.Itoa(tex.Height)),
		WrapMode:        cm.Map.WrapMode.String(),
		FilterMode:      cm.Map.FilterMode.String(),
		TexPackSettings: xmls.DefaultTexPackSettings(),
	}
	for _, e := range cm.Entries {
		doc.Cells.Cell = append(doc.Cells.Cell, xmls.Cell{
			Name:    e.Name,
			Pos:     xmls.Pair(strconv.Itoa(int(e.X)), strconv.Itoa(int(e.Y))),
			Size:    xmls.Pair(strconv.Itoa(int(e.Width)), strconv.Itoa(int(e.Height))),
			Pivot:   xmls.Pair(xmls.Float(e.PivotX), xmls.Float(e.PivotY)),
			DivType: "unknown",
		})
	}
	return doc
}

package xmls

import (
	"encoding/xml"
	"io"
)

// CellMap is the root of an .ssce document: one atlas image and the cells
// cut from it.
type CellMap struct {
	XMLName             xml.Name        `xml:"SpriteStudioCellMap"`
	Version             string          `xml:"version,attr"`
	Name                string          `xml:"name"`
	ExportPath          string          `xml:"exportPath"`
	Generator           string          `xml:"generator"`
	Packed              int             `xml:"packed"`
	ImagePath           string          `xml:"imagePath"`
	PixelSize           string          `xml:"pixelSize"`
	OverrideTexSettings int             `xml:"overrideTexSettings"`
	WrapMode            string          `xml:"wrapMode"`
	FilterMode          string          `xml:"filterMode"`
	ImagePathAtImport   string          `xml:"imagePathAtImport"`
	PackInfoFilePath    string          `xml:"packInfoFilePath"`
	TexPackSettings     TexPackSettings `xml:"texPackSettings"`
	Cells               CellList        `xml:"cells"`
}

type CellList struct {
	Cell []Cell `xml:"cell"`
}

// Cell is one rectangle of a cell map's image.
type Cell struct {
	Name          string `xml:"name"`
	Pos           string `xml:"pos"`
	Size          string `xml:"size"`
	Pivot         string `xml:"pivot"`
	Rotated       int    `xml:"rotated"`
	OrgImageName  string `xml:"orgImageName"`
	PosStable     int    `xml:"posStable"`
	IsMesh        int    `xml:"ismesh"`
	DivType       string `xml:"divtype"`
	InnerPoint    Empty  `xml:"innerPoint"`
	OuterPoint    Empty  `xml:"outerPoint"`
	MeshPointList Empty  `xml:"meshPointList"`
	MeshTriList   Empty  `xml:"meshTriList"`
}

// ReadCellMap decodes an .ssce document.
func ReadCellMap(r io.Reader) (CellMap, error) {
	c := CellMap{}
	if err := read(r, &c); err != nil {
		return c, err
	}
	return c, nil
}

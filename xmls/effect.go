package xmls

import (
	"encoding/xml"
	"io"
)

// Effect is the root of an .ssee document.
type Effect struct {
	XMLName    xml.Name   `xml:"SpriteStudioEffect"`
	Version    string     `xml:"version,attr"`
	Name       string     `xml:"name"`
	ExportPath string     `xml:"exportPath"`
	EffectData EffectData `xml:"effectData"`
}

type EffectData struct {
	LockRandSeed   int      `xml:"lockRandSeed"`
	IsLockRandSeed int      `xml:"isLockRandSeed"`
	FPS            int      `xml:"fps"`
	BGColor        string   `xml:"bgColor"`
	RenderVersion  int      `xml:"renderVersion"`
	NodeList       NodeList `xml:"nodeList"`
}

// EffectNode is one node of the effect tree. Behavior is nil for the root.
type EffectNode struct {
	Name        string        `xml:"name"`
	Type        string        `xml:"type"`
	ArrayIndex  int           `xml:"arrayIndex"`
	ParentIndex int           `xml:"parentIndex"`
	Visible     int           `xml:"visible"`
	Behavior    *NodeBehavior `xml:"behavior"`
}

type NodeList struct {
	Node []EffectNode `xml:"node"`
}

type NodeBehavior struct {
	CellName    string       `xml:"CellName"`
	CellMapName string       `xml:"CellMapName"`
	BlendType   string       `xml:"BlendType"`
	List        BehaviorList `xml:"list"`
}

type BehaviorList struct {
	Value []BehaviorValue `xml:"value"`
}

// BehaviorValue is one behavior. Its parameters are stored under element
// names that depend on the behavior, so they are kept generic.
type BehaviorValue struct {
	Name     string  `xml:"name,attr"`
	NameElem string  `xml:"name"`
	Params   []Param `xml:",any"`
}

// Param is a behavior parameter. Ranges use the Value and SubValue
// attributes; everything else is text.
type Param struct {
	XMLName  xml.Name
	Value    string `xml:"value,attr,omitempty"`
	SubValue string `xml:"subvalue,attr,omitempty"`
	Text     string `xml:",chardata"`
}

// TextParam returns a parameter holding text.
func TextParam(name, text string) Param {
	return Param{XMLName: xml.Name{Local: name}, Text: text}
}

// RangeParam returns a parameter holding a minimum and a maximum.
func RangeParam(name, min, max string) Param {
	return Param{XMLName: xml.Name{Local: name}, Value: min, SubValue: max}
}

// Param returns the named parameter.
func (b BehaviorValue) Param(name string) (Param, bool) {
	for _, p := range b.Params {
		if p.XMLName.Local == name {
			return p, true
		}
	}
	return Param{}, false
}

// ReadEffect decodes an .ssee document.
func ReadEffect(r io.Reader) (Effect, error) {
	e := Effect{}
	if err := read(r, &e); err != nil {
		return e, err
	}
	return e, nil
}

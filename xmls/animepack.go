package xmls

import (
	"encoding/xml"
	"io"
)

// AnimePack is the root of an .ssae document: a rig of parts and the
// animations played on it.
type AnimePack struct {
	XMLName      xml.Name      `xml:"SpriteStudioAnimePack"`
	Version      string        `xml:"version,attr"`
	Settings     AnimeSettings `xml:"settings"`
	Name         string        `xml:"name"`
	ExportPath   string        `xml:"exportPath"`
	Model        Model         `xml:"Model"`
	CellmapNames NameList      `xml:"cellmapNames"`
	AnimeList    AnimeList     `xml:"animeList"`
}

// AnimeSettings is the playback and canvas setup of an animation. Projects
// carry one as the default for new animations.
type AnimeSettings struct {
	FPS         int    `xml:"fps"`
	FrameCount  int    `xml:"frameCount"`
	SortMode    string `xml:"sortMode"`
	CanvasSize  string `xml:"canvasSize"`
	Pivot       string `xml:"pivot"`
	BGColor     string `xml:"bgColor"`
	GridSize    int    `xml:"gridSize"`
	GridColor   string `xml:"gridColor"`
	IKDepth     int    `xml:"ik_depth"`
	StartFrame  int    `xml:"startFrame"`
	EndFrame    int    `xml:"endFrame"`
	BGSettings  Empty  `xml:"bgSettings"`
	OutStartNum int    `xml:"outStartNum"`
}

// DefaultAnimeSettings returns the settings of a new animation in the
// authoring tool.
func DefaultAnimeSettings() AnimeSettings {
	return AnimeSettings{
		FPS:        30,
		FrameCount: 11,
		SortMode:   "prio",
		CanvasSize: "320 320",
		Pivot:      "0 0",
		BGColor:    "FF000000",
		GridSize:   32,
		GridColor:  "FF808080",
		IKDepth:    3,
		EndFrame:   10,
	}
}

type AnimeList struct {
	Anime []Anime `xml:"anime"`
}

type Model struct {
	PartList PartList `xml:"partList"`
	BoneList Empty    `xml:"boneList"`
	MeshList Empty    `xml:"meshList"`
}

type PartList struct {
	Value []Part `xml:"value"`
}

// Part is one node of the rig.
type Part struct {
	Name           string       `xml:"name"`
	ArrayIndex     int          `xml:"arrayIndex"`
	ParentIndex    int          `xml:"parentIndex"`
	Type           string       `xml:"type"`
	BoundsType     string       `xml:"boundsType"`
	InheritType    string       `xml:"inheritType"`
	InheritRates   InheritRates `xml:"ineheritRates"`
	AlphaBlendType string       `xml:"alphaBlendType"`
	Show           int          `xml:"show"`
	Locked         int          `xml:"locked"`
	ColorLabel     string       `xml:"colorLabel"`
	MaskInfluence  int          `xml:"maskInfluence"`
	RefAnimePack   string       `xml:"refAnimePack,omitempty"`
	RefAnime       string       `xml:"refAnime,omitempty"`
	RefEffectName  string       `xml:"refEffectName,omitempty"`
}

// InheritRates is spelled the way the authoring tool spells it.
type InheritRates struct {
	ALPH int `xml:"ALPH"`
	FLPH int `xml:"FLPH"`
	FLPV int `xml:"FLPV"`
	HIDE int `xml:"HIDE"`
	IFLH int `xml:"IFLH"`
	IFLV int `xml:"IFLV"`
}

// DefaultInheritRates inherits opacity only.
func DefaultInheritRates() InheritRates {
	return InheritRates{ALPH: 1}
}

type Anime struct {
	Name             string        `xml:"name"`
	OverrideSettings int           `xml:"overrideSettings"`
	Settings         AnimeSettings `xml:"settings"`
	Labels           Labels        `xml:"labels"`
	PartAnimes       PartAnimes    `xml:"partAnimes"`
	IsSetup          int           `xml:"isSetup"`
}

type Labels struct {
	Value []Label `xml:"value"`
}

type Label struct {
	Name string `xml:"name"`
	Time int    `xml:"time"`
}

type PartAnimes struct {
	PartAnime []PartAnime `xml:"partAnime"`
}

// PartAnime holds the keyed attributes of one part.
type PartAnime struct {
	PartName   string      `xml:"partName"`
	Attributes []Attribute `xml:"attributes>attribute"`
}

type Attribute struct {
	Tag  string `xml:"tag,attr"`
	Keys []Key  `xml:"key"`
}

// Key is one keyframe. IpType is empty for attributes that do not
// interpolate.
type Key struct {
	Time   int      `xml:"time,attr"`
	IpType string   `xml:"ipType,attr,omitempty"`
	Value  KeyValue `xml:"value"`
}

// KeyValue carries either plain text, a cell reference (MapID and Name), a
// parts color (BlendType, Target and Color or the corners) or a vertex
// transform (the corners).
type KeyValue struct {
	Text      string  `xml:",chardata"`
	MapID     *int    `xml:"mapId,omitempty"`
	Name      string  `xml:"name,omitempty"`
	BlendType string  `xml:"blendType,omitempty"`
	Target    string  `xml:"target,omitempty"`
	Color     *Corner `xml:"color,omitempty"`
	LT        *Corner `xml:"LT,omitempty"`
	RT        *Corner `xml:"RT,omitempty"`
	LB        *Corner `xml:"LB,omitempty"`
	RB        *Corner `xml:"RB,omitempty"`
}

// Corner is either a color with its rate or, for vertex transforms, an
// offset as text.
type Corner struct {
	Text string `xml:",chardata"`
	RGBA string `xml:"rgba,omitempty"`
	Rate string `xml:"rate,omitempty"`
}

// ReadAnimePack decodes an .ssae document.
func ReadAnimePack(r io.Reader) (AnimePack, error) {
	a := AnimePack{}
	if err := read(r, &a); err != nil {
		return a, err
	}
	return a, nil
}

package xmls

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Project is the root of an .sspj document.
type Project struct {
	XMLName         xml.Name        `xml:"SpriteStudioProject"`
	Version         string          `xml:"version,attr"`
	Name            string          `xml:"name"`
	ExportPath      string          `xml:"exportPath"`
	Settings        ProjectSettings `xml:"settings"`
	AnimeSettings   AnimeSettings   `xml:"animeSettings"`
	TexPackSettings TexPackSettings `xml:"texPackSettings"`
	CellmapNames    NameList        `xml:"cellmapNames"`
	AnimepackNames  NameList        `xml:"animepackNames"`
	EffectFileNames NameList        `xml:"effectFileNames"`
	LastAnimeFile   string          `xml:"lastAnimeFile"`
	LastAnimeName   string          `xml:"lastAnimeName"`
	LastPart        string          `xml:"lastPart"`
	LastCellMapFile string          `xml:"lastCellMapFile"`
	LastCell        string          `xml:"lastCell"`
	LastEffectMode  string          `xml:"lastEffectMode"`
	SetupMode       int             `xml:"setupmode"`
	ExpandAnimation Empty           `xml:"expandAnimation"`
	ExpandSequence  Empty           `xml:"expandSequence"`
}

// ProjectSettings is the 'settings' element of a project.
type ProjectSettings struct {
	AnimeBaseDirectory            string            `xml:"animeBaseDirectory"`
	CellMapBaseDirectory          string            `xml:"cellMapBaseDirectory"`
	ImageBaseDirectory            string            `xml:"imageBaseDirectory"`
	EffectBaseDirectory           string            `xml:"effectBaseDirectory"`
	ExportBaseDirectory           string            `xml:"exportBaseDirectory"`
	QueryExportBaseDirectory      int               `xml:"queryExportBaseDirectory"`
	CopyWhenImportImageIsOutside  int               `xml:"copyWhenImportImageIsOutside"`
	ExportAnimeFileFormat         string            `xml:"exportAnimeFileFormat"`
	ExportCellMapFileFormat       string            `xml:"exportCellMapFileFormat"`
	ExportCellMap                 int               `xml:"exportCellMap"`
	CopyImageWhenExportCellmap    int               `xml:"copyImageWhenExportCellmap"`
	SSConverterOptions            string            `xml:"ssConverterOptions"`
	Player                        string            `xml:"player"`
	Signal                        string            `xml:"signal"`
	StrictVer4                    int               `xml:"strictVer4"`
	DontUseMatrixForTransform     int               `xml:"dontUseMatrixForTransform"`
	RootPartFunctionAsVer4        int               `xml:"rootPartFunctionAsVer4"`
	InterpolateColorBlendAsVer4   int               `xml:"interpolateColorBlendAsVer4"`
	InterpolateVertexOffsetAsVer4 int               `xml:"interpolateVertexOffsetAsVer4"`
	RestrictXYAsInteger           int               `xml:"restrictXYAsInteger"`
	InheritRatesNoKeySave         int               `xml:"inheritRatesNoKeySave"`
	AvailableInterpolationTypes   ItemList          `xml:"availableInterpolationTypes"`
	AvailableAttributes           ItemList          `xml:"availableAttributes"`
	AvailableFeatures             NameList          `xml:"availableFeatures"`
	DefaultSetAttributes          ItemList          `xml:"defaultSetAttributes"`
	WrapMode                      string            `xml:"wrapMode"`
	FilterMode                    string            `xml:"filterMode"`
	InterpolateMode               string            `xml:"interpolateMode"`
	CoordUnit                     string            `xml:"coordUnit"`
	RenderingSettings             RenderingSettings `xml:"renderingSettings"`
	EffectSettings                EffectSettings    `xml:"effectSettings"`
	CellTags                      Empty             `xml:"cellTags"`
	UseDecimalDigit               int               `xml:"useDecimalDigit"`
	OpacifyOutsideCanvasFrame     int               `xml:"opacifyOutsideCanvasFrame"`
	ConvertImageToPMA             int               `xml:"convertImageToPMA"`
	BlendImageAsPMA               int               `xml:"blendImageAsPMA"`
	UnpremultiplyAlpha            int               `xml:"unpremultiplyAlpha"`
	VertexAnimeFloat              int               `xml:"vertexAnimeFloat"`
	AllowNPOT                     int               `xml:"allowNPOT"`
	MaxLoadableImageWidth         int               `xml:"maxLoadableImageWidth"`
	MaxLoadableImageHeight        int               `xml:"maxLoadableImageHeight"`
	MaxLoadableImageFileSize      int64             `xml:"maxLoadableImageFileSize"`
	InstanceStackMax              int               `xml:"instanceStackMax"`
	SelectedAttrSelPreset         int               `xml:"selectedAttrSelPreset"`
	AttrSelPresets                AttrSelPresets    `xml:"attrSelPresets"`
}

// AttrSelPresets writes the ten empty attribute selection presets, A to J,
// each as a name element followed by a preset element.
type AttrSelPresets struct{}

func (AttrSelPresets) MarshalXML(e *xml.Encoder, _ xml.StartElement) error {
	for c := 'A'; c <= 'J'; c++ {
		for _, name := range []string{"attrSelPresetName", "attrSelPreset"} {
			se := xml.StartElement{Name: xml.Name{Local: fmt.Sprintf("%s%c", name, c)}}
			if err := e.EncodeToken(se); err != nil {
				return err
			}
			if err := e.EncodeToken(se.End()); err != nil {
				return err
			}
		}
	}
	return nil
}

// RenderingSettings is the 'renderingSettings' element of a project.
type RenderingSettings struct {
	OutputFolder        string       `xml:"outputFolder"`
	OutputType          string       `xml:"outputType"`
	BGColor             string       `xml:"bgColor"`
	AddAnimeName        int          `xml:"addAnimeName"`
	AddTimeStamp        int          `xml:"addTimeStamp"`
	AddAlphaChannel     int          `xml:"addAlphaChannel"`
	ImageSizeRatioW     int          `xml:"imageSizeRatioW"`
	ImageSizeRatioH     int          `xml:"imageSizeRatioH"`
	ImageSizeRatioFix   int          `xml:"imageSizeRatioFix"`
	ImageSizeIsPixcel   int          `xml:"imageSizeIsPixcel"`
	ImageSizeExpansion0 int          `xml:"imageSizeExpansion0"`
	ImageSizeExpansion1 int          `xml:"imageSizeExpansion1"`
	ImageSizeExpansion2 int          `xml:"imageSizeExpansion2"`
	ImageSizeExpansion3 int          `xml:"imageSizeExpansion3"`
	WebpSettings        WebpSettings `xml:"webpSettings"`
}

type WebpSettings struct {
	LossyType         string `xml:"lossyType"`
	QualityFactor     int    `xml:"qualityFactor"`
	CompMethod        int    `xml:"compMethod"`
	UseLosslessPreset int    `xml:"useLosslessPreset"`
	LosslessPreset    int    `xml:"losslessPreset"`
}

type EffectSettings struct {
	GridSize int `xml:"gridSize"`
}

// TexPackSettings is shared by projects and cell maps.
type TexPackSettings struct {
	MaxSize     string `xml:"maxSize"`
	ForcePo2    int    `xml:"forcePo2"`
	ForceSquare int    `xml:"forceSquare"`
	Margin      int    `xml:"margin"`
	Padding     int    `xml:"padding"`
}

// DefaultTexPackSettings returns the packing settings the authoring tool
// starts with.
func DefaultTexPackSettings() TexPackSettings {
	return TexPackSettings{
		MaxSize:  "4096 4096",
		ForcePo2: 1,
		Padding:  1,
	}
}

// ReadProject decodes an .sspj document.
func ReadProject(r io.Reader) (Project, error) {
	p := Project{}
	if err := read(r, &p); err != nil {
		return p, err
	}
	return p, nil
}

package sspj

import (
	"badc0de.net/pkg/go-ssbp/ssbp"
	"badc0de.net/pkg/go-ssbp/ssbp/anime"
	"badc0de.net/pkg/go-ssbp/xmls"
)

// interpolationTypes are offered for keys, in the authoring tool's order.
var interpolationTypes = []string{"none", "linear", "hermite", "bezier", "acceleration", "deceleration"}

// availableAttributes is every attribute the authoring tool knows, including
// those this converter never keys.
var availableAttributes = []string{
	"CELL", "POSX", "POSY", "POSZ", "ROTX", "ROTY", "ROTZ", "SCLX", "SCLY",
	"LSCX", "LSCY", "ALPH", "LALP", "PRIO", "IFLH", "IFLV", "FLPH", "FLPV", "HIDE",
	"PCOL", "VCOL", "VERT", "PVTX", "PVTY", "ANCX", "ANCY", "SIZX", "SIZY", "UVTX",
	"UVTY", "UVRZ", "UVSX", "UVSY", "BNDR", "MASK", "USER", "IPRM", "EFCT",
}

func (c *Converter) renderProject(name string, res *Result) xmls.Project {
	s := c.Settings
	return xmls.Project{
		Version: xmls.VERSION,
		Name:    name,
		Settings: xmls.ProjectSettings{
			ExportBaseDirectory:           s.ExportBaseDirectory,
			QueryExportBaseDirectory:      1,
			CopyWhenImportImageIsOutside:  1,
			ExportAnimeFileFormat:         "SSAX",
			ExportCellMapFileFormat:       "invalid",
			CopyImageWhenExportCellmap:    1,
			Player:                        "any",
			InterpolateColorBlendAsVer4:   1,
			InterpolateVertexOffsetAsVer4: 1,
			InheritRatesNoKeySave:         1,
			AvailableInterpolationTypes:   xmls.ItemList{Item: interpolationTypes},
			AvailableAttributes:           xmls.ItemList{Item: availableAttributes},
			AvailableFeatures:             xmls.NameList{Value: []string{"bone", "effect", "mask", "mesh"}},
			DefaultSetAttributes: xmls.ItemList{Item: []string{
				string(anime.TAG_POSX), string(anime.TAG_POSY), string(anime.TAG_ROTZ),
				string(anime.TAG_PRIO), string(anime.TAG_HIDE),
			}},
			WrapMode:        ssbp.WRAP_MODE_CLAMP.String(),
			FilterMode:      ssbp.FILTER_MODE_LINEAR.String(),
			InterpolateMode: "linear",
			CoordUnit:       "rate",
			RenderingSettings: xmls.RenderingSettings{
				OutputType:        "AVI",
				BGColor:           s.RenderBGColor,
				AddAlphaChannel:   1,
				ImageSizeRatioW:   100,
				ImageSizeRatioH:   100,
				ImageSizeRatioFix: 1,
				ImageSizeIsPixcel: 1,
				WebpSettings: xmls.WebpSettings{
					LossyType:         "lossless",
					QualityFactor:     75,
					CompMethod:        4,
					UseLosslessPreset: 1,
				},
			},
			EffectSettings:            xmls.EffectSettings{GridSize: s.EffectGridSize},
			UseDecimalDigit:           2,
			OpacifyOutsideCanvasFrame: 1,
			MaxLoadableImageWidth:     s.MaxLoadableImageWidth,
			MaxLoadableImageHeight:    s.MaxLoadableImageHeight,
			MaxLoadableImageFileSize:  s.MaxLoadableImageFileSize,
			InstanceStackMax:          100,
		},
		AnimeSettings:   xmls.DefaultAnimeSettings(),
		TexPackSettings: xmls.DefaultTexPackSettings(),
		CellmapNames:    xmls.NameList{Value: res.CellMaps},
		AnimepackNames:  xmls.NameList{Value: res.AnimePacks},
		EffectFileNames: xmls.NameList{Value: res.Effects},
	}
}

package anime

import (
	"strings"

	"github.com/pkg/errors"

	"badc0de.net/pkg/go-ssbp/ssbp"
)

// Part is one decoded node of an anime pack's rig.
type Part struct {
	Name          string
	Index         int
	ParentIndex   int
	Type          ssbp.PartType
	BoundsType    ssbp.BoundsType
	BlendType     ssbp.BlendType
	ColorLabel    string
	MaskInfluence bool

	// RefPack and RefAnime are set for instance parts, which play another
	// pack's animation.
	RefPack  string
	RefAnime string
	// EffectName is set for effect parts.
	EffectName string
}

// SplitReference splits a part's reference name of the form "pack/anime".
// An empty name yields two empty strings.
func SplitReference(name string) (pack, anim string, err error) {
	if name == "" {
		return "", "", nil
	}
	pack, anim, ok := strings.Cut(name, "/")
	if !ok {
		return "", "", &ssbp.MalformedReferenceError{Name: name}
	}
	return pack, anim, nil
}

func decodeParts(v *ssbp.View, entries []ssbp.PartEntry) ([]Part, error) {
	parts := make([]Part, len(entries))
	for i, e := range entries {
		p := &parts[i]
		var err error
		if p.Name, err = v.String(e.Name); err != nil {
			return nil, errors.Wrapf(err, "reading name of part %d", i)
		}
		if p.ColorLabel, err = v.String(e.ColorLabel); err != nil {
			return nil, errors.Wrapf(err, "reading color label of part %q", p.Name)
		}
		if p.EffectName, err = v.String(e.EffectName); err != nil {
			return nil, errors.Wrapf(err, "reading effect name of part %q", p.Name)
		}
		ref, err := v.String(e.RefName)
		if err != nil {
			return nil, errors.Wrapf(err, "reading reference of part %q", p.Name)
		}
		if p.RefPack, p.RefAnime, err = SplitReference(ref); err != nil {
			return nil, errors.Wrapf(err, "part %q", p.Name)
		}
		p.Index = int(e.Index)
		p.ParentIndex = int(e.ParentIndex)
		p.Type = e.Type
		p.BoundsType = e.BoundsType
		p.BlendType = e.BlendType
		p.MaskInfluence = e.MaskInfluence != 0
	}
	return parts, nil
}

package anime

// Keyframe is one sample of a track.
type Keyframe struct {
	Frame int
	Value Value
}

// Track is the ordered samples of one attribute of one part.
type Track struct {
	Tag  Tag
	Keys []Keyframe
}

// PartTrack holds all tracks of one part within a clip. Only parts with at
// least one key get one.
type PartTrack struct {
	Part   string
	Tracks []Track
}

// Label marks a named frame of a clip.
type Label struct {
	Name  string
	Frame int
}

// Clip is one decoded animation.
type Clip struct {
	Name string
	// Setup is set for the clip holding the rig's default pose.
	Setup bool

	FPS          int
	StartFrame   int
	EndFrame     int
	TotalFrames  int
	CanvasWidth  int
	CanvasHeight int
	CanvasPivotX float32
	CanvasPivotY float32

	Labels []Label
	Parts  []PartTrack
}

// Pack is a decoded anime pack: the rig and the clips played on it.
type Pack struct {
	Name  string
	Parts []Part
	Clips []Clip
}

// trackSet accumulates keys per part and tag during one clip's decode.
type trackSet struct {
	parts []map[Tag][]Keyframe
	count int
}

func newTrackSet(numParts int) *trackSet {
	ts := &trackSet{parts: make([]map[Tag][]Keyframe, numParts)}
	for i := range ts.parts {
		ts.parts[i] = make(map[Tag][]Keyframe)
	}
	return ts
}

func (ts *trackSet) add(part int, tag Tag, frame int, v Value) {
	ts.parts[part][tag] = append(ts.parts[part][tag], Keyframe{Frame: frame, Value: v})
	ts.count++
}

// build returns the part tracks in rig order, each part's tracks in tagOrder,
// leaving out parts without keys.
func (ts *trackSet) build(parts []Part) []PartTrack {
	var out []PartTrack
	for i, keys := range ts.parts {
		if len(keys) == 0 {
			continue
		}
		pt := PartTrack{Part: parts[i].Name}
		for _, tag := range tagOrder {
			if k, ok := keys[tag]; ok {
				pt.Tracks = append(pt.Tracks, Track{Tag: tag, Keys: k})
			}
		}
		out = append(out, pt)
	}
	return out
}

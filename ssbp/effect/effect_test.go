package effect

import (
	"encoding/binary"
	"testing"

	"badc0de.net/pkg/go-ssbp/ssbp"
	"badc0de.net/pkg/go-ssbp/ssbp/cellmap"
	"badc0de.net/pkg/go-ssbp/ssbp/ssbptest"
	"badc0de.net/pkg/go-ssbp/ttesting"
)

func open(t *testing.T, b *ssbptest.Builder, cells []ssbp.CellEntry) (*ssbp.Project, *cellmap.Table) {
	t.Helper()
	p, err := ssbp.Open(b.Finish(cells, nil))
	if err != nil {
		t.Fatalf("failed to open project: %s", err)
	}
	tbl, err := cellmap.Resolve(p)
	if err != nil {
		t.Fatalf("failed to resolve cells: %s", err)
	}
	return p, tbl
}

func TestCheckLayouts(t *testing.T) {
	if err := CheckLayouts(); err != nil {
		t.Fatalf("behavior layouts disagree with the file format: %s", err)
	}
	ttesting.AssertEqualInt(t, "behaviors with payloads", len(payloadSizes), int(behaviorTypeCount)-1)
	ttesting.AssertEqualInt(t, "header", binary.Size(behaviorHeader{}), BEHAVIOR_HEADER_SIZE)
}

func TestReadBehaviorEveryType(t *testing.T) {
	for _, want := range []Behavior{
		Basic{Priority: 64, MaximumParticle: 50, Interval: 1, Lifetime: 30, SpeedMin: 1, SpeedMax: 2, Angle: 90},
		RndSeedChange{Seed: 1234},
		Delay{DelayTime: 12},
		Gravity{X: 0, Y: -3},
		Position{OffsetXMin: -1, OffsetXMax: 1, OffsetYMin: -2, OffsetYMax: 2},
		Rotation{RotationMin: 10, RotationMax: 20, RotationAddMin: 1, RotationAddMax: 2},
		TransRotation{RotationFactor: 0.5, EndLifeTimePer: 75},
		TransSpeed{SpeedMin: 3, SpeedMax: 4},
		TangentialAcceleration{AccelerationMin: 5, AccelerationMax: 6},
		InitColor{ColorMin: 0xFFFFFFFF, ColorMax: 0xFF000000},
		TransColor{ColorMin: 0x80FF0000, ColorMax: 0x8000FF00},
		AlphaFade{DisprangeMin: 25, DisprangeMax: 75},
		Size{SizeXMin: 1, SizeXMax: 2, SizeYMin: 3, SizeYMax: 4, ScaleFactorMin: 5, ScaleFactorMax: 6},
		TransSize{SizeXMin: 6, SizeXMax: 5, SizeYMin: 4, SizeYMax: 3, ScaleFactorMin: 2, ScaleFactorMax: 1},
		PointGravity{X: 10, Y: 20, Power: 30},
		TurnToDirectionEnabled{Rotation: 45},
		InfiniteEmitEnabled{Flag: 1},
	} {
		t.Run(want.Type().String(), func(t *testing.T) {
			b := ssbptest.New()
			off := b.Behavior(uint16(want.Type()), want)
			// A trailing record must not be reached into.
			b.Behavior(uint16(BEHAVIOR_DELAY), Delay{DelayTime: 0xFFFF})

			got, err := ReadBehavior(ssbp.NewView(b.Bytes()), off)
			if err != nil {
				t.Fatalf("failed to read behavior: %s", err)
			}
			if got != want {
				t.Errorf("got %+v; want %+v", got, want)
			}
		})
	}
}

func TestReadBehaviorInvalid(t *testing.T) {
	for _, tc := range []struct {
		name string
		typ  uint16
	}{
		{"base", uint16(BEHAVIOR_BASE)},
		{"past last", uint16(behaviorTypeCount)},
		{"far out", 0x7FFF},
	} {
		t.Run(tc.name, func(t *testing.T) {
			b := ssbptest.New()
			off := b.Behavior(tc.typ, []uint32{0, 0, 0, 0})
			_, err := ReadBehavior(ssbp.NewView(b.Bytes()), off)
			var ude *ssbp.UnknownDiscriminantError
			ttesting.AssertErrorAs(t, "discriminant", err, &ude)
			if ude != nil {
				ttesting.AssertEqualInt(t, "value", ude.Value, int(tc.typ))
			}
		})
	}
}

func TestReadBehaviorTruncated(t *testing.T) {
	b := ssbptest.New()
	off := b.Behavior(uint16(BEHAVIOR_BASIC), []uint32{1, 2})
	_, err := ReadBehavior(ssbp.NewView(b.Bytes()), off)
	var be *ssbp.BoundsError
	ttesting.AssertErrorAs(t, "payload past end", err, &be)
}

func TestCounter(t *testing.T) {
	c := NewCounter()
	for _, tc := range []struct {
		typ  ssbp.EffectNodeType
		want string
	}{
		{ssbp.EFFECT_NODE_ROOT, "Root"},
		{ssbp.EFFECT_NODE_EMITTER, "Emitter_1"},
		{ssbp.EFFECT_NODE_PARTICLE, "Particle_1"},
		{ssbp.EFFECT_NODE_EMITTER, "Emitter_2"},
		{ssbp.EFFECT_NODE_PARTICLE, "Particle_2"},
		{ssbp.EFFECT_NODE_PARTICLE, "Particle_3"},
	} {
		ttesting.AssertEqualString(t, tc.want, c.Name(tc.typ), tc.want)
	}
}

func TestDecodeAll(t *testing.T) {
	b := ssbptest.New()
	cells := b.Cells("fx", 3, "spark", "smoke")
	grav := b.Behavior(uint16(BEHAVIOR_GRAVITY), Gravity{Y: 9.8})
	basic := b.Behavior(uint16(BEHAVIOR_BASIC), Basic{MaximumParticle: 10})
	first := b.EffectFile("burst", 60,
		ssbptest.Node{Type: ssbp.EFFECT_NODE_ROOT, Parent: -1, Cell: -1},
		ssbptest.Node{Type: ssbp.EFFECT_NODE_EMITTER, Parent: 0, Cell: 1, Blend: ssbp.EFFECT_BLEND_ADD, Behaviors: []uint32{basic, grav}},
		ssbptest.Node{Type: ssbp.EFFECT_NODE_PARTICLE, Parent: 1, Cell: -1},
		ssbptest.Node{Type: ssbp.EFFECT_NODE_EMITTER, Parent: 0, Cell: 0},
	)
	second := b.EffectFile("trail", 30,
		ssbptest.Node{Type: ssbp.EFFECT_NODE_ROOT, Parent: -1, Cell: -1},
		ssbptest.Node{Type: ssbp.EFFECT_NODE_EMITTER, Parent: 0, Cell: -1},
	)
	b.SetEffects(first, second)
	p, tbl := open(t, b, cells)

	effects, err := DecodeAll(p, tbl)
	if err != nil {
		t.Fatalf("failed to decode effects: %s", err)
	}
	ttesting.AssertEqualInt(t, "effects", len(effects), 2)

	burst := effects[0]
	ttesting.AssertEqualString(t, "name", burst.Name, "burst")
	ttesting.AssertEqualInt(t, "fps", burst.FPS, 60)
	ttesting.AssertEqualInt(t, "nodes", len(burst.Nodes), 4)
	for i, want := range []string{"Root", "Emitter_1", "Particle_1", "Emitter_2"} {
		ttesting.AssertEqualString(t, want, burst.Nodes[i].Name, want)
	}

	em := burst.Nodes[1]
	ttesting.AssertEqualString(t, "cell", em.CellName, "smoke")
	ttesting.AssertEqualString(t, "cell map", em.CellMapName, "fx")
	ttesting.AssertEqualString(t, "blend", em.BlendType.String(), "Add")
	ttesting.AssertEqualInt(t, "behaviors", len(em.Behaviors), 2)
	if len(em.Behaviors) == 2 {
		ttesting.AssertEqualString(t, "first behavior", em.Behaviors[0].Type().String(), "Basic")
		ttesting.AssertEqualFloat32(t, "gravity", em.Behaviors[1].(Gravity).Y, 9.8)
	}
	ttesting.AssertEqualString(t, "particle without cell", burst.Nodes[2].CellName, "")

	// Numbering restarts for each effect.
	ttesting.AssertEqualString(t, "second effect emitter", effects[1].Nodes[1].Name, "Emitter_1")
}

func TestDecodeMissingCell(t *testing.T) {
	b := ssbptest.New()
	cells := b.Cells("fx", 0, "spark")
	b.SetEffects(b.EffectFile("burst", 60,
		ssbptest.Node{Type: ssbp.EFFECT_NODE_EMITTER, Parent: -1, Cell: 5},
	))
	p, tbl := open(t, b, cells)
	_, err := DecodeAll(p, tbl)
	var mce *ssbp.MissingCellError
	ttesting.AssertErrorAs(t, "cell past table", err, &mce)
}

func TestDecodeBaseBehavior(t *testing.T) {
	b := ssbptest.New()
	base := b.Behavior(uint16(BEHAVIOR_BASE), nil)
	b.SetEffects(b.EffectFile("burst", 60,
		ssbptest.Node{Type: ssbp.EFFECT_NODE_EMITTER, Parent: -1, Cell: -1, Behaviors: []uint32{base}},
	))
	p, tbl := open(t, b, nil)
	_, err := DecodeAll(p, tbl)
	var ude *ssbp.UnknownDiscriminantError
	ttesting.AssertErrorAs(t, "base behavior", err, &ude)
}

package effect

import (
	"encoding/binary"
	"fmt"

	"badc0de.net/pkg/go-ssbp/ssbp"
)

// BehaviorType is the discriminant opening every behavior record.
type BehaviorType uint16

const (
	// BEHAVIOR_BASE is the abstract base of all behaviors. A record carrying
	// it is invalid.
	BEHAVIOR_BASE BehaviorType = iota
	BEHAVIOR_BASIC
	BEHAVIOR_RND_SEED_CHANGE
	BEHAVIOR_DELAY
	BEHAVIOR_GRAVITY
	BEHAVIOR_POSITION
	BEHAVIOR_ROTATION
	BEHAVIOR_TRANS_ROTATION
	BEHAVIOR_TRANS_SPEED
	BEHAVIOR_TANGENTIAL_ACCELERATION
	BEHAVIOR_INIT_COLOR
	BEHAVIOR_TRANS_COLOR
	BEHAVIOR_ALPHA_FADE
	BEHAVIOR_SIZE
	BEHAVIOR_TRANS_SIZE
	BEHAVIOR_POINT_GRAVITY
	BEHAVIOR_TURN_TO_DIRECTION_ENABLED
	BEHAVIOR_INFINITE_EMIT_ENABLED

	behaviorTypeCount
)

func (t BehaviorType) String() string {
	switch t {
	case BEHAVIOR_BASE:
		return "Base"
	case BEHAVIOR_BASIC:
		return "Basic"
	case BEHAVIOR_RND_SEED_CHANGE:
		return "RndSeedChange"
	case BEHAVIOR_DELAY:
		return "Delay"
	case BEHAVIOR_GRAVITY:
		return "Gravity"
	case BEHAVIOR_POSITION:
		return "Position"
	case BEHAVIOR_ROTATION:
		return "Rotation"
	case BEHAVIOR_TRANS_ROTATION:
		return "TransRotation"
	case BEHAVIOR_TRANS_SPEED:
		return "TransSpeed"
	case BEHAVIOR_TANGENTIAL_ACCELERATION:
		return "TangentialAcceleration"
	case BEHAVIOR_INIT_COLOR:
		return "InitColor"
	case BEHAVIOR_TRANS_COLOR:
		return "TransColor"
	case BEHAVIOR_ALPHA_FADE:
		return "AlphaFade"
	case BEHAVIOR_SIZE:
		return "Size"
	case BEHAVIOR_TRANS_SIZE:
		return "TransSize"
	case BEHAVIOR_POINT_GRAVITY:
		return "PointGravity"
	case BEHAVIOR_TURN_TO_DIRECTION_ENABLED:
		return "TurnToDirectionEnabled"
	case BEHAVIOR_INFINITE_EMIT_ENABLED:
		return "InfiniteEmitEnabled"
	}
	return fmt.Sprintf("behavior type %d unknown", uint16(t))
}

// BEHAVIOR_HEADER_SIZE is the size of the discriminant and its padding; the
// payload follows.
const BEHAVIOR_HEADER_SIZE = 4

// behaviorHeader opens every behavior record.
type behaviorHeader struct {
	Type BehaviorType
	_    uint16
}

// Behavior is one of the concrete behavior payloads below. The set is closed.
type Behavior interface {
	Type() BehaviorType
}

type Basic struct {
	Priority        uint32
	MaximumParticle uint32
	AttimeCreate    uint32
	Interval        uint32
	Lifetime        uint32
	SpeedMin        float32
	SpeedMax        float32
	LifespanMin     uint32
	LifespanMax     uint32
	Angle           float32
	AngleVariance   float32
}

type RndSeedChange struct {
	Seed uint32
}

type Delay struct {
	DelayTime uint32
}

type Gravity struct {
	X, Y float32
}

type Position struct {
	OffsetXMin, OffsetXMax float32
	OffsetYMin, OffsetYMax float32
}

type Rotation struct {
	RotationMin, RotationMax       float32
	RotationAddMin, RotationAddMax float32
}

type TransRotation struct {
	RotationFactor float32
	EndLifeTimePer float32
}

type TransSpeed struct {
	SpeedMin, SpeedMax float32
}

type TangentialAcceleration struct {
	AccelerationMin, AccelerationMax float32
}

// InitColor and TransColor carry ARGB colors.
type InitColor struct {
	ColorMin, ColorMax uint32
}

type TransColor struct {
	ColorMin, ColorMax uint32
}

type AlphaFade struct {
	DisprangeMin, DisprangeMax float32
}

type Size struct {
	SizeXMin, SizeXMax             float32
	SizeYMin, SizeYMax             float32
	ScaleFactorMin, ScaleFactorMax float32
}

type TransSize struct {
	SizeXMin, SizeXMax             float32
	SizeYMin, SizeYMax             float32
	ScaleFactorMin, ScaleFactorMax float32
}

type PointGravity struct {
	X, Y  float32
	Power float32
}

type TurnToDirectionEnabled struct {
	Rotation float32
}

type InfiniteEmitEnabled struct {
	Flag uint32
}

func (Basic) Type() BehaviorType                  { return BEHAVIOR_BASIC }
func (RndSeedChange) Type() BehaviorType          { return BEHAVIOR_RND_SEED_CHANGE }
func (Delay) Type() BehaviorType                  { return BEHAVIOR_DELAY }
func (Gravity) Type() BehaviorType                { return BEHAVIOR_GRAVITY }
func (Position) Type() BehaviorType               { return BEHAVIOR_POSITION }
func (Rotation) Type() BehaviorType               { return BEHAVIOR_ROTATION }
func (TransRotation) Type() BehaviorType          { return BEHAVIOR_TRANS_ROTATION }
func (TransSpeed) Type() BehaviorType             { return BEHAVIOR_TRANS_SPEED }
func (TangentialAcceleration) Type() BehaviorType { return BEHAVIOR_TANGENTIAL_ACCELERATION }
func (InitColor) Type() BehaviorType              { return BEHAVIOR_INIT_COLOR }
func (TransColor) Type() BehaviorType             { return BEHAVIOR_TRANS_COLOR }
func (AlphaFade) Type() BehaviorType              { return BEHAVIOR_ALPHA_FADE }
func (Size) Type() BehaviorType                   { return BEHAVIOR_SIZE }
func (TransSize) Type() BehaviorType              { return BEHAVIOR_TRANS_SIZE }
func (PointGravity) Type() BehaviorType           { return BEHAVIOR_POINT_GRAVITY }
func (TurnToDirectionEnabled) Type() BehaviorType { return BEHAVIOR_TURN_TO_DIRECTION_ENABLED }
func (InfiniteEmitEnabled) Type() BehaviorType    { return BEHAVIOR_INFINITE_EMIT_ENABLED }

// payloadSizes is the size of each behavior's payload, without the header.
var payloadSizes = map[BehaviorType]int{
	BEHAVIOR_BASIC:                     44,
	BEHAVIOR_RND_SEED_CHANGE:           4,
	BEHAVIOR_DELAY:                     4,
	BEHAVIOR_GRAVITY:                   8,
	BEHAVIOR_POSITION:                  16,
	BEHAVIOR_ROTATION:                  16,
	BEHAVIOR_TRANS_ROTATION:            8,
	BEHAVIOR_TRANS_SPEED:               8,
	BEHAVIOR_TANGENTIAL_ACCELERATION:   8,
	BEHAVIOR_INIT_COLOR:                8,
	BEHAVIOR_TRANS_COLOR:               8,
	BEHAVIOR_ALPHA_FADE:                8,
	BEHAVIOR_SIZE:                      24,
	BEHAVIOR_TRANS_SIZE:                24,
	BEHAVIOR_POINT_GRAVITY:             12,
	BEHAVIOR_TURN_TO_DIRECTION_ENABLED: 4,
	BEHAVIOR_INFINITE_EMIT_ENABLED:     4,
}

// CheckLayouts verifies every behavior payload against its size.
func CheckLayouts() error {
	for _, b := range []Behavior{
		Basic{}, RndSeedChange{}, Delay{}, Gravity{}, Position{}, Rotation{},
		TransRotation{}, TransSpeed{}, TangentialAcceleration{}, InitColor{},
		TransColor{}, AlphaFade{}, Size{}, TransSize{}, PointGravity{},
		TurnToDirectionEnabled{}, InfiniteEmitEnabled{},
	} {
		if got, want := binary.Size(b), payloadSizes[b.Type()]; got != want {
			return &ssbp.LayoutError{Record: fmt.Sprintf("%T", b), Got: got, Want: want}
		}
	}
	return nil
}

func read[T Behavior](v *ssbp.View, off uint32) (Behavior, error) {
	b, err := ssbp.ReadAt[T](v, off+BEHAVIOR_HEADER_SIZE)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// ReadBehavior decodes the behavior record at off.
func ReadBehavior(v *ssbp.View, off uint32) (Behavior, error) {
	h, err := ssbp.ReadAt[behaviorHeader](v, off)
	if err != nil {
		return nil, err
	}
	switch h.Type {
	case BEHAVIOR_BASIC:
		return read[Basic](v, off)
	case BEHAVIOR_RND_SEED_CHANGE:
		return read[RndSeedChange](v, off)
	case BEHAVIOR_DELAY:
		return read[Delay](v, off)
	case BEHAVIOR_GRAVITY:
		return read[Gravity](v, off)
	case BEHAVIOR_POSITION:
		return read[Position](v, off)
	case BEHAVIOR_ROTATION:
		return read[Rotation](v, off)
	case BEHAVIOR_TRANS_ROTATION:
		return read[TransRotation](v, off)
	case BEHAVIOR_TRANS_SPEED:
		return read[TransSpeed](v, off)
	case BEHAVIOR_TANGENTIAL_ACCELERATION:
		return read[TangentialAcceleration](v, off)
	case BEHAVIOR_INIT_COLOR:
		return read[InitColor](v, off)
	case BEHAVIOR_TRANS_COLOR:
		return read[TransColor](v, off)
	case BEHAVIOR_ALPHA_FADE:
		return read[AlphaFade](v, off)
	case BEHAVIOR_SIZE:
		return read[Size](v, off)
	case BEHAVIOR_TRANS_SIZE:
		return read[TransSize](v, off)
	case BEHAVIOR_POINT_GRAVITY:
		return read[PointGravity](v, off)
	case BEHAVIOR_TURN_TO_DIRECTION_ENABLED:
		return read[TurnToDirectionEnabled](v, off)
	case BEHAVIOR_INFINITE_EMIT_ENABLED:
		return read[InfiniteEmitEnabled](v, off)
	}
	// BEHAVIOR_BASE lands here too: it has no payload of its own.
	return nil, &ssbp.UnknownDiscriminantError{Kind: "behavior type", Value: int(h.Type)}
}

func init() {
	if err := CheckLayouts(); err != nil {
		panic(err)
	}
}

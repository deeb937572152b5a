package scene

import (
	"github.com/bloeys/gglm/gglm"
)

type LightId uint32

type LightKind uint8

const (
	LightKind_Point LightKind = iota + 1
	LightKind_Directional
)

// Light is one scene light. Point lights take their world position from
// their anchor; directional lights carry an explicit direction and need no
// anchor.
type Light struct {
	Kind   LightKind
	Anchor AnchorId

	Color    gglm.Vec4
	Strength float32

	// Point lights only.
	Radius float32

	// Directional lights only.
	Direction gglm.Vec3
}

func NewPointLight(color gglm.Vec4, strength, radius float32) Light {
	return Light{
		Kind:     LightKind_Point,
		Color:    color,
		Strength: strength,
		Radius:   radius,
	}
}

func NewDirectionalLight(color gglm.Vec4, strength float32, direction gglm.Vec3) Light {
	return Light{
		Kind:      LightKind_Directional,
		Color:     color,
		Strength:  strength,
		Direction: direction,
	}
}

package renderer

import (
	"github.com/polygonengine/polygon/engine"
	"github.com/polygonengine/polygon/scene"
)

// passState is the fixed-function state for one shading pass of a mesh
// instance. The zero light id marks the ambient pass.
type passState struct {
	depthTest engine.Comparison
	blend     bool
	light     scene.LightId
}

// lightPasses builds the per-instance pass plan: one ambient pass with
// normal depth testing, then one additive pass per light. Light passes use
// LessEqual so fragments already written by the ambient pass still shade.
func lightPasses(lightIds []scene.LightId) []passState {

	passes := make([]passState, 0, len(lightIds)+1)
	passes = append(passes, passState{depthTest: engine.Comparison_Less})

	for _, id := range lightIds {
		passes = append(passes, passState{
			depthTest: engine.Comparison_LessEqual,
			blend:     true,
			light:     id,
		})
	}

	return passes
}

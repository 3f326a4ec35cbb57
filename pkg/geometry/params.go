package geometry

import (
	"fmt"

	"github.com/afonseca/go-whitted-raytracer/pkg/core"
)

// ObjectParameters holds the material state shared by every primitive.
// Opacity is derived: the fraction of the final color owed to local shading
// rather than to the reflected and transmitted rays.
type ObjectParameters struct {
	Color        core.Color
	Ka           float64 // ambient coefficient
	Kd           float64 // diffuse coefficient
	Ks           float64 // specular coefficient
	Kn           float64 // specular hardness exponent
	Reflection   float64
	Transparency float64
	Checkerboard float64 // tile size of the checker pattern, 0 disables it
	Opacity      float64 // 1 - (Reflection + Transparency)
}

// NewObjectParameters builds a validated material. All coefficients except
// Kn are clamped into [0, 1]; Kn is floored at 1 and the checkerboard size
// at 0. Reflection and transparency must not sum to more than 1.
func NewObjectParameters(color core.Color, ka, kd, ks, kn, reflection, transparency, checkerboard float64) (ObjectParameters, error) {
	reflection = clampUnit(reflection)
	transparency = clampUnit(transparency)

	if reflection+transparency > 1.0 {
		return ObjectParameters{}, fmt.Errorf(
			"reflection (%g) + transparency (%g) must not sum to more than 1", reflection, transparency)
	}

	return ObjectParameters{
		Color:        color,
		Ka:           clampUnit(ka),
		Kd:           clampUnit(kd),
		Ks:           clampUnit(ks),
		Kn:           max(kn, 1.0),
		Reflection:   reflection,
		Transparency: transparency,
		Checkerboard: max(checkerboard, 0.0),
		Opacity:      1.0 - (reflection + transparency),
	}, nil
}

func clampUnit(v float64) float64 {
	return min(max(v, 0.0), 1.0)
}

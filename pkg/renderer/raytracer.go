package renderer

import (
	"math"
	"time"

	"github.com/afonseca/go-whitted-raytracer/pkg/core"
	"github.com/afonseca/go-whitted-raytracer/pkg/geometry"
	"github.com/afonseca/go-whitted-raytracer/pkg/scene"
)

// opacityCutoff is the accumulated-opacity budget below which recursive
// reflection/transmission contributions are no longer worth resolving.
const opacityCutoff = core.Tolerance * 10

// Screen is the framebuffer sink the renderer draws into. The renderer only
// paints pixels and asks for intermediate presentations; persistence and
// display belong to the implementation.
type Screen interface {
	Width() int
	Height() int
	SetColor(r, g, b float64)
	PlotPixel(x, y int)
	Present() error
}

// Config contains rendering configuration
type Config struct {
	MaxReflections int  // recursion budget for reflected rays
	Shadows        bool // whether to cast shadow rays
}

// DefaultConfig returns the standard rendering configuration
func DefaultConfig() Config {
	return Config{
		MaxReflections: 5,
		Shadows:        true,
	}
}

// Stats accumulates per-render diagnostics. They are returned from Render
// rather than kept in process-wide state.
type Stats struct {
	PrimaryRays   int
	SecondaryRays int // reflection and transmission rays
	ShadowRays    int
	Duration      time.Duration
}

// Raytracer renders a scene from an observer's point of view
type Raytracer struct {
	scene    *scene.Scene
	observer *scene.Observer
	config   Config
	stats    Stats
}

// NewRaytracer creates a new raytracer with the default configuration
func NewRaytracer(sc *scene.Scene, observer *scene.Observer) *Raytracer {
	return &Raytracer{
		scene:    sc,
		observer: observer,
		config:   DefaultConfig(),
	}
}

// SetConfig updates the rendering configuration
func (rt *Raytracer) SetConfig(config Config) {
	rt.config = config
}

// Render casts a primary ray through every pixel's point on the projection
// plane and writes the resolved color to the screen. The screen is presented
// after every tenth of the columns so progress is visible, and once more at
// the end.
func (rt *Raytracer) Render(screen Screen) (Stats, error) {
	rt.stats = Stats{}
	start := time.Now()

	width, height := screen.Width(), screen.Height()
	ratioX := (rt.observer.MaxP.X - rt.observer.MinP.X) / float64(width)
	ratioY := (rt.observer.MaxP.Y - rt.observer.MinP.Y) / float64(height)
	planeZ := rt.observer.MinP.Z

	updateInterval := width / 10
	if updateInterval == 0 {
		updateInterval = 1
	}

	for i := 0; i < width; i++ {
		for j := 0; j < height; j++ {
			// Pixel center on the projection plane
			xT := (float64(i)+0.5)*ratioX + rt.observer.MinP.X
			yT := (float64(j)+0.5)*ratioY + rt.observer.MinP.Y
			target := core.NewVec3(xT, yT, planeZ)

			ray := core.NewRayFromPoints(rt.observer.Camera, target)
			rt.stats.PrimaryRays++

			color := rt.colorAt(ray, 1.0, rt.config.MaxReflections)

			screen.SetColor(color.R, color.G, color.B)
			// Plane coordinates grow upward but framebuffer row 0 is the
			// top of the image, so rows are flipped.
			screen.PlotPixel(i, (height-1)-j)
		}
		if i%updateInterval == 0 {
			if err := screen.Present(); err != nil {
				return rt.stats, err
			}
		}
	}

	if err := screen.Present(); err != nil {
		return rt.stats, err
	}

	rt.stats.Duration = time.Since(start)
	return rt.stats, nil
}

// colorAt resolves the color seen along a ray. totalO1 is the accumulated
// opacity budget of the enclosing calls: once the caller chain contributes
// almost nothing to the final pixel, recursion stops. reflections is the
// remaining budget for reflected rays.
func (rt *Raytracer) colorAt(ray core.Ray, totalO1 float64, reflections int) core.Color {
	object, point, ok := rt.firstIntersection(ray)
	if !ok {
		return rt.scene.Background
	}

	params := object.Params()
	normal := object.NormalAt(point)
	backwards := ray.Direction.Negate()

	// Per-light terms reused by the diffuse and specular passes
	type lightTerm struct {
		shadow float64   // visibility factor in [0, 1]
		factor float64   // attenuation * intensity
		l      core.Vec3 // unit vector from the hit point to the light
	}
	terms := make([]lightTerm, len(rt.scene.Lights))
	for i := range rt.scene.Lights {
		light := &rt.scene.Lights[i]

		shadow := 1.0
		if rt.config.Shadows {
			shadowRay := core.NewRayFromPoints(point, light.Position).Advance(core.Tolerance)
			shadow = rt.shadowFactor(shadowRay, light)
		}

		terms[i] = lightTerm{
			shadow: shadow,
			factor: light.Attenuation(light.Position.Subtract(point).Length()) * light.Intensity,
			l:      light.LVec(point),
		}
	}

	// Diffuse: per-light Lambert terms plus the ambient term, saturating
	totalIntensity := core.Black
	for i := range rt.scene.Lights {
		intensity := math.Max(terms[i].l.Dot(normal), 0) * terms[i].factor * params.Kd * terms[i].shadow
		totalIntensity = totalIntensity.Add(rt.scene.Lights[i].Color.Scale(intensity))
	}
	totalIntensity = totalIntensity.
		Add(rt.scene.AmbientColor.Scale(rt.scene.Ambient * params.Ka)).
		Min(1.0)

	diffuseColor := totalIntensity.Multiply(geometry.ColorAt(object, point))

	// Specular: the light color is measured against the diffuse color, so
	// highlights never push past the scene's own dynamic range.
	totalSpecular := core.Black
	for i := range rt.scene.Lights {
		reflected := normal.Multiply(2 * normal.Dot(terms[i].l)).Subtract(terms[i].l)
		specular := math.Pow(math.Max(reflected.Dot(backwards), 0), params.Kn) *
			terms[i].factor * params.Ks * terms[i].shadow
		totalSpecular = totalSpecular.Add(rt.scene.Lights[i].Color.Subtract(diffuseColor).Scale(specular))
	}
	totalSpecular = totalSpecular.Min(1.0)

	objectColor := diffuseColor.Add(totalSpecular)

	o1 := params.Opacity
	if o1 >= 1.0 || totalO1 <= opacityCutoff {
		return objectColor
	}

	// Transmitted contribution: same direction, since refraction bending is
	// not modeled. Falls back to the local color when inactive.
	transparencyC := objectColor
	if params.Transparency > core.Tolerance {
		transmitted := core.NewRay(point, refractiveDir(ray)).Advance(core.Tolerance)
		rt.stats.SecondaryRays++
		transparencyC = rt.colorAt(transmitted, totalO1*params.Transparency, reflections)
	}

	// Reflected contribution, bounded by the recursion budget
	reflectionC := objectColor
	if params.Reflection > core.Tolerance && reflections > 0 {
		dir := ray.Direction.Subtract(normal.Multiply(2 * ray.Direction.Dot(normal)))
		reflected := core.NewRay(point, dir).Advance(core.Tolerance)
		rt.stats.SecondaryRays++
		reflectionC = rt.colorAt(reflected, totalO1*params.Reflection, reflections-1)
	}

	return objectColor.Scale(o1).
		Add(reflectionC.Scale(params.Reflection)).
		Add(transparencyC.Scale(params.Transparency))
}

// firstIntersection scans every primitive for the smallest strictly-positive
// intersection. Ties at the same t keep the earliest object in the list.
func (rt *Raytracer) firstIntersection(ray core.Ray) (geometry.Shape, core.Vec3, bool) {
	tMin := math.Inf(1)
	var nearest geometry.Shape

	for _, object := range rt.scene.Objects {
		if t, ok := object.Intersect(ray); ok && t < tMin {
			tMin = t
			nearest = object
		}
	}

	if nearest == nil {
		return nil, core.Vec3{}, false
	}
	return nearest, ray.At(tMin), true
}

// shadowFactor returns the fraction of the light that reaches the shadow
// ray's anchor: 1 with no occluder, 0 behind an opaque occluder, and the
// occluder's transparency (recursively, since the ray may cross several
// surfaces) otherwise.
func (rt *Raytracer) shadowFactor(ray core.Ray, light *scene.Light) float64 {
	rt.stats.ShadowRays++
	tLight := light.Position.Subtract(ray.Anchor).Length()

	for _, object := range rt.scene.Objects {
		t, ok := object.Intersect(ray)
		if !ok || t >= tLight || t <= core.Tolerance {
			// t > Tolerance keeps the surface from occluding itself
			continue
		}

		transparency := object.Params().Transparency
		if transparency <= 0 {
			return 0
		}
		through := core.NewRay(ray.At(t), refractiveDir(ray)).Advance(core.Tolerance)
		return transparency * rt.shadowFactor(through, light)
	}

	return 1.0
}

// refractiveDir returns the transmitted direction for a ray crossing a
// transparent surface. Refraction bending is not modeled, so the direction
// passes through unchanged; a Snell's-law computation would slot in here.
func refractiveDir(ray core.Ray) core.Vec3 {
	return ray.Direction
}

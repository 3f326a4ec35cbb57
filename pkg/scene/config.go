package scene

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/afonseca/go-whitted-raytracer/pkg/core"
	"github.com/afonseca/go-whitted-raytracer/pkg/geometry"
)

// Defaults applied when an optional config key is absent
const (
	DefaultBackground = "#3D1A28"
	DefaultLightColor = "#FFFFFF"
	DefaultHardness   = 10.0
)

// loadOptions keeps '#' usable inside values, since colors are written as
// hex literals like "#FF0000"
var loadOptions = ini.LoadOptions{IgnoreInlineComment: true}

// LoadScene reads a scene config file. Primitives live in sections whose
// names start with the primitive kind (e.g. [sphere-1], [planeFloor]),
// lights in sections prefixed "light", and the global terms in [scene].
func LoadScene(path string) (*Scene, error) {
	cfg, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return nil, fmt.Errorf("scene config: load %s: %w", path, err)
	}

	ambient, err := getFloat(cfg.Section("scene"), "I_a")
	if err != nil {
		return nil, err
	}
	background, err := getColorDefault(cfg.Section("scene"), "bg_color", DefaultBackground)
	if err != nil {
		return nil, err
	}
	ambientColor, err := getColorDefault(cfg.Section("scene"), "ambient_color", DefaultLightColor)
	if err != nil {
		return nil, err
	}

	scene := &Scene{
		Ambient:      ambient,
		AmbientColor: ambientColor,
		Background:   background,
	}

	for _, section := range cfg.Sections() {
		name := strings.ToLower(section.Name())

		var object geometry.Shape
		var err error

		switch {
		case strings.HasPrefix(name, "sphere"):
			object, err = loadSphere(section)
		case strings.HasPrefix(name, "plane"):
			object, err = loadPlane(section)
		case strings.HasPrefix(name, "disc"):
			object, err = loadDisc(section)
		case strings.HasPrefix(name, "triangle"):
			object, err = loadTriangle(section)
		case strings.HasPrefix(name, "cylinder"):
			object, err = loadCylinder(section)
		case strings.HasPrefix(name, "cone"):
			object, err = loadCone(section)
		case strings.HasPrefix(name, "light"):
			light, err := loadLight(section)
			if err != nil {
				return nil, err
			}
			scene.Lights = append(scene.Lights, light)
			continue
		default:
			continue
		}

		if err != nil {
			return nil, err
		}
		scene.Objects = append(scene.Objects, object)
	}

	return scene, nil
}

// LoadObserver reads an observer config file with a [camera] position and
// the [plane] corners of the projection plane
func LoadObserver(path string) (*Observer, error) {
	cfg, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return nil, fmt.Errorf("observer config: load %s: %w", path, err)
	}

	camera, err := getVec3(cfg.Section("camera"), "position")
	if err != nil {
		return nil, err
	}

	plane := cfg.Section("plane")
	planeZ, err := getFloatDefault(plane, "z", 0)
	if err != nil {
		return nil, err
	}
	xMin, err := getFloat(plane, "x_min")
	if err != nil {
		return nil, err
	}
	xMax, err := getFloat(plane, "x_max")
	if err != nil {
		return nil, err
	}
	yMin, err := getFloat(plane, "y_min")
	if err != nil {
		return nil, err
	}
	yMax, err := getFloat(plane, "y_max")
	if err != nil {
		return nil, err
	}

	return &Observer{
		Camera: camera,
		MinP:   core.NewVec3(xMin, yMin, planeZ),
		MaxP:   core.NewVec3(xMax, yMax, planeZ),
	}, nil
}

func loadSphere(section *ini.Section) (geometry.Shape, error) {
	center, err := getVec3(section, "center")
	if err != nil {
		return nil, err
	}
	radius, err := getFloat(section, "radius", "r")
	if err != nil {
		return nil, err
	}
	params, err := loadParams(section)
	if err != nil {
		return nil, err
	}
	return geometry.NewSphere(center, radius, params), nil
}

func loadPlane(section *ini.Section) (geometry.Shape, error) {
	normal, err := getVec3(section, "normal")
	if err != nil {
		return nil, err
	}
	point, err := getVec3(section, "point")
	if err != nil {
		return nil, err
	}
	params, err := loadParams(section)
	if err != nil {
		return nil, err
	}
	return geometry.NewPlane(normal, point, params), nil
}

func loadDisc(section *ini.Section) (geometry.Shape, error) {
	normal, err := getVec3(section, "normal")
	if err != nil {
		return nil, err
	}
	center, err := getVec3(section, "center")
	if err != nil {
		return nil, err
	}
	radius, err := getFloat(section, "radius", "r")
	if err != nil {
		return nil, err
	}
	params, err := loadParams(section)
	if err != nil {
		return nil, err
	}
	return geometry.NewDisc(normal, center, radius, params), nil
}

func loadTriangle(section *ini.Section) (geometry.Shape, error) {
	a, err := getVec3(section, "a")
	if err != nil {
		return nil, err
	}
	b, err := getVec3(section, "b")
	if err != nil {
		return nil, err
	}
	c, err := getVec3(section, "c")
	if err != nil {
		return nil, err
	}
	params, err := loadParams(section)
	if err != nil {
		return nil, err
	}
	return geometry.NewTriangle(a, b, c, params), nil
}

func loadCylinder(section *ini.Section) (geometry.Shape, error) {
	anchor, err := getVec3(section, "anchor")
	if err != nil {
		return nil, err
	}
	direction, err := getVec3(section, "direction")
	if err != nil {
		return nil, err
	}
	radius, err := getFloat(section, "radius", "r")
	if err != nil {
		return nil, err
	}
	length, err := getFloat(section, "length")
	if err != nil {
		return nil, err
	}
	params, err := loadParams(section)
	if err != nil {
		return nil, err
	}
	return geometry.NewCylinder(anchor, direction, radius, length, params), nil
}

func loadCone(section *ini.Section) (geometry.Shape, error) {
	anchor, err := getVec3(section, "anchor")
	if err != nil {
		return nil, err
	}
	direction, err := getVec3(section, "direction")
	if err != nil {
		return nil, err
	}
	k1, err := getFloat(section, "k1")
	if err != nil {
		return nil, err
	}
	k2, err := getFloat(section, "k2")
	if err != nil {
		return nil, err
	}
	length, err := getFloat(section, "length")
	if err != nil {
		return nil, err
	}
	params, err := loadParams(section)
	if err != nil {
		return nil, err
	}
	cone, err := geometry.NewCone(anchor, direction, k1, k2, length, params)
	if err != nil {
		return nil, fmt.Errorf("section %q: %w", section.Name(), err)
	}
	return cone, nil
}

func loadLight(section *ini.Section) (Light, error) {
	position, err := getVec3(section, "position")
	if err != nil {
		return Light{}, err
	}
	intensity, err := getFloat(section, "intensity", "I_p")
	if err != nil {
		return Light{}, err
	}
	c1, err := getFloat(section, "c_1", "C1")
	if err != nil {
		return Light{}, err
	}
	c2, err := getFloat(section, "c_2", "C2")
	if err != nil {
		return Light{}, err
	}
	c3, err := getFloat(section, "c_3", "C3")
	if err != nil {
		return Light{}, err
	}
	color, err := getColorDefault(section, "color", DefaultLightColor)
	if err != nil {
		return Light{}, err
	}

	return Light{
		Position:  position,
		Intensity: max(intensity, 0),
		C1:        c1,
		C2:        c2,
		C3:        c3,
		Color:     color,
	}, nil
}

// loadParams reads the shared material keys of an object section
func loadParams(section *ini.Section) (geometry.ObjectParameters, error) {
	color, err := getColor(section, "color")
	if err != nil {
		return geometry.ObjectParameters{}, err
	}
	kd, err := getFloat(section, "k_d")
	if err != nil {
		return geometry.ObjectParameters{}, err
	}
	ks, err := getFloat(section, "k_s")
	if err != nil {
		return geometry.ObjectParameters{}, err
	}
	ka, err := getFloatDefault(section, "k_a", 1.0)
	if err != nil {
		return geometry.ObjectParameters{}, err
	}
	kn, err := getFloatDefault(section, "k_n", DefaultHardness)
	if err != nil {
		return geometry.ObjectParameters{}, err
	}
	reflection, err := getFloatDefault(section, "reflection", 0)
	if err != nil {
		return geometry.ObjectParameters{}, err
	}
	transparency, err := getFloatDefault(section, "transparency", 0)
	if err != nil {
		return geometry.ObjectParameters{}, err
	}
	checkerboard, err := getFloatDefault(section, "checkerboard", 0)
	if err != nil {
		return geometry.ObjectParameters{}, err
	}

	params, err := geometry.NewObjectParameters(color, ka, kd, ks, kn, reflection, transparency, checkerboard)
	if err != nil {
		return geometry.ObjectParameters{}, fmt.Errorf("section %q: %w", section.Name(), err)
	}
	return params, nil
}

// getFloat reads a required float key, trying each alias in order
func getFloat(section *ini.Section, names ...string) (float64, error) {
	for _, name := range names {
		if section.HasKey(name) {
			v, err := section.Key(name).Float64()
			if err != nil {
				return 0, fmt.Errorf("section %q: key %q: %w", section.Name(), name, err)
			}
			return v, nil
		}
	}
	return 0, fmt.Errorf("section %q: missing key %q", section.Name(), names[0])
}

func getFloatDefault(section *ini.Section, name string, fallback float64) (float64, error) {
	if !section.HasKey(name) {
		return fallback, nil
	}
	return getFloat(section, name)
}

func getColor(section *ini.Section, name string) (core.Color, error) {
	if !section.HasKey(name) {
		return core.Color{}, fmt.Errorf("section %q: missing key %q", section.Name(), name)
	}
	color, err := core.NewColorFromHex(section.Key(name).String())
	if err != nil {
		return core.Color{}, fmt.Errorf("section %q: key %q: %w", section.Name(), name, err)
	}
	return color, nil
}

func getColorDefault(section *ini.Section, name, fallback string) (core.Color, error) {
	hex := fallback
	if section.HasKey(name) {
		hex = section.Key(name).String()
	}
	color, err := core.NewColorFromHex(hex)
	if err != nil {
		return core.Color{}, fmt.Errorf("section %q: key %q: %w", section.Name(), name, err)
	}
	return color, nil
}

func getVec3(section *ini.Section, name string) (core.Vec3, error) {
	if !section.HasKey(name) {
		return core.Vec3{}, fmt.Errorf("section %q: missing key %q", section.Name(), name)
	}
	v, err := ParseVec3(section.Key(name).String())
	if err != nil {
		return core.Vec3{}, fmt.Errorf("section %q: key %q: %w", section.Name(), name, err)
	}
	return v, nil
}

// ParseVec3 parses a 3-component vector written as "(x, y, z)", "[x, y, z]"
// or bare "x, y, z"
func ParseVec3(s string) (core.Vec3, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return core.Vec3{}, fmt.Errorf("empty vector")
	}

	switch s[0] {
	case '(':
		if !strings.HasSuffix(s, ")") {
			return core.Vec3{}, fmt.Errorf("vector %q is not terminated by ')'", s)
		}
		s = s[1 : len(s)-1]
	case '[':
		if !strings.HasSuffix(s, "]") {
			return core.Vec3{}, fmt.Errorf("vector %q is not terminated by ']'", s)
		}
		s = s[1 : len(s)-1]
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return core.Vec3{}, fmt.Errorf("vector must have 3 components, got %d", len(parts))
	}

	floats := make([]float64, 3)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("vector component %q is not a number", strings.TrimSpace(part))
		}
		floats[i] = v
	}

	return core.NewVec3(floats[0], floats[1], floats[2]), nil
}

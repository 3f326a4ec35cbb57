package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/afonseca/go-whitted-raytracer/pkg/renderer"
	"github.com/afonseca/go-whitted-raytracer/pkg/scene"
	"github.com/afonseca/go-whitted-raytracer/pkg/screen"
)

func main() {
	resolution := flag.Int("resolution", 600, "Image width and height in pixels")
	scenePath := flag.String("scene", "config/basic_scene.ini", "Scene description file")
	observerPath := flag.String("observer", "config/basic_observer.ini", "Camera and projection plane file")
	output := flag.String("o", "images/out.png", "Output image path (.png, .jpg, .webp, .tga or .bmp)")
	window := flag.Bool("window", false, "Show the render progressively in a window")
	noShadows := flag.Bool("no-shadows", false, "Disable shadow rays")
	reflections := flag.Int("reflections", 5, "Maximum reflection depth")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Resolution may also be given as a positional argument
	if flag.NArg() > 0 {
		n, err := strconv.Atoi(flag.Arg(0))
		if err != nil || n <= 0 {
			fmt.Printf("Invalid resolution: %q\n", flag.Arg(0))
			os.Exit(1)
		}
		*resolution = n
	}

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	sc, err := scene.LoadScene(*scenePath)
	if err != nil {
		fmt.Printf("Error loading scene: %v\n", err)
		os.Exit(1)
	}
	observer, err := scene.LoadObserver(*observerPath)
	if err != nil {
		fmt.Printf("Error loading observer: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(*output), 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	raytracer := renderer.NewRaytracer(sc, observer)
	raytracer.SetConfig(renderer.Config{
		MaxReflections: *reflections,
		Shadows:        !*noShadows,
	})

	ctx := screen.NewContext(*resolution, *resolution)

	render := func() error {
		fmt.Printf("Rendering %dx%d (%d objects, %d lights)...\n",
			*resolution, *resolution, len(sc.Objects), len(sc.Lights))

		stats, err := raytracer.Render(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Render completed in %v\n", stats.Duration)
		fmt.Printf("  Primary rays:   %d\n", stats.PrimaryRays)
		fmt.Printf("  Secondary rays: %d\n", stats.SecondaryRays)
		fmt.Printf("  Shadow rays:    %d\n", stats.ShadowRays)

		if err := ctx.Save(*output); err != nil {
			return err
		}
		fmt.Printf("Image saved to: %s\n", *output)
		return nil
	}

	if *window {
		err = screen.RunWindow(ctx, "Whitted Raytracer", render)
	} else {
		err = render()
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

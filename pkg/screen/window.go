package screen

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window displaying the framebuffer while render
// runs in its own goroutine, so the image appears progressively. It blocks
// until the window is closed or the render fails, and returns the render's
// error if any. The rendered image stays on screen after the render
// finishes.
func RunWindow(ctx *Context, title string, render func() error) error {
	g := &game{
		ctx:     ctx,
		scratch: make([]byte, 4*ctx.Width()*ctx.Height()),
		errCh:   make(chan error, 1),
	}

	go func() { g.errCh <- render() }()

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(ctx.Width(), ctx.Height())
	ebiten.SetTPS(30)
	return ebiten.RunGame(g)
}

type game struct {
	ctx     *Context
	fbImg   *ebiten.Image
	scratch []byte
	errCh   chan error
	done    bool
}

func (g *game) Update() error {
	if g.done {
		return nil
	}
	select {
	case err := <-g.errCh:
		g.done = true
		if err != nil {
			return err
		}
	default:
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(g.ctx.Width(), g.ctx.Height())
	}

	g.ctx.snapshotInto(g.scratch)
	g.fbImg.WritePixels(g.scratch)
	screen.DrawImage(g.fbImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ctx.Width(), g.ctx.Height()
}

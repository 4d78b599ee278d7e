package host

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"gbcore/internal/joypad"
)

// screenWidth/screenHeight give the ebiten window something to draw even
// though this core's scope stops short of a real PPU: a flat color frame
// that proves the window surface is live.
const (
	screenWidth  = 160
	screenHeight = 144
)

var keyMap = map[ebiten.Key]uint8{
	ebiten.KeyArrowRight: joypad.BitRightOrA,
	ebiten.KeyArrowLeft:  joypad.BitLeftOrB,
	ebiten.KeyArrowUp:    joypad.BitUpOrSelect,
	ebiten.KeyArrowDown:  joypad.BitDownOrStart,
	ebiten.KeyX:          joypad.BitRightOrA,
	ebiten.KeyZ:          joypad.BitLeftOrB,
	ebiten.KeyBackspace:  joypad.BitUpOrSelect,
	ebiten.KeyEnter:      joypad.BitDownOrStart,
}

// ebitenGame is the ebiten.Game adapter EbitenHost drives. Ebitengine owns
// the real event loop; EbitenHost's Sleep/PollEvents/QuitRequested are
// serviced by state this game's Update collects each tick.
type ebitenGame struct {
	pressed uint8
	quit    bool
}

// errQuit is returned from Update to stop ebiten.RunGame cleanly, either
// because the player hit Escape or because Close was called externally.
var errQuit = fmt.Errorf("host: quit requested")

func (g *ebitenGame) Update() error {
	var mask uint8
	for key, bit := range keyMap {
		if ebiten.IsKeyPressed(key) {
			mask |= bit
		}
	}
	g.pressed = mask
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		g.quit = true
	}
	if g.quit {
		return errQuit
	}
	return nil
}

func (g *ebitenGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x20, G: 0x20, B: 0x30, A: 0xFF})
}

func (g *ebitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// EbitenHost is a Host backed by a real ebiten window.
type EbitenHost struct {
	game   *ebitenGame
	closed bool
	runErr chan error
}

// NewEbitenHost opens a window titled title and starts pumping its event
// loop on a background goroutine (ebiten.RunGame owns the OS thread it
// runs on and blocks until the window closes).
func NewEbitenHost(title string, scale int) *EbitenHost {
	if scale < 1 {
		scale = 1
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(screenWidth*scale, screenHeight*scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	h := &EbitenHost{
		game:   &ebitenGame{},
		runErr: make(chan error, 1),
	}

	go func() {
		err := ebiten.RunGame(h.game)
		h.runErr <- err
	}()

	return h
}

// Sleep pauses the caller for d. Ebiten's own Update ticks run on its
// background goroutine regardless, so this is a plain wall-clock sleep.
func (h *EbitenHost) Sleep(d time.Duration) {
	time.Sleep(d)
}

// PollEvents returns the joypad-bit mask ebitenGame.Update most recently
// collected.
func (h *EbitenHost) PollEvents() uint8 {
	return h.game.pressed
}

// QuitRequested reports whether the window closed or Escape was pressed.
func (h *EbitenHost) QuitRequested() bool {
	select {
	case err := <-h.runErr:
		h.closed = true
		if err != nil && err != errQuit {
			fmt.Printf("host: ebiten run loop ended: %v\n", err)
		}
	default:
	}
	return h.closed || h.game.quit
}

// Close asks the ebiten run loop to terminate.
func (h *EbitenHost) Close() error {
	if h.game.quit {
		return nil
	}
	h.game.quit = true
	return nil
}

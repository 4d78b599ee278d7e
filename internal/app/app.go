package app

import (
	"fmt"
	"log"
	"time"

	"gbcore/internal/bus"
	"gbcore/internal/cartridge"
	"gbcore/internal/cpu"
	"gbcore/internal/host"
	"gbcore/internal/serialtap"
)

// cyclesPerFrame is the Game Boy's m-cycle budget per video frame: 70224
// T-states at 4 T-states/m-cycle, the DMG's fixed 154-scanline frame.
const cyclesPerFrame = 70224 / 4

// Application wires a loaded cartridge through the bus and CPU and drives
// it with a host surface for pacing, input, and quit detection.
type Application struct {
	config *Config
	cart   *cartridge.Cartridge
	bus    *bus.Bus
	cpu    *cpu.CPU
	host   host.Host
	tap    *serialtap.Tap

	frameDuration time.Duration
}

// New loads romPath and wires the full core around it, selecting a host
// backend per cfg.Emulation.Headless.
func New(cfg *Config, romPath string) (*Application, error) {
	cart, err := cartridge.Load(romPath)
	if err != nil {
		return nil, fmt.Errorf("app: load rom: %w", err)
	}

	b := bus.New(cart)
	c := cpu.New(b)

	var h host.Host
	if cfg.Emulation.Headless {
		h = host.NewHeadlessHost()
	} else {
		title := fmt.Sprintf("gbcore - %s", cart.Header().Title)
		h = host.NewEbitenHost(title, cfg.Window.Scale)
	}

	if cfg.Debug.CPUTracing {
		c.SetTrace(func(line string) { log.Println(line) })
	}

	a := &Application{
		config: cfg,
		cart:   cart,
		bus:    b,
		cpu:    c,
		host:   h,
		tap:    serialtap.New(b),
	}
	a.setFrameRate(cfg.Emulation.FrameRate)
	return a, nil
}

// CPU exposes the wired CPU for callers (tests, a future debugger) that
// need direct access.
func (a *Application) CPU() *cpu.CPU { return a.cpu }

// Bus exposes the wired bus.
func (a *Application) Bus() *bus.Bus { return a.bus }

// SerialTap exposes the accumulated serial-port output buffer.
func (a *Application) SerialTap() *serialtap.Tap { return a.tap }

func (a *Application) setFrameRate(hz float64) {
	if hz <= 0 {
		a.frameDuration = 0
		return
	}
	a.frameDuration = time.Duration(float64(time.Second) / hz)
}

// Run drives the CPU until the host requests quit or a fatal decode error
// occurs. Each iteration steps roughly one frame's worth of m-cycles,
// polls input into the joypad register, and paces to frameDuration when
// one is configured (0 means run flat-out, the common headless-test mode).
func (a *Application) Run() error {
	defer a.host.Close()

	for !a.host.QuitRequested() {
		frameStart := time.Now()
		target := a.cpu.Ticks() + cyclesPerFrame

		for a.cpu.Ticks() < target {
			if err := a.cpu.Step(); err != nil {
				return err
			}
			if a.config.Debug.EchoSerial {
				a.tap.Observe()
			}
			if a.cpu.StopRequested() {
				return nil
			}
		}

		a.bus.IO.Joypad.SetPressed(a.host.PollEvents())

		if a.frameDuration > 0 {
			if remaining := a.frameDuration - time.Since(frameStart); remaining > 0 {
				a.host.Sleep(remaining)
			}
		}
	}
	return nil
}

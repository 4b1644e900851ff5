// cmd/thrust/main.go
// Terminal demo client for the go-thrust flight engine. It owns the
// game loop, feeds keyboard input to the engine, and renders the
// ship, pod, and tether each frame; the engine itself knows nothing
// about screens or keys.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/EngoEngine/ecs"
	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-thrust/pkg/config"
	"github.com/opd-ai/go-thrust/pkg/engine"
	"github.com/opd-ai/go-thrust/pkg/event"
	"github.com/opd-ai/go-thrust/pkg/logging"
	"github.com/opd-ai/go-thrust/pkg/render"
)

// podDropDistance is where the demo spawns a synthetic pod below the
// ship when capture is requested. A real game would track a pod
// sprite and its pickup radius instead.
const podDropDistance = 8.0

func main() {
	configPath := flag.String("config", "config.json", "Path to configuration file")
	level := flag.Int("level", 0, "Starting gravity level (0-5)")
	fps := flag.Int("fps", 30, "Display frames per second")
	scale := flag.Float64("scale", 1.0, "World units per character cell")
	flag.Parse()

	simConfig := loadConfig(*configPath)

	thrust := engine.New(simConfig)
	thrust.SetLevel(*level)

	logFile, err := os.OpenFile("thrust.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()
	logger := logging.NewLoggerWithOutput(logFile)

	subscribeEvents(thrust, logger)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Fini()

	runGameLoop(thrust, screen, *scale, *fps)
}

// loadConfig loads the simulation config, falling back to defaults
// when the file is absent.
func loadConfig(path string) *config.SimConfig {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Printf("Configuration file not found, using default configuration")
		return config.DefaultConfig()
	}
	simConfig, err := config.LoadConfig(path)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	return simConfig
}

// subscribeEvents logs the engine lifecycle events game collaborators
// would normally consume.
func subscribeEvents(thrust *engine.Engine, logger *logging.Logger) {
	ctx := context.Background()
	thrust.EventBus().Subscribe(event.PodAttached, func(e event.Event) {
		if pod, ok := e.(*event.PodEvent); ok {
			logger.Info(ctx, "pod attached", "pod_x", pod.PodPos.X, "pod_y", pod.PodPos.Y)
		}
	})
	thrust.EventBus().Subscribe(event.PodDetached, func(e event.Event) {
		logger.Info(ctx, "pod detached")
	})
	thrust.EventBus().Subscribe(event.LevelChanged, func(e event.Event) {
		if lv, ok := e.(*event.LevelEvent); ok {
			logger.Info(ctx, "level changed", "old", lv.OldLevel, "new", lv.NewLevel)
		}
	})
}

// runGameLoop runs the ecs world at the display rate until quit.
func runGameLoop(thrust *engine.Engine, screen tcell.Screen, scale float64, fps int) {
	input := &inputTracker{}

	world := &ecs.World{}
	world.AddSystem(&motionSystem{engine: thrust, input: input})
	world.AddSystem(&renderSystem{engine: thrust, renderer: render.NewTerminalRenderer(screen, scale)})

	keys := make(chan *tcell.EventKey, 8)
	quit := make(chan struct{})
	go pollKeys(screen, keys, quit)

	if fps < 1 {
		fps = 30
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-quit:
			return
		case key := <-keys:
			if handleKey(key, thrust, input) {
				return
			}
		case now := <-ticker.C:
			world.Update(float32(now.Sub(last).Seconds()))
			last = now
		}
	}
}

// pollKeys forwards key events from tcell's blocking poll loop.
func pollKeys(screen tcell.Screen, keys chan<- *tcell.EventKey, quit chan<- struct{}) {
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			keys <- ev
		case *tcell.EventResize:
			screen.Sync()
		case nil:
			close(quit)
			return
		}
	}
}

// handleKey maps a key event to engine operations. Returns true when
// the demo should exit.
func handleKey(key *tcell.EventKey, thrust *engine.Engine, input *inputTracker) bool {
	now := time.Now()

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		input.press("thrust", now)
		return false
	case tcell.KeyLeft:
		input.press("left", now)
		return false
	case tcell.KeyRight:
		input.press("right", now)
		return false
	}

	switch key.Rune() {
	case 'q':
		return true
	case 'w':
		input.press("thrust", now)
	case 'a':
		input.press("left", now)
	case 'd':
		input.press("right", now)
	case 's':
		input.press("shield", now)
	case 'p':
		ship := thrust.ShipPosition()
		thrust.AttachPod(ship.X, ship.Y+podDropDistance)
	case 'x':
		thrust.DetachPod()
	case 'r':
		thrust.ResetMotion()
	case '0', '1', '2', '3', '4', '5':
		thrust.SetLevel(int(key.Rune() - '0'))
	}
	return false
}

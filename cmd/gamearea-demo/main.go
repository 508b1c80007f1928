package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gamearea/cache"
	"github.com/lixenwraith/gamearea/component"
	"github.com/lixenwraith/gamearea/config"
	"github.com/lixenwraith/gamearea/core"
	"github.com/lixenwraith/gamearea/event"
	"github.com/lixenwraith/gamearea/gamearea"
	"github.com/lixenwraith/gamearea/graphics"
	"github.com/lixenwraith/gamearea/parameter"
	"github.com/lixenwraith/gamearea/projection"
	"github.com/lixenwraith/gamearea/render"
	"github.com/lixenwraith/gamearea/status"
)

var (
	configFlag   = flag.String("config", "", "YAML config path, defaults when empty or missing")
	storeFlag    = flag.String("store", "", "Override area store: generate, snapshot, sqlite")
	pathFlag     = flag.String("path", "", "Override area store path")
	modeFlag     = flag.String("mode", "", "Override projection: top_down, isometric")
	seedFlag     = flag.Int64("seed", 0, "Override terrain seed (0 keeps config)")
	snapshotFlag = flag.String("snapshot-out", "gamearea.zst", "Snapshot path written by the 'w' key")
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/gamearea.log")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "gamearea-demo: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies flag overrides
func loadConfig() (config.Config, error) {
	cfg, err := config.LoadOrDefault(*configFlag)
	if err != nil {
		return cfg, err
	}
	if *storeFlag != "" {
		cfg.Area.Store = *storeFlag
	}
	if *pathFlag != "" {
		cfg.Area.Path = *pathFlag
	}
	if *modeFlag != "" {
		cfg.Projection = *modeFlag
	}
	if *seedFlag != 0 {
		cfg.Area.Seed = *seedFlag
	}
	return cfg, cfg.Validate()
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	mode, err := cfg.Mode()
	if err != nil {
		return err
	}

	src, closeArea, err := openArea(cfg.Area)
	if err != nil {
		return fmt.Errorf("open area: %w", err)
	}
	defer func() {
		if err := closeArea(); err != nil {
			log.Printf("Close area: %v", err)
		}
	}()

	metrics := status.NewRegistry()
	projector := projection.New(src, mode)
	projector.SetMetrics(metrics)

	var layerCache *cache.Cache[[]graphics.Layer]
	var proj component.Projector = projector
	if cfg.Cache.Enabled {
		opts, err := cfg.Cache.Options()
		if err != nil {
			return err
		}
		opts.Metrics = metrics
		layerCache, err = cache.New[[]graphics.Layer](opts)
		if err != nil {
			return err
		}
		proj = projection.NewCached(projector, layerCache)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableFocus()
	core.SetCrashScreen(screen)
	defer screen.Fini()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	events := event.NewEventQueue()
	w, h := screen.Size()
	game, err := component.New(component.Options{
		VisibleSize: viewportSize(cfg.Viewport, w, h),
		Source:      src,
		Projector:   proj,
		Emitter:     events,
		Metrics:     metrics,
	})
	if err != nil {
		return err
	}
	game.GiveFocus(nil)

	theme := graphics.DefaultTheme()
	gameRenderer := render.NewGameAreaRenderer(game)
	statusRenderer := render.NewStatusRenderer(func() string {
		var stats cache.Stats
		if layerCache != nil {
			stats = layerCache.Stats()
		}
		return statusLine(game, gameRenderer, stats, metrics)
	})

	orchestrator := render.NewOrchestrator(screen)
	orchestrator.Register(gameRenderer, render.PriorityGameArea)
	orchestrator.Register(statusRenderer, render.PriorityStatus)

	log.Printf("Viewport %v over %v, mode %s, cache %t", game.VisibleSpaceSize(), game.VirtualSpaceSize(), mode, layerCache != nil)

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()
	maintenance := time.NewTicker(time.Second)
	defer maintenance.Stop()

	dirty := true
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch handleKey(game, ev) {
				case actionQuit:
					return nil
				case actionToggleStatus:
					statusRenderer.SetVisible(!statusRenderer.IsVisible())
					dirty = true
				case actionSaveSnapshot:
					metrics.SetLabel("demo.message", saveSnapshot(src, *snapshotFlag))
					dirty = true
				}
			case *tcell.EventResize:
				w, h := ev.Size()
				game.Resize(viewportSize(cfg.Viewport, w, h))
				orchestrator.Resize()
				dirty = true
			case *tcell.EventFocus:
				if ev.Focused {
					game.GiveFocus(ev)
				} else {
					game.TakeFocus(ev)
				}
				gameRenderer.SetDim(dimFactor(ev.Focused))
				dirty = true
			}

		case <-frameTicker.C:
			for _, ge := range events.Consume() {
				metrics.Add("events."+ge.Type.String(), 1)
				dirty = true
			}
			if dirty {
				orchestrator.RenderFrame(theme)
				dirty = false
			}

		case <-maintenance.C:
			if layerCache != nil {
				if n := layerCache.CleanUp(); n > 0 {
					log.Printf("Cache cleanup dropped %d entries", n)
				}
				layerCache.PublishGauges()
			}
			if d := events.Dropped(); d > 0 {
				metrics.SetGauge("events.dropped", float64(d))
			}
		}
	}
}

// viewportSize fits the configured viewport into the screen, leaving the status row
func viewportSize(v config.ViewportConfig, screenW, screenH int) core.Size3D {
	w, h := v.Width, v.Height
	if w == 0 || w > screenW {
		w = screenW
	}
	if h == 0 || h > screenH-1 {
		h = max(screenH-1, 0)
	}
	return core.Size3D{Width: w, Height: h, Levels: v.Levels}
}

func dimFactor(focused bool) float64 {
	if focused {
		return 0
	}
	return 0.4
}

// saveSnapshot writes in-memory areas to path and returns a status message
func saveSnapshot(src gamearea.Source, path string) string {
	a, ok := src.(*gamearea.MemoryArea)
	if !ok {
		return "snapshot: memory areas only"
	}
	if err := gamearea.WriteSnapshot(path, a); err != nil {
		log.Printf("Snapshot failed: %v", err)
		return "snapshot failed"
	}
	return "saved " + path
}

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"snek/ai"
	"snek/assets"
	"snek/game"
	"snek/game/types"
	"snek/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/exp/rand"
)

func main() {
	fps := flag.Int("fps", 60, "Target frames per second")
	seed := flag.Uint64("seed", 0, "Random seed (0 = time based)")
	autopilot := flag.Bool("autopilot", false, "Let the autopilot steer")
	headless := flag.Bool("headless", false, "Run without a window, steered by the autopilot")
	ticks := flag.Uint64("ticks", 10000, "Frames to simulate with -headless (0 = until interrupted)")
	width := flag.Float64("width", 800, "Screen width for -headless")
	height := flag.Float64("height", 600, "Screen height for -headless")
	flag.Parse()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(*seed))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *headless {
		runHeadless(ctx, rng, types.Bounds{Width: *width, Height: *height}, *ticks)
		return
	}

	window := ui.OpenWindow(800, 600, "Snek", int32(*fps))
	defer window.Close()

	atlas, err := ui.LoadAtlas(assets.Textures, assets.Fruits)
	if err != nil {
		rl.TraceLog(rl.LogFatal, "SNEK: %v", err)
	}
	defer atlas.Unload()

	g := game.NewGame(window.ScreenSize(), atlas.Len(), rng)
	host := game.Host{
		Input:   ui.Keyboard{},
		Display: window,
		Canvas:  ui.NewRenderer(atlas),
	}
	if *autopilot {
		host.Input = ai.NewAutopilot(g, window)
	}

	rl.TraceLog(rl.LogInfo, "SNEK: session started, seed %d", *seed)
	game.Run(ctx, g, host, window, logOutcome)
}

func runHeadless(ctx context.Context, rng *rand.Rand, bounds types.Bounds, ticks uint64) {
	display := game.StaticDisplay(bounds)
	g := game.NewGame(bounds, len(assets.Fruits), rng)
	host := game.Host{
		Input:   ai.NewAutopilot(g, display),
		Display: display,
		Canvas:  game.Discard,
	}

	frames := game.Run(ctx, g, host, &game.FrameLimit{Limit: ticks}, logOutcome)

	sm := g.GetStateManager()
	rl.TraceLog(rl.LogInfo, "SNEK: %d frames, %d games, best %d, average %.2f, median %.1f",
		frames, sm.GetGamesPlayed(), sm.GetHighScore(), sm.GetAverageScore(), sm.GetMedianScore())
}

func logOutcome(out game.Outcome) {
	switch {
	case out.Died:
		rl.TraceLog(rl.LogInfo, "SNEK: run %s ended by %s with score %d after %d frames",
			out.Run.ID, out.Cause, out.Run.Score, out.Run.Ticks())
	case out.Spawned:
		rl.TraceLog(rl.LogDebug, "SNEK: score %d, new fruit in play", out.Score)
	}
}

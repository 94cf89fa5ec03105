package game

import (
	"snek/game/entity"
	"snek/game/manager"
	"snek/game/types"

	"golang.org/x/exp/rand"
)

// Phase is where the session is in its life cycle
type Phase int

const (
	Playing Phase = iota
	// DeadPendingRestart waits for a direction key after a death
	DeadPendingRestart
)

func (p Phase) String() string {
	if p == DeadPendingRestart {
		return "dead"
	}
	return "playing"
}

// Outcome describes what a single tick did
type Outcome struct {
	Phase   Phase
	Updated bool // False when the death screen was shown instead
	Ate     bool
	Spawned bool
	Died    bool
	Cause   manager.CollisionKind
	Score   int
	Run     *manager.RunRecord // Set when Died
}

// Game is the whole mutable world of one session
type Game struct {
	Snek  *entity.Snek
	Phase Phase

	frame        uint64
	rng          *rand.Rand
	textures     int
	collisionMgr *manager.CollisionManager
	fruitMgr     *manager.FruitManager
	stateMgr     *manager.StateManager
}

// NewGame spawns the snek at the center of bounds with one fruit in play.
// textures is the number of fruit images the renderer can draw.
func NewGame(bounds types.Bounds, textures int, rng *rand.Rand) *Game {
	collisionMgr := manager.NewCollisionManager()
	return &Game{
		Snek:         entity.NewSnek(bounds.Center()),
		Phase:        Playing,
		rng:          rng,
		textures:     textures,
		collisionMgr: collisionMgr,
		fruitMgr:     manager.NewFruitManager(rng, textures, bounds, collisionMgr),
		stateMgr:     manager.NewStateManager(),
	}
}

func (g *Game) GetFruits() []*entity.Fruit {
	return g.fruitMgr.GetFruitList()
}

func (g *Game) GetStateManager() *manager.StateManager {
	return g.stateMgr
}

// Frame returns how many ticks have run
func (g *Game) Frame() uint64 {
	return g.frame
}

// Tick advances the session by one frame: input, draw, move, eat, die.
func (g *Game) Tick(host Host) Outcome {
	g.frame++
	bounds := host.Display.ScreenSize()

	g.handleInput(host.Input)

	if g.Phase == DeadPendingRestart {
		if g.Snek.Direction == types.None {
			drawDeathScreen(host.Canvas, bounds)
			return Outcome{Phase: g.Phase}
		}
		g.Phase = Playing
	}

	drawWorld(host.Canvas, g)
	return g.update(bounds)
}

// handleInput applies held keys in a fixed order, refusing reversals
func (g *Game) handleInput(in Input) {
	for _, dir := range types.InputOrder {
		if in.IsHeld(dir) {
			g.Snek.Steer(dir)
		}
	}
}

func (g *Game) update(bounds types.Bounds) Outcome {
	out := Outcome{Phase: g.Phase, Updated: true}

	newHead := g.Snek.NextHead(g.Snek.Direction)
	out.Ate = g.fruitMgr.TryCollect(newHead, bounds)
	g.Snek.Advance(newHead, out.Ate)

	if out.Ate {
		g.Snek.Grow(types.GrowthBatch)
		g.Snek.Score++
		out.Spawned = g.fruitMgr.ApplyMilestone(g.Snek.Score, bounds)
	}
	out.Score = g.Snek.Score

	out.Cause = g.collisionMgr.CheckCollision(g.Snek, bounds)
	if out.Cause != manager.NoCollision {
		record := g.stateMgr.EndRun(g.Snek.Score, g.frame, g.fruitMgr.Peak(), out.Cause)
		out.Run = &record
		out.Died = true
		g.reset(bounds)
		out.Phase = g.Phase
	}
	return out
}

// reset brings the snek and fruit set back to their spawn state
func (g *Game) reset(bounds types.Bounds) {
	g.Snek = entity.NewSnek(bounds.Center())
	g.fruitMgr.Reset()
	g.Phase = DeadPendingRestart
}

package ai

import (
	"context"
	"testing"

	"snek/game"
	"snek/game/types"

	"golang.org/x/exp/rand"
)

var screen = types.Bounds{Width: 800, Height: 600}

func setup(seed uint64) (*game.Game, game.Host) {
	display := game.StaticDisplay(screen)
	g := game.NewGame(screen, 3, rand.New(rand.NewSource(seed)))
	host := game.Host{
		Input:   NewAutopilot(g, display),
		Display: display,
		Canvas:  game.Discard,
	}
	return g, host
}

// lay puts the body in a line behind head, facing dir
func lay(g *game.Game, head types.Point, dir types.Direction) {
	back := dir.Opposite().Offset()
	for i := range g.Snek.Body {
		g.Snek.Body[i] = types.Point{X: head.X + back.X*float64(i), Y: head.Y + back.Y*float64(i)}
	}
	g.Snek.Direction = dir
}

func TestAutopilotHeadsForFruit(t *testing.T) {
	g, host := setup(1)
	g.GetFruits()[0].Pos = types.Point{X: 600, Y: 320}

	g.Tick(host)

	if g.Snek.Direction != types.Right {
		t.Fatalf("direction = %s, want right", g.Snek.Direction)
	}
}

func TestAutopilotNeverReverses(t *testing.T) {
	g, host := setup(2)
	lay(g, types.Point{X: 400, Y: 300}, types.Right)
	g.GetFruits()[0].Pos = types.Point{X: 100, Y: 300}

	g.Tick(host)

	if g.Snek.Direction == types.Left {
		t.Fatalf("autopilot reversed into itself")
	}
	if g.Snek.Direction != types.Down && g.Snek.Direction != types.Up {
		t.Fatalf("direction = %s, want a turn", g.Snek.Direction)
	}
}

func TestAutopilotAvoidsWalls(t *testing.T) {
	g, host := setup(3)
	lay(g, types.Point{X: 400, Y: 15}, types.Up)
	g.GetFruits()[0].Pos = types.Point{X: 400, Y: 5}

	g.Tick(host)

	if g.Snek.Direction == types.Up {
		t.Fatalf("autopilot drove into the top wall")
	}
}

func TestAutopilotSurvivesHeadless(t *testing.T) {
	g, host := setup(4)

	var ate, died int
	game.Run(context.Background(), g, host, &game.FrameLimit{Limit: 3000}, func(out game.Outcome) {
		if out.Ate {
			ate++
		}
		if out.Died {
			died++
		}
	})

	if ate == 0 {
		t.Fatalf("autopilot never ate in 3000 frames")
	}
	if g.GetStateManager().GetGamesPlayed() != died {
		t.Fatalf("games played %d, deaths %d", g.GetStateManager().GetGamesPlayed(), died)
	}
}

func TestRankToward(t *testing.T) {
	got := rankToward(types.Point{X: 0, Y: 0}, types.Point{X: -10, Y: 3})
	want := []types.Direction{types.Left, types.Down, types.Up, types.Right}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rank = %v, want %v", got, want)
		}
	}
}

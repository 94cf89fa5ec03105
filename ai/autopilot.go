package ai

import (
	"math"

	"snek/game"
	"snek/game/entity"
	"snek/game/manager"
	"snek/game/types"
)

// Lookahead is how many steps ahead the autopilot checks for walls
const Lookahead = 10

// Autopilot is a game.Input that chases the nearest fruit. It decides
// once per frame and then reports only that direction as held.
type Autopilot struct {
	game         *game.Game
	display      game.Display
	collisionMgr *manager.CollisionManager
	frame        uint64
	choice       types.Direction
}

func NewAutopilot(g *game.Game, display game.Display) *Autopilot {
	return &Autopilot{
		game:         g,
		display:      display,
		collisionMgr: manager.NewCollisionManager(),
	}
}

func (a *Autopilot) IsHeld(dir types.Direction) bool {
	if f := a.game.Frame(); f != a.frame {
		a.frame = f
		a.choice = a.decide()
	}
	return dir != types.None && dir == a.choice
}

// decide ranks the four headings by how much they close the gap to the
// target and returns the first one that is safe.
func (a *Autopilot) decide() types.Direction {
	snek := a.game.Snek
	bounds := a.display.ScreenSize()
	target, ok := a.nearestFruit(snek.Head())

	var ranked []types.Direction
	if ok {
		ranked = rankToward(snek.Head(), target)
	} else {
		ranked = []types.Direction{snek.Direction, types.Up, types.Right, types.Down, types.Left}
	}

	for _, dir := range ranked {
		if dir == types.None || dir == snek.Direction.Opposite() {
			continue
		}
		if a.isSafe(snek, dir, bounds) {
			return dir
		}
	}
	return snek.Direction
}

func (a *Autopilot) nearestFruit(head types.Point) (types.Point, bool) {
	best := math.Inf(1)
	var target types.Point
	found := false
	for _, fruit := range a.game.GetFruits() {
		if d := types.Distance(head, fruit.Pos); d < best {
			best = d
			target = fruit.Pos
			found = true
		}
	}
	return target, found
}

// isSafe probes one step for self collision and Lookahead steps for walls
func (a *Autopilot) isSafe(snek *entity.Snek, dir types.Direction, bounds types.Bounds) bool {
	next := snek.NextHead(dir)
	probe := &entity.Snek{Body: make([]types.Point, 0, snek.Len())}
	probe.Body = append(probe.Body, next)
	probe.Body = append(probe.Body, snek.Body[:snek.Len()-1]...)
	if a.collisionMgr.IsDead(probe, bounds) {
		return false
	}

	ahead := next
	for i := 1; i < Lookahead; i++ {
		ahead = ahead.Add(dir.Offset())
		wall := &entity.Snek{Body: []types.Point{ahead}}
		if a.collisionMgr.CheckCollision(wall, bounds) == manager.WallCollision {
			return false
		}
	}
	return true
}

// rankToward orders headings: larger gap axis first, then the other
// axis, then the remaining two.
func rankToward(from, to types.Point) []types.Direction {
	dx, dy := to.X-from.X, to.Y-from.Y

	horizontal, vertical := types.Right, types.Down
	if dx < 0 {
		horizontal = types.Left
	}
	if dy < 0 {
		vertical = types.Up
	}

	if math.Abs(dx) >= math.Abs(dy) {
		return []types.Direction{horizontal, vertical, vertical.Opposite(), horizontal.Opposite()}
	}
	return []types.Direction{vertical, horizontal, horizontal.Opposite(), vertical.Opposite()}
}

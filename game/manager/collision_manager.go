package manager

import (
	"snek/game/entity"
	"snek/game/types"
)

// CollisionKind represents what the head ran into
type CollisionKind int

const (
	NoCollision CollisionKind = iota
	WallCollision
	SelfCollision
)

func (k CollisionKind) String() string {
	switch k {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// CollisionManager holds the pure eat/die rules. It keeps no state and
// always works on the bounds it is given.
type CollisionManager struct{}

func NewCollisionManager() *CollisionManager {
	return &CollisionManager{}
}

// FindFruit returns the index of the first fruit within pickup range of
// head, or -1. Earlier fruits win when several are in range.
func (cm *CollisionManager) FindFruit(head types.Point, fruits []*entity.Fruit) int {
	for i, fruit := range fruits {
		if types.Distance(head, fruit.Pos) < types.PickupRadius {
			return i
		}
	}
	return -1
}

// CheckCollision classifies the snek's current head
func (cm *CollisionManager) CheckCollision(snek *entity.Snek, bounds types.Bounds) CollisionKind {
	if cm.isWallCollision(snek.Head(), bounds) {
		return WallCollision
	}
	if cm.isSelfCollision(snek) {
		return SelfCollision
	}
	return NoCollision
}

// IsDead reports whether the snek hit an edge or itself
func (cm *CollisionManager) IsDead(snek *entity.Snek, bounds types.Bounds) bool {
	return cm.CheckCollision(snek, bounds) != NoCollision
}

// isWallCollision checks the head against the edge margin
func (cm *CollisionManager) isWallCollision(pos types.Point, bounds types.Bounds) bool {
	return pos.X > bounds.Width-types.EdgeMargin ||
		pos.Y > bounds.Height-types.EdgeMargin ||
		pos.X < types.EdgeMargin ||
		pos.Y < types.EdgeMargin
}

// isSelfCollision skips the neck so turning never kills the snek
func (cm *CollisionManager) isSelfCollision(snek *entity.Snek) bool {
	head := snek.Head()
	for i := types.NeckLength; i < len(snek.Body); i++ {
		if types.Distance(snek.Body[i], head) < types.SelfRadius {
			return true
		}
	}
	return false
}

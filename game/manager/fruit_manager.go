package manager

import (
	"snek/game/entity"
	"snek/game/types"

	"golang.org/x/exp/rand"
)

// FruitManager owns the fruits in play. The first fruit lives for the
// whole session, the rest come from score milestones.
type FruitManager struct {
	rng          *rand.Rand
	textures     int
	fruitList    []*entity.Fruit
	peak         int
	collisionMgr *CollisionManager
}

func NewFruitManager(rng *rand.Rand, textures int, bounds types.Bounds, collisionMgr *CollisionManager) *FruitManager {
	fm := &FruitManager{
		rng:          rng,
		textures:     textures,
		collisionMgr: collisionMgr,
	}
	fm.fruitList = []*entity.Fruit{entity.NewFruit(rng, bounds, textures)}
	fm.peak = 1
	return fm
}

// TryCollect respawns the first fruit in reach of head. At most one fruit
// is eaten per call.
func (fm *FruitManager) TryCollect(head types.Point, bounds types.Bounds) bool {
	i := fm.collisionMgr.FindFruit(head, fm.fruitList)
	if i < 0 {
		return false
	}
	fm.fruitList[i].Respawn(fm.rng, bounds, fm.textures)
	return true
}

// ApplyMilestone adds a fruit when score lands on a milestone and the cap
// has room for it.
func (fm *FruitManager) ApplyMilestone(score int, bounds types.Bounds) bool {
	if len(fm.fruitList) >= types.MaxFruits || score%types.MilestoneEvery != 0 {
		return false
	}

	fm.fruitList = append(fm.fruitList, &entity.Fruit{
		Pos:     entity.RandomPosition(fm.rng, bounds),
		Texture: entity.RandomTexture(fm.rng, fm.textures),
		Size:    fm.fruitList[0].Size,
	})
	if len(fm.fruitList) > fm.peak {
		fm.peak = len(fm.fruitList)
	}
	return true
}

// Reset drops every fruit but the first
func (fm *FruitManager) Reset() {
	for i := 1; i < len(fm.fruitList); i++ {
		fm.fruitList[i] = nil
	}
	fm.fruitList = fm.fruitList[:1]
	fm.peak = 1
}

func (fm *FruitManager) GetFruitList() []*entity.Fruit {
	return fm.fruitList
}

func (fm *FruitManager) Count() int {
	return len(fm.fruitList)
}

// Peak returns the most fruits seen in play since the last reset
func (fm *FruitManager) Peak() int {
	return fm.peak
}

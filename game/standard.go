package game

import "blokus/meta"

// Rules scores a player at the end of the game.
type Rules interface {
	Bonus(p *Player) int
	Score(p *Player) int
}

type StandardRules struct {
	AllPlacedBonus    int
	MonominoLastBonus int
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		AllPlacedBonus:    meta.ALL_PLACED_BONUS,
		MonominoLastBonus: meta.MONOMINO_LAST_BONUS,
	}
}

// Bonus is only awarded once the whole set has been placed; placing the monomino last
// earns the larger bonus instead of the regular one.
func (sr *StandardRules) Bonus(p *Player) int {
	if !p.AllPlaced() {
		return 0
	}
	if last, _ := p.LastPlaced(); last == Monomino {
		return sr.MonominoLastBonus
	}
	return sr.AllPlacedBonus
}

func (sr *StandardRules) Score(p *Player) int {
	return p.PlacedCells() + sr.Bonus(p)
}

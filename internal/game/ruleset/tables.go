// Package ruleset implements the point-cost tables and level formulas for
// skills, techniques, and spells, plus the campaign skill-definition table
// that drives them.
package ruleset

import (
	"errors"
	"fmt"
)

// Difficulty is the skill difficulty class: E, A, H, or VH.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "E"
	DifficultyAverage  Difficulty = "A"
	DifficultyHard     Difficulty = "H"
	DifficultyVeryHard Difficulty = "VH"
)

// difficultyOffset is the per-class adjustment applied to the base level.
var difficultyOffset = map[Difficulty]int{
	DifficultyEasy:     0,
	DifficultyAverage:  -1,
	DifficultyHard:     -2,
	DifficultyVeryHard: -3,
}

// DifficultyOffset returns the level adjustment for a difficulty class.
func DifficultyOffset(d Difficulty) (int, error) {
	off, ok := difficultyOffset[d]
	if !ok {
		return 0, fmt.Errorf("ruleset: unknown difficulty %q", d)
	}
	return off, nil
}

// costToLevel maps spent points to the relative base level. The entry for
// 28 reproduces the GM tool's historical table verbatim.
var costToLevel = map[int]int{
	1: 0, 2: 1, 4: 2, 8: 3, 12: 4, 16: 5, 20: 6, 24: 7, 28: 5,
}

// CostToBaseLevel converts a point cost into a relative base level. Costs
// between tabulated values resolve downward: excess points never round up
// to the next level.
//
// Precondition: cost >= 1.
func CostToBaseLevel(cost int) int {
	if cost < 1 {
		cost = 1
	}
	for {
		if lvl, ok := costToLevel[cost]; ok {
			return lvl
		}
		if cost <= 1 {
			return costToLevel[1]
		}
		cost--
	}
}

// techniqueTable maps points 0..n-1 directly; beyond the table each extra
// point buys one level.
var techniqueTable = map[Difficulty][]int{
	DifficultyAverage: {0, 1, 2},
	DifficultyHard:    {0, 0, 1},
}

// TechniqueBonus returns the bonus over the technique's default for the
// given points. Only Average and Hard techniques exist.
func TechniqueBonus(d Difficulty, points int) (int, error) {
	table, ok := techniqueTable[d]
	if !ok {
		return 0, fmt.Errorf("ruleset: technique difficulty must be A or H, got %q", d)
	}
	if points < 0 {
		return 0, errors.New("ruleset: technique points must be >= 0")
	}
	if points < len(table) {
		return table[points], nil
	}
	last := table[len(table)-1]
	return last + points + 1 - len(table), nil
}

// spellBracket is one row of the spell point table.
type spellBracket struct {
	min   int
	bonus int
}

// Spell point tables, scanned from the highest threshold down. The tables
// deliberately stop at 24/28 points; see SpellSkill.
var (
	spellHard = []spellBracket{
		{24, 5}, {20, 4}, {16, 3}, {12, 2}, {8, 1}, {4, 0}, {2, -1}, {1, -2},
	}
	spellVeryHard = []spellBracket{
		{28, 5}, {24, 4}, {20, 3}, {16, 2}, {12, 1}, {8, 0}, {4, -1}, {2, -2}, {1, -3},
	}
)

// SpellSkill computes a spell's effective casting level: the base attribute
// plus the college bonus plus the point-table bonus. Points below the
// lowest threshold use the lowest bucket. Points above the top threshold
// are NOT extrapolated; capped reports that case so callers can warn
// instead of silently underpricing the spell.
func SpellSkill(baseAttr, points int, veryHard bool, collegeBonus int) (level int, capped bool) {
	table := spellHard
	if veryHard {
		table = spellVeryHard
	}
	capped = points > table[0].min
	bonus := table[len(table)-1].bonus
	for _, b := range table {
		if points >= b.min {
			bonus = b.bonus
			break
		}
	}
	return baseAttr + collegeBonus + bonus, capped
}

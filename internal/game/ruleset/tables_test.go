package ruleset_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/gmkit/gcssync/internal/game/ruleset"
)

// TestCostToBaseLevel_Table round-trips every documented table entry.
func TestCostToBaseLevel_Table(t *testing.T) {
	table := map[int]int{1: 0, 2: 1, 4: 2, 8: 3, 12: 4, 16: 5, 20: 6, 24: 7, 28: 5}
	for cost, want := range table {
		assert.Equal(t, want, ruleset.CostToBaseLevel(cost), "cost %d", cost)
	}
}

// TestCostToBaseLevel_DecrementRule verifies that costs between tabulated
// values resolve to the next lower entry: excess points never round up.
func TestCostToBaseLevel_DecrementRule(t *testing.T) {
	assert.Equal(t, ruleset.CostToBaseLevel(2), ruleset.CostToBaseLevel(3))
	assert.Equal(t, ruleset.CostToBaseLevel(4), ruleset.CostToBaseLevel(7))
	assert.Equal(t, ruleset.CostToBaseLevel(24), ruleset.CostToBaseLevel(27))
}

func TestCostToBaseLevel_FloorsAtOne(t *testing.T) {
	assert.Equal(t, 0, ruleset.CostToBaseLevel(0))
	assert.Equal(t, 0, ruleset.CostToBaseLevel(-3))
}

// TestCostToBaseLevel_Monotonic checks the resolution rule never yields a
// level above the next tabulated entry. The range stops short of the
// 28-point entry, which regresses on purpose.
func TestCostToBaseLevel_Monotonic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		cost := rapid.IntRange(1, 26).Draw(rt, "cost")
		lower := ruleset.CostToBaseLevel(cost)
		higher := ruleset.CostToBaseLevel(cost + 1)
		assert.LessOrEqual(rt, lower, higher)
	})
}

func TestDifficultyOffset(t *testing.T) {
	tests := []struct {
		d    ruleset.Difficulty
		want int
	}{
		{ruleset.DifficultyEasy, 0},
		{ruleset.DifficultyAverage, -1},
		{ruleset.DifficultyHard, -2},
		{ruleset.DifficultyVeryHard, -3},
	}
	for _, tt := range tests {
		got, err := ruleset.DifficultyOffset(tt.d)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ruleset.DifficultyOffset("X")
	assert.Error(t, err)
}

func TestTechniqueBonus(t *testing.T) {
	tests := []struct {
		d      ruleset.Difficulty
		points int
		want   int
	}{
		{ruleset.DifficultyAverage, 0, 0},
		{ruleset.DifficultyAverage, 1, 1},
		{ruleset.DifficultyAverage, 2, 2},
		{ruleset.DifficultyAverage, 3, 3},
		{ruleset.DifficultyHard, 0, 0},
		{ruleset.DifficultyHard, 1, 0},
		{ruleset.DifficultyHard, 2, 1},
		{ruleset.DifficultyHard, 3, 2},
		// The documented worked example.
		{ruleset.DifficultyHard, 4, 3},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%d", tt.d, tt.points), func(t *testing.T) {
			got, err := ruleset.TechniqueBonus(tt.d, tt.points)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTechniqueBonus_RejectsOtherDifficulties(t *testing.T) {
	_, err := ruleset.TechniqueBonus(ruleset.DifficultyEasy, 1)
	assert.Error(t, err)
	_, err = ruleset.TechniqueBonus(ruleset.DifficultyHard, -1)
	assert.Error(t, err)
}

func TestSpellSkill_HardTable(t *testing.T) {
	tests := []struct {
		points int
		want   int
	}{
		{24, 15}, {20, 14}, {16, 13}, {12, 12}, {8, 11}, {4, 10}, {2, 9}, {1, 8},
		// Between thresholds resolves downward.
		{6, 10},
		// Below the lowest threshold uses the lowest bucket.
		{0, 8},
	}
	for _, tt := range tests {
		level, capped := ruleset.SpellSkill(10, tt.points, false, 0)
		assert.Equal(t, tt.want, level, "points %d", tt.points)
		assert.False(t, capped, "points %d", tt.points)
	}
}

func TestSpellSkill_VeryHardTable(t *testing.T) {
	level, capped := ruleset.SpellSkill(12, 28, true, 0)
	assert.Equal(t, 17, level)
	assert.False(t, capped)

	level, capped = ruleset.SpellSkill(12, 1, true, 0)
	assert.Equal(t, 9, level)
	assert.False(t, capped)
}

func TestSpellSkill_CollegeBonus(t *testing.T) {
	level, _ := ruleset.SpellSkill(10, 4, false, 2)
	assert.Equal(t, 12, level)
}

// TestSpellSkill_AboveTableIsCapped verifies the preserved limitation:
// points beyond the top threshold keep the top bonus and are flagged.
func TestSpellSkill_AboveTableIsCapped(t *testing.T) {
	level, capped := ruleset.SpellSkill(10, 32, false, 0)
	assert.Equal(t, 15, level, "bonus stays at the 24-point bracket")
	assert.True(t, capped)

	level, capped = ruleset.SpellSkill(10, 32, true, 0)
	assert.Equal(t, 15, level)
	assert.True(t, capped)
}

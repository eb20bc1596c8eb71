package ruleset

func penalty(p int) *int { return &p }

// DefaultSkills is the built-in campaign skill table. Campaign YAML files
// loaded after it shadow entries by name.
func DefaultSkills() []*SkillDef {
	return []*SkillDef{
		{Name: "Brawling", Difficulty: DifficultyEasy, Attribute: "dx", Default: penalty(0)},
		{Name: "Knife", Difficulty: DifficultyEasy, Attribute: "dx", Default: penalty(-4)},
		{Name: "Guns", Difficulty: DifficultyEasy, Attribute: "dx", Default: penalty(-4)},
		{Name: "Thrown Weapon", Difficulty: DifficultyEasy, Attribute: "dx", Default: penalty(-4)},
		{Name: "First Aid", Difficulty: DifficultyEasy, Attribute: "iq", Default: penalty(-4),
			EquipmentBonuses: map[string]int{"first aid kit": 1}},
		{Name: "Fast-Draw", Difficulty: DifficultyEasy, Attribute: "dx",
			AdvantageBonuses: map[string]int{"Combat Reflexes": 1}},

		{Name: "Axe/Mace", Difficulty: DifficultyAverage, Attribute: "dx"},
		{Name: "Broadsword", Difficulty: DifficultyAverage, Attribute: "dx", Default: penalty(-5)},
		{Name: "Shortsword", Difficulty: DifficultyAverage, Attribute: "dx", Default: penalty(-5)},
		{Name: "Spear", Difficulty: DifficultyAverage, Attribute: "dx", Default: penalty(-5)},
		{Name: "Staff", Difficulty: DifficultyAverage, Attribute: "dx", Default: penalty(-5)},
		{Name: "Bow", Difficulty: DifficultyAverage, Attribute: "dx", Default: penalty(-5)},
		{Name: "Stealth", Difficulty: DifficultyAverage, Attribute: "dx", Default: penalty(-5)},
		{Name: "Climbing", Difficulty: DifficultyAverage, Attribute: "dx", Default: penalty(-5),
			AdvantageBonuses: map[string]int{"Flexibility": 3}},
		{Name: "Riding", Difficulty: DifficultyAverage, Attribute: "dx", Default: penalty(-5)},
		{Name: "Lockpicking", Difficulty: DifficultyAverage, Attribute: "iq", Default: penalty(-5),
			EquipmentBonuses: map[string]int{"lockpicks": 1}},
		{Name: "Merchant", Difficulty: DifficultyAverage, Attribute: "iq", Default: penalty(-5)},
		{Name: "Streetwise", Difficulty: DifficultyAverage, Attribute: "iq", Default: penalty(-5)},
		{Name: "Observation", Difficulty: DifficultyAverage, Attribute: "per", Default: penalty(-5)},
		{Name: "Search", Difficulty: DifficultyAverage, Attribute: "per", Default: penalty(-5)},

		{Name: "Karate", Difficulty: DifficultyHard, Attribute: "dx"},
		{Name: "Judo", Difficulty: DifficultyHard, Attribute: "dx"},
		{Name: "Surgery", Difficulty: DifficultyVeryHard, Attribute: "iq"},
	}
}

package inventory

// Template constructors return empty items with the GM tool's defaults
// filled in. The extractor only backfills fields it did not parse, so a
// template value never overwrites sheet data.

// NewItem returns a plain misc item with count 1.
func NewItem(name string) *Item {
	return &Item{
		Name:  name,
		Count: 1,
		Kinds: []Kind{KindMisc},
	}
}

// NewContainer returns an empty container with a non-nil child list.
func NewContainer(name string) *Item {
	return &Item{
		Name:     name,
		Count:    1,
		Kinds:    []Kind{KindContainer},
		Children: []*Item{},
	}
}

// NewArmor returns an armor item with zero DR.
func NewArmor(name string) *Item {
	it := NewItem(name)
	it.AddKind(KindArmor)
	it.Armor = &Armor{}
	return it
}

// NewMeleeWeapon returns a melee weapon with no damage record and the
// unattributed-skill sentinel.
func NewMeleeWeapon(name string) *Item {
	it := NewItem(name)
	it.AddKind(KindMelee)
	it.Weapon = &Weapon{Skill: UnknownSkill}
	return it
}

// NewRangedWeapon returns a ranged weapon with no damage record and the
// unattributed-skill sentinel.
func NewRangedWeapon(name string) *Item {
	it := NewItem(name)
	it.AddKind(KindRanged)
	it.Weapon = &Weapon{Skill: UnknownSkill}
	return it
}

// UnknownSkill marks a weapon whose governing skill could not be
// attributed from the sheet's default list.
const UnknownSkill = "unknown skill"

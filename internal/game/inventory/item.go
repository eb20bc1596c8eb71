// Package inventory defines the equipment item model shared by the GCS
// extractor and the reconciliation engine: tagged item categories, weapon
// and armor sub-records, and the recursive structural-equivalence predicate.
package inventory

import (
	"fmt"
	"sort"
)

// Kind tags an item with a category. An item carries a set of kinds; at
// most one of KindMelee/KindRanged applies, by construction.
type Kind string

const (
	KindMisc      Kind = "misc"
	KindArmor     Kind = "armor"
	KindMelee     Kind = "melee weapon"
	KindRanged    Kind = "ranged weapon"
	KindContainer Kind = "container"
)

// Damage is a weapon damage record: attribute-based when Stat is "sw" or
// "thr", dice-based when Stat is empty.
type Damage struct {
	Stat string `json:"stat,omitempty"`
	Dice int    `json:"dice,omitempty"`
	Plus int    `json:"plus"`
	Type string `json:"type"`
}

// String renders the damage in the sheet's own notation.
func (d Damage) String() string {
	if d.Stat != "" {
		if d.Plus != 0 {
			return fmt.Sprintf("%s%+d %s", d.Stat, d.Plus, d.Type)
		}
		return fmt.Sprintf("%s %s", d.Stat, d.Type)
	}
	if d.Plus != 0 {
		return fmt.Sprintf("%dd%+d %s", d.Dice, d.Plus, d.Type)
	}
	return fmt.Sprintf("%dd %s", d.Dice, d.Type)
}

// Ammo describes the loaded state of a ranged weapon.
type Ammo struct {
	Name      string `json:"name"`
	Shots     int    `json:"shots"`
	ShotsLeft int    `json:"shots_left"`
}

// Weapon holds the weapon-specific fields of a melee or ranged item. Parry
// applies to melee weapons; Bulk, Acc, Reload, and Ammo to ranged ones.
type Weapon struct {
	Skill  string  `json:"skill"`
	Damage *Damage `json:"damage,omitempty"`
	Parry  int     `json:"parry,omitempty"`
	Bulk   int     `json:"bulk,omitempty"`
	Acc    int     `json:"acc,omitempty"`
	Reload int     `json:"reload,omitempty"`
	Ammo   *Ammo   `json:"ammo,omitempty"`
}

// Armor holds the armor-specific fields of an item.
type Armor struct {
	DR int `json:"dr"`
}

// Item is one equipment entry. Invariant: Children is non-nil exactly when
// the item carries KindContainer, and nil otherwise.
type Item struct {
	Name     string  `json:"name"`
	Count    int     `json:"count"`
	Kinds    []Kind  `json:"kinds"`
	Weapon   *Weapon `json:"weapon,omitempty"`
	Armor    *Armor  `json:"armor,omitempty"`
	Children []*Item `json:"children,omitempty"`
}

// HasKind reports whether the item carries the given category tag.
func (it *Item) HasKind(k Kind) bool {
	for _, have := range it.Kinds {
		if have == k {
			return true
		}
	}
	return false
}

// AddKind adds a category tag, keeping the kind set sorted and free of
// duplicates.
func (it *Item) AddKind(k Kind) {
	if it.HasKind(k) {
		return
	}
	it.Kinds = append(it.Kinds, k)
	sort.Slice(it.Kinds, func(i, j int) bool { return it.Kinds[i] < it.Kinds[j] })
}

// Normalize restores the container invariant after JSON decoding: container
// items get an empty child list when the field was absent, and every child
// is normalized recursively.
func (it *Item) Normalize() {
	if it.Count < 1 {
		it.Count = 1
	}
	if it.HasKind(KindContainer) && it.Children == nil {
		it.Children = []*Item{}
	}
	for _, child := range it.Children {
		child.Normalize()
	}
}

package inventory

import "strings"

// Equivalent reports whether two items are the same piece of equipment for
// reconciliation purposes. Names compare case-insensitively and kind sets
// must match exactly; count, notes, and ownership never participate.
// Weapons additionally compare their attributed skill plus parry (melee)
// or bulk, accuracy, and reload (ranged); armor compares DR. Containers
// require multiset equivalence of their children, order-insensitive, using
// the same predicate recursively.
//
// Postcondition: Equivalent(a, b) == Equivalent(b, a).
func Equivalent(a, b *Item) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !strings.EqualFold(a.Name, b.Name) {
		return false
	}
	if !kindsEqual(a.Kinds, b.Kinds) {
		return false
	}
	if a.HasKind(KindMelee) && !meleeEqual(a.Weapon, b.Weapon) {
		return false
	}
	if a.HasKind(KindRanged) && !rangedEqual(a.Weapon, b.Weapon) {
		return false
	}
	if a.HasKind(KindArmor) && !armorEqual(a.Armor, b.Armor) {
		return false
	}
	if a.HasKind(KindContainer) && !childrenEquivalent(a.Children, b.Children) {
		return false
	}
	return true
}

// kindsEqual compares two kind sets. AddKind keeps them sorted, but sets
// decoded from JSON may not be, so compare as sets.
func kindsEqual(a, b []Kind) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[Kind]int, len(a))
	for _, k := range a {
		seen[k]++
	}
	for _, k := range b {
		seen[k]--
		if seen[k] < 0 {
			return false
		}
	}
	return true
}

func meleeEqual(a, b *Weapon) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Parry == b.Parry && a.Skill == b.Skill
}

func rangedEqual(a, b *Weapon) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Bulk == b.Bulk && a.Acc == b.Acc && a.Reload == b.Reload && a.Skill == b.Skill
}

func armorEqual(a, b *Armor) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.DR == b.DR
}

// childrenEquivalent checks multiset equivalence by repeated find-and-remove:
// every child of a must pair with exactly one unmatched equivalent child of
// b, and nothing may remain unpaired.
func childrenEquivalent(a, b []*Item) bool {
	if len(a) != len(b) {
		return false
	}
	remaining := make([]*Item, len(b))
	copy(remaining, b)
	for _, child := range a {
		found := -1
		for i, candidate := range remaining {
			if Equivalent(child, candidate) {
				found = i
				break
			}
		}
		if found < 0 {
			return false
		}
		remaining = append(remaining[:found], remaining[found+1:]...)
	}
	return true
}

package reconcile

import (
	"strings"

	"github.com/gmkit/gcssync/internal/game/inventory"
)

// mergeEquipment reconciles the equipment lists. Both sides are squashed
// to a flat list first so that container restructuring in the builder
// does not register as churn. Items with no equivalent but a matching
// name go through human arbitration; a confirmed match replaces the old
// item with the new one as-is. Counts are not reconciled on replacement.
func (e *Engine) mergeEquipment(old, fresh []*inventory.Item) []*inventory.Item {
	remaining := squash(old)
	incoming := squash(fresh)

	result := make([]*inventory.Item, 0, len(remaining)+len(incoming))
	for _, item := range incoming {
		if i := findEquivalent(remaining, item); i >= 0 {
			result = append(result, remaining[i])
			remaining = remove(remaining, i)
			continue
		}
		if i := findByName(remaining, item.Name); i >= 0 {
			if e.ui.ShowComparison(item.Name+" has changed; is it the same item?",
				"existing", remaining[i], "from GCS file", item) {
				result = append(result, item)
				remaining = remove(remaining, i)
				e.rep.Change("%s equipment replaced after manual confirmation", item.Name)
				continue
			}
		}
		if e.genericGear[foldName(item.Name)] {
			continue
		}
		result = append(result, item)
		e.rep.Change("%s added to equipment", item.Name)
	}
	for _, item := range remaining {
		e.rep.Warnf("%s equipment not in GCS file -- unchanged, orphaned", item.Name)
		result = append(result, item)
	}
	return result
}

// squash flattens all nested containers into a single list. Container
// items stay in the list with their children emptied; the source items
// are not mutated.
func squash(items []*inventory.Item) []*inventory.Item {
	var flat []*inventory.Item
	for _, item := range items {
		if item.HasKind(inventory.KindContainer) {
			shell := *item
			shell.Children = []*inventory.Item{}
			flat = append(flat, &shell)
			flat = append(flat, squash(item.Children)...)
			continue
		}
		flat = append(flat, item)
	}
	return flat
}

func findEquivalent(items []*inventory.Item, target *inventory.Item) int {
	for i, item := range items {
		if inventory.Equivalent(item, target) {
			return i
		}
	}
	return -1
}

func findByName(items []*inventory.Item, name string) int {
	for i, item := range items {
		if strings.EqualFold(item.Name, name) {
			return i
		}
	}
	return -1
}

func foldName(name string) string {
	return strings.ToLower(name)
}

func remove(items []*inventory.Item, i int) []*inventory.Item {
	return append(items[:i], items[i+1:]...)
}

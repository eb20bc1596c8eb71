// Package reconcile merges a freshly extracted character against the
// persisted record, classifying every entry as added, changed, unchanged,
// or orphaned, and describing each applied change in order. Equipment gets
// an extra name-only pass with human arbitration for ambiguous drift.
package reconcile

import (
	"fmt"
	"sort"

	"github.com/gmkit/gcssync/internal/game/character"
	"github.com/gmkit/gcssync/internal/report"
	"github.com/gmkit/gcssync/internal/ui"
)

// Mode selects the merge behaviour.
type Mode int

const (
	// ModeImport overwrites the record wholesale with the extracted data,
	// preserving equipment nesting as extracted.
	ModeImport Mode = iota
	// ModeUpdate diffs category by category, squashing equipment
	// containers on both sides first.
	ModeUpdate
)

// NoChanges is the sentinel change list entry for an up-to-date character.
const NoChanges = "Character up to date -- no changes"

// reducedNote flags decreasing values: a skill dropping in builder output
// usually means an upstream build error.
const reducedNote = " -- NOTE: value reduced"

// Engine reconciles one record pair per operation.
type Engine struct {
	ui          ui.UI
	rep         *report.Reporter
	genericGear map[string]bool
}

// New constructs an Engine. genericGear lists item names whose appearance
// in a sheet is suppressed as add-noise, matched case-insensitively.
//
// Precondition: u and rep must be non-nil.
func New(u ui.UI, rep *report.Reporter, genericGear []string) *Engine {
	gear := make(map[string]bool, len(genericGear))
	for _, name := range genericGear {
		gear[foldName(name)] = true
	}
	return &Engine{ui: u, rep: rep, genericGear: gear}
}

// Apply merges fresh into rec according to the mode and returns the
// ordered change list. No mutation happens without a corresponding
// description; an unchanged character yields exactly [NoChanges].
func (e *Engine) Apply(rec, fresh *character.Record, mode Mode) []string {
	if mode == ModeImport {
		e.applyImport(rec, fresh)
	} else {
		e.applyUpdate(rec, fresh)
	}

	changes := e.rep.Changes()
	if len(changes) == 0 {
		return []string{NoChanges}
	}
	return changes
}

func (e *Engine) applyImport(rec, fresh *character.Record) {
	rec.Player = fresh.Player
	rec.Name = fresh.Name
	rec.Permanent = fresh.Permanent
	rec.Current = fresh.Current
	rec.Advantages = fresh.Advantages
	rec.Skills = fresh.Skills
	rec.Techniques = fresh.Techniques
	rec.Spells = fresh.Spells
	rec.Stuff = fresh.Stuff
	rec.GCSFile = fresh.GCSFile
	e.rep.Change("Imported %s from %s", rec.Name, rec.GCSFile)
}

func (e *Engine) applyUpdate(rec, fresh *character.Record) {
	e.mergeMap("advantage", rec.Advantages, fresh.Advantages)
	e.mergeMap("skill", rec.Skills, fresh.Skills)
	rec.Techniques = e.mergeTechniques(rec.Techniques, fresh.Techniques)
	rec.Spells = e.mergeSpells(rec.Spells, fresh.Spells)
	rec.Stuff = e.mergeEquipment(rec.Stuff, fresh.Stuff)
	rec.GCSFile = fresh.GCSFile
}

// mergeMap reconciles a flat name→value category in deterministic name
// order.
func (e *Engine) mergeMap(category string, old, fresh map[string]int) {
	for _, name := range sortedKeys(fresh) {
		newVal := fresh[name]
		oldVal, ok := old[name]
		switch {
		case !ok:
			old[name] = newVal
			e.rep.Change("%s %s added at %d", name, category, newVal)
		case oldVal != newVal:
			old[name] = newVal
			msg := fmt.Sprintf("%s %s changed from %d to %d", name, category, oldVal, newVal)
			if newVal < oldVal {
				msg += reducedNote
			}
			e.rep.Change("%s", msg)
		}
	}
	for _, name := range sortedKeys(old) {
		if _, ok := fresh[name]; !ok {
			e.rep.Warnf("%s %s not in GCS file -- unchanged, orphaned", name, category)
		}
	}
}

// mergeTechniques reconciles the technique list, keyed by name plus the
// default-skill list.
func (e *Engine) mergeTechniques(old, fresh []character.Technique) []character.Technique {
	oldIdx := make(map[string]int, len(old))
	for i, t := range old {
		oldIdx[techniqueKey(t)] = i
	}
	result := make([]character.Technique, len(old))
	copy(result, old)

	seen := make(map[string]bool, len(fresh))
	for _, t := range fresh {
		key := techniqueKey(t)
		seen[key] = true
		i, ok := oldIdx[key]
		switch {
		case !ok:
			result = append(result, t)
			e.rep.Change("%s technique added at %d", t.Name, t.Value)
		case result[i].Value != t.Value:
			msg := fmt.Sprintf("%s technique changed from %d to %d", t.Name, result[i].Value, t.Value)
			if t.Value < result[i].Value {
				msg += reducedNote
			}
			result[i] = t
			e.rep.Change("%s", msg)
		}
	}
	for _, t := range old {
		if !seen[techniqueKey(t)] {
			e.rep.Warnf("%s technique not in GCS file -- unchanged, orphaned", t.Name)
		}
	}
	return result
}

func techniqueKey(t character.Technique) string {
	key := t.Name
	for _, d := range t.Defaults {
		key += "|" + d
	}
	return key
}

// mergeSpells reconciles the spell list, keyed by name.
func (e *Engine) mergeSpells(old, fresh []character.Spell) []character.Spell {
	oldIdx := make(map[string]int, len(old))
	for i, s := range old {
		oldIdx[s.Name] = i
	}
	result := make([]character.Spell, len(old))
	copy(result, old)

	seen := make(map[string]bool, len(fresh))
	for _, s := range fresh {
		seen[s.Name] = true
		i, ok := oldIdx[s.Name]
		switch {
		case !ok:
			result = append(result, s)
			e.rep.Change("%s spell added at %d", s.Name, s.Skill)
		case result[i].Skill != s.Skill:
			msg := fmt.Sprintf("%s spell changed from %d to %d", s.Name, result[i].Skill, s.Skill)
			if s.Skill < result[i].Skill {
				msg += reducedNote
			}
			result[i] = s
			e.rep.Change("%s", msg)
		}
	}
	for _, s := range old {
		if !seen[s.Name] {
			e.rep.Warnf("%s spell not in GCS file -- unchanged, orphaned", s.Name)
		}
	}
	return result
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

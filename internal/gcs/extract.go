package gcs

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gmkit/gcssync/internal/game/character"
	"github.com/gmkit/gcssync/internal/game/inventory"
	"github.com/gmkit/gcssync/internal/game/ruleset"
	"github.com/gmkit/gcssync/internal/gcs/grammar"
	"github.com/gmkit/gcssync/internal/report"
)

// Extractor builds a character.Record from a parsed Sheet. Recoverable
// parse and rules errors go to the Reporter; extraction always completes.
type Extractor struct {
	calc *ruleset.Calculator
	rep  *report.Reporter
}

// NewExtractor constructs an Extractor.
//
// Precondition: calc and rep must be non-nil.
func NewExtractor(calc *ruleset.Calculator, rep *report.Reporter) *Extractor {
	return &Extractor{calc: calc, rep: rep}
}

// Extract walks the sheet once per category and assembles a fresh record.
// The record's Current attributes mirror Permanent, as a newly imported
// character is at full strength.
func (e *Extractor) Extract(sheet *Sheet, gcsFile string) *character.Record {
	rec := character.New()
	rec.Player = sheet.Profile.PlayerName
	rec.Name = sheet.Profile.Name
	rec.GCSFile = gcsFile

	advantages, colleges, adj := e.extractAdvantages(&sheet.Advantages)
	rec.Advantages = advantages
	rec.Permanent = character.Derive(sheet.ST, sheet.DX, sheet.IQ, sheet.HT, sheet.HP, sheet.FP, adj)
	rec.Current = rec.Permanent.Clone()
	rec.Stuff = e.extractEquipment(&sheet.Equipment)
	rec.Skills = e.extractSkills(sheet.Skills.Skills, rec)
	rec.Techniques = e.extractTechniques(sheet.Skills.Techniques)
	rec.Spells = e.extractSpells(sheet.Spells.Spells, rec.Permanent, colleges)
	return rec
}

// extractAdvantages flattens the advantage tree into a name→cost mapping,
// slicing spell-bonus modifiers into the college→bonus side mapping and
// attribute advantages into derived-attribute adjustments. Containers
// contribute only their leaves.
func (e *Extractor) extractAdvantages(list *AdvantageList) (map[string]int, map[string]int, character.Adjustments) {
	costs := map[string]int{}
	colleges := map[string]int{}
	var adj character.Adjustments

	var walk func(advs []AdvantageNode, containers []AdvantageContainer)
	walk = func(advs []AdvantageNode, containers []AdvantageContainer) {
		for _, a := range advs {
			cost := a.BasePoints + a.Levels*a.PointsPerLevel
			for _, m := range a.Modifiers {
				if strings.EqualFold(m.Enabled, "no") {
					continue
				}
				if m.SpellBonus != nil {
					colleges[m.SpellBonus.CollegeName] += m.SpellBonus.Amount
					continue
				}
				cost += atoiLenient(m.Cost)
			}
			costs[a.Name] += cost
			applyAttributeAdvantage(&adj, &a)
		}
		for _, c := range containers {
			walk(c.Advantages, c.Containers)
		}
	}
	walk(list.Advantages, list.Containers)
	return costs, colleges, adj
}

// applyAttributeAdvantage folds attribute-shaped advantages into derived
// attribute adjustments. GCS sells Basic Speed in quarter levels.
func applyAttributeAdvantage(adj *character.Adjustments, a *AdvantageNode) {
	levels := float64(a.Levels)
	switch strings.ToLower(a.Name) {
	case "will":
		adj.Will += levels
	case "perception", "per":
		adj.Per += levels
	case "basic speed":
		adj.BasicSpeed += 0.25 * levels
	case "basic move":
		adj.BasicMove += levels
	case "hit points", "extra hit points":
		adj.HP += levels
	case "fatigue points", "extra fatigue points":
		adj.FP += levels
	}
}

func (e *Extractor) extractEquipment(list *EquipmentList) []*inventory.Item {
	return e.walkEquipment(list.Items, list.Containers)
}

// walkEquipment builds one nesting level. An item equivalent to a sibling
// already collected at this level merges by count instead of appending.
func (e *Extractor) walkEquipment(nodes []EquipmentNode, containers []EquipmentContainer) []*inventory.Item {
	out := []*inventory.Item{}
	for i := range nodes {
		out = appendMerged(out, e.buildItem(&nodes[i]))
	}
	for i := range containers {
		c := &containers[i]
		item := inventory.NewContainer(c.Name)
		if c.Quantity > 1 {
			item.Count = c.Quantity
		}
		item.Children = e.walkEquipment(c.Items, c.Containers)
		out = appendMerged(out, item)
	}
	return out
}

func appendMerged(items []*inventory.Item, item *inventory.Item) []*inventory.Item {
	for _, have := range items {
		if inventory.Equivalent(have, item) {
			have.Count += item.Count
			return items
		}
	}
	return append(items, item)
}

// buildItem classifies one leaf node. Melee wins over ranged when a node
// somehow carries both; armor is an independent tag on top of either.
func (e *Extractor) buildItem(n *EquipmentNode) *inventory.Item {
	var it *inventory.Item
	switch {
	case len(n.Melee) > 0:
		it = inventory.NewMeleeWeapon(n.Name)
		e.fillMelee(it, &n.Melee[0])
	case len(n.Ranged) > 0:
		it = inventory.NewRangedWeapon(n.Name)
		e.fillRanged(it, &n.Ranged[0])
	default:
		it = inventory.NewItem(n.Name)
	}
	if n.DRBonus != nil {
		it.AddKind(inventory.KindArmor)
		it.Armor = &inventory.Armor{DR: *n.DRBonus}
	}
	if n.Quantity > 1 {
		it.Count = n.Quantity
	}
	return it
}

func (e *Extractor) fillMelee(it *inventory.Item, w *WeaponNode) {
	it.Weapon.Damage = e.parseDamage(&w.Damage, it.Name)
	it.Weapon.Parry = atoiLenient(w.Parry)
	it.Weapon.Skill = e.attributeSkill(w.Defaults, it.Name)
}

func (e *Extractor) fillRanged(it *inventory.Item, w *WeaponNode) {
	it.Weapon.Damage = e.parseDamage(&w.Damage, it.Name)
	it.Weapon.Bulk = atoiLenient(w.Bulk)
	it.Weapon.Acc = grammar.ParseAccuracy(w.Accuracy)
	if strings.TrimSpace(w.Shots) != "" {
		shots, err := grammar.ParseShots(w.Shots)
		if err != nil {
			e.rep.Problem(fmt.Errorf("item %q: %w", it.Name, err))
		} else {
			it.Weapon.Reload = shots.Reload
			it.Weapon.Ammo = &inventory.Ammo{
				Name:      it.Name,
				Shots:     shots.Shots,
				ShotsLeft: shots.ShotsLeft,
			}
		}
	}
	it.Weapon.Skill = e.attributeSkill(w.Defaults, it.Name)
}

// parseDamage resolves the damage encoding in a fixed probe order: the
// explicit st attribute wins, then the base attribute, then free text.
// Unparseable text is reported and replaced by the placeholder damage
// record rather than failing the item.
func (e *Extractor) parseDamage(d *DamageNode, itemName string) *inventory.Damage {
	switch {
	case d.ST != "":
		dmg := &inventory.Damage{Stat: d.ST, Plus: atoiLenient(d.Base), Type: d.Type}
		if dmg.Type == "" {
			dmg.Type = grammar.DefaultDamageType
		}
		return dmg

	case d.Base != "":
		parsed, err := grammar.ParseDiceDamage(d.Base)
		if err != nil {
			e.rep.Problem(fmt.Errorf("item %q: %w", itemName, err))
			return &inventory.Damage{Type: grammar.DefaultDamageType}
		}
		dmg := &inventory.Damage{Dice: parsed.Dice, Plus: parsed.Plus, Type: parsed.Type}
		if d.Type != "" {
			dmg.Type = d.Type
		}
		return dmg

	case strings.TrimSpace(d.Text) != "":
		if sd, err := grammar.ParseStrengthDamage(d.Text); err == nil {
			return &inventory.Damage{Stat: sd.Stat, Plus: sd.Plus, Type: sd.Type}
		}
		dd, err := grammar.ParseDiceDamage(d.Text)
		if err != nil {
			e.rep.Problem(fmt.Errorf("item %q: %w", itemName, err))
			return &inventory.Damage{Type: grammar.DefaultDamageType}
		}
		return &inventory.Damage{Dice: dd.Dice, Plus: dd.Plus, Type: dd.Type}

	default:
		return nil
	}
}

// attributeSkill picks the weapon's governing skill: the first Skill-type
// default with a modifier of exactly 0 is the trained skill rather than an
// attribute fallback.
func (e *Extractor) attributeSkill(defaults []DefaultNode, itemName string) string {
	for _, d := range defaults {
		if d.Type == "Skill" && d.Modifier == 0 {
			return compoundKey(d.Name, []string{d.Specialization})
		}
	}
	e.rep.Warnf("weapon %q has no zero-modifier skill default; marking skill unknown", itemName)
	return inventory.UnknownSkill
}

func (e *Extractor) extractSkills(nodes []SkillNode, rec *character.Record) map[string]int {
	skills := make(map[string]int, len(nodes))
	for _, n := range nodes {
		key := compoundKey(n.Name, n.Specializations)
		level, err := e.calc.SkillLevel(key, n.Points, rec.Permanent, rec.Stuff, rec.Advantages)
		if err != nil {
			e.rep.Problem(err)
		}
		skills[key] = level
	}
	return skills
}

func (e *Extractor) extractTechniques(nodes []TechniqueNode) []character.Technique {
	var out []character.Technique
	for _, n := range nodes {
		bonus, err := ruleset.TechniqueBonus(techniqueDifficulty(n.Difficulty), n.Points)
		if err != nil {
			e.rep.Problem(fmt.Errorf("technique %q: %w", n.Name, err))
		}
		value := bonus
		var defaults []string
		for _, d := range n.Defaults {
			defaults = append(defaults, compoundKey(d.Name, []string{d.Specialization}))
			value += d.Modifier
		}
		out = append(out, character.Technique{Name: n.Name, Defaults: defaults, Value: value})
	}
	return out
}

// techniqueDifficulty normalizes the builder's technique difficulty text,
// which exports as either a bare class ("H") or a base-prefixed form such
// as "Knife/H".
func techniqueDifficulty(raw string) ruleset.Difficulty {
	if i := strings.LastIndex(raw, "/"); i >= 0 {
		raw = raw[i+1:]
	}
	return ruleset.Difficulty(strings.ToUpper(strings.TrimSpace(raw)))
}

func (e *Extractor) extractSpells(nodes []SpellNode, attrs character.AttributeSet, colleges map[string]int) []character.Spell {
	var out []character.Spell
	iq, ok := attrs.Int(character.AttrIQ)
	if !ok && len(nodes) > 0 {
		e.rep.Problem(fmt.Errorf("%w: spells need %q", ruleset.ErrMissingAttribute, character.AttrIQ))
	}
	for _, n := range nodes {
		veryHard := strings.EqualFold(n.VeryHard, "yes")
		level, capped := ruleset.SpellSkill(iq, n.Points, veryHard, colleges[n.College])
		if capped {
			e.rep.Warnf("spell %q: %d points is beyond the spell point table; bonus not extrapolated", n.Name, n.Points)
		}
		out = append(out, character.Spell{Name: n.Name, Skill: level})
	}
	return out
}

// compoundKey builds the unique skill identifier: the base name, suffixed
// with a parenthesized specialization list when any is present.
func compoundKey(base string, specializations []string) string {
	var specs []string
	for _, s := range specializations {
		if s = strings.TrimSpace(s); s != "" {
			specs = append(specs, s)
		}
	}
	if len(specs) == 0 {
		return base
	}
	return fmt.Sprintf("%s (%s)", base, strings.Join(specs, ","))
}

var leadingIntRe = regexp.MustCompile(`^[+-]?\d+`)

// atoiLenient reads the leading signed integer of raw export text such as
// "9U" or "-2*", returning 0 when none is present.
func atoiLenient(s string) int {
	m := leadingIntRe.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

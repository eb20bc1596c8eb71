package ruleset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gmkit/gcssync/internal/game/character"
	"github.com/gmkit/gcssync/internal/game/inventory"
)

// Error taxonomy for skill-level computation. All are recoverable: callers
// log the error, substitute level 0, and continue.
var (
	ErrUnknownSkill     = errors.New("ruleset: unknown skill")
	ErrMissingAttribute = errors.New("ruleset: missing governing attribute")
	ErrMissingDefault   = errors.New("ruleset: skill has no default")
)

// SkillDef describes one campaign skill: difficulty class, governing
// attribute, optional inherent default, and situational bonuses granted by
// carried equipment or advantages.
type SkillDef struct {
	Name       string     `yaml:"name"`
	Difficulty Difficulty `yaml:"difficulty"`
	Attribute  string     `yaml:"attribute"`
	// Default is the penalty relative to the governing attribute when the
	// skill is unlearned (e.g. -4 for DX-4). Nil means no default exists.
	Default *int `yaml:"default"`
	// EquipmentBonuses maps a case-insensitive substring of an item name to
	// the bonus granted while any matching item is carried.
	EquipmentBonuses map[string]int `yaml:"equipment_bonuses"`
	// AdvantageBonuses maps an advantage name to the bonus granted while
	// the character has it.
	AdvantageBonuses map[string]int `yaml:"advantage_bonuses"`
}

// Validate reports an error if the definition is malformed.
func (s *SkillDef) Validate() error {
	var errs []string
	if s.Name == "" {
		errs = append(errs, "name must not be empty")
	}
	if _, ok := difficultyOffset[s.Difficulty]; !ok {
		errs = append(errs, fmt.Sprintf("difficulty %q is not one of E, A, H, VH", s.Difficulty))
	}
	if s.Attribute == "" {
		errs = append(errs, "attribute must not be empty")
	}
	if len(errs) > 0 {
		return fmt.Errorf("skill definition %q invalid: %s", s.Name, strings.Join(errs, "; "))
	}
	return nil
}

// Calculator resolves skill names against the campaign table and computes
// effective levels.
type Calculator struct {
	skills map[string]*SkillDef // keyed by lowercased name
}

// NewCalculator builds a Calculator from the given definitions. Later
// definitions with the same name override earlier ones, so campaign YAML
// files can shadow the built-in table.
func NewCalculator(defs []*SkillDef) *Calculator {
	c := &Calculator{skills: make(map[string]*SkillDef, len(defs))}
	for _, def := range defs {
		c.skills[strings.ToLower(def.Name)] = def
	}
	return c
}

// BaseName strips a parenthesized specialization list from a compound
// skill key: "Guns (Pistol)" → "Guns".
func BaseName(key string) string {
	if i := strings.Index(key, " ("); i >= 0 {
		return key[:i]
	}
	return key
}

// Lookup resolves a skill key against the table, trying the full compound
// key first and the base name second.
func (c *Calculator) Lookup(key string) (*SkillDef, bool) {
	if def, ok := c.skills[strings.ToLower(key)]; ok {
		return def, true
	}
	def, ok := c.skills[strings.ToLower(BaseName(key))]
	return def, ok
}

// SkillLevel computes the effective level for the named skill at the given
// point cost. Equipment-keyword bonuses match case-insensitively against
// every carried item name, recursing into containers; advantage bonuses
// match by advantage presence. A cost of zero falls back to the skill's
// inherent default.
//
// Postcondition: on any returned error the level is 0 and the caller may
// continue with the rest of the character.
func (c *Calculator) SkillLevel(
	key string,
	cost int,
	attrs character.AttributeSet,
	stuff []*inventory.Item,
	advantages map[string]int,
) (int, error) {
	def, ok := c.Lookup(key)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSkill, key)
	}
	attr, ok := attrs.Int(def.Attribute)
	if !ok {
		return 0, fmt.Errorf("%w: skill %q needs %q", ErrMissingAttribute, key, def.Attribute)
	}

	if cost == 0 {
		if def.Default == nil {
			return 0, fmt.Errorf("%w: %q", ErrMissingDefault, key)
		}
		return attr + *def.Default, nil
	}

	offset, err := DifficultyOffset(def.Difficulty)
	if err != nil {
		return 0, err
	}
	level := CostToBaseLevel(cost) + offset + attr

	for keyword, bonus := range def.EquipmentBonuses {
		if anyItemMatches(stuff, keyword) {
			level += bonus
		}
	}
	for name, bonus := range def.AdvantageBonuses {
		if _, has := advantages[name]; has {
			level += bonus
		}
	}
	return level, nil
}

// anyItemMatches reports whether any item name, at any nesting depth,
// contains the keyword case-insensitively.
func anyItemMatches(stuff []*inventory.Item, keyword string) bool {
	needle := strings.ToLower(keyword)
	for _, it := range stuff {
		if strings.Contains(strings.ToLower(it.Name), needle) {
			return true
		}
		if anyItemMatches(it.Children, needle) {
			return true
		}
	}
	return false
}

// Package character defines the persisted character record and the pure
// derived-attribute computation.
package character

import (
	"math"

	"github.com/gmkit/gcssync/internal/game/inventory"
)

// Attribute names used as AttributeSet keys.
const (
	AttrST         = "st"
	AttrDX         = "dx"
	AttrIQ         = "iq"
	AttrHT         = "ht"
	AttrHP         = "hp"
	AttrFP         = "fp"
	AttrWill       = "wi"
	AttrPer        = "per"
	AttrBasicSpeed = "basic-speed"
	AttrBasicMove  = "basic-move"
)

// AttributeSet maps attribute names to their values. Basic speed is the
// only attribute that is not a whole number.
type AttributeSet map[string]float64

// Int returns the named attribute truncated to an int, and whether it is
// present.
func (a AttributeSet) Int(name string) (int, bool) {
	v, ok := a[name]
	return int(v), ok
}

// Clone returns an independent copy of the set.
func (a AttributeSet) Clone() AttributeSet {
	out := make(AttributeSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Adjustments holds advantage-driven deltas folded into derived attributes.
type Adjustments struct {
	HP         float64
	FP         float64
	Will       float64
	Per        float64
	BasicSpeed float64
	BasicMove  float64
}

// Derive computes the full attribute set from the four primary attributes,
// the sheet's bought HP/FP increases, and advantage adjustments.
//
// Postcondition: the result is deterministic given identical inputs and
// always contains all ten attribute keys.
func Derive(st, dx, iq, ht, hpBonus, fpBonus float64, adj Adjustments) AttributeSet {
	speed := (dx+ht)/4 + adj.BasicSpeed
	return AttributeSet{
		AttrST:         st,
		AttrDX:         dx,
		AttrIQ:         iq,
		AttrHT:         ht,
		AttrHP:         st + hpBonus + adj.HP,
		AttrFP:         ht + fpBonus + adj.FP,
		AttrWill:       iq + adj.Will,
		AttrPer:        iq + adj.Per,
		AttrBasicSpeed: speed,
		AttrBasicMove:  math.Floor(speed) + adj.BasicMove,
	}
}

// Technique is a skill variant keyed off one or more default base skills.
type Technique struct {
	Name     string   `json:"name"`
	Defaults []string `json:"default"`
	Value    int      `json:"value"`
}

// Spell is a learned spell and its effective casting level.
type Spell struct {
	Name  string `json:"name"`
	Skill int    `json:"skill"`
}

// Record is the aggregate character state persisted by the GM tool.
//
// One Record is owned by a single import or update operation; it is never
// shared across operations.
type Record struct {
	Player     string            `json:"player,omitempty"`
	Name       string            `json:"name"`
	Permanent  AttributeSet      `json:"permanent"`
	Current    AttributeSet      `json:"current"`
	Advantages map[string]int    `json:"advantages"`
	Skills     map[string]int    `json:"skills"`
	Techniques []Technique       `json:"techniques"`
	Spells     []Spell           `json:"spells"`
	Stuff      []*inventory.Item `json:"stuff"`
	GCSFile    string            `json:"gcs-file,omitempty"`
}

// New returns an empty Record with all collections initialised.
func New() *Record {
	return &Record{
		Permanent:  AttributeSet{},
		Current:    AttributeSet{},
		Advantages: map[string]int{},
		Skills:     map[string]int{},
	}
}

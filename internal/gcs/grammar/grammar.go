// Package grammar parses the compact text notations embedded in GCS
// character-sheet exports: damage strings, shot counts, and accuracy sums.
// All functions are pure; a string that fits no grammar returns an error
// wrapping ErrUnparseable so callers can substitute defaults and continue.
package grammar

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrUnparseable is the sentinel for text that matches none of the known
// notations.
var ErrUnparseable = errors.New("grammar: unparseable text")

// DefaultDamageType is substituted when a dice-damage string omits its type.
const DefaultDamageType = "pi"

// StrengthDamage is a damage expression keyed off the character's swing or
// thrust stat, e.g. "sw-2 cut".
type StrengthDamage struct {
	Stat string // "sw" or "thr"
	Plus int    // flat modifier, may be negative
	Type string // damage type, e.g. "cut", "imp"
}

// DiceDamage is an absolute damage expression, e.g. "1d+1 fat".
type DiceDamage struct {
	Dice int    // number of dice; 0 when omitted
	Plus int    // flat modifier, may be negative
	Type string // damage type; DefaultDamageType when omitted
}

// Shots is a parsed shots-and-reload expression, e.g. "8(3)" or "T(1)".
type Shots struct {
	Shots     int  // rounds held; 1 for thrown weapons
	ShotsLeft int  // rounds currently loaded
	Reload    int  // turns to reload
	Thrown    bool // true for the single-use "T" form
}

var (
	strengthRe = regexp.MustCompile(`^([a-zA-Z]+?)([+-]\d+)?\s+([a-zA-Z]+)$`)
	// Prefix-anchored only: GCS appends qualifiers ("1d-1 cr ex") that the
	// original tooling discarded, so trailing text is ignored here too.
	diceRe  = regexp.MustCompile(`^(\d*)d?([+-]?)(\d*)\s*([a-zA-Z]*)`)
	shotsRe = regexp.MustCompile(`^(\d+|T)\s*\((\d+)\)`)
)

// ParseStrengthDamage parses an attribute-based damage string such as
// "sw-2 cut" or "thr imp". A missing modifier means Plus 0.
func ParseStrengthDamage(text string) (StrengthDamage, error) {
	m := strengthRe.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return StrengthDamage{}, fmt.Errorf("%w: strength damage %q", ErrUnparseable, text)
	}
	plus := 0
	if m[2] != "" {
		var err error
		plus, err = strconv.Atoi(m[2])
		if err != nil {
			return StrengthDamage{}, fmt.Errorf("%w: strength damage %q", ErrUnparseable, text)
		}
	}
	return StrengthDamage{Stat: m[1], Plus: plus, Type: m[3]}, nil
}

// ParseDiceDamage parses an absolute damage string such as "1d+1 fat",
// "2d fat", or "3d". Missing dice parse as 0, a missing modifier as 0, and
// a missing type as DefaultDamageType. The sign applies to the modifier
// only. Text containing neither a digit nor 'd' is unparseable.
func ParseDiceDamage(text string) (DiceDamage, error) {
	trimmed := strings.TrimSpace(text)
	if !strings.ContainsAny(trimmed, "0123456789d") {
		return DiceDamage{}, fmt.Errorf("%w: dice damage %q", ErrUnparseable, text)
	}
	m := diceRe.FindStringSubmatch(trimmed)
	if m == nil {
		return DiceDamage{}, fmt.Errorf("%w: dice damage %q", ErrUnparseable, text)
	}

	dice := 0
	if m[1] != "" {
		var err error
		dice, err = strconv.Atoi(m[1])
		if err != nil {
			return DiceDamage{}, fmt.Errorf("%w: dice damage %q", ErrUnparseable, text)
		}
	}

	plus := 0
	if m[3] != "" {
		var err error
		plus, err = strconv.Atoi(m[3])
		if err != nil {
			return DiceDamage{}, fmt.Errorf("%w: dice damage %q", ErrUnparseable, text)
		}
		if m[2] == "-" {
			plus = -plus
		}
	}

	dmgType := m[4]
	if dmgType == "" {
		dmgType = DefaultDamageType
	}
	return DiceDamage{Dice: dice, Plus: plus, Type: dmgType}, nil
}

// ParseShots parses a shots-and-reload string such as "8(3)", "8 (3)", or
// "T(1)". The "T" form denotes a single-use thrown weapon: one shot, one
// loaded.
func ParseShots(text string) (Shots, error) {
	m := shotsRe.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return Shots{}, fmt.Errorf("%w: shots %q", ErrUnparseable, text)
	}
	reload, err := strconv.Atoi(m[2])
	if err != nil {
		return Shots{}, fmt.Errorf("%w: shots %q", ErrUnparseable, text)
	}
	if m[1] == "T" {
		return Shots{Shots: 1, ShotsLeft: 1, Reload: reload, Thrown: true}, nil
	}
	shots, err := strconv.Atoi(m[1])
	if err != nil {
		return Shots{}, fmt.Errorf("%w: shots %q", ErrUnparseable, text)
	}
	return Shots{Shots: shots, ShotsLeft: shots, Reload: reload}, nil
}

// ParseAccuracy sums the numeric components of an accuracy string. GCS
// writes built-in scope bonuses as "4+2"; every numeric token contributes,
// non-numeric tokens are skipped.
func ParseAccuracy(text string) int {
	total := 0
	for _, tok := range strings.Split(text, "+") {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			continue
		}
		total += n
	}
	return total
}

// Package gcs reads GCS character-builder XML exports and turns them into
// character records. Parsing stops at the elements the GM tool consumes;
// everything else in the export is ignored rather than validated.
package gcs

import "encoding/xml"

// Sheet is the parsed form of one GCS XML export.
type Sheet struct {
	XMLName    xml.Name      `xml:"character"`
	Profile    Profile       `xml:"profile"`
	ST         float64       `xml:"ST"`
	DX         float64       `xml:"DX"`
	IQ         float64       `xml:"IQ"`
	HT         float64       `xml:"HT"`
	HP         float64       `xml:"HP"`
	FP         float64       `xml:"FP"`
	Advantages AdvantageList `xml:"advantage_list"`
	Equipment  EquipmentList `xml:"equipment_list"`
	Skills     SkillList     `xml:"skill_list"`
	Spells     SpellList     `xml:"spell_list"`
}

// Profile holds the character identity block.
type Profile struct {
	PlayerName string `xml:"player_name"`
	Name       string `xml:"name"`
}

// AdvantageList holds the top level of the advantage tree.
type AdvantageList struct {
	Advantages []AdvantageNode      `xml:"advantage"`
	Containers []AdvantageContainer `xml:"advantage_container"`
}

// AdvantageContainer groups advantages; a container is never itself an
// advantage entry, only its leaves are.
type AdvantageContainer struct {
	Name       string               `xml:"name"`
	Advantages []AdvantageNode      `xml:"advantage"`
	Containers []AdvantageContainer `xml:"advantage_container"`
}

// AdvantageNode is one (leaf) advantage entry.
type AdvantageNode struct {
	Name           string         `xml:"name"`
	BasePoints     int            `xml:"base_points"`
	Levels         int            `xml:"levels"`
	PointsPerLevel int            `xml:"points_per_level"`
	Modifiers      []ModifierNode `xml:"modifier"`
}

// ModifierNode is a cost-modifying sub-entry of an advantage. Enabled is
// the raw attribute text; anything except "no" counts as enabled. Cost is
// kept as raw text because some exports write non-integer costs the GM
// tool does not price.
type ModifierNode struct {
	Enabled    string          `xml:"enabled,attr"`
	Name       string          `xml:"name"`
	Cost       string          `xml:"cost"`
	SpellBonus *SpellBonusNode `xml:"spell_bonus"`
}

// SpellBonusNode marks a modifier as a college-wide spell bonus.
type SpellBonusNode struct {
	CollegeName string `xml:"college_name"`
	Amount      int    `xml:"amount"`
}

// EquipmentList holds the top level of the equipment tree.
type EquipmentList struct {
	Items      []EquipmentNode      `xml:"equipment"`
	Containers []EquipmentContainer `xml:"equipment_container"`
}

// EquipmentContainer is an equipment item holding nested items.
type EquipmentContainer struct {
	Name       string               `xml:"name"`
	Quantity   int                  `xml:"quantity"`
	Items      []EquipmentNode      `xml:"equipment"`
	Containers []EquipmentContainer `xml:"equipment_container"`
}

// EquipmentNode is one leaf equipment entry.
type EquipmentNode struct {
	Name     string       `xml:"name"`
	Quantity int          `xml:"quantity"`
	DRBonus  *int         `xml:"dr_bonus"`
	Melee    []WeaponNode `xml:"melee_weapon"`
	Ranged   []WeaponNode `xml:"ranged_weapon"`
}

// WeaponNode is a melee_weapon or ranged_weapon sub-element. The numeric
// fields stay raw: exports write values like "9U" (parry) or "4+2"
// (accuracy with scope) that need the grammar package.
type WeaponNode struct {
	Damage   DamageNode    `xml:"damage"`
	Parry    string        `xml:"parry"`
	Accuracy string        `xml:"accuracy"`
	Bulk     string        `xml:"bulk"`
	Shots    string        `xml:"shots"`
	Defaults []DefaultNode `xml:"default"`
}

// DamageNode carries the three damage encodings seen in the wild: the
// st/base attribute pair, a base attribute alone, or free chardata text.
type DamageNode struct {
	ST   string `xml:"st,attr"`
	Base string `xml:"base,attr"`
	Type string `xml:"type,attr"`
	Text string `xml:",chardata"`
}

// DefaultNode is one fallback entry of a weapon or technique.
type DefaultNode struct {
	Type           string `xml:"type"`
	Name           string `xml:"name"`
	Specialization string `xml:"specialization"`
	Modifier       int    `xml:"modifier"`
}

// SkillList holds skill and technique entries.
type SkillList struct {
	Skills     []SkillNode     `xml:"skill"`
	Techniques []TechniqueNode `xml:"technique"`
}

// SkillNode is one learned skill.
type SkillNode struct {
	Name            string   `xml:"name"`
	Specializations []string `xml:"specialization"`
	Difficulty      string   `xml:"difficulty"`
	Points          int      `xml:"points"`
}

// TechniqueNode is one learned technique.
type TechniqueNode struct {
	Name       string        `xml:"name"`
	Difficulty string        `xml:"difficulty"`
	Points     int           `xml:"points"`
	Defaults   []DefaultNode `xml:"default"`
}

// SpellList holds learned spells.
type SpellList struct {
	Spells []SpellNode `xml:"spell"`
}

// SpellNode is one learned spell. VeryHard is the raw attribute text;
// "yes" marks a very-hard spell.
type SpellNode struct {
	VeryHard string `xml:"very_hard,attr"`
	Name     string `xml:"name"`
	College  string `xml:"college"`
	Points   int    `xml:"points"`
}

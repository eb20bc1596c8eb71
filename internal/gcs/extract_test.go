package gcs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gmkit/gcssync/internal/game/character"
	"github.com/gmkit/gcssync/internal/game/inventory"
	"github.com/gmkit/gcssync/internal/game/ruleset"
	"github.com/gmkit/gcssync/internal/gcs"
	"github.com/gmkit/gcssync/internal/report"
)

const sampleSheet = `<?xml version="1.0" encoding="UTF-8"?>
<character>
  <profile>
    <player_name>Sam</player_name>
    <name>Korda</name>
  </profile>
  <ST>10</ST><DX>10</DX><IQ>10</IQ><HT>10</HT><HP>2</HP><FP>0</FP>
  <advantage_list>
    <advantage>
      <name>Combat Reflexes</name>
      <base_points>15</base_points>
    </advantage>
    <advantage>
      <name>Magery</name>
      <base_points>5</base_points>
      <levels>2</levels>
      <points_per_level>10</points_per_level>
      <modifier>
        <name>Fire College</name>
        <spell_bonus><college_name>Fire</college_name><amount>1</amount></spell_bonus>
      </modifier>
      <modifier enabled="no">
        <name>Song Only</name>
        <cost>-4</cost>
      </modifier>
      <modifier>
        <name>Staff Focus</name>
        <cost>5</cost>
      </modifier>
    </advantage>
    <advantage_container>
      <name>Background</name>
      <advantage><name>Wealth</name><base_points>10</base_points></advantage>
      <advantage_container>
        <name>Mind</name>
        <advantage><name>Will</name><levels>2</levels><points_per_level>5</points_per_level></advantage>
      </advantage_container>
    </advantage_container>
  </advantage_list>
  <equipment_list>
    <equipment>
      <name>Large Knife</name>
      <quantity>1</quantity>
      <melee_weapon>
        <damage st="sw" base="-2" type="cut"></damage>
        <parry>9</parry>
        <default><type>Skill</type><name>Knife</name><specialization></specialization><modifier>0</modifier></default>
        <default><type>DX</type><name></name><modifier>-4</modifier></default>
      </melee_weapon>
    </equipment>
    <equipment>
      <name>Revolver</name>
      <ranged_weapon>
        <damage>2d-1 pi</damage>
        <accuracy>2+1</accuracy>
        <bulk>-2</bulk>
        <shots>6(3)</shots>
        <default><type>Skill</type><name>Guns</name><specialization>Pistol</specialization><modifier>0</modifier></default>
      </ranged_weapon>
    </equipment>
    <equipment>
      <name>Leather Jacket</name>
      <dr_bonus>1</dr_bonus>
    </equipment>
    <equipment_container>
      <name>Backpack</name>
      <equipment><name>Rope</name></equipment>
      <equipment><name>Rope</name></equipment>
      <equipment><name>First Aid Kit</name></equipment>
    </equipment_container>
  </equipment_list>
  <skill_list>
    <skill><name>Brawling</name><difficulty>DX/E</difficulty><points>4</points></skill>
    <skill><name>Guns</name><specialization>Pistol</specialization><difficulty>DX/E</difficulty><points>2</points></skill>
    <skill><name>First Aid</name><difficulty>IQ/E</difficulty><points>1</points></skill>
    <skill><name>Fast-Draw</name><specialization>Pistol</specialization><difficulty>DX/E</difficulty><points>1</points></skill>
    <technique>
      <name>Disarming</name>
      <difficulty>H</difficulty>
      <points>4</points>
      <default><type>Skill</type><name>Knife</name><specialization></specialization><modifier>0</modifier></default>
    </technique>
  </skill_list>
  <spell_list>
    <spell><name>Ignite Fire</name><college>Fire</college><points>4</points></spell>
    <spell very_hard="yes"><name>Fireball</name><college>Fire</college><points>4</points></spell>
  </spell_list>
</character>
`

func extractSample(t *testing.T) (*character.Record, *report.Reporter) {
	t.Helper()
	sheet, err := gcs.ParseSheet([]byte(sampleSheet))
	require.NoError(t, err)

	rep := report.NewOperation(zap.NewNop(), "import")
	calc := ruleset.NewCalculator(ruleset.DefaultSkills())
	rec := gcs.NewExtractor(calc, rep).Extract(sheet, "korda.gcs")
	require.NotNil(t, rec)
	return rec, rep
}

func TestExtract_ProfileAndBookkeeping(t *testing.T) {
	rec, _ := extractSample(t)
	assert.Equal(t, "Sam", rec.Player)
	assert.Equal(t, "Korda", rec.Name)
	assert.Equal(t, "korda.gcs", rec.GCSFile)
}

func TestExtract_Attributes(t *testing.T) {
	rec, _ := extractSample(t)

	assert.Equal(t, 10.0, rec.Permanent[character.AttrST])
	assert.Equal(t, 12.0, rec.Permanent[character.AttrHP], "ST 10 + bought HP 2")
	assert.Equal(t, 10.0, rec.Permanent[character.AttrFP])
	assert.Equal(t, 12.0, rec.Permanent[character.AttrWill], "IQ 10 + Will advantage ×2")
	assert.Equal(t, 10.0, rec.Permanent[character.AttrPer])
	assert.Equal(t, 5.0, rec.Permanent[character.AttrBasicSpeed])
	assert.Equal(t, 5.0, rec.Permanent[character.AttrBasicMove])

	assert.Equal(t, rec.Permanent, rec.Current, "current mirrors permanent on import")
}

func TestExtract_Advantages(t *testing.T) {
	rec, _ := extractSample(t)

	assert.Equal(t, 15, rec.Advantages["Combat Reflexes"])
	// 5 base + 2×10 levels + 5 enabled modifier; disabled and spell-bonus
	// modifiers contribute nothing.
	assert.Equal(t, 30, rec.Advantages["Magery"])
	assert.Equal(t, 10, rec.Advantages["Wealth"], "container leaves are flattened")
	assert.Equal(t, 10, rec.Advantages["Will"])
	assert.NotContains(t, rec.Advantages, "Background", "containers are never leaf entries")
	assert.NotContains(t, rec.Advantages, "Mind")
}

func TestExtract_MeleeWeapon(t *testing.T) {
	rec, _ := extractSample(t)
	knife := findItem(t, rec.Stuff, "Large Knife")

	assert.True(t, knife.HasKind(inventory.KindMelee))
	require.NotNil(t, knife.Weapon)
	require.NotNil(t, knife.Weapon.Damage)
	assert.Equal(t, inventory.Damage{Stat: "sw", Plus: -2, Type: "cut"}, *knife.Weapon.Damage)
	assert.Equal(t, 9, knife.Weapon.Parry)
	assert.Equal(t, "Knife", knife.Weapon.Skill, "zero-modifier Skill default wins over DX fallback")
}

func TestExtract_RangedWeapon(t *testing.T) {
	rec, _ := extractSample(t)
	revolver := findItem(t, rec.Stuff, "Revolver")

	assert.True(t, revolver.HasKind(inventory.KindRanged))
	require.NotNil(t, revolver.Weapon)
	assert.Equal(t, inventory.Damage{Dice: 2, Plus: -1, Type: "pi"}, *revolver.Weapon.Damage)
	assert.Equal(t, 3, revolver.Weapon.Acc, "accuracy sums weapon and scope")
	assert.Equal(t, -2, revolver.Weapon.Bulk)
	assert.Equal(t, 3, revolver.Weapon.Reload)
	require.NotNil(t, revolver.Weapon.Ammo)
	assert.Equal(t, 6, revolver.Weapon.Ammo.Shots)
	assert.Equal(t, 6, revolver.Weapon.Ammo.ShotsLeft)
	assert.Equal(t, "Guns (Pistol)", revolver.Weapon.Skill)
}

func TestExtract_Armor(t *testing.T) {
	rec, _ := extractSample(t)
	jacket := findItem(t, rec.Stuff, "Leather Jacket")

	assert.True(t, jacket.HasKind(inventory.KindArmor))
	require.NotNil(t, jacket.Armor)
	assert.Equal(t, 1, jacket.Armor.DR)
}

func TestExtract_ContainerAndDuplicateMerge(t *testing.T) {
	rec, _ := extractSample(t)
	pack := findItem(t, rec.Stuff, "Backpack")

	assert.True(t, pack.HasKind(inventory.KindContainer))
	require.Len(t, pack.Children, 2, "two identical ropes merge into one entry")

	rope := findItem(t, pack.Children, "Rope")
	assert.Equal(t, 2, rope.Count)
}

func TestExtract_Skills(t *testing.T) {
	rec, _ := extractSample(t)

	assert.Equal(t, 12, rec.Skills["Brawling"], "cost 4 Easy DX at DX 10")
	assert.Equal(t, 11, rec.Skills["Guns (Pistol)"])
	assert.Equal(t, 11, rec.Skills["First Aid"], "kit inside the backpack grants +1")
	assert.Equal(t, 11, rec.Skills["Fast-Draw (Pistol)"], "Combat Reflexes grants +1")
}

func TestExtract_Techniques(t *testing.T) {
	rec, _ := extractSample(t)

	require.Len(t, rec.Techniques, 1)
	tech := rec.Techniques[0]
	assert.Equal(t, "Disarming", tech.Name)
	assert.Equal(t, []string{"Knife"}, tech.Defaults)
	assert.Equal(t, 3, tech.Value, "Hard technique at 4 points")
}

func TestExtract_Spells(t *testing.T) {
	rec, _ := extractSample(t)

	require.Len(t, rec.Spells, 2)
	assert.Equal(t, character.Spell{Name: "Ignite Fire", Skill: 11}, rec.Spells[0],
		"IQ 10 + Fire college 1 + 4-point bracket 0")
	assert.Equal(t, character.Spell{Name: "Fireball", Skill: 10}, rec.Spells[1],
		"very hard: 4-point bracket is -1")
}

func TestExtract_UnknownSkillIsRecoverable(t *testing.T) {
	xml := `<character>
  <DX>10</DX><IQ>10</IQ><ST>10</ST><HT>10</HT>
  <skill_list>
    <skill><name>Chronomancy</name><points>4</points></skill>
    <skill><name>Brawling</name><points>4</points></skill>
  </skill_list>
</character>`
	sheet, err := gcs.ParseSheet([]byte(xml))
	require.NoError(t, err)

	rep := report.NewOperation(zap.NewNop(), "import")
	rec := gcs.NewExtractor(ruleset.NewCalculator(ruleset.DefaultSkills()), rep).Extract(sheet, "x.gcs")

	assert.Equal(t, 0, rec.Skills["Chronomancy"], "unknown skill defaults to level 0")
	assert.Equal(t, 12, rec.Skills["Brawling"], "extraction continues past the failure")

	problems := rep.Flush()
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "Chronomancy")
}

func TestExtract_UnparseableDamageIsRecoverable(t *testing.T) {
	xml := `<character>
  <DX>10</DX><IQ>10</IQ><ST>10</ST><HT>10</HT>
  <equipment_list>
    <equipment>
      <name>Cursed Blade</name>
      <melee_weapon>
        <damage>special</damage>
        <default><type>Skill</type><name>Broadsword</name><modifier>0</modifier></default>
      </melee_weapon>
    </equipment>
  </equipment_list>
</character>`
	sheet, err := gcs.ParseSheet([]byte(xml))
	require.NoError(t, err)

	rep := report.NewOperation(zap.NewNop(), "import")
	rec := gcs.NewExtractor(ruleset.NewCalculator(ruleset.DefaultSkills()), rep).Extract(sheet, "x.gcs")

	blade := findItem(t, rec.Stuff, "Cursed Blade")
	require.NotNil(t, blade.Weapon.Damage)
	assert.Equal(t, inventory.Damage{Type: "pi"}, *blade.Weapon.Damage,
		"placeholder damage substituted")

	problems := rep.Flush()
	require.Len(t, problems, 1)
	assert.Contains(t, problems[0], "Cursed Blade")
}

func TestExtract_WeaponWithoutSkillDefault(t *testing.T) {
	xml := `<character>
  <DX>10</DX><IQ>10</IQ><ST>10</ST><HT>10</HT>
  <equipment_list>
    <equipment>
      <name>Strange Rod</name>
      <melee_weapon>
        <damage st="thr" type="cr"></damage>
        <default><type>DX</type><modifier>-5</modifier></default>
      </melee_weapon>
    </equipment>
  </equipment_list>
</character>`
	sheet, err := gcs.ParseSheet([]byte(xml))
	require.NoError(t, err)

	rep := report.NewOperation(zap.NewNop(), "import")
	rec := gcs.NewExtractor(ruleset.NewCalculator(ruleset.DefaultSkills()), rep).Extract(sheet, "x.gcs")

	rod := findItem(t, rec.Stuff, "Strange Rod")
	assert.Equal(t, inventory.UnknownSkill, rod.Weapon.Skill)
	assert.NotEmpty(t, rep.Flush())
}

func findItem(t *testing.T, items []*inventory.Item, name string) *inventory.Item {
	t.Helper()
	for _, it := range items {
		if it.Name == name {
			return it
		}
	}
	t.Fatalf("item %q not found", name)
	return nil
}

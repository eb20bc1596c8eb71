package inventory_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmkit/gcssync/internal/game/inventory"
)

func TestDamage_String(t *testing.T) {
	tests := []struct {
		dmg  inventory.Damage
		want string
	}{
		{inventory.Damage{Stat: "sw", Plus: -2, Type: "cut"}, "sw-2 cut"},
		{inventory.Damage{Stat: "thr", Type: "imp"}, "thr imp"},
		{inventory.Damage{Dice: 1, Plus: 1, Type: "fat"}, "1d+1 fat"},
		{inventory.Damage{Dice: 2, Type: "pi"}, "2d pi"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.dmg.String())
	}
}

func TestAddKind_SortedAndDeduplicated(t *testing.T) {
	it := inventory.NewItem("Kevlar Vest")
	it.AddKind(inventory.KindArmor)
	it.AddKind(inventory.KindArmor)
	assert.Equal(t, []inventory.Kind{inventory.KindArmor, inventory.KindMisc}, it.Kinds)
}

func TestNormalize_RestoresContainerChildren(t *testing.T) {
	data := []byte(`{"name":"Backpack","count":1,"kinds":["container"]}`)
	var it inventory.Item
	require.NoError(t, json.Unmarshal(data, &it))
	require.Nil(t, it.Children)

	it.Normalize()
	require.NotNil(t, it.Children)
	assert.Empty(t, it.Children)
}

func TestNormalize_DefaultsCount(t *testing.T) {
	var it inventory.Item
	it.Name = "Rope"
	it.Normalize()
	assert.Equal(t, 1, it.Count)
}

func TestTemplates(t *testing.T) {
	melee := inventory.NewMeleeWeapon("Club")
	require.NotNil(t, melee.Weapon)
	assert.Equal(t, inventory.UnknownSkill, melee.Weapon.Skill)
	assert.True(t, melee.HasKind(inventory.KindMelee))
	assert.Nil(t, melee.Children, "non-container items never carry a child list")

	armor := inventory.NewArmor("Helmet")
	require.NotNil(t, armor.Armor)
	assert.Equal(t, 0, armor.Armor.DR)

	box := inventory.NewContainer("Box")
	require.NotNil(t, box.Children)
	assert.True(t, box.HasKind(inventory.KindContainer))
}

package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/coliseum/internal/game/character"
	"github.com/cory-johannsen/coliseum/internal/game/inventory"
	"github.com/cory-johannsen/coliseum/internal/game/item"
)

func TestEquipWeapon_AppliesBonus(t *testing.T) {
	c := newTestCharacter(t, 5)
	w := item.NewWeapon("Gladius", "")
	carry(t, c, w, 1)

	require.NoError(t, c.EquipWeapon(w))

	assert.Equal(t, 20, c.Attack)
	assert.Equal(t, 10, c.Defense)
	got, ok := c.EquippedWeapon()
	require.True(t, ok)
	assert.Same(t, w, got)
	assert.Equal(t, 1, c.Inventory().Slots()[0].Quantity, "equip does not consume")
}

func TestEquipUnequip_Symmetric(t *testing.T) {
	c := newTestCharacter(t, 5)
	w := item.NewWeapon("Gladius", "")
	carry(t, c, w, 1)

	require.NoError(t, c.EquipWeapon(w))
	removed, ok := c.UnequipWeapon()

	require.True(t, ok)
	assert.Same(t, w, removed)
	assert.Equal(t, 10, c.Attack)
	assert.Equal(t, 5, c.Defense)
	_, equipped := c.EquippedWeapon()
	assert.False(t, equipped)
}

func TestUnequipWeapon_NoneEquipped(t *testing.T) {
	c := newTestCharacter(t, 5)
	w, ok := c.UnequipWeapon()
	assert.Nil(t, w)
	assert.False(t, ok)
	assert.Equal(t, 10, c.Attack)
	assert.Equal(t, 5, c.Defense)
}

func TestEquipWeapon_ReplacesBonusOnce(t *testing.T) {
	direct := newTestCharacter(t, 5)
	w1 := item.NewWeapon("Gladius", "")
	w2 := item.NewWeapon("Trident", "")
	carry(t, direct, w1, 1)
	carry(t, direct, w2, 1)
	require.NoError(t, direct.EquipWeapon(w1))
	require.NoError(t, direct.EquipWeapon(w2))

	explicit := newTestCharacter(t, 5)
	carry(t, explicit, w1, 1)
	carry(t, explicit, w2, 1)
	require.NoError(t, explicit.EquipWeapon(w1))
	explicit.UnequipWeapon()
	require.NoError(t, explicit.EquipWeapon(w2))

	assert.Equal(t, explicit.Sheet(), direct.Sheet())
	assert.Equal(t, 20, direct.Attack)
	assert.Equal(t, "Trident", direct.Sheet().Equipped)
}

func TestEquipWeapon_SameWeaponTwice(t *testing.T) {
	c := newTestCharacter(t, 5)
	w := item.NewWeapon("Gladius", "")
	carry(t, c, w, 1)

	require.NoError(t, c.EquipWeapon(w))
	require.NoError(t, c.EquipWeapon(w))

	assert.Equal(t, 20, c.Attack)
	assert.Equal(t, 10, c.Defense)
}

func TestEquipWeapon_NotInInventory(t *testing.T) {
	c := newTestCharacter(t, 5)
	held := item.NewWeapon("Gladius", "")
	carry(t, c, held, 1)
	require.NoError(t, c.EquipWeapon(held))

	err := c.EquipWeapon(item.NewWeapon("Stranger's Blade", ""))
	assert.ErrorIs(t, err, character.ErrNotInInventory)
	got, _ := c.EquippedWeapon()
	assert.Same(t, held, got, "failed equip leaves the current weapon in place")
	assert.Equal(t, 20, c.Attack)

	assert.ErrorIs(t, c.EquipWeapon(nil), character.ErrNotInInventory)
}

func TestUseItem_Potion(t *testing.T) {
	c := newTestCharacter(t, 5)
	p := item.NewPotion("Tonic", "")
	carry(t, c, p, 2)

	require.NoError(t, c.UseItem(p.ID()))
	assert.InDelta(t, 150.0, c.HP, 1e-9)
	assert.InDelta(t, 60.0, c.MP, 1e-9)

	require.NoError(t, c.UseItem(p.ID()))
	assert.InDelta(t, 225.0, c.HP, 1e-9)
	assert.InDelta(t, 72.0, c.MP, 1e-9)

	slot, ok := c.Inventory().Find(p.ID())
	require.True(t, ok)
	assert.Equal(t, 0, slot.Quantity)
}

func TestUseItem_Potion_OutOfStock(t *testing.T) {
	c := newTestCharacter(t, 5)
	p := item.NewPotion("Tonic", "")
	carry(t, c, p, 1)
	require.NoError(t, c.UseItem(p.ID()))
	before := c.Sheet()

	err := c.UseItem(p.ID())

	assert.ErrorIs(t, err, inventory.ErrOutOfStock)
	assert.Equal(t, before, c.Sheet())
	slot, _ := c.Inventory().Find(p.ID())
	assert.Equal(t, 0, slot.Quantity, "quantity never goes negative")
}

func TestUseItem_Weapon_Equips(t *testing.T) {
	c := newTestCharacter(t, 5)
	w := item.NewWeapon("Gladius", "")
	carry(t, c, w, 1)

	require.NoError(t, c.UseItem(w.ID()))

	got, ok := c.EquippedWeapon()
	require.True(t, ok)
	assert.Same(t, w, got)
	assert.Equal(t, 20, c.Attack)
	assert.Equal(t, 1, c.Inventory().Slots()[0].Quantity)
}

func TestUseItem_Weapon_ReplacesPreviousBonus(t *testing.T) {
	c := newTestCharacter(t, 5)
	w1 := item.NewWeapon("Gladius", "")
	w2 := item.NewWeapon("Trident", "")
	carry(t, c, w1, 1)
	carry(t, c, w2, 1)

	require.NoError(t, c.UseItem(w1.ID()))
	require.NoError(t, c.UseItem(w2.ID()))

	assert.Equal(t, 20, c.Attack, "bonus must not stack across weapons")
	assert.Equal(t, 10, c.Defense)
	got, _ := c.EquippedWeapon()
	assert.Same(t, w2, got)
}

func TestUseItem_NotFound(t *testing.T) {
	c := newTestCharacter(t, 5)
	before := c.Sheet()

	err := c.UseItem(item.NewID())

	assert.ErrorIs(t, err, inventory.ErrItemNotFound)
	assert.Equal(t, before, c.Sheet())
}

func TestWeaponByIndex(t *testing.T) {
	c := newTestCharacter(t, 5)
	w1 := item.NewWeapon("Gladius", "")
	p := item.NewPotion("Tonic", "")
	w2 := item.NewWeapon("Trident", "")
	carry(t, c, w1, 1)
	carry(t, c, w2, 1)
	carry(t, c, p, 1)

	got, ok := c.WeaponByIndex(0)
	require.True(t, ok)
	assert.Same(t, w1, got)
	got, ok = c.WeaponByIndex(1)
	require.True(t, ok)
	assert.Same(t, w2, got)
	_, ok = c.WeaponByIndex(2)
	assert.False(t, ok)
	_, ok = c.WeaponByIndex(-1)
	assert.False(t, ok)
}

func TestPotionByIndex(t *testing.T) {
	c := newTestCharacter(t, 5)
	w := item.NewWeapon("Gladius", "")
	p := item.NewPotion("Tonic", "")
	carry(t, c, w, 1)
	carry(t, c, p, 1)

	got, ok := c.PotionByIndex(0)
	require.True(t, ok)
	assert.Same(t, p, got)
	_, ok = c.PotionByIndex(1)
	assert.False(t, ok)
}

func TestProperty_EquipUnequip_RestoresStats(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		stats := character.Stats{
			HP:      rapid.Float64Range(0, 1000).Draw(t, "hp"),
			MP:      rapid.Float64Range(0, 1000).Draw(t, "mp"),
			Attack:  rapid.IntRange(-100, 100).Draw(t, "attack"),
			Defense: rapid.IntRange(-100, 100).Draw(t, "defense"),
		}
		c, err := character.New("p", stats, inventory.New(20))
		if err != nil {
			t.Fatal(err)
		}
		n := rapid.IntRange(1, 5).Draw(t, "weapons")
		weapons := make([]*item.Weapon, n)
		for i := range weapons {
			weapons[i] = item.NewWeapon("w", "")
			if _, err := c.Inventory().Add(weapons[i], 1); err != nil {
				t.Fatal(err)
			}
		}

		equips := rapid.IntRange(1, 10).Draw(t, "equips")
		for i := 0; i < equips; i++ {
			w := weapons[rapid.IntRange(0, n-1).Draw(t, "pick")]
			if err := c.EquipWeapon(w); err != nil {
				t.Fatal(err)
			}
			if c.Attack != stats.Attack+item.WeaponAttackBonus {
				t.Fatalf("attack %d after equip, want %d", c.Attack, stats.Attack+item.WeaponAttackBonus)
			}
		}
		c.UnequipWeapon()
		if c.Attack != stats.Attack || c.Defense != stats.Defense {
			t.Fatalf("got %d/%d after unequip, want %d/%d", c.Attack, c.Defense, stats.Attack, stats.Defense)
		}
	})
}

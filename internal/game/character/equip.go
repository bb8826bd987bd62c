package character

import (
	"fmt"

	"github.com/cory-johannsen/coliseum/internal/game/inventory"
	"github.com/cory-johannsen/coliseum/internal/game/item"
)

// UseItem performs the item's own use action: a weapon is equipped (replacing
// any weapon already equipped), a potion is consumed and applied.
//
// Postcondition: returns inventory.ErrItemNotFound with no state change when
// no slot holds id; otherwise the item's Use result.
func (c *Character) UseItem(id item.ID) error {
	slot, ok := c.inv.Find(id)
	if !ok {
		return fmt.Errorf("%w: %s", inventory.ErrItemNotFound, id)
	}
	return slot.Item.Use(c)
}

// EquipWeapon unequips the current weapon, if any, then equips w and applies
// its benefit.
//
// Precondition: w must be held in c's inventory.
// Postcondition: on success exactly one weapon bonus is active and EquippedWeapon returns w;
// on error state is unchanged.
func (c *Character) EquipWeapon(w *item.Weapon) error {
	if w == nil || !c.inv.Contains(w.ID()) {
		return ErrNotInInventory
	}
	c.UnequipWeapon()
	c.equipped = w
	w.ApplyBenefit(c)
	return nil
}

// UnequipWeapon removes the equipped weapon's benefit and clears it.
//
// Postcondition: EquippedWeapon reports none. Returns the weapon that was
// removed and true, or nil and false when nothing was equipped.
func (c *Character) UnequipWeapon() (*item.Weapon, bool) {
	w := c.equipped
	if w == nil {
		return nil, false
	}
	w.RemoveBenefit(c)
	c.equipped = nil
	return w, true
}

// EquippedWeapon returns the equipped weapon and true, or nil and false.
func (c *Character) EquippedWeapon() (*item.Weapon, bool) {
	return c.equipped, c.equipped != nil
}

// WeaponByIndex returns the i-th (0-based) weapon in inventory order.
//
// Postcondition: ok is false when i is out of range.
func (c *Character) WeaponByIndex(i int) (*item.Weapon, bool) {
	weapons := c.inv.SlotsOfKind(item.KindWeapon)
	if i < 0 || i >= len(weapons) {
		return nil, false
	}
	return item.AsWeapon(weapons[i].Item)
}

// PotionByIndex returns the i-th (0-based) potion in inventory order.
//
// Postcondition: ok is false when i is out of range.
func (c *Character) PotionByIndex(i int) (*item.Potion, bool) {
	potions := c.inv.SlotsOfKind(item.KindPotion)
	if i < 0 || i >= len(potions) {
		return nil, false
	}
	return item.AsPotion(potions[i].Item)
}

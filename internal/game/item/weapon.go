package item

// Flat bonuses a weapon grants while equipped.
const (
	WeaponAttackBonus  = 10
	WeaponDefenseBonus = 5
)

// Weapon grants WeaponAttackBonus attack and WeaponDefenseBonus defense while
// equipped. Equip and unequip are exact inverses.
type Weapon struct {
	base
}

// NewWeapon returns a weapon with a fresh ID.
func NewWeapon(name, description string) *Weapon {
	return &Weapon{base: newBase(name, description)}
}

// Kind returns KindWeapon.
func (w *Weapon) Kind() Kind { return KindWeapon }

// ApplyBenefit adds the weapon's attack and defense bonus.
func (w *Weapon) ApplyBenefit(b Bearer) {
	b.IncreaseAttack(WeaponAttackBonus)
	b.IncreaseDefense(WeaponDefenseBonus)
}

// RemoveBenefit subtracts exactly what ApplyBenefit added.
func (w *Weapon) RemoveBenefit(b Bearer) {
	b.DecreaseAttack(WeaponAttackBonus)
	b.DecreaseDefense(WeaponDefenseBonus)
}

// Use equips the weapon on h, replacing any weapon already equipped.
//
// Postcondition: on success w is the only weapon whose bonus is active on h.
func (w *Weapon) Use(h Holder) error {
	return h.EquipWeapon(w)
}

// Package character defines the player character, its stats, and how items act on them.
package character

import (
	"errors"

	"github.com/cory-johannsen/coliseum/internal/game/inventory"
	"github.com/cory-johannsen/coliseum/internal/game/item"
)

// ErrNotInInventory is returned when equipping a weapon the character does not carry.
var ErrNotInInventory = errors.New("weapon is not in the character's inventory")

// Stats holds the mutable numeric attributes of a character.
// HP and MP are fractional because potions restore a percentage of the current value.
type Stats struct {
	HP      float64
	MP      float64
	Attack  int
	Defense int
}

// Character is the single session character.
//
// Invariant: equipped, when non-nil, is present as a slot in inv.
type Character struct {
	Name string
	Stats

	inv      *inventory.Inventory
	equipped *item.Weapon
}

// Inventory returns the character's inventory.
func (c *Character) Inventory() *inventory.Inventory {
	return c.inv
}

// IncreaseAttack adds amount to Attack.
func (c *Character) IncreaseAttack(amount int) { c.Attack += amount }

// DecreaseAttack subtracts amount from Attack.
func (c *Character) DecreaseAttack(amount int) { c.Attack -= amount }

// IncreaseDefense adds amount to Defense.
func (c *Character) IncreaseDefense(amount int) { c.Defense += amount }

// DecreaseDefense subtracts amount from Defense.
func (c *Character) DecreaseDefense(amount int) { c.Defense -= amount }

// RestoreHP adds pct of the current HP. There is no maximum.
func (c *Character) RestoreHP(pct float64) { c.HP += c.HP * pct }

// RestoreMP adds pct of the current MP. There is no maximum.
func (c *Character) RestoreMP(pct float64) { c.MP += c.MP * pct }

// ConsumeOne decrements the inventory stack holding id.
//
// Postcondition: see inventory.Inventory.ConsumeOne.
func (c *Character) ConsumeOne(id item.ID) error {
	return c.inv.ConsumeOne(id)
}

// Sheet is a read-only projection of a character for display.
type Sheet struct {
	Name     string
	HP       float64
	MP       float64
	Attack   int
	Defense  int
	Equipped string // weapon name, empty when none
}

// Sheet returns the character's current stats.
func (c *Character) Sheet() Sheet {
	s := Sheet{
		Name:    c.Name,
		HP:      c.HP,
		MP:      c.MP,
		Attack:  c.Attack,
		Defense: c.Defense,
	}
	if c.equipped != nil {
		s.Equipped = c.equipped.Name()
	}
	return s
}

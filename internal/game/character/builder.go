package character

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cory-johannsen/coliseum/internal/game/inventory"
	"github.com/cory-johannsen/coliseum/internal/game/item"
)

// New constructs a Character with the given stats and inventory. A nil
// inventory is replaced by an empty one with the default cap.
//
// Precondition: name must be non-blank.
// Postcondition: Returns an unequipped Character, or a non-nil error.
func New(name string, stats Stats, inv *inventory.Inventory) (*Character, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("character name must not be empty")
	}
	if inv == nil {
		inv = inventory.New(inventory.DefaultMaxDistinct)
	}
	return &Character{
		Name:  name,
		Stats: stats,
		inv:   inv,
	}, nil
}

// GrantStartingKit builds a fresh item for every def and adds def.Quantity of
// it to c's inventory. Items are added in defs order; the first failure stops
// the grant and is returned with the offending def's ID.
//
// Precondition: c must not be nil; every def must satisfy Validate.
// Postcondition: on success every def has its own slot in c's inventory.
func GrantStartingKit(c *Character, defs []*item.Def) error {
	for _, d := range defs {
		it, err := d.Build()
		if err != nil {
			return fmt.Errorf("building starting item %q: %w", d.ID, err)
		}
		if _, err := c.inv.Add(it, d.Quantity); err != nil {
			return fmt.Errorf("granting starting item %q: %w", d.ID, err)
		}
	}
	return nil
}

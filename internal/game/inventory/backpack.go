// Package inventory provides the bounded, stacking item container a character carries.
package inventory

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/coliseum/internal/game/item"
)

// DefaultMaxDistinct is the distinct-item cap used when none is given.
const DefaultMaxDistinct = 20

// Error message constants, usable in assert.Contains checks.
const (
	ErrMsgInventoryFull   = "inventory full"
	ErrMsgItemNotFound    = "item not found in inventory"
	ErrMsgOutOfStock      = "out of stock"
	ErrMsgInvalidQuantity = "quantity must be >= 1"
	ErrMsgNilItem         = "item must not be nil"
)

var (
	// ErrInventoryFull is returned when adding a new distinct item would exceed the cap.
	ErrInventoryFull = errors.New(ErrMsgInventoryFull)
	// ErrItemNotFound is returned when no slot holds the requested item.
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)
	// ErrOutOfStock is returned when consuming from a slot whose quantity is 0.
	ErrOutOfStock = errors.New(ErrMsgOutOfStock)
	// ErrInvalidQuantity is returned when adding fewer than one unit.
	ErrInvalidQuantity = errors.New(ErrMsgInvalidQuantity)
	// ErrNilItem is returned when adding a nil item.
	ErrNilItem = errors.New(ErrMsgNilItem)
)

// Slot pairs an item with its stack quantity.
// Invariant: Quantity >= 0.
type Slot struct {
	Item     item.Item
	Quantity int
}

// Inventory is an insertion-ordered list of slots with a cap on distinct items.
// A slot whose quantity reaches 0 is kept and still counts toward the cap.
type Inventory struct {
	maxDistinct int
	slots       []*Slot
	index       map[item.ID]int
}

// New creates an empty Inventory.
//
// Postcondition: MaxDistinct() == maxDistinct, or DefaultMaxDistinct when maxDistinct < 1.
func New(maxDistinct int) *Inventory {
	if maxDistinct < 1 {
		maxDistinct = DefaultMaxDistinct
	}
	return &Inventory{
		maxDistinct: maxDistinct,
		index:       make(map[item.ID]int),
	}
}

// Add places quantity units of it into the inventory. An item already present
// (same ID) stacks onto its slot; otherwise a new slot is appended.
// It is atomic: on error no state is modified.
//
// Precondition: quantity >= 1.
// Postcondition: on success the returned slot holds it; DistinctCount() <= MaxDistinct().
func (inv *Inventory) Add(it item.Item, quantity int) (Slot, error) {
	if it == nil {
		return Slot{}, ErrNilItem
	}
	if quantity < 1 {
		return Slot{}, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}

	if i, ok := inv.index[it.ID()]; ok {
		inv.slots[i].Quantity += quantity
		return *inv.slots[i], nil
	}

	if len(inv.slots) >= inv.maxDistinct {
		return Slot{}, fmt.Errorf("%w: cannot add %q, %d/%d distinct items",
			ErrInventoryFull, it.Name(), len(inv.slots), inv.maxDistinct)
	}

	s := &Slot{Item: it, Quantity: quantity}
	inv.index[it.ID()] = len(inv.slots)
	inv.slots = append(inv.slots, s)
	return *s, nil
}

// ConsumeOne decrements the slot holding id by one.
//
// Postcondition: on success the slot quantity is one lower and still >= 0;
// ErrItemNotFound if absent, ErrOutOfStock if the slot is empty.
func (inv *Inventory) ConsumeOne(id item.ID) error {
	i, ok := inv.index[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	s := inv.slots[i]
	if s.Quantity <= 0 {
		return fmt.Errorf("%w: %s", ErrOutOfStock, s.Item.Name())
	}
	s.Quantity--
	return nil
}

// Slots returns a snapshot copy of all slots in insertion order.
//
// Postcondition: returned slice is a copy; mutations do not affect the inventory.
func (inv *Inventory) Slots() []Slot {
	out := make([]Slot, len(inv.slots))
	for i, s := range inv.slots {
		out[i] = *s
	}
	return out
}

// SlotsOfKind returns, in insertion order, a copy of the slots whose item is of kind.
func (inv *Inventory) SlotsOfKind(kind item.Kind) []Slot {
	var out []Slot
	for _, s := range inv.slots {
		if s.Item.Kind() == kind {
			out = append(out, *s)
		}
	}
	return out
}

// Find returns a copy of the slot holding id.
//
// Postcondition: ok is true iff a slot holds id.
func (inv *Inventory) Find(id item.ID) (Slot, bool) {
	i, ok := inv.index[id]
	if !ok {
		return Slot{}, false
	}
	return *inv.slots[i], true
}

// Contains reports whether a slot holds id.
func (inv *Inventory) Contains(id item.ID) bool {
	_, ok := inv.index[id]
	return ok
}

// DistinctCount returns the number of slots.
//
// Postcondition: result >= 0 and <= MaxDistinct().
func (inv *Inventory) DistinctCount() int {
	return len(inv.slots)
}

// MaxDistinct returns the distinct-item cap.
func (inv *Inventory) MaxDistinct() int {
	return inv.maxDistinct
}

// TotalQuantity returns the sum of all slot quantities.
func (inv *Inventory) TotalQuantity() int {
	total := 0
	for _, s := range inv.slots {
		total += s.Quantity
	}
	return total
}

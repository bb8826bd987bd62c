// Package item defines the items a character can carry and the stat effects
// they apply.
package item

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Kind tags an Item variant.
type Kind string

const (
	// KindWeapon grants flat attack and defense while equipped.
	KindWeapon Kind = "weapon"
	// KindPotion restores a percentage of current HP and MP when consumed.
	KindPotion Kind = "potion"
)

// validKinds is the set of valid item kinds.
var validKinds = map[Kind]bool{
	KindWeapon: true,
	KindPotion: true,
}

// Valid reports whether k names a known variant.
func (k Kind) Valid() bool {
	return validKinds[k]
}

// ErrUnknownKind is returned when an item kind is not one of the known variants.
var ErrUnknownKind = errors.New("unknown item kind")

// ID uniquely identifies an item instance. Two items with the same name and
// description are distinct unless they share an ID.
type ID string

// NewID returns a fresh random ID.
func NewID() ID {
	return ID(uuid.New().String())
}

// Bearer is the stat-mutation surface an item acts on.
type Bearer interface {
	IncreaseAttack(amount int)
	DecreaseAttack(amount int)
	IncreaseDefense(amount int)
	DecreaseDefense(amount int)
	// RestoreHP adds pct of the current HP.
	RestoreHP(pct float64)
	// RestoreMP adds pct of the current MP.
	RestoreMP(pct float64)
}

// Holder is a Bearer that also owns the inventory the item is used from.
type Holder interface {
	Bearer
	// EquipWeapon makes w the single active weapon.
	EquipWeapon(w *Weapon) error
	// ConsumeOne decrements the stack holding id by one.
	ConsumeOne(id ID) error
}

// Item is the capability set shared by every item variant.
type Item interface {
	ID() ID
	Name() string
	Description() string
	Kind() Kind
	// ApplyBenefit applies the item's stat effect to b.
	ApplyBenefit(b Bearer)
	// RemoveBenefit reverts whatever ApplyBenefit did, if the effect is reversible.
	RemoveBenefit(b Bearer)
	// Use performs the item's inventory action on h.
	Use(h Holder) error
}

// base carries the immutable fields every variant has.
type base struct {
	id          ID
	name        string
	description string
}

func newBase(name, description string) base {
	return base{id: NewID(), name: name, description: description}
}

// ID returns the instance identifier.
func (b base) ID() ID { return b.id }

// Name returns the display name.
func (b base) Name() string { return b.name }

// Description returns the flavour text.
func (b base) Description() string { return b.description }

// New creates a fresh item of the given kind.
//
// Precondition: name must be non-blank.
// Postcondition: Returns an Item with a new ID, or ErrUnknownKind for an unrecognised kind.
func New(kind Kind, name, description string) (Item, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("item: name must not be empty")
	}
	switch kind {
	case KindWeapon:
		return NewWeapon(name, description), nil
	case KindPotion:
		return NewPotion(name, description), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// AsWeapon narrows it to a *Weapon.
//
// Postcondition: ok is true iff it is a non-nil *Weapon.
func AsWeapon(it Item) (w *Weapon, ok bool) {
	w, ok = it.(*Weapon)
	return w, ok && w != nil
}

// AsPotion narrows it to a *Potion.
//
// Postcondition: ok is true iff it is a non-nil *Potion.
func AsPotion(it Item) (p *Potion, ok bool) {
	p, ok = it.(*Potion)
	return p, ok && p != nil
}

package item

// Fractions of the current value a potion restores.
const (
	PotionHPRestore = 0.5
	PotionMPRestore = 0.2
)

// Potion restores PotionHPRestore of current HP and PotionMPRestore of current
// MP. The effect compounds on repeated use and is never reverted.
type Potion struct {
	base
}

// NewPotion returns a potion with a fresh ID.
func NewPotion(name, description string) *Potion {
	return &Potion{base: newBase(name, description)}
}

// Kind returns KindPotion.
func (p *Potion) Kind() Kind { return KindPotion }

// ApplyBenefit restores HP first, then MP.
func (p *Potion) ApplyBenefit(b Bearer) {
	b.RestoreHP(PotionHPRestore)
	b.RestoreMP(PotionMPRestore)
}

// RemoveBenefit is a no-op: potions are consumed, not reverted.
func (p *Potion) RemoveBenefit(Bearer) {}

// Use consumes one potion from h's inventory and applies the benefit.
//
// Postcondition: on error neither h's stats nor its inventory change.
func (p *Potion) Use(h Holder) error {
	if err := h.ConsumeOne(p.ID()); err != nil {
		return err
	}
	p.ApplyBenefit(h)
	return nil
}

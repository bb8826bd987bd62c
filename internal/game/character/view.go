package character

import "github.com/cory-johannsen/coliseum/internal/game/item"

// InventoryLine is one displayed inventory slot.
type InventoryLine struct {
	// Index is the 1-based position within the listed view.
	Index    int
	Name     string
	Kind     item.Kind
	Quantity int
	Equipped bool
}

// InventoryView is a read-only projection of a character's inventory.
type InventoryView struct {
	Lines         []InventoryLine
	Distinct      int
	MaxDistinct   int
	TotalQuantity int
}

// InventoryView lists every slot in insertion order.
func (c *Character) InventoryView() InventoryView {
	v := InventoryView{
		Distinct:      c.inv.DistinctCount(),
		MaxDistinct:   c.inv.MaxDistinct(),
		TotalQuantity: c.inv.TotalQuantity(),
	}
	for i, s := range c.inv.Slots() {
		v.Lines = append(v.Lines, c.line(i+1, s.Item, s.Quantity))
	}
	return v
}

// KindView lists only slots of the given kind, indexed 1..n in the order
// WeaponByIndex and PotionByIndex use.
func (c *Character) KindView(kind item.Kind) []InventoryLine {
	var lines []InventoryLine
	for i, s := range c.inv.SlotsOfKind(kind) {
		lines = append(lines, c.line(i+1, s.Item, s.Quantity))
	}
	return lines
}

func (c *Character) line(idx int, it item.Item, qty int) InventoryLine {
	return InventoryLine{
		Index:    idx,
		Name:     it.Name(),
		Kind:     it.Kind(),
		Quantity: qty,
		Equipped: c.equipped != nil && c.equipped.ID() == it.ID(),
	}
}

package handlers

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/coliseum/internal/frontend/console"
	"github.com/cory-johannsen/coliseum/internal/game/character"
	"github.com/cory-johannsen/coliseum/internal/game/command"
)

// RenderMenu formats the numbered top-level menu.
func RenderMenu(p console.Painter, opts []command.Option) string {
	var b strings.Builder
	b.WriteString(p.Paint(console.BrightWhite, "=== Coliseum ==="))
	b.WriteString("\n")
	for _, o := range opts {
		b.WriteString(fmt.Sprintf("  %s. %s\n", p.Paintf(console.Green, "%d", o.Code), o.Label))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// RenderSheet formats a character sheet as a multi-line stats block.
//
// Postcondition: Returns a non-empty human-readable string.
func RenderSheet(p console.Painter, s character.Sheet) string {
	equipped := s.Equipped
	if equipped == "" {
		equipped = p.Paint(console.Dim, "none")
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("  %s\n", p.Paint(console.BrightWhite, s.Name)))
	sb.WriteString(fmt.Sprintf("  HP: %.1f   MP: %.1f\n", s.HP, s.MP))
	sb.WriteString(fmt.Sprintf("  Attack: %d   Defense: %d\n", s.Attack, s.Defense))
	sb.WriteString(fmt.Sprintf("  Weapon: %s", equipped))
	return sb.String()
}

// RenderInventory formats the full inventory with slot totals.
func RenderInventory(p console.Painter, v character.InventoryView) string {
	var b strings.Builder
	b.WriteString(p.Paint(console.BrightWhite, "=== Inventory ==="))
	b.WriteString("\n")
	if len(v.Lines) == 0 {
		b.WriteString(p.Paint(console.Dim, "  Your pack is empty."))
		b.WriteString("\n")
	}
	for _, l := range v.Lines {
		b.WriteString(renderLine(p, l, true))
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("  Slots: %d/%d  Items: %d", v.Distinct, v.MaxDistinct, v.TotalQuantity))
	return b.String()
}

// RenderKindList formats a numbered list of same-kind slots under title.
func RenderKindList(p console.Painter, title string, lines []character.InventoryLine) string {
	var b strings.Builder
	b.WriteString(p.Paint(console.Cyan, title+":"))
	for _, l := range lines {
		b.WriteString("\n")
		b.WriteString(renderLine(p, l, false))
	}
	return b.String()
}

func renderLine(p console.Painter, l character.InventoryLine, withKind bool) string {
	s := fmt.Sprintf("  %s. %s (x%d)", p.Paintf(console.Green, "%d", l.Index), p.Paint(console.BrightWhite, l.Name), l.Quantity)
	if withKind {
		s += fmt.Sprintf(" [%s]", l.Kind)
	}
	if l.Equipped {
		s += p.Paint(console.Yellow, " (equipped)")
	}
	return s
}

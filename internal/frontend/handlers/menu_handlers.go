package handlers

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/coliseum/internal/frontend/console"
	"github.com/cory-johannsen/coliseum/internal/game/character"
	"github.com/cory-johannsen/coliseum/internal/game/command"
	"github.com/cory-johannsen/coliseum/internal/game/inventory"
	"github.com/cory-johannsen/coliseum/internal/game/item"
)

// menuContext carries all inputs a menu handler needs.
type menuContext struct {
	conn   *console.Conn
	char   *character.Character
	logger *zap.Logger
}

// menuResult is returned by every menu handler.
// quit is true when the player chose to end the session.
type menuResult struct {
	quit bool
}

// menuHandlerFunc is the signature for all menu dispatch functions.
// A returned error is fatal to the session; soft failures are reported to
// the player and return a nil error.
type menuHandlerFunc func(mctx *menuContext) (menuResult, error)

// MenuHandlers returns the map from Handler constant to menu function.
// Exported so TestAllMenuOptionsAreWired can verify completeness.
func MenuHandlers() map[string]menuHandlerFunc {
	return menuHandlerMap
}

// menuHandlerMap is the single source of truth for menu dispatch.
// To add an option: add a Handler constant to commands.go AND add an entry here.
var menuHandlerMap = map[string]menuHandlerFunc{
	command.HandlerEquip:     menuEquip,
	command.HandlerDrink:     menuDrink,
	command.HandlerAddWeapon: menuAddWeapon,
	command.HandlerAddPotion: menuAddPotion,
	command.HandlerInfo:      menuInfo,
	command.HandlerUnequip:   menuUnequip,
	command.HandlerInventory: menuInventory,
	command.HandlerExit:      menuExit,
}

// writeSoft reports a recoverable failure in red and logs it at Info.
//
// Postcondition: returns a zero menuResult and nil error so the session continues.
func writeSoft(mctx *menuContext, msg string, fields ...zap.Field) (menuResult, error) {
	if err := mctx.conn.WriteLine(mctx.conn.Paint(console.Red, msg)); err != nil {
		return menuResult{}, fmt.Errorf("writing message: %w", err)
	}
	mctx.logger.Info(msg, fields...)
	return menuResult{}, nil
}

func writeOK(mctx *menuContext, msg string) (menuResult, error) {
	if err := mctx.conn.WriteLine(mctx.conn.Paint(console.BrightYellow, msg)); err != nil {
		return menuResult{}, fmt.Errorf("writing message: %w", err)
	}
	return menuResult{}, nil
}

// promptIndex lists lines under title and reads a 1-based choice.
//
// Postcondition: ok is false when the reply is not a number; err is non-nil only on I/O failure.
func promptIndex(mctx *menuContext, title, prompt string, lines []character.InventoryLine) (idx int, ok bool, err error) {
	if err := mctx.conn.WriteLine(RenderKindList(mctx.conn.Painter, title, lines)); err != nil {
		return 0, false, fmt.Errorf("writing list: %w", err)
	}
	reply, err := mctx.conn.Prompt(mctx.conn.Paint(console.BrightWhite, prompt))
	if err != nil {
		return 0, false, fmt.Errorf("reading %s selection: %w", strings.ToLower(title), err)
	}
	idx, err = command.ParseIndex(reply)
	if err != nil {
		return 0, false, nil
	}
	return idx, true, nil
}

// menuEquip lists carried weapons and equips the chosen one.
// Postcondition: on an out-of-range or non-numeric choice nothing changes.
func menuEquip(mctx *menuContext) (menuResult, error) {
	lines := mctx.char.KindView(item.KindWeapon)
	if len(lines) == 0 {
		return writeSoft(mctx, "You have no weapons.")
	}
	idx, ok, err := promptIndex(mctx, "Weapons", fmt.Sprintf("Choose a weapon [1-%d]: ", len(lines)), lines)
	if err != nil {
		return menuResult{}, err
	}
	if !ok {
		return writeSoft(mctx, "Invalid selection.")
	}
	w, found := mctx.char.WeaponByIndex(idx)
	if !found {
		return writeSoft(mctx, "Weapon not found.", zap.Int("index", idx+1))
	}
	if err := mctx.char.EquipWeapon(w); err != nil {
		return writeSoft(mctx, "You cannot equip that.", zap.String("weapon", w.Name()), zap.Error(err))
	}
	mctx.logger.Debug("weapon equipped", zap.String("weapon", w.Name()), zap.Int("attack", mctx.char.Attack))
	return writeOK(mctx, fmt.Sprintf("You equip the %s. Attack: %d  Defense: %d", w.Name(), mctx.char.Attack, mctx.char.Defense))
}

// menuDrink lists carried potions and drinks the chosen one.
// Postcondition: an empty stack is refused with no state change.
func menuDrink(mctx *menuContext) (menuResult, error) {
	lines := mctx.char.KindView(item.KindPotion)
	if len(lines) == 0 {
		return writeSoft(mctx, "You have no potions.")
	}
	idx, ok, err := promptIndex(mctx, "Potions", fmt.Sprintf("Choose a potion [1-%d]: ", len(lines)), lines)
	if err != nil {
		return menuResult{}, err
	}
	if !ok {
		return writeSoft(mctx, "Invalid selection.")
	}
	p, found := mctx.char.PotionByIndex(idx)
	if !found {
		return writeSoft(mctx, "Potion not found.", zap.Int("index", idx+1))
	}
	if err := mctx.char.UseItem(p.ID()); err != nil {
		if errors.Is(err, inventory.ErrOutOfStock) {
			return writeSoft(mctx, fmt.Sprintf("You have no %s left.", p.Name()), zap.String("potion", p.Name()))
		}
		return writeSoft(mctx, "You cannot drink that.", zap.String("potion", p.Name()), zap.Error(err))
	}
	mctx.logger.Debug("potion consumed", zap.String("potion", p.Name()))
	return writeOK(mctx, fmt.Sprintf("You drink the %s. HP: %.1f  MP: %.1f", p.Name(), mctx.char.HP, mctx.char.MP))
}

func menuAddWeapon(mctx *menuContext) (menuResult, error) {
	return addItem(mctx, item.KindWeapon)
}

func menuAddPotion(mctx *menuContext) (menuResult, error) {
	return addItem(mctx, item.KindPotion)
}

// addItem prompts for name, description, and quantity, then adds a new item of kind.
//
// Postcondition: on any rejected input or a full inventory nothing is added.
func addItem(mctx *menuContext, kind item.Kind) (menuResult, error) {
	conn := mctx.conn

	name, err := conn.Prompt(conn.Paintf(console.BrightWhite, "%s name: ", kind))
	if err != nil {
		return menuResult{}, fmt.Errorf("reading %s name: %w", kind, err)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return writeSoft(mctx, "Name must not be empty.", zap.String("kind", string(kind)))
	}

	desc, err := conn.Prompt(conn.Paintf(console.BrightWhite, "%s description: ", kind))
	if err != nil {
		return menuResult{}, fmt.Errorf("reading %s description: %w", kind, err)
	}

	reply, err := conn.Prompt(conn.Paint(console.BrightWhite, "Quantity: "))
	if err != nil {
		return menuResult{}, fmt.Errorf("reading %s quantity: %w", kind, err)
	}
	qty, err := command.ParseSelection(reply)
	if err != nil || qty < 1 {
		return writeSoft(mctx, "Quantity must be a positive number.", zap.String("input", reply))
	}

	it, err := item.New(kind, name, strings.TrimSpace(desc))
	if err != nil {
		return writeSoft(mctx, "That item cannot be created.", zap.Error(err))
	}
	slot, err := mctx.char.Inventory().Add(it, qty)
	if err != nil {
		if errors.Is(err, inventory.ErrInventoryFull) {
			inv := mctx.char.Inventory()
			return writeSoft(mctx,
				fmt.Sprintf("Cannot add %s: inventory full (%d/%d).", name, inv.DistinctCount(), inv.MaxDistinct()),
				zap.String("item", name), zap.Error(err))
		}
		return writeSoft(mctx, "That item cannot be added.", zap.String("item", name), zap.Error(err))
	}
	mctx.logger.Debug("item added",
		zap.String("item", name),
		zap.String("kind", string(kind)),
		zap.Int("quantity", slot.Quantity),
	)
	return writeOK(mctx, fmt.Sprintf("Added %s (x%d).", name, slot.Quantity))
}

func menuInfo(mctx *menuContext) (menuResult, error) {
	if err := mctx.conn.WriteLine(RenderSheet(mctx.conn.Painter, mctx.char.Sheet())); err != nil {
		return menuResult{}, fmt.Errorf("writing sheet: %w", err)
	}
	return menuResult{}, nil
}

func menuUnequip(mctx *menuContext) (menuResult, error) {
	w, ok := mctx.char.UnequipWeapon()
	if !ok {
		return writeSoft(mctx, "No weapon equipped.")
	}
	mctx.logger.Debug("weapon unequipped", zap.String("weapon", w.Name()))
	return writeOK(mctx, fmt.Sprintf("You unequip the %s. Attack: %d  Defense: %d", w.Name(), mctx.char.Attack, mctx.char.Defense))
}

func menuInventory(mctx *menuContext) (menuResult, error) {
	if err := mctx.conn.WriteLine(RenderInventory(mctx.conn.Painter, mctx.char.InventoryView())); err != nil {
		return menuResult{}, fmt.Errorf("writing inventory: %w", err)
	}
	return menuResult{}, nil
}

func menuExit(mctx *menuContext) (menuResult, error) {
	_ = mctx.conn.WriteLine(mctx.conn.Paintf(console.Cyan, "Farewell, %s.", mctx.char.Name))
	return menuResult{quit: true}, nil
}

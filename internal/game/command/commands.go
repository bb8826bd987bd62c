// Package command provides the menu option table, its registry, and the selection parser.
package command

// Handler identifiers mapping menu options to driver actions.
const (
	HandlerEquip     = "equip"
	HandlerDrink     = "drink"
	HandlerAddWeapon = "add_weapon"
	HandlerAddPotion = "add_potion"
	HandlerInfo      = "info"
	HandlerUnequip   = "unequip"
	HandlerInventory = "inventory"
	HandlerExit      = "exit"
)

// Option is one numbered entry of the top-level menu.
type Option struct {
	// Code is the number the player types.
	Code int
	// Label is the text shown next to the code.
	Label string
	// Handler identifies the driver action.
	Handler string
}

// MenuOptions returns the top-level menu in display order.
func MenuOptions() []Option {
	return []Option{
		{Code: 1, Label: "Equip weapon", Handler: HandlerEquip},
		{Code: 2, Label: "Drink potion", Handler: HandlerDrink},
		{Code: 3, Label: "Add weapon to inventory", Handler: HandlerAddWeapon},
		{Code: 4, Label: "Add potion to inventory", Handler: HandlerAddPotion},
		{Code: 5, Label: "Show info", Handler: HandlerInfo},
		{Code: 6, Label: "Unequip weapon", Handler: HandlerUnequip},
		{Code: 7, Label: "Show inventory", Handler: HandlerInventory},
		{Code: 0, Label: "Exit", Handler: HandlerExit},
	}
}

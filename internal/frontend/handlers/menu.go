// Package handlers drives the console menu session for a single character.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/cory-johannsen/coliseum/internal/frontend/console"
	"github.com/cory-johannsen/coliseum/internal/game/character"
	"github.com/cory-johannsen/coliseum/internal/game/command"
)

// MenuDriver runs the numbered menu loop against one character.
type MenuDriver struct {
	conn     *console.Conn
	char     *character.Character
	registry *command.Registry
	logger   *zap.Logger
	prompt   string
}

// NewMenuDriver creates a MenuDriver. A nil registry uses command.DefaultRegistry.
//
// Precondition: conn, char, and logger must be non-nil.
// Postcondition: Returns a MenuDriver ready to Run.
func NewMenuDriver(conn *console.Conn, char *character.Character, registry *command.Registry, logger *zap.Logger, prompt string) *MenuDriver {
	if registry == nil {
		registry = command.DefaultRegistry()
	}
	return &MenuDriver{
		conn:     conn,
		char:     char,
		registry: registry,
		logger:   logger,
		prompt:   prompt,
	}
}

// Run shows the menu and dispatches selections until the player exits,
// input ends, or ctx is cancelled.
//
// Postcondition: Returns nil on exit or end of input, ctx.Err() on cancellation,
// or a wrapped I/O error.
func (d *MenuDriver) Run(ctx context.Context) error {
	mctx := &menuContext{conn: d.conn, char: d.char, logger: d.logger}

	for {
		select {
		case <-ctx.Done():
			_ = d.conn.WriteLine(d.conn.Paint(console.Yellow, "Interrupted. Goodbye!"))
			return ctx.Err()
		default:
		}

		if err := d.conn.WriteLine(RenderMenu(d.conn.Painter, d.registry.Options())); err != nil {
			return fmt.Errorf("writing menu: %w", err)
		}
		line, err := d.conn.Prompt(d.conn.Paint(console.BrightWhite, d.prompt))
		if err != nil {
			return d.endOfInput(ctx, fmt.Errorf("reading selection: %w", err))
		}

		code, err := command.ParseSelection(line)
		if err != nil {
			d.invalid(line)
			continue
		}
		opt, ok := d.registry.Resolve(code)
		if !ok {
			d.invalid(line)
			continue
		}
		fn, ok := menuHandlerMap[opt.Handler]
		if !ok {
			d.logger.Error("menu option has no handler", zap.Int("code", opt.Code), zap.String("handler", opt.Handler))
			d.invalid(line)
			continue
		}

		d.logger.Debug("menu action", zap.Int("code", opt.Code), zap.String("handler", opt.Handler))
		res, err := fn(mctx)
		if err != nil {
			return d.endOfInput(ctx, err)
		}
		if res.quit {
			d.logger.Info("session ended", zap.String("character", d.char.Name))
			return nil
		}
	}
}

func (d *MenuDriver) invalid(line string) {
	_ = d.conn.WriteLine(d.conn.Paint(console.Red, "Invalid option. Try again."))
	d.logger.Info("invalid menu selection", zap.String("input", line))
}

// endOfInput maps a read failure to Run's result: EOF ends the session
// cleanly and a cancelled ctx takes precedence over the I/O error.
func (d *MenuDriver) endOfInput(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if errors.Is(err, io.EOF) {
		d.logger.Info("input closed", zap.String("character", d.char.Name))
		return nil
	}
	return err
}

// Package uitheme tracks the builder chrome's light/dark preference. It
// never affects the colors or typography of the page being built.
package uitheme

import (
	"context"
	"errors"
	"fmt"

	"github.com/codr1/careerbuilder/internal/storage"
)

type Mode string

const (
	Light  Mode = "light"
	Dark   Mode = "dark"
	System Mode = "system"

	DefaultMode = System
)

var ErrInvalidMode = errors.New("invalid ui theme mode")

var Modes = []Mode{Light, Dark, System}

func (m Mode) Valid() bool {
	return m == Light || m == Dark || m == System
}

// ParseMode returns the mode named by s, or DefaultMode.
func ParseMode(s string) Mode {
	if m := Mode(s); m.Valid() {
		return m
	}
	return DefaultMode
}

// ChromeClass is the class set on the builder's root element.
func (m Mode) ChromeClass() string {
	return "cb-chrome-" + string(ParseMode(string(m)))
}

// Context holds the chrome mode. Load resolves DefaultMode, then the stored
// value; Set applies a live change and persists it.
type Context struct {
	local storage.Store
	mode  Mode
}

func NewContext(local storage.Store) *Context {
	return &Context{local: local, mode: DefaultMode}
}

func (c *Context) Load(ctx context.Context) (Mode, error) {
	c.mode = DefaultMode
	stored, ok, err := c.local.Get(ctx, storage.KeyUITheme)
	if err != nil {
		return c.mode, fmt.Errorf("read ui theme: %w", err)
	}
	if ok {
		c.mode = ParseMode(stored)
	}
	return c.mode, nil
}

func (c *Context) Mode() Mode {
	return c.mode
}

func (c *Context) Set(ctx context.Context, m Mode) error {
	if !m.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidMode, m)
	}
	if err := c.local.Set(ctx, storage.KeyUITheme, string(m)); err != nil {
		return fmt.Errorf("store ui theme: %w", err)
	}
	c.mode = m
	return nil
}

// Reset clears the stored preference.
func (c *Context) Reset(ctx context.Context) error {
	c.mode = DefaultMode
	if err := c.local.Remove(ctx, storage.KeyUITheme); err != nil {
		return fmt.Errorf("reset ui theme: %w", err)
	}
	return nil
}

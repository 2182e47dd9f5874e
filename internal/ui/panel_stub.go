//go:build !ebiten

package ui

import "pixelsand/internal/core"

// Panel is a no-op placeholder for headless builds.
type Panel struct{}

// NewPanel returns nil in the headless build.
func NewPanel(core.Sim, int, []Material) *Panel { return nil }

// SetStatus is a no-op in the headless build.
func (p *Panel) SetStatus(...string) {}

// Update is a no-op in the headless build.
func (p *Panel) Update(int) bool { return false }

// Draw is a no-op in the headless build.
func (p *Panel) Draw(any, int, int) {}

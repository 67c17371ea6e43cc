//go:build !ebiten

package ui

// Board is the engine surface the HUD reads its statistics from.
type Board interface {
	Shape() (rows, cols int)
	Iteration() int
	AliveCount() int
	AlivePercentage() float64
	BackupDepth() int
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(Board, int) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(int, bool) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}

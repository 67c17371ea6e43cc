package main

import (
	"github.com/integrii/flaggy"

	"neon-life/internal/view"
)

func main() {
	opts := view.DefaultOptions()

	flaggy.SetName("life-tui")
	flaggy.SetDescription("interactive terminal front end for the life engine")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&opts.Cols, "x", "width", "Width of the board in cells")
	flaggy.Int(&opts.Rows, "y", "height", "Height of the board in cells")
	flaggy.Int(&opts.TPS, "t", "tps", "Steps per second in auto-run mode")
	flaggy.Int64(&opts.Seed, "", "seed", "Seed for the random soup")
	flaggy.Float64(&opts.Density, "d", "density", "Alive probability of the initial soup")
	flaggy.Int(&opts.MaxBackups, "b", "backups", "Undo history depth, 0 disables undo")
	flaggy.Int(&opts.PurgeAge, "p", "purge-age", "Survivor age removed by the purge action")
	flaggy.Parse()

	t := view.NewConsoleUI(opts)
	t.Start()
}

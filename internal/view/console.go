// Package view implements the interactive terminal front end.
package view

import (
	"bytes"
	"fmt"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"neon-life/internal/core"
	"neon-life/internal/life"
	"neon-life/internal/patterns"
)

// Options carries the terminal front-end configuration.
type Options struct {
	Rows       int
	Cols       int
	TPS        int
	Seed       int64
	Density    float64
	MaxBackups int
	PurgeAge   int
}

// DefaultOptions returns the configuration the TUI starts with.
func DefaultOptions() Options {
	return Options{
		Rows:       40,
		Cols:       100,
		TPS:        15,
		Seed:       42,
		Density:    0.07,
		MaxBackups: 64,
		PurgeAge:   30,
	}
}

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// ConsoleUI renders the board into a gocui layout and drives the engine from
// key bindings. A background goroutine advances the board in auto-run mode;
// the mutex serializes every engine access.
type ConsoleUI struct {
	opts Options
	grid *life.Grid
	rng  *rand.Rand
	g    *gocui.Gui
	k    []keyBinding

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}

	fillers [4]string
}

// NewConsoleUI constructs the terminal front end and seeds the board with a
// random soup.
func NewConsoleUI(opts Options) *ConsoleUI {
	t := &ConsoleUI{
		opts: opts,
		grid: life.NewWithConfig(life.Config{Rows: opts.Rows, Cols: opts.Cols, MaxBackups: opts.MaxBackups}),
		rng:  core.NewRNG(opts.Seed).Source(),
		fillers: [4]string{
			"░",
			aurora.Green("█").BgBrightGreen().String(),
			aurora.Green("█").String(),
			aurora.Red("░").String(),
		},
	}
	t.grid.ReplaceLayout(patterns.Soup(t.rng, opts.Rows, opts.Cols, opts.Density))

	var err error
	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}
	t.g.Mouse = true

	t.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'n', "N", "Next step", t.cmdNextStep, ""},
		{'r', "R", "Run", t.cmdRun, ""},
		{'s', "S", "Stop", t.cmdStop, ""},
		{'u', "U", "Undo", t.cmdUndo, ""},
		{'i', "I", "Invert", t.cmdInvert, ""},
		{'w', "W", "Wipe survivors", t.cmdWipe, ""},
		{'p', "P", "Purge stale", t.cmdPurge, ""},
		{'d', "D", "Random soup", t.cmdSoup, ""},
		{'c', "C", "Clear", t.cmdClear, ""},
		{gocui.MouseLeft, "MOUSE", "Resurrect the cell", t.cmdMouseClick, "board"},
	}
	t.g.SetManagerFunc(t.layout)
	t.initKeyBindings(t.k)
	return t
}

func (t *ConsoleUI) initKeyBindings(k []keyBinding) {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			log.Panicln(err)
		}
	}
}

// Start runs the gocui main loop until the quit binding fires.
func (t *ConsoleUI) Start() {
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	t.g.Close()
}

// Refresh repaints every view from the current engine state.
func (t *ConsoleUI) Refresh() {
	t.renderBoard()
	t.renderConfiguration()
	t.renderStatus()
}

func (t *ConsoleUI) renderBoard() {
	t.g.Update(func(g *gocui.Gui) error {
		v, e := g.View("board")
		if e != nil {
			return e
		}
		v.Clear()

		t.mu.Lock()
		rows, cols := t.grid.Shape()
		cells := append([]uint8(nil), t.grid.Cells()...)
		t.mu.Unlock()

		maxW, maxH := v.Size()
		crop := cols > maxW || rows > maxH

		var b bytes.Buffer
		for row := 0; row < rows; row++ {
			if row >= maxH {
				break
			}
			if row != 0 {
				b.WriteByte('\n')
			}
			if crop && row == maxH-1 {
				b.WriteString(aurora.Red("The board is larger than the viewing area").BgBlack().String())
				break
			}
			for col := 0; col < cols && col < maxW; col++ {
				class := cells[row*cols+col]
				if int(class) >= len(t.fillers) {
					class = 0
				}
				b.WriteString(t.fillers[class])
			}
		}
		_, _ = fmt.Fprint(v, b.String())
		return nil
	})
}

func (t *ConsoleUI) renderStatus() {
	t.mu.Lock()
	iteration := t.grid.Iteration()
	alive := t.grid.AliveCount()
	percentage := t.grid.AlivePercentage()
	backups := t.grid.BackupDepth()
	running := t.running
	t.mu.Unlock()

	mode := aurora.Colorize("waiting", aurora.BlueFg).String()
	if running {
		mode = aurora.Colorize("running", aurora.CyanFg).String()
	}
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := t.g.View("status"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Step", "%v", iteration))
			_, _ = fmt.Fprintln(v, t.renderProp("Live cells", "%v (%.1f%%)", alive, percentage))
			_, _ = fmt.Fprintln(v, t.renderProp("Backups", "%v", backups))
			_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", mode))
		}
		return nil
	})
}

func (t *ConsoleUI) renderConfiguration() {
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := g.View("configuration"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", t.opts.Cols, t.opts.Rows))
			_, _ = fmt.Fprintln(v, t.renderProp("Speed", "%v steps/s", t.opts.TPS))
			_, _ = fmt.Fprintln(v, t.renderProp("Soup density", "%.2f", t.opts.Density))
			_, _ = fmt.Fprintln(v, t.renderProp("Purge age", "%v", t.opts.PurgeAge))
		}
		return nil
	})
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 16

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("board")
		return nil
	}
	if _, err := t.headerLayout(g, 3, "Life with cell provenance"); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
	}

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderConfiguration()
	}

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("board", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Board"
		v.Frame = true
		t.renderBoard()
	} else {
		t.renderBoard()
	}

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorGreen
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		pad := (maxX - len(text)) / 2
		if pad < 0 {
			pad = 0
		}
		_, _ = fmt.Fprintf(v, "%*s%s\n", pad, "", text)
	}
	return
}

// autoRun advances the board at the configured rate until stopCh closes. The
// pacing piggybacks on a fast ticker so rate changes take effect without
// recreating the ticker.
func (t *ConsoleUI) autoRun(stopCh chan struct{}) {
	pace := core.NewFixedStep(t.opts.TPS)
	ticker := time.NewTicker(time.Second / 240)
	defer ticker.Stop()
	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if !pace.ShouldStep() {
				continue
			}
			t.mu.Lock()
			t.grid.Step()
			t.mu.Unlock()
			t.Refresh()
		}
	}
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	t.stopAutoRun()
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdNextStep(_ *gocui.View) error {
	t.mu.Lock()
	if !t.running {
		t.grid.Step()
	}
	t.mu.Unlock()
	t.Refresh()
	return nil
}

func (t *ConsoleUI) cmdRun(_ *gocui.View) error {
	t.mu.Lock()
	if !t.running {
		t.running = true
		t.stopCh = make(chan struct{})
		go t.autoRun(t.stopCh)
	}
	t.mu.Unlock()
	t.Refresh()
	return nil
}

func (t *ConsoleUI) cmdStop(_ *gocui.View) error {
	t.stopAutoRun()
	t.Refresh()
	return nil
}

func (t *ConsoleUI) stopAutoRun() {
	t.mu.Lock()
	if t.running {
		t.running = false
		close(t.stopCh)
	}
	t.mu.Unlock()
}

func (t *ConsoleUI) cmdUndo(_ *gocui.View) error {
	t.mu.Lock()
	t.grid.Undo()
	t.mu.Unlock()
	t.Refresh()
	return nil
}

func (t *ConsoleUI) cmdInvert(_ *gocui.View) error {
	t.mu.Lock()
	t.grid.Invert()
	t.mu.Unlock()
	t.Refresh()
	return nil
}

func (t *ConsoleUI) cmdWipe(_ *gocui.View) error {
	t.mu.Lock()
	t.grid.WipeSurvivors()
	t.mu.Unlock()
	t.Refresh()
	return nil
}

func (t *ConsoleUI) cmdPurge(_ *gocui.View) error {
	t.mu.Lock()
	t.grid.PurgeStale(t.opts.PurgeAge)
	t.mu.Unlock()
	t.Refresh()
	return nil
}

func (t *ConsoleUI) cmdSoup(_ *gocui.View) error {
	t.mu.Lock()
	rows, cols := t.grid.Shape()
	t.grid.ReplaceLayout(patterns.Soup(t.rng, rows, cols, t.opts.Density))
	t.mu.Unlock()
	t.Refresh()
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.mu.Lock()
	t.grid.Reset()
	t.mu.Unlock()
	t.Refresh()
	return nil
}

func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	t.mu.Lock()
	t.grid.Resurrect(cy, cx)
	t.mu.Unlock()
	t.Refresh()
	return nil
}

package termui

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"pixelsand/internal/core"
	"pixelsand/internal/sims/sandbox"
)

const (
	viewField  = "field"
	viewConfig = "configuration"
	viewStatus = "status"
	viewHelp   = "help"
	viewHeader = "header"

	pollInterval = 5 * time.Millisecond
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// Console is an interactive terminal front end for a sandbox world. All
// world access happens on the gocui main loop goroutine.
type Console struct {
	world *sandbox.World
	g     *gocui.Gui
	keys  []keyBinding
	text  *TextRenderer
	pace  *core.FixedStep

	materials []sandbox.Material
	selected  int
	brush     int
	running   bool
	stepTime  time.Duration

	done chan struct{}
}

// NewConsole prepares the terminal UI. The world starts paused.
func NewConsole(world *sandbox.World, tps int) (*Console, error) {
	g, err := gocui.NewGui(gocui.Output256)
	if err != nil {
		return nil, err
	}
	g.Mouse = true

	c := &Console{
		world:     world,
		g:         g,
		text:      NewTextRenderer(true),
		pace:      core.NewFixedStep(tps),
		materials: world.Registry().Placeable(),
		brush:     sandbox.MinBrush,
		done:      make(chan struct{}),
	}
	for i, m := range c.materials {
		if m.ID == sandbox.Sand {
			c.selected = i
		}
	}
	c.keys = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", c.cmdQuit, ""},
		{'q', "Q", "Exit", c.cmdQuit, ""},
		{gocui.KeySpace, "SPACE", "Run/Pause", c.cmdToggle, ""},
		{'n', "N", "Step", c.cmdStep, ""},
		{'c', "C", "Clear", c.cmdClear, ""},
		{'r', "R", "Reset", c.cmdReset, ""},
		{'+', "+", "Faster", c.cmdFaster, ""},
		{'-', "-", "Slower", c.cmdSlower, ""},
		{']', "]", "Bigger brush", c.cmdBrushUp, ""},
		{'[', "[", "Smaller brush", c.cmdBrushDown, ""},
		{gocui.MouseLeft, "MOUSE", "Paint", c.cmdPaint, viewField},
		{gocui.MouseRight, "RMOUSE", "Erase", c.cmdErase, viewField},
	}
	for i := range c.materials {
		if i >= 9 {
			break
		}
		idx := i
		key := rune('1' + i)
		c.keys = append(c.keys, keyBinding{key, string(key), c.materials[i].Name, func(*gocui.View) error {
			c.selected = idx
			return nil
		}, ""})
	}
	g.SetManagerFunc(c.layout)
	if err := c.initKeyBindings(); err != nil {
		g.Close()
		return nil, err
	}
	return c, nil
}

func (c *Console) initKeyBindings() error {
	for _, kb := range c.keys {
		h := kb.handler
		if err := c.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			return fmt.Errorf("bind %s: %w", kb.name, err)
		}
	}
	return nil
}

// Run blocks in the gocui main loop until the user quits.
func (c *Console) Run() error {
	go c.tick()
	defer close(c.done)
	defer c.g.Close()
	if err := c.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

// tick schedules simulation steps onto the main loop at the configured rate.
func (c *Console) tick() {
	t := time.NewTicker(pollInterval)
	defer t.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-t.C:
			c.g.Update(func(*gocui.Gui) error {
				if c.running && c.pace.ShouldStep() {
					c.step()
				}
				return nil
			})
		}
	}
}

func (c *Console) step() {
	start := time.Now()
	c.world.Step()
	c.stepTime = time.Since(start)
}

// refresh redraws the views that change between steps. gocui runs the layout
// after every event, so handlers only mutate state.
func (c *Console) refresh() {
	c.renderField()
	c.renderStatus()
}

func (c *Console) renderField() {
	v, err := c.g.View(viewField)
	if err != nil {
		return
	}
	v.Clear()
	maxW, maxH := v.Size()
	_, _ = fmt.Fprint(v, c.text.Render(c.world, maxW, maxH))
}

func (c *Console) renderStatus() {
	v, err := c.g.View(viewStatus)
	if err != nil {
		return
	}
	v.Clear()
	mode := aurora.Colorize("paused", aurora.BlueFg).String()
	if c.running {
		mode = aurora.Colorize("running", aurora.CyanFg).String()
	}
	census := c.world.Census()
	_, _ = fmt.Fprintln(v, renderProp("Frame", "%v", c.world.Frame()))
	_, _ = fmt.Fprintln(v, renderProp("Mode", "%v", mode))
	_, _ = fmt.Fprintln(v, renderProp("Speed", "%v tps", c.pace.TPS()))
	_, _ = fmt.Fprintln(v, renderProp("Step time", "%v", c.stepTime.Round(time.Microsecond)))
	_, _ = fmt.Fprintln(v, renderProp("Brush", "%v", c.brush))
	if len(c.materials) > 0 {
		_, _ = fmt.Fprintln(v, renderProp("Material", "%v", c.text.Swatch(c.materials[c.selected])))
	}
	_, _ = fmt.Fprintln(v, renderProp("Burning", "%v", c.world.BurningCells()))
	for _, m := range c.materials {
		_, _ = fmt.Fprintln(v, renderProp(m.Name, "%v", census[m.ID]))
	}
}

func (c *Console) renderConfiguration() {
	v, err := c.g.View(viewConfig)
	if err != nil {
		return
	}
	v.Clear()
	for _, line := range c.world.Parameters().Lines() {
		if !strings.HasPrefix(line, " ") {
			line = aurora.Colorize(line, aurora.GreenFg).String()
		}
		_, _ = fmt.Fprintln(v, " "+line)
	}
}

func renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (c *Console) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 30
	minWindowHeight := 20

	if maxY < minWindowHeight {
		if err := c.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			return err
		}
		_ = g.DeleteView(viewConfig)
		_ = g.DeleteView(viewStatus)
		_ = g.DeleteView(viewField)
		return nil
	}
	if err := c.headerLayout(g, 2, "pixelsand"); err != nil {
		return err
	}

	split := 3 + (maxY-5-3)/2
	if v, err := g.SetView(viewConfig, 0, 3, leftColumnWidth, split); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		c.renderConfiguration()
	}
	if v, err := g.SetView(viewStatus, 0, split+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
	}
	if v, err := g.SetView(viewField, leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Sandbox"
	}
	c.refresh()

	if v, err := g.SetView(viewHelp, -1, maxY-5, maxX, maxY-2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		v.Wrap = true
		var b bytes.Buffer
		b.WriteString("KEYBINDINGS: ")
		for i, k := range c.keys {
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

func (c *Console) headerLayout(g *gocui.Gui, height int, text string) error {
	maxX, _ := g.Size()
	v, err := g.SetView(viewHeader, -1, -1, maxX+1, height)
	if err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		v.BgColor = gocui.ColorCyan
		v.FgColor = gocui.ColorBlack
	}
	v.Clear()
	pad := max(0, (maxX-len(text))/2)
	_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2)+strings.Repeat(" ", pad)+text)
	return nil
}

func (c *Console) cmdQuit(*gocui.View) error { return gocui.ErrQuit }

func (c *Console) cmdToggle(*gocui.View) error {
	c.running = !c.running
	return nil
}

func (c *Console) cmdStep(*gocui.View) error {
	c.step()
	return nil
}

func (c *Console) cmdClear(*gocui.View) error {
	c.world.Clear()
	return nil
}

func (c *Console) cmdReset(*gocui.View) error {
	c.world.Reset(0)
	return nil
}

func (c *Console) cmdFaster(*gocui.View) error {
	c.pace.SetTPS(min(c.pace.TPS()*2, 240))
	return nil
}

func (c *Console) cmdSlower(*gocui.View) error {
	c.pace.SetTPS(max(c.pace.TPS()/2, 1))
	return nil
}

func (c *Console) cmdBrushUp(*gocui.View) error {
	c.brush = sandbox.ClampBrush(c.brush + 1)
	return nil
}

func (c *Console) cmdBrushDown(*gocui.View) error {
	c.brush = sandbox.ClampBrush(c.brush - 1)
	return nil
}

// cellUnderCursor converts the view cursor, which gocui moves to the clicked
// position, into grid coordinates.
func cellUnderCursor(v *gocui.View) (int, int) {
	cx, cy := v.Cursor()
	ox, oy := v.Origin()
	return cx + ox, cy + oy
}

func (c *Console) cmdPaint(v *gocui.View) error {
	if len(c.materials) == 0 {
		return nil
	}
	x, y := cellUnderCursor(v)
	c.world.Paint(x, y, c.brush, uint8(c.materials[c.selected].ID))
	return nil
}

func (c *Console) cmdErase(v *gocui.View) error {
	x, y := cellUnderCursor(v)
	c.world.Erase(x, y, c.brush)
	return nil
}
